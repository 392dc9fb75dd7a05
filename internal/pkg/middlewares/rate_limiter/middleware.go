package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"delayer/internal/handlers/rest/dto"
	"delayer/pkg/logger"

	"github.com/gorilla/mux"
)

func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "rate limit exceeded, try again later"})
			if err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("route", route),
				)
			}
		})
	}
}
