package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"delayer/internal/handlers/rest/dto"
)

// Middleware отклоняет новые запросы после отмены ongoingCtx, если сервис уже в режиме остановки.
// Ответ закрывает соединение, чтобы балансировщик не переиспользовал его.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "delayer is shutting down"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
