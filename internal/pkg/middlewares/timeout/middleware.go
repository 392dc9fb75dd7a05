package timeout

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Middleware ограничивает время запроса. Пути с префиксами из longRunning получают longTimeout:
// обход партиции через /jobs длится дольше обычного чтения.
func Middleware(timeout, longTimeout time.Duration, longRunning ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := timeout
			for _, prefix := range longRunning {
				if strings.HasPrefix(r.URL.Path, prefix) {
					limit = longTimeout
					break
				}
			}

			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
