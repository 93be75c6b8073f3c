package middleware

import (
	"net/http"
	"time"
)

// LatencyMiddleware искусственно задерживает каждый запрос.
// Оригинальный стенд имитировал сетевую задержку, чтобы UI вел себя как при
// настоящем удаленном вызове; здесь это опциональный флаг сервера.
func LatencyMiddleware(delay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-r.Context().Done():
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
