package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/vulnlab/accesslab/internal/server/handlers"
	"github.com/vulnlab/accesslab/internal/server/token"
)

// AuthMiddleware проверяет только аутентификацию: токен присутствует,
// разбирается и не истек. На этом проверки заканчиваются — ни подпись
// токена, ни права вызывающего по отношению к цели запроса дальше никто
// не смотрит. Этот разрыв и есть предмет лаборатории.
func AuthMiddleware(logger *slog.Logger, codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				handlers.WriteError(w, http.StatusUnauthorized, "token required")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format", "path", r.URL.Path)
				handlers.WriteError(w, http.StatusUnauthorized, "token required")
				return
			}

			claims, err := codec.Parse(parts[1])
			if err != nil {
				// Malformed и expired дают одинаковый статус 403,
				// как в оригинальном стенде
				logger.Warn("invalid access token", "error", err, "path", r.URL.Path)
				handlers.WriteError(w, http.StatusForbidden, "invalid token")
				return
			}

			logger.Debug("caller authenticated",
				"user_id", claims.ID,
				"username", claims.Username,
				"role", claims.Role,
			)

			next.ServeHTTP(w, r.WithContext(handlers.WithClaims(r.Context(), claims)))
		})
	}
}
