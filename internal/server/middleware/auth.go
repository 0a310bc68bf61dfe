package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/cardkeeper/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Имя из токена кладется в контекст и попадает в registered_by карточек
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "missing authorization header",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				w.Header().Set("WWW-Authenticate", `Bearer realm="cardkeeper"`)
				writeError(w, "unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, token, ok := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				logger.WarnContext(r.Context(), "invalid authorization header format")
				writeError(w, "unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, token)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid access token", slog.Any("error", err))
				writeError(w, "unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(r.Context(), "request authenticated", slog.String("name", claims.Name))

			next.ServeHTTP(w, r.WithContext(handlers.WithSubject(r.Context(), claims.Name)))
		})
	}
}
