package middleware

import (
	"net/http"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
)

const (
	msgMissingToken = "se requiere iniciar sesión"
	msgInvalidToken = "token de acceso inválido o expirado"
)

// TokenValidator проверяет bearer-токен
type TokenValidator interface {
	Validate(token string) (*identity.Identity, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// OptionalAuth кладёт identity в контекст, если передан токен.
// Запрос без токена проходит как гостевой, невалидный токен отклоняется.
func OptionalAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := identity.ExtractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := validator.Validate(token)
			if err != nil {
				logger.Warn("Auth: invalid token: method=%s, path=%s, error=%v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
		})
	}
}

// RequireAuth пропускает только запросы с валидным токеном
func RequireAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := identity.ExtractBearerToken(r)
			if token == "" {
				logger.Warn("Auth: missing token: method=%s, path=%s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			id, err := validator.Validate(token)
			if err != nil {
				logger.Warn("Auth: invalid token: method=%s, path=%s, error=%v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
		})
	}
}
