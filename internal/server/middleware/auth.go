package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/formsync/internal/server/handlers"
	"github.com/iudanet/formsync/internal/server/jwt"
	"github.com/iudanet/formsync/pkg/api"
)

// TokenValidator проверяет bearer токен
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки bearer токена.
// Отказ отдается конвертом с кодом PERMISSION_DENIED.
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				deny(w, logger, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				logger.Warn("Invalid Authorization header format")
				deny(w, logger, "invalid token format")
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				msg := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "token expired"
				}
				deny(w, logger, msg)
				return
			}

			logger.Debug("Request authenticated", "subject", claims.Subject)
			next.ServeHTTP(w, r.WithContext(handlers.WithSubject(r.Context(), claims.Subject)))
		})
	}
}

func deny(w http.ResponseWriter, logger *slog.Logger, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="tablestore"`)
	handlers.SendError(w, logger, http.StatusUnauthorized, api.CodePermissionDenied, "unauthorized: "+message)
}
