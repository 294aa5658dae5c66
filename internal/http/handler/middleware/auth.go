package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (a *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId, _ := r.Context().Value(RequestIDKey).(string)

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "bearer token is required")
			a.logs.Warnw("missing bearer token",
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		claims, err := a.validator.Validate(token)
		if err != nil {
			unauthorized(w, err.Error())
			a.logs.Warnw("token validation failed",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		a.logs.Debugw("request authenticated",
			"subject", claims["sub"],
			"request_id", requestId)

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   reason,
	})
}
