package middleware

import (
	"net/http"
	"strings"

	"hwidstore/internal/api/apierr"
	"hwidstore/internal/services/auth"
)

// Auth creates bearer-token authentication middleware. A missing or
// malformed Authorization header and a mismatched token both yield 401.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractBearer(r)
			if !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError("Missing API key"))
				return
			}

			if err := authService.ValidateToken(token); err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearer extracts the bearer token from the Authorization header
func extractBearer(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}
