package http

import (
	"net/http"
	"strings"

	"bibliophile/internal/auth"
	"bibliophile/internal/httpx"
)

// AuthMiddleware validates the Bearer token and puts the user identity into
// the request context. This per-request check is what stands in for the
// session check a long-lived client performs once at startup.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "You must be logged in", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "You must be logged in", nil)
				return
			}

			ctx := httpx.ContextWithUser(r.Context(), claims.Sub, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
