package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/valeriy-z/simplebank/internal/infrastructure/auth"
)

// Principal identifies the authenticated caller.
type Principal struct {
	UserID   string
	Username string
}

// ContextKey is the type for context keys.
type ContextKey string

// PrincipalContextKey is the context key for the authenticated caller.
const PrincipalContextKey ContextKey = "principal"

// AuthMiddleware creates an authentication middleware that verifies the
// Bearer token and puts the caller's identity on the request context.
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			principal := &Principal{
				UserID:   claims.UserID,
				Username: claims.Username,
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext extracts the authenticated caller from context.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(*Principal)
	return principal, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `","code":"unauthorized"}`))
}
