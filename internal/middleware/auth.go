package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GabrielSB19/menupp-back/internal/response"
	"github.com/GabrielSB19/menupp-back/internal/token"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// UserIDKey is the context key for the authenticated user's ID.
const UserIDKey contextKey = "userID"

// UserEmailKey is the context key for the authenticated user's email.
const UserEmailKey contextKey = "userEmail"

// RequireAuth returns middleware that validates a Bearer token and injects
// the verified claims into the request context. A missing token yields 401,
// a present but invalid or expired token yields 403; in both cases the next
// handler is never invoked.
func RequireAuth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Token missing")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				response.Unauthorized(w, "Token missing")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				response.Forbidden(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.ID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
