package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/apierr"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/auth"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Auth creates authentication middleware. Requests without a valid session
// are rejected; the resolved principal is attached to the request context.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			principal, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose principal lacks the admin role.
// Must run after Auth.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			if !principal.IsAdmin() {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie("session")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetPrincipal returns the authenticated principal from the request context
func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(auth.Principal)
	return principal, ok
}

// MustGetPrincipal returns the authenticated principal or panics
func MustGetPrincipal(ctx context.Context) auth.Principal {
	principal, ok := GetPrincipal(ctx)
	if !ok {
		panic("no principal in context - auth middleware not applied?")
	}
	return principal
}
