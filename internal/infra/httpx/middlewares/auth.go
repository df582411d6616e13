// Package middlewares holds the authentication gate. The resolved identity
// travels in the request context under a typed key; handlers receive it as
// an explicit value, never as mutable request state.
package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/token"
)

// ctxKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type ctxKey string

const userKey ctxKey = "auth-user"

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, u *entity.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom extracts the authenticated user attached by RequireUser.
func UserFrom(ctx context.Context) (*entity.User, bool) {
	u, ok := ctx.Value(userKey).(*entity.User)
	return u, ok
}

// Authenticator validates bearer credentials and resolves them to users.
type Authenticator struct {
	tokens *token.Manager
	users  ports.AuthService
}

func NewAuthenticator(tokens *token.Manager, users ports.AuthService) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// RequireUser rejects the request unless it carries a valid token that
// resolves to an existing user.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		raw = strings.TrimPrefix(raw, "Bearer ")
		if raw == "" {
			writeAuthError(w, http.StatusUnauthorized, apperr.CodeUnauthorized)
			return
		}

		userID, err := a.tokens.Verify(raw)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, apperr.CodeUnauthorized)
			return
		}

		user, err := a.users.UserByID(r.Context(), userID)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, apperr.CodeUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin gates privileged routes. Must run after RequireUser.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, apperr.CodeUnauthorized)
			return
		}
		if !user.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, apperr.CodeForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeAuthError renders the same {error, message} body shape as the httpx
// package, kept local to avoid an import cycle.
func writeAuthError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": http.StatusText(status),
	})
}
