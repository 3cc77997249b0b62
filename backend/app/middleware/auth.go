package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ztna-portal/backend/app/apperr"
	"ztna-portal/backend/app/guard"
)

type Auth struct{ Guard *guard.Guard }

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authz, "Bearer ")
}

func (a *Auth) require(pred guard.RolePredicate, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := a.Guard.Authorize(bearerToken(r), pred)
		if err != nil {
			switch {
			case errors.Is(err, apperr.ErrUnauthenticated):
				w.WriteHeader(http.StatusUnauthorized)
			case errors.Is(err, apperr.ErrAccountInactive):
				w.WriteHeader(http.StatusBadRequest)
			case errors.Is(err, apperr.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
			default:
				w.WriteHeader(http.StatusServiceUnavailable)
			}
			return
		}
		ctx := context.WithValue(r.Context(), UserKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireActive admits any active authenticated user.
func (a *Auth) RequireActive(next http.Handler) http.Handler {
	return a.require(nil, next)
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.require(guard.AdminOnly, next)
}
