// Package guard resolves a bearer token to an active user and applies a
// role predicate. It is request-scoped: no state survives between calls.
package guard

import (
	"errors"

	"ztna-portal/backend/app/apperr"
	jwtutil "ztna-portal/backend/app/jwt"
	"ztna-portal/backend/app/models"

	"gorm.io/gorm"
)

// UserFinder is the only store access the guard needs.
type UserFinder interface {
	FindByEmail(email string) (*models.User, error)
}

// RolePredicate decides whether a role may pass. A nil predicate admits any
// active authenticated user.
type RolePredicate func(role string) bool

func AdminOnly(role string) bool { return role == models.RoleAdmin }

type Guard struct {
	Signer *jwtutil.Signer
	Users  UserFinder
}

func New(signer *jwtutil.Signer, users UserFinder) *Guard {
	return &Guard{Signer: signer, Users: users}
}

// Authorize walks Anonymous -> Authenticated -> Active -> Authorized.
// Failures: missing or invalid token -> ErrUnauthenticated; account missing
// or disabled -> ErrAccountInactive; role predicate false -> ErrForbidden.
func (g *Guard) Authorize(token string, require RolePredicate) (*models.User, error) {
	if token == "" {
		return nil, apperr.ErrUnauthenticated
	}
	subject, err := g.Signer.Verify(token)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}
	u, err := g.Users.FindByEmail(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrAccountInactive
		}
		return nil, apperr.ErrStoreUnavailable
	}
	if u.Disabled {
		return nil, apperr.ErrAccountInactive
	}
	if require != nil && !require(u.Role) {
		return nil, apperr.ErrForbidden
	}
	return u, nil
}
