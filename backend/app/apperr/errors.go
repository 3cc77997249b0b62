// Package apperr defines the error kinds the core returns to the boundary
// layer. Controllers map them to status codes; nothing here knows about HTTP.
package apperr

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAccountInactive    = errors.New("account inactive")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidRole        = errors.New("invalid role")
	ErrDuplicateFilename  = errors.New("filename already exists")
	ErrNotFound           = errors.New("not found")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
