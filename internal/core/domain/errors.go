package domain

import "errors"

// Sentinel errors returned from the use cases.
var (
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrForbidden          = errors.New("forbidden")
	ErrSaveInProgress     = errors.New("save already in progress")
)
