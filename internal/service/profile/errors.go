package profile

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidStatus         = errors.New("invalid profile status")

	ErrPermissionDenied   = errors.New("permission denied")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSecret      = errors.New("invalid admin secret")
)
