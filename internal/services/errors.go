package services

import "errors"

// Error variables shared by the resource services. Handlers map these to
// HTTP status codes; anything else is an internal failure.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrSignatureNotFound = errors.New("signature not found")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
