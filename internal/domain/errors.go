package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrEmptyItems      = errors.New("invoice needs at least one item")
	ErrInvalidLocation = errors.New("latitude and longitude must be finite")
	ErrDuplicate       = errors.New("duplicate resource")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("access denied")
	ErrTooManyRequests = errors.New("too many requests")
	ErrOTPExpired      = errors.New("code expired or never requested")
	ErrOTPMismatch     = errors.New("wrong code")
)
