package services

import "errors"

// Business errors. Controllers translate these into HTTP status codes;
// anything else that escapes a service is treated as an internal error.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not authorized")
	ErrInvalidState       = errors.New("order cannot be cancelled")
	ErrWindowExceeded     = errors.New("time limit exceeded to cancel order")
)
