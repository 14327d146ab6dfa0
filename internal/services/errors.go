package services

import "errors"

// Service-layer error classes. Handlers map these onto HTTP statuses;
// anything else is treated as a backend failure. Not-found conditions
// surface as repositories.ErrNotFound.
var (
	// ErrValidation marks a missing or malformed field, rejected before
	// any backend call.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a duplicate registration email.
	ErrConflict = errors.New("already registered")

	// ErrInvalidCredentials marks a failed login. It is deliberately
	// generic so responses do not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
