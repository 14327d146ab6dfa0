package repositories

import "errors"

// ErrNotFound is returned when a referenced identifier has no record.
// Implementations wrap it with context so callers can use errors.Is.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert collides with a unique index,
// such as two registrations racing on the same email.
var ErrDuplicate = errors.New("record already exists")
