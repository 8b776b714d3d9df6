package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the domain layer. Handlers map these onto
// HTTP status codes; repositories translate driver errors into them.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidChannel indicates that an unknown channel name was requested.
	// Unlike a delivery failure this is a caller error and is returned
	// synchronously, never recorded as an outcome.
	ErrInvalidChannel = errors.New("invalid channel name")

	// ErrAlreadyExists indicates a uniqueness violation (duplicate subscription,
	// duplicate preference, duplicate email)
	ErrAlreadyExists = errors.New("entity already exists")
)

// ValidationError names the field that failed validation so API responses
// can point at the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
