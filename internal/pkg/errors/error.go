package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidSlug        = errors.New("slug is empty after normalization")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrRateLimited        = errors.New("too many requests")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
