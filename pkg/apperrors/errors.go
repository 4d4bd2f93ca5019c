// Package apperrors defines the error kinds shared across usecases and the
// HTTP delivery layer. Callers should use errors.Is to match these values.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed or missing input, duplicate email and
	// weak passwords.
	ErrValidation = errors.New("validation error")

	// ErrAuth covers bad credentials and invalid or expired tokens.
	ErrAuth = errors.New("unauthorized")

	// ErrNotFound covers missing accounts and pictures.
	ErrNotFound = errors.New("not found")

	// ErrForbidden covers ownership mismatches.
	ErrForbidden = errors.New("forbidden")

	// ErrMedia covers unreadable or unsupported images and derivation
	// failures.
	ErrMedia = errors.New("media error")
)

// E wraps kind with a human-readable detail message. The result matches kind
// under errors.Is.
func E(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

// Ef is E with a format string.
func Ef(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
