// Package errors holds the error kinds every domain sentinel wraps. The response
// mapper only looks at these kinds and the auth and ticket sentinels built on them.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the addressed ticket slot is empty or out of range.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means a request body or path parameter could not be used.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized means the caller has no usable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited means the caller exceeded its login budget.
	ErrRateLimited = errors.New("rate limited")

	// ErrInternal means the service itself is misconfigured or failed.
	ErrInternal = errors.New("internal error")
)

// Wrap prefixes err with message and keeps err reachable through Is and As.
// A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
