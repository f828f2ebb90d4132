// Package apperrors defines the error categories services report and the REST layer maps to status codes.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel categories; wrap them with %w to add context
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFound wraps ErrNotFound with the kind and id of the missing entity
func NotFound(kind, id string) error {
	return fmt.Errorf("%s with id %s %w", kind, id, ErrNotFound)
}

// InvalidInput wraps ErrInvalidInput with a formatted reason
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
