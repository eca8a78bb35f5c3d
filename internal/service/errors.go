package service

import (
	"errors"
	"strings"
)

// Error kinds surfaced to the HTTP layer. Callers wrap them with context and
// match with errors.Is; the error middleware maps each kind to a status code.
var (
	// ErrNotFound means no recipe has the requested name (404)
	ErrNotFound = errors.New("recipe not found")
	// ErrConflict means a recipe with the same name already exists (409)
	ErrConflict = errors.New("recipe already exists")
	// ErrUnauthorized means the API key was missing or wrong (401)
	ErrUnauthorized = errors.New("invalid or missing API key")
)

// ValidationError carries field-level messages for a rejected request (400)
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from one or more messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// IsValidationError reports whether err wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
