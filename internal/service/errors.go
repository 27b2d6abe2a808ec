package service

import "errors"

// Sentinel errors shared across services.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed input with per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ConflictError reports a uniqueness violation. For duplicate uploads it
// carries the identity of the already-stored resource.
type ConflictError struct {
	Message       string
	ResourceID    uint64
	ResourceTitle string
}

func (e *ConflictError) Error() string {
	return e.Message
}
