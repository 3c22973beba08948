package entity

import (
	"errors"
	"fmt"
)

// ValidationError is raised when a required field is empty or a value falls
// outside a closed set. It is the only error kind the practice core returns.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// InvalidField names the rejected field
func (e *ValidationError) InvalidField() string {
	return e.Field
}

// Reason describes why the field was rejected
func (e *ValidationError) Reason() string {
	return e.Message
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError extracts the *ValidationError from err, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
