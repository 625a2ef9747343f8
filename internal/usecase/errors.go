package usecase

import (
	"errors"
	"strings"
)

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError carries a business-rule violation and optional per-field
// messages keyed by field id.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func newFieldValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for k, v := range e.Fields {
		parts = append(parts, k+": "+v)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
