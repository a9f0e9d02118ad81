package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoWordPairs         = errors.New("no valid word pairs found")
	ErrGeneration          = errors.New("generation failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from a list of field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ShapeError reports LLM output that does not match the declared shape.
// Shape names the expected document (e.g. "outro_content"), Field the
// offending field, or is empty when the payload is not JSON at all.
type ShapeError struct {
	Shape  string
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Shape, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Shape, e.Field, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrGeneration }
