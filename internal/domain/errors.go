package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrCorrupted     = errors.New("data integrity fault")
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IntegrityError reports a broken cross-table reference discovered at read
// time, such as a materialized instance whose template row is gone. It is
// never caused by caller input; callers should surface it as an internal
// fault and alert whoever owns the data.
type IntegrityError struct {
	Entity  string
	ID      uuid.UUID
	Missing string
	Ref     uuid.UUID
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity: %s %s references missing %s %s", e.Entity, e.ID, e.Missing, e.Ref)
}

func (e *IntegrityError) Unwrap() error { return ErrCorrupted }
