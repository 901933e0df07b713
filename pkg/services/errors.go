package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a state transition is not allowed from the
	// current state (terminal re-transition, double promotion)
	ErrConflict = errors.New("conflicting state transition")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PermissionDeniedError is returned by the quota gate when a user without a
// subscription has exhausted the trial allowance. It carries the cap and the
// observed count so callers can surface both.
type PermissionDeniedError struct {
	AgentKind string
	Cap       int
	Count     int
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("trial requests exhausted for agent %q: %d of %d used", e.AgentKind, e.Count, e.Cap)
}

// IsPermissionDenied checks if an error is a permission denial
func IsPermissionDenied(err error) bool {
	var pe *PermissionDeniedError
	return errors.As(err, &pe)
}
