package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrLabelNotFound is returned when a label is not in the catalog
	ErrLabelNotFound = errors.New("label not found")

	// ErrLabelAlreadyExists is returned when a label with the same name (ignoring case) exists
	ErrLabelAlreadyExists = errors.New("label already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// LabelNotFoundError represents a label not found error with context
type LabelNotFoundError struct {
	LabelID string
}

func (e *LabelNotFoundError) Error() string {
	return fmt.Sprintf("label with ID '%s' not found", e.LabelID)
}

func (e *LabelNotFoundError) Is(target error) bool {
	return target == ErrLabelNotFound
}

// NewLabelNotFoundError creates a new LabelNotFoundError
func NewLabelNotFoundError(labelID string) *LabelNotFoundError {
	return &LabelNotFoundError{LabelID: labelID}
}

// LabelAlreadyExistsError represents a duplicate label error with context
type LabelAlreadyExistsError struct {
	DisplayName string
	ExistingID  string
}

func (e *LabelAlreadyExistsError) Error() string {
	return fmt.Sprintf("label named '%s' already exists (ID '%s')", e.DisplayName, e.ExistingID)
}

func (e *LabelAlreadyExistsError) Is(target error) bool {
	return target == ErrLabelAlreadyExists
}

// NewLabelAlreadyExistsError creates a new LabelAlreadyExistsError
func NewLabelAlreadyExistsError(displayName, existingID string) *LabelAlreadyExistsError {
	return &LabelAlreadyExistsError{DisplayName: displayName, ExistingID: existingID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
