package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestLabelNotFoundError(t *testing.T) {
	err := NewLabelNotFoundError("abc-123")

	expectedMsg := "label with ID 'abc-123' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrLabelNotFound) {
		t.Error("Expected error to match ErrLabelNotFound sentinel")
	}

	if errors.Is(err, ErrLabelAlreadyExists) {
		t.Error("Error should not match ErrLabelAlreadyExists")
	}
}

func TestLabelAlreadyExistsError(t *testing.T) {
	err := NewLabelAlreadyExistsError("Work", "id-1")

	expectedMsg := "label named 'Work' already exists (ID 'id-1')"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrLabelAlreadyExists) {
		t.Error("Expected error to match ErrLabelAlreadyExists sentinel")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("display_name", "is required")
	expectedMsg := "validation error for field 'display_name': is required"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	err2 := NewValidationError("", "bad input")
	expectedMsg2 := "validation error: bad input"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("delete label: %w", NewLabelNotFoundError("x"))

	if !errors.Is(wrapped, ErrLabelNotFound) {
		t.Error("Expected wrapped error to match ErrLabelNotFound sentinel")
	}

	var notFound *LabelNotFoundError
	if !errors.As(wrapped, &notFound) || notFound.LabelID != "x" {
		t.Error("Expected errors.As to recover the LabelNotFoundError")
	}
}
