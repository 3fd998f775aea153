// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-label-matcher/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateLabelID validates a label ID path parameter
func ValidateLabelID(labelID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if labelID == "" {
		result.AddError("labelId", "Label ID is required")
		return result
	}

	if strings.TrimSpace(labelID) != labelID {
		result.AddError("labelId", "Label ID cannot have leading or trailing whitespace")
	}

	return result
}

// ValidateCandidates checks that every candidate has a non-blank display name.
// An empty candidate list is valid and simply matches nothing.
func ValidateCandidates(candidates []model.Candidate) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, c := range candidates {
		if strings.TrimSpace(c.DisplayName) == "" {
			result.AddError(fmt.Sprintf("candidates[%d].display_name", i), "Display name cannot be empty or whitespace-only")
		}
	}

	return result
}

// ValidateRanges checks that every range is a non-empty half-open interval starting at 0 or later.
func ValidateRanges(ranges []model.MatchRange) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, r := range ranges {
		if r.Start < 0 {
			result.AddError(fmt.Sprintf("ranges[%d].start", i), "Start must be 0 or greater")
		}
		if r.Len() <= 0 {
			result.AddError(fmt.Sprintf("ranges[%d].end", i), "End must be greater than start")
		}
	}

	return result
}

// ValidateLimit applies the default limit when unset and rejects limits above max.
func ValidateLimit(limit, defaultLimit, maxLimit int) (int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if limit < 0 {
		result.AddError("limit", "Limit must be 0 (default) or greater")
		return limit, result
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		result.AddError("limit", fmt.Sprintf("Limit must not exceed %d", maxLimit))
	}

	return limit, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}
