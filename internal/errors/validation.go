package errors

import (
	"fmt"
	"strings"
)

// FieldError is a single field-level validation problem
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationBuilder accumulates field errors in the order they were found.
// Build returns nil when nothing was recorded, or an InvalidArgument error
// with the individual problems attached under the "validation_errors" meta key.
type ValidationBuilder struct {
	fields []FieldError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields = append(vb.fields, FieldError{Field: field, Message: message})
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors returns true if any field error was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, len(vb.fields))
	for i, f := range vb.fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}

	fields := make([]FieldError, len(vb.fields))
	copy(fields, vb.fields)

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta("validation_errors", fields)
}

// ValidateRequired checks if a string field is set
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within an inclusive range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateMin checks if a value is at least minValue
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}
