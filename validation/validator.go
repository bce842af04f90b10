package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/xduce/errors"
)

// Validator collects field errors so that every problem in a config is
// reported at once.
type Validator struct {
	prefix string
	errs   *[]FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	errs := make([]FieldError, 0)
	return &Validator{errs: &errs}
}

// At returns a Validator that prefixes field names with path and records
// into the same error list.
func (v *Validator) At(path string) *Validator {
	return &Validator{prefix: v.field(path), errs: v.errs}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	*v.errs = append(*v.errs, FieldError{
		Field:   v.field(field),
		Message: message,
	})
}

func (v *Validator) field(name string) string {
	if v.prefix == "" {
		return name
	}
	if name == "" {
		return v.prefix
	}
	return v.prefix + "." + name
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(*v.errs) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return *v.errs
}

// Validate returns an AppError if there are validation errors, nil otherwise.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	fields := v.Errors()
	messages := make([]string, len(fields))
	for i, e := range fields {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	appErr := errors.Validation(strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		"fields": fields,
	}
	return appErr
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Range checks if a number is within a range.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprintf("must be between %d and %d", minVal, maxVal))
	}
	return v
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d", minVal))
	}
	return v
}

// Regexp checks that a non-empty string compiles as a regular expression.
func (v *Validator) Regexp(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := regexp.Compile(value); err != nil {
		v.AddError(field, "must be a valid regular expression")
	}
	return v
}

// OneOf checks if a value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" || slices.Contains(allowed, value) {
		return v
	}
	v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// ValidateUUID validates and parses a UUID string.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, errors.MissingField(field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.InvalidFormat(field, "UUID")
	}
	return id, nil
}
