package validation

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/kbukum/prism/errors"
)

// Validator accumulates field errors; checks are chained and Err reports
// them all at once.
//
//	err := validation.New().
//		OneOf("gender", g, []string{"f", "m"}).
//		Range("condition", code, 1, 9).
//		Err()
type Validator struct {
	errors []FieldError
}

// FieldError is one failed check.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failed check on field.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the failed checks in the order they ran.
func (v *Validator) Errors() []FieldError {
	return slices.Clone(v.errors)
}

// Validate returns an INVALID_INPUT AppError listing every failed check, or nil.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}
	return fieldsError(v.errors)
}

// Err is Validate with a plain error result, so a nil *AppError never
// becomes a non-nil error interface.
func (v *Validator) Err() error {
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Identifier checks that value is a non-empty token without whitespace or
// slashes, the shape of database names, protocol names and unique names.
func (v *Validator) Identifier(field, value string) *Validator {
	switch {
	case value == "":
		v.AddError(field, "is required")
	case strings.ContainsFunc(value, func(r rune) bool { return unicode.IsSpace(r) || r == '/' }):
		v.AddError(field, fmt.Sprintf("%q must not contain whitespace or '/'", value))
	}
	return v
}

// Range checks that value lies in [minVal, maxVal].
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprintf("must be between %d and %d", minVal, maxVal))
	}
	return v
}

// OneOf checks that value is one of allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if !slices.Contains(allowed, value) {
		v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	}
	return v
}

// Distinct checks that values holds no duplicates and names the first one.
func (v *Validator) Distinct(field string, values []string) *Validator {
	seen := make(map[string]struct{}, len(values))
	for _, s := range values {
		if _, dup := seen[s]; dup {
			v.AddError(field, fmt.Sprintf("%q is listed twice", s))
			return v
		}
		seen[s] = struct{}{}
	}
	return v
}

// Custom records message on field when ok is false.
func (v *Validator) Custom(ok bool, field, message string) *Validator {
	if !ok {
		v.AddError(field, message)
	}
	return v
}

func fieldsError(fields []FieldError) *errors.AppError {
	messages := make([]string, len(fields))
	for i, e := range fields {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return errors.Validation(strings.Join(messages, "; ")).
		WithDetail("fields", slices.Clone(fields))
}
