package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/prism/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report config keys rather than Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"mapstructure", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return toSnakeCase(fld.Name)
		})
	})
	return validate
}

// Validate validates a struct using struct tags.
// Uses tags like `validate:"required,min=1,dive,required"`.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Validation("validation failed").WithCause(err)
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(e.Namespace()),
			Message: formatValidationError(e),
		})
	}
	return fieldsError(fieldErrors)
}

// fieldPath drops the root struct name from a validator namespace:
// "Config.debug.train_limit" becomes "debug.train_limit".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return "must contain at least " + e.Param() + " items"
		}
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "unique":
		return "must not contain duplicates"
	case "dir":
		return "must be an existing directory"
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
