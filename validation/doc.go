// Package validation provides input validation for configuration structs
// and protocol parameters.
//
// It supports both struct tag validation (go-playground/validator) and
// programmatic validation with error collection. Both report failures as an
// INVALID_INPUT *errors.AppError whose "fields" detail lists every problem.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    DataDir string `mapstructure:"data_dir" validate:"required"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    OneOf("gender", g, []string{"f", "m"}).
//	    Range("condition", code, 1, 9).
//	    Err()
package validation
