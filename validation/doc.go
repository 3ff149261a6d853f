// Package validation checks configuration structs and command arguments.
//
// Struct validation uses go-playground/validator tags and names fields by
// their mapstructure keys. The Validator builder collects errors for values
// that do not live in a struct, such as positional CLI arguments.
//
// # Struct Tag Validation
//
//	type StreamConfig struct {
//	    MaxCount int `mapstructure:"max_count" validate:"gte=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Min("count", n, 0).
//	    Max("count", n, maxCount).
//	    Validate()
//
// Both forms return an *errors.AppError with code INVALID_INPUT and the
// failing fields under Details["fields"].
package validation
