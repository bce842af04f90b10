// Package validation checks configuration before anything is built from it.
//
// Struct tag validation (go-playground/validator) covers declarative rules;
// the fluent Validator covers rules that depend on other fields, such as a
// stage option that is only required for one stage type. Both report every
// failing field in one AppError.
//
// # Struct Tag Validation
//
//	type StageConfig struct {
//	    Type    string `mapstructure:"type" validate:"required"`
//	    Pattern string `mapstructure:"pattern" validate:"regexp"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New().At("stages[0]")
//	v.Min("count", cfg.Count, 1)
//	if err := v.Validate(); err != nil { ... }
package validation
