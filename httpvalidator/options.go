package httpvalidator

import (
	"github.com/erraggy/oascase/casing"
	"github.com/erraggy/oascase/oaserrors"
	"github.com/erraggy/oascase/openapi"
	"github.com/erraggy/oascase/validator"
)

// Option is a function that configures a Validator.
type Option func(*Validator) error

// WithConvention sets the case convention applied to response bodies and
// schema property names.
// Default: casing.CamelCase
func WithConvention(c casing.Convention) Option {
	return func(v *Validator) error {
		if !c.IsValid() {
			return &oaserrors.ConfigError{
				Option:  "convention",
				Value:   int(c),
				Message: "unknown case convention",
			}
		}
		v.caseOpts = append(v.caseOpts, validator.WithConvention(c))
		return nil
	}
}

// WithIgnoredKeys exempts the given keys from case checks for every
// validation performed by this Validator. Repeated use accumulates keys.
func WithIgnoredKeys(keys ...string) Option {
	return func(v *Validator) error {
		v.caseOpts = append(v.caseOpts, validator.WithIgnoredKeys(keys...))
		return nil
	}
}

// WithLogger sets the logger used for lookup and traversal diagnostics.
// Default: openapi.NopLogger
func WithLogger(logger openapi.Logger) Option {
	return func(v *Validator) error {
		if logger == nil {
			return &oaserrors.ConfigError{
				Option:  "logger",
				Message: "logger must not be nil",
			}
		}
		v.logger = logger
		v.caseOpts = append(v.caseOpts, validator.WithLogger(logger))
		return nil
	}
}
