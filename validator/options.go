package validator

import (
	"github.com/erraggy/oascase/casing"
	"github.com/erraggy/oascase/oaserrors"
	"github.com/erraggy/oascase/openapi"
)

// Option is a function that configures a validation call.
type Option func(*validateConfig) error

// validateConfig holds configuration for a single validation call.
// It is resolved once at entry and never mutated mid-traversal.
type validateConfig struct {
	convention casing.Convention
	ignored    map[string]struct{}
	logger     openapi.Logger
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		convention: casing.CamelCase,
		logger:     openapi.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.convention.IsValid() {
		return nil, &oaserrors.ConfigError{
			Option:  "convention",
			Value:   int(cfg.convention),
			Message: "unknown case convention",
		}
	}

	return cfg, nil
}

// WithConvention sets the case convention checked against every key.
// Default: casing.CamelCase
func WithConvention(c casing.Convention) Option {
	return func(cfg *validateConfig) error {
		cfg.convention = c
		return nil
	}
}

// WithIgnoredKeys exempts the given keys from the case check for this call
// only. Repeated use accumulates keys. The exemption applies to the key
// itself, not to the subtree beneath it: nested keys are still checked.
func WithIgnoredKeys(keys ...string) Option {
	return func(cfg *validateConfig) error {
		if cfg.ignored == nil {
			cfg.ignored = make(map[string]struct{}, len(keys))
		}
		for _, key := range keys {
			cfg.ignored[key] = struct{}{}
		}
		return nil
	}
}

// WithLogger sets the logger used for traversal diagnostics.
// Default: openapi.NopLogger
func WithLogger(logger openapi.Logger) Option {
	return func(cfg *validateConfig) error {
		if logger == nil {
			return &oaserrors.ConfigError{
				Option:  "logger",
				Message: "logger must not be nil",
			}
		}
		cfg.logger = logger
		return nil
	}
}

// checkKey applies the convention to key unless it is ignored.
// Shared by both walkers so ignore handling stays consistent.
func (cfg *validateConfig) checkKey(key string) error {
	if _, ok := cfg.ignored[key]; ok {
		cfg.logger.Debug("skipping case check for ignored key", "key", key)
		return nil
	}
	return cfg.convention.Check(key)
}
