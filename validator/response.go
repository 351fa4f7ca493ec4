package validator

import (
	"maps"
	"slices"
)

// ValidateResponseCase verifies that every object key in a JSON-like response
// value conforms to the configured case convention.
//
// data is typically a decoded response body: map[string]any, []any, or a
// scalar. Only map keys are checked; the walker recurses depth-first into map
// values and slice elements, and scalars terminate their branch. A scalar or
// nil root is a no-op.
//
// The first violating key aborts the walk with a *oaserrors.CaseError. Map
// keys are visited in sorted order so the reported key is deterministic when
// a tree contains several violations.
func ValidateResponseCase(data any, opts ...Option) error {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return err
	}

	switch value := data.(type) {
	case map[string]any:
		return walkResponseMap(cfg, value)
	case []any:
		return walkResponseSlice(cfg, value)
	default:
		cfg.logger.Debug("skipping case check", "reason", "response value has no keys")
		return nil
	}
}

// walkResponseMap checks every key of a response object and recurses into
// nested containers.
func walkResponseMap(cfg *validateConfig, dict map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(dict)) {
		if err := cfg.checkKey(key); err != nil {
			return err
		}
		switch value := dict[key].(type) {
		case map[string]any:
			if err := walkResponseMap(cfg, value); err != nil {
				return err
			}
		case []any:
			if err := walkResponseSlice(cfg, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkResponseSlice passes nested containers on for further checks.
// Only object keys need case checking, so scalar elements are ignored.
func walkResponseSlice(cfg *validateConfig, items []any) error {
	for _, item := range items {
		switch value := item.(type) {
		case map[string]any:
			if err := walkResponseMap(cfg, value); err != nil {
				return err
			}
		case []any:
			if err := walkResponseSlice(cfg, value); err != nil {
				return err
			}
		}
	}
	return nil
}
