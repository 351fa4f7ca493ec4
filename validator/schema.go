package validator

import (
	"maps"
	"slices"

	"github.com/erraggy/oascase/openapi"
)

// ValidateSchemaCase verifies that every property name in an OpenAPI schema
// node conforms to the configured case convention.
//
// The walker mirrors ValidateResponseCase, but a schema node's container-ness
// is declared by its `type` attribute rather than its concrete shape, so
// traversal goes through the openapi accessors: object nodes are walked via
// ReadProperties, array nodes via ReadItems. Roots of any other type are a
// no-op. The additionalProperties pseudo-key (the empty string) vacuously
// satisfies every convention.
//
// Returns a *oaserrors.CaseError for the first violating property name, or a
// *oaserrors.SchemaError when the document itself is structurally invalid
// (missing `type`, an array without `items`, an object without `properties`
// or `additionalProperties`).
func ValidateSchemaCase(schema map[string]any, opts ...Option) error {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return err
	}

	nodeType, err := openapi.ReadType(schema)
	if err != nil {
		return err
	}
	switch nodeType {
	case openapi.TypeObject:
		cfg.logger.Debug("root -> object")
		return walkSchemaObject(cfg, schema)
	case openapi.TypeArray:
		cfg.logger.Debug("root -> array")
		return walkSchemaArray(cfg, schema)
	default:
		cfg.logger.Debug("skipping case check", "type", nodeType)
		return nil
	}
}

// walkSchemaObject checks every property name of an object node and recurses
// into object and array children. Children of other types terminate their
// branch.
func walkSchemaObject(cfg *validateConfig, node map[string]any) error {
	properties, err := openapi.ReadProperties(node)
	if err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(properties)) {
		if err := cfg.checkKey(key); err != nil {
			return err
		}
		child := properties[key]
		childType, err := openapi.ReadType(child)
		if err != nil {
			return err
		}
		// ReadType succeeding guarantees the child is a mapping.
		childNode := child.(map[string]any)
		switch childType {
		case openapi.TypeObject:
			cfg.logger.Debug("object -> object", "key", key)
			if err := walkSchemaObject(cfg, childNode); err != nil {
				return err
			}
		case openapi.TypeArray:
			cfg.logger.Debug("object -> array", "key", key)
			if err := walkSchemaArray(cfg, childNode); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkSchemaArray descends into an array node's item schema. Arrays of
// scalars terminate; arrays of arrays keep descending.
func walkSchemaArray(cfg *validateConfig, node map[string]any) error {
	items, err := openapi.ReadItems(node)
	if err != nil {
		return err
	}
	itemType, err := openapi.ReadType(items)
	if err != nil {
		return err
	}
	switch itemType {
	case openapi.TypeObject:
		cfg.logger.Debug("array -> object")
		return walkSchemaObject(cfg, items)
	case openapi.TypeArray:
		cfg.logger.Debug("array -> array")
		return walkSchemaArray(cfg, items)
	}
	return nil
}
