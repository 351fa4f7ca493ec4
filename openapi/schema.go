// Package openapi provides safe accessors over untyped OpenAPI schema nodes.
//
// This package is not an OpenAPI schema parser. It applies just enough of the
// schema specification's structural rules to traverse object and array nodes,
// converting missing or malformed structure into typed errors instead of
// unhandled lookup failures. Nodes are plain map[string]any values, as produced
// by decoding a schema document from YAML or JSON.
package openapi

import (
	"fmt"

	"github.com/erraggy/oascase/oaserrors"
)

// The seven schema types recognized by this package.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeFile    = "file"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Types returns the supported schema type names.
func Types() []string {
	return []string{TypeString, TypeBoolean, TypeInteger, TypeNumber, TypeFile, TypeObject, TypeArray}
}

// validType reports whether name is one of the seven recognized type names.
func validType(name string) bool {
	switch name {
	case TypeString, TypeBoolean, TypeInteger, TypeNumber, TypeFile, TypeObject, TypeArray:
		return true
	}
	return false
}

// ReadType accesses the `type` attribute of a schema node.
//
// Rule: the value must be a single type and not an array of types. `null` is
// not supported as a type; use the `nullable: true` keyword instead.
//
// Returns a *oaserrors.SchemaError when node is not a mapping, has no `type`
// key, or the value is empty, non-string, or not one of the seven recognized
// type names.
func ReadType(node any) (string, error) {
	item, ok := node.(map[string]any)
	if node == nil || !ok {
		return "", &oaserrors.SchemaError{
			Message: "schema node has an invalid `type` attribute, the type should be a single string",
			Node:    node,
		}
	}
	name, ok := item["type"].(string)
	if !ok || name == "" {
		return "", &oaserrors.SchemaError{
			Message: "schema node has an invalid `type` attribute, the type should be a single string",
			Node:    node,
		}
	}
	if !validType(name) {
		return "", &oaserrors.SchemaError{
			Message: fmt.Sprintf("schema node has an invalid `type` attribute, the type `%s` is not supported", name),
			Node:    node,
		}
	}
	return name, nil
}

// ReadItems accesses the `items` attribute of an array node.
//
// Rule: `items` must be present if type is array, and the item schema must
// itself be an OpenAPI schema. The caller is responsible for having already
// confirmed that node's type is array; this function does not re-check.
//
// Returns a *oaserrors.SchemaError when `items` is absent or is not a schema
// node.
func ReadItems(node map[string]any) (map[string]any, error) {
	raw, ok := node["items"]
	if !ok {
		return nil, &oaserrors.SchemaError{
			Message: "array is missing an `items` attribute",
			Node:    node,
		}
	}
	items, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.SchemaError{
			Message: "array has an `items` attribute that is not a schema object",
			Node:    node,
		}
	}
	return items, nil
}

// ReadAdditionalProperties accesses the `additionalProperties` attribute of an
// object node.
//
// Returns a *oaserrors.SchemaError when the attribute is absent or is not a
// schema node.
func ReadAdditionalProperties(node map[string]any) (map[string]any, error) {
	raw, ok := node["additionalProperties"]
	if !ok {
		return nil, &oaserrors.SchemaError{
			Message: "object is missing an `additionalProperties` attribute",
			Node:    node,
		}
	}
	props, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.SchemaError{
			Message: "object has an `additionalProperties` attribute that is not a schema object",
			Node:    node,
		}
	}
	return props, nil
}

// ReadProperties accesses the `properties` attribute of an object node.
//
// When the node declares `additionalProperties` instead of `properties`, the
// additionalProperties schema is returned keyed under the empty string, so
// callers can iterate it uniformly with named properties. Case checks treat
// the empty pseudo-key as vacuously conforming.
//
// Returns a *oaserrors.SchemaError when the node has neither attribute.
func ReadProperties(node map[string]any) (map[string]any, error) {
	raw, ok := node["properties"]
	if !ok {
		if _, ok := node["additionalProperties"]; ok {
			additional, err := ReadAdditionalProperties(node)
			if err != nil {
				return nil, err
			}
			return map[string]any{"": additional}, nil
		}
		return nil, &oaserrors.SchemaError{
			Message: "object is missing a `properties` attribute",
			Node:    node,
		}
	}
	properties, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.SchemaError{
			Message: "object has a `properties` attribute that is not a mapping",
			Node:    node,
		}
	}
	return properties, nil
}

// IsNullable reports whether a schema node is marked nullable.
//
// OpenAPI has no null type; OAS 3 added `nullable: true` and the Swagger 2
// ecosystem back-ported it as the vendored extension `x-nullable`. Both are
// recognized here, but only with the string value exactly "true": schema
// authors who write a boolean true are not recognized as nullable. This
// string-equality check is a documented contract of this package; do not
// silently widen it.
func IsNullable(node any) bool {
	item, ok := node.(map[string]any)
	if !ok || item == nil {
		return false
	}
	for _, key := range []string{"nullable", "x-nullable"} {
		if value, ok := item[key].(string); ok && value == "true" {
			return true
		}
	}
	return false
}

// IndexSchema indexes a schema document by key.
//
// On a miss it returns a *oaserrors.DocumentError with the caller-supplied
// context appended to the message. context may be empty.
func IndexSchema(schema map[string]any, key, context string) (any, error) {
	value, ok := schema[key]
	if !ok {
		return nil, &oaserrors.DocumentError{
			Key:     key,
			Context: context,
		}
	}
	return value, nil
}
