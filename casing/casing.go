// Package casing defines the supported case conventions and the per-key
// predicates that test object keys against them.
//
// A convention is selected once per validation run, typically from external
// configuration, and its predicate is applied to every object key a walker
// encounters. Predicates are round-trip checks: a key conforms to a convention
// exactly when converting it to that convention leaves it unchanged. The empty
// string is a fixed point of every conversion, so the additionalProperties
// pseudo-key vacuously satisfies any convention.
package casing

import (
	"fmt"

	"github.com/erraggy/oascase/internal/naming"
	"github.com/erraggy/oascase/oaserrors"
)

// Convention identifies one of the supported case conventions.
type Convention int

const (
	// CamelCase expects keys like "fooBar".
	CamelCase Convention = iota

	// SnakeCase expects keys like "foo_bar".
	SnakeCase

	// KebabCase expects keys like "foo-bar".
	KebabCase

	// PascalCase expects keys like "FooBar".
	PascalCase
)

// IsValid returns true if the convention is one of the defined constants.
func (c Convention) IsValid() bool {
	return c >= CamelCase && c <= PascalCase
}

// String returns the canonical identifier for the convention, as accepted by
// [ParseConvention].
func (c Convention) String() string {
	switch c {
	case CamelCase:
		return "camelCase"
	case SnakeCase:
		return "snake_case"
	case KebabCase:
		return "kebab-case"
	case PascalCase:
		return "PascalCase"
	default:
		return fmt.Sprintf("Convention(%d)", c)
	}
}

// adjective returns the convention name as used in error messages,
// e.g. "camelCased" in "the key `x` is not properly camelCased".
func (c Convention) adjective() string {
	switch c {
	case CamelCase:
		return "camelCased"
	case SnakeCase:
		return "snake_cased"
	case KebabCase:
		return "kebab-cased"
	case PascalCase:
		return "PascalCased"
	default:
		return "cased"
	}
}

// conversions maps each convention to its oracle. A key conforms when the
// conversion returns it unchanged.
var conversions = map[Convention]func(string) string{
	CamelCase:  naming.ToCamelCase,
	SnakeCase:  naming.ToSnakeCase,
	KebabCase:  naming.ToKebabCase,
	PascalCase: naming.ToPascalCase,
}

// Check tests key against the convention. It returns nil when the key
// conforms and a *oaserrors.CaseError naming the key, the violated
// convention, and the expected form otherwise.
func (c Convention) Check(key string) error {
	convert, ok := conversions[c]
	if !ok {
		return &oaserrors.ConfigError{
			Option:  "case",
			Value:   int(c),
			Message: "unknown case convention",
		}
	}
	if expected := convert(key); expected != key {
		return &oaserrors.CaseError{
			Key:        key,
			Convention: c.adjective(),
			Expected:   expected,
		}
	}
	return nil
}

// ParseConvention resolves a convention identifier from external configuration.
// Accepted identifiers are "camelCase", "snake_case", "kebab-case", and
// "PascalCase". Unknown identifiers yield a *oaserrors.ConfigError.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "camelCase":
		return CamelCase, nil
	case "snake_case":
		return SnakeCase, nil
	case "kebab-case":
		return KebabCase, nil
	case "PascalCase":
		return PascalCase, nil
	default:
		return 0, &oaserrors.ConfigError{
			Option:  "case",
			Value:   s,
			Message: "unknown case convention, expected one of: camelCase, snake_case, kebab-case, PascalCase",
		}
	}
}

// Conventions returns all supported conventions in declaration order.
func Conventions() []Convention {
	return []Convention{CamelCase, SnakeCase, KebabCase, PascalCase}
}
