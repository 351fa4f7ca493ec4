package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrCase indicates an object key violates the active case convention.
	ErrCase = errors.New("case error")

	// ErrSchema indicates a schema node is structurally invalid.
	ErrSchema = errors.New("schema error")

	// ErrDocument indicates an expected key path was absent from a schema document.
	ErrDocument = errors.New("documentation error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// CaseError represents an object key that violates the active case convention.
// It is raised by the case walkers at the first violating key and is intended
// to fail the enclosing test.
type CaseError struct {
	// Key is the offending object key
	Key string
	// Convention is the adjective form of the violated convention (e.g., "camelCased")
	Convention string
	// Expected is the correctly-cased form of the key, when known
	Expected string
	// Context describes where in the tree the key was found (may be empty)
	Context string
}

// Error returns a human-readable error message.
func (e *CaseError) Error() string {
	msg := fmt.Sprintf("case error: the key `%s` is not properly %s", e.Key, e.Convention)
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected `%s`)", e.Expected)
	}
	if e.Context != "" {
		msg += ": " + e.Context
	}
	return msg
}

// Unwrap returns nil as CaseError has no underlying cause.
func (e *CaseError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *CaseError) Is(target error) bool {
	return target == ErrCase
}

// SchemaError represents a structurally invalid schema node: a missing or
// unsupported `type`, an array without `items`, or an object with neither
// `properties` nor `additionalProperties`. It signals a problem with the
// schema under test, not with key casing.
type SchemaError struct {
	// Message describes the structural violation
	Message string
	// Node is the offending schema node (may be nil)
	Node any
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Node != nil {
		msg += fmt.Sprintf("\n\nschema node: %v", e.Node)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// DocumentError represents a failed lookup in a schema document: the path,
// method, status code, or field the caller expected was not documented.
type DocumentError struct {
	// Key is the key the lookup failed on
	Key string
	// Context is additional caller-supplied context appended to the message
	Context string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DocumentError) Error() string {
	msg := "documentation error"
	if e.Key != "" {
		msg += fmt.Sprintf(": failed indexing schema by `%s`", e.Key)
	}
	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DocumentError) Is(target error) bool {
	return target == ErrDocument
}

// ConfigError represents an invalid configuration or input.
// This includes unknown case-convention identifiers and invalid option values.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
