// Package oaserrors provides structured error types for the oascase library.
//
// Import path: github.com/erraggy/oascase/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [CaseError]: an object key violates the active case convention
//   - [SchemaError]: a schema node is structurally invalid (missing type, missing
//     items on an array, missing both properties and additionalProperties on an object)
//   - [DocumentError]: an expected key path was absent when indexing a schema document
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type matches a sentinel via errors.Is:
//
//	err := validator.ValidateSchemaCase(schema)
//	if errors.Is(err, oaserrors.ErrSchema) {
//	    // the schema itself was malformed; fix the spec, not the response
//	}
//
// # Usage with errors.As
//
//	var caseErr *oaserrors.CaseError
//	if errors.As(err, &caseErr) {
//	    t.Fatalf("badly cased key %q", caseErr.Key)
//	}
package oaserrors
