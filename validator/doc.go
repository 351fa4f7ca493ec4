// Package validator implements recursive case validation of response payloads
// and OpenAPI schema documents.
//
// Import path: github.com/erraggy/oascase/validator
//
// Two structurally parallel walkers share a per-key case predicate:
//
//   - [ValidateResponseCase] walks arbitrary JSON-like response data
//     (maps, slices, scalars), checking every map key it encounters.
//   - [ValidateSchemaCase] walks an OpenAPI schema document through the
//     accessors of the openapi package, checking every property name. A schema
//     node's container-ness is declared by its `type` attribute rather than
//     its concrete shape, so this walker consults ReadType, ReadProperties,
//     and ReadItems instead of type-switching on the raw value.
//
// Both walkers are fail-fast: the first violating key aborts the entire
// traversal with a *oaserrors.CaseError, so later violations in the same tree
// are never reported in the same run. The schema walker may additionally
// return a *oaserrors.SchemaError when the document itself is structurally
// invalid.
//
// Validation calls are independent and safe to run concurrently: each call
// resolves its convention, ignore set, and logger once at entry and shares no
// state with other calls.
//
// # Usage
//
//	err := validator.ValidateResponseCase(responseBody,
//	    validator.WithConvention(casing.CamelCase),
//	    validator.WithIgnoredKeys("API_key"))
//	if err != nil {
//	    t.Fatal(err)
//	}
package validator
