// Package oascase provides testing assertions that verify object-key casing is
// consistent across API response payloads and the OpenAPI schemas that document
// them.
//
// oascase is a companion to test suites rather than a standalone service: a test
// obtains a response body and the matching schema, and oascase walks both trees
// applying a configurable case-convention check (camelCase, snake_case,
// kebab-case, or PascalCase) to every object key it encounters.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - casing: case-convention identifiers and their key predicates
//   - openapi: safe accessors over untyped OpenAPI schema nodes
//   - validator: recursive case validation of response data and schema documents
//   - httpvalidator: pairing of HTTP responses with their documented schemas
//
// Structured error types live in the oaserrors package and support [errors.Is]
// and [errors.As] discrimination.
//
// # Quick Start
//
// Validate a response body in a test:
//
//	import "github.com/erraggy/oascase/validator"
//
//	body := map[string]any{"fooBar": map[string]any{"bazQux": 1}}
//	if err := validator.ValidateResponseCase(body); err != nil {
//		t.Fatal(err)
//	}
//
// Validate a schema document's property names:
//
//	import (
//		"github.com/erraggy/oascase/casing"
//		"github.com/erraggy/oascase/validator"
//	)
//
//	err := validator.ValidateSchemaCase(schema,
//		validator.WithConvention(casing.SnakeCase),
//		validator.WithIgnoredKeys("legacyKey"))
//
// Pair a recorded HTTP response with its documented schema:
//
//	import "github.com/erraggy/oascase/httpvalidator"
//
//	doc, err := httpvalidator.LoadDocument("openapi.yaml")
//	if err != nil {
//		t.Fatal(err)
//	}
//	v, err := httpvalidator.New(doc)
//	if err != nil {
//		t.Fatal(err)
//	}
//	if err := v.ValidateResponseData("/api/v1/cars", "get", rec.Code, rec.Body.Bytes()); err != nil {
//		t.Fatal(err)
//	}
//
// # Scope
//
// oascase is not an OpenAPI parser or a JSON Schema validator. It performs no
// $ref resolution and recognizes only the structural keywords needed to walk
// object and array nodes (type, properties, additionalProperties, items,
// nullable). Malformed schema structure is reported as
// [github.com/erraggy/oascase/oaserrors.SchemaError] rather than guessed at.
//
// # Command-Line Interface
//
// In addition to the library packages, oascase provides a command-line
// interface:
//
//	# Sweep every response schema in a document
//	oascase check --case camelCase openapi.yaml
//
//	# Check the key casing of a JSON payload
//	oascase response --case snake_case payload.json
//
//	# Run the MCP server over stdio
//	oascase mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oascase/cmd/oascase@latest
package oascase
