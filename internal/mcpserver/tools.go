package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oascase/httpvalidator"
	"github.com/erraggy/oascase/oaserrors"
	"github.com/erraggy/oascase/validator"
)

type checkSchemaCaseInput struct {
	Schema     specInput `json:"schema"                jsonschema:"The schema node to check"`
	Case       string    `json:"case,omitempty"        jsonschema:"Case convention: camelCase, snake_case, kebab-case, or PascalCase"`
	IgnoreKeys []string  `json:"ignore_keys,omitempty" jsonschema:"Keys exempted from the case check"`
}

type checkOutput struct {
	Valid bool `json:"valid"`
	// Key is the first violating key, when valid is false for a case violation.
	Key string `json:"key,omitempty"`
	// Message describes the failure, when valid is false.
	Message string `json:"message,omitempty"`
}

// resultFromError converts a validation outcome into a tool output.
// Case violations and schema problems are reported as tool output rather than
// protocol errors; only operational failures become error results.
func resultFromError(err error) checkOutput {
	if err == nil {
		return checkOutput{Valid: true}
	}
	out := checkOutput{Valid: false, Message: err.Error()}
	var caseErr *oaserrors.CaseError
	if errors.As(err, &caseErr) {
		out.Key = caseErr.Key
	}
	return out
}

func handleCheckSchemaCase(_ context.Context, _ *mcp.CallToolRequest, input checkSchemaCaseInput) (*mcp.CallToolResult, checkOutput, error) {
	opts, err := caseOptions(input.Case, input.IgnoreKeys)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	schema, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	return nil, resultFromError(validator.ValidateSchemaCase(schema, opts...)), nil
}

type checkResponseCaseInput struct {
	Content    string   `json:"content"               jsonschema:"The JSON response body to check"`
	Case       string   `json:"case,omitempty"        jsonschema:"Case convention: camelCase, snake_case, kebab-case, or PascalCase"`
	IgnoreKeys []string `json:"ignore_keys,omitempty" jsonschema:"Keys exempted from the case check"`
}

func handleCheckResponseCase(_ context.Context, _ *mcp.CallToolRequest, input checkResponseCaseInput) (*mcp.CallToolResult, checkOutput, error) {
	opts, err := caseOptions(input.Case, input.IgnoreKeys)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	var data any
	if err := json.Unmarshal([]byte(input.Content), &data); err != nil {
		return errResult(fmt.Errorf("decoding response content: %w", err)), checkOutput{}, nil
	}

	return nil, resultFromError(validator.ValidateResponseCase(data, opts...)), nil
}

type checkDocumentInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OpenAPI document to sweep"`
	Case       string    `json:"case,omitempty"        jsonschema:"Case convention: camelCase, snake_case, kebab-case, or PascalCase"`
	IgnoreKeys []string  `json:"ignore_keys,omitempty" jsonschema:"Keys exempted from the case check"`
}

type checkDocumentOutput struct {
	Valid bool `json:"valid"`
	// SchemasChecked is the number of response schemas validated before the
	// sweep finished or stopped at a violation.
	SchemasChecked int `json:"schemas_checked"`
	// Key is the first violating key, when valid is false for a case violation.
	Key string `json:"key,omitempty"`
	// Message describes the failure, when valid is false.
	Message string `json:"message,omitempty"`
}

func handleCheckDocument(_ context.Context, _ *mcp.CallToolRequest, input checkDocumentInput) (*mcp.CallToolResult, checkDocumentOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), checkDocumentOutput{}, nil
	}

	vopts, err := documentOptions(input.Case, input.IgnoreKeys)
	if err != nil {
		return errResult(err), checkDocumentOutput{}, nil
	}

	v, err := httpvalidator.New(doc, vopts...)
	if err != nil {
		return errResult(err), checkDocumentOutput{}, nil
	}

	checked, err := v.ValidateDocumentCase()
	output := checkDocumentOutput{Valid: err == nil, SchemasChecked: checked}
	if err != nil {
		output.Message = err.Error()
		var caseErr *oaserrors.CaseError
		if errors.As(err, &caseErr) {
			output.Key = caseErr.Key
		}
	}
	return nil, output, nil
}
