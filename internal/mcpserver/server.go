// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oascase case validation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oascase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oascase MCP server — checks object-key casing in API responses and OpenAPI schema documents.

Configuration: defaults are configurable via OASCASE_* environment variables set in your MCP client config.

Key settings:
- OASCASE_CASE (default: camelCase) — default convention: camelCase, snake_case, kebab-case, or PascalCase
- OASCASE_IGNORE — comma-separated keys exempted from case checks

Every tool also accepts per-call case and ignore_keys fields that override the defaults.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oascase", Version: oascase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_schema_case",
		Description: "Check that every property name in an OpenAPI schema node conforms to a case convention. The schema is a single node (type/properties/items), not a full document; use check_document to sweep a whole spec. Reports the first violating key.",
	}, handleCheckSchemaCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_response_case",
		Description: "Check that every object key in a JSON response body conforms to a case convention. Reports the first violating key.",
	}, handleCheckResponseCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_document",
		Description: "Sweep every response schema in a full OpenAPI document (OAS 2 or 3, YAML or JSON) and check property-name casing. Stops at the first violation, reporting the route, method, and status where it occurred.",
	}, handleCheckDocument)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
