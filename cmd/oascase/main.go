package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/erraggy/oascase"
	"github.com/erraggy/oascase/casing"
	"github.com/erraggy/oascase/httpvalidator"
	"github.com/erraggy/oascase/internal/mcpserver"
	"github.com/erraggy/oascase/validator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oascase v%s\n", oascase.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := handleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "response":
		if err := handleResponse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// caseFlags contains flags shared by the check and response commands
type caseFlags struct {
	caseName string
	ignore   string
}

func addCaseFlags(fs *flag.FlagSet) *caseFlags {
	flags := &caseFlags{}
	fs.StringVar(&flags.caseName, "case", "camelCase", "case convention: camelCase, snake_case, kebab-case, PascalCase")
	fs.StringVar(&flags.ignore, "ignore", "", "comma-separated keys exempted from the case check")
	return flags
}

func (f *caseFlags) convention() (casing.Convention, error) {
	return casing.ParseConvention(f.caseName)
}

func (f *caseFlags) ignoredKeys() []string {
	if f.ignore == "" {
		return nil
	}
	parts := strings.Split(f.ignore, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func setupCheckFlags() (*flag.FlagSet, *caseFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := addCaseFlags(fs)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oascase check [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Check property-name casing in every response schema of an OpenAPI document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oascase check openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oascase check --case snake_case --ignore legacyKey,oldKey openapi.yaml\n")
	}

	return fs, flags
}

func handleCheck(args []string) error {
	fs, flags := setupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one file path")
	}

	convention, err := flags.convention()
	if err != nil {
		return err
	}

	doc, err := httpvalidator.LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := []httpvalidator.Option{httpvalidator.WithConvention(convention)}
	if keys := flags.ignoredKeys(); len(keys) > 0 {
		opts = append(opts, httpvalidator.WithIgnoredKeys(keys...))
	}
	v, err := httpvalidator.New(doc, opts...)
	if err != nil {
		return err
	}

	checked, err := v.ValidateDocumentCase()
	if err != nil {
		return err
	}

	fmt.Printf("OK: %d response schema(s) conform to %s\n", checked, convention)
	return nil
}

func setupResponseFlags() (*flag.FlagSet, *caseFlags) {
	fs := flag.NewFlagSet("response", flag.ContinueOnError)
	flags := addCaseFlags(fs)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oascase response [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Check object-key casing in a JSON response payload.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oascase response payload.json\n")
		_, _ = fmt.Fprintf(output, "  oascase response --case PascalCase payload.json\n")
	}

	return fs, flags
}

func handleResponse(args []string) error {
	fs, flags := setupResponseFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("response command requires exactly one file path")
	}

	convention, err := flags.convention()
	if err != nil {
		return err
	}

	body, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	opts := []validator.Option{validator.WithConvention(convention)}
	if keys := flags.ignoredKeys(); len(keys) > 0 {
		opts = append(opts, validator.WithIgnoredKeys(keys...))
	}
	if err := validator.ValidateResponseCase(data, opts...); err != nil {
		return err
	}

	fmt.Printf("OK: payload keys conform to %s\n", convention)
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// commands known to the CLI, used for typo suggestions
var knownCommands = []string{"check", "response", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oascase - case-convention checks for API responses and OpenAPI schemas

Usage:
  oascase <command> [options]

Commands:
  check       Check property-name casing across an OpenAPI document's response schemas
  response    Check object-key casing in a JSON response payload
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oascase check openapi.yaml
  oascase check --case snake_case --ignore legacyKey openapi.yaml
  oascase response --case camelCase payload.json

Run 'oascase <command> --help' for more information on a command.`)
}
