package mcpserver

import (
	"fmt"

	"github.com/erraggy/oascase/casing"
	"github.com/erraggy/oascase/httpvalidator"
	"github.com/erraggy/oascase/validator"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// resolve decodes the document from whichever input was provided.
func (s specInput) resolve() (map[string]any, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got both)")
	case s.File != "":
		return httpvalidator.LoadDocument(s.File)
	case s.Content != "":
		return httpvalidator.ParseDocument([]byte(s.Content))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided (got neither)")
	}
}

// caseOptions translates the shared per-tool case fields into validator
// options, applying server defaults when a field is omitted.
func caseOptions(caseName string, ignoreKeys []string) ([]validator.Option, error) {
	convention := cfg.Convention
	if caseName != "" {
		var err error
		convention, err = casing.ParseConvention(caseName)
		if err != nil {
			return nil, err
		}
	}
	opts := []validator.Option{validator.WithConvention(convention)}
	if len(cfg.IgnoredKeys) > 0 {
		opts = append(opts, validator.WithIgnoredKeys(cfg.IgnoredKeys...))
	}
	if len(ignoreKeys) > 0 {
		opts = append(opts, validator.WithIgnoredKeys(ignoreKeys...))
	}
	return opts, nil
}

// documentOptions is the httpvalidator counterpart of caseOptions.
func documentOptions(caseName string, ignoreKeys []string) ([]httpvalidator.Option, error) {
	convention := cfg.Convention
	if caseName != "" {
		var err error
		convention, err = casing.ParseConvention(caseName)
		if err != nil {
			return nil, err
		}
	}
	opts := []httpvalidator.Option{httpvalidator.WithConvention(convention)}
	if len(cfg.IgnoredKeys) > 0 {
		opts = append(opts, httpvalidator.WithIgnoredKeys(cfg.IgnoredKeys...))
	}
	if len(ignoreKeys) > 0 {
		opts = append(opts, httpvalidator.WithIgnoredKeys(ignoreKeys...))
	}
	return opts, nil
}
