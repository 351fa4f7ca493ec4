package httpvalidator

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// LoadDocument reads and decodes an OpenAPI document from a YAML or JSON file.
//
// Mapping keys are normalized to strings throughout the returned tree, since
// YAML authors commonly write response status codes as bare integers
// (`200:` rather than `"200":`).
func LoadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes an OpenAPI document from YAML or JSON bytes.
// JSON is a subset of YAML, so both formats go through the same decoder.
func ParseDocument(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	doc, ok := normalizeValue(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoding document: root is not a mapping")
	}
	return doc, nil
}

// normalizeValue rewrites a decoded YAML tree so every mapping is a
// map[string]any. Non-string keys (integer status codes in particular) are
// rendered with fmt.Sprint.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = normalizeValue(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[fmt.Sprint(key)] = normalizeValue(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = normalizeValue(child)
		}
		return out
	default:
		return value
	}
}
