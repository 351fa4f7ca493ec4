package mcpserver

import (
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oascase/casing"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Convention is the default case convention for all tools.
	Convention casing.Convention

	// IgnoredKeys are exempted from case checks by default.
	IgnoredKeys []string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Convention:  envConvention("OASCASE_CASE", casing.CamelCase),
		IgnoredKeys: envList("OASCASE_IGNORE"),
	}
}

func envConvention(key string, fallback casing.Convention) casing.Convention {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	c, err := casing.ParseConvention(v)
	if err != nil {
		slog.Warn("invalid case convention env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return c
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
