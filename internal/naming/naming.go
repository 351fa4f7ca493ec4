// Package naming provides shared string case conversion utilities.
//
// The conversions double as case-convention oracles: a key conforms to a
// convention exactly when converting it leaves it unchanged.
package naming

import (
	"strings"
	"unicode"
)

// separators recognized as word boundaries in incoming keys.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/'
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) are dropped and capitalize the
// next letter.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	capitalizeNext := true

	for _, r := range s {
		if isSeparator(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts a string to snake_case.
// Uppercase letters are prefixed with an underscore and lowercased; existing
// separators (hyphen, dot, slash) become underscores.
// Example: "UserProfile" -> "user_profile"
// Example: "api-client" -> "api_client"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case isSeparator(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ToKebabCase converts a string to kebab-case.
// Like snake_case but with hyphens instead of underscores.
// Example: "UserProfile" -> "user-profile"
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}
