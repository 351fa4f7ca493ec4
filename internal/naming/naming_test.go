package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		{name: "snake_case simple", input: "user_profile", want: "UserProfile"},
		{name: "snake_case three words", input: "get_user_by_id", want: "GetUserById"},
		{name: "leading underscore", input: "_private", want: "Private"},
		{name: "double underscore", input: "double__under", want: "DoubleUnder"},

		{name: "kebab-case simple", input: "api-client", want: "ApiClient"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "slash separator", input: "users/profile", want: "UsersProfile"},
		{name: "mixed separators", input: "get_user-by.id/name", want: "GetUserByIdName"},

		{name: "already PascalCase", input: "UserProfile", want: "UserProfile"},
		{name: "camelCase", input: "userProfile", want: "UserProfile"},
		{name: "all caps", input: "API", want: "API"},

		{name: "unicode lowercase", input: "über_user", want: "ÜberUser"},
		{name: "with numbers", input: "api_v2_client", want: "ApiV2Client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "snake_case", input: "user_profile", want: "userProfile"},
		{name: "PascalCase", input: "UserProfile", want: "userProfile"},
		{name: "already camelCase", input: "userProfile", want: "userProfile"},
		{name: "kebab-case", input: "api-client", want: "apiClient"},
		{name: "single word", input: "user", want: "user"},
		{name: "with digits", input: "address2", want: "address2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "PascalCase", input: "UserProfile", want: "user_profile"},
		{name: "camelCase", input: "userProfile", want: "user_profile"},
		{name: "already snake_case", input: "user_profile", want: "user_profile"},
		{name: "kebab-case", input: "api-client", want: "api_client"},
		{name: "dot separator", input: "com.example", want: "com_example"},
		{name: "with digits", input: "api_v2_client", want: "api_v2_client"},
		{name: "consecutive capitals", input: "APIClient", want: "a_p_i_client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input))
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "PascalCase", input: "UserProfile", want: "user-profile"},
		{name: "snake_case", input: "user_profile", want: "user-profile"},
		{name: "already kebab-case", input: "user-profile", want: "user-profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToKebabCase(tt.input))
		})
	}
}

// Round-trip fixed points: well-formed keys of each convention are unchanged
// by their own conversion. The casing package relies on this property.
func TestConversionFixedPoints(t *testing.T) {
	camel := []string{"", "user", "userProfile", "address2", "fooBarBaz"}
	for _, s := range camel {
		assert.Equal(t, s, ToCamelCase(s), "camelCase fixed point: %q", s)
	}

	snake := []string{"", "user", "user_profile", "api_v2_client"}
	for _, s := range snake {
		assert.Equal(t, s, ToSnakeCase(s), "snake_case fixed point: %q", s)
	}

	kebab := []string{"", "user", "user-profile", "api-v2-client"}
	for _, s := range kebab {
		assert.Equal(t, s, ToKebabCase(s), "kebab-case fixed point: %q", s)
	}

	pascal := []string{"", "User", "UserProfile", "FooBarBaz"}
	for _, s := range pascal {
		assert.Equal(t, s, ToPascalCase(s), "PascalCase fixed point: %q", s)
	}
}
