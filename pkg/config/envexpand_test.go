package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.ANTHROPIC_API_KEY}}",
			env:   map[string]string{"ANTHROPIC_API_KEY": "sk-test-123"},
			want:  "api_key_env: sk-test-123",
		},
		{
			name:  "literal ${VAR} is NOT expanded",
			input: "note: ${HOME}",
			env:   map[string]string{"HOME": "/root"},
			want:  "note: ${HOME}",
		},
		{
			name:  "literal dollar in value preserved",
			input: `budget_hint: "$120 per night"`,
			env:   map[string]string{},
			want:  `budget_hint: "$120 per night"`,
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "api.example.com",
				"PORT":     "443",
			},
			want: "base_url: https://api.example.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "no substitution when no variables",
			input: "listen_addr: :8080",
			env:   map[string]string{"UNUSED": "value"},
			want:  "listen_addr: :8080",
		},
		{
			name:  "variables in nested YAML structure",
			input: "system:\n  public_base_url: {{.BASE_URL}}",
			env:   map[string]string{"BASE_URL": "https://wanderplan.example.com"},
			want:  "system:\n  public_base_url: https://wanderplan.example.com",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.PASSWORD}}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax must pass through unchanged so the YAML parser
// handles the content or fails with a clearer message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed template", input: "api_key: {{.API_KEY"},
		{name: "only opening braces", input: "api_key: {{"},
		{name: "single closing brace", input: "api_key: {{.API_KEY}"},
		{name: "empty template", input: "api_key: {{}}"},
		{name: "undefined function", input: "api_key: {{.API_KEY | upper}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result), "malformed template should pass through unchanged")
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	// A malformed template inside a quoted string is still valid YAML.
	input := `
system:
  listen_addr: ":8080"
  public_base_url: "{{.BASE_URL"
`
	expanded := ExpandEnv([]byte(input))

	var result map[string]any
	err := yaml.Unmarshal(expanded, &result)
	assert.NoError(t, err)
	assert.NotNil(t, result["system"])
}
