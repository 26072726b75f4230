package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds an in-memory config that passes validation;
// tests mutate it to exercise individual rules.
func validTestConfig() *Config {
	return &Config{
		System:   DefaultSystemConfig(),
		Defaults: &Defaults{LLMProvider: "offline", Pacing: "moderate"},
		Pipeline: DefaultPipelineConfig(),
		Chat:     DefaultChatConfig(),
		Workers:  map[string]WorkerOverride{},
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"offline": {Type: LLMProviderTypeNoop},
			"claude": {
				Type:      LLMProviderTypeAnthropic,
				Model:     "claude-sonnet-4-5",
				APIKeyEnv: "ANTHROPIC_API_KEY",
			},
		}),
	}
}

func TestValidator_ValidConfigPasses(t *testing.T) {
	require.NoError(t, NewValidator(validTestConfig()).ValidateAll())
}

func TestValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name: "provider with invalid type",
			mutate: func(c *Config) {
				c.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"offline": {Type: LLMProviderTypeNoop},
					"bad":     {Type: "vertexai", Model: "gemini"},
				})
			},
			wantMsg: "llm_provider 'bad'",
		},
		{
			name: "provider missing model",
			mutate: func(c *Config) {
				c.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"offline": {Type: LLMProviderTypeNoop},
					"bad":     {Type: LLMProviderTypeOpenAI, APIKeyEnv: "OPENAI_API_KEY"},
				})
			},
			wantMsg: "field 'model'",
		},
		{
			name: "provider missing api_key_env",
			mutate: func(c *Config) {
				c.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"offline": {Type: LLMProviderTypeNoop},
					"bad":     {Type: LLMProviderTypeOpenAI, Model: "gpt-5"},
				})
			},
			wantMsg: "field 'api_key_env'",
		},
		{
			name:    "default provider unknown",
			mutate:  func(c *Config) { c.Defaults.LLMProvider = "missing" },
			wantMsg: "provider 'missing' not found",
		},
		{
			name:    "fallback provider unknown",
			mutate:  func(c *Config) { c.Defaults.FallbackProviders = []string{"missing"} },
			wantMsg: "fallback_providers",
		},
		{
			name:    "invalid pacing",
			mutate:  func(c *Config) { c.Defaults.Pacing = "frantic" },
			wantMsg: "pacing",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Pipeline.MaxConcurrentGenerations = 0 },
			wantMsg: "max_concurrent_generations",
		},
		{
			name:    "negative worker retries",
			mutate:  func(c *Config) { c.Pipeline.WorkerRetries = -1 },
			wantMsg: "worker_retries",
		},
		{
			name:    "zero worker timeout",
			mutate:  func(c *Config) { c.Pipeline.WorkerTimeout = 0 },
			wantMsg: "worker_timeout",
		},
		{
			name:    "confidence threshold above one",
			mutate:  func(c *Config) { c.Chat.ConfidenceThreshold = 1.5 },
			wantMsg: "confidence_threshold",
		},
		{
			name:    "zero transcript window",
			mutate:  func(c *Config) { c.Chat.TranscriptWindow = 0 },
			wantMsg: "transcript_window",
		},
		{
			name: "unknown worker task type",
			mutate: func(c *Config) {
				c.Workers = map[string]WorkerOverride{"summarize": {}}
			},
			wantMsg: "unknown task type",
		},
		{
			name: "worker override references unknown provider",
			mutate: func(c *Config) {
				c.Workers = map[string]WorkerOverride{"enrich": {LLMProvider: "missing"}}
			},
			wantMsg: "worker 'enrich'",
		},
		{
			name: "zero retention cleanup interval",
			mutate: func(c *Config) {
				c.System.Retention = &RetentionConfig{
					EventTTL:        Duration(time.Hour),
					CleanupInterval: 0,
				}
			},
			wantMsg: "cleanup_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidator_WorkerOverridesAccepted(t *testing.T) {
	cfg := validTestConfig()
	cfg.Workers = map[string]WorkerOverride{
		"enrich":        {LLMProvider: "claude", Timeout: Duration(5 * time.Minute)},
		"estimate-cost": {Timeout: Duration(30 * time.Second)},
	}

	require.NoError(t, NewValidator(cfg).ValidateAll())
	assert.Equal(t, Stats{LLMProviders: 2, WorkerOverrides: 2}, cfg.Stats())
}

func TestLLMProviderRegistry(t *testing.T) {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"offline": {Type: LLMProviderTypeNoop},
	})

	got, err := registry.Get("offline")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeNoop, got.Type)

	_, err = registry.Get("missing")
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)

	assert.True(t, registry.Has("offline"))
	assert.False(t, registry.Has("missing"))
	assert.Equal(t, 1, registry.Len())

	// GetAll returns a copy: mutating it must not affect the registry.
	all := registry.GetAll()
	delete(all, "offline")
	assert.True(t, registry.Has("offline"))
}
