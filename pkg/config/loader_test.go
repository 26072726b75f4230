package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir lays out a temp config directory with the given files.
func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestInitialize_MinimalConfig(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "defaults:\n  llm_provider: offline\n",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in defaults fill everything the file omits.
	assert.Equal(t, ":8080", cfg.System.ListenAddr)
	assert.Equal(t, "offline", cfg.Defaults.LLMProvider)
	assert.Equal(t, "USD", cfg.Defaults.Currency)
	assert.Equal(t, 4, cfg.Pipeline.MaxConcurrentGenerations)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.WorkerTimeout.Std())
	assert.Equal(t, 0.6, cfg.Chat.ConfidenceThreshold)
	assert.Equal(t, 24*time.Hour, cfg.System.Retention.EventTTL.Std())

	// Built-in providers are registered.
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic-claude"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-gpt"))
	assert.True(t, cfg.LLMProviderRegistry.Has("offline"))
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": `
system:
  listen_addr: ":9090"
  allowed_ws_origins: ["https://app.example.com"]
  retention:
    event_ttl: 2h
    completed_grace: 5m
    cleanup_interval: 30m
defaults:
  llm_provider: offline
  currency: EUR
  pacing: relaxed
pipeline:
  max_concurrent_generations: 2
  worker_timeout: 90s
chat:
  confidence_threshold: 0.7
workers:
  enrich:
    timeout: 5m
`,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.System.ListenAddr)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.System.AllowedWSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.System.Retention.EventTTL.Std())
	assert.Equal(t, 30*time.Minute, cfg.System.Retention.CleanupInterval.Std())
	assert.Equal(t, "EUR", cfg.Defaults.Currency)
	assert.Equal(t, "relaxed", cfg.Defaults.Pacing)
	assert.Equal(t, 2, cfg.Pipeline.MaxConcurrentGenerations)
	assert.Equal(t, 90*time.Second, cfg.Pipeline.WorkerTimeout.Std())
	// Unset pipeline fields keep their defaults through the merge.
	assert.Equal(t, 2, cfg.Pipeline.WorkerRetries)
	assert.Equal(t, 0.7, cfg.Chat.ConfidenceThreshold)
	assert.Equal(t, 20, cfg.Chat.TranscriptWindow)
	assert.Equal(t, 5*time.Minute, cfg.Workers["enrich"].Timeout.Std())
}

func TestInitialize_CustomProvider(t *testing.T) {
	t.Setenv("MY_KEY", "sk-123")

	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "defaults:\n  llm_provider: my-claude\n",
		"llm-providers.yaml": `
llm_providers:
  my-claude:
    type: anthropic
    model: claude-sonnet-4-5
    api_key_env: MY_KEY
    max_output_tokens: 8192
`,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	provider, err := cfg.GetLLMProvider("my-claude")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeAnthropic, provider.Type)
	assert.Equal(t, 8192, provider.MaxOutputTokens)

	// Built-ins survive alongside user entries.
	assert.True(t, cfg.LLMProviderRegistry.Has("offline"))

	assert.Equal(t, Stats{LLMProviders: 4, WorkerOverrides: 0}, cfg.Stats())
}

func TestInitialize_UserProviderOverridesBuiltin(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "defaults:\n  llm_provider: offline\n",
		"llm-providers.yaml": `
llm_providers:
  anthropic-claude:
    type: anthropic
    model: claude-opus-4-5
    api_key_env: ANTHROPIC_API_KEY
`,
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	provider, err := cfg.GetLLMProvider("anthropic-claude")
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5", provider.Model)
}

func TestInitialize_EnvExpansionInYAML(t *testing.T) {
	t.Setenv("WANDERPLAN_ADDR", ":7070")

	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "system:\n  listen_addr: \"{{.WANDERPLAN_ADDR}}\"\ndefaults:\n  llm_provider: offline\n",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.System.ListenAddr)
}

func TestInitialize_MissingMainFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "wanderplan.yaml", loadErr.File)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "defaults:\n  llm_provider: offline\n   bad: indent\n",
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailureSurfaces(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "defaults:\n  llm_provider: no-such-provider\n",
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestDuration_UnmarshalForms(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		// Integer nanoseconds and duration strings both parse.
		"wanderplan.yaml": "defaults:\n  llm_provider: offline\npipeline:\n  worker_timeout: 60000000000\n  retry_interval: 250ms\n",
	})

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Pipeline.WorkerTimeout.Std())
	assert.Equal(t, 250*time.Millisecond, cfg.Pipeline.RetryInterval.Std())
}

func TestDuration_RejectsGarbage(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"wanderplan.yaml": "pipeline:\n  worker_timeout: soon\n",
	})

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}
