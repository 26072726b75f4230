// Package config loads the YAML configuration directory, expands environment
// variables, merges built-in defaults, and validates the result into typed
// registries the rest of the service consumes.
package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application.
type Config struct {
	configDir string

	// System-wide infrastructure settings (listen address, WS origins,
	// event retention).
	System *SystemConfig

	// Trip-level defaults applied when a creation request omits them.
	Defaults *Defaults

	// Pipeline orchestration knobs (timeouts, retries, concurrency,
	// shutdown budget).
	Pipeline *PipelineConfig

	// Chat orchestration knobs (confidence threshold, transcript window).
	Chat *ChatConfig

	// Per-task worker overrides keyed by task type.
	Workers map[string]WorkerOverride

	// LLM provider registry (built-in + user-defined).
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration for startup logging.
type Stats struct {
	LLMProviders    int
	WorkerOverrides int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{WorkerOverrides: len(c.Workers)}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// Convenience wrapper over LLMProviderRegistry.Get.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// WorkerOverride tunes one worker task type beyond the pipeline defaults.
type WorkerOverride struct {
	// LLMProvider routes this task to a specific provider; empty uses
	// Defaults.LLMProvider.
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Timeout overrides Pipeline.WorkerTimeout for this task when positive.
	Timeout Duration `yaml:"timeout,omitempty"`
}
