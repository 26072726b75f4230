package config

import (
	"fmt"
	"log/slog"
	"os"
)

// knownTaskTypes are the worker task types a workers: override may target.
// Kept as strings so config does not depend on the worker package.
var knownTaskTypes = map[string]bool{
	"create":               true,
	"populate-attractions": true,
	"populate-meals":       true,
	"populate-transport":   true,
	"enrich":               true,
	"estimate-cost":        true,
	"edit":                 true,
	"explain":              true,
	"book":                 true,
}

var validPacings = map[string]bool{
	"relaxed": true, "moderate": true, "packed": true,
}

// ConfigValidator validates configuration comprehensively with clear error
// messages.
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first
// error). Providers are validated before the components that reference them.
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateChat(); err != nil {
		return fmt.Errorf("chat validation failed: %w", err)
	}

	if err := v.validateWorkers(); err != nil {
		return fmt.Errorf("worker override validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Type == LLMProviderTypeNoop {
			continue
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.APIKeyEnv == "" {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
		// Missing key is a warning, not an error: only providers actually
		// dispatched to need credentials at runtime.
		if os.Getenv(provider.APIKeyEnv) == "" {
			slog.Warn("LLM provider API key environment variable is not set",
				"provider", name, "env", provider.APIKeyEnv)
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if d.LLMProvider == "" {
		return NewValidationError("defaults", "defaults", "llm_provider", ErrMissingRequiredField)
	}
	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider",
			fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, d.LLMProvider))
	}
	for _, name := range d.FallbackProviders {
		if !v.cfg.LLMProviderRegistry.Has(name) {
			return NewValidationError("defaults", "defaults", "fallback_providers",
				fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, name))
		}
	}
	if d.Pacing != "" && !validPacings[d.Pacing] {
		return NewValidationError("defaults", "defaults", "pacing",
			fmt.Errorf("%w: %s", ErrInvalidValue, d.Pacing))
	}

	return nil
}

func (v *ConfigValidator) validatePipeline() error {
	p := v.cfg.Pipeline

	if p.MaxConcurrentGenerations < 1 {
		return NewValidationError("pipeline", "pipeline", "max_concurrent_generations",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if p.WorkerTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "worker_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.WorkerRetries < 0 {
		return NewValidationError("pipeline", "pipeline", "worker_retries",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if p.RetryInterval <= 0 {
		return NewValidationError("pipeline", "pipeline", "retry_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.GracefulShutdownTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "graceful_shutdown_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateChat() error {
	c := v.cfg.Chat

	if c.ConfidenceThreshold <= 0 || c.ConfidenceThreshold > 1 {
		return NewValidationError("chat", "chat", "confidence_threshold",
			fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
	}
	if c.TranscriptWindow < 1 {
		return NewValidationError("chat", "chat", "transcript_window",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateWorkers() error {
	for task, override := range v.cfg.Workers {
		if !knownTaskTypes[task] {
			return NewValidationError("worker", task, "",
				fmt.Errorf("%w: unknown task type", ErrInvalidValue))
		}
		if override.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(override.LLMProvider) {
			return NewValidationError("worker", task, "llm_provider",
				fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, override.LLMProvider))
		}
		if override.Timeout < 0 {
			return NewValidationError("worker", task, "timeout",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}
	}

	return nil
}

// A zero cleanup interval would spin the cleanup loop.
func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.System.Retention
	if r == nil {
		return nil
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "retention", "cleanup_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "retention", "event_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
