package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WanderplanYAMLConfig represents the complete wanderplan.yaml file structure.
type WanderplanYAMLConfig struct {
	System   *SystemConfig             `yaml:"system"`
	Defaults *Defaults                 `yaml:"defaults"`
	Pipeline *PipelineConfig           `yaml:"pipeline"`
	Chat     *ChatConfig               `yaml:"chat"`
	Workers  map[string]WorkerOverride `yaml:"workers"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file
// structure.
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined providers
//  5. Merge user pipeline/chat settings over defaults
//  6. Build the provider registry
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"worker_overrides", stats.WorkerOverrides)

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load wanderplan.yaml (system, defaults, pipeline, chat, workers)
	mainConfig, err := loader.loadWanderplanYAML()
	if err != nil {
		return nil, NewLoadError("wanderplan.yaml", err)
	}

	// 2. Load llm-providers.yaml; absence means built-ins only
	userProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Merge built-in + user-defined providers (user overrides built-in)
	builtin := GetBuiltinConfig()
	providers := mergeLLMProviders(builtin.LLMProviders, userProviders)

	// 4. Merge user settings over built-in defaults so unset fields keep
	// their default values
	system := DefaultSystemConfig()
	if mainConfig.System != nil {
		if err := mergo.Merge(system, mainConfig.System, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge system config: %w", err)
		}
	}
	if system.Retention == nil {
		system.Retention = DefaultRetentionConfig()
	}

	defaults := DefaultDefaults()
	if mainConfig.Defaults != nil {
		if err := mergo.Merge(defaults, mainConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	pipeline := DefaultPipelineConfig()
	if mainConfig.Pipeline != nil {
		if err := mergo.Merge(pipeline, mainConfig.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}

	chat := DefaultChatConfig()
	if mainConfig.Chat != nil {
		if err := mergo.Merge(chat, mainConfig.Chat, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge chat config: %w", err)
		}
	}

	return &Config{
		configDir:           configDir,
		System:              system,
		Defaults:            defaults,
		Pipeline:            pipeline,
		Chat:                chat,
		Workers:             mainConfig.Workers,
		LLMProviderRegistry: NewLLMProviderRegistry(providers),
	}, nil
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

// loadYAML reads, env-expands, and parses one config file. optional files
// that do not exist leave target untouched.
func (l *configLoader) loadYAML(filename string, target any, optional bool) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if optional {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadWanderplanYAML() (*WanderplanYAMLConfig, error) {
	config := WanderplanYAMLConfig{
		Workers: make(map[string]WorkerOverride),
	}

	if err := l.loadYAML("wanderplan.yaml", &config, false); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	config := LLMProvidersYAMLConfig{
		LLMProviders: make(map[string]LLMProviderConfig),
	}

	if err := l.loadYAML("llm-providers.yaml", &config, true); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}
