package config

// Defaults contains system-wide default values applied when a creation
// request or worker dispatch doesn't specify its own.
type Defaults struct {
	// LLMProvider is the provider name used for all workers unless a
	// per-worker override routes elsewhere.
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// FallbackProviders are tried in order when the primary provider fails.
	FallbackProviders []string `yaml:"fallback_providers,omitempty"`

	// Currency is the itinerary-level currency for new trips, ISO 4217.
	Currency string `yaml:"currency,omitempty"`

	// Language is the content language for generated itineraries.
	Language string `yaml:"language,omitempty"`

	// Pacing is the default trip pacing: relaxed, moderate, or packed.
	Pacing string `yaml:"pacing,omitempty"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		LLMProvider: "anthropic-claude",
		Currency:    "USD",
		Language:    "en",
		Pacing:      "moderate",
	}
}
