package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// PublicBaseURL is the externally reachable base URL, used in links
	// embedded in responses.
	PublicBaseURL string `yaml:"public_base_url,omitempty"`

	// AllowedWSOrigins are additional WebSocket origin patterns accepted
	// beyond the request host.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`

	// Retention controls the event replay buffer cleanup.
	Retention *RetentionConfig `yaml:"retention,omitempty"`
}

// RetentionConfig controls event replay buffer retention.
type RetentionConfig struct {
	// EventTTL is the maximum age of replay buffer rows before the sweep
	// deletes them regardless of itinerary state.
	EventTTL Duration `yaml:"event_ttl"`

	// CompletedGrace is how long events are kept after an itinerary reaches
	// a terminal status, giving reconnecting subscribers time to catch up.
	CompletedGrace Duration `yaml:"completed_grace"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        Duration(24 * time.Hour),
		CompletedGrace:  Duration(10 * time.Minute),
		CleanupInterval: Duration(1 * time.Hour),
	}
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		ListenAddr: ":8080",
		Retention:  DefaultRetentionConfig(),
	}
}

// Duration is a time.Duration that unmarshals from YAML strings like "90s"
// or "5m" as well as integer nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var asInt int64
	if err := value.Decode(&asInt); err == nil {
		*d = Duration(asInt)
		return nil
	}

	var asString string
	if err := value.Decode(&asString); err != nil {
		return fmt.Errorf("%w: duration must be a string or integer", ErrInvalidValue)
	}
	parsed, err := time.ParseDuration(asString)
	if err != nil {
		return fmt.Errorf("%w: %q is not a duration", ErrInvalidValue, asString)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
