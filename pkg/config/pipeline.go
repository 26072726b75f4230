package config

import "time"

// PipelineConfig contains generation pipeline configuration. These values
// control how many generations run at once and how individual workers are
// timed out and retried.
type PipelineConfig struct {
	// MaxConcurrentGenerations is the number of itinerary generations this
	// replica will run at once; creation requests beyond it still succeed
	// but their pipeline start is queued.
	MaxConcurrentGenerations int `yaml:"max_concurrent_generations"`

	// WorkerTimeout is the maximum duration of a single worker attempt.
	WorkerTimeout Duration `yaml:"worker_timeout"`

	// WorkerRetries is how many times a transiently failing worker is
	// retried before its phase handles the failure.
	WorkerRetries int `yaml:"worker_retries"`

	// RetryInterval is the initial backoff interval between worker retries.
	RetryInterval Duration `yaml:"retry_interval"`

	// GracefulShutdownTimeout is the max time to wait for running
	// generations to complete during shutdown.
	GracefulShutdownTimeout Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxConcurrentGenerations: 4,
		WorkerTimeout:            Duration(2 * time.Minute),
		WorkerRetries:            2,
		RetryInterval:            Duration(500 * time.Millisecond),
		GracefulShutdownTimeout:  Duration(5 * time.Minute),
	}
}

// ChatConfig contains chat orchestration configuration.
type ChatConfig struct {
	// ConfidenceThreshold below which intent classification asks the
	// traveller to clarify instead of dispatching a worker.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// TranscriptWindow is how many prior turns feed node-reference
	// recency ranking.
	TranscriptWindow int `yaml:"transcript_window"`
}

// DefaultChatConfig returns the built-in chat defaults.
func DefaultChatConfig() *ChatConfig {
	return &ChatConfig{
		ConfidenceThreshold: 0.6,
		TranscriptWindow:    20,
	}
}
