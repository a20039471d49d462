// Package config loads and validates kaiseki configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and injected into every component at construction. There is no
// process-wide configuration state.
type Config struct {
	configDir string

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Per-stage execution policy (chunking, retries, timeouts)
	Stages *StagesConfig

	// External provider settings (endpoints, rate limits, enable flags)
	Providers *ProvidersConfig

	// Session limits (max items, pending capacity, session timeout)
	Session *SessionConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Event stream delivery
	Stream *StreamConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// StageConfig returns the policy for a named stage, falling back to the
// built-in defaults when the stage has no explicit section.
func (c *Config) StageConfig(stage string) StagePolicy {
	return c.Stages.Policy(stage)
}
