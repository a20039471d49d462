package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tasks are polled, claimed, and processed.
type QueueConfig struct {
	// Concurrency is the worker count per named queue. Queues not listed
	// here fall back to DefaultConcurrency.
	Concurrency map[string]int `yaml:"concurrency"`

	// DefaultConcurrency is the pool size for queues without an explicit entry.
	DefaultConcurrency int `yaml:"default_concurrency"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// VisibilityTimeout is how long a claimed task may go without
	// completing before orphan detection returns it to the queue.
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks
	// and stuck sessions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// tasks to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// WorkerCount returns the pool size for a queue.
func (c *QueueConfig) WorkerCount(queue string) int {
	if n, ok := c.Concurrency[queue]; ok && n >= 1 {
		return n
	}
	return c.DefaultConcurrency
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Concurrency: map[string]int{
			"ocr":         2,
			"categorize":  2,
			"translate":   4,
			"describe":    4,
			"allergens":   4,
			"ingredients": 4,
			"image":       2,
		},
		DefaultConcurrency:      2,
		PollInterval:            500 * time.Millisecond,
		PollIntervalJitter:      250 * time.Millisecond,
		VisibilityTimeout:       3 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}
