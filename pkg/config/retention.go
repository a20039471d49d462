package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// SessionRetention is how long terminal sessions remain queryable
	// before soft-deletion (the stream endpoint answers 410 afterwards).
	SessionRetention time.Duration `yaml:"session_retention"`

	// DeleteGrace is how long a soft-deleted session lingers before the
	// hard delete removes it and everything cascading from it.
	DeleteGrace time.Duration `yaml:"delete_grace"`

	// EventTTL is the maximum age of orphaned event rows before
	// deletion. Session-scoped cascade handles the normal case; this is
	// a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetention: 24 * time.Hour,
		DeleteGrace:      24 * time.Hour,
		EventTTL:         48 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}
