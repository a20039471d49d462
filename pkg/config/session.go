package config

import "time"

// SessionConfig bounds individual sessions and overall intake.
type SessionConfig struct {
	// MaxItems caps the item count a categorize result may produce.
	// Exceeding it fails the session with reason "too_many_items".
	MaxItems int `yaml:"max_items"`

	// MaxUploadBytes caps the uploaded image size (413 beyond this).
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// MaxPendingSessions is the intake capacity gate: uploads are
	// rejected with 503 while this many sessions await processing.
	MaxPendingSessions int `yaml:"max_pending_sessions"`

	// Timeout is the per-session upper bound; a session still running
	// after this long is force-failed.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultSessionConfig returns the built-in session defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		MaxItems:           200,
		MaxUploadBytes:     10 << 20,
		MaxPendingSessions: 100,
		Timeout:            30 * time.Minute,
	}
}
