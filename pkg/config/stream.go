package config

import "time"

// StreamConfig controls event stream delivery to clients.
type StreamConfig struct {
	// Heartbeat is the idle-keepalive interval on the NDJSON stream.
	Heartbeat time.Duration `yaml:"heartbeat"`

	// WriteTimeout bounds a single write to a slow client.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// AllowedWSOrigins restricts WebSocket upgrades; empty allows all
	// (development).
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultStreamConfig returns the built-in stream defaults.
func DefaultStreamConfig() *StreamConfig {
	return &StreamConfig{
		Heartbeat:    15 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
