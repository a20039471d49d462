package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// kaisekiYAML mirrors the kaiseki.yaml file structure.
type kaisekiYAML struct {
	Queue     *QueueConfig     `yaml:"queue"`
	Stages    *StagesConfig    `yaml:"stages"`
	Providers *ProvidersConfig `yaml:"providers"`
	Session   *SessionConfig   `yaml:"session"`
	Retention *RetentionConfig `yaml:"retention"`
	Stream    *StreamConfig    `yaml:"stream"`
}

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. A missing kaiseki.yaml is not an error: the built-in
// defaults apply unchanged.
//
// Steps performed:
//  1. Read kaiseki.yaml from configDir (optional)
//  2. Expand ${VAR} environment references
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate the result
func Initialize(configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Queue:     DefaultQueueConfig(),
		Stages:    DefaultStagesConfig(),
		Providers: DefaultProvidersConfig(),
		Session:   DefaultSessionConfig(),
		Retention: DefaultRetentionConfig(),
		Stream:    DefaultStreamConfig(),
	}

	path := filepath.Join(configDir, "kaiseki.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No kaiseki.yaml found, using built-in defaults", "path", path)
			if err := cfg.validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	expanded := os.Expand(string(raw), func(key string) string {
		return os.Getenv(key)
	})

	var user kaisekiYAML
	if err := yaml.Unmarshal([]byte(expanded), &user); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// User values win over defaults; maps merge key-by-key.
	if err := mergeSection(cfg.Queue, user.Queue); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Stages, user.Stages); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Providers, user.Providers); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Session, user.Session); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Retention, user.Retention); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Stream, user.Stream); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

// mergeSection overlays user-provided values onto the defaults.
func mergeSection[T any](dst *T, src *T) error {
	if src == nil {
		return nil
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge configuration section: %w", err)
	}
	return nil
}

// validate rejects configurations that cannot run.
func (c *Config) validate() error {
	if c.Queue.DefaultConcurrency < 1 {
		return fmt.Errorf("queue.default_concurrency must be >= 1, got %d", c.Queue.DefaultConcurrency)
	}
	for queue, n := range c.Queue.Concurrency {
		if n < 1 {
			return fmt.Errorf("queue.concurrency.%s must be >= 1, got %d", queue, n)
		}
	}
	for stage, p := range c.Stages.Policies {
		if p.ChunkSize < 1 {
			return fmt.Errorf("stages.policies.%s.chunk_size must be >= 1, got %d", stage, p.ChunkSize)
		}
		if p.MaxAttempts < 1 {
			return fmt.Errorf("stages.policies.%s.max_attempts must be >= 1, got %d", stage, p.MaxAttempts)
		}
		if p.Timeout <= 0 {
			return fmt.Errorf("stages.policies.%s.timeout must be positive", stage)
		}
	}
	for name, p := range c.Providers.Providers {
		if p.IsEnabled() && p.RPS <= 0 {
			return fmt.Errorf("providers.%s.rps must be positive when enabled", name)
		}
	}
	if c.Session.MaxItems < 0 {
		return fmt.Errorf("session.max_items must be >= 0, got %d", c.Session.MaxItems)
	}
	if c.Stream.Heartbeat <= 0 {
		return fmt.Errorf("stream.heartbeat must be positive")
	}
	return nil
}
