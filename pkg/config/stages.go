package config

import "time"

// StagePolicy is the execution policy for one pipeline stage.
type StagePolicy struct {
	// ChunkSize is the fan-out granularity: how many per-item tasks are
	// enqueued per scheduling round. Affects scheduling only; every
	// task still targets a single item.
	ChunkSize int `yaml:"chunk_size"`

	// MaxAttempts is the retry ceiling. After this many attempts the
	// task is dead-lettered and the stage marked failed.
	MaxAttempts int `yaml:"max_attempts"`

	// Timeout bounds a single task execution (provider call + overhead).
	Timeout time.Duration `yaml:"timeout"`

	// RetryBase is the backoff base delay; attempt n waits
	// RetryBase * 2^n ± 30% jitter, capped at RetryCap.
	RetryBase time.Duration `yaml:"retry_base"`
	RetryCap  time.Duration `yaml:"retry_cap"`

	// RateLimitedFreeRetries is how many rate_limited failures do not
	// count against MaxAttempts.
	RateLimitedFreeRetries int `yaml:"rate_limited_free_retries"`

	// MaxSessionConcurrency bounds in-flight tasks of this stage within
	// a single session, so one large menu cannot starve other sessions.
	MaxSessionConcurrency int `yaml:"max_session_concurrency"`
}

// StagesConfig holds per-stage policies keyed by stage name, plus the
// image-stage deferral window.
type StagesConfig struct {
	Policies map[string]StagePolicy `yaml:"policies"`

	// TranslateWait is how long the image stage waits for the item's
	// translation before proceeding with source text.
	TranslateWait time.Duration `yaml:"translate_wait"`
}

// Policy returns the policy for a stage, falling back to defaults.
func (c *StagesConfig) Policy(stage string) StagePolicy {
	if p, ok := c.Policies[stage]; ok {
		return p
	}
	return defaultTextStagePolicy()
}

func defaultTextStagePolicy() StagePolicy {
	return StagePolicy{
		ChunkSize:              8,
		MaxAttempts:            3,
		Timeout:                60 * time.Second,
		RetryBase:              time.Second,
		RetryCap:               30 * time.Second,
		RateLimitedFreeRetries: 2,
		MaxSessionConcurrency:  4,
	}
}

// DefaultStagesConfig returns the built-in stage defaults.
func DefaultStagesConfig() *StagesConfig {
	text := defaultTextStagePolicy()

	image := text
	image.ChunkSize = 3
	image.Timeout = 120 * time.Second
	image.MaxSessionConcurrency = 2

	scaffold := text
	scaffold.ChunkSize = 1
	scaffold.Timeout = 90 * time.Second

	return &StagesConfig{
		Policies: map[string]StagePolicy{
			"extract":     scaffold,
			"categorize":  scaffold,
			"translate":   text,
			"describe":    text,
			"allergens":   text,
			"ingredients": text,
			"image":       image,
		},
		TranslateWait: 20 * time.Second,
	}
}
