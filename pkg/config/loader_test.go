package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kaiseki.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("missing file uses built-in defaults", func(t *testing.T) {
		cfg, err := Initialize(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Queue.DefaultConcurrency)
		assert.Equal(t, 200, cfg.Session.MaxItems)
		assert.Equal(t, 20*time.Second, cfg.Stages.TranslateWait)
		assert.Equal(t, 24*time.Hour, cfg.Retention.SessionRetention)
	})

	t.Run("user values override defaults", func(t *testing.T) {
		dir := writeConfig(t, `
queue:
  default_concurrency: 5
  concurrency:
    image: 1
session:
  max_items: 50
stages:
  translate_wait: 5s
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Queue.DefaultConcurrency)
		assert.Equal(t, 1, cfg.Queue.WorkerCount("image"))
		assert.Equal(t, 4, cfg.Queue.WorkerCount("translate"), "maps merge key-by-key")
		assert.Equal(t, 5, cfg.Queue.WorkerCount("unlisted"), "unknown queues fall back")
		assert.Equal(t, 50, cfg.Session.MaxItems)
		assert.Equal(t, 5*time.Second, cfg.Stages.TranslateWait)
	})

	t.Run("stage policy overrides merge with defaults", func(t *testing.T) {
		dir := writeConfig(t, `
stages:
  policies:
    translate:
      chunk_size: 2
      max_attempts: 5
      timeout: 30s
      retry_base: 1s
      retry_cap: 10s
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.StageConfig("translate").ChunkSize)
		assert.Equal(t, 5, cfg.StageConfig("translate").MaxAttempts)
		// Untouched stages keep their defaults.
		assert.Equal(t, 3, cfg.StageConfig("image").ChunkSize)
	})

	t.Run("environment references expand", func(t *testing.T) {
		t.Setenv("TEST_TRANSLATE_ENDPOINT", "https://translate.example.com")
		dir := writeConfig(t, `
providers:
  providers:
    translate_primary:
      enabled: true
      endpoint: ${TEST_TRANSLATE_ENDPOINT}
      rps: 5
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)
		assert.Equal(t, "https://translate.example.com", cfg.Providers.Get("translate_primary").Endpoint)
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		dir := writeConfig(t, "queue: [not a map")
		_, err := Initialize(dir)
		assert.Error(t, err)
	})

	t.Run("validation rejects zero concurrency", func(t *testing.T) {
		dir := writeConfig(t, `
queue:
  default_concurrency: 0
`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_concurrency")
	})

	t.Run("validation rejects bad stage policy", func(t *testing.T) {
		dir := writeConfig(t, `
stages:
  policies:
    translate:
      chunk_size: 0
      max_attempts: 3
      timeout: 10s
`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chunk_size")
	})

	t.Run("validation rejects enabled provider without rps", func(t *testing.T) {
		dir := writeConfig(t, `
providers:
  providers:
    translate_primary:
      enabled: true
      endpoint: https://example.com
`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rps")
	})
}
