package config

import "time"

// ProviderConfig holds per-provider client settings.
type ProviderConfig struct {
	// Enabled gates adapter construction. A disabled provider makes the
	// consuming stage take its fallback path.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Endpoint is the provider base URL (HTTP adapters) or address
	// (gRPC sidecar).
	Endpoint string `yaml:"endpoint,omitempty"`

	// APIKeyEnv names the environment variable carrying the credential.
	// The key itself never appears in YAML.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// RPS and Burst size the token bucket shared by all calls to this
	// provider from this process.
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`

	// Timeout is the hard per-call deadline.
	Timeout time.Duration `yaml:"timeout"`
}

// IsEnabled reports whether the provider is on (default true).
func (p ProviderConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// ProvidersConfig maps provider names to their settings.
//
// Known providers: "menu_intel" (gRPC sidecar: extract, categorize,
// describe, allergens, ingredients, image synthesis),
// "translate_primary", "translate_secondary", "image_search".
type ProvidersConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// Get returns the settings for a named provider, or zero-value defaults.
func (c *ProvidersConfig) Get(name string) ProviderConfig {
	if p, ok := c.Providers[name]; ok {
		return p
	}
	return ProviderConfig{RPS: 5, Burst: 5, Timeout: 30 * time.Second}
}

// DefaultProvidersConfig returns the built-in provider defaults.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		Providers: map[string]ProviderConfig{
			"menu_intel": {
				Endpoint: "localhost:50051",
				RPS:      10,
				Burst:    10,
				Timeout:  60 * time.Second,
			},
			"translate_primary": {
				Endpoint:  "https://api.translate.example/v2",
				APIKeyEnv: "TRANSLATE_PRIMARY_API_KEY",
				RPS:       10,
				Burst:     10,
				Timeout:   15 * time.Second,
			},
			"translate_secondary": {
				Endpoint:  "https://translate-fallback.example/v1",
				APIKeyEnv: "TRANSLATE_SECONDARY_API_KEY",
				RPS:       5,
				Burst:     5,
				Timeout:   15 * time.Second,
			},
			"image_search": {
				Endpoint:  "https://api.imagesearch.example/v1",
				APIKeyEnv: "IMAGE_SEARCH_API_KEY",
				RPS:       5,
				Burst:     5,
				Timeout:   20 * time.Second,
			},
		},
	}
}
