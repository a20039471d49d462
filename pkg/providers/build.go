package providers

import (
	"fmt"
	"log/slog"

	"github.com/kaiseki-io/kaiseki/pkg/config"
)

// Build wires the configured adapters into a Capabilities bundle.
// Disabled providers leave their fields nil; the consuming executors
// treat a nil capability as "take the fallback path". The returned
// close func releases the gRPC connection.
func Build(cfg *config.ProvidersConfig) (*Capabilities, func() error, error) {
	caps := &Capabilities{}
	closeFn := func() error { return nil }

	if pc := cfg.Get("menu_intel"); pc.IsEnabled() {
		intel, err := NewMenuIntelClient(pc)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build menu intel client: %w", err)
		}
		caps.Extractor = intel
		caps.Categorizer = intel
		caps.Describer = intel
		caps.Allergens = intel
		caps.Ingredients = intel
		caps.ImageSynth = intel
		closeFn = intel.Close
	} else {
		slog.Warn("Menu intel provider disabled; extract and categorize stages will fail sessions")
	}

	if pc := cfg.Get("translate_primary"); pc.IsEnabled() {
		caps.PrimaryTranslator = NewHTTPTranslator("translate_primary", pc)
	}
	if pc := cfg.Get("translate_secondary"); pc.IsEnabled() {
		caps.FallbackTranslator = NewHTTPTranslator("translate_secondary", pc)
	}
	if caps.PrimaryTranslator == nil && caps.FallbackTranslator == nil {
		slog.Warn("No translation provider enabled; items will carry source text unchanged")
	}

	if pc := cfg.Get("image_search"); pc.IsEnabled() {
		caps.ImageSearch = NewHTTPImageSearch(pc)
	}

	return caps, closeFn, nil
}
