package stages

import (
	"context"
	"errors"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// AllergensExecutor detects likely allergens for a dish.
type AllergensExecutor struct {
	*Deps
}

// Execute runs one allergen detection attempt.
func (e *AllergensExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
	return runItemStage(ctx, e.Deps, task, attempt, models.StageAllergens, e.detect)
}

func (e *AllergensExecutor) detect(ctx context.Context, item *services.ItemState) (map[string]any, map[string]any, bool, error) {
	if e.Caps.Allergens == nil {
		return nil, nil, false, providers.NewError("menu_intel", providers.KindPermanent,
			errors.New("allergen provider disabled"))
	}

	res, err := e.Caps.Allergens.DetectAllergens(ctx, itemName(item), item.Category)
	if err != nil {
		return nil, nil, false, err
	}

	entries := make([]map[string]any, 0, len(res.Entries))
	for _, entry := range res.Entries {
		m := map[string]any{"name": entry.Name}
		if entry.Severity != "" {
			m["severity"] = entry.Severity
		}
		if entry.Likelihood != "" {
			m["likelihood"] = entry.Likelihood
		}
		if entry.Source != "" {
			m["source"] = entry.Source
		}
		entries = append(entries, m)
	}

	return map[string]any{"allergen_entries": entries},
		map[string]any{"entries": entries, "confidence": res.Confidence}, false, nil
}

// Abandon records the terminal stage failure.
func (e *AllergensExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	abandonItemStage(ctx, e.Deps, task, attempt, models.StageAllergens, cause)
}
