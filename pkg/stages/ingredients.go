package stages

import (
	"context"
	"errors"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// IngredientsExecutor detects the likely ingredients of a dish.
type IngredientsExecutor struct {
	*Deps
}

// Execute runs one ingredient detection attempt.
func (e *IngredientsExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
	return runItemStage(ctx, e.Deps, task, attempt, models.StageIngredients, e.detect)
}

func (e *IngredientsExecutor) detect(ctx context.Context, item *services.ItemState) (map[string]any, map[string]any, bool, error) {
	if e.Caps.Ingredients == nil {
		return nil, nil, false, providers.NewError("menu_intel", providers.KindPermanent,
			errors.New("ingredient provider disabled"))
	}

	res, err := e.Caps.Ingredients.DetectIngredients(ctx, itemName(item), item.Category)
	if err != nil {
		return nil, nil, false, err
	}

	entries := make([]map[string]any, 0, len(res.Ingredients))
	for _, entry := range res.Ingredients {
		m := map[string]any{"name": entry.Name}
		if entry.Role != "" {
			m["role"] = entry.Role
		}
		entries = append(entries, m)
	}

	return map[string]any{"ingredient_entries": entries},
		map[string]any{"ingredients": entries, "confidence": res.Confidence}, false, nil
}

// Abandon records the terminal stage failure.
func (e *IngredientsExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	abandonItemStage(ctx, e.Deps, task, attempt, models.StageIngredients, cause)
}
