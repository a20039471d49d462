package stages

import (
	"context"
	"errors"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// DescribeExecutor writes a short description of the dish. Depends
// only on items_materialized: when the English name is not ready yet
// the source text is used.
type DescribeExecutor struct {
	*Deps
}

// Execute runs one describe attempt.
func (e *DescribeExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
	return runItemStage(ctx, e.Deps, task, attempt, models.StageDescribe, e.describe)
}

func (e *DescribeExecutor) describe(ctx context.Context, item *services.ItemState) (map[string]any, map[string]any, bool, error) {
	if e.Caps.Describer == nil {
		return nil, nil, false, providers.NewError("menu_intel", providers.KindPermanent,
			errors.New("describe provider disabled"))
	}

	res, err := e.Caps.Describer.Describe(ctx, itemName(item), item.Category)
	if err != nil {
		return nil, nil, false, err
	}
	return map[string]any{"description": res.Description},
		map[string]any{"description": res.Description}, false, nil
}

// Abandon records the terminal stage failure.
func (e *DescribeExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	abandonItemStage(ctx, e.Deps, task, attempt, models.StageDescribe, cause)
}

// itemName prefers the English name once translate has landed.
func itemName(item *services.ItemState) string {
	if item.EnglishText != "" {
		return item.EnglishText
	}
	return item.SourceText
}
