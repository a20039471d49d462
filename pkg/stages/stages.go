// Package stages implements the per-stage task executors. Each
// executor is idempotent under task redelivery: scaffold stages guard
// on session state, item stages on the guarded stage transitions in
// the item service.
package stages

import (
	"context"

	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/imagestore"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/queue"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// Notifier receives pipeline progress callbacks. Implemented by the
// orchestrator; executors call it after their own writes commit.
type Notifier interface {
	// OnExtractCompleted fires after extract succeeds; the orchestrator
	// enqueues categorize.
	OnExtractCompleted(ctx context.Context, sessionID string)

	// OnItemsMaterialized fires after categorize inserts the items; the
	// orchestrator fans out per-item tasks. Idempotent.
	OnItemsMaterialized(ctx context.Context, sessionID string, totalItems int)

	// OnStageTerminal fires after an (item, stage) reaches a terminal
	// status; the orchestrator runs completion detection and, for
	// translate, releases the item's image task.
	OnStageTerminal(ctx context.Context, sessionID string, itemIndex int, stage models.Stage)

	// FailSession force-fails a session (scaffold exhaustion, item cap).
	FailSession(ctx context.Context, sessionID, reason string)
}

// Deps bundles what every executor needs. Provider handles may be nil;
// executors treat a nil capability as a disabled provider.
type Deps struct {
	Sessions  *services.SessionService
	Items     *services.ItemService
	Events    *services.EventService
	Publisher *events.Publisher
	Caps      *providers.Capabilities
	Notifier  Notifier
	Cfg       *config.Config
	Images    imagestore.Store
}

// NewRegistry wires one executor per stage into the queue registry.
func NewRegistry(deps *Deps) queue.Registry {
	return queue.Registry{
		string(models.StageExtract):     &ExtractExecutor{deps},
		string(models.StageCategorize):  &CategorizeExecutor{deps},
		string(models.StageTranslate):   &TranslateExecutor{deps},
		string(models.StageDescribe):    &DescribeExecutor{deps},
		string(models.StageAllergens):   &AllergensExecutor{deps},
		string(models.StageIngredients): &IngredientsExecutor{deps},
		string(models.StageImage):       &ImageExecutor{deps},
	}
}
