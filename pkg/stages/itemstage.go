package stages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// stageCall runs one provider call for an item. It returns the columns
// to persist, the stage_completed event payload, and whether a fallback
// produced the result.
type stageCall func(ctx context.Context, item *services.ItemState) (result map[string]any, payload map[string]any, fallback bool, err error)

// runItemStage is the shared skeleton for the five per-item executors:
// cancellation checkpoint, guarded in_flight transition (which resolves
// duplicate deliveries), provider call, atomic completion.
func runItemStage(ctx context.Context, d *Deps, task *ent.Task, attempt int, stage models.Stage, call stageCall) error {
	if task.ItemIndex == nil {
		return fmt.Errorf("%s task %s has no item index", stage, task.ID)
	}
	itemIndex := *task.ItemIndex
	sessionID := task.SessionID

	// Cancellation checkpoint. The stage resolves to skipped so every
	// stage still reaches a terminal status.
	cancelled, err := d.Sessions.IsCancelRequested(ctx, sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Session hard-deleted under us; nothing left to do.
			return nil
		}
		return err
	}
	if cancelled {
		if _, err := d.Items.SkipStage(ctx, sessionID, itemIndex, stage); err != nil {
			return err
		}
		return nil
	}

	applied, err := d.Items.BeginStage(ctx, sessionID, itemIndex, stage, attempt)
	if err != nil {
		return err
	}
	if !applied {
		// Terminal already; duplicate deliveries ack without work. A
		// crash between the completion commit and the notifier call
		// still owes completion detection, so re-fire it here.
		status, _, err := d.Items.StageStatus(ctx, sessionID, itemIndex, stage)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return nil
			}
			return err
		}
		if status.Terminal() {
			d.Notifier.OnStageTerminal(ctx, sessionID, itemIndex, stage)
		}
		return nil
	}

	item, err := d.Items.GetItem(ctx, sessionID, itemIndex)
	if err != nil {
		return err
	}

	result, payload, fallback, err := call(ctx, item)
	if err != nil {
		return err
	}

	completed, err := d.Items.CompleteStage(ctx, sessionID, itemIndex, stage, attempt, result, payload, fallback)
	if err != nil {
		return err
	}
	if completed {
		d.Notifier.OnStageTerminal(ctx, sessionID, itemIndex, stage)
	}
	return nil
}

// abandonItemStage records the terminal failure for an item stage after
// the queue runtime gives up on the task.
func abandonItemStage(ctx context.Context, d *Deps, task *ent.Task, attempt int, stage models.Stage, cause error) {
	if task.ItemIndex == nil {
		return
	}
	applied, err := d.Items.FailStage(ctx, task.SessionID, *task.ItemIndex, stage, attempt, cause.Error())
	if err != nil {
		slog.Error("Failed to record stage failure",
			"session_id", task.SessionID, "item_index", *task.ItemIndex,
			"stage", stage, "error", err)
		return
	}
	if applied {
		d.Notifier.OnStageTerminal(ctx, task.SessionID, *task.ItemIndex, stage)
	}
}
