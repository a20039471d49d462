package stages

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// TranslateExecutor produces the English name for an item.
//
// Fallback chain: primary translator, then secondary, then identity.
// Identity (source text echoed, fallback_used=true) applies when no
// translator is configured, when every configured translator fails
// permanently, or when retries are exhausted. Translate therefore
// never leaves a stage failed.
type TranslateExecutor struct {
	*Deps
}

const (
	sourceLang = "ja"
	targetLang = "en"
)

// Execute runs one translate attempt.
func (e *TranslateExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
	return runItemStage(ctx, e.Deps, task, attempt, models.StageTranslate, e.translate)
}

func (e *TranslateExecutor) translate(ctx context.Context, item *services.ItemState) (map[string]any, map[string]any, bool, error) {
	var lastErr error
	retryable := false

	for _, tr := range []providers.Translator{e.Caps.PrimaryTranslator, e.Caps.FallbackTranslator} {
		if tr == nil {
			continue
		}
		res, err := tr.Translate(ctx, item.SourceText, sourceLang, targetLang)
		if err == nil {
			return map[string]any{"english_text": res.Text, "fallback_used": false},
				map[string]any{"english_text": res.Text}, false, nil
		}
		lastErr = err
		if providers.Retryable(err) {
			retryable = true
		}
	}

	if lastErr != nil && retryable {
		return nil, nil, false, lastErr
	}

	// Identity fallback: no translator available or all failed
	// permanently. The item still completes with its source text.
	if lastErr != nil {
		slog.Warn("Translation fell back to identity", "error", lastErr)
	}
	return map[string]any{"english_text": item.SourceText, "fallback_used": true},
		map[string]any{"english_text": item.SourceText}, true, nil
}

// Abandon applies the identity fallback instead of failing: exhausted
// retries terminate the chain at its last link.
func (e *TranslateExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	if task.ItemIndex == nil {
		return
	}
	item, err := e.Items.GetItem(ctx, task.SessionID, *task.ItemIndex)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Error("Failed to load item for identity fallback",
				"session_id", task.SessionID, "item_index", *task.ItemIndex, "error", err)
		}
		return
	}

	completed, err := e.Items.CompleteStage(ctx, task.SessionID, *task.ItemIndex,
		models.StageTranslate, attempt,
		map[string]any{"english_text": item.SourceText, "fallback_used": true},
		map[string]any{"english_text": item.SourceText}, true)
	if err != nil {
		slog.Error("Failed to apply identity fallback",
			"session_id", task.SessionID, "item_index", *task.ItemIndex, "error", err)
		return
	}
	if completed {
		e.Notifier.OnStageTerminal(ctx, task.SessionID, *task.ItemIndex, models.StageTranslate)
	}
}
