package stages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// CategorizeExecutor groups the extracted text into categories and
// materializes the item rows. It is the second scaffold stage; its
// write-once guard is total_items.
type CategorizeExecutor struct {
	*Deps
}

// Execute runs one categorize attempt.
func (e *CategorizeExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
	sessionID := task.SessionID

	session, err := e.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrGone) {
			return nil
		}
		return err
	}
	if session.CancelRequested {
		return nil
	}
	if session.TotalItems != nil {
		// Items already materialized; re-fire fan-out, which is
		// idempotent, in case the crash was between insert and enqueue.
		e.Notifier.OnItemsMaterialized(ctx, sessionID, *session.TotalItems)
		return nil
	}

	if _, err := e.Publisher.Publish(ctx, sessionID, events.KindCategorizeInFlight, nil); err != nil {
		return err
	}

	if e.Caps.Categorizer == nil {
		return providers.NewError("menu_intel", providers.KindPermanent,
			errors.New("categorize provider disabled"))
	}

	fullText, tokens, err := e.loadExtractOutput(ctx, sessionID)
	if err != nil {
		return err
	}

	categories, err := e.Caps.Categorizer.CategorizeMenu(ctx, fullText, tokens)
	if err != nil {
		return err
	}

	items := flattenCategories(categories, tokens)
	if max := e.Cfg.Session.MaxItems; max > 0 && len(items) > max {
		e.Notifier.FailSession(ctx, sessionID, "too_many_items")
		return nil
	}

	if _, err := e.Publisher.Publish(ctx, sessionID, events.KindCategorizeCompleted,
		categorizeCompletedPayload(categories)); err != nil {
		return err
	}

	applied, err := e.Items.MaterializeItems(ctx, sessionID, items)
	if err != nil {
		return err
	}
	if applied {
		slog.Info("Items materialized", "session_id", sessionID, "total_items", len(items))
	}

	e.Notifier.OnItemsMaterialized(ctx, sessionID, len(items))
	return nil
}

// Abandon fails the session: without items nothing can fan out.
func (e *CategorizeExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	_, err := e.Publisher.Publish(ctx, task.SessionID, events.KindCategorizeFailed,
		events.ScaffoldFailedPayload{Error: cause.Error(), Attempt: attempt})
	if err != nil {
		slog.Error("Failed to publish categorize failure", "session_id", task.SessionID, "error", err)
	}
	e.Notifier.FailSession(ctx, task.SessionID, fmt.Sprintf("categorize failed: %v", cause))
}

// loadExtractOutput reads the extract_completed event back from the
// durable log. The log is the handoff between scaffold stages; it
// survives pod changes between extract and categorize.
func (e *CategorizeExecutor) loadExtractOutput(ctx context.Context, sessionID string) (string, []providers.Token, error) {
	payload, err := e.Events.LatestOfKind(ctx, sessionID, events.KindExtractCompleted)
	if err != nil {
		return "", nil, fmt.Errorf("extract output unavailable for session %s: %w", sessionID, err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to re-marshal extract payload: %w", err)
	}
	var decoded events.ExtractCompletedPayload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", nil, fmt.Errorf("failed to decode extract payload: %w", err)
	}

	tokens := make([]providers.Token, 0, len(decoded.Tokens))
	for _, tp := range decoded.Tokens {
		t := providers.Token{Text: tp.Text}
		for i, c := range tp.Box {
			t.Box[i] = providers.Point{X: c[0], Y: c[1]}
		}
		tokens = append(tokens, t)
	}
	return decoded.FullText, tokens, nil
}

// flattenCategories turns the category grouping into indexed item
// skeletons, attaching a bounding box when a recognized token matches
// the item's source text.
func flattenCategories(categories []providers.Category, tokens []providers.Token) []models.NewItem {
	var items []models.NewItem
	for _, cat := range categories {
		for _, ci := range cat.Items {
			item := models.NewItem{
				Index:      len(items),
				SourceText: ci.Name,
				Category:   cat.Name,
				Price:      ci.Price,
			}
			if box, ok := matchTokenBox(ci.Name, tokens); ok {
				item.Box = box
			}
			items = append(items, item)
		}
	}
	return items
}

// matchTokenBox finds the box of the first token whose text matches or
// contains the item name. Menus repeat fragments, so this is best
// effort; an unmatched item just has no overlay box.
func matchTokenBox(name string, tokens []providers.Token) ([][2]int, bool) {
	for _, t := range tokens {
		if t.Text == name || strings.Contains(t.Text, name) {
			box := make([][2]int, 0, len(t.Box))
			for _, p := range t.Box {
				box = append(box, [2]int{p.X, p.Y})
			}
			return box, true
		}
	}
	return nil, false
}

func categorizeCompletedPayload(categories []providers.Category) events.CategorizeCompletedPayload {
	payload := events.CategorizeCompletedPayload{
		Categories: make([]events.CategoryPayload, 0, len(categories)),
	}
	for _, cat := range categories {
		cp := events.CategoryPayload{Name: cat.Name}
		for _, ci := range cat.Items {
			cp.Items = append(cp.Items, events.CategoryItemSketch{Name: ci.Name, Price: ci.Price})
		}
		payload.Categories = append(payload.Categories, cp)
	}
	return payload
}
