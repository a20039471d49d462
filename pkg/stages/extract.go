package stages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// ExtractExecutor recognizes text in the uploaded menu photo. It is a
// scaffold stage: exhausting its retries fails the whole session.
//
// Idempotency guard is the pending → processing session transition,
// which commits in the same transaction as the extract_completed event.
// A redelivered task that finds the session processing knows the output
// is in the log and only the categorize handoff can be missing, so it
// re-fires the handoff instead of re-running recognition.
type ExtractExecutor struct {
	*Deps
}

// Execute runs one extract attempt.
func (e *ExtractExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
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
	if session.Status != menusession.StatusPending {
		if session.Status == menusession.StatusProcessing {
			e.Notifier.OnExtractCompleted(ctx, sessionID)
		}
		return nil
	}

	if _, err := e.Publisher.Publish(ctx, sessionID, events.KindExtractInFlight, nil); err != nil {
		return err
	}

	if e.Caps.Extractor == nil {
		return providers.NewError("menu_intel", providers.KindPermanent,
			errors.New("text extraction provider disabled"))
	}

	data, _, err := e.Images.Get(ctx, session.UploadRef)
	if err != nil {
		// The upload is gone; no retry can bring it back.
		return providers.NewError("imagestore", providers.KindPermanent,
			fmt.Errorf("failed to load upload %s: %w", session.UploadRef, err))
	}

	result, err := e.Caps.Extractor.ExtractText(ctx, data)
	if err != nil {
		return err
	}

	payload := events.ExtractCompletedPayload{
		Tokens:   make([]events.TokenPayload, 0, len(result.Tokens)),
		FullText: result.FullText,
	}
	for _, t := range result.Tokens {
		payload.Tokens = append(payload.Tokens, tokenPayload(t))
	}

	applied, err := e.Sessions.MarkProcessing(ctx, sessionID, events.KindExtractCompleted, payload)
	if err != nil {
		return err
	}
	if !applied {
		// Lost the race to a concurrent delivery whose transition
		// carries the event; its handoff (or the next redelivery) takes
		// it from here.
		return nil
	}

	slog.Info("Extract completed", "session_id", sessionID, "tokens", len(result.Tokens))
	e.Notifier.OnExtractCompleted(ctx, sessionID)
	return nil
}

// Abandon fails the session: without extract output nothing downstream
// can run.
func (e *ExtractExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	_, err := e.Publisher.Publish(ctx, task.SessionID, events.KindExtractFailed,
		events.ScaffoldFailedPayload{Error: cause.Error(), Attempt: attempt})
	if err != nil {
		slog.Error("Failed to publish extract failure", "session_id", task.SessionID, "error", err)
	}
	e.Notifier.FailSession(ctx, task.SessionID, fmt.Sprintf("extract failed: %v", cause))
}

func tokenPayload(t providers.Token) events.TokenPayload {
	tp := events.TokenPayload{Text: t.Text}
	for i, p := range t.Box {
		tp.Box[i] = [2]int{p.X, p.Y}
	}
	return tp
}
