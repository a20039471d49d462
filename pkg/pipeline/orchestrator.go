// Package pipeline drives each session through the stage DAG: extract,
// categorize, then the per-item fan-out. The orchestrator reacts to
// executor callbacks instead of polling; its reactions are idempotent
// because task enqueues dedupe on (session, stage, item) and terminal
// session transitions are guarded.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// Orchestrator owns the session state machine. It implements
// stages.Notifier for executor callbacks and queue.Gate for per-session
// concurrency bounds.
type Orchestrator struct {
	sessions  *services.SessionService
	items     *services.ItemService
	tasks     *services.TaskService
	publisher *events.Publisher
	cfg       *config.Config

	gates *sessionGates

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates the orchestrator.
func New(sessions *services.SessionService, items *services.ItemService, tasks *services.TaskService, publisher *events.Publisher, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		sessions:  sessions,
		items:     items,
		tasks:     tasks,
		publisher: publisher,
		cfg:       cfg,
		gates:     newSessionGates(cfg),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the session timeout watchdog.
func (o *Orchestrator) Start(ctx context.Context) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.runSessionTimeouts(ctx)
	}()
}

// Stop halts the watchdog.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() { close(o.stopCh) })
	o.wg.Wait()
}

// StartSession enqueues the extract task for a freshly created session.
func (o *Orchestrator) StartSession(ctx context.Context, sessionID string) error {
	if _, err := o.tasks.Enqueue(ctx, sessionID, models.StageExtract, nil); err != nil {
		return err
	}
	return nil
}

// OnExtractCompleted moves the session into the categorize stage.
func (o *Orchestrator) OnExtractCompleted(ctx context.Context, sessionID string) {
	if _, err := o.tasks.Enqueue(ctx, sessionID, models.StageCategorize, nil); err != nil {
		slog.Error("Failed to enqueue categorize", "session_id", sessionID, "error", err)
	}
}

// OnItemsMaterialized fans out the per-item stages. Text stages are
// enqueued immediately in chunks; image tasks wait for each item's
// translate to finish, with a timer as the upper bound so a stuck
// translate cannot hold images forever. Enqueues dedupe on the task
// table's unique index, so re-firing after a crash is safe.
func (o *Orchestrator) OnItemsMaterialized(ctx context.Context, sessionID string, totalItems int) {
	if totalItems == 0 {
		// Nothing to fan out; the session completes immediately.
		o.checkCompletion(ctx, sessionID)
		return
	}

	for _, stage := range []models.Stage{models.StageTranslate, models.StageDescribe, models.StageAllergens, models.StageIngredients} {
		o.enqueueChunked(ctx, sessionID, stage, totalItems)
	}

	wait := o.cfg.Stages.TranslateWait
	if wait <= 0 {
		o.enqueueChunked(ctx, sessionID, models.StageImage, totalItems)
		return
	}
	time.AfterFunc(wait, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		o.releaseImagesAfterWait(ctx, sessionID, totalItems)
	})
}

// enqueueChunked enqueues one task per item, grouped in chunks of the
// stage's chunk size. Chunking is scheduling granularity only; every
// task still targets a single item.
func (o *Orchestrator) enqueueChunked(ctx context.Context, sessionID string, stage models.Stage, totalItems int) {
	chunk := o.cfg.StageConfig(string(stage)).ChunkSize
	if chunk < 1 {
		chunk = 1
	}
	for start := 0; start < totalItems; start += chunk {
		end := min(start+chunk, totalItems)
		for i := start; i < end; i++ {
			idx := i
			if _, err := o.tasks.Enqueue(ctx, sessionID, stage, &idx); err != nil {
				slog.Error("Failed to enqueue item task",
					"session_id", sessionID, "stage", stage, "item_index", i, "error", err)
			}
		}
	}
}

// releaseImagesAfterWait enqueues image tasks for every item once the
// translate wait expires. Items whose translate already finished got
// their image task from OnStageTerminal; the unique index absorbs the
// overlap.
func (o *Orchestrator) releaseImagesAfterWait(ctx context.Context, sessionID string, totalItems int) {
	cancelled, err := o.sessions.IsCancelRequested(ctx, sessionID)
	if err != nil || cancelled {
		return
	}
	slog.Debug("Translate wait expired, releasing image tasks", "session_id", sessionID)
	o.enqueueChunked(ctx, sessionID, models.StageImage, totalItems)
}

// OnStageTerminal reacts to an (item, stage) reaching a terminal
// status: translate completion releases that item's image task, and
// every terminal stage triggers the idempotent completion check.
func (o *Orchestrator) OnStageTerminal(ctx context.Context, sessionID string, itemIndex int, stage models.Stage) {
	if stage == models.StageTranslate {
		idx := itemIndex
		if _, err := o.tasks.Enqueue(ctx, sessionID, models.StageImage, &idx); err != nil {
			slog.Error("Failed to enqueue image task",
				"session_id", sessionID, "item_index", itemIndex, "error", err)
		}
	}
	o.checkCompletion(ctx, sessionID)
}

// checkCompletion completes the session when every stage of every item
// is terminal. The MarkTerminal guard makes the check idempotent:
// session_completed is emitted exactly once.
func (o *Orchestrator) checkCompletion(ctx context.Context, sessionID string) {
	session, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return
	}
	if session.Status != menusession.StatusProcessing || session.CancelRequested {
		return
	}
	if session.TotalItems == nil {
		return
	}

	done, err := o.items.AllStagesTerminal(ctx, sessionID)
	if err != nil {
		slog.Error("Completion check failed", "session_id", sessionID, "error", err)
		return
	}
	if !done {
		return
	}

	applied, err := o.sessions.MarkTerminal(ctx, sessionID, menusession.StatusCompleted, "")
	if err != nil {
		slog.Error("Failed to complete session", "session_id", sessionID, "error", err)
		return
	}
	if !applied {
		return
	}

	if _, err := o.publisher.Publish(ctx, sessionID, events.KindSessionCompleted, nil); err != nil {
		slog.Error("Failed to publish session completion", "session_id", sessionID, "error", err)
	}
	o.gates.drop(sessionID)
	slog.Info("Session completed", "session_id", sessionID)
}

// FailSession force-fails a session: scaffold exhaustion, the item
// cap, or the session timeout. Emits session_failed once.
func (o *Orchestrator) FailSession(ctx context.Context, sessionID, reason string) {
	applied, err := o.sessions.MarkTerminal(ctx, sessionID, menusession.StatusFailed, reason)
	if err != nil {
		slog.Error("Failed to fail session", "session_id", sessionID, "error", err)
		return
	}
	if !applied {
		return
	}

	if _, err := o.publisher.Publish(ctx, sessionID, events.KindSessionFailed,
		events.SessionFailedPayload{Reason: reason}); err != nil {
		slog.Error("Failed to publish session failure", "session_id", sessionID, "error", err)
	}
	o.abandonRemainingWork(ctx, sessionID)
	slog.Warn("Session failed", "session_id", sessionID, "reason", reason)
}

// Cancel handles a client cancellation after the API set the cancel
// flag. The session ends failed with a session_cancelled event;
// session_completed is never emitted for it.
func (o *Orchestrator) Cancel(ctx context.Context, sessionID string) {
	applied, err := o.sessions.MarkTerminal(ctx, sessionID, menusession.StatusFailed, "cancelled by client")
	if err != nil {
		slog.Error("Failed to cancel session", "session_id", sessionID, "error", err)
		return
	}
	if !applied {
		return
	}

	if _, err := o.publisher.Publish(ctx, sessionID, events.KindSessionCancelled,
		events.SessionFailedPayload{Reason: "cancelled by client"}); err != nil {
		slog.Error("Failed to publish session cancellation", "session_id", sessionID, "error", err)
	}
	o.abandonRemainingWork(ctx, sessionID)
	slog.Info("Session cancelled", "session_id", sessionID)
}

// abandonRemainingWork drops pending tasks and resolves every
// non-terminal stage to skipped so the item invariants hold on
// terminal sessions. In-flight executors notice the terminal session
// at their next checkpoint.
func (o *Orchestrator) abandonRemainingWork(ctx context.Context, sessionID string) {
	if _, err := o.tasks.CancelSessionTasks(ctx, sessionID); err != nil {
		slog.Error("Failed to cancel session tasks", "session_id", sessionID, "error", err)
	}
	if _, err := o.items.SkipAllPendingStages(ctx, sessionID); err != nil {
		slog.Error("Failed to skip pending stages", "session_id", sessionID, "error", err)
	}
	o.gates.drop(sessionID)
}

// runSessionTimeouts force-fails sessions that exceed the upper-bound
// session timeout. All pods run this; MarkTerminal dedupes.
func (o *Orchestrator) runSessionTimeouts(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-o.stopCh:
			return
		case <-ticker.C:
			stale, err := o.sessions.FindTimedOutSessions(ctx, o.cfg.Session.Timeout)
			if err != nil {
				slog.Error("Session timeout scan failed", "error", err)
				continue
			}
			for _, session := range stale {
				o.FailSession(ctx, session.ID, "session timeout")
			}
		}
	}
}
