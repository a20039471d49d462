package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// Gate bounds per-session concurrency for item stages. Implemented by
// the pipeline orchestrator with weighted semaphores.
type Gate interface {
	// TryAcquire returns a release func when a slot is free. ok=false
	// means the session is saturated on this stage; the worker requeues
	// the task with a short delay instead of blocking.
	TryAcquire(sessionID, stage string) (release func(), ok bool)
}

// gateRequeueDelay is how long a task waits when its session's
// concurrency gate is saturated.
const gateRequeueDelay = 500 * time.Millisecond

// Worker is a single queue worker that polls one queue for tasks.
type Worker struct {
	id       string
	podID    string
	queue    string
	cfg      *config.Config
	tasks    *services.TaskService
	registry Registry
	gate     Gate
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker. gate may be nil (no per-session
// concurrency bound).
func NewWorker(id, podID, queue string, cfg *config.Config, tasks *services.TaskService, registry Registry, gate Gate) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		cfg:          cfg,
		tasks:        tasks,
		registry:     registry,
		gate:         gate,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Queue:          w.queue,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one task and drives it to an outcome.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	task, err := w.tasks.Claim(ctx, w.queue, w.podID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrNoTasksAvailable
	}

	attempt := task.Attempt + 1
	log := slog.With("task_id", task.ID, "session_id", task.SessionID,
		"stage", task.Stage, "attempt", attempt, "worker_id", w.id)

	executor, ok := w.registry[task.Stage]
	if !ok {
		// Schema drift or a bad enqueue; nothing can ever run this.
		log.Error("No executor registered for stage")
		return w.tasks.MarkDead(ctx, task.ID, attempt, fmt.Sprintf("no executor for stage %s", task.Stage))
	}

	// Per-session concurrency gate applies to item tasks only.
	if w.gate != nil && task.ItemIndex != nil {
		release, ok := w.gate.TryAcquire(task.SessionID, task.Stage)
		if !ok {
			// Do not consume an attempt; the session is merely busy.
			return w.tasks.Retry(ctx, task.ID, task.Attempt,
				time.Now().Add(gateRequeueDelay), "session concurrency limit")
		}
		defer release()
	}

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	policy := w.cfg.StageConfig(task.Stage)
	taskCtx, cancelTask := context.WithTimeout(ctx, policy.Timeout)
	defer cancelTask()

	// Heartbeat keeps the orphan scan off a healthy long-running task.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, task.ID)

	execErr := executor.Execute(taskCtx, task, attempt)
	cancelHeartbeat()

	// Terminal bookkeeping uses a background context; the task context
	// may already be expired.
	doneCtx, cancelDone := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDone()

	if execErr == nil {
		if err := w.tasks.Complete(doneCtx, task.ID, attempt); err != nil {
			log.Error("Failed to mark task done", "error", err)
			return err
		}
		w.mu.Lock()
		w.tasksProcessed++
		w.mu.Unlock()
		return nil
	}

	if taskCtx.Err() != nil && ctx.Err() == nil && errors.Is(execErr, context.DeadlineExceeded) {
		execErr = fmt.Errorf("stage %s timed out after %v: %w", task.Stage, policy.Timeout, execErr)
	}

	return w.handleFailure(doneCtx, log, executor, task, attempt, policy, execErr)
}

// handleFailure routes a classified failure to retry or dead-letter.
// Rate-limited failures get extra attempts beyond max_attempts so a
// saturated provider does not burn the retry budget.
func (w *Worker) handleFailure(ctx context.Context, log *slog.Logger, executor Executor, task *ent.Task, attempt int, policy config.StagePolicy, execErr error) error {
	kind := providers.Classify(execErr)

	allowed := policy.MaxAttempts
	if kind == providers.KindRateLimited {
		allowed += policy.RateLimitedFreeRetries
	}

	if kind == providers.KindPermanent || attempt >= allowed {
		log.Warn("Task dead-lettered", "kind", kind, "error", execErr)
		if err := w.tasks.MarkDead(ctx, task.ID, attempt, execErr.Error()); err != nil {
			return err
		}
		executor.Abandon(ctx, task, attempt, execErr)
		w.mu.Lock()
		w.tasksProcessed++
		w.mu.Unlock()
		return nil
	}

	delay := NextBackoff(policy.RetryBase, policy.RetryCap, attempt)
	log.Info("Task scheduled for retry", "kind", kind, "delay", delay, "error", execErr)
	return w.tasks.Retry(ctx, task.ID, attempt, time.Now().Add(delay), execErr.Error())
}

// runHeartbeat refreshes claimed_at until the task finishes.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	interval := w.cfg.Queue.VisibilityTimeout / 3
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.tasks.Heartbeat(ctx, taskID); err != nil {
				slog.Warn("Task heartbeat failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.Queue.PollInterval
	jitter := w.cfg.Queue.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
