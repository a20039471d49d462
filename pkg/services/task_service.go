package services

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/ent/task"
	"github.com/kaiseki-io/kaiseki/pkg/models"
)

// TaskService owns the DB-backed task queue. Tasks are claimed with
// FOR UPDATE SKIP LOCKED so concurrent workers never double-claim, and
// the unique (session, stage, item) index makes enqueue idempotent.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// Enqueue inserts a pending task for an (item, stage). A nil itemIndex
// enqueues a session-level scaffold task. Re-enqueueing an existing
// (session, stage, item) is a no-op and returns nil, nil.
func (s *TaskService) Enqueue(ctx context.Context, sessionID string, stage models.Stage, itemIndex *int) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetQueue(stage.Queue()).
		SetStage(string(stage)).
		SetStatus(task.StatusPending).
		SetNotBefore(time.Now())
	if itemIndex != nil {
		create = create.SetItemIndex(*itemIndex)
	}

	t, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to enqueue %s task: %w", stage, err)
	}
	return t, nil
}

// Claim atomically claims the oldest ready pending task on a queue.
// Returns nil, nil when the queue is empty. SKIP LOCKED lets concurrent
// claimers pass over rows another transaction is claiming.
func (s *TaskService) Claim(ctx context.Context, queue, podID string) (*ent.Task, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(
			task.QueueEQ(queue),
			task.StatusEQ(task.StatusPending),
			task.NotBeforeLTE(time.Now()),
		).
		Order(ent.Asc(task.FieldNotBefore)).
		Limit(1).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	t, err = tx.Task.UpdateOneID(t.ID).
		SetStatus(task.StatusInFlight).
		SetClaimedAt(time.Now()).
		SetClaimedBy(podID).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return t, nil
}

// Complete marks a task done.
func (s *TaskService) Complete(ctx context.Context, taskID string, attempt int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusDone).
		SetAttempt(attempt).
		ClearLastError().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete task: %w", err)
	}
	return nil
}

// Retry re-enqueues a failed task with a backoff deadline. attempt is
// the number of consumed attempts; a rate-limited failure within its
// free-retry budget passes the previous count so the attempt is not
// consumed.
func (s *TaskService) Retry(ctx context.Context, taskID string, attempt int, notBefore time.Time, lastErr string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusPending).
		SetAttempt(attempt).
		SetNotBefore(notBefore).
		SetLastError(lastErr).
		ClearClaimedAt().
		ClearClaimedBy().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to retry task: %w", err)
	}
	return nil
}

// MarkDead dead-letters a task after attempts are exhausted or a
// permanent failure.
func (s *TaskService) MarkDead(ctx context.Context, taskID string, attempt int, lastErr string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusDead).
		SetAttempt(attempt).
		SetLastError(lastErr).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to dead-letter task: %w", err)
	}
	return nil
}

// Heartbeat refreshes claimed_at so the orphan scan does not steal a
// long-running but healthy task.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusInFlight),
		).
		SetClaimedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat task: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// RequeueStale returns in_flight tasks whose heartbeat lapsed past the
// visibility timeout to pending. Their claims are presumed dead.
func (s *TaskService) RequeueStale(ctx context.Context, visibilityTimeout time.Duration) (int, error) {
	threshold := time.Now().Add(-visibilityTimeout)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.StatusEQ(task.StatusInFlight),
			task.ClaimedAtLT(threshold),
		).
		SetStatus(task.StatusPending).
		SetNotBefore(time.Now()).
		ClearClaimedAt().
		ClearClaimedBy().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue stale tasks: %w", err)
	}
	return count, nil
}

// ReleasePodTasks returns every in_flight task claimed by a pod to
// pending. Called at startup to recover tasks a previous incarnation
// of this pod died holding.
func (s *TaskService) ReleasePodTasks(ctx context.Context, podID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.StatusEQ(task.StatusInFlight),
			task.ClaimedByEQ(podID),
		).
		SetStatus(task.StatusPending).
		SetNotBefore(time.Now()).
		ClearClaimedAt().
		ClearClaimedBy().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to release pod tasks: %w", err)
	}
	return count, nil
}

// CancelSessionTasks drops every pending task of a session. In-flight
// tasks finish via their executors' cancellation checkpoints.
func (s *TaskService) CancelSessionTasks(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.SessionIDEQ(sessionID),
			task.StatusEQ(task.StatusPending),
		).
		SetStatus(task.StatusDead).
		SetLastError("session cancelled").
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel session tasks: %w", err)
	}
	return count, nil
}

// QueueDepth reports the number of ready pending tasks per queue.
func (s *TaskService) QueueDepth(ctx context.Context, queue string) (int, error) {
	count, err := s.client.Task.Query().
		Where(
			task.QueueEQ(queue),
			task.StatusEQ(task.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue depth: %w", err)
	}
	return count, nil
}
