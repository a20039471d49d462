// Package queue runs the per-queue worker pools over the DB-backed
// task table. Claiming uses FOR UPDATE SKIP LOCKED; redelivery after a
// crash comes from the visibility-timeout orphan scan, so execution is
// at-least-once and executors must be idempotent.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/kaiseki-io/kaiseki/ent"
)

// ErrNoTasksAvailable signals an empty queue poll.
var ErrNoTasksAvailable = errors.New("no tasks available")

// Executor runs the work for one claimed task. Implemented per stage
// in pkg/stages.
type Executor interface {
	// Execute performs the task's attempt. A nil return acks the task.
	// Errors are classified by pkg/providers; the worker decides
	// between retry and dead-letter.
	Execute(ctx context.Context, task *ent.Task, attempt int) error

	// Abandon records the terminal failure after the worker exhausts
	// retries or hits a permanent error. The stage is marked failed and
	// the stage_failed event emitted here.
	Abandon(ctx context.Context, task *ent.Task, attempt int, cause error)
}

// Registry resolves the executor for a stage name.
type Registry map[string]Executor

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is a snapshot of one worker's state.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Queue          string       `json:"queue"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}

// PoolHealth is the aggregate health of every queue's workers.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepths      map[string]int `json:"queue_depths"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
