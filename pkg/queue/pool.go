package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// Pool runs the workers for every queue plus the orphan scan.
type Pool struct {
	podID    string
	cfg      *config.Config
	tasks    *services.TaskService
	registry Registry
	gate     Gate

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	orphans orphanState
}

// Queues returns every queue the pipeline dispatches on.
func Queues() []string {
	queues := []string{models.StageExtract.Queue(), models.StageCategorize.Queue()}
	for _, stage := range models.ItemStages {
		queues = append(queues, stage.Queue())
	}
	return queues
}

// NewPool creates the worker pool. gate may be nil.
func NewPool(podID string, cfg *config.Config, tasks *services.TaskService, registry Registry, gate Gate) *Pool {
	return &Pool{
		podID:    podID,
		cfg:      cfg,
		tasks:    tasks,
		registry: registry,
		gate:     gate,
		stopCh:   make(chan struct{}),
	}
}

// Start spawns the per-queue workers and the orphan scan.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	for _, queue := range Queues() {
		count := p.cfg.Queue.WorkerCount(queue)
		slog.Info("Starting queue workers", "queue", queue, "count", count)
		for i := 0; i < count; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", p.podID, queue, i)
			worker := NewWorker(workerID, p.podID, queue, p.cfg, p.tasks, p.registry, p.gate)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScan(ctx)
	}()

	slog.Info("Worker pool started", "pod_id", p.podID, "total_workers", len(p.workers))
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current tasks (graceful shutdown).
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// runOrphanScan periodically requeues in_flight tasks whose heartbeat
// lapsed. All pods run this independently; the operation is idempotent.
func (p *Pool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Queue.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			recovered, err := p.tasks.RequeueStale(ctx, p.cfg.Queue.VisibilityTimeout)
			if err != nil {
				slog.Error("Orphan scan failed", "error", err)
				continue
			}
			if recovered > 0 {
				slog.Warn("Requeued orphaned tasks", "count", recovered)
			}
			p.orphans.mu.Lock()
			p.orphans.lastOrphanScan = time.Now()
			p.orphans.orphansRecovered += recovered
			p.orphans.mu.Unlock()
		}
	}
}

// ReleaseStartupOrphans returns tasks a previous incarnation of this
// pod died holding. Called once during startup, before Start.
func (p *Pool) ReleaseStartupOrphans(ctx context.Context) error {
	released, err := p.tasks.ReleasePodTasks(ctx, p.podID)
	if err != nil {
		return fmt.Errorf("failed to release startup orphans: %w", err)
	}
	if released > 0 {
		slog.Warn("Released tasks from previous run", "pod_id", p.podID, "count", released)
	}
	return nil
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	depths := make(map[string]int)
	var dbErr error
	for _, queue := range Queues() {
		depth, err := p.tasks.QueueDepth(ctx, queue)
		if err != nil {
			slog.Error("Failed to query queue depth for health check",
				"queue", queue, "error", err)
			dbErr = err
			continue
		}
		depths[queue] = depth
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	health := &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbErr == nil,
		DBReachable:      dbErr == nil,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepths:      depths,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
	if dbErr != nil {
		health.DBError = fmt.Sprintf("queue depth query failed: %v", dbErr)
	}
	return health
}
