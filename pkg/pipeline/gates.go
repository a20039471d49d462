package pipeline

import (
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/kaiseki-io/kaiseki/pkg/config"
)

// sessionGates bounds per-session, per-stage concurrency with weighted
// semaphores so one large menu cannot starve other sessions. Workers
// TryAcquire and requeue on saturation instead of blocking, which
// yields round-robin progress across sessions on a busy queue.
type sessionGates struct {
	cfg *config.Config

	mu    sync.Mutex
	gates map[string]map[string]*semaphore.Weighted // session → stage → gate
}

func newSessionGates(cfg *config.Config) *sessionGates {
	return &sessionGates{
		cfg:   cfg,
		gates: make(map[string]map[string]*semaphore.Weighted),
	}
}

// TryAcquire implements queue.Gate.
func (g *sessionGates) TryAcquire(sessionID, stage string) (func(), bool) {
	limit := g.cfg.StageConfig(stage).MaxSessionConcurrency
	if limit <= 0 {
		return func() {}, true
	}

	g.mu.Lock()
	stageGates, ok := g.gates[sessionID]
	if !ok {
		stageGates = make(map[string]*semaphore.Weighted)
		g.gates[sessionID] = stageGates
	}
	sem, ok := stageGates[stage]
	if !ok {
		sem = semaphore.NewWeighted(int64(limit))
		stageGates[stage] = sem
	}
	g.mu.Unlock()

	if !sem.TryAcquire(1) {
		return nil, false
	}
	return func() { sem.Release(1) }, true
}

// drop forgets a terminal session's gates.
func (g *sessionGates) drop(sessionID string) {
	g.mu.Lock()
	delete(g.gates, sessionID)
	g.mu.Unlock()
}

// Gates exposes the queue.Gate implementation for pool wiring.
func (o *Orchestrator) Gates() *sessionGates {
	return o.gates
}

// TryAcquire implements queue.Gate on the orchestrator itself.
func (o *Orchestrator) TryAcquire(sessionID, stage string) (func(), bool) {
	return o.gates.TryAcquire(sessionID, stage)
}
