// Package cleanup enforces data retention policies.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// Service periodically enforces retention:
//   - Soft-deletes terminal sessions past the retention window (the API
//     answers 410 for them afterwards)
//   - Hard-deletes soft-deleted sessions past the grace window, which
//     cascades to their items, events, and tasks
//   - Removes orphaned event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	eventService   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	sessionService *services.SessionService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		eventService:   eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention", s.config.SessionRetention,
		"delete_grace", s.config.DeleteGrace,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldSessions(ctx)
	s.hardDeleteExpiredSessions(ctx)
	s.pruneExpiredEvents(ctx)
}

func (s *Service) softDeleteOldSessions(_ context.Context) {
	count, err := s.sessionService.SoftDeleteOldSessions(context.Background(), s.config.SessionRetention)
	if err != nil {
		slog.Error("Retention: soft-delete sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old sessions", "count", count)
	}
}

func (s *Service) hardDeleteExpiredSessions(_ context.Context) {
	count, err := s.sessionService.HardDeleteExpiredSessions(context.Background(), s.config.DeleteGrace)
	if err != nil {
		slog.Error("Retention: hard-delete sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: hard-deleted expired sessions", "count", count)
	}
}

func (s *Service) pruneExpiredEvents(_ context.Context) {
	count, err := s.eventService.PruneExpiredEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned expired events", "count", count)
	}
}
