package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/ent/pipelineevent"
	"github.com/kaiseki-io/kaiseki/pkg/events"
)

// EventService reads the durable per-session event log. Writes go
// through events.Publisher; this service serves replay and cleanup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ReadEvents returns events with seq > afterSeq in seq order.
func (s *EventService) ReadEvents(ctx context.Context, sessionID string, afterSeq int64, limit int) ([]*ent.PipelineEvent, error) {
	query := s.client.PipelineEvent.Query().
		Where(
			pipelineevent.SessionIDEQ(sessionID),
			pipelineevent.SeqGT(afterSeq),
		).
		Order(ent.Asc(pipelineevent.FieldSeq))
	if limit > 0 {
		query = query.Limit(limit)
	}

	evts, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return evts, nil
}

// CatchupEvents implements events.CatchupQuerier for the manager's
// replay path. The channel encodes the session id.
func (s *EventService) CatchupEvents(ctx context.Context, channel string, afterSeq int64, limit int) ([]events.StoredEvent, error) {
	sessionID := strings.TrimPrefix(channel, "menu_session:")
	if sessionID == channel || sessionID == "" {
		return nil, fmt.Errorf("unrecognized event channel %q", channel)
	}

	evts, err := s.ReadEvents(ctx, sessionID, afterSeq, limit)
	if err != nil {
		return nil, err
	}

	stored := make([]events.StoredEvent, 0, len(evts))
	for _, evt := range evts {
		stored = append(stored, events.StoredEvent{Seq: evt.Seq, Payload: evt.Payload})
	}
	return stored, nil
}

// LatestOfKind returns the newest event of a kind, or ErrNotFound.
// Categorize reads its input from the extract_completed payload this way.
func (s *EventService) LatestOfKind(ctx context.Context, sessionID, kind string) (map[string]any, error) {
	evt, err := s.client.PipelineEvent.Query().
		Where(
			pipelineevent.SessionIDEQ(sessionID),
			pipelineevent.KindEQ(kind),
		).
		Order(ent.Desc(pipelineevent.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read latest %s event: %w", kind, err)
	}
	return evt.Payload, nil
}

// PruneExpiredEvents removes events older than the TTL. The per-session
// cascade handles deleted sessions; this catches long-running ones.
func (s *EventService) PruneExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.PipelineEvent.Delete().
		Where(pipelineevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune expired events: %w", err)
	}
	return count, nil
}
