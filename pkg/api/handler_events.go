package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/kaiseki-io/kaiseki/pkg/events"
)

// replayBatchSize is the page size for the durable-log replay at stream
// open. Replay paginates until the log is drained, so any cursor depth
// is served.
const replayBatchSize = 500

// streamEventsHandler handles GET /v1/sessions/:id/events.
// Serves the session's event log as NDJSON: replay from ?cursor=N, then
// live events as they commit. Delivery is at-least-once; clients dedupe
// by seq. Heartbeat lines keep idle connections alive through proxies.
func (s *Server) streamEventsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	cursor := int64(0)
	if raw := c.QueryParam("cursor"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "cursor must be a non-negative integer")
		}
		cursor = parsed
	}

	ctx := c.Request().Context()
	if _, err := s.sessions.GetSession(ctx, sessionID); err != nil {
		return mapServiceError(err)
	}

	h := c.Response().Header()
	h.Set("Content-Type", "application/x-ndjson")
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	res, err := echo.UnwrapResponse(c.Response())
	if err != nil {
		return err
	}
	sink := newStreamSink(res, s.cfg.Stream.WriteTimeout)

	// Subscribe before replay so nothing slips between the log read and
	// live delivery. Live events are buffered during replay and flushed
	// with a seq filter, so the stream stays gap-free and mostly ordered.
	sub := s.manager.Register(ctx, sink)
	defer sub.Close()
	if err := sub.Subscribe(events.SessionChannel(sessionID)); err != nil {
		sink.writeLine([]byte(`{"kind":"stream.error","message":"subscription failed"}`))
		return nil
	}

	last, err := s.replayEvents(ctx, sink, sessionID, cursor)
	if err != nil {
		// Client went away or the log read failed; either way the
		// stream is over.
		return nil
	}
	sink.goLive(last)

	heartbeat := time.NewTicker(s.cfg.Stream.Heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			line, _ := json.Marshal(map[string]any{
				"kind": "heartbeat",
				"ts":   time.Now().UTC().Format(time.RFC3339),
			})
			if err := sink.writeLine(line); err != nil {
				return nil
			}
		}
	}
}

// replayEvents pages through the durable log and writes each stored
// envelope as one line. Returns the last seq written.
func (s *Server) replayEvents(ctx context.Context, sink *streamSink, sessionID string, afterSeq int64) (int64, error) {
	last := afterSeq
	for {
		evts, err := s.eventService.ReadEvents(ctx, sessionID, last, replayBatchSize)
		if err != nil {
			return last, err
		}
		for _, evt := range evts {
			line, err := json.Marshal(evt.Payload)
			if err != nil {
				continue
			}
			if err := sink.writeLine(line); err != nil {
				return last, err
			}
			last = evt.Seq
		}
		if len(evts) < replayBatchSize {
			return last, nil
		}
	}
}

// streamSink writes NDJSON lines to one client. It implements
// events.Sink for the manager's live broadcast.
//
// While the handler replays the durable log, live events are buffered;
// goLive flushes events newer than the replay boundary and switches to
// direct writes. Duplicate live deliveries are dropped by seq.
type streamSink struct {
	mu        sync.Mutex
	w         *echo.Response
	rc        *http.ResponseController
	timeout   time.Duration
	buffering bool
	buffered  [][]byte
	lastSeq   int64
}

func newStreamSink(w *echo.Response, timeout time.Duration) *streamSink {
	return &streamSink{
		w:         w,
		rc:        http.NewResponseController(w),
		timeout:   timeout,
		buffering: true,
	}
}

// Send implements events.Sink.
func (s *streamSink) Send(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffering {
		buf := make([]byte, len(payload))
		copy(buf, payload)
		s.buffered = append(s.buffered, buf)
		return nil
	}
	return s.deliverLocked(payload)
}

// goLive flushes events buffered during replay, skipping those the
// replay already covered, then switches to direct delivery.
func (s *streamSink) goLive(replayedThrough int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeq = replayedThrough
	for _, payload := range s.buffered {
		_ = s.deliverLocked(payload)
	}
	s.buffered = nil
	s.buffering = false
}

func (s *streamSink) deliverLocked(payload []byte) error {
	if seq := extractSeq(payload); seq > 0 {
		if seq <= s.lastSeq {
			return nil
		}
		s.lastSeq = seq
	}
	return s.writeLineLocked(payload)
}

// writeLine writes one NDJSON line outside the broadcast path
// (replay, heartbeat, error stubs).
func (s *streamSink) writeLine(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLineLocked(line)
}

func (s *streamSink) writeLineLocked(line []byte) error {
	if s.timeout > 0 {
		// Best effort; the controller may not reach the underlying conn.
		_ = s.rc.SetWriteDeadline(time.Now().Add(s.timeout))
	}
	if _, err := s.w.Write(append(line, '\n')); err != nil {
		return err
	}
	return s.rc.Flush()
}

// extractSeq pulls the seq field from an envelope, 0 when absent.
func extractSeq(payload []byte) int64 {
	var envelope struct {
		Seq int64 `json:"seq"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return 0
	}
	return envelope.Seq
}
