// Package events provides durable per-session event publishing and
// real-time delivery via PostgreSQL NOTIFY/LISTEN.
//
// Every event is appended to the pipeline_events table with a
// per-session sequence number allocated under the session row lock, so
// sequences are strictly increasing and gap-free within a session. The
// NOTIFY broadcast rides the same transaction; a subscriber that misses
// a notification replays the durable log from its cursor. Delivery is
// at-least-once and consumers dedupe by seq.
package events

import "context"

// Event kinds. These appear in the envelope "kind" field and in the
// pipeline_events.kind column.
const (
	KindSessionCreated   = "session_created"
	KindSessionCompleted = "session_completed"
	KindSessionCancelled = "session_cancelled"
	KindSessionFailed    = "session_failed"

	KindExtractInFlight  = "extract_in_flight"
	KindExtractCompleted = "extract_completed"
	KindExtractFailed    = "extract_failed"

	KindCategorizeInFlight  = "categorize_in_flight"
	KindCategorizeCompleted = "categorize_completed"
	KindCategorizeFailed    = "categorize_failed"

	KindItemsMaterialized = "items_materialized"

	KindStageInFlight         = "stage_in_flight"
	KindStageCompleted        = "stage_completed"
	KindStageFailed           = "stage_failed"
	KindStageSkippedDuplicate = "stage_skipped_duplicate"
)

// SessionChannel returns the NOTIFY channel for a session's events.
// Format: "menu_session:{session_id}"
func SessionChannel(sessionID string) string {
	return "menu_session:" + sessionID
}

// ClientMessage is the client → server message on the WebSocket surface.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "catchup", "ping"
	Channel string `json:"channel,omitempty"` // e.g. "menu_session:abc-123"
	LastSeq *int64 `json:"last_seq,omitempty"`
}

// StoredEvent is one row of the durable log as returned by catchup.
type StoredEvent struct {
	Seq     int64
	Payload map[string]any
}

// CatchupQuerier replays the durable log for a channel from a cursor.
// Implemented by services.EventService.
type CatchupQuerier interface {
	CatchupEvents(ctx context.Context, channel string, afterSeq int64, limit int) ([]StoredEvent, error)
}

// Sink receives broadcast and catchup payloads for one subscriber.
// Implementations: the WebSocket connection and the NDJSON stream
// writer. Send must be safe for concurrent use; a returned error marks
// the subscriber dead and the manager drops it.
type Sink interface {
	Send(ctx context.Context, payload []byte) error
}
