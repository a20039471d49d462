package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher appends events to the durable per-session log and
// broadcasts them via NOTIFY.
//
// Every append allocates the next sequence number by incrementing
// menu_sessions.last_seq under the session row lock, inserts the
// pipeline_events row, and fires pg_notify, all in one transaction.
// pg_notify is transactional: the notification is held until COMMIT,
// so a subscriber never sees an event that was not persisted.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the shared pool.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish appends an event in its own transaction and returns the
// allocated sequence number.
func (p *Publisher) Publish(ctx context.Context, sessionID, kind string, payload any) (int64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	seq, err := p.AppendTx(ctx, tx, sessionID, kind, payload)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return seq, nil
}

// AppendTx appends an event inside a caller-owned transaction. Callers
// that pair a state write with its event (stage completion, item
// materialization) put both in one transaction so the log and the
// state can never disagree.
func (p *Publisher) AppendTx(ctx context.Context, tx *sql.Tx, sessionID, kind string, payload any) (int64, error) {
	// The UPDATE takes the session row lock, serializing concurrent
	// appends for the same session. RETURNING yields the allocated seq.
	var seq int64
	err := tx.QueryRowContext(ctx,
		`UPDATE menu_sessions SET last_seq = last_seq + 1 WHERE session_id = $1 RETURNING last_seq`,
		sessionID,
	).Scan(&seq)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("session %s not found for event append", sessionID)
		}
		return 0, fmt.Errorf("failed to allocate event seq: %w", err)
	}

	now := time.Now().UTC()
	envelope, err := buildEnvelope(sessionID, seq, now, kind, payload)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO pipeline_events (session_id, seq, kind, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		sessionID, seq, kind, envelope, now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(sessionID, seq, kind, envelope)
	if err != nil {
		return 0, err
	}
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", SessionChannel(sessionID), notifyPayload)
	if err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}
	return seq, nil
}

// buildEnvelope marshals the payload and merges in the envelope fields.
// The full envelope is what gets stored and broadcast, so catchup and
// live delivery carry identical bytes.
func buildEnvelope(sessionID string, seq int64, ts time.Time, kind string, payload any) ([]byte, error) {
	m := map[string]any{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", kind, err)
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("failed to flatten %s payload: %w", kind, err)
		}
	}
	m["session_id"] = sessionID
	m["seq"] = seq
	m["ts"] = ts.Format(time.RFC3339Nano)
	m["kind"] = kind

	envelope, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s envelope: %w", kind, err)
	}
	return envelope, nil
}

// notifyLimit is the safe size for a NOTIFY payload. PostgreSQL caps
// notifications at 8000 bytes; we leave headroom for encoding overhead.
const notifyLimit = 7900

// truncateIfNeeded returns the envelope unchanged when it fits in a
// NOTIFY payload, otherwise a minimal stub with only routing fields.
// The subscriber fetches the full event from the durable log by seq.
func truncateIfNeeded(sessionID string, seq int64, kind string, envelope []byte) (string, error) {
	if len(envelope) <= notifyLimit {
		return string(envelope), nil
	}
	stub, err := json.Marshal(map[string]any{
		"session_id": sessionID,
		"seq":        seq,
		"kind":       kind,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated envelope: %w", err)
	}
	return string(stub), nil
}
