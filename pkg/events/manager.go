package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// catchupLimit caps the number of events replayed per catchup call.
// Past the cap a catchup.overflow stub tells the client to reload the
// session snapshot instead of paginating.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the
// first subscriber attaches to a channel. Without it a stalled LISTEN
// connection would block the subscriber's read loop indefinitely.
const listenTimeout = 10 * time.Second

// Manager fans NOTIFY payloads out to local subscribers. Each process
// runs one Manager; cross-process distribution happens in PostgreSQL.
//
// Subscribers are transport-agnostic Sinks. The WebSocket handler and
// the NDJSON stream handler both register here, so a session's events
// reach every attached client regardless of transport.
type Manager struct {
	subscribers map[string]*Subscriber
	mu          sync.RWMutex

	// channel → set of subscriber ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	catchup CatchupQuerier

	listener   *Listener
	listenerMu sync.RWMutex
}

// Subscriber is one registered sink with its channel subscriptions.
// Channel membership is owned by the Manager; the subscriptions set
// here is only touched by the subscriber's own goroutine and Close.
type Subscriber struct {
	ID   string
	sink Sink
	ctx  context.Context

	m             *Manager
	subscriptions map[string]bool
	subsMu        sync.Mutex
}

// NewManager creates a Manager. SetListener must be called before the
// first Subscribe so channels get a PG LISTEN.
func NewManager(catchup CatchupQuerier) *Manager {
	return &Manager{
		subscribers: make(map[string]*Subscriber),
		channels:    make(map[string]map[string]bool),
		catchup:     catchup,
	}
}

// SetListener wires the NOTIFY listener. Called once during startup.
func (m *Manager) SetListener(l *Listener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Register adds a sink and returns its Subscriber handle. The caller
// must call Close when the transport ends.
func (m *Manager) Register(ctx context.Context, sink Sink) *Subscriber {
	s := &Subscriber{
		ID:            uuid.New().String(),
		sink:          sink,
		ctx:           ctx,
		m:             m,
		subscriptions: make(map[string]bool),
	}
	m.mu.Lock()
	m.subscribers[s.ID] = s
	m.mu.Unlock()
	return s
}

// Broadcast delivers a payload to every subscriber of a channel.
// Send failures are logged and skipped; the owning transport notices
// its own connection failure and closes the subscriber.
func (m *Manager) Broadcast(channel string, payload []byte) {
	m.channelMu.RLock()
	ids := make([]string, 0, len(m.channels[channel]))
	for id := range m.channels[channel] {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot pointers before sending so slow sinks never hold mu.
	m.mu.RLock()
	subs := make([]*Subscriber, 0, len(ids))
	for _, id := range ids {
		if s, ok := m.subscribers[id]; ok {
			subs = append(subs, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range subs {
		if err := s.sink.Send(s.ctx, payload); err != nil {
			slog.Warn("Failed to deliver event to subscriber",
				"subscriber_id", s.ID, "channel", channel, "error", err)
		}
	}
}

// ActiveSubscribers returns the count of registered subscribers.
func (m *Manager) ActiveSubscribers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

// subscriberCount reports a channel's membership. Used by tests to
// poll instead of sleeping.
func (m *Manager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// Subscribe adds the subscriber to a channel, issuing LISTEN when it is
// the channel's first member. LISTEN completes before Subscribe returns
// so a subsequent Catchup runs with live delivery already active; the
// window where an event is neither in the replay nor broadcast is
// closed by running catchup after LISTEN and deduping by seq.
func (s *Subscriber) Subscribe(channel string) error {
	m := s.m

	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][s.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.dropFailedChannel(s, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	s.subsMu.Lock()
	s.subscriptions[channel] = true
	s.subsMu.Unlock()
	return nil
}

// Unsubscribe removes the subscriber from a channel, issuing UNLISTEN
// when it was the last member. The UNLISTEN goroutine re-checks
// membership first so a rapid unsubscribe/resubscribe cycle does not
// drop an active LISTEN.
func (s *Subscriber) Unsubscribe(channel string) {
	m := s.m

	m.channelMu.Lock()
	if members, exists := m.channels[channel]; exists {
		delete(members, s.ID)
		if len(members) == 0 {
			delete(m.channels, channel)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	s.subsMu.Lock()
	delete(s.subscriptions, channel)
	s.subsMu.Unlock()
}

// Close removes the subscriber from every channel and unregisters it.
func (s *Subscriber) Close() {
	s.subsMu.Lock()
	channels := make([]string, 0, len(s.subscriptions))
	for ch := range s.subscriptions {
		channels = append(channels, ch)
	}
	s.subsMu.Unlock()

	for _, ch := range channels {
		s.Unsubscribe(ch)
	}

	s.m.mu.Lock()
	delete(s.m.subscribers, s.ID)
	s.m.mu.Unlock()
}

// Catchup replays durable events with seq > afterSeq to the subscriber
// and returns the last seq delivered. When more than catchupLimit
// events are pending it sends a catchup.overflow stub; the client
// should reload the snapshot instead of paginating.
func (s *Subscriber) Catchup(ctx context.Context, channel string, afterSeq int64) (int64, error) {
	m := s.m
	if m.catchup == nil {
		return afterSeq, nil
	}

	stored, err := m.catchup.CatchupEvents(ctx, channel, afterSeq, catchupLimit+1)
	if err != nil {
		return afterSeq, fmt.Errorf("catchup query failed for %s: %w", channel, err)
	}

	hasMore := len(stored) > catchupLimit
	if hasMore {
		stored = stored[:catchupLimit]
	}

	last := afterSeq
	for _, evt := range stored {
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := s.sink.Send(ctx, payload); err != nil {
			return last, fmt.Errorf("catchup send failed: %w", err)
		}
		last = evt.Seq
	}

	if hasMore {
		stub, _ := json.Marshal(map[string]any{
			"kind":     "catchup.overflow",
			"channel":  channel,
			"last_seq": last,
		})
		if err := s.sink.Send(ctx, stub); err != nil {
			return last, fmt.Errorf("catchup overflow send failed: %w", err)
		}
	}
	return last, nil
}

// dropFailedChannel removes every member of a channel after a LISTEN
// failure. Members that raced in between channel creation and the
// failed LISTEN believed the channel was live; they are notified with
// a subscription.error stub so their clients re-subscribe or fall back
// to the snapshot API.
func (m *Manager) dropFailedChannel(triggering *Subscriber, channel string) {
	m.channelMu.Lock()
	affected := make([]string, 0, len(m.channels[channel]))
	for id := range m.channels[channel] {
		if id != triggering.ID {
			affected = append(affected, id)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affected) == 0 {
		return
	}

	m.mu.RLock()
	subs := make([]*Subscriber, 0, len(affected))
	for _, id := range affected {
		if s, ok := m.subscribers[id]; ok {
			subs = append(subs, s)
		}
	}
	m.mu.RUnlock()

	stub, _ := json.Marshal(map[string]string{
		"kind":    "subscription.error",
		"channel": channel,
		"message": "channel listen failed; subscription removed",
	})
	for _, s := range subs {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"subscriber_id", s.ID, "channel", channel)
		if err := s.sink.Send(s.ctx, stub); err != nil {
			slog.Warn("Failed to notify orphaned subscriber", "subscriber_id", s.ID, "error", err)
		}
	}
}
