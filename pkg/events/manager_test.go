package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures delivered payloads.
type recordingSink struct {
	mu       sync.Mutex
	payloads [][]byte
	failWith error
}

func (s *recordingSink) Send(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	s.payloads = append(s.payloads, buf)
	return nil
}

func (s *recordingSink) received() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.payloads...)
}

// fakeCatchup serves a fixed event log.
type fakeCatchup struct {
	events []StoredEvent
	err    error
}

func (f *fakeCatchup) CatchupEvents(_ context.Context, _ string, afterSeq int64, limit int) ([]StoredEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []StoredEvent
	for _, e := range f.events {
		if e.Seq > afterSeq {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestManagerBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to subscribed sinks only", func(t *testing.T) {
		m := NewManager(nil)
		subscribed := &recordingSink{}
		other := &recordingSink{}

		s1 := m.Register(ctx, subscribed)
		s2 := m.Register(ctx, other)
		require.NoError(t, s1.Subscribe("menu_session:a"))
		require.NoError(t, s2.Subscribe("menu_session:b"))

		m.Broadcast("menu_session:a", []byte(`{"seq":1}`))

		assert.Len(t, subscribed.received(), 1)
		assert.Empty(t, other.received())
	})

	t.Run("send failure does not drop other subscribers", func(t *testing.T) {
		m := NewManager(nil)
		broken := &recordingSink{failWith: errors.New("gone")}
		healthy := &recordingSink{}

		s1 := m.Register(ctx, broken)
		s2 := m.Register(ctx, healthy)
		require.NoError(t, s1.Subscribe("menu_session:a"))
		require.NoError(t, s2.Subscribe("menu_session:a"))

		m.Broadcast("menu_session:a", []byte(`{"seq":1}`))
		assert.Len(t, healthy.received(), 1)
	})

	t.Run("unsubscribed sink stops receiving", func(t *testing.T) {
		m := NewManager(nil)
		sink := &recordingSink{}
		sub := m.Register(ctx, sink)
		require.NoError(t, sub.Subscribe("menu_session:a"))

		sub.Unsubscribe("menu_session:a")
		m.Broadcast("menu_session:a", []byte(`{"seq":1}`))
		assert.Empty(t, sink.received())
	})

	t.Run("close removes all subscriptions", func(t *testing.T) {
		m := NewManager(nil)
		sink := &recordingSink{}
		sub := m.Register(ctx, sink)
		require.NoError(t, sub.Subscribe("menu_session:a"))
		require.NoError(t, sub.Subscribe("menu_session:b"))

		sub.Close()

		assert.Equal(t, 0, m.ActiveSubscribers())
		assert.Equal(t, 0, m.subscriberCount("menu_session:a"))
		assert.Equal(t, 0, m.subscriberCount("menu_session:b"))
	})
}

func TestSubscriberCatchup(t *testing.T) {
	ctx := context.Background()

	storedEvent := func(seq int64) StoredEvent {
		return StoredEvent{Seq: seq, Payload: map[string]any{"seq": seq, "kind": "stage_completed"}}
	}

	t.Run("replays events after the cursor", func(t *testing.T) {
		m := NewManager(&fakeCatchup{events: []StoredEvent{
			storedEvent(1), storedEvent(2), storedEvent(3),
		}})
		sink := &recordingSink{}
		sub := m.Register(ctx, sink)

		last, err := sub.Catchup(ctx, "menu_session:a", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), last)
		assert.Len(t, sink.received(), 2)
	})

	t.Run("empty log returns the cursor unchanged", func(t *testing.T) {
		m := NewManager(&fakeCatchup{})
		sink := &recordingSink{}
		sub := m.Register(ctx, sink)

		last, err := sub.Catchup(ctx, "menu_session:a", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), last)
		assert.Empty(t, sink.received())
	})

	t.Run("overflow sends stub instead of paginating", func(t *testing.T) {
		var evts []StoredEvent
		for i := 1; i <= catchupLimit+50; i++ {
			evts = append(evts, storedEvent(int64(i)))
		}
		m := NewManager(&fakeCatchup{events: evts})
		sink := &recordingSink{}
		sub := m.Register(ctx, sink)

		last, err := sub.Catchup(ctx, "menu_session:a", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(catchupLimit), last)

		got := sink.received()
		require.Len(t, got, catchupLimit+1)

		var stub map[string]any
		require.NoError(t, json.Unmarshal(got[len(got)-1], &stub))
		assert.Equal(t, "catchup.overflow", stub["kind"])
		assert.Equal(t, float64(catchupLimit), stub["last_seq"])
	})

	t.Run("query error surfaces", func(t *testing.T) {
		m := NewManager(&fakeCatchup{err: fmt.Errorf("db down")})
		sub := m.Register(ctx, &recordingSink{})

		_, err := sub.Catchup(ctx, "menu_session:a", 0)
		assert.Error(t, err)
	})
}
