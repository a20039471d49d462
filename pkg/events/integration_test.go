package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	testdb "github.com/kaiseki-io/kaiseki/test/database"
)

func TestEventDelivery(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}
	ctx := context.Background()

	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	sessionID := uuid.New().String()
	_, err := client.MenuSession.Create().
		SetID(sessionID).
		SetUploadRef("ref.jpg").
		Save(ctx)
	require.NoError(t, err)

	manager := NewManager(nil)
	listener := NewListener(shared.ConnString(), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	publisher := NewPublisher(client.DB())

	t.Run("published event reaches a live subscriber", func(t *testing.T) {
		sink := &recordingSink{}
		sub := manager.Register(ctx, sink)
		t.Cleanup(sub.Close)
		require.NoError(t, sub.Subscribe(SessionChannel(sessionID)))

		seq, err := publisher.Publish(ctx, sessionID, KindSessionCreated, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)

		require.Eventually(t, func() bool {
			return len(sink.received()) >= 1
		}, 5*time.Second, 20*time.Millisecond)

		var m map[string]any
		require.NoError(t, json.Unmarshal(sink.received()[0], &m))
		assert.Equal(t, sessionID, m["session_id"])
		assert.Equal(t, float64(1), m["seq"])
		assert.Equal(t, KindSessionCreated, m["kind"])
	})

	t.Run("oversized event arrives as a truncated stub", func(t *testing.T) {
		sink := &recordingSink{}
		sub := manager.Register(ctx, sink)
		t.Cleanup(sub.Close)
		require.NoError(t, sub.Subscribe(SessionChannel(sessionID)))

		big := make([]byte, 9000)
		for i := range big {
			big[i] = 'a'
		}
		seq, err := publisher.Publish(ctx, sessionID, KindExtractCompleted,
			ExtractCompletedPayload{FullText: string(big)})
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			return len(sink.received()) >= 1
		}, 5*time.Second, 20*time.Millisecond)

		var m map[string]any
		require.NoError(t, json.Unmarshal(sink.received()[0], &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, float64(seq), m["seq"])
		assert.NotContains(t, m, "full_text")
	})

	t.Run("unsubscribed channel receives nothing", func(t *testing.T) {
		sink := &recordingSink{}
		sub := manager.Register(ctx, sink)
		t.Cleanup(sub.Close)
		require.NoError(t, sub.Subscribe(SessionChannel("some-other-session")))

		_, err := publisher.Publish(ctx, sessionID, KindSessionCompleted, nil)
		require.NoError(t, err)

		time.Sleep(300 * time.Millisecond)
		assert.Empty(t, sink.received())
	})
}

func TestConcurrentSeqAllocation(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}
	ctx := context.Background()

	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	sessionID := uuid.New().String()
	_, err := client.MenuSession.Create().
		SetID(sessionID).
		SetUploadRef("ref.jpg").
		Save(ctx)
	require.NoError(t, err)

	publisher := NewPublisher(client.DB())

	const writers = 8
	const perWriter = 10

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				if _, err := publisher.Publish(ctx, sessionID, KindStageCompleted,
					StageCompletedPayload{ItemIndex: i, Stage: "translate"}); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	t.Run("sequences are gap-free and unique", func(t *testing.T) {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT seq FROM pipeline_events WHERE session_id = $1 ORDER BY seq`, sessionID)
		require.NoError(t, err)
		defer rows.Close()

		var seqs []int64
		for rows.Next() {
			var seq int64
			require.NoError(t, rows.Scan(&seq))
			seqs = append(seqs, seq)
		}
		require.NoError(t, rows.Err())

		require.Len(t, seqs, writers*perWriter)
		for i, seq := range seqs {
			require.Equal(t, int64(i+1), seq, "gap or duplicate at position %d", i)
		}
	})

	t.Run("last_seq matches the log", func(t *testing.T) {
		session, err := client.MenuSession.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, int64(writers*perWriter), session.LastSeq)
	})
}
