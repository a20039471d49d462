package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/pkg/database"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	testdb "github.com/kaiseki-io/kaiseki/test/database"
)

type itemFixture struct {
	client    *database.Client
	items     *ItemService
	eventsSvc *EventService
	sessionID string
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	sessions := NewSessionService(client.Client, client.DB(), publisher, 0)

	sessionID := uuid.New().String()
	_, err := sessions.CreateSession(context.Background(), sessionID, "ref.jpg", "pod-1")
	require.NoError(t, err)

	return &itemFixture{
		client:    client,
		items:     NewItemService(client.DB(), publisher),
		eventsSvc: NewEventService(client.Client),
		sessionID: sessionID,
	}
}

func (f *itemFixture) eventKinds(t *testing.T) []string {
	t.Helper()
	evts, err := f.eventsSvc.ReadEvents(context.Background(), f.sessionID, 0, 0)
	require.NoError(t, err)
	kinds := make([]string, 0, len(evts))
	for _, evt := range evts {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}

func defaultItems() []models.NewItem {
	return []models.NewItem{
		{Index: 0, SourceText: "うなぎの蒲焼", Category: "焼き物", Price: "¥2,400",
			Box: [][2]int{{10, 20}, {90, 20}, {90, 40}, {10, 40}}},
		{Index: 1, SourceText: "味噌汁", Category: "汁物"},
	}
}

func TestItemService_MaterializeItems(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	applied, err := f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
	require.NoError(t, err)
	assert.True(t, applied)

	t.Run("sets total_items and inserts rows", func(t *testing.T) {
		session, err := f.client.MenuSession.Get(ctx, f.sessionID)
		require.NoError(t, err)
		require.NotNil(t, session.TotalItems)
		assert.Equal(t, 2, *session.TotalItems)

		state, err := f.items.GetItem(ctx, f.sessionID, 0)
		require.NoError(t, err)
		assert.Equal(t, "うなぎの蒲焼", state.SourceText)
		assert.Equal(t, "焼き物", state.Category)
		assert.Equal(t, "¥2,400", state.Price)
	})

	t.Run("appends items_materialized in the same transaction", func(t *testing.T) {
		assert.Contains(t, f.eventKinds(t), events.KindItemsMaterialized)
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		applied, err := f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
		require.NoError(t, err)
		assert.False(t, applied)

		count := 0
		for _, kind := range f.eventKinds(t) {
			if kind == events.KindItemsMaterialized {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestItemService_StageTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("begin, complete, and dedupe", func(t *testing.T) {
		f := newItemFixture(t)
		_, err := f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
		require.NoError(t, err)

		applied, err := f.items.BeginStage(ctx, f.sessionID, 0, models.StageTranslate, 1)
		require.NoError(t, err)
		assert.True(t, applied)

		status, attempt, err := f.items.StageStatus(ctx, f.sessionID, 0, models.StageTranslate)
		require.NoError(t, err)
		assert.Equal(t, models.StageInFlight, status)
		assert.Equal(t, 1, attempt)

		applied, err = f.items.CompleteStage(ctx, f.sessionID, 0, models.StageTranslate, 1,
			map[string]any{"english_text": "Grilled eel", "fallback_used": false},
			map[string]any{"english_text": "Grilled eel"}, false)
		require.NoError(t, err)
		assert.True(t, applied)

		status, _, err = f.items.StageStatus(ctx, f.sessionID, 0, models.StageTranslate)
		require.NoError(t, err)
		assert.Equal(t, models.StageCompleted, status)

		// Redelivered completion hits the terminal guard.
		applied, err = f.items.CompleteStage(ctx, f.sessionID, 0, models.StageTranslate, 1,
			map[string]any{"english_text": "Grilled eel again"}, nil, false)
		require.NoError(t, err)
		assert.False(t, applied)

		kinds := f.eventKinds(t)
		assert.Contains(t, kinds, events.KindStageInFlight)
		assert.Contains(t, kinds, events.KindStageCompleted)
		assert.Contains(t, kinds, events.KindStageSkippedDuplicate)

		state, err := f.items.GetItem(ctx, f.sessionID, 0)
		require.NoError(t, err)
		assert.Equal(t, "Grilled eel", state.EnglishText, "duplicate must not clobber the result")
	})

	t.Run("stale attempt cannot complete", func(t *testing.T) {
		f := newItemFixture(t)
		_, err := f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
		require.NoError(t, err)

		_, err = f.items.BeginStage(ctx, f.sessionID, 0, models.StageDescribe, 2)
		require.NoError(t, err)

		applied, err := f.items.CompleteStage(ctx, f.sessionID, 0, models.StageDescribe, 1,
			map[string]any{"description": "stale"}, nil, false)
		require.NoError(t, err)
		assert.False(t, applied, "attempt 1 lost the race to attempt 2")

		status, _, err := f.items.StageStatus(ctx, f.sessionID, 0, models.StageDescribe)
		require.NoError(t, err)
		assert.Equal(t, models.StageInFlight, status)
	})

	t.Run("fail stage records the error once", func(t *testing.T) {
		f := newItemFixture(t)
		_, err := f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
		require.NoError(t, err)

		_, err = f.items.BeginStage(ctx, f.sessionID, 1, models.StageImage, 1)
		require.NoError(t, err)

		applied, err := f.items.FailStage(ctx, f.sessionID, 1, models.StageImage, 1, "no results")
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = f.items.FailStage(ctx, f.sessionID, 1, models.StageImage, 1, "no results")
		require.NoError(t, err)
		assert.False(t, applied)

		status, _, err := f.items.StageStatus(ctx, f.sessionID, 1, models.StageImage)
		require.NoError(t, err)
		assert.Equal(t, models.StageFailed, status)
	})

	t.Run("rejects unknown stage and column", func(t *testing.T) {
		f := newItemFixture(t)
		_, err := f.items.BeginStage(ctx, f.sessionID, 0, models.Stage("extract"), 1)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
		require.NoError(t, err)
		_, err = f.items.BeginStage(ctx, f.sessionID, 0, models.StageTranslate, 1)
		require.NoError(t, err)
		_, err = f.items.CompleteStage(ctx, f.sessionID, 0, models.StageTranslate, 1,
			map[string]any{"description": "wrong column"}, nil, false)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestItemService_SkipAndTerminal(t *testing.T) {
	ctx := context.Background()
	f := newItemFixture(t)
	_, err := f.items.MaterializeItems(ctx, f.sessionID, defaultItems())
	require.NoError(t, err)

	done, err := f.items.AllStagesTerminal(ctx, f.sessionID)
	require.NoError(t, err)
	assert.False(t, done)

	// Complete one stage, skip the rest across both items.
	_, err = f.items.BeginStage(ctx, f.sessionID, 0, models.StageTranslate, 1)
	require.NoError(t, err)
	_, err = f.items.CompleteStage(ctx, f.sessionID, 0, models.StageTranslate, 1,
		map[string]any{"english_text": "Grilled eel"}, nil, false)
	require.NoError(t, err)

	skipped, err := f.items.SkipAllPendingStages(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, 9, skipped, "5 stages x 2 items minus the completed one")

	done, err = f.items.AllStagesTerminal(ctx, f.sessionID)
	require.NoError(t, err)
	assert.True(t, done)

	t.Run("skip does not touch terminal stages", func(t *testing.T) {
		status, _, err := f.items.StageStatus(ctx, f.sessionID, 0, models.StageTranslate)
		require.NoError(t, err)
		assert.Equal(t, models.StageCompleted, status)

		applied, err := f.items.SkipStage(ctx, f.sessionID, 0, models.StageTranslate)
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("zero items is trivially terminal", func(t *testing.T) {
		empty := newItemFixture(t)
		done, err := empty.items.AllStagesTerminal(ctx, empty.sessionID)
		require.NoError(t, err)
		assert.True(t, done)
	})
}
