package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/ent/task"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	testdb "github.com/kaiseki-io/kaiseki/test/database"
)

func taskFixture(t *testing.T) (*TaskService, *SessionService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client, client.DB(), events.NewPublisher(client.DB()), 0)
	sessionID := uuid.New().String()
	_, err := sessions.CreateSession(context.Background(), sessionID, "ref.jpg", "pod-1")
	require.NoError(t, err)
	return NewTaskService(client.Client), sessions, sessionID
}

func intPtr(i int) *int { return &i }

func TestTaskService_Enqueue(t *testing.T) {
	tasks, _, sessionID := taskFixture(t)
	ctx := context.Background()

	t.Run("scaffold task has no item index", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageExtract, nil)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "ocr", created.Queue)
		assert.Equal(t, "extract", created.Stage)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Nil(t, created.ItemIndex)
	})

	t.Run("item task carries its index", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(3))
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "translate", created.Queue)
		require.NotNil(t, created.ItemIndex)
		assert.Equal(t, 3, *created.ItemIndex)
	})

	t.Run("re-enqueue is a no-op", func(t *testing.T) {
		dup, err := tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(3))
		require.NoError(t, err)
		assert.Nil(t, dup)
	})
}

func TestTaskService_Claim(t *testing.T) {
	tasks, _, sessionID := taskFixture(t)
	ctx := context.Background()

	t.Run("empty queue claims nothing", func(t *testing.T) {
		claimed, err := tasks.Claim(ctx, "translate", "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("claims oldest ready task and marks it in_flight", func(t *testing.T) {
		first, err := tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(0))
		require.NoError(t, err)
		_, err = tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(1))
		require.NoError(t, err)

		claimed, err := tasks.Claim(ctx, "translate", "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, task.StatusInFlight, claimed.Status)
		require.NotNil(t, claimed.ClaimedBy)
		assert.Equal(t, "pod-1", *claimed.ClaimedBy)
		assert.NotNil(t, claimed.ClaimedAt)
	})

	t.Run("claimed tasks are invisible to other claimers", func(t *testing.T) {
		second, err := tasks.Claim(ctx, "translate", "pod-2")
		require.NoError(t, err)
		require.NotNil(t, second)

		third, err := tasks.Claim(ctx, "translate", "pod-2")
		require.NoError(t, err)
		assert.Nil(t, third)
	})

	t.Run("not_before defers visibility", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageDescribe, intPtr(0))
		require.NoError(t, err)
		require.NoError(t, tasks.Retry(ctx, created.ID, 1, time.Now().Add(time.Hour), "backoff"))

		claimed, err := tasks.Claim(ctx, "describe", "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed, "backoff deadline not reached")

		require.NoError(t, tasks.Retry(ctx, created.ID, 1, time.Now().Add(-time.Second), "backoff"))
		claimed, err = tasks.Claim(ctx, "describe", "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, 1, claimed.Attempt)
	})
}

func TestTaskService_Lifecycle(t *testing.T) {
	tasks, _, sessionID := taskFixture(t)
	ctx := context.Background()

	t.Run("complete clears the error", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(0))
		require.NoError(t, err)
		require.NoError(t, tasks.Retry(ctx, created.ID, 1, time.Now(), "transient blip"))
		require.NoError(t, tasks.Complete(ctx, created.ID, 2))

		claimed, err := tasks.Claim(ctx, "translate", "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed, "done tasks are not claimable")
	})

	t.Run("retry releases the claim", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageImage, intPtr(0))
		require.NoError(t, err)
		claimed, err := tasks.Claim(ctx, "image", "pod-1")
		require.NoError(t, err)
		require.Equal(t, created.ID, claimed.ID)

		require.NoError(t, tasks.Retry(ctx, created.ID, 1, time.Now(), "provider timeout"))

		reclaimed, err := tasks.Claim(ctx, "image", "pod-2")
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		require.NotNil(t, reclaimed.ClaimedBy)
		assert.Equal(t, "pod-2", *reclaimed.ClaimedBy)
		require.NotNil(t, reclaimed.LastError)
		assert.Equal(t, "provider timeout", *reclaimed.LastError)
	})

	t.Run("dead tasks are not claimable", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageAllergens, intPtr(0))
		require.NoError(t, err)
		require.NoError(t, tasks.MarkDead(ctx, created.ID, 4, "attempts exhausted"))

		claimed, err := tasks.Claim(ctx, "allergens", "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("unknown task id", func(t *testing.T) {
		assert.ErrorIs(t, tasks.Complete(ctx, uuid.New().String(), 1), ErrNotFound)
		assert.ErrorIs(t, tasks.Heartbeat(ctx, uuid.New().String()), ErrNotFound)
	})
}

func TestTaskService_Recovery(t *testing.T) {
	tasks, _, sessionID := taskFixture(t)
	ctx := context.Background()

	t.Run("heartbeat keeps a task off the stale scan", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(0))
		require.NoError(t, err)
		_, err = tasks.Claim(ctx, "translate", "pod-1")
		require.NoError(t, err)

		require.NoError(t, tasks.Heartbeat(ctx, created.ID))

		count, err := tasks.RequeueStale(ctx, time.Minute)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("heartbeat on a pending task is ErrNotFound", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageDescribe, intPtr(0))
		require.NoError(t, err)
		assert.ErrorIs(t, tasks.Heartbeat(ctx, created.ID), ErrNotFound)
	})

	t.Run("requeue stale returns lapsed claims to pending", func(t *testing.T) {
		created, err := tasks.Enqueue(ctx, sessionID, models.StageIngredients, intPtr(0))
		require.NoError(t, err)
		_, err = tasks.Claim(ctx, "ingredients", "pod-1")
		require.NoError(t, err)

		count, err := tasks.RequeueStale(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		claimed, err := tasks.Claim(ctx, "ingredients", "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, created.ID, claimed.ID)
	})

	t.Run("release pod tasks frees only that pod's claims", func(t *testing.T) {
		mine, err := tasks.Enqueue(ctx, sessionID, models.StageImage, intPtr(1))
		require.NoError(t, err)
		_, err = tasks.Claim(ctx, "image", "pod-a")
		require.NoError(t, err)

		theirs, err := tasks.Enqueue(ctx, sessionID, models.StageImage, intPtr(2))
		require.NoError(t, err)
		_, err = tasks.Claim(ctx, "image", "pod-b")
		require.NoError(t, err)
		_ = theirs

		count, err := tasks.ReleasePodTasks(ctx, "pod-a")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		reclaimed, err := tasks.Claim(ctx, "image", "pod-c")
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, mine.ID, reclaimed.ID)
	})
}

func TestTaskService_CancelAndDepth(t *testing.T) {
	tasks, _, sessionID := taskFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := tasks.Enqueue(ctx, sessionID, models.StageTranslate, intPtr(i))
		require.NoError(t, err)
	}
	inFlight, err := tasks.Claim(ctx, "translate", "pod-1")
	require.NoError(t, err)
	require.NotNil(t, inFlight)

	depth, err := tasks.QueueDepth(ctx, "translate")
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	cancelled, err := tasks.CancelSessionTasks(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled, "in_flight tasks finish via their executors")

	depth, err = tasks.QueueDepth(ctx, "translate")
	require.NoError(t, err)
	assert.Zero(t, depth)
}
