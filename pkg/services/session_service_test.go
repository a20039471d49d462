package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/pkg/database"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	testdb "github.com/kaiseki-io/kaiseki/test/database"
)

func newTestSessionService(client *database.Client, maxPending int) *SessionService {
	return NewSessionService(client.Client, client.DB(), events.NewPublisher(client.DB()), maxPending)
}

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(client, 0)
	ctx := context.Background()

	t.Run("creates pending session", func(t *testing.T) {
		id := uuid.New().String()
		session, err := service.CreateSession(ctx, id, "sessions/"+id+"/upload.jpg", "pod-1")
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
		assert.Equal(t, menusession.StatusPending, session.Status)
		assert.Equal(t, "sessions/"+id+"/upload.jpg", session.UploadRef)
		assert.Equal(t, int64(0), session.LastSeq)
		assert.Nil(t, session.TotalItems)
		assert.False(t, session.CancelRequested)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateSession(ctx, "", "ref", "pod-1")
		assert.True(t, IsValidationError(err))
		_, err = service.CreateSession(ctx, uuid.New().String(), "", "pod-1")
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate session id", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateSession(ctx, id, "ref.jpg", "pod-1")
		require.NoError(t, err)
		_, err = service.CreateSession(ctx, id, "ref.jpg", "pod-1")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSessionService_Capacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(client, 2)
	ctx := context.Background()

	_, err := service.CreateSession(ctx, uuid.New().String(), "a.jpg", "pod-1")
	require.NoError(t, err)
	_, err = service.CreateSession(ctx, uuid.New().String(), "b.jpg", "pod-1")
	require.NoError(t, err)

	_, err = service.CreateSession(ctx, uuid.New().String(), "c.jpg", "pod-1")
	assert.ErrorIs(t, err, ErrCapacity)

	t.Run("terminal sessions free capacity", func(t *testing.T) {
		sessions, err := client.MenuSession.Query().All(ctx)
		require.NoError(t, err)
		_, err = service.MarkTerminal(ctx, sessions[0].ID, menusession.StatusCompleted, "")
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, uuid.New().String(), "d.jpg", "pod-1")
		assert.NoError(t, err)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(client, 0)
	ctx := context.Background()

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		_, err := service.GetSession(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("soft-deleted session is ErrGone", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateSession(ctx, id, "ref.jpg", "pod-1")
		require.NoError(t, err)
		require.NoError(t, client.MenuSession.UpdateOneID(id).SetDeletedAt(time.Now()).Exec(ctx))

		_, err = service.GetSession(ctx, id)
		assert.ErrorIs(t, err, ErrGone)
	})
}

func TestSessionService_Transitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(client, 0)
	ctx := context.Background()

	newSession := func(t *testing.T) string {
		t.Helper()
		id := uuid.New().String()
		_, err := service.CreateSession(ctx, id, "ref.jpg", "pod-1")
		require.NoError(t, err)
		return id
	}

	t.Run("MarkProcessing applies once and commits the event with the transition", func(t *testing.T) {
		id := newSession(t)

		applied, err := service.MarkProcessing(ctx, id, events.KindExtractCompleted,
			events.ExtractCompletedPayload{FullText: "うなぎの蒲焼 ¥2,400"})
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = service.MarkProcessing(ctx, id, events.KindExtractCompleted, nil)
		require.NoError(t, err)
		assert.False(t, applied, "second delivery is a no-op")

		session, err := service.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, menusession.StatusProcessing, session.Status)
		assert.Equal(t, int64(1), session.LastSeq, "transition and event share one transaction")

		payload, err := NewEventService(client.Client).LatestOfKind(ctx, id, events.KindExtractCompleted)
		require.NoError(t, err)
		assert.Equal(t, "うなぎの蒲焼 ¥2,400", payload["full_text"])
	})

	t.Run("MarkTerminal applies once and stamps completed_at", func(t *testing.T) {
		id := newSession(t)

		applied, err := service.MarkTerminal(ctx, id, menusession.StatusCompleted, "")
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = service.MarkTerminal(ctx, id, menusession.StatusFailed, "late failure")
		require.NoError(t, err)
		assert.False(t, applied, "terminal status never changes")

		session, err := service.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, menusession.StatusCompleted, session.Status)
		assert.NotNil(t, session.CompletedAt)
		assert.Nil(t, session.ErrorMessage)
	})

	t.Run("MarkTerminal records the failure message", func(t *testing.T) {
		id := newSession(t)

		applied, err := service.MarkTerminal(ctx, id, menusession.StatusFailed, "extract failed")
		require.NoError(t, err)
		assert.True(t, applied)

		session, err := service.GetSession(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, session.ErrorMessage)
		assert.Equal(t, "extract failed", *session.ErrorMessage)
	})

	t.Run("RequestCancel flags active sessions only", func(t *testing.T) {
		id := newSession(t)

		applied, err := service.RequestCancel(ctx, id)
		require.NoError(t, err)
		assert.True(t, applied)

		requested, err := service.IsCancelRequested(ctx, id)
		require.NoError(t, err)
		assert.True(t, requested)

		applied, err = service.RequestCancel(ctx, id)
		require.NoError(t, err)
		assert.False(t, applied, "already flagged")

		_, err = service.RequestCancel(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("RequestCancel on terminal session is a no-op", func(t *testing.T) {
		id := newSession(t)
		_, err := service.MarkTerminal(ctx, id, menusession.StatusCompleted, "")
		require.NoError(t, err)

		applied, err := service.RequestCancel(ctx, id)
		require.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestSessionService_FindTimedOutSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(client, 0)
	ctx := context.Background()

	staleID := uuid.New().String()
	_, err := service.CreateSession(ctx, staleID, "ref.jpg", "pod-1")
	require.NoError(t, err)
	// created_at is immutable through ent; backdate it directly.
	_, err = client.DB().ExecContext(ctx,
		`UPDATE menu_sessions SET created_at = now() - interval '2 hours' WHERE session_id = $1`, staleID)
	require.NoError(t, err)

	freshID := uuid.New().String()
	_, err = service.CreateSession(ctx, freshID, "ref.jpg", "pod-1")
	require.NoError(t, err)

	timedOut, err := service.FindTimedOutSessions(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, timedOut, 1)
	assert.Equal(t, staleID, timedOut[0].ID)
}

func TestSessionService_Retention(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(client, 0)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := service.CreateSession(ctx, id, "ref.jpg", "pod-1")
	require.NoError(t, err)
	_, err = service.MarkTerminal(ctx, id, menusession.StatusCompleted, "")
	require.NoError(t, err)
	require.NoError(t, client.MenuSession.UpdateOneID(id).
		SetCompletedAt(time.Now().Add(-48*time.Hour)).Exec(ctx))

	t.Run("soft delete picks up old terminal sessions", func(t *testing.T) {
		count, err := service.SoftDeleteOldSessions(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = service.GetSession(ctx, id)
		assert.ErrorIs(t, err, ErrGone)

		count, err = service.SoftDeleteOldSessions(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Zero(t, count, "already soft deleted")
	})

	t.Run("hard delete waits for the grace window", func(t *testing.T) {
		count, err := service.HardDeleteExpiredSessions(ctx, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, count, "grace not yet elapsed")

		require.NoError(t, client.MenuSession.UpdateOneID(id).
			SetDeletedAt(time.Now().Add(-2*time.Hour)).Exec(ctx))

		count, err = service.HardDeleteExpiredSessions(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = service.GetSession(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := service.SoftDeleteOldSessions(ctx, 0)
		assert.Error(t, err)
	})
}
