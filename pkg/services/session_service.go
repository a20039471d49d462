package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/models"
)

// SessionService manages menu session lifecycle
type SessionService struct {
	client     *ent.Client
	db         *sql.DB
	publisher  *events.Publisher
	maxPending int
}

// NewSessionService creates a new SessionService. maxPending caps the
// number of non-terminal sessions; past it CreateSession returns
// ErrCapacity and the API answers 503.
func NewSessionService(client *ent.Client, db *sql.DB, publisher *events.Publisher, maxPending int) *SessionService {
	return &SessionService{client: client, db: db, publisher: publisher, maxPending: maxPending}
}

// CreateSession creates a pending session row for an uploaded menu photo.
func (s *SessionService) CreateSession(httpCtx context.Context, sessionID, uploadRef, podID string) (*ent.MenuSession, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if uploadRef == "" {
		return nil, NewValidationError("upload_ref", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	active, err := s.client.MenuSession.Query().
		Where(menusession.StatusIn(menusession.StatusPending, menusession.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	if s.maxPending > 0 && active >= s.maxPending {
		return nil, ErrCapacity
	}

	session, err := s.client.MenuSession.Create().
		SetID(sessionID).
		SetUploadRef(uploadRef).
		SetStatus(menusession.StatusPending).
		SetPodID(podID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID. Soft-deleted sessions return
// ErrGone so the API can answer 410 instead of 404.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.MenuSession, error) {
	session, err := s.client.MenuSession.Query().
		Where(menusession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session.DeletedAt != nil {
		return nil, ErrGone
	}
	return session, nil
}

// Snapshot assembles the full session snapshot including item state.
func (s *SessionService) Snapshot(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.client.MenuItem.Query().
		Where(menuitem.SessionIDEQ(sessionID)).
		Order(ent.Asc(menuitem.FieldItemIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list session items: %w", err)
	}

	snap := &models.SessionSnapshot{
		SessionID:  session.ID,
		Status:     string(session.Status),
		TotalItems: session.TotalItems,
		Items:      make([]models.ItemSnapshot, 0, len(items)),
		LastSeq:    session.LastSeq,
		CreatedAt:  session.CreatedAt,
	}
	if session.ErrorMessage != nil {
		snap.Error = *session.ErrorMessage
	}
	for _, item := range items {
		snap.Items = append(snap.Items, itemSnapshot(item))
	}
	return snap, nil
}

func itemSnapshot(item *ent.MenuItem) models.ItemSnapshot {
	is := models.ItemSnapshot{
		Index:       item.ItemIndex,
		SourceText:  item.SourceText,
		Box:         item.Box,
		Category:    item.Category,
		Fallback:    item.FallbackUsed,
		Allergens:   item.AllergenEntries,
		Ingredients: item.IngredientEntries,
		Stages: map[string]models.StageStatus{
			string(models.StageTranslate):   models.StageStatus(item.TranslateStatus),
			string(models.StageDescribe):    models.StageStatus(item.DescribeStatus),
			string(models.StageAllergens):   models.StageStatus(item.AllergensStatus),
			string(models.StageIngredients): models.StageStatus(item.IngredientsStatus),
			string(models.StageImage):       models.StageStatus(item.ImageStatus),
		},
	}
	if item.Price != nil {
		is.Price = *item.Price
	}
	if item.EnglishText != nil {
		is.EnglishText = *item.EnglishText
	}
	if item.Description != nil {
		is.Description = *item.Description
	}
	if item.ImageRef != nil {
		is.ImageRef = *item.ImageRef
	}
	if item.ImagePath != nil {
		is.ImagePath = *item.ImagePath
	}
	return is
}

// UpdateSessionStatus updates a session's status. Terminal statuses
// also stamp completed_at.
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status menusession.Status, errorMessage string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.MenuSession.UpdateOneID(sessionID).
		SetStatus(status)
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	if status == menusession.StatusCompleted || status == menusession.StatusFailed {
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// MarkProcessing moves a pending session to processing and appends the
// given event in the same transaction, so the transition is never
// observable without the event carrying its output. Reports false when
// the session already left pending (duplicate extract delivery), which
// callers use as their idempotency guard: once the status reads
// processing, the event is guaranteed to be in the log.
func (s *SessionService) MarkProcessing(ctx context.Context, sessionID, kind string, payload any) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(writeCtx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin processing transition: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(writeCtx,
		`UPDATE menu_sessions SET status = 'processing' WHERE session_id = $1 AND status = 'pending'`,
		sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to mark session processing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read processing result: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err := s.publisher.AppendTx(writeCtx, tx, sessionID, kind, payload); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit processing transition: %w", err)
	}
	return true, nil
}

// MarkTerminal moves a non-terminal session to completed or failed.
// Reports false when the session already reached a terminal status, so
// callers emit their terminal event exactly once.
func (s *SessionService) MarkTerminal(ctx context.Context, sessionID string, status menusession.Status, errorMessage string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.MenuSession.Update().
		Where(
			menusession.IDEQ(sessionID),
			menusession.StatusIn(menusession.StatusPending, menusession.StatusProcessing),
		).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark session terminal: %w", err)
	}
	return count > 0, nil
}

// RequestCancel flags the session for cancellation. Returns false when
// the session was already terminal.
func (s *SessionService) RequestCancel(ctx context.Context, sessionID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Existence check first so callers can distinguish 404 from no-op.
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return false, err
	}

	count, err := s.client.MenuSession.Update().
		Where(
			menusession.IDEQ(sessionID),
			menusession.StatusIn(menusession.StatusPending, menusession.StatusProcessing),
			menusession.CancelRequestedEQ(false),
		).
		SetCancelRequested(true).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to request cancel: %w", err)
	}
	return count > 0, nil
}

// IsCancelRequested reports whether cancellation has been requested.
// Executors check this at attempt start.
func (s *SessionService) IsCancelRequested(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.client.MenuSession.Query().
		Where(menusession.IDEQ(sessionID)).
		Select(menusession.FieldCancelRequested).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read cancel flag: %w", err)
	}
	return session.CancelRequested, nil
}

// FindTimedOutSessions returns non-terminal sessions older than the
// session timeout. The orchestrator force-fails them.
func (s *SessionService) FindTimedOutSessions(ctx context.Context, timeout time.Duration) ([]*ent.MenuSession, error) {
	threshold := time.Now().Add(-timeout)

	sessions, err := s.client.MenuSession.Query().
		Where(
			menusession.StatusIn(menusession.StatusPending, menusession.StatusProcessing),
			menusession.CreatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find timed out sessions: %w", err)
	}
	return sessions, nil
}

// SoftDeleteOldSessions soft deletes terminal sessions whose
// completed_at is past the retention window. Soft-deleted sessions
// answer 410 until the hard delete prunes them.
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", retention)
	}
	cutoff := time.Now().Add(-retention)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.MenuSession.Update().
		Where(
			menusession.CompletedAtLT(cutoff),
			menusession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}
	return count, nil
}

// HardDeleteExpiredSessions removes soft-deleted sessions whose grace
// window has passed. Items, events, and tasks go with them via cascade.
func (s *SessionService) HardDeleteExpiredSessions(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := time.Now().Add(-grace)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.MenuSession.Delete().
		Where(
			menusession.DeletedAtNotNil(),
			menusession.DeletedAtLT(cutoff),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to hard delete sessions: %w", err)
	}
	return count, nil
}
