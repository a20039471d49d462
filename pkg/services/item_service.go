package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/models"
)

// ItemService owns menu item rows and their per-stage state machines.
//
// Stage transitions are guarded raw-SQL updates that share one
// transaction with the event append, so a stage result and its event
// are atomic and a redelivered task can never double-apply. The guard
// is WHERE <stage>_status IN ('pending','in_flight'): completed,
// failed, and skipped are terminal and no write can move them.
type ItemService struct {
	db        *sql.DB
	publisher *events.Publisher
}

// NewItemService creates a new ItemService over the shared pool.
func NewItemService(db *sql.DB, publisher *events.Publisher) *ItemService {
	return &ItemService{db: db, publisher: publisher}
}

// stageColumns whitelists the result columns each stage may write.
// Guarded updates interpolate column names, never values, and only
// names present here.
var stageColumns = map[models.Stage]map[string]bool{
	models.StageTranslate:   {"english_text": true, "fallback_used": true},
	models.StageDescribe:    {"description": true},
	models.StageAllergens:   {"allergen_entries": true},
	models.StageIngredients: {"ingredient_entries": true},
	models.StageImage:       {"image_ref": true, "image_path": true},
}

func validStage(stage models.Stage) error {
	if _, ok := stageColumns[stage]; !ok {
		return fmt.Errorf("%w: unknown item stage %q", ErrInvalidInput, stage)
	}
	return nil
}

// MaterializeItems inserts the item skeletons, sets total_items
// (write-once), and appends items_materialized, all in one transaction.
// A duplicate categorize delivery finds total_items already set and
// becomes a no-op.
func (s *ItemService) MaterializeItems(ctx context.Context, sessionID string, items []models.NewItem) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(writeCtx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin materialize transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// total_items is the write-once marker: first writer wins.
	res, err := tx.ExecContext(writeCtx,
		`UPDATE menu_sessions SET total_items = $2 WHERE session_id = $1 AND total_items IS NULL`,
		sessionID, len(items),
	)
	if err != nil {
		return false, fmt.Errorf("failed to set total_items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read total_items result: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	for _, item := range items {
		var box []byte
		if item.Box != nil {
			box, err = json.Marshal(item.Box)
			if err != nil {
				return false, fmt.Errorf("failed to marshal box for item %d: %w", item.Index, err)
			}
		}
		var price sql.NullString
		if item.Price != "" {
			price = sql.NullString{String: item.Price, Valid: true}
		}
		_, err = tx.ExecContext(writeCtx,
			`INSERT INTO menu_items (session_id, item_index, source_text, box, category, price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			sessionID, item.Index, item.SourceText, box, item.Category, price,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert item %d: %w", item.Index, err)
		}
	}

	_, err = s.publisher.AppendTx(writeCtx, tx, sessionID, events.KindItemsMaterialized,
		events.ItemsMaterializedPayload{TotalItems: len(items)})
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit materialize transaction: %w", err)
	}
	return true, nil
}

// BeginStage moves an (item, stage) to in_flight for the given attempt
// and appends stage_in_flight. When the stage is already completed it
// appends stage_skipped_duplicate instead and reports applied=false;
// the caller acks the task without running the provider call.
func (s *ItemService) BeginStage(ctx context.Context, sessionID string, itemIndex int, stage models.Stage, attempt int) (bool, error) {
	if err := validStage(stage); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin stage transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, fmt.Sprintf(
		`UPDATE menu_items
		 SET %[1]s_status = 'in_flight', %[1]s_attempt = $3, updated_at = now()
		 WHERE session_id = $1 AND item_index = $2 AND %[1]s_status IN ('pending', 'in_flight')`,
		stage), sessionID, itemIndex, attempt)
	if err != nil {
		return false, fmt.Errorf("failed to mark %s in_flight: %w", stage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read in_flight result: %w", err)
	}

	if n == 0 {
		return false, s.handleTerminalRedelivery(ctx, tx, sessionID, itemIndex, stage)
	}

	_, err = s.publisher.AppendTx(ctx, tx, sessionID, events.KindStageInFlight,
		events.StageInFlightPayload{ItemIndex: itemIndex, Stage: string(stage), Attempt: attempt})
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit in_flight transition: %w", err)
	}
	return true, nil
}

// CompleteStage writes the stage result and status completed, and
// appends stage_completed, atomically. The attempt guard means a stale
// worker whose task was already retried elsewhere cannot clobber the
// newer attempt's result.
func (s *ItemService) CompleteStage(ctx context.Context, sessionID string, itemIndex int, stage models.Stage, attempt int, result map[string]any, eventPayload map[string]any, fallbackUsed bool) (bool, error) {
	if err := validStage(stage); err != nil {
		return false, err
	}

	set := make([]string, 0, len(result)+2)
	args := []any{sessionID, itemIndex, attempt}
	// Deterministic column order keeps the SQL stable for tests and logs.
	cols := make([]string, 0, len(result))
	for col := range result {
		if !stageColumns[stage][col] {
			return false, fmt.Errorf("%w: column %q not writable by stage %s", ErrInvalidInput, col, stage)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		val := result[col]
		switch v := val.(type) {
		case []map[string]any, [][2]int, map[string]any:
			raw, err := json.Marshal(v)
			if err != nil {
				return false, fmt.Errorf("failed to marshal %s: %w", col, err)
			}
			val = raw
		}
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin stage transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	setClause := fmt.Sprintf("%[1]s_status = 'completed', %[1]s_error = NULL, updated_at = now()", stage)
	if len(set) > 0 {
		setClause += ", " + strings.Join(set, ", ")
	}
	res, err := tx.ExecContext(ctx, fmt.Sprintf(
		`UPDATE menu_items SET %s
		 WHERE session_id = $1 AND item_index = $2
		   AND %[2]s_status IN ('pending', 'in_flight') AND %[2]s_attempt = $3`,
		setClause, stage), args...)
	if err != nil {
		return false, fmt.Errorf("failed to complete %s: %w", stage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read completion result: %w", err)
	}

	if n == 0 {
		return false, s.handleTerminalRedelivery(ctx, tx, sessionID, itemIndex, stage)
	}

	_, err = s.publisher.AppendTx(ctx, tx, sessionID, events.KindStageCompleted,
		events.StageCompletedPayload{
			ItemIndex:    itemIndex,
			Stage:        string(stage),
			Payload:      eventPayload,
			FallbackUsed: fallbackUsed,
		})
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit %s completion: %w", stage, err)
	}
	return true, nil
}

// FailStage marks the stage failed after attempts are exhausted (or on
// a permanent error) and appends stage_failed atomically.
func (s *ItemService) FailStage(ctx context.Context, sessionID string, itemIndex int, stage models.Stage, attempt int, stageErr string) (bool, error) {
	if err := validStage(stage); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin stage transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, fmt.Sprintf(
		`UPDATE menu_items
		 SET %[1]s_status = 'failed', %[1]s_error = $4, updated_at = now()
		 WHERE session_id = $1 AND item_index = $2
		   AND %[1]s_status IN ('pending', 'in_flight') AND %[1]s_attempt = $3`,
		stage), sessionID, itemIndex, attempt, stageErr)
	if err != nil {
		return false, fmt.Errorf("failed to fail %s: %w", stage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read failure result: %w", err)
	}
	if n == 0 {
		// Terminal already; nothing to record.
		return false, nil
	}

	_, err = s.publisher.AppendTx(ctx, tx, sessionID, events.KindStageFailed,
		events.StageFailedPayload{ItemIndex: itemIndex, Stage: string(stage), Error: stageErr, Attempt: attempt})
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit %s failure: %w", stage, err)
	}
	return true, nil
}

// SkipStage resolves a non-terminal stage to skipped. Used during
// cancellation so every stage still reaches a terminal status.
func (s *ItemService) SkipStage(ctx context.Context, sessionID string, itemIndex int, stage models.Stage) (bool, error) {
	if err := validStage(stage); err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`UPDATE menu_items
		 SET %[1]s_status = 'skipped', updated_at = now()
		 WHERE session_id = $1 AND item_index = $2 AND %[1]s_status IN ('pending', 'in_flight')`,
		stage), sessionID, itemIndex)
	if err != nil {
		return false, fmt.Errorf("failed to skip %s: %w", stage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SkipAllPendingStages resolves every non-terminal stage of every item
// to skipped. Returns the number of stage transitions applied.
func (s *ItemService) SkipAllPendingStages(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total := 0
	for stage := range stageColumns {
		res, err := s.db.ExecContext(writeCtx, fmt.Sprintf(
			`UPDATE menu_items
			 SET %[1]s_status = 'skipped', updated_at = now()
			 WHERE session_id = $1 AND %[1]s_status IN ('pending', 'in_flight')`,
			stage), sessionID)
		if err != nil {
			return total, fmt.Errorf("failed to skip pending %s stages: %w", stage, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += int(n)
	}
	return total, nil
}

// ItemState is the subset of item columns stage executors read.
type ItemState struct {
	SourceText  string
	Category    string
	Price       string
	EnglishText string
	Description string
}

// GetItem reads the fields stage executors need for provider calls.
func (s *ItemService) GetItem(ctx context.Context, sessionID string, itemIndex int) (*ItemState, error) {
	var (
		state                           ItemState
		price, englishText, description sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT source_text, category, price, english_text, description
		 FROM menu_items WHERE session_id = $1 AND item_index = $2`,
		sessionID, itemIndex,
	).Scan(&state.SourceText, &state.Category, &price, &englishText, &description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read item: %w", err)
	}
	state.Price = price.String
	state.EnglishText = englishText.String
	state.Description = description.String
	return &state, nil
}

// AllStagesTerminal reports whether every stage of every item reached a
// terminal status. Sessions with zero items are trivially terminal.
func (s *ItemService) AllStagesTerminal(ctx context.Context, sessionID string) (bool, error) {
	var pending int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM menu_items
		 WHERE session_id = $1 AND (
		   translate_status   IN ('pending', 'in_flight') OR
		   describe_status    IN ('pending', 'in_flight') OR
		   allergens_status   IN ('pending', 'in_flight') OR
		   ingredients_status IN ('pending', 'in_flight') OR
		   image_status       IN ('pending', 'in_flight'))`,
		sessionID,
	).Scan(&pending)
	if err != nil {
		return false, fmt.Errorf("failed to count non-terminal stages: %w", err)
	}
	return pending == 0, nil
}

// StageStatus reads the current status and attempt for one (item, stage).
func (s *ItemService) StageStatus(ctx context.Context, sessionID string, itemIndex int, stage models.Stage) (models.StageStatus, int, error) {
	if err := validStage(stage); err != nil {
		return "", 0, err
	}
	var status string
	var attempt int
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %[1]s_status, %[1]s_attempt FROM menu_items WHERE session_id = $1 AND item_index = $2`,
		stage), sessionID, itemIndex).Scan(&status, &attempt)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", 0, ErrNotFound
		}
		return "", 0, fmt.Errorf("failed to read %s status: %w", stage, err)
	}
	return models.StageStatus(status), attempt, nil
}

// handleTerminalRedelivery runs inside a failed guarded update's
// transaction. An already-completed stage gets a
// stage_skipped_duplicate event; other terminal states are silent.
func (s *ItemService) handleTerminalRedelivery(ctx context.Context, tx *sql.Tx, sessionID string, itemIndex int, stage models.Stage) error {
	var status string
	err := tx.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s_status FROM menu_items WHERE session_id = $1 AND item_index = $2`,
		stage), sessionID, itemIndex).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: item %d in session %s", ErrNotFound, itemIndex, sessionID)
		}
		return fmt.Errorf("failed to read %s status: %w", stage, err)
	}

	if models.StageStatus(status) != models.StageCompleted {
		return nil
	}
	_, err = s.publisher.AppendTx(ctx, tx, sessionID, events.KindStageSkippedDuplicate,
		events.StageSkippedDuplicatePayload{ItemIndex: itemIndex, Stage: string(stage)})
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit duplicate-skip event: %w", err)
	}
	return nil
}
