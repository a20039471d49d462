package stages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/imagestore"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
	testdb "github.com/kaiseki-io/kaiseki/test/database"
)

// recordingNotifier captures orchestrator callbacks.
type recordingNotifier struct {
	extractDone  []string
	materialized []string
	terminal     []terminalCall
	failures     []string
}

type terminalCall struct {
	sessionID string
	itemIndex int
	stage     models.Stage
}

func (n *recordingNotifier) OnExtractCompleted(_ context.Context, sessionID string) {
	n.extractDone = append(n.extractDone, sessionID)
}

func (n *recordingNotifier) OnItemsMaterialized(_ context.Context, sessionID string, _ int) {
	n.materialized = append(n.materialized, sessionID)
}

func (n *recordingNotifier) OnStageTerminal(_ context.Context, sessionID string, itemIndex int, stage models.Stage) {
	n.terminal = append(n.terminal, terminalCall{sessionID, itemIndex, stage})
}

func (n *recordingNotifier) FailSession(_ context.Context, sessionID, reason string) {
	n.failures = append(n.failures, sessionID+": "+reason)
}

type countingExtractor struct{ calls int }

func (c *countingExtractor) ExtractText(context.Context, []byte) (*providers.ExtractResult, error) {
	c.calls++
	return &providers.ExtractResult{FullText: "焼き物"}, nil
}

type countingTranslator struct{ calls int }

func (c *countingTranslator) Translate(context.Context, string, string, string) (*providers.TranslateResult, error) {
	c.calls++
	return &providers.TranslateResult{Text: "Miso soup"}, nil
}

type stageFixture struct {
	deps       *Deps
	notifier   *recordingNotifier
	extractor  *countingExtractor
	translator *countingTranslator
	eventsSvc  *services.EventService
	sessionID  string
}

func newStageFixture(t *testing.T) *stageFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	sessions := services.NewSessionService(client.Client, client.DB(), publisher, 0)

	store, err := imagestore.NewFSStore(t.TempDir())
	require.NoError(t, err)

	f := &stageFixture{
		notifier:   &recordingNotifier{},
		extractor:  &countingExtractor{},
		translator: &countingTranslator{},
		eventsSvc:  services.NewEventService(client.Client),
		sessionID:  uuid.New().String(),
	}
	f.deps = &Deps{
		Sessions:  sessions,
		Items:     services.NewItemService(client.DB(), publisher),
		Events:    f.eventsSvc,
		Publisher: publisher,
		Caps: &providers.Capabilities{
			Extractor:         f.extractor,
			PrimaryTranslator: f.translator,
		},
		Notifier: f.notifier,
		Cfg: &config.Config{
			Session: config.DefaultSessionConfig(),
			Stages:  config.DefaultStagesConfig(),
		},
		Images: store,
	}

	_, err = sessions.CreateSession(context.Background(), f.sessionID, "ref.jpg", "pod-1")
	require.NoError(t, err)
	return f
}

func (f *stageFixture) countEvents(t *testing.T, kind string) int {
	t.Helper()
	evts, err := f.eventsSvc.ReadEvents(context.Background(), f.sessionID, 0, 0)
	require.NoError(t, err)
	n := 0
	for _, evt := range evts {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

// A pod can die after the processing transition commits but before the
// categorize handoff runs. The redelivered task must pick up from the
// durable log instead of acking the session into a dead end.
func TestExtractExecutor_RedeliveryResumesHandoff(t *testing.T) {
	f := newStageFixture(t)
	ctx := context.Background()

	applied, err := f.deps.Sessions.MarkProcessing(ctx, f.sessionID, events.KindExtractCompleted,
		events.ExtractCompletedPayload{FullText: "うなぎの蒲焼"})
	require.NoError(t, err)
	require.True(t, applied)

	exec := &ExtractExecutor{f.deps}
	require.NoError(t, exec.Execute(ctx, &ent.Task{SessionID: f.sessionID}, 2))

	assert.Equal(t, []string{f.sessionID}, f.notifier.extractDone, "redelivery re-fires the handoff")
	assert.Zero(t, f.extractor.calls, "recognition does not run again")
	assert.Equal(t, 1, f.countEvents(t, events.KindExtractCompleted))

	t.Run("terminal session acks without a handoff", func(t *testing.T) {
		_, err := f.deps.Sessions.MarkTerminal(ctx, f.sessionID, menusession.StatusFailed, "session timeout")
		require.NoError(t, err)
		f.notifier.extractDone = nil

		require.NoError(t, exec.Execute(ctx, &ent.Task{SessionID: f.sessionID}, 3))
		assert.Empty(t, f.notifier.extractDone)
	})
}

// A pod can die after a stage completion commits but before the
// terminal callback runs. The redelivered task must still reach
// completion detection, or the last stage of a session would leave it
// stuck in processing.
func TestItemStage_TerminalRedeliveryRunsCompletionCheck(t *testing.T) {
	f := newStageFixture(t)
	ctx := context.Background()

	applied, err := f.deps.Items.MaterializeItems(ctx, f.sessionID, []models.NewItem{
		{Index: 0, SourceText: "味噌汁", Category: "汁物"},
	})
	require.NoError(t, err)
	require.True(t, applied)

	began, err := f.deps.Items.BeginStage(ctx, f.sessionID, 0, models.StageTranslate, 1)
	require.NoError(t, err)
	require.True(t, began)
	completed, err := f.deps.Items.CompleteStage(ctx, f.sessionID, 0, models.StageTranslate, 1,
		map[string]any{"english_text": "Miso soup", "fallback_used": false},
		map[string]any{"english_text": "Miso soup"}, false)
	require.NoError(t, err)
	require.True(t, completed)

	idx := 0
	exec := &TranslateExecutor{f.deps}
	require.NoError(t, exec.Execute(ctx, &ent.Task{SessionID: f.sessionID, ItemIndex: &idx}, 2))

	require.Len(t, f.notifier.terminal, 1)
	assert.Equal(t, terminalCall{f.sessionID, 0, models.StageTranslate}, f.notifier.terminal[0])
	assert.Zero(t, f.translator.calls, "completed stage is not re-run")
	assert.Equal(t, 1, f.countEvents(t, events.KindStageSkippedDuplicate))

	item, err := f.deps.Items.GetItem(ctx, f.sessionID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Miso soup", item.EnglishText, "redelivery leaves the stored result alone")

	t.Run("skipped stage also reaches completion detection", func(t *testing.T) {
		_, err := f.deps.Items.SkipStage(ctx, f.sessionID, 0, models.StageDescribe)
		require.NoError(t, err)
		f.notifier.terminal = nil

		exec := &DescribeExecutor{f.deps}
		require.NoError(t, exec.Execute(ctx, &ent.Task{SessionID: f.sessionID, ItemIndex: &idx}, 1))

		require.Len(t, f.notifier.terminal, 1)
		assert.Equal(t, terminalCall{f.sessionID, 0, models.StageDescribe}, f.notifier.terminal[0])
	})
}
