package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnvelope(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("merges payload fields with envelope fields", func(t *testing.T) {
		envelope, err := buildEnvelope("sess-1", 7, ts, KindStageCompleted, StageCompletedPayload{
			ItemIndex: 3,
			Stage:     "translate",
			Payload:   map[string]any{"english_text": "Grilled eel"},
		})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(envelope, &m))
		assert.Equal(t, "sess-1", m["session_id"])
		assert.Equal(t, float64(7), m["seq"])
		assert.Equal(t, KindStageCompleted, m["kind"])
		assert.Equal(t, float64(3), m["item_index"])
		assert.Equal(t, "translate", m["stage"])
	})

	t.Run("nil payload yields envelope fields only", func(t *testing.T) {
		envelope, err := buildEnvelope("sess-1", 1, ts, KindSessionCompleted, nil)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(envelope, &m))
		assert.Len(t, m, 4)
		assert.Equal(t, KindSessionCompleted, m["kind"])
	})

	t.Run("timestamp is RFC3339", func(t *testing.T) {
		envelope, err := buildEnvelope("sess-1", 1, ts, KindSessionCreated, nil)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(envelope, &m))
		parsed, err := time.Parse(time.RFC3339Nano, m["ts"].(string))
		require.NoError(t, err)
		assert.True(t, parsed.Equal(ts))
	})
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal envelope", func(t *testing.T) {
		envelope, err := buildEnvelope("sess-1", 2, time.Now(), KindExtractCompleted,
			ExtractCompletedPayload{FullText: "some text"})
		require.NoError(t, err)

		result, err := truncateIfNeeded("sess-1", 2, KindExtractCompleted, envelope)
		require.NoError(t, err)
		assert.Equal(t, string(envelope), result)
	})

	t.Run("truncates oversized envelope to routing stub", func(t *testing.T) {
		envelope, err := buildEnvelope("sess-1", 3, time.Now(), KindExtractCompleted,
			ExtractCompletedPayload{FullText: strings.Repeat("a", 9000)})
		require.NoError(t, err)

		result, err := truncateIfNeeded("sess-1", 3, KindExtractCompleted, envelope)
		require.NoError(t, err)
		assert.Less(t, len(result), notifyLimit)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, "sess-1", m["session_id"])
		assert.Equal(t, float64(3), m["seq"])
		assert.Equal(t, KindExtractCompleted, m["kind"])
		assert.Equal(t, true, m["truncated"])
		assert.NotContains(t, result, "full_text")
	})
}

func TestSessionChannel(t *testing.T) {
	assert.Equal(t, "menu_session:abc-123", SessionChannel("abc-123"))
}
