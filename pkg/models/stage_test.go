package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageQueue(t *testing.T) {
	assert.Equal(t, "ocr", StageExtract.Queue())
	assert.Equal(t, "categorize", StageCategorize.Queue())
	assert.Equal(t, "translate", StageTranslate.Queue())
	assert.Equal(t, "image", StageImage.Queue())
}

func TestStageIsScaffold(t *testing.T) {
	assert.True(t, StageExtract.IsScaffold())
	assert.True(t, StageCategorize.IsScaffold())
	for _, s := range ItemStages {
		assert.False(t, s.IsScaffold(), "stage %s", s)
	}
}

func TestStageStatusTerminal(t *testing.T) {
	assert.False(t, StagePending.Terminal())
	assert.False(t, StageInFlight.Terminal())
	assert.True(t, StageCompleted.Terminal())
	assert.True(t, StageFailed.Terminal())
	assert.True(t, StageSkipped.Terminal())
}
