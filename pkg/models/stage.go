// Package models holds shared domain types and API response shapes.
package models

// Stage names the pipeline steps. Extract and categorize are scaffold
// stages: their exhaustion fails the whole session. The rest are
// per-item fan-out stages.
type Stage string

// Pipeline stages.
const (
	StageExtract     Stage = "extract"
	StageCategorize  Stage = "categorize"
	StageTranslate   Stage = "translate"
	StageDescribe    Stage = "describe"
	StageAllergens   Stage = "allergens"
	StageIngredients Stage = "ingredients"
	StageImage       Stage = "image"
)

// ItemStages are the per-item fan-out stages, in fan-out order.
var ItemStages = []Stage{StageTranslate, StageDescribe, StageAllergens, StageIngredients, StageImage}

// IsScaffold reports whether failure of this stage fails the session.
func (s Stage) IsScaffold() bool {
	return s == StageExtract || s == StageCategorize
}

// Queue returns the queue a stage's tasks are dispatched on.
// Extract runs on the ocr queue; every other stage has a queue of its
// own name.
func (s Stage) Queue() string {
	if s == StageExtract {
		return "ocr"
	}
	return string(s)
}

// StageStatus is the lifecycle of one stage on one item.
// Transitions are monotonic: pending → in_flight → terminal.
type StageStatus string

// Stage status values.
const (
	StagePending   StageStatus = "pending"
	StageInFlight  StageStatus = "in_flight"
	StageCompleted StageStatus = "completed"
	StageFailed    StageStatus = "failed"
	StageSkipped   StageStatus = "skipped"
)

// Terminal reports whether the status admits no further transitions.
func (s StageStatus) Terminal() bool {
	return s == StageCompleted || s == StageFailed || s == StageSkipped
}
