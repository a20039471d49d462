// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/ent/pipelineevent"
	"github.com/kaiseki-io/kaiseki/ent/schema"
	"github.com/kaiseki-io/kaiseki/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	menuitemFields := schema.MenuItem{}.Fields()
	_ = menuitemFields
	// menuitemDescFallbackUsed is the schema descriptor for fallback_used field.
	menuitemDescFallbackUsed := menuitemFields[7].Descriptor()
	// menuitem.DefaultFallbackUsed holds the default value on creation for the fallback_used field.
	menuitem.DefaultFallbackUsed = menuitemDescFallbackUsed.Default.(bool)
	// menuitemDescCreatedAt is the schema descriptor for created_at field.
	menuitemDescCreatedAt := menuitemFields[13].Descriptor()
	// menuitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	menuitem.DefaultCreatedAt = menuitemDescCreatedAt.Default.(func() time.Time)
	// menuitemDescUpdatedAt is the schema descriptor for updated_at field.
	menuitemDescUpdatedAt := menuitemFields[14].Descriptor()
	// menuitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	menuitem.DefaultUpdatedAt = menuitemDescUpdatedAt.Default.(func() time.Time)
	// menuitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	menuitem.UpdateDefaultUpdatedAt = menuitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// menuitemDescTranslateAttempt is the schema descriptor for translate_attempt field.
	menuitemDescTranslateAttempt := menuitemFields[16].Descriptor()
	// menuitem.DefaultTranslateAttempt holds the default value on creation for the translate_attempt field.
	menuitem.DefaultTranslateAttempt = menuitemDescTranslateAttempt.Default.(int)
	// menuitemDescDescribeAttempt is the schema descriptor for describe_attempt field.
	menuitemDescDescribeAttempt := menuitemFields[19].Descriptor()
	// menuitem.DefaultDescribeAttempt holds the default value on creation for the describe_attempt field.
	menuitem.DefaultDescribeAttempt = menuitemDescDescribeAttempt.Default.(int)
	// menuitemDescAllergensAttempt is the schema descriptor for allergens_attempt field.
	menuitemDescAllergensAttempt := menuitemFields[22].Descriptor()
	// menuitem.DefaultAllergensAttempt holds the default value on creation for the allergens_attempt field.
	menuitem.DefaultAllergensAttempt = menuitemDescAllergensAttempt.Default.(int)
	// menuitemDescIngredientsAttempt is the schema descriptor for ingredients_attempt field.
	menuitemDescIngredientsAttempt := menuitemFields[25].Descriptor()
	// menuitem.DefaultIngredientsAttempt holds the default value on creation for the ingredients_attempt field.
	menuitem.DefaultIngredientsAttempt = menuitemDescIngredientsAttempt.Default.(int)
	// menuitemDescImageAttempt is the schema descriptor for image_attempt field.
	menuitemDescImageAttempt := menuitemFields[28].Descriptor()
	// menuitem.DefaultImageAttempt holds the default value on creation for the image_attempt field.
	menuitem.DefaultImageAttempt = menuitemDescImageAttempt.Default.(int)
	menusessionFields := schema.MenuSession{}.Fields()
	_ = menusessionFields
	// menusessionDescLastSeq is the schema descriptor for last_seq field.
	menusessionDescLastSeq := menusessionFields[4].Descriptor()
	// menusession.DefaultLastSeq holds the default value on creation for the last_seq field.
	menusession.DefaultLastSeq = menusessionDescLastSeq.Default.(int64)
	// menusessionDescCreatedAt is the schema descriptor for created_at field.
	menusessionDescCreatedAt := menusessionFields[5].Descriptor()
	// menusession.DefaultCreatedAt holds the default value on creation for the created_at field.
	menusession.DefaultCreatedAt = menusessionDescCreatedAt.Default.(func() time.Time)
	// menusessionDescUpdatedAt is the schema descriptor for updated_at field.
	menusessionDescUpdatedAt := menusessionFields[6].Descriptor()
	// menusession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	menusession.DefaultUpdatedAt = menusessionDescUpdatedAt.Default.(func() time.Time)
	// menusession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	menusession.UpdateDefaultUpdatedAt = menusessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// menusessionDescCancelRequested is the schema descriptor for cancel_requested field.
	menusessionDescCancelRequested := menusessionFields[9].Descriptor()
	// menusession.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	menusession.DefaultCancelRequested = menusessionDescCancelRequested.Default.(bool)
	pipelineeventFields := schema.PipelineEvent{}.Fields()
	_ = pipelineeventFields
	// pipelineeventDescCreatedAt is the schema descriptor for created_at field.
	pipelineeventDescCreatedAt := pipelineeventFields[4].Descriptor()
	// pipelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelineevent.DefaultCreatedAt = pipelineeventDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAttempt is the schema descriptor for attempt field.
	taskDescAttempt := taskFields[6].Descriptor()
	// task.DefaultAttempt holds the default value on creation for the attempt field.
	task.DefaultAttempt = taskDescAttempt.Default.(int)
	// taskDescNotBefore is the schema descriptor for not_before field.
	taskDescNotBefore := taskFields[7].Descriptor()
	// task.DefaultNotBefore holds the default value on creation for the not_before field.
	task.DefaultNotBefore = taskDescNotBefore.Default.(func() time.Time)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[12].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
