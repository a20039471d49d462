// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/ent/pipelineevent"
	"github.com/kaiseki-io/kaiseki/ent/predicate"
	"github.com/kaiseki-io/kaiseki/ent/task"
)

// MenuSessionUpdate is the builder for updating MenuSession entities.
type MenuSessionUpdate struct {
	config
	hooks    []Hook
	mutation *MenuSessionMutation
}

// Where appends a list predicates to the MenuSessionUpdate builder.
func (_u *MenuSessionUpdate) Where(ps ...predicate.MenuSession) *MenuSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUploadRef sets the "upload_ref" field.
func (_u *MenuSessionUpdate) SetUploadRef(v string) *MenuSessionUpdate {
	_u.mutation.SetUploadRef(v)
	return _u
}

// SetNillableUploadRef sets the "upload_ref" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableUploadRef(v *string) *MenuSessionUpdate {
	if v != nil {
		_u.SetUploadRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MenuSessionUpdate) SetStatus(v menusession.Status) *MenuSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableStatus(v *menusession.Status) *MenuSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *MenuSessionUpdate) SetTotalItems(v int) *MenuSessionUpdate {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableTotalItems(v *int) *MenuSessionUpdate {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *MenuSessionUpdate) AddTotalItems(v int) *MenuSessionUpdate {
	_u.mutation.AddTotalItems(v)
	return _u
}

// ClearTotalItems clears the value of the "total_items" field.
func (_u *MenuSessionUpdate) ClearTotalItems() *MenuSessionUpdate {
	_u.mutation.ClearTotalItems()
	return _u
}

// SetLastSeq sets the "last_seq" field.
func (_u *MenuSessionUpdate) SetLastSeq(v int64) *MenuSessionUpdate {
	_u.mutation.ResetLastSeq()
	_u.mutation.SetLastSeq(v)
	return _u
}

// SetNillableLastSeq sets the "last_seq" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableLastSeq(v *int64) *MenuSessionUpdate {
	if v != nil {
		_u.SetLastSeq(*v)
	}
	return _u
}

// AddLastSeq adds value to the "last_seq" field.
func (_u *MenuSessionUpdate) AddLastSeq(v int64) *MenuSessionUpdate {
	_u.mutation.AddLastSeq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuSessionUpdate) SetUpdatedAt(v time.Time) *MenuSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MenuSessionUpdate) SetCompletedAt(v time.Time) *MenuSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableCompletedAt(v *time.Time) *MenuSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MenuSessionUpdate) ClearCompletedAt() *MenuSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MenuSessionUpdate) SetErrorMessage(v string) *MenuSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableErrorMessage(v *string) *MenuSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MenuSessionUpdate) ClearErrorMessage() *MenuSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *MenuSessionUpdate) SetCancelRequested(v bool) *MenuSessionUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableCancelRequested(v *bool) *MenuSessionUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *MenuSessionUpdate) SetPodID(v string) *MenuSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillablePodID(v *string) *MenuSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *MenuSessionUpdate) ClearPodID() *MenuSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MenuSessionUpdate) SetDeletedAt(v time.Time) *MenuSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MenuSessionUpdate) SetNillableDeletedAt(v *time.Time) *MenuSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MenuSessionUpdate) ClearDeletedAt() *MenuSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the MenuItem entity by IDs.
func (_u *MenuSessionUpdate) AddItemIDs(ids ...int) *MenuSessionUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the MenuItem entity.
func (_u *MenuSessionUpdate) AddItems(v ...*MenuItem) *MenuSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddEventIDs adds the "events" edge to the PipelineEvent entity by IDs.
func (_u *MenuSessionUpdate) AddEventIDs(ids ...int) *MenuSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the PipelineEvent entity.
func (_u *MenuSessionUpdate) AddEvents(v ...*PipelineEvent) *MenuSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *MenuSessionUpdate) AddTaskIDs(ids ...string) *MenuSessionUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *MenuSessionUpdate) AddTasks(v ...*Task) *MenuSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the MenuSessionMutation object of the builder.
func (_u *MenuSessionUpdate) Mutation() *MenuSessionMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the MenuItem entity.
func (_u *MenuSessionUpdate) ClearItems() *MenuSessionUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to MenuItem entities by IDs.
func (_u *MenuSessionUpdate) RemoveItemIDs(ids ...int) *MenuSessionUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to MenuItem entities.
func (_u *MenuSessionUpdate) RemoveItems(v ...*MenuItem) *MenuSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearEvents clears all "events" edges to the PipelineEvent entity.
func (_u *MenuSessionUpdate) ClearEvents() *MenuSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to PipelineEvent entities by IDs.
func (_u *MenuSessionUpdate) RemoveEventIDs(ids ...int) *MenuSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to PipelineEvent entities.
func (_u *MenuSessionUpdate) RemoveEvents(v ...*PipelineEvent) *MenuSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *MenuSessionUpdate) ClearTasks() *MenuSessionUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *MenuSessionUpdate) RemoveTaskIDs(ids ...string) *MenuSessionUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *MenuSessionUpdate) RemoveTasks(v ...*Task) *MenuSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MenuSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MenuSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menusession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := menusession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MenuSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MenuSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menusession.Table, menusession.Columns, sqlgraph.NewFieldSpec(menusession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UploadRef(); ok {
		_spec.SetField(menusession.FieldUploadRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(menusession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(menusession.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(menusession.FieldTotalItems, field.TypeInt, value)
	}
	if _u.mutation.TotalItemsCleared() {
		_spec.ClearField(menusession.FieldTotalItems, field.TypeInt)
	}
	if value, ok := _u.mutation.LastSeq(); ok {
		_spec.SetField(menusession.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeq(); ok {
		_spec.AddField(menusession.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menusession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(menusession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(menusession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(menusession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(menusession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(menusession.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(menusession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(menusession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(menusession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(menusession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.ItemsTable,
			Columns: []string{menusession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.ItemsTable,
			Columns: []string{menusession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.ItemsTable,
			Columns: []string{menusession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.EventsTable,
			Columns: []string{menusession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.EventsTable,
			Columns: []string{menusession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.EventsTable,
			Columns: []string{menusession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.TasksTable,
			Columns: []string{menusession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.TasksTable,
			Columns: []string{menusession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.TasksTable,
			Columns: []string{menusession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menusession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MenuSessionUpdateOne is the builder for updating a single MenuSession entity.
type MenuSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MenuSessionMutation
}

// SetUploadRef sets the "upload_ref" field.
func (_u *MenuSessionUpdateOne) SetUploadRef(v string) *MenuSessionUpdateOne {
	_u.mutation.SetUploadRef(v)
	return _u
}

// SetNillableUploadRef sets the "upload_ref" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableUploadRef(v *string) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetUploadRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MenuSessionUpdateOne) SetStatus(v menusession.Status) *MenuSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableStatus(v *menusession.Status) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *MenuSessionUpdateOne) SetTotalItems(v int) *MenuSessionUpdateOne {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableTotalItems(v *int) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *MenuSessionUpdateOne) AddTotalItems(v int) *MenuSessionUpdateOne {
	_u.mutation.AddTotalItems(v)
	return _u
}

// ClearTotalItems clears the value of the "total_items" field.
func (_u *MenuSessionUpdateOne) ClearTotalItems() *MenuSessionUpdateOne {
	_u.mutation.ClearTotalItems()
	return _u
}

// SetLastSeq sets the "last_seq" field.
func (_u *MenuSessionUpdateOne) SetLastSeq(v int64) *MenuSessionUpdateOne {
	_u.mutation.ResetLastSeq()
	_u.mutation.SetLastSeq(v)
	return _u
}

// SetNillableLastSeq sets the "last_seq" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableLastSeq(v *int64) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetLastSeq(*v)
	}
	return _u
}

// AddLastSeq adds value to the "last_seq" field.
func (_u *MenuSessionUpdateOne) AddLastSeq(v int64) *MenuSessionUpdateOne {
	_u.mutation.AddLastSeq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuSessionUpdateOne) SetUpdatedAt(v time.Time) *MenuSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MenuSessionUpdateOne) SetCompletedAt(v time.Time) *MenuSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MenuSessionUpdateOne) ClearCompletedAt() *MenuSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MenuSessionUpdateOne) SetErrorMessage(v string) *MenuSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableErrorMessage(v *string) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MenuSessionUpdateOne) ClearErrorMessage() *MenuSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *MenuSessionUpdateOne) SetCancelRequested(v bool) *MenuSessionUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableCancelRequested(v *bool) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *MenuSessionUpdateOne) SetPodID(v string) *MenuSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillablePodID(v *string) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *MenuSessionUpdateOne) ClearPodID() *MenuSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MenuSessionUpdateOne) SetDeletedAt(v time.Time) *MenuSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MenuSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *MenuSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MenuSessionUpdateOne) ClearDeletedAt() *MenuSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the MenuItem entity by IDs.
func (_u *MenuSessionUpdateOne) AddItemIDs(ids ...int) *MenuSessionUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the MenuItem entity.
func (_u *MenuSessionUpdateOne) AddItems(v ...*MenuItem) *MenuSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddEventIDs adds the "events" edge to the PipelineEvent entity by IDs.
func (_u *MenuSessionUpdateOne) AddEventIDs(ids ...int) *MenuSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the PipelineEvent entity.
func (_u *MenuSessionUpdateOne) AddEvents(v ...*PipelineEvent) *MenuSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *MenuSessionUpdateOne) AddTaskIDs(ids ...string) *MenuSessionUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *MenuSessionUpdateOne) AddTasks(v ...*Task) *MenuSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the MenuSessionMutation object of the builder.
func (_u *MenuSessionUpdateOne) Mutation() *MenuSessionMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the MenuItem entity.
func (_u *MenuSessionUpdateOne) ClearItems() *MenuSessionUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to MenuItem entities by IDs.
func (_u *MenuSessionUpdateOne) RemoveItemIDs(ids ...int) *MenuSessionUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to MenuItem entities.
func (_u *MenuSessionUpdateOne) RemoveItems(v ...*MenuItem) *MenuSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearEvents clears all "events" edges to the PipelineEvent entity.
func (_u *MenuSessionUpdateOne) ClearEvents() *MenuSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to PipelineEvent entities by IDs.
func (_u *MenuSessionUpdateOne) RemoveEventIDs(ids ...int) *MenuSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to PipelineEvent entities.
func (_u *MenuSessionUpdateOne) RemoveEvents(v ...*PipelineEvent) *MenuSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *MenuSessionUpdateOne) ClearTasks() *MenuSessionUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *MenuSessionUpdateOne) RemoveTaskIDs(ids ...string) *MenuSessionUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *MenuSessionUpdateOne) RemoveTasks(v ...*Task) *MenuSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the MenuSessionUpdate builder.
func (_u *MenuSessionUpdateOne) Where(ps ...predicate.MenuSession) *MenuSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MenuSessionUpdateOne) Select(field string, fields ...string) *MenuSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MenuSession entity.
func (_u *MenuSessionUpdateOne) Save(ctx context.Context) (*MenuSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuSessionUpdateOne) SaveX(ctx context.Context) *MenuSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MenuSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menusession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := menusession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MenuSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MenuSessionUpdateOne) sqlSave(ctx context.Context) (_node *MenuSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menusession.Table, menusession.Columns, sqlgraph.NewFieldSpec(menusession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MenuSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, menusession.FieldID)
		for _, f := range fields {
			if !menusession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != menusession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UploadRef(); ok {
		_spec.SetField(menusession.FieldUploadRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(menusession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(menusession.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(menusession.FieldTotalItems, field.TypeInt, value)
	}
	if _u.mutation.TotalItemsCleared() {
		_spec.ClearField(menusession.FieldTotalItems, field.TypeInt)
	}
	if value, ok := _u.mutation.LastSeq(); ok {
		_spec.SetField(menusession.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeq(); ok {
		_spec.AddField(menusession.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menusession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(menusession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(menusession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(menusession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(menusession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(menusession.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(menusession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(menusession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(menusession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(menusession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.ItemsTable,
			Columns: []string{menusession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.ItemsTable,
			Columns: []string{menusession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.ItemsTable,
			Columns: []string{menusession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.EventsTable,
			Columns: []string{menusession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.EventsTable,
			Columns: []string{menusession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.EventsTable,
			Columns: []string{menusession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.TasksTable,
			Columns: []string{menusession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.TasksTable,
			Columns: []string{menusession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menusession.TasksTable,
			Columns: []string{menusession.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MenuSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menusession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
