// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/ent/pipelineevent"
	"github.com/kaiseki-io/kaiseki/ent/task"
)

// MenuSessionCreate is the builder for creating a MenuSession entity.
type MenuSessionCreate struct {
	config
	mutation *MenuSessionMutation
	hooks    []Hook
}

// SetUploadRef sets the "upload_ref" field.
func (_c *MenuSessionCreate) SetUploadRef(v string) *MenuSessionCreate {
	_c.mutation.SetUploadRef(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MenuSessionCreate) SetStatus(v menusession.Status) *MenuSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableStatus(v *menusession.Status) *MenuSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *MenuSessionCreate) SetTotalItems(v int) *MenuSessionCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableTotalItems(v *int) *MenuSessionCreate {
	if v != nil {
		_c.SetTotalItems(*v)
	}
	return _c
}

// SetLastSeq sets the "last_seq" field.
func (_c *MenuSessionCreate) SetLastSeq(v int64) *MenuSessionCreate {
	_c.mutation.SetLastSeq(v)
	return _c
}

// SetNillableLastSeq sets the "last_seq" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableLastSeq(v *int64) *MenuSessionCreate {
	if v != nil {
		_c.SetLastSeq(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MenuSessionCreate) SetCreatedAt(v time.Time) *MenuSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableCreatedAt(v *time.Time) *MenuSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MenuSessionCreate) SetUpdatedAt(v time.Time) *MenuSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableUpdatedAt(v *time.Time) *MenuSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MenuSessionCreate) SetCompletedAt(v time.Time) *MenuSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableCompletedAt(v *time.Time) *MenuSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MenuSessionCreate) SetErrorMessage(v string) *MenuSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableErrorMessage(v *string) *MenuSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *MenuSessionCreate) SetCancelRequested(v bool) *MenuSessionCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableCancelRequested(v *bool) *MenuSessionCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *MenuSessionCreate) SetPodID(v string) *MenuSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillablePodID(v *string) *MenuSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MenuSessionCreate) SetDeletedAt(v time.Time) *MenuSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MenuSessionCreate) SetNillableDeletedAt(v *time.Time) *MenuSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MenuSessionCreate) SetID(v string) *MenuSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddItemIDs adds the "items" edge to the MenuItem entity by IDs.
func (_c *MenuSessionCreate) AddItemIDs(ids ...int) *MenuSessionCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the MenuItem entity.
func (_c *MenuSessionCreate) AddItems(v ...*MenuItem) *MenuSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddEventIDs adds the "events" edge to the PipelineEvent entity by IDs.
func (_c *MenuSessionCreate) AddEventIDs(ids ...int) *MenuSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the PipelineEvent entity.
func (_c *MenuSessionCreate) AddEvents(v ...*PipelineEvent) *MenuSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *MenuSessionCreate) AddTaskIDs(ids ...string) *MenuSessionCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *MenuSessionCreate) AddTasks(v ...*Task) *MenuSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the MenuSessionMutation object of the builder.
func (_c *MenuSessionCreate) Mutation() *MenuSessionMutation {
	return _c.mutation
}

// Save creates the MenuSession in the database.
func (_c *MenuSessionCreate) Save(ctx context.Context) (*MenuSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MenuSessionCreate) SaveX(ctx context.Context) *MenuSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MenuSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := menusession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastSeq(); !ok {
		v := menusession.DefaultLastSeq
		_c.mutation.SetLastSeq(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := menusession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := menusession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := menusession.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MenuSessionCreate) check() error {
	if _, ok := _c.mutation.UploadRef(); !ok {
		return &ValidationError{Name: "upload_ref", err: errors.New(`ent: missing required field "MenuSession.upload_ref"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MenuSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := menusession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MenuSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeq(); !ok {
		return &ValidationError{Name: "last_seq", err: errors.New(`ent: missing required field "MenuSession.last_seq"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MenuSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MenuSession.updated_at"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "MenuSession.cancel_requested"`)}
	}
	return nil
}

func (_c *MenuSessionCreate) sqlSave(ctx context.Context) (*MenuSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MenuSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MenuSessionCreate) createSpec() (*MenuSession, *sqlgraph.CreateSpec) {
	var (
		_node = &MenuSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(menusession.Table, sqlgraph.NewFieldSpec(menusession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UploadRef(); ok {
		_spec.SetField(menusession.FieldUploadRef, field.TypeString, value)
		_node.UploadRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(menusession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(menusession.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = &value
	}
	if value, ok := _c.mutation.LastSeq(); ok {
		_spec.SetField(menusession.FieldLastSeq, field.TypeInt64, value)
		_node.LastSeq = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(menusession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(menusession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(menusession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(menusession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(menusession.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(menusession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(menusession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MenuSessionCreateBulk is the builder for creating many MenuSession entities in bulk.
type MenuSessionCreateBulk struct {
	config
	err      error
	builders []*MenuSessionCreate
}

// Save creates the MenuSession entities in the database.
func (_c *MenuSessionCreateBulk) Save(ctx context.Context) ([]*MenuSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MenuSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MenuSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MenuSessionCreateBulk) SaveX(ctx context.Context) []*MenuSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
