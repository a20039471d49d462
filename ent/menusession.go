// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
)

// MenuSession is the model entity for the MenuSession schema.
type MenuSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Image store reference for the uploaded menu photo
	UploadRef string `json:"upload_ref,omitempty"`
	// Status holds the value of the "status" field.
	Status menusession.Status `json:"status,omitempty"`
	// Set exactly once by categorize; immutable afterwards
	TotalItems *int `json:"total_items,omitempty"`
	// Per-session event sequence counter; bumped under row lock
	LastSeq int64 `json:"last_seq,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When the session reached a terminal status
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Cooperative cancel flag checked by executors
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MenuSessionQuery when eager-loading is set.
	Edges        MenuSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MenuSessionEdges holds the relations/edges for other nodes in the graph.
type MenuSessionEdges struct {
	// Items holds the value of the items edge.
	Items []*MenuItem `json:"items,omitempty"`
	// Events holds the value of the events edge.
	Events []*PipelineEvent `json:"events,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e MenuSessionEdges) ItemsOrErr() ([]*MenuItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e MenuSessionEdges) EventsOrErr() ([]*PipelineEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e MenuSessionEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[2] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MenuSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case menusession.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case menusession.FieldTotalItems, menusession.FieldLastSeq:
			values[i] = new(sql.NullInt64)
		case menusession.FieldID, menusession.FieldUploadRef, menusession.FieldStatus, menusession.FieldErrorMessage, menusession.FieldPodID:
			values[i] = new(sql.NullString)
		case menusession.FieldCreatedAt, menusession.FieldUpdatedAt, menusession.FieldCompletedAt, menusession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MenuSession fields.
func (_m *MenuSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case menusession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case menusession.FieldUploadRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upload_ref", values[i])
			} else if value.Valid {
				_m.UploadRef = value.String
			}
		case menusession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = menusession.Status(value.String)
			}
		case menusession.FieldTotalItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_items", values[i])
			} else if value.Valid {
				_m.TotalItems = new(int)
				*_m.TotalItems = int(value.Int64)
			}
		case menusession.FieldLastSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_seq", values[i])
			} else if value.Valid {
				_m.LastSeq = value.Int64
			}
		case menusession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case menusession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case menusession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case menusession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case menusession.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case menusession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case menusession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MenuSession.
// This includes values selected through modifiers, order, etc.
func (_m *MenuSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the MenuSession entity.
func (_m *MenuSession) QueryItems() *MenuItemQuery {
	return NewMenuSessionClient(_m.config).QueryItems(_m)
}

// QueryEvents queries the "events" edge of the MenuSession entity.
func (_m *MenuSession) QueryEvents() *PipelineEventQuery {
	return NewMenuSessionClient(_m.config).QueryEvents(_m)
}

// QueryTasks queries the "tasks" edge of the MenuSession entity.
func (_m *MenuSession) QueryTasks() *TaskQuery {
	return NewMenuSessionClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this MenuSession.
// Note that you need to call MenuSession.Unwrap() before calling this method if this MenuSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MenuSession) Update() *MenuSessionUpdateOne {
	return NewMenuSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MenuSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MenuSession) Unwrap() *MenuSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MenuSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MenuSession) String() string {
	var builder strings.Builder
	builder.WriteString("MenuSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("upload_ref=")
	builder.WriteString(_m.UploadRef)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TotalItems; v != nil {
		builder.WriteString("total_items=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("last_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeq))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MenuSessions is a parsable slice of MenuSession.
type MenuSessions []*MenuSession
