package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A unit of pending work on a named queue. Workers claim tasks with
// FOR UPDATE SKIP LOCKED; a stale in_flight claim is returned to the
// queue by orphan detection after the visibility timeout.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("queue").
			Immutable().
			Comment("Queue name: ocr, categorize, translate, describe, allergens, ingredients, image"),
		field.String("stage").
			Immutable(),
		field.Int("item_index").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for session-level stages (extract, categorize)"),
		field.Enum("status").
			Values("pending", "in_flight", "done", "dead").
			Default("pending"),
		field.Int("attempt").
			Default(0),
		field.Time("not_before").
			Default(time.Now).
			Comment("Earliest claim time; pushed out by retry backoff"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("worker id, for diagnostics and startup orphan cleanup"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", MenuSession.Type).
			Ref("tasks").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: pending tasks on a queue ordered by eligibility.
		index.Fields("queue", "status", "not_before"),
		// One task per (session, stage, item); duplicate enqueue is a conflict no-op.
		index.Fields("session_id", "stage", "item_index").
			Unique(),
		index.Fields("status", "claimed_at"),
	}
}
