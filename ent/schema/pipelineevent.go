package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineEvent holds the schema definition for the PipelineEvent entity.
// Append-only per-session log; seq is strictly increasing and gap-free
// within a session (allocated from MenuSession.last_seq under row lock).
type PipelineEvent struct {
	ent.Schema
}

// Fields of the PipelineEvent.
func (PipelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int64("seq").
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("Event kind, e.g. stage_completed, items_materialized"),
		field.JSON("payload", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PipelineEvent.
func (PipelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", MenuSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PipelineEvent.
func (PipelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq").
			Unique(),
		index.Fields("created_at"),
	}
}
