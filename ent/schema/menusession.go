package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MenuSession holds the schema definition for the MenuSession entity.
// One session per uploaded menu photograph; owns items, events, and tasks.
type MenuSession struct {
	ent.Schema
}

// Fields of the MenuSession.
func (MenuSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("upload_ref").
			Comment("Image store reference for the uploaded menu photo"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("total_items").
			Optional().
			Nillable().
			Comment("Set exactly once by categorize; immutable afterwards"),
		field.Int64("last_seq").
			Default(0).
			Comment("Per-session event sequence counter; bumped under row lock"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the session reached a terminal status"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Cooperative cancel flag checked by executors"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the MenuSession.
func (MenuSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", MenuItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", PipelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the MenuSession.
func (MenuSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("deleted_at"),
	}
}
