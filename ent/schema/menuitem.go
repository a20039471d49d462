package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MenuItem holds the schema definition for the MenuItem entity.
// One row per menu entry, materialized when categorize completes.
// Identified by (session_id, item_index); mutated only by the executor
// of the owning stage.
type MenuItem struct {
	ent.Schema
}

// stageStatusValues are shared by every per-stage status column.
// Transitions are monotonic: pending → in_flight → {completed, failed, skipped}.
var stageStatusValues = []string{"pending", "in_flight", "completed", "failed", "skipped"}

// stageStatusField builds the three columns every stage carries:
// status, attempt count, and last error.
func stageStatusField(stage string) []ent.Field {
	return []ent.Field{
		field.Enum(stage + "_status").
			Values(stageStatusValues...).
			Default("pending"),
		field.Int(stage + "_attempt").
			Default(0),
		field.String(stage + "_error").
			Optional().
			Nillable(),
	}
}

// Fields of the MenuItem.
func (MenuItem) Fields() []ent.Field {
	fields := []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int("item_index").
			Immutable().
			Comment("Position within the session, assigned by categorize"),

		// Skeleton written at materialization.
		field.Text("source_text").
			Comment("Original Japanese text as recognized"),
		field.JSON("box", [][2]int{}).
			Optional().
			Comment("Bounding region: four corners in pixel coordinates"),
		field.String("category"),
		field.String("price").
			Optional().
			Nillable(),

		// Stage results.
		field.Text("english_text").
			Optional().
			Nillable(),
		field.Bool("fallback_used").
			Default(false).
			Comment("Identity translation fallback was applied"),
		field.Text("description").
			Optional().
			Nillable(),
		field.JSON("allergen_entries", []map[string]any{}).
			Optional(),
		field.JSON("ingredient_entries", []map[string]any{}).
			Optional(),
		field.String("image_ref").
			Optional().
			Nillable().
			Comment("URL or image store key"),
		field.String("image_path").
			Optional().
			Nillable().
			Comment("Which image path won: search or synthesis"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}

	for _, stage := range []string{"translate", "describe", "allergens", "ingredients", "image"} {
		fields = append(fields, stageStatusField(stage)...)
	}
	return fields
}

// Edges of the MenuItem.
func (MenuItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", MenuSession.Type).
			Ref("items").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MenuItem.
func (MenuItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "item_index").
			Unique(),
	}
}
