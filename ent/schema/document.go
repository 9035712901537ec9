package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity.
// Lifecycle: not_generated -> generated -> sent -> viewed ->
// revision_requested (back to generated on regeneration) -> approved.
// approved is terminal.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.Int("kit_id").
			Positive().
			Comment("ID of the owning onboarding kit"),
		field.Int("slot").
			Min(1).
			Max(5).
			Comment("Position within the month (1-5)"),
		field.String("name").
			NotEmpty().
			Comment("Template document name for this month and slot"),
		field.Enum("status").
			Values("not_generated", "generated", "sent", "viewed", "revision_requested", "approved").
			Default("not_generated").
			Comment("Document lifecycle status"),
		field.Text("content").
			Optional().
			Comment("Generated markdown content"),
		field.Text("revision_notes").
			Optional().
			Comment("Notes from the most recent revision request"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When the status was last changed"),
		field.Time("approved_at").
			Optional().
			Nillable().
			Comment("When the document was approved"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("kit", OnboardingKit.Type).
			Ref("documents").
			Field("kit_id").
			Unique().
			Required(),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kit_id", "slot").Unique(),
		index.Fields("status"),
	}
}
