package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OnboardingKit holds the schema definition for the OnboardingKit entity.
// One kit per client per program month (1-8). Lock state is never stored:
// it is derived from the approval state of the preceding month's documents.
type OnboardingKit struct {
	ent.Schema
}

// Fields of the OnboardingKit.
func (OnboardingKit) Fields() []ent.Field {
	return []ent.Field{
		field.Int("client_id").
			Positive().
			Comment("ID of the owning client"),
		field.Int("month").
			Min(1).
			Max(8).
			Comment("Program month (1-8)"),
		field.Bool("generated").
			Default(false).
			Comment("Whether the month's documents have been generated"),
		field.Time("generated_at").
			Optional().
			Nillable().
			Comment("When the month's documents were generated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the OnboardingKit.
func (OnboardingKit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Creator.Type).
			Ref("kits").
			Field("client_id").
			Unique().
			Required(),

		edge.To("documents", Document.Type).
			Comment("The month's five documents"),
	}
}

// Indexes of the OnboardingKit.
func (OnboardingKit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "month").Unique(),
	}
}
