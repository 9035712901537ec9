package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Creator holds the schema definition for the Creator entity.
// The type cannot be named Client because ent reserves that identifier
// for the generated database handle; the table keeps the name "clients".
type Creator struct {
	ent.Schema
}

// Annotations of the Creator.
func (Creator) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "clients"},
	}
}

// Fields of the Creator.
func (Creator) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Creator name"),
		field.String("email").
			Optional().
			Comment("Contact email"),
		field.String("company").
			Optional().
			Comment("Brand or company name"),

		field.Enum("journey_stage").
			Values("foundation", "prep", "launch", "growth_expansion").
			Default("foundation").
			Comment("Program journey stage"),
		field.Int("journey_progress").
			Default(0).
			Min(0).
			Max(100).
			Comment("Overall program progress (0-100)"),

		// health_score and health_factors are the persisted output of the
		// last recompute. health_status is never stored: it is derived
		// from health_score via the configured thresholds on every read.
		field.Int("health_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Weighted composite health score (0-100)"),
		field.JSON("health_factors", map[string]HealthFactor{}).
			Optional().
			Comment("Per-factor score and weight from the last recompute"),
		field.Time("health_updated_at").
			Optional().
			Nillable().
			Comment("When the health score was last recomputed"),

		field.Int("converted_from_lead_id").
			Optional().
			Nillable().
			Comment("Lead this client was converted from"),

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

// HealthFactor is a single sub-score entry stored in health_factors.
type HealthFactor struct {
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// Edges of the Creator.
func (Creator) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("milestones", Milestone.Type).
			Comment("Program milestones for this client"),
		edge.To("kits", OnboardingKit.Type).
			Comment("Monthly onboarding kits"),
		edge.To("activities", Activity.Type).
			Comment("Activity log entries"),
	}
}

// Indexes of the Creator.
func (Creator) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("journey_stage"),
		index.Fields("health_score"),
		index.Fields("created_at"),
	}
}
