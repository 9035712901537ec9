package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadStageHistory holds the schema definition for the LeadStageHistory entity.
type LeadStageHistory struct {
	ent.Schema
}

// Fields of the LeadStageHistory.
func (LeadStageHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("ID of the lead whose stage changed"),

		field.Int("user_id").
			Positive().
			Comment("ID of the user who changed the stage"),

		field.Enum("old_stage").
			Values("warm", "interested", "almost_onboarded", "onboarded", "rejected").
			Optional().
			Nillable().
			Comment("Previous stage (null for initial stage)"),

		field.Enum("new_stage").
			Values("warm", "interested", "almost_onboarded", "onboarded", "rejected").
			Comment("New stage after the change"),

		field.Text("reason").
			Optional().
			MaxLen(1000).
			Comment("Optional reason for the stage change"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the stage change occurred"),
	}
}

// Edges of the LeadStageHistory.
func (LeadStageHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("stage_history").
			Field("lead_id").
			Unique().
			Required(),

		edge.From("user", User.Type).
			Ref("lead_stage_changes").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the LeadStageHistory.
func (LeadStageHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at").
			StorageKey("idx_lead_stage_history_lead_time"),

		index.Fields("new_stage", "created_at").
			StorageKey("idx_lead_stage_history_stage_time"),
	}
}
