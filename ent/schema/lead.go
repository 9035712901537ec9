package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
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
		field.String("source").
			Optional().
			Comment("Where the lead came from (referral, outreach, inbound)"),
		field.Text("summary").
			Optional().
			Comment("Free-text summary used as input to fit analysis"),
		field.JSON("answers", map[string]string{}).
			Optional().
			Comment("Structured questionnaire answers"),

		field.Enum("stage").
			Values("warm", "interested", "almost_onboarded", "onboarded", "rejected").
			Default("warm").
			Comment("Pipeline stage"),
		field.Time("stage_changed_at").
			Default(time.Now).
			Comment("When the stage was last changed"),

		// Fit analysis results. All nillable: a lead stays unanalyzed
		// (fit_score null) when the analysis call fails.
		field.Int("fit_score").
			Optional().
			Nillable().
			Min(0).
			Max(100).
			Comment("Externally computed suitability rating (0-100)"),
		field.Float("sentiment_score").
			Optional().
			Nillable().
			Comment("Sentiment of the lead's answers (0-1)"),
		field.Text("ai_summary").
			Optional().
			Comment("Analysis summary"),
		field.JSON("strengths", []string{}).
			Optional().
			Comment("Strengths identified by the analysis"),
		field.JSON("concerns", []string{}).
			Optional().
			Comment("Concerns identified by the analysis"),
		field.Text("recommendations").
			Optional().
			Comment("Recommended next steps from the analysis"),
		field.String("estimated_revenue_potential").
			Optional().
			Comment("Estimated revenue potential (e.g. \"$50k-$100k/yr\")"),
		field.Time("analyzed_at").
			Optional().
			Nillable().
			Comment("When the last successful analysis completed"),

		field.Int("converted_client_id").
			Optional().
			Nillable().
			Comment("Client created from this lead; set once, never cleared"),

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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stage_history", LeadStageHistory.Type).
			Comment("History of stage changes for this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage"),
		index.Fields("email"),
		index.Fields("fit_score"),
		index.Fields("created_at"),
	}
}
