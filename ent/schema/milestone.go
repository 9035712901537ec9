package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Milestone holds the schema definition for the Milestone entity.
type Milestone struct {
	ent.Schema
}

// Fields of the Milestone.
func (Milestone) Fields() []ent.Field {
	return []ent.Field{
		field.Int("client_id").
			Positive().
			Comment("ID of the owning client"),
		field.String("title").
			NotEmpty().
			Comment("Milestone title"),
		field.Enum("status").
			Values("not_started", "in_progress", "completed").
			Default("not_started").
			Comment("Milestone status"),
		field.Time("due_date").
			Optional().
			Nillable().
			Comment("Target completion date"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the milestone was completed"),
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

// Edges of the Milestone.
func (Milestone) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Creator.Type).
			Ref("milestones").
			Field("client_id").
			Unique().
			Required(),
	}
}

// Indexes of the Milestone.
func (Milestone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "status"),
	}
}
