package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("client_id").
			Positive().
			Comment("ID of the owning client"),
		field.Enum("type").
			Values("email", "call", "meeting", "note", "system").
			Comment("Kind of activity"),
		field.Text("description").
			NotEmpty().
			Comment("What happened"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the activity occurred"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Creator.Type).
			Ref("activities").
			Field("client_id").
			Unique().
			Required(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "created_at"),
		index.Fields("client_id", "type", "created_at"),
	}
}
