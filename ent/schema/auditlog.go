package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("Acting user (null for system actions)"),
		field.Enum("action").
			Values(
				"application_reviewed",
				"lead_stage_changed",
				"lead_converted",
				"document_approved",
				"document_revision_requested",
				"month_generated",
				"health_recomputed",
				"user_login",
			).
			Comment("What happened"),
		field.String("resource_type").
			Optional().
			Comment("Type of the affected resource (application, lead, client, document)"),
		field.String("resource_id").
			Optional().
			Comment("ID of the affected resource"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Additional structured context"),
		field.Enum("severity").
			Values("info", "warning", "critical").
			Default("info").
			Comment("Event severity"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the event occurred"),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("audit_logs").
			Field("user_id").
			Unique(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("action", "created_at"),
	}
}
