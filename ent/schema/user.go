package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("name").
			Optional().
			Comment("User display name"),
		field.String("oauth_provider").
			Optional().
			Nillable().
			Comment("OAuth provider (google, github)"),
		field.String("oauth_id").
			Optional().
			Nillable().
			Comment("OAuth provider user ID"),
		field.String("magic_link_token_hash").
			Optional().
			Nillable().
			Sensitive().
			Comment("SHA-256 hash of the pending magic-link token"),
		field.Time("magic_link_expires_at").
			Optional().
			Nillable().
			Comment("Expiration time for the pending magic-link token"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", Application.Type).
			Comment("Applications submitted by this user"),
		edge.To("audit_logs", AuditLog.Type).
			Comment("Audit log entries attributed to this user"),
		edge.To("lead_stage_changes", LeadStageHistory.Type).
			Comment("Lead stage changes made by this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("created_at"),
	}
}
