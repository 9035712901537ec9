package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Application holds the schema definition for the Application entity.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("ID of the applicant user"),
		field.String("creator_name").
			NotEmpty().
			Comment("Creator or brand name"),
		field.String("youtube_handle").
			Optional().
			Comment("YouTube channel handle"),
		field.String("tiktok_handle").
			Optional().
			Comment("TikTok handle"),
		field.String("instagram_handle").
			Optional().
			Comment("Instagram handle"),
		field.Int("youtube_followers").
			Default(0).
			NonNegative().
			Comment("YouTube subscriber count"),
		field.Int("tiktok_followers").
			Default(0).
			NonNegative().
			Comment("TikTok follower count"),
		field.Int("instagram_followers").
			Default(0).
			NonNegative().
			Comment("Instagram follower count"),
		field.String("website").
			Optional().
			Comment("Personal or brand website"),
		field.Text("project_idea").
			NotEmpty().
			Comment("What the applicant wants to build in the program"),
		field.Text("target_audience").
			NotEmpty().
			Comment("Who the project is for"),
		field.Text("why_join").
			NotEmpty().
			Comment("Why the applicant wants to join"),
		field.String("pitch_deck_url").
			Optional().
			Comment("S3 URL of the uploaded pitch deck PDF"),
		field.String("media_kit_url").
			Optional().
			Comment("S3 URL of the uploaded media kit PDF"),
		field.Enum("status").
			Values("not_submitted", "under_review", "accepted", "rejected").
			Default("not_submitted").
			Comment("Application review status"),
		field.Text("admin_notes").
			Optional().
			Comment("Free-text reviewer notes"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Reviewer tags (e.g. [strong-video, needs-followup])"),
		field.Time("submitted_at").
			Optional().
			Nillable().
			Comment("When the application was submitted"),
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

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("applicant", User.Type).
			Ref("applications").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Application.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("submitted_at"),
	}
}
