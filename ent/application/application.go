// Code generated by ent, DO NOT EDIT.

package application

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCreatorName holds the string denoting the creator_name field in the database.
	FieldCreatorName = "creator_name"
	// FieldYoutubeHandle holds the string denoting the youtube_handle field in the database.
	FieldYoutubeHandle = "youtube_handle"
	// FieldTiktokHandle holds the string denoting the tiktok_handle field in the database.
	FieldTiktokHandle = "tiktok_handle"
	// FieldInstagramHandle holds the string denoting the instagram_handle field in the database.
	FieldInstagramHandle = "instagram_handle"
	// FieldYoutubeFollowers holds the string denoting the youtube_followers field in the database.
	FieldYoutubeFollowers = "youtube_followers"
	// FieldTiktokFollowers holds the string denoting the tiktok_followers field in the database.
	FieldTiktokFollowers = "tiktok_followers"
	// FieldInstagramFollowers holds the string denoting the instagram_followers field in the database.
	FieldInstagramFollowers = "instagram_followers"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldProjectIdea holds the string denoting the project_idea field in the database.
	FieldProjectIdea = "project_idea"
	// FieldTargetAudience holds the string denoting the target_audience field in the database.
	FieldTargetAudience = "target_audience"
	// FieldWhyJoin holds the string denoting the why_join field in the database.
	FieldWhyJoin = "why_join"
	// FieldPitchDeckURL holds the string denoting the pitch_deck_url field in the database.
	FieldPitchDeckURL = "pitch_deck_url"
	// FieldMediaKitURL holds the string denoting the media_kit_url field in the database.
	FieldMediaKitURL = "media_kit_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAdminNotes holds the string denoting the admin_notes field in the database.
	FieldAdminNotes = "admin_notes"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplicant holds the string denoting the applicant edge name in mutations.
	EdgeApplicant = "applicant"
	// Table holds the table name of the application in the database.
	Table = "applications"
	// ApplicantTable is the table that holds the applicant relation/edge.
	ApplicantTable = "applications"
	// ApplicantInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ApplicantInverseTable = "users"
	// ApplicantColumn is the table column denoting the applicant relation/edge.
	ApplicantColumn = "user_id"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCreatorName,
	FieldYoutubeHandle,
	FieldTiktokHandle,
	FieldInstagramHandle,
	FieldYoutubeFollowers,
	FieldTiktokFollowers,
	FieldInstagramFollowers,
	FieldWebsite,
	FieldProjectIdea,
	FieldTargetAudience,
	FieldWhyJoin,
	FieldPitchDeckURL,
	FieldMediaKitURL,
	FieldStatus,
	FieldAdminNotes,
	FieldTags,
	FieldSubmittedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(int) error
	// CreatorNameValidator is a validator for the "creator_name" field. It is called by the builders before save.
	CreatorNameValidator func(string) error
	// DefaultYoutubeFollowers holds the default value on creation for the "youtube_followers" field.
	DefaultYoutubeFollowers int
	// YoutubeFollowersValidator is a validator for the "youtube_followers" field. It is called by the builders before save.
	YoutubeFollowersValidator func(int) error
	// DefaultTiktokFollowers holds the default value on creation for the "tiktok_followers" field.
	DefaultTiktokFollowers int
	// TiktokFollowersValidator is a validator for the "tiktok_followers" field. It is called by the builders before save.
	TiktokFollowersValidator func(int) error
	// DefaultInstagramFollowers holds the default value on creation for the "instagram_followers" field.
	DefaultInstagramFollowers int
	// InstagramFollowersValidator is a validator for the "instagram_followers" field. It is called by the builders before save.
	InstagramFollowersValidator func(int) error
	// ProjectIdeaValidator is a validator for the "project_idea" field. It is called by the builders before save.
	ProjectIdeaValidator func(string) error
	// TargetAudienceValidator is a validator for the "target_audience" field. It is called by the builders before save.
	TargetAudienceValidator func(string) error
	// WhyJoinValidator is a validator for the "why_join" field. It is called by the builders before save.
	WhyJoinValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNotSubmitted is the default value of the Status enum.
const DefaultStatus = StatusNotSubmitted

// Status values.
const (
	StatusNotSubmitted Status = "not_submitted"
	StatusUnderReview  Status = "under_review"
	StatusAccepted     Status = "accepted"
	StatusRejected     Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNotSubmitted, StatusUnderReview, StatusAccepted, StatusRejected:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreatorName orders the results by the creator_name field.
func ByCreatorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorName, opts...).ToFunc()
}

// ByYoutubeHandle orders the results by the youtube_handle field.
func ByYoutubeHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutubeHandle, opts...).ToFunc()
}

// ByTiktokHandle orders the results by the tiktok_handle field.
func ByTiktokHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTiktokHandle, opts...).ToFunc()
}

// ByInstagramHandle orders the results by the instagram_handle field.
func ByInstagramHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstagramHandle, opts...).ToFunc()
}

// ByYoutubeFollowers orders the results by the youtube_followers field.
func ByYoutubeFollowers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutubeFollowers, opts...).ToFunc()
}

// ByTiktokFollowers orders the results by the tiktok_followers field.
func ByTiktokFollowers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTiktokFollowers, opts...).ToFunc()
}

// ByInstagramFollowers orders the results by the instagram_followers field.
func ByInstagramFollowers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstagramFollowers, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByProjectIdea orders the results by the project_idea field.
func ByProjectIdea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectIdea, opts...).ToFunc()
}

// ByTargetAudience orders the results by the target_audience field.
func ByTargetAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAudience, opts...).ToFunc()
}

// ByWhyJoin orders the results by the why_join field.
func ByWhyJoin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhyJoin, opts...).ToFunc()
}

// ByPitchDeckURL orders the results by the pitch_deck_url field.
func ByPitchDeckURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPitchDeckURL, opts...).ToFunc()
}

// ByMediaKitURL orders the results by the media_kit_url field.
func ByMediaKitURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaKitURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAdminNotes orders the results by the admin_notes field.
func ByAdminNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminNotes, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByApplicantField orders the results by applicant field.
func ByApplicantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicantStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
	)
}
