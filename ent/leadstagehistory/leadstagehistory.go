// Code generated by ent, DO NOT EDIT.

package leadstagehistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the leadstagehistory type in the database.
	Label = "lead_stage_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOldStage holds the string denoting the old_stage field in the database.
	FieldOldStage = "old_stage"
	// FieldNewStage holds the string denoting the new_stage field in the database.
	FieldNewStage = "new_stage"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the leadstagehistory in the database.
	Table = "lead_stage_histories"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "lead_stage_histories"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "lead_stage_histories"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for leadstagehistory fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldUserID,
	FieldOldStage,
	FieldNewStage,
	FieldReason,
	FieldCreatedAt,
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
	// LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	LeadIDValidator func(int) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(int) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OldStage defines the type for the "old_stage" enum field.
type OldStage string

// OldStage values.
const (
	OldStageWarm            OldStage = "warm"
	OldStageInterested      OldStage = "interested"
	OldStageAlmostOnboarded OldStage = "almost_onboarded"
	OldStageOnboarded       OldStage = "onboarded"
	OldStageRejected        OldStage = "rejected"
)

func (os OldStage) String() string {
	return string(os)
}

// OldStageValidator is a validator for the "old_stage" field enum values. It is called by the builders before save.
func OldStageValidator(os OldStage) error {
	switch os {
	case OldStageWarm, OldStageInterested, OldStageAlmostOnboarded, OldStageOnboarded, OldStageRejected:
		return nil
	default:
		return fmt.Errorf("leadstagehistory: invalid enum value for old_stage field: %q", os)
	}
}

// NewStage defines the type for the "new_stage" enum field.
type NewStage string

// NewStage values.
const (
	NewStageWarm            NewStage = "warm"
	NewStageInterested      NewStage = "interested"
	NewStageAlmostOnboarded NewStage = "almost_onboarded"
	NewStageOnboarded       NewStage = "onboarded"
	NewStageRejected        NewStage = "rejected"
)

func (ns NewStage) String() string {
	return string(ns)
}

// NewStageValidator is a validator for the "new_stage" field enum values. It is called by the builders before save.
func NewStageValidator(ns NewStage) error {
	switch ns {
	case NewStageWarm, NewStageInterested, NewStageAlmostOnboarded, NewStageOnboarded, NewStageRejected:
		return nil
	default:
		return fmt.Errorf("leadstagehistory: invalid enum value for new_stage field: %q", ns)
	}
}

// OrderOption defines the ordering options for the LeadStageHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOldStage orders the results by the old_stage field.
func ByOldStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldStage, opts...).ToFunc()
}

// ByNewStage orders the results by the new_stage field.
func ByNewStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStage, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
