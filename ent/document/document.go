// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKitID holds the string denoting the kit_id field in the database.
	FieldKitID = "kit_id"
	// FieldSlot holds the string denoting the slot field in the database.
	FieldSlot = "slot"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldRevisionNotes holds the string denoting the revision_notes field in the database.
	FieldRevisionNotes = "revision_notes"
	// FieldStatusChangedAt holds the string denoting the status_changed_at field in the database.
	FieldStatusChangedAt = "status_changed_at"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeKit holds the string denoting the kit edge name in mutations.
	EdgeKit = "kit"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// KitTable is the table that holds the kit relation/edge.
	KitTable = "documents"
	// KitInverseTable is the table name for the OnboardingKit entity.
	// It exists in this package in order to avoid circular dependency with the "onboardingkit" package.
	KitInverseTable = "onboarding_kits"
	// KitColumn is the table column denoting the kit relation/edge.
	KitColumn = "kit_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldKitID,
	FieldSlot,
	FieldName,
	FieldStatus,
	FieldContent,
	FieldRevisionNotes,
	FieldStatusChangedAt,
	FieldApprovedAt,
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
	// KitIDValidator is a validator for the "kit_id" field. It is called by the builders before save.
	KitIDValidator func(int) error
	// SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	SlotValidator func(int) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultStatusChangedAt holds the default value on creation for the "status_changed_at" field.
	DefaultStatusChangedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNotGenerated is the default value of the Status enum.
const DefaultStatus = StatusNotGenerated

// Status values.
const (
	StatusNotGenerated      Status = "not_generated"
	StatusGenerated         Status = "generated"
	StatusSent              Status = "sent"
	StatusViewed            Status = "viewed"
	StatusRevisionRequested Status = "revision_requested"
	StatusApproved          Status = "approved"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNotGenerated, StatusGenerated, StatusSent, StatusViewed, StatusRevisionRequested, StatusApproved:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKitID orders the results by the kit_id field.
func ByKitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKitID, opts...).ToFunc()
}

// BySlot orders the results by the slot field.
func BySlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlot, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByRevisionNotes orders the results by the revision_notes field.
func ByRevisionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisionNotes, opts...).ToFunc()
}

// ByStatusChangedAt orders the results by the status_changed_at field.
func ByStatusChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusChangedAt, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByKitField orders the results by kit field.
func ByKitField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKitStep(), sql.OrderByField(field, opts...))
	}
}
func newKitStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KitInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, KitTable, KitColumn),
	)
}
