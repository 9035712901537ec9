// Code generated by ent, DO NOT EDIT.

package creator

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the creator type in the database.
	Label = "creator"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldJourneyStage holds the string denoting the journey_stage field in the database.
	FieldJourneyStage = "journey_stage"
	// FieldJourneyProgress holds the string denoting the journey_progress field in the database.
	FieldJourneyProgress = "journey_progress"
	// FieldHealthScore holds the string denoting the health_score field in the database.
	FieldHealthScore = "health_score"
	// FieldHealthFactors holds the string denoting the health_factors field in the database.
	FieldHealthFactors = "health_factors"
	// FieldHealthUpdatedAt holds the string denoting the health_updated_at field in the database.
	FieldHealthUpdatedAt = "health_updated_at"
	// FieldConvertedFromLeadID holds the string denoting the converted_from_lead_id field in the database.
	FieldConvertedFromLeadID = "converted_from_lead_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMilestones holds the string denoting the milestones edge name in mutations.
	EdgeMilestones = "milestones"
	// EdgeKits holds the string denoting the kits edge name in mutations.
	EdgeKits = "kits"
	// EdgeActivities holds the string denoting the activities edge name in mutations.
	EdgeActivities = "activities"
	// Table holds the table name of the creator in the database.
	Table = "clients"
	// MilestonesTable is the table that holds the milestones relation/edge.
	MilestonesTable = "milestones"
	// MilestonesInverseTable is the table name for the Milestone entity.
	// It exists in this package in order to avoid circular dependency with the "milestone" package.
	MilestonesInverseTable = "milestones"
	// MilestonesColumn is the table column denoting the milestones relation/edge.
	MilestonesColumn = "client_id"
	// KitsTable is the table that holds the kits relation/edge.
	KitsTable = "onboarding_kits"
	// KitsInverseTable is the table name for the OnboardingKit entity.
	// It exists in this package in order to avoid circular dependency with the "onboardingkit" package.
	KitsInverseTable = "onboarding_kits"
	// KitsColumn is the table column denoting the kits relation/edge.
	KitsColumn = "client_id"
	// ActivitiesTable is the table that holds the activities relation/edge.
	ActivitiesTable = "activities"
	// ActivitiesInverseTable is the table name for the Activity entity.
	// It exists in this package in order to avoid circular dependency with the "activity" package.
	ActivitiesInverseTable = "activities"
	// ActivitiesColumn is the table column denoting the activities relation/edge.
	ActivitiesColumn = "client_id"
)

// Columns holds all SQL columns for creator fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldJourneyStage,
	FieldJourneyProgress,
	FieldHealthScore,
	FieldHealthFactors,
	FieldHealthUpdatedAt,
	FieldConvertedFromLeadID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultJourneyProgress holds the default value on creation for the "journey_progress" field.
	DefaultJourneyProgress int
	// JourneyProgressValidator is a validator for the "journey_progress" field. It is called by the builders before save.
	JourneyProgressValidator func(int) error
	// DefaultHealthScore holds the default value on creation for the "health_score" field.
	DefaultHealthScore int
	// HealthScoreValidator is a validator for the "health_score" field. It is called by the builders before save.
	HealthScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// JourneyStage defines the type for the "journey_stage" enum field.
type JourneyStage string

// JourneyStageFoundation is the default value of the JourneyStage enum.
const DefaultJourneyStage = JourneyStageFoundation

// JourneyStage values.
const (
	JourneyStageFoundation      JourneyStage = "foundation"
	JourneyStagePrep            JourneyStage = "prep"
	JourneyStageLaunch          JourneyStage = "launch"
	JourneyStageGrowthExpansion JourneyStage = "growth_expansion"
)

func (js JourneyStage) String() string {
	return string(js)
}

// JourneyStageValidator is a validator for the "journey_stage" field enum values. It is called by the builders before save.
func JourneyStageValidator(js JourneyStage) error {
	switch js {
	case JourneyStageFoundation, JourneyStagePrep, JourneyStageLaunch, JourneyStageGrowthExpansion:
		return nil
	default:
		return fmt.Errorf("creator: invalid enum value for journey_stage field: %q", js)
	}
}

// OrderOption defines the ordering options for the Creator queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByJourneyStage orders the results by the journey_stage field.
func ByJourneyStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyStage, opts...).ToFunc()
}

// ByJourneyProgress orders the results by the journey_progress field.
func ByJourneyProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyProgress, opts...).ToFunc()
}

// ByHealthScore orders the results by the health_score field.
func ByHealthScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthScore, opts...).ToFunc()
}

// ByHealthUpdatedAt orders the results by the health_updated_at field.
func ByHealthUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthUpdatedAt, opts...).ToFunc()
}

// ByConvertedFromLeadID orders the results by the converted_from_lead_id field.
func ByConvertedFromLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvertedFromLeadID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMilestonesCount orders the results by milestones count.
func ByMilestonesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMilestonesStep(), opts...)
	}
}

// ByMilestones orders the results by milestones terms.
func ByMilestones(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMilestonesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKitsCount orders the results by kits count.
func ByKitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKitsStep(), opts...)
	}
}

// ByKits orders the results by kits terms.
func ByKits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByActivitiesCount orders the results by activities count.
func ByActivitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivitiesStep(), opts...)
	}
}

// ByActivities orders the results by activities terms.
func ByActivities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMilestonesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MilestonesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MilestonesTable, MilestonesColumn),
	)
}
func newKitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KitsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KitsTable, KitsColumn),
	)
}
func newActivitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
	)
}
