// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldStageChangedAt holds the string denoting the stage_changed_at field in the database.
	FieldStageChangedAt = "stage_changed_at"
	// FieldFitScore holds the string denoting the fit_score field in the database.
	FieldFitScore = "fit_score"
	// FieldSentimentScore holds the string denoting the sentiment_score field in the database.
	FieldSentimentScore = "sentiment_score"
	// FieldAiSummary holds the string denoting the ai_summary field in the database.
	FieldAiSummary = "ai_summary"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldConcerns holds the string denoting the concerns field in the database.
	FieldConcerns = "concerns"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldEstimatedRevenuePotential holds the string denoting the estimated_revenue_potential field in the database.
	FieldEstimatedRevenuePotential = "estimated_revenue_potential"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// FieldConvertedClientID holds the string denoting the converted_client_id field in the database.
	FieldConvertedClientID = "converted_client_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStageHistory holds the string denoting the stage_history edge name in mutations.
	EdgeStageHistory = "stage_history"
	// Table holds the table name of the lead in the database.
	Table = "leads"
	// StageHistoryTable is the table that holds the stage_history relation/edge.
	StageHistoryTable = "lead_stage_histories"
	// StageHistoryInverseTable is the table name for the LeadStageHistory entity.
	// It exists in this package in order to avoid circular dependency with the "leadstagehistory" package.
	StageHistoryInverseTable = "lead_stage_histories"
	// StageHistoryColumn is the table column denoting the stage_history relation/edge.
	StageHistoryColumn = "lead_id"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldSource,
	FieldSummary,
	FieldAnswers,
	FieldStage,
	FieldStageChangedAt,
	FieldFitScore,
	FieldSentimentScore,
	FieldAiSummary,
	FieldStrengths,
	FieldConcerns,
	FieldRecommendations,
	FieldEstimatedRevenuePotential,
	FieldAnalyzedAt,
	FieldConvertedClientID,
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
	// DefaultStageChangedAt holds the default value on creation for the "stage_changed_at" field.
	DefaultStageChangedAt func() time.Time
	// FitScoreValidator is a validator for the "fit_score" field. It is called by the builders before save.
	FitScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// StageWarm is the default value of the Stage enum.
const DefaultStage = StageWarm

// Stage values.
const (
	StageWarm            Stage = "warm"
	StageInterested      Stage = "interested"
	StageAlmostOnboarded Stage = "almost_onboarded"
	StageOnboarded       Stage = "onboarded"
	StageRejected        Stage = "rejected"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageWarm, StageInterested, StageAlmostOnboarded, StageOnboarded, StageRejected:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the Lead queries.
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

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByStageChangedAt orders the results by the stage_changed_at field.
func ByStageChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageChangedAt, opts...).ToFunc()
}

// ByFitScore orders the results by the fit_score field.
func ByFitScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFitScore, opts...).ToFunc()
}

// BySentimentScore orders the results by the sentiment_score field.
func BySentimentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentScore, opts...).ToFunc()
}

// ByAiSummary orders the results by the ai_summary field.
func ByAiSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiSummary, opts...).ToFunc()
}

// ByRecommendations orders the results by the recommendations field.
func ByRecommendations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendations, opts...).ToFunc()
}

// ByEstimatedRevenuePotential orders the results by the estimated_revenue_potential field.
func ByEstimatedRevenuePotential(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedRevenuePotential, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}

// ByConvertedClientID orders the results by the converted_client_id field.
func ByConvertedClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvertedClientID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStageHistoryCount orders the results by stage_history count.
func ByStageHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageHistoryStep(), opts...)
	}
}

// ByStageHistory orders the results by stage_history terms.
func ByStageHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStageHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageHistoryTable, StageHistoryColumn),
	)
}
