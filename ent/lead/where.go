// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSource, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSummary, v))
}

// StageChangedAt applies equality check predicate on the "stage_changed_at" field. It's identical to StageChangedAtEQ.
func StageChangedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStageChangedAt, v))
}

// FitScore applies equality check predicate on the "fit_score" field. It's identical to FitScoreEQ.
func FitScore(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFitScore, v))
}

// SentimentScore applies equality check predicate on the "sentiment_score" field. It's identical to SentimentScoreEQ.
func SentimentScore(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSentimentScore, v))
}

// AiSummary applies equality check predicate on the "ai_summary" field. It's identical to AiSummaryEQ.
func AiSummary(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAiSummary, v))
}

// Recommendations applies equality check predicate on the "recommendations" field. It's identical to RecommendationsEQ.
func Recommendations(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldRecommendations, v))
}

// EstimatedRevenuePotential applies equality check predicate on the "estimated_revenue_potential" field. It's identical to EstimatedRevenuePotentialEQ.
func EstimatedRevenuePotential(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEstimatedRevenuePotential, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAnalyzedAt, v))
}

// ConvertedClientID applies equality check predicate on the "converted_client_id" field. It's identical to ConvertedClientIDEQ.
func ConvertedClientID(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConvertedClientID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompany, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldSource, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldSummary, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAnswers))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldStage, vs...))
}

// StageChangedAtEQ applies the EQ predicate on the "stage_changed_at" field.
func StageChangedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStageChangedAt, v))
}

// StageChangedAtNEQ applies the NEQ predicate on the "stage_changed_at" field.
func StageChangedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldStageChangedAt, v))
}

// StageChangedAtIn applies the In predicate on the "stage_changed_at" field.
func StageChangedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldStageChangedAt, vs...))
}

// StageChangedAtNotIn applies the NotIn predicate on the "stage_changed_at" field.
func StageChangedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldStageChangedAt, vs...))
}

// StageChangedAtGT applies the GT predicate on the "stage_changed_at" field.
func StageChangedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldStageChangedAt, v))
}

// StageChangedAtGTE applies the GTE predicate on the "stage_changed_at" field.
func StageChangedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldStageChangedAt, v))
}

// StageChangedAtLT applies the LT predicate on the "stage_changed_at" field.
func StageChangedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldStageChangedAt, v))
}

// StageChangedAtLTE applies the LTE predicate on the "stage_changed_at" field.
func StageChangedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldStageChangedAt, v))
}

// FitScoreEQ applies the EQ predicate on the "fit_score" field.
func FitScoreEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFitScore, v))
}

// FitScoreNEQ applies the NEQ predicate on the "fit_score" field.
func FitScoreNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFitScore, v))
}

// FitScoreIn applies the In predicate on the "fit_score" field.
func FitScoreIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFitScore, vs...))
}

// FitScoreNotIn applies the NotIn predicate on the "fit_score" field.
func FitScoreNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFitScore, vs...))
}

// FitScoreGT applies the GT predicate on the "fit_score" field.
func FitScoreGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFitScore, v))
}

// FitScoreGTE applies the GTE predicate on the "fit_score" field.
func FitScoreGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFitScore, v))
}

// FitScoreLT applies the LT predicate on the "fit_score" field.
func FitScoreLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFitScore, v))
}

// FitScoreLTE applies the LTE predicate on the "fit_score" field.
func FitScoreLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFitScore, v))
}

// FitScoreIsNil applies the IsNil predicate on the "fit_score" field.
func FitScoreIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldFitScore))
}

// FitScoreNotNil applies the NotNil predicate on the "fit_score" field.
func FitScoreNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldFitScore))
}

// SentimentScoreEQ applies the EQ predicate on the "sentiment_score" field.
func SentimentScoreEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSentimentScore, v))
}

// SentimentScoreNEQ applies the NEQ predicate on the "sentiment_score" field.
func SentimentScoreNEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSentimentScore, v))
}

// SentimentScoreIn applies the In predicate on the "sentiment_score" field.
func SentimentScoreIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSentimentScore, vs...))
}

// SentimentScoreNotIn applies the NotIn predicate on the "sentiment_score" field.
func SentimentScoreNotIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSentimentScore, vs...))
}

// SentimentScoreGT applies the GT predicate on the "sentiment_score" field.
func SentimentScoreGT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldSentimentScore, v))
}

// SentimentScoreGTE applies the GTE predicate on the "sentiment_score" field.
func SentimentScoreGTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldSentimentScore, v))
}

// SentimentScoreLT applies the LT predicate on the "sentiment_score" field.
func SentimentScoreLT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldSentimentScore, v))
}

// SentimentScoreLTE applies the LTE predicate on the "sentiment_score" field.
func SentimentScoreLTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldSentimentScore, v))
}

// SentimentScoreIsNil applies the IsNil predicate on the "sentiment_score" field.
func SentimentScoreIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldSentimentScore))
}

// SentimentScoreNotNil applies the NotNil predicate on the "sentiment_score" field.
func SentimentScoreNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldSentimentScore))
}

// AiSummaryEQ applies the EQ predicate on the "ai_summary" field.
func AiSummaryEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAiSummary, v))
}

// AiSummaryNEQ applies the NEQ predicate on the "ai_summary" field.
func AiSummaryNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAiSummary, v))
}

// AiSummaryIn applies the In predicate on the "ai_summary" field.
func AiSummaryIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAiSummary, vs...))
}

// AiSummaryNotIn applies the NotIn predicate on the "ai_summary" field.
func AiSummaryNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAiSummary, vs...))
}

// AiSummaryGT applies the GT predicate on the "ai_summary" field.
func AiSummaryGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAiSummary, v))
}

// AiSummaryGTE applies the GTE predicate on the "ai_summary" field.
func AiSummaryGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAiSummary, v))
}

// AiSummaryLT applies the LT predicate on the "ai_summary" field.
func AiSummaryLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAiSummary, v))
}

// AiSummaryLTE applies the LTE predicate on the "ai_summary" field.
func AiSummaryLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAiSummary, v))
}

// AiSummaryContains applies the Contains predicate on the "ai_summary" field.
func AiSummaryContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldAiSummary, v))
}

// AiSummaryHasPrefix applies the HasPrefix predicate on the "ai_summary" field.
func AiSummaryHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldAiSummary, v))
}

// AiSummaryHasSuffix applies the HasSuffix predicate on the "ai_summary" field.
func AiSummaryHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldAiSummary, v))
}

// AiSummaryIsNil applies the IsNil predicate on the "ai_summary" field.
func AiSummaryIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAiSummary))
}

// AiSummaryNotNil applies the NotNil predicate on the "ai_summary" field.
func AiSummaryNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAiSummary))
}

// AiSummaryEqualFold applies the EqualFold predicate on the "ai_summary" field.
func AiSummaryEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldAiSummary, v))
}

// AiSummaryContainsFold applies the ContainsFold predicate on the "ai_summary" field.
func AiSummaryContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldAiSummary, v))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldStrengths))
}

// ConcernsIsNil applies the IsNil predicate on the "concerns" field.
func ConcernsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldConcerns))
}

// ConcernsNotNil applies the NotNil predicate on the "concerns" field.
func ConcernsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldConcerns))
}

// RecommendationsEQ applies the EQ predicate on the "recommendations" field.
func RecommendationsEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldRecommendations, v))
}

// RecommendationsNEQ applies the NEQ predicate on the "recommendations" field.
func RecommendationsNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldRecommendations, v))
}

// RecommendationsIn applies the In predicate on the "recommendations" field.
func RecommendationsIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldRecommendations, vs...))
}

// RecommendationsNotIn applies the NotIn predicate on the "recommendations" field.
func RecommendationsNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldRecommendations, vs...))
}

// RecommendationsGT applies the GT predicate on the "recommendations" field.
func RecommendationsGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldRecommendations, v))
}

// RecommendationsGTE applies the GTE predicate on the "recommendations" field.
func RecommendationsGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldRecommendations, v))
}

// RecommendationsLT applies the LT predicate on the "recommendations" field.
func RecommendationsLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldRecommendations, v))
}

// RecommendationsLTE applies the LTE predicate on the "recommendations" field.
func RecommendationsLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldRecommendations, v))
}

// RecommendationsContains applies the Contains predicate on the "recommendations" field.
func RecommendationsContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldRecommendations, v))
}

// RecommendationsHasPrefix applies the HasPrefix predicate on the "recommendations" field.
func RecommendationsHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldRecommendations, v))
}

// RecommendationsHasSuffix applies the HasSuffix predicate on the "recommendations" field.
func RecommendationsHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldRecommendations, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldRecommendations))
}

// RecommendationsEqualFold applies the EqualFold predicate on the "recommendations" field.
func RecommendationsEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldRecommendations, v))
}

// RecommendationsContainsFold applies the ContainsFold predicate on the "recommendations" field.
func RecommendationsContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldRecommendations, v))
}

// EstimatedRevenuePotentialEQ applies the EQ predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialNEQ applies the NEQ predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialIn applies the In predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEstimatedRevenuePotential, vs...))
}

// EstimatedRevenuePotentialNotIn applies the NotIn predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEstimatedRevenuePotential, vs...))
}

// EstimatedRevenuePotentialGT applies the GT predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialGTE applies the GTE predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialLT applies the LT predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialLTE applies the LTE predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialContains applies the Contains predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialHasPrefix applies the HasPrefix predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialHasSuffix applies the HasSuffix predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialIsNil applies the IsNil predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldEstimatedRevenuePotential))
}

// EstimatedRevenuePotentialNotNil applies the NotNil predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldEstimatedRevenuePotential))
}

// EstimatedRevenuePotentialEqualFold applies the EqualFold predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEstimatedRevenuePotential, v))
}

// EstimatedRevenuePotentialContainsFold applies the ContainsFold predicate on the "estimated_revenue_potential" field.
func EstimatedRevenuePotentialContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEstimatedRevenuePotential, v))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAnalyzedAt, v))
}

// AnalyzedAtIsNil applies the IsNil predicate on the "analyzed_at" field.
func AnalyzedAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAnalyzedAt))
}

// AnalyzedAtNotNil applies the NotNil predicate on the "analyzed_at" field.
func AnalyzedAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAnalyzedAt))
}

// ConvertedClientIDEQ applies the EQ predicate on the "converted_client_id" field.
func ConvertedClientIDEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConvertedClientID, v))
}

// ConvertedClientIDNEQ applies the NEQ predicate on the "converted_client_id" field.
func ConvertedClientIDNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldConvertedClientID, v))
}

// ConvertedClientIDIn applies the In predicate on the "converted_client_id" field.
func ConvertedClientIDIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldConvertedClientID, vs...))
}

// ConvertedClientIDNotIn applies the NotIn predicate on the "converted_client_id" field.
func ConvertedClientIDNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldConvertedClientID, vs...))
}

// ConvertedClientIDGT applies the GT predicate on the "converted_client_id" field.
func ConvertedClientIDGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldConvertedClientID, v))
}

// ConvertedClientIDGTE applies the GTE predicate on the "converted_client_id" field.
func ConvertedClientIDGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldConvertedClientID, v))
}

// ConvertedClientIDLT applies the LT predicate on the "converted_client_id" field.
func ConvertedClientIDLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldConvertedClientID, v))
}

// ConvertedClientIDLTE applies the LTE predicate on the "converted_client_id" field.
func ConvertedClientIDLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldConvertedClientID, v))
}

// ConvertedClientIDIsNil applies the IsNil predicate on the "converted_client_id" field.
func ConvertedClientIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldConvertedClientID))
}

// ConvertedClientIDNotNil applies the NotNil predicate on the "converted_client_id" field.
func ConvertedClientIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldConvertedClientID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStageHistory applies the HasEdge predicate on the "stage_history" edge.
func HasStageHistory() predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageHistoryTable, StageHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageHistoryWith applies the HasEdge predicate on the "stage_history" edge with a given conditions (other predicates).
func HasStageHistoryWith(preds ...predicate.LeadStageHistory) predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := newStageHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
