// Code generated by ent, DO NOT EDIT.

package creator

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldEmail, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldCompany, v))
}

// JourneyProgress applies equality check predicate on the "journey_progress" field. It's identical to JourneyProgressEQ.
func JourneyProgress(v int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldJourneyProgress, v))
}

// HealthScore applies equality check predicate on the "health_score" field. It's identical to HealthScoreEQ.
func HealthScore(v int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldHealthScore, v))
}

// HealthUpdatedAt applies equality check predicate on the "health_updated_at" field. It's identical to HealthUpdatedAtEQ.
func HealthUpdatedAt(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldHealthUpdatedAt, v))
}

// ConvertedFromLeadID applies equality check predicate on the "converted_from_lead_id" field. It's identical to ConvertedFromLeadIDEQ.
func ConvertedFromLeadID(v int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldConvertedFromLeadID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Creator {
	return predicate.Creator(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Creator {
	return predicate.Creator(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Creator {
	return predicate.Creator(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Creator {
	return predicate.Creator(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Creator {
	return predicate.Creator(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Creator {
	return predicate.Creator(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Creator {
	return predicate.Creator(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Creator {
	return predicate.Creator(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Creator {
	return predicate.Creator(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Creator {
	return predicate.Creator(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Creator {
	return predicate.Creator(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Creator {
	return predicate.Creator(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Creator {
	return predicate.Creator(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Creator {
	return predicate.Creator(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Creator {
	return predicate.Creator(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Creator {
	return predicate.Creator(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Creator {
	return predicate.Creator(sql.FieldContainsFold(FieldCompany, v))
}

// JourneyStageEQ applies the EQ predicate on the "journey_stage" field.
func JourneyStageEQ(v JourneyStage) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldJourneyStage, v))
}

// JourneyStageNEQ applies the NEQ predicate on the "journey_stage" field.
func JourneyStageNEQ(v JourneyStage) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldJourneyStage, v))
}

// JourneyStageIn applies the In predicate on the "journey_stage" field.
func JourneyStageIn(vs ...JourneyStage) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldJourneyStage, vs...))
}

// JourneyStageNotIn applies the NotIn predicate on the "journey_stage" field.
func JourneyStageNotIn(vs ...JourneyStage) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldJourneyStage, vs...))
}

// JourneyProgressEQ applies the EQ predicate on the "journey_progress" field.
func JourneyProgressEQ(v int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldJourneyProgress, v))
}

// JourneyProgressNEQ applies the NEQ predicate on the "journey_progress" field.
func JourneyProgressNEQ(v int) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldJourneyProgress, v))
}

// JourneyProgressIn applies the In predicate on the "journey_progress" field.
func JourneyProgressIn(vs ...int) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldJourneyProgress, vs...))
}

// JourneyProgressNotIn applies the NotIn predicate on the "journey_progress" field.
func JourneyProgressNotIn(vs ...int) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldJourneyProgress, vs...))
}

// JourneyProgressGT applies the GT predicate on the "journey_progress" field.
func JourneyProgressGT(v int) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldJourneyProgress, v))
}

// JourneyProgressGTE applies the GTE predicate on the "journey_progress" field.
func JourneyProgressGTE(v int) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldJourneyProgress, v))
}

// JourneyProgressLT applies the LT predicate on the "journey_progress" field.
func JourneyProgressLT(v int) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldJourneyProgress, v))
}

// JourneyProgressLTE applies the LTE predicate on the "journey_progress" field.
func JourneyProgressLTE(v int) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldJourneyProgress, v))
}

// HealthScoreEQ applies the EQ predicate on the "health_score" field.
func HealthScoreEQ(v int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldHealthScore, v))
}

// HealthScoreNEQ applies the NEQ predicate on the "health_score" field.
func HealthScoreNEQ(v int) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldHealthScore, v))
}

// HealthScoreIn applies the In predicate on the "health_score" field.
func HealthScoreIn(vs ...int) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldHealthScore, vs...))
}

// HealthScoreNotIn applies the NotIn predicate on the "health_score" field.
func HealthScoreNotIn(vs ...int) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldHealthScore, vs...))
}

// HealthScoreGT applies the GT predicate on the "health_score" field.
func HealthScoreGT(v int) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldHealthScore, v))
}

// HealthScoreGTE applies the GTE predicate on the "health_score" field.
func HealthScoreGTE(v int) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldHealthScore, v))
}

// HealthScoreLT applies the LT predicate on the "health_score" field.
func HealthScoreLT(v int) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldHealthScore, v))
}

// HealthScoreLTE applies the LTE predicate on the "health_score" field.
func HealthScoreLTE(v int) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldHealthScore, v))
}

// HealthFactorsIsNil applies the IsNil predicate on the "health_factors" field.
func HealthFactorsIsNil() predicate.Creator {
	return predicate.Creator(sql.FieldIsNull(FieldHealthFactors))
}

// HealthFactorsNotNil applies the NotNil predicate on the "health_factors" field.
func HealthFactorsNotNil() predicate.Creator {
	return predicate.Creator(sql.FieldNotNull(FieldHealthFactors))
}

// HealthUpdatedAtEQ applies the EQ predicate on the "health_updated_at" field.
func HealthUpdatedAtEQ(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldHealthUpdatedAt, v))
}

// HealthUpdatedAtNEQ applies the NEQ predicate on the "health_updated_at" field.
func HealthUpdatedAtNEQ(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldHealthUpdatedAt, v))
}

// HealthUpdatedAtIn applies the In predicate on the "health_updated_at" field.
func HealthUpdatedAtIn(vs ...time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldHealthUpdatedAt, vs...))
}

// HealthUpdatedAtNotIn applies the NotIn predicate on the "health_updated_at" field.
func HealthUpdatedAtNotIn(vs ...time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldHealthUpdatedAt, vs...))
}

// HealthUpdatedAtGT applies the GT predicate on the "health_updated_at" field.
func HealthUpdatedAtGT(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldHealthUpdatedAt, v))
}

// HealthUpdatedAtGTE applies the GTE predicate on the "health_updated_at" field.
func HealthUpdatedAtGTE(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldHealthUpdatedAt, v))
}

// HealthUpdatedAtLT applies the LT predicate on the "health_updated_at" field.
func HealthUpdatedAtLT(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldHealthUpdatedAt, v))
}

// HealthUpdatedAtLTE applies the LTE predicate on the "health_updated_at" field.
func HealthUpdatedAtLTE(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldHealthUpdatedAt, v))
}

// HealthUpdatedAtIsNil applies the IsNil predicate on the "health_updated_at" field.
func HealthUpdatedAtIsNil() predicate.Creator {
	return predicate.Creator(sql.FieldIsNull(FieldHealthUpdatedAt))
}

// HealthUpdatedAtNotNil applies the NotNil predicate on the "health_updated_at" field.
func HealthUpdatedAtNotNil() predicate.Creator {
	return predicate.Creator(sql.FieldNotNull(FieldHealthUpdatedAt))
}

// ConvertedFromLeadIDEQ applies the EQ predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDEQ(v int) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldConvertedFromLeadID, v))
}

// ConvertedFromLeadIDNEQ applies the NEQ predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDNEQ(v int) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldConvertedFromLeadID, v))
}

// ConvertedFromLeadIDIn applies the In predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDIn(vs ...int) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldConvertedFromLeadID, vs...))
}

// ConvertedFromLeadIDNotIn applies the NotIn predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDNotIn(vs ...int) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldConvertedFromLeadID, vs...))
}

// ConvertedFromLeadIDGT applies the GT predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDGT(v int) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldConvertedFromLeadID, v))
}

// ConvertedFromLeadIDGTE applies the GTE predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDGTE(v int) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldConvertedFromLeadID, v))
}

// ConvertedFromLeadIDLT applies the LT predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDLT(v int) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldConvertedFromLeadID, v))
}

// ConvertedFromLeadIDLTE applies the LTE predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDLTE(v int) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldConvertedFromLeadID, v))
}

// ConvertedFromLeadIDIsNil applies the IsNil predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDIsNil() predicate.Creator {
	return predicate.Creator(sql.FieldIsNull(FieldConvertedFromLeadID))
}

// ConvertedFromLeadIDNotNil applies the NotNil predicate on the "converted_from_lead_id" field.
func ConvertedFromLeadIDNotNil() predicate.Creator {
	return predicate.Creator(sql.FieldNotNull(FieldConvertedFromLeadID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Creator {
	return predicate.Creator(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMilestones applies the HasEdge predicate on the "milestones" edge.
func HasMilestones() predicate.Creator {
	return predicate.Creator(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MilestonesTable, MilestonesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMilestonesWith applies the HasEdge predicate on the "milestones" edge with a given conditions (other predicates).
func HasMilestonesWith(preds ...predicate.Milestone) predicate.Creator {
	return predicate.Creator(func(s *sql.Selector) {
		step := newMilestonesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKits applies the HasEdge predicate on the "kits" edge.
func HasKits() predicate.Creator {
	return predicate.Creator(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KitsTable, KitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKitsWith applies the HasEdge predicate on the "kits" edge with a given conditions (other predicates).
func HasKitsWith(preds ...predicate.OnboardingKit) predicate.Creator {
	return predicate.Creator(func(s *sql.Selector) {
		step := newKitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivities applies the HasEdge predicate on the "activities" edge.
func HasActivities() predicate.Creator {
	return predicate.Creator(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivitiesWith applies the HasEdge predicate on the "activities" edge with a given conditions (other predicates).
func HasActivitiesWith(preds ...predicate.Activity) predicate.Creator {
	return predicate.Creator(func(s *sql.Selector) {
		step := newActivitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Creator) predicate.Creator {
	return predicate.Creator(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Creator) predicate.Creator {
	return predicate.Creator(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Creator) predicate.Creator {
	return predicate.Creator(sql.NotPredicates(p))
}
