// Code generated by ent, DO NOT EDIT.

package leadstagehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldLeadID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldUserID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldLeadID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// OldStageEQ applies the EQ predicate on the "old_stage" field.
func OldStageEQ(v OldStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldOldStage, v))
}

// OldStageNEQ applies the NEQ predicate on the "old_stage" field.
func OldStageNEQ(v OldStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldOldStage, v))
}

// OldStageIn applies the In predicate on the "old_stage" field.
func OldStageIn(vs ...OldStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldOldStage, vs...))
}

// OldStageNotIn applies the NotIn predicate on the "old_stage" field.
func OldStageNotIn(vs ...OldStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldOldStage, vs...))
}

// OldStageIsNil applies the IsNil predicate on the "old_stage" field.
func OldStageIsNil() predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIsNull(FieldOldStage))
}

// OldStageNotNil applies the NotNil predicate on the "old_stage" field.
func OldStageNotNil() predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotNull(FieldOldStage))
}

// NewStageEQ applies the EQ predicate on the "new_stage" field.
func NewStageEQ(v NewStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldNewStage, v))
}

// NewStageNEQ applies the NEQ predicate on the "new_stage" field.
func NewStageNEQ(v NewStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldNewStage, v))
}

// NewStageIn applies the In predicate on the "new_stage" field.
func NewStageIn(vs ...NewStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldNewStage, vs...))
}

// NewStageNotIn applies the NotIn predicate on the "new_stage" field.
func NewStageNotIn(vs ...NewStage) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldNewStage, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.LeadStageHistory {
	return predicate.LeadStageHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.LeadStageHistory {
	return predicate.LeadStageHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeadStageHistory) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeadStageHistory) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeadStageHistory) predicate.LeadStageHistory {
	return predicate.LeadStageHistory(sql.NotPredicates(p))
}
