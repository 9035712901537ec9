// Code generated by ent, DO NOT EDIT.

package onboardingkit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLTE(FieldID, id))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldClientID, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldMonth, v))
}

// Generated applies equality check predicate on the "generated" field. It's identical to GeneratedEQ.
func Generated(v bool) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldGenerated, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldGeneratedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldCreatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNotIn(FieldClientID, vs...))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v int) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLTE(FieldMonth, v))
}

// GeneratedEQ applies the EQ predicate on the "generated" field.
func GeneratedEQ(v bool) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldGenerated, v))
}

// GeneratedNEQ applies the NEQ predicate on the "generated" field.
func GeneratedNEQ(v bool) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNEQ(FieldGenerated, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLTE(FieldGeneratedAt, v))
}

// GeneratedAtIsNil applies the IsNil predicate on the "generated_at" field.
func GeneratedAtIsNil() predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldIsNull(FieldGeneratedAt))
}

// GeneratedAtNotNil applies the NotNil predicate on the "generated_at" field.
func GeneratedAtNotNil() predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNotNull(FieldGeneratedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.OnboardingKit {
	return predicate.OnboardingKit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.Creator) predicate.OnboardingKit {
	return predicate.OnboardingKit(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.OnboardingKit {
	return predicate.OnboardingKit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.OnboardingKit {
	return predicate.OnboardingKit(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OnboardingKit) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OnboardingKit) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OnboardingKit) predicate.OnboardingKit {
	return predicate.OnboardingKit(sql.NotPredicates(p))
}
