// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// KitID applies equality check predicate on the "kit_id" field. It's identical to KitIDEQ.
func KitID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKitID, v))
}

// Slot applies equality check predicate on the "slot" field. It's identical to SlotEQ.
func Slot(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSlot, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContent, v))
}

// RevisionNotes applies equality check predicate on the "revision_notes" field. It's identical to RevisionNotesEQ.
func RevisionNotes(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRevisionNotes, v))
}

// StatusChangedAt applies equality check predicate on the "status_changed_at" field. It's identical to StatusChangedAtEQ.
func StatusChangedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatusChangedAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldApprovedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// KitIDEQ applies the EQ predicate on the "kit_id" field.
func KitIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKitID, v))
}

// KitIDNEQ applies the NEQ predicate on the "kit_id" field.
func KitIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldKitID, v))
}

// KitIDIn applies the In predicate on the "kit_id" field.
func KitIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldKitID, vs...))
}

// KitIDNotIn applies the NotIn predicate on the "kit_id" field.
func KitIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldKitID, vs...))
}

// SlotEQ applies the EQ predicate on the "slot" field.
func SlotEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSlot, v))
}

// SlotNEQ applies the NEQ predicate on the "slot" field.
func SlotNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSlot, v))
}

// SlotIn applies the In predicate on the "slot" field.
func SlotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSlot, vs...))
}

// SlotNotIn applies the NotIn predicate on the "slot" field.
func SlotNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSlot, vs...))
}

// SlotGT applies the GT predicate on the "slot" field.
func SlotGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSlot, v))
}

// SlotGTE applies the GTE predicate on the "slot" field.
func SlotGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSlot, v))
}

// SlotLT applies the LT predicate on the "slot" field.
func SlotLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSlot, v))
}

// SlotLTE applies the LTE predicate on the "slot" field.
func SlotLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSlot, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContent, v))
}

// RevisionNotesEQ applies the EQ predicate on the "revision_notes" field.
func RevisionNotesEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRevisionNotes, v))
}

// RevisionNotesNEQ applies the NEQ predicate on the "revision_notes" field.
func RevisionNotesNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRevisionNotes, v))
}

// RevisionNotesIn applies the In predicate on the "revision_notes" field.
func RevisionNotesIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRevisionNotes, vs...))
}

// RevisionNotesNotIn applies the NotIn predicate on the "revision_notes" field.
func RevisionNotesNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRevisionNotes, vs...))
}

// RevisionNotesGT applies the GT predicate on the "revision_notes" field.
func RevisionNotesGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRevisionNotes, v))
}

// RevisionNotesGTE applies the GTE predicate on the "revision_notes" field.
func RevisionNotesGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRevisionNotes, v))
}

// RevisionNotesLT applies the LT predicate on the "revision_notes" field.
func RevisionNotesLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRevisionNotes, v))
}

// RevisionNotesLTE applies the LTE predicate on the "revision_notes" field.
func RevisionNotesLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRevisionNotes, v))
}

// RevisionNotesContains applies the Contains predicate on the "revision_notes" field.
func RevisionNotesContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldRevisionNotes, v))
}

// RevisionNotesHasPrefix applies the HasPrefix predicate on the "revision_notes" field.
func RevisionNotesHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldRevisionNotes, v))
}

// RevisionNotesHasSuffix applies the HasSuffix predicate on the "revision_notes" field.
func RevisionNotesHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldRevisionNotes, v))
}

// RevisionNotesIsNil applies the IsNil predicate on the "revision_notes" field.
func RevisionNotesIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldRevisionNotes))
}

// RevisionNotesNotNil applies the NotNil predicate on the "revision_notes" field.
func RevisionNotesNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldRevisionNotes))
}

// RevisionNotesEqualFold applies the EqualFold predicate on the "revision_notes" field.
func RevisionNotesEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldRevisionNotes, v))
}

// RevisionNotesContainsFold applies the ContainsFold predicate on the "revision_notes" field.
func RevisionNotesContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldRevisionNotes, v))
}

// StatusChangedAtEQ applies the EQ predicate on the "status_changed_at" field.
func StatusChangedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtNEQ applies the NEQ predicate on the "status_changed_at" field.
func StatusChangedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtIn applies the In predicate on the "status_changed_at" field.
func StatusChangedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtNotIn applies the NotIn predicate on the "status_changed_at" field.
func StatusChangedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtGT applies the GT predicate on the "status_changed_at" field.
func StatusChangedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatusChangedAt, v))
}

// StatusChangedAtGTE applies the GTE predicate on the "status_changed_at" field.
func StatusChangedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatusChangedAt, v))
}

// StatusChangedAtLT applies the LT predicate on the "status_changed_at" field.
func StatusChangedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatusChangedAt, v))
}

// StatusChangedAtLTE applies the LTE predicate on the "status_changed_at" field.
func StatusChangedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatusChangedAt, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldApprovedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasKit applies the HasEdge predicate on the "kit" edge.
func HasKit() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, KitTable, KitColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKitWith applies the HasEdge predicate on the "kit" edge with a given conditions (other predicates).
func HasKitWith(preds ...predicate.OnboardingKit) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newKitStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
