// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKitID sets the "kit_id" field.
func (_u *DocumentUpdate) SetKitID(v int) *DocumentUpdate {
	_u.mutation.SetKitID(v)
	return _u
}

// SetNillableKitID sets the "kit_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableKitID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetKitID(*v)
	}
	return _u
}

// SetSlot sets the "slot" field.
func (_u *DocumentUpdate) SetSlot(v int) *DocumentUpdate {
	_u.mutation.ResetSlot()
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSlot(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// AddSlot adds value to the "slot" field.
func (_u *DocumentUpdate) AddSlot(v int) *DocumentUpdate {
	_u.mutation.AddSlot(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentUpdate) SetName(v string) *DocumentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v document.Status) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *document.Status) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentUpdate) SetContent(v string) *DocumentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContent(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *DocumentUpdate) ClearContent() *DocumentUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetRevisionNotes sets the "revision_notes" field.
func (_u *DocumentUpdate) SetRevisionNotes(v string) *DocumentUpdate {
	_u.mutation.SetRevisionNotes(v)
	return _u
}

// SetNillableRevisionNotes sets the "revision_notes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRevisionNotes(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetRevisionNotes(*v)
	}
	return _u
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (_u *DocumentUpdate) ClearRevisionNotes() *DocumentUpdate {
	_u.mutation.ClearRevisionNotes()
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *DocumentUpdate) SetStatusChangedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatusChangedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *DocumentUpdate) SetApprovedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableApprovedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *DocumentUpdate) ClearApprovedAt() *DocumentUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKit sets the "kit" edge to the OnboardingKit entity.
func (_u *DocumentUpdate) SetKit(v *OnboardingKit) *DocumentUpdate {
	return _u.SetKitID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearKit clears the "kit" edge to the OnboardingKit entity.
func (_u *DocumentUpdate) ClearKit() *DocumentUpdate {
	_u.mutation.ClearKit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.KitID(); ok {
		if err := document.KitIDValidator(v); err != nil {
			return &ValidationError{Name: "kit_id", err: fmt.Errorf(`ent: validator failed for field "Document.kit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slot(); ok {
		if err := document.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "Document.slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.KitCleared() && len(_u.mutation.KitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.kit"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(document.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlot(); ok {
		_spec.AddField(document.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(document.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(document.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.RevisionNotes(); ok {
		_spec.SetField(document.FieldRevisionNotes, field.TypeString, value)
	}
	if _u.mutation.RevisionNotesCleared() {
		_spec.ClearField(document.FieldRevisionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(document.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(document.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(document.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.KitCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.KitTable,
			Columns: []string{document.KitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.KitTable,
			Columns: []string{document.KitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetKitID sets the "kit_id" field.
func (_u *DocumentUpdateOne) SetKitID(v int) *DocumentUpdateOne {
	_u.mutation.SetKitID(v)
	return _u
}

// SetNillableKitID sets the "kit_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableKitID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetKitID(*v)
	}
	return _u
}

// SetSlot sets the "slot" field.
func (_u *DocumentUpdateOne) SetSlot(v int) *DocumentUpdateOne {
	_u.mutation.ResetSlot()
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSlot(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// AddSlot adds value to the "slot" field.
func (_u *DocumentUpdateOne) AddSlot(v int) *DocumentUpdateOne {
	_u.mutation.AddSlot(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentUpdateOne) SetName(v string) *DocumentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v document.Status) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *document.Status) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentUpdateOne) SetContent(v string) *DocumentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContent(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *DocumentUpdateOne) ClearContent() *DocumentUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetRevisionNotes sets the "revision_notes" field.
func (_u *DocumentUpdateOne) SetRevisionNotes(v string) *DocumentUpdateOne {
	_u.mutation.SetRevisionNotes(v)
	return _u
}

// SetNillableRevisionNotes sets the "revision_notes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRevisionNotes(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetRevisionNotes(*v)
	}
	return _u
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (_u *DocumentUpdateOne) ClearRevisionNotes() *DocumentUpdateOne {
	_u.mutation.ClearRevisionNotes()
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *DocumentUpdateOne) SetStatusChangedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatusChangedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *DocumentUpdateOne) SetApprovedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableApprovedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *DocumentUpdateOne) ClearApprovedAt() *DocumentUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKit sets the "kit" edge to the OnboardingKit entity.
func (_u *DocumentUpdateOne) SetKit(v *OnboardingKit) *DocumentUpdateOne {
	return _u.SetKitID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearKit clears the "kit" edge to the OnboardingKit entity.
func (_u *DocumentUpdateOne) ClearKit() *DocumentUpdateOne {
	_u.mutation.ClearKit()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.KitID(); ok {
		if err := document.KitIDValidator(v); err != nil {
			return &ValidationError{Name: "kit_id", err: fmt.Errorf(`ent: validator failed for field "Document.kit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slot(); ok {
		if err := document.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "Document.slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.KitCleared() && len(_u.mutation.KitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.kit"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(document.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlot(); ok {
		_spec.AddField(document.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(document.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(document.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.RevisionNotes(); ok {
		_spec.SetField(document.FieldRevisionNotes, field.TypeString, value)
	}
	if _u.mutation.RevisionNotesCleared() {
		_spec.ClearField(document.FieldRevisionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(document.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(document.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(document.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.KitCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.KitTable,
			Columns: []string{document.KitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.KitTable,
			Columns: []string{document.KitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
