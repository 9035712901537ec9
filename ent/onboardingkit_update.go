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
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/predicate"
)

// OnboardingKitUpdate is the builder for updating OnboardingKit entities.
type OnboardingKitUpdate struct {
	config
	hooks    []Hook
	mutation *OnboardingKitMutation
}

// Where appends a list predicates to the OnboardingKitUpdate builder.
func (_u *OnboardingKitUpdate) Where(ps ...predicate.OnboardingKit) *OnboardingKitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *OnboardingKitUpdate) SetClientID(v int) *OnboardingKitUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *OnboardingKitUpdate) SetNillableClientID(v *int) *OnboardingKitUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *OnboardingKitUpdate) SetMonth(v int) *OnboardingKitUpdate {
	_u.mutation.ResetMonth()
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *OnboardingKitUpdate) SetNillableMonth(v *int) *OnboardingKitUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// AddMonth adds value to the "month" field.
func (_u *OnboardingKitUpdate) AddMonth(v int) *OnboardingKitUpdate {
	_u.mutation.AddMonth(v)
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *OnboardingKitUpdate) SetGenerated(v bool) *OnboardingKitUpdate {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *OnboardingKitUpdate) SetNillableGenerated(v *bool) *OnboardingKitUpdate {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *OnboardingKitUpdate) SetGeneratedAt(v time.Time) *OnboardingKitUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *OnboardingKitUpdate) SetNillableGeneratedAt(v *time.Time) *OnboardingKitUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *OnboardingKitUpdate) ClearGeneratedAt() *OnboardingKitUpdate {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetClient sets the "client" edge to the Creator entity.
func (_u *OnboardingKitUpdate) SetClient(v *Creator) *OnboardingKitUpdate {
	return _u.SetClientID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *OnboardingKitUpdate) AddDocumentIDs(ids ...int) *OnboardingKitUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *OnboardingKitUpdate) AddDocuments(v ...*Document) *OnboardingKitUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the OnboardingKitMutation object of the builder.
func (_u *OnboardingKitUpdate) Mutation() *OnboardingKitMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Creator entity.
func (_u *OnboardingKitUpdate) ClearClient() *OnboardingKitUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *OnboardingKitUpdate) ClearDocuments() *OnboardingKitUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *OnboardingKitUpdate) RemoveDocumentIDs(ids ...int) *OnboardingKitUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *OnboardingKitUpdate) RemoveDocuments(v ...*Document) *OnboardingKitUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnboardingKitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingKitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnboardingKitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingKitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingKitUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := onboardingkit.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "OnboardingKit.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Month(); ok {
		if err := onboardingkit.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "OnboardingKit.month": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OnboardingKit.client"`)
	}
	return nil
}

func (_u *OnboardingKitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingkit.Table, onboardingkit.Columns, sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(onboardingkit.FieldMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonth(); ok {
		_spec.AddField(onboardingkit.FieldMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(onboardingkit.FieldGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(onboardingkit.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(onboardingkit.FieldGeneratedAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   onboardingkit.ClientTable,
			Columns: []string{onboardingkit.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   onboardingkit.ClientTable,
			Columns: []string{onboardingkit.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingkit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnboardingKitUpdateOne is the builder for updating a single OnboardingKit entity.
type OnboardingKitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnboardingKitMutation
}

// SetClientID sets the "client_id" field.
func (_u *OnboardingKitUpdateOne) SetClientID(v int) *OnboardingKitUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *OnboardingKitUpdateOne) SetNillableClientID(v *int) *OnboardingKitUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *OnboardingKitUpdateOne) SetMonth(v int) *OnboardingKitUpdateOne {
	_u.mutation.ResetMonth()
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *OnboardingKitUpdateOne) SetNillableMonth(v *int) *OnboardingKitUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// AddMonth adds value to the "month" field.
func (_u *OnboardingKitUpdateOne) AddMonth(v int) *OnboardingKitUpdateOne {
	_u.mutation.AddMonth(v)
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *OnboardingKitUpdateOne) SetGenerated(v bool) *OnboardingKitUpdateOne {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *OnboardingKitUpdateOne) SetNillableGenerated(v *bool) *OnboardingKitUpdateOne {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *OnboardingKitUpdateOne) SetGeneratedAt(v time.Time) *OnboardingKitUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *OnboardingKitUpdateOne) SetNillableGeneratedAt(v *time.Time) *OnboardingKitUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *OnboardingKitUpdateOne) ClearGeneratedAt() *OnboardingKitUpdateOne {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetClient sets the "client" edge to the Creator entity.
func (_u *OnboardingKitUpdateOne) SetClient(v *Creator) *OnboardingKitUpdateOne {
	return _u.SetClientID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *OnboardingKitUpdateOne) AddDocumentIDs(ids ...int) *OnboardingKitUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *OnboardingKitUpdateOne) AddDocuments(v ...*Document) *OnboardingKitUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the OnboardingKitMutation object of the builder.
func (_u *OnboardingKitUpdateOne) Mutation() *OnboardingKitMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Creator entity.
func (_u *OnboardingKitUpdateOne) ClearClient() *OnboardingKitUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *OnboardingKitUpdateOne) ClearDocuments() *OnboardingKitUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *OnboardingKitUpdateOne) RemoveDocumentIDs(ids ...int) *OnboardingKitUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *OnboardingKitUpdateOne) RemoveDocuments(v ...*Document) *OnboardingKitUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the OnboardingKitUpdate builder.
func (_u *OnboardingKitUpdateOne) Where(ps ...predicate.OnboardingKit) *OnboardingKitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnboardingKitUpdateOne) Select(field string, fields ...string) *OnboardingKitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnboardingKit entity.
func (_u *OnboardingKitUpdateOne) Save(ctx context.Context) (*OnboardingKit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingKitUpdateOne) SaveX(ctx context.Context) *OnboardingKit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnboardingKitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingKitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingKitUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := onboardingkit.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "OnboardingKit.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Month(); ok {
		if err := onboardingkit.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "OnboardingKit.month": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OnboardingKit.client"`)
	}
	return nil
}

func (_u *OnboardingKitUpdateOne) sqlSave(ctx context.Context) (_node *OnboardingKit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingkit.Table, onboardingkit.Columns, sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OnboardingKit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardingkit.FieldID)
		for _, f := range fields {
			if !onboardingkit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != onboardingkit.FieldID {
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
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(onboardingkit.FieldMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonth(); ok {
		_spec.AddField(onboardingkit.FieldMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(onboardingkit.FieldGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(onboardingkit.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(onboardingkit.FieldGeneratedAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   onboardingkit.ClientTable,
			Columns: []string{onboardingkit.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   onboardingkit.ClientTable,
			Columns: []string{onboardingkit.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OnboardingKit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingkit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
