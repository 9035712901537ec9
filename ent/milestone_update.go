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
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/predicate"
)

// MilestoneUpdate is the builder for updating Milestone entities.
type MilestoneUpdate struct {
	config
	hooks    []Hook
	mutation *MilestoneMutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdate) Where(ps ...predicate.Milestone) *MilestoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *MilestoneUpdate) SetClientID(v int) *MilestoneUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableClientID(v *int) *MilestoneUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MilestoneUpdate) SetTitle(v string) *MilestoneUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableTitle(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MilestoneUpdate) SetStatus(v milestone.Status) *MilestoneUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableStatus(v *milestone.Status) *MilestoneUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *MilestoneUpdate) SetDueDate(v time.Time) *MilestoneUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableDueDate(v *time.Time) *MilestoneUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *MilestoneUpdate) ClearDueDate() *MilestoneUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MilestoneUpdate) SetCompletedAt(v time.Time) *MilestoneUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableCompletedAt(v *time.Time) *MilestoneUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MilestoneUpdate) ClearCompletedAt() *MilestoneUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MilestoneUpdate) SetUpdatedAt(v time.Time) *MilestoneUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Creator entity.
func (_u *MilestoneUpdate) SetClient(v *Creator) *MilestoneUpdate {
	return _u.SetClientID(v.ID)
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdate) Mutation() *MilestoneMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Creator entity.
func (_u *MilestoneUpdate) ClearClient() *MilestoneUpdate {
	_u.mutation.ClearClient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MilestoneUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MilestoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MilestoneUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := milestone.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := milestone.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Milestone.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := milestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Milestone.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := milestone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Milestone.status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Milestone.client"`)
	}
	return nil
}

func (_u *MilestoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(milestone.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(milestone.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(milestone.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(milestone.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(milestone.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(milestone.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(milestone.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   milestone.ClientTable,
			Columns: []string{milestone.ClientColumn},
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
			Table:   milestone.ClientTable,
			Columns: []string{milestone.ClientColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MilestoneUpdateOne is the builder for updating a single Milestone entity.
type MilestoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MilestoneMutation
}

// SetClientID sets the "client_id" field.
func (_u *MilestoneUpdateOne) SetClientID(v int) *MilestoneUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableClientID(v *int) *MilestoneUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MilestoneUpdateOne) SetTitle(v string) *MilestoneUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableTitle(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MilestoneUpdateOne) SetStatus(v milestone.Status) *MilestoneUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableStatus(v *milestone.Status) *MilestoneUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *MilestoneUpdateOne) SetDueDate(v time.Time) *MilestoneUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableDueDate(v *time.Time) *MilestoneUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *MilestoneUpdateOne) ClearDueDate() *MilestoneUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MilestoneUpdateOne) SetCompletedAt(v time.Time) *MilestoneUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableCompletedAt(v *time.Time) *MilestoneUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MilestoneUpdateOne) ClearCompletedAt() *MilestoneUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MilestoneUpdateOne) SetUpdatedAt(v time.Time) *MilestoneUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Creator entity.
func (_u *MilestoneUpdateOne) SetClient(v *Creator) *MilestoneUpdateOne {
	return _u.SetClientID(v.ID)
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdateOne) Mutation() *MilestoneMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Creator entity.
func (_u *MilestoneUpdateOne) ClearClient() *MilestoneUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdateOne) Where(ps ...predicate.Milestone) *MilestoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MilestoneUpdateOne) Select(field string, fields ...string) *MilestoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Milestone entity.
func (_u *MilestoneUpdateOne) Save(ctx context.Context) (*Milestone, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdateOne) SaveX(ctx context.Context) *Milestone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MilestoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MilestoneUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := milestone.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := milestone.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Milestone.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := milestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Milestone.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := milestone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Milestone.status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Milestone.client"`)
	}
	return nil
}

func (_u *MilestoneUpdateOne) sqlSave(ctx context.Context) (_node *Milestone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Milestone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, milestone.FieldID)
		for _, f := range fields {
			if !milestone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != milestone.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(milestone.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(milestone.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(milestone.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(milestone.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(milestone.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(milestone.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(milestone.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   milestone.ClientTable,
			Columns: []string{milestone.ClientColumn},
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
			Table:   milestone.ClientTable,
			Columns: []string{milestone.ClientColumn},
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
	_node = &Milestone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
