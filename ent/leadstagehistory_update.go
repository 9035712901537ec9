// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/predicate"
	"github.com/creatorbridge/api/ent/user"
)

// LeadStageHistoryUpdate is the builder for updating LeadStageHistory entities.
type LeadStageHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *LeadStageHistoryMutation
}

// Where appends a list predicates to the LeadStageHistoryUpdate builder.
func (_u *LeadStageHistoryUpdate) Where(ps ...predicate.LeadStageHistory) *LeadStageHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadStageHistoryUpdate) SetLeadID(v int) *LeadStageHistoryUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadStageHistoryUpdate) SetNillableLeadID(v *int) *LeadStageHistoryUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadStageHistoryUpdate) SetUserID(v int) *LeadStageHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadStageHistoryUpdate) SetNillableUserID(v *int) *LeadStageHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOldStage sets the "old_stage" field.
func (_u *LeadStageHistoryUpdate) SetOldStage(v leadstagehistory.OldStage) *LeadStageHistoryUpdate {
	_u.mutation.SetOldStage(v)
	return _u
}

// SetNillableOldStage sets the "old_stage" field if the given value is not nil.
func (_u *LeadStageHistoryUpdate) SetNillableOldStage(v *leadstagehistory.OldStage) *LeadStageHistoryUpdate {
	if v != nil {
		_u.SetOldStage(*v)
	}
	return _u
}

// ClearOldStage clears the value of the "old_stage" field.
func (_u *LeadStageHistoryUpdate) ClearOldStage() *LeadStageHistoryUpdate {
	_u.mutation.ClearOldStage()
	return _u
}

// SetNewStage sets the "new_stage" field.
func (_u *LeadStageHistoryUpdate) SetNewStage(v leadstagehistory.NewStage) *LeadStageHistoryUpdate {
	_u.mutation.SetNewStage(v)
	return _u
}

// SetNillableNewStage sets the "new_stage" field if the given value is not nil.
func (_u *LeadStageHistoryUpdate) SetNillableNewStage(v *leadstagehistory.NewStage) *LeadStageHistoryUpdate {
	if v != nil {
		_u.SetNewStage(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LeadStageHistoryUpdate) SetReason(v string) *LeadStageHistoryUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LeadStageHistoryUpdate) SetNillableReason(v *string) *LeadStageHistoryUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *LeadStageHistoryUpdate) ClearReason() *LeadStageHistoryUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadStageHistoryUpdate) SetLead(v *Lead) *LeadStageHistoryUpdate {
	return _u.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadStageHistoryUpdate) SetUser(v *User) *LeadStageHistoryUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadStageHistoryMutation object of the builder.
func (_u *LeadStageHistoryUpdate) Mutation() *LeadStageHistoryMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadStageHistoryUpdate) ClearLead() *LeadStageHistoryUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadStageHistoryUpdate) ClearUser() *LeadStageHistoryUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadStageHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadStageHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadStageHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadStageHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadStageHistoryUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadstagehistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := leadstagehistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OldStage(); ok {
		if err := leadstagehistory.OldStageValidator(v); err != nil {
			return &ValidationError{Name: "old_stage", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.old_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStage(); ok {
		if err := leadstagehistory.NewStageValidator(v); err != nil {
			return &ValidationError{Name: "new_stage", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.new_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := leadstagehistory.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.reason": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadStageHistory.lead"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadStageHistory.user"`)
	}
	return nil
}

func (_u *LeadStageHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadstagehistory.Table, leadstagehistory.Columns, sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OldStage(); ok {
		_spec.SetField(leadstagehistory.FieldOldStage, field.TypeEnum, value)
	}
	if _u.mutation.OldStageCleared() {
		_spec.ClearField(leadstagehistory.FieldOldStage, field.TypeEnum)
	}
	if value, ok := _u.mutation.NewStage(); ok {
		_spec.SetField(leadstagehistory.FieldNewStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(leadstagehistory.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(leadstagehistory.FieldReason, field.TypeString)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.LeadTable,
			Columns: []string{leadstagehistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.LeadTable,
			Columns: []string{leadstagehistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.UserTable,
			Columns: []string{leadstagehistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.UserTable,
			Columns: []string{leadstagehistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadstagehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadStageHistoryUpdateOne is the builder for updating a single LeadStageHistory entity.
type LeadStageHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadStageHistoryMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadStageHistoryUpdateOne) SetLeadID(v int) *LeadStageHistoryUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadStageHistoryUpdateOne) SetNillableLeadID(v *int) *LeadStageHistoryUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadStageHistoryUpdateOne) SetUserID(v int) *LeadStageHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadStageHistoryUpdateOne) SetNillableUserID(v *int) *LeadStageHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOldStage sets the "old_stage" field.
func (_u *LeadStageHistoryUpdateOne) SetOldStage(v leadstagehistory.OldStage) *LeadStageHistoryUpdateOne {
	_u.mutation.SetOldStage(v)
	return _u
}

// SetNillableOldStage sets the "old_stage" field if the given value is not nil.
func (_u *LeadStageHistoryUpdateOne) SetNillableOldStage(v *leadstagehistory.OldStage) *LeadStageHistoryUpdateOne {
	if v != nil {
		_u.SetOldStage(*v)
	}
	return _u
}

// ClearOldStage clears the value of the "old_stage" field.
func (_u *LeadStageHistoryUpdateOne) ClearOldStage() *LeadStageHistoryUpdateOne {
	_u.mutation.ClearOldStage()
	return _u
}

// SetNewStage sets the "new_stage" field.
func (_u *LeadStageHistoryUpdateOne) SetNewStage(v leadstagehistory.NewStage) *LeadStageHistoryUpdateOne {
	_u.mutation.SetNewStage(v)
	return _u
}

// SetNillableNewStage sets the "new_stage" field if the given value is not nil.
func (_u *LeadStageHistoryUpdateOne) SetNillableNewStage(v *leadstagehistory.NewStage) *LeadStageHistoryUpdateOne {
	if v != nil {
		_u.SetNewStage(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LeadStageHistoryUpdateOne) SetReason(v string) *LeadStageHistoryUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LeadStageHistoryUpdateOne) SetNillableReason(v *string) *LeadStageHistoryUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *LeadStageHistoryUpdateOne) ClearReason() *LeadStageHistoryUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadStageHistoryUpdateOne) SetLead(v *Lead) *LeadStageHistoryUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadStageHistoryUpdateOne) SetUser(v *User) *LeadStageHistoryUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadStageHistoryMutation object of the builder.
func (_u *LeadStageHistoryUpdateOne) Mutation() *LeadStageHistoryMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadStageHistoryUpdateOne) ClearLead() *LeadStageHistoryUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadStageHistoryUpdateOne) ClearUser() *LeadStageHistoryUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the LeadStageHistoryUpdate builder.
func (_u *LeadStageHistoryUpdateOne) Where(ps ...predicate.LeadStageHistory) *LeadStageHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadStageHistoryUpdateOne) Select(field string, fields ...string) *LeadStageHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadStageHistory entity.
func (_u *LeadStageHistoryUpdateOne) Save(ctx context.Context) (*LeadStageHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadStageHistoryUpdateOne) SaveX(ctx context.Context) *LeadStageHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadStageHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadStageHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadStageHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadstagehistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := leadstagehistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OldStage(); ok {
		if err := leadstagehistory.OldStageValidator(v); err != nil {
			return &ValidationError{Name: "old_stage", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.old_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStage(); ok {
		if err := leadstagehistory.NewStageValidator(v); err != nil {
			return &ValidationError{Name: "new_stage", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.new_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := leadstagehistory.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.reason": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadStageHistory.lead"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadStageHistory.user"`)
	}
	return nil
}

func (_u *LeadStageHistoryUpdateOne) sqlSave(ctx context.Context) (_node *LeadStageHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadstagehistory.Table, leadstagehistory.Columns, sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadStageHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadstagehistory.FieldID)
		for _, f := range fields {
			if !leadstagehistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadstagehistory.FieldID {
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
	if value, ok := _u.mutation.OldStage(); ok {
		_spec.SetField(leadstagehistory.FieldOldStage, field.TypeEnum, value)
	}
	if _u.mutation.OldStageCleared() {
		_spec.ClearField(leadstagehistory.FieldOldStage, field.TypeEnum)
	}
	if value, ok := _u.mutation.NewStage(); ok {
		_spec.SetField(leadstagehistory.FieldNewStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(leadstagehistory.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(leadstagehistory.FieldReason, field.TypeString)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.LeadTable,
			Columns: []string{leadstagehistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.LeadTable,
			Columns: []string{leadstagehistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.UserTable,
			Columns: []string{leadstagehistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstagehistory.UserTable,
			Columns: []string{leadstagehistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeadStageHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadstagehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
