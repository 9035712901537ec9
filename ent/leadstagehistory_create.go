// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/user"
)

// LeadStageHistoryCreate is the builder for creating a LeadStageHistory entity.
type LeadStageHistoryCreate struct {
	config
	mutation *LeadStageHistoryMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadStageHistoryCreate) SetLeadID(v int) *LeadStageHistoryCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LeadStageHistoryCreate) SetUserID(v int) *LeadStageHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOldStage sets the "old_stage" field.
func (_c *LeadStageHistoryCreate) SetOldStage(v leadstagehistory.OldStage) *LeadStageHistoryCreate {
	_c.mutation.SetOldStage(v)
	return _c
}

// SetNillableOldStage sets the "old_stage" field if the given value is not nil.
func (_c *LeadStageHistoryCreate) SetNillableOldStage(v *leadstagehistory.OldStage) *LeadStageHistoryCreate {
	if v != nil {
		_c.SetOldStage(*v)
	}
	return _c
}

// SetNewStage sets the "new_stage" field.
func (_c *LeadStageHistoryCreate) SetNewStage(v leadstagehistory.NewStage) *LeadStageHistoryCreate {
	_c.mutation.SetNewStage(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *LeadStageHistoryCreate) SetReason(v string) *LeadStageHistoryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *LeadStageHistoryCreate) SetNillableReason(v *string) *LeadStageHistoryCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadStageHistoryCreate) SetCreatedAt(v time.Time) *LeadStageHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadStageHistoryCreate) SetNillableCreatedAt(v *time.Time) *LeadStageHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadStageHistoryCreate) SetLead(v *Lead) *LeadStageHistoryCreate {
	return _c.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *LeadStageHistoryCreate) SetUser(v *User) *LeadStageHistoryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the LeadStageHistoryMutation object of the builder.
func (_c *LeadStageHistoryCreate) Mutation() *LeadStageHistoryMutation {
	return _c.mutation
}

// Save creates the LeadStageHistory in the database.
func (_c *LeadStageHistoryCreate) Save(ctx context.Context) (*LeadStageHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadStageHistoryCreate) SaveX(ctx context.Context) *LeadStageHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadStageHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadStageHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadStageHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadstagehistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadStageHistoryCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadStageHistory.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := leadstagehistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LeadStageHistory.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := leadstagehistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OldStage(); ok {
		if err := leadstagehistory.OldStageValidator(v); err != nil {
			return &ValidationError{Name: "old_stage", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.old_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewStage(); !ok {
		return &ValidationError{Name: "new_stage", err: errors.New(`ent: missing required field "LeadStageHistory.new_stage"`)}
	}
	if v, ok := _c.mutation.NewStage(); ok {
		if err := leadstagehistory.NewStageValidator(v); err != nil {
			return &ValidationError{Name: "new_stage", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.new_stage": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := leadstagehistory.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LeadStageHistory.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadStageHistory.created_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadStageHistory.lead"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "LeadStageHistory.user"`)}
	}
	return nil
}

func (_c *LeadStageHistoryCreate) sqlSave(ctx context.Context) (*LeadStageHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadStageHistoryCreate) createSpec() (*LeadStageHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadStageHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadstagehistory.Table, sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OldStage(); ok {
		_spec.SetField(leadstagehistory.FieldOldStage, field.TypeEnum, value)
		_node.OldStage = &value
	}
	if value, ok := _c.mutation.NewStage(); ok {
		_spec.SetField(leadstagehistory.FieldNewStage, field.TypeEnum, value)
		_node.NewStage = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(leadstagehistory.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadstagehistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadStageHistoryCreateBulk is the builder for creating many LeadStageHistory entities in bulk.
type LeadStageHistoryCreateBulk struct {
	config
	err      error
	builders []*LeadStageHistoryCreate
}

// Save creates the LeadStageHistory entities in the database.
func (_c *LeadStageHistoryCreateBulk) Save(ctx context.Context) ([]*LeadStageHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadStageHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadStageHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadStageHistoryCreateBulk) SaveX(ctx context.Context) []*LeadStageHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadStageHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadStageHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
