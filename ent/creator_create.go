// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/schema"
)

// CreatorCreate is the builder for creating a Creator entity.
type CreatorCreate struct {
	config
	mutation *CreatorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CreatorCreate) SetName(v string) *CreatorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CreatorCreate) SetEmail(v string) *CreatorCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableEmail(v *string) *CreatorCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *CreatorCreate) SetCompany(v string) *CreatorCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableCompany(v *string) *CreatorCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetJourneyStage sets the "journey_stage" field.
func (_c *CreatorCreate) SetJourneyStage(v creator.JourneyStage) *CreatorCreate {
	_c.mutation.SetJourneyStage(v)
	return _c
}

// SetNillableJourneyStage sets the "journey_stage" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableJourneyStage(v *creator.JourneyStage) *CreatorCreate {
	if v != nil {
		_c.SetJourneyStage(*v)
	}
	return _c
}

// SetJourneyProgress sets the "journey_progress" field.
func (_c *CreatorCreate) SetJourneyProgress(v int) *CreatorCreate {
	_c.mutation.SetJourneyProgress(v)
	return _c
}

// SetNillableJourneyProgress sets the "journey_progress" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableJourneyProgress(v *int) *CreatorCreate {
	if v != nil {
		_c.SetJourneyProgress(*v)
	}
	return _c
}

// SetHealthScore sets the "health_score" field.
func (_c *CreatorCreate) SetHealthScore(v int) *CreatorCreate {
	_c.mutation.SetHealthScore(v)
	return _c
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableHealthScore(v *int) *CreatorCreate {
	if v != nil {
		_c.SetHealthScore(*v)
	}
	return _c
}

// SetHealthFactors sets the "health_factors" field.
func (_c *CreatorCreate) SetHealthFactors(v map[string]schema.HealthFactor) *CreatorCreate {
	_c.mutation.SetHealthFactors(v)
	return _c
}

// SetHealthUpdatedAt sets the "health_updated_at" field.
func (_c *CreatorCreate) SetHealthUpdatedAt(v time.Time) *CreatorCreate {
	_c.mutation.SetHealthUpdatedAt(v)
	return _c
}

// SetNillableHealthUpdatedAt sets the "health_updated_at" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableHealthUpdatedAt(v *time.Time) *CreatorCreate {
	if v != nil {
		_c.SetHealthUpdatedAt(*v)
	}
	return _c
}

// SetConvertedFromLeadID sets the "converted_from_lead_id" field.
func (_c *CreatorCreate) SetConvertedFromLeadID(v int) *CreatorCreate {
	_c.mutation.SetConvertedFromLeadID(v)
	return _c
}

// SetNillableConvertedFromLeadID sets the "converted_from_lead_id" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableConvertedFromLeadID(v *int) *CreatorCreate {
	if v != nil {
		_c.SetConvertedFromLeadID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreatorCreate) SetCreatedAt(v time.Time) *CreatorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableCreatedAt(v *time.Time) *CreatorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreatorCreate) SetUpdatedAt(v time.Time) *CreatorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreatorCreate) SetNillableUpdatedAt(v *time.Time) *CreatorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddMilestoneIDs adds the "milestones" edge to the Milestone entity by IDs.
func (_c *CreatorCreate) AddMilestoneIDs(ids ...int) *CreatorCreate {
	_c.mutation.AddMilestoneIDs(ids...)
	return _c
}

// AddMilestones adds the "milestones" edges to the Milestone entity.
func (_c *CreatorCreate) AddMilestones(v ...*Milestone) *CreatorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMilestoneIDs(ids...)
}

// AddKitIDs adds the "kits" edge to the OnboardingKit entity by IDs.
func (_c *CreatorCreate) AddKitIDs(ids ...int) *CreatorCreate {
	_c.mutation.AddKitIDs(ids...)
	return _c
}

// AddKits adds the "kits" edges to the OnboardingKit entity.
func (_c *CreatorCreate) AddKits(v ...*OnboardingKit) *CreatorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKitIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_c *CreatorCreate) AddActivityIDs(ids ...int) *CreatorCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_c *CreatorCreate) AddActivities(v ...*Activity) *CreatorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// Mutation returns the CreatorMutation object of the builder.
func (_c *CreatorCreate) Mutation() *CreatorMutation {
	return _c.mutation
}

// Save creates the Creator in the database.
func (_c *CreatorCreate) Save(ctx context.Context) (*Creator, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreatorCreate) SaveX(ctx context.Context) *Creator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreatorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreatorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreatorCreate) defaults() {
	if _, ok := _c.mutation.JourneyStage(); !ok {
		v := creator.DefaultJourneyStage
		_c.mutation.SetJourneyStage(v)
	}
	if _, ok := _c.mutation.JourneyProgress(); !ok {
		v := creator.DefaultJourneyProgress
		_c.mutation.SetJourneyProgress(v)
	}
	if _, ok := _c.mutation.HealthScore(); !ok {
		v := creator.DefaultHealthScore
		_c.mutation.SetHealthScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creator.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := creator.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreatorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Creator.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := creator.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Creator.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JourneyStage(); !ok {
		return &ValidationError{Name: "journey_stage", err: errors.New(`ent: missing required field "Creator.journey_stage"`)}
	}
	if v, ok := _c.mutation.JourneyStage(); ok {
		if err := creator.JourneyStageValidator(v); err != nil {
			return &ValidationError{Name: "journey_stage", err: fmt.Errorf(`ent: validator failed for field "Creator.journey_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JourneyProgress(); !ok {
		return &ValidationError{Name: "journey_progress", err: errors.New(`ent: missing required field "Creator.journey_progress"`)}
	}
	if v, ok := _c.mutation.JourneyProgress(); ok {
		if err := creator.JourneyProgressValidator(v); err != nil {
			return &ValidationError{Name: "journey_progress", err: fmt.Errorf(`ent: validator failed for field "Creator.journey_progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HealthScore(); !ok {
		return &ValidationError{Name: "health_score", err: errors.New(`ent: missing required field "Creator.health_score"`)}
	}
	if v, ok := _c.mutation.HealthScore(); ok {
		if err := creator.HealthScoreValidator(v); err != nil {
			return &ValidationError{Name: "health_score", err: fmt.Errorf(`ent: validator failed for field "Creator.health_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Creator.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Creator.updated_at"`)}
	}
	return nil
}

func (_c *CreatorCreate) sqlSave(ctx context.Context) (*Creator, error) {
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

func (_c *CreatorCreate) createSpec() (*Creator, *sqlgraph.CreateSpec) {
	var (
		_node = &Creator{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creator.Table, sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(creator.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(creator.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(creator.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.JourneyStage(); ok {
		_spec.SetField(creator.FieldJourneyStage, field.TypeEnum, value)
		_node.JourneyStage = value
	}
	if value, ok := _c.mutation.JourneyProgress(); ok {
		_spec.SetField(creator.FieldJourneyProgress, field.TypeInt, value)
		_node.JourneyProgress = value
	}
	if value, ok := _c.mutation.HealthScore(); ok {
		_spec.SetField(creator.FieldHealthScore, field.TypeInt, value)
		_node.HealthScore = value
	}
	if value, ok := _c.mutation.HealthFactors(); ok {
		_spec.SetField(creator.FieldHealthFactors, field.TypeJSON, value)
		_node.HealthFactors = value
	}
	if value, ok := _c.mutation.HealthUpdatedAt(); ok {
		_spec.SetField(creator.FieldHealthUpdatedAt, field.TypeTime, value)
		_node.HealthUpdatedAt = &value
	}
	if value, ok := _c.mutation.ConvertedFromLeadID(); ok {
		_spec.SetField(creator.FieldConvertedFromLeadID, field.TypeInt, value)
		_node.ConvertedFromLeadID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creator.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(creator.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MilestonesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creator.MilestonesTable,
			Columns: []string{creator.MilestonesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creator.KitsTable,
			Columns: []string{creator.KitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creator.ActivitiesTable,
			Columns: []string{creator.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CreatorCreateBulk is the builder for creating many Creator entities in bulk.
type CreatorCreateBulk struct {
	config
	err      error
	builders []*CreatorCreate
}

// Save creates the Creator entities in the database.
func (_c *CreatorCreateBulk) Save(ctx context.Context) ([]*Creator, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Creator, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreatorMutation)
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
func (_c *CreatorCreateBulk) SaveX(ctx context.Context) []*Creator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreatorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreatorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
