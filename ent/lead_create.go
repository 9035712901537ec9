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
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v string) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *string) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *LeadCreate) SetSummary(v string) *LeadCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSummary(v *string) *LeadCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *LeadCreate) SetAnswers(v map[string]string) *LeadCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *LeadCreate) SetStage(v lead.Stage) *LeadCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStage(v *lead.Stage) *LeadCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (_c *LeadCreate) SetStageChangedAt(v time.Time) *LeadCreate {
	_c.mutation.SetStageChangedAt(v)
	return _c
}

// SetNillableStageChangedAt sets the "stage_changed_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStageChangedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetStageChangedAt(*v)
	}
	return _c
}

// SetFitScore sets the "fit_score" field.
func (_c *LeadCreate) SetFitScore(v int) *LeadCreate {
	_c.mutation.SetFitScore(v)
	return _c
}

// SetNillableFitScore sets the "fit_score" field if the given value is not nil.
func (_c *LeadCreate) SetNillableFitScore(v *int) *LeadCreate {
	if v != nil {
		_c.SetFitScore(*v)
	}
	return _c
}

// SetSentimentScore sets the "sentiment_score" field.
func (_c *LeadCreate) SetSentimentScore(v float64) *LeadCreate {
	_c.mutation.SetSentimentScore(v)
	return _c
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSentimentScore(v *float64) *LeadCreate {
	if v != nil {
		_c.SetSentimentScore(*v)
	}
	return _c
}

// SetAiSummary sets the "ai_summary" field.
func (_c *LeadCreate) SetAiSummary(v string) *LeadCreate {
	_c.mutation.SetAiSummary(v)
	return _c
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAiSummary(v *string) *LeadCreate {
	if v != nil {
		_c.SetAiSummary(*v)
	}
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *LeadCreate) SetStrengths(v []string) *LeadCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetConcerns sets the "concerns" field.
func (_c *LeadCreate) SetConcerns(v []string) *LeadCreate {
	_c.mutation.SetConcerns(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *LeadCreate) SetRecommendations(v string) *LeadCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_c *LeadCreate) SetNillableRecommendations(v *string) *LeadCreate {
	if v != nil {
		_c.SetRecommendations(*v)
	}
	return _c
}

// SetEstimatedRevenuePotential sets the "estimated_revenue_potential" field.
func (_c *LeadCreate) SetEstimatedRevenuePotential(v string) *LeadCreate {
	_c.mutation.SetEstimatedRevenuePotential(v)
	return _c
}

// SetNillableEstimatedRevenuePotential sets the "estimated_revenue_potential" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEstimatedRevenuePotential(v *string) *LeadCreate {
	if v != nil {
		_c.SetEstimatedRevenuePotential(*v)
	}
	return _c
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_c *LeadCreate) SetAnalyzedAt(v time.Time) *LeadCreate {
	_c.mutation.SetAnalyzedAt(v)
	return _c
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAnalyzedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetAnalyzedAt(*v)
	}
	return _c
}

// SetConvertedClientID sets the "converted_client_id" field.
func (_c *LeadCreate) SetConvertedClientID(v int) *LeadCreate {
	_c.mutation.SetConvertedClientID(v)
	return _c
}

// SetNillableConvertedClientID sets the "converted_client_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableConvertedClientID(v *int) *LeadCreate {
	if v != nil {
		_c.SetConvertedClientID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddStageHistoryIDs adds the "stage_history" edge to the LeadStageHistory entity by IDs.
func (_c *LeadCreate) AddStageHistoryIDs(ids ...int) *LeadCreate {
	_c.mutation.AddStageHistoryIDs(ids...)
	return _c
}

// AddStageHistory adds the "stage_history" edges to the LeadStageHistory entity.
func (_c *LeadCreate) AddStageHistory(v ...*LeadStageHistory) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageHistoryIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := lead.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.StageChangedAt(); !ok {
		v := lead.DefaultStageChangedAt()
		_c.mutation.SetStageChangedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lead.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Lead.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageChangedAt(); !ok {
		return &ValidationError{Name: "stage_changed_at", err: errors.New(`ent: missing required field "Lead.stage_changed_at"`)}
	}
	if v, ok := _c.mutation.FitScore(); ok {
		if err := lead.FitScoreValidator(v); err != nil {
			return &ValidationError{Name: "fit_score", err: fmt.Errorf(`ent: validator failed for field "Lead.fit_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(lead.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(lead.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.StageChangedAt(); ok {
		_spec.SetField(lead.FieldStageChangedAt, field.TypeTime, value)
		_node.StageChangedAt = value
	}
	if value, ok := _c.mutation.FitScore(); ok {
		_spec.SetField(lead.FieldFitScore, field.TypeInt, value)
		_node.FitScore = &value
	}
	if value, ok := _c.mutation.SentimentScore(); ok {
		_spec.SetField(lead.FieldSentimentScore, field.TypeFloat64, value)
		_node.SentimentScore = &value
	}
	if value, ok := _c.mutation.AiSummary(); ok {
		_spec.SetField(lead.FieldAiSummary, field.TypeString, value)
		_node.AiSummary = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(lead.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Concerns(); ok {
		_spec.SetField(lead.FieldConcerns, field.TypeJSON, value)
		_node.Concerns = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(lead.FieldRecommendations, field.TypeString, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.EstimatedRevenuePotential(); ok {
		_spec.SetField(lead.FieldEstimatedRevenuePotential, field.TypeString, value)
		_node.EstimatedRevenuePotential = value
	}
	if value, ok := _c.mutation.AnalyzedAt(); ok {
		_spec.SetField(lead.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = &value
	}
	if value, ok := _c.mutation.ConvertedClientID(); ok {
		_spec.SetField(lead.FieldConvertedClientID, field.TypeInt, value)
		_node.ConvertedClientID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StageHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.StageHistoryTable,
			Columns: []string{lead.StageHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
