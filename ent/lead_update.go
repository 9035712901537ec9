// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdate) SetCompany(v string) *LeadUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompany(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdate) ClearCompany() *LeadUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v string) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *string) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LeadUpdate) ClearSource() *LeadUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *LeadUpdate) SetSummary(v string) *LeadUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSummary(v *string) *LeadUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *LeadUpdate) ClearSummary() *LeadUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *LeadUpdate) SetAnswers(v map[string]string) *LeadUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *LeadUpdate) ClearAnswers() *LeadUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetStage sets the "stage" field.
func (_u *LeadUpdate) SetStage(v lead.Stage) *LeadUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStage(v *lead.Stage) *LeadUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (_u *LeadUpdate) SetStageChangedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetStageChangedAt(v)
	return _u
}

// SetNillableStageChangedAt sets the "stage_changed_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStageChangedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetStageChangedAt(*v)
	}
	return _u
}

// SetFitScore sets the "fit_score" field.
func (_u *LeadUpdate) SetFitScore(v int) *LeadUpdate {
	_u.mutation.ResetFitScore()
	_u.mutation.SetFitScore(v)
	return _u
}

// SetNillableFitScore sets the "fit_score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFitScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetFitScore(*v)
	}
	return _u
}

// AddFitScore adds value to the "fit_score" field.
func (_u *LeadUpdate) AddFitScore(v int) *LeadUpdate {
	_u.mutation.AddFitScore(v)
	return _u
}

// ClearFitScore clears the value of the "fit_score" field.
func (_u *LeadUpdate) ClearFitScore() *LeadUpdate {
	_u.mutation.ClearFitScore()
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *LeadUpdate) SetSentimentScore(v float64) *LeadUpdate {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSentimentScore(v *float64) *LeadUpdate {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *LeadUpdate) AddSentimentScore(v float64) *LeadUpdate {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// ClearSentimentScore clears the value of the "sentiment_score" field.
func (_u *LeadUpdate) ClearSentimentScore() *LeadUpdate {
	_u.mutation.ClearSentimentScore()
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *LeadUpdate) SetAiSummary(v string) *LeadUpdate {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAiSummary(v *string) *LeadUpdate {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *LeadUpdate) ClearAiSummary() *LeadUpdate {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *LeadUpdate) SetStrengths(v []string) *LeadUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *LeadUpdate) AppendStrengths(v []string) *LeadUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *LeadUpdate) ClearStrengths() *LeadUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetConcerns sets the "concerns" field.
func (_u *LeadUpdate) SetConcerns(v []string) *LeadUpdate {
	_u.mutation.SetConcerns(v)
	return _u
}

// AppendConcerns appends value to the "concerns" field.
func (_u *LeadUpdate) AppendConcerns(v []string) *LeadUpdate {
	_u.mutation.AppendConcerns(v)
	return _u
}

// ClearConcerns clears the value of the "concerns" field.
func (_u *LeadUpdate) ClearConcerns() *LeadUpdate {
	_u.mutation.ClearConcerns()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *LeadUpdate) SetRecommendations(v string) *LeadUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableRecommendations(v *string) *LeadUpdate {
	if v != nil {
		_u.SetRecommendations(*v)
	}
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *LeadUpdate) ClearRecommendations() *LeadUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetEstimatedRevenuePotential sets the "estimated_revenue_potential" field.
func (_u *LeadUpdate) SetEstimatedRevenuePotential(v string) *LeadUpdate {
	_u.mutation.SetEstimatedRevenuePotential(v)
	return _u
}

// SetNillableEstimatedRevenuePotential sets the "estimated_revenue_potential" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEstimatedRevenuePotential(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEstimatedRevenuePotential(*v)
	}
	return _u
}

// ClearEstimatedRevenuePotential clears the value of the "estimated_revenue_potential" field.
func (_u *LeadUpdate) ClearEstimatedRevenuePotential() *LeadUpdate {
	_u.mutation.ClearEstimatedRevenuePotential()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *LeadUpdate) SetAnalyzedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAnalyzedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *LeadUpdate) ClearAnalyzedAt() *LeadUpdate {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// SetConvertedClientID sets the "converted_client_id" field.
func (_u *LeadUpdate) SetConvertedClientID(v int) *LeadUpdate {
	_u.mutation.ResetConvertedClientID()
	_u.mutation.SetConvertedClientID(v)
	return _u
}

// SetNillableConvertedClientID sets the "converted_client_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConvertedClientID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetConvertedClientID(*v)
	}
	return _u
}

// AddConvertedClientID adds value to the "converted_client_id" field.
func (_u *LeadUpdate) AddConvertedClientID(v int) *LeadUpdate {
	_u.mutation.AddConvertedClientID(v)
	return _u
}

// ClearConvertedClientID clears the value of the "converted_client_id" field.
func (_u *LeadUpdate) ClearConvertedClientID() *LeadUpdate {
	_u.mutation.ClearConvertedClientID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStageHistoryIDs adds the "stage_history" edge to the LeadStageHistory entity by IDs.
func (_u *LeadUpdate) AddStageHistoryIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddStageHistoryIDs(ids...)
	return _u
}

// AddStageHistory adds the "stage_history" edges to the LeadStageHistory entity.
func (_u *LeadUpdate) AddStageHistory(v ...*LeadStageHistory) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageHistoryIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearStageHistory clears all "stage_history" edges to the LeadStageHistory entity.
func (_u *LeadUpdate) ClearStageHistory() *LeadUpdate {
	_u.mutation.ClearStageHistory()
	return _u
}

// RemoveStageHistoryIDs removes the "stage_history" edge to LeadStageHistory entities by IDs.
func (_u *LeadUpdate) RemoveStageHistoryIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveStageHistoryIDs(ids...)
	return _u
}

// RemoveStageHistory removes "stage_history" edges to LeadStageHistory entities.
func (_u *LeadUpdate) RemoveStageHistory(v ...*LeadStageHistory) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FitScore(); ok {
		if err := lead.FitScoreValidator(v); err != nil {
			return &ValidationError{Name: "fit_score", err: fmt.Errorf(`ent: validator failed for field "Lead.fit_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(lead.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(lead.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(lead.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(lead.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(lead.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageChangedAt(); ok {
		_spec.SetField(lead.FieldStageChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FitScore(); ok {
		_spec.SetField(lead.FieldFitScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFitScore(); ok {
		_spec.AddField(lead.FieldFitScore, field.TypeInt, value)
	}
	if _u.mutation.FitScoreCleared() {
		_spec.ClearField(lead.FieldFitScore, field.TypeInt)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(lead.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(lead.FieldSentimentScore, field.TypeFloat64, value)
	}
	if _u.mutation.SentimentScoreCleared() {
		_spec.ClearField(lead.FieldSentimentScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(lead.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(lead.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(lead.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(lead.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Concerns(); ok {
		_spec.SetField(lead.FieldConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldConcerns, value)
		})
	}
	if _u.mutation.ConcernsCleared() {
		_spec.ClearField(lead.FieldConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(lead.FieldRecommendations, field.TypeString, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(lead.FieldRecommendations, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedRevenuePotential(); ok {
		_spec.SetField(lead.FieldEstimatedRevenuePotential, field.TypeString, value)
	}
	if _u.mutation.EstimatedRevenuePotentialCleared() {
		_spec.ClearField(lead.FieldEstimatedRevenuePotential, field.TypeString)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(lead.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(lead.FieldAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedClientID(); ok {
		_spec.SetField(lead.FieldConvertedClientID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedClientID(); ok {
		_spec.AddField(lead.FieldConvertedClientID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedClientIDCleared() {
		_spec.ClearField(lead.FieldConvertedClientID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageHistoryIDs(); len(nodes) > 0 && !_u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdateOne) SetCompany(v string) *LeadUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompany(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdateOne) ClearCompany() *LeadUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v string) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LeadUpdateOne) ClearSource() *LeadUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *LeadUpdateOne) SetSummary(v string) *LeadUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSummary(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *LeadUpdateOne) ClearSummary() *LeadUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *LeadUpdateOne) SetAnswers(v map[string]string) *LeadUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *LeadUpdateOne) ClearAnswers() *LeadUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetStage sets the "stage" field.
func (_u *LeadUpdateOne) SetStage(v lead.Stage) *LeadUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStage(v *lead.Stage) *LeadUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (_u *LeadUpdateOne) SetStageChangedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetStageChangedAt(v)
	return _u
}

// SetNillableStageChangedAt sets the "stage_changed_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStageChangedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetStageChangedAt(*v)
	}
	return _u
}

// SetFitScore sets the "fit_score" field.
func (_u *LeadUpdateOne) SetFitScore(v int) *LeadUpdateOne {
	_u.mutation.ResetFitScore()
	_u.mutation.SetFitScore(v)
	return _u
}

// SetNillableFitScore sets the "fit_score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFitScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetFitScore(*v)
	}
	return _u
}

// AddFitScore adds value to the "fit_score" field.
func (_u *LeadUpdateOne) AddFitScore(v int) *LeadUpdateOne {
	_u.mutation.AddFitScore(v)
	return _u
}

// ClearFitScore clears the value of the "fit_score" field.
func (_u *LeadUpdateOne) ClearFitScore() *LeadUpdateOne {
	_u.mutation.ClearFitScore()
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *LeadUpdateOne) SetSentimentScore(v float64) *LeadUpdateOne {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSentimentScore(v *float64) *LeadUpdateOne {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *LeadUpdateOne) AddSentimentScore(v float64) *LeadUpdateOne {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// ClearSentimentScore clears the value of the "sentiment_score" field.
func (_u *LeadUpdateOne) ClearSentimentScore() *LeadUpdateOne {
	_u.mutation.ClearSentimentScore()
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *LeadUpdateOne) SetAiSummary(v string) *LeadUpdateOne {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAiSummary(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *LeadUpdateOne) ClearAiSummary() *LeadUpdateOne {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *LeadUpdateOne) SetStrengths(v []string) *LeadUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *LeadUpdateOne) AppendStrengths(v []string) *LeadUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *LeadUpdateOne) ClearStrengths() *LeadUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetConcerns sets the "concerns" field.
func (_u *LeadUpdateOne) SetConcerns(v []string) *LeadUpdateOne {
	_u.mutation.SetConcerns(v)
	return _u
}

// AppendConcerns appends value to the "concerns" field.
func (_u *LeadUpdateOne) AppendConcerns(v []string) *LeadUpdateOne {
	_u.mutation.AppendConcerns(v)
	return _u
}

// ClearConcerns clears the value of the "concerns" field.
func (_u *LeadUpdateOne) ClearConcerns() *LeadUpdateOne {
	_u.mutation.ClearConcerns()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *LeadUpdateOne) SetRecommendations(v string) *LeadUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableRecommendations(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetRecommendations(*v)
	}
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *LeadUpdateOne) ClearRecommendations() *LeadUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetEstimatedRevenuePotential sets the "estimated_revenue_potential" field.
func (_u *LeadUpdateOne) SetEstimatedRevenuePotential(v string) *LeadUpdateOne {
	_u.mutation.SetEstimatedRevenuePotential(v)
	return _u
}

// SetNillableEstimatedRevenuePotential sets the "estimated_revenue_potential" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEstimatedRevenuePotential(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEstimatedRevenuePotential(*v)
	}
	return _u
}

// ClearEstimatedRevenuePotential clears the value of the "estimated_revenue_potential" field.
func (_u *LeadUpdateOne) ClearEstimatedRevenuePotential() *LeadUpdateOne {
	_u.mutation.ClearEstimatedRevenuePotential()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *LeadUpdateOne) SetAnalyzedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAnalyzedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *LeadUpdateOne) ClearAnalyzedAt() *LeadUpdateOne {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// SetConvertedClientID sets the "converted_client_id" field.
func (_u *LeadUpdateOne) SetConvertedClientID(v int) *LeadUpdateOne {
	_u.mutation.ResetConvertedClientID()
	_u.mutation.SetConvertedClientID(v)
	return _u
}

// SetNillableConvertedClientID sets the "converted_client_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConvertedClientID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetConvertedClientID(*v)
	}
	return _u
}

// AddConvertedClientID adds value to the "converted_client_id" field.
func (_u *LeadUpdateOne) AddConvertedClientID(v int) *LeadUpdateOne {
	_u.mutation.AddConvertedClientID(v)
	return _u
}

// ClearConvertedClientID clears the value of the "converted_client_id" field.
func (_u *LeadUpdateOne) ClearConvertedClientID() *LeadUpdateOne {
	_u.mutation.ClearConvertedClientID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStageHistoryIDs adds the "stage_history" edge to the LeadStageHistory entity by IDs.
func (_u *LeadUpdateOne) AddStageHistoryIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddStageHistoryIDs(ids...)
	return _u
}

// AddStageHistory adds the "stage_history" edges to the LeadStageHistory entity.
func (_u *LeadUpdateOne) AddStageHistory(v ...*LeadStageHistory) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageHistoryIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearStageHistory clears all "stage_history" edges to the LeadStageHistory entity.
func (_u *LeadUpdateOne) ClearStageHistory() *LeadUpdateOne {
	_u.mutation.ClearStageHistory()
	return _u
}

// RemoveStageHistoryIDs removes the "stage_history" edge to LeadStageHistory entities by IDs.
func (_u *LeadUpdateOne) RemoveStageHistoryIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveStageHistoryIDs(ids...)
	return _u
}

// RemoveStageHistory removes "stage_history" edges to LeadStageHistory entities.
func (_u *LeadUpdateOne) RemoveStageHistory(v ...*LeadStageHistory) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageHistoryIDs(ids...)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FitScore(); ok {
		if err := lead.FitScoreValidator(v); err != nil {
			return &ValidationError{Name: "fit_score", err: fmt.Errorf(`ent: validator failed for field "Lead.fit_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(lead.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(lead.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(lead.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(lead.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(lead.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageChangedAt(); ok {
		_spec.SetField(lead.FieldStageChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FitScore(); ok {
		_spec.SetField(lead.FieldFitScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFitScore(); ok {
		_spec.AddField(lead.FieldFitScore, field.TypeInt, value)
	}
	if _u.mutation.FitScoreCleared() {
		_spec.ClearField(lead.FieldFitScore, field.TypeInt)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(lead.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(lead.FieldSentimentScore, field.TypeFloat64, value)
	}
	if _u.mutation.SentimentScoreCleared() {
		_spec.ClearField(lead.FieldSentimentScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(lead.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(lead.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(lead.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(lead.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Concerns(); ok {
		_spec.SetField(lead.FieldConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldConcerns, value)
		})
	}
	if _u.mutation.ConcernsCleared() {
		_spec.ClearField(lead.FieldConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(lead.FieldRecommendations, field.TypeString, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(lead.FieldRecommendations, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedRevenuePotential(); ok {
		_spec.SetField(lead.FieldEstimatedRevenuePotential, field.TypeString, value)
	}
	if _u.mutation.EstimatedRevenuePotentialCleared() {
		_spec.ClearField(lead.FieldEstimatedRevenuePotential, field.TypeString)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(lead.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(lead.FieldAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedClientID(); ok {
		_spec.SetField(lead.FieldConvertedClientID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedClientID(); ok {
		_spec.AddField(lead.FieldConvertedClientID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedClientIDCleared() {
		_spec.ClearField(lead.FieldConvertedClientID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageHistoryIDs(); len(nodes) > 0 && !_u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
