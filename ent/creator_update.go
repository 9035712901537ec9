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
	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/predicate"
	"github.com/creatorbridge/api/ent/schema"
)

// CreatorUpdate is the builder for updating Creator entities.
type CreatorUpdate struct {
	config
	hooks    []Hook
	mutation *CreatorMutation
}

// Where appends a list predicates to the CreatorUpdate builder.
func (_u *CreatorUpdate) Where(ps ...predicate.Creator) *CreatorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CreatorUpdate) SetName(v string) *CreatorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableName(v *string) *CreatorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CreatorUpdate) SetEmail(v string) *CreatorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableEmail(v *string) *CreatorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CreatorUpdate) ClearEmail() *CreatorUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *CreatorUpdate) SetCompany(v string) *CreatorUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableCompany(v *string) *CreatorUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *CreatorUpdate) ClearCompany() *CreatorUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetJourneyStage sets the "journey_stage" field.
func (_u *CreatorUpdate) SetJourneyStage(v creator.JourneyStage) *CreatorUpdate {
	_u.mutation.SetJourneyStage(v)
	return _u
}

// SetNillableJourneyStage sets the "journey_stage" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableJourneyStage(v *creator.JourneyStage) *CreatorUpdate {
	if v != nil {
		_u.SetJourneyStage(*v)
	}
	return _u
}

// SetJourneyProgress sets the "journey_progress" field.
func (_u *CreatorUpdate) SetJourneyProgress(v int) *CreatorUpdate {
	_u.mutation.ResetJourneyProgress()
	_u.mutation.SetJourneyProgress(v)
	return _u
}

// SetNillableJourneyProgress sets the "journey_progress" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableJourneyProgress(v *int) *CreatorUpdate {
	if v != nil {
		_u.SetJourneyProgress(*v)
	}
	return _u
}

// AddJourneyProgress adds value to the "journey_progress" field.
func (_u *CreatorUpdate) AddJourneyProgress(v int) *CreatorUpdate {
	_u.mutation.AddJourneyProgress(v)
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *CreatorUpdate) SetHealthScore(v int) *CreatorUpdate {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableHealthScore(v *int) *CreatorUpdate {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *CreatorUpdate) AddHealthScore(v int) *CreatorUpdate {
	_u.mutation.AddHealthScore(v)
	return _u
}

// SetHealthFactors sets the "health_factors" field.
func (_u *CreatorUpdate) SetHealthFactors(v map[string]schema.HealthFactor) *CreatorUpdate {
	_u.mutation.SetHealthFactors(v)
	return _u
}

// ClearHealthFactors clears the value of the "health_factors" field.
func (_u *CreatorUpdate) ClearHealthFactors() *CreatorUpdate {
	_u.mutation.ClearHealthFactors()
	return _u
}

// SetHealthUpdatedAt sets the "health_updated_at" field.
func (_u *CreatorUpdate) SetHealthUpdatedAt(v time.Time) *CreatorUpdate {
	_u.mutation.SetHealthUpdatedAt(v)
	return _u
}

// SetNillableHealthUpdatedAt sets the "health_updated_at" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableHealthUpdatedAt(v *time.Time) *CreatorUpdate {
	if v != nil {
		_u.SetHealthUpdatedAt(*v)
	}
	return _u
}

// ClearHealthUpdatedAt clears the value of the "health_updated_at" field.
func (_u *CreatorUpdate) ClearHealthUpdatedAt() *CreatorUpdate {
	_u.mutation.ClearHealthUpdatedAt()
	return _u
}

// SetConvertedFromLeadID sets the "converted_from_lead_id" field.
func (_u *CreatorUpdate) SetConvertedFromLeadID(v int) *CreatorUpdate {
	_u.mutation.ResetConvertedFromLeadID()
	_u.mutation.SetConvertedFromLeadID(v)
	return _u
}

// SetNillableConvertedFromLeadID sets the "converted_from_lead_id" field if the given value is not nil.
func (_u *CreatorUpdate) SetNillableConvertedFromLeadID(v *int) *CreatorUpdate {
	if v != nil {
		_u.SetConvertedFromLeadID(*v)
	}
	return _u
}

// AddConvertedFromLeadID adds value to the "converted_from_lead_id" field.
func (_u *CreatorUpdate) AddConvertedFromLeadID(v int) *CreatorUpdate {
	_u.mutation.AddConvertedFromLeadID(v)
	return _u
}

// ClearConvertedFromLeadID clears the value of the "converted_from_lead_id" field.
func (_u *CreatorUpdate) ClearConvertedFromLeadID() *CreatorUpdate {
	_u.mutation.ClearConvertedFromLeadID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreatorUpdate) SetUpdatedAt(v time.Time) *CreatorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMilestoneIDs adds the "milestones" edge to the Milestone entity by IDs.
func (_u *CreatorUpdate) AddMilestoneIDs(ids ...int) *CreatorUpdate {
	_u.mutation.AddMilestoneIDs(ids...)
	return _u
}

// AddMilestones adds the "milestones" edges to the Milestone entity.
func (_u *CreatorUpdate) AddMilestones(v ...*Milestone) *CreatorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMilestoneIDs(ids...)
}

// AddKitIDs adds the "kits" edge to the OnboardingKit entity by IDs.
func (_u *CreatorUpdate) AddKitIDs(ids ...int) *CreatorUpdate {
	_u.mutation.AddKitIDs(ids...)
	return _u
}

// AddKits adds the "kits" edges to the OnboardingKit entity.
func (_u *CreatorUpdate) AddKits(v ...*OnboardingKit) *CreatorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKitIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *CreatorUpdate) AddActivityIDs(ids ...int) *CreatorUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *CreatorUpdate) AddActivities(v ...*Activity) *CreatorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the CreatorMutation object of the builder.
func (_u *CreatorUpdate) Mutation() *CreatorMutation {
	return _u.mutation
}

// ClearMilestones clears all "milestones" edges to the Milestone entity.
func (_u *CreatorUpdate) ClearMilestones() *CreatorUpdate {
	_u.mutation.ClearMilestones()
	return _u
}

// RemoveMilestoneIDs removes the "milestones" edge to Milestone entities by IDs.
func (_u *CreatorUpdate) RemoveMilestoneIDs(ids ...int) *CreatorUpdate {
	_u.mutation.RemoveMilestoneIDs(ids...)
	return _u
}

// RemoveMilestones removes "milestones" edges to Milestone entities.
func (_u *CreatorUpdate) RemoveMilestones(v ...*Milestone) *CreatorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMilestoneIDs(ids...)
}

// ClearKits clears all "kits" edges to the OnboardingKit entity.
func (_u *CreatorUpdate) ClearKits() *CreatorUpdate {
	_u.mutation.ClearKits()
	return _u
}

// RemoveKitIDs removes the "kits" edge to OnboardingKit entities by IDs.
func (_u *CreatorUpdate) RemoveKitIDs(ids ...int) *CreatorUpdate {
	_u.mutation.RemoveKitIDs(ids...)
	return _u
}

// RemoveKits removes "kits" edges to OnboardingKit entities.
func (_u *CreatorUpdate) RemoveKits(v ...*OnboardingKit) *CreatorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKitIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *CreatorUpdate) ClearActivities() *CreatorUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *CreatorUpdate) RemoveActivityIDs(ids ...int) *CreatorUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *CreatorUpdate) RemoveActivities(v ...*Activity) *CreatorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreatorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreatorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreatorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreatorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreatorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creator.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreatorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := creator.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Creator.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JourneyStage(); ok {
		if err := creator.JourneyStageValidator(v); err != nil {
			return &ValidationError{Name: "journey_stage", err: fmt.Errorf(`ent: validator failed for field "Creator.journey_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JourneyProgress(); ok {
		if err := creator.JourneyProgressValidator(v); err != nil {
			return &ValidationError{Name: "journey_progress", err: fmt.Errorf(`ent: validator failed for field "Creator.journey_progress": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HealthScore(); ok {
		if err := creator.HealthScoreValidator(v); err != nil {
			return &ValidationError{Name: "health_score", err: fmt.Errorf(`ent: validator failed for field "Creator.health_score": %w`, err)}
		}
	}
	return nil
}

func (_u *CreatorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creator.Table, creator.Columns, sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(creator.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(creator.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(creator.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(creator.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(creator.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.JourneyStage(); ok {
		_spec.SetField(creator.FieldJourneyStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JourneyProgress(); ok {
		_spec.SetField(creator.FieldJourneyProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJourneyProgress(); ok {
		_spec.AddField(creator.FieldJourneyProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(creator.FieldHealthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(creator.FieldHealthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HealthFactors(); ok {
		_spec.SetField(creator.FieldHealthFactors, field.TypeJSON, value)
	}
	if _u.mutation.HealthFactorsCleared() {
		_spec.ClearField(creator.FieldHealthFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.HealthUpdatedAt(); ok {
		_spec.SetField(creator.FieldHealthUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HealthUpdatedAtCleared() {
		_spec.ClearField(creator.FieldHealthUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedFromLeadID(); ok {
		_spec.SetField(creator.FieldConvertedFromLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedFromLeadID(); ok {
		_spec.AddField(creator.FieldConvertedFromLeadID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedFromLeadIDCleared() {
		_spec.ClearField(creator.FieldConvertedFromLeadID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creator.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MilestonesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMilestonesIDs(); len(nodes) > 0 && !_u.mutation.MilestonesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MilestonesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKitsIDs(); len(nodes) > 0 && !_u.mutation.KitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreatorUpdateOne is the builder for updating a single Creator entity.
type CreatorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreatorMutation
}

// SetName sets the "name" field.
func (_u *CreatorUpdateOne) SetName(v string) *CreatorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableName(v *string) *CreatorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CreatorUpdateOne) SetEmail(v string) *CreatorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableEmail(v *string) *CreatorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CreatorUpdateOne) ClearEmail() *CreatorUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *CreatorUpdateOne) SetCompany(v string) *CreatorUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableCompany(v *string) *CreatorUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *CreatorUpdateOne) ClearCompany() *CreatorUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetJourneyStage sets the "journey_stage" field.
func (_u *CreatorUpdateOne) SetJourneyStage(v creator.JourneyStage) *CreatorUpdateOne {
	_u.mutation.SetJourneyStage(v)
	return _u
}

// SetNillableJourneyStage sets the "journey_stage" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableJourneyStage(v *creator.JourneyStage) *CreatorUpdateOne {
	if v != nil {
		_u.SetJourneyStage(*v)
	}
	return _u
}

// SetJourneyProgress sets the "journey_progress" field.
func (_u *CreatorUpdateOne) SetJourneyProgress(v int) *CreatorUpdateOne {
	_u.mutation.ResetJourneyProgress()
	_u.mutation.SetJourneyProgress(v)
	return _u
}

// SetNillableJourneyProgress sets the "journey_progress" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableJourneyProgress(v *int) *CreatorUpdateOne {
	if v != nil {
		_u.SetJourneyProgress(*v)
	}
	return _u
}

// AddJourneyProgress adds value to the "journey_progress" field.
func (_u *CreatorUpdateOne) AddJourneyProgress(v int) *CreatorUpdateOne {
	_u.mutation.AddJourneyProgress(v)
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *CreatorUpdateOne) SetHealthScore(v int) *CreatorUpdateOne {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableHealthScore(v *int) *CreatorUpdateOne {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *CreatorUpdateOne) AddHealthScore(v int) *CreatorUpdateOne {
	_u.mutation.AddHealthScore(v)
	return _u
}

// SetHealthFactors sets the "health_factors" field.
func (_u *CreatorUpdateOne) SetHealthFactors(v map[string]schema.HealthFactor) *CreatorUpdateOne {
	_u.mutation.SetHealthFactors(v)
	return _u
}

// ClearHealthFactors clears the value of the "health_factors" field.
func (_u *CreatorUpdateOne) ClearHealthFactors() *CreatorUpdateOne {
	_u.mutation.ClearHealthFactors()
	return _u
}

// SetHealthUpdatedAt sets the "health_updated_at" field.
func (_u *CreatorUpdateOne) SetHealthUpdatedAt(v time.Time) *CreatorUpdateOne {
	_u.mutation.SetHealthUpdatedAt(v)
	return _u
}

// SetNillableHealthUpdatedAt sets the "health_updated_at" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableHealthUpdatedAt(v *time.Time) *CreatorUpdateOne {
	if v != nil {
		_u.SetHealthUpdatedAt(*v)
	}
	return _u
}

// ClearHealthUpdatedAt clears the value of the "health_updated_at" field.
func (_u *CreatorUpdateOne) ClearHealthUpdatedAt() *CreatorUpdateOne {
	_u.mutation.ClearHealthUpdatedAt()
	return _u
}

// SetConvertedFromLeadID sets the "converted_from_lead_id" field.
func (_u *CreatorUpdateOne) SetConvertedFromLeadID(v int) *CreatorUpdateOne {
	_u.mutation.ResetConvertedFromLeadID()
	_u.mutation.SetConvertedFromLeadID(v)
	return _u
}

// SetNillableConvertedFromLeadID sets the "converted_from_lead_id" field if the given value is not nil.
func (_u *CreatorUpdateOne) SetNillableConvertedFromLeadID(v *int) *CreatorUpdateOne {
	if v != nil {
		_u.SetConvertedFromLeadID(*v)
	}
	return _u
}

// AddConvertedFromLeadID adds value to the "converted_from_lead_id" field.
func (_u *CreatorUpdateOne) AddConvertedFromLeadID(v int) *CreatorUpdateOne {
	_u.mutation.AddConvertedFromLeadID(v)
	return _u
}

// ClearConvertedFromLeadID clears the value of the "converted_from_lead_id" field.
func (_u *CreatorUpdateOne) ClearConvertedFromLeadID() *CreatorUpdateOne {
	_u.mutation.ClearConvertedFromLeadID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreatorUpdateOne) SetUpdatedAt(v time.Time) *CreatorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMilestoneIDs adds the "milestones" edge to the Milestone entity by IDs.
func (_u *CreatorUpdateOne) AddMilestoneIDs(ids ...int) *CreatorUpdateOne {
	_u.mutation.AddMilestoneIDs(ids...)
	return _u
}

// AddMilestones adds the "milestones" edges to the Milestone entity.
func (_u *CreatorUpdateOne) AddMilestones(v ...*Milestone) *CreatorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMilestoneIDs(ids...)
}

// AddKitIDs adds the "kits" edge to the OnboardingKit entity by IDs.
func (_u *CreatorUpdateOne) AddKitIDs(ids ...int) *CreatorUpdateOne {
	_u.mutation.AddKitIDs(ids...)
	return _u
}

// AddKits adds the "kits" edges to the OnboardingKit entity.
func (_u *CreatorUpdateOne) AddKits(v ...*OnboardingKit) *CreatorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKitIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *CreatorUpdateOne) AddActivityIDs(ids ...int) *CreatorUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *CreatorUpdateOne) AddActivities(v ...*Activity) *CreatorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the CreatorMutation object of the builder.
func (_u *CreatorUpdateOne) Mutation() *CreatorMutation {
	return _u.mutation
}

// ClearMilestones clears all "milestones" edges to the Milestone entity.
func (_u *CreatorUpdateOne) ClearMilestones() *CreatorUpdateOne {
	_u.mutation.ClearMilestones()
	return _u
}

// RemoveMilestoneIDs removes the "milestones" edge to Milestone entities by IDs.
func (_u *CreatorUpdateOne) RemoveMilestoneIDs(ids ...int) *CreatorUpdateOne {
	_u.mutation.RemoveMilestoneIDs(ids...)
	return _u
}

// RemoveMilestones removes "milestones" edges to Milestone entities.
func (_u *CreatorUpdateOne) RemoveMilestones(v ...*Milestone) *CreatorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMilestoneIDs(ids...)
}

// ClearKits clears all "kits" edges to the OnboardingKit entity.
func (_u *CreatorUpdateOne) ClearKits() *CreatorUpdateOne {
	_u.mutation.ClearKits()
	return _u
}

// RemoveKitIDs removes the "kits" edge to OnboardingKit entities by IDs.
func (_u *CreatorUpdateOne) RemoveKitIDs(ids ...int) *CreatorUpdateOne {
	_u.mutation.RemoveKitIDs(ids...)
	return _u
}

// RemoveKits removes "kits" edges to OnboardingKit entities.
func (_u *CreatorUpdateOne) RemoveKits(v ...*OnboardingKit) *CreatorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKitIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *CreatorUpdateOne) ClearActivities() *CreatorUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *CreatorUpdateOne) RemoveActivityIDs(ids ...int) *CreatorUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *CreatorUpdateOne) RemoveActivities(v ...*Activity) *CreatorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Where appends a list predicates to the CreatorUpdate builder.
func (_u *CreatorUpdateOne) Where(ps ...predicate.Creator) *CreatorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreatorUpdateOne) Select(field string, fields ...string) *CreatorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Creator entity.
func (_u *CreatorUpdateOne) Save(ctx context.Context) (*Creator, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreatorUpdateOne) SaveX(ctx context.Context) *Creator {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreatorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreatorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreatorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creator.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreatorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := creator.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Creator.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JourneyStage(); ok {
		if err := creator.JourneyStageValidator(v); err != nil {
			return &ValidationError{Name: "journey_stage", err: fmt.Errorf(`ent: validator failed for field "Creator.journey_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JourneyProgress(); ok {
		if err := creator.JourneyProgressValidator(v); err != nil {
			return &ValidationError{Name: "journey_progress", err: fmt.Errorf(`ent: validator failed for field "Creator.journey_progress": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HealthScore(); ok {
		if err := creator.HealthScoreValidator(v); err != nil {
			return &ValidationError{Name: "health_score", err: fmt.Errorf(`ent: validator failed for field "Creator.health_score": %w`, err)}
		}
	}
	return nil
}

func (_u *CreatorUpdateOne) sqlSave(ctx context.Context) (_node *Creator, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creator.Table, creator.Columns, sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Creator.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creator.FieldID)
		for _, f := range fields {
			if !creator.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creator.FieldID {
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
		_spec.SetField(creator.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(creator.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(creator.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(creator.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(creator.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.JourneyStage(); ok {
		_spec.SetField(creator.FieldJourneyStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JourneyProgress(); ok {
		_spec.SetField(creator.FieldJourneyProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJourneyProgress(); ok {
		_spec.AddField(creator.FieldJourneyProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(creator.FieldHealthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(creator.FieldHealthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HealthFactors(); ok {
		_spec.SetField(creator.FieldHealthFactors, field.TypeJSON, value)
	}
	if _u.mutation.HealthFactorsCleared() {
		_spec.ClearField(creator.FieldHealthFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.HealthUpdatedAt(); ok {
		_spec.SetField(creator.FieldHealthUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HealthUpdatedAtCleared() {
		_spec.ClearField(creator.FieldHealthUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedFromLeadID(); ok {
		_spec.SetField(creator.FieldConvertedFromLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedFromLeadID(); ok {
		_spec.AddField(creator.FieldConvertedFromLeadID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedFromLeadIDCleared() {
		_spec.ClearField(creator.FieldConvertedFromLeadID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creator.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MilestonesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMilestonesIDs(); len(nodes) > 0 && !_u.mutation.MilestonesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MilestonesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKitsIDs(); len(nodes) > 0 && !_u.mutation.KitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Creator{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
