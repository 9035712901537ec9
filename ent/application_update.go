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
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/predicate"
	"github.com/creatorbridge/api/ent/user"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ApplicationUpdate) SetUserID(v int) *ApplicationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableUserID(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCreatorName sets the "creator_name" field.
func (_u *ApplicationUpdate) SetCreatorName(v string) *ApplicationUpdate {
	_u.mutation.SetCreatorName(v)
	return _u
}

// SetNillableCreatorName sets the "creator_name" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCreatorName(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetCreatorName(*v)
	}
	return _u
}

// SetYoutubeHandle sets the "youtube_handle" field.
func (_u *ApplicationUpdate) SetYoutubeHandle(v string) *ApplicationUpdate {
	_u.mutation.SetYoutubeHandle(v)
	return _u
}

// SetNillableYoutubeHandle sets the "youtube_handle" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableYoutubeHandle(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetYoutubeHandle(*v)
	}
	return _u
}

// ClearYoutubeHandle clears the value of the "youtube_handle" field.
func (_u *ApplicationUpdate) ClearYoutubeHandle() *ApplicationUpdate {
	_u.mutation.ClearYoutubeHandle()
	return _u
}

// SetTiktokHandle sets the "tiktok_handle" field.
func (_u *ApplicationUpdate) SetTiktokHandle(v string) *ApplicationUpdate {
	_u.mutation.SetTiktokHandle(v)
	return _u
}

// SetNillableTiktokHandle sets the "tiktok_handle" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTiktokHandle(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetTiktokHandle(*v)
	}
	return _u
}

// ClearTiktokHandle clears the value of the "tiktok_handle" field.
func (_u *ApplicationUpdate) ClearTiktokHandle() *ApplicationUpdate {
	_u.mutation.ClearTiktokHandle()
	return _u
}

// SetInstagramHandle sets the "instagram_handle" field.
func (_u *ApplicationUpdate) SetInstagramHandle(v string) *ApplicationUpdate {
	_u.mutation.SetInstagramHandle(v)
	return _u
}

// SetNillableInstagramHandle sets the "instagram_handle" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableInstagramHandle(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetInstagramHandle(*v)
	}
	return _u
}

// ClearInstagramHandle clears the value of the "instagram_handle" field.
func (_u *ApplicationUpdate) ClearInstagramHandle() *ApplicationUpdate {
	_u.mutation.ClearInstagramHandle()
	return _u
}

// SetYoutubeFollowers sets the "youtube_followers" field.
func (_u *ApplicationUpdate) SetYoutubeFollowers(v int) *ApplicationUpdate {
	_u.mutation.ResetYoutubeFollowers()
	_u.mutation.SetYoutubeFollowers(v)
	return _u
}

// SetNillableYoutubeFollowers sets the "youtube_followers" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableYoutubeFollowers(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetYoutubeFollowers(*v)
	}
	return _u
}

// AddYoutubeFollowers adds value to the "youtube_followers" field.
func (_u *ApplicationUpdate) AddYoutubeFollowers(v int) *ApplicationUpdate {
	_u.mutation.AddYoutubeFollowers(v)
	return _u
}

// SetTiktokFollowers sets the "tiktok_followers" field.
func (_u *ApplicationUpdate) SetTiktokFollowers(v int) *ApplicationUpdate {
	_u.mutation.ResetTiktokFollowers()
	_u.mutation.SetTiktokFollowers(v)
	return _u
}

// SetNillableTiktokFollowers sets the "tiktok_followers" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTiktokFollowers(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetTiktokFollowers(*v)
	}
	return _u
}

// AddTiktokFollowers adds value to the "tiktok_followers" field.
func (_u *ApplicationUpdate) AddTiktokFollowers(v int) *ApplicationUpdate {
	_u.mutation.AddTiktokFollowers(v)
	return _u
}

// SetInstagramFollowers sets the "instagram_followers" field.
func (_u *ApplicationUpdate) SetInstagramFollowers(v int) *ApplicationUpdate {
	_u.mutation.ResetInstagramFollowers()
	_u.mutation.SetInstagramFollowers(v)
	return _u
}

// SetNillableInstagramFollowers sets the "instagram_followers" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableInstagramFollowers(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetInstagramFollowers(*v)
	}
	return _u
}

// AddInstagramFollowers adds value to the "instagram_followers" field.
func (_u *ApplicationUpdate) AddInstagramFollowers(v int) *ApplicationUpdate {
	_u.mutation.AddInstagramFollowers(v)
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ApplicationUpdate) SetWebsite(v string) *ApplicationUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableWebsite(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ApplicationUpdate) ClearWebsite() *ApplicationUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetProjectIdea sets the "project_idea" field.
func (_u *ApplicationUpdate) SetProjectIdea(v string) *ApplicationUpdate {
	_u.mutation.SetProjectIdea(v)
	return _u
}

// SetNillableProjectIdea sets the "project_idea" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableProjectIdea(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetProjectIdea(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *ApplicationUpdate) SetTargetAudience(v string) *ApplicationUpdate {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTargetAudience(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// SetWhyJoin sets the "why_join" field.
func (_u *ApplicationUpdate) SetWhyJoin(v string) *ApplicationUpdate {
	_u.mutation.SetWhyJoin(v)
	return _u
}

// SetNillableWhyJoin sets the "why_join" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableWhyJoin(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetWhyJoin(*v)
	}
	return _u
}

// SetPitchDeckURL sets the "pitch_deck_url" field.
func (_u *ApplicationUpdate) SetPitchDeckURL(v string) *ApplicationUpdate {
	_u.mutation.SetPitchDeckURL(v)
	return _u
}

// SetNillablePitchDeckURL sets the "pitch_deck_url" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillablePitchDeckURL(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetPitchDeckURL(*v)
	}
	return _u
}

// ClearPitchDeckURL clears the value of the "pitch_deck_url" field.
func (_u *ApplicationUpdate) ClearPitchDeckURL() *ApplicationUpdate {
	_u.mutation.ClearPitchDeckURL()
	return _u
}

// SetMediaKitURL sets the "media_kit_url" field.
func (_u *ApplicationUpdate) SetMediaKitURL(v string) *ApplicationUpdate {
	_u.mutation.SetMediaKitURL(v)
	return _u
}

// SetNillableMediaKitURL sets the "media_kit_url" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableMediaKitURL(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetMediaKitURL(*v)
	}
	return _u
}

// ClearMediaKitURL clears the value of the "media_kit_url" field.
func (_u *ApplicationUpdate) ClearMediaKitURL() *ApplicationUpdate {
	_u.mutation.ClearMediaKitURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v application.Status) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *application.Status) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *ApplicationUpdate) SetAdminNotes(v string) *ApplicationUpdate {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableAdminNotes(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *ApplicationUpdate) ClearAdminNotes() *ApplicationUpdate {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ApplicationUpdate) SetTags(v []string) *ApplicationUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ApplicationUpdate) AppendTags(v []string) *ApplicationUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ApplicationUpdate) ClearTags() *ApplicationUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ApplicationUpdate) SetSubmittedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSubmittedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ApplicationUpdate) ClearSubmittedAt() *ApplicationUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (_u *ApplicationUpdate) SetApplicantID(id int) *ApplicationUpdate {
	_u.mutation.SetApplicantID(id)
	return _u
}

// SetApplicant sets the "applicant" edge to the User entity.
func (_u *ApplicationUpdate) SetApplicant(v *User) *ApplicationUpdate {
	return _u.SetApplicantID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (_u *ApplicationUpdate) ClearApplicant() *ApplicationUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := application.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Application.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatorName(); ok {
		if err := application.CreatorNameValidator(v); err != nil {
			return &ValidationError{Name: "creator_name", err: fmt.Errorf(`ent: validator failed for field "Application.creator_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YoutubeFollowers(); ok {
		if err := application.YoutubeFollowersValidator(v); err != nil {
			return &ValidationError{Name: "youtube_followers", err: fmt.Errorf(`ent: validator failed for field "Application.youtube_followers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TiktokFollowers(); ok {
		if err := application.TiktokFollowersValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_followers", err: fmt.Errorf(`ent: validator failed for field "Application.tiktok_followers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstagramFollowers(); ok {
		if err := application.InstagramFollowersValidator(v); err != nil {
			return &ValidationError{Name: "instagram_followers", err: fmt.Errorf(`ent: validator failed for field "Application.instagram_followers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectIdea(); ok {
		if err := application.ProjectIdeaValidator(v); err != nil {
			return &ValidationError{Name: "project_idea", err: fmt.Errorf(`ent: validator failed for field "Application.project_idea": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetAudience(); ok {
		if err := application.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Application.target_audience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WhyJoin(); ok {
		if err := application.WhyJoinValidator(v); err != nil {
			return &ValidationError{Name: "why_join", err: fmt.Errorf(`ent: validator failed for field "Application.why_join": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.applicant"`)
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatorName(); ok {
		_spec.SetField(application.FieldCreatorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.YoutubeHandle(); ok {
		_spec.SetField(application.FieldYoutubeHandle, field.TypeString, value)
	}
	if _u.mutation.YoutubeHandleCleared() {
		_spec.ClearField(application.FieldYoutubeHandle, field.TypeString)
	}
	if value, ok := _u.mutation.TiktokHandle(); ok {
		_spec.SetField(application.FieldTiktokHandle, field.TypeString, value)
	}
	if _u.mutation.TiktokHandleCleared() {
		_spec.ClearField(application.FieldTiktokHandle, field.TypeString)
	}
	if value, ok := _u.mutation.InstagramHandle(); ok {
		_spec.SetField(application.FieldInstagramHandle, field.TypeString, value)
	}
	if _u.mutation.InstagramHandleCleared() {
		_spec.ClearField(application.FieldInstagramHandle, field.TypeString)
	}
	if value, ok := _u.mutation.YoutubeFollowers(); ok {
		_spec.SetField(application.FieldYoutubeFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYoutubeFollowers(); ok {
		_spec.AddField(application.FieldYoutubeFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TiktokFollowers(); ok {
		_spec.SetField(application.FieldTiktokFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTiktokFollowers(); ok {
		_spec.AddField(application.FieldTiktokFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstagramFollowers(); ok {
		_spec.SetField(application.FieldInstagramFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInstagramFollowers(); ok {
		_spec.AddField(application.FieldInstagramFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(application.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(application.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectIdea(); ok {
		_spec.SetField(application.FieldProjectIdea, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(application.FieldTargetAudience, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhyJoin(); ok {
		_spec.SetField(application.FieldWhyJoin, field.TypeString, value)
	}
	if value, ok := _u.mutation.PitchDeckURL(); ok {
		_spec.SetField(application.FieldPitchDeckURL, field.TypeString, value)
	}
	if _u.mutation.PitchDeckURLCleared() {
		_spec.ClearField(application.FieldPitchDeckURL, field.TypeString)
	}
	if value, ok := _u.mutation.MediaKitURL(); ok {
		_spec.SetField(application.FieldMediaKitURL, field.TypeString, value)
	}
	if _u.mutation.MediaKitURLCleared() {
		_spec.ClearField(application.FieldMediaKitURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(application.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(application.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(application.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(application.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(application.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(application.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.ApplicantTable,
			Columns: []string{application.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.ApplicantTable,
			Columns: []string{application.ApplicantColumn},
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
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetUserID sets the "user_id" field.
func (_u *ApplicationUpdateOne) SetUserID(v int) *ApplicationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableUserID(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCreatorName sets the "creator_name" field.
func (_u *ApplicationUpdateOne) SetCreatorName(v string) *ApplicationUpdateOne {
	_u.mutation.SetCreatorName(v)
	return _u
}

// SetNillableCreatorName sets the "creator_name" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCreatorName(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCreatorName(*v)
	}
	return _u
}

// SetYoutubeHandle sets the "youtube_handle" field.
func (_u *ApplicationUpdateOne) SetYoutubeHandle(v string) *ApplicationUpdateOne {
	_u.mutation.SetYoutubeHandle(v)
	return _u
}

// SetNillableYoutubeHandle sets the "youtube_handle" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableYoutubeHandle(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetYoutubeHandle(*v)
	}
	return _u
}

// ClearYoutubeHandle clears the value of the "youtube_handle" field.
func (_u *ApplicationUpdateOne) ClearYoutubeHandle() *ApplicationUpdateOne {
	_u.mutation.ClearYoutubeHandle()
	return _u
}

// SetTiktokHandle sets the "tiktok_handle" field.
func (_u *ApplicationUpdateOne) SetTiktokHandle(v string) *ApplicationUpdateOne {
	_u.mutation.SetTiktokHandle(v)
	return _u
}

// SetNillableTiktokHandle sets the "tiktok_handle" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTiktokHandle(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTiktokHandle(*v)
	}
	return _u
}

// ClearTiktokHandle clears the value of the "tiktok_handle" field.
func (_u *ApplicationUpdateOne) ClearTiktokHandle() *ApplicationUpdateOne {
	_u.mutation.ClearTiktokHandle()
	return _u
}

// SetInstagramHandle sets the "instagram_handle" field.
func (_u *ApplicationUpdateOne) SetInstagramHandle(v string) *ApplicationUpdateOne {
	_u.mutation.SetInstagramHandle(v)
	return _u
}

// SetNillableInstagramHandle sets the "instagram_handle" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableInstagramHandle(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetInstagramHandle(*v)
	}
	return _u
}

// ClearInstagramHandle clears the value of the "instagram_handle" field.
func (_u *ApplicationUpdateOne) ClearInstagramHandle() *ApplicationUpdateOne {
	_u.mutation.ClearInstagramHandle()
	return _u
}

// SetYoutubeFollowers sets the "youtube_followers" field.
func (_u *ApplicationUpdateOne) SetYoutubeFollowers(v int) *ApplicationUpdateOne {
	_u.mutation.ResetYoutubeFollowers()
	_u.mutation.SetYoutubeFollowers(v)
	return _u
}

// SetNillableYoutubeFollowers sets the "youtube_followers" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableYoutubeFollowers(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetYoutubeFollowers(*v)
	}
	return _u
}

// AddYoutubeFollowers adds value to the "youtube_followers" field.
func (_u *ApplicationUpdateOne) AddYoutubeFollowers(v int) *ApplicationUpdateOne {
	_u.mutation.AddYoutubeFollowers(v)
	return _u
}

// SetTiktokFollowers sets the "tiktok_followers" field.
func (_u *ApplicationUpdateOne) SetTiktokFollowers(v int) *ApplicationUpdateOne {
	_u.mutation.ResetTiktokFollowers()
	_u.mutation.SetTiktokFollowers(v)
	return _u
}

// SetNillableTiktokFollowers sets the "tiktok_followers" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTiktokFollowers(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTiktokFollowers(*v)
	}
	return _u
}

// AddTiktokFollowers adds value to the "tiktok_followers" field.
func (_u *ApplicationUpdateOne) AddTiktokFollowers(v int) *ApplicationUpdateOne {
	_u.mutation.AddTiktokFollowers(v)
	return _u
}

// SetInstagramFollowers sets the "instagram_followers" field.
func (_u *ApplicationUpdateOne) SetInstagramFollowers(v int) *ApplicationUpdateOne {
	_u.mutation.ResetInstagramFollowers()
	_u.mutation.SetInstagramFollowers(v)
	return _u
}

// SetNillableInstagramFollowers sets the "instagram_followers" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableInstagramFollowers(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetInstagramFollowers(*v)
	}
	return _u
}

// AddInstagramFollowers adds value to the "instagram_followers" field.
func (_u *ApplicationUpdateOne) AddInstagramFollowers(v int) *ApplicationUpdateOne {
	_u.mutation.AddInstagramFollowers(v)
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ApplicationUpdateOne) SetWebsite(v string) *ApplicationUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableWebsite(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ApplicationUpdateOne) ClearWebsite() *ApplicationUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetProjectIdea sets the "project_idea" field.
func (_u *ApplicationUpdateOne) SetProjectIdea(v string) *ApplicationUpdateOne {
	_u.mutation.SetProjectIdea(v)
	return _u
}

// SetNillableProjectIdea sets the "project_idea" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableProjectIdea(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetProjectIdea(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *ApplicationUpdateOne) SetTargetAudience(v string) *ApplicationUpdateOne {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTargetAudience(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// SetWhyJoin sets the "why_join" field.
func (_u *ApplicationUpdateOne) SetWhyJoin(v string) *ApplicationUpdateOne {
	_u.mutation.SetWhyJoin(v)
	return _u
}

// SetNillableWhyJoin sets the "why_join" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableWhyJoin(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetWhyJoin(*v)
	}
	return _u
}

// SetPitchDeckURL sets the "pitch_deck_url" field.
func (_u *ApplicationUpdateOne) SetPitchDeckURL(v string) *ApplicationUpdateOne {
	_u.mutation.SetPitchDeckURL(v)
	return _u
}

// SetNillablePitchDeckURL sets the "pitch_deck_url" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillablePitchDeckURL(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetPitchDeckURL(*v)
	}
	return _u
}

// ClearPitchDeckURL clears the value of the "pitch_deck_url" field.
func (_u *ApplicationUpdateOne) ClearPitchDeckURL() *ApplicationUpdateOne {
	_u.mutation.ClearPitchDeckURL()
	return _u
}

// SetMediaKitURL sets the "media_kit_url" field.
func (_u *ApplicationUpdateOne) SetMediaKitURL(v string) *ApplicationUpdateOne {
	_u.mutation.SetMediaKitURL(v)
	return _u
}

// SetNillableMediaKitURL sets the "media_kit_url" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableMediaKitURL(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetMediaKitURL(*v)
	}
	return _u
}

// ClearMediaKitURL clears the value of the "media_kit_url" field.
func (_u *ApplicationUpdateOne) ClearMediaKitURL() *ApplicationUpdateOne {
	_u.mutation.ClearMediaKitURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v application.Status) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *application.Status) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *ApplicationUpdateOne) SetAdminNotes(v string) *ApplicationUpdateOne {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableAdminNotes(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *ApplicationUpdateOne) ClearAdminNotes() *ApplicationUpdateOne {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ApplicationUpdateOne) SetTags(v []string) *ApplicationUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ApplicationUpdateOne) AppendTags(v []string) *ApplicationUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ApplicationUpdateOne) ClearTags() *ApplicationUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ApplicationUpdateOne) SetSubmittedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSubmittedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ApplicationUpdateOne) ClearSubmittedAt() *ApplicationUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (_u *ApplicationUpdateOne) SetApplicantID(id int) *ApplicationUpdateOne {
	_u.mutation.SetApplicantID(id)
	return _u
}

// SetApplicant sets the "applicant" edge to the User entity.
func (_u *ApplicationUpdateOne) SetApplicant(v *User) *ApplicationUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (_u *ApplicationUpdateOne) ClearApplicant() *ApplicationUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := application.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Application.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatorName(); ok {
		if err := application.CreatorNameValidator(v); err != nil {
			return &ValidationError{Name: "creator_name", err: fmt.Errorf(`ent: validator failed for field "Application.creator_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YoutubeFollowers(); ok {
		if err := application.YoutubeFollowersValidator(v); err != nil {
			return &ValidationError{Name: "youtube_followers", err: fmt.Errorf(`ent: validator failed for field "Application.youtube_followers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TiktokFollowers(); ok {
		if err := application.TiktokFollowersValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_followers", err: fmt.Errorf(`ent: validator failed for field "Application.tiktok_followers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstagramFollowers(); ok {
		if err := application.InstagramFollowersValidator(v); err != nil {
			return &ValidationError{Name: "instagram_followers", err: fmt.Errorf(`ent: validator failed for field "Application.instagram_followers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectIdea(); ok {
		if err := application.ProjectIdeaValidator(v); err != nil {
			return &ValidationError{Name: "project_idea", err: fmt.Errorf(`ent: validator failed for field "Application.project_idea": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetAudience(); ok {
		if err := application.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Application.target_audience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WhyJoin(); ok {
		if err := application.WhyJoinValidator(v); err != nil {
			return &ValidationError{Name: "why_join", err: fmt.Errorf(`ent: validator failed for field "Application.why_join": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.applicant"`)
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
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
	if value, ok := _u.mutation.CreatorName(); ok {
		_spec.SetField(application.FieldCreatorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.YoutubeHandle(); ok {
		_spec.SetField(application.FieldYoutubeHandle, field.TypeString, value)
	}
	if _u.mutation.YoutubeHandleCleared() {
		_spec.ClearField(application.FieldYoutubeHandle, field.TypeString)
	}
	if value, ok := _u.mutation.TiktokHandle(); ok {
		_spec.SetField(application.FieldTiktokHandle, field.TypeString, value)
	}
	if _u.mutation.TiktokHandleCleared() {
		_spec.ClearField(application.FieldTiktokHandle, field.TypeString)
	}
	if value, ok := _u.mutation.InstagramHandle(); ok {
		_spec.SetField(application.FieldInstagramHandle, field.TypeString, value)
	}
	if _u.mutation.InstagramHandleCleared() {
		_spec.ClearField(application.FieldInstagramHandle, field.TypeString)
	}
	if value, ok := _u.mutation.YoutubeFollowers(); ok {
		_spec.SetField(application.FieldYoutubeFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYoutubeFollowers(); ok {
		_spec.AddField(application.FieldYoutubeFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TiktokFollowers(); ok {
		_spec.SetField(application.FieldTiktokFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTiktokFollowers(); ok {
		_spec.AddField(application.FieldTiktokFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstagramFollowers(); ok {
		_spec.SetField(application.FieldInstagramFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInstagramFollowers(); ok {
		_spec.AddField(application.FieldInstagramFollowers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(application.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(application.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectIdea(); ok {
		_spec.SetField(application.FieldProjectIdea, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(application.FieldTargetAudience, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhyJoin(); ok {
		_spec.SetField(application.FieldWhyJoin, field.TypeString, value)
	}
	if value, ok := _u.mutation.PitchDeckURL(); ok {
		_spec.SetField(application.FieldPitchDeckURL, field.TypeString, value)
	}
	if _u.mutation.PitchDeckURLCleared() {
		_spec.ClearField(application.FieldPitchDeckURL, field.TypeString)
	}
	if value, ok := _u.mutation.MediaKitURL(); ok {
		_spec.SetField(application.FieldMediaKitURL, field.TypeString, value)
	}
	if _u.mutation.MediaKitURLCleared() {
		_spec.ClearField(application.FieldMediaKitURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(application.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(application.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(application.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(application.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(application.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(application.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.ApplicantTable,
			Columns: []string{application.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.ApplicantTable,
			Columns: []string{application.ApplicantColumn},
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
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
