// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/user"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ApplicationCreate) SetUserID(v int) *ApplicationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCreatorName sets the "creator_name" field.
func (_c *ApplicationCreate) SetCreatorName(v string) *ApplicationCreate {
	_c.mutation.SetCreatorName(v)
	return _c
}

// SetYoutubeHandle sets the "youtube_handle" field.
func (_c *ApplicationCreate) SetYoutubeHandle(v string) *ApplicationCreate {
	_c.mutation.SetYoutubeHandle(v)
	return _c
}

// SetNillableYoutubeHandle sets the "youtube_handle" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableYoutubeHandle(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetYoutubeHandle(*v)
	}
	return _c
}

// SetTiktokHandle sets the "tiktok_handle" field.
func (_c *ApplicationCreate) SetTiktokHandle(v string) *ApplicationCreate {
	_c.mutation.SetTiktokHandle(v)
	return _c
}

// SetNillableTiktokHandle sets the "tiktok_handle" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableTiktokHandle(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetTiktokHandle(*v)
	}
	return _c
}

// SetInstagramHandle sets the "instagram_handle" field.
func (_c *ApplicationCreate) SetInstagramHandle(v string) *ApplicationCreate {
	_c.mutation.SetInstagramHandle(v)
	return _c
}

// SetNillableInstagramHandle sets the "instagram_handle" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableInstagramHandle(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetInstagramHandle(*v)
	}
	return _c
}

// SetYoutubeFollowers sets the "youtube_followers" field.
func (_c *ApplicationCreate) SetYoutubeFollowers(v int) *ApplicationCreate {
	_c.mutation.SetYoutubeFollowers(v)
	return _c
}

// SetNillableYoutubeFollowers sets the "youtube_followers" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableYoutubeFollowers(v *int) *ApplicationCreate {
	if v != nil {
		_c.SetYoutubeFollowers(*v)
	}
	return _c
}

// SetTiktokFollowers sets the "tiktok_followers" field.
func (_c *ApplicationCreate) SetTiktokFollowers(v int) *ApplicationCreate {
	_c.mutation.SetTiktokFollowers(v)
	return _c
}

// SetNillableTiktokFollowers sets the "tiktok_followers" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableTiktokFollowers(v *int) *ApplicationCreate {
	if v != nil {
		_c.SetTiktokFollowers(*v)
	}
	return _c
}

// SetInstagramFollowers sets the "instagram_followers" field.
func (_c *ApplicationCreate) SetInstagramFollowers(v int) *ApplicationCreate {
	_c.mutation.SetInstagramFollowers(v)
	return _c
}

// SetNillableInstagramFollowers sets the "instagram_followers" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableInstagramFollowers(v *int) *ApplicationCreate {
	if v != nil {
		_c.SetInstagramFollowers(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ApplicationCreate) SetWebsite(v string) *ApplicationCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableWebsite(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetProjectIdea sets the "project_idea" field.
func (_c *ApplicationCreate) SetProjectIdea(v string) *ApplicationCreate {
	_c.mutation.SetProjectIdea(v)
	return _c
}

// SetTargetAudience sets the "target_audience" field.
func (_c *ApplicationCreate) SetTargetAudience(v string) *ApplicationCreate {
	_c.mutation.SetTargetAudience(v)
	return _c
}

// SetWhyJoin sets the "why_join" field.
func (_c *ApplicationCreate) SetWhyJoin(v string) *ApplicationCreate {
	_c.mutation.SetWhyJoin(v)
	return _c
}

// SetPitchDeckURL sets the "pitch_deck_url" field.
func (_c *ApplicationCreate) SetPitchDeckURL(v string) *ApplicationCreate {
	_c.mutation.SetPitchDeckURL(v)
	return _c
}

// SetNillablePitchDeckURL sets the "pitch_deck_url" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillablePitchDeckURL(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetPitchDeckURL(*v)
	}
	return _c
}

// SetMediaKitURL sets the "media_kit_url" field.
func (_c *ApplicationCreate) SetMediaKitURL(v string) *ApplicationCreate {
	_c.mutation.SetMediaKitURL(v)
	return _c
}

// SetNillableMediaKitURL sets the "media_kit_url" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableMediaKitURL(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetMediaKitURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v application.Status) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *application.Status) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAdminNotes sets the "admin_notes" field.
func (_c *ApplicationCreate) SetAdminNotes(v string) *ApplicationCreate {
	_c.mutation.SetAdminNotes(v)
	return _c
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableAdminNotes(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetAdminNotes(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ApplicationCreate) SetTags(v []string) *ApplicationCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ApplicationCreate) SetSubmittedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableSubmittedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (_c *ApplicationCreate) SetApplicantID(id int) *ApplicationCreate {
	_c.mutation.SetApplicantID(id)
	return _c
}

// SetApplicant sets the "applicant" edge to the User entity.
func (_c *ApplicationCreate) SetApplicant(v *User) *ApplicationCreate {
	return _c.SetApplicantID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.YoutubeFollowers(); !ok {
		v := application.DefaultYoutubeFollowers
		_c.mutation.SetYoutubeFollowers(v)
	}
	if _, ok := _c.mutation.TiktokFollowers(); !ok {
		v := application.DefaultTiktokFollowers
		_c.mutation.SetTiktokFollowers(v)
	}
	if _, ok := _c.mutation.InstagramFollowers(); !ok {
		v := application.DefaultInstagramFollowers
		_c.mutation.SetInstagramFollowers(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Application.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := application.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Application.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatorName(); !ok {
		return &ValidationError{Name: "creator_name", err: errors.New(`ent: missing required field "Application.creator_name"`)}
	}
	if v, ok := _c.mutation.CreatorName(); ok {
		if err := application.CreatorNameValidator(v); err != nil {
			return &ValidationError{Name: "creator_name", err: fmt.Errorf(`ent: validator failed for field "Application.creator_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YoutubeFollowers(); !ok {
		return &ValidationError{Name: "youtube_followers", err: errors.New(`ent: missing required field "Application.youtube_followers"`)}
	}
	if v, ok := _c.mutation.YoutubeFollowers(); ok {
		if err := application.YoutubeFollowersValidator(v); err != nil {
			return &ValidationError{Name: "youtube_followers", err: fmt.Errorf(`ent: validator failed for field "Application.youtube_followers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TiktokFollowers(); !ok {
		return &ValidationError{Name: "tiktok_followers", err: errors.New(`ent: missing required field "Application.tiktok_followers"`)}
	}
	if v, ok := _c.mutation.TiktokFollowers(); ok {
		if err := application.TiktokFollowersValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_followers", err: fmt.Errorf(`ent: validator failed for field "Application.tiktok_followers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstagramFollowers(); !ok {
		return &ValidationError{Name: "instagram_followers", err: errors.New(`ent: missing required field "Application.instagram_followers"`)}
	}
	if v, ok := _c.mutation.InstagramFollowers(); ok {
		if err := application.InstagramFollowersValidator(v); err != nil {
			return &ValidationError{Name: "instagram_followers", err: fmt.Errorf(`ent: validator failed for field "Application.instagram_followers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectIdea(); !ok {
		return &ValidationError{Name: "project_idea", err: errors.New(`ent: missing required field "Application.project_idea"`)}
	}
	if v, ok := _c.mutation.ProjectIdea(); ok {
		if err := application.ProjectIdeaValidator(v); err != nil {
			return &ValidationError{Name: "project_idea", err: fmt.Errorf(`ent: validator failed for field "Application.project_idea": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetAudience(); !ok {
		return &ValidationError{Name: "target_audience", err: errors.New(`ent: missing required field "Application.target_audience"`)}
	}
	if v, ok := _c.mutation.TargetAudience(); ok {
		if err := application.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Application.target_audience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WhyJoin(); !ok {
		return &ValidationError{Name: "why_join", err: errors.New(`ent: missing required field "Application.why_join"`)}
	}
	if v, ok := _c.mutation.WhyJoin(); ok {
		if err := application.WhyJoinValidator(v); err != nil {
			return &ValidationError{Name: "why_join", err: fmt.Errorf(`ent: validator failed for field "Application.why_join": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if len(_c.mutation.ApplicantIDs()) == 0 {
		return &ValidationError{Name: "applicant", err: errors.New(`ent: missing required edge "Application.applicant"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
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

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatorName(); ok {
		_spec.SetField(application.FieldCreatorName, field.TypeString, value)
		_node.CreatorName = value
	}
	if value, ok := _c.mutation.YoutubeHandle(); ok {
		_spec.SetField(application.FieldYoutubeHandle, field.TypeString, value)
		_node.YoutubeHandle = value
	}
	if value, ok := _c.mutation.TiktokHandle(); ok {
		_spec.SetField(application.FieldTiktokHandle, field.TypeString, value)
		_node.TiktokHandle = value
	}
	if value, ok := _c.mutation.InstagramHandle(); ok {
		_spec.SetField(application.FieldInstagramHandle, field.TypeString, value)
		_node.InstagramHandle = value
	}
	if value, ok := _c.mutation.YoutubeFollowers(); ok {
		_spec.SetField(application.FieldYoutubeFollowers, field.TypeInt, value)
		_node.YoutubeFollowers = value
	}
	if value, ok := _c.mutation.TiktokFollowers(); ok {
		_spec.SetField(application.FieldTiktokFollowers, field.TypeInt, value)
		_node.TiktokFollowers = value
	}
	if value, ok := _c.mutation.InstagramFollowers(); ok {
		_spec.SetField(application.FieldInstagramFollowers, field.TypeInt, value)
		_node.InstagramFollowers = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(application.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.ProjectIdea(); ok {
		_spec.SetField(application.FieldProjectIdea, field.TypeString, value)
		_node.ProjectIdea = value
	}
	if value, ok := _c.mutation.TargetAudience(); ok {
		_spec.SetField(application.FieldTargetAudience, field.TypeString, value)
		_node.TargetAudience = value
	}
	if value, ok := _c.mutation.WhyJoin(); ok {
		_spec.SetField(application.FieldWhyJoin, field.TypeString, value)
		_node.WhyJoin = value
	}
	if value, ok := _c.mutation.PitchDeckURL(); ok {
		_spec.SetField(application.FieldPitchDeckURL, field.TypeString, value)
		_node.PitchDeckURL = value
	}
	if value, ok := _c.mutation.MediaKitURL(); ok {
		_spec.SetField(application.FieldMediaKitURL, field.TypeString, value)
		_node.MediaKitURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AdminNotes(); ok {
		_spec.SetField(application.FieldAdminNotes, field.TypeString, value)
		_node.AdminNotes = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(application.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(application.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
