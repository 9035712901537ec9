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
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/predicate"
	"github.com/creatorbridge/api/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *UserUpdate) ClearName() *UserUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetOauthProvider sets the "oauth_provider" field.
func (_u *UserUpdate) SetOauthProvider(v string) *UserUpdate {
	_u.mutation.SetOauthProvider(v)
	return _u
}

// SetNillableOauthProvider sets the "oauth_provider" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOauthProvider(v *string) *UserUpdate {
	if v != nil {
		_u.SetOauthProvider(*v)
	}
	return _u
}

// ClearOauthProvider clears the value of the "oauth_provider" field.
func (_u *UserUpdate) ClearOauthProvider() *UserUpdate {
	_u.mutation.ClearOauthProvider()
	return _u
}

// SetOauthID sets the "oauth_id" field.
func (_u *UserUpdate) SetOauthID(v string) *UserUpdate {
	_u.mutation.SetOauthID(v)
	return _u
}

// SetNillableOauthID sets the "oauth_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOauthID(v *string) *UserUpdate {
	if v != nil {
		_u.SetOauthID(*v)
	}
	return _u
}

// ClearOauthID clears the value of the "oauth_id" field.
func (_u *UserUpdate) ClearOauthID() *UserUpdate {
	_u.mutation.ClearOauthID()
	return _u
}

// SetMagicLinkTokenHash sets the "magic_link_token_hash" field.
func (_u *UserUpdate) SetMagicLinkTokenHash(v string) *UserUpdate {
	_u.mutation.SetMagicLinkTokenHash(v)
	return _u
}

// SetNillableMagicLinkTokenHash sets the "magic_link_token_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillableMagicLinkTokenHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetMagicLinkTokenHash(*v)
	}
	return _u
}

// ClearMagicLinkTokenHash clears the value of the "magic_link_token_hash" field.
func (_u *UserUpdate) ClearMagicLinkTokenHash() *UserUpdate {
	_u.mutation.ClearMagicLinkTokenHash()
	return _u
}

// SetMagicLinkExpiresAt sets the "magic_link_expires_at" field.
func (_u *UserUpdate) SetMagicLinkExpiresAt(v time.Time) *UserUpdate {
	_u.mutation.SetMagicLinkExpiresAt(v)
	return _u
}

// SetNillableMagicLinkExpiresAt sets the "magic_link_expires_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableMagicLinkExpiresAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetMagicLinkExpiresAt(*v)
	}
	return _u
}

// ClearMagicLinkExpiresAt clears the value of the "magic_link_expires_at" field.
func (_u *UserUpdate) ClearMagicLinkExpiresAt() *UserUpdate {
	_u.mutation.ClearMagicLinkExpiresAt()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *UserUpdate) AddApplicationIDs(ids ...int) *UserUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *UserUpdate) AddApplications(v ...*Application) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *UserUpdate) AddAuditLogIDs(ids ...int) *UserUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdate) AddAuditLogs(v ...*AuditLog) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// AddLeadStageChangeIDs adds the "lead_stage_changes" edge to the LeadStageHistory entity by IDs.
func (_u *UserUpdate) AddLeadStageChangeIDs(ids ...int) *UserUpdate {
	_u.mutation.AddLeadStageChangeIDs(ids...)
	return _u
}

// AddLeadStageChanges adds the "lead_stage_changes" edges to the LeadStageHistory entity.
func (_u *UserUpdate) AddLeadStageChanges(v ...*LeadStageHistory) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadStageChangeIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *UserUpdate) ClearApplications() *UserUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *UserUpdate) RemoveApplicationIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *UserUpdate) RemoveApplications(v ...*Application) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdate) ClearAuditLogs() *UserUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *UserUpdate) RemoveAuditLogIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *UserUpdate) RemoveAuditLogs(v ...*AuditLog) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// ClearLeadStageChanges clears all "lead_stage_changes" edges to the LeadStageHistory entity.
func (_u *UserUpdate) ClearLeadStageChanges() *UserUpdate {
	_u.mutation.ClearLeadStageChanges()
	return _u
}

// RemoveLeadStageChangeIDs removes the "lead_stage_changes" edge to LeadStageHistory entities by IDs.
func (_u *UserUpdate) RemoveLeadStageChangeIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveLeadStageChangeIDs(ids...)
	return _u
}

// RemoveLeadStageChanges removes "lead_stage_changes" edges to LeadStageHistory entities.
func (_u *UserUpdate) RemoveLeadStageChanges(v ...*LeadStageHistory) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadStageChangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(user.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.OauthProvider(); ok {
		_spec.SetField(user.FieldOauthProvider, field.TypeString, value)
	}
	if _u.mutation.OauthProviderCleared() {
		_spec.ClearField(user.FieldOauthProvider, field.TypeString)
	}
	if value, ok := _u.mutation.OauthID(); ok {
		_spec.SetField(user.FieldOauthID, field.TypeString, value)
	}
	if _u.mutation.OauthIDCleared() {
		_spec.ClearField(user.FieldOauthID, field.TypeString)
	}
	if value, ok := _u.mutation.MagicLinkTokenHash(); ok {
		_spec.SetField(user.FieldMagicLinkTokenHash, field.TypeString, value)
	}
	if _u.mutation.MagicLinkTokenHashCleared() {
		_spec.ClearField(user.FieldMagicLinkTokenHash, field.TypeString)
	}
	if value, ok := _u.mutation.MagicLinkExpiresAt(); ok {
		_spec.SetField(user.FieldMagicLinkExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.MagicLinkExpiresAtCleared() {
		_spec.ClearField(user.FieldMagicLinkExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ApplicationsTable,
			Columns: []string{user.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ApplicationsTable,
			Columns: []string{user.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ApplicationsTable,
			Columns: []string{user.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadStageChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadStageChangesTable,
			Columns: []string{user.LeadStageChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadStageChangesIDs(); len(nodes) > 0 && !_u.mutation.LeadStageChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadStageChangesTable,
			Columns: []string{user.LeadStageChangesColumn},
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
	if nodes := _u.mutation.LeadStageChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadStageChangesTable,
			Columns: []string{user.LeadStageChangesColumn},
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
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *UserUpdateOne) ClearName() *UserUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetOauthProvider sets the "oauth_provider" field.
func (_u *UserUpdateOne) SetOauthProvider(v string) *UserUpdateOne {
	_u.mutation.SetOauthProvider(v)
	return _u
}

// SetNillableOauthProvider sets the "oauth_provider" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOauthProvider(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOauthProvider(*v)
	}
	return _u
}

// ClearOauthProvider clears the value of the "oauth_provider" field.
func (_u *UserUpdateOne) ClearOauthProvider() *UserUpdateOne {
	_u.mutation.ClearOauthProvider()
	return _u
}

// SetOauthID sets the "oauth_id" field.
func (_u *UserUpdateOne) SetOauthID(v string) *UserUpdateOne {
	_u.mutation.SetOauthID(v)
	return _u
}

// SetNillableOauthID sets the "oauth_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOauthID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOauthID(*v)
	}
	return _u
}

// ClearOauthID clears the value of the "oauth_id" field.
func (_u *UserUpdateOne) ClearOauthID() *UserUpdateOne {
	_u.mutation.ClearOauthID()
	return _u
}

// SetMagicLinkTokenHash sets the "magic_link_token_hash" field.
func (_u *UserUpdateOne) SetMagicLinkTokenHash(v string) *UserUpdateOne {
	_u.mutation.SetMagicLinkTokenHash(v)
	return _u
}

// SetNillableMagicLinkTokenHash sets the "magic_link_token_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableMagicLinkTokenHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetMagicLinkTokenHash(*v)
	}
	return _u
}

// ClearMagicLinkTokenHash clears the value of the "magic_link_token_hash" field.
func (_u *UserUpdateOne) ClearMagicLinkTokenHash() *UserUpdateOne {
	_u.mutation.ClearMagicLinkTokenHash()
	return _u
}

// SetMagicLinkExpiresAt sets the "magic_link_expires_at" field.
func (_u *UserUpdateOne) SetMagicLinkExpiresAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetMagicLinkExpiresAt(v)
	return _u
}

// SetNillableMagicLinkExpiresAt sets the "magic_link_expires_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableMagicLinkExpiresAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetMagicLinkExpiresAt(*v)
	}
	return _u
}

// ClearMagicLinkExpiresAt clears the value of the "magic_link_expires_at" field.
func (_u *UserUpdateOne) ClearMagicLinkExpiresAt() *UserUpdateOne {
	_u.mutation.ClearMagicLinkExpiresAt()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *UserUpdateOne) AddApplicationIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *UserUpdateOne) AddApplications(v ...*Application) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *UserUpdateOne) AddAuditLogIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdateOne) AddAuditLogs(v ...*AuditLog) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// AddLeadStageChangeIDs adds the "lead_stage_changes" edge to the LeadStageHistory entity by IDs.
func (_u *UserUpdateOne) AddLeadStageChangeIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddLeadStageChangeIDs(ids...)
	return _u
}

// AddLeadStageChanges adds the "lead_stage_changes" edges to the LeadStageHistory entity.
func (_u *UserUpdateOne) AddLeadStageChanges(v ...*LeadStageHistory) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadStageChangeIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *UserUpdateOne) ClearApplications() *UserUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *UserUpdateOne) RemoveApplicationIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *UserUpdateOne) RemoveApplications(v ...*Application) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdateOne) ClearAuditLogs() *UserUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *UserUpdateOne) RemoveAuditLogIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *UserUpdateOne) RemoveAuditLogs(v ...*AuditLog) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// ClearLeadStageChanges clears all "lead_stage_changes" edges to the LeadStageHistory entity.
func (_u *UserUpdateOne) ClearLeadStageChanges() *UserUpdateOne {
	_u.mutation.ClearLeadStageChanges()
	return _u
}

// RemoveLeadStageChangeIDs removes the "lead_stage_changes" edge to LeadStageHistory entities by IDs.
func (_u *UserUpdateOne) RemoveLeadStageChangeIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveLeadStageChangeIDs(ids...)
	return _u
}

// RemoveLeadStageChanges removes "lead_stage_changes" edges to LeadStageHistory entities.
func (_u *UserUpdateOne) RemoveLeadStageChanges(v ...*LeadStageHistory) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadStageChangeIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(user.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.OauthProvider(); ok {
		_spec.SetField(user.FieldOauthProvider, field.TypeString, value)
	}
	if _u.mutation.OauthProviderCleared() {
		_spec.ClearField(user.FieldOauthProvider, field.TypeString)
	}
	if value, ok := _u.mutation.OauthID(); ok {
		_spec.SetField(user.FieldOauthID, field.TypeString, value)
	}
	if _u.mutation.OauthIDCleared() {
		_spec.ClearField(user.FieldOauthID, field.TypeString)
	}
	if value, ok := _u.mutation.MagicLinkTokenHash(); ok {
		_spec.SetField(user.FieldMagicLinkTokenHash, field.TypeString, value)
	}
	if _u.mutation.MagicLinkTokenHashCleared() {
		_spec.ClearField(user.FieldMagicLinkTokenHash, field.TypeString)
	}
	if value, ok := _u.mutation.MagicLinkExpiresAt(); ok {
		_spec.SetField(user.FieldMagicLinkExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.MagicLinkExpiresAtCleared() {
		_spec.ClearField(user.FieldMagicLinkExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ApplicationsTable,
			Columns: []string{user.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ApplicationsTable,
			Columns: []string{user.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ApplicationsTable,
			Columns: []string{user.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadStageChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadStageChangesTable,
			Columns: []string{user.LeadStageChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadStageChangesIDs(); len(nodes) > 0 && !_u.mutation.LeadStageChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadStageChangesTable,
			Columns: []string{user.LeadStageChangesColumn},
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
	if nodes := _u.mutation.LeadStageChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LeadStageChangesTable,
			Columns: []string{user.LeadStageChangesColumn},
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
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
