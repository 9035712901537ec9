// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/predicate"
	"github.com/creatorbridge/api/ent/schema"
	"github.com/creatorbridge/api/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivity         = "Activity"
	TypeApplication      = "Application"
	TypeAuditLog         = "AuditLog"
	TypeCreator          = "Creator"
	TypeDocument         = "Document"
	TypeLead             = "Lead"
	TypeLeadStageHistory = "LeadStageHistory"
	TypeMilestone        = "Milestone"
	TypeOnboardingKit    = "OnboardingKit"
	TypeUser             = "User"
)

// ActivityMutation represents an operation that mutates the Activity nodes in the graph.
type ActivityMutation struct {
	config
	op            Op
	typ           string
	id            *int
	_type         *activity.Type
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	client        *int
	clearedclient bool
	done          bool
	oldValue      func(context.Context) (*Activity, error)
	predicates    []predicate.Activity
}

var _ ent.Mutation = (*ActivityMutation)(nil)

// activityOption allows management of the mutation configuration using functional options.
type activityOption func(*ActivityMutation)

// newActivityMutation creates new mutation for the Activity entity.
func newActivityMutation(c config, op Op, opts ...activityOption) *ActivityMutation {
	m := &ActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityID sets the ID field of the mutation.
func withActivityID(id int) activityOption {
	return func(m *ActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *Activity
		)
		m.oldValue = func(ctx context.Context) (*Activity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Activity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivity sets the old Activity of the mutation.
func withActivity(node *Activity) activityOption {
	return func(m *ActivityMutation) {
		m.oldValue = func(context.Context) (*Activity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Activity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *ActivityMutation) SetClientID(i int) {
	m.client = &i
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ActivityMutation) ClientID() (r int, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldClientID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ActivityMutation) ResetClientID() {
	m.client = nil
}

// SetType sets the "type" field.
func (m *ActivityMutation) SetType(a activity.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *ActivityMutation) GetType() (r activity.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldType(ctx context.Context) (v activity.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ActivityMutation) ResetType() {
	m._type = nil
}

// SetDescription sets the "description" field.
func (m *ActivityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActivityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ActivityMutation) ResetDescription() {
	m.description = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClient clears the "client" edge to the Creator entity.
func (m *ActivityMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[activity.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Creator entity was cleared.
func (m *ActivityMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) ClientIDs() (ids []int) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *ActivityMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// Where appends a list predicates to the ActivityMutation builder.
func (m *ActivityMutation) Where(ps ...predicate.Activity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Activity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Activity).
func (m *ActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.client != nil {
		fields = append(fields, activity.FieldClientID)
	}
	if m._type != nil {
		fields = append(fields, activity.FieldType)
	}
	if m.description != nil {
		fields = append(fields, activity.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, activity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activity.FieldClientID:
		return m.ClientID()
	case activity.FieldType:
		return m.GetType()
	case activity.FieldDescription:
		return m.Description()
	case activity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activity.FieldClientID:
		return m.OldClientID(ctx)
	case activity.FieldType:
		return m.OldType(ctx)
	case activity.FieldDescription:
		return m.OldDescription(ctx)
	case activity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Activity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activity.FieldClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case activity.FieldType:
		v, ok := value.(activity.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case activity.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Activity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Activity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityMutation) ResetField(name string) error {
	switch name {
	case activity.FieldClientID:
		m.ResetClientID()
		return nil
	case activity.FieldType:
		m.ResetType()
		return nil
	case activity.FieldDescription:
		m.ResetDescription()
		return nil
	case activity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client != nil {
		edges = append(edges, activity.EdgeClient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activity.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient {
		edges = append(edges, activity.EdgeClient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityMutation) EdgeCleared(name string) bool {
	switch name {
	case activity.EdgeClient:
		return m.clearedclient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityMutation) ClearEdge(name string) error {
	switch name {
	case activity.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Activity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityMutation) ResetEdge(name string) error {
	switch name {
	case activity.EdgeClient:
		m.ResetClient()
		return nil
	}
	return fmt.Errorf("unknown Activity edge %s", name)
}

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	creator_name           *string
	youtube_handle         *string
	tiktok_handle          *string
	instagram_handle       *string
	youtube_followers      *int
	addyoutube_followers   *int
	tiktok_followers       *int
	addtiktok_followers    *int
	instagram_followers    *int
	addinstagram_followers *int
	website                *string
	project_idea           *string
	target_audience        *string
	why_join               *string
	pitch_deck_url         *string
	media_kit_url          *string
	status                 *application.Status
	admin_notes            *string
	tags                   *[]string
	appendtags             []string
	submitted_at           *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	applicant              *int
	clearedapplicant       bool
	done                   bool
	oldValue               func(context.Context) (*Application, error)
	predicates             []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id int) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ApplicationMutation) SetUserID(i int) {
	m.applicant = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ApplicationMutation) UserID() (r int, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ApplicationMutation) ResetUserID() {
	m.applicant = nil
}

// SetCreatorName sets the "creator_name" field.
func (m *ApplicationMutation) SetCreatorName(s string) {
	m.creator_name = &s
}

// CreatorName returns the value of the "creator_name" field in the mutation.
func (m *ApplicationMutation) CreatorName() (r string, exists bool) {
	v := m.creator_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorName returns the old "creator_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorName: %w", err)
	}
	return oldValue.CreatorName, nil
}

// ResetCreatorName resets all changes to the "creator_name" field.
func (m *ApplicationMutation) ResetCreatorName() {
	m.creator_name = nil
}

// SetYoutubeHandle sets the "youtube_handle" field.
func (m *ApplicationMutation) SetYoutubeHandle(s string) {
	m.youtube_handle = &s
}

// YoutubeHandle returns the value of the "youtube_handle" field in the mutation.
func (m *ApplicationMutation) YoutubeHandle() (r string, exists bool) {
	v := m.youtube_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldYoutubeHandle returns the old "youtube_handle" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldYoutubeHandle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoutubeHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoutubeHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoutubeHandle: %w", err)
	}
	return oldValue.YoutubeHandle, nil
}

// ClearYoutubeHandle clears the value of the "youtube_handle" field.
func (m *ApplicationMutation) ClearYoutubeHandle() {
	m.youtube_handle = nil
	m.clearedFields[application.FieldYoutubeHandle] = struct{}{}
}

// YoutubeHandleCleared returns if the "youtube_handle" field was cleared in this mutation.
func (m *ApplicationMutation) YoutubeHandleCleared() bool {
	_, ok := m.clearedFields[application.FieldYoutubeHandle]
	return ok
}

// ResetYoutubeHandle resets all changes to the "youtube_handle" field.
func (m *ApplicationMutation) ResetYoutubeHandle() {
	m.youtube_handle = nil
	delete(m.clearedFields, application.FieldYoutubeHandle)
}

// SetTiktokHandle sets the "tiktok_handle" field.
func (m *ApplicationMutation) SetTiktokHandle(s string) {
	m.tiktok_handle = &s
}

// TiktokHandle returns the value of the "tiktok_handle" field in the mutation.
func (m *ApplicationMutation) TiktokHandle() (r string, exists bool) {
	v := m.tiktok_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldTiktokHandle returns the old "tiktok_handle" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTiktokHandle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTiktokHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTiktokHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTiktokHandle: %w", err)
	}
	return oldValue.TiktokHandle, nil
}

// ClearTiktokHandle clears the value of the "tiktok_handle" field.
func (m *ApplicationMutation) ClearTiktokHandle() {
	m.tiktok_handle = nil
	m.clearedFields[application.FieldTiktokHandle] = struct{}{}
}

// TiktokHandleCleared returns if the "tiktok_handle" field was cleared in this mutation.
func (m *ApplicationMutation) TiktokHandleCleared() bool {
	_, ok := m.clearedFields[application.FieldTiktokHandle]
	return ok
}

// ResetTiktokHandle resets all changes to the "tiktok_handle" field.
func (m *ApplicationMutation) ResetTiktokHandle() {
	m.tiktok_handle = nil
	delete(m.clearedFields, application.FieldTiktokHandle)
}

// SetInstagramHandle sets the "instagram_handle" field.
func (m *ApplicationMutation) SetInstagramHandle(s string) {
	m.instagram_handle = &s
}

// InstagramHandle returns the value of the "instagram_handle" field in the mutation.
func (m *ApplicationMutation) InstagramHandle() (r string, exists bool) {
	v := m.instagram_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldInstagramHandle returns the old "instagram_handle" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldInstagramHandle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstagramHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstagramHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstagramHandle: %w", err)
	}
	return oldValue.InstagramHandle, nil
}

// ClearInstagramHandle clears the value of the "instagram_handle" field.
func (m *ApplicationMutation) ClearInstagramHandle() {
	m.instagram_handle = nil
	m.clearedFields[application.FieldInstagramHandle] = struct{}{}
}

// InstagramHandleCleared returns if the "instagram_handle" field was cleared in this mutation.
func (m *ApplicationMutation) InstagramHandleCleared() bool {
	_, ok := m.clearedFields[application.FieldInstagramHandle]
	return ok
}

// ResetInstagramHandle resets all changes to the "instagram_handle" field.
func (m *ApplicationMutation) ResetInstagramHandle() {
	m.instagram_handle = nil
	delete(m.clearedFields, application.FieldInstagramHandle)
}

// SetYoutubeFollowers sets the "youtube_followers" field.
func (m *ApplicationMutation) SetYoutubeFollowers(i int) {
	m.youtube_followers = &i
	m.addyoutube_followers = nil
}

// YoutubeFollowers returns the value of the "youtube_followers" field in the mutation.
func (m *ApplicationMutation) YoutubeFollowers() (r int, exists bool) {
	v := m.youtube_followers
	if v == nil {
		return
	}
	return *v, true
}

// OldYoutubeFollowers returns the old "youtube_followers" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldYoutubeFollowers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoutubeFollowers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoutubeFollowers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoutubeFollowers: %w", err)
	}
	return oldValue.YoutubeFollowers, nil
}

// AddYoutubeFollowers adds i to the "youtube_followers" field.
func (m *ApplicationMutation) AddYoutubeFollowers(i int) {
	if m.addyoutube_followers != nil {
		*m.addyoutube_followers += i
	} else {
		m.addyoutube_followers = &i
	}
}

// AddedYoutubeFollowers returns the value that was added to the "youtube_followers" field in this mutation.
func (m *ApplicationMutation) AddedYoutubeFollowers() (r int, exists bool) {
	v := m.addyoutube_followers
	if v == nil {
		return
	}
	return *v, true
}

// ResetYoutubeFollowers resets all changes to the "youtube_followers" field.
func (m *ApplicationMutation) ResetYoutubeFollowers() {
	m.youtube_followers = nil
	m.addyoutube_followers = nil
}

// SetTiktokFollowers sets the "tiktok_followers" field.
func (m *ApplicationMutation) SetTiktokFollowers(i int) {
	m.tiktok_followers = &i
	m.addtiktok_followers = nil
}

// TiktokFollowers returns the value of the "tiktok_followers" field in the mutation.
func (m *ApplicationMutation) TiktokFollowers() (r int, exists bool) {
	v := m.tiktok_followers
	if v == nil {
		return
	}
	return *v, true
}

// OldTiktokFollowers returns the old "tiktok_followers" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTiktokFollowers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTiktokFollowers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTiktokFollowers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTiktokFollowers: %w", err)
	}
	return oldValue.TiktokFollowers, nil
}

// AddTiktokFollowers adds i to the "tiktok_followers" field.
func (m *ApplicationMutation) AddTiktokFollowers(i int) {
	if m.addtiktok_followers != nil {
		*m.addtiktok_followers += i
	} else {
		m.addtiktok_followers = &i
	}
}

// AddedTiktokFollowers returns the value that was added to the "tiktok_followers" field in this mutation.
func (m *ApplicationMutation) AddedTiktokFollowers() (r int, exists bool) {
	v := m.addtiktok_followers
	if v == nil {
		return
	}
	return *v, true
}

// ResetTiktokFollowers resets all changes to the "tiktok_followers" field.
func (m *ApplicationMutation) ResetTiktokFollowers() {
	m.tiktok_followers = nil
	m.addtiktok_followers = nil
}

// SetInstagramFollowers sets the "instagram_followers" field.
func (m *ApplicationMutation) SetInstagramFollowers(i int) {
	m.instagram_followers = &i
	m.addinstagram_followers = nil
}

// InstagramFollowers returns the value of the "instagram_followers" field in the mutation.
func (m *ApplicationMutation) InstagramFollowers() (r int, exists bool) {
	v := m.instagram_followers
	if v == nil {
		return
	}
	return *v, true
}

// OldInstagramFollowers returns the old "instagram_followers" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldInstagramFollowers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstagramFollowers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstagramFollowers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstagramFollowers: %w", err)
	}
	return oldValue.InstagramFollowers, nil
}

// AddInstagramFollowers adds i to the "instagram_followers" field.
func (m *ApplicationMutation) AddInstagramFollowers(i int) {
	if m.addinstagram_followers != nil {
		*m.addinstagram_followers += i
	} else {
		m.addinstagram_followers = &i
	}
}

// AddedInstagramFollowers returns the value that was added to the "instagram_followers" field in this mutation.
func (m *ApplicationMutation) AddedInstagramFollowers() (r int, exists bool) {
	v := m.addinstagram_followers
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstagramFollowers resets all changes to the "instagram_followers" field.
func (m *ApplicationMutation) ResetInstagramFollowers() {
	m.instagram_followers = nil
	m.addinstagram_followers = nil
}

// SetWebsite sets the "website" field.
func (m *ApplicationMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ApplicationMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ApplicationMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[application.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ApplicationMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[application.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ApplicationMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, application.FieldWebsite)
}

// SetProjectIdea sets the "project_idea" field.
func (m *ApplicationMutation) SetProjectIdea(s string) {
	m.project_idea = &s
}

// ProjectIdea returns the value of the "project_idea" field in the mutation.
func (m *ApplicationMutation) ProjectIdea() (r string, exists bool) {
	v := m.project_idea
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectIdea returns the old "project_idea" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldProjectIdea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectIdea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectIdea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectIdea: %w", err)
	}
	return oldValue.ProjectIdea, nil
}

// ResetProjectIdea resets all changes to the "project_idea" field.
func (m *ApplicationMutation) ResetProjectIdea() {
	m.project_idea = nil
}

// SetTargetAudience sets the "target_audience" field.
func (m *ApplicationMutation) SetTargetAudience(s string) {
	m.target_audience = &s
}

// TargetAudience returns the value of the "target_audience" field in the mutation.
func (m *ApplicationMutation) TargetAudience() (r string, exists bool) {
	v := m.target_audience
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudience returns the old "target_audience" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTargetAudience(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudience: %w", err)
	}
	return oldValue.TargetAudience, nil
}

// ResetTargetAudience resets all changes to the "target_audience" field.
func (m *ApplicationMutation) ResetTargetAudience() {
	m.target_audience = nil
}

// SetWhyJoin sets the "why_join" field.
func (m *ApplicationMutation) SetWhyJoin(s string) {
	m.why_join = &s
}

// WhyJoin returns the value of the "why_join" field in the mutation.
func (m *ApplicationMutation) WhyJoin() (r string, exists bool) {
	v := m.why_join
	if v == nil {
		return
	}
	return *v, true
}

// OldWhyJoin returns the old "why_join" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldWhyJoin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhyJoin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhyJoin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhyJoin: %w", err)
	}
	return oldValue.WhyJoin, nil
}

// ResetWhyJoin resets all changes to the "why_join" field.
func (m *ApplicationMutation) ResetWhyJoin() {
	m.why_join = nil
}

// SetPitchDeckURL sets the "pitch_deck_url" field.
func (m *ApplicationMutation) SetPitchDeckURL(s string) {
	m.pitch_deck_url = &s
}

// PitchDeckURL returns the value of the "pitch_deck_url" field in the mutation.
func (m *ApplicationMutation) PitchDeckURL() (r string, exists bool) {
	v := m.pitch_deck_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPitchDeckURL returns the old "pitch_deck_url" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldPitchDeckURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPitchDeckURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPitchDeckURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPitchDeckURL: %w", err)
	}
	return oldValue.PitchDeckURL, nil
}

// ClearPitchDeckURL clears the value of the "pitch_deck_url" field.
func (m *ApplicationMutation) ClearPitchDeckURL() {
	m.pitch_deck_url = nil
	m.clearedFields[application.FieldPitchDeckURL] = struct{}{}
}

// PitchDeckURLCleared returns if the "pitch_deck_url" field was cleared in this mutation.
func (m *ApplicationMutation) PitchDeckURLCleared() bool {
	_, ok := m.clearedFields[application.FieldPitchDeckURL]
	return ok
}

// ResetPitchDeckURL resets all changes to the "pitch_deck_url" field.
func (m *ApplicationMutation) ResetPitchDeckURL() {
	m.pitch_deck_url = nil
	delete(m.clearedFields, application.FieldPitchDeckURL)
}

// SetMediaKitURL sets the "media_kit_url" field.
func (m *ApplicationMutation) SetMediaKitURL(s string) {
	m.media_kit_url = &s
}

// MediaKitURL returns the value of the "media_kit_url" field in the mutation.
func (m *ApplicationMutation) MediaKitURL() (r string, exists bool) {
	v := m.media_kit_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaKitURL returns the old "media_kit_url" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldMediaKitURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaKitURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaKitURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaKitURL: %w", err)
	}
	return oldValue.MediaKitURL, nil
}

// ClearMediaKitURL clears the value of the "media_kit_url" field.
func (m *ApplicationMutation) ClearMediaKitURL() {
	m.media_kit_url = nil
	m.clearedFields[application.FieldMediaKitURL] = struct{}{}
}

// MediaKitURLCleared returns if the "media_kit_url" field was cleared in this mutation.
func (m *ApplicationMutation) MediaKitURLCleared() bool {
	_, ok := m.clearedFields[application.FieldMediaKitURL]
	return ok
}

// ResetMediaKitURL resets all changes to the "media_kit_url" field.
func (m *ApplicationMutation) ResetMediaKitURL() {
	m.media_kit_url = nil
	delete(m.clearedFields, application.FieldMediaKitURL)
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(a application.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r application.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v application.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetAdminNotes sets the "admin_notes" field.
func (m *ApplicationMutation) SetAdminNotes(s string) {
	m.admin_notes = &s
}

// AdminNotes returns the value of the "admin_notes" field in the mutation.
func (m *ApplicationMutation) AdminNotes() (r string, exists bool) {
	v := m.admin_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminNotes returns the old "admin_notes" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAdminNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminNotes: %w", err)
	}
	return oldValue.AdminNotes, nil
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (m *ApplicationMutation) ClearAdminNotes() {
	m.admin_notes = nil
	m.clearedFields[application.FieldAdminNotes] = struct{}{}
}

// AdminNotesCleared returns if the "admin_notes" field was cleared in this mutation.
func (m *ApplicationMutation) AdminNotesCleared() bool {
	_, ok := m.clearedFields[application.FieldAdminNotes]
	return ok
}

// ResetAdminNotes resets all changes to the "admin_notes" field.
func (m *ApplicationMutation) ResetAdminNotes() {
	m.admin_notes = nil
	delete(m.clearedFields, application.FieldAdminNotes)
}

// SetTags sets the "tags" field.
func (m *ApplicationMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ApplicationMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ApplicationMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ApplicationMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ApplicationMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[application.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ApplicationMutation) TagsCleared() bool {
	_, ok := m.clearedFields[application.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ApplicationMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, application.FieldTags)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *ApplicationMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *ApplicationMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (m *ApplicationMutation) ClearSubmittedAt() {
	m.submitted_at = nil
	m.clearedFields[application.FieldSubmittedAt] = struct{}{}
}

// SubmittedAtCleared returns if the "submitted_at" field was cleared in this mutation.
func (m *ApplicationMutation) SubmittedAtCleared() bool {
	_, ok := m.clearedFields[application.FieldSubmittedAt]
	return ok
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *ApplicationMutation) ResetSubmittedAt() {
	m.submitted_at = nil
	delete(m.clearedFields, application.FieldSubmittedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetApplicantID sets the "applicant" edge to the User entity by id.
func (m *ApplicationMutation) SetApplicantID(id int) {
	m.applicant = &id
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (m *ApplicationMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[application.FieldUserID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the User entity was cleared.
func (m *ApplicationMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantID returns the "applicant" edge ID in the mutation.
func (m *ApplicationMutation) ApplicantID() (id int, exists bool) {
	if m.applicant != nil {
		return *m.applicant, true
	}
	return
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) ApplicantIDs() (ids []int) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *ApplicationMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.applicant != nil {
		fields = append(fields, application.FieldUserID)
	}
	if m.creator_name != nil {
		fields = append(fields, application.FieldCreatorName)
	}
	if m.youtube_handle != nil {
		fields = append(fields, application.FieldYoutubeHandle)
	}
	if m.tiktok_handle != nil {
		fields = append(fields, application.FieldTiktokHandle)
	}
	if m.instagram_handle != nil {
		fields = append(fields, application.FieldInstagramHandle)
	}
	if m.youtube_followers != nil {
		fields = append(fields, application.FieldYoutubeFollowers)
	}
	if m.tiktok_followers != nil {
		fields = append(fields, application.FieldTiktokFollowers)
	}
	if m.instagram_followers != nil {
		fields = append(fields, application.FieldInstagramFollowers)
	}
	if m.website != nil {
		fields = append(fields, application.FieldWebsite)
	}
	if m.project_idea != nil {
		fields = append(fields, application.FieldProjectIdea)
	}
	if m.target_audience != nil {
		fields = append(fields, application.FieldTargetAudience)
	}
	if m.why_join != nil {
		fields = append(fields, application.FieldWhyJoin)
	}
	if m.pitch_deck_url != nil {
		fields = append(fields, application.FieldPitchDeckURL)
	}
	if m.media_kit_url != nil {
		fields = append(fields, application.FieldMediaKitURL)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.admin_notes != nil {
		fields = append(fields, application.FieldAdminNotes)
	}
	if m.tags != nil {
		fields = append(fields, application.FieldTags)
	}
	if m.submitted_at != nil {
		fields = append(fields, application.FieldSubmittedAt)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldUserID:
		return m.UserID()
	case application.FieldCreatorName:
		return m.CreatorName()
	case application.FieldYoutubeHandle:
		return m.YoutubeHandle()
	case application.FieldTiktokHandle:
		return m.TiktokHandle()
	case application.FieldInstagramHandle:
		return m.InstagramHandle()
	case application.FieldYoutubeFollowers:
		return m.YoutubeFollowers()
	case application.FieldTiktokFollowers:
		return m.TiktokFollowers()
	case application.FieldInstagramFollowers:
		return m.InstagramFollowers()
	case application.FieldWebsite:
		return m.Website()
	case application.FieldProjectIdea:
		return m.ProjectIdea()
	case application.FieldTargetAudience:
		return m.TargetAudience()
	case application.FieldWhyJoin:
		return m.WhyJoin()
	case application.FieldPitchDeckURL:
		return m.PitchDeckURL()
	case application.FieldMediaKitURL:
		return m.MediaKitURL()
	case application.FieldStatus:
		return m.Status()
	case application.FieldAdminNotes:
		return m.AdminNotes()
	case application.FieldTags:
		return m.Tags()
	case application.FieldSubmittedAt:
		return m.SubmittedAt()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldUserID:
		return m.OldUserID(ctx)
	case application.FieldCreatorName:
		return m.OldCreatorName(ctx)
	case application.FieldYoutubeHandle:
		return m.OldYoutubeHandle(ctx)
	case application.FieldTiktokHandle:
		return m.OldTiktokHandle(ctx)
	case application.FieldInstagramHandle:
		return m.OldInstagramHandle(ctx)
	case application.FieldYoutubeFollowers:
		return m.OldYoutubeFollowers(ctx)
	case application.FieldTiktokFollowers:
		return m.OldTiktokFollowers(ctx)
	case application.FieldInstagramFollowers:
		return m.OldInstagramFollowers(ctx)
	case application.FieldWebsite:
		return m.OldWebsite(ctx)
	case application.FieldProjectIdea:
		return m.OldProjectIdea(ctx)
	case application.FieldTargetAudience:
		return m.OldTargetAudience(ctx)
	case application.FieldWhyJoin:
		return m.OldWhyJoin(ctx)
	case application.FieldPitchDeckURL:
		return m.OldPitchDeckURL(ctx)
	case application.FieldMediaKitURL:
		return m.OldMediaKitURL(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldAdminNotes:
		return m.OldAdminNotes(ctx)
	case application.FieldTags:
		return m.OldTags(ctx)
	case application.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case application.FieldCreatorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorName(v)
		return nil
	case application.FieldYoutubeHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoutubeHandle(v)
		return nil
	case application.FieldTiktokHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTiktokHandle(v)
		return nil
	case application.FieldInstagramHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstagramHandle(v)
		return nil
	case application.FieldYoutubeFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoutubeFollowers(v)
		return nil
	case application.FieldTiktokFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTiktokFollowers(v)
		return nil
	case application.FieldInstagramFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstagramFollowers(v)
		return nil
	case application.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case application.FieldProjectIdea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectIdea(v)
		return nil
	case application.FieldTargetAudience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudience(v)
		return nil
	case application.FieldWhyJoin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhyJoin(v)
		return nil
	case application.FieldPitchDeckURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPitchDeckURL(v)
		return nil
	case application.FieldMediaKitURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaKitURL(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(application.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldAdminNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminNotes(v)
		return nil
	case application.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case application.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addyoutube_followers != nil {
		fields = append(fields, application.FieldYoutubeFollowers)
	}
	if m.addtiktok_followers != nil {
		fields = append(fields, application.FieldTiktokFollowers)
	}
	if m.addinstagram_followers != nil {
		fields = append(fields, application.FieldInstagramFollowers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldYoutubeFollowers:
		return m.AddedYoutubeFollowers()
	case application.FieldTiktokFollowers:
		return m.AddedTiktokFollowers()
	case application.FieldInstagramFollowers:
		return m.AddedInstagramFollowers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldYoutubeFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYoutubeFollowers(v)
		return nil
	case application.FieldTiktokFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTiktokFollowers(v)
		return nil
	case application.FieldInstagramFollowers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstagramFollowers(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldYoutubeHandle) {
		fields = append(fields, application.FieldYoutubeHandle)
	}
	if m.FieldCleared(application.FieldTiktokHandle) {
		fields = append(fields, application.FieldTiktokHandle)
	}
	if m.FieldCleared(application.FieldInstagramHandle) {
		fields = append(fields, application.FieldInstagramHandle)
	}
	if m.FieldCleared(application.FieldWebsite) {
		fields = append(fields, application.FieldWebsite)
	}
	if m.FieldCleared(application.FieldPitchDeckURL) {
		fields = append(fields, application.FieldPitchDeckURL)
	}
	if m.FieldCleared(application.FieldMediaKitURL) {
		fields = append(fields, application.FieldMediaKitURL)
	}
	if m.FieldCleared(application.FieldAdminNotes) {
		fields = append(fields, application.FieldAdminNotes)
	}
	if m.FieldCleared(application.FieldTags) {
		fields = append(fields, application.FieldTags)
	}
	if m.FieldCleared(application.FieldSubmittedAt) {
		fields = append(fields, application.FieldSubmittedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldYoutubeHandle:
		m.ClearYoutubeHandle()
		return nil
	case application.FieldTiktokHandle:
		m.ClearTiktokHandle()
		return nil
	case application.FieldInstagramHandle:
		m.ClearInstagramHandle()
		return nil
	case application.FieldWebsite:
		m.ClearWebsite()
		return nil
	case application.FieldPitchDeckURL:
		m.ClearPitchDeckURL()
		return nil
	case application.FieldMediaKitURL:
		m.ClearMediaKitURL()
		return nil
	case application.FieldAdminNotes:
		m.ClearAdminNotes()
		return nil
	case application.FieldTags:
		m.ClearTags()
		return nil
	case application.FieldSubmittedAt:
		m.ClearSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldUserID:
		m.ResetUserID()
		return nil
	case application.FieldCreatorName:
		m.ResetCreatorName()
		return nil
	case application.FieldYoutubeHandle:
		m.ResetYoutubeHandle()
		return nil
	case application.FieldTiktokHandle:
		m.ResetTiktokHandle()
		return nil
	case application.FieldInstagramHandle:
		m.ResetInstagramHandle()
		return nil
	case application.FieldYoutubeFollowers:
		m.ResetYoutubeFollowers()
		return nil
	case application.FieldTiktokFollowers:
		m.ResetTiktokFollowers()
		return nil
	case application.FieldInstagramFollowers:
		m.ResetInstagramFollowers()
		return nil
	case application.FieldWebsite:
		m.ResetWebsite()
		return nil
	case application.FieldProjectIdea:
		m.ResetProjectIdea()
		return nil
	case application.FieldTargetAudience:
		m.ResetTargetAudience()
		return nil
	case application.FieldWhyJoin:
		m.ResetWhyJoin()
		return nil
	case application.FieldPitchDeckURL:
		m.ResetPitchDeckURL()
		return nil
	case application.FieldMediaKitURL:
		m.ResetMediaKitURL()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldAdminNotes:
		m.ResetAdminNotes()
		return nil
	case application.FieldTags:
		m.ResetTags()
		return nil
	case application.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applicant != nil {
		edges = append(edges, application.EdgeApplicant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplicant {
		edges = append(edges, application.EdgeApplicant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeApplicant:
		return m.clearedapplicant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	case application.EdgeApplicant:
		m.ClearApplicant()
		return nil
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeApplicant:
		m.ResetApplicant()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	action        *auditlog.Action
	resource_type *string
	resource_id   *string
	metadata      *map[string]interface{}
	severity      *auditlog.Severity
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *AuditLogMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[auditlog.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *AuditLogMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, auditlog.FieldUserID)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(a auditlog.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r auditlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v auditlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *AuditLogMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[auditlog.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, auditlog.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditlog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditlog.FieldResourceID)
}

// SetMetadata sets the "metadata" field.
func (m *AuditLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditlog.FieldMetadata)
}

// SetSeverity sets the "severity" field.
func (m *AuditLogMutation) SetSeverity(a auditlog.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AuditLogMutation) Severity() (r auditlog.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSeverity(ctx context.Context) (v auditlog.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AuditLogMutation) ResetSeverity() {
	m.severity = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AuditLogMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[auditlog.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AuditLogMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AuditLogMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.metadata != nil {
		fields = append(fields, auditlog.FieldMetadata)
	}
	if m.severity != nil {
		fields = append(fields, auditlog.FieldSeverity)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldMetadata:
		return m.Metadata()
	case auditlog.FieldSeverity:
		return m.Severity()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditlog.FieldSeverity:
		return m.OldSeverity(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(auditlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditlog.FieldSeverity:
		v, ok := value.(auditlog.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldUserID) {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.FieldCleared(auditlog.FieldResourceType) {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.FieldCleared(auditlog.FieldResourceID) {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.FieldCleared(auditlog.FieldMetadata) {
		fields = append(fields, auditlog.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ClearUserID()
		return nil
	case auditlog.FieldResourceType:
		m.ClearResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditlog.FieldSeverity:
		m.ResetSeverity()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CreatorMutation represents an operation that mutates the Creator nodes in the graph.
type CreatorMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	name                      *string
	email                     *string
	company                   *string
	journey_stage             *creator.JourneyStage
	journey_progress          *int
	addjourney_progress       *int
	health_score              *int
	addhealth_score           *int
	health_factors            *map[string]schema.HealthFactor
	health_updated_at         *time.Time
	converted_from_lead_id    *int
	addconverted_from_lead_id *int
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	milestones                map[int]struct{}
	removedmilestones         map[int]struct{}
	clearedmilestones         bool
	kits                      map[int]struct{}
	removedkits               map[int]struct{}
	clearedkits               bool
	activities                map[int]struct{}
	removedactivities         map[int]struct{}
	clearedactivities         bool
	done                      bool
	oldValue                  func(context.Context) (*Creator, error)
	predicates                []predicate.Creator
}

var _ ent.Mutation = (*CreatorMutation)(nil)

// creatorOption allows management of the mutation configuration using functional options.
type creatorOption func(*CreatorMutation)

// newCreatorMutation creates new mutation for the Creator entity.
func newCreatorMutation(c config, op Op, opts ...creatorOption) *CreatorMutation {
	m := &CreatorMutation{
		config:        c,
		op:            op,
		typ:           TypeCreator,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreatorID sets the ID field of the mutation.
func withCreatorID(id int) creatorOption {
	return func(m *CreatorMutation) {
		var (
			err   error
			once  sync.Once
			value *Creator
		)
		m.oldValue = func(ctx context.Context) (*Creator, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Creator.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreator sets the old Creator of the mutation.
func withCreator(node *Creator) creatorOption {
	return func(m *CreatorMutation) {
		m.oldValue = func(context.Context) (*Creator, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreatorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreatorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreatorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreatorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Creator.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CreatorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CreatorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CreatorMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *CreatorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CreatorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CreatorMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[creator.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CreatorMutation) EmailCleared() bool {
	_, ok := m.clearedFields[creator.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CreatorMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, creator.FieldEmail)
}

// SetCompany sets the "company" field.
func (m *CreatorMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *CreatorMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *CreatorMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[creator.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *CreatorMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[creator.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *CreatorMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, creator.FieldCompany)
}

// SetJourneyStage sets the "journey_stage" field.
func (m *CreatorMutation) SetJourneyStage(cs creator.JourneyStage) {
	m.journey_stage = &cs
}

// JourneyStage returns the value of the "journey_stage" field in the mutation.
func (m *CreatorMutation) JourneyStage() (r creator.JourneyStage, exists bool) {
	v := m.journey_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldJourneyStage returns the old "journey_stage" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldJourneyStage(ctx context.Context) (v creator.JourneyStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJourneyStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJourneyStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJourneyStage: %w", err)
	}
	return oldValue.JourneyStage, nil
}

// ResetJourneyStage resets all changes to the "journey_stage" field.
func (m *CreatorMutation) ResetJourneyStage() {
	m.journey_stage = nil
}

// SetJourneyProgress sets the "journey_progress" field.
func (m *CreatorMutation) SetJourneyProgress(i int) {
	m.journey_progress = &i
	m.addjourney_progress = nil
}

// JourneyProgress returns the value of the "journey_progress" field in the mutation.
func (m *CreatorMutation) JourneyProgress() (r int, exists bool) {
	v := m.journey_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldJourneyProgress returns the old "journey_progress" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldJourneyProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJourneyProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJourneyProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJourneyProgress: %w", err)
	}
	return oldValue.JourneyProgress, nil
}

// AddJourneyProgress adds i to the "journey_progress" field.
func (m *CreatorMutation) AddJourneyProgress(i int) {
	if m.addjourney_progress != nil {
		*m.addjourney_progress += i
	} else {
		m.addjourney_progress = &i
	}
}

// AddedJourneyProgress returns the value that was added to the "journey_progress" field in this mutation.
func (m *CreatorMutation) AddedJourneyProgress() (r int, exists bool) {
	v := m.addjourney_progress
	if v == nil {
		return
	}
	return *v, true
}

// ResetJourneyProgress resets all changes to the "journey_progress" field.
func (m *CreatorMutation) ResetJourneyProgress() {
	m.journey_progress = nil
	m.addjourney_progress = nil
}

// SetHealthScore sets the "health_score" field.
func (m *CreatorMutation) SetHealthScore(i int) {
	m.health_score = &i
	m.addhealth_score = nil
}

// HealthScore returns the value of the "health_score" field in the mutation.
func (m *CreatorMutation) HealthScore() (r int, exists bool) {
	v := m.health_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthScore returns the old "health_score" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldHealthScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthScore: %w", err)
	}
	return oldValue.HealthScore, nil
}

// AddHealthScore adds i to the "health_score" field.
func (m *CreatorMutation) AddHealthScore(i int) {
	if m.addhealth_score != nil {
		*m.addhealth_score += i
	} else {
		m.addhealth_score = &i
	}
}

// AddedHealthScore returns the value that was added to the "health_score" field in this mutation.
func (m *CreatorMutation) AddedHealthScore() (r int, exists bool) {
	v := m.addhealth_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetHealthScore resets all changes to the "health_score" field.
func (m *CreatorMutation) ResetHealthScore() {
	m.health_score = nil
	m.addhealth_score = nil
}

// SetHealthFactors sets the "health_factors" field.
func (m *CreatorMutation) SetHealthFactors(mf map[string]schema.HealthFactor) {
	m.health_factors = &mf
}

// HealthFactors returns the value of the "health_factors" field in the mutation.
func (m *CreatorMutation) HealthFactors() (r map[string]schema.HealthFactor, exists bool) {
	v := m.health_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthFactors returns the old "health_factors" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldHealthFactors(ctx context.Context) (v map[string]schema.HealthFactor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthFactors: %w", err)
	}
	return oldValue.HealthFactors, nil
}

// ClearHealthFactors clears the value of the "health_factors" field.
func (m *CreatorMutation) ClearHealthFactors() {
	m.health_factors = nil
	m.clearedFields[creator.FieldHealthFactors] = struct{}{}
}

// HealthFactorsCleared returns if the "health_factors" field was cleared in this mutation.
func (m *CreatorMutation) HealthFactorsCleared() bool {
	_, ok := m.clearedFields[creator.FieldHealthFactors]
	return ok
}

// ResetHealthFactors resets all changes to the "health_factors" field.
func (m *CreatorMutation) ResetHealthFactors() {
	m.health_factors = nil
	delete(m.clearedFields, creator.FieldHealthFactors)
}

// SetHealthUpdatedAt sets the "health_updated_at" field.
func (m *CreatorMutation) SetHealthUpdatedAt(t time.Time) {
	m.health_updated_at = &t
}

// HealthUpdatedAt returns the value of the "health_updated_at" field in the mutation.
func (m *CreatorMutation) HealthUpdatedAt() (r time.Time, exists bool) {
	v := m.health_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthUpdatedAt returns the old "health_updated_at" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldHealthUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthUpdatedAt: %w", err)
	}
	return oldValue.HealthUpdatedAt, nil
}

// ClearHealthUpdatedAt clears the value of the "health_updated_at" field.
func (m *CreatorMutation) ClearHealthUpdatedAt() {
	m.health_updated_at = nil
	m.clearedFields[creator.FieldHealthUpdatedAt] = struct{}{}
}

// HealthUpdatedAtCleared returns if the "health_updated_at" field was cleared in this mutation.
func (m *CreatorMutation) HealthUpdatedAtCleared() bool {
	_, ok := m.clearedFields[creator.FieldHealthUpdatedAt]
	return ok
}

// ResetHealthUpdatedAt resets all changes to the "health_updated_at" field.
func (m *CreatorMutation) ResetHealthUpdatedAt() {
	m.health_updated_at = nil
	delete(m.clearedFields, creator.FieldHealthUpdatedAt)
}

// SetConvertedFromLeadID sets the "converted_from_lead_id" field.
func (m *CreatorMutation) SetConvertedFromLeadID(i int) {
	m.converted_from_lead_id = &i
	m.addconverted_from_lead_id = nil
}

// ConvertedFromLeadID returns the value of the "converted_from_lead_id" field in the mutation.
func (m *CreatorMutation) ConvertedFromLeadID() (r int, exists bool) {
	v := m.converted_from_lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConvertedFromLeadID returns the old "converted_from_lead_id" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldConvertedFromLeadID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvertedFromLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvertedFromLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvertedFromLeadID: %w", err)
	}
	return oldValue.ConvertedFromLeadID, nil
}

// AddConvertedFromLeadID adds i to the "converted_from_lead_id" field.
func (m *CreatorMutation) AddConvertedFromLeadID(i int) {
	if m.addconverted_from_lead_id != nil {
		*m.addconverted_from_lead_id += i
	} else {
		m.addconverted_from_lead_id = &i
	}
}

// AddedConvertedFromLeadID returns the value that was added to the "converted_from_lead_id" field in this mutation.
func (m *CreatorMutation) AddedConvertedFromLeadID() (r int, exists bool) {
	v := m.addconverted_from_lead_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearConvertedFromLeadID clears the value of the "converted_from_lead_id" field.
func (m *CreatorMutation) ClearConvertedFromLeadID() {
	m.converted_from_lead_id = nil
	m.addconverted_from_lead_id = nil
	m.clearedFields[creator.FieldConvertedFromLeadID] = struct{}{}
}

// ConvertedFromLeadIDCleared returns if the "converted_from_lead_id" field was cleared in this mutation.
func (m *CreatorMutation) ConvertedFromLeadIDCleared() bool {
	_, ok := m.clearedFields[creator.FieldConvertedFromLeadID]
	return ok
}

// ResetConvertedFromLeadID resets all changes to the "converted_from_lead_id" field.
func (m *CreatorMutation) ResetConvertedFromLeadID() {
	m.converted_from_lead_id = nil
	m.addconverted_from_lead_id = nil
	delete(m.clearedFields, creator.FieldConvertedFromLeadID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CreatorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreatorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreatorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreatorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreatorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Creator entity.
// If the Creator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreatorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMilestoneIDs adds the "milestones" edge to the Milestone entity by ids.
func (m *CreatorMutation) AddMilestoneIDs(ids ...int) {
	if m.milestones == nil {
		m.milestones = make(map[int]struct{})
	}
	for i := range ids {
		m.milestones[ids[i]] = struct{}{}
	}
}

// ClearMilestones clears the "milestones" edge to the Milestone entity.
func (m *CreatorMutation) ClearMilestones() {
	m.clearedmilestones = true
}

// MilestonesCleared reports if the "milestones" edge to the Milestone entity was cleared.
func (m *CreatorMutation) MilestonesCleared() bool {
	return m.clearedmilestones
}

// RemoveMilestoneIDs removes the "milestones" edge to the Milestone entity by IDs.
func (m *CreatorMutation) RemoveMilestoneIDs(ids ...int) {
	if m.removedmilestones == nil {
		m.removedmilestones = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.milestones, ids[i])
		m.removedmilestones[ids[i]] = struct{}{}
	}
}

// RemovedMilestones returns the removed IDs of the "milestones" edge to the Milestone entity.
func (m *CreatorMutation) RemovedMilestonesIDs() (ids []int) {
	for id := range m.removedmilestones {
		ids = append(ids, id)
	}
	return
}

// MilestonesIDs returns the "milestones" edge IDs in the mutation.
func (m *CreatorMutation) MilestonesIDs() (ids []int) {
	for id := range m.milestones {
		ids = append(ids, id)
	}
	return
}

// ResetMilestones resets all changes to the "milestones" edge.
func (m *CreatorMutation) ResetMilestones() {
	m.milestones = nil
	m.clearedmilestones = false
	m.removedmilestones = nil
}

// AddKitIDs adds the "kits" edge to the OnboardingKit entity by ids.
func (m *CreatorMutation) AddKitIDs(ids ...int) {
	if m.kits == nil {
		m.kits = make(map[int]struct{})
	}
	for i := range ids {
		m.kits[ids[i]] = struct{}{}
	}
}

// ClearKits clears the "kits" edge to the OnboardingKit entity.
func (m *CreatorMutation) ClearKits() {
	m.clearedkits = true
}

// KitsCleared reports if the "kits" edge to the OnboardingKit entity was cleared.
func (m *CreatorMutation) KitsCleared() bool {
	return m.clearedkits
}

// RemoveKitIDs removes the "kits" edge to the OnboardingKit entity by IDs.
func (m *CreatorMutation) RemoveKitIDs(ids ...int) {
	if m.removedkits == nil {
		m.removedkits = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.kits, ids[i])
		m.removedkits[ids[i]] = struct{}{}
	}
}

// RemovedKits returns the removed IDs of the "kits" edge to the OnboardingKit entity.
func (m *CreatorMutation) RemovedKitsIDs() (ids []int) {
	for id := range m.removedkits {
		ids = append(ids, id)
	}
	return
}

// KitsIDs returns the "kits" edge IDs in the mutation.
func (m *CreatorMutation) KitsIDs() (ids []int) {
	for id := range m.kits {
		ids = append(ids, id)
	}
	return
}

// ResetKits resets all changes to the "kits" edge.
func (m *CreatorMutation) ResetKits() {
	m.kits = nil
	m.clearedkits = false
	m.removedkits = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *CreatorMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *CreatorMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *CreatorMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *CreatorMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *CreatorMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *CreatorMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *CreatorMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// Where appends a list predicates to the CreatorMutation builder.
func (m *CreatorMutation) Where(ps ...predicate.Creator) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreatorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreatorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Creator, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreatorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreatorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Creator).
func (m *CreatorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreatorMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, creator.FieldName)
	}
	if m.email != nil {
		fields = append(fields, creator.FieldEmail)
	}
	if m.company != nil {
		fields = append(fields, creator.FieldCompany)
	}
	if m.journey_stage != nil {
		fields = append(fields, creator.FieldJourneyStage)
	}
	if m.journey_progress != nil {
		fields = append(fields, creator.FieldJourneyProgress)
	}
	if m.health_score != nil {
		fields = append(fields, creator.FieldHealthScore)
	}
	if m.health_factors != nil {
		fields = append(fields, creator.FieldHealthFactors)
	}
	if m.health_updated_at != nil {
		fields = append(fields, creator.FieldHealthUpdatedAt)
	}
	if m.converted_from_lead_id != nil {
		fields = append(fields, creator.FieldConvertedFromLeadID)
	}
	if m.created_at != nil {
		fields = append(fields, creator.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creator.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreatorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creator.FieldName:
		return m.Name()
	case creator.FieldEmail:
		return m.Email()
	case creator.FieldCompany:
		return m.Company()
	case creator.FieldJourneyStage:
		return m.JourneyStage()
	case creator.FieldJourneyProgress:
		return m.JourneyProgress()
	case creator.FieldHealthScore:
		return m.HealthScore()
	case creator.FieldHealthFactors:
		return m.HealthFactors()
	case creator.FieldHealthUpdatedAt:
		return m.HealthUpdatedAt()
	case creator.FieldConvertedFromLeadID:
		return m.ConvertedFromLeadID()
	case creator.FieldCreatedAt:
		return m.CreatedAt()
	case creator.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreatorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creator.FieldName:
		return m.OldName(ctx)
	case creator.FieldEmail:
		return m.OldEmail(ctx)
	case creator.FieldCompany:
		return m.OldCompany(ctx)
	case creator.FieldJourneyStage:
		return m.OldJourneyStage(ctx)
	case creator.FieldJourneyProgress:
		return m.OldJourneyProgress(ctx)
	case creator.FieldHealthScore:
		return m.OldHealthScore(ctx)
	case creator.FieldHealthFactors:
		return m.OldHealthFactors(ctx)
	case creator.FieldHealthUpdatedAt:
		return m.OldHealthUpdatedAt(ctx)
	case creator.FieldConvertedFromLeadID:
		return m.OldConvertedFromLeadID(ctx)
	case creator.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creator.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Creator field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreatorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creator.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case creator.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case creator.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case creator.FieldJourneyStage:
		v, ok := value.(creator.JourneyStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJourneyStage(v)
		return nil
	case creator.FieldJourneyProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJourneyProgress(v)
		return nil
	case creator.FieldHealthScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthScore(v)
		return nil
	case creator.FieldHealthFactors:
		v, ok := value.(map[string]schema.HealthFactor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthFactors(v)
		return nil
	case creator.FieldHealthUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthUpdatedAt(v)
		return nil
	case creator.FieldConvertedFromLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvertedFromLeadID(v)
		return nil
	case creator.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creator.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Creator field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreatorMutation) AddedFields() []string {
	var fields []string
	if m.addjourney_progress != nil {
		fields = append(fields, creator.FieldJourneyProgress)
	}
	if m.addhealth_score != nil {
		fields = append(fields, creator.FieldHealthScore)
	}
	if m.addconverted_from_lead_id != nil {
		fields = append(fields, creator.FieldConvertedFromLeadID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreatorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creator.FieldJourneyProgress:
		return m.AddedJourneyProgress()
	case creator.FieldHealthScore:
		return m.AddedHealthScore()
	case creator.FieldConvertedFromLeadID:
		return m.AddedConvertedFromLeadID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreatorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creator.FieldJourneyProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJourneyProgress(v)
		return nil
	case creator.FieldHealthScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHealthScore(v)
		return nil
	case creator.FieldConvertedFromLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConvertedFromLeadID(v)
		return nil
	}
	return fmt.Errorf("unknown Creator numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreatorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creator.FieldEmail) {
		fields = append(fields, creator.FieldEmail)
	}
	if m.FieldCleared(creator.FieldCompany) {
		fields = append(fields, creator.FieldCompany)
	}
	if m.FieldCleared(creator.FieldHealthFactors) {
		fields = append(fields, creator.FieldHealthFactors)
	}
	if m.FieldCleared(creator.FieldHealthUpdatedAt) {
		fields = append(fields, creator.FieldHealthUpdatedAt)
	}
	if m.FieldCleared(creator.FieldConvertedFromLeadID) {
		fields = append(fields, creator.FieldConvertedFromLeadID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreatorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreatorMutation) ClearField(name string) error {
	switch name {
	case creator.FieldEmail:
		m.ClearEmail()
		return nil
	case creator.FieldCompany:
		m.ClearCompany()
		return nil
	case creator.FieldHealthFactors:
		m.ClearHealthFactors()
		return nil
	case creator.FieldHealthUpdatedAt:
		m.ClearHealthUpdatedAt()
		return nil
	case creator.FieldConvertedFromLeadID:
		m.ClearConvertedFromLeadID()
		return nil
	}
	return fmt.Errorf("unknown Creator nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreatorMutation) ResetField(name string) error {
	switch name {
	case creator.FieldName:
		m.ResetName()
		return nil
	case creator.FieldEmail:
		m.ResetEmail()
		return nil
	case creator.FieldCompany:
		m.ResetCompany()
		return nil
	case creator.FieldJourneyStage:
		m.ResetJourneyStage()
		return nil
	case creator.FieldJourneyProgress:
		m.ResetJourneyProgress()
		return nil
	case creator.FieldHealthScore:
		m.ResetHealthScore()
		return nil
	case creator.FieldHealthFactors:
		m.ResetHealthFactors()
		return nil
	case creator.FieldHealthUpdatedAt:
		m.ResetHealthUpdatedAt()
		return nil
	case creator.FieldConvertedFromLeadID:
		m.ResetConvertedFromLeadID()
		return nil
	case creator.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creator.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Creator field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreatorMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.milestones != nil {
		edges = append(edges, creator.EdgeMilestones)
	}
	if m.kits != nil {
		edges = append(edges, creator.EdgeKits)
	}
	if m.activities != nil {
		edges = append(edges, creator.EdgeActivities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreatorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case creator.EdgeMilestones:
		ids := make([]ent.Value, 0, len(m.milestones))
		for id := range m.milestones {
			ids = append(ids, id)
		}
		return ids
	case creator.EdgeKits:
		ids := make([]ent.Value, 0, len(m.kits))
		for id := range m.kits {
			ids = append(ids, id)
		}
		return ids
	case creator.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreatorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmilestones != nil {
		edges = append(edges, creator.EdgeMilestones)
	}
	if m.removedkits != nil {
		edges = append(edges, creator.EdgeKits)
	}
	if m.removedactivities != nil {
		edges = append(edges, creator.EdgeActivities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreatorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case creator.EdgeMilestones:
		ids := make([]ent.Value, 0, len(m.removedmilestones))
		for id := range m.removedmilestones {
			ids = append(ids, id)
		}
		return ids
	case creator.EdgeKits:
		ids := make([]ent.Value, 0, len(m.removedkits))
		for id := range m.removedkits {
			ids = append(ids, id)
		}
		return ids
	case creator.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreatorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmilestones {
		edges = append(edges, creator.EdgeMilestones)
	}
	if m.clearedkits {
		edges = append(edges, creator.EdgeKits)
	}
	if m.clearedactivities {
		edges = append(edges, creator.EdgeActivities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreatorMutation) EdgeCleared(name string) bool {
	switch name {
	case creator.EdgeMilestones:
		return m.clearedmilestones
	case creator.EdgeKits:
		return m.clearedkits
	case creator.EdgeActivities:
		return m.clearedactivities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreatorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Creator unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreatorMutation) ResetEdge(name string) error {
	switch name {
	case creator.EdgeMilestones:
		m.ResetMilestones()
		return nil
	case creator.EdgeKits:
		m.ResetKits()
		return nil
	case creator.EdgeActivities:
		m.ResetActivities()
		return nil
	}
	return fmt.Errorf("unknown Creator edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                Op
	typ               string
	id                *int
	slot              *int
	addslot           *int
	name              *string
	status            *document.Status
	content           *string
	revision_notes    *string
	status_changed_at *time.Time
	approved_at       *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	kit               *int
	clearedkit        bool
	done              bool
	oldValue          func(context.Context) (*Document, error)
	predicates        []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKitID sets the "kit_id" field.
func (m *DocumentMutation) SetKitID(i int) {
	m.kit = &i
}

// KitID returns the value of the "kit_id" field in the mutation.
func (m *DocumentMutation) KitID() (r int, exists bool) {
	v := m.kit
	if v == nil {
		return
	}
	return *v, true
}

// OldKitID returns the old "kit_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldKitID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKitID: %w", err)
	}
	return oldValue.KitID, nil
}

// ResetKitID resets all changes to the "kit_id" field.
func (m *DocumentMutation) ResetKitID() {
	m.kit = nil
}

// SetSlot sets the "slot" field.
func (m *DocumentMutation) SetSlot(i int) {
	m.slot = &i
	m.addslot = nil
}

// Slot returns the value of the "slot" field in the mutation.
func (m *DocumentMutation) Slot() (r int, exists bool) {
	v := m.slot
	if v == nil {
		return
	}
	return *v, true
}

// OldSlot returns the old "slot" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSlot(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlot: %w", err)
	}
	return oldValue.Slot, nil
}

// AddSlot adds i to the "slot" field.
func (m *DocumentMutation) AddSlot(i int) {
	if m.addslot != nil {
		*m.addslot += i
	} else {
		m.addslot = &i
	}
}

// AddedSlot returns the value that was added to the "slot" field in this mutation.
func (m *DocumentMutation) AddedSlot() (r int, exists bool) {
	v := m.addslot
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlot resets all changes to the "slot" field.
func (m *DocumentMutation) ResetSlot() {
	m.slot = nil
	m.addslot = nil
}

// SetName sets the "name" field.
func (m *DocumentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(d document.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r document.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v document.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetContent sets the "content" field.
func (m *DocumentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *DocumentMutation) ClearContent() {
	m.content = nil
	m.clearedFields[document.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *DocumentMutation) ContentCleared() bool {
	_, ok := m.clearedFields[document.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, document.FieldContent)
}

// SetRevisionNotes sets the "revision_notes" field.
func (m *DocumentMutation) SetRevisionNotes(s string) {
	m.revision_notes = &s
}

// RevisionNotes returns the value of the "revision_notes" field in the mutation.
func (m *DocumentMutation) RevisionNotes() (r string, exists bool) {
	v := m.revision_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisionNotes returns the old "revision_notes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRevisionNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisionNotes: %w", err)
	}
	return oldValue.RevisionNotes, nil
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (m *DocumentMutation) ClearRevisionNotes() {
	m.revision_notes = nil
	m.clearedFields[document.FieldRevisionNotes] = struct{}{}
}

// RevisionNotesCleared returns if the "revision_notes" field was cleared in this mutation.
func (m *DocumentMutation) RevisionNotesCleared() bool {
	_, ok := m.clearedFields[document.FieldRevisionNotes]
	return ok
}

// ResetRevisionNotes resets all changes to the "revision_notes" field.
func (m *DocumentMutation) ResetRevisionNotes() {
	m.revision_notes = nil
	delete(m.clearedFields, document.FieldRevisionNotes)
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *DocumentMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *DocumentMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *DocumentMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetApprovedAt sets the "approved_at" field.
func (m *DocumentMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *DocumentMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *DocumentMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[document.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *DocumentMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *DocumentMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, document.FieldApprovedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearKit clears the "kit" edge to the OnboardingKit entity.
func (m *DocumentMutation) ClearKit() {
	m.clearedkit = true
	m.clearedFields[document.FieldKitID] = struct{}{}
}

// KitCleared reports if the "kit" edge to the OnboardingKit entity was cleared.
func (m *DocumentMutation) KitCleared() bool {
	return m.clearedkit
}

// KitIDs returns the "kit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KitID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) KitIDs() (ids []int) {
	if id := m.kit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKit resets all changes to the "kit" edge.
func (m *DocumentMutation) ResetKit() {
	m.kit = nil
	m.clearedkit = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.kit != nil {
		fields = append(fields, document.FieldKitID)
	}
	if m.slot != nil {
		fields = append(fields, document.FieldSlot)
	}
	if m.name != nil {
		fields = append(fields, document.FieldName)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.content != nil {
		fields = append(fields, document.FieldContent)
	}
	if m.revision_notes != nil {
		fields = append(fields, document.FieldRevisionNotes)
	}
	if m.status_changed_at != nil {
		fields = append(fields, document.FieldStatusChangedAt)
	}
	if m.approved_at != nil {
		fields = append(fields, document.FieldApprovedAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldKitID:
		return m.KitID()
	case document.FieldSlot:
		return m.Slot()
	case document.FieldName:
		return m.Name()
	case document.FieldStatus:
		return m.Status()
	case document.FieldContent:
		return m.Content()
	case document.FieldRevisionNotes:
		return m.RevisionNotes()
	case document.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case document.FieldApprovedAt:
		return m.ApprovedAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldKitID:
		return m.OldKitID(ctx)
	case document.FieldSlot:
		return m.OldSlot(ctx)
	case document.FieldName:
		return m.OldName(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldContent:
		return m.OldContent(ctx)
	case document.FieldRevisionNotes:
		return m.OldRevisionNotes(ctx)
	case document.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case document.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldKitID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKitID(v)
		return nil
	case document.FieldSlot:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlot(v)
		return nil
	case document.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(document.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case document.FieldRevisionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisionNotes(v)
		return nil
	case document.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case document.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addslot != nil {
		fields = append(fields, document.FieldSlot)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSlot:
		return m.AddedSlot()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSlot:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlot(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldContent) {
		fields = append(fields, document.FieldContent)
	}
	if m.FieldCleared(document.FieldRevisionNotes) {
		fields = append(fields, document.FieldRevisionNotes)
	}
	if m.FieldCleared(document.FieldApprovedAt) {
		fields = append(fields, document.FieldApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldContent:
		m.ClearContent()
		return nil
	case document.FieldRevisionNotes:
		m.ClearRevisionNotes()
		return nil
	case document.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldKitID:
		m.ResetKitID()
		return nil
	case document.FieldSlot:
		m.ResetSlot()
		return nil
	case document.FieldName:
		m.ResetName()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldContent:
		m.ResetContent()
		return nil
	case document.FieldRevisionNotes:
		m.ResetRevisionNotes()
		return nil
	case document.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case document.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.kit != nil {
		edges = append(edges, document.EdgeKit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeKit:
		if id := m.kit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedkit {
		edges = append(edges, document.EdgeKit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeKit:
		return m.clearedkit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeKit:
		m.ClearKit()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeKit:
		m.ResetKit()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	name                        *string
	email                       *string
	company                     *string
	source                      *string
	summary                     *string
	answers                     *map[string]string
	stage                       *lead.Stage
	stage_changed_at            *time.Time
	fit_score                   *int
	addfit_score                *int
	sentiment_score             *float64
	addsentiment_score          *float64
	ai_summary                  *string
	strengths                   *[]string
	appendstrengths             []string
	concerns                    *[]string
	appendconcerns              []string
	recommendations             *string
	estimated_revenue_potential *string
	analyzed_at                 *time.Time
	converted_client_id         *int
	addconverted_client_id      *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	stage_history               map[int]struct{}
	removedstage_history        map[int]struct{}
	clearedstage_history        bool
	done                        bool
	oldValue                    func(context.Context) (*Lead, error)
	predicates                  []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LeadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LeadMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetCompany sets the "company" field.
func (m *LeadMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *LeadMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *LeadMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[lead.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *LeadMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *LeadMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, lead.FieldCompany)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *LeadMutation) ClearSource() {
	m.source = nil
	m.clearedFields[lead.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *LeadMutation) SourceCleared() bool {
	_, ok := m.clearedFields[lead.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, lead.FieldSource)
}

// SetSummary sets the "summary" field.
func (m *LeadMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *LeadMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *LeadMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[lead.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *LeadMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[lead.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *LeadMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, lead.FieldSummary)
}

// SetAnswers sets the "answers" field.
func (m *LeadMutation) SetAnswers(value map[string]string) {
	m.answers = &value
}

// Answers returns the value of the "answers" field in the mutation.
func (m *LeadMutation) Answers() (r map[string]string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAnswers(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ClearAnswers clears the value of the "answers" field.
func (m *LeadMutation) ClearAnswers() {
	m.answers = nil
	m.clearedFields[lead.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *LeadMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[lead.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *LeadMutation) ResetAnswers() {
	m.answers = nil
	delete(m.clearedFields, lead.FieldAnswers)
}

// SetStage sets the "stage" field.
func (m *LeadMutation) SetStage(l lead.Stage) {
	m.stage = &l
}

// Stage returns the value of the "stage" field in the mutation.
func (m *LeadMutation) Stage() (r lead.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStage(ctx context.Context) (v lead.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *LeadMutation) ResetStage() {
	m.stage = nil
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (m *LeadMutation) SetStageChangedAt(t time.Time) {
	m.stage_changed_at = &t
}

// StageChangedAt returns the value of the "stage_changed_at" field in the mutation.
func (m *LeadMutation) StageChangedAt() (r time.Time, exists bool) {
	v := m.stage_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStageChangedAt returns the old "stage_changed_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStageChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageChangedAt: %w", err)
	}
	return oldValue.StageChangedAt, nil
}

// ResetStageChangedAt resets all changes to the "stage_changed_at" field.
func (m *LeadMutation) ResetStageChangedAt() {
	m.stage_changed_at = nil
}

// SetFitScore sets the "fit_score" field.
func (m *LeadMutation) SetFitScore(i int) {
	m.fit_score = &i
	m.addfit_score = nil
}

// FitScore returns the value of the "fit_score" field in the mutation.
func (m *LeadMutation) FitScore() (r int, exists bool) {
	v := m.fit_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFitScore returns the old "fit_score" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFitScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFitScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFitScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFitScore: %w", err)
	}
	return oldValue.FitScore, nil
}

// AddFitScore adds i to the "fit_score" field.
func (m *LeadMutation) AddFitScore(i int) {
	if m.addfit_score != nil {
		*m.addfit_score += i
	} else {
		m.addfit_score = &i
	}
}

// AddedFitScore returns the value that was added to the "fit_score" field in this mutation.
func (m *LeadMutation) AddedFitScore() (r int, exists bool) {
	v := m.addfit_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearFitScore clears the value of the "fit_score" field.
func (m *LeadMutation) ClearFitScore() {
	m.fit_score = nil
	m.addfit_score = nil
	m.clearedFields[lead.FieldFitScore] = struct{}{}
}

// FitScoreCleared returns if the "fit_score" field was cleared in this mutation.
func (m *LeadMutation) FitScoreCleared() bool {
	_, ok := m.clearedFields[lead.FieldFitScore]
	return ok
}

// ResetFitScore resets all changes to the "fit_score" field.
func (m *LeadMutation) ResetFitScore() {
	m.fit_score = nil
	m.addfit_score = nil
	delete(m.clearedFields, lead.FieldFitScore)
}

// SetSentimentScore sets the "sentiment_score" field.
func (m *LeadMutation) SetSentimentScore(f float64) {
	m.sentiment_score = &f
	m.addsentiment_score = nil
}

// SentimentScore returns the value of the "sentiment_score" field in the mutation.
func (m *LeadMutation) SentimentScore() (r float64, exists bool) {
	v := m.sentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentScore returns the old "sentiment_score" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSentimentScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentScore: %w", err)
	}
	return oldValue.SentimentScore, nil
}

// AddSentimentScore adds f to the "sentiment_score" field.
func (m *LeadMutation) AddSentimentScore(f float64) {
	if m.addsentiment_score != nil {
		*m.addsentiment_score += f
	} else {
		m.addsentiment_score = &f
	}
}

// AddedSentimentScore returns the value that was added to the "sentiment_score" field in this mutation.
func (m *LeadMutation) AddedSentimentScore() (r float64, exists bool) {
	v := m.addsentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSentimentScore clears the value of the "sentiment_score" field.
func (m *LeadMutation) ClearSentimentScore() {
	m.sentiment_score = nil
	m.addsentiment_score = nil
	m.clearedFields[lead.FieldSentimentScore] = struct{}{}
}

// SentimentScoreCleared returns if the "sentiment_score" field was cleared in this mutation.
func (m *LeadMutation) SentimentScoreCleared() bool {
	_, ok := m.clearedFields[lead.FieldSentimentScore]
	return ok
}

// ResetSentimentScore resets all changes to the "sentiment_score" field.
func (m *LeadMutation) ResetSentimentScore() {
	m.sentiment_score = nil
	m.addsentiment_score = nil
	delete(m.clearedFields, lead.FieldSentimentScore)
}

// SetAiSummary sets the "ai_summary" field.
func (m *LeadMutation) SetAiSummary(s string) {
	m.ai_summary = &s
}

// AiSummary returns the value of the "ai_summary" field in the mutation.
func (m *LeadMutation) AiSummary() (r string, exists bool) {
	v := m.ai_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAiSummary returns the old "ai_summary" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAiSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiSummary: %w", err)
	}
	return oldValue.AiSummary, nil
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (m *LeadMutation) ClearAiSummary() {
	m.ai_summary = nil
	m.clearedFields[lead.FieldAiSummary] = struct{}{}
}

// AiSummaryCleared returns if the "ai_summary" field was cleared in this mutation.
func (m *LeadMutation) AiSummaryCleared() bool {
	_, ok := m.clearedFields[lead.FieldAiSummary]
	return ok
}

// ResetAiSummary resets all changes to the "ai_summary" field.
func (m *LeadMutation) ResetAiSummary() {
	m.ai_summary = nil
	delete(m.clearedFields, lead.FieldAiSummary)
}

// SetStrengths sets the "strengths" field.
func (m *LeadMutation) SetStrengths(s []string) {
	m.strengths = &s
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *LeadMutation) Strengths() (r []string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds s to the "strengths" field.
func (m *LeadMutation) AppendStrengths(s []string) {
	m.appendstrengths = append(m.appendstrengths, s...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *LeadMutation) AppendedStrengths() ([]string, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *LeadMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[lead.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *LeadMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[lead.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *LeadMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, lead.FieldStrengths)
}

// SetConcerns sets the "concerns" field.
func (m *LeadMutation) SetConcerns(s []string) {
	m.concerns = &s
	m.appendconcerns = nil
}

// Concerns returns the value of the "concerns" field in the mutation.
func (m *LeadMutation) Concerns() (r []string, exists bool) {
	v := m.concerns
	if v == nil {
		return
	}
	return *v, true
}

// OldConcerns returns the old "concerns" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldConcerns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcerns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcerns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcerns: %w", err)
	}
	return oldValue.Concerns, nil
}

// AppendConcerns adds s to the "concerns" field.
func (m *LeadMutation) AppendConcerns(s []string) {
	m.appendconcerns = append(m.appendconcerns, s...)
}

// AppendedConcerns returns the list of values that were appended to the "concerns" field in this mutation.
func (m *LeadMutation) AppendedConcerns() ([]string, bool) {
	if len(m.appendconcerns) == 0 {
		return nil, false
	}
	return m.appendconcerns, true
}

// ClearConcerns clears the value of the "concerns" field.
func (m *LeadMutation) ClearConcerns() {
	m.concerns = nil
	m.appendconcerns = nil
	m.clearedFields[lead.FieldConcerns] = struct{}{}
}

// ConcernsCleared returns if the "concerns" field was cleared in this mutation.
func (m *LeadMutation) ConcernsCleared() bool {
	_, ok := m.clearedFields[lead.FieldConcerns]
	return ok
}

// ResetConcerns resets all changes to the "concerns" field.
func (m *LeadMutation) ResetConcerns() {
	m.concerns = nil
	m.appendconcerns = nil
	delete(m.clearedFields, lead.FieldConcerns)
}

// SetRecommendations sets the "recommendations" field.
func (m *LeadMutation) SetRecommendations(s string) {
	m.recommendations = &s
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *LeadMutation) Recommendations() (r string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldRecommendations(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *LeadMutation) ClearRecommendations() {
	m.recommendations = nil
	m.clearedFields[lead.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *LeadMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[lead.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *LeadMutation) ResetRecommendations() {
	m.recommendations = nil
	delete(m.clearedFields, lead.FieldRecommendations)
}

// SetEstimatedRevenuePotential sets the "estimated_revenue_potential" field.
func (m *LeadMutation) SetEstimatedRevenuePotential(s string) {
	m.estimated_revenue_potential = &s
}

// EstimatedRevenuePotential returns the value of the "estimated_revenue_potential" field in the mutation.
func (m *LeadMutation) EstimatedRevenuePotential() (r string, exists bool) {
	v := m.estimated_revenue_potential
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedRevenuePotential returns the old "estimated_revenue_potential" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEstimatedRevenuePotential(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedRevenuePotential is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedRevenuePotential requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedRevenuePotential: %w", err)
	}
	return oldValue.EstimatedRevenuePotential, nil
}

// ClearEstimatedRevenuePotential clears the value of the "estimated_revenue_potential" field.
func (m *LeadMutation) ClearEstimatedRevenuePotential() {
	m.estimated_revenue_potential = nil
	m.clearedFields[lead.FieldEstimatedRevenuePotential] = struct{}{}
}

// EstimatedRevenuePotentialCleared returns if the "estimated_revenue_potential" field was cleared in this mutation.
func (m *LeadMutation) EstimatedRevenuePotentialCleared() bool {
	_, ok := m.clearedFields[lead.FieldEstimatedRevenuePotential]
	return ok
}

// ResetEstimatedRevenuePotential resets all changes to the "estimated_revenue_potential" field.
func (m *LeadMutation) ResetEstimatedRevenuePotential() {
	m.estimated_revenue_potential = nil
	delete(m.clearedFields, lead.FieldEstimatedRevenuePotential)
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *LeadMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *LeadMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (m *LeadMutation) ClearAnalyzedAt() {
	m.analyzed_at = nil
	m.clearedFields[lead.FieldAnalyzedAt] = struct{}{}
}

// AnalyzedAtCleared returns if the "analyzed_at" field was cleared in this mutation.
func (m *LeadMutation) AnalyzedAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldAnalyzedAt]
	return ok
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *LeadMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
	delete(m.clearedFields, lead.FieldAnalyzedAt)
}

// SetConvertedClientID sets the "converted_client_id" field.
func (m *LeadMutation) SetConvertedClientID(i int) {
	m.converted_client_id = &i
	m.addconverted_client_id = nil
}

// ConvertedClientID returns the value of the "converted_client_id" field in the mutation.
func (m *LeadMutation) ConvertedClientID() (r int, exists bool) {
	v := m.converted_client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConvertedClientID returns the old "converted_client_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldConvertedClientID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvertedClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvertedClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvertedClientID: %w", err)
	}
	return oldValue.ConvertedClientID, nil
}

// AddConvertedClientID adds i to the "converted_client_id" field.
func (m *LeadMutation) AddConvertedClientID(i int) {
	if m.addconverted_client_id != nil {
		*m.addconverted_client_id += i
	} else {
		m.addconverted_client_id = &i
	}
}

// AddedConvertedClientID returns the value that was added to the "converted_client_id" field in this mutation.
func (m *LeadMutation) AddedConvertedClientID() (r int, exists bool) {
	v := m.addconverted_client_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearConvertedClientID clears the value of the "converted_client_id" field.
func (m *LeadMutation) ClearConvertedClientID() {
	m.converted_client_id = nil
	m.addconverted_client_id = nil
	m.clearedFields[lead.FieldConvertedClientID] = struct{}{}
}

// ConvertedClientIDCleared returns if the "converted_client_id" field was cleared in this mutation.
func (m *LeadMutation) ConvertedClientIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldConvertedClientID]
	return ok
}

// ResetConvertedClientID resets all changes to the "converted_client_id" field.
func (m *LeadMutation) ResetConvertedClientID() {
	m.converted_client_id = nil
	m.addconverted_client_id = nil
	delete(m.clearedFields, lead.FieldConvertedClientID)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStageHistoryIDs adds the "stage_history" edge to the LeadStageHistory entity by ids.
func (m *LeadMutation) AddStageHistoryIDs(ids ...int) {
	if m.stage_history == nil {
		m.stage_history = make(map[int]struct{})
	}
	for i := range ids {
		m.stage_history[ids[i]] = struct{}{}
	}
}

// ClearStageHistory clears the "stage_history" edge to the LeadStageHistory entity.
func (m *LeadMutation) ClearStageHistory() {
	m.clearedstage_history = true
}

// StageHistoryCleared reports if the "stage_history" edge to the LeadStageHistory entity was cleared.
func (m *LeadMutation) StageHistoryCleared() bool {
	return m.clearedstage_history
}

// RemoveStageHistoryIDs removes the "stage_history" edge to the LeadStageHistory entity by IDs.
func (m *LeadMutation) RemoveStageHistoryIDs(ids ...int) {
	if m.removedstage_history == nil {
		m.removedstage_history = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stage_history, ids[i])
		m.removedstage_history[ids[i]] = struct{}{}
	}
}

// RemovedStageHistory returns the removed IDs of the "stage_history" edge to the LeadStageHistory entity.
func (m *LeadMutation) RemovedStageHistoryIDs() (ids []int) {
	for id := range m.removedstage_history {
		ids = append(ids, id)
	}
	return
}

// StageHistoryIDs returns the "stage_history" edge IDs in the mutation.
func (m *LeadMutation) StageHistoryIDs() (ids []int) {
	for id := range m.stage_history {
		ids = append(ids, id)
	}
	return
}

// ResetStageHistory resets all changes to the "stage_history" edge.
func (m *LeadMutation) ResetStageHistory() {
	m.stage_history = nil
	m.clearedstage_history = false
	m.removedstage_history = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.name != nil {
		fields = append(fields, lead.FieldName)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.company != nil {
		fields = append(fields, lead.FieldCompany)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.summary != nil {
		fields = append(fields, lead.FieldSummary)
	}
	if m.answers != nil {
		fields = append(fields, lead.FieldAnswers)
	}
	if m.stage != nil {
		fields = append(fields, lead.FieldStage)
	}
	if m.stage_changed_at != nil {
		fields = append(fields, lead.FieldStageChangedAt)
	}
	if m.fit_score != nil {
		fields = append(fields, lead.FieldFitScore)
	}
	if m.sentiment_score != nil {
		fields = append(fields, lead.FieldSentimentScore)
	}
	if m.ai_summary != nil {
		fields = append(fields, lead.FieldAiSummary)
	}
	if m.strengths != nil {
		fields = append(fields, lead.FieldStrengths)
	}
	if m.concerns != nil {
		fields = append(fields, lead.FieldConcerns)
	}
	if m.recommendations != nil {
		fields = append(fields, lead.FieldRecommendations)
	}
	if m.estimated_revenue_potential != nil {
		fields = append(fields, lead.FieldEstimatedRevenuePotential)
	}
	if m.analyzed_at != nil {
		fields = append(fields, lead.FieldAnalyzedAt)
	}
	if m.converted_client_id != nil {
		fields = append(fields, lead.FieldConvertedClientID)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldName:
		return m.Name()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldCompany:
		return m.Company()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldSummary:
		return m.Summary()
	case lead.FieldAnswers:
		return m.Answers()
	case lead.FieldStage:
		return m.Stage()
	case lead.FieldStageChangedAt:
		return m.StageChangedAt()
	case lead.FieldFitScore:
		return m.FitScore()
	case lead.FieldSentimentScore:
		return m.SentimentScore()
	case lead.FieldAiSummary:
		return m.AiSummary()
	case lead.FieldStrengths:
		return m.Strengths()
	case lead.FieldConcerns:
		return m.Concerns()
	case lead.FieldRecommendations:
		return m.Recommendations()
	case lead.FieldEstimatedRevenuePotential:
		return m.EstimatedRevenuePotential()
	case lead.FieldAnalyzedAt:
		return m.AnalyzedAt()
	case lead.FieldConvertedClientID:
		return m.ConvertedClientID()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldName:
		return m.OldName(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldCompany:
		return m.OldCompany(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldSummary:
		return m.OldSummary(ctx)
	case lead.FieldAnswers:
		return m.OldAnswers(ctx)
	case lead.FieldStage:
		return m.OldStage(ctx)
	case lead.FieldStageChangedAt:
		return m.OldStageChangedAt(ctx)
	case lead.FieldFitScore:
		return m.OldFitScore(ctx)
	case lead.FieldSentimentScore:
		return m.OldSentimentScore(ctx)
	case lead.FieldAiSummary:
		return m.OldAiSummary(ctx)
	case lead.FieldStrengths:
		return m.OldStrengths(ctx)
	case lead.FieldConcerns:
		return m.OldConcerns(ctx)
	case lead.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case lead.FieldEstimatedRevenuePotential:
		return m.OldEstimatedRevenuePotential(ctx)
	case lead.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	case lead.FieldConvertedClientID:
		return m.OldConvertedClientID(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case lead.FieldAnswers:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case lead.FieldStage:
		v, ok := value.(lead.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case lead.FieldStageChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageChangedAt(v)
		return nil
	case lead.FieldFitScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFitScore(v)
		return nil
	case lead.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentScore(v)
		return nil
	case lead.FieldAiSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiSummary(v)
		return nil
	case lead.FieldStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case lead.FieldConcerns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcerns(v)
		return nil
	case lead.FieldRecommendations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case lead.FieldEstimatedRevenuePotential:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedRevenuePotential(v)
		return nil
	case lead.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	case lead.FieldConvertedClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvertedClientID(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addfit_score != nil {
		fields = append(fields, lead.FieldFitScore)
	}
	if m.addsentiment_score != nil {
		fields = append(fields, lead.FieldSentimentScore)
	}
	if m.addconverted_client_id != nil {
		fields = append(fields, lead.FieldConvertedClientID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldFitScore:
		return m.AddedFitScore()
	case lead.FieldSentimentScore:
		return m.AddedSentimentScore()
	case lead.FieldConvertedClientID:
		return m.AddedConvertedClientID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldFitScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFitScore(v)
		return nil
	case lead.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentScore(v)
		return nil
	case lead.FieldConvertedClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConvertedClientID(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldCompany) {
		fields = append(fields, lead.FieldCompany)
	}
	if m.FieldCleared(lead.FieldSource) {
		fields = append(fields, lead.FieldSource)
	}
	if m.FieldCleared(lead.FieldSummary) {
		fields = append(fields, lead.FieldSummary)
	}
	if m.FieldCleared(lead.FieldAnswers) {
		fields = append(fields, lead.FieldAnswers)
	}
	if m.FieldCleared(lead.FieldFitScore) {
		fields = append(fields, lead.FieldFitScore)
	}
	if m.FieldCleared(lead.FieldSentimentScore) {
		fields = append(fields, lead.FieldSentimentScore)
	}
	if m.FieldCleared(lead.FieldAiSummary) {
		fields = append(fields, lead.FieldAiSummary)
	}
	if m.FieldCleared(lead.FieldStrengths) {
		fields = append(fields, lead.FieldStrengths)
	}
	if m.FieldCleared(lead.FieldConcerns) {
		fields = append(fields, lead.FieldConcerns)
	}
	if m.FieldCleared(lead.FieldRecommendations) {
		fields = append(fields, lead.FieldRecommendations)
	}
	if m.FieldCleared(lead.FieldEstimatedRevenuePotential) {
		fields = append(fields, lead.FieldEstimatedRevenuePotential)
	}
	if m.FieldCleared(lead.FieldAnalyzedAt) {
		fields = append(fields, lead.FieldAnalyzedAt)
	}
	if m.FieldCleared(lead.FieldConvertedClientID) {
		fields = append(fields, lead.FieldConvertedClientID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldCompany:
		m.ClearCompany()
		return nil
	case lead.FieldSource:
		m.ClearSource()
		return nil
	case lead.FieldSummary:
		m.ClearSummary()
		return nil
	case lead.FieldAnswers:
		m.ClearAnswers()
		return nil
	case lead.FieldFitScore:
		m.ClearFitScore()
		return nil
	case lead.FieldSentimentScore:
		m.ClearSentimentScore()
		return nil
	case lead.FieldAiSummary:
		m.ClearAiSummary()
		return nil
	case lead.FieldStrengths:
		m.ClearStrengths()
		return nil
	case lead.FieldConcerns:
		m.ClearConcerns()
		return nil
	case lead.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case lead.FieldEstimatedRevenuePotential:
		m.ClearEstimatedRevenuePotential()
		return nil
	case lead.FieldAnalyzedAt:
		m.ClearAnalyzedAt()
		return nil
	case lead.FieldConvertedClientID:
		m.ClearConvertedClientID()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldName:
		m.ResetName()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldCompany:
		m.ResetCompany()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldSummary:
		m.ResetSummary()
		return nil
	case lead.FieldAnswers:
		m.ResetAnswers()
		return nil
	case lead.FieldStage:
		m.ResetStage()
		return nil
	case lead.FieldStageChangedAt:
		m.ResetStageChangedAt()
		return nil
	case lead.FieldFitScore:
		m.ResetFitScore()
		return nil
	case lead.FieldSentimentScore:
		m.ResetSentimentScore()
		return nil
	case lead.FieldAiSummary:
		m.ResetAiSummary()
		return nil
	case lead.FieldStrengths:
		m.ResetStrengths()
		return nil
	case lead.FieldConcerns:
		m.ResetConcerns()
		return nil
	case lead.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case lead.FieldEstimatedRevenuePotential:
		m.ResetEstimatedRevenuePotential()
		return nil
	case lead.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	case lead.FieldConvertedClientID:
		m.ResetConvertedClientID()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stage_history != nil {
		edges = append(edges, lead.EdgeStageHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeStageHistory:
		ids := make([]ent.Value, 0, len(m.stage_history))
		for id := range m.stage_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstage_history != nil {
		edges = append(edges, lead.EdgeStageHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeStageHistory:
		ids := make([]ent.Value, 0, len(m.removedstage_history))
		for id := range m.removedstage_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstage_history {
		edges = append(edges, lead.EdgeStageHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeStageHistory:
		return m.clearedstage_history
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeStageHistory:
		m.ResetStageHistory()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// LeadStageHistoryMutation represents an operation that mutates the LeadStageHistory nodes in the graph.
type LeadStageHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	old_stage     *leadstagehistory.OldStage
	new_stage     *leadstagehistory.NewStage
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	lead          *int
	clearedlead   bool
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*LeadStageHistory, error)
	predicates    []predicate.LeadStageHistory
}

var _ ent.Mutation = (*LeadStageHistoryMutation)(nil)

// leadstagehistoryOption allows management of the mutation configuration using functional options.
type leadstagehistoryOption func(*LeadStageHistoryMutation)

// newLeadStageHistoryMutation creates new mutation for the LeadStageHistory entity.
func newLeadStageHistoryMutation(c config, op Op, opts ...leadstagehistoryOption) *LeadStageHistoryMutation {
	m := &LeadStageHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadStageHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadStageHistoryID sets the ID field of the mutation.
func withLeadStageHistoryID(id int) leadstagehistoryOption {
	return func(m *LeadStageHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadStageHistory
		)
		m.oldValue = func(ctx context.Context) (*LeadStageHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadStageHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadStageHistory sets the old LeadStageHistory of the mutation.
func withLeadStageHistory(node *LeadStageHistory) leadstagehistoryOption {
	return func(m *LeadStageHistoryMutation) {
		m.oldValue = func(context.Context) (*LeadStageHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadStageHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadStageHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadStageHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadStageHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadStageHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadStageHistoryMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadStageHistoryMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadStageHistory entity.
// If the LeadStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStageHistoryMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadStageHistoryMutation) ResetLeadID() {
	m.lead = nil
}

// SetUserID sets the "user_id" field.
func (m *LeadStageHistoryMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LeadStageHistoryMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LeadStageHistory entity.
// If the LeadStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStageHistoryMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LeadStageHistoryMutation) ResetUserID() {
	m.user = nil
}

// SetOldStage sets the "old_stage" field.
func (m *LeadStageHistoryMutation) SetOldStage(ls leadstagehistory.OldStage) {
	m.old_stage = &ls
}

// OldStage returns the value of the "old_stage" field in the mutation.
func (m *LeadStageHistoryMutation) OldStage() (r leadstagehistory.OldStage, exists bool) {
	v := m.old_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStage returns the old "old_stage" field's value of the LeadStageHistory entity.
// If the LeadStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStageHistoryMutation) OldOldStage(ctx context.Context) (v *leadstagehistory.OldStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStage: %w", err)
	}
	return oldValue.OldStage, nil
}

// ClearOldStage clears the value of the "old_stage" field.
func (m *LeadStageHistoryMutation) ClearOldStage() {
	m.old_stage = nil
	m.clearedFields[leadstagehistory.FieldOldStage] = struct{}{}
}

// OldStageCleared returns if the "old_stage" field was cleared in this mutation.
func (m *LeadStageHistoryMutation) OldStageCleared() bool {
	_, ok := m.clearedFields[leadstagehistory.FieldOldStage]
	return ok
}

// ResetOldStage resets all changes to the "old_stage" field.
func (m *LeadStageHistoryMutation) ResetOldStage() {
	m.old_stage = nil
	delete(m.clearedFields, leadstagehistory.FieldOldStage)
}

// SetNewStage sets the "new_stage" field.
func (m *LeadStageHistoryMutation) SetNewStage(ls leadstagehistory.NewStage) {
	m.new_stage = &ls
}

// NewStage returns the value of the "new_stage" field in the mutation.
func (m *LeadStageHistoryMutation) NewStage() (r leadstagehistory.NewStage, exists bool) {
	v := m.new_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStage returns the old "new_stage" field's value of the LeadStageHistory entity.
// If the LeadStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStageHistoryMutation) OldNewStage(ctx context.Context) (v leadstagehistory.NewStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStage: %w", err)
	}
	return oldValue.NewStage, nil
}

// ResetNewStage resets all changes to the "new_stage" field.
func (m *LeadStageHistoryMutation) ResetNewStage() {
	m.new_stage = nil
}

// SetReason sets the "reason" field.
func (m *LeadStageHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *LeadStageHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the LeadStageHistory entity.
// If the LeadStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStageHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *LeadStageHistoryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[leadstagehistory.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *LeadStageHistoryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[leadstagehistory.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *LeadStageHistoryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, leadstagehistory.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadStageHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadStageHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadStageHistory entity.
// If the LeadStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStageHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadStageHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadStageHistoryMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadstagehistory.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadStageHistoryMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadStageHistoryMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadStageHistoryMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *LeadStageHistoryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[leadstagehistory.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *LeadStageHistoryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *LeadStageHistoryMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *LeadStageHistoryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the LeadStageHistoryMutation builder.
func (m *LeadStageHistoryMutation) Where(ps ...predicate.LeadStageHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadStageHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadStageHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadStageHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadStageHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadStageHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadStageHistory).
func (m *LeadStageHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadStageHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead != nil {
		fields = append(fields, leadstagehistory.FieldLeadID)
	}
	if m.user != nil {
		fields = append(fields, leadstagehistory.FieldUserID)
	}
	if m.old_stage != nil {
		fields = append(fields, leadstagehistory.FieldOldStage)
	}
	if m.new_stage != nil {
		fields = append(fields, leadstagehistory.FieldNewStage)
	}
	if m.reason != nil {
		fields = append(fields, leadstagehistory.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, leadstagehistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadStageHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadstagehistory.FieldLeadID:
		return m.LeadID()
	case leadstagehistory.FieldUserID:
		return m.UserID()
	case leadstagehistory.FieldOldStage:
		return m.OldStage()
	case leadstagehistory.FieldNewStage:
		return m.NewStage()
	case leadstagehistory.FieldReason:
		return m.Reason()
	case leadstagehistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadStageHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadstagehistory.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadstagehistory.FieldUserID:
		return m.OldUserID(ctx)
	case leadstagehistory.FieldOldStage:
		return m.OldOldStage(ctx)
	case leadstagehistory.FieldNewStage:
		return m.OldNewStage(ctx)
	case leadstagehistory.FieldReason:
		return m.OldReason(ctx)
	case leadstagehistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadStageHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStageHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadstagehistory.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadstagehistory.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case leadstagehistory.FieldOldStage:
		v, ok := value.(leadstagehistory.OldStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStage(v)
		return nil
	case leadstagehistory.FieldNewStage:
		v, ok := value.(leadstagehistory.NewStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStage(v)
		return nil
	case leadstagehistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case leadstagehistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadStageHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadStageHistoryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadStageHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStageHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LeadStageHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadStageHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadstagehistory.FieldOldStage) {
		fields = append(fields, leadstagehistory.FieldOldStage)
	}
	if m.FieldCleared(leadstagehistory.FieldReason) {
		fields = append(fields, leadstagehistory.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadStageHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadStageHistoryMutation) ClearField(name string) error {
	switch name {
	case leadstagehistory.FieldOldStage:
		m.ClearOldStage()
		return nil
	case leadstagehistory.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown LeadStageHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadStageHistoryMutation) ResetField(name string) error {
	switch name {
	case leadstagehistory.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadstagehistory.FieldUserID:
		m.ResetUserID()
		return nil
	case leadstagehistory.FieldOldStage:
		m.ResetOldStage()
		return nil
	case leadstagehistory.FieldNewStage:
		m.ResetNewStage()
		return nil
	case leadstagehistory.FieldReason:
		m.ResetReason()
		return nil
	case leadstagehistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadStageHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadStageHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lead != nil {
		edges = append(edges, leadstagehistory.EdgeLead)
	}
	if m.user != nil {
		edges = append(edges, leadstagehistory.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadStageHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadstagehistory.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case leadstagehistory.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadStageHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadStageHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadStageHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlead {
		edges = append(edges, leadstagehistory.EdgeLead)
	}
	if m.cleareduser {
		edges = append(edges, leadstagehistory.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadStageHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case leadstagehistory.EdgeLead:
		return m.clearedlead
	case leadstagehistory.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadStageHistoryMutation) ClearEdge(name string) error {
	switch name {
	case leadstagehistory.EdgeLead:
		m.ClearLead()
		return nil
	case leadstagehistory.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown LeadStageHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadStageHistoryMutation) ResetEdge(name string) error {
	switch name {
	case leadstagehistory.EdgeLead:
		m.ResetLead()
		return nil
	case leadstagehistory.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown LeadStageHistory edge %s", name)
}

// MilestoneMutation represents an operation that mutates the Milestone nodes in the graph.
type MilestoneMutation struct {
	config
	op            Op
	typ           string
	id            *int
	title         *string
	status        *milestone.Status
	due_date      *time.Time
	completed_at  *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	client        *int
	clearedclient bool
	done          bool
	oldValue      func(context.Context) (*Milestone, error)
	predicates    []predicate.Milestone
}

var _ ent.Mutation = (*MilestoneMutation)(nil)

// milestoneOption allows management of the mutation configuration using functional options.
type milestoneOption func(*MilestoneMutation)

// newMilestoneMutation creates new mutation for the Milestone entity.
func newMilestoneMutation(c config, op Op, opts ...milestoneOption) *MilestoneMutation {
	m := &MilestoneMutation{
		config:        c,
		op:            op,
		typ:           TypeMilestone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMilestoneID sets the ID field of the mutation.
func withMilestoneID(id int) milestoneOption {
	return func(m *MilestoneMutation) {
		var (
			err   error
			once  sync.Once
			value *Milestone
		)
		m.oldValue = func(ctx context.Context) (*Milestone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Milestone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMilestone sets the old Milestone of the mutation.
func withMilestone(node *Milestone) milestoneOption {
	return func(m *MilestoneMutation) {
		m.oldValue = func(context.Context) (*Milestone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MilestoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MilestoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MilestoneMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MilestoneMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Milestone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *MilestoneMutation) SetClientID(i int) {
	m.client = &i
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *MilestoneMutation) ClientID() (r int, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldClientID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *MilestoneMutation) ResetClientID() {
	m.client = nil
}

// SetTitle sets the "title" field.
func (m *MilestoneMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MilestoneMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MilestoneMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *MilestoneMutation) SetStatus(value milestone.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MilestoneMutation) Status() (r milestone.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldStatus(ctx context.Context) (v milestone.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MilestoneMutation) ResetStatus() {
	m.status = nil
}

// SetDueDate sets the "due_date" field.
func (m *MilestoneMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *MilestoneMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *MilestoneMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[milestone.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *MilestoneMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[milestone.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *MilestoneMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, milestone.FieldDueDate)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MilestoneMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MilestoneMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MilestoneMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[milestone.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MilestoneMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[milestone.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MilestoneMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, milestone.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MilestoneMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MilestoneMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MilestoneMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MilestoneMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MilestoneMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MilestoneMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the Creator entity.
func (m *MilestoneMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[milestone.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Creator entity was cleared.
func (m *MilestoneMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *MilestoneMutation) ClientIDs() (ids []int) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *MilestoneMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// Where appends a list predicates to the MilestoneMutation builder.
func (m *MilestoneMutation) Where(ps ...predicate.Milestone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MilestoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MilestoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Milestone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MilestoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MilestoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Milestone).
func (m *MilestoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MilestoneMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.client != nil {
		fields = append(fields, milestone.FieldClientID)
	}
	if m.title != nil {
		fields = append(fields, milestone.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, milestone.FieldStatus)
	}
	if m.due_date != nil {
		fields = append(fields, milestone.FieldDueDate)
	}
	if m.completed_at != nil {
		fields = append(fields, milestone.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, milestone.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, milestone.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MilestoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case milestone.FieldClientID:
		return m.ClientID()
	case milestone.FieldTitle:
		return m.Title()
	case milestone.FieldStatus:
		return m.Status()
	case milestone.FieldDueDate:
		return m.DueDate()
	case milestone.FieldCompletedAt:
		return m.CompletedAt()
	case milestone.FieldCreatedAt:
		return m.CreatedAt()
	case milestone.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MilestoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case milestone.FieldClientID:
		return m.OldClientID(ctx)
	case milestone.FieldTitle:
		return m.OldTitle(ctx)
	case milestone.FieldStatus:
		return m.OldStatus(ctx)
	case milestone.FieldDueDate:
		return m.OldDueDate(ctx)
	case milestone.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case milestone.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case milestone.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Milestone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MilestoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case milestone.FieldClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case milestone.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case milestone.FieldStatus:
		v, ok := value.(milestone.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case milestone.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case milestone.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case milestone.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case milestone.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Milestone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MilestoneMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MilestoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MilestoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Milestone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MilestoneMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(milestone.FieldDueDate) {
		fields = append(fields, milestone.FieldDueDate)
	}
	if m.FieldCleared(milestone.FieldCompletedAt) {
		fields = append(fields, milestone.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MilestoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MilestoneMutation) ClearField(name string) error {
	switch name {
	case milestone.FieldDueDate:
		m.ClearDueDate()
		return nil
	case milestone.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Milestone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MilestoneMutation) ResetField(name string) error {
	switch name {
	case milestone.FieldClientID:
		m.ResetClientID()
		return nil
	case milestone.FieldTitle:
		m.ResetTitle()
		return nil
	case milestone.FieldStatus:
		m.ResetStatus()
		return nil
	case milestone.FieldDueDate:
		m.ResetDueDate()
		return nil
	case milestone.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case milestone.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case milestone.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Milestone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MilestoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client != nil {
		edges = append(edges, milestone.EdgeClient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MilestoneMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case milestone.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MilestoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MilestoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MilestoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient {
		edges = append(edges, milestone.EdgeClient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MilestoneMutation) EdgeCleared(name string) bool {
	switch name {
	case milestone.EdgeClient:
		return m.clearedclient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MilestoneMutation) ClearEdge(name string) error {
	switch name {
	case milestone.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Milestone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MilestoneMutation) ResetEdge(name string) error {
	switch name {
	case milestone.EdgeClient:
		m.ResetClient()
		return nil
	}
	return fmt.Errorf("unknown Milestone edge %s", name)
}

// OnboardingKitMutation represents an operation that mutates the OnboardingKit nodes in the graph.
type OnboardingKitMutation struct {
	config
	op               Op
	typ              string
	id               *int
	month            *int
	addmonth         *int
	generated        *bool
	generated_at     *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	client           *int
	clearedclient    bool
	documents        map[int]struct{}
	removeddocuments map[int]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*OnboardingKit, error)
	predicates       []predicate.OnboardingKit
}

var _ ent.Mutation = (*OnboardingKitMutation)(nil)

// onboardingkitOption allows management of the mutation configuration using functional options.
type onboardingkitOption func(*OnboardingKitMutation)

// newOnboardingKitMutation creates new mutation for the OnboardingKit entity.
func newOnboardingKitMutation(c config, op Op, opts ...onboardingkitOption) *OnboardingKitMutation {
	m := &OnboardingKitMutation{
		config:        c,
		op:            op,
		typ:           TypeOnboardingKit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOnboardingKitID sets the ID field of the mutation.
func withOnboardingKitID(id int) onboardingkitOption {
	return func(m *OnboardingKitMutation) {
		var (
			err   error
			once  sync.Once
			value *OnboardingKit
		)
		m.oldValue = func(ctx context.Context) (*OnboardingKit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OnboardingKit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOnboardingKit sets the old OnboardingKit of the mutation.
func withOnboardingKit(node *OnboardingKit) onboardingkitOption {
	return func(m *OnboardingKitMutation) {
		m.oldValue = func(context.Context) (*OnboardingKit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OnboardingKitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OnboardingKitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OnboardingKitMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OnboardingKitMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OnboardingKit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *OnboardingKitMutation) SetClientID(i int) {
	m.client = &i
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *OnboardingKitMutation) ClientID() (r int, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the OnboardingKit entity.
// If the OnboardingKit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingKitMutation) OldClientID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *OnboardingKitMutation) ResetClientID() {
	m.client = nil
}

// SetMonth sets the "month" field.
func (m *OnboardingKitMutation) SetMonth(i int) {
	m.month = &i
	m.addmonth = nil
}

// Month returns the value of the "month" field in the mutation.
func (m *OnboardingKitMutation) Month() (r int, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the OnboardingKit entity.
// If the OnboardingKit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingKitMutation) OldMonth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// AddMonth adds i to the "month" field.
func (m *OnboardingKitMutation) AddMonth(i int) {
	if m.addmonth != nil {
		*m.addmonth += i
	} else {
		m.addmonth = &i
	}
}

// AddedMonth returns the value that was added to the "month" field in this mutation.
func (m *OnboardingKitMutation) AddedMonth() (r int, exists bool) {
	v := m.addmonth
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonth resets all changes to the "month" field.
func (m *OnboardingKitMutation) ResetMonth() {
	m.month = nil
	m.addmonth = nil
}

// SetGenerated sets the "generated" field.
func (m *OnboardingKitMutation) SetGenerated(b bool) {
	m.generated = &b
}

// Generated returns the value of the "generated" field in the mutation.
func (m *OnboardingKitMutation) Generated() (r bool, exists bool) {
	v := m.generated
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerated returns the old "generated" field's value of the OnboardingKit entity.
// If the OnboardingKit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingKitMutation) OldGenerated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerated: %w", err)
	}
	return oldValue.Generated, nil
}

// ResetGenerated resets all changes to the "generated" field.
func (m *OnboardingKitMutation) ResetGenerated() {
	m.generated = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *OnboardingKitMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *OnboardingKitMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the OnboardingKit entity.
// If the OnboardingKit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingKitMutation) OldGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (m *OnboardingKitMutation) ClearGeneratedAt() {
	m.generated_at = nil
	m.clearedFields[onboardingkit.FieldGeneratedAt] = struct{}{}
}

// GeneratedAtCleared returns if the "generated_at" field was cleared in this mutation.
func (m *OnboardingKitMutation) GeneratedAtCleared() bool {
	_, ok := m.clearedFields[onboardingkit.FieldGeneratedAt]
	return ok
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *OnboardingKitMutation) ResetGeneratedAt() {
	m.generated_at = nil
	delete(m.clearedFields, onboardingkit.FieldGeneratedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OnboardingKitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OnboardingKitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OnboardingKit entity.
// If the OnboardingKit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingKitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OnboardingKitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClient clears the "client" edge to the Creator entity.
func (m *OnboardingKitMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[onboardingkit.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Creator entity was cleared.
func (m *OnboardingKitMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *OnboardingKitMutation) ClientIDs() (ids []int) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *OnboardingKitMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *OnboardingKitMutation) AddDocumentIDs(ids ...int) {
	if m.documents == nil {
		m.documents = make(map[int]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *OnboardingKitMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *OnboardingKitMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *OnboardingKitMutation) RemoveDocumentIDs(ids ...int) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *OnboardingKitMutation) RemovedDocumentsIDs() (ids []int) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *OnboardingKitMutation) DocumentsIDs() (ids []int) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *OnboardingKitMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the OnboardingKitMutation builder.
func (m *OnboardingKitMutation) Where(ps ...predicate.OnboardingKit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OnboardingKitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OnboardingKitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OnboardingKit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OnboardingKitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OnboardingKitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OnboardingKit).
func (m *OnboardingKitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OnboardingKitMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.client != nil {
		fields = append(fields, onboardingkit.FieldClientID)
	}
	if m.month != nil {
		fields = append(fields, onboardingkit.FieldMonth)
	}
	if m.generated != nil {
		fields = append(fields, onboardingkit.FieldGenerated)
	}
	if m.generated_at != nil {
		fields = append(fields, onboardingkit.FieldGeneratedAt)
	}
	if m.created_at != nil {
		fields = append(fields, onboardingkit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OnboardingKitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case onboardingkit.FieldClientID:
		return m.ClientID()
	case onboardingkit.FieldMonth:
		return m.Month()
	case onboardingkit.FieldGenerated:
		return m.Generated()
	case onboardingkit.FieldGeneratedAt:
		return m.GeneratedAt()
	case onboardingkit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OnboardingKitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case onboardingkit.FieldClientID:
		return m.OldClientID(ctx)
	case onboardingkit.FieldMonth:
		return m.OldMonth(ctx)
	case onboardingkit.FieldGenerated:
		return m.OldGenerated(ctx)
	case onboardingkit.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case onboardingkit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OnboardingKit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OnboardingKitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case onboardingkit.FieldClientID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case onboardingkit.FieldMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case onboardingkit.FieldGenerated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerated(v)
		return nil
	case onboardingkit.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case onboardingkit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OnboardingKit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OnboardingKitMutation) AddedFields() []string {
	var fields []string
	if m.addmonth != nil {
		fields = append(fields, onboardingkit.FieldMonth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OnboardingKitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case onboardingkit.FieldMonth:
		return m.AddedMonth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OnboardingKitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case onboardingkit.FieldMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonth(v)
		return nil
	}
	return fmt.Errorf("unknown OnboardingKit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OnboardingKitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(onboardingkit.FieldGeneratedAt) {
		fields = append(fields, onboardingkit.FieldGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OnboardingKitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OnboardingKitMutation) ClearField(name string) error {
	switch name {
	case onboardingkit.FieldGeneratedAt:
		m.ClearGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown OnboardingKit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OnboardingKitMutation) ResetField(name string) error {
	switch name {
	case onboardingkit.FieldClientID:
		m.ResetClientID()
		return nil
	case onboardingkit.FieldMonth:
		m.ResetMonth()
		return nil
	case onboardingkit.FieldGenerated:
		m.ResetGenerated()
		return nil
	case onboardingkit.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case onboardingkit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OnboardingKit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OnboardingKitMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.client != nil {
		edges = append(edges, onboardingkit.EdgeClient)
	}
	if m.documents != nil {
		edges = append(edges, onboardingkit.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OnboardingKitMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case onboardingkit.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case onboardingkit.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OnboardingKitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, onboardingkit.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OnboardingKitMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case onboardingkit.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OnboardingKitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclient {
		edges = append(edges, onboardingkit.EdgeClient)
	}
	if m.cleareddocuments {
		edges = append(edges, onboardingkit.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OnboardingKitMutation) EdgeCleared(name string) bool {
	switch name {
	case onboardingkit.EdgeClient:
		return m.clearedclient
	case onboardingkit.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OnboardingKitMutation) ClearEdge(name string) error {
	switch name {
	case onboardingkit.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown OnboardingKit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OnboardingKitMutation) ResetEdge(name string) error {
	switch name {
	case onboardingkit.EdgeClient:
		m.ResetClient()
		return nil
	case onboardingkit.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown OnboardingKit edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	email                     *string
	name                      *string
	oauth_provider            *string
	oauth_id                  *string
	magic_link_token_hash     *string
	magic_link_expires_at     *time.Time
	last_login_at             *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	applications              map[int]struct{}
	removedapplications       map[int]struct{}
	clearedapplications       bool
	audit_logs                map[int]struct{}
	removedaudit_logs         map[int]struct{}
	clearedaudit_logs         bool
	lead_stage_changes        map[int]struct{}
	removedlead_stage_changes map[int]struct{}
	clearedlead_stage_changes bool
	done                      bool
	oldValue                  func(context.Context) (*User, error)
	predicates                []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *UserMutation) ClearName() {
	m.name = nil
	m.clearedFields[user.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *UserMutation) NameCleared() bool {
	_, ok := m.clearedFields[user.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, user.FieldName)
}

// SetOauthProvider sets the "oauth_provider" field.
func (m *UserMutation) SetOauthProvider(s string) {
	m.oauth_provider = &s
}

// OauthProvider returns the value of the "oauth_provider" field in the mutation.
func (m *UserMutation) OauthProvider() (r string, exists bool) {
	v := m.oauth_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldOauthProvider returns the old "oauth_provider" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOauthProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOauthProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOauthProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOauthProvider: %w", err)
	}
	return oldValue.OauthProvider, nil
}

// ClearOauthProvider clears the value of the "oauth_provider" field.
func (m *UserMutation) ClearOauthProvider() {
	m.oauth_provider = nil
	m.clearedFields[user.FieldOauthProvider] = struct{}{}
}

// OauthProviderCleared returns if the "oauth_provider" field was cleared in this mutation.
func (m *UserMutation) OauthProviderCleared() bool {
	_, ok := m.clearedFields[user.FieldOauthProvider]
	return ok
}

// ResetOauthProvider resets all changes to the "oauth_provider" field.
func (m *UserMutation) ResetOauthProvider() {
	m.oauth_provider = nil
	delete(m.clearedFields, user.FieldOauthProvider)
}

// SetOauthID sets the "oauth_id" field.
func (m *UserMutation) SetOauthID(s string) {
	m.oauth_id = &s
}

// OauthID returns the value of the "oauth_id" field in the mutation.
func (m *UserMutation) OauthID() (r string, exists bool) {
	v := m.oauth_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOauthID returns the old "oauth_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOauthID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOauthID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOauthID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOauthID: %w", err)
	}
	return oldValue.OauthID, nil
}

// ClearOauthID clears the value of the "oauth_id" field.
func (m *UserMutation) ClearOauthID() {
	m.oauth_id = nil
	m.clearedFields[user.FieldOauthID] = struct{}{}
}

// OauthIDCleared returns if the "oauth_id" field was cleared in this mutation.
func (m *UserMutation) OauthIDCleared() bool {
	_, ok := m.clearedFields[user.FieldOauthID]
	return ok
}

// ResetOauthID resets all changes to the "oauth_id" field.
func (m *UserMutation) ResetOauthID() {
	m.oauth_id = nil
	delete(m.clearedFields, user.FieldOauthID)
}

// SetMagicLinkTokenHash sets the "magic_link_token_hash" field.
func (m *UserMutation) SetMagicLinkTokenHash(s string) {
	m.magic_link_token_hash = &s
}

// MagicLinkTokenHash returns the value of the "magic_link_token_hash" field in the mutation.
func (m *UserMutation) MagicLinkTokenHash() (r string, exists bool) {
	v := m.magic_link_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldMagicLinkTokenHash returns the old "magic_link_token_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMagicLinkTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMagicLinkTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMagicLinkTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMagicLinkTokenHash: %w", err)
	}
	return oldValue.MagicLinkTokenHash, nil
}

// ClearMagicLinkTokenHash clears the value of the "magic_link_token_hash" field.
func (m *UserMutation) ClearMagicLinkTokenHash() {
	m.magic_link_token_hash = nil
	m.clearedFields[user.FieldMagicLinkTokenHash] = struct{}{}
}

// MagicLinkTokenHashCleared returns if the "magic_link_token_hash" field was cleared in this mutation.
func (m *UserMutation) MagicLinkTokenHashCleared() bool {
	_, ok := m.clearedFields[user.FieldMagicLinkTokenHash]
	return ok
}

// ResetMagicLinkTokenHash resets all changes to the "magic_link_token_hash" field.
func (m *UserMutation) ResetMagicLinkTokenHash() {
	m.magic_link_token_hash = nil
	delete(m.clearedFields, user.FieldMagicLinkTokenHash)
}

// SetMagicLinkExpiresAt sets the "magic_link_expires_at" field.
func (m *UserMutation) SetMagicLinkExpiresAt(t time.Time) {
	m.magic_link_expires_at = &t
}

// MagicLinkExpiresAt returns the value of the "magic_link_expires_at" field in the mutation.
func (m *UserMutation) MagicLinkExpiresAt() (r time.Time, exists bool) {
	v := m.magic_link_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMagicLinkExpiresAt returns the old "magic_link_expires_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMagicLinkExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMagicLinkExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMagicLinkExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMagicLinkExpiresAt: %w", err)
	}
	return oldValue.MagicLinkExpiresAt, nil
}

// ClearMagicLinkExpiresAt clears the value of the "magic_link_expires_at" field.
func (m *UserMutation) ClearMagicLinkExpiresAt() {
	m.magic_link_expires_at = nil
	m.clearedFields[user.FieldMagicLinkExpiresAt] = struct{}{}
}

// MagicLinkExpiresAtCleared returns if the "magic_link_expires_at" field was cleared in this mutation.
func (m *UserMutation) MagicLinkExpiresAtCleared() bool {
	_, ok := m.clearedFields[user.FieldMagicLinkExpiresAt]
	return ok
}

// ResetMagicLinkExpiresAt resets all changes to the "magic_link_expires_at" field.
func (m *UserMutation) ResetMagicLinkExpiresAt() {
	m.magic_link_expires_at = nil
	delete(m.clearedFields, user.FieldMagicLinkExpiresAt)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the Application entity by ids.
func (m *UserMutation) AddApplicationIDs(ids ...int) {
	if m.applications == nil {
		m.applications = make(map[int]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the Application entity.
func (m *UserMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the Application entity was cleared.
func (m *UserMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the Application entity by IDs.
func (m *UserMutation) RemoveApplicationIDs(ids ...int) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the Application entity.
func (m *UserMutation) RemovedApplicationsIDs() (ids []int) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *UserMutation) ApplicationsIDs() (ids []int) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *UserMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *UserMutation) AddAuditLogIDs(ids ...int) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *UserMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *UserMutation) RemoveAuditLogIDs(ids ...int) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) RemovedAuditLogsIDs() (ids []int) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *UserMutation) AuditLogsIDs() (ids []int) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *UserMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// AddLeadStageChangeIDs adds the "lead_stage_changes" edge to the LeadStageHistory entity by ids.
func (m *UserMutation) AddLeadStageChangeIDs(ids ...int) {
	if m.lead_stage_changes == nil {
		m.lead_stage_changes = make(map[int]struct{})
	}
	for i := range ids {
		m.lead_stage_changes[ids[i]] = struct{}{}
	}
}

// ClearLeadStageChanges clears the "lead_stage_changes" edge to the LeadStageHistory entity.
func (m *UserMutation) ClearLeadStageChanges() {
	m.clearedlead_stage_changes = true
}

// LeadStageChangesCleared reports if the "lead_stage_changes" edge to the LeadStageHistory entity was cleared.
func (m *UserMutation) LeadStageChangesCleared() bool {
	return m.clearedlead_stage_changes
}

// RemoveLeadStageChangeIDs removes the "lead_stage_changes" edge to the LeadStageHistory entity by IDs.
func (m *UserMutation) RemoveLeadStageChangeIDs(ids ...int) {
	if m.removedlead_stage_changes == nil {
		m.removedlead_stage_changes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lead_stage_changes, ids[i])
		m.removedlead_stage_changes[ids[i]] = struct{}{}
	}
}

// RemovedLeadStageChanges returns the removed IDs of the "lead_stage_changes" edge to the LeadStageHistory entity.
func (m *UserMutation) RemovedLeadStageChangesIDs() (ids []int) {
	for id := range m.removedlead_stage_changes {
		ids = append(ids, id)
	}
	return
}

// LeadStageChangesIDs returns the "lead_stage_changes" edge IDs in the mutation.
func (m *UserMutation) LeadStageChangesIDs() (ids []int) {
	for id := range m.lead_stage_changes {
		ids = append(ids, id)
	}
	return
}

// ResetLeadStageChanges resets all changes to the "lead_stage_changes" edge.
func (m *UserMutation) ResetLeadStageChanges() {
	m.lead_stage_changes = nil
	m.clearedlead_stage_changes = false
	m.removedlead_stage_changes = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.oauth_provider != nil {
		fields = append(fields, user.FieldOauthProvider)
	}
	if m.oauth_id != nil {
		fields = append(fields, user.FieldOauthID)
	}
	if m.magic_link_token_hash != nil {
		fields = append(fields, user.FieldMagicLinkTokenHash)
	}
	if m.magic_link_expires_at != nil {
		fields = append(fields, user.FieldMagicLinkExpiresAt)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldOauthProvider:
		return m.OauthProvider()
	case user.FieldOauthID:
		return m.OauthID()
	case user.FieldMagicLinkTokenHash:
		return m.MagicLinkTokenHash()
	case user.FieldMagicLinkExpiresAt:
		return m.MagicLinkExpiresAt()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldOauthProvider:
		return m.OldOauthProvider(ctx)
	case user.FieldOauthID:
		return m.OldOauthID(ctx)
	case user.FieldMagicLinkTokenHash:
		return m.OldMagicLinkTokenHash(ctx)
	case user.FieldMagicLinkExpiresAt:
		return m.OldMagicLinkExpiresAt(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldOauthProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOauthProvider(v)
		return nil
	case user.FieldOauthID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOauthID(v)
		return nil
	case user.FieldMagicLinkTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMagicLinkTokenHash(v)
		return nil
	case user.FieldMagicLinkExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMagicLinkExpiresAt(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldName) {
		fields = append(fields, user.FieldName)
	}
	if m.FieldCleared(user.FieldOauthProvider) {
		fields = append(fields, user.FieldOauthProvider)
	}
	if m.FieldCleared(user.FieldOauthID) {
		fields = append(fields, user.FieldOauthID)
	}
	if m.FieldCleared(user.FieldMagicLinkTokenHash) {
		fields = append(fields, user.FieldMagicLinkTokenHash)
	}
	if m.FieldCleared(user.FieldMagicLinkExpiresAt) {
		fields = append(fields, user.FieldMagicLinkExpiresAt)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldName:
		m.ClearName()
		return nil
	case user.FieldOauthProvider:
		m.ClearOauthProvider()
		return nil
	case user.FieldOauthID:
		m.ClearOauthID()
		return nil
	case user.FieldMagicLinkTokenHash:
		m.ClearMagicLinkTokenHash()
		return nil
	case user.FieldMagicLinkExpiresAt:
		m.ClearMagicLinkExpiresAt()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldOauthProvider:
		m.ResetOauthProvider()
		return nil
	case user.FieldOauthID:
		m.ResetOauthID()
		return nil
	case user.FieldMagicLinkTokenHash:
		m.ResetMagicLinkTokenHash()
		return nil
	case user.FieldMagicLinkExpiresAt:
		m.ResetMagicLinkExpiresAt()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.applications != nil {
		edges = append(edges, user.EdgeApplications)
	}
	if m.audit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	if m.lead_stage_changes != nil {
		edges = append(edges, user.EdgeLeadStageChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadStageChanges:
		ids := make([]ent.Value, 0, len(m.lead_stage_changes))
		for id := range m.lead_stage_changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedapplications != nil {
		edges = append(edges, user.EdgeApplications)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	if m.removedlead_stage_changes != nil {
		edges = append(edges, user.EdgeLeadStageChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeadStageChanges:
		ids := make([]ent.Value, 0, len(m.removedlead_stage_changes))
		for id := range m.removedlead_stage_changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedapplications {
		edges = append(edges, user.EdgeApplications)
	}
	if m.clearedaudit_logs {
		edges = append(edges, user.EdgeAuditLogs)
	}
	if m.clearedlead_stage_changes {
		edges = append(edges, user.EdgeLeadStageChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeApplications:
		return m.clearedapplications
	case user.EdgeAuditLogs:
		return m.clearedaudit_logs
	case user.EdgeLeadStageChanges:
		return m.clearedlead_stage_changes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeApplications:
		m.ResetApplications()
		return nil
	case user.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	case user.EdgeLeadStageChanges:
		m.ResetLeadStageChanges()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
