// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/creatorbridge/api/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Activity is the client for interacting with the Activity builders.
	Activity *ActivityClient
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Creator is the client for interacting with the Creator builders.
	Creator *CreatorClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Lead is the client for interacting with the Lead builders.
	Lead *LeadClient
	// LeadStageHistory is the client for interacting with the LeadStageHistory builders.
	LeadStageHistory *LeadStageHistoryClient
	// Milestone is the client for interacting with the Milestone builders.
	Milestone *MilestoneClient
	// OnboardingKit is the client for interacting with the OnboardingKit builders.
	OnboardingKit *OnboardingKitClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Activity = NewActivityClient(c.config)
	c.Application = NewApplicationClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Creator = NewCreatorClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Lead = NewLeadClient(c.config)
	c.LeadStageHistory = NewLeadStageHistoryClient(c.config)
	c.Milestone = NewMilestoneClient(c.config)
	c.OnboardingKit = NewOnboardingKitClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Activity:         NewActivityClient(cfg),
		Application:      NewApplicationClient(cfg),
		AuditLog:         NewAuditLogClient(cfg),
		Creator:          NewCreatorClient(cfg),
		Document:         NewDocumentClient(cfg),
		Lead:             NewLeadClient(cfg),
		LeadStageHistory: NewLeadStageHistoryClient(cfg),
		Milestone:        NewMilestoneClient(cfg),
		OnboardingKit:    NewOnboardingKitClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Activity:         NewActivityClient(cfg),
		Application:      NewApplicationClient(cfg),
		AuditLog:         NewAuditLogClient(cfg),
		Creator:          NewCreatorClient(cfg),
		Document:         NewDocumentClient(cfg),
		Lead:             NewLeadClient(cfg),
		LeadStageHistory: NewLeadStageHistoryClient(cfg),
		Milestone:        NewMilestoneClient(cfg),
		OnboardingKit:    NewOnboardingKitClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Activity.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Activity, c.Application, c.AuditLog, c.Creator, c.Document, c.Lead,
		c.LeadStageHistory, c.Milestone, c.OnboardingKit, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Activity, c.Application, c.AuditLog, c.Creator, c.Document, c.Lead,
		c.LeadStageHistory, c.Milestone, c.OnboardingKit, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityMutation:
		return c.Activity.mutate(ctx, m)
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *CreatorMutation:
		return c.Creator.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *LeadMutation:
		return c.Lead.mutate(ctx, m)
	case *LeadStageHistoryMutation:
		return c.LeadStageHistory.mutate(ctx, m)
	case *MilestoneMutation:
		return c.Milestone.mutate(ctx, m)
	case *OnboardingKitMutation:
		return c.OnboardingKit.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityClient is a client for the Activity schema.
type ActivityClient struct {
	config
}

// NewActivityClient returns a client for the Activity from the given config.
func NewActivityClient(c config) *ActivityClient {
	return &ActivityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activity.Hooks(f(g(h())))`.
func (c *ActivityClient) Use(hooks ...Hook) {
	c.hooks.Activity = append(c.hooks.Activity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activity.Intercept(f(g(h())))`.
func (c *ActivityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Activity = append(c.inters.Activity, interceptors...)
}

// Create returns a builder for creating a Activity entity.
func (c *ActivityClient) Create() *ActivityCreate {
	mutation := newActivityMutation(c.config, OpCreate)
	return &ActivityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Activity entities.
func (c *ActivityClient) CreateBulk(builders ...*ActivityCreate) *ActivityCreateBulk {
	return &ActivityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityClient) MapCreateBulk(slice any, setFunc func(*ActivityCreate, int)) *ActivityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityCreateBulk{err: fmt.Errorf("calling to ActivityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Activity.
func (c *ActivityClient) Update() *ActivityUpdate {
	mutation := newActivityMutation(c.config, OpUpdate)
	return &ActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityClient) UpdateOne(_m *Activity) *ActivityUpdateOne {
	mutation := newActivityMutation(c.config, OpUpdateOne, withActivity(_m))
	return &ActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityClient) UpdateOneID(id int) *ActivityUpdateOne {
	mutation := newActivityMutation(c.config, OpUpdateOne, withActivityID(id))
	return &ActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Activity.
func (c *ActivityClient) Delete() *ActivityDelete {
	mutation := newActivityMutation(c.config, OpDelete)
	return &ActivityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityClient) DeleteOne(_m *Activity) *ActivityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityClient) DeleteOneID(id int) *ActivityDeleteOne {
	builder := c.Delete().Where(activity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityDeleteOne{builder}
}

// Query returns a query builder for Activity.
func (c *ActivityClient) Query() *ActivityQuery {
	return &ActivityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivity},
		inters: c.Interceptors(),
	}
}

// Get returns a Activity entity by its id.
func (c *ActivityClient) Get(ctx context.Context, id int) (*Activity, error) {
	return c.Query().Where(activity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityClient) GetX(ctx context.Context, id int) *Activity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a Activity.
func (c *ActivityClient) QueryClient(_m *Activity) *CreatorQuery {
	query := (&CreatorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(activity.Table, activity.FieldID, id),
			sqlgraph.To(creator.Table, creator.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, activity.ClientTable, activity.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActivityClient) Hooks() []Hook {
	return c.hooks.Activity
}

// Interceptors returns the client interceptors.
func (c *ActivityClient) Interceptors() []Interceptor {
	return c.inters.Activity
}

func (c *ActivityClient) mutate(ctx context.Context, m *ActivityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Activity mutation op: %q", m.Op())
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(_m *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(_m))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id int) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(_m *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id int) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id int) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id int) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplicant queries the applicant edge of a Application.
func (c *ApplicationClient) QueryApplicant(_m *Application) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, application.ApplicantTable, application.ApplicantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a AuditLog.
func (c *AuditLogClient) QueryUser(_m *AuditLog) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditlog.Table, auditlog.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditlog.UserTable, auditlog.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// CreatorClient is a client for the Creator schema.
type CreatorClient struct {
	config
}

// NewCreatorClient returns a client for the Creator from the given config.
func NewCreatorClient(c config) *CreatorClient {
	return &CreatorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creator.Hooks(f(g(h())))`.
func (c *CreatorClient) Use(hooks ...Hook) {
	c.hooks.Creator = append(c.hooks.Creator, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creator.Intercept(f(g(h())))`.
func (c *CreatorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Creator = append(c.inters.Creator, interceptors...)
}

// Create returns a builder for creating a Creator entity.
func (c *CreatorClient) Create() *CreatorCreate {
	mutation := newCreatorMutation(c.config, OpCreate)
	return &CreatorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Creator entities.
func (c *CreatorClient) CreateBulk(builders ...*CreatorCreate) *CreatorCreateBulk {
	return &CreatorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreatorClient) MapCreateBulk(slice any, setFunc func(*CreatorCreate, int)) *CreatorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreatorCreateBulk{err: fmt.Errorf("calling to CreatorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreatorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreatorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Creator.
func (c *CreatorClient) Update() *CreatorUpdate {
	mutation := newCreatorMutation(c.config, OpUpdate)
	return &CreatorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreatorClient) UpdateOne(_m *Creator) *CreatorUpdateOne {
	mutation := newCreatorMutation(c.config, OpUpdateOne, withCreator(_m))
	return &CreatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreatorClient) UpdateOneID(id int) *CreatorUpdateOne {
	mutation := newCreatorMutation(c.config, OpUpdateOne, withCreatorID(id))
	return &CreatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Creator.
func (c *CreatorClient) Delete() *CreatorDelete {
	mutation := newCreatorMutation(c.config, OpDelete)
	return &CreatorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreatorClient) DeleteOne(_m *Creator) *CreatorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreatorClient) DeleteOneID(id int) *CreatorDeleteOne {
	builder := c.Delete().Where(creator.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreatorDeleteOne{builder}
}

// Query returns a query builder for Creator.
func (c *CreatorClient) Query() *CreatorQuery {
	return &CreatorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreator},
		inters: c.Interceptors(),
	}
}

// Get returns a Creator entity by its id.
func (c *CreatorClient) Get(ctx context.Context, id int) (*Creator, error) {
	return c.Query().Where(creator.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreatorClient) GetX(ctx context.Context, id int) *Creator {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMilestones queries the milestones edge of a Creator.
func (c *CreatorClient) QueryMilestones(_m *Creator) *MilestoneQuery {
	query := (&MilestoneClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creator.Table, creator.FieldID, id),
			sqlgraph.To(milestone.Table, milestone.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creator.MilestonesTable, creator.MilestonesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKits queries the kits edge of a Creator.
func (c *CreatorClient) QueryKits(_m *Creator) *OnboardingKitQuery {
	query := (&OnboardingKitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creator.Table, creator.FieldID, id),
			sqlgraph.To(onboardingkit.Table, onboardingkit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creator.KitsTable, creator.KitsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivities queries the activities edge of a Creator.
func (c *CreatorClient) QueryActivities(_m *Creator) *ActivityQuery {
	query := (&ActivityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creator.Table, creator.FieldID, id),
			sqlgraph.To(activity.Table, activity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creator.ActivitiesTable, creator.ActivitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CreatorClient) Hooks() []Hook {
	return c.hooks.Creator
}

// Interceptors returns the client interceptors.
func (c *CreatorClient) Interceptors() []Interceptor {
	return c.inters.Creator
}

func (c *CreatorClient) mutate(ctx context.Context, m *CreatorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreatorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreatorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreatorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Creator mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id int) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id int) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id int) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id int) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKit queries the kit edge of a Document.
func (c *DocumentClient) QueryKit(_m *Document) *OnboardingKitQuery {
	query := (&OnboardingKitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(onboardingkit.Table, onboardingkit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.KitTable, document.KitColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// LeadClient is a client for the Lead schema.
type LeadClient struct {
	config
}

// NewLeadClient returns a client for the Lead from the given config.
func NewLeadClient(c config) *LeadClient {
	return &LeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lead.Hooks(f(g(h())))`.
func (c *LeadClient) Use(hooks ...Hook) {
	c.hooks.Lead = append(c.hooks.Lead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lead.Intercept(f(g(h())))`.
func (c *LeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lead = append(c.inters.Lead, interceptors...)
}

// Create returns a builder for creating a Lead entity.
func (c *LeadClient) Create() *LeadCreate {
	mutation := newLeadMutation(c.config, OpCreate)
	return &LeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lead entities.
func (c *LeadClient) CreateBulk(builders ...*LeadCreate) *LeadCreateBulk {
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadClient) MapCreateBulk(slice any, setFunc func(*LeadCreate, int)) *LeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadCreateBulk{err: fmt.Errorf("calling to LeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lead.
func (c *LeadClient) Update() *LeadUpdate {
	mutation := newLeadMutation(c.config, OpUpdate)
	return &LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadClient) UpdateOne(_m *Lead) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLead(_m))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadClient) UpdateOneID(id int) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLeadID(id))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lead.
func (c *LeadClient) Delete() *LeadDelete {
	mutation := newLeadMutation(c.config, OpDelete)
	return &LeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadClient) DeleteOne(_m *Lead) *LeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadClient) DeleteOneID(id int) *LeadDeleteOne {
	builder := c.Delete().Where(lead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadDeleteOne{builder}
}

// Query returns a query builder for Lead.
func (c *LeadClient) Query() *LeadQuery {
	return &LeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLead},
		inters: c.Interceptors(),
	}
}

// Get returns a Lead entity by its id.
func (c *LeadClient) Get(ctx context.Context, id int) (*Lead, error) {
	return c.Query().Where(lead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadClient) GetX(ctx context.Context, id int) *Lead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStageHistory queries the stage_history edge of a Lead.
func (c *LeadClient) QueryStageHistory(_m *Lead) *LeadStageHistoryQuery {
	query := (&LeadStageHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, id),
			sqlgraph.To(leadstagehistory.Table, leadstagehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lead.StageHistoryTable, lead.StageHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadClient) Hooks() []Hook {
	return c.hooks.Lead
}

// Interceptors returns the client interceptors.
func (c *LeadClient) Interceptors() []Interceptor {
	return c.inters.Lead
}

func (c *LeadClient) mutate(ctx context.Context, m *LeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lead mutation op: %q", m.Op())
	}
}

// LeadStageHistoryClient is a client for the LeadStageHistory schema.
type LeadStageHistoryClient struct {
	config
}

// NewLeadStageHistoryClient returns a client for the LeadStageHistory from the given config.
func NewLeadStageHistoryClient(c config) *LeadStageHistoryClient {
	return &LeadStageHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leadstagehistory.Hooks(f(g(h())))`.
func (c *LeadStageHistoryClient) Use(hooks ...Hook) {
	c.hooks.LeadStageHistory = append(c.hooks.LeadStageHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leadstagehistory.Intercept(f(g(h())))`.
func (c *LeadStageHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeadStageHistory = append(c.inters.LeadStageHistory, interceptors...)
}

// Create returns a builder for creating a LeadStageHistory entity.
func (c *LeadStageHistoryClient) Create() *LeadStageHistoryCreate {
	mutation := newLeadStageHistoryMutation(c.config, OpCreate)
	return &LeadStageHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeadStageHistory entities.
func (c *LeadStageHistoryClient) CreateBulk(builders ...*LeadStageHistoryCreate) *LeadStageHistoryCreateBulk {
	return &LeadStageHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadStageHistoryClient) MapCreateBulk(slice any, setFunc func(*LeadStageHistoryCreate, int)) *LeadStageHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadStageHistoryCreateBulk{err: fmt.Errorf("calling to LeadStageHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadStageHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadStageHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeadStageHistory.
func (c *LeadStageHistoryClient) Update() *LeadStageHistoryUpdate {
	mutation := newLeadStageHistoryMutation(c.config, OpUpdate)
	return &LeadStageHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadStageHistoryClient) UpdateOne(_m *LeadStageHistory) *LeadStageHistoryUpdateOne {
	mutation := newLeadStageHistoryMutation(c.config, OpUpdateOne, withLeadStageHistory(_m))
	return &LeadStageHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadStageHistoryClient) UpdateOneID(id int) *LeadStageHistoryUpdateOne {
	mutation := newLeadStageHistoryMutation(c.config, OpUpdateOne, withLeadStageHistoryID(id))
	return &LeadStageHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeadStageHistory.
func (c *LeadStageHistoryClient) Delete() *LeadStageHistoryDelete {
	mutation := newLeadStageHistoryMutation(c.config, OpDelete)
	return &LeadStageHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadStageHistoryClient) DeleteOne(_m *LeadStageHistory) *LeadStageHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadStageHistoryClient) DeleteOneID(id int) *LeadStageHistoryDeleteOne {
	builder := c.Delete().Where(leadstagehistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadStageHistoryDeleteOne{builder}
}

// Query returns a query builder for LeadStageHistory.
func (c *LeadStageHistoryClient) Query() *LeadStageHistoryQuery {
	return &LeadStageHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeadStageHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a LeadStageHistory entity by its id.
func (c *LeadStageHistoryClient) Get(ctx context.Context, id int) (*LeadStageHistory, error) {
	return c.Query().Where(leadstagehistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadStageHistoryClient) GetX(ctx context.Context, id int) *LeadStageHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLead queries the lead edge of a LeadStageHistory.
func (c *LeadStageHistoryClient) QueryLead(_m *LeadStageHistory) *LeadQuery {
	query := (&LeadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leadstagehistory.Table, leadstagehistory.FieldID, id),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leadstagehistory.LeadTable, leadstagehistory.LeadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a LeadStageHistory.
func (c *LeadStageHistoryClient) QueryUser(_m *LeadStageHistory) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leadstagehistory.Table, leadstagehistory.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leadstagehistory.UserTable, leadstagehistory.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadStageHistoryClient) Hooks() []Hook {
	return c.hooks.LeadStageHistory
}

// Interceptors returns the client interceptors.
func (c *LeadStageHistoryClient) Interceptors() []Interceptor {
	return c.inters.LeadStageHistory
}

func (c *LeadStageHistoryClient) mutate(ctx context.Context, m *LeadStageHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadStageHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadStageHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadStageHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadStageHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeadStageHistory mutation op: %q", m.Op())
	}
}

// MilestoneClient is a client for the Milestone schema.
type MilestoneClient struct {
	config
}

// NewMilestoneClient returns a client for the Milestone from the given config.
func NewMilestoneClient(c config) *MilestoneClient {
	return &MilestoneClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `milestone.Hooks(f(g(h())))`.
func (c *MilestoneClient) Use(hooks ...Hook) {
	c.hooks.Milestone = append(c.hooks.Milestone, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `milestone.Intercept(f(g(h())))`.
func (c *MilestoneClient) Intercept(interceptors ...Interceptor) {
	c.inters.Milestone = append(c.inters.Milestone, interceptors...)
}

// Create returns a builder for creating a Milestone entity.
func (c *MilestoneClient) Create() *MilestoneCreate {
	mutation := newMilestoneMutation(c.config, OpCreate)
	return &MilestoneCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Milestone entities.
func (c *MilestoneClient) CreateBulk(builders ...*MilestoneCreate) *MilestoneCreateBulk {
	return &MilestoneCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MilestoneClient) MapCreateBulk(slice any, setFunc func(*MilestoneCreate, int)) *MilestoneCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MilestoneCreateBulk{err: fmt.Errorf("calling to MilestoneClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MilestoneCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MilestoneCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Milestone.
func (c *MilestoneClient) Update() *MilestoneUpdate {
	mutation := newMilestoneMutation(c.config, OpUpdate)
	return &MilestoneUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MilestoneClient) UpdateOne(_m *Milestone) *MilestoneUpdateOne {
	mutation := newMilestoneMutation(c.config, OpUpdateOne, withMilestone(_m))
	return &MilestoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MilestoneClient) UpdateOneID(id int) *MilestoneUpdateOne {
	mutation := newMilestoneMutation(c.config, OpUpdateOne, withMilestoneID(id))
	return &MilestoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Milestone.
func (c *MilestoneClient) Delete() *MilestoneDelete {
	mutation := newMilestoneMutation(c.config, OpDelete)
	return &MilestoneDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MilestoneClient) DeleteOne(_m *Milestone) *MilestoneDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MilestoneClient) DeleteOneID(id int) *MilestoneDeleteOne {
	builder := c.Delete().Where(milestone.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MilestoneDeleteOne{builder}
}

// Query returns a query builder for Milestone.
func (c *MilestoneClient) Query() *MilestoneQuery {
	return &MilestoneQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMilestone},
		inters: c.Interceptors(),
	}
}

// Get returns a Milestone entity by its id.
func (c *MilestoneClient) Get(ctx context.Context, id int) (*Milestone, error) {
	return c.Query().Where(milestone.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MilestoneClient) GetX(ctx context.Context, id int) *Milestone {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a Milestone.
func (c *MilestoneClient) QueryClient(_m *Milestone) *CreatorQuery {
	query := (&CreatorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(milestone.Table, milestone.FieldID, id),
			sqlgraph.To(creator.Table, creator.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, milestone.ClientTable, milestone.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MilestoneClient) Hooks() []Hook {
	return c.hooks.Milestone
}

// Interceptors returns the client interceptors.
func (c *MilestoneClient) Interceptors() []Interceptor {
	return c.inters.Milestone
}

func (c *MilestoneClient) mutate(ctx context.Context, m *MilestoneMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MilestoneCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MilestoneUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MilestoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MilestoneDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Milestone mutation op: %q", m.Op())
	}
}

// OnboardingKitClient is a client for the OnboardingKit schema.
type OnboardingKitClient struct {
	config
}

// NewOnboardingKitClient returns a client for the OnboardingKit from the given config.
func NewOnboardingKitClient(c config) *OnboardingKitClient {
	return &OnboardingKitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `onboardingkit.Hooks(f(g(h())))`.
func (c *OnboardingKitClient) Use(hooks ...Hook) {
	c.hooks.OnboardingKit = append(c.hooks.OnboardingKit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `onboardingkit.Intercept(f(g(h())))`.
func (c *OnboardingKitClient) Intercept(interceptors ...Interceptor) {
	c.inters.OnboardingKit = append(c.inters.OnboardingKit, interceptors...)
}

// Create returns a builder for creating a OnboardingKit entity.
func (c *OnboardingKitClient) Create() *OnboardingKitCreate {
	mutation := newOnboardingKitMutation(c.config, OpCreate)
	return &OnboardingKitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OnboardingKit entities.
func (c *OnboardingKitClient) CreateBulk(builders ...*OnboardingKitCreate) *OnboardingKitCreateBulk {
	return &OnboardingKitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OnboardingKitClient) MapCreateBulk(slice any, setFunc func(*OnboardingKitCreate, int)) *OnboardingKitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OnboardingKitCreateBulk{err: fmt.Errorf("calling to OnboardingKitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OnboardingKitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OnboardingKitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OnboardingKit.
func (c *OnboardingKitClient) Update() *OnboardingKitUpdate {
	mutation := newOnboardingKitMutation(c.config, OpUpdate)
	return &OnboardingKitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OnboardingKitClient) UpdateOne(_m *OnboardingKit) *OnboardingKitUpdateOne {
	mutation := newOnboardingKitMutation(c.config, OpUpdateOne, withOnboardingKit(_m))
	return &OnboardingKitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OnboardingKitClient) UpdateOneID(id int) *OnboardingKitUpdateOne {
	mutation := newOnboardingKitMutation(c.config, OpUpdateOne, withOnboardingKitID(id))
	return &OnboardingKitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OnboardingKit.
func (c *OnboardingKitClient) Delete() *OnboardingKitDelete {
	mutation := newOnboardingKitMutation(c.config, OpDelete)
	return &OnboardingKitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OnboardingKitClient) DeleteOne(_m *OnboardingKit) *OnboardingKitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OnboardingKitClient) DeleteOneID(id int) *OnboardingKitDeleteOne {
	builder := c.Delete().Where(onboardingkit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OnboardingKitDeleteOne{builder}
}

// Query returns a query builder for OnboardingKit.
func (c *OnboardingKitClient) Query() *OnboardingKitQuery {
	return &OnboardingKitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOnboardingKit},
		inters: c.Interceptors(),
	}
}

// Get returns a OnboardingKit entity by its id.
func (c *OnboardingKitClient) Get(ctx context.Context, id int) (*OnboardingKit, error) {
	return c.Query().Where(onboardingkit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OnboardingKitClient) GetX(ctx context.Context, id int) *OnboardingKit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a OnboardingKit.
func (c *OnboardingKitClient) QueryClient(_m *OnboardingKit) *CreatorQuery {
	query := (&CreatorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(onboardingkit.Table, onboardingkit.FieldID, id),
			sqlgraph.To(creator.Table, creator.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, onboardingkit.ClientTable, onboardingkit.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a OnboardingKit.
func (c *OnboardingKitClient) QueryDocuments(_m *OnboardingKit) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(onboardingkit.Table, onboardingkit.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, onboardingkit.DocumentsTable, onboardingkit.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OnboardingKitClient) Hooks() []Hook {
	return c.hooks.OnboardingKit
}

// Interceptors returns the client interceptors.
func (c *OnboardingKitClient) Interceptors() []Interceptor {
	return c.inters.OnboardingKit
}

func (c *OnboardingKitClient) mutate(ctx context.Context, m *OnboardingKitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OnboardingKitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OnboardingKitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OnboardingKitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OnboardingKitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OnboardingKit mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a User.
func (c *UserClient) QueryApplications(_m *User) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ApplicationsTable, user.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditLogs queries the audit_logs edge of a User.
func (c *UserClient) QueryAuditLogs(_m *User) *AuditLogQuery {
	query := (&AuditLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(auditlog.Table, auditlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AuditLogsTable, user.AuditLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLeadStageChanges queries the lead_stage_changes edge of a User.
func (c *UserClient) QueryLeadStageChanges(_m *User) *LeadStageHistoryQuery {
	query := (&LeadStageHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(leadstagehistory.Table, leadstagehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.LeadStageChangesTable, user.LeadStageChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Activity, Application, AuditLog, Creator, Document, Lead, LeadStageHistory,
		Milestone, OnboardingKit, User []ent.Hook
	}
	inters struct {
		Activity, Application, AuditLog, Creator, Document, Lead, LeadStageHistory,
		Milestone, OnboardingKit, User []ent.Interceptor
	}
)
