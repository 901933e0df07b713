// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cobbleworks/foundry/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/ent/workevent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// AgentSubscription is the client for interacting with the AgentSubscription builders.
	AgentSubscription *AgentSubscriptionClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// WorkEvent is the client for interacting with the WorkEvent builders.
	WorkEvent *WorkEventClient
	// WorkRequest is the client for interacting with the WorkRequest builders.
	WorkRequest *WorkRequestClient
	// WorkTicket is the client for interacting with the WorkTicket builders.
	WorkTicket *WorkTicketClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.AgentSubscription = NewAgentSubscriptionClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.WorkEvent = NewWorkEventClient(c.config)
	c.WorkRequest = NewWorkRequestClient(c.config)
	c.WorkTicket = NewWorkTicketClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AgentSession:      NewAgentSessionClient(cfg),
		AgentSubscription: NewAgentSubscriptionClient(cfg),
		Project:           NewProjectClient(cfg),
		WorkEvent:         NewWorkEventClient(cfg),
		WorkRequest:       NewWorkRequestClient(cfg),
		WorkTicket:        NewWorkTicketClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AgentSession:      NewAgentSessionClient(cfg),
		AgentSubscription: NewAgentSubscriptionClient(cfg),
		Project:           NewProjectClient(cfg),
		WorkEvent:         NewWorkEventClient(cfg),
		WorkRequest:       NewWorkRequestClient(cfg),
		WorkTicket:        NewWorkTicketClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSession.
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
		c.AgentSession, c.AgentSubscription, c.Project, c.WorkEvent, c.WorkRequest,
		c.WorkTicket,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSession, c.AgentSubscription, c.Project, c.WorkEvent, c.WorkRequest,
		c.WorkTicket,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *AgentSubscriptionMutation:
		return c.AgentSubscription.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *WorkEventMutation:
		return c.WorkEvent.mutate(ctx, m)
	case *WorkRequestMutation:
		return c.WorkRequest.mutate(ctx, m)
	case *WorkTicketMutation:
		return c.WorkTicket.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a AgentSession.
func (c *AgentSessionClient) QueryParent(_m *AgentSession) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ParentTable, agentsession.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a AgentSession.
func (c *AgentSessionClient) QueryChildren(_m *AgentSession) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.ChildrenTable, agentsession.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// AgentSubscriptionClient is a client for the AgentSubscription schema.
type AgentSubscriptionClient struct {
	config
}

// NewAgentSubscriptionClient returns a client for the AgentSubscription from the given config.
func NewAgentSubscriptionClient(c config) *AgentSubscriptionClient {
	return &AgentSubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsubscription.Hooks(f(g(h())))`.
func (c *AgentSubscriptionClient) Use(hooks ...Hook) {
	c.hooks.AgentSubscription = append(c.hooks.AgentSubscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsubscription.Intercept(f(g(h())))`.
func (c *AgentSubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSubscription = append(c.inters.AgentSubscription, interceptors...)
}

// Create returns a builder for creating a AgentSubscription entity.
func (c *AgentSubscriptionClient) Create() *AgentSubscriptionCreate {
	mutation := newAgentSubscriptionMutation(c.config, OpCreate)
	return &AgentSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSubscription entities.
func (c *AgentSubscriptionClient) CreateBulk(builders ...*AgentSubscriptionCreate) *AgentSubscriptionCreateBulk {
	return &AgentSubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSubscriptionClient) MapCreateBulk(slice any, setFunc func(*AgentSubscriptionCreate, int)) *AgentSubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSubscriptionCreateBulk{err: fmt.Errorf("calling to AgentSubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSubscription.
func (c *AgentSubscriptionClient) Update() *AgentSubscriptionUpdate {
	mutation := newAgentSubscriptionMutation(c.config, OpUpdate)
	return &AgentSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSubscriptionClient) UpdateOne(_m *AgentSubscription) *AgentSubscriptionUpdateOne {
	mutation := newAgentSubscriptionMutation(c.config, OpUpdateOne, withAgentSubscription(_m))
	return &AgentSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSubscriptionClient) UpdateOneID(id string) *AgentSubscriptionUpdateOne {
	mutation := newAgentSubscriptionMutation(c.config, OpUpdateOne, withAgentSubscriptionID(id))
	return &AgentSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSubscription.
func (c *AgentSubscriptionClient) Delete() *AgentSubscriptionDelete {
	mutation := newAgentSubscriptionMutation(c.config, OpDelete)
	return &AgentSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSubscriptionClient) DeleteOne(_m *AgentSubscription) *AgentSubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSubscriptionClient) DeleteOneID(id string) *AgentSubscriptionDeleteOne {
	builder := c.Delete().Where(agentsubscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSubscriptionDeleteOne{builder}
}

// Query returns a query builder for AgentSubscription.
func (c *AgentSubscriptionClient) Query() *AgentSubscriptionQuery {
	return &AgentSubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSubscription entity by its id.
func (c *AgentSubscriptionClient) Get(ctx context.Context, id string) (*AgentSubscription, error) {
	return c.Query().Where(agentsubscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSubscriptionClient) GetX(ctx context.Context, id string) *AgentSubscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentSubscriptionClient) Hooks() []Hook {
	return c.hooks.AgentSubscription
}

// Interceptors returns the client interceptors.
func (c *AgentSubscriptionClient) Interceptors() []Interceptor {
	return c.inters.AgentSubscription
}

func (c *AgentSubscriptionClient) mutate(ctx context.Context, m *AgentSubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSubscription mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// WorkEventClient is a client for the WorkEvent schema.
type WorkEventClient struct {
	config
}

// NewWorkEventClient returns a client for the WorkEvent from the given config.
func NewWorkEventClient(c config) *WorkEventClient {
	return &WorkEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workevent.Hooks(f(g(h())))`.
func (c *WorkEventClient) Use(hooks ...Hook) {
	c.hooks.WorkEvent = append(c.hooks.WorkEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workevent.Intercept(f(g(h())))`.
func (c *WorkEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkEvent = append(c.inters.WorkEvent, interceptors...)
}

// Create returns a builder for creating a WorkEvent entity.
func (c *WorkEventClient) Create() *WorkEventCreate {
	mutation := newWorkEventMutation(c.config, OpCreate)
	return &WorkEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkEvent entities.
func (c *WorkEventClient) CreateBulk(builders ...*WorkEventCreate) *WorkEventCreateBulk {
	return &WorkEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkEventClient) MapCreateBulk(slice any, setFunc func(*WorkEventCreate, int)) *WorkEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkEventCreateBulk{err: fmt.Errorf("calling to WorkEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkEvent.
func (c *WorkEventClient) Update() *WorkEventUpdate {
	mutation := newWorkEventMutation(c.config, OpUpdate)
	return &WorkEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkEventClient) UpdateOne(_m *WorkEvent) *WorkEventUpdateOne {
	mutation := newWorkEventMutation(c.config, OpUpdateOne, withWorkEvent(_m))
	return &WorkEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkEventClient) UpdateOneID(id int64) *WorkEventUpdateOne {
	mutation := newWorkEventMutation(c.config, OpUpdateOne, withWorkEventID(id))
	return &WorkEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkEvent.
func (c *WorkEventClient) Delete() *WorkEventDelete {
	mutation := newWorkEventMutation(c.config, OpDelete)
	return &WorkEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkEventClient) DeleteOne(_m *WorkEvent) *WorkEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkEventClient) DeleteOneID(id int64) *WorkEventDeleteOne {
	builder := c.Delete().Where(workevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkEventDeleteOne{builder}
}

// Query returns a query builder for WorkEvent.
func (c *WorkEventClient) Query() *WorkEventQuery {
	return &WorkEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkEvent entity by its id.
func (c *WorkEventClient) Get(ctx context.Context, id int64) (*WorkEvent, error) {
	return c.Query().Where(workevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkEventClient) GetX(ctx context.Context, id int64) *WorkEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkEventClient) Hooks() []Hook {
	return c.hooks.WorkEvent
}

// Interceptors returns the client interceptors.
func (c *WorkEventClient) Interceptors() []Interceptor {
	return c.inters.WorkEvent
}

func (c *WorkEventClient) mutate(ctx context.Context, m *WorkEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkEvent mutation op: %q", m.Op())
	}
}

// WorkRequestClient is a client for the WorkRequest schema.
type WorkRequestClient struct {
	config
}

// NewWorkRequestClient returns a client for the WorkRequest from the given config.
func NewWorkRequestClient(c config) *WorkRequestClient {
	return &WorkRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workrequest.Hooks(f(g(h())))`.
func (c *WorkRequestClient) Use(hooks ...Hook) {
	c.hooks.WorkRequest = append(c.hooks.WorkRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workrequest.Intercept(f(g(h())))`.
func (c *WorkRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkRequest = append(c.inters.WorkRequest, interceptors...)
}

// Create returns a builder for creating a WorkRequest entity.
func (c *WorkRequestClient) Create() *WorkRequestCreate {
	mutation := newWorkRequestMutation(c.config, OpCreate)
	return &WorkRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkRequest entities.
func (c *WorkRequestClient) CreateBulk(builders ...*WorkRequestCreate) *WorkRequestCreateBulk {
	return &WorkRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkRequestClient) MapCreateBulk(slice any, setFunc func(*WorkRequestCreate, int)) *WorkRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkRequestCreateBulk{err: fmt.Errorf("calling to WorkRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkRequest.
func (c *WorkRequestClient) Update() *WorkRequestUpdate {
	mutation := newWorkRequestMutation(c.config, OpUpdate)
	return &WorkRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkRequestClient) UpdateOne(_m *WorkRequest) *WorkRequestUpdateOne {
	mutation := newWorkRequestMutation(c.config, OpUpdateOne, withWorkRequest(_m))
	return &WorkRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkRequestClient) UpdateOneID(id string) *WorkRequestUpdateOne {
	mutation := newWorkRequestMutation(c.config, OpUpdateOne, withWorkRequestID(id))
	return &WorkRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkRequest.
func (c *WorkRequestClient) Delete() *WorkRequestDelete {
	mutation := newWorkRequestMutation(c.config, OpDelete)
	return &WorkRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkRequestClient) DeleteOne(_m *WorkRequest) *WorkRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkRequestClient) DeleteOneID(id string) *WorkRequestDeleteOne {
	builder := c.Delete().Where(workrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkRequestDeleteOne{builder}
}

// Query returns a query builder for WorkRequest.
func (c *WorkRequestClient) Query() *WorkRequestQuery {
	return &WorkRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkRequest entity by its id.
func (c *WorkRequestClient) Get(ctx context.Context, id string) (*WorkRequest, error) {
	return c.Query().Where(workrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkRequestClient) GetX(ctx context.Context, id string) *WorkRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a WorkRequest.
func (c *WorkRequestClient) QueryTicket(_m *WorkRequest) *WorkTicketQuery {
	query := (&WorkTicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workrequest.Table, workrequest.FieldID, id),
			sqlgraph.To(workticket.Table, workticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, workrequest.TicketTable, workrequest.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkRequestClient) Hooks() []Hook {
	return c.hooks.WorkRequest
}

// Interceptors returns the client interceptors.
func (c *WorkRequestClient) Interceptors() []Interceptor {
	return c.inters.WorkRequest
}

func (c *WorkRequestClient) mutate(ctx context.Context, m *WorkRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkRequest mutation op: %q", m.Op())
	}
}

// WorkTicketClient is a client for the WorkTicket schema.
type WorkTicketClient struct {
	config
}

// NewWorkTicketClient returns a client for the WorkTicket from the given config.
func NewWorkTicketClient(c config) *WorkTicketClient {
	return &WorkTicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workticket.Hooks(f(g(h())))`.
func (c *WorkTicketClient) Use(hooks ...Hook) {
	c.hooks.WorkTicket = append(c.hooks.WorkTicket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workticket.Intercept(f(g(h())))`.
func (c *WorkTicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkTicket = append(c.inters.WorkTicket, interceptors...)
}

// Create returns a builder for creating a WorkTicket entity.
func (c *WorkTicketClient) Create() *WorkTicketCreate {
	mutation := newWorkTicketMutation(c.config, OpCreate)
	return &WorkTicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkTicket entities.
func (c *WorkTicketClient) CreateBulk(builders ...*WorkTicketCreate) *WorkTicketCreateBulk {
	return &WorkTicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkTicketClient) MapCreateBulk(slice any, setFunc func(*WorkTicketCreate, int)) *WorkTicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkTicketCreateBulk{err: fmt.Errorf("calling to WorkTicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkTicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkTicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkTicket.
func (c *WorkTicketClient) Update() *WorkTicketUpdate {
	mutation := newWorkTicketMutation(c.config, OpUpdate)
	return &WorkTicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkTicketClient) UpdateOne(_m *WorkTicket) *WorkTicketUpdateOne {
	mutation := newWorkTicketMutation(c.config, OpUpdateOne, withWorkTicket(_m))
	return &WorkTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkTicketClient) UpdateOneID(id string) *WorkTicketUpdateOne {
	mutation := newWorkTicketMutation(c.config, OpUpdateOne, withWorkTicketID(id))
	return &WorkTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkTicket.
func (c *WorkTicketClient) Delete() *WorkTicketDelete {
	mutation := newWorkTicketMutation(c.config, OpDelete)
	return &WorkTicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkTicketClient) DeleteOne(_m *WorkTicket) *WorkTicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkTicketClient) DeleteOneID(id string) *WorkTicketDeleteOne {
	builder := c.Delete().Where(workticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkTicketDeleteOne{builder}
}

// Query returns a query builder for WorkTicket.
func (c *WorkTicketClient) Query() *WorkTicketQuery {
	return &WorkTicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkTicket entity by its id.
func (c *WorkTicketClient) Get(ctx context.Context, id string) (*WorkTicket, error) {
	return c.Query().Where(workticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkTicketClient) GetX(ctx context.Context, id string) *WorkTicket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkRequest queries the work_request edge of a WorkTicket.
func (c *WorkTicketClient) QueryWorkRequest(_m *WorkTicket) *WorkRequestQuery {
	query := (&WorkRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workticket.Table, workticket.FieldID, id),
			sqlgraph.To(workrequest.Table, workrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, workticket.WorkRequestTable, workticket.WorkRequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkTicketClient) Hooks() []Hook {
	return c.hooks.WorkTicket
}

// Interceptors returns the client interceptors.
func (c *WorkTicketClient) Interceptors() []Interceptor {
	return c.inters.WorkTicket
}

func (c *WorkTicketClient) mutate(ctx context.Context, m *WorkTicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkTicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkTicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkTicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkTicket mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSession, AgentSubscription, Project, WorkEvent, WorkRequest,
		WorkTicket []ent.Hook
	}
	inters struct {
		AgentSession, AgentSubscription, Project, WorkEvent, WorkRequest,
		WorkTicket []ent.Interceptor
	}
)
