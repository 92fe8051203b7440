// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/docmatrix-ai/docmatrix/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/ent/usageevent"
	"github.com/docmatrix-ai/docmatrix/ent/workflow"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Answer is the client for interacting with the Answer builders.
	Answer *AnswerClient
	// AnswerSet is the client for interacting with the AnswerSet builders.
	AnswerSet *AnswerSetClient
	// CellEntityRef is the client for interacting with the CellEntityRef builders.
	CellEntityRef *CellEntityRefClient
	// Chunk is the client for interacting with the Chunk builders.
	Chunk *ChunkClient
	// ChunkSet is the client for interacting with the ChunkSet builders.
	ChunkSet *ChunkSetClient
	// Citation is the client for interacting with the Citation builders.
	Citation *CitationClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// EntitySet is the client for interacting with the EntitySet builders.
	EntitySet *EntitySetClient
	// EntitySetMember is the client for interacting with the EntitySetMember builders.
	EntitySetMember *EntitySetMemberClient
	// ExecutionFile is the client for interacting with the ExecutionFile builders.
	ExecutionFile *ExecutionFileClient
	// Matrix is the client for interacting with the Matrix builders.
	Matrix *MatrixClient
	// MatrixCell is the client for interacting with the MatrixCell builders.
	MatrixCell *MatrixCellClient
	// QAJob is the client for interacting with the QAJob builders.
	QAJob *QAJobClient
	// ServiceAccount is the client for interacting with the ServiceAccount builders.
	ServiceAccount *ServiceAccountClient
	// Subscription is the client for interacting with the Subscription builders.
	Subscription *SubscriptionClient
	// UsageEvent is the client for interacting with the UsageEvent builders.
	UsageEvent *UsageEventClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
	// WorkflowExecution is the client for interacting with the WorkflowExecution builders.
	WorkflowExecution *WorkflowExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Answer = NewAnswerClient(c.config)
	c.AnswerSet = NewAnswerSetClient(c.config)
	c.CellEntityRef = NewCellEntityRefClient(c.config)
	c.Chunk = NewChunkClient(c.config)
	c.ChunkSet = NewChunkSetClient(c.config)
	c.Citation = NewCitationClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.EntitySet = NewEntitySetClient(c.config)
	c.EntitySetMember = NewEntitySetMemberClient(c.config)
	c.ExecutionFile = NewExecutionFileClient(c.config)
	c.Matrix = NewMatrixClient(c.config)
	c.MatrixCell = NewMatrixCellClient(c.config)
	c.QAJob = NewQAJobClient(c.config)
	c.ServiceAccount = NewServiceAccountClient(c.config)
	c.Subscription = NewSubscriptionClient(c.config)
	c.UsageEvent = NewUsageEventClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
	c.WorkflowExecution = NewWorkflowExecutionClient(c.config)
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
		Answer:            NewAnswerClient(cfg),
		AnswerSet:         NewAnswerSetClient(cfg),
		CellEntityRef:     NewCellEntityRefClient(cfg),
		Chunk:             NewChunkClient(cfg),
		ChunkSet:          NewChunkSetClient(cfg),
		Citation:          NewCitationClient(cfg),
		Company:           NewCompanyClient(cfg),
		Document:          NewDocumentClient(cfg),
		EntitySet:         NewEntitySetClient(cfg),
		EntitySetMember:   NewEntitySetMemberClient(cfg),
		ExecutionFile:     NewExecutionFileClient(cfg),
		Matrix:            NewMatrixClient(cfg),
		MatrixCell:        NewMatrixCellClient(cfg),
		QAJob:             NewQAJobClient(cfg),
		ServiceAccount:    NewServiceAccountClient(cfg),
		Subscription:      NewSubscriptionClient(cfg),
		UsageEvent:        NewUsageEventClient(cfg),
		Workflow:          NewWorkflowClient(cfg),
		WorkflowExecution: NewWorkflowExecutionClient(cfg),
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
		Answer:            NewAnswerClient(cfg),
		AnswerSet:         NewAnswerSetClient(cfg),
		CellEntityRef:     NewCellEntityRefClient(cfg),
		Chunk:             NewChunkClient(cfg),
		ChunkSet:          NewChunkSetClient(cfg),
		Citation:          NewCitationClient(cfg),
		Company:           NewCompanyClient(cfg),
		Document:          NewDocumentClient(cfg),
		EntitySet:         NewEntitySetClient(cfg),
		EntitySetMember:   NewEntitySetMemberClient(cfg),
		ExecutionFile:     NewExecutionFileClient(cfg),
		Matrix:            NewMatrixClient(cfg),
		MatrixCell:        NewMatrixCellClient(cfg),
		QAJob:             NewQAJobClient(cfg),
		ServiceAccount:    NewServiceAccountClient(cfg),
		Subscription:      NewSubscriptionClient(cfg),
		UsageEvent:        NewUsageEventClient(cfg),
		Workflow:          NewWorkflowClient(cfg),
		WorkflowExecution: NewWorkflowExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Answer.
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
		c.Answer, c.AnswerSet, c.CellEntityRef, c.Chunk, c.ChunkSet, c.Citation,
		c.Company, c.Document, c.EntitySet, c.EntitySetMember, c.ExecutionFile,
		c.Matrix, c.MatrixCell, c.QAJob, c.ServiceAccount, c.Subscription,
		c.UsageEvent, c.Workflow, c.WorkflowExecution,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Answer, c.AnswerSet, c.CellEntityRef, c.Chunk, c.ChunkSet, c.Citation,
		c.Company, c.Document, c.EntitySet, c.EntitySetMember, c.ExecutionFile,
		c.Matrix, c.MatrixCell, c.QAJob, c.ServiceAccount, c.Subscription,
		c.UsageEvent, c.Workflow, c.WorkflowExecution,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerMutation:
		return c.Answer.mutate(ctx, m)
	case *AnswerSetMutation:
		return c.AnswerSet.mutate(ctx, m)
	case *CellEntityRefMutation:
		return c.CellEntityRef.mutate(ctx, m)
	case *ChunkMutation:
		return c.Chunk.mutate(ctx, m)
	case *ChunkSetMutation:
		return c.ChunkSet.mutate(ctx, m)
	case *CitationMutation:
		return c.Citation.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *EntitySetMutation:
		return c.EntitySet.mutate(ctx, m)
	case *EntitySetMemberMutation:
		return c.EntitySetMember.mutate(ctx, m)
	case *ExecutionFileMutation:
		return c.ExecutionFile.mutate(ctx, m)
	case *MatrixMutation:
		return c.Matrix.mutate(ctx, m)
	case *MatrixCellMutation:
		return c.MatrixCell.mutate(ctx, m)
	case *QAJobMutation:
		return c.QAJob.mutate(ctx, m)
	case *ServiceAccountMutation:
		return c.ServiceAccount.mutate(ctx, m)
	case *SubscriptionMutation:
		return c.Subscription.mutate(ctx, m)
	case *UsageEventMutation:
		return c.UsageEvent.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	case *WorkflowExecutionMutation:
		return c.WorkflowExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerClient is a client for the Answer schema.
type AnswerClient struct {
	config
}

// NewAnswerClient returns a client for the Answer from the given config.
func NewAnswerClient(c config) *AnswerClient {
	return &AnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answer.Hooks(f(g(h())))`.
func (c *AnswerClient) Use(hooks ...Hook) {
	c.hooks.Answer = append(c.hooks.Answer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answer.Intercept(f(g(h())))`.
func (c *AnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Answer = append(c.inters.Answer, interceptors...)
}

// Create returns a builder for creating a Answer entity.
func (c *AnswerClient) Create() *AnswerCreate {
	mutation := newAnswerMutation(c.config, OpCreate)
	return &AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Answer entities.
func (c *AnswerClient) CreateBulk(builders ...*AnswerCreate) *AnswerCreateBulk {
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerClient) MapCreateBulk(slice any, setFunc func(*AnswerCreate, int)) *AnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerCreateBulk{err: fmt.Errorf("calling to AnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Answer.
func (c *AnswerClient) Update() *AnswerUpdate {
	mutation := newAnswerMutation(c.config, OpUpdate)
	return &AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerClient) UpdateOne(_m *Answer) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswer(_m))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerClient) UpdateOneID(id int) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswerID(id))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Answer.
func (c *AnswerClient) Delete() *AnswerDelete {
	mutation := newAnswerMutation(c.config, OpDelete)
	return &AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerClient) DeleteOne(_m *Answer) *AnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerClient) DeleteOneID(id int) *AnswerDeleteOne {
	builder := c.Delete().Where(answer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerDeleteOne{builder}
}

// Query returns a query builder for Answer.
func (c *AnswerClient) Query() *AnswerQuery {
	return &AnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a Answer entity by its id.
func (c *AnswerClient) Get(ctx context.Context, id int) (*Answer, error) {
	return c.Query().Where(answer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerClient) GetX(ctx context.Context, id int) *Answer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnswerSet queries the answer_set edge of a Answer.
func (c *AnswerClient) QueryAnswerSet(_m *Answer) *AnswerSetQuery {
	query := (&AnswerSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(answerset.Table, answerset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answer.AnswerSetTable, answer.AnswerSetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Answer.
func (c *AnswerClient) QueryCitations(_m *Answer) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, answer.CitationsTable, answer.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnswerClient) Hooks() []Hook {
	return c.hooks.Answer
}

// Interceptors returns the client interceptors.
func (c *AnswerClient) Interceptors() []Interceptor {
	return c.inters.Answer
}

func (c *AnswerClient) mutate(ctx context.Context, m *AnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Answer mutation op: %q", m.Op())
	}
}

// AnswerSetClient is a client for the AnswerSet schema.
type AnswerSetClient struct {
	config
}

// NewAnswerSetClient returns a client for the AnswerSet from the given config.
func NewAnswerSetClient(c config) *AnswerSetClient {
	return &AnswerSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerset.Hooks(f(g(h())))`.
func (c *AnswerSetClient) Use(hooks ...Hook) {
	c.hooks.AnswerSet = append(c.hooks.AnswerSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerset.Intercept(f(g(h())))`.
func (c *AnswerSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerSet = append(c.inters.AnswerSet, interceptors...)
}

// Create returns a builder for creating a AnswerSet entity.
func (c *AnswerSetClient) Create() *AnswerSetCreate {
	mutation := newAnswerSetMutation(c.config, OpCreate)
	return &AnswerSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerSet entities.
func (c *AnswerSetClient) CreateBulk(builders ...*AnswerSetCreate) *AnswerSetCreateBulk {
	return &AnswerSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerSetClient) MapCreateBulk(slice any, setFunc func(*AnswerSetCreate, int)) *AnswerSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerSetCreateBulk{err: fmt.Errorf("calling to AnswerSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerSet.
func (c *AnswerSetClient) Update() *AnswerSetUpdate {
	mutation := newAnswerSetMutation(c.config, OpUpdate)
	return &AnswerSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerSetClient) UpdateOne(_m *AnswerSet) *AnswerSetUpdateOne {
	mutation := newAnswerSetMutation(c.config, OpUpdateOne, withAnswerSet(_m))
	return &AnswerSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerSetClient) UpdateOneID(id int) *AnswerSetUpdateOne {
	mutation := newAnswerSetMutation(c.config, OpUpdateOne, withAnswerSetID(id))
	return &AnswerSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerSet.
func (c *AnswerSetClient) Delete() *AnswerSetDelete {
	mutation := newAnswerSetMutation(c.config, OpDelete)
	return &AnswerSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerSetClient) DeleteOne(_m *AnswerSet) *AnswerSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerSetClient) DeleteOneID(id int) *AnswerSetDeleteOne {
	builder := c.Delete().Where(answerset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerSetDeleteOne{builder}
}

// Query returns a query builder for AnswerSet.
func (c *AnswerSetClient) Query() *AnswerSetQuery {
	return &AnswerSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerSet},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerSet entity by its id.
func (c *AnswerSetClient) Get(ctx context.Context, id int) (*AnswerSet, error) {
	return c.Query().Where(answerset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerSetClient) GetX(ctx context.Context, id int) *AnswerSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCell queries the cell edge of a AnswerSet.
func (c *AnswerSetClient) QueryCell(_m *AnswerSet) *MatrixCellQuery {
	query := (&MatrixCellClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answerset.Table, answerset.FieldID, id),
			sqlgraph.To(matrixcell.Table, matrixcell.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answerset.CellTable, answerset.CellColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a AnswerSet.
func (c *AnswerSetClient) QueryAnswers(_m *AnswerSet) *AnswerQuery {
	query := (&AnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answerset.Table, answerset.FieldID, id),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, answerset.AnswersTable, answerset.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnswerSetClient) Hooks() []Hook {
	return c.hooks.AnswerSet
}

// Interceptors returns the client interceptors.
func (c *AnswerSetClient) Interceptors() []Interceptor {
	return c.inters.AnswerSet
}

func (c *AnswerSetClient) mutate(ctx context.Context, m *AnswerSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerSet mutation op: %q", m.Op())
	}
}

// CellEntityRefClient is a client for the CellEntityRef schema.
type CellEntityRefClient struct {
	config
}

// NewCellEntityRefClient returns a client for the CellEntityRef from the given config.
func NewCellEntityRefClient(c config) *CellEntityRefClient {
	return &CellEntityRefClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cellentityref.Hooks(f(g(h())))`.
func (c *CellEntityRefClient) Use(hooks ...Hook) {
	c.hooks.CellEntityRef = append(c.hooks.CellEntityRef, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cellentityref.Intercept(f(g(h())))`.
func (c *CellEntityRefClient) Intercept(interceptors ...Interceptor) {
	c.inters.CellEntityRef = append(c.inters.CellEntityRef, interceptors...)
}

// Create returns a builder for creating a CellEntityRef entity.
func (c *CellEntityRefClient) Create() *CellEntityRefCreate {
	mutation := newCellEntityRefMutation(c.config, OpCreate)
	return &CellEntityRefCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CellEntityRef entities.
func (c *CellEntityRefClient) CreateBulk(builders ...*CellEntityRefCreate) *CellEntityRefCreateBulk {
	return &CellEntityRefCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CellEntityRefClient) MapCreateBulk(slice any, setFunc func(*CellEntityRefCreate, int)) *CellEntityRefCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CellEntityRefCreateBulk{err: fmt.Errorf("calling to CellEntityRefClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CellEntityRefCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CellEntityRefCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CellEntityRef.
func (c *CellEntityRefClient) Update() *CellEntityRefUpdate {
	mutation := newCellEntityRefMutation(c.config, OpUpdate)
	return &CellEntityRefUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CellEntityRefClient) UpdateOne(_m *CellEntityRef) *CellEntityRefUpdateOne {
	mutation := newCellEntityRefMutation(c.config, OpUpdateOne, withCellEntityRef(_m))
	return &CellEntityRefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CellEntityRefClient) UpdateOneID(id int) *CellEntityRefUpdateOne {
	mutation := newCellEntityRefMutation(c.config, OpUpdateOne, withCellEntityRefID(id))
	return &CellEntityRefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CellEntityRef.
func (c *CellEntityRefClient) Delete() *CellEntityRefDelete {
	mutation := newCellEntityRefMutation(c.config, OpDelete)
	return &CellEntityRefDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CellEntityRefClient) DeleteOne(_m *CellEntityRef) *CellEntityRefDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CellEntityRefClient) DeleteOneID(id int) *CellEntityRefDeleteOne {
	builder := c.Delete().Where(cellentityref.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CellEntityRefDeleteOne{builder}
}

// Query returns a query builder for CellEntityRef.
func (c *CellEntityRefClient) Query() *CellEntityRefQuery {
	return &CellEntityRefQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCellEntityRef},
		inters: c.Interceptors(),
	}
}

// Get returns a CellEntityRef entity by its id.
func (c *CellEntityRefClient) Get(ctx context.Context, id int) (*CellEntityRef, error) {
	return c.Query().Where(cellentityref.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CellEntityRefClient) GetX(ctx context.Context, id int) *CellEntityRef {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCell queries the cell edge of a CellEntityRef.
func (c *CellEntityRefClient) QueryCell(_m *CellEntityRef) *MatrixCellQuery {
	query := (&MatrixCellClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cellentityref.Table, cellentityref.FieldID, id),
			sqlgraph.To(matrixcell.Table, matrixcell.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cellentityref.CellTable, cellentityref.CellColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CellEntityRefClient) Hooks() []Hook {
	return c.hooks.CellEntityRef
}

// Interceptors returns the client interceptors.
func (c *CellEntityRefClient) Interceptors() []Interceptor {
	return c.inters.CellEntityRef
}

func (c *CellEntityRefClient) mutate(ctx context.Context, m *CellEntityRefMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CellEntityRefCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CellEntityRefUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CellEntityRefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CellEntityRefDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CellEntityRef mutation op: %q", m.Op())
	}
}

// ChunkClient is a client for the Chunk schema.
type ChunkClient struct {
	config
}

// NewChunkClient returns a client for the Chunk from the given config.
func NewChunkClient(c config) *ChunkClient {
	return &ChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chunk.Hooks(f(g(h())))`.
func (c *ChunkClient) Use(hooks ...Hook) {
	c.hooks.Chunk = append(c.hooks.Chunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chunk.Intercept(f(g(h())))`.
func (c *ChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chunk = append(c.inters.Chunk, interceptors...)
}

// Create returns a builder for creating a Chunk entity.
func (c *ChunkClient) Create() *ChunkCreate {
	mutation := newChunkMutation(c.config, OpCreate)
	return &ChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chunk entities.
func (c *ChunkClient) CreateBulk(builders ...*ChunkCreate) *ChunkCreateBulk {
	return &ChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChunkClient) MapCreateBulk(slice any, setFunc func(*ChunkCreate, int)) *ChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChunkCreateBulk{err: fmt.Errorf("calling to ChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chunk.
func (c *ChunkClient) Update() *ChunkUpdate {
	mutation := newChunkMutation(c.config, OpUpdate)
	return &ChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChunkClient) UpdateOne(_m *Chunk) *ChunkUpdateOne {
	mutation := newChunkMutation(c.config, OpUpdateOne, withChunk(_m))
	return &ChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChunkClient) UpdateOneID(id int) *ChunkUpdateOne {
	mutation := newChunkMutation(c.config, OpUpdateOne, withChunkID(id))
	return &ChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chunk.
func (c *ChunkClient) Delete() *ChunkDelete {
	mutation := newChunkMutation(c.config, OpDelete)
	return &ChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChunkClient) DeleteOne(_m *Chunk) *ChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChunkClient) DeleteOneID(id int) *ChunkDeleteOne {
	builder := c.Delete().Where(chunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChunkDeleteOne{builder}
}

// Query returns a query builder for Chunk.
func (c *ChunkClient) Query() *ChunkQuery {
	return &ChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a Chunk entity by its id.
func (c *ChunkClient) Get(ctx context.Context, id int) (*Chunk, error) {
	return c.Query().Where(chunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChunkClient) GetX(ctx context.Context, id int) *Chunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunkSet queries the chunk_set edge of a Chunk.
func (c *ChunkClient) QueryChunkSet(_m *Chunk) *ChunkSetQuery {
	query := (&ChunkSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chunk.Table, chunk.FieldID, id),
			sqlgraph.To(chunkset.Table, chunkset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chunk.ChunkSetTable, chunk.ChunkSetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChunkClient) Hooks() []Hook {
	return c.hooks.Chunk
}

// Interceptors returns the client interceptors.
func (c *ChunkClient) Interceptors() []Interceptor {
	return c.inters.Chunk
}

func (c *ChunkClient) mutate(ctx context.Context, m *ChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chunk mutation op: %q", m.Op())
	}
}

// ChunkSetClient is a client for the ChunkSet schema.
type ChunkSetClient struct {
	config
}

// NewChunkSetClient returns a client for the ChunkSet from the given config.
func NewChunkSetClient(c config) *ChunkSetClient {
	return &ChunkSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chunkset.Hooks(f(g(h())))`.
func (c *ChunkSetClient) Use(hooks ...Hook) {
	c.hooks.ChunkSet = append(c.hooks.ChunkSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chunkset.Intercept(f(g(h())))`.
func (c *ChunkSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChunkSet = append(c.inters.ChunkSet, interceptors...)
}

// Create returns a builder for creating a ChunkSet entity.
func (c *ChunkSetClient) Create() *ChunkSetCreate {
	mutation := newChunkSetMutation(c.config, OpCreate)
	return &ChunkSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChunkSet entities.
func (c *ChunkSetClient) CreateBulk(builders ...*ChunkSetCreate) *ChunkSetCreateBulk {
	return &ChunkSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChunkSetClient) MapCreateBulk(slice any, setFunc func(*ChunkSetCreate, int)) *ChunkSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChunkSetCreateBulk{err: fmt.Errorf("calling to ChunkSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChunkSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChunkSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChunkSet.
func (c *ChunkSetClient) Update() *ChunkSetUpdate {
	mutation := newChunkSetMutation(c.config, OpUpdate)
	return &ChunkSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChunkSetClient) UpdateOne(_m *ChunkSet) *ChunkSetUpdateOne {
	mutation := newChunkSetMutation(c.config, OpUpdateOne, withChunkSet(_m))
	return &ChunkSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChunkSetClient) UpdateOneID(id int) *ChunkSetUpdateOne {
	mutation := newChunkSetMutation(c.config, OpUpdateOne, withChunkSetID(id))
	return &ChunkSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChunkSet.
func (c *ChunkSetClient) Delete() *ChunkSetDelete {
	mutation := newChunkSetMutation(c.config, OpDelete)
	return &ChunkSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChunkSetClient) DeleteOne(_m *ChunkSet) *ChunkSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChunkSetClient) DeleteOneID(id int) *ChunkSetDeleteOne {
	builder := c.Delete().Where(chunkset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChunkSetDeleteOne{builder}
}

// Query returns a query builder for ChunkSet.
func (c *ChunkSetClient) Query() *ChunkSetQuery {
	return &ChunkSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChunkSet},
		inters: c.Interceptors(),
	}
}

// Get returns a ChunkSet entity by its id.
func (c *ChunkSetClient) Get(ctx context.Context, id int) (*ChunkSet, error) {
	return c.Query().Where(chunkset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChunkSetClient) GetX(ctx context.Context, id int) *ChunkSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ChunkSet.
func (c *ChunkSetClient) QueryDocument(_m *ChunkSet) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chunkset.Table, chunkset.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chunkset.DocumentTable, chunkset.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChunks queries the chunks edge of a ChunkSet.
func (c *ChunkSetClient) QueryChunks(_m *ChunkSet) *ChunkQuery {
	query := (&ChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chunkset.Table, chunkset.FieldID, id),
			sqlgraph.To(chunk.Table, chunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chunkset.ChunksTable, chunkset.ChunksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChunkSetClient) Hooks() []Hook {
	return c.hooks.ChunkSet
}

// Interceptors returns the client interceptors.
func (c *ChunkSetClient) Interceptors() []Interceptor {
	return c.inters.ChunkSet
}

func (c *ChunkSetClient) mutate(ctx context.Context, m *ChunkSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChunkSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChunkSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChunkSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChunkSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChunkSet mutation op: %q", m.Op())
	}
}

// CitationClient is a client for the Citation schema.
type CitationClient struct {
	config
}

// NewCitationClient returns a client for the Citation from the given config.
func NewCitationClient(c config) *CitationClient {
	return &CitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `citation.Hooks(f(g(h())))`.
func (c *CitationClient) Use(hooks ...Hook) {
	c.hooks.Citation = append(c.hooks.Citation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `citation.Intercept(f(g(h())))`.
func (c *CitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Citation = append(c.inters.Citation, interceptors...)
}

// Create returns a builder for creating a Citation entity.
func (c *CitationClient) Create() *CitationCreate {
	mutation := newCitationMutation(c.config, OpCreate)
	return &CitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Citation entities.
func (c *CitationClient) CreateBulk(builders ...*CitationCreate) *CitationCreateBulk {
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CitationClient) MapCreateBulk(slice any, setFunc func(*CitationCreate, int)) *CitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CitationCreateBulk{err: fmt.Errorf("calling to CitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Citation.
func (c *CitationClient) Update() *CitationUpdate {
	mutation := newCitationMutation(c.config, OpUpdate)
	return &CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CitationClient) UpdateOne(_m *Citation) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitation(_m))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CitationClient) UpdateOneID(id int) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitationID(id))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Citation.
func (c *CitationClient) Delete() *CitationDelete {
	mutation := newCitationMutation(c.config, OpDelete)
	return &CitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CitationClient) DeleteOne(_m *Citation) *CitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CitationClient) DeleteOneID(id int) *CitationDeleteOne {
	builder := c.Delete().Where(citation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CitationDeleteOne{builder}
}

// Query returns a query builder for Citation.
func (c *CitationClient) Query() *CitationQuery {
	return &CitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCitation},
		inters: c.Interceptors(),
	}
}

// Get returns a Citation entity by its id.
func (c *CitationClient) Get(ctx context.Context, id int) (*Citation, error) {
	return c.Query().Where(citation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CitationClient) GetX(ctx context.Context, id int) *Citation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnswer queries the answer edge of a Citation.
func (c *CitationClient) QueryAnswer(_m *Citation) *AnswerQuery {
	query := (&AnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.AnswerTable, citation.AnswerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CitationClient) Hooks() []Hook {
	return c.hooks.Citation
}

// Interceptors returns the client interceptors.
func (c *CitationClient) Interceptors() []Interceptor {
	return c.inters.Citation
}

func (c *CitationClient) mutate(ctx context.Context, m *CitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Citation mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id int) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id int) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id int) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id int) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubscription queries the subscription edge of a Company.
func (c *CompanyClient) QuerySubscription(_m *Company) *SubscriptionQuery {
	query := (&SubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, company.SubscriptionTable, company.SubscriptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Company.
func (c *CompanyClient) QueryDocuments(_m *Company) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.DocumentsTable, company.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatrices queries the matrices edge of a Company.
func (c *CompanyClient) QueryMatrices(_m *Company) *MatrixQuery {
	query := (&MatrixClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(matrix.Table, matrix.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.MatricesTable, company.MatricesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsageEvents queries the usage_events edge of a Company.
func (c *CompanyClient) QueryUsageEvents(_m *Company) *UsageEventQuery {
	query := (&UsageEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(usageevent.Table, usageevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.UsageEventsTable, company.UsageEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryServiceAccounts queries the service_accounts edge of a Company.
func (c *CompanyClient) QueryServiceAccounts(_m *Company) *ServiceAccountQuery {
	query := (&ServiceAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(serviceaccount.Table, serviceaccount.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.ServiceAccountsTable, company.ServiceAccountsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a Company.
func (c *CompanyClient) QueryWorkflows(_m *Company) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.WorkflowsTable, company.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
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

// QueryCompany queries the company edge of a Document.
func (c *DocumentClient) QueryCompany(_m *Document) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.CompanyTable, document.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChunkSets queries the chunk_sets edge of a Document.
func (c *DocumentClient) QueryChunkSets(_m *Document) *ChunkSetQuery {
	query := (&ChunkSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(chunkset.Table, chunkset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ChunkSetsTable, document.ChunkSetsColumn),
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

// EntitySetClient is a client for the EntitySet schema.
type EntitySetClient struct {
	config
}

// NewEntitySetClient returns a client for the EntitySet from the given config.
func NewEntitySetClient(c config) *EntitySetClient {
	return &EntitySetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityset.Hooks(f(g(h())))`.
func (c *EntitySetClient) Use(hooks ...Hook) {
	c.hooks.EntitySet = append(c.hooks.EntitySet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityset.Intercept(f(g(h())))`.
func (c *EntitySetClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntitySet = append(c.inters.EntitySet, interceptors...)
}

// Create returns a builder for creating a EntitySet entity.
func (c *EntitySetClient) Create() *EntitySetCreate {
	mutation := newEntitySetMutation(c.config, OpCreate)
	return &EntitySetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntitySet entities.
func (c *EntitySetClient) CreateBulk(builders ...*EntitySetCreate) *EntitySetCreateBulk {
	return &EntitySetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitySetClient) MapCreateBulk(slice any, setFunc func(*EntitySetCreate, int)) *EntitySetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitySetCreateBulk{err: fmt.Errorf("calling to EntitySetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitySetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitySetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntitySet.
func (c *EntitySetClient) Update() *EntitySetUpdate {
	mutation := newEntitySetMutation(c.config, OpUpdate)
	return &EntitySetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitySetClient) UpdateOne(_m *EntitySet) *EntitySetUpdateOne {
	mutation := newEntitySetMutation(c.config, OpUpdateOne, withEntitySet(_m))
	return &EntitySetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitySetClient) UpdateOneID(id int) *EntitySetUpdateOne {
	mutation := newEntitySetMutation(c.config, OpUpdateOne, withEntitySetID(id))
	return &EntitySetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntitySet.
func (c *EntitySetClient) Delete() *EntitySetDelete {
	mutation := newEntitySetMutation(c.config, OpDelete)
	return &EntitySetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitySetClient) DeleteOne(_m *EntitySet) *EntitySetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitySetClient) DeleteOneID(id int) *EntitySetDeleteOne {
	builder := c.Delete().Where(entityset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitySetDeleteOne{builder}
}

// Query returns a query builder for EntitySet.
func (c *EntitySetClient) Query() *EntitySetQuery {
	return &EntitySetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitySet},
		inters: c.Interceptors(),
	}
}

// Get returns a EntitySet entity by its id.
func (c *EntitySetClient) Get(ctx context.Context, id int) (*EntitySet, error) {
	return c.Query().Where(entityset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitySetClient) GetX(ctx context.Context, id int) *EntitySet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatrix queries the matrix edge of a EntitySet.
func (c *EntitySetClient) QueryMatrix(_m *EntitySet) *MatrixQuery {
	query := (&MatrixClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityset.Table, entityset.FieldID, id),
			sqlgraph.To(matrix.Table, matrix.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityset.MatrixTable, entityset.MatrixColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMembers queries the members edge of a EntitySet.
func (c *EntitySetClient) QueryMembers(_m *EntitySet) *EntitySetMemberQuery {
	query := (&EntitySetMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityset.Table, entityset.FieldID, id),
			sqlgraph.To(entitysetmember.Table, entitysetmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entityset.MembersTable, entityset.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntitySetClient) Hooks() []Hook {
	return c.hooks.EntitySet
}

// Interceptors returns the client interceptors.
func (c *EntitySetClient) Interceptors() []Interceptor {
	return c.inters.EntitySet
}

func (c *EntitySetClient) mutate(ctx context.Context, m *EntitySetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitySetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitySetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitySetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitySetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntitySet mutation op: %q", m.Op())
	}
}

// EntitySetMemberClient is a client for the EntitySetMember schema.
type EntitySetMemberClient struct {
	config
}

// NewEntitySetMemberClient returns a client for the EntitySetMember from the given config.
func NewEntitySetMemberClient(c config) *EntitySetMemberClient {
	return &EntitySetMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitysetmember.Hooks(f(g(h())))`.
func (c *EntitySetMemberClient) Use(hooks ...Hook) {
	c.hooks.EntitySetMember = append(c.hooks.EntitySetMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitysetmember.Intercept(f(g(h())))`.
func (c *EntitySetMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntitySetMember = append(c.inters.EntitySetMember, interceptors...)
}

// Create returns a builder for creating a EntitySetMember entity.
func (c *EntitySetMemberClient) Create() *EntitySetMemberCreate {
	mutation := newEntitySetMemberMutation(c.config, OpCreate)
	return &EntitySetMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntitySetMember entities.
func (c *EntitySetMemberClient) CreateBulk(builders ...*EntitySetMemberCreate) *EntitySetMemberCreateBulk {
	return &EntitySetMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitySetMemberClient) MapCreateBulk(slice any, setFunc func(*EntitySetMemberCreate, int)) *EntitySetMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitySetMemberCreateBulk{err: fmt.Errorf("calling to EntitySetMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitySetMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitySetMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntitySetMember.
func (c *EntitySetMemberClient) Update() *EntitySetMemberUpdate {
	mutation := newEntitySetMemberMutation(c.config, OpUpdate)
	return &EntitySetMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitySetMemberClient) UpdateOne(_m *EntitySetMember) *EntitySetMemberUpdateOne {
	mutation := newEntitySetMemberMutation(c.config, OpUpdateOne, withEntitySetMember(_m))
	return &EntitySetMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitySetMemberClient) UpdateOneID(id int) *EntitySetMemberUpdateOne {
	mutation := newEntitySetMemberMutation(c.config, OpUpdateOne, withEntitySetMemberID(id))
	return &EntitySetMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntitySetMember.
func (c *EntitySetMemberClient) Delete() *EntitySetMemberDelete {
	mutation := newEntitySetMemberMutation(c.config, OpDelete)
	return &EntitySetMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitySetMemberClient) DeleteOne(_m *EntitySetMember) *EntitySetMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitySetMemberClient) DeleteOneID(id int) *EntitySetMemberDeleteOne {
	builder := c.Delete().Where(entitysetmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitySetMemberDeleteOne{builder}
}

// Query returns a query builder for EntitySetMember.
func (c *EntitySetMemberClient) Query() *EntitySetMemberQuery {
	return &EntitySetMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitySetMember},
		inters: c.Interceptors(),
	}
}

// Get returns a EntitySetMember entity by its id.
func (c *EntitySetMemberClient) Get(ctx context.Context, id int) (*EntitySetMember, error) {
	return c.Query().Where(entitysetmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitySetMemberClient) GetX(ctx context.Context, id int) *EntitySetMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntitySet queries the entity_set edge of a EntitySetMember.
func (c *EntitySetMemberClient) QueryEntitySet(_m *EntitySetMember) *EntitySetQuery {
	query := (&EntitySetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitysetmember.Table, entitysetmember.FieldID, id),
			sqlgraph.To(entityset.Table, entityset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entitysetmember.EntitySetTable, entitysetmember.EntitySetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntitySetMemberClient) Hooks() []Hook {
	return c.hooks.EntitySetMember
}

// Interceptors returns the client interceptors.
func (c *EntitySetMemberClient) Interceptors() []Interceptor {
	return c.inters.EntitySetMember
}

func (c *EntitySetMemberClient) mutate(ctx context.Context, m *EntitySetMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitySetMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitySetMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitySetMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitySetMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntitySetMember mutation op: %q", m.Op())
	}
}

// ExecutionFileClient is a client for the ExecutionFile schema.
type ExecutionFileClient struct {
	config
}

// NewExecutionFileClient returns a client for the ExecutionFile from the given config.
func NewExecutionFileClient(c config) *ExecutionFileClient {
	return &ExecutionFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionfile.Hooks(f(g(h())))`.
func (c *ExecutionFileClient) Use(hooks ...Hook) {
	c.hooks.ExecutionFile = append(c.hooks.ExecutionFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionfile.Intercept(f(g(h())))`.
func (c *ExecutionFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionFile = append(c.inters.ExecutionFile, interceptors...)
}

// Create returns a builder for creating a ExecutionFile entity.
func (c *ExecutionFileClient) Create() *ExecutionFileCreate {
	mutation := newExecutionFileMutation(c.config, OpCreate)
	return &ExecutionFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionFile entities.
func (c *ExecutionFileClient) CreateBulk(builders ...*ExecutionFileCreate) *ExecutionFileCreateBulk {
	return &ExecutionFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionFileClient) MapCreateBulk(slice any, setFunc func(*ExecutionFileCreate, int)) *ExecutionFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionFileCreateBulk{err: fmt.Errorf("calling to ExecutionFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionFile.
func (c *ExecutionFileClient) Update() *ExecutionFileUpdate {
	mutation := newExecutionFileMutation(c.config, OpUpdate)
	return &ExecutionFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionFileClient) UpdateOne(_m *ExecutionFile) *ExecutionFileUpdateOne {
	mutation := newExecutionFileMutation(c.config, OpUpdateOne, withExecutionFile(_m))
	return &ExecutionFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionFileClient) UpdateOneID(id int) *ExecutionFileUpdateOne {
	mutation := newExecutionFileMutation(c.config, OpUpdateOne, withExecutionFileID(id))
	return &ExecutionFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionFile.
func (c *ExecutionFileClient) Delete() *ExecutionFileDelete {
	mutation := newExecutionFileMutation(c.config, OpDelete)
	return &ExecutionFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionFileClient) DeleteOne(_m *ExecutionFile) *ExecutionFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionFileClient) DeleteOneID(id int) *ExecutionFileDeleteOne {
	builder := c.Delete().Where(executionfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionFileDeleteOne{builder}
}

// Query returns a query builder for ExecutionFile.
func (c *ExecutionFileClient) Query() *ExecutionFileQuery {
	return &ExecutionFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionFile entity by its id.
func (c *ExecutionFileClient) Get(ctx context.Context, id int) (*ExecutionFile, error) {
	return c.Query().Where(executionfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionFileClient) GetX(ctx context.Context, id int) *ExecutionFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ExecutionFile.
func (c *ExecutionFileClient) QueryExecution(_m *ExecutionFile) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionfile.Table, executionfile.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionfile.ExecutionTable, executionfile.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionFileClient) Hooks() []Hook {
	return c.hooks.ExecutionFile
}

// Interceptors returns the client interceptors.
func (c *ExecutionFileClient) Interceptors() []Interceptor {
	return c.inters.ExecutionFile
}

func (c *ExecutionFileClient) mutate(ctx context.Context, m *ExecutionFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionFile mutation op: %q", m.Op())
	}
}

// MatrixClient is a client for the Matrix schema.
type MatrixClient struct {
	config
}

// NewMatrixClient returns a client for the Matrix from the given config.
func NewMatrixClient(c config) *MatrixClient {
	return &MatrixClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matrix.Hooks(f(g(h())))`.
func (c *MatrixClient) Use(hooks ...Hook) {
	c.hooks.Matrix = append(c.hooks.Matrix, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matrix.Intercept(f(g(h())))`.
func (c *MatrixClient) Intercept(interceptors ...Interceptor) {
	c.inters.Matrix = append(c.inters.Matrix, interceptors...)
}

// Create returns a builder for creating a Matrix entity.
func (c *MatrixClient) Create() *MatrixCreate {
	mutation := newMatrixMutation(c.config, OpCreate)
	return &MatrixCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Matrix entities.
func (c *MatrixClient) CreateBulk(builders ...*MatrixCreate) *MatrixCreateBulk {
	return &MatrixCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatrixClient) MapCreateBulk(slice any, setFunc func(*MatrixCreate, int)) *MatrixCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatrixCreateBulk{err: fmt.Errorf("calling to MatrixClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatrixCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatrixCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Matrix.
func (c *MatrixClient) Update() *MatrixUpdate {
	mutation := newMatrixMutation(c.config, OpUpdate)
	return &MatrixUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatrixClient) UpdateOne(_m *Matrix) *MatrixUpdateOne {
	mutation := newMatrixMutation(c.config, OpUpdateOne, withMatrix(_m))
	return &MatrixUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatrixClient) UpdateOneID(id int) *MatrixUpdateOne {
	mutation := newMatrixMutation(c.config, OpUpdateOne, withMatrixID(id))
	return &MatrixUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Matrix.
func (c *MatrixClient) Delete() *MatrixDelete {
	mutation := newMatrixMutation(c.config, OpDelete)
	return &MatrixDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatrixClient) DeleteOne(_m *Matrix) *MatrixDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatrixClient) DeleteOneID(id int) *MatrixDeleteOne {
	builder := c.Delete().Where(matrix.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatrixDeleteOne{builder}
}

// Query returns a query builder for Matrix.
func (c *MatrixClient) Query() *MatrixQuery {
	return &MatrixQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatrix},
		inters: c.Interceptors(),
	}
}

// Get returns a Matrix entity by its id.
func (c *MatrixClient) Get(ctx context.Context, id int) (*Matrix, error) {
	return c.Query().Where(matrix.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatrixClient) GetX(ctx context.Context, id int) *Matrix {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Matrix.
func (c *MatrixClient) QueryCompany(_m *Matrix) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrix.Table, matrix.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matrix.CompanyTable, matrix.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntitySets queries the entity_sets edge of a Matrix.
func (c *MatrixClient) QueryEntitySets(_m *Matrix) *EntitySetQuery {
	query := (&EntitySetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrix.Table, matrix.FieldID, id),
			sqlgraph.To(entityset.Table, entityset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrix.EntitySetsTable, matrix.EntitySetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCells queries the cells edge of a Matrix.
func (c *MatrixClient) QueryCells(_m *Matrix) *MatrixCellQuery {
	query := (&MatrixCellClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrix.Table, matrix.FieldID, id),
			sqlgraph.To(matrixcell.Table, matrixcell.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrix.CellsTable, matrix.CellsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatrixClient) Hooks() []Hook {
	return c.hooks.Matrix
}

// Interceptors returns the client interceptors.
func (c *MatrixClient) Interceptors() []Interceptor {
	return c.inters.Matrix
}

func (c *MatrixClient) mutate(ctx context.Context, m *MatrixMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatrixCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatrixUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatrixUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatrixDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Matrix mutation op: %q", m.Op())
	}
}

// MatrixCellClient is a client for the MatrixCell schema.
type MatrixCellClient struct {
	config
}

// NewMatrixCellClient returns a client for the MatrixCell from the given config.
func NewMatrixCellClient(c config) *MatrixCellClient {
	return &MatrixCellClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matrixcell.Hooks(f(g(h())))`.
func (c *MatrixCellClient) Use(hooks ...Hook) {
	c.hooks.MatrixCell = append(c.hooks.MatrixCell, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matrixcell.Intercept(f(g(h())))`.
func (c *MatrixCellClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatrixCell = append(c.inters.MatrixCell, interceptors...)
}

// Create returns a builder for creating a MatrixCell entity.
func (c *MatrixCellClient) Create() *MatrixCellCreate {
	mutation := newMatrixCellMutation(c.config, OpCreate)
	return &MatrixCellCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatrixCell entities.
func (c *MatrixCellClient) CreateBulk(builders ...*MatrixCellCreate) *MatrixCellCreateBulk {
	return &MatrixCellCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatrixCellClient) MapCreateBulk(slice any, setFunc func(*MatrixCellCreate, int)) *MatrixCellCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatrixCellCreateBulk{err: fmt.Errorf("calling to MatrixCellClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatrixCellCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatrixCellCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatrixCell.
func (c *MatrixCellClient) Update() *MatrixCellUpdate {
	mutation := newMatrixCellMutation(c.config, OpUpdate)
	return &MatrixCellUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatrixCellClient) UpdateOne(_m *MatrixCell) *MatrixCellUpdateOne {
	mutation := newMatrixCellMutation(c.config, OpUpdateOne, withMatrixCell(_m))
	return &MatrixCellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatrixCellClient) UpdateOneID(id int) *MatrixCellUpdateOne {
	mutation := newMatrixCellMutation(c.config, OpUpdateOne, withMatrixCellID(id))
	return &MatrixCellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatrixCell.
func (c *MatrixCellClient) Delete() *MatrixCellDelete {
	mutation := newMatrixCellMutation(c.config, OpDelete)
	return &MatrixCellDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatrixCellClient) DeleteOne(_m *MatrixCell) *MatrixCellDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatrixCellClient) DeleteOneID(id int) *MatrixCellDeleteOne {
	builder := c.Delete().Where(matrixcell.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatrixCellDeleteOne{builder}
}

// Query returns a query builder for MatrixCell.
func (c *MatrixCellClient) Query() *MatrixCellQuery {
	return &MatrixCellQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatrixCell},
		inters: c.Interceptors(),
	}
}

// Get returns a MatrixCell entity by its id.
func (c *MatrixCellClient) Get(ctx context.Context, id int) (*MatrixCell, error) {
	return c.Query().Where(matrixcell.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatrixCellClient) GetX(ctx context.Context, id int) *MatrixCell {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatrix queries the matrix edge of a MatrixCell.
func (c *MatrixCellClient) QueryMatrix(_m *MatrixCell) *MatrixQuery {
	query := (&MatrixClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, id),
			sqlgraph.To(matrix.Table, matrix.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matrixcell.MatrixTable, matrixcell.MatrixColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntityRefs queries the entity_refs edge of a MatrixCell.
func (c *MatrixCellClient) QueryEntityRefs(_m *MatrixCell) *CellEntityRefQuery {
	query := (&CellEntityRefClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, id),
			sqlgraph.To(cellentityref.Table, cellentityref.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrixcell.EntityRefsTable, matrixcell.EntityRefsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswerSets queries the answer_sets edge of a MatrixCell.
func (c *MatrixCellClient) QueryAnswerSets(_m *MatrixCell) *AnswerSetQuery {
	query := (&AnswerSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, id),
			sqlgraph.To(answerset.Table, answerset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrixcell.AnswerSetsTable, matrixcell.AnswerSetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQaJobs queries the qa_jobs edge of a MatrixCell.
func (c *MatrixCellClient) QueryQaJobs(_m *MatrixCell) *QAJobQuery {
	query := (&QAJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, id),
			sqlgraph.To(qajob.Table, qajob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrixcell.QaJobsTable, matrixcell.QaJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatrixCellClient) Hooks() []Hook {
	return c.hooks.MatrixCell
}

// Interceptors returns the client interceptors.
func (c *MatrixCellClient) Interceptors() []Interceptor {
	return c.inters.MatrixCell
}

func (c *MatrixCellClient) mutate(ctx context.Context, m *MatrixCellMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatrixCellCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatrixCellUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatrixCellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatrixCellDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatrixCell mutation op: %q", m.Op())
	}
}

// QAJobClient is a client for the QAJob schema.
type QAJobClient struct {
	config
}

// NewQAJobClient returns a client for the QAJob from the given config.
func NewQAJobClient(c config) *QAJobClient {
	return &QAJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `qajob.Hooks(f(g(h())))`.
func (c *QAJobClient) Use(hooks ...Hook) {
	c.hooks.QAJob = append(c.hooks.QAJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `qajob.Intercept(f(g(h())))`.
func (c *QAJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.QAJob = append(c.inters.QAJob, interceptors...)
}

// Create returns a builder for creating a QAJob entity.
func (c *QAJobClient) Create() *QAJobCreate {
	mutation := newQAJobMutation(c.config, OpCreate)
	return &QAJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QAJob entities.
func (c *QAJobClient) CreateBulk(builders ...*QAJobCreate) *QAJobCreateBulk {
	return &QAJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QAJobClient) MapCreateBulk(slice any, setFunc func(*QAJobCreate, int)) *QAJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QAJobCreateBulk{err: fmt.Errorf("calling to QAJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QAJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QAJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QAJob.
func (c *QAJobClient) Update() *QAJobUpdate {
	mutation := newQAJobMutation(c.config, OpUpdate)
	return &QAJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QAJobClient) UpdateOne(_m *QAJob) *QAJobUpdateOne {
	mutation := newQAJobMutation(c.config, OpUpdateOne, withQAJob(_m))
	return &QAJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QAJobClient) UpdateOneID(id int) *QAJobUpdateOne {
	mutation := newQAJobMutation(c.config, OpUpdateOne, withQAJobID(id))
	return &QAJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QAJob.
func (c *QAJobClient) Delete() *QAJobDelete {
	mutation := newQAJobMutation(c.config, OpDelete)
	return &QAJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QAJobClient) DeleteOne(_m *QAJob) *QAJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QAJobClient) DeleteOneID(id int) *QAJobDeleteOne {
	builder := c.Delete().Where(qajob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QAJobDeleteOne{builder}
}

// Query returns a query builder for QAJob.
func (c *QAJobClient) Query() *QAJobQuery {
	return &QAJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQAJob},
		inters: c.Interceptors(),
	}
}

// Get returns a QAJob entity by its id.
func (c *QAJobClient) Get(ctx context.Context, id int) (*QAJob, error) {
	return c.Query().Where(qajob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QAJobClient) GetX(ctx context.Context, id int) *QAJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCell queries the cell edge of a QAJob.
func (c *QAJobClient) QueryCell(_m *QAJob) *MatrixCellQuery {
	query := (&MatrixCellClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qajob.Table, qajob.FieldID, id),
			sqlgraph.To(matrixcell.Table, matrixcell.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, qajob.CellTable, qajob.CellColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QAJobClient) Hooks() []Hook {
	return c.hooks.QAJob
}

// Interceptors returns the client interceptors.
func (c *QAJobClient) Interceptors() []Interceptor {
	return c.inters.QAJob
}

func (c *QAJobClient) mutate(ctx context.Context, m *QAJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QAJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QAJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QAJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QAJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QAJob mutation op: %q", m.Op())
	}
}

// ServiceAccountClient is a client for the ServiceAccount schema.
type ServiceAccountClient struct {
	config
}

// NewServiceAccountClient returns a client for the ServiceAccount from the given config.
func NewServiceAccountClient(c config) *ServiceAccountClient {
	return &ServiceAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceaccount.Hooks(f(g(h())))`.
func (c *ServiceAccountClient) Use(hooks ...Hook) {
	c.hooks.ServiceAccount = append(c.hooks.ServiceAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceaccount.Intercept(f(g(h())))`.
func (c *ServiceAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceAccount = append(c.inters.ServiceAccount, interceptors...)
}

// Create returns a builder for creating a ServiceAccount entity.
func (c *ServiceAccountClient) Create() *ServiceAccountCreate {
	mutation := newServiceAccountMutation(c.config, OpCreate)
	return &ServiceAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceAccount entities.
func (c *ServiceAccountClient) CreateBulk(builders ...*ServiceAccountCreate) *ServiceAccountCreateBulk {
	return &ServiceAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceAccountClient) MapCreateBulk(slice any, setFunc func(*ServiceAccountCreate, int)) *ServiceAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceAccountCreateBulk{err: fmt.Errorf("calling to ServiceAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceAccount.
func (c *ServiceAccountClient) Update() *ServiceAccountUpdate {
	mutation := newServiceAccountMutation(c.config, OpUpdate)
	return &ServiceAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceAccountClient) UpdateOne(_m *ServiceAccount) *ServiceAccountUpdateOne {
	mutation := newServiceAccountMutation(c.config, OpUpdateOne, withServiceAccount(_m))
	return &ServiceAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceAccountClient) UpdateOneID(id int) *ServiceAccountUpdateOne {
	mutation := newServiceAccountMutation(c.config, OpUpdateOne, withServiceAccountID(id))
	return &ServiceAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceAccount.
func (c *ServiceAccountClient) Delete() *ServiceAccountDelete {
	mutation := newServiceAccountMutation(c.config, OpDelete)
	return &ServiceAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceAccountClient) DeleteOne(_m *ServiceAccount) *ServiceAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceAccountClient) DeleteOneID(id int) *ServiceAccountDeleteOne {
	builder := c.Delete().Where(serviceaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceAccountDeleteOne{builder}
}

// Query returns a query builder for ServiceAccount.
func (c *ServiceAccountClient) Query() *ServiceAccountQuery {
	return &ServiceAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceAccount entity by its id.
func (c *ServiceAccountClient) Get(ctx context.Context, id int) (*ServiceAccount, error) {
	return c.Query().Where(serviceaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceAccountClient) GetX(ctx context.Context, id int) *ServiceAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a ServiceAccount.
func (c *ServiceAccountClient) QueryCompany(_m *ServiceAccount) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(serviceaccount.Table, serviceaccount.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, serviceaccount.CompanyTable, serviceaccount.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServiceAccountClient) Hooks() []Hook {
	return c.hooks.ServiceAccount
}

// Interceptors returns the client interceptors.
func (c *ServiceAccountClient) Interceptors() []Interceptor {
	return c.inters.ServiceAccount
}

func (c *ServiceAccountClient) mutate(ctx context.Context, m *ServiceAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceAccount mutation op: %q", m.Op())
	}
}

// SubscriptionClient is a client for the Subscription schema.
type SubscriptionClient struct {
	config
}

// NewSubscriptionClient returns a client for the Subscription from the given config.
func NewSubscriptionClient(c config) *SubscriptionClient {
	return &SubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscription.Hooks(f(g(h())))`.
func (c *SubscriptionClient) Use(hooks ...Hook) {
	c.hooks.Subscription = append(c.hooks.Subscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscription.Intercept(f(g(h())))`.
func (c *SubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscription = append(c.inters.Subscription, interceptors...)
}

// Create returns a builder for creating a Subscription entity.
func (c *SubscriptionClient) Create() *SubscriptionCreate {
	mutation := newSubscriptionMutation(c.config, OpCreate)
	return &SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscription entities.
func (c *SubscriptionClient) CreateBulk(builders ...*SubscriptionCreate) *SubscriptionCreateBulk {
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionClient) MapCreateBulk(slice any, setFunc func(*SubscriptionCreate, int)) *SubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionCreateBulk{err: fmt.Errorf("calling to SubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscription.
func (c *SubscriptionClient) Update() *SubscriptionUpdate {
	mutation := newSubscriptionMutation(c.config, OpUpdate)
	return &SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionClient) UpdateOne(_m *Subscription) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscription(_m))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionClient) UpdateOneID(id int) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscriptionID(id))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscription.
func (c *SubscriptionClient) Delete() *SubscriptionDelete {
	mutation := newSubscriptionMutation(c.config, OpDelete)
	return &SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionClient) DeleteOne(_m *Subscription) *SubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionClient) DeleteOneID(id int) *SubscriptionDeleteOne {
	builder := c.Delete().Where(subscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionDeleteOne{builder}
}

// Query returns a query builder for Subscription.
func (c *SubscriptionClient) Query() *SubscriptionQuery {
	return &SubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscription entity by its id.
func (c *SubscriptionClient) Get(ctx context.Context, id int) (*Subscription, error) {
	return c.Query().Where(subscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionClient) GetX(ctx context.Context, id int) *Subscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Subscription.
func (c *SubscriptionClient) QueryCompany(_m *Subscription) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscription.Table, subscription.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, subscription.CompanyTable, subscription.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubscriptionClient) Hooks() []Hook {
	return c.hooks.Subscription
}

// Interceptors returns the client interceptors.
func (c *SubscriptionClient) Interceptors() []Interceptor {
	return c.inters.Subscription
}

func (c *SubscriptionClient) mutate(ctx context.Context, m *SubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscription mutation op: %q", m.Op())
	}
}

// UsageEventClient is a client for the UsageEvent schema.
type UsageEventClient struct {
	config
}

// NewUsageEventClient returns a client for the UsageEvent from the given config.
func NewUsageEventClient(c config) *UsageEventClient {
	return &UsageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usageevent.Hooks(f(g(h())))`.
func (c *UsageEventClient) Use(hooks ...Hook) {
	c.hooks.UsageEvent = append(c.hooks.UsageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usageevent.Intercept(f(g(h())))`.
func (c *UsageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageEvent = append(c.inters.UsageEvent, interceptors...)
}

// Create returns a builder for creating a UsageEvent entity.
func (c *UsageEventClient) Create() *UsageEventCreate {
	mutation := newUsageEventMutation(c.config, OpCreate)
	return &UsageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageEvent entities.
func (c *UsageEventClient) CreateBulk(builders ...*UsageEventCreate) *UsageEventCreateBulk {
	return &UsageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageEventClient) MapCreateBulk(slice any, setFunc func(*UsageEventCreate, int)) *UsageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageEventCreateBulk{err: fmt.Errorf("calling to UsageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageEvent.
func (c *UsageEventClient) Update() *UsageEventUpdate {
	mutation := newUsageEventMutation(c.config, OpUpdate)
	return &UsageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageEventClient) UpdateOne(_m *UsageEvent) *UsageEventUpdateOne {
	mutation := newUsageEventMutation(c.config, OpUpdateOne, withUsageEvent(_m))
	return &UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageEventClient) UpdateOneID(id int) *UsageEventUpdateOne {
	mutation := newUsageEventMutation(c.config, OpUpdateOne, withUsageEventID(id))
	return &UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageEvent.
func (c *UsageEventClient) Delete() *UsageEventDelete {
	mutation := newUsageEventMutation(c.config, OpDelete)
	return &UsageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageEventClient) DeleteOne(_m *UsageEvent) *UsageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageEventClient) DeleteOneID(id int) *UsageEventDeleteOne {
	builder := c.Delete().Where(usageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageEventDeleteOne{builder}
}

// Query returns a query builder for UsageEvent.
func (c *UsageEventClient) Query() *UsageEventQuery {
	return &UsageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageEvent entity by its id.
func (c *UsageEventClient) Get(ctx context.Context, id int) (*UsageEvent, error) {
	return c.Query().Where(usageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageEventClient) GetX(ctx context.Context, id int) *UsageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a UsageEvent.
func (c *UsageEventClient) QueryCompany(_m *UsageEvent) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usageevent.Table, usageevent.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usageevent.CompanyTable, usageevent.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsageEventClient) Hooks() []Hook {
	return c.hooks.UsageEvent
}

// Interceptors returns the client interceptors.
func (c *UsageEventClient) Interceptors() []Interceptor {
	return c.inters.UsageEvent
}

func (c *UsageEventClient) mutate(ctx context.Context, m *UsageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageEvent mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id int) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id int) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id int) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id int) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Workflow.
func (c *WorkflowClient) QueryCompany(_m *Workflow) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflow.CompanyTable, workflow.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Workflow.
func (c *WorkflowClient) QueryExecutions(_m *Workflow) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ExecutionsTable, workflow.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// WorkflowExecutionClient is a client for the WorkflowExecution schema.
type WorkflowExecutionClient struct {
	config
}

// NewWorkflowExecutionClient returns a client for the WorkflowExecution from the given config.
func NewWorkflowExecutionClient(c config) *WorkflowExecutionClient {
	return &WorkflowExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowexecution.Hooks(f(g(h())))`.
func (c *WorkflowExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowExecution = append(c.hooks.WorkflowExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowexecution.Intercept(f(g(h())))`.
func (c *WorkflowExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowExecution = append(c.inters.WorkflowExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowExecution entity.
func (c *WorkflowExecutionClient) Create() *WorkflowExecutionCreate {
	mutation := newWorkflowExecutionMutation(c.config, OpCreate)
	return &WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowExecution entities.
func (c *WorkflowExecutionClient) CreateBulk(builders ...*WorkflowExecutionCreate) *WorkflowExecutionCreateBulk {
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowExecutionCreate, int)) *WorkflowExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Update() *WorkflowExecutionUpdate {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdate)
	return &WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowExecutionClient) UpdateOne(_m *WorkflowExecution) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecution(_m))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowExecutionClient) UpdateOneID(id int) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecutionID(id))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Delete() *WorkflowExecutionDelete {
	mutation := newWorkflowExecutionMutation(c.config, OpDelete)
	return &WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowExecutionClient) DeleteOne(_m *WorkflowExecution) *WorkflowExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowExecutionClient) DeleteOneID(id int) *WorkflowExecutionDeleteOne {
	builder := c.Delete().Where(workflowexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Query() *WorkflowExecutionQuery {
	return &WorkflowExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowExecution entity by its id.
func (c *WorkflowExecutionClient) Get(ctx context.Context, id int) (*WorkflowExecution, error) {
	return c.Query().Where(workflowexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowExecutionClient) GetX(ctx context.Context, id int) *WorkflowExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryWorkflow(_m *WorkflowExecution) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowexecution.WorkflowTable, workflowexecution.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryFiles(_m *WorkflowExecution) *ExecutionFileQuery {
	query := (&ExecutionFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(executionfile.Table, executionfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.FilesTable, workflowexecution.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowExecution
}

func (c *WorkflowExecutionClient) mutate(ctx context.Context, m *WorkflowExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Answer, AnswerSet, CellEntityRef, Chunk, ChunkSet, Citation, Company, Document,
		EntitySet, EntitySetMember, ExecutionFile, Matrix, MatrixCell, QAJob,
		ServiceAccount, Subscription, UsageEvent, Workflow,
		WorkflowExecution []ent.Hook
	}
	inters struct {
		Answer, AnswerSet, CellEntityRef, Chunk, ChunkSet, Citation, Company, Document,
		EntitySet, EntitySetMember, ExecutionFile, Matrix, MatrixCell, QAJob,
		ServiceAccount, Subscription, UsageEvent, Workflow,
		WorkflowExecution []ent.Interceptor
	}
)
