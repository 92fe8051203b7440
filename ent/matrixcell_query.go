// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
)

// MatrixCellQuery is the builder for querying MatrixCell entities.
type MatrixCellQuery struct {
	config
	ctx            *QueryContext
	order          []matrixcell.OrderOption
	inters         []Interceptor
	predicates     []predicate.MatrixCell
	withMatrix     *MatrixQuery
	withEntityRefs *CellEntityRefQuery
	withAnswerSets *AnswerSetQuery
	withQaJobs     *QAJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MatrixCellQuery builder.
func (_q *MatrixCellQuery) Where(ps ...predicate.MatrixCell) *MatrixCellQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MatrixCellQuery) Limit(limit int) *MatrixCellQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MatrixCellQuery) Offset(offset int) *MatrixCellQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MatrixCellQuery) Unique(unique bool) *MatrixCellQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MatrixCellQuery) Order(o ...matrixcell.OrderOption) *MatrixCellQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMatrix chains the current query on the "matrix" edge.
func (_q *MatrixCellQuery) QueryMatrix() *MatrixQuery {
	query := (&MatrixClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, selector),
			sqlgraph.To(matrix.Table, matrix.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matrixcell.MatrixTable, matrixcell.MatrixColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntityRefs chains the current query on the "entity_refs" edge.
func (_q *MatrixCellQuery) QueryEntityRefs() *CellEntityRefQuery {
	query := (&CellEntityRefClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, selector),
			sqlgraph.To(cellentityref.Table, cellentityref.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrixcell.EntityRefsTable, matrixcell.EntityRefsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnswerSets chains the current query on the "answer_sets" edge.
func (_q *MatrixCellQuery) QueryAnswerSets() *AnswerSetQuery {
	query := (&AnswerSetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, selector),
			sqlgraph.To(answerset.Table, answerset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrixcell.AnswerSetsTable, matrixcell.AnswerSetsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQaJobs chains the current query on the "qa_jobs" edge.
func (_q *MatrixCellQuery) QueryQaJobs() *QAJobQuery {
	query := (&QAJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrixcell.Table, matrixcell.FieldID, selector),
			sqlgraph.To(qajob.Table, qajob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrixcell.QaJobsTable, matrixcell.QaJobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MatrixCell entity from the query.
// Returns a *NotFoundError when no MatrixCell was found.
func (_q *MatrixCellQuery) First(ctx context.Context) (*MatrixCell, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{matrixcell.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MatrixCellQuery) FirstX(ctx context.Context) *MatrixCell {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MatrixCell ID from the query.
// Returns a *NotFoundError when no MatrixCell ID was found.
func (_q *MatrixCellQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{matrixcell.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MatrixCellQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MatrixCell entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MatrixCell entity is found.
// Returns a *NotFoundError when no MatrixCell entities are found.
func (_q *MatrixCellQuery) Only(ctx context.Context) (*MatrixCell, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{matrixcell.Label}
	default:
		return nil, &NotSingularError{matrixcell.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MatrixCellQuery) OnlyX(ctx context.Context) *MatrixCell {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MatrixCell ID in the query.
// Returns a *NotSingularError when more than one MatrixCell ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MatrixCellQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{matrixcell.Label}
	default:
		err = &NotSingularError{matrixcell.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MatrixCellQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MatrixCells.
func (_q *MatrixCellQuery) All(ctx context.Context) ([]*MatrixCell, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MatrixCell, *MatrixCellQuery]()
	return withInterceptors[[]*MatrixCell](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MatrixCellQuery) AllX(ctx context.Context) []*MatrixCell {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MatrixCell IDs.
func (_q *MatrixCellQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(matrixcell.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MatrixCellQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MatrixCellQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MatrixCellQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MatrixCellQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MatrixCellQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MatrixCellQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MatrixCellQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MatrixCellQuery) Clone() *MatrixCellQuery {
	if _q == nil {
		return nil
	}
	return &MatrixCellQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]matrixcell.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.MatrixCell{}, _q.predicates...),
		withMatrix:     _q.withMatrix.Clone(),
		withEntityRefs: _q.withEntityRefs.Clone(),
		withAnswerSets: _q.withAnswerSets.Clone(),
		withQaJobs:     _q.withQaJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMatrix tells the query-builder to eager-load the nodes that are connected to
// the "matrix" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixCellQuery) WithMatrix(opts ...func(*MatrixQuery)) *MatrixCellQuery {
	query := (&MatrixClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatrix = query
	return _q
}

// WithEntityRefs tells the query-builder to eager-load the nodes that are connected to
// the "entity_refs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixCellQuery) WithEntityRefs(opts ...func(*CellEntityRefQuery)) *MatrixCellQuery {
	query := (&CellEntityRefClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntityRefs = query
	return _q
}

// WithAnswerSets tells the query-builder to eager-load the nodes that are connected to
// the "answer_sets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixCellQuery) WithAnswerSets(opts ...func(*AnswerSetQuery)) *MatrixCellQuery {
	query := (&AnswerSetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnswerSets = query
	return _q
}

// WithQaJobs tells the query-builder to eager-load the nodes that are connected to
// the "qa_jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixCellQuery) WithQaJobs(opts ...func(*QAJobQuery)) *MatrixCellQuery {
	query := (&QAJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQaJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		MatrixID int `json:"matrix_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MatrixCell.Query().
//		GroupBy(matrixcell.FieldMatrixID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MatrixCellQuery) GroupBy(field string, fields ...string) *MatrixCellGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MatrixCellGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = matrixcell.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		MatrixID int `json:"matrix_id,omitempty"`
//	}
//
//	client.MatrixCell.Query().
//		Select(matrixcell.FieldMatrixID).
//		Scan(ctx, &v)
func (_q *MatrixCellQuery) Select(fields ...string) *MatrixCellSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MatrixCellSelect{MatrixCellQuery: _q}
	sbuild.label = matrixcell.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MatrixCellSelect configured with the given aggregations.
func (_q *MatrixCellQuery) Aggregate(fns ...AggregateFunc) *MatrixCellSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MatrixCellQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !matrixcell.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MatrixCellQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MatrixCell, error) {
	var (
		nodes       = []*MatrixCell{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withMatrix != nil,
			_q.withEntityRefs != nil,
			_q.withAnswerSets != nil,
			_q.withQaJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MatrixCell).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MatrixCell{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMatrix; query != nil {
		if err := _q.loadMatrix(ctx, query, nodes, nil,
			func(n *MatrixCell, e *Matrix) { n.Edges.Matrix = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEntityRefs; query != nil {
		if err := _q.loadEntityRefs(ctx, query, nodes,
			func(n *MatrixCell) { n.Edges.EntityRefs = []*CellEntityRef{} },
			func(n *MatrixCell, e *CellEntityRef) { n.Edges.EntityRefs = append(n.Edges.EntityRefs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnswerSets; query != nil {
		if err := _q.loadAnswerSets(ctx, query, nodes,
			func(n *MatrixCell) { n.Edges.AnswerSets = []*AnswerSet{} },
			func(n *MatrixCell, e *AnswerSet) { n.Edges.AnswerSets = append(n.Edges.AnswerSets, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQaJobs; query != nil {
		if err := _q.loadQaJobs(ctx, query, nodes,
			func(n *MatrixCell) { n.Edges.QaJobs = []*QAJob{} },
			func(n *MatrixCell, e *QAJob) { n.Edges.QaJobs = append(n.Edges.QaJobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MatrixCellQuery) loadMatrix(ctx context.Context, query *MatrixQuery, nodes []*MatrixCell, init func(*MatrixCell), assign func(*MatrixCell, *Matrix)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MatrixCell)
	for i := range nodes {
		fk := nodes[i].MatrixID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(matrix.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "matrix_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MatrixCellQuery) loadEntityRefs(ctx context.Context, query *CellEntityRefQuery, nodes []*MatrixCell, init func(*MatrixCell), assign func(*MatrixCell, *CellEntityRef)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*MatrixCell)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cellentityref.FieldCellID)
	}
	query.Where(predicate.CellEntityRef(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(matrixcell.EntityRefsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CellID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "cell_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MatrixCellQuery) loadAnswerSets(ctx context.Context, query *AnswerSetQuery, nodes []*MatrixCell, init func(*MatrixCell), assign func(*MatrixCell, *AnswerSet)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*MatrixCell)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(answerset.FieldCellID)
	}
	query.Where(predicate.AnswerSet(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(matrixcell.AnswerSetsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CellID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "cell_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MatrixCellQuery) loadQaJobs(ctx context.Context, query *QAJobQuery, nodes []*MatrixCell, init func(*MatrixCell), assign func(*MatrixCell, *QAJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*MatrixCell)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(qajob.FieldCellID)
	}
	query.Where(predicate.QAJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(matrixcell.QaJobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CellID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "cell_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MatrixCellQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MatrixCellQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(matrixcell.Table, matrixcell.Columns, sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matrixcell.FieldID)
		for i := range fields {
			if fields[i] != matrixcell.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMatrix != nil {
			_spec.Node.AddColumnOnce(matrixcell.FieldMatrixID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MatrixCellQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(matrixcell.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = matrixcell.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MatrixCellGroupBy is the group-by builder for MatrixCell entities.
type MatrixCellGroupBy struct {
	selector
	build *MatrixCellQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MatrixCellGroupBy) Aggregate(fns ...AggregateFunc) *MatrixCellGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MatrixCellGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MatrixCellQuery, *MatrixCellGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MatrixCellGroupBy) sqlScan(ctx context.Context, root *MatrixCellQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MatrixCellSelect is the builder for selecting fields of MatrixCell entities.
type MatrixCellSelect struct {
	*MatrixCellQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MatrixCellSelect) Aggregate(fns ...AggregateFunc) *MatrixCellSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MatrixCellSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MatrixCellQuery, *MatrixCellSelect](ctx, _s.MatrixCellQuery, _s, _s.inters, v)
}

func (_s *MatrixCellSelect) sqlScan(ctx context.Context, root *MatrixCellQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
