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
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// MatrixQuery is the builder for querying Matrix entities.
type MatrixQuery struct {
	config
	ctx            *QueryContext
	order          []matrix.OrderOption
	inters         []Interceptor
	predicates     []predicate.Matrix
	withCompany    *CompanyQuery
	withEntitySets *EntitySetQuery
	withCells      *MatrixCellQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MatrixQuery builder.
func (_q *MatrixQuery) Where(ps ...predicate.Matrix) *MatrixQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MatrixQuery) Limit(limit int) *MatrixQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MatrixQuery) Offset(offset int) *MatrixQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MatrixQuery) Unique(unique bool) *MatrixQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MatrixQuery) Order(o ...matrix.OrderOption) *MatrixQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCompany chains the current query on the "company" edge.
func (_q *MatrixQuery) QueryCompany() *CompanyQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrix.Table, matrix.FieldID, selector),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matrix.CompanyTable, matrix.CompanyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntitySets chains the current query on the "entity_sets" edge.
func (_q *MatrixQuery) QueryEntitySets() *EntitySetQuery {
	query := (&EntitySetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrix.Table, matrix.FieldID, selector),
			sqlgraph.To(entityset.Table, entityset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrix.EntitySetsTable, matrix.EntitySetsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCells chains the current query on the "cells" edge.
func (_q *MatrixQuery) QueryCells() *MatrixCellQuery {
	query := (&MatrixCellClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matrix.Table, matrix.FieldID, selector),
			sqlgraph.To(matrixcell.Table, matrixcell.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matrix.CellsTable, matrix.CellsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Matrix entity from the query.
// Returns a *NotFoundError when no Matrix was found.
func (_q *MatrixQuery) First(ctx context.Context) (*Matrix, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{matrix.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MatrixQuery) FirstX(ctx context.Context) *Matrix {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Matrix ID from the query.
// Returns a *NotFoundError when no Matrix ID was found.
func (_q *MatrixQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{matrix.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MatrixQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Matrix entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Matrix entity is found.
// Returns a *NotFoundError when no Matrix entities are found.
func (_q *MatrixQuery) Only(ctx context.Context) (*Matrix, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{matrix.Label}
	default:
		return nil, &NotSingularError{matrix.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MatrixQuery) OnlyX(ctx context.Context) *Matrix {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Matrix ID in the query.
// Returns a *NotSingularError when more than one Matrix ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MatrixQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{matrix.Label}
	default:
		err = &NotSingularError{matrix.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MatrixQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Matrixes.
func (_q *MatrixQuery) All(ctx context.Context) ([]*Matrix, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Matrix, *MatrixQuery]()
	return withInterceptors[[]*Matrix](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MatrixQuery) AllX(ctx context.Context) []*Matrix {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Matrix IDs.
func (_q *MatrixQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(matrix.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MatrixQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MatrixQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MatrixQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MatrixQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MatrixQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MatrixQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MatrixQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MatrixQuery) Clone() *MatrixQuery {
	if _q == nil {
		return nil
	}
	return &MatrixQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]matrix.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Matrix{}, _q.predicates...),
		withCompany:    _q.withCompany.Clone(),
		withEntitySets: _q.withEntitySets.Clone(),
		withCells:      _q.withCells.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCompany tells the query-builder to eager-load the nodes that are connected to
// the "company" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixQuery) WithCompany(opts ...func(*CompanyQuery)) *MatrixQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCompany = query
	return _q
}

// WithEntitySets tells the query-builder to eager-load the nodes that are connected to
// the "entity_sets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixQuery) WithEntitySets(opts ...func(*EntitySetQuery)) *MatrixQuery {
	query := (&EntitySetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntitySets = query
	return _q
}

// WithCells tells the query-builder to eager-load the nodes that are connected to
// the "cells" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatrixQuery) WithCells(opts ...func(*MatrixCellQuery)) *MatrixQuery {
	query := (&MatrixCellClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCells = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompanyID int `json:"company_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Matrix.Query().
//		GroupBy(matrix.FieldCompanyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MatrixQuery) GroupBy(field string, fields ...string) *MatrixGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MatrixGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = matrix.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompanyID int `json:"company_id,omitempty"`
//	}
//
//	client.Matrix.Query().
//		Select(matrix.FieldCompanyID).
//		Scan(ctx, &v)
func (_q *MatrixQuery) Select(fields ...string) *MatrixSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MatrixSelect{MatrixQuery: _q}
	sbuild.label = matrix.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MatrixSelect configured with the given aggregations.
func (_q *MatrixQuery) Aggregate(fns ...AggregateFunc) *MatrixSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MatrixQuery) prepareQuery(ctx context.Context) error {
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
		if !matrix.ValidColumn(f) {
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

func (_q *MatrixQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Matrix, error) {
	var (
		nodes       = []*Matrix{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withCompany != nil,
			_q.withEntitySets != nil,
			_q.withCells != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Matrix).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Matrix{config: _q.config}
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
	if query := _q.withCompany; query != nil {
		if err := _q.loadCompany(ctx, query, nodes, nil,
			func(n *Matrix, e *Company) { n.Edges.Company = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEntitySets; query != nil {
		if err := _q.loadEntitySets(ctx, query, nodes,
			func(n *Matrix) { n.Edges.EntitySets = []*EntitySet{} },
			func(n *Matrix, e *EntitySet) { n.Edges.EntitySets = append(n.Edges.EntitySets, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCells; query != nil {
		if err := _q.loadCells(ctx, query, nodes,
			func(n *Matrix) { n.Edges.Cells = []*MatrixCell{} },
			func(n *Matrix, e *MatrixCell) { n.Edges.Cells = append(n.Edges.Cells, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MatrixQuery) loadCompany(ctx context.Context, query *CompanyQuery, nodes []*Matrix, init func(*Matrix), assign func(*Matrix, *Company)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Matrix)
	for i := range nodes {
		fk := nodes[i].CompanyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(company.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "company_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MatrixQuery) loadEntitySets(ctx context.Context, query *EntitySetQuery, nodes []*Matrix, init func(*Matrix), assign func(*Matrix, *EntitySet)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Matrix)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(entityset.FieldMatrixID)
	}
	query.Where(predicate.EntitySet(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(matrix.EntitySetsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MatrixID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "matrix_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MatrixQuery) loadCells(ctx context.Context, query *MatrixCellQuery, nodes []*Matrix, init func(*Matrix), assign func(*Matrix, *MatrixCell)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Matrix)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(matrixcell.FieldMatrixID)
	}
	query.Where(predicate.MatrixCell(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(matrix.CellsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MatrixID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "matrix_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MatrixQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MatrixQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(matrix.Table, matrix.Columns, sqlgraph.NewFieldSpec(matrix.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matrix.FieldID)
		for i := range fields {
			if fields[i] != matrix.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCompany != nil {
			_spec.Node.AddColumnOnce(matrix.FieldCompanyID)
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

func (_q *MatrixQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(matrix.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = matrix.Columns
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

// MatrixGroupBy is the group-by builder for Matrix entities.
type MatrixGroupBy struct {
	selector
	build *MatrixQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MatrixGroupBy) Aggregate(fns ...AggregateFunc) *MatrixGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MatrixGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MatrixQuery, *MatrixGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MatrixGroupBy) sqlScan(ctx context.Context, root *MatrixQuery, v any) error {
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

// MatrixSelect is the builder for selecting fields of Matrix entities.
type MatrixSelect struct {
	*MatrixQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MatrixSelect) Aggregate(fns ...AggregateFunc) *MatrixSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MatrixSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MatrixQuery, *MatrixSelect](ctx, _s.MatrixQuery, _s, _s.inters, v)
}

func (_s *MatrixSelect) sqlScan(ctx context.Context, root *MatrixQuery, v any) error {
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
