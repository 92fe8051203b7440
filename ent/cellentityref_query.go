// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// CellEntityRefQuery is the builder for querying CellEntityRef entities.
type CellEntityRefQuery struct {
	config
	ctx        *QueryContext
	order      []cellentityref.OrderOption
	inters     []Interceptor
	predicates []predicate.CellEntityRef
	withCell   *MatrixCellQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CellEntityRefQuery builder.
func (_q *CellEntityRefQuery) Where(ps ...predicate.CellEntityRef) *CellEntityRefQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CellEntityRefQuery) Limit(limit int) *CellEntityRefQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CellEntityRefQuery) Offset(offset int) *CellEntityRefQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CellEntityRefQuery) Unique(unique bool) *CellEntityRefQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CellEntityRefQuery) Order(o ...cellentityref.OrderOption) *CellEntityRefQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCell chains the current query on the "cell" edge.
func (_q *CellEntityRefQuery) QueryCell() *MatrixCellQuery {
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
			sqlgraph.From(cellentityref.Table, cellentityref.FieldID, selector),
			sqlgraph.To(matrixcell.Table, matrixcell.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cellentityref.CellTable, cellentityref.CellColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CellEntityRef entity from the query.
// Returns a *NotFoundError when no CellEntityRef was found.
func (_q *CellEntityRefQuery) First(ctx context.Context) (*CellEntityRef, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cellentityref.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CellEntityRefQuery) FirstX(ctx context.Context) *CellEntityRef {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CellEntityRef ID from the query.
// Returns a *NotFoundError when no CellEntityRef ID was found.
func (_q *CellEntityRefQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cellentityref.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CellEntityRefQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CellEntityRef entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CellEntityRef entity is found.
// Returns a *NotFoundError when no CellEntityRef entities are found.
func (_q *CellEntityRefQuery) Only(ctx context.Context) (*CellEntityRef, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cellentityref.Label}
	default:
		return nil, &NotSingularError{cellentityref.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CellEntityRefQuery) OnlyX(ctx context.Context) *CellEntityRef {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CellEntityRef ID in the query.
// Returns a *NotSingularError when more than one CellEntityRef ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CellEntityRefQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cellentityref.Label}
	default:
		err = &NotSingularError{cellentityref.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CellEntityRefQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CellEntityRefs.
func (_q *CellEntityRefQuery) All(ctx context.Context) ([]*CellEntityRef, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CellEntityRef, *CellEntityRefQuery]()
	return withInterceptors[[]*CellEntityRef](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CellEntityRefQuery) AllX(ctx context.Context) []*CellEntityRef {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CellEntityRef IDs.
func (_q *CellEntityRefQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(cellentityref.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CellEntityRefQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CellEntityRefQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CellEntityRefQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CellEntityRefQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CellEntityRefQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CellEntityRefQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CellEntityRefQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CellEntityRefQuery) Clone() *CellEntityRefQuery {
	if _q == nil {
		return nil
	}
	return &CellEntityRefQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]cellentityref.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CellEntityRef{}, _q.predicates...),
		withCell:   _q.withCell.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCell tells the query-builder to eager-load the nodes that are connected to
// the "cell" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CellEntityRefQuery) WithCell(opts ...func(*MatrixCellQuery)) *CellEntityRefQuery {
	query := (&MatrixCellClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCell = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CellID int `json:"cell_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CellEntityRef.Query().
//		GroupBy(cellentityref.FieldCellID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CellEntityRefQuery) GroupBy(field string, fields ...string) *CellEntityRefGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CellEntityRefGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = cellentityref.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CellID int `json:"cell_id,omitempty"`
//	}
//
//	client.CellEntityRef.Query().
//		Select(cellentityref.FieldCellID).
//		Scan(ctx, &v)
func (_q *CellEntityRefQuery) Select(fields ...string) *CellEntityRefSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CellEntityRefSelect{CellEntityRefQuery: _q}
	sbuild.label = cellentityref.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CellEntityRefSelect configured with the given aggregations.
func (_q *CellEntityRefQuery) Aggregate(fns ...AggregateFunc) *CellEntityRefSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CellEntityRefQuery) prepareQuery(ctx context.Context) error {
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
		if !cellentityref.ValidColumn(f) {
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

func (_q *CellEntityRefQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CellEntityRef, error) {
	var (
		nodes       = []*CellEntityRef{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCell != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CellEntityRef).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CellEntityRef{config: _q.config}
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
	if query := _q.withCell; query != nil {
		if err := _q.loadCell(ctx, query, nodes, nil,
			func(n *CellEntityRef, e *MatrixCell) { n.Edges.Cell = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CellEntityRefQuery) loadCell(ctx context.Context, query *MatrixCellQuery, nodes []*CellEntityRef, init func(*CellEntityRef), assign func(*CellEntityRef, *MatrixCell)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CellEntityRef)
	for i := range nodes {
		fk := nodes[i].CellID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(matrixcell.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "cell_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CellEntityRefQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CellEntityRefQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cellentityref.Table, cellentityref.Columns, sqlgraph.NewFieldSpec(cellentityref.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cellentityref.FieldID)
		for i := range fields {
			if fields[i] != cellentityref.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCell != nil {
			_spec.Node.AddColumnOnce(cellentityref.FieldCellID)
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

func (_q *CellEntityRefQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(cellentityref.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = cellentityref.Columns
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

// CellEntityRefGroupBy is the group-by builder for CellEntityRef entities.
type CellEntityRefGroupBy struct {
	selector
	build *CellEntityRefQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CellEntityRefGroupBy) Aggregate(fns ...AggregateFunc) *CellEntityRefGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CellEntityRefGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CellEntityRefQuery, *CellEntityRefGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CellEntityRefGroupBy) sqlScan(ctx context.Context, root *CellEntityRefQuery, v any) error {
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

// CellEntityRefSelect is the builder for selecting fields of CellEntityRef entities.
type CellEntityRefSelect struct {
	*CellEntityRefQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CellEntityRefSelect) Aggregate(fns ...AggregateFunc) *CellEntityRefSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CellEntityRefSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CellEntityRefQuery, *CellEntityRefSelect](ctx, _s.CellEntityRefQuery, _s, _s.inters, v)
}

func (_s *CellEntityRefSelect) sqlScan(ctx context.Context, root *CellEntityRefQuery, v any) error {
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
