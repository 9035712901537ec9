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
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/predicate"
)

// LeadQuery is the builder for querying Lead entities.
type LeadQuery struct {
	config
	ctx              *QueryContext
	order            []lead.OrderOption
	inters           []Interceptor
	predicates       []predicate.Lead
	withStageHistory *LeadStageHistoryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LeadQuery builder.
func (_q *LeadQuery) Where(ps ...predicate.Lead) *LeadQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LeadQuery) Limit(limit int) *LeadQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LeadQuery) Offset(offset int) *LeadQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LeadQuery) Unique(unique bool) *LeadQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LeadQuery) Order(o ...lead.OrderOption) *LeadQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStageHistory chains the current query on the "stage_history" edge.
func (_q *LeadQuery) QueryStageHistory() *LeadStageHistoryQuery {
	query := (&LeadStageHistoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, selector),
			sqlgraph.To(leadstagehistory.Table, leadstagehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lead.StageHistoryTable, lead.StageHistoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Lead entity from the query.
// Returns a *NotFoundError when no Lead was found.
func (_q *LeadQuery) First(ctx context.Context) (*Lead, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lead.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LeadQuery) FirstX(ctx context.Context) *Lead {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Lead ID from the query.
// Returns a *NotFoundError when no Lead ID was found.
func (_q *LeadQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lead.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LeadQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Lead entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Lead entity is found.
// Returns a *NotFoundError when no Lead entities are found.
func (_q *LeadQuery) Only(ctx context.Context) (*Lead, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lead.Label}
	default:
		return nil, &NotSingularError{lead.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LeadQuery) OnlyX(ctx context.Context) *Lead {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Lead ID in the query.
// Returns a *NotSingularError when more than one Lead ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LeadQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lead.Label}
	default:
		err = &NotSingularError{lead.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LeadQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Leads.
func (_q *LeadQuery) All(ctx context.Context) ([]*Lead, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Lead, *LeadQuery]()
	return withInterceptors[[]*Lead](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LeadQuery) AllX(ctx context.Context) []*Lead {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Lead IDs.
func (_q *LeadQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(lead.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LeadQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LeadQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LeadQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LeadQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LeadQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LeadQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LeadQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LeadQuery) Clone() *LeadQuery {
	if _q == nil {
		return nil
	}
	return &LeadQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]lead.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Lead{}, _q.predicates...),
		withStageHistory: _q.withStageHistory.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStageHistory tells the query-builder to eager-load the nodes that are connected to
// the "stage_history" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LeadQuery) WithStageHistory(opts ...func(*LeadStageHistoryQuery)) *LeadQuery {
	query := (&LeadStageHistoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageHistory = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Lead.Query().
//		GroupBy(lead.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LeadQuery) GroupBy(field string, fields ...string) *LeadGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LeadGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = lead.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Lead.Query().
//		Select(lead.FieldName).
//		Scan(ctx, &v)
func (_q *LeadQuery) Select(fields ...string) *LeadSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LeadSelect{LeadQuery: _q}
	sbuild.label = lead.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LeadSelect configured with the given aggregations.
func (_q *LeadQuery) Aggregate(fns ...AggregateFunc) *LeadSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LeadQuery) prepareQuery(ctx context.Context) error {
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
		if !lead.ValidColumn(f) {
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

func (_q *LeadQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Lead, error) {
	var (
		nodes       = []*Lead{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withStageHistory != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Lead).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Lead{config: _q.config}
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
	if query := _q.withStageHistory; query != nil {
		if err := _q.loadStageHistory(ctx, query, nodes,
			func(n *Lead) { n.Edges.StageHistory = []*LeadStageHistory{} },
			func(n *Lead, e *LeadStageHistory) { n.Edges.StageHistory = append(n.Edges.StageHistory, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LeadQuery) loadStageHistory(ctx context.Context, query *LeadStageHistoryQuery, nodes []*Lead, init func(*Lead), assign func(*Lead, *LeadStageHistory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lead)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(leadstagehistory.FieldLeadID)
	}
	query.Where(predicate.LeadStageHistory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lead.StageHistoryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LeadID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lead_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LeadQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LeadQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for i := range fields {
			if fields[i] != lead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *LeadQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(lead.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = lead.Columns
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

// LeadGroupBy is the group-by builder for Lead entities.
type LeadGroupBy struct {
	selector
	build *LeadQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LeadGroupBy) Aggregate(fns ...AggregateFunc) *LeadGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LeadGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeadQuery, *LeadGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LeadGroupBy) sqlScan(ctx context.Context, root *LeadQuery, v any) error {
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

// LeadSelect is the builder for selecting fields of Lead entities.
type LeadSelect struct {
	*LeadQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LeadSelect) Aggregate(fns ...AggregateFunc) *LeadSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LeadSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeadQuery, *LeadSelect](ctx, _s.LeadQuery, _s, _s.inters, v)
}

func (_s *LeadSelect) sqlScan(ctx context.Context, root *LeadQuery, v any) error {
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
