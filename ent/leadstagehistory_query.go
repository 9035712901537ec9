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
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/predicate"
	"github.com/creatorbridge/api/ent/user"
)

// LeadStageHistoryQuery is the builder for querying LeadStageHistory entities.
type LeadStageHistoryQuery struct {
	config
	ctx        *QueryContext
	order      []leadstagehistory.OrderOption
	inters     []Interceptor
	predicates []predicate.LeadStageHistory
	withLead   *LeadQuery
	withUser   *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LeadStageHistoryQuery builder.
func (_q *LeadStageHistoryQuery) Where(ps ...predicate.LeadStageHistory) *LeadStageHistoryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LeadStageHistoryQuery) Limit(limit int) *LeadStageHistoryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LeadStageHistoryQuery) Offset(offset int) *LeadStageHistoryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LeadStageHistoryQuery) Unique(unique bool) *LeadStageHistoryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LeadStageHistoryQuery) Order(o ...leadstagehistory.OrderOption) *LeadStageHistoryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLead chains the current query on the "lead" edge.
func (_q *LeadStageHistoryQuery) QueryLead() *LeadQuery {
	query := (&LeadClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(leadstagehistory.Table, leadstagehistory.FieldID, selector),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leadstagehistory.LeadTable, leadstagehistory.LeadColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUser chains the current query on the "user" edge.
func (_q *LeadStageHistoryQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(leadstagehistory.Table, leadstagehistory.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leadstagehistory.UserTable, leadstagehistory.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LeadStageHistory entity from the query.
// Returns a *NotFoundError when no LeadStageHistory was found.
func (_q *LeadStageHistoryQuery) First(ctx context.Context) (*LeadStageHistory, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{leadstagehistory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) FirstX(ctx context.Context) *LeadStageHistory {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LeadStageHistory ID from the query.
// Returns a *NotFoundError when no LeadStageHistory ID was found.
func (_q *LeadStageHistoryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{leadstagehistory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LeadStageHistory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LeadStageHistory entity is found.
// Returns a *NotFoundError when no LeadStageHistory entities are found.
func (_q *LeadStageHistoryQuery) Only(ctx context.Context) (*LeadStageHistory, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{leadstagehistory.Label}
	default:
		return nil, &NotSingularError{leadstagehistory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) OnlyX(ctx context.Context) *LeadStageHistory {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LeadStageHistory ID in the query.
// Returns a *NotSingularError when more than one LeadStageHistory ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LeadStageHistoryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{leadstagehistory.Label}
	default:
		err = &NotSingularError{leadstagehistory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LeadStageHistories.
func (_q *LeadStageHistoryQuery) All(ctx context.Context) ([]*LeadStageHistory, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LeadStageHistory, *LeadStageHistoryQuery]()
	return withInterceptors[[]*LeadStageHistory](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) AllX(ctx context.Context) []*LeadStageHistory {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LeadStageHistory IDs.
func (_q *LeadStageHistoryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(leadstagehistory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LeadStageHistoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LeadStageHistoryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LeadStageHistoryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LeadStageHistoryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LeadStageHistoryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LeadStageHistoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LeadStageHistoryQuery) Clone() *LeadStageHistoryQuery {
	if _q == nil {
		return nil
	}
	return &LeadStageHistoryQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]leadstagehistory.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.LeadStageHistory{}, _q.predicates...),
		withLead:   _q.withLead.Clone(),
		withUser:   _q.withUser.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLead tells the query-builder to eager-load the nodes that are connected to
// the "lead" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LeadStageHistoryQuery) WithLead(opts ...func(*LeadQuery)) *LeadStageHistoryQuery {
	query := (&LeadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLead = query
	return _q
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LeadStageHistoryQuery) WithUser(opts ...func(*UserQuery)) *LeadStageHistoryQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		LeadID int `json:"lead_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LeadStageHistory.Query().
//		GroupBy(leadstagehistory.FieldLeadID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LeadStageHistoryQuery) GroupBy(field string, fields ...string) *LeadStageHistoryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LeadStageHistoryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = leadstagehistory.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		LeadID int `json:"lead_id,omitempty"`
//	}
//
//	client.LeadStageHistory.Query().
//		Select(leadstagehistory.FieldLeadID).
//		Scan(ctx, &v)
func (_q *LeadStageHistoryQuery) Select(fields ...string) *LeadStageHistorySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LeadStageHistorySelect{LeadStageHistoryQuery: _q}
	sbuild.label = leadstagehistory.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LeadStageHistorySelect configured with the given aggregations.
func (_q *LeadStageHistoryQuery) Aggregate(fns ...AggregateFunc) *LeadStageHistorySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LeadStageHistoryQuery) prepareQuery(ctx context.Context) error {
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
		if !leadstagehistory.ValidColumn(f) {
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

func (_q *LeadStageHistoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LeadStageHistory, error) {
	var (
		nodes       = []*LeadStageHistory{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withLead != nil,
			_q.withUser != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LeadStageHistory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LeadStageHistory{config: _q.config}
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
	if query := _q.withLead; query != nil {
		if err := _q.loadLead(ctx, query, nodes, nil,
			func(n *LeadStageHistory, e *Lead) { n.Edges.Lead = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *LeadStageHistory, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LeadStageHistoryQuery) loadLead(ctx context.Context, query *LeadQuery, nodes []*LeadStageHistory, init func(*LeadStageHistory), assign func(*LeadStageHistory, *Lead)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*LeadStageHistory)
	for i := range nodes {
		fk := nodes[i].LeadID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lead.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lead_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LeadStageHistoryQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*LeadStageHistory, init func(*LeadStageHistory), assign func(*LeadStageHistory, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*LeadStageHistory)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *LeadStageHistoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LeadStageHistoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(leadstagehistory.Table, leadstagehistory.Columns, sqlgraph.NewFieldSpec(leadstagehistory.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadstagehistory.FieldID)
		for i := range fields {
			if fields[i] != leadstagehistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLead != nil {
			_spec.Node.AddColumnOnce(leadstagehistory.FieldLeadID)
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(leadstagehistory.FieldUserID)
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

func (_q *LeadStageHistoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(leadstagehistory.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = leadstagehistory.Columns
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

// LeadStageHistoryGroupBy is the group-by builder for LeadStageHistory entities.
type LeadStageHistoryGroupBy struct {
	selector
	build *LeadStageHistoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LeadStageHistoryGroupBy) Aggregate(fns ...AggregateFunc) *LeadStageHistoryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LeadStageHistoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeadStageHistoryQuery, *LeadStageHistoryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LeadStageHistoryGroupBy) sqlScan(ctx context.Context, root *LeadStageHistoryQuery, v any) error {
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

// LeadStageHistorySelect is the builder for selecting fields of LeadStageHistory entities.
type LeadStageHistorySelect struct {
	*LeadStageHistoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LeadStageHistorySelect) Aggregate(fns ...AggregateFunc) *LeadStageHistorySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LeadStageHistorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LeadStageHistoryQuery, *LeadStageHistorySelect](ctx, _s.LeadStageHistoryQuery, _s, _s.inters, v)
}

func (_s *LeadStageHistorySelect) sqlScan(ctx context.Context, root *LeadStageHistoryQuery, v any) error {
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
