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
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/predicate"
)

// OnboardingKitQuery is the builder for querying OnboardingKit entities.
type OnboardingKitQuery struct {
	config
	ctx           *QueryContext
	order         []onboardingkit.OrderOption
	inters        []Interceptor
	predicates    []predicate.OnboardingKit
	withClient    *CreatorQuery
	withDocuments *DocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OnboardingKitQuery builder.
func (_q *OnboardingKitQuery) Where(ps ...predicate.OnboardingKit) *OnboardingKitQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *OnboardingKitQuery) Limit(limit int) *OnboardingKitQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *OnboardingKitQuery) Offset(offset int) *OnboardingKitQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *OnboardingKitQuery) Unique(unique bool) *OnboardingKitQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *OnboardingKitQuery) Order(o ...onboardingkit.OrderOption) *OnboardingKitQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryClient chains the current query on the "client" edge.
func (_q *OnboardingKitQuery) QueryClient() *CreatorQuery {
	query := (&CreatorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(onboardingkit.Table, onboardingkit.FieldID, selector),
			sqlgraph.To(creator.Table, creator.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, onboardingkit.ClientTable, onboardingkit.ClientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *OnboardingKitQuery) QueryDocuments() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(onboardingkit.Table, onboardingkit.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, onboardingkit.DocumentsTable, onboardingkit.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first OnboardingKit entity from the query.
// Returns a *NotFoundError when no OnboardingKit was found.
func (_q *OnboardingKitQuery) First(ctx context.Context) (*OnboardingKit, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{onboardingkit.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *OnboardingKitQuery) FirstX(ctx context.Context) *OnboardingKit {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OnboardingKit ID from the query.
// Returns a *NotFoundError when no OnboardingKit ID was found.
func (_q *OnboardingKitQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{onboardingkit.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *OnboardingKitQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OnboardingKit entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OnboardingKit entity is found.
// Returns a *NotFoundError when no OnboardingKit entities are found.
func (_q *OnboardingKitQuery) Only(ctx context.Context) (*OnboardingKit, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{onboardingkit.Label}
	default:
		return nil, &NotSingularError{onboardingkit.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *OnboardingKitQuery) OnlyX(ctx context.Context) *OnboardingKit {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OnboardingKit ID in the query.
// Returns a *NotSingularError when more than one OnboardingKit ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *OnboardingKitQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{onboardingkit.Label}
	default:
		err = &NotSingularError{onboardingkit.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *OnboardingKitQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OnboardingKits.
func (_q *OnboardingKitQuery) All(ctx context.Context) ([]*OnboardingKit, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OnboardingKit, *OnboardingKitQuery]()
	return withInterceptors[[]*OnboardingKit](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *OnboardingKitQuery) AllX(ctx context.Context) []*OnboardingKit {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OnboardingKit IDs.
func (_q *OnboardingKitQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(onboardingkit.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *OnboardingKitQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *OnboardingKitQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*OnboardingKitQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *OnboardingKitQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *OnboardingKitQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *OnboardingKitQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OnboardingKitQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *OnboardingKitQuery) Clone() *OnboardingKitQuery {
	if _q == nil {
		return nil
	}
	return &OnboardingKitQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]onboardingkit.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.OnboardingKit{}, _q.predicates...),
		withClient:    _q.withClient.Clone(),
		withDocuments: _q.withDocuments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithClient tells the query-builder to eager-load the nodes that are connected to
// the "client" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OnboardingKitQuery) WithClient(opts ...func(*CreatorQuery)) *OnboardingKitQuery {
	query := (&CreatorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClient = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OnboardingKitQuery) WithDocuments(opts ...func(*DocumentQuery)) *OnboardingKitQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ClientID int `json:"client_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.OnboardingKit.Query().
//		GroupBy(onboardingkit.FieldClientID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *OnboardingKitQuery) GroupBy(field string, fields ...string) *OnboardingKitGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OnboardingKitGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = onboardingkit.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ClientID int `json:"client_id,omitempty"`
//	}
//
//	client.OnboardingKit.Query().
//		Select(onboardingkit.FieldClientID).
//		Scan(ctx, &v)
func (_q *OnboardingKitQuery) Select(fields ...string) *OnboardingKitSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &OnboardingKitSelect{OnboardingKitQuery: _q}
	sbuild.label = onboardingkit.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OnboardingKitSelect configured with the given aggregations.
func (_q *OnboardingKitQuery) Aggregate(fns ...AggregateFunc) *OnboardingKitSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *OnboardingKitQuery) prepareQuery(ctx context.Context) error {
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
		if !onboardingkit.ValidColumn(f) {
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

func (_q *OnboardingKitQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OnboardingKit, error) {
	var (
		nodes       = []*OnboardingKit{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withClient != nil,
			_q.withDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OnboardingKit).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OnboardingKit{config: _q.config}
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
	if query := _q.withClient; query != nil {
		if err := _q.loadClient(ctx, query, nodes, nil,
			func(n *OnboardingKit, e *Creator) { n.Edges.Client = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *OnboardingKit) { n.Edges.Documents = []*Document{} },
			func(n *OnboardingKit, e *Document) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *OnboardingKitQuery) loadClient(ctx context.Context, query *CreatorQuery, nodes []*OnboardingKit, init func(*OnboardingKit), assign func(*OnboardingKit, *Creator)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*OnboardingKit)
	for i := range nodes {
		fk := nodes[i].ClientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(creator.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "client_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *OnboardingKitQuery) loadDocuments(ctx context.Context, query *DocumentQuery, nodes []*OnboardingKit, init func(*OnboardingKit), assign func(*OnboardingKit, *Document)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*OnboardingKit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(document.FieldKitID)
	}
	query.Where(predicate.Document(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(onboardingkit.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.KitID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "kit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *OnboardingKitQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *OnboardingKitQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(onboardingkit.Table, onboardingkit.Columns, sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardingkit.FieldID)
		for i := range fields {
			if fields[i] != onboardingkit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withClient != nil {
			_spec.Node.AddColumnOnce(onboardingkit.FieldClientID)
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

func (_q *OnboardingKitQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(onboardingkit.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = onboardingkit.Columns
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

// OnboardingKitGroupBy is the group-by builder for OnboardingKit entities.
type OnboardingKitGroupBy struct {
	selector
	build *OnboardingKitQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *OnboardingKitGroupBy) Aggregate(fns ...AggregateFunc) *OnboardingKitGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *OnboardingKitGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OnboardingKitQuery, *OnboardingKitGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *OnboardingKitGroupBy) sqlScan(ctx context.Context, root *OnboardingKitQuery, v any) error {
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

// OnboardingKitSelect is the builder for selecting fields of OnboardingKit entities.
type OnboardingKitSelect struct {
	*OnboardingKitQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *OnboardingKitSelect) Aggregate(fns ...AggregateFunc) *OnboardingKitSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *OnboardingKitSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OnboardingKitQuery, *OnboardingKitSelect](ctx, _s.OnboardingKitQuery, _s, _s.inters, v)
}

func (_s *OnboardingKitSelect) sqlScan(ctx context.Context, root *OnboardingKitQuery, v any) error {
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
