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
	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/predicate"
)

// CreatorQuery is the builder for querying Creator entities.
type CreatorQuery struct {
	config
	ctx            *QueryContext
	order          []creator.OrderOption
	inters         []Interceptor
	predicates     []predicate.Creator
	withMilestones *MilestoneQuery
	withKits       *OnboardingKitQuery
	withActivities *ActivityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CreatorQuery builder.
func (_q *CreatorQuery) Where(ps ...predicate.Creator) *CreatorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CreatorQuery) Limit(limit int) *CreatorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CreatorQuery) Offset(offset int) *CreatorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CreatorQuery) Unique(unique bool) *CreatorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CreatorQuery) Order(o ...creator.OrderOption) *CreatorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMilestones chains the current query on the "milestones" edge.
func (_q *CreatorQuery) QueryMilestones() *MilestoneQuery {
	query := (&MilestoneClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creator.Table, creator.FieldID, selector),
			sqlgraph.To(milestone.Table, milestone.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creator.MilestonesTable, creator.MilestonesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKits chains the current query on the "kits" edge.
func (_q *CreatorQuery) QueryKits() *OnboardingKitQuery {
	query := (&OnboardingKitClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creator.Table, creator.FieldID, selector),
			sqlgraph.To(onboardingkit.Table, onboardingkit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creator.KitsTable, creator.KitsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryActivities chains the current query on the "activities" edge.
func (_q *CreatorQuery) QueryActivities() *ActivityQuery {
	query := (&ActivityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creator.Table, creator.FieldID, selector),
			sqlgraph.To(activity.Table, activity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creator.ActivitiesTable, creator.ActivitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Creator entity from the query.
// Returns a *NotFoundError when no Creator was found.
func (_q *CreatorQuery) First(ctx context.Context) (*Creator, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{creator.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CreatorQuery) FirstX(ctx context.Context) *Creator {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Creator ID from the query.
// Returns a *NotFoundError when no Creator ID was found.
func (_q *CreatorQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{creator.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CreatorQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Creator entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Creator entity is found.
// Returns a *NotFoundError when no Creator entities are found.
func (_q *CreatorQuery) Only(ctx context.Context) (*Creator, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{creator.Label}
	default:
		return nil, &NotSingularError{creator.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CreatorQuery) OnlyX(ctx context.Context) *Creator {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Creator ID in the query.
// Returns a *NotSingularError when more than one Creator ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CreatorQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{creator.Label}
	default:
		err = &NotSingularError{creator.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CreatorQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Creators.
func (_q *CreatorQuery) All(ctx context.Context) ([]*Creator, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Creator, *CreatorQuery]()
	return withInterceptors[[]*Creator](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CreatorQuery) AllX(ctx context.Context) []*Creator {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Creator IDs.
func (_q *CreatorQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(creator.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CreatorQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CreatorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CreatorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CreatorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CreatorQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CreatorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CreatorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CreatorQuery) Clone() *CreatorQuery {
	if _q == nil {
		return nil
	}
	return &CreatorQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]creator.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Creator{}, _q.predicates...),
		withMilestones: _q.withMilestones.Clone(),
		withKits:       _q.withKits.Clone(),
		withActivities: _q.withActivities.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMilestones tells the query-builder to eager-load the nodes that are connected to
// the "milestones" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CreatorQuery) WithMilestones(opts ...func(*MilestoneQuery)) *CreatorQuery {
	query := (&MilestoneClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMilestones = query
	return _q
}

// WithKits tells the query-builder to eager-load the nodes that are connected to
// the "kits" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CreatorQuery) WithKits(opts ...func(*OnboardingKitQuery)) *CreatorQuery {
	query := (&OnboardingKitClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKits = query
	return _q
}

// WithActivities tells the query-builder to eager-load the nodes that are connected to
// the "activities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CreatorQuery) WithActivities(opts ...func(*ActivityQuery)) *CreatorQuery {
	query := (&ActivityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withActivities = query
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
//	client.Creator.Query().
//		GroupBy(creator.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CreatorQuery) GroupBy(field string, fields ...string) *CreatorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CreatorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = creator.Label
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
//	client.Creator.Query().
//		Select(creator.FieldName).
//		Scan(ctx, &v)
func (_q *CreatorQuery) Select(fields ...string) *CreatorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CreatorSelect{CreatorQuery: _q}
	sbuild.label = creator.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CreatorSelect configured with the given aggregations.
func (_q *CreatorQuery) Aggregate(fns ...AggregateFunc) *CreatorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CreatorQuery) prepareQuery(ctx context.Context) error {
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
		if !creator.ValidColumn(f) {
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

func (_q *CreatorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Creator, error) {
	var (
		nodes       = []*Creator{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withMilestones != nil,
			_q.withKits != nil,
			_q.withActivities != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Creator).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Creator{config: _q.config}
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
	if query := _q.withMilestones; query != nil {
		if err := _q.loadMilestones(ctx, query, nodes,
			func(n *Creator) { n.Edges.Milestones = []*Milestone{} },
			func(n *Creator, e *Milestone) { n.Edges.Milestones = append(n.Edges.Milestones, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKits; query != nil {
		if err := _q.loadKits(ctx, query, nodes,
			func(n *Creator) { n.Edges.Kits = []*OnboardingKit{} },
			func(n *Creator, e *OnboardingKit) { n.Edges.Kits = append(n.Edges.Kits, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withActivities; query != nil {
		if err := _q.loadActivities(ctx, query, nodes,
			func(n *Creator) { n.Edges.Activities = []*Activity{} },
			func(n *Creator, e *Activity) { n.Edges.Activities = append(n.Edges.Activities, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CreatorQuery) loadMilestones(ctx context.Context, query *MilestoneQuery, nodes []*Creator, init func(*Creator), assign func(*Creator, *Milestone)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Creator)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(milestone.FieldClientID)
	}
	query.Where(predicate.Milestone(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creator.MilestonesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CreatorQuery) loadKits(ctx context.Context, query *OnboardingKitQuery, nodes []*Creator, init func(*Creator), assign func(*Creator, *OnboardingKit)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Creator)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(onboardingkit.FieldClientID)
	}
	query.Where(predicate.OnboardingKit(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creator.KitsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CreatorQuery) loadActivities(ctx context.Context, query *ActivityQuery, nodes []*Creator, init func(*Creator), assign func(*Creator, *Activity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Creator)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(activity.FieldClientID)
	}
	query.Where(predicate.Activity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creator.ActivitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CreatorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CreatorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(creator.Table, creator.Columns, sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creator.FieldID)
		for i := range fields {
			if fields[i] != creator.FieldID {
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

func (_q *CreatorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(creator.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = creator.Columns
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

// CreatorGroupBy is the group-by builder for Creator entities.
type CreatorGroupBy struct {
	selector
	build *CreatorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CreatorGroupBy) Aggregate(fns ...AggregateFunc) *CreatorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CreatorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreatorQuery, *CreatorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CreatorGroupBy) sqlScan(ctx context.Context, root *CreatorQuery, v any) error {
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

// CreatorSelect is the builder for selecting fields of Creator entities.
type CreatorSelect struct {
	*CreatorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CreatorSelect) Aggregate(fns ...AggregateFunc) *CreatorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CreatorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreatorQuery, *CreatorSelect](ctx, _s.CreatorQuery, _s, _s.inters, v)
}

func (_s *CreatorSelect) sqlScan(ctx context.Context, root *CreatorQuery, v any) error {
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
