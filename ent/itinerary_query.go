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
	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/ent/event"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/ent/predicate"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/ent/usertrip"
)

// ItineraryQuery is the builder for querying Itinerary entities.
type ItineraryQuery struct {
	config
	ctx              *QueryContext
	order            []itinerary.OrderOption
	inters           []Interceptor
	predicates       []predicate.Itinerary
	withRevisions    *RevisionQuery
	withChatMessages *ChatMessageQuery
	withEvents       *EventQuery
	withUserTrips    *UserTripQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ItineraryQuery builder.
func (_q *ItineraryQuery) Where(ps ...predicate.Itinerary) *ItineraryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ItineraryQuery) Limit(limit int) *ItineraryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ItineraryQuery) Offset(offset int) *ItineraryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ItineraryQuery) Unique(unique bool) *ItineraryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ItineraryQuery) Order(o ...itinerary.OrderOption) *ItineraryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRevisions chains the current query on the "revisions" edge.
func (_q *ItineraryQuery) QueryRevisions() *RevisionQuery {
	query := (&RevisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itinerary.Table, itinerary.FieldID, selector),
			sqlgraph.To(revision.Table, revision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, itinerary.RevisionsTable, itinerary.RevisionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChatMessages chains the current query on the "chat_messages" edge.
func (_q *ItineraryQuery) QueryChatMessages() *ChatMessageQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itinerary.Table, itinerary.FieldID, selector),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, itinerary.ChatMessagesTable, itinerary.ChatMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *ItineraryQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itinerary.Table, itinerary.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, itinerary.EventsTable, itinerary.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUserTrips chains the current query on the "user_trips" edge.
func (_q *ItineraryQuery) QueryUserTrips() *UserTripQuery {
	query := (&UserTripClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itinerary.Table, itinerary.FieldID, selector),
			sqlgraph.To(usertrip.Table, usertrip.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, itinerary.UserTripsTable, itinerary.UserTripsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Itinerary entity from the query.
// Returns a *NotFoundError when no Itinerary was found.
func (_q *ItineraryQuery) First(ctx context.Context) (*Itinerary, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{itinerary.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ItineraryQuery) FirstX(ctx context.Context) *Itinerary {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Itinerary ID from the query.
// Returns a *NotFoundError when no Itinerary ID was found.
func (_q *ItineraryQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{itinerary.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ItineraryQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Itinerary entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Itinerary entity is found.
// Returns a *NotFoundError when no Itinerary entities are found.
func (_q *ItineraryQuery) Only(ctx context.Context) (*Itinerary, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{itinerary.Label}
	default:
		return nil, &NotSingularError{itinerary.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ItineraryQuery) OnlyX(ctx context.Context) *Itinerary {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Itinerary ID in the query.
// Returns a *NotSingularError when more than one Itinerary ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ItineraryQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{itinerary.Label}
	default:
		err = &NotSingularError{itinerary.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ItineraryQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Itineraries.
func (_q *ItineraryQuery) All(ctx context.Context) ([]*Itinerary, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Itinerary, *ItineraryQuery]()
	return withInterceptors[[]*Itinerary](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ItineraryQuery) AllX(ctx context.Context) []*Itinerary {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Itinerary IDs.
func (_q *ItineraryQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(itinerary.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ItineraryQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ItineraryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ItineraryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ItineraryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ItineraryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ItineraryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ItineraryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ItineraryQuery) Clone() *ItineraryQuery {
	if _q == nil {
		return nil
	}
	return &ItineraryQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]itinerary.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Itinerary{}, _q.predicates...),
		withRevisions:    _q.withRevisions.Clone(),
		withChatMessages: _q.withChatMessages.Clone(),
		withEvents:       _q.withEvents.Clone(),
		withUserTrips:    _q.withUserTrips.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRevisions tells the query-builder to eager-load the nodes that are connected to
// the "revisions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ItineraryQuery) WithRevisions(opts ...func(*RevisionQuery)) *ItineraryQuery {
	query := (&RevisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRevisions = query
	return _q
}

// WithChatMessages tells the query-builder to eager-load the nodes that are connected to
// the "chat_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ItineraryQuery) WithChatMessages(opts ...func(*ChatMessageQuery)) *ItineraryQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChatMessages = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ItineraryQuery) WithEvents(opts ...func(*EventQuery)) *ItineraryQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithUserTrips tells the query-builder to eager-load the nodes that are connected to
// the "user_trips" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ItineraryQuery) WithUserTrips(opts ...func(*UserTripQuery)) *ItineraryQuery {
	query := (&UserTripClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserTrips = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OwnerID string `json:"owner_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Itinerary.Query().
//		GroupBy(itinerary.FieldOwnerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ItineraryQuery) GroupBy(field string, fields ...string) *ItineraryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ItineraryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = itinerary.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OwnerID string `json:"owner_id,omitempty"`
//	}
//
//	client.Itinerary.Query().
//		Select(itinerary.FieldOwnerID).
//		Scan(ctx, &v)
func (_q *ItineraryQuery) Select(fields ...string) *ItinerarySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ItinerarySelect{ItineraryQuery: _q}
	sbuild.label = itinerary.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ItinerarySelect configured with the given aggregations.
func (_q *ItineraryQuery) Aggregate(fns ...AggregateFunc) *ItinerarySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ItineraryQuery) prepareQuery(ctx context.Context) error {
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
		if !itinerary.ValidColumn(f) {
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

func (_q *ItineraryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Itinerary, error) {
	var (
		nodes       = []*Itinerary{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withRevisions != nil,
			_q.withChatMessages != nil,
			_q.withEvents != nil,
			_q.withUserTrips != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Itinerary).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Itinerary{config: _q.config}
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
	if query := _q.withRevisions; query != nil {
		if err := _q.loadRevisions(ctx, query, nodes,
			func(n *Itinerary) { n.Edges.Revisions = []*Revision{} },
			func(n *Itinerary, e *Revision) { n.Edges.Revisions = append(n.Edges.Revisions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChatMessages; query != nil {
		if err := _q.loadChatMessages(ctx, query, nodes,
			func(n *Itinerary) { n.Edges.ChatMessages = []*ChatMessage{} },
			func(n *Itinerary, e *ChatMessage) { n.Edges.ChatMessages = append(n.Edges.ChatMessages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Itinerary) { n.Edges.Events = []*Event{} },
			func(n *Itinerary, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUserTrips; query != nil {
		if err := _q.loadUserTrips(ctx, query, nodes,
			func(n *Itinerary) { n.Edges.UserTrips = []*UserTrip{} },
			func(n *Itinerary, e *UserTrip) { n.Edges.UserTrips = append(n.Edges.UserTrips, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ItineraryQuery) loadRevisions(ctx context.Context, query *RevisionQuery, nodes []*Itinerary, init func(*Itinerary), assign func(*Itinerary, *Revision)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Itinerary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(revision.FieldItineraryID)
	}
	query.Where(predicate.Revision(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(itinerary.RevisionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItineraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "itinerary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ItineraryQuery) loadChatMessages(ctx context.Context, query *ChatMessageQuery, nodes []*Itinerary, init func(*Itinerary), assign func(*Itinerary, *ChatMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Itinerary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatmessage.FieldItineraryID)
	}
	query.Where(predicate.ChatMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(itinerary.ChatMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItineraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "itinerary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ItineraryQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Itinerary, init func(*Itinerary), assign func(*Itinerary, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Itinerary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldItineraryID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(itinerary.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItineraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "itinerary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ItineraryQuery) loadUserTrips(ctx context.Context, query *UserTripQuery, nodes []*Itinerary, init func(*Itinerary), assign func(*Itinerary, *UserTrip)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Itinerary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(usertrip.FieldItineraryID)
	}
	query.Where(predicate.UserTrip(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(itinerary.UserTripsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItineraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "itinerary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ItineraryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ItineraryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(itinerary.Table, itinerary.Columns, sqlgraph.NewFieldSpec(itinerary.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itinerary.FieldID)
		for i := range fields {
			if fields[i] != itinerary.FieldID {
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

func (_q *ItineraryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(itinerary.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = itinerary.Columns
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

// ItineraryGroupBy is the group-by builder for Itinerary entities.
type ItineraryGroupBy struct {
	selector
	build *ItineraryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ItineraryGroupBy) Aggregate(fns ...AggregateFunc) *ItineraryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ItineraryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItineraryQuery, *ItineraryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ItineraryGroupBy) sqlScan(ctx context.Context, root *ItineraryQuery, v any) error {
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

// ItinerarySelect is the builder for selecting fields of Itinerary entities.
type ItinerarySelect struct {
	*ItineraryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ItinerarySelect) Aggregate(fns ...AggregateFunc) *ItinerarySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ItinerarySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItineraryQuery, *ItinerarySelect](ctx, _s.ItineraryQuery, _s, _s.inters, v)
}

func (_s *ItinerarySelect) sqlScan(ctx context.Context, root *ItineraryQuery, v any) error {
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
