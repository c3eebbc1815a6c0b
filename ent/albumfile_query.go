// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/predicate"
	"planora.io/planora/ent/thumbnail"
)

// AlbumFileQuery is the builder for querying AlbumFile entities.
type AlbumFileQuery struct {
	config
	ctx            *QueryContext
	order          []albumfile.OrderOption
	inters         []Interceptor
	predicates     []predicate.AlbumFile
	withOwner      *AccountQuery
	withAlbums     *AlbumQuery
	withThumbnails *ThumbnailQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AlbumFileQuery builder.
func (_q *AlbumFileQuery) Where(ps ...predicate.AlbumFile) *AlbumFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AlbumFileQuery) Limit(limit int) *AlbumFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AlbumFileQuery) Offset(offset int) *AlbumFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AlbumFileQuery) Unique(unique bool) *AlbumFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AlbumFileQuery) Order(o ...albumfile.OrderOption) *AlbumFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOwner chains the current query on the "owner" edge.
func (_q *AlbumFileQuery) QueryOwner() *AccountQuery {
	query := (&AccountClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(albumfile.Table, albumfile.FieldID, selector),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, albumfile.OwnerTable, albumfile.OwnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAlbums chains the current query on the "albums" edge.
func (_q *AlbumFileQuery) QueryAlbums() *AlbumQuery {
	query := (&AlbumClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(albumfile.Table, albumfile.FieldID, selector),
			sqlgraph.To(album.Table, album.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, albumfile.AlbumsTable, albumfile.AlbumsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryThumbnails chains the current query on the "thumbnails" edge.
func (_q *AlbumFileQuery) QueryThumbnails() *ThumbnailQuery {
	query := (&ThumbnailClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(albumfile.Table, albumfile.FieldID, selector),
			sqlgraph.To(thumbnail.Table, thumbnail.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, albumfile.ThumbnailsTable, albumfile.ThumbnailsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AlbumFile entity from the query.
// Returns a *NotFoundError when no AlbumFile was found.
func (_q *AlbumFileQuery) First(ctx context.Context) (*AlbumFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{albumfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AlbumFileQuery) FirstX(ctx context.Context) *AlbumFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AlbumFile ID from the query.
// Returns a *NotFoundError when no AlbumFile ID was found.
func (_q *AlbumFileQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{albumfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AlbumFileQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AlbumFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AlbumFile entity is found.
// Returns a *NotFoundError when no AlbumFile entities are found.
func (_q *AlbumFileQuery) Only(ctx context.Context) (*AlbumFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{albumfile.Label}
	default:
		return nil, &NotSingularError{albumfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AlbumFileQuery) OnlyX(ctx context.Context) *AlbumFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AlbumFile ID in the query.
// Returns a *NotSingularError when more than one AlbumFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AlbumFileQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{albumfile.Label}
	default:
		err = &NotSingularError{albumfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AlbumFileQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AlbumFiles.
func (_q *AlbumFileQuery) All(ctx context.Context) ([]*AlbumFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AlbumFile, *AlbumFileQuery]()
	return withInterceptors[[]*AlbumFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AlbumFileQuery) AllX(ctx context.Context) []*AlbumFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AlbumFile IDs.
func (_q *AlbumFileQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(albumfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AlbumFileQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AlbumFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AlbumFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AlbumFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AlbumFileQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AlbumFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AlbumFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AlbumFileQuery) Clone() *AlbumFileQuery {
	if _q == nil {
		return nil
	}
	return &AlbumFileQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]albumfile.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.AlbumFile{}, _q.predicates...),
		withOwner:      _q.withOwner.Clone(),
		withAlbums:     _q.withAlbums.Clone(),
		withThumbnails: _q.withThumbnails.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOwner tells the query-builder to eager-load the nodes that are connected to
// the "owner" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AlbumFileQuery) WithOwner(opts ...func(*AccountQuery)) *AlbumFileQuery {
	query := (&AccountClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOwner = query
	return _q
}

// WithAlbums tells the query-builder to eager-load the nodes that are connected to
// the "albums" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AlbumFileQuery) WithAlbums(opts ...func(*AlbumQuery)) *AlbumFileQuery {
	query := (&AlbumClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAlbums = query
	return _q
}

// WithThumbnails tells the query-builder to eager-load the nodes that are connected to
// the "thumbnails" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AlbumFileQuery) WithThumbnails(opts ...func(*ThumbnailQuery)) *AlbumFileQuery {
	query := (&ThumbnailClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withThumbnails = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AlbumFile.Query().
//		GroupBy(albumfile.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AlbumFileQuery) GroupBy(field string, fields ...string) *AlbumFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AlbumFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = albumfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.AlbumFile.Query().
//		Select(albumfile.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *AlbumFileQuery) Select(fields ...string) *AlbumFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AlbumFileSelect{AlbumFileQuery: _q}
	sbuild.label = albumfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AlbumFileSelect configured with the given aggregations.
func (_q *AlbumFileQuery) Aggregate(fns ...AggregateFunc) *AlbumFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AlbumFileQuery) prepareQuery(ctx context.Context) error {
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
		if !albumfile.ValidColumn(f) {
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

func (_q *AlbumFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AlbumFile, error) {
	var (
		nodes       = []*AlbumFile{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withOwner != nil,
			_q.withAlbums != nil,
			_q.withThumbnails != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AlbumFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AlbumFile{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withOwner; query != nil {
		if err := _q.loadOwner(ctx, query, nodes, nil,
			func(n *AlbumFile, e *Account) { n.Edges.Owner = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAlbums; query != nil {
		if err := _q.loadAlbums(ctx, query, nodes,
			func(n *AlbumFile) { n.Edges.Albums = []*Album{} },
			func(n *AlbumFile, e *Album) { n.Edges.Albums = append(n.Edges.Albums, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withThumbnails; query != nil {
		if err := _q.loadThumbnails(ctx, query, nodes,
			func(n *AlbumFile) { n.Edges.Thumbnails = []*Thumbnail{} },
			func(n *AlbumFile, e *Thumbnail) { n.Edges.Thumbnails = append(n.Edges.Thumbnails, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AlbumFileQuery) loadOwner(ctx context.Context, query *AccountQuery, nodes []*AlbumFile, init func(*AlbumFile), assign func(*AlbumFile, *Account)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AlbumFile)
	for i := range nodes {
		fk := nodes[i].OwnerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(account.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "owner_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AlbumFileQuery) loadAlbums(ctx context.Context, query *AlbumQuery, nodes []*AlbumFile, init func(*AlbumFile), assign func(*AlbumFile, *Album)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*AlbumFile)
	nids := make(map[string]map[*AlbumFile]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(albumfile.AlbumsTable)
		s.Join(joinT).On(s.C(album.FieldID), joinT.C(albumfile.AlbumsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(albumfile.AlbumsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(albumfile.AlbumsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*AlbumFile]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Album](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "albums" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *AlbumFileQuery) loadThumbnails(ctx context.Context, query *ThumbnailQuery, nodes []*AlbumFile, init func(*AlbumFile), assign func(*AlbumFile, *Thumbnail)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AlbumFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(thumbnail.FieldAlbumfileID)
	}
	query.Where(predicate.Thumbnail(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(albumfile.ThumbnailsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AlbumfileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "albumfile_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AlbumFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AlbumFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(albumfile.Table, albumfile.Columns, sqlgraph.NewFieldSpec(albumfile.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, albumfile.FieldID)
		for i := range fields {
			if fields[i] != albumfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOwner != nil {
			_spec.Node.AddColumnOnce(albumfile.FieldOwnerID)
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

func (_q *AlbumFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(albumfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = albumfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *AlbumFileQuery) ForUpdate(opts ...sql.LockOption) *AlbumFileQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *AlbumFileQuery) ForShare(opts ...sql.LockOption) *AlbumFileQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// AlbumFileGroupBy is the group-by builder for AlbumFile entities.
type AlbumFileGroupBy struct {
	selector
	build *AlbumFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AlbumFileGroupBy) Aggregate(fns ...AggregateFunc) *AlbumFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AlbumFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AlbumFileQuery, *AlbumFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AlbumFileGroupBy) sqlScan(ctx context.Context, root *AlbumFileQuery, v any) error {
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

// AlbumFileSelect is the builder for selecting fields of AlbumFile entities.
type AlbumFileSelect struct {
	*AlbumFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AlbumFileSelect) Aggregate(fns ...AggregateFunc) *AlbumFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AlbumFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AlbumFileQuery, *AlbumFileSelect](ctx, _s.AlbumFileQuery, _s, _s.inters, v)
}

func (_s *AlbumFileSelect) sqlScan(ctx context.Context, root *AlbumFileQuery, v any) error {
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
