// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/albumtype"
	"planora.io/planora/ent/event"
)

// AlbumCreate is the builder for creating a Album entity.
type AlbumCreate struct {
	config
	mutation *AlbumMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlbumCreate) SetCreatedAt(v time.Time) *AlbumCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlbumCreate) SetNillableCreatedAt(v *time.Time) *AlbumCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AlbumCreate) SetUpdatedAt(v time.Time) *AlbumCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AlbumCreate) SetNillableUpdatedAt(v *time.Time) *AlbumCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *AlbumCreate) SetOwnerID(v string) *AlbumCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *AlbumCreate) SetEventID(v string) *AlbumCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *AlbumCreate) SetNillableEventID(v *string) *AlbumCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetAlbumTypeID sets the "album_type_id" field.
func (_c *AlbumCreate) SetAlbumTypeID(v int) *AlbumCreate {
	_c.mutation.SetAlbumTypeID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AlbumCreate) SetName(v string) *AlbumCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AlbumCreate) SetDescription(v string) *AlbumCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AlbumCreate) SetNillableDescription(v *string) *AlbumCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlbumCreate) SetStatus(v album.Status) *AlbumCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlbumCreate) SetNillableStatus(v *album.Status) *AlbumCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlbumCreate) SetID(v string) *AlbumCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwner sets the "owner" edge to the Account entity.
func (_c *AlbumCreate) SetOwner(v *Account) *AlbumCreate {
	return _c.SetOwnerID(v.ID)
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *AlbumCreate) SetEvent(v *Event) *AlbumCreate {
	return _c.SetEventID(v.ID)
}

// SetAlbumType sets the "album_type" edge to the AlbumType entity.
func (_c *AlbumCreate) SetAlbumType(v *AlbumType) *AlbumCreate {
	return _c.SetAlbumTypeID(v.ID)
}

// AddFileIDs adds the "files" edge to the AlbumFile entity by IDs.
func (_c *AlbumCreate) AddFileIDs(ids ...string) *AlbumCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the AlbumFile entity.
func (_c *AlbumCreate) AddFiles(v ...*AlbumFile) *AlbumCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the AlbumMutation object of the builder.
func (_c *AlbumCreate) Mutation() *AlbumMutation {
	return _c.mutation
}

// Save creates the Album in the database.
func (_c *AlbumCreate) Save(ctx context.Context) (*Album, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlbumCreate) SaveX(ctx context.Context) *Album {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlbumCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlbumCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlbumCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := album.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := album.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := album.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlbumCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Album.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Album.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Album.owner_id"`)}
	}
	if _, ok := _c.mutation.AlbumTypeID(); !ok {
		return &ValidationError{Name: "album_type_id", err: errors.New(`ent: missing required field "Album.album_type_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Album.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := album.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Album.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Album.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := album.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Album.status": %w`, err)}
		}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Album.owner"`)}
	}
	if len(_c.mutation.AlbumTypeIDs()) == 0 {
		return &ValidationError{Name: "album_type", err: errors.New(`ent: missing required edge "Album.album_type"`)}
	}
	return nil
}

func (_c *AlbumCreate) sqlSave(ctx context.Context) (*Album, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Album.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlbumCreate) createSpec() (*Album, *sqlgraph.CreateSpec) {
	var (
		_node = &Album{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(album.Table, sqlgraph.NewFieldSpec(album.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(album.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(album.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(album.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(album.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(album.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   album.OwnerTable,
			Columns: []string{album.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   album.EventTable,
			Columns: []string{album.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlbumTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   album.AlbumTypeTable,
			Columns: []string{album.AlbumTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(albumtype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlbumTypeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   album.FilesTable,
			Columns: album.FilesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(albumfile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Album.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlbumUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlbumCreate) OnConflict(opts ...sql.ConflictOption) *AlbumUpsertOne {
	_c.conflict = opts
	return &AlbumUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Album.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlbumCreate) OnConflictColumns(columns ...string) *AlbumUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlbumUpsertOne{
		create: _c,
	}
}

type (
	// AlbumUpsertOne is the builder for "upsert"-ing
	//  one Album node.
	AlbumUpsertOne struct {
		create *AlbumCreate
	}

	// AlbumUpsert is the "OnConflict" setter.
	AlbumUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumUpsert) SetUpdatedAt(v time.Time) *AlbumUpsert {
	u.Set(album.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateUpdatedAt() *AlbumUpsert {
	u.SetExcluded(album.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *AlbumUpsert) SetOwnerID(v string) *AlbumUpsert {
	u.Set(album.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateOwnerID() *AlbumUpsert {
	u.SetExcluded(album.FieldOwnerID)
	return u
}

// SetEventID sets the "event_id" field.
func (u *AlbumUpsert) SetEventID(v string) *AlbumUpsert {
	u.Set(album.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateEventID() *AlbumUpsert {
	u.SetExcluded(album.FieldEventID)
	return u
}

// ClearEventID clears the value of the "event_id" field.
func (u *AlbumUpsert) ClearEventID() *AlbumUpsert {
	u.SetNull(album.FieldEventID)
	return u
}

// SetAlbumTypeID sets the "album_type_id" field.
func (u *AlbumUpsert) SetAlbumTypeID(v int) *AlbumUpsert {
	u.Set(album.FieldAlbumTypeID, v)
	return u
}

// UpdateAlbumTypeID sets the "album_type_id" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateAlbumTypeID() *AlbumUpsert {
	u.SetExcluded(album.FieldAlbumTypeID)
	return u
}

// SetName sets the "name" field.
func (u *AlbumUpsert) SetName(v string) *AlbumUpsert {
	u.Set(album.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateName() *AlbumUpsert {
	u.SetExcluded(album.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *AlbumUpsert) SetDescription(v string) *AlbumUpsert {
	u.Set(album.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateDescription() *AlbumUpsert {
	u.SetExcluded(album.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *AlbumUpsert) ClearDescription() *AlbumUpsert {
	u.SetNull(album.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *AlbumUpsert) SetStatus(v album.Status) *AlbumUpsert {
	u.Set(album.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlbumUpsert) UpdateStatus() *AlbumUpsert {
	u.SetExcluded(album.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Album.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(album.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlbumUpsertOne) UpdateNewValues() *AlbumUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(album.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(album.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Album.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlbumUpsertOne) Ignore() *AlbumUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlbumUpsertOne) DoNothing() *AlbumUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlbumCreate.OnConflict
// documentation for more info.
func (u *AlbumUpsertOne) Update(set func(*AlbumUpsert)) *AlbumUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlbumUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumUpsertOne) SetUpdatedAt(v time.Time) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateUpdatedAt() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AlbumUpsertOne) SetOwnerID(v string) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateOwnerID() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateOwnerID()
	})
}

// SetEventID sets the "event_id" field.
func (u *AlbumUpsertOne) SetEventID(v string) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateEventID() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateEventID()
	})
}

// ClearEventID clears the value of the "event_id" field.
func (u *AlbumUpsertOne) ClearEventID() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.ClearEventID()
	})
}

// SetAlbumTypeID sets the "album_type_id" field.
func (u *AlbumUpsertOne) SetAlbumTypeID(v int) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetAlbumTypeID(v)
	})
}

// UpdateAlbumTypeID sets the "album_type_id" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateAlbumTypeID() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateAlbumTypeID()
	})
}

// SetName sets the "name" field.
func (u *AlbumUpsertOne) SetName(v string) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateName() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *AlbumUpsertOne) SetDescription(v string) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateDescription() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlbumUpsertOne) ClearDescription() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *AlbumUpsertOne) SetStatus(v album.Status) *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlbumUpsertOne) UpdateStatus() *AlbumUpsertOne {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *AlbumUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlbumCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlbumUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlbumUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlbumUpsertOne.ID is not supported by MySQL driver. Use AlbumUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlbumUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlbumCreateBulk is the builder for creating many Album entities in bulk.
type AlbumCreateBulk struct {
	config
	err      error
	builders []*AlbumCreate
	conflict []sql.ConflictOption
}

// Save creates the Album entities in the database.
func (_c *AlbumCreateBulk) Save(ctx context.Context) ([]*Album, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Album, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlbumMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AlbumCreateBulk) SaveX(ctx context.Context) []*Album {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlbumCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlbumCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Album.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlbumUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlbumCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlbumUpsertBulk {
	_c.conflict = opts
	return &AlbumUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Album.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlbumCreateBulk) OnConflictColumns(columns ...string) *AlbumUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlbumUpsertBulk{
		create: _c,
	}
}

// AlbumUpsertBulk is the builder for "upsert"-ing
// a bulk of Album nodes.
type AlbumUpsertBulk struct {
	create *AlbumCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Album.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(album.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlbumUpsertBulk) UpdateNewValues() *AlbumUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(album.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(album.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Album.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlbumUpsertBulk) Ignore() *AlbumUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlbumUpsertBulk) DoNothing() *AlbumUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlbumCreateBulk.OnConflict
// documentation for more info.
func (u *AlbumUpsertBulk) Update(set func(*AlbumUpsert)) *AlbumUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlbumUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumUpsertBulk) SetUpdatedAt(v time.Time) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateUpdatedAt() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AlbumUpsertBulk) SetOwnerID(v string) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateOwnerID() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateOwnerID()
	})
}

// SetEventID sets the "event_id" field.
func (u *AlbumUpsertBulk) SetEventID(v string) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateEventID() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateEventID()
	})
}

// ClearEventID clears the value of the "event_id" field.
func (u *AlbumUpsertBulk) ClearEventID() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.ClearEventID()
	})
}

// SetAlbumTypeID sets the "album_type_id" field.
func (u *AlbumUpsertBulk) SetAlbumTypeID(v int) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetAlbumTypeID(v)
	})
}

// UpdateAlbumTypeID sets the "album_type_id" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateAlbumTypeID() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateAlbumTypeID()
	})
}

// SetName sets the "name" field.
func (u *AlbumUpsertBulk) SetName(v string) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateName() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *AlbumUpsertBulk) SetDescription(v string) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateDescription() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlbumUpsertBulk) ClearDescription() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *AlbumUpsertBulk) SetStatus(v album.Status) *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlbumUpsertBulk) UpdateStatus() *AlbumUpsertBulk {
	return u.Update(func(s *AlbumUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *AlbumUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlbumCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlbumCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlbumUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
