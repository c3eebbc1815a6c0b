// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumtype"
)

// AlbumTypeCreate is the builder for creating a AlbumType entity.
type AlbumTypeCreate struct {
	config
	mutation *AlbumTypeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlbumTypeCreate) SetCreatedAt(v time.Time) *AlbumTypeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlbumTypeCreate) SetNillableCreatedAt(v *time.Time) *AlbumTypeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AlbumTypeCreate) SetUpdatedAt(v time.Time) *AlbumTypeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AlbumTypeCreate) SetNillableUpdatedAt(v *time.Time) *AlbumTypeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AlbumTypeCreate) SetName(v string) *AlbumTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AlbumTypeCreate) SetDescription(v string) *AlbumTypeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *AlbumTypeCreate) SetSortOrder(v int) *AlbumTypeCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetIsVirtual sets the "is_virtual" field.
func (_c *AlbumTypeCreate) SetIsVirtual(v bool) *AlbumTypeCreate {
	_c.mutation.SetIsVirtual(v)
	return _c
}

// SetIsDeletable sets the "is_deletable" field.
func (_c *AlbumTypeCreate) SetIsDeletable(v bool) *AlbumTypeCreate {
	_c.mutation.SetIsDeletable(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AlbumTypeCreate) SetID(v int) *AlbumTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_c *AlbumTypeCreate) AddAlbumIDs(ids ...string) *AlbumTypeCreate {
	_c.mutation.AddAlbumIDs(ids...)
	return _c
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_c *AlbumTypeCreate) AddAlbums(v ...*Album) *AlbumTypeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlbumIDs(ids...)
}

// Mutation returns the AlbumTypeMutation object of the builder.
func (_c *AlbumTypeCreate) Mutation() *AlbumTypeMutation {
	return _c.mutation
}

// Save creates the AlbumType in the database.
func (_c *AlbumTypeCreate) Save(ctx context.Context) (*AlbumType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlbumTypeCreate) SaveX(ctx context.Context) *AlbumType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlbumTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlbumTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlbumTypeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := albumtype.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := albumtype.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlbumTypeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlbumType.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AlbumType.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AlbumType.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := albumtype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AlbumType.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "AlbumType.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := albumtype.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "AlbumType.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "AlbumType.sort_order"`)}
	}
	if v, ok := _c.mutation.SortOrder(); ok {
		if err := albumtype.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`ent: validator failed for field "AlbumType.sort_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsVirtual(); !ok {
		return &ValidationError{Name: "is_virtual", err: errors.New(`ent: missing required field "AlbumType.is_virtual"`)}
	}
	if _, ok := _c.mutation.IsDeletable(); !ok {
		return &ValidationError{Name: "is_deletable", err: errors.New(`ent: missing required field "AlbumType.is_deletable"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := albumtype.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "AlbumType.id": %w`, err)}
		}
	}
	return nil
}

func (_c *AlbumTypeCreate) sqlSave(ctx context.Context) (*AlbumType, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlbumTypeCreate) createSpec() (*AlbumType, *sqlgraph.CreateSpec) {
	var (
		_node = &AlbumType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(albumtype.Table, sqlgraph.NewFieldSpec(albumtype.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(albumtype.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(albumtype.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(albumtype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(albumtype.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(albumtype.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.IsVirtual(); ok {
		_spec.SetField(albumtype.FieldIsVirtual, field.TypeBool, value)
		_node.IsVirtual = value
	}
	if value, ok := _c.mutation.IsDeletable(); ok {
		_spec.SetField(albumtype.FieldIsDeletable, field.TypeBool, value)
		_node.IsDeletable = value
	}
	if nodes := _c.mutation.AlbumsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumtype.AlbumsTable,
			Columns: []string{albumtype.AlbumsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(album.FieldID, field.TypeString),
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
//	client.AlbumType.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlbumTypeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlbumTypeCreate) OnConflict(opts ...sql.ConflictOption) *AlbumTypeUpsertOne {
	_c.conflict = opts
	return &AlbumTypeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlbumType.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlbumTypeCreate) OnConflictColumns(columns ...string) *AlbumTypeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlbumTypeUpsertOne{
		create: _c,
	}
}

type (
	// AlbumTypeUpsertOne is the builder for "upsert"-ing
	//  one AlbumType node.
	AlbumTypeUpsertOne struct {
		create *AlbumTypeCreate
	}

	// AlbumTypeUpsert is the "OnConflict" setter.
	AlbumTypeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumTypeUpsert) SetUpdatedAt(v time.Time) *AlbumTypeUpsert {
	u.Set(albumtype.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumTypeUpsert) UpdateUpdatedAt() *AlbumTypeUpsert {
	u.SetExcluded(albumtype.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *AlbumTypeUpsert) SetName(v string) *AlbumTypeUpsert {
	u.Set(albumtype.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumTypeUpsert) UpdateName() *AlbumTypeUpsert {
	u.SetExcluded(albumtype.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *AlbumTypeUpsert) SetDescription(v string) *AlbumTypeUpsert {
	u.Set(albumtype.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumTypeUpsert) UpdateDescription() *AlbumTypeUpsert {
	u.SetExcluded(albumtype.FieldDescription)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *AlbumTypeUpsert) SetSortOrder(v int) *AlbumTypeUpsert {
	u.Set(albumtype.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *AlbumTypeUpsert) UpdateSortOrder() *AlbumTypeUpsert {
	u.SetExcluded(albumtype.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *AlbumTypeUpsert) AddSortOrder(v int) *AlbumTypeUpsert {
	u.Add(albumtype.FieldSortOrder, v)
	return u
}

// SetIsVirtual sets the "is_virtual" field.
func (u *AlbumTypeUpsert) SetIsVirtual(v bool) *AlbumTypeUpsert {
	u.Set(albumtype.FieldIsVirtual, v)
	return u
}

// UpdateIsVirtual sets the "is_virtual" field to the value that was provided on create.
func (u *AlbumTypeUpsert) UpdateIsVirtual() *AlbumTypeUpsert {
	u.SetExcluded(albumtype.FieldIsVirtual)
	return u
}

// SetIsDeletable sets the "is_deletable" field.
func (u *AlbumTypeUpsert) SetIsDeletable(v bool) *AlbumTypeUpsert {
	u.Set(albumtype.FieldIsDeletable, v)
	return u
}

// UpdateIsDeletable sets the "is_deletable" field to the value that was provided on create.
func (u *AlbumTypeUpsert) UpdateIsDeletable() *AlbumTypeUpsert {
	u.SetExcluded(albumtype.FieldIsDeletable)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AlbumType.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(albumtype.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlbumTypeUpsertOne) UpdateNewValues() *AlbumTypeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(albumtype.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(albumtype.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlbumType.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlbumTypeUpsertOne) Ignore() *AlbumTypeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlbumTypeUpsertOne) DoNothing() *AlbumTypeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlbumTypeCreate.OnConflict
// documentation for more info.
func (u *AlbumTypeUpsertOne) Update(set func(*AlbumTypeUpsert)) *AlbumTypeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlbumTypeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumTypeUpsertOne) SetUpdatedAt(v time.Time) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumTypeUpsertOne) UpdateUpdatedAt() *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *AlbumTypeUpsertOne) SetName(v string) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumTypeUpsertOne) UpdateName() *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *AlbumTypeUpsertOne) SetDescription(v string) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumTypeUpsertOne) UpdateDescription() *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateDescription()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *AlbumTypeUpsertOne) SetSortOrder(v int) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *AlbumTypeUpsertOne) AddSortOrder(v int) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *AlbumTypeUpsertOne) UpdateSortOrder() *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateSortOrder()
	})
}

// SetIsVirtual sets the "is_virtual" field.
func (u *AlbumTypeUpsertOne) SetIsVirtual(v bool) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetIsVirtual(v)
	})
}

// UpdateIsVirtual sets the "is_virtual" field to the value that was provided on create.
func (u *AlbumTypeUpsertOne) UpdateIsVirtual() *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateIsVirtual()
	})
}

// SetIsDeletable sets the "is_deletable" field.
func (u *AlbumTypeUpsertOne) SetIsDeletable(v bool) *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetIsDeletable(v)
	})
}

// UpdateIsDeletable sets the "is_deletable" field to the value that was provided on create.
func (u *AlbumTypeUpsertOne) UpdateIsDeletable() *AlbumTypeUpsertOne {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateIsDeletable()
	})
}

// Exec executes the query.
func (u *AlbumTypeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlbumTypeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlbumTypeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlbumTypeUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlbumTypeUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlbumTypeCreateBulk is the builder for creating many AlbumType entities in bulk.
type AlbumTypeCreateBulk struct {
	config
	err      error
	builders []*AlbumTypeCreate
	conflict []sql.ConflictOption
}

// Save creates the AlbumType entities in the database.
func (_c *AlbumTypeCreateBulk) Save(ctx context.Context) ([]*AlbumType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlbumType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlbumTypeMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AlbumTypeCreateBulk) SaveX(ctx context.Context) []*AlbumType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlbumTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlbumTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlbumType.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlbumTypeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlbumTypeCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlbumTypeUpsertBulk {
	_c.conflict = opts
	return &AlbumTypeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlbumType.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlbumTypeCreateBulk) OnConflictColumns(columns ...string) *AlbumTypeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlbumTypeUpsertBulk{
		create: _c,
	}
}

// AlbumTypeUpsertBulk is the builder for "upsert"-ing
// a bulk of AlbumType nodes.
type AlbumTypeUpsertBulk struct {
	create *AlbumTypeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AlbumType.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(albumtype.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlbumTypeUpsertBulk) UpdateNewValues() *AlbumTypeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(albumtype.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(albumtype.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlbumType.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlbumTypeUpsertBulk) Ignore() *AlbumTypeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlbumTypeUpsertBulk) DoNothing() *AlbumTypeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlbumTypeCreateBulk.OnConflict
// documentation for more info.
func (u *AlbumTypeUpsertBulk) Update(set func(*AlbumTypeUpsert)) *AlbumTypeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlbumTypeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumTypeUpsertBulk) SetUpdatedAt(v time.Time) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumTypeUpsertBulk) UpdateUpdatedAt() *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *AlbumTypeUpsertBulk) SetName(v string) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumTypeUpsertBulk) UpdateName() *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *AlbumTypeUpsertBulk) SetDescription(v string) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumTypeUpsertBulk) UpdateDescription() *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateDescription()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *AlbumTypeUpsertBulk) SetSortOrder(v int) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *AlbumTypeUpsertBulk) AddSortOrder(v int) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *AlbumTypeUpsertBulk) UpdateSortOrder() *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateSortOrder()
	})
}

// SetIsVirtual sets the "is_virtual" field.
func (u *AlbumTypeUpsertBulk) SetIsVirtual(v bool) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetIsVirtual(v)
	})
}

// UpdateIsVirtual sets the "is_virtual" field to the value that was provided on create.
func (u *AlbumTypeUpsertBulk) UpdateIsVirtual() *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateIsVirtual()
	})
}

// SetIsDeletable sets the "is_deletable" field.
func (u *AlbumTypeUpsertBulk) SetIsDeletable(v bool) *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.SetIsDeletable(v)
	})
}

// UpdateIsDeletable sets the "is_deletable" field to the value that was provided on create.
func (u *AlbumTypeUpsertBulk) UpdateIsDeletable() *AlbumTypeUpsertBulk {
	return u.Update(func(s *AlbumTypeUpsert) {
		s.UpdateIsDeletable()
	})
}

// Exec executes the query.
func (u *AlbumTypeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlbumTypeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlbumTypeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlbumTypeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
