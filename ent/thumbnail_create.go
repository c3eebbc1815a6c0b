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
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/thumbnail"
)

// ThumbnailCreate is the builder for creating a Thumbnail entity.
type ThumbnailCreate struct {
	config
	mutation *ThumbnailMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThumbnailCreate) SetCreatedAt(v time.Time) *ThumbnailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThumbnailCreate) SetNillableCreatedAt(v *time.Time) *ThumbnailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ThumbnailCreate) SetUpdatedAt(v time.Time) *ThumbnailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ThumbnailCreate) SetNillableUpdatedAt(v *time.Time) *ThumbnailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAlbumfileID sets the "albumfile_id" field.
func (_c *ThumbnailCreate) SetAlbumfileID(v string) *ThumbnailCreate {
	_c.mutation.SetAlbumfileID(v)
	return _c
}

// SetSizeType sets the "size_type" field.
func (_c *ThumbnailCreate) SetSizeType(v int) *ThumbnailCreate {
	_c.mutation.SetSizeType(v)
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *ThumbnailCreate) SetFileURL(v string) *ThumbnailCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetWidth sets the "width" field.
func (_c *ThumbnailCreate) SetWidth(v int) *ThumbnailCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *ThumbnailCreate) SetHeight(v int) *ThumbnailCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ThumbnailCreate) SetSizeBytes(v int) *ThumbnailCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ThumbnailCreate) SetID(v string) *ThumbnailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAlbumfile sets the "albumfile" edge to the AlbumFile entity.
func (_c *ThumbnailCreate) SetAlbumfile(v *AlbumFile) *ThumbnailCreate {
	return _c.SetAlbumfileID(v.ID)
}

// Mutation returns the ThumbnailMutation object of the builder.
func (_c *ThumbnailCreate) Mutation() *ThumbnailMutation {
	return _c.mutation
}

// Save creates the Thumbnail in the database.
func (_c *ThumbnailCreate) Save(ctx context.Context) (*Thumbnail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThumbnailCreate) SaveX(ctx context.Context) *Thumbnail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThumbnailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThumbnailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThumbnailCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := thumbnail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := thumbnail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThumbnailCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Thumbnail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Thumbnail.updated_at"`)}
	}
	if _, ok := _c.mutation.AlbumfileID(); !ok {
		return &ValidationError{Name: "albumfile_id", err: errors.New(`ent: missing required field "Thumbnail.albumfile_id"`)}
	}
	if _, ok := _c.mutation.SizeType(); !ok {
		return &ValidationError{Name: "size_type", err: errors.New(`ent: missing required field "Thumbnail.size_type"`)}
	}
	if v, ok := _c.mutation.SizeType(); ok {
		if err := thumbnail.SizeTypeValidator(v); err != nil {
			return &ValidationError{Name: "size_type", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.size_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileURL(); !ok {
		return &ValidationError{Name: "file_url", err: errors.New(`ent: missing required field "Thumbnail.file_url"`)}
	}
	if v, ok := _c.mutation.FileURL(); ok {
		if err := thumbnail.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.file_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "Thumbnail.width"`)}
	}
	if v, ok := _c.mutation.Width(); ok {
		if err := thumbnail.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.width": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "Thumbnail.height"`)}
	}
	if v, ok := _c.mutation.Height(); ok {
		if err := thumbnail.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.height": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Thumbnail.size_bytes"`)}
	}
	if v, ok := _c.mutation.SizeBytes(); ok {
		if err := thumbnail.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.size_bytes": %w`, err)}
		}
	}
	if len(_c.mutation.AlbumfileIDs()) == 0 {
		return &ValidationError{Name: "albumfile", err: errors.New(`ent: missing required edge "Thumbnail.albumfile"`)}
	}
	return nil
}

func (_c *ThumbnailCreate) sqlSave(ctx context.Context) (*Thumbnail, error) {
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
			return nil, fmt.Errorf("unexpected Thumbnail.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThumbnailCreate) createSpec() (*Thumbnail, *sqlgraph.CreateSpec) {
	var (
		_node = &Thumbnail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thumbnail.Table, sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(thumbnail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(thumbnail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SizeType(); ok {
		_spec.SetField(thumbnail.FieldSizeType, field.TypeInt, value)
		_node.SizeType = value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(thumbnail.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(thumbnail.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(thumbnail.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(thumbnail.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if nodes := _c.mutation.AlbumfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thumbnail.AlbumfileTable,
			Columns: []string{thumbnail.AlbumfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(albumfile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlbumfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thumbnail.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThumbnailUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ThumbnailCreate) OnConflict(opts ...sql.ConflictOption) *ThumbnailUpsertOne {
	_c.conflict = opts
	return &ThumbnailUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thumbnail.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThumbnailCreate) OnConflictColumns(columns ...string) *ThumbnailUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThumbnailUpsertOne{
		create: _c,
	}
}

type (
	// ThumbnailUpsertOne is the builder for "upsert"-ing
	//  one Thumbnail node.
	ThumbnailUpsertOne struct {
		create *ThumbnailCreate
	}

	// ThumbnailUpsert is the "OnConflict" setter.
	ThumbnailUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ThumbnailUpsert) SetUpdatedAt(v time.Time) *ThumbnailUpsert {
	u.Set(thumbnail.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateUpdatedAt() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldUpdatedAt)
	return u
}

// SetAlbumfileID sets the "albumfile_id" field.
func (u *ThumbnailUpsert) SetAlbumfileID(v string) *ThumbnailUpsert {
	u.Set(thumbnail.FieldAlbumfileID, v)
	return u
}

// UpdateAlbumfileID sets the "albumfile_id" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateAlbumfileID() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldAlbumfileID)
	return u
}

// SetSizeType sets the "size_type" field.
func (u *ThumbnailUpsert) SetSizeType(v int) *ThumbnailUpsert {
	u.Set(thumbnail.FieldSizeType, v)
	return u
}

// UpdateSizeType sets the "size_type" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateSizeType() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldSizeType)
	return u
}

// AddSizeType adds v to the "size_type" field.
func (u *ThumbnailUpsert) AddSizeType(v int) *ThumbnailUpsert {
	u.Add(thumbnail.FieldSizeType, v)
	return u
}

// SetFileURL sets the "file_url" field.
func (u *ThumbnailUpsert) SetFileURL(v string) *ThumbnailUpsert {
	u.Set(thumbnail.FieldFileURL, v)
	return u
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateFileURL() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldFileURL)
	return u
}

// SetWidth sets the "width" field.
func (u *ThumbnailUpsert) SetWidth(v int) *ThumbnailUpsert {
	u.Set(thumbnail.FieldWidth, v)
	return u
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateWidth() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldWidth)
	return u
}

// AddWidth adds v to the "width" field.
func (u *ThumbnailUpsert) AddWidth(v int) *ThumbnailUpsert {
	u.Add(thumbnail.FieldWidth, v)
	return u
}

// SetHeight sets the "height" field.
func (u *ThumbnailUpsert) SetHeight(v int) *ThumbnailUpsert {
	u.Set(thumbnail.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateHeight() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *ThumbnailUpsert) AddHeight(v int) *ThumbnailUpsert {
	u.Add(thumbnail.FieldHeight, v)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ThumbnailUpsert) SetSizeBytes(v int) *ThumbnailUpsert {
	u.Set(thumbnail.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ThumbnailUpsert) UpdateSizeBytes() *ThumbnailUpsert {
	u.SetExcluded(thumbnail.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ThumbnailUpsert) AddSizeBytes(v int) *ThumbnailUpsert {
	u.Add(thumbnail.FieldSizeBytes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Thumbnail.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(thumbnail.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThumbnailUpsertOne) UpdateNewValues() *ThumbnailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(thumbnail.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(thumbnail.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thumbnail.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThumbnailUpsertOne) Ignore() *ThumbnailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThumbnailUpsertOne) DoNothing() *ThumbnailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThumbnailCreate.OnConflict
// documentation for more info.
func (u *ThumbnailUpsertOne) Update(set func(*ThumbnailUpsert)) *ThumbnailUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThumbnailUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThumbnailUpsertOne) SetUpdatedAt(v time.Time) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateUpdatedAt() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAlbumfileID sets the "albumfile_id" field.
func (u *ThumbnailUpsertOne) SetAlbumfileID(v string) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetAlbumfileID(v)
	})
}

// UpdateAlbumfileID sets the "albumfile_id" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateAlbumfileID() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateAlbumfileID()
	})
}

// SetSizeType sets the "size_type" field.
func (u *ThumbnailUpsertOne) SetSizeType(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetSizeType(v)
	})
}

// AddSizeType adds v to the "size_type" field.
func (u *ThumbnailUpsertOne) AddSizeType(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddSizeType(v)
	})
}

// UpdateSizeType sets the "size_type" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateSizeType() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateSizeType()
	})
}

// SetFileURL sets the "file_url" field.
func (u *ThumbnailUpsertOne) SetFileURL(v string) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateFileURL() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateFileURL()
	})
}

// SetWidth sets the "width" field.
func (u *ThumbnailUpsertOne) SetWidth(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *ThumbnailUpsertOne) AddWidth(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateWidth() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *ThumbnailUpsertOne) SetHeight(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *ThumbnailUpsertOne) AddHeight(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateHeight() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateHeight()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ThumbnailUpsertOne) SetSizeBytes(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ThumbnailUpsertOne) AddSizeBytes(v int) *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ThumbnailUpsertOne) UpdateSizeBytes() *ThumbnailUpsertOne {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateSizeBytes()
	})
}

// Exec executes the query.
func (u *ThumbnailUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThumbnailCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThumbnailUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThumbnailUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ThumbnailUpsertOne.ID is not supported by MySQL driver. Use ThumbnailUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThumbnailUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThumbnailCreateBulk is the builder for creating many Thumbnail entities in bulk.
type ThumbnailCreateBulk struct {
	config
	err      error
	builders []*ThumbnailCreate
	conflict []sql.ConflictOption
}

// Save creates the Thumbnail entities in the database.
func (_c *ThumbnailCreateBulk) Save(ctx context.Context) ([]*Thumbnail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Thumbnail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThumbnailMutation)
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
func (_c *ThumbnailCreateBulk) SaveX(ctx context.Context) []*Thumbnail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThumbnailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThumbnailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thumbnail.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThumbnailUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ThumbnailCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThumbnailUpsertBulk {
	_c.conflict = opts
	return &ThumbnailUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thumbnail.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThumbnailCreateBulk) OnConflictColumns(columns ...string) *ThumbnailUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThumbnailUpsertBulk{
		create: _c,
	}
}

// ThumbnailUpsertBulk is the builder for "upsert"-ing
// a bulk of Thumbnail nodes.
type ThumbnailUpsertBulk struct {
	create *ThumbnailCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Thumbnail.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(thumbnail.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThumbnailUpsertBulk) UpdateNewValues() *ThumbnailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(thumbnail.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(thumbnail.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thumbnail.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThumbnailUpsertBulk) Ignore() *ThumbnailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThumbnailUpsertBulk) DoNothing() *ThumbnailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThumbnailCreateBulk.OnConflict
// documentation for more info.
func (u *ThumbnailUpsertBulk) Update(set func(*ThumbnailUpsert)) *ThumbnailUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThumbnailUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThumbnailUpsertBulk) SetUpdatedAt(v time.Time) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateUpdatedAt() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAlbumfileID sets the "albumfile_id" field.
func (u *ThumbnailUpsertBulk) SetAlbumfileID(v string) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetAlbumfileID(v)
	})
}

// UpdateAlbumfileID sets the "albumfile_id" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateAlbumfileID() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateAlbumfileID()
	})
}

// SetSizeType sets the "size_type" field.
func (u *ThumbnailUpsertBulk) SetSizeType(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetSizeType(v)
	})
}

// AddSizeType adds v to the "size_type" field.
func (u *ThumbnailUpsertBulk) AddSizeType(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddSizeType(v)
	})
}

// UpdateSizeType sets the "size_type" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateSizeType() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateSizeType()
	})
}

// SetFileURL sets the "file_url" field.
func (u *ThumbnailUpsertBulk) SetFileURL(v string) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateFileURL() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateFileURL()
	})
}

// SetWidth sets the "width" field.
func (u *ThumbnailUpsertBulk) SetWidth(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *ThumbnailUpsertBulk) AddWidth(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateWidth() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *ThumbnailUpsertBulk) SetHeight(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *ThumbnailUpsertBulk) AddHeight(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateHeight() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateHeight()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ThumbnailUpsertBulk) SetSizeBytes(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ThumbnailUpsertBulk) AddSizeBytes(v int) *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ThumbnailUpsertBulk) UpdateSizeBytes() *ThumbnailUpsertBulk {
	return u.Update(func(s *ThumbnailUpsert) {
		s.UpdateSizeBytes()
	})
}

// Exec executes the query.
func (u *ThumbnailUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThumbnailCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThumbnailCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThumbnailUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
