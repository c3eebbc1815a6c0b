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
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/predicate"
	"planora.io/planora/ent/thumbnail"
)

// ThumbnailUpdate is the builder for updating Thumbnail entities.
type ThumbnailUpdate struct {
	config
	hooks    []Hook
	mutation *ThumbnailMutation
}

// Where appends a list predicates to the ThumbnailUpdate builder.
func (_u *ThumbnailUpdate) Where(ps ...predicate.Thumbnail) *ThumbnailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThumbnailUpdate) SetUpdatedAt(v time.Time) *ThumbnailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAlbumfileID sets the "albumfile_id" field.
func (_u *ThumbnailUpdate) SetAlbumfileID(v string) *ThumbnailUpdate {
	_u.mutation.SetAlbumfileID(v)
	return _u
}

// SetNillableAlbumfileID sets the "albumfile_id" field if the given value is not nil.
func (_u *ThumbnailUpdate) SetNillableAlbumfileID(v *string) *ThumbnailUpdate {
	if v != nil {
		_u.SetAlbumfileID(*v)
	}
	return _u
}

// SetSizeType sets the "size_type" field.
func (_u *ThumbnailUpdate) SetSizeType(v int) *ThumbnailUpdate {
	_u.mutation.ResetSizeType()
	_u.mutation.SetSizeType(v)
	return _u
}

// SetNillableSizeType sets the "size_type" field if the given value is not nil.
func (_u *ThumbnailUpdate) SetNillableSizeType(v *int) *ThumbnailUpdate {
	if v != nil {
		_u.SetSizeType(*v)
	}
	return _u
}

// AddSizeType adds value to the "size_type" field.
func (_u *ThumbnailUpdate) AddSizeType(v int) *ThumbnailUpdate {
	_u.mutation.AddSizeType(v)
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *ThumbnailUpdate) SetFileURL(v string) *ThumbnailUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *ThumbnailUpdate) SetNillableFileURL(v *string) *ThumbnailUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *ThumbnailUpdate) SetWidth(v int) *ThumbnailUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *ThumbnailUpdate) SetNillableWidth(v *int) *ThumbnailUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *ThumbnailUpdate) AddWidth(v int) *ThumbnailUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *ThumbnailUpdate) SetHeight(v int) *ThumbnailUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *ThumbnailUpdate) SetNillableHeight(v *int) *ThumbnailUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *ThumbnailUpdate) AddHeight(v int) *ThumbnailUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ThumbnailUpdate) SetSizeBytes(v int) *ThumbnailUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ThumbnailUpdate) SetNillableSizeBytes(v *int) *ThumbnailUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ThumbnailUpdate) AddSizeBytes(v int) *ThumbnailUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetAlbumfile sets the "albumfile" edge to the AlbumFile entity.
func (_u *ThumbnailUpdate) SetAlbumfile(v *AlbumFile) *ThumbnailUpdate {
	return _u.SetAlbumfileID(v.ID)
}

// Mutation returns the ThumbnailMutation object of the builder.
func (_u *ThumbnailUpdate) Mutation() *ThumbnailMutation {
	return _u.mutation
}

// ClearAlbumfile clears the "albumfile" edge to the AlbumFile entity.
func (_u *ThumbnailUpdate) ClearAlbumfile() *ThumbnailUpdate {
	_u.mutation.ClearAlbumfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThumbnailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThumbnailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThumbnailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThumbnailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ThumbnailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := thumbnail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThumbnailUpdate) check() error {
	if v, ok := _u.mutation.SizeType(); ok {
		if err := thumbnail.SizeTypeValidator(v); err != nil {
			return &ValidationError{Name: "size_type", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.size_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURL(); ok {
		if err := thumbnail.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := thumbnail.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := thumbnail.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := thumbnail.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.size_bytes": %w`, err)}
		}
	}
	if _u.mutation.AlbumfileCleared() && len(_u.mutation.AlbumfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Thumbnail.albumfile"`)
	}
	return nil
}

func (_u *ThumbnailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thumbnail.Table, thumbnail.Columns, sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(thumbnail.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SizeType(); ok {
		_spec.SetField(thumbnail.FieldSizeType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeType(); ok {
		_spec.AddField(thumbnail.FieldSizeType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(thumbnail.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(thumbnail.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(thumbnail.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(thumbnail.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(thumbnail.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(thumbnail.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(thumbnail.FieldSizeBytes, field.TypeInt, value)
	}
	if _u.mutation.AlbumfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thumbnail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThumbnailUpdateOne is the builder for updating a single Thumbnail entity.
type ThumbnailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThumbnailMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThumbnailUpdateOne) SetUpdatedAt(v time.Time) *ThumbnailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAlbumfileID sets the "albumfile_id" field.
func (_u *ThumbnailUpdateOne) SetAlbumfileID(v string) *ThumbnailUpdateOne {
	_u.mutation.SetAlbumfileID(v)
	return _u
}

// SetNillableAlbumfileID sets the "albumfile_id" field if the given value is not nil.
func (_u *ThumbnailUpdateOne) SetNillableAlbumfileID(v *string) *ThumbnailUpdateOne {
	if v != nil {
		_u.SetAlbumfileID(*v)
	}
	return _u
}

// SetSizeType sets the "size_type" field.
func (_u *ThumbnailUpdateOne) SetSizeType(v int) *ThumbnailUpdateOne {
	_u.mutation.ResetSizeType()
	_u.mutation.SetSizeType(v)
	return _u
}

// SetNillableSizeType sets the "size_type" field if the given value is not nil.
func (_u *ThumbnailUpdateOne) SetNillableSizeType(v *int) *ThumbnailUpdateOne {
	if v != nil {
		_u.SetSizeType(*v)
	}
	return _u
}

// AddSizeType adds value to the "size_type" field.
func (_u *ThumbnailUpdateOne) AddSizeType(v int) *ThumbnailUpdateOne {
	_u.mutation.AddSizeType(v)
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *ThumbnailUpdateOne) SetFileURL(v string) *ThumbnailUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *ThumbnailUpdateOne) SetNillableFileURL(v *string) *ThumbnailUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *ThumbnailUpdateOne) SetWidth(v int) *ThumbnailUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *ThumbnailUpdateOne) SetNillableWidth(v *int) *ThumbnailUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *ThumbnailUpdateOne) AddWidth(v int) *ThumbnailUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *ThumbnailUpdateOne) SetHeight(v int) *ThumbnailUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *ThumbnailUpdateOne) SetNillableHeight(v *int) *ThumbnailUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *ThumbnailUpdateOne) AddHeight(v int) *ThumbnailUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ThumbnailUpdateOne) SetSizeBytes(v int) *ThumbnailUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ThumbnailUpdateOne) SetNillableSizeBytes(v *int) *ThumbnailUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ThumbnailUpdateOne) AddSizeBytes(v int) *ThumbnailUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetAlbumfile sets the "albumfile" edge to the AlbumFile entity.
func (_u *ThumbnailUpdateOne) SetAlbumfile(v *AlbumFile) *ThumbnailUpdateOne {
	return _u.SetAlbumfileID(v.ID)
}

// Mutation returns the ThumbnailMutation object of the builder.
func (_u *ThumbnailUpdateOne) Mutation() *ThumbnailMutation {
	return _u.mutation
}

// ClearAlbumfile clears the "albumfile" edge to the AlbumFile entity.
func (_u *ThumbnailUpdateOne) ClearAlbumfile() *ThumbnailUpdateOne {
	_u.mutation.ClearAlbumfile()
	return _u
}

// Where appends a list predicates to the ThumbnailUpdate builder.
func (_u *ThumbnailUpdateOne) Where(ps ...predicate.Thumbnail) *ThumbnailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThumbnailUpdateOne) Select(field string, fields ...string) *ThumbnailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Thumbnail entity.
func (_u *ThumbnailUpdateOne) Save(ctx context.Context) (*Thumbnail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThumbnailUpdateOne) SaveX(ctx context.Context) *Thumbnail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThumbnailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThumbnailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ThumbnailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := thumbnail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThumbnailUpdateOne) check() error {
	if v, ok := _u.mutation.SizeType(); ok {
		if err := thumbnail.SizeTypeValidator(v); err != nil {
			return &ValidationError{Name: "size_type", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.size_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURL(); ok {
		if err := thumbnail.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := thumbnail.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := thumbnail.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := thumbnail.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Thumbnail.size_bytes": %w`, err)}
		}
	}
	if _u.mutation.AlbumfileCleared() && len(_u.mutation.AlbumfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Thumbnail.albumfile"`)
	}
	return nil
}

func (_u *ThumbnailUpdateOne) sqlSave(ctx context.Context) (_node *Thumbnail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thumbnail.Table, thumbnail.Columns, sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Thumbnail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thumbnail.FieldID)
		for _, f := range fields {
			if !thumbnail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thumbnail.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(thumbnail.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SizeType(); ok {
		_spec.SetField(thumbnail.FieldSizeType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeType(); ok {
		_spec.AddField(thumbnail.FieldSizeType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(thumbnail.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(thumbnail.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(thumbnail.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(thumbnail.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(thumbnail.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(thumbnail.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(thumbnail.FieldSizeBytes, field.TypeInt, value)
	}
	if _u.mutation.AlbumfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Thumbnail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thumbnail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
