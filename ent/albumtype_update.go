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
	"planora.io/planora/ent/predicate"
)

// AlbumTypeUpdate is the builder for updating AlbumType entities.
type AlbumTypeUpdate struct {
	config
	hooks    []Hook
	mutation *AlbumTypeMutation
}

// Where appends a list predicates to the AlbumTypeUpdate builder.
func (_u *AlbumTypeUpdate) Where(ps ...predicate.AlbumType) *AlbumTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlbumTypeUpdate) SetUpdatedAt(v time.Time) *AlbumTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AlbumTypeUpdate) SetName(v string) *AlbumTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AlbumTypeUpdate) SetNillableName(v *string) *AlbumTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlbumTypeUpdate) SetDescription(v string) *AlbumTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlbumTypeUpdate) SetNillableDescription(v *string) *AlbumTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *AlbumTypeUpdate) SetSortOrder(v int) *AlbumTypeUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *AlbumTypeUpdate) SetNillableSortOrder(v *int) *AlbumTypeUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *AlbumTypeUpdate) AddSortOrder(v int) *AlbumTypeUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetIsVirtual sets the "is_virtual" field.
func (_u *AlbumTypeUpdate) SetIsVirtual(v bool) *AlbumTypeUpdate {
	_u.mutation.SetIsVirtual(v)
	return _u
}

// SetNillableIsVirtual sets the "is_virtual" field if the given value is not nil.
func (_u *AlbumTypeUpdate) SetNillableIsVirtual(v *bool) *AlbumTypeUpdate {
	if v != nil {
		_u.SetIsVirtual(*v)
	}
	return _u
}

// SetIsDeletable sets the "is_deletable" field.
func (_u *AlbumTypeUpdate) SetIsDeletable(v bool) *AlbumTypeUpdate {
	_u.mutation.SetIsDeletable(v)
	return _u
}

// SetNillableIsDeletable sets the "is_deletable" field if the given value is not nil.
func (_u *AlbumTypeUpdate) SetNillableIsDeletable(v *bool) *AlbumTypeUpdate {
	if v != nil {
		_u.SetIsDeletable(*v)
	}
	return _u
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *AlbumTypeUpdate) AddAlbumIDs(ids ...string) *AlbumTypeUpdate {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *AlbumTypeUpdate) AddAlbums(v ...*Album) *AlbumTypeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// Mutation returns the AlbumTypeMutation object of the builder.
func (_u *AlbumTypeUpdate) Mutation() *AlbumTypeMutation {
	return _u.mutation
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *AlbumTypeUpdate) ClearAlbums() *AlbumTypeUpdate {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *AlbumTypeUpdate) RemoveAlbumIDs(ids ...string) *AlbumTypeUpdate {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *AlbumTypeUpdate) RemoveAlbums(v ...*Album) *AlbumTypeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlbumTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlbumTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlbumTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlbumTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlbumTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := albumtype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlbumTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := albumtype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AlbumType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := albumtype.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "AlbumType.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SortOrder(); ok {
		if err := albumtype.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`ent: validator failed for field "AlbumType.sort_order": %w`, err)}
		}
	}
	return nil
}

func (_u *AlbumTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(albumtype.Table, albumtype.Columns, sqlgraph.NewFieldSpec(albumtype.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(albumtype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(albumtype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(albumtype.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(albumtype.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(albumtype.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsVirtual(); ok {
		_spec.SetField(albumtype.FieldIsVirtual, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDeletable(); ok {
		_spec.SetField(albumtype.FieldIsDeletable, field.TypeBool, value)
	}
	if _u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{albumtype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlbumTypeUpdateOne is the builder for updating a single AlbumType entity.
type AlbumTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlbumTypeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlbumTypeUpdateOne) SetUpdatedAt(v time.Time) *AlbumTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AlbumTypeUpdateOne) SetName(v string) *AlbumTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AlbumTypeUpdateOne) SetNillableName(v *string) *AlbumTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlbumTypeUpdateOne) SetDescription(v string) *AlbumTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlbumTypeUpdateOne) SetNillableDescription(v *string) *AlbumTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *AlbumTypeUpdateOne) SetSortOrder(v int) *AlbumTypeUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *AlbumTypeUpdateOne) SetNillableSortOrder(v *int) *AlbumTypeUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *AlbumTypeUpdateOne) AddSortOrder(v int) *AlbumTypeUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetIsVirtual sets the "is_virtual" field.
func (_u *AlbumTypeUpdateOne) SetIsVirtual(v bool) *AlbumTypeUpdateOne {
	_u.mutation.SetIsVirtual(v)
	return _u
}

// SetNillableIsVirtual sets the "is_virtual" field if the given value is not nil.
func (_u *AlbumTypeUpdateOne) SetNillableIsVirtual(v *bool) *AlbumTypeUpdateOne {
	if v != nil {
		_u.SetIsVirtual(*v)
	}
	return _u
}

// SetIsDeletable sets the "is_deletable" field.
func (_u *AlbumTypeUpdateOne) SetIsDeletable(v bool) *AlbumTypeUpdateOne {
	_u.mutation.SetIsDeletable(v)
	return _u
}

// SetNillableIsDeletable sets the "is_deletable" field if the given value is not nil.
func (_u *AlbumTypeUpdateOne) SetNillableIsDeletable(v *bool) *AlbumTypeUpdateOne {
	if v != nil {
		_u.SetIsDeletable(*v)
	}
	return _u
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *AlbumTypeUpdateOne) AddAlbumIDs(ids ...string) *AlbumTypeUpdateOne {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *AlbumTypeUpdateOne) AddAlbums(v ...*Album) *AlbumTypeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// Mutation returns the AlbumTypeMutation object of the builder.
func (_u *AlbumTypeUpdateOne) Mutation() *AlbumTypeMutation {
	return _u.mutation
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *AlbumTypeUpdateOne) ClearAlbums() *AlbumTypeUpdateOne {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *AlbumTypeUpdateOne) RemoveAlbumIDs(ids ...string) *AlbumTypeUpdateOne {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *AlbumTypeUpdateOne) RemoveAlbums(v ...*Album) *AlbumTypeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// Where appends a list predicates to the AlbumTypeUpdate builder.
func (_u *AlbumTypeUpdateOne) Where(ps ...predicate.AlbumType) *AlbumTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlbumTypeUpdateOne) Select(field string, fields ...string) *AlbumTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlbumType entity.
func (_u *AlbumTypeUpdateOne) Save(ctx context.Context) (*AlbumType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlbumTypeUpdateOne) SaveX(ctx context.Context) *AlbumType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlbumTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlbumTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlbumTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := albumtype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlbumTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := albumtype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AlbumType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := albumtype.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "AlbumType.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SortOrder(); ok {
		if err := albumtype.SortOrderValidator(v); err != nil {
			return &ValidationError{Name: "sort_order", err: fmt.Errorf(`ent: validator failed for field "AlbumType.sort_order": %w`, err)}
		}
	}
	return nil
}

func (_u *AlbumTypeUpdateOne) sqlSave(ctx context.Context) (_node *AlbumType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(albumtype.Table, albumtype.Columns, sqlgraph.NewFieldSpec(albumtype.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlbumType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, albumtype.FieldID)
		for _, f := range fields {
			if !albumtype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != albumtype.FieldID {
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
		_spec.SetField(albumtype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(albumtype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(albumtype.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(albumtype.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(albumtype.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsVirtual(); ok {
		_spec.SetField(albumtype.FieldIsVirtual, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDeletable(); ok {
		_spec.SetField(albumtype.FieldIsDeletable, field.TypeBool, value)
	}
	if _u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AlbumType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{albumtype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
