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
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/predicate"
	"planora.io/planora/ent/thumbnail"
)

// AlbumFileUpdate is the builder for updating AlbumFile entities.
type AlbumFileUpdate struct {
	config
	hooks    []Hook
	mutation *AlbumFileMutation
}

// Where appends a list predicates to the AlbumFileUpdate builder.
func (_u *AlbumFileUpdate) Where(ps ...predicate.AlbumFile) *AlbumFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlbumFileUpdate) SetUpdatedAt(v time.Time) *AlbumFileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AlbumFileUpdate) SetOwnerID(v string) *AlbumFileUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableOwnerID(v *string) *AlbumFileUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AlbumFileUpdate) SetName(v string) *AlbumFileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableName(v *string) *AlbumFileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *AlbumFileUpdate) ClearName() *AlbumFileUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlbumFileUpdate) SetDescription(v string) *AlbumFileUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableDescription(v *string) *AlbumFileUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlbumFileUpdate) ClearDescription() *AlbumFileUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *AlbumFileUpdate) SetFileURL(v string) *AlbumFileUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableFileURL(v *string) *AlbumFileUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *AlbumFileUpdate) ClearFileURL() *AlbumFileUpdate {
	_u.mutation.ClearFileURL()
	return _u
}

// SetWidth sets the "width" field.
func (_u *AlbumFileUpdate) SetWidth(v int) *AlbumFileUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableWidth(v *int) *AlbumFileUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *AlbumFileUpdate) AddWidth(v int) *AlbumFileUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *AlbumFileUpdate) SetHeight(v int) *AlbumFileUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableHeight(v *int) *AlbumFileUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *AlbumFileUpdate) AddHeight(v int) *AlbumFileUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AlbumFileUpdate) SetSizeBytes(v int) *AlbumFileUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableSizeBytes(v *int) *AlbumFileUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AlbumFileUpdate) AddSizeBytes(v int) *AlbumFileUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *AlbumFileUpdate) SetFileType(v albumfile.FileType) *AlbumFileUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableFileType(v *albumfile.FileType) *AlbumFileUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlbumFileUpdate) SetStatus(v albumfile.Status) *AlbumFileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableStatus(v *albumfile.Status) *AlbumFileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *AlbumFileUpdate) SetBucket(v string) *AlbumFileUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableBucket(v *string) *AlbumFileUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *AlbumFileUpdate) SetObjectKey(v string) *AlbumFileUpdate {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableObjectKey(v *string) *AlbumFileUpdate {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetMediaCreated sets the "media_created" field.
func (_u *AlbumFileUpdate) SetMediaCreated(v time.Time) *AlbumFileUpdate {
	_u.mutation.SetMediaCreated(v)
	return _u
}

// SetNillableMediaCreated sets the "media_created" field if the given value is not nil.
func (_u *AlbumFileUpdate) SetNillableMediaCreated(v *time.Time) *AlbumFileUpdate {
	if v != nil {
		_u.SetMediaCreated(*v)
	}
	return _u
}

// ClearMediaCreated clears the value of the "media_created" field.
func (_u *AlbumFileUpdate) ClearMediaCreated() *AlbumFileUpdate {
	_u.mutation.ClearMediaCreated()
	return _u
}

// SetOwner sets the "owner" edge to the Account entity.
func (_u *AlbumFileUpdate) SetOwner(v *Account) *AlbumFileUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *AlbumFileUpdate) AddAlbumIDs(ids ...string) *AlbumFileUpdate {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *AlbumFileUpdate) AddAlbums(v ...*Album) *AlbumFileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// AddThumbnailIDs adds the "thumbnails" edge to the Thumbnail entity by IDs.
func (_u *AlbumFileUpdate) AddThumbnailIDs(ids ...string) *AlbumFileUpdate {
	_u.mutation.AddThumbnailIDs(ids...)
	return _u
}

// AddThumbnails adds the "thumbnails" edges to the Thumbnail entity.
func (_u *AlbumFileUpdate) AddThumbnails(v ...*Thumbnail) *AlbumFileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThumbnailIDs(ids...)
}

// Mutation returns the AlbumFileMutation object of the builder.
func (_u *AlbumFileUpdate) Mutation() *AlbumFileMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Account entity.
func (_u *AlbumFileUpdate) ClearOwner() *AlbumFileUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *AlbumFileUpdate) ClearAlbums() *AlbumFileUpdate {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *AlbumFileUpdate) RemoveAlbumIDs(ids ...string) *AlbumFileUpdate {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *AlbumFileUpdate) RemoveAlbums(v ...*Album) *AlbumFileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// ClearThumbnails clears all "thumbnails" edges to the Thumbnail entity.
func (_u *AlbumFileUpdate) ClearThumbnails() *AlbumFileUpdate {
	_u.mutation.ClearThumbnails()
	return _u
}

// RemoveThumbnailIDs removes the "thumbnails" edge to Thumbnail entities by IDs.
func (_u *AlbumFileUpdate) RemoveThumbnailIDs(ids ...string) *AlbumFileUpdate {
	_u.mutation.RemoveThumbnailIDs(ids...)
	return _u
}

// RemoveThumbnails removes "thumbnails" edges to Thumbnail entities.
func (_u *AlbumFileUpdate) RemoveThumbnails(v ...*Thumbnail) *AlbumFileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThumbnailIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlbumFileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlbumFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlbumFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlbumFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlbumFileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := albumfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlbumFileUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := albumfile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := albumfile.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := albumfile.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := albumfile.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := albumfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := albumfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := albumfile.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectKey(); ok {
		if err := albumfile.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.object_key": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlbumFile.owner"`)
	}
	return nil
}

func (_u *AlbumFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(albumfile.Table, albumfile.Columns, sqlgraph.NewFieldSpec(albumfile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(albumfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(albumfile.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(albumfile.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(albumfile.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(albumfile.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(albumfile.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(albumfile.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(albumfile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(albumfile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(albumfile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(albumfile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(albumfile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(albumfile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(albumfile.FieldFileType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(albumfile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(albumfile.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(albumfile.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaCreated(); ok {
		_spec.SetField(albumfile.FieldMediaCreated, field.TypeTime, value)
	}
	if _u.mutation.MediaCreatedCleared() {
		_spec.ClearField(albumfile.FieldMediaCreated, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   albumfile.OwnerTable,
			Columns: []string{albumfile.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   albumfile.OwnerTable,
			Columns: []string{albumfile.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   albumfile.AlbumsTable,
			Columns: albumfile.AlbumsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(album.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   albumfile.AlbumsTable,
			Columns: albumfile.AlbumsPrimaryKey,
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
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   albumfile.AlbumsTable,
			Columns: albumfile.AlbumsPrimaryKey,
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
	if _u.mutation.ThumbnailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumfile.ThumbnailsTable,
			Columns: []string{albumfile.ThumbnailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThumbnailsIDs(); len(nodes) > 0 && !_u.mutation.ThumbnailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumfile.ThumbnailsTable,
			Columns: []string{albumfile.ThumbnailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThumbnailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumfile.ThumbnailsTable,
			Columns: []string{albumfile.ThumbnailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{albumfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlbumFileUpdateOne is the builder for updating a single AlbumFile entity.
type AlbumFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlbumFileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlbumFileUpdateOne) SetUpdatedAt(v time.Time) *AlbumFileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AlbumFileUpdateOne) SetOwnerID(v string) *AlbumFileUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableOwnerID(v *string) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AlbumFileUpdateOne) SetName(v string) *AlbumFileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableName(v *string) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *AlbumFileUpdateOne) ClearName() *AlbumFileUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlbumFileUpdateOne) SetDescription(v string) *AlbumFileUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableDescription(v *string) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlbumFileUpdateOne) ClearDescription() *AlbumFileUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *AlbumFileUpdateOne) SetFileURL(v string) *AlbumFileUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableFileURL(v *string) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *AlbumFileUpdateOne) ClearFileURL() *AlbumFileUpdateOne {
	_u.mutation.ClearFileURL()
	return _u
}

// SetWidth sets the "width" field.
func (_u *AlbumFileUpdateOne) SetWidth(v int) *AlbumFileUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableWidth(v *int) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *AlbumFileUpdateOne) AddWidth(v int) *AlbumFileUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *AlbumFileUpdateOne) SetHeight(v int) *AlbumFileUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableHeight(v *int) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *AlbumFileUpdateOne) AddHeight(v int) *AlbumFileUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AlbumFileUpdateOne) SetSizeBytes(v int) *AlbumFileUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableSizeBytes(v *int) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AlbumFileUpdateOne) AddSizeBytes(v int) *AlbumFileUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *AlbumFileUpdateOne) SetFileType(v albumfile.FileType) *AlbumFileUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableFileType(v *albumfile.FileType) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlbumFileUpdateOne) SetStatus(v albumfile.Status) *AlbumFileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableStatus(v *albumfile.Status) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *AlbumFileUpdateOne) SetBucket(v string) *AlbumFileUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableBucket(v *string) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *AlbumFileUpdateOne) SetObjectKey(v string) *AlbumFileUpdateOne {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableObjectKey(v *string) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetMediaCreated sets the "media_created" field.
func (_u *AlbumFileUpdateOne) SetMediaCreated(v time.Time) *AlbumFileUpdateOne {
	_u.mutation.SetMediaCreated(v)
	return _u
}

// SetNillableMediaCreated sets the "media_created" field if the given value is not nil.
func (_u *AlbumFileUpdateOne) SetNillableMediaCreated(v *time.Time) *AlbumFileUpdateOne {
	if v != nil {
		_u.SetMediaCreated(*v)
	}
	return _u
}

// ClearMediaCreated clears the value of the "media_created" field.
func (_u *AlbumFileUpdateOne) ClearMediaCreated() *AlbumFileUpdateOne {
	_u.mutation.ClearMediaCreated()
	return _u
}

// SetOwner sets the "owner" edge to the Account entity.
func (_u *AlbumFileUpdateOne) SetOwner(v *Account) *AlbumFileUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *AlbumFileUpdateOne) AddAlbumIDs(ids ...string) *AlbumFileUpdateOne {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *AlbumFileUpdateOne) AddAlbums(v ...*Album) *AlbumFileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// AddThumbnailIDs adds the "thumbnails" edge to the Thumbnail entity by IDs.
func (_u *AlbumFileUpdateOne) AddThumbnailIDs(ids ...string) *AlbumFileUpdateOne {
	_u.mutation.AddThumbnailIDs(ids...)
	return _u
}

// AddThumbnails adds the "thumbnails" edges to the Thumbnail entity.
func (_u *AlbumFileUpdateOne) AddThumbnails(v ...*Thumbnail) *AlbumFileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThumbnailIDs(ids...)
}

// Mutation returns the AlbumFileMutation object of the builder.
func (_u *AlbumFileUpdateOne) Mutation() *AlbumFileMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Account entity.
func (_u *AlbumFileUpdateOne) ClearOwner() *AlbumFileUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *AlbumFileUpdateOne) ClearAlbums() *AlbumFileUpdateOne {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *AlbumFileUpdateOne) RemoveAlbumIDs(ids ...string) *AlbumFileUpdateOne {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *AlbumFileUpdateOne) RemoveAlbums(v ...*Album) *AlbumFileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// ClearThumbnails clears all "thumbnails" edges to the Thumbnail entity.
func (_u *AlbumFileUpdateOne) ClearThumbnails() *AlbumFileUpdateOne {
	_u.mutation.ClearThumbnails()
	return _u
}

// RemoveThumbnailIDs removes the "thumbnails" edge to Thumbnail entities by IDs.
func (_u *AlbumFileUpdateOne) RemoveThumbnailIDs(ids ...string) *AlbumFileUpdateOne {
	_u.mutation.RemoveThumbnailIDs(ids...)
	return _u
}

// RemoveThumbnails removes "thumbnails" edges to Thumbnail entities.
func (_u *AlbumFileUpdateOne) RemoveThumbnails(v ...*Thumbnail) *AlbumFileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThumbnailIDs(ids...)
}

// Where appends a list predicates to the AlbumFileUpdate builder.
func (_u *AlbumFileUpdateOne) Where(ps ...predicate.AlbumFile) *AlbumFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlbumFileUpdateOne) Select(field string, fields ...string) *AlbumFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlbumFile entity.
func (_u *AlbumFileUpdateOne) Save(ctx context.Context) (*AlbumFile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlbumFileUpdateOne) SaveX(ctx context.Context) *AlbumFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlbumFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlbumFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlbumFileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := albumfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlbumFileUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := albumfile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := albumfile.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := albumfile.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := albumfile.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := albumfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := albumfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := albumfile.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectKey(); ok {
		if err := albumfile.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.object_key": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlbumFile.owner"`)
	}
	return nil
}

func (_u *AlbumFileUpdateOne) sqlSave(ctx context.Context) (_node *AlbumFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(albumfile.Table, albumfile.Columns, sqlgraph.NewFieldSpec(albumfile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlbumFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, albumfile.FieldID)
		for _, f := range fields {
			if !albumfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != albumfile.FieldID {
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
		_spec.SetField(albumfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(albumfile.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(albumfile.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(albumfile.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(albumfile.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(albumfile.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(albumfile.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(albumfile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(albumfile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(albumfile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(albumfile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(albumfile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(albumfile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(albumfile.FieldFileType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(albumfile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(albumfile.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(albumfile.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaCreated(); ok {
		_spec.SetField(albumfile.FieldMediaCreated, field.TypeTime, value)
	}
	if _u.mutation.MediaCreatedCleared() {
		_spec.ClearField(albumfile.FieldMediaCreated, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   albumfile.OwnerTable,
			Columns: []string{albumfile.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   albumfile.OwnerTable,
			Columns: []string{albumfile.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   albumfile.AlbumsTable,
			Columns: albumfile.AlbumsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(album.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   albumfile.AlbumsTable,
			Columns: albumfile.AlbumsPrimaryKey,
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
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   albumfile.AlbumsTable,
			Columns: albumfile.AlbumsPrimaryKey,
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
	if _u.mutation.ThumbnailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumfile.ThumbnailsTable,
			Columns: []string{albumfile.ThumbnailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThumbnailsIDs(); len(nodes) > 0 && !_u.mutation.ThumbnailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumfile.ThumbnailsTable,
			Columns: []string{albumfile.ThumbnailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThumbnailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   albumfile.ThumbnailsTable,
			Columns: []string{albumfile.ThumbnailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thumbnail.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AlbumFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{albumfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
