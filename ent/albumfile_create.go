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
	"planora.io/planora/ent/thumbnail"
)

// AlbumFileCreate is the builder for creating a AlbumFile entity.
type AlbumFileCreate struct {
	config
	mutation *AlbumFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlbumFileCreate) SetCreatedAt(v time.Time) *AlbumFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableCreatedAt(v *time.Time) *AlbumFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AlbumFileCreate) SetUpdatedAt(v time.Time) *AlbumFileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableUpdatedAt(v *time.Time) *AlbumFileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *AlbumFileCreate) SetOwnerID(v string) *AlbumFileCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AlbumFileCreate) SetName(v string) *AlbumFileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableName(v *string) *AlbumFileCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AlbumFileCreate) SetDescription(v string) *AlbumFileCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableDescription(v *string) *AlbumFileCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *AlbumFileCreate) SetFileURL(v string) *AlbumFileCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableFileURL(v *string) *AlbumFileCreate {
	if v != nil {
		_c.SetFileURL(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *AlbumFileCreate) SetWidth(v int) *AlbumFileCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *AlbumFileCreate) SetHeight(v int) *AlbumFileCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AlbumFileCreate) SetSizeBytes(v int) *AlbumFileCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *AlbumFileCreate) SetFileType(v albumfile.FileType) *AlbumFileCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableFileType(v *albumfile.FileType) *AlbumFileCreate {
	if v != nil {
		_c.SetFileType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlbumFileCreate) SetStatus(v albumfile.Status) *AlbumFileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableStatus(v *albumfile.Status) *AlbumFileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *AlbumFileCreate) SetBucket(v string) *AlbumFileCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetObjectKey sets the "object_key" field.
func (_c *AlbumFileCreate) SetObjectKey(v string) *AlbumFileCreate {
	_c.mutation.SetObjectKey(v)
	return _c
}

// SetMediaCreated sets the "media_created" field.
func (_c *AlbumFileCreate) SetMediaCreated(v time.Time) *AlbumFileCreate {
	_c.mutation.SetMediaCreated(v)
	return _c
}

// SetNillableMediaCreated sets the "media_created" field if the given value is not nil.
func (_c *AlbumFileCreate) SetNillableMediaCreated(v *time.Time) *AlbumFileCreate {
	if v != nil {
		_c.SetMediaCreated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlbumFileCreate) SetID(v string) *AlbumFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwner sets the "owner" edge to the Account entity.
func (_c *AlbumFileCreate) SetOwner(v *Account) *AlbumFileCreate {
	return _c.SetOwnerID(v.ID)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_c *AlbumFileCreate) AddAlbumIDs(ids ...string) *AlbumFileCreate {
	_c.mutation.AddAlbumIDs(ids...)
	return _c
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_c *AlbumFileCreate) AddAlbums(v ...*Album) *AlbumFileCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlbumIDs(ids...)
}

// AddThumbnailIDs adds the "thumbnails" edge to the Thumbnail entity by IDs.
func (_c *AlbumFileCreate) AddThumbnailIDs(ids ...string) *AlbumFileCreate {
	_c.mutation.AddThumbnailIDs(ids...)
	return _c
}

// AddThumbnails adds the "thumbnails" edges to the Thumbnail entity.
func (_c *AlbumFileCreate) AddThumbnails(v ...*Thumbnail) *AlbumFileCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddThumbnailIDs(ids...)
}

// Mutation returns the AlbumFileMutation object of the builder.
func (_c *AlbumFileCreate) Mutation() *AlbumFileMutation {
	return _c.mutation
}

// Save creates the AlbumFile in the database.
func (_c *AlbumFileCreate) Save(ctx context.Context) (*AlbumFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlbumFileCreate) SaveX(ctx context.Context) *AlbumFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlbumFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlbumFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlbumFileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := albumfile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := albumfile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FileType(); !ok {
		v := albumfile.DefaultFileType
		_c.mutation.SetFileType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := albumfile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlbumFileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlbumFile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AlbumFile.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "AlbumFile.owner_id"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := albumfile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "AlbumFile.width"`)}
	}
	if v, ok := _c.mutation.Width(); ok {
		if err := albumfile.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.width": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "AlbumFile.height"`)}
	}
	if v, ok := _c.mutation.Height(); ok {
		if err := albumfile.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.height": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "AlbumFile.size_bytes"`)}
	}
	if v, ok := _c.mutation.SizeBytes(); ok {
		if err := albumfile.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.size_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "AlbumFile.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := albumfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AlbumFile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := albumfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "AlbumFile.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := albumfile.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectKey(); !ok {
		return &ValidationError{Name: "object_key", err: errors.New(`ent: missing required field "AlbumFile.object_key"`)}
	}
	if v, ok := _c.mutation.ObjectKey(); ok {
		if err := albumfile.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "AlbumFile.object_key": %w`, err)}
		}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "AlbumFile.owner"`)}
	}
	return nil
}

func (_c *AlbumFileCreate) sqlSave(ctx context.Context) (*AlbumFile, error) {
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
			return nil, fmt.Errorf("unexpected AlbumFile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlbumFileCreate) createSpec() (*AlbumFile, *sqlgraph.CreateSpec) {
	var (
		_node = &AlbumFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(albumfile.Table, sqlgraph.NewFieldSpec(albumfile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(albumfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(albumfile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(albumfile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(albumfile.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(albumfile.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(albumfile.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(albumfile.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(albumfile.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(albumfile.FieldFileType, field.TypeEnum, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(albumfile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(albumfile.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.ObjectKey(); ok {
		_spec.SetField(albumfile.FieldObjectKey, field.TypeString, value)
		_node.ObjectKey = value
	}
	if value, ok := _c.mutation.MediaCreated(); ok {
		_spec.SetField(albumfile.FieldMediaCreated, field.TypeTime, value)
		_node.MediaCreated = &value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ThumbnailsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlbumFile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlbumFileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlbumFileCreate) OnConflict(opts ...sql.ConflictOption) *AlbumFileUpsertOne {
	_c.conflict = opts
	return &AlbumFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlbumFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlbumFileCreate) OnConflictColumns(columns ...string) *AlbumFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlbumFileUpsertOne{
		create: _c,
	}
}

type (
	// AlbumFileUpsertOne is the builder for "upsert"-ing
	//  one AlbumFile node.
	AlbumFileUpsertOne struct {
		create *AlbumFileCreate
	}

	// AlbumFileUpsert is the "OnConflict" setter.
	AlbumFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumFileUpsert) SetUpdatedAt(v time.Time) *AlbumFileUpsert {
	u.Set(albumfile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateUpdatedAt() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *AlbumFileUpsert) SetOwnerID(v string) *AlbumFileUpsert {
	u.Set(albumfile.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateOwnerID() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldOwnerID)
	return u
}

// SetName sets the "name" field.
func (u *AlbumFileUpsert) SetName(v string) *AlbumFileUpsert {
	u.Set(albumfile.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateName() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *AlbumFileUpsert) ClearName() *AlbumFileUpsert {
	u.SetNull(albumfile.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *AlbumFileUpsert) SetDescription(v string) *AlbumFileUpsert {
	u.Set(albumfile.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateDescription() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *AlbumFileUpsert) ClearDescription() *AlbumFileUpsert {
	u.SetNull(albumfile.FieldDescription)
	return u
}

// SetFileURL sets the "file_url" field.
func (u *AlbumFileUpsert) SetFileURL(v string) *AlbumFileUpsert {
	u.Set(albumfile.FieldFileURL, v)
	return u
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateFileURL() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldFileURL)
	return u
}

// ClearFileURL clears the value of the "file_url" field.
func (u *AlbumFileUpsert) ClearFileURL() *AlbumFileUpsert {
	u.SetNull(albumfile.FieldFileURL)
	return u
}

// SetWidth sets the "width" field.
func (u *AlbumFileUpsert) SetWidth(v int) *AlbumFileUpsert {
	u.Set(albumfile.FieldWidth, v)
	return u
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateWidth() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldWidth)
	return u
}

// AddWidth adds v to the "width" field.
func (u *AlbumFileUpsert) AddWidth(v int) *AlbumFileUpsert {
	u.Add(albumfile.FieldWidth, v)
	return u
}

// SetHeight sets the "height" field.
func (u *AlbumFileUpsert) SetHeight(v int) *AlbumFileUpsert {
	u.Set(albumfile.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateHeight() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *AlbumFileUpsert) AddHeight(v int) *AlbumFileUpsert {
	u.Add(albumfile.FieldHeight, v)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AlbumFileUpsert) SetSizeBytes(v int) *AlbumFileUpsert {
	u.Set(albumfile.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateSizeBytes() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AlbumFileUpsert) AddSizeBytes(v int) *AlbumFileUpsert {
	u.Add(albumfile.FieldSizeBytes, v)
	return u
}

// SetFileType sets the "file_type" field.
func (u *AlbumFileUpsert) SetFileType(v albumfile.FileType) *AlbumFileUpsert {
	u.Set(albumfile.FieldFileType, v)
	return u
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateFileType() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldFileType)
	return u
}

// SetStatus sets the "status" field.
func (u *AlbumFileUpsert) SetStatus(v albumfile.Status) *AlbumFileUpsert {
	u.Set(albumfile.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateStatus() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldStatus)
	return u
}

// SetBucket sets the "bucket" field.
func (u *AlbumFileUpsert) SetBucket(v string) *AlbumFileUpsert {
	u.Set(albumfile.FieldBucket, v)
	return u
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateBucket() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldBucket)
	return u
}

// SetObjectKey sets the "object_key" field.
func (u *AlbumFileUpsert) SetObjectKey(v string) *AlbumFileUpsert {
	u.Set(albumfile.FieldObjectKey, v)
	return u
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateObjectKey() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldObjectKey)
	return u
}

// SetMediaCreated sets the "media_created" field.
func (u *AlbumFileUpsert) SetMediaCreated(v time.Time) *AlbumFileUpsert {
	u.Set(albumfile.FieldMediaCreated, v)
	return u
}

// UpdateMediaCreated sets the "media_created" field to the value that was provided on create.
func (u *AlbumFileUpsert) UpdateMediaCreated() *AlbumFileUpsert {
	u.SetExcluded(albumfile.FieldMediaCreated)
	return u
}

// ClearMediaCreated clears the value of the "media_created" field.
func (u *AlbumFileUpsert) ClearMediaCreated() *AlbumFileUpsert {
	u.SetNull(albumfile.FieldMediaCreated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AlbumFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(albumfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlbumFileUpsertOne) UpdateNewValues() *AlbumFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(albumfile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(albumfile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlbumFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlbumFileUpsertOne) Ignore() *AlbumFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlbumFileUpsertOne) DoNothing() *AlbumFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlbumFileCreate.OnConflict
// documentation for more info.
func (u *AlbumFileUpsertOne) Update(set func(*AlbumFileUpsert)) *AlbumFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlbumFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumFileUpsertOne) SetUpdatedAt(v time.Time) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateUpdatedAt() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AlbumFileUpsertOne) SetOwnerID(v string) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateOwnerID() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *AlbumFileUpsertOne) SetName(v string) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateName() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *AlbumFileUpsertOne) ClearName() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearName()
	})
}

// SetDescription sets the "description" field.
func (u *AlbumFileUpsertOne) SetDescription(v string) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateDescription() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlbumFileUpsertOne) ClearDescription() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearDescription()
	})
}

// SetFileURL sets the "file_url" field.
func (u *AlbumFileUpsertOne) SetFileURL(v string) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateFileURL() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateFileURL()
	})
}

// ClearFileURL clears the value of the "file_url" field.
func (u *AlbumFileUpsertOne) ClearFileURL() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearFileURL()
	})
}

// SetWidth sets the "width" field.
func (u *AlbumFileUpsertOne) SetWidth(v int) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *AlbumFileUpsertOne) AddWidth(v int) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateWidth() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *AlbumFileUpsertOne) SetHeight(v int) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *AlbumFileUpsertOne) AddHeight(v int) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateHeight() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateHeight()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AlbumFileUpsertOne) SetSizeBytes(v int) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AlbumFileUpsertOne) AddSizeBytes(v int) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateSizeBytes() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetFileType sets the "file_type" field.
func (u *AlbumFileUpsertOne) SetFileType(v albumfile.FileType) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateFileType() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateFileType()
	})
}

// SetStatus sets the "status" field.
func (u *AlbumFileUpsertOne) SetStatus(v albumfile.Status) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateStatus() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateStatus()
	})
}

// SetBucket sets the "bucket" field.
func (u *AlbumFileUpsertOne) SetBucket(v string) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateBucket() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateBucket()
	})
}

// SetObjectKey sets the "object_key" field.
func (u *AlbumFileUpsertOne) SetObjectKey(v string) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetObjectKey(v)
	})
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateObjectKey() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateObjectKey()
	})
}

// SetMediaCreated sets the "media_created" field.
func (u *AlbumFileUpsertOne) SetMediaCreated(v time.Time) *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetMediaCreated(v)
	})
}

// UpdateMediaCreated sets the "media_created" field to the value that was provided on create.
func (u *AlbumFileUpsertOne) UpdateMediaCreated() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateMediaCreated()
	})
}

// ClearMediaCreated clears the value of the "media_created" field.
func (u *AlbumFileUpsertOne) ClearMediaCreated() *AlbumFileUpsertOne {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearMediaCreated()
	})
}

// Exec executes the query.
func (u *AlbumFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlbumFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlbumFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlbumFileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlbumFileUpsertOne.ID is not supported by MySQL driver. Use AlbumFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlbumFileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlbumFileCreateBulk is the builder for creating many AlbumFile entities in bulk.
type AlbumFileCreateBulk struct {
	config
	err      error
	builders []*AlbumFileCreate
	conflict []sql.ConflictOption
}

// Save creates the AlbumFile entities in the database.
func (_c *AlbumFileCreateBulk) Save(ctx context.Context) ([]*AlbumFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlbumFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlbumFileMutation)
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
func (_c *AlbumFileCreateBulk) SaveX(ctx context.Context) []*AlbumFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlbumFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlbumFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlbumFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlbumFileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlbumFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlbumFileUpsertBulk {
	_c.conflict = opts
	return &AlbumFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlbumFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlbumFileCreateBulk) OnConflictColumns(columns ...string) *AlbumFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlbumFileUpsertBulk{
		create: _c,
	}
}

// AlbumFileUpsertBulk is the builder for "upsert"-ing
// a bulk of AlbumFile nodes.
type AlbumFileUpsertBulk struct {
	create *AlbumFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AlbumFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(albumfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlbumFileUpsertBulk) UpdateNewValues() *AlbumFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(albumfile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(albumfile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlbumFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlbumFileUpsertBulk) Ignore() *AlbumFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlbumFileUpsertBulk) DoNothing() *AlbumFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlbumFileCreateBulk.OnConflict
// documentation for more info.
func (u *AlbumFileUpsertBulk) Update(set func(*AlbumFileUpsert)) *AlbumFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlbumFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlbumFileUpsertBulk) SetUpdatedAt(v time.Time) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateUpdatedAt() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AlbumFileUpsertBulk) SetOwnerID(v string) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateOwnerID() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *AlbumFileUpsertBulk) SetName(v string) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateName() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *AlbumFileUpsertBulk) ClearName() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearName()
	})
}

// SetDescription sets the "description" field.
func (u *AlbumFileUpsertBulk) SetDescription(v string) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateDescription() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlbumFileUpsertBulk) ClearDescription() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearDescription()
	})
}

// SetFileURL sets the "file_url" field.
func (u *AlbumFileUpsertBulk) SetFileURL(v string) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateFileURL() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateFileURL()
	})
}

// ClearFileURL clears the value of the "file_url" field.
func (u *AlbumFileUpsertBulk) ClearFileURL() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearFileURL()
	})
}

// SetWidth sets the "width" field.
func (u *AlbumFileUpsertBulk) SetWidth(v int) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *AlbumFileUpsertBulk) AddWidth(v int) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateWidth() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *AlbumFileUpsertBulk) SetHeight(v int) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *AlbumFileUpsertBulk) AddHeight(v int) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateHeight() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateHeight()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AlbumFileUpsertBulk) SetSizeBytes(v int) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AlbumFileUpsertBulk) AddSizeBytes(v int) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateSizeBytes() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetFileType sets the "file_type" field.
func (u *AlbumFileUpsertBulk) SetFileType(v albumfile.FileType) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateFileType() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateFileType()
	})
}

// SetStatus sets the "status" field.
func (u *AlbumFileUpsertBulk) SetStatus(v albumfile.Status) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateStatus() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateStatus()
	})
}

// SetBucket sets the "bucket" field.
func (u *AlbumFileUpsertBulk) SetBucket(v string) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateBucket() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateBucket()
	})
}

// SetObjectKey sets the "object_key" field.
func (u *AlbumFileUpsertBulk) SetObjectKey(v string) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetObjectKey(v)
	})
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateObjectKey() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateObjectKey()
	})
}

// SetMediaCreated sets the "media_created" field.
func (u *AlbumFileUpsertBulk) SetMediaCreated(v time.Time) *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.SetMediaCreated(v)
	})
}

// UpdateMediaCreated sets the "media_created" field to the value that was provided on create.
func (u *AlbumFileUpsertBulk) UpdateMediaCreated() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.UpdateMediaCreated()
	})
}

// ClearMediaCreated clears the value of the "media_created" field.
func (u *AlbumFileUpsertBulk) ClearMediaCreated() *AlbumFileUpsertBulk {
	return u.Update(func(s *AlbumFileUpsert) {
		s.ClearMediaCreated()
	})
}

// Exec executes the query.
func (u *AlbumFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlbumFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlbumFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlbumFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
