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
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/ent/passwordreset"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountCreate) SetCreatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCreatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountCreate) SetUpdatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableUpdatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *AccountCreate) SetEmail(v string) *AccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *AccountCreate) SetNillableEmail(v *string) *AccountCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *AccountCreate) SetPhone(v string) *AccountCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *AccountCreate) SetNillablePhone(v *string) *AccountCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AccountCreate) SetName(v string) *AccountCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *AccountCreate) SetNillableName(v *string) *AccountCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AccountCreate) SetStatus(v account.Status) *AccountCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AccountCreate) SetNillableStatus(v *account.Status) *AccountCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *AccountCreate) SetPasswordHash(v string) *AccountCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *AccountCreate) SetNillablePasswordHash(v *string) *AccountCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (_c *AccountCreate) SetProfilePrivacy(v account.ProfilePrivacy) *AccountCreate {
	_c.mutation.SetProfilePrivacy(v)
	return _c
}

// SetNillableProfilePrivacy sets the "profile_privacy" field if the given value is not nil.
func (_c *AccountCreate) SetNillableProfilePrivacy(v *account.ProfilePrivacy) *AccountCreate {
	if v != nil {
		_c.SetProfilePrivacy(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *AccountCreate) SetLastLoginAt(v time.Time) *AccountCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableLastLoginAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetDateJoined sets the "date_joined" field.
func (_c *AccountCreate) SetDateJoined(v time.Time) *AccountCreate {
	_c.mutation.SetDateJoined(v)
	return _c
}

// SetNillableDateJoined sets the "date_joined" field if the given value is not nil.
func (_c *AccountCreate) SetNillableDateJoined(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetDateJoined(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccountCreate) SetID(v string) *AccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSettingsID sets the "settings" edge to the AccountSettings entity by ID.
func (_c *AccountCreate) SetSettingsID(id string) *AccountCreate {
	_c.mutation.SetSettingsID(id)
	return _c
}

// SetNillableSettingsID sets the "settings" edge to the AccountSettings entity by ID if the given value is not nil.
func (_c *AccountCreate) SetNillableSettingsID(id *string) *AccountCreate {
	if id != nil {
		_c = _c.SetSettingsID(*id)
	}
	return _c
}

// SetSettings sets the "settings" edge to the AccountSettings entity.
func (_c *AccountCreate) SetSettings(v *AccountSettings) *AccountCreate {
	return _c.SetSettingsID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *AccountCreate) AddEventIDs(ids ...string) *AccountCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *AccountCreate) AddEvents(v ...*Event) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddGuestEntryIDs adds the "guest_entries" edge to the EventGuest entity by IDs.
func (_c *AccountCreate) AddGuestEntryIDs(ids ...string) *AccountCreate {
	_c.mutation.AddGuestEntryIDs(ids...)
	return _c
}

// AddGuestEntries adds the "guest_entries" edges to the EventGuest entity.
func (_c *AccountCreate) AddGuestEntries(v ...*EventGuest) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGuestEntryIDs(ids...)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_c *AccountCreate) AddAlbumIDs(ids ...string) *AccountCreate {
	_c.mutation.AddAlbumIDs(ids...)
	return _c
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_c *AccountCreate) AddAlbums(v ...*Album) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlbumIDs(ids...)
}

// AddAlbumFileIDs adds the "album_files" edge to the AlbumFile entity by IDs.
func (_c *AccountCreate) AddAlbumFileIDs(ids ...string) *AccountCreate {
	_c.mutation.AddAlbumFileIDs(ids...)
	return _c
}

// AddAlbumFiles adds the "album_files" edges to the AlbumFile entity.
func (_c *AccountCreate) AddAlbumFiles(v ...*AlbumFile) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlbumFileIDs(ids...)
}

// AddSentNotificationIDs adds the "sent_notifications" edge to the InAppNotification entity by IDs.
func (_c *AccountCreate) AddSentNotificationIDs(ids ...string) *AccountCreate {
	_c.mutation.AddSentNotificationIDs(ids...)
	return _c
}

// AddSentNotifications adds the "sent_notifications" edges to the InAppNotification entity.
func (_c *AccountCreate) AddSentNotifications(v ...*InAppNotification) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSentNotificationIDs(ids...)
}

// AddReceivedNotificationIDs adds the "received_notifications" edge to the InAppNotification entity by IDs.
func (_c *AccountCreate) AddReceivedNotificationIDs(ids ...string) *AccountCreate {
	_c.mutation.AddReceivedNotificationIDs(ids...)
	return _c
}

// AddReceivedNotifications adds the "received_notifications" edges to the InAppNotification entity.
func (_c *AccountCreate) AddReceivedNotifications(v ...*InAppNotification) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceivedNotificationIDs(ids...)
}

// AddPasswordResetIDs adds the "password_resets" edge to the PasswordReset entity by IDs.
func (_c *AccountCreate) AddPasswordResetIDs(ids ...string) *AccountCreate {
	_c.mutation.AddPasswordResetIDs(ids...)
	return _c
}

// AddPasswordResets adds the "password_resets" edges to the PasswordReset entity.
func (_c *AccountCreate) AddPasswordResets(v ...*PasswordReset) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPasswordResetIDs(ids...)
}

// AddCommChannelIDs adds the "comm_channels" edge to the CommChannel entity by IDs.
func (_c *AccountCreate) AddCommChannelIDs(ids ...string) *AccountCreate {
	_c.mutation.AddCommChannelIDs(ids...)
	return _c
}

// AddCommChannels adds the "comm_channels" edges to the CommChannel entity.
func (_c *AccountCreate) AddCommChannels(v ...*CommChannel) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommChannelIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := account.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := account.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProfilePrivacy(); !ok {
		v := account.DefaultProfilePrivacy
		_c.mutation.SetProfilePrivacy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Account.updated_at"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := account.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Account.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := account.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Account.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Account.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := account.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Account.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProfilePrivacy(); !ok {
		return &ValidationError{Name: "profile_privacy", err: errors.New(`ent: missing required field "Account.profile_privacy"`)}
	}
	if v, ok := _c.mutation.ProfilePrivacy(); ok {
		if err := account.ProfilePrivacyValidator(v); err != nil {
			return &ValidationError{Name: "profile_privacy", err: fmt.Errorf(`ent: validator failed for field "Account.profile_privacy": %w`, err)}
		}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
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
			return nil, fmt.Errorf("unexpected Account.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(account.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(account.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.ProfilePrivacy(); ok {
		_spec.SetField(account.FieldProfilePrivacy, field.TypeEnum, value)
		_node.ProfilePrivacy = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(account.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.DateJoined(); ok {
		_spec.SetField(account.FieldDateJoined, field.TypeTime, value)
		_node.DateJoined = &value
	}
	if nodes := _c.mutation.SettingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   account.SettingsTable,
			Columns: []string{account.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accountsettings.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.EventsTable,
			Columns: []string{account.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GuestEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.GuestEntriesTable,
			Columns: []string{account.GuestEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventguest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlbumsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AlbumsTable,
			Columns: []string{account.AlbumsColumn},
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
	if nodes := _c.mutation.AlbumFilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AlbumFilesTable,
			Columns: []string{account.AlbumFilesColumn},
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
	if nodes := _c.mutation.SentNotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.SentNotificationsTable,
			Columns: []string{account.SentNotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceivedNotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ReceivedNotificationsTable,
			Columns: []string{account.ReceivedNotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PasswordResetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PasswordResetsTable,
			Columns: []string{account.PasswordResetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommChannelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.CommChannelsTable,
			Columns: []string{account.CommChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commchannel.FieldID, field.TypeString),
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
//	client.Account.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCreate) OnConflict(opts ...sql.ConflictOption) *AccountUpsertOne {
	_c.conflict = opts
	return &AccountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCreate) OnConflictColumns(columns ...string) *AccountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertOne{
		create: _c,
	}
}

type (
	// AccountUpsertOne is the builder for "upsert"-ing
	//  one Account node.
	AccountUpsertOne struct {
		create *AccountCreate
	}

	// AccountUpsert is the "OnConflict" setter.
	AccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsert) SetUpdatedAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateUpdatedAt() *AccountUpsert {
	u.SetExcluded(account.FieldUpdatedAt)
	return u
}

// SetEmail sets the "email" field.
func (u *AccountUpsert) SetEmail(v string) *AccountUpsert {
	u.Set(account.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsert) UpdateEmail() *AccountUpsert {
	u.SetExcluded(account.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *AccountUpsert) ClearEmail() *AccountUpsert {
	u.SetNull(account.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *AccountUpsert) SetPhone(v string) *AccountUpsert {
	u.Set(account.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *AccountUpsert) UpdatePhone() *AccountUpsert {
	u.SetExcluded(account.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *AccountUpsert) ClearPhone() *AccountUpsert {
	u.SetNull(account.FieldPhone)
	return u
}

// SetName sets the "name" field.
func (u *AccountUpsert) SetName(v string) *AccountUpsert {
	u.Set(account.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AccountUpsert) UpdateName() *AccountUpsert {
	u.SetExcluded(account.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *AccountUpsert) ClearName() *AccountUpsert {
	u.SetNull(account.FieldName)
	return u
}

// SetStatus sets the "status" field.
func (u *AccountUpsert) SetStatus(v account.Status) *AccountUpsert {
	u.Set(account.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AccountUpsert) UpdateStatus() *AccountUpsert {
	u.SetExcluded(account.FieldStatus)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *AccountUpsert) SetPasswordHash(v string) *AccountUpsert {
	u.Set(account.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *AccountUpsert) UpdatePasswordHash() *AccountUpsert {
	u.SetExcluded(account.FieldPasswordHash)
	return u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *AccountUpsert) ClearPasswordHash() *AccountUpsert {
	u.SetNull(account.FieldPasswordHash)
	return u
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (u *AccountUpsert) SetProfilePrivacy(v account.ProfilePrivacy) *AccountUpsert {
	u.Set(account.FieldProfilePrivacy, v)
	return u
}

// UpdateProfilePrivacy sets the "profile_privacy" field to the value that was provided on create.
func (u *AccountUpsert) UpdateProfilePrivacy() *AccountUpsert {
	u.SetExcluded(account.FieldProfilePrivacy)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *AccountUpsert) SetLastLoginAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateLastLoginAt() *AccountUpsert {
	u.SetExcluded(account.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *AccountUpsert) ClearLastLoginAt() *AccountUpsert {
	u.SetNull(account.FieldLastLoginAt)
	return u
}

// SetDateJoined sets the "date_joined" field.
func (u *AccountUpsert) SetDateJoined(v time.Time) *AccountUpsert {
	u.Set(account.FieldDateJoined, v)
	return u
}

// UpdateDateJoined sets the "date_joined" field to the value that was provided on create.
func (u *AccountUpsert) UpdateDateJoined() *AccountUpsert {
	u.SetExcluded(account.FieldDateJoined)
	return u
}

// ClearDateJoined clears the value of the "date_joined" field.
func (u *AccountUpsert) ClearDateJoined() *AccountUpsert {
	u.SetNull(account.FieldDateJoined)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(account.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountUpsertOne) UpdateNewValues() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(account.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(account.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AccountUpsertOne) Ignore() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertOne) DoNothing() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreate.OnConflict
// documentation for more info.
func (u *AccountUpsertOne) Update(set func(*AccountUpsert)) *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsertOne) SetUpdatedAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateUpdatedAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmail sets the "email" field.
func (u *AccountUpsertOne) SetEmail(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateEmail() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *AccountUpsertOne) ClearEmail() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *AccountUpsertOne) SetPhone(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdatePhone() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *AccountUpsertOne) ClearPhone() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearPhone()
	})
}

// SetName sets the "name" field.
func (u *AccountUpsertOne) SetName(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateName() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *AccountUpsertOne) ClearName() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearName()
	})
}

// SetStatus sets the "status" field.
func (u *AccountUpsertOne) SetStatus(v account.Status) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateStatus() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateStatus()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *AccountUpsertOne) SetPasswordHash(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdatePasswordHash() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *AccountUpsertOne) ClearPasswordHash() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearPasswordHash()
	})
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (u *AccountUpsertOne) SetProfilePrivacy(v account.ProfilePrivacy) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetProfilePrivacy(v)
	})
}

// UpdateProfilePrivacy sets the "profile_privacy" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateProfilePrivacy() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateProfilePrivacy()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *AccountUpsertOne) SetLastLoginAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateLastLoginAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *AccountUpsertOne) ClearLastLoginAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetDateJoined sets the "date_joined" field.
func (u *AccountUpsertOne) SetDateJoined(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetDateJoined(v)
	})
}

// UpdateDateJoined sets the "date_joined" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateDateJoined() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateDateJoined()
	})
}

// ClearDateJoined clears the value of the "date_joined" field.
func (u *AccountUpsertOne) ClearDateJoined() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearDateJoined()
	})
}

// Exec executes the query.
func (u *AccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AccountUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AccountUpsertOne.ID is not supported by MySQL driver. Use AccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AccountUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
	conflict []sql.ConflictOption
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
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
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *AccountUpsertBulk {
	_c.conflict = opts
	return &AccountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCreateBulk) OnConflictColumns(columns ...string) *AccountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertBulk{
		create: _c,
	}
}

// AccountUpsertBulk is the builder for "upsert"-ing
// a bulk of Account nodes.
type AccountUpsertBulk struct {
	create *AccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(account.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountUpsertBulk) UpdateNewValues() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(account.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(account.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AccountUpsertBulk) Ignore() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertBulk) DoNothing() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreateBulk.OnConflict
// documentation for more info.
func (u *AccountUpsertBulk) Update(set func(*AccountUpsert)) *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsertBulk) SetUpdatedAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateUpdatedAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmail sets the "email" field.
func (u *AccountUpsertBulk) SetEmail(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateEmail() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *AccountUpsertBulk) ClearEmail() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *AccountUpsertBulk) SetPhone(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdatePhone() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *AccountUpsertBulk) ClearPhone() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearPhone()
	})
}

// SetName sets the "name" field.
func (u *AccountUpsertBulk) SetName(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateName() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *AccountUpsertBulk) ClearName() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearName()
	})
}

// SetStatus sets the "status" field.
func (u *AccountUpsertBulk) SetStatus(v account.Status) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateStatus() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateStatus()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *AccountUpsertBulk) SetPasswordHash(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdatePasswordHash() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *AccountUpsertBulk) ClearPasswordHash() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearPasswordHash()
	})
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (u *AccountUpsertBulk) SetProfilePrivacy(v account.ProfilePrivacy) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetProfilePrivacy(v)
	})
}

// UpdateProfilePrivacy sets the "profile_privacy" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateProfilePrivacy() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateProfilePrivacy()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *AccountUpsertBulk) SetLastLoginAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateLastLoginAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *AccountUpsertBulk) ClearLastLoginAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetDateJoined sets the "date_joined" field.
func (u *AccountUpsertBulk) SetDateJoined(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetDateJoined(v)
	})
}

// UpdateDateJoined sets the "date_joined" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateDateJoined() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateDateJoined()
	})
}

// ClearDateJoined clears the value of the "date_joined" field.
func (u *AccountUpsertBulk) ClearDateJoined() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearDateJoined()
	})
}

// Exec executes the query.
func (u *AccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
