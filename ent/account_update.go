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
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/ent/passwordreset"
	"planora.io/planora/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdate) SetUpdatedAt(v time.Time) *AccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *AccountUpdate) ClearEmail() *AccountUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AccountUpdate) SetPhone(v string) *AccountUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePhone(v *string) *AccountUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *AccountUpdate) ClearPhone() *AccountUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetName sets the "name" field.
func (_u *AccountUpdate) SetName(v string) *AccountUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *AccountUpdate) ClearName() *AccountUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AccountUpdate) SetStatus(v account.Status) *AccountUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableStatus(v *account.Status) *AccountUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *AccountUpdate) SetPasswordHash(v string) *AccountUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePasswordHash(v *string) *AccountUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *AccountUpdate) ClearPasswordHash() *AccountUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (_u *AccountUpdate) SetProfilePrivacy(v account.ProfilePrivacy) *AccountUpdate {
	_u.mutation.SetProfilePrivacy(v)
	return _u
}

// SetNillableProfilePrivacy sets the "profile_privacy" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableProfilePrivacy(v *account.ProfilePrivacy) *AccountUpdate {
	if v != nil {
		_u.SetProfilePrivacy(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *AccountUpdate) SetLastLoginAt(v time.Time) *AccountUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLastLoginAt(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *AccountUpdate) ClearLastLoginAt() *AccountUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetDateJoined sets the "date_joined" field.
func (_u *AccountUpdate) SetDateJoined(v time.Time) *AccountUpdate {
	_u.mutation.SetDateJoined(v)
	return _u
}

// SetNillableDateJoined sets the "date_joined" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableDateJoined(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetDateJoined(*v)
	}
	return _u
}

// ClearDateJoined clears the value of the "date_joined" field.
func (_u *AccountUpdate) ClearDateJoined() *AccountUpdate {
	_u.mutation.ClearDateJoined()
	return _u
}

// SetSettingsID sets the "settings" edge to the AccountSettings entity by ID.
func (_u *AccountUpdate) SetSettingsID(id string) *AccountUpdate {
	_u.mutation.SetSettingsID(id)
	return _u
}

// SetNillableSettingsID sets the "settings" edge to the AccountSettings entity by ID if the given value is not nil.
func (_u *AccountUpdate) SetNillableSettingsID(id *string) *AccountUpdate {
	if id != nil {
		_u = _u.SetSettingsID(*id)
	}
	return _u
}

// SetSettings sets the "settings" edge to the AccountSettings entity.
func (_u *AccountUpdate) SetSettings(v *AccountSettings) *AccountUpdate {
	return _u.SetSettingsID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AccountUpdate) AddEventIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AccountUpdate) AddEvents(v ...*Event) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddGuestEntryIDs adds the "guest_entries" edge to the EventGuest entity by IDs.
func (_u *AccountUpdate) AddGuestEntryIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddGuestEntryIDs(ids...)
	return _u
}

// AddGuestEntries adds the "guest_entries" edges to the EventGuest entity.
func (_u *AccountUpdate) AddGuestEntries(v ...*EventGuest) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGuestEntryIDs(ids...)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *AccountUpdate) AddAlbumIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *AccountUpdate) AddAlbums(v ...*Album) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// AddAlbumFileIDs adds the "album_files" edge to the AlbumFile entity by IDs.
func (_u *AccountUpdate) AddAlbumFileIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddAlbumFileIDs(ids...)
	return _u
}

// AddAlbumFiles adds the "album_files" edges to the AlbumFile entity.
func (_u *AccountUpdate) AddAlbumFiles(v ...*AlbumFile) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumFileIDs(ids...)
}

// AddSentNotificationIDs adds the "sent_notifications" edge to the InAppNotification entity by IDs.
func (_u *AccountUpdate) AddSentNotificationIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddSentNotificationIDs(ids...)
	return _u
}

// AddSentNotifications adds the "sent_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdate) AddSentNotifications(v ...*InAppNotification) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSentNotificationIDs(ids...)
}

// AddReceivedNotificationIDs adds the "received_notifications" edge to the InAppNotification entity by IDs.
func (_u *AccountUpdate) AddReceivedNotificationIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddReceivedNotificationIDs(ids...)
	return _u
}

// AddReceivedNotifications adds the "received_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdate) AddReceivedNotifications(v ...*InAppNotification) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceivedNotificationIDs(ids...)
}

// AddPasswordResetIDs adds the "password_resets" edge to the PasswordReset entity by IDs.
func (_u *AccountUpdate) AddPasswordResetIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddPasswordResetIDs(ids...)
	return _u
}

// AddPasswordResets adds the "password_resets" edges to the PasswordReset entity.
func (_u *AccountUpdate) AddPasswordResets(v ...*PasswordReset) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPasswordResetIDs(ids...)
}

// AddCommChannelIDs adds the "comm_channels" edge to the CommChannel entity by IDs.
func (_u *AccountUpdate) AddCommChannelIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddCommChannelIDs(ids...)
	return _u
}

// AddCommChannels adds the "comm_channels" edges to the CommChannel entity.
func (_u *AccountUpdate) AddCommChannels(v ...*CommChannel) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommChannelIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearSettings clears the "settings" edge to the AccountSettings entity.
func (_u *AccountUpdate) ClearSettings() *AccountUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AccountUpdate) ClearEvents() *AccountUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AccountUpdate) RemoveEventIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AccountUpdate) RemoveEvents(v ...*Event) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearGuestEntries clears all "guest_entries" edges to the EventGuest entity.
func (_u *AccountUpdate) ClearGuestEntries() *AccountUpdate {
	_u.mutation.ClearGuestEntries()
	return _u
}

// RemoveGuestEntryIDs removes the "guest_entries" edge to EventGuest entities by IDs.
func (_u *AccountUpdate) RemoveGuestEntryIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveGuestEntryIDs(ids...)
	return _u
}

// RemoveGuestEntries removes "guest_entries" edges to EventGuest entities.
func (_u *AccountUpdate) RemoveGuestEntries(v ...*EventGuest) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGuestEntryIDs(ids...)
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *AccountUpdate) ClearAlbums() *AccountUpdate {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *AccountUpdate) RemoveAlbumIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *AccountUpdate) RemoveAlbums(v ...*Album) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// ClearAlbumFiles clears all "album_files" edges to the AlbumFile entity.
func (_u *AccountUpdate) ClearAlbumFiles() *AccountUpdate {
	_u.mutation.ClearAlbumFiles()
	return _u
}

// RemoveAlbumFileIDs removes the "album_files" edge to AlbumFile entities by IDs.
func (_u *AccountUpdate) RemoveAlbumFileIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveAlbumFileIDs(ids...)
	return _u
}

// RemoveAlbumFiles removes "album_files" edges to AlbumFile entities.
func (_u *AccountUpdate) RemoveAlbumFiles(v ...*AlbumFile) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumFileIDs(ids...)
}

// ClearSentNotifications clears all "sent_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdate) ClearSentNotifications() *AccountUpdate {
	_u.mutation.ClearSentNotifications()
	return _u
}

// RemoveSentNotificationIDs removes the "sent_notifications" edge to InAppNotification entities by IDs.
func (_u *AccountUpdate) RemoveSentNotificationIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveSentNotificationIDs(ids...)
	return _u
}

// RemoveSentNotifications removes "sent_notifications" edges to InAppNotification entities.
func (_u *AccountUpdate) RemoveSentNotifications(v ...*InAppNotification) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSentNotificationIDs(ids...)
}

// ClearReceivedNotifications clears all "received_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdate) ClearReceivedNotifications() *AccountUpdate {
	_u.mutation.ClearReceivedNotifications()
	return _u
}

// RemoveReceivedNotificationIDs removes the "received_notifications" edge to InAppNotification entities by IDs.
func (_u *AccountUpdate) RemoveReceivedNotificationIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveReceivedNotificationIDs(ids...)
	return _u
}

// RemoveReceivedNotifications removes "received_notifications" edges to InAppNotification entities.
func (_u *AccountUpdate) RemoveReceivedNotifications(v ...*InAppNotification) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceivedNotificationIDs(ids...)
}

// ClearPasswordResets clears all "password_resets" edges to the PasswordReset entity.
func (_u *AccountUpdate) ClearPasswordResets() *AccountUpdate {
	_u.mutation.ClearPasswordResets()
	return _u
}

// RemovePasswordResetIDs removes the "password_resets" edge to PasswordReset entities by IDs.
func (_u *AccountUpdate) RemovePasswordResetIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemovePasswordResetIDs(ids...)
	return _u
}

// RemovePasswordResets removes "password_resets" edges to PasswordReset entities.
func (_u *AccountUpdate) RemovePasswordResets(v ...*PasswordReset) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePasswordResetIDs(ids...)
}

// ClearCommChannels clears all "comm_channels" edges to the CommChannel entity.
func (_u *AccountUpdate) ClearCommChannels() *AccountUpdate {
	_u.mutation.ClearCommChannels()
	return _u
}

// RemoveCommChannelIDs removes the "comm_channels" edge to CommChannel entities by IDs.
func (_u *AccountUpdate) RemoveCommChannelIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveCommChannelIDs(ids...)
	return _u
}

// RemoveCommChannels removes "comm_channels" edges to CommChannel entities.
func (_u *AccountUpdate) RemoveCommChannels(v ...*CommChannel) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommChannelIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := account.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Account.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := account.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Account.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := account.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Account.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfilePrivacy(); ok {
		if err := account.ProfilePrivacyValidator(v); err != nil {
			return &ValidationError{Name: "profile_privacy", err: fmt.Errorf(`ent: validator failed for field "Account.profile_privacy": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(account.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(account.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(account.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(account.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(account.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(account.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.ProfilePrivacy(); ok {
		_spec.SetField(account.FieldProfilePrivacy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(account.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(account.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DateJoined(); ok {
		_spec.SetField(account.FieldDateJoined, field.TypeTime, value)
	}
	if _u.mutation.DateJoinedCleared() {
		_spec.ClearField(account.FieldDateJoined, field.TypeTime)
	}
	if _u.mutation.SettingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GuestEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGuestEntriesIDs(); len(nodes) > 0 && !_u.mutation.GuestEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuestEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumFilesIDs(); len(nodes) > 0 && !_u.mutation.AlbumFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSentNotificationsIDs(); len(nodes) > 0 && !_u.mutation.SentNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentNotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceivedNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceivedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.ReceivedNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceivedNotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PasswordResetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPasswordResetsIDs(); len(nodes) > 0 && !_u.mutation.PasswordResetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PasswordResetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommChannelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommChannelsIDs(); len(nodes) > 0 && !_u.mutation.CommChannelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommChannelsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdateOne) SetUpdatedAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *AccountUpdateOne) ClearEmail() *AccountUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AccountUpdateOne) SetPhone(v string) *AccountUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePhone(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *AccountUpdateOne) ClearPhone() *AccountUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetName sets the "name" field.
func (_u *AccountUpdateOne) SetName(v string) *AccountUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *AccountUpdateOne) ClearName() *AccountUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AccountUpdateOne) SetStatus(v account.Status) *AccountUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableStatus(v *account.Status) *AccountUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *AccountUpdateOne) SetPasswordHash(v string) *AccountUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePasswordHash(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *AccountUpdateOne) ClearPasswordHash() *AccountUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (_u *AccountUpdateOne) SetProfilePrivacy(v account.ProfilePrivacy) *AccountUpdateOne {
	_u.mutation.SetProfilePrivacy(v)
	return _u
}

// SetNillableProfilePrivacy sets the "profile_privacy" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableProfilePrivacy(v *account.ProfilePrivacy) *AccountUpdateOne {
	if v != nil {
		_u.SetProfilePrivacy(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *AccountUpdateOne) SetLastLoginAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLastLoginAt(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *AccountUpdateOne) ClearLastLoginAt() *AccountUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetDateJoined sets the "date_joined" field.
func (_u *AccountUpdateOne) SetDateJoined(v time.Time) *AccountUpdateOne {
	_u.mutation.SetDateJoined(v)
	return _u
}

// SetNillableDateJoined sets the "date_joined" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableDateJoined(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetDateJoined(*v)
	}
	return _u
}

// ClearDateJoined clears the value of the "date_joined" field.
func (_u *AccountUpdateOne) ClearDateJoined() *AccountUpdateOne {
	_u.mutation.ClearDateJoined()
	return _u
}

// SetSettingsID sets the "settings" edge to the AccountSettings entity by ID.
func (_u *AccountUpdateOne) SetSettingsID(id string) *AccountUpdateOne {
	_u.mutation.SetSettingsID(id)
	return _u
}

// SetNillableSettingsID sets the "settings" edge to the AccountSettings entity by ID if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableSettingsID(id *string) *AccountUpdateOne {
	if id != nil {
		_u = _u.SetSettingsID(*id)
	}
	return _u
}

// SetSettings sets the "settings" edge to the AccountSettings entity.
func (_u *AccountUpdateOne) SetSettings(v *AccountSettings) *AccountUpdateOne {
	return _u.SetSettingsID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AccountUpdateOne) AddEventIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AccountUpdateOne) AddEvents(v ...*Event) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddGuestEntryIDs adds the "guest_entries" edge to the EventGuest entity by IDs.
func (_u *AccountUpdateOne) AddGuestEntryIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddGuestEntryIDs(ids...)
	return _u
}

// AddGuestEntries adds the "guest_entries" edges to the EventGuest entity.
func (_u *AccountUpdateOne) AddGuestEntries(v ...*EventGuest) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGuestEntryIDs(ids...)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *AccountUpdateOne) AddAlbumIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *AccountUpdateOne) AddAlbums(v ...*Album) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// AddAlbumFileIDs adds the "album_files" edge to the AlbumFile entity by IDs.
func (_u *AccountUpdateOne) AddAlbumFileIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddAlbumFileIDs(ids...)
	return _u
}

// AddAlbumFiles adds the "album_files" edges to the AlbumFile entity.
func (_u *AccountUpdateOne) AddAlbumFiles(v ...*AlbumFile) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumFileIDs(ids...)
}

// AddSentNotificationIDs adds the "sent_notifications" edge to the InAppNotification entity by IDs.
func (_u *AccountUpdateOne) AddSentNotificationIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddSentNotificationIDs(ids...)
	return _u
}

// AddSentNotifications adds the "sent_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdateOne) AddSentNotifications(v ...*InAppNotification) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSentNotificationIDs(ids...)
}

// AddReceivedNotificationIDs adds the "received_notifications" edge to the InAppNotification entity by IDs.
func (_u *AccountUpdateOne) AddReceivedNotificationIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddReceivedNotificationIDs(ids...)
	return _u
}

// AddReceivedNotifications adds the "received_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdateOne) AddReceivedNotifications(v ...*InAppNotification) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceivedNotificationIDs(ids...)
}

// AddPasswordResetIDs adds the "password_resets" edge to the PasswordReset entity by IDs.
func (_u *AccountUpdateOne) AddPasswordResetIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddPasswordResetIDs(ids...)
	return _u
}

// AddPasswordResets adds the "password_resets" edges to the PasswordReset entity.
func (_u *AccountUpdateOne) AddPasswordResets(v ...*PasswordReset) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPasswordResetIDs(ids...)
}

// AddCommChannelIDs adds the "comm_channels" edge to the CommChannel entity by IDs.
func (_u *AccountUpdateOne) AddCommChannelIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddCommChannelIDs(ids...)
	return _u
}

// AddCommChannels adds the "comm_channels" edges to the CommChannel entity.
func (_u *AccountUpdateOne) AddCommChannels(v ...*CommChannel) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommChannelIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearSettings clears the "settings" edge to the AccountSettings entity.
func (_u *AccountUpdateOne) ClearSettings() *AccountUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AccountUpdateOne) ClearEvents() *AccountUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AccountUpdateOne) RemoveEventIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AccountUpdateOne) RemoveEvents(v ...*Event) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearGuestEntries clears all "guest_entries" edges to the EventGuest entity.
func (_u *AccountUpdateOne) ClearGuestEntries() *AccountUpdateOne {
	_u.mutation.ClearGuestEntries()
	return _u
}

// RemoveGuestEntryIDs removes the "guest_entries" edge to EventGuest entities by IDs.
func (_u *AccountUpdateOne) RemoveGuestEntryIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveGuestEntryIDs(ids...)
	return _u
}

// RemoveGuestEntries removes "guest_entries" edges to EventGuest entities.
func (_u *AccountUpdateOne) RemoveGuestEntries(v ...*EventGuest) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGuestEntryIDs(ids...)
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *AccountUpdateOne) ClearAlbums() *AccountUpdateOne {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *AccountUpdateOne) RemoveAlbumIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *AccountUpdateOne) RemoveAlbums(v ...*Album) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// ClearAlbumFiles clears all "album_files" edges to the AlbumFile entity.
func (_u *AccountUpdateOne) ClearAlbumFiles() *AccountUpdateOne {
	_u.mutation.ClearAlbumFiles()
	return _u
}

// RemoveAlbumFileIDs removes the "album_files" edge to AlbumFile entities by IDs.
func (_u *AccountUpdateOne) RemoveAlbumFileIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveAlbumFileIDs(ids...)
	return _u
}

// RemoveAlbumFiles removes "album_files" edges to AlbumFile entities.
func (_u *AccountUpdateOne) RemoveAlbumFiles(v ...*AlbumFile) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumFileIDs(ids...)
}

// ClearSentNotifications clears all "sent_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdateOne) ClearSentNotifications() *AccountUpdateOne {
	_u.mutation.ClearSentNotifications()
	return _u
}

// RemoveSentNotificationIDs removes the "sent_notifications" edge to InAppNotification entities by IDs.
func (_u *AccountUpdateOne) RemoveSentNotificationIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveSentNotificationIDs(ids...)
	return _u
}

// RemoveSentNotifications removes "sent_notifications" edges to InAppNotification entities.
func (_u *AccountUpdateOne) RemoveSentNotifications(v ...*InAppNotification) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSentNotificationIDs(ids...)
}

// ClearReceivedNotifications clears all "received_notifications" edges to the InAppNotification entity.
func (_u *AccountUpdateOne) ClearReceivedNotifications() *AccountUpdateOne {
	_u.mutation.ClearReceivedNotifications()
	return _u
}

// RemoveReceivedNotificationIDs removes the "received_notifications" edge to InAppNotification entities by IDs.
func (_u *AccountUpdateOne) RemoveReceivedNotificationIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveReceivedNotificationIDs(ids...)
	return _u
}

// RemoveReceivedNotifications removes "received_notifications" edges to InAppNotification entities.
func (_u *AccountUpdateOne) RemoveReceivedNotifications(v ...*InAppNotification) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceivedNotificationIDs(ids...)
}

// ClearPasswordResets clears all "password_resets" edges to the PasswordReset entity.
func (_u *AccountUpdateOne) ClearPasswordResets() *AccountUpdateOne {
	_u.mutation.ClearPasswordResets()
	return _u
}

// RemovePasswordResetIDs removes the "password_resets" edge to PasswordReset entities by IDs.
func (_u *AccountUpdateOne) RemovePasswordResetIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemovePasswordResetIDs(ids...)
	return _u
}

// RemovePasswordResets removes "password_resets" edges to PasswordReset entities.
func (_u *AccountUpdateOne) RemovePasswordResets(v ...*PasswordReset) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePasswordResetIDs(ids...)
}

// ClearCommChannels clears all "comm_channels" edges to the CommChannel entity.
func (_u *AccountUpdateOne) ClearCommChannels() *AccountUpdateOne {
	_u.mutation.ClearCommChannels()
	return _u
}

// RemoveCommChannelIDs removes the "comm_channels" edge to CommChannel entities by IDs.
func (_u *AccountUpdateOne) RemoveCommChannelIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveCommChannelIDs(ids...)
	return _u
}

// RemoveCommChannels removes "comm_channels" edges to CommChannel entities.
func (_u *AccountUpdateOne) RemoveCommChannels(v ...*CommChannel) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommChannelIDs(ids...)
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := account.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Account.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := account.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Account.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := account.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Account.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfilePrivacy(); ok {
		if err := account.ProfilePrivacyValidator(v); err != nil {
			return &ValidationError{Name: "profile_privacy", err: fmt.Errorf(`ent: validator failed for field "Account.profile_privacy": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
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
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(account.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(account.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(account.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(account.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(account.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(account.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.ProfilePrivacy(); ok {
		_spec.SetField(account.FieldProfilePrivacy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(account.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(account.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DateJoined(); ok {
		_spec.SetField(account.FieldDateJoined, field.TypeTime, value)
	}
	if _u.mutation.DateJoinedCleared() {
		_spec.ClearField(account.FieldDateJoined, field.TypeTime)
	}
	if _u.mutation.SettingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GuestEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGuestEntriesIDs(); len(nodes) > 0 && !_u.mutation.GuestEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuestEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumFilesIDs(); len(nodes) > 0 && !_u.mutation.AlbumFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSentNotificationsIDs(); len(nodes) > 0 && !_u.mutation.SentNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentNotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceivedNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceivedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.ReceivedNotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceivedNotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PasswordResetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPasswordResetsIDs(); len(nodes) > 0 && !_u.mutation.PasswordResetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PasswordResetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommChannelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommChannelsIDs(); len(nodes) > 0 && !_u.mutation.CommChannelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommChannelsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
