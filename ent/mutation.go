// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/albumtype"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/ent/passwordreset"
	"planora.io/planora/ent/predicate"
	"planora.io/planora/ent/thumbnail"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount           = "Account"
	TypeAccountSettings   = "AccountSettings"
	TypeAlbum             = "Album"
	TypeAlbumFile         = "AlbumFile"
	TypeAlbumType         = "AlbumType"
	TypeCommChannel       = "CommChannel"
	TypeEvent             = "Event"
	TypeEventGuest        = "EventGuest"
	TypeInAppNotification = "InAppNotification"
	TypePasswordReset     = "PasswordReset"
	TypeThumbnail         = "Thumbnail"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	created_at                    *time.Time
	updated_at                    *time.Time
	email                         *string
	phone                         *string
	name                          *string
	status                        *account.Status
	password_hash                 *string
	profile_privacy               *account.ProfilePrivacy
	last_login_at                 *time.Time
	date_joined                   *time.Time
	clearedFields                 map[string]struct{}
	settings                      *string
	clearedsettings               bool
	events                        map[string]struct{}
	removedevents                 map[string]struct{}
	clearedevents                 bool
	guest_entries                 map[string]struct{}
	removedguest_entries          map[string]struct{}
	clearedguest_entries          bool
	albums                        map[string]struct{}
	removedalbums                 map[string]struct{}
	clearedalbums                 bool
	album_files                   map[string]struct{}
	removedalbum_files            map[string]struct{}
	clearedalbum_files            bool
	sent_notifications            map[string]struct{}
	removedsent_notifications     map[string]struct{}
	clearedsent_notifications     bool
	received_notifications        map[string]struct{}
	removedreceived_notifications map[string]struct{}
	clearedreceived_notifications bool
	password_resets               map[string]struct{}
	removedpassword_resets        map[string]struct{}
	clearedpassword_resets        bool
	comm_channels                 map[string]struct{}
	removedcomm_channels          map[string]struct{}
	clearedcomm_channels          bool
	done                          bool
	oldValue                      func(context.Context) (*Account, error)
	predicates                    []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *AccountMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[account.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *AccountMutation) EmailCleared() bool {
	_, ok := m.clearedFields[account.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, account.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *AccountMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *AccountMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *AccountMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[account.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *AccountMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[account.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *AccountMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, account.FieldPhone)
}

// SetName sets the "name" field.
func (m *AccountMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AccountMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *AccountMutation) ClearName() {
	m.name = nil
	m.clearedFields[account.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *AccountMutation) NameCleared() bool {
	_, ok := m.clearedFields[account.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *AccountMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, account.FieldName)
}

// SetStatus sets the "status" field.
func (m *AccountMutation) SetStatus(a account.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AccountMutation) Status() (r account.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldStatus(ctx context.Context) (v account.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AccountMutation) ResetStatus() {
	m.status = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AccountMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AccountMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *AccountMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[account.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *AccountMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[account.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AccountMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, account.FieldPasswordHash)
}

// SetProfilePrivacy sets the "profile_privacy" field.
func (m *AccountMutation) SetProfilePrivacy(ap account.ProfilePrivacy) {
	m.profile_privacy = &ap
}

// ProfilePrivacy returns the value of the "profile_privacy" field in the mutation.
func (m *AccountMutation) ProfilePrivacy() (r account.ProfilePrivacy, exists bool) {
	v := m.profile_privacy
	if v == nil {
		return
	}
	return *v, true
}

// OldProfilePrivacy returns the old "profile_privacy" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldProfilePrivacy(ctx context.Context) (v account.ProfilePrivacy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfilePrivacy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfilePrivacy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfilePrivacy: %w", err)
	}
	return oldValue.ProfilePrivacy, nil
}

// ResetProfilePrivacy resets all changes to the "profile_privacy" field.
func (m *AccountMutation) ResetProfilePrivacy() {
	m.profile_privacy = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *AccountMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *AccountMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *AccountMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[account.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *AccountMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[account.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *AccountMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, account.FieldLastLoginAt)
}

// SetDateJoined sets the "date_joined" field.
func (m *AccountMutation) SetDateJoined(t time.Time) {
	m.date_joined = &t
}

// DateJoined returns the value of the "date_joined" field in the mutation.
func (m *AccountMutation) DateJoined() (r time.Time, exists bool) {
	v := m.date_joined
	if v == nil {
		return
	}
	return *v, true
}

// OldDateJoined returns the old "date_joined" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldDateJoined(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateJoined is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateJoined requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateJoined: %w", err)
	}
	return oldValue.DateJoined, nil
}

// ClearDateJoined clears the value of the "date_joined" field.
func (m *AccountMutation) ClearDateJoined() {
	m.date_joined = nil
	m.clearedFields[account.FieldDateJoined] = struct{}{}
}

// DateJoinedCleared returns if the "date_joined" field was cleared in this mutation.
func (m *AccountMutation) DateJoinedCleared() bool {
	_, ok := m.clearedFields[account.FieldDateJoined]
	return ok
}

// ResetDateJoined resets all changes to the "date_joined" field.
func (m *AccountMutation) ResetDateJoined() {
	m.date_joined = nil
	delete(m.clearedFields, account.FieldDateJoined)
}

// SetSettingsID sets the "settings" edge to the AccountSettings entity by id.
func (m *AccountMutation) SetSettingsID(id string) {
	m.settings = &id
}

// ClearSettings clears the "settings" edge to the AccountSettings entity.
func (m *AccountMutation) ClearSettings() {
	m.clearedsettings = true
}

// SettingsCleared reports if the "settings" edge to the AccountSettings entity was cleared.
func (m *AccountMutation) SettingsCleared() bool {
	return m.clearedsettings
}

// SettingsID returns the "settings" edge ID in the mutation.
func (m *AccountMutation) SettingsID() (id string, exists bool) {
	if m.settings != nil {
		return *m.settings, true
	}
	return
}

// SettingsIDs returns the "settings" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SettingsID instead. It exists only for internal usage by the builders.
func (m *AccountMutation) SettingsIDs() (ids []string) {
	if id := m.settings; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSettings resets all changes to the "settings" edge.
func (m *AccountMutation) ResetSettings() {
	m.settings = nil
	m.clearedsettings = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *AccountMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *AccountMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *AccountMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *AccountMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *AccountMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AccountMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AccountMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddGuestEntryIDs adds the "guest_entries" edge to the EventGuest entity by ids.
func (m *AccountMutation) AddGuestEntryIDs(ids ...string) {
	if m.guest_entries == nil {
		m.guest_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.guest_entries[ids[i]] = struct{}{}
	}
}

// ClearGuestEntries clears the "guest_entries" edge to the EventGuest entity.
func (m *AccountMutation) ClearGuestEntries() {
	m.clearedguest_entries = true
}

// GuestEntriesCleared reports if the "guest_entries" edge to the EventGuest entity was cleared.
func (m *AccountMutation) GuestEntriesCleared() bool {
	return m.clearedguest_entries
}

// RemoveGuestEntryIDs removes the "guest_entries" edge to the EventGuest entity by IDs.
func (m *AccountMutation) RemoveGuestEntryIDs(ids ...string) {
	if m.removedguest_entries == nil {
		m.removedguest_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.guest_entries, ids[i])
		m.removedguest_entries[ids[i]] = struct{}{}
	}
}

// RemovedGuestEntries returns the removed IDs of the "guest_entries" edge to the EventGuest entity.
func (m *AccountMutation) RemovedGuestEntriesIDs() (ids []string) {
	for id := range m.removedguest_entries {
		ids = append(ids, id)
	}
	return
}

// GuestEntriesIDs returns the "guest_entries" edge IDs in the mutation.
func (m *AccountMutation) GuestEntriesIDs() (ids []string) {
	for id := range m.guest_entries {
		ids = append(ids, id)
	}
	return
}

// ResetGuestEntries resets all changes to the "guest_entries" edge.
func (m *AccountMutation) ResetGuestEntries() {
	m.guest_entries = nil
	m.clearedguest_entries = false
	m.removedguest_entries = nil
}

// AddAlbumIDs adds the "albums" edge to the Album entity by ids.
func (m *AccountMutation) AddAlbumIDs(ids ...string) {
	if m.albums == nil {
		m.albums = make(map[string]struct{})
	}
	for i := range ids {
		m.albums[ids[i]] = struct{}{}
	}
}

// ClearAlbums clears the "albums" edge to the Album entity.
func (m *AccountMutation) ClearAlbums() {
	m.clearedalbums = true
}

// AlbumsCleared reports if the "albums" edge to the Album entity was cleared.
func (m *AccountMutation) AlbumsCleared() bool {
	return m.clearedalbums
}

// RemoveAlbumIDs removes the "albums" edge to the Album entity by IDs.
func (m *AccountMutation) RemoveAlbumIDs(ids ...string) {
	if m.removedalbums == nil {
		m.removedalbums = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.albums, ids[i])
		m.removedalbums[ids[i]] = struct{}{}
	}
}

// RemovedAlbums returns the removed IDs of the "albums" edge to the Album entity.
func (m *AccountMutation) RemovedAlbumsIDs() (ids []string) {
	for id := range m.removedalbums {
		ids = append(ids, id)
	}
	return
}

// AlbumsIDs returns the "albums" edge IDs in the mutation.
func (m *AccountMutation) AlbumsIDs() (ids []string) {
	for id := range m.albums {
		ids = append(ids, id)
	}
	return
}

// ResetAlbums resets all changes to the "albums" edge.
func (m *AccountMutation) ResetAlbums() {
	m.albums = nil
	m.clearedalbums = false
	m.removedalbums = nil
}

// AddAlbumFileIDs adds the "album_files" edge to the AlbumFile entity by ids.
func (m *AccountMutation) AddAlbumFileIDs(ids ...string) {
	if m.album_files == nil {
		m.album_files = make(map[string]struct{})
	}
	for i := range ids {
		m.album_files[ids[i]] = struct{}{}
	}
}

// ClearAlbumFiles clears the "album_files" edge to the AlbumFile entity.
func (m *AccountMutation) ClearAlbumFiles() {
	m.clearedalbum_files = true
}

// AlbumFilesCleared reports if the "album_files" edge to the AlbumFile entity was cleared.
func (m *AccountMutation) AlbumFilesCleared() bool {
	return m.clearedalbum_files
}

// RemoveAlbumFileIDs removes the "album_files" edge to the AlbumFile entity by IDs.
func (m *AccountMutation) RemoveAlbumFileIDs(ids ...string) {
	if m.removedalbum_files == nil {
		m.removedalbum_files = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.album_files, ids[i])
		m.removedalbum_files[ids[i]] = struct{}{}
	}
}

// RemovedAlbumFiles returns the removed IDs of the "album_files" edge to the AlbumFile entity.
func (m *AccountMutation) RemovedAlbumFilesIDs() (ids []string) {
	for id := range m.removedalbum_files {
		ids = append(ids, id)
	}
	return
}

// AlbumFilesIDs returns the "album_files" edge IDs in the mutation.
func (m *AccountMutation) AlbumFilesIDs() (ids []string) {
	for id := range m.album_files {
		ids = append(ids, id)
	}
	return
}

// ResetAlbumFiles resets all changes to the "album_files" edge.
func (m *AccountMutation) ResetAlbumFiles() {
	m.album_files = nil
	m.clearedalbum_files = false
	m.removedalbum_files = nil
}

// AddSentNotificationIDs adds the "sent_notifications" edge to the InAppNotification entity by ids.
func (m *AccountMutation) AddSentNotificationIDs(ids ...string) {
	if m.sent_notifications == nil {
		m.sent_notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.sent_notifications[ids[i]] = struct{}{}
	}
}

// ClearSentNotifications clears the "sent_notifications" edge to the InAppNotification entity.
func (m *AccountMutation) ClearSentNotifications() {
	m.clearedsent_notifications = true
}

// SentNotificationsCleared reports if the "sent_notifications" edge to the InAppNotification entity was cleared.
func (m *AccountMutation) SentNotificationsCleared() bool {
	return m.clearedsent_notifications
}

// RemoveSentNotificationIDs removes the "sent_notifications" edge to the InAppNotification entity by IDs.
func (m *AccountMutation) RemoveSentNotificationIDs(ids ...string) {
	if m.removedsent_notifications == nil {
		m.removedsent_notifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sent_notifications, ids[i])
		m.removedsent_notifications[ids[i]] = struct{}{}
	}
}

// RemovedSentNotifications returns the removed IDs of the "sent_notifications" edge to the InAppNotification entity.
func (m *AccountMutation) RemovedSentNotificationsIDs() (ids []string) {
	for id := range m.removedsent_notifications {
		ids = append(ids, id)
	}
	return
}

// SentNotificationsIDs returns the "sent_notifications" edge IDs in the mutation.
func (m *AccountMutation) SentNotificationsIDs() (ids []string) {
	for id := range m.sent_notifications {
		ids = append(ids, id)
	}
	return
}

// ResetSentNotifications resets all changes to the "sent_notifications" edge.
func (m *AccountMutation) ResetSentNotifications() {
	m.sent_notifications = nil
	m.clearedsent_notifications = false
	m.removedsent_notifications = nil
}

// AddReceivedNotificationIDs adds the "received_notifications" edge to the InAppNotification entity by ids.
func (m *AccountMutation) AddReceivedNotificationIDs(ids ...string) {
	if m.received_notifications == nil {
		m.received_notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.received_notifications[ids[i]] = struct{}{}
	}
}

// ClearReceivedNotifications clears the "received_notifications" edge to the InAppNotification entity.
func (m *AccountMutation) ClearReceivedNotifications() {
	m.clearedreceived_notifications = true
}

// ReceivedNotificationsCleared reports if the "received_notifications" edge to the InAppNotification entity was cleared.
func (m *AccountMutation) ReceivedNotificationsCleared() bool {
	return m.clearedreceived_notifications
}

// RemoveReceivedNotificationIDs removes the "received_notifications" edge to the InAppNotification entity by IDs.
func (m *AccountMutation) RemoveReceivedNotificationIDs(ids ...string) {
	if m.removedreceived_notifications == nil {
		m.removedreceived_notifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.received_notifications, ids[i])
		m.removedreceived_notifications[ids[i]] = struct{}{}
	}
}

// RemovedReceivedNotifications returns the removed IDs of the "received_notifications" edge to the InAppNotification entity.
func (m *AccountMutation) RemovedReceivedNotificationsIDs() (ids []string) {
	for id := range m.removedreceived_notifications {
		ids = append(ids, id)
	}
	return
}

// ReceivedNotificationsIDs returns the "received_notifications" edge IDs in the mutation.
func (m *AccountMutation) ReceivedNotificationsIDs() (ids []string) {
	for id := range m.received_notifications {
		ids = append(ids, id)
	}
	return
}

// ResetReceivedNotifications resets all changes to the "received_notifications" edge.
func (m *AccountMutation) ResetReceivedNotifications() {
	m.received_notifications = nil
	m.clearedreceived_notifications = false
	m.removedreceived_notifications = nil
}

// AddPasswordResetIDs adds the "password_resets" edge to the PasswordReset entity by ids.
func (m *AccountMutation) AddPasswordResetIDs(ids ...string) {
	if m.password_resets == nil {
		m.password_resets = make(map[string]struct{})
	}
	for i := range ids {
		m.password_resets[ids[i]] = struct{}{}
	}
}

// ClearPasswordResets clears the "password_resets" edge to the PasswordReset entity.
func (m *AccountMutation) ClearPasswordResets() {
	m.clearedpassword_resets = true
}

// PasswordResetsCleared reports if the "password_resets" edge to the PasswordReset entity was cleared.
func (m *AccountMutation) PasswordResetsCleared() bool {
	return m.clearedpassword_resets
}

// RemovePasswordResetIDs removes the "password_resets" edge to the PasswordReset entity by IDs.
func (m *AccountMutation) RemovePasswordResetIDs(ids ...string) {
	if m.removedpassword_resets == nil {
		m.removedpassword_resets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.password_resets, ids[i])
		m.removedpassword_resets[ids[i]] = struct{}{}
	}
}

// RemovedPasswordResets returns the removed IDs of the "password_resets" edge to the PasswordReset entity.
func (m *AccountMutation) RemovedPasswordResetsIDs() (ids []string) {
	for id := range m.removedpassword_resets {
		ids = append(ids, id)
	}
	return
}

// PasswordResetsIDs returns the "password_resets" edge IDs in the mutation.
func (m *AccountMutation) PasswordResetsIDs() (ids []string) {
	for id := range m.password_resets {
		ids = append(ids, id)
	}
	return
}

// ResetPasswordResets resets all changes to the "password_resets" edge.
func (m *AccountMutation) ResetPasswordResets() {
	m.password_resets = nil
	m.clearedpassword_resets = false
	m.removedpassword_resets = nil
}

// AddCommChannelIDs adds the "comm_channels" edge to the CommChannel entity by ids.
func (m *AccountMutation) AddCommChannelIDs(ids ...string) {
	if m.comm_channels == nil {
		m.comm_channels = make(map[string]struct{})
	}
	for i := range ids {
		m.comm_channels[ids[i]] = struct{}{}
	}
}

// ClearCommChannels clears the "comm_channels" edge to the CommChannel entity.
func (m *AccountMutation) ClearCommChannels() {
	m.clearedcomm_channels = true
}

// CommChannelsCleared reports if the "comm_channels" edge to the CommChannel entity was cleared.
func (m *AccountMutation) CommChannelsCleared() bool {
	return m.clearedcomm_channels
}

// RemoveCommChannelIDs removes the "comm_channels" edge to the CommChannel entity by IDs.
func (m *AccountMutation) RemoveCommChannelIDs(ids ...string) {
	if m.removedcomm_channels == nil {
		m.removedcomm_channels = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.comm_channels, ids[i])
		m.removedcomm_channels[ids[i]] = struct{}{}
	}
}

// RemovedCommChannels returns the removed IDs of the "comm_channels" edge to the CommChannel entity.
func (m *AccountMutation) RemovedCommChannelsIDs() (ids []string) {
	for id := range m.removedcomm_channels {
		ids = append(ids, id)
	}
	return
}

// CommChannelsIDs returns the "comm_channels" edge IDs in the mutation.
func (m *AccountMutation) CommChannelsIDs() (ids []string) {
	for id := range m.comm_channels {
		ids = append(ids, id)
	}
	return
}

// ResetCommChannels resets all changes to the "comm_channels" edge.
func (m *AccountMutation) ResetCommChannels() {
	m.comm_channels = nil
	m.clearedcomm_channels = false
	m.removedcomm_channels = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, account.FieldPhone)
	}
	if m.name != nil {
		fields = append(fields, account.FieldName)
	}
	if m.status != nil {
		fields = append(fields, account.FieldStatus)
	}
	if m.password_hash != nil {
		fields = append(fields, account.FieldPasswordHash)
	}
	if m.profile_privacy != nil {
		fields = append(fields, account.FieldProfilePrivacy)
	}
	if m.last_login_at != nil {
		fields = append(fields, account.FieldLastLoginAt)
	}
	if m.date_joined != nil {
		fields = append(fields, account.FieldDateJoined)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	case account.FieldEmail:
		return m.Email()
	case account.FieldPhone:
		return m.Phone()
	case account.FieldName:
		return m.Name()
	case account.FieldStatus:
		return m.Status()
	case account.FieldPasswordHash:
		return m.PasswordHash()
	case account.FieldProfilePrivacy:
		return m.ProfilePrivacy()
	case account.FieldLastLoginAt:
		return m.LastLoginAt()
	case account.FieldDateJoined:
		return m.DateJoined()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldPhone:
		return m.OldPhone(ctx)
	case account.FieldName:
		return m.OldName(ctx)
	case account.FieldStatus:
		return m.OldStatus(ctx)
	case account.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case account.FieldProfilePrivacy:
		return m.OldProfilePrivacy(ctx)
	case account.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case account.FieldDateJoined:
		return m.OldDateJoined(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case account.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case account.FieldStatus:
		v, ok := value.(account.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case account.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case account.FieldProfilePrivacy:
		v, ok := value.(account.ProfilePrivacy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfilePrivacy(v)
		return nil
	case account.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case account.FieldDateJoined:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateJoined(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldEmail) {
		fields = append(fields, account.FieldEmail)
	}
	if m.FieldCleared(account.FieldPhone) {
		fields = append(fields, account.FieldPhone)
	}
	if m.FieldCleared(account.FieldName) {
		fields = append(fields, account.FieldName)
	}
	if m.FieldCleared(account.FieldPasswordHash) {
		fields = append(fields, account.FieldPasswordHash)
	}
	if m.FieldCleared(account.FieldLastLoginAt) {
		fields = append(fields, account.FieldLastLoginAt)
	}
	if m.FieldCleared(account.FieldDateJoined) {
		fields = append(fields, account.FieldDateJoined)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldEmail:
		m.ClearEmail()
		return nil
	case account.FieldPhone:
		m.ClearPhone()
		return nil
	case account.FieldName:
		m.ClearName()
		return nil
	case account.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case account.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case account.FieldDateJoined:
		m.ClearDateJoined()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldPhone:
		m.ResetPhone()
		return nil
	case account.FieldName:
		m.ResetName()
		return nil
	case account.FieldStatus:
		m.ResetStatus()
		return nil
	case account.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case account.FieldProfilePrivacy:
		m.ResetProfilePrivacy()
		return nil
	case account.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case account.FieldDateJoined:
		m.ResetDateJoined()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.settings != nil {
		edges = append(edges, account.EdgeSettings)
	}
	if m.events != nil {
		edges = append(edges, account.EdgeEvents)
	}
	if m.guest_entries != nil {
		edges = append(edges, account.EdgeGuestEntries)
	}
	if m.albums != nil {
		edges = append(edges, account.EdgeAlbums)
	}
	if m.album_files != nil {
		edges = append(edges, account.EdgeAlbumFiles)
	}
	if m.sent_notifications != nil {
		edges = append(edges, account.EdgeSentNotifications)
	}
	if m.received_notifications != nil {
		edges = append(edges, account.EdgeReceivedNotifications)
	}
	if m.password_resets != nil {
		edges = append(edges, account.EdgePasswordResets)
	}
	if m.comm_channels != nil {
		edges = append(edges, account.EdgeCommChannels)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeSettings:
		if id := m.settings; id != nil {
			return []ent.Value{*id}
		}
	case account.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeGuestEntries:
		ids := make([]ent.Value, 0, len(m.guest_entries))
		for id := range m.guest_entries {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.albums))
		for id := range m.albums {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeAlbumFiles:
		ids := make([]ent.Value, 0, len(m.album_files))
		for id := range m.album_files {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeSentNotifications:
		ids := make([]ent.Value, 0, len(m.sent_notifications))
		for id := range m.sent_notifications {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeReceivedNotifications:
		ids := make([]ent.Value, 0, len(m.received_notifications))
		for id := range m.received_notifications {
			ids = append(ids, id)
		}
		return ids
	case account.EdgePasswordResets:
		ids := make([]ent.Value, 0, len(m.password_resets))
		for id := range m.password_resets {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeCommChannels:
		ids := make([]ent.Value, 0, len(m.comm_channels))
		for id := range m.comm_channels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedevents != nil {
		edges = append(edges, account.EdgeEvents)
	}
	if m.removedguest_entries != nil {
		edges = append(edges, account.EdgeGuestEntries)
	}
	if m.removedalbums != nil {
		edges = append(edges, account.EdgeAlbums)
	}
	if m.removedalbum_files != nil {
		edges = append(edges, account.EdgeAlbumFiles)
	}
	if m.removedsent_notifications != nil {
		edges = append(edges, account.EdgeSentNotifications)
	}
	if m.removedreceived_notifications != nil {
		edges = append(edges, account.EdgeReceivedNotifications)
	}
	if m.removedpassword_resets != nil {
		edges = append(edges, account.EdgePasswordResets)
	}
	if m.removedcomm_channels != nil {
		edges = append(edges, account.EdgeCommChannels)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeGuestEntries:
		ids := make([]ent.Value, 0, len(m.removedguest_entries))
		for id := range m.removedguest_entries {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.removedalbums))
		for id := range m.removedalbums {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeAlbumFiles:
		ids := make([]ent.Value, 0, len(m.removedalbum_files))
		for id := range m.removedalbum_files {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeSentNotifications:
		ids := make([]ent.Value, 0, len(m.removedsent_notifications))
		for id := range m.removedsent_notifications {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeReceivedNotifications:
		ids := make([]ent.Value, 0, len(m.removedreceived_notifications))
		for id := range m.removedreceived_notifications {
			ids = append(ids, id)
		}
		return ids
	case account.EdgePasswordResets:
		ids := make([]ent.Value, 0, len(m.removedpassword_resets))
		for id := range m.removedpassword_resets {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeCommChannels:
		ids := make([]ent.Value, 0, len(m.removedcomm_channels))
		for id := range m.removedcomm_channels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedsettings {
		edges = append(edges, account.EdgeSettings)
	}
	if m.clearedevents {
		edges = append(edges, account.EdgeEvents)
	}
	if m.clearedguest_entries {
		edges = append(edges, account.EdgeGuestEntries)
	}
	if m.clearedalbums {
		edges = append(edges, account.EdgeAlbums)
	}
	if m.clearedalbum_files {
		edges = append(edges, account.EdgeAlbumFiles)
	}
	if m.clearedsent_notifications {
		edges = append(edges, account.EdgeSentNotifications)
	}
	if m.clearedreceived_notifications {
		edges = append(edges, account.EdgeReceivedNotifications)
	}
	if m.clearedpassword_resets {
		edges = append(edges, account.EdgePasswordResets)
	}
	if m.clearedcomm_channels {
		edges = append(edges, account.EdgeCommChannels)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeSettings:
		return m.clearedsettings
	case account.EdgeEvents:
		return m.clearedevents
	case account.EdgeGuestEntries:
		return m.clearedguest_entries
	case account.EdgeAlbums:
		return m.clearedalbums
	case account.EdgeAlbumFiles:
		return m.clearedalbum_files
	case account.EdgeSentNotifications:
		return m.clearedsent_notifications
	case account.EdgeReceivedNotifications:
		return m.clearedreceived_notifications
	case account.EdgePasswordResets:
		return m.clearedpassword_resets
	case account.EdgeCommChannels:
		return m.clearedcomm_channels
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	case account.EdgeSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeSettings:
		m.ResetSettings()
		return nil
	case account.EdgeEvents:
		m.ResetEvents()
		return nil
	case account.EdgeGuestEntries:
		m.ResetGuestEntries()
		return nil
	case account.EdgeAlbums:
		m.ResetAlbums()
		return nil
	case account.EdgeAlbumFiles:
		m.ResetAlbumFiles()
		return nil
	case account.EdgeSentNotifications:
		m.ResetSentNotifications()
		return nil
	case account.EdgeReceivedNotifications:
		m.ResetReceivedNotifications()
		return nil
	case account.EdgePasswordResets:
		m.ResetPasswordResets()
		return nil
	case account.EdgeCommChannels:
		m.ResetCommChannels()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// AccountSettingsMutation represents an operation that mutates the AccountSettings nodes in the graph.
type AccountSettingsMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	email_rsvp_updates    *bool
	email_social_activity *bool
	email_promotions      *bool
	text_rsvp_updates     *bool
	text_social_activity  *bool
	text_promotions       *bool
	default_event_privacy *accountsettings.DefaultEventPrivacy
	clearedFields         map[string]struct{}
	account               *string
	clearedaccount        bool
	done                  bool
	oldValue              func(context.Context) (*AccountSettings, error)
	predicates            []predicate.AccountSettings
}

var _ ent.Mutation = (*AccountSettingsMutation)(nil)

// accountsettingsOption allows management of the mutation configuration using functional options.
type accountsettingsOption func(*AccountSettingsMutation)

// newAccountSettingsMutation creates new mutation for the AccountSettings entity.
func newAccountSettingsMutation(c config, op Op, opts ...accountsettingsOption) *AccountSettingsMutation {
	m := &AccountSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeAccountSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountSettingsID sets the ID field of the mutation.
func withAccountSettingsID(id string) accountsettingsOption {
	return func(m *AccountSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *AccountSettings
		)
		m.oldValue = func(ctx context.Context) (*AccountSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AccountSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccountSettings sets the old AccountSettings of the mutation.
func withAccountSettings(node *AccountSettings) accountsettingsOption {
	return func(m *AccountSettingsMutation) {
		m.oldValue = func(context.Context) (*AccountSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AccountSettings entities.
func (m *AccountSettingsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountSettingsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountSettingsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AccountSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountSettingsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountSettingsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountSettingsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAccountID sets the "account_id" field.
func (m *AccountSettingsMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AccountSettingsMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AccountSettingsMutation) ResetAccountID() {
	m.account = nil
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (m *AccountSettingsMutation) SetEmailRsvpUpdates(b bool) {
	m.email_rsvp_updates = &b
}

// EmailRsvpUpdates returns the value of the "email_rsvp_updates" field in the mutation.
func (m *AccountSettingsMutation) EmailRsvpUpdates() (r bool, exists bool) {
	v := m.email_rsvp_updates
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailRsvpUpdates returns the old "email_rsvp_updates" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldEmailRsvpUpdates(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailRsvpUpdates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailRsvpUpdates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailRsvpUpdates: %w", err)
	}
	return oldValue.EmailRsvpUpdates, nil
}

// ResetEmailRsvpUpdates resets all changes to the "email_rsvp_updates" field.
func (m *AccountSettingsMutation) ResetEmailRsvpUpdates() {
	m.email_rsvp_updates = nil
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (m *AccountSettingsMutation) SetEmailSocialActivity(b bool) {
	m.email_social_activity = &b
}

// EmailSocialActivity returns the value of the "email_social_activity" field in the mutation.
func (m *AccountSettingsMutation) EmailSocialActivity() (r bool, exists bool) {
	v := m.email_social_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSocialActivity returns the old "email_social_activity" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldEmailSocialActivity(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSocialActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSocialActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSocialActivity: %w", err)
	}
	return oldValue.EmailSocialActivity, nil
}

// ResetEmailSocialActivity resets all changes to the "email_social_activity" field.
func (m *AccountSettingsMutation) ResetEmailSocialActivity() {
	m.email_social_activity = nil
}

// SetEmailPromotions sets the "email_promotions" field.
func (m *AccountSettingsMutation) SetEmailPromotions(b bool) {
	m.email_promotions = &b
}

// EmailPromotions returns the value of the "email_promotions" field in the mutation.
func (m *AccountSettingsMutation) EmailPromotions() (r bool, exists bool) {
	v := m.email_promotions
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailPromotions returns the old "email_promotions" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldEmailPromotions(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailPromotions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailPromotions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailPromotions: %w", err)
	}
	return oldValue.EmailPromotions, nil
}

// ResetEmailPromotions resets all changes to the "email_promotions" field.
func (m *AccountSettingsMutation) ResetEmailPromotions() {
	m.email_promotions = nil
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (m *AccountSettingsMutation) SetTextRsvpUpdates(b bool) {
	m.text_rsvp_updates = &b
}

// TextRsvpUpdates returns the value of the "text_rsvp_updates" field in the mutation.
func (m *AccountSettingsMutation) TextRsvpUpdates() (r bool, exists bool) {
	v := m.text_rsvp_updates
	if v == nil {
		return
	}
	return *v, true
}

// OldTextRsvpUpdates returns the old "text_rsvp_updates" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldTextRsvpUpdates(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextRsvpUpdates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextRsvpUpdates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextRsvpUpdates: %w", err)
	}
	return oldValue.TextRsvpUpdates, nil
}

// ClearTextRsvpUpdates clears the value of the "text_rsvp_updates" field.
func (m *AccountSettingsMutation) ClearTextRsvpUpdates() {
	m.text_rsvp_updates = nil
	m.clearedFields[accountsettings.FieldTextRsvpUpdates] = struct{}{}
}

// TextRsvpUpdatesCleared returns if the "text_rsvp_updates" field was cleared in this mutation.
func (m *AccountSettingsMutation) TextRsvpUpdatesCleared() bool {
	_, ok := m.clearedFields[accountsettings.FieldTextRsvpUpdates]
	return ok
}

// ResetTextRsvpUpdates resets all changes to the "text_rsvp_updates" field.
func (m *AccountSettingsMutation) ResetTextRsvpUpdates() {
	m.text_rsvp_updates = nil
	delete(m.clearedFields, accountsettings.FieldTextRsvpUpdates)
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (m *AccountSettingsMutation) SetTextSocialActivity(b bool) {
	m.text_social_activity = &b
}

// TextSocialActivity returns the value of the "text_social_activity" field in the mutation.
func (m *AccountSettingsMutation) TextSocialActivity() (r bool, exists bool) {
	v := m.text_social_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldTextSocialActivity returns the old "text_social_activity" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldTextSocialActivity(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextSocialActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextSocialActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextSocialActivity: %w", err)
	}
	return oldValue.TextSocialActivity, nil
}

// ClearTextSocialActivity clears the value of the "text_social_activity" field.
func (m *AccountSettingsMutation) ClearTextSocialActivity() {
	m.text_social_activity = nil
	m.clearedFields[accountsettings.FieldTextSocialActivity] = struct{}{}
}

// TextSocialActivityCleared returns if the "text_social_activity" field was cleared in this mutation.
func (m *AccountSettingsMutation) TextSocialActivityCleared() bool {
	_, ok := m.clearedFields[accountsettings.FieldTextSocialActivity]
	return ok
}

// ResetTextSocialActivity resets all changes to the "text_social_activity" field.
func (m *AccountSettingsMutation) ResetTextSocialActivity() {
	m.text_social_activity = nil
	delete(m.clearedFields, accountsettings.FieldTextSocialActivity)
}

// SetTextPromotions sets the "text_promotions" field.
func (m *AccountSettingsMutation) SetTextPromotions(b bool) {
	m.text_promotions = &b
}

// TextPromotions returns the value of the "text_promotions" field in the mutation.
func (m *AccountSettingsMutation) TextPromotions() (r bool, exists bool) {
	v := m.text_promotions
	if v == nil {
		return
	}
	return *v, true
}

// OldTextPromotions returns the old "text_promotions" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldTextPromotions(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextPromotions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextPromotions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextPromotions: %w", err)
	}
	return oldValue.TextPromotions, nil
}

// ClearTextPromotions clears the value of the "text_promotions" field.
func (m *AccountSettingsMutation) ClearTextPromotions() {
	m.text_promotions = nil
	m.clearedFields[accountsettings.FieldTextPromotions] = struct{}{}
}

// TextPromotionsCleared returns if the "text_promotions" field was cleared in this mutation.
func (m *AccountSettingsMutation) TextPromotionsCleared() bool {
	_, ok := m.clearedFields[accountsettings.FieldTextPromotions]
	return ok
}

// ResetTextPromotions resets all changes to the "text_promotions" field.
func (m *AccountSettingsMutation) ResetTextPromotions() {
	m.text_promotions = nil
	delete(m.clearedFields, accountsettings.FieldTextPromotions)
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (m *AccountSettingsMutation) SetDefaultEventPrivacy(aep accountsettings.DefaultEventPrivacy) {
	m.default_event_privacy = &aep
}

// DefaultEventPrivacy returns the value of the "default_event_privacy" field in the mutation.
func (m *AccountSettingsMutation) DefaultEventPrivacy() (r accountsettings.DefaultEventPrivacy, exists bool) {
	v := m.default_event_privacy
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultEventPrivacy returns the old "default_event_privacy" field's value of the AccountSettings entity.
// If the AccountSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountSettingsMutation) OldDefaultEventPrivacy(ctx context.Context) (v accountsettings.DefaultEventPrivacy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultEventPrivacy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultEventPrivacy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultEventPrivacy: %w", err)
	}
	return oldValue.DefaultEventPrivacy, nil
}

// ResetDefaultEventPrivacy resets all changes to the "default_event_privacy" field.
func (m *AccountSettingsMutation) ResetDefaultEventPrivacy() {
	m.default_event_privacy = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *AccountSettingsMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[accountsettings.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *AccountSettingsMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *AccountSettingsMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *AccountSettingsMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the AccountSettingsMutation builder.
func (m *AccountSettingsMutation) Where(ps ...predicate.AccountSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AccountSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AccountSettings).
func (m *AccountSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountSettingsMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, accountsettings.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, accountsettings.FieldUpdatedAt)
	}
	if m.account != nil {
		fields = append(fields, accountsettings.FieldAccountID)
	}
	if m.email_rsvp_updates != nil {
		fields = append(fields, accountsettings.FieldEmailRsvpUpdates)
	}
	if m.email_social_activity != nil {
		fields = append(fields, accountsettings.FieldEmailSocialActivity)
	}
	if m.email_promotions != nil {
		fields = append(fields, accountsettings.FieldEmailPromotions)
	}
	if m.text_rsvp_updates != nil {
		fields = append(fields, accountsettings.FieldTextRsvpUpdates)
	}
	if m.text_social_activity != nil {
		fields = append(fields, accountsettings.FieldTextSocialActivity)
	}
	if m.text_promotions != nil {
		fields = append(fields, accountsettings.FieldTextPromotions)
	}
	if m.default_event_privacy != nil {
		fields = append(fields, accountsettings.FieldDefaultEventPrivacy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case accountsettings.FieldCreatedAt:
		return m.CreatedAt()
	case accountsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	case accountsettings.FieldAccountID:
		return m.AccountID()
	case accountsettings.FieldEmailRsvpUpdates:
		return m.EmailRsvpUpdates()
	case accountsettings.FieldEmailSocialActivity:
		return m.EmailSocialActivity()
	case accountsettings.FieldEmailPromotions:
		return m.EmailPromotions()
	case accountsettings.FieldTextRsvpUpdates:
		return m.TextRsvpUpdates()
	case accountsettings.FieldTextSocialActivity:
		return m.TextSocialActivity()
	case accountsettings.FieldTextPromotions:
		return m.TextPromotions()
	case accountsettings.FieldDefaultEventPrivacy:
		return m.DefaultEventPrivacy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case accountsettings.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case accountsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case accountsettings.FieldAccountID:
		return m.OldAccountID(ctx)
	case accountsettings.FieldEmailRsvpUpdates:
		return m.OldEmailRsvpUpdates(ctx)
	case accountsettings.FieldEmailSocialActivity:
		return m.OldEmailSocialActivity(ctx)
	case accountsettings.FieldEmailPromotions:
		return m.OldEmailPromotions(ctx)
	case accountsettings.FieldTextRsvpUpdates:
		return m.OldTextRsvpUpdates(ctx)
	case accountsettings.FieldTextSocialActivity:
		return m.OldTextSocialActivity(ctx)
	case accountsettings.FieldTextPromotions:
		return m.OldTextPromotions(ctx)
	case accountsettings.FieldDefaultEventPrivacy:
		return m.OldDefaultEventPrivacy(ctx)
	}
	return nil, fmt.Errorf("unknown AccountSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case accountsettings.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case accountsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case accountsettings.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case accountsettings.FieldEmailRsvpUpdates:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailRsvpUpdates(v)
		return nil
	case accountsettings.FieldEmailSocialActivity:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSocialActivity(v)
		return nil
	case accountsettings.FieldEmailPromotions:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailPromotions(v)
		return nil
	case accountsettings.FieldTextRsvpUpdates:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextRsvpUpdates(v)
		return nil
	case accountsettings.FieldTextSocialActivity:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextSocialActivity(v)
		return nil
	case accountsettings.FieldTextPromotions:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextPromotions(v)
		return nil
	case accountsettings.FieldDefaultEventPrivacy:
		v, ok := value.(accountsettings.DefaultEventPrivacy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultEventPrivacy(v)
		return nil
	}
	return fmt.Errorf("unknown AccountSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountSettingsMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountSettingsMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AccountSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(accountsettings.FieldTextRsvpUpdates) {
		fields = append(fields, accountsettings.FieldTextRsvpUpdates)
	}
	if m.FieldCleared(accountsettings.FieldTextSocialActivity) {
		fields = append(fields, accountsettings.FieldTextSocialActivity)
	}
	if m.FieldCleared(accountsettings.FieldTextPromotions) {
		fields = append(fields, accountsettings.FieldTextPromotions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountSettingsMutation) ClearField(name string) error {
	switch name {
	case accountsettings.FieldTextRsvpUpdates:
		m.ClearTextRsvpUpdates()
		return nil
	case accountsettings.FieldTextSocialActivity:
		m.ClearTextSocialActivity()
		return nil
	case accountsettings.FieldTextPromotions:
		m.ClearTextPromotions()
		return nil
	}
	return fmt.Errorf("unknown AccountSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountSettingsMutation) ResetField(name string) error {
	switch name {
	case accountsettings.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case accountsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case accountsettings.FieldAccountID:
		m.ResetAccountID()
		return nil
	case accountsettings.FieldEmailRsvpUpdates:
		m.ResetEmailRsvpUpdates()
		return nil
	case accountsettings.FieldEmailSocialActivity:
		m.ResetEmailSocialActivity()
		return nil
	case accountsettings.FieldEmailPromotions:
		m.ResetEmailPromotions()
		return nil
	case accountsettings.FieldTextRsvpUpdates:
		m.ResetTextRsvpUpdates()
		return nil
	case accountsettings.FieldTextSocialActivity:
		m.ResetTextSocialActivity()
		return nil
	case accountsettings.FieldTextPromotions:
		m.ResetTextPromotions()
		return nil
	case accountsettings.FieldDefaultEventPrivacy:
		m.ResetDefaultEventPrivacy()
		return nil
	}
	return fmt.Errorf("unknown AccountSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, accountsettings.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountSettingsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case accountsettings.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, accountsettings.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountSettingsMutation) EdgeCleared(name string) bool {
	switch name {
	case accountsettings.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountSettingsMutation) ClearEdge(name string) error {
	switch name {
	case accountsettings.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown AccountSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountSettingsMutation) ResetEdge(name string) error {
	switch name {
	case accountsettings.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown AccountSettings edge %s", name)
}

// AlbumMutation represents an operation that mutates the Album nodes in the graph.
type AlbumMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	description       *string
	status            *album.Status
	clearedFields     map[string]struct{}
	owner             *string
	clearedowner      bool
	event             *string
	clearedevent      bool
	album_type        *int
	clearedalbum_type bool
	files             map[string]struct{}
	removedfiles      map[string]struct{}
	clearedfiles      bool
	done              bool
	oldValue          func(context.Context) (*Album, error)
	predicates        []predicate.Album
}

var _ ent.Mutation = (*AlbumMutation)(nil)

// albumOption allows management of the mutation configuration using functional options.
type albumOption func(*AlbumMutation)

// newAlbumMutation creates new mutation for the Album entity.
func newAlbumMutation(c config, op Op, opts ...albumOption) *AlbumMutation {
	m := &AlbumMutation{
		config:        c,
		op:            op,
		typ:           TypeAlbum,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlbumID sets the ID field of the mutation.
func withAlbumID(id string) albumOption {
	return func(m *AlbumMutation) {
		var (
			err   error
			once  sync.Once
			value *Album
		)
		m.oldValue = func(ctx context.Context) (*Album, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Album.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlbum sets the old Album of the mutation.
func withAlbum(node *Album) albumOption {
	return func(m *AlbumMutation) {
		m.oldValue = func(context.Context) (*Album, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlbumMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlbumMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Album entities.
func (m *AlbumMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlbumMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlbumMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Album.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AlbumMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlbumMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlbumMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlbumMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlbumMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlbumMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *AlbumMutation) SetOwnerID(s string) {
	m.owner = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AlbumMutation) OwnerID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AlbumMutation) ResetOwnerID() {
	m.owner = nil
}

// SetEventID sets the "event_id" field.
func (m *AlbumMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AlbumMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ClearEventID clears the value of the "event_id" field.
func (m *AlbumMutation) ClearEventID() {
	m.event = nil
	m.clearedFields[album.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *AlbumMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[album.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AlbumMutation) ResetEventID() {
	m.event = nil
	delete(m.clearedFields, album.FieldEventID)
}

// SetAlbumTypeID sets the "album_type_id" field.
func (m *AlbumMutation) SetAlbumTypeID(i int) {
	m.album_type = &i
}

// AlbumTypeID returns the value of the "album_type_id" field in the mutation.
func (m *AlbumMutation) AlbumTypeID() (r int, exists bool) {
	v := m.album_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlbumTypeID returns the old "album_type_id" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldAlbumTypeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlbumTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlbumTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlbumTypeID: %w", err)
	}
	return oldValue.AlbumTypeID, nil
}

// ResetAlbumTypeID resets all changes to the "album_type_id" field.
func (m *AlbumMutation) ResetAlbumTypeID() {
	m.album_type = nil
}

// SetName sets the "name" field.
func (m *AlbumMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AlbumMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AlbumMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AlbumMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AlbumMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AlbumMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[album.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AlbumMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[album.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AlbumMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, album.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *AlbumMutation) SetStatus(a album.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlbumMutation) Status() (r album.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Album entity.
// If the Album object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumMutation) OldStatus(ctx context.Context) (v album.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlbumMutation) ResetStatus() {
	m.status = nil
}

// ClearOwner clears the "owner" edge to the Account entity.
func (m *AlbumMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[album.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the Account entity was cleared.
func (m *AlbumMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *AlbumMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *AlbumMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *AlbumMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[album.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *AlbumMutation) EventCleared() bool {
	return m.EventIDCleared() || m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *AlbumMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *AlbumMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearAlbumType clears the "album_type" edge to the AlbumType entity.
func (m *AlbumMutation) ClearAlbumType() {
	m.clearedalbum_type = true
	m.clearedFields[album.FieldAlbumTypeID] = struct{}{}
}

// AlbumTypeCleared reports if the "album_type" edge to the AlbumType entity was cleared.
func (m *AlbumMutation) AlbumTypeCleared() bool {
	return m.clearedalbum_type
}

// AlbumTypeIDs returns the "album_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AlbumTypeID instead. It exists only for internal usage by the builders.
func (m *AlbumMutation) AlbumTypeIDs() (ids []int) {
	if id := m.album_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAlbumType resets all changes to the "album_type" edge.
func (m *AlbumMutation) ResetAlbumType() {
	m.album_type = nil
	m.clearedalbum_type = false
}

// AddFileIDs adds the "files" edge to the AlbumFile entity by ids.
func (m *AlbumMutation) AddFileIDs(ids ...string) {
	if m.files == nil {
		m.files = make(map[string]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the AlbumFile entity.
func (m *AlbumMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the AlbumFile entity was cleared.
func (m *AlbumMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the AlbumFile entity by IDs.
func (m *AlbumMutation) RemoveFileIDs(ids ...string) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the AlbumFile entity.
func (m *AlbumMutation) RemovedFilesIDs() (ids []string) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *AlbumMutation) FilesIDs() (ids []string) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *AlbumMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the AlbumMutation builder.
func (m *AlbumMutation) Where(ps ...predicate.Album) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlbumMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlbumMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Album, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlbumMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlbumMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Album).
func (m *AlbumMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlbumMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, album.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, album.FieldUpdatedAt)
	}
	if m.owner != nil {
		fields = append(fields, album.FieldOwnerID)
	}
	if m.event != nil {
		fields = append(fields, album.FieldEventID)
	}
	if m.album_type != nil {
		fields = append(fields, album.FieldAlbumTypeID)
	}
	if m.name != nil {
		fields = append(fields, album.FieldName)
	}
	if m.description != nil {
		fields = append(fields, album.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, album.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlbumMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case album.FieldCreatedAt:
		return m.CreatedAt()
	case album.FieldUpdatedAt:
		return m.UpdatedAt()
	case album.FieldOwnerID:
		return m.OwnerID()
	case album.FieldEventID:
		return m.EventID()
	case album.FieldAlbumTypeID:
		return m.AlbumTypeID()
	case album.FieldName:
		return m.Name()
	case album.FieldDescription:
		return m.Description()
	case album.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlbumMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case album.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case album.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case album.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case album.FieldEventID:
		return m.OldEventID(ctx)
	case album.FieldAlbumTypeID:
		return m.OldAlbumTypeID(ctx)
	case album.FieldName:
		return m.OldName(ctx)
	case album.FieldDescription:
		return m.OldDescription(ctx)
	case album.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Album field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlbumMutation) SetField(name string, value ent.Value) error {
	switch name {
	case album.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case album.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case album.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case album.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case album.FieldAlbumTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlbumTypeID(v)
		return nil
	case album.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case album.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case album.FieldStatus:
		v, ok := value.(album.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Album field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlbumMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlbumMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlbumMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Album numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlbumMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(album.FieldEventID) {
		fields = append(fields, album.FieldEventID)
	}
	if m.FieldCleared(album.FieldDescription) {
		fields = append(fields, album.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlbumMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlbumMutation) ClearField(name string) error {
	switch name {
	case album.FieldEventID:
		m.ClearEventID()
		return nil
	case album.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Album nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlbumMutation) ResetField(name string) error {
	switch name {
	case album.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case album.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case album.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case album.FieldEventID:
		m.ResetEventID()
		return nil
	case album.FieldAlbumTypeID:
		m.ResetAlbumTypeID()
		return nil
	case album.FieldName:
		m.ResetName()
		return nil
	case album.FieldDescription:
		m.ResetDescription()
		return nil
	case album.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Album field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlbumMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.owner != nil {
		edges = append(edges, album.EdgeOwner)
	}
	if m.event != nil {
		edges = append(edges, album.EdgeEvent)
	}
	if m.album_type != nil {
		edges = append(edges, album.EdgeAlbumType)
	}
	if m.files != nil {
		edges = append(edges, album.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlbumMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case album.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case album.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case album.EdgeAlbumType:
		if id := m.album_type; id != nil {
			return []ent.Value{*id}
		}
	case album.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlbumMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedfiles != nil {
		edges = append(edges, album.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlbumMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case album.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlbumMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedowner {
		edges = append(edges, album.EdgeOwner)
	}
	if m.clearedevent {
		edges = append(edges, album.EdgeEvent)
	}
	if m.clearedalbum_type {
		edges = append(edges, album.EdgeAlbumType)
	}
	if m.clearedfiles {
		edges = append(edges, album.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlbumMutation) EdgeCleared(name string) bool {
	switch name {
	case album.EdgeOwner:
		return m.clearedowner
	case album.EdgeEvent:
		return m.clearedevent
	case album.EdgeAlbumType:
		return m.clearedalbum_type
	case album.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlbumMutation) ClearEdge(name string) error {
	switch name {
	case album.EdgeOwner:
		m.ClearOwner()
		return nil
	case album.EdgeEvent:
		m.ClearEvent()
		return nil
	case album.EdgeAlbumType:
		m.ClearAlbumType()
		return nil
	}
	return fmt.Errorf("unknown Album unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlbumMutation) ResetEdge(name string) error {
	switch name {
	case album.EdgeOwner:
		m.ResetOwner()
		return nil
	case album.EdgeEvent:
		m.ResetEvent()
		return nil
	case album.EdgeAlbumType:
		m.ResetAlbumType()
		return nil
	case album.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Album edge %s", name)
}

// AlbumFileMutation represents an operation that mutates the AlbumFile nodes in the graph.
type AlbumFileMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	description       *string
	file_url          *string
	width             *int
	addwidth          *int
	height            *int
	addheight         *int
	size_bytes        *int
	addsize_bytes     *int
	file_type         *albumfile.FileType
	status            *albumfile.Status
	bucket            *string
	object_key        *string
	media_created     *time.Time
	clearedFields     map[string]struct{}
	owner             *string
	clearedowner      bool
	albums            map[string]struct{}
	removedalbums     map[string]struct{}
	clearedalbums     bool
	thumbnails        map[string]struct{}
	removedthumbnails map[string]struct{}
	clearedthumbnails bool
	done              bool
	oldValue          func(context.Context) (*AlbumFile, error)
	predicates        []predicate.AlbumFile
}

var _ ent.Mutation = (*AlbumFileMutation)(nil)

// albumfileOption allows management of the mutation configuration using functional options.
type albumfileOption func(*AlbumFileMutation)

// newAlbumFileMutation creates new mutation for the AlbumFile entity.
func newAlbumFileMutation(c config, op Op, opts ...albumfileOption) *AlbumFileMutation {
	m := &AlbumFileMutation{
		config:        c,
		op:            op,
		typ:           TypeAlbumFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlbumFileID sets the ID field of the mutation.
func withAlbumFileID(id string) albumfileOption {
	return func(m *AlbumFileMutation) {
		var (
			err   error
			once  sync.Once
			value *AlbumFile
		)
		m.oldValue = func(ctx context.Context) (*AlbumFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlbumFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlbumFile sets the old AlbumFile of the mutation.
func withAlbumFile(node *AlbumFile) albumfileOption {
	return func(m *AlbumFileMutation) {
		m.oldValue = func(context.Context) (*AlbumFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlbumFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlbumFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlbumFile entities.
func (m *AlbumFileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlbumFileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlbumFileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlbumFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AlbumFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlbumFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlbumFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlbumFileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlbumFileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlbumFileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *AlbumFileMutation) SetOwnerID(s string) {
	m.owner = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AlbumFileMutation) OwnerID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AlbumFileMutation) ResetOwnerID() {
	m.owner = nil
}

// SetName sets the "name" field.
func (m *AlbumFileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AlbumFileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *AlbumFileMutation) ClearName() {
	m.name = nil
	m.clearedFields[albumfile.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *AlbumFileMutation) NameCleared() bool {
	_, ok := m.clearedFields[albumfile.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *AlbumFileMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, albumfile.FieldName)
}

// SetDescription sets the "description" field.
func (m *AlbumFileMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AlbumFileMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AlbumFileMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[albumfile.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AlbumFileMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[albumfile.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AlbumFileMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, albumfile.FieldDescription)
}

// SetFileURL sets the "file_url" field.
func (m *AlbumFileMutation) SetFileURL(s string) {
	m.file_url = &s
}

// FileURL returns the value of the "file_url" field in the mutation.
func (m *AlbumFileMutation) FileURL() (r string, exists bool) {
	v := m.file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURL returns the old "file_url" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldFileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURL: %w", err)
	}
	return oldValue.FileURL, nil
}

// ClearFileURL clears the value of the "file_url" field.
func (m *AlbumFileMutation) ClearFileURL() {
	m.file_url = nil
	m.clearedFields[albumfile.FieldFileURL] = struct{}{}
}

// FileURLCleared returns if the "file_url" field was cleared in this mutation.
func (m *AlbumFileMutation) FileURLCleared() bool {
	_, ok := m.clearedFields[albumfile.FieldFileURL]
	return ok
}

// ResetFileURL resets all changes to the "file_url" field.
func (m *AlbumFileMutation) ResetFileURL() {
	m.file_url = nil
	delete(m.clearedFields, albumfile.FieldFileURL)
}

// SetWidth sets the "width" field.
func (m *AlbumFileMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *AlbumFileMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *AlbumFileMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *AlbumFileMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *AlbumFileMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *AlbumFileMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *AlbumFileMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *AlbumFileMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *AlbumFileMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *AlbumFileMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AlbumFileMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AlbumFileMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AlbumFileMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AlbumFileMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AlbumFileMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetFileType sets the "file_type" field.
func (m *AlbumFileMutation) SetFileType(at albumfile.FileType) {
	m.file_type = &at
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *AlbumFileMutation) FileType() (r albumfile.FileType, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldFileType(ctx context.Context) (v albumfile.FileType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *AlbumFileMutation) ResetFileType() {
	m.file_type = nil
}

// SetStatus sets the "status" field.
func (m *AlbumFileMutation) SetStatus(a albumfile.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlbumFileMutation) Status() (r albumfile.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldStatus(ctx context.Context) (v albumfile.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlbumFileMutation) ResetStatus() {
	m.status = nil
}

// SetBucket sets the "bucket" field.
func (m *AlbumFileMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *AlbumFileMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *AlbumFileMutation) ResetBucket() {
	m.bucket = nil
}

// SetObjectKey sets the "object_key" field.
func (m *AlbumFileMutation) SetObjectKey(s string) {
	m.object_key = &s
}

// ObjectKey returns the value of the "object_key" field in the mutation.
func (m *AlbumFileMutation) ObjectKey() (r string, exists bool) {
	v := m.object_key
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectKey returns the old "object_key" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldObjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectKey: %w", err)
	}
	return oldValue.ObjectKey, nil
}

// ResetObjectKey resets all changes to the "object_key" field.
func (m *AlbumFileMutation) ResetObjectKey() {
	m.object_key = nil
}

// SetMediaCreated sets the "media_created" field.
func (m *AlbumFileMutation) SetMediaCreated(t time.Time) {
	m.media_created = &t
}

// MediaCreated returns the value of the "media_created" field in the mutation.
func (m *AlbumFileMutation) MediaCreated() (r time.Time, exists bool) {
	v := m.media_created
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaCreated returns the old "media_created" field's value of the AlbumFile entity.
// If the AlbumFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumFileMutation) OldMediaCreated(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaCreated: %w", err)
	}
	return oldValue.MediaCreated, nil
}

// ClearMediaCreated clears the value of the "media_created" field.
func (m *AlbumFileMutation) ClearMediaCreated() {
	m.media_created = nil
	m.clearedFields[albumfile.FieldMediaCreated] = struct{}{}
}

// MediaCreatedCleared returns if the "media_created" field was cleared in this mutation.
func (m *AlbumFileMutation) MediaCreatedCleared() bool {
	_, ok := m.clearedFields[albumfile.FieldMediaCreated]
	return ok
}

// ResetMediaCreated resets all changes to the "media_created" field.
func (m *AlbumFileMutation) ResetMediaCreated() {
	m.media_created = nil
	delete(m.clearedFields, albumfile.FieldMediaCreated)
}

// ClearOwner clears the "owner" edge to the Account entity.
func (m *AlbumFileMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[albumfile.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the Account entity was cleared.
func (m *AlbumFileMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *AlbumFileMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *AlbumFileMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddAlbumIDs adds the "albums" edge to the Album entity by ids.
func (m *AlbumFileMutation) AddAlbumIDs(ids ...string) {
	if m.albums == nil {
		m.albums = make(map[string]struct{})
	}
	for i := range ids {
		m.albums[ids[i]] = struct{}{}
	}
}

// ClearAlbums clears the "albums" edge to the Album entity.
func (m *AlbumFileMutation) ClearAlbums() {
	m.clearedalbums = true
}

// AlbumsCleared reports if the "albums" edge to the Album entity was cleared.
func (m *AlbumFileMutation) AlbumsCleared() bool {
	return m.clearedalbums
}

// RemoveAlbumIDs removes the "albums" edge to the Album entity by IDs.
func (m *AlbumFileMutation) RemoveAlbumIDs(ids ...string) {
	if m.removedalbums == nil {
		m.removedalbums = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.albums, ids[i])
		m.removedalbums[ids[i]] = struct{}{}
	}
}

// RemovedAlbums returns the removed IDs of the "albums" edge to the Album entity.
func (m *AlbumFileMutation) RemovedAlbumsIDs() (ids []string) {
	for id := range m.removedalbums {
		ids = append(ids, id)
	}
	return
}

// AlbumsIDs returns the "albums" edge IDs in the mutation.
func (m *AlbumFileMutation) AlbumsIDs() (ids []string) {
	for id := range m.albums {
		ids = append(ids, id)
	}
	return
}

// ResetAlbums resets all changes to the "albums" edge.
func (m *AlbumFileMutation) ResetAlbums() {
	m.albums = nil
	m.clearedalbums = false
	m.removedalbums = nil
}

// AddThumbnailIDs adds the "thumbnails" edge to the Thumbnail entity by ids.
func (m *AlbumFileMutation) AddThumbnailIDs(ids ...string) {
	if m.thumbnails == nil {
		m.thumbnails = make(map[string]struct{})
	}
	for i := range ids {
		m.thumbnails[ids[i]] = struct{}{}
	}
}

// ClearThumbnails clears the "thumbnails" edge to the Thumbnail entity.
func (m *AlbumFileMutation) ClearThumbnails() {
	m.clearedthumbnails = true
}

// ThumbnailsCleared reports if the "thumbnails" edge to the Thumbnail entity was cleared.
func (m *AlbumFileMutation) ThumbnailsCleared() bool {
	return m.clearedthumbnails
}

// RemoveThumbnailIDs removes the "thumbnails" edge to the Thumbnail entity by IDs.
func (m *AlbumFileMutation) RemoveThumbnailIDs(ids ...string) {
	if m.removedthumbnails == nil {
		m.removedthumbnails = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.thumbnails, ids[i])
		m.removedthumbnails[ids[i]] = struct{}{}
	}
}

// RemovedThumbnails returns the removed IDs of the "thumbnails" edge to the Thumbnail entity.
func (m *AlbumFileMutation) RemovedThumbnailsIDs() (ids []string) {
	for id := range m.removedthumbnails {
		ids = append(ids, id)
	}
	return
}

// ThumbnailsIDs returns the "thumbnails" edge IDs in the mutation.
func (m *AlbumFileMutation) ThumbnailsIDs() (ids []string) {
	for id := range m.thumbnails {
		ids = append(ids, id)
	}
	return
}

// ResetThumbnails resets all changes to the "thumbnails" edge.
func (m *AlbumFileMutation) ResetThumbnails() {
	m.thumbnails = nil
	m.clearedthumbnails = false
	m.removedthumbnails = nil
}

// Where appends a list predicates to the AlbumFileMutation builder.
func (m *AlbumFileMutation) Where(ps ...predicate.AlbumFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlbumFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlbumFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlbumFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlbumFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlbumFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlbumFile).
func (m *AlbumFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlbumFileMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, albumfile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, albumfile.FieldUpdatedAt)
	}
	if m.owner != nil {
		fields = append(fields, albumfile.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, albumfile.FieldName)
	}
	if m.description != nil {
		fields = append(fields, albumfile.FieldDescription)
	}
	if m.file_url != nil {
		fields = append(fields, albumfile.FieldFileURL)
	}
	if m.width != nil {
		fields = append(fields, albumfile.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, albumfile.FieldHeight)
	}
	if m.size_bytes != nil {
		fields = append(fields, albumfile.FieldSizeBytes)
	}
	if m.file_type != nil {
		fields = append(fields, albumfile.FieldFileType)
	}
	if m.status != nil {
		fields = append(fields, albumfile.FieldStatus)
	}
	if m.bucket != nil {
		fields = append(fields, albumfile.FieldBucket)
	}
	if m.object_key != nil {
		fields = append(fields, albumfile.FieldObjectKey)
	}
	if m.media_created != nil {
		fields = append(fields, albumfile.FieldMediaCreated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlbumFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case albumfile.FieldCreatedAt:
		return m.CreatedAt()
	case albumfile.FieldUpdatedAt:
		return m.UpdatedAt()
	case albumfile.FieldOwnerID:
		return m.OwnerID()
	case albumfile.FieldName:
		return m.Name()
	case albumfile.FieldDescription:
		return m.Description()
	case albumfile.FieldFileURL:
		return m.FileURL()
	case albumfile.FieldWidth:
		return m.Width()
	case albumfile.FieldHeight:
		return m.Height()
	case albumfile.FieldSizeBytes:
		return m.SizeBytes()
	case albumfile.FieldFileType:
		return m.FileType()
	case albumfile.FieldStatus:
		return m.Status()
	case albumfile.FieldBucket:
		return m.Bucket()
	case albumfile.FieldObjectKey:
		return m.ObjectKey()
	case albumfile.FieldMediaCreated:
		return m.MediaCreated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlbumFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case albumfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case albumfile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case albumfile.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case albumfile.FieldName:
		return m.OldName(ctx)
	case albumfile.FieldDescription:
		return m.OldDescription(ctx)
	case albumfile.FieldFileURL:
		return m.OldFileURL(ctx)
	case albumfile.FieldWidth:
		return m.OldWidth(ctx)
	case albumfile.FieldHeight:
		return m.OldHeight(ctx)
	case albumfile.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case albumfile.FieldFileType:
		return m.OldFileType(ctx)
	case albumfile.FieldStatus:
		return m.OldStatus(ctx)
	case albumfile.FieldBucket:
		return m.OldBucket(ctx)
	case albumfile.FieldObjectKey:
		return m.OldObjectKey(ctx)
	case albumfile.FieldMediaCreated:
		return m.OldMediaCreated(ctx)
	}
	return nil, fmt.Errorf("unknown AlbumFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlbumFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case albumfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case albumfile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case albumfile.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case albumfile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case albumfile.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case albumfile.FieldFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURL(v)
		return nil
	case albumfile.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case albumfile.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case albumfile.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case albumfile.FieldFileType:
		v, ok := value.(albumfile.FileType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case albumfile.FieldStatus:
		v, ok := value.(albumfile.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case albumfile.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case albumfile.FieldObjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectKey(v)
		return nil
	case albumfile.FieldMediaCreated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaCreated(v)
		return nil
	}
	return fmt.Errorf("unknown AlbumFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlbumFileMutation) AddedFields() []string {
	var fields []string
	if m.addwidth != nil {
		fields = append(fields, albumfile.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, albumfile.FieldHeight)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, albumfile.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlbumFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case albumfile.FieldWidth:
		return m.AddedWidth()
	case albumfile.FieldHeight:
		return m.AddedHeight()
	case albumfile.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlbumFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case albumfile.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case albumfile.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case albumfile.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown AlbumFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlbumFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(albumfile.FieldName) {
		fields = append(fields, albumfile.FieldName)
	}
	if m.FieldCleared(albumfile.FieldDescription) {
		fields = append(fields, albumfile.FieldDescription)
	}
	if m.FieldCleared(albumfile.FieldFileURL) {
		fields = append(fields, albumfile.FieldFileURL)
	}
	if m.FieldCleared(albumfile.FieldMediaCreated) {
		fields = append(fields, albumfile.FieldMediaCreated)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlbumFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlbumFileMutation) ClearField(name string) error {
	switch name {
	case albumfile.FieldName:
		m.ClearName()
		return nil
	case albumfile.FieldDescription:
		m.ClearDescription()
		return nil
	case albumfile.FieldFileURL:
		m.ClearFileURL()
		return nil
	case albumfile.FieldMediaCreated:
		m.ClearMediaCreated()
		return nil
	}
	return fmt.Errorf("unknown AlbumFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlbumFileMutation) ResetField(name string) error {
	switch name {
	case albumfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case albumfile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case albumfile.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case albumfile.FieldName:
		m.ResetName()
		return nil
	case albumfile.FieldDescription:
		m.ResetDescription()
		return nil
	case albumfile.FieldFileURL:
		m.ResetFileURL()
		return nil
	case albumfile.FieldWidth:
		m.ResetWidth()
		return nil
	case albumfile.FieldHeight:
		m.ResetHeight()
		return nil
	case albumfile.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case albumfile.FieldFileType:
		m.ResetFileType()
		return nil
	case albumfile.FieldStatus:
		m.ResetStatus()
		return nil
	case albumfile.FieldBucket:
		m.ResetBucket()
		return nil
	case albumfile.FieldObjectKey:
		m.ResetObjectKey()
		return nil
	case albumfile.FieldMediaCreated:
		m.ResetMediaCreated()
		return nil
	}
	return fmt.Errorf("unknown AlbumFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlbumFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, albumfile.EdgeOwner)
	}
	if m.albums != nil {
		edges = append(edges, albumfile.EdgeAlbums)
	}
	if m.thumbnails != nil {
		edges = append(edges, albumfile.EdgeThumbnails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlbumFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case albumfile.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case albumfile.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.albums))
		for id := range m.albums {
			ids = append(ids, id)
		}
		return ids
	case albumfile.EdgeThumbnails:
		ids := make([]ent.Value, 0, len(m.thumbnails))
		for id := range m.thumbnails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlbumFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedalbums != nil {
		edges = append(edges, albumfile.EdgeAlbums)
	}
	if m.removedthumbnails != nil {
		edges = append(edges, albumfile.EdgeThumbnails)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlbumFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case albumfile.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.removedalbums))
		for id := range m.removedalbums {
			ids = append(ids, id)
		}
		return ids
	case albumfile.EdgeThumbnails:
		ids := make([]ent.Value, 0, len(m.removedthumbnails))
		for id := range m.removedthumbnails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlbumFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, albumfile.EdgeOwner)
	}
	if m.clearedalbums {
		edges = append(edges, albumfile.EdgeAlbums)
	}
	if m.clearedthumbnails {
		edges = append(edges, albumfile.EdgeThumbnails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlbumFileMutation) EdgeCleared(name string) bool {
	switch name {
	case albumfile.EdgeOwner:
		return m.clearedowner
	case albumfile.EdgeAlbums:
		return m.clearedalbums
	case albumfile.EdgeThumbnails:
		return m.clearedthumbnails
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlbumFileMutation) ClearEdge(name string) error {
	switch name {
	case albumfile.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown AlbumFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlbumFileMutation) ResetEdge(name string) error {
	switch name {
	case albumfile.EdgeOwner:
		m.ResetOwner()
		return nil
	case albumfile.EdgeAlbums:
		m.ResetAlbums()
		return nil
	case albumfile.EdgeThumbnails:
		m.ResetThumbnails()
		return nil
	}
	return fmt.Errorf("unknown AlbumFile edge %s", name)
}

// AlbumTypeMutation represents an operation that mutates the AlbumType nodes in the graph.
type AlbumTypeMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	description   *string
	sort_order    *int
	addsort_order *int
	is_virtual    *bool
	is_deletable  *bool
	clearedFields map[string]struct{}
	albums        map[string]struct{}
	removedalbums map[string]struct{}
	clearedalbums bool
	done          bool
	oldValue      func(context.Context) (*AlbumType, error)
	predicates    []predicate.AlbumType
}

var _ ent.Mutation = (*AlbumTypeMutation)(nil)

// albumtypeOption allows management of the mutation configuration using functional options.
type albumtypeOption func(*AlbumTypeMutation)

// newAlbumTypeMutation creates new mutation for the AlbumType entity.
func newAlbumTypeMutation(c config, op Op, opts ...albumtypeOption) *AlbumTypeMutation {
	m := &AlbumTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeAlbumType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlbumTypeID sets the ID field of the mutation.
func withAlbumTypeID(id int) albumtypeOption {
	return func(m *AlbumTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *AlbumType
		)
		m.oldValue = func(ctx context.Context) (*AlbumType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlbumType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlbumType sets the old AlbumType of the mutation.
func withAlbumType(node *AlbumType) albumtypeOption {
	return func(m *AlbumTypeMutation) {
		m.oldValue = func(context.Context) (*AlbumType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlbumTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlbumTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlbumType entities.
func (m *AlbumTypeMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlbumTypeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlbumTypeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlbumType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AlbumTypeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlbumTypeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlbumTypeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlbumTypeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlbumTypeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlbumTypeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *AlbumTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AlbumTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AlbumTypeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AlbumTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AlbumTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *AlbumTypeMutation) ResetDescription() {
	m.description = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *AlbumTypeMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *AlbumTypeMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *AlbumTypeMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *AlbumTypeMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *AlbumTypeMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetIsVirtual sets the "is_virtual" field.
func (m *AlbumTypeMutation) SetIsVirtual(b bool) {
	m.is_virtual = &b
}

// IsVirtual returns the value of the "is_virtual" field in the mutation.
func (m *AlbumTypeMutation) IsVirtual() (r bool, exists bool) {
	v := m.is_virtual
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVirtual returns the old "is_virtual" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldIsVirtual(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVirtual is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVirtual requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVirtual: %w", err)
	}
	return oldValue.IsVirtual, nil
}

// ResetIsVirtual resets all changes to the "is_virtual" field.
func (m *AlbumTypeMutation) ResetIsVirtual() {
	m.is_virtual = nil
}

// SetIsDeletable sets the "is_deletable" field.
func (m *AlbumTypeMutation) SetIsDeletable(b bool) {
	m.is_deletable = &b
}

// IsDeletable returns the value of the "is_deletable" field in the mutation.
func (m *AlbumTypeMutation) IsDeletable() (r bool, exists bool) {
	v := m.is_deletable
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeletable returns the old "is_deletable" field's value of the AlbumType entity.
// If the AlbumType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlbumTypeMutation) OldIsDeletable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeletable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeletable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeletable: %w", err)
	}
	return oldValue.IsDeletable, nil
}

// ResetIsDeletable resets all changes to the "is_deletable" field.
func (m *AlbumTypeMutation) ResetIsDeletable() {
	m.is_deletable = nil
}

// AddAlbumIDs adds the "albums" edge to the Album entity by ids.
func (m *AlbumTypeMutation) AddAlbumIDs(ids ...string) {
	if m.albums == nil {
		m.albums = make(map[string]struct{})
	}
	for i := range ids {
		m.albums[ids[i]] = struct{}{}
	}
}

// ClearAlbums clears the "albums" edge to the Album entity.
func (m *AlbumTypeMutation) ClearAlbums() {
	m.clearedalbums = true
}

// AlbumsCleared reports if the "albums" edge to the Album entity was cleared.
func (m *AlbumTypeMutation) AlbumsCleared() bool {
	return m.clearedalbums
}

// RemoveAlbumIDs removes the "albums" edge to the Album entity by IDs.
func (m *AlbumTypeMutation) RemoveAlbumIDs(ids ...string) {
	if m.removedalbums == nil {
		m.removedalbums = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.albums, ids[i])
		m.removedalbums[ids[i]] = struct{}{}
	}
}

// RemovedAlbums returns the removed IDs of the "albums" edge to the Album entity.
func (m *AlbumTypeMutation) RemovedAlbumsIDs() (ids []string) {
	for id := range m.removedalbums {
		ids = append(ids, id)
	}
	return
}

// AlbumsIDs returns the "albums" edge IDs in the mutation.
func (m *AlbumTypeMutation) AlbumsIDs() (ids []string) {
	for id := range m.albums {
		ids = append(ids, id)
	}
	return
}

// ResetAlbums resets all changes to the "albums" edge.
func (m *AlbumTypeMutation) ResetAlbums() {
	m.albums = nil
	m.clearedalbums = false
	m.removedalbums = nil
}

// Where appends a list predicates to the AlbumTypeMutation builder.
func (m *AlbumTypeMutation) Where(ps ...predicate.AlbumType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlbumTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlbumTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlbumType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlbumTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlbumTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlbumType).
func (m *AlbumTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlbumTypeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, albumtype.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, albumtype.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, albumtype.FieldName)
	}
	if m.description != nil {
		fields = append(fields, albumtype.FieldDescription)
	}
	if m.sort_order != nil {
		fields = append(fields, albumtype.FieldSortOrder)
	}
	if m.is_virtual != nil {
		fields = append(fields, albumtype.FieldIsVirtual)
	}
	if m.is_deletable != nil {
		fields = append(fields, albumtype.FieldIsDeletable)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlbumTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case albumtype.FieldCreatedAt:
		return m.CreatedAt()
	case albumtype.FieldUpdatedAt:
		return m.UpdatedAt()
	case albumtype.FieldName:
		return m.Name()
	case albumtype.FieldDescription:
		return m.Description()
	case albumtype.FieldSortOrder:
		return m.SortOrder()
	case albumtype.FieldIsVirtual:
		return m.IsVirtual()
	case albumtype.FieldIsDeletable:
		return m.IsDeletable()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlbumTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case albumtype.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case albumtype.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case albumtype.FieldName:
		return m.OldName(ctx)
	case albumtype.FieldDescription:
		return m.OldDescription(ctx)
	case albumtype.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case albumtype.FieldIsVirtual:
		return m.OldIsVirtual(ctx)
	case albumtype.FieldIsDeletable:
		return m.OldIsDeletable(ctx)
	}
	return nil, fmt.Errorf("unknown AlbumType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlbumTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case albumtype.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case albumtype.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case albumtype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case albumtype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case albumtype.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case albumtype.FieldIsVirtual:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVirtual(v)
		return nil
	case albumtype.FieldIsDeletable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeletable(v)
		return nil
	}
	return fmt.Errorf("unknown AlbumType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlbumTypeMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, albumtype.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlbumTypeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case albumtype.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlbumTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case albumtype.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown AlbumType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlbumTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlbumTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlbumTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AlbumType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlbumTypeMutation) ResetField(name string) error {
	switch name {
	case albumtype.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case albumtype.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case albumtype.FieldName:
		m.ResetName()
		return nil
	case albumtype.FieldDescription:
		m.ResetDescription()
		return nil
	case albumtype.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case albumtype.FieldIsVirtual:
		m.ResetIsVirtual()
		return nil
	case albumtype.FieldIsDeletable:
		m.ResetIsDeletable()
		return nil
	}
	return fmt.Errorf("unknown AlbumType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlbumTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.albums != nil {
		edges = append(edges, albumtype.EdgeAlbums)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlbumTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case albumtype.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.albums))
		for id := range m.albums {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlbumTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedalbums != nil {
		edges = append(edges, albumtype.EdgeAlbums)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlbumTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case albumtype.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.removedalbums))
		for id := range m.removedalbums {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlbumTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedalbums {
		edges = append(edges, albumtype.EdgeAlbums)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlbumTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case albumtype.EdgeAlbums:
		return m.clearedalbums
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlbumTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AlbumType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlbumTypeMutation) ResetEdge(name string) error {
	switch name {
	case albumtype.EdgeAlbums:
		m.ResetAlbums()
		return nil
	}
	return fmt.Errorf("unknown AlbumType edge %s", name)
}

// CommChannelMutation represents an operation that mutates the CommChannel nodes in the graph.
type CommChannelMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	comm_type         *commchannel.CommType
	endpoint          *string
	validation_token  *string
	validation_date   *time.Time
	message_sent_date *time.Time
	clearedFields     map[string]struct{}
	account           *string
	clearedaccount    bool
	done              bool
	oldValue          func(context.Context) (*CommChannel, error)
	predicates        []predicate.CommChannel
}

var _ ent.Mutation = (*CommChannelMutation)(nil)

// commchannelOption allows management of the mutation configuration using functional options.
type commchannelOption func(*CommChannelMutation)

// newCommChannelMutation creates new mutation for the CommChannel entity.
func newCommChannelMutation(c config, op Op, opts ...commchannelOption) *CommChannelMutation {
	m := &CommChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeCommChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommChannelID sets the ID field of the mutation.
func withCommChannelID(id string) commchannelOption {
	return func(m *CommChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *CommChannel
		)
		m.oldValue = func(ctx context.Context) (*CommChannel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommChannel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommChannel sets the old CommChannel of the mutation.
func withCommChannel(node *CommChannel) commchannelOption {
	return func(m *CommChannelMutation) {
		m.oldValue = func(context.Context) (*CommChannel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommChannel entities.
func (m *CommChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommChannel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommChannelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommChannelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommChannelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAccountID sets the "account_id" field.
func (m *CommChannelMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *CommChannelMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *CommChannelMutation) ResetAccountID() {
	m.account = nil
}

// SetCommType sets the "comm_type" field.
func (m *CommChannelMutation) SetCommType(ct commchannel.CommType) {
	m.comm_type = &ct
}

// CommType returns the value of the "comm_type" field in the mutation.
func (m *CommChannelMutation) CommType() (r commchannel.CommType, exists bool) {
	v := m.comm_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommType returns the old "comm_type" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldCommType(ctx context.Context) (v commchannel.CommType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommType: %w", err)
	}
	return oldValue.CommType, nil
}

// ResetCommType resets all changes to the "comm_type" field.
func (m *CommChannelMutation) ResetCommType() {
	m.comm_type = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *CommChannelMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *CommChannelMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *CommChannelMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetValidationToken sets the "validation_token" field.
func (m *CommChannelMutation) SetValidationToken(s string) {
	m.validation_token = &s
}

// ValidationToken returns the value of the "validation_token" field in the mutation.
func (m *CommChannelMutation) ValidationToken() (r string, exists bool) {
	v := m.validation_token
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationToken returns the old "validation_token" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldValidationToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationToken: %w", err)
	}
	return oldValue.ValidationToken, nil
}

// ResetValidationToken resets all changes to the "validation_token" field.
func (m *CommChannelMutation) ResetValidationToken() {
	m.validation_token = nil
}

// SetValidationDate sets the "validation_date" field.
func (m *CommChannelMutation) SetValidationDate(t time.Time) {
	m.validation_date = &t
}

// ValidationDate returns the value of the "validation_date" field in the mutation.
func (m *CommChannelMutation) ValidationDate() (r time.Time, exists bool) {
	v := m.validation_date
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationDate returns the old "validation_date" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldValidationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationDate: %w", err)
	}
	return oldValue.ValidationDate, nil
}

// ClearValidationDate clears the value of the "validation_date" field.
func (m *CommChannelMutation) ClearValidationDate() {
	m.validation_date = nil
	m.clearedFields[commchannel.FieldValidationDate] = struct{}{}
}

// ValidationDateCleared returns if the "validation_date" field was cleared in this mutation.
func (m *CommChannelMutation) ValidationDateCleared() bool {
	_, ok := m.clearedFields[commchannel.FieldValidationDate]
	return ok
}

// ResetValidationDate resets all changes to the "validation_date" field.
func (m *CommChannelMutation) ResetValidationDate() {
	m.validation_date = nil
	delete(m.clearedFields, commchannel.FieldValidationDate)
}

// SetMessageSentDate sets the "message_sent_date" field.
func (m *CommChannelMutation) SetMessageSentDate(t time.Time) {
	m.message_sent_date = &t
}

// MessageSentDate returns the value of the "message_sent_date" field in the mutation.
func (m *CommChannelMutation) MessageSentDate() (r time.Time, exists bool) {
	v := m.message_sent_date
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageSentDate returns the old "message_sent_date" field's value of the CommChannel entity.
// If the CommChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommChannelMutation) OldMessageSentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageSentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageSentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageSentDate: %w", err)
	}
	return oldValue.MessageSentDate, nil
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (m *CommChannelMutation) ClearMessageSentDate() {
	m.message_sent_date = nil
	m.clearedFields[commchannel.FieldMessageSentDate] = struct{}{}
}

// MessageSentDateCleared returns if the "message_sent_date" field was cleared in this mutation.
func (m *CommChannelMutation) MessageSentDateCleared() bool {
	_, ok := m.clearedFields[commchannel.FieldMessageSentDate]
	return ok
}

// ResetMessageSentDate resets all changes to the "message_sent_date" field.
func (m *CommChannelMutation) ResetMessageSentDate() {
	m.message_sent_date = nil
	delete(m.clearedFields, commchannel.FieldMessageSentDate)
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *CommChannelMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[commchannel.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *CommChannelMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *CommChannelMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *CommChannelMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the CommChannelMutation builder.
func (m *CommChannelMutation) Where(ps ...predicate.CommChannel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommChannel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommChannel).
func (m *CommChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommChannelMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, commchannel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, commchannel.FieldUpdatedAt)
	}
	if m.account != nil {
		fields = append(fields, commchannel.FieldAccountID)
	}
	if m.comm_type != nil {
		fields = append(fields, commchannel.FieldCommType)
	}
	if m.endpoint != nil {
		fields = append(fields, commchannel.FieldEndpoint)
	}
	if m.validation_token != nil {
		fields = append(fields, commchannel.FieldValidationToken)
	}
	if m.validation_date != nil {
		fields = append(fields, commchannel.FieldValidationDate)
	}
	if m.message_sent_date != nil {
		fields = append(fields, commchannel.FieldMessageSentDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commchannel.FieldCreatedAt:
		return m.CreatedAt()
	case commchannel.FieldUpdatedAt:
		return m.UpdatedAt()
	case commchannel.FieldAccountID:
		return m.AccountID()
	case commchannel.FieldCommType:
		return m.CommType()
	case commchannel.FieldEndpoint:
		return m.Endpoint()
	case commchannel.FieldValidationToken:
		return m.ValidationToken()
	case commchannel.FieldValidationDate:
		return m.ValidationDate()
	case commchannel.FieldMessageSentDate:
		return m.MessageSentDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commchannel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commchannel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case commchannel.FieldAccountID:
		return m.OldAccountID(ctx)
	case commchannel.FieldCommType:
		return m.OldCommType(ctx)
	case commchannel.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case commchannel.FieldValidationToken:
		return m.OldValidationToken(ctx)
	case commchannel.FieldValidationDate:
		return m.OldValidationDate(ctx)
	case commchannel.FieldMessageSentDate:
		return m.OldMessageSentDate(ctx)
	}
	return nil, fmt.Errorf("unknown CommChannel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commchannel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commchannel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case commchannel.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case commchannel.FieldCommType:
		v, ok := value.(commchannel.CommType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommType(v)
		return nil
	case commchannel.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case commchannel.FieldValidationToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationToken(v)
		return nil
	case commchannel.FieldValidationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationDate(v)
		return nil
	case commchannel.FieldMessageSentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageSentDate(v)
		return nil
	}
	return fmt.Errorf("unknown CommChannel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommChannel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commchannel.FieldValidationDate) {
		fields = append(fields, commchannel.FieldValidationDate)
	}
	if m.FieldCleared(commchannel.FieldMessageSentDate) {
		fields = append(fields, commchannel.FieldMessageSentDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommChannelMutation) ClearField(name string) error {
	switch name {
	case commchannel.FieldValidationDate:
		m.ClearValidationDate()
		return nil
	case commchannel.FieldMessageSentDate:
		m.ClearMessageSentDate()
		return nil
	}
	return fmt.Errorf("unknown CommChannel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommChannelMutation) ResetField(name string) error {
	switch name {
	case commchannel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commchannel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case commchannel.FieldAccountID:
		m.ResetAccountID()
		return nil
	case commchannel.FieldCommType:
		m.ResetCommType()
		return nil
	case commchannel.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case commchannel.FieldValidationToken:
		m.ResetValidationToken()
		return nil
	case commchannel.FieldValidationDate:
		m.ResetValidationDate()
		return nil
	case commchannel.FieldMessageSentDate:
		m.ResetMessageSentDate()
		return nil
	}
	return fmt.Errorf("unknown CommChannel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, commchannel.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commchannel.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommChannelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, commchannel.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case commchannel.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommChannelMutation) ClearEdge(name string) error {
	switch name {
	case commchannel.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown CommChannel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommChannelMutation) ResetEdge(name string) error {
	switch name {
	case commchannel.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown CommChannel edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	start         *time.Time
	end           *time.Time
	timezone      *string
	privacy       *event.Privacy
	status        *event.Status
	location      *string
	lat           *float64
	addlat        *float64
	lon           *float64
	addlon        *float64
	is_all_day    *bool
	clearedFields map[string]struct{}
	owner         *string
	clearedowner  bool
	guests        map[string]struct{}
	removedguests map[string]struct{}
	clearedguests bool
	albums        map[string]struct{}
	removedalbums map[string]struct{}
	clearedalbums bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *EventMutation) SetOwnerID(s string) {
	m.owner = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *EventMutation) OwnerID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *EventMutation) ResetOwnerID() {
	m.owner = nil
}

// SetTitle sets the "title" field.
func (m *EventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EventMutation) ResetTitle() {
	m.title = nil
}

// SetStart sets the "start" field.
func (m *EventMutation) SetStart(t time.Time) {
	m.start = &t
}

// Start returns the value of the "start" field in the mutation.
func (m *EventMutation) Start() (r time.Time, exists bool) {
	v := m.start
	if v == nil {
		return
	}
	return *v, true
}

// OldStart returns the old "start" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStart: %w", err)
	}
	return oldValue.Start, nil
}

// ResetStart resets all changes to the "start" field.
func (m *EventMutation) ResetStart() {
	m.start = nil
}

// SetEnd sets the "end" field.
func (m *EventMutation) SetEnd(t time.Time) {
	m.end = &t
}

// End returns the value of the "end" field in the mutation.
func (m *EventMutation) End() (r time.Time, exists bool) {
	v := m.end
	if v == nil {
		return
	}
	return *v, true
}

// OldEnd returns the old "end" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnd: %w", err)
	}
	return oldValue.End, nil
}

// ResetEnd resets all changes to the "end" field.
func (m *EventMutation) ResetEnd() {
	m.end = nil
}

// SetTimezone sets the "timezone" field.
func (m *EventMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *EventMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *EventMutation) ResetTimezone() {
	m.timezone = nil
}

// SetPrivacy sets the "privacy" field.
func (m *EventMutation) SetPrivacy(e event.Privacy) {
	m.privacy = &e
}

// Privacy returns the value of the "privacy" field in the mutation.
func (m *EventMutation) Privacy() (r event.Privacy, exists bool) {
	v := m.privacy
	if v == nil {
		return
	}
	return *v, true
}

// OldPrivacy returns the old "privacy" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPrivacy(ctx context.Context) (v event.Privacy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrivacy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrivacy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrivacy: %w", err)
	}
	return oldValue.Privacy, nil
}

// ResetPrivacy resets all changes to the "privacy" field.
func (m *EventMutation) ResetPrivacy() {
	m.privacy = nil
}

// SetStatus sets the "status" field.
func (m *EventMutation) SetStatus(e event.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventMutation) Status() (r event.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStatus(ctx context.Context) (v event.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EventMutation) ResetStatus() {
	m.status = nil
}

// SetLocation sets the "location" field.
func (m *EventMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *EventMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *EventMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[event.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *EventMutation) LocationCleared() bool {
	_, ok := m.clearedFields[event.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *EventMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, event.FieldLocation)
}

// SetLat sets the "lat" field.
func (m *EventMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *EventMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *EventMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *EventMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *EventMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[event.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *EventMutation) LatCleared() bool {
	_, ok := m.clearedFields[event.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *EventMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, event.FieldLat)
}

// SetLon sets the "lon" field.
func (m *EventMutation) SetLon(f float64) {
	m.lon = &f
	m.addlon = nil
}

// Lon returns the value of the "lon" field in the mutation.
func (m *EventMutation) Lon() (r float64, exists bool) {
	v := m.lon
	if v == nil {
		return
	}
	return *v, true
}

// OldLon returns the old "lon" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLon(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLon: %w", err)
	}
	return oldValue.Lon, nil
}

// AddLon adds f to the "lon" field.
func (m *EventMutation) AddLon(f float64) {
	if m.addlon != nil {
		*m.addlon += f
	} else {
		m.addlon = &f
	}
}

// AddedLon returns the value that was added to the "lon" field in this mutation.
func (m *EventMutation) AddedLon() (r float64, exists bool) {
	v := m.addlon
	if v == nil {
		return
	}
	return *v, true
}

// ClearLon clears the value of the "lon" field.
func (m *EventMutation) ClearLon() {
	m.lon = nil
	m.addlon = nil
	m.clearedFields[event.FieldLon] = struct{}{}
}

// LonCleared returns if the "lon" field was cleared in this mutation.
func (m *EventMutation) LonCleared() bool {
	_, ok := m.clearedFields[event.FieldLon]
	return ok
}

// ResetLon resets all changes to the "lon" field.
func (m *EventMutation) ResetLon() {
	m.lon = nil
	m.addlon = nil
	delete(m.clearedFields, event.FieldLon)
}

// SetIsAllDay sets the "is_all_day" field.
func (m *EventMutation) SetIsAllDay(b bool) {
	m.is_all_day = &b
}

// IsAllDay returns the value of the "is_all_day" field in the mutation.
func (m *EventMutation) IsAllDay() (r bool, exists bool) {
	v := m.is_all_day
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAllDay returns the old "is_all_day" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIsAllDay(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAllDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAllDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAllDay: %w", err)
	}
	return oldValue.IsAllDay, nil
}

// ResetIsAllDay resets all changes to the "is_all_day" field.
func (m *EventMutation) ResetIsAllDay() {
	m.is_all_day = nil
}

// ClearOwner clears the "owner" edge to the Account entity.
func (m *EventMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[event.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the Account entity was cleared.
func (m *EventMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *EventMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *EventMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddGuestIDs adds the "guests" edge to the EventGuest entity by ids.
func (m *EventMutation) AddGuestIDs(ids ...string) {
	if m.guests == nil {
		m.guests = make(map[string]struct{})
	}
	for i := range ids {
		m.guests[ids[i]] = struct{}{}
	}
}

// ClearGuests clears the "guests" edge to the EventGuest entity.
func (m *EventMutation) ClearGuests() {
	m.clearedguests = true
}

// GuestsCleared reports if the "guests" edge to the EventGuest entity was cleared.
func (m *EventMutation) GuestsCleared() bool {
	return m.clearedguests
}

// RemoveGuestIDs removes the "guests" edge to the EventGuest entity by IDs.
func (m *EventMutation) RemoveGuestIDs(ids ...string) {
	if m.removedguests == nil {
		m.removedguests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.guests, ids[i])
		m.removedguests[ids[i]] = struct{}{}
	}
}

// RemovedGuests returns the removed IDs of the "guests" edge to the EventGuest entity.
func (m *EventMutation) RemovedGuestsIDs() (ids []string) {
	for id := range m.removedguests {
		ids = append(ids, id)
	}
	return
}

// GuestsIDs returns the "guests" edge IDs in the mutation.
func (m *EventMutation) GuestsIDs() (ids []string) {
	for id := range m.guests {
		ids = append(ids, id)
	}
	return
}

// ResetGuests resets all changes to the "guests" edge.
func (m *EventMutation) ResetGuests() {
	m.guests = nil
	m.clearedguests = false
	m.removedguests = nil
}

// AddAlbumIDs adds the "albums" edge to the Album entity by ids.
func (m *EventMutation) AddAlbumIDs(ids ...string) {
	if m.albums == nil {
		m.albums = make(map[string]struct{})
	}
	for i := range ids {
		m.albums[ids[i]] = struct{}{}
	}
}

// ClearAlbums clears the "albums" edge to the Album entity.
func (m *EventMutation) ClearAlbums() {
	m.clearedalbums = true
}

// AlbumsCleared reports if the "albums" edge to the Album entity was cleared.
func (m *EventMutation) AlbumsCleared() bool {
	return m.clearedalbums
}

// RemoveAlbumIDs removes the "albums" edge to the Album entity by IDs.
func (m *EventMutation) RemoveAlbumIDs(ids ...string) {
	if m.removedalbums == nil {
		m.removedalbums = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.albums, ids[i])
		m.removedalbums[ids[i]] = struct{}{}
	}
}

// RemovedAlbums returns the removed IDs of the "albums" edge to the Album entity.
func (m *EventMutation) RemovedAlbumsIDs() (ids []string) {
	for id := range m.removedalbums {
		ids = append(ids, id)
	}
	return
}

// AlbumsIDs returns the "albums" edge IDs in the mutation.
func (m *EventMutation) AlbumsIDs() (ids []string) {
	for id := range m.albums {
		ids = append(ids, id)
	}
	return
}

// ResetAlbums resets all changes to the "albums" edge.
func (m *EventMutation) ResetAlbums() {
	m.albums = nil
	m.clearedalbums = false
	m.removedalbums = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	if m.owner != nil {
		fields = append(fields, event.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, event.FieldTitle)
	}
	if m.start != nil {
		fields = append(fields, event.FieldStart)
	}
	if m.end != nil {
		fields = append(fields, event.FieldEnd)
	}
	if m.timezone != nil {
		fields = append(fields, event.FieldTimezone)
	}
	if m.privacy != nil {
		fields = append(fields, event.FieldPrivacy)
	}
	if m.status != nil {
		fields = append(fields, event.FieldStatus)
	}
	if m.location != nil {
		fields = append(fields, event.FieldLocation)
	}
	if m.lat != nil {
		fields = append(fields, event.FieldLat)
	}
	if m.lon != nil {
		fields = append(fields, event.FieldLon)
	}
	if m.is_all_day != nil {
		fields = append(fields, event.FieldIsAllDay)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	case event.FieldOwnerID:
		return m.OwnerID()
	case event.FieldTitle:
		return m.Title()
	case event.FieldStart:
		return m.Start()
	case event.FieldEnd:
		return m.End()
	case event.FieldTimezone:
		return m.Timezone()
	case event.FieldPrivacy:
		return m.Privacy()
	case event.FieldStatus:
		return m.Status()
	case event.FieldLocation:
		return m.Location()
	case event.FieldLat:
		return m.Lat()
	case event.FieldLon:
		return m.Lon()
	case event.FieldIsAllDay:
		return m.IsAllDay()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case event.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case event.FieldTitle:
		return m.OldTitle(ctx)
	case event.FieldStart:
		return m.OldStart(ctx)
	case event.FieldEnd:
		return m.OldEnd(ctx)
	case event.FieldTimezone:
		return m.OldTimezone(ctx)
	case event.FieldPrivacy:
		return m.OldPrivacy(ctx)
	case event.FieldStatus:
		return m.OldStatus(ctx)
	case event.FieldLocation:
		return m.OldLocation(ctx)
	case event.FieldLat:
		return m.OldLat(ctx)
	case event.FieldLon:
		return m.OldLon(ctx)
	case event.FieldIsAllDay:
		return m.OldIsAllDay(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case event.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case event.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case event.FieldStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStart(v)
		return nil
	case event.FieldEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnd(v)
		return nil
	case event.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case event.FieldPrivacy:
		v, ok := value.(event.Privacy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrivacy(v)
		return nil
	case event.FieldStatus:
		v, ok := value.(event.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case event.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case event.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case event.FieldLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLon(v)
		return nil
	case event.FieldIsAllDay:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAllDay(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, event.FieldLat)
	}
	if m.addlon != nil {
		fields = append(fields, event.FieldLon)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldLat:
		return m.AddedLat()
	case event.FieldLon:
		return m.AddedLon()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case event.FieldLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLon(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldLocation) {
		fields = append(fields, event.FieldLocation)
	}
	if m.FieldCleared(event.FieldLat) {
		fields = append(fields, event.FieldLat)
	}
	if m.FieldCleared(event.FieldLon) {
		fields = append(fields, event.FieldLon)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldLocation:
		m.ClearLocation()
		return nil
	case event.FieldLat:
		m.ClearLat()
		return nil
	case event.FieldLon:
		m.ClearLon()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case event.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case event.FieldTitle:
		m.ResetTitle()
		return nil
	case event.FieldStart:
		m.ResetStart()
		return nil
	case event.FieldEnd:
		m.ResetEnd()
		return nil
	case event.FieldTimezone:
		m.ResetTimezone()
		return nil
	case event.FieldPrivacy:
		m.ResetPrivacy()
		return nil
	case event.FieldStatus:
		m.ResetStatus()
		return nil
	case event.FieldLocation:
		m.ResetLocation()
		return nil
	case event.FieldLat:
		m.ResetLat()
		return nil
	case event.FieldLon:
		m.ResetLon()
		return nil
	case event.FieldIsAllDay:
		m.ResetIsAllDay()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, event.EdgeOwner)
	}
	if m.guests != nil {
		edges = append(edges, event.EdgeGuests)
	}
	if m.albums != nil {
		edges = append(edges, event.EdgeAlbums)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeGuests:
		ids := make([]ent.Value, 0, len(m.guests))
		for id := range m.guests {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.albums))
		for id := range m.albums {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedguests != nil {
		edges = append(edges, event.EdgeGuests)
	}
	if m.removedalbums != nil {
		edges = append(edges, event.EdgeAlbums)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeGuests:
		ids := make([]ent.Value, 0, len(m.removedguests))
		for id := range m.removedguests {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeAlbums:
		ids := make([]ent.Value, 0, len(m.removedalbums))
		for id := range m.removedalbums {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, event.EdgeOwner)
	}
	if m.clearedguests {
		edges = append(edges, event.EdgeGuests)
	}
	if m.clearedalbums {
		edges = append(edges, event.EdgeAlbums)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeOwner:
		return m.clearedowner
	case event.EdgeGuests:
		return m.clearedguests
	case event.EdgeAlbums:
		return m.clearedalbums
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeOwner:
		m.ResetOwner()
		return nil
	case event.EdgeGuests:
		m.ResetGuests()
		return nil
	case event.EdgeAlbums:
		m.ResetAlbums()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// EventGuestMutation represents an operation that mutates the EventGuest nodes in the graph.
type EventGuestMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	name           *string
	rsvp           *eventguest.Rsvp
	token          *string
	clearedFields  map[string]struct{}
	event          *string
	clearedevent   bool
	account        *string
	clearedaccount bool
	done           bool
	oldValue       func(context.Context) (*EventGuest, error)
	predicates     []predicate.EventGuest
}

var _ ent.Mutation = (*EventGuestMutation)(nil)

// eventguestOption allows management of the mutation configuration using functional options.
type eventguestOption func(*EventGuestMutation)

// newEventGuestMutation creates new mutation for the EventGuest entity.
func newEventGuestMutation(c config, op Op, opts ...eventguestOption) *EventGuestMutation {
	m := &EventGuestMutation{
		config:        c,
		op:            op,
		typ:           TypeEventGuest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventGuestID sets the ID field of the mutation.
func withEventGuestID(id string) eventguestOption {
	return func(m *EventGuestMutation) {
		var (
			err   error
			once  sync.Once
			value *EventGuest
		)
		m.oldValue = func(ctx context.Context) (*EventGuest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventGuest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventGuest sets the old EventGuest of the mutation.
func withEventGuest(node *EventGuest) eventguestOption {
	return func(m *EventGuestMutation) {
		m.oldValue = func(context.Context) (*EventGuest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventGuestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventGuestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventGuest entities.
func (m *EventGuestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventGuestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventGuestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventGuest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EventGuestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventGuestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventGuestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventGuestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventGuestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventGuestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEventID sets the "event_id" field.
func (m *EventGuestMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventGuestMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventGuestMutation) ResetEventID() {
	m.event = nil
}

// SetAccountID sets the "account_id" field.
func (m *EventGuestMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *EventGuestMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *EventGuestMutation) ResetAccountID() {
	m.account = nil
}

// SetName sets the "name" field.
func (m *EventGuestMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EventGuestMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *EventGuestMutation) ClearName() {
	m.name = nil
	m.clearedFields[eventguest.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *EventGuestMutation) NameCleared() bool {
	_, ok := m.clearedFields[eventguest.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *EventGuestMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, eventguest.FieldName)
}

// SetRsvp sets the "rsvp" field.
func (m *EventGuestMutation) SetRsvp(e eventguest.Rsvp) {
	m.rsvp = &e
}

// Rsvp returns the value of the "rsvp" field in the mutation.
func (m *EventGuestMutation) Rsvp() (r eventguest.Rsvp, exists bool) {
	v := m.rsvp
	if v == nil {
		return
	}
	return *v, true
}

// OldRsvp returns the old "rsvp" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldRsvp(ctx context.Context) (v eventguest.Rsvp, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRsvp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRsvp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRsvp: %w", err)
	}
	return oldValue.Rsvp, nil
}

// ResetRsvp resets all changes to the "rsvp" field.
func (m *EventGuestMutation) ResetRsvp() {
	m.rsvp = nil
}

// SetToken sets the "token" field.
func (m *EventGuestMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *EventGuestMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the EventGuest entity.
// If the EventGuest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGuestMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *EventGuestMutation) ResetToken() {
	m.token = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *EventGuestMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[eventguest.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *EventGuestMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *EventGuestMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *EventGuestMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *EventGuestMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[eventguest.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *EventGuestMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *EventGuestMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *EventGuestMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the EventGuestMutation builder.
func (m *EventGuestMutation) Where(ps ...predicate.EventGuest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventGuestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventGuestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventGuest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventGuestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventGuestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventGuest).
func (m *EventGuestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventGuestMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, eventguest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, eventguest.FieldUpdatedAt)
	}
	if m.event != nil {
		fields = append(fields, eventguest.FieldEventID)
	}
	if m.account != nil {
		fields = append(fields, eventguest.FieldAccountID)
	}
	if m.name != nil {
		fields = append(fields, eventguest.FieldName)
	}
	if m.rsvp != nil {
		fields = append(fields, eventguest.FieldRsvp)
	}
	if m.token != nil {
		fields = append(fields, eventguest.FieldToken)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventGuestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventguest.FieldCreatedAt:
		return m.CreatedAt()
	case eventguest.FieldUpdatedAt:
		return m.UpdatedAt()
	case eventguest.FieldEventID:
		return m.EventID()
	case eventguest.FieldAccountID:
		return m.AccountID()
	case eventguest.FieldName:
		return m.Name()
	case eventguest.FieldRsvp:
		return m.Rsvp()
	case eventguest.FieldToken:
		return m.Token()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventGuestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventguest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case eventguest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case eventguest.FieldEventID:
		return m.OldEventID(ctx)
	case eventguest.FieldAccountID:
		return m.OldAccountID(ctx)
	case eventguest.FieldName:
		return m.OldName(ctx)
	case eventguest.FieldRsvp:
		return m.OldRsvp(ctx)
	case eventguest.FieldToken:
		return m.OldToken(ctx)
	}
	return nil, fmt.Errorf("unknown EventGuest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventGuestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventguest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case eventguest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case eventguest.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventguest.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case eventguest.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case eventguest.FieldRsvp:
		v, ok := value.(eventguest.Rsvp)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRsvp(v)
		return nil
	case eventguest.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	}
	return fmt.Errorf("unknown EventGuest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventGuestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventGuestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventGuestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventGuest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventGuestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventguest.FieldName) {
		fields = append(fields, eventguest.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventGuestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventGuestMutation) ClearField(name string) error {
	switch name {
	case eventguest.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown EventGuest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventGuestMutation) ResetField(name string) error {
	switch name {
	case eventguest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case eventguest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case eventguest.FieldEventID:
		m.ResetEventID()
		return nil
	case eventguest.FieldAccountID:
		m.ResetAccountID()
		return nil
	case eventguest.FieldName:
		m.ResetName()
		return nil
	case eventguest.FieldRsvp:
		m.ResetRsvp()
		return nil
	case eventguest.FieldToken:
		m.ResetToken()
		return nil
	}
	return fmt.Errorf("unknown EventGuest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventGuestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.event != nil {
		edges = append(edges, eventguest.EdgeEvent)
	}
	if m.account != nil {
		edges = append(edges, eventguest.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventGuestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventguest.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case eventguest.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventGuestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventGuestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventGuestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevent {
		edges = append(edges, eventguest.EdgeEvent)
	}
	if m.clearedaccount {
		edges = append(edges, eventguest.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventGuestMutation) EdgeCleared(name string) bool {
	switch name {
	case eventguest.EdgeEvent:
		return m.clearedevent
	case eventguest.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventGuestMutation) ClearEdge(name string) error {
	switch name {
	case eventguest.EdgeEvent:
		m.ClearEvent()
		return nil
	case eventguest.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown EventGuest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventGuestMutation) ResetEdge(name string) error {
	switch name {
	case eventguest.EdgeEvent:
		m.ResetEvent()
		return nil
	case eventguest.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown EventGuest edge %s", name)
}

// InAppNotificationMutation represents an operation that mutates the InAppNotification nodes in the graph.
type InAppNotificationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	notification_type *inappnotification.NotificationType
	subject_kind      *inappnotification.SubjectKind
	subject_id        *string
	clearedFields     map[string]struct{}
	sender            *string
	clearedsender     bool
	recipient         *string
	clearedrecipient  bool
	done              bool
	oldValue          func(context.Context) (*InAppNotification, error)
	predicates        []predicate.InAppNotification
}

var _ ent.Mutation = (*InAppNotificationMutation)(nil)

// inappnotificationOption allows management of the mutation configuration using functional options.
type inappnotificationOption func(*InAppNotificationMutation)

// newInAppNotificationMutation creates new mutation for the InAppNotification entity.
func newInAppNotificationMutation(c config, op Op, opts ...inappnotificationOption) *InAppNotificationMutation {
	m := &InAppNotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeInAppNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInAppNotificationID sets the ID field of the mutation.
func withInAppNotificationID(id string) inappnotificationOption {
	return func(m *InAppNotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *InAppNotification
		)
		m.oldValue = func(ctx context.Context) (*InAppNotification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InAppNotification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInAppNotification sets the old InAppNotification of the mutation.
func withInAppNotification(node *InAppNotification) inappnotificationOption {
	return func(m *InAppNotificationMutation) {
		m.oldValue = func(context.Context) (*InAppNotification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InAppNotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InAppNotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InAppNotification entities.
func (m *InAppNotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InAppNotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InAppNotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InAppNotification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InAppNotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InAppNotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InAppNotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSenderID sets the "sender_id" field.
func (m *InAppNotificationMutation) SetSenderID(s string) {
	m.sender = &s
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *InAppNotificationMutation) SenderID() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldSenderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *InAppNotificationMutation) ResetSenderID() {
	m.sender = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *InAppNotificationMutation) SetRecipientID(s string) {
	m.recipient = &s
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *InAppNotificationMutation) RecipientID() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldRecipientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *InAppNotificationMutation) ResetRecipientID() {
	m.recipient = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *InAppNotificationMutation) SetNotificationType(it inappnotification.NotificationType) {
	m.notification_type = &it
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *InAppNotificationMutation) NotificationType() (r inappnotification.NotificationType, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldNotificationType(ctx context.Context) (v inappnotification.NotificationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *InAppNotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetSubjectKind sets the "subject_kind" field.
func (m *InAppNotificationMutation) SetSubjectKind(ik inappnotification.SubjectKind) {
	m.subject_kind = &ik
}

// SubjectKind returns the value of the "subject_kind" field in the mutation.
func (m *InAppNotificationMutation) SubjectKind() (r inappnotification.SubjectKind, exists bool) {
	v := m.subject_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectKind returns the old "subject_kind" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldSubjectKind(ctx context.Context) (v inappnotification.SubjectKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectKind: %w", err)
	}
	return oldValue.SubjectKind, nil
}

// ResetSubjectKind resets all changes to the "subject_kind" field.
func (m *InAppNotificationMutation) ResetSubjectKind() {
	m.subject_kind = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *InAppNotificationMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *InAppNotificationMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *InAppNotificationMutation) ResetSubjectID() {
	m.subject_id = nil
}

// ClearSender clears the "sender" edge to the Account entity.
func (m *InAppNotificationMutation) ClearSender() {
	m.clearedsender = true
	m.clearedFields[inappnotification.FieldSenderID] = struct{}{}
}

// SenderCleared reports if the "sender" edge to the Account entity was cleared.
func (m *InAppNotificationMutation) SenderCleared() bool {
	return m.clearedsender
}

// SenderIDs returns the "sender" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SenderID instead. It exists only for internal usage by the builders.
func (m *InAppNotificationMutation) SenderIDs() (ids []string) {
	if id := m.sender; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSender resets all changes to the "sender" edge.
func (m *InAppNotificationMutation) ResetSender() {
	m.sender = nil
	m.clearedsender = false
}

// ClearRecipient clears the "recipient" edge to the Account entity.
func (m *InAppNotificationMutation) ClearRecipient() {
	m.clearedrecipient = true
	m.clearedFields[inappnotification.FieldRecipientID] = struct{}{}
}

// RecipientCleared reports if the "recipient" edge to the Account entity was cleared.
func (m *InAppNotificationMutation) RecipientCleared() bool {
	return m.clearedrecipient
}

// RecipientIDs returns the "recipient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipientID instead. It exists only for internal usage by the builders.
func (m *InAppNotificationMutation) RecipientIDs() (ids []string) {
	if id := m.recipient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipient resets all changes to the "recipient" edge.
func (m *InAppNotificationMutation) ResetRecipient() {
	m.recipient = nil
	m.clearedrecipient = false
}

// Where appends a list predicates to the InAppNotificationMutation builder.
func (m *InAppNotificationMutation) Where(ps ...predicate.InAppNotification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InAppNotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InAppNotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InAppNotification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InAppNotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InAppNotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InAppNotification).
func (m *InAppNotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InAppNotificationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, inappnotification.FieldCreatedAt)
	}
	if m.sender != nil {
		fields = append(fields, inappnotification.FieldSenderID)
	}
	if m.recipient != nil {
		fields = append(fields, inappnotification.FieldRecipientID)
	}
	if m.notification_type != nil {
		fields = append(fields, inappnotification.FieldNotificationType)
	}
	if m.subject_kind != nil {
		fields = append(fields, inappnotification.FieldSubjectKind)
	}
	if m.subject_id != nil {
		fields = append(fields, inappnotification.FieldSubjectID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InAppNotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inappnotification.FieldCreatedAt:
		return m.CreatedAt()
	case inappnotification.FieldSenderID:
		return m.SenderID()
	case inappnotification.FieldRecipientID:
		return m.RecipientID()
	case inappnotification.FieldNotificationType:
		return m.NotificationType()
	case inappnotification.FieldSubjectKind:
		return m.SubjectKind()
	case inappnotification.FieldSubjectID:
		return m.SubjectID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InAppNotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inappnotification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inappnotification.FieldSenderID:
		return m.OldSenderID(ctx)
	case inappnotification.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case inappnotification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case inappnotification.FieldSubjectKind:
		return m.OldSubjectKind(ctx)
	case inappnotification.FieldSubjectID:
		return m.OldSubjectID(ctx)
	}
	return nil, fmt.Errorf("unknown InAppNotification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InAppNotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inappnotification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inappnotification.FieldSenderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case inappnotification.FieldRecipientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case inappnotification.FieldNotificationType:
		v, ok := value.(inappnotification.NotificationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case inappnotification.FieldSubjectKind:
		v, ok := value.(inappnotification.SubjectKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectKind(v)
		return nil
	case inappnotification.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	}
	return fmt.Errorf("unknown InAppNotification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InAppNotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InAppNotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InAppNotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InAppNotification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InAppNotificationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InAppNotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InAppNotificationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InAppNotification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InAppNotificationMutation) ResetField(name string) error {
	switch name {
	case inappnotification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inappnotification.FieldSenderID:
		m.ResetSenderID()
		return nil
	case inappnotification.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case inappnotification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case inappnotification.FieldSubjectKind:
		m.ResetSubjectKind()
		return nil
	case inappnotification.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	}
	return fmt.Errorf("unknown InAppNotification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InAppNotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sender != nil {
		edges = append(edges, inappnotification.EdgeSender)
	}
	if m.recipient != nil {
		edges = append(edges, inappnotification.EdgeRecipient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InAppNotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inappnotification.EdgeSender:
		if id := m.sender; id != nil {
			return []ent.Value{*id}
		}
	case inappnotification.EdgeRecipient:
		if id := m.recipient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InAppNotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InAppNotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InAppNotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsender {
		edges = append(edges, inappnotification.EdgeSender)
	}
	if m.clearedrecipient {
		edges = append(edges, inappnotification.EdgeRecipient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InAppNotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case inappnotification.EdgeSender:
		return m.clearedsender
	case inappnotification.EdgeRecipient:
		return m.clearedrecipient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InAppNotificationMutation) ClearEdge(name string) error {
	switch name {
	case inappnotification.EdgeSender:
		m.ClearSender()
		return nil
	case inappnotification.EdgeRecipient:
		m.ClearRecipient()
		return nil
	}
	return fmt.Errorf("unknown InAppNotification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InAppNotificationMutation) ResetEdge(name string) error {
	switch name {
	case inappnotification.EdgeSender:
		m.ResetSender()
		return nil
	case inappnotification.EdgeRecipient:
		m.ResetRecipient()
		return nil
	}
	return fmt.Errorf("unknown InAppNotification edge %s", name)
}

// PasswordResetMutation represents an operation that mutates the PasswordReset nodes in the graph.
type PasswordResetMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	email             *string
	token_salt        *string
	message_sent_date *time.Time
	reset_date        *time.Time
	clearedFields     map[string]struct{}
	account           *string
	clearedaccount    bool
	done              bool
	oldValue          func(context.Context) (*PasswordReset, error)
	predicates        []predicate.PasswordReset
}

var _ ent.Mutation = (*PasswordResetMutation)(nil)

// passwordresetOption allows management of the mutation configuration using functional options.
type passwordresetOption func(*PasswordResetMutation)

// newPasswordResetMutation creates new mutation for the PasswordReset entity.
func newPasswordResetMutation(c config, op Op, opts ...passwordresetOption) *PasswordResetMutation {
	m := &PasswordResetMutation{
		config:        c,
		op:            op,
		typ:           TypePasswordReset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPasswordResetID sets the ID field of the mutation.
func withPasswordResetID(id string) passwordresetOption {
	return func(m *PasswordResetMutation) {
		var (
			err   error
			once  sync.Once
			value *PasswordReset
		)
		m.oldValue = func(ctx context.Context) (*PasswordReset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PasswordReset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPasswordReset sets the old PasswordReset of the mutation.
func withPasswordReset(node *PasswordReset) passwordresetOption {
	return func(m *PasswordResetMutation) {
		m.oldValue = func(context.Context) (*PasswordReset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PasswordResetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PasswordResetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PasswordReset entities.
func (m *PasswordResetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PasswordResetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PasswordResetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PasswordReset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PasswordResetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PasswordResetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PasswordResetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PasswordResetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PasswordResetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PasswordResetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAccountID sets the "account_id" field.
func (m *PasswordResetMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *PasswordResetMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *PasswordResetMutation) ResetAccountID() {
	m.account = nil
}

// SetEmail sets the "email" field.
func (m *PasswordResetMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PasswordResetMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *PasswordResetMutation) ResetEmail() {
	m.email = nil
}

// SetTokenSalt sets the "token_salt" field.
func (m *PasswordResetMutation) SetTokenSalt(s string) {
	m.token_salt = &s
}

// TokenSalt returns the value of the "token_salt" field in the mutation.
func (m *PasswordResetMutation) TokenSalt() (r string, exists bool) {
	v := m.token_salt
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenSalt returns the old "token_salt" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldTokenSalt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenSalt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenSalt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenSalt: %w", err)
	}
	return oldValue.TokenSalt, nil
}

// ResetTokenSalt resets all changes to the "token_salt" field.
func (m *PasswordResetMutation) ResetTokenSalt() {
	m.token_salt = nil
}

// SetMessageSentDate sets the "message_sent_date" field.
func (m *PasswordResetMutation) SetMessageSentDate(t time.Time) {
	m.message_sent_date = &t
}

// MessageSentDate returns the value of the "message_sent_date" field in the mutation.
func (m *PasswordResetMutation) MessageSentDate() (r time.Time, exists bool) {
	v := m.message_sent_date
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageSentDate returns the old "message_sent_date" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldMessageSentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageSentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageSentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageSentDate: %w", err)
	}
	return oldValue.MessageSentDate, nil
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (m *PasswordResetMutation) ClearMessageSentDate() {
	m.message_sent_date = nil
	m.clearedFields[passwordreset.FieldMessageSentDate] = struct{}{}
}

// MessageSentDateCleared returns if the "message_sent_date" field was cleared in this mutation.
func (m *PasswordResetMutation) MessageSentDateCleared() bool {
	_, ok := m.clearedFields[passwordreset.FieldMessageSentDate]
	return ok
}

// ResetMessageSentDate resets all changes to the "message_sent_date" field.
func (m *PasswordResetMutation) ResetMessageSentDate() {
	m.message_sent_date = nil
	delete(m.clearedFields, passwordreset.FieldMessageSentDate)
}

// SetResetDate sets the "reset_date" field.
func (m *PasswordResetMutation) SetResetDate(t time.Time) {
	m.reset_date = &t
}

// ResetDate returns the value of the "reset_date" field in the mutation.
func (m *PasswordResetMutation) ResetDate() (r time.Time, exists bool) {
	v := m.reset_date
	if v == nil {
		return
	}
	return *v, true
}

// OldResetDate returns the old "reset_date" field's value of the PasswordReset entity.
// If the PasswordReset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetMutation) OldResetDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResetDate: %w", err)
	}
	return oldValue.ResetDate, nil
}

// ClearResetDate clears the value of the "reset_date" field.
func (m *PasswordResetMutation) ClearResetDate() {
	m.reset_date = nil
	m.clearedFields[passwordreset.FieldResetDate] = struct{}{}
}

// ResetDateCleared returns if the "reset_date" field was cleared in this mutation.
func (m *PasswordResetMutation) ResetDateCleared() bool {
	_, ok := m.clearedFields[passwordreset.FieldResetDate]
	return ok
}

// ResetResetDate resets all changes to the "reset_date" field.
func (m *PasswordResetMutation) ResetResetDate() {
	m.reset_date = nil
	delete(m.clearedFields, passwordreset.FieldResetDate)
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *PasswordResetMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[passwordreset.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *PasswordResetMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *PasswordResetMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *PasswordResetMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the PasswordResetMutation builder.
func (m *PasswordResetMutation) Where(ps ...predicate.PasswordReset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PasswordResetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PasswordResetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PasswordReset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PasswordResetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PasswordResetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PasswordReset).
func (m *PasswordResetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PasswordResetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, passwordreset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, passwordreset.FieldUpdatedAt)
	}
	if m.account != nil {
		fields = append(fields, passwordreset.FieldAccountID)
	}
	if m.email != nil {
		fields = append(fields, passwordreset.FieldEmail)
	}
	if m.token_salt != nil {
		fields = append(fields, passwordreset.FieldTokenSalt)
	}
	if m.message_sent_date != nil {
		fields = append(fields, passwordreset.FieldMessageSentDate)
	}
	if m.reset_date != nil {
		fields = append(fields, passwordreset.FieldResetDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PasswordResetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passwordreset.FieldCreatedAt:
		return m.CreatedAt()
	case passwordreset.FieldUpdatedAt:
		return m.UpdatedAt()
	case passwordreset.FieldAccountID:
		return m.AccountID()
	case passwordreset.FieldEmail:
		return m.Email()
	case passwordreset.FieldTokenSalt:
		return m.TokenSalt()
	case passwordreset.FieldMessageSentDate:
		return m.MessageSentDate()
	case passwordreset.FieldResetDate:
		return m.ResetDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PasswordResetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passwordreset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case passwordreset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case passwordreset.FieldAccountID:
		return m.OldAccountID(ctx)
	case passwordreset.FieldEmail:
		return m.OldEmail(ctx)
	case passwordreset.FieldTokenSalt:
		return m.OldTokenSalt(ctx)
	case passwordreset.FieldMessageSentDate:
		return m.OldMessageSentDate(ctx)
	case passwordreset.FieldResetDate:
		return m.OldResetDate(ctx)
	}
	return nil, fmt.Errorf("unknown PasswordReset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PasswordResetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passwordreset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case passwordreset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case passwordreset.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case passwordreset.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case passwordreset.FieldTokenSalt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenSalt(v)
		return nil
	case passwordreset.FieldMessageSentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageSentDate(v)
		return nil
	case passwordreset.FieldResetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResetDate(v)
		return nil
	}
	return fmt.Errorf("unknown PasswordReset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PasswordResetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PasswordResetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PasswordResetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PasswordReset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PasswordResetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(passwordreset.FieldMessageSentDate) {
		fields = append(fields, passwordreset.FieldMessageSentDate)
	}
	if m.FieldCleared(passwordreset.FieldResetDate) {
		fields = append(fields, passwordreset.FieldResetDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PasswordResetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PasswordResetMutation) ClearField(name string) error {
	switch name {
	case passwordreset.FieldMessageSentDate:
		m.ClearMessageSentDate()
		return nil
	case passwordreset.FieldResetDate:
		m.ClearResetDate()
		return nil
	}
	return fmt.Errorf("unknown PasswordReset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PasswordResetMutation) ResetField(name string) error {
	switch name {
	case passwordreset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case passwordreset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case passwordreset.FieldAccountID:
		m.ResetAccountID()
		return nil
	case passwordreset.FieldEmail:
		m.ResetEmail()
		return nil
	case passwordreset.FieldTokenSalt:
		m.ResetTokenSalt()
		return nil
	case passwordreset.FieldMessageSentDate:
		m.ResetMessageSentDate()
		return nil
	case passwordreset.FieldResetDate:
		m.ResetResetDate()
		return nil
	}
	return fmt.Errorf("unknown PasswordReset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PasswordResetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, passwordreset.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PasswordResetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case passwordreset.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PasswordResetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PasswordResetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PasswordResetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, passwordreset.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PasswordResetMutation) EdgeCleared(name string) bool {
	switch name {
	case passwordreset.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PasswordResetMutation) ClearEdge(name string) error {
	switch name {
	case passwordreset.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown PasswordReset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PasswordResetMutation) ResetEdge(name string) error {
	switch name {
	case passwordreset.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown PasswordReset edge %s", name)
}

// ThumbnailMutation represents an operation that mutates the Thumbnail nodes in the graph.
type ThumbnailMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	size_type        *int
	addsize_type     *int
	file_url         *string
	width            *int
	addwidth         *int
	height           *int
	addheight        *int
	size_bytes       *int
	addsize_bytes    *int
	clearedFields    map[string]struct{}
	albumfile        *string
	clearedalbumfile bool
	done             bool
	oldValue         func(context.Context) (*Thumbnail, error)
	predicates       []predicate.Thumbnail
}

var _ ent.Mutation = (*ThumbnailMutation)(nil)

// thumbnailOption allows management of the mutation configuration using functional options.
type thumbnailOption func(*ThumbnailMutation)

// newThumbnailMutation creates new mutation for the Thumbnail entity.
func newThumbnailMutation(c config, op Op, opts ...thumbnailOption) *ThumbnailMutation {
	m := &ThumbnailMutation{
		config:        c,
		op:            op,
		typ:           TypeThumbnail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThumbnailID sets the ID field of the mutation.
func withThumbnailID(id string) thumbnailOption {
	return func(m *ThumbnailMutation) {
		var (
			err   error
			once  sync.Once
			value *Thumbnail
		)
		m.oldValue = func(ctx context.Context) (*Thumbnail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Thumbnail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThumbnail sets the old Thumbnail of the mutation.
func withThumbnail(node *Thumbnail) thumbnailOption {
	return func(m *ThumbnailMutation) {
		m.oldValue = func(context.Context) (*Thumbnail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThumbnailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThumbnailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Thumbnail entities.
func (m *ThumbnailMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThumbnailMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThumbnailMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Thumbnail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ThumbnailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThumbnailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThumbnailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ThumbnailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ThumbnailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ThumbnailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAlbumfileID sets the "albumfile_id" field.
func (m *ThumbnailMutation) SetAlbumfileID(s string) {
	m.albumfile = &s
}

// AlbumfileID returns the value of the "albumfile_id" field in the mutation.
func (m *ThumbnailMutation) AlbumfileID() (r string, exists bool) {
	v := m.albumfile
	if v == nil {
		return
	}
	return *v, true
}

// OldAlbumfileID returns the old "albumfile_id" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldAlbumfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlbumfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlbumfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlbumfileID: %w", err)
	}
	return oldValue.AlbumfileID, nil
}

// ResetAlbumfileID resets all changes to the "albumfile_id" field.
func (m *ThumbnailMutation) ResetAlbumfileID() {
	m.albumfile = nil
}

// SetSizeType sets the "size_type" field.
func (m *ThumbnailMutation) SetSizeType(i int) {
	m.size_type = &i
	m.addsize_type = nil
}

// SizeType returns the value of the "size_type" field in the mutation.
func (m *ThumbnailMutation) SizeType() (r int, exists bool) {
	v := m.size_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeType returns the old "size_type" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldSizeType(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeType: %w", err)
	}
	return oldValue.SizeType, nil
}

// AddSizeType adds i to the "size_type" field.
func (m *ThumbnailMutation) AddSizeType(i int) {
	if m.addsize_type != nil {
		*m.addsize_type += i
	} else {
		m.addsize_type = &i
	}
}

// AddedSizeType returns the value that was added to the "size_type" field in this mutation.
func (m *ThumbnailMutation) AddedSizeType() (r int, exists bool) {
	v := m.addsize_type
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeType resets all changes to the "size_type" field.
func (m *ThumbnailMutation) ResetSizeType() {
	m.size_type = nil
	m.addsize_type = nil
}

// SetFileURL sets the "file_url" field.
func (m *ThumbnailMutation) SetFileURL(s string) {
	m.file_url = &s
}

// FileURL returns the value of the "file_url" field in the mutation.
func (m *ThumbnailMutation) FileURL() (r string, exists bool) {
	v := m.file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURL returns the old "file_url" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldFileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURL: %w", err)
	}
	return oldValue.FileURL, nil
}

// ResetFileURL resets all changes to the "file_url" field.
func (m *ThumbnailMutation) ResetFileURL() {
	m.file_url = nil
}

// SetWidth sets the "width" field.
func (m *ThumbnailMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *ThumbnailMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *ThumbnailMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *ThumbnailMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *ThumbnailMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *ThumbnailMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *ThumbnailMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *ThumbnailMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *ThumbnailMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *ThumbnailMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ThumbnailMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ThumbnailMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Thumbnail entity.
// If the Thumbnail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThumbnailMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ThumbnailMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ThumbnailMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ThumbnailMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// ClearAlbumfile clears the "albumfile" edge to the AlbumFile entity.
func (m *ThumbnailMutation) ClearAlbumfile() {
	m.clearedalbumfile = true
	m.clearedFields[thumbnail.FieldAlbumfileID] = struct{}{}
}

// AlbumfileCleared reports if the "albumfile" edge to the AlbumFile entity was cleared.
func (m *ThumbnailMutation) AlbumfileCleared() bool {
	return m.clearedalbumfile
}

// AlbumfileIDs returns the "albumfile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AlbumfileID instead. It exists only for internal usage by the builders.
func (m *ThumbnailMutation) AlbumfileIDs() (ids []string) {
	if id := m.albumfile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAlbumfile resets all changes to the "albumfile" edge.
func (m *ThumbnailMutation) ResetAlbumfile() {
	m.albumfile = nil
	m.clearedalbumfile = false
}

// Where appends a list predicates to the ThumbnailMutation builder.
func (m *ThumbnailMutation) Where(ps ...predicate.Thumbnail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThumbnailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThumbnailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Thumbnail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThumbnailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThumbnailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Thumbnail).
func (m *ThumbnailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThumbnailMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, thumbnail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, thumbnail.FieldUpdatedAt)
	}
	if m.albumfile != nil {
		fields = append(fields, thumbnail.FieldAlbumfileID)
	}
	if m.size_type != nil {
		fields = append(fields, thumbnail.FieldSizeType)
	}
	if m.file_url != nil {
		fields = append(fields, thumbnail.FieldFileURL)
	}
	if m.width != nil {
		fields = append(fields, thumbnail.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, thumbnail.FieldHeight)
	}
	if m.size_bytes != nil {
		fields = append(fields, thumbnail.FieldSizeBytes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThumbnailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thumbnail.FieldCreatedAt:
		return m.CreatedAt()
	case thumbnail.FieldUpdatedAt:
		return m.UpdatedAt()
	case thumbnail.FieldAlbumfileID:
		return m.AlbumfileID()
	case thumbnail.FieldSizeType:
		return m.SizeType()
	case thumbnail.FieldFileURL:
		return m.FileURL()
	case thumbnail.FieldWidth:
		return m.Width()
	case thumbnail.FieldHeight:
		return m.Height()
	case thumbnail.FieldSizeBytes:
		return m.SizeBytes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThumbnailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thumbnail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case thumbnail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case thumbnail.FieldAlbumfileID:
		return m.OldAlbumfileID(ctx)
	case thumbnail.FieldSizeType:
		return m.OldSizeType(ctx)
	case thumbnail.FieldFileURL:
		return m.OldFileURL(ctx)
	case thumbnail.FieldWidth:
		return m.OldWidth(ctx)
	case thumbnail.FieldHeight:
		return m.OldHeight(ctx)
	case thumbnail.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	}
	return nil, fmt.Errorf("unknown Thumbnail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThumbnailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thumbnail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case thumbnail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case thumbnail.FieldAlbumfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlbumfileID(v)
		return nil
	case thumbnail.FieldSizeType:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeType(v)
		return nil
	case thumbnail.FieldFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURL(v)
		return nil
	case thumbnail.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case thumbnail.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case thumbnail.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Thumbnail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThumbnailMutation) AddedFields() []string {
	var fields []string
	if m.addsize_type != nil {
		fields = append(fields, thumbnail.FieldSizeType)
	}
	if m.addwidth != nil {
		fields = append(fields, thumbnail.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, thumbnail.FieldHeight)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, thumbnail.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThumbnailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thumbnail.FieldSizeType:
		return m.AddedSizeType()
	case thumbnail.FieldWidth:
		return m.AddedWidth()
	case thumbnail.FieldHeight:
		return m.AddedHeight()
	case thumbnail.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThumbnailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thumbnail.FieldSizeType:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeType(v)
		return nil
	case thumbnail.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case thumbnail.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case thumbnail.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Thumbnail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThumbnailMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThumbnailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThumbnailMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Thumbnail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThumbnailMutation) ResetField(name string) error {
	switch name {
	case thumbnail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case thumbnail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case thumbnail.FieldAlbumfileID:
		m.ResetAlbumfileID()
		return nil
	case thumbnail.FieldSizeType:
		m.ResetSizeType()
		return nil
	case thumbnail.FieldFileURL:
		m.ResetFileURL()
		return nil
	case thumbnail.FieldWidth:
		m.ResetWidth()
		return nil
	case thumbnail.FieldHeight:
		m.ResetHeight()
		return nil
	case thumbnail.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	}
	return fmt.Errorf("unknown Thumbnail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThumbnailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.albumfile != nil {
		edges = append(edges, thumbnail.EdgeAlbumfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThumbnailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thumbnail.EdgeAlbumfile:
		if id := m.albumfile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThumbnailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThumbnailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThumbnailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedalbumfile {
		edges = append(edges, thumbnail.EdgeAlbumfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThumbnailMutation) EdgeCleared(name string) bool {
	switch name {
	case thumbnail.EdgeAlbumfile:
		return m.clearedalbumfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThumbnailMutation) ClearEdge(name string) error {
	switch name {
	case thumbnail.EdgeAlbumfile:
		m.ClearAlbumfile()
		return nil
	}
	return fmt.Errorf("unknown Thumbnail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThumbnailMutation) ResetEdge(name string) error {
	switch name {
	case thumbnail.EdgeAlbumfile:
		m.ResetAlbumfile()
		return nil
	}
	return fmt.Errorf("unknown Thumbnail edge %s", name)
}
