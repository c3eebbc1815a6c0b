// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
)

// Account is the model entity for the Account schema.
type Account struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// E.164 normalized
	Phone *string `json:"phone,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status account.Status `json:"status,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash string `json:"-"`
	// ProfilePrivacy holds the value of the "profile_privacy" field.
	ProfilePrivacy account.ProfilePrivacy `json:"profile_privacy,omitempty"`
	// LastLoginAt holds the value of the "last_login_at" field.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// DateJoined holds the value of the "date_joined" field.
	DateJoined *time.Time `json:"date_joined,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccountQuery when eager-loading is set.
	Edges        AccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccountEdges holds the relations/edges for other nodes in the graph.
type AccountEdges struct {
	// Settings holds the value of the settings edge.
	Settings *AccountSettings `json:"settings,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// GuestEntries holds the value of the guest_entries edge.
	GuestEntries []*EventGuest `json:"guest_entries,omitempty"`
	// Albums holds the value of the albums edge.
	Albums []*Album `json:"albums,omitempty"`
	// AlbumFiles holds the value of the album_files edge.
	AlbumFiles []*AlbumFile `json:"album_files,omitempty"`
	// SentNotifications holds the value of the sent_notifications edge.
	SentNotifications []*InAppNotification `json:"sent_notifications,omitempty"`
	// ReceivedNotifications holds the value of the received_notifications edge.
	ReceivedNotifications []*InAppNotification `json:"received_notifications,omitempty"`
	// PasswordResets holds the value of the password_resets edge.
	PasswordResets []*PasswordReset `json:"password_resets,omitempty"`
	// CommChannels holds the value of the comm_channels edge.
	CommChannels []*CommChannel `json:"comm_channels,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// SettingsOrErr returns the Settings value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AccountEdges) SettingsOrErr() (*AccountSettings, error) {
	if e.Settings != nil {
		return e.Settings, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: accountsettings.Label}
	}
	return nil, &NotLoadedError{edge: "settings"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// GuestEntriesOrErr returns the GuestEntries value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) GuestEntriesOrErr() ([]*EventGuest, error) {
	if e.loadedTypes[2] {
		return e.GuestEntries, nil
	}
	return nil, &NotLoadedError{edge: "guest_entries"}
}

// AlbumsOrErr returns the Albums value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) AlbumsOrErr() ([]*Album, error) {
	if e.loadedTypes[3] {
		return e.Albums, nil
	}
	return nil, &NotLoadedError{edge: "albums"}
}

// AlbumFilesOrErr returns the AlbumFiles value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) AlbumFilesOrErr() ([]*AlbumFile, error) {
	if e.loadedTypes[4] {
		return e.AlbumFiles, nil
	}
	return nil, &NotLoadedError{edge: "album_files"}
}

// SentNotificationsOrErr returns the SentNotifications value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) SentNotificationsOrErr() ([]*InAppNotification, error) {
	if e.loadedTypes[5] {
		return e.SentNotifications, nil
	}
	return nil, &NotLoadedError{edge: "sent_notifications"}
}

// ReceivedNotificationsOrErr returns the ReceivedNotifications value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) ReceivedNotificationsOrErr() ([]*InAppNotification, error) {
	if e.loadedTypes[6] {
		return e.ReceivedNotifications, nil
	}
	return nil, &NotLoadedError{edge: "received_notifications"}
}

// PasswordResetsOrErr returns the PasswordResets value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) PasswordResetsOrErr() ([]*PasswordReset, error) {
	if e.loadedTypes[7] {
		return e.PasswordResets, nil
	}
	return nil, &NotLoadedError{edge: "password_resets"}
}

// CommChannelsOrErr returns the CommChannels value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) CommChannelsOrErr() ([]*CommChannel, error) {
	if e.loadedTypes[8] {
		return e.CommChannels, nil
	}
	return nil, &NotLoadedError{edge: "comm_channels"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Account) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case account.FieldID, account.FieldEmail, account.FieldPhone, account.FieldName, account.FieldStatus, account.FieldPasswordHash, account.FieldProfilePrivacy:
			values[i] = new(sql.NullString)
		case account.FieldCreatedAt, account.FieldUpdatedAt, account.FieldLastLoginAt, account.FieldDateJoined:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Account fields.
func (_m *Account) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case account.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case account.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case account.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case account.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case account.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case account.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case account.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = account.Status(value.String)
			}
		case account.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case account.FieldProfilePrivacy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_privacy", values[i])
			} else if value.Valid {
				_m.ProfilePrivacy = account.ProfilePrivacy(value.String)
			}
		case account.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		case account.FieldDateJoined:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_joined", values[i])
			} else if value.Valid {
				_m.DateJoined = new(time.Time)
				*_m.DateJoined = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Account.
// This includes values selected through modifiers, order, etc.
func (_m *Account) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySettings queries the "settings" edge of the Account entity.
func (_m *Account) QuerySettings() *AccountSettingsQuery {
	return NewAccountClient(_m.config).QuerySettings(_m)
}

// QueryEvents queries the "events" edge of the Account entity.
func (_m *Account) QueryEvents() *EventQuery {
	return NewAccountClient(_m.config).QueryEvents(_m)
}

// QueryGuestEntries queries the "guest_entries" edge of the Account entity.
func (_m *Account) QueryGuestEntries() *EventGuestQuery {
	return NewAccountClient(_m.config).QueryGuestEntries(_m)
}

// QueryAlbums queries the "albums" edge of the Account entity.
func (_m *Account) QueryAlbums() *AlbumQuery {
	return NewAccountClient(_m.config).QueryAlbums(_m)
}

// QueryAlbumFiles queries the "album_files" edge of the Account entity.
func (_m *Account) QueryAlbumFiles() *AlbumFileQuery {
	return NewAccountClient(_m.config).QueryAlbumFiles(_m)
}

// QuerySentNotifications queries the "sent_notifications" edge of the Account entity.
func (_m *Account) QuerySentNotifications() *InAppNotificationQuery {
	return NewAccountClient(_m.config).QuerySentNotifications(_m)
}

// QueryReceivedNotifications queries the "received_notifications" edge of the Account entity.
func (_m *Account) QueryReceivedNotifications() *InAppNotificationQuery {
	return NewAccountClient(_m.config).QueryReceivedNotifications(_m)
}

// QueryPasswordResets queries the "password_resets" edge of the Account entity.
func (_m *Account) QueryPasswordResets() *PasswordResetQuery {
	return NewAccountClient(_m.config).QueryPasswordResets(_m)
}

// QueryCommChannels queries the "comm_channels" edge of the Account entity.
func (_m *Account) QueryCommChannels() *CommChannelQuery {
	return NewAccountClient(_m.config).QueryCommChannels(_m)
}

// Update returns a builder for updating this Account.
// Note that you need to call Account.Unwrap() before calling this method if this Account
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Account) Update() *AccountUpdateOne {
	return NewAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Account entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Account) Unwrap() *Account {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Account is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Account) String() string {
	var builder strings.Builder
	builder.WriteString("Account(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("profile_privacy=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfilePrivacy))
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DateJoined; v != nil {
		builder.WriteString("date_joined=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Accounts is a parsable slice of Account.
type Accounts []*Account
