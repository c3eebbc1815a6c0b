// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldProfilePrivacy holds the string denoting the profile_privacy field in the database.
	FieldProfilePrivacy = "profile_privacy"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// FieldDateJoined holds the string denoting the date_joined field in the database.
	FieldDateJoined = "date_joined"
	// EdgeSettings holds the string denoting the settings edge name in mutations.
	EdgeSettings = "settings"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeGuestEntries holds the string denoting the guest_entries edge name in mutations.
	EdgeGuestEntries = "guest_entries"
	// EdgeAlbums holds the string denoting the albums edge name in mutations.
	EdgeAlbums = "albums"
	// EdgeAlbumFiles holds the string denoting the album_files edge name in mutations.
	EdgeAlbumFiles = "album_files"
	// EdgeSentNotifications holds the string denoting the sent_notifications edge name in mutations.
	EdgeSentNotifications = "sent_notifications"
	// EdgeReceivedNotifications holds the string denoting the received_notifications edge name in mutations.
	EdgeReceivedNotifications = "received_notifications"
	// EdgePasswordResets holds the string denoting the password_resets edge name in mutations.
	EdgePasswordResets = "password_resets"
	// EdgeCommChannels holds the string denoting the comm_channels edge name in mutations.
	EdgeCommChannels = "comm_channels"
	// Table holds the table name of the account in the database.
	Table = "accounts"
	// SettingsTable is the table that holds the settings relation/edge.
	SettingsTable = "account_settings"
	// SettingsInverseTable is the table name for the AccountSettings entity.
	// It exists in this package in order to avoid circular dependency with the "accountsettings" package.
	SettingsInverseTable = "account_settings"
	// SettingsColumn is the table column denoting the settings relation/edge.
	SettingsColumn = "account_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "owner_id"
	// GuestEntriesTable is the table that holds the guest_entries relation/edge.
	GuestEntriesTable = "event_guests"
	// GuestEntriesInverseTable is the table name for the EventGuest entity.
	// It exists in this package in order to avoid circular dependency with the "eventguest" package.
	GuestEntriesInverseTable = "event_guests"
	// GuestEntriesColumn is the table column denoting the guest_entries relation/edge.
	GuestEntriesColumn = "account_id"
	// AlbumsTable is the table that holds the albums relation/edge.
	AlbumsTable = "albums"
	// AlbumsInverseTable is the table name for the Album entity.
	// It exists in this package in order to avoid circular dependency with the "album" package.
	AlbumsInverseTable = "albums"
	// AlbumsColumn is the table column denoting the albums relation/edge.
	AlbumsColumn = "owner_id"
	// AlbumFilesTable is the table that holds the album_files relation/edge.
	AlbumFilesTable = "album_files"
	// AlbumFilesInverseTable is the table name for the AlbumFile entity.
	// It exists in this package in order to avoid circular dependency with the "albumfile" package.
	AlbumFilesInverseTable = "album_files"
	// AlbumFilesColumn is the table column denoting the album_files relation/edge.
	AlbumFilesColumn = "owner_id"
	// SentNotificationsTable is the table that holds the sent_notifications relation/edge.
	SentNotificationsTable = "in_app_notifications"
	// SentNotificationsInverseTable is the table name for the InAppNotification entity.
	// It exists in this package in order to avoid circular dependency with the "inappnotification" package.
	SentNotificationsInverseTable = "in_app_notifications"
	// SentNotificationsColumn is the table column denoting the sent_notifications relation/edge.
	SentNotificationsColumn = "sender_id"
	// ReceivedNotificationsTable is the table that holds the received_notifications relation/edge.
	ReceivedNotificationsTable = "in_app_notifications"
	// ReceivedNotificationsInverseTable is the table name for the InAppNotification entity.
	// It exists in this package in order to avoid circular dependency with the "inappnotification" package.
	ReceivedNotificationsInverseTable = "in_app_notifications"
	// ReceivedNotificationsColumn is the table column denoting the received_notifications relation/edge.
	ReceivedNotificationsColumn = "recipient_id"
	// PasswordResetsTable is the table that holds the password_resets relation/edge.
	PasswordResetsTable = "password_resets"
	// PasswordResetsInverseTable is the table name for the PasswordReset entity.
	// It exists in this package in order to avoid circular dependency with the "passwordreset" package.
	PasswordResetsInverseTable = "password_resets"
	// PasswordResetsColumn is the table column denoting the password_resets relation/edge.
	PasswordResetsColumn = "account_id"
	// CommChannelsTable is the table that holds the comm_channels relation/edge.
	CommChannelsTable = "comm_channels"
	// CommChannelsInverseTable is the table name for the CommChannel entity.
	// It exists in this package in order to avoid circular dependency with the "commchannel" package.
	CommChannelsInverseTable = "comm_channels"
	// CommChannelsColumn is the table column denoting the comm_channels relation/edge.
	CommChannelsColumn = "account_id"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEmail,
	FieldPhone,
	FieldName,
	FieldStatus,
	FieldPasswordHash,
	FieldProfilePrivacy,
	FieldLastLoginAt,
	FieldDateJoined,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusSIGNED_UP is the default value of the Status enum.
const DefaultStatus = StatusSIGNED_UP

// Status values.
const (
	StatusCONTACT     Status = "CONTACT"
	StatusSIGNED_UP   Status = "SIGNED_UP"
	StatusACTIVE      Status = "ACTIVE"
	StatusDELETED     Status = "DELETED"
	StatusDEACTIVATED Status = "DEACTIVATED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCONTACT, StatusSIGNED_UP, StatusACTIVE, StatusDELETED, StatusDEACTIVATED:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for status field: %q", s)
	}
}

// ProfilePrivacy defines the type for the "profile_privacy" enum field.
type ProfilePrivacy string

// ProfilePrivacyPUBLIC is the default value of the ProfilePrivacy enum.
const DefaultProfilePrivacy = ProfilePrivacyPUBLIC

// ProfilePrivacy values.
const (
	ProfilePrivacyPUBLIC  ProfilePrivacy = "PUBLIC"
	ProfilePrivacyPRIVATE ProfilePrivacy = "PRIVATE"
)

func (pp ProfilePrivacy) String() string {
	return string(pp)
}

// ProfilePrivacyValidator is a validator for the "profile_privacy" field enum values. It is called by the builders before save.
func ProfilePrivacyValidator(pp ProfilePrivacy) error {
	switch pp {
	case ProfilePrivacyPUBLIC, ProfilePrivacyPRIVATE:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for profile_privacy field: %q", pp)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByProfilePrivacy orders the results by the profile_privacy field.
func ByProfilePrivacy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfilePrivacy, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}

// ByDateJoined orders the results by the date_joined field.
func ByDateJoined(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateJoined, opts...).ToFunc()
}

// BySettingsField orders the results by settings field.
func BySettingsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSettingsStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGuestEntriesCount orders the results by guest_entries count.
func ByGuestEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGuestEntriesStep(), opts...)
	}
}

// ByGuestEntries orders the results by guest_entries terms.
func ByGuestEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGuestEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlbumsCount orders the results by albums count.
func ByAlbumsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlbumsStep(), opts...)
	}
}

// ByAlbums orders the results by albums terms.
func ByAlbums(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlbumsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlbumFilesCount orders the results by album_files count.
func ByAlbumFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlbumFilesStep(), opts...)
	}
}

// ByAlbumFiles orders the results by album_files terms.
func ByAlbumFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlbumFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySentNotificationsCount orders the results by sent_notifications count.
func BySentNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSentNotificationsStep(), opts...)
	}
}

// BySentNotifications orders the results by sent_notifications terms.
func BySentNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSentNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReceivedNotificationsCount orders the results by received_notifications count.
func ByReceivedNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReceivedNotificationsStep(), opts...)
	}
}

// ByReceivedNotifications orders the results by received_notifications terms.
func ByReceivedNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReceivedNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPasswordResetsCount orders the results by password_resets count.
func ByPasswordResetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPasswordResetsStep(), opts...)
	}
}

// ByPasswordResets orders the results by password_resets terms.
func ByPasswordResets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPasswordResetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCommChannelsCount orders the results by comm_channels count.
func ByCommChannelsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommChannelsStep(), opts...)
	}
}

// ByCommChannels orders the results by comm_channels terms.
func ByCommChannels(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommChannelsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSettingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SettingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SettingsTable, SettingsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newGuestEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GuestEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GuestEntriesTable, GuestEntriesColumn),
	)
}
func newAlbumsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlbumsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlbumsTable, AlbumsColumn),
	)
}
func newAlbumFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlbumFilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlbumFilesTable, AlbumFilesColumn),
	)
}
func newSentNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SentNotificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SentNotificationsTable, SentNotificationsColumn),
	)
}
func newReceivedNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReceivedNotificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReceivedNotificationsTable, ReceivedNotificationsColumn),
	)
}
func newPasswordResetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PasswordResetsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PasswordResetsTable, PasswordResetsColumn),
	)
}
func newCommChannelsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommChannelsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommChannelsTable, CommChannelsColumn),
	)
}
