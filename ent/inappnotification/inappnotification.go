// Code generated by ent, DO NOT EDIT.

package inappnotification

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the inappnotification type in the database.
	Label = "in_app_notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSenderID holds the string denoting the sender_id field in the database.
	FieldSenderID = "sender_id"
	// FieldRecipientID holds the string denoting the recipient_id field in the database.
	FieldRecipientID = "recipient_id"
	// FieldNotificationType holds the string denoting the notification_type field in the database.
	FieldNotificationType = "notification_type"
	// FieldSubjectKind holds the string denoting the subject_kind field in the database.
	FieldSubjectKind = "subject_kind"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// EdgeSender holds the string denoting the sender edge name in mutations.
	EdgeSender = "sender"
	// EdgeRecipient holds the string denoting the recipient edge name in mutations.
	EdgeRecipient = "recipient"
	// Table holds the table name of the inappnotification in the database.
	Table = "in_app_notifications"
	// SenderTable is the table that holds the sender relation/edge.
	SenderTable = "in_app_notifications"
	// SenderInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	SenderInverseTable = "accounts"
	// SenderColumn is the table column denoting the sender relation/edge.
	SenderColumn = "sender_id"
	// RecipientTable is the table that holds the recipient relation/edge.
	RecipientTable = "in_app_notifications"
	// RecipientInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	RecipientInverseTable = "accounts"
	// RecipientColumn is the table column denoting the recipient relation/edge.
	RecipientColumn = "recipient_id"
)

// Columns holds all SQL columns for inappnotification fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSenderID,
	FieldRecipientID,
	FieldNotificationType,
	FieldSubjectKind,
	FieldSubjectID,
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
)

// NotificationType defines the type for the "notification_type" enum field.
type NotificationType string

// NotificationType values.
const (
	NotificationTypeEVENT_INVITE           NotificationType = "EVENT_INVITE"
	NotificationTypeEVENT_CANCEL           NotificationType = "EVENT_CANCEL"
	NotificationTypeEVENT_UPDATE           NotificationType = "EVENT_UPDATE"
	NotificationTypeEVENTGUEST_RSVP        NotificationType = "EVENTGUEST_RSVP"
	NotificationTypeALBUMFILE_UPLOAD       NotificationType = "ALBUMFILE_UPLOAD"
	NotificationTypeACCOUNT_EMAIL_VALIDATE NotificationType = "ACCOUNT_EMAIL_VALIDATE"
)

func (nt NotificationType) String() string {
	return string(nt)
}

// NotificationTypeValidator is a validator for the "notification_type" field enum values. It is called by the builders before save.
func NotificationTypeValidator(nt NotificationType) error {
	switch nt {
	case NotificationTypeEVENT_INVITE, NotificationTypeEVENT_CANCEL, NotificationTypeEVENT_UPDATE, NotificationTypeEVENTGUEST_RSVP, NotificationTypeALBUMFILE_UPLOAD, NotificationTypeACCOUNT_EMAIL_VALIDATE:
		return nil
	default:
		return fmt.Errorf("inappnotification: invalid enum value for notification_type field: %q", nt)
	}
}

// SubjectKind defines the type for the "subject_kind" enum field.
type SubjectKind string

// SubjectKind values.
const (
	SubjectKindEVENT      SubjectKind = "EVENT"
	SubjectKindALBUM_FILE SubjectKind = "ALBUM_FILE"
	SubjectKindCOMMENT    SubjectKind = "COMMENT"
	SubjectKindACCOUNT    SubjectKind = "ACCOUNT"
)

func (sk SubjectKind) String() string {
	return string(sk)
}

// SubjectKindValidator is a validator for the "subject_kind" field enum values. It is called by the builders before save.
func SubjectKindValidator(sk SubjectKind) error {
	switch sk {
	case SubjectKindEVENT, SubjectKindALBUM_FILE, SubjectKindCOMMENT, SubjectKindACCOUNT:
		return nil
	default:
		return fmt.Errorf("inappnotification: invalid enum value for subject_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the InAppNotification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySenderID orders the results by the sender_id field.
func BySenderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderID, opts...).ToFunc()
}

// ByRecipientID orders the results by the recipient_id field.
func ByRecipientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientID, opts...).ToFunc()
}

// ByNotificationType orders the results by the notification_type field.
func ByNotificationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationType, opts...).ToFunc()
}

// BySubjectKind orders the results by the subject_kind field.
func BySubjectKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectKind, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// BySenderField orders the results by sender field.
func BySenderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSenderStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecipientField orders the results by recipient field.
func ByRecipientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipientStep(), sql.OrderByField(field, opts...))
	}
}
func newSenderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SenderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SenderTable, SenderColumn),
	)
}
func newRecipientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecipientTable, RecipientColumn),
	)
}
