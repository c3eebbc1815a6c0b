// Code generated by ent, DO NOT EDIT.

package accountsettings

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the accountsettings type in the database.
	Label = "account_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldEmailRsvpUpdates holds the string denoting the email_rsvp_updates field in the database.
	FieldEmailRsvpUpdates = "email_rsvp_updates"
	// FieldEmailSocialActivity holds the string denoting the email_social_activity field in the database.
	FieldEmailSocialActivity = "email_social_activity"
	// FieldEmailPromotions holds the string denoting the email_promotions field in the database.
	FieldEmailPromotions = "email_promotions"
	// FieldTextRsvpUpdates holds the string denoting the text_rsvp_updates field in the database.
	FieldTextRsvpUpdates = "text_rsvp_updates"
	// FieldTextSocialActivity holds the string denoting the text_social_activity field in the database.
	FieldTextSocialActivity = "text_social_activity"
	// FieldTextPromotions holds the string denoting the text_promotions field in the database.
	FieldTextPromotions = "text_promotions"
	// FieldDefaultEventPrivacy holds the string denoting the default_event_privacy field in the database.
	FieldDefaultEventPrivacy = "default_event_privacy"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// Table holds the table name of the accountsettings in the database.
	Table = "account_settings"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "account_settings"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
)

// Columns holds all SQL columns for accountsettings fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAccountID,
	FieldEmailRsvpUpdates,
	FieldEmailSocialActivity,
	FieldEmailPromotions,
	FieldTextRsvpUpdates,
	FieldTextSocialActivity,
	FieldTextPromotions,
	FieldDefaultEventPrivacy,
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
	// DefaultEmailRsvpUpdates holds the default value on creation for the "email_rsvp_updates" field.
	DefaultEmailRsvpUpdates bool
	// DefaultEmailSocialActivity holds the default value on creation for the "email_social_activity" field.
	DefaultEmailSocialActivity bool
	// DefaultEmailPromotions holds the default value on creation for the "email_promotions" field.
	DefaultEmailPromotions bool
)

// DefaultEventPrivacy defines the type for the "default_event_privacy" enum field.
type DefaultEventPrivacy string

// DefaultEventPrivacyPRIVATE is the default value of the DefaultEventPrivacy enum.
const DefaultDefaultEventPrivacy = DefaultEventPrivacyPRIVATE

// DefaultEventPrivacy values.
const (
	DefaultEventPrivacyPUBLIC  DefaultEventPrivacy = "PUBLIC"
	DefaultEventPrivacyPRIVATE DefaultEventPrivacy = "PRIVATE"
)

func (dep DefaultEventPrivacy) String() string {
	return string(dep)
}

// DefaultEventPrivacyValidator is a validator for the "default_event_privacy" field enum values. It is called by the builders before save.
func DefaultEventPrivacyValidator(dep DefaultEventPrivacy) error {
	switch dep {
	case DefaultEventPrivacyPUBLIC, DefaultEventPrivacyPRIVATE:
		return nil
	default:
		return fmt.Errorf("accountsettings: invalid enum value for default_event_privacy field: %q", dep)
	}
}

// OrderOption defines the ordering options for the AccountSettings queries.
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

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByEmailRsvpUpdates orders the results by the email_rsvp_updates field.
func ByEmailRsvpUpdates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailRsvpUpdates, opts...).ToFunc()
}

// ByEmailSocialActivity orders the results by the email_social_activity field.
func ByEmailSocialActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSocialActivity, opts...).ToFunc()
}

// ByEmailPromotions orders the results by the email_promotions field.
func ByEmailPromotions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailPromotions, opts...).ToFunc()
}

// ByTextRsvpUpdates orders the results by the text_rsvp_updates field.
func ByTextRsvpUpdates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextRsvpUpdates, opts...).ToFunc()
}

// ByTextSocialActivity orders the results by the text_social_activity field.
func ByTextSocialActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextSocialActivity, opts...).ToFunc()
}

// ByTextPromotions orders the results by the text_promotions field.
func ByTextPromotions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextPromotions, opts...).ToFunc()
}

// ByDefaultEventPrivacy orders the results by the default_event_privacy field.
func ByDefaultEventPrivacy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultEventPrivacy, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AccountTable, AccountColumn),
	)
}
