// Code generated by ent, DO NOT EDIT.

package commchannel

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the commchannel type in the database.
	Label = "comm_channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldCommType holds the string denoting the comm_type field in the database.
	FieldCommType = "comm_type"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldValidationToken holds the string denoting the validation_token field in the database.
	FieldValidationToken = "validation_token"
	// FieldValidationDate holds the string denoting the validation_date field in the database.
	FieldValidationDate = "validation_date"
	// FieldMessageSentDate holds the string denoting the message_sent_date field in the database.
	FieldMessageSentDate = "message_sent_date"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// Table holds the table name of the commchannel in the database.
	Table = "comm_channels"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "comm_channels"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
)

// Columns holds all SQL columns for commchannel fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAccountID,
	FieldCommType,
	FieldEndpoint,
	FieldValidationToken,
	FieldValidationDate,
	FieldMessageSentDate,
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
	// EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	EndpointValidator func(string) error
)

// CommType defines the type for the "comm_type" enum field.
type CommType string

// CommType values.
const (
	CommTypeEMAIL CommType = "EMAIL"
	CommTypePHONE CommType = "PHONE"
)

func (ct CommType) String() string {
	return string(ct)
}

// CommTypeValidator is a validator for the "comm_type" field enum values. It is called by the builders before save.
func CommTypeValidator(ct CommType) error {
	switch ct {
	case CommTypeEMAIL, CommTypePHONE:
		return nil
	default:
		return fmt.Errorf("commchannel: invalid enum value for comm_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the CommChannel queries.
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

// ByCommType orders the results by the comm_type field.
func ByCommType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommType, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByValidationToken orders the results by the validation_token field.
func ByValidationToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationToken, opts...).ToFunc()
}

// ByValidationDate orders the results by the validation_date field.
func ByValidationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationDate, opts...).ToFunc()
}

// ByMessageSentDate orders the results by the message_sent_date field.
func ByMessageSentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageSentDate, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
