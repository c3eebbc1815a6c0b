// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/passwordreset"
)

// PasswordReset is the model entity for the PasswordReset schema.
type PasswordReset struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// TokenSalt holds the value of the "token_salt" field.
	TokenSalt string `json:"token_salt,omitempty"`
	// MessageSentDate holds the value of the "message_sent_date" field.
	MessageSentDate *time.Time `json:"message_sent_date,omitempty"`
	// ResetDate holds the value of the "reset_date" field.
	ResetDate *time.Time `json:"reset_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PasswordResetQuery when eager-loading is set.
	Edges        PasswordResetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PasswordResetEdges holds the relations/edges for other nodes in the graph.
type PasswordResetEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PasswordResetEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PasswordReset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case passwordreset.FieldID, passwordreset.FieldAccountID, passwordreset.FieldEmail, passwordreset.FieldTokenSalt:
			values[i] = new(sql.NullString)
		case passwordreset.FieldCreatedAt, passwordreset.FieldUpdatedAt, passwordreset.FieldMessageSentDate, passwordreset.FieldResetDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PasswordReset fields.
func (_m *PasswordReset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case passwordreset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case passwordreset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case passwordreset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case passwordreset.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case passwordreset.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case passwordreset.FieldTokenSalt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token_salt", values[i])
			} else if value.Valid {
				_m.TokenSalt = value.String
			}
		case passwordreset.FieldMessageSentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field message_sent_date", values[i])
			} else if value.Valid {
				_m.MessageSentDate = new(time.Time)
				*_m.MessageSentDate = value.Time
			}
		case passwordreset.FieldResetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reset_date", values[i])
			} else if value.Valid {
				_m.ResetDate = new(time.Time)
				*_m.ResetDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PasswordReset.
// This includes values selected through modifiers, order, etc.
func (_m *PasswordReset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the PasswordReset entity.
func (_m *PasswordReset) QueryAccount() *AccountQuery {
	return NewPasswordResetClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this PasswordReset.
// Note that you need to call PasswordReset.Unwrap() before calling this method if this PasswordReset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PasswordReset) Update() *PasswordResetUpdateOne {
	return NewPasswordResetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PasswordReset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PasswordReset) Unwrap() *PasswordReset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PasswordReset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PasswordReset) String() string {
	var builder strings.Builder
	builder.WriteString("PasswordReset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("token_salt=")
	builder.WriteString(_m.TokenSalt)
	builder.WriteString(", ")
	if v := _m.MessageSentDate; v != nil {
		builder.WriteString("message_sent_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResetDate; v != nil {
		builder.WriteString("reset_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PasswordResets is a parsable slice of PasswordReset.
type PasswordResets []*PasswordReset
