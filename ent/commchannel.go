// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/commchannel"
)

// CommChannel is the model entity for the CommChannel schema.
type CommChannel struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// CommType holds the value of the "comm_type" field.
	CommType commchannel.CommType `json:"comm_type,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// ValidationToken holds the value of the "validation_token" field.
	ValidationToken string `json:"validation_token,omitempty"`
	// ValidationDate holds the value of the "validation_date" field.
	ValidationDate *time.Time `json:"validation_date,omitempty"`
	// MessageSentDate holds the value of the "message_sent_date" field.
	MessageSentDate *time.Time `json:"message_sent_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommChannelQuery when eager-loading is set.
	Edges        CommChannelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommChannelEdges holds the relations/edges for other nodes in the graph.
type CommChannelEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommChannelEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommChannel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commchannel.FieldID, commchannel.FieldAccountID, commchannel.FieldCommType, commchannel.FieldEndpoint, commchannel.FieldValidationToken:
			values[i] = new(sql.NullString)
		case commchannel.FieldCreatedAt, commchannel.FieldUpdatedAt, commchannel.FieldValidationDate, commchannel.FieldMessageSentDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommChannel fields.
func (_m *CommChannel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commchannel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case commchannel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commchannel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case commchannel.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case commchannel.FieldCommType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comm_type", values[i])
			} else if value.Valid {
				_m.CommType = commchannel.CommType(value.String)
			}
		case commchannel.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case commchannel.FieldValidationToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_token", values[i])
			} else if value.Valid {
				_m.ValidationToken = value.String
			}
		case commchannel.FieldValidationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validation_date", values[i])
			} else if value.Valid {
				_m.ValidationDate = new(time.Time)
				*_m.ValidationDate = value.Time
			}
		case commchannel.FieldMessageSentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field message_sent_date", values[i])
			} else if value.Valid {
				_m.MessageSentDate = new(time.Time)
				*_m.MessageSentDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommChannel.
// This includes values selected through modifiers, order, etc.
func (_m *CommChannel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the CommChannel entity.
func (_m *CommChannel) QueryAccount() *AccountQuery {
	return NewCommChannelClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this CommChannel.
// Note that you need to call CommChannel.Unwrap() before calling this method if this CommChannel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommChannel) Update() *CommChannelUpdateOne {
	return NewCommChannelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommChannel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommChannel) Unwrap() *CommChannel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommChannel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommChannel) String() string {
	var builder strings.Builder
	builder.WriteString("CommChannel(")
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
	builder.WriteString("comm_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommType))
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("validation_token=")
	builder.WriteString(_m.ValidationToken)
	builder.WriteString(", ")
	if v := _m.ValidationDate; v != nil {
		builder.WriteString("validation_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MessageSentDate; v != nil {
		builder.WriteString("message_sent_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CommChannels is a parsable slice of CommChannel.
type CommChannels []*CommChannel
