// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/inappnotification"
)

// InAppNotification is the model entity for the InAppNotification schema.
type InAppNotification struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SenderID holds the value of the "sender_id" field.
	SenderID string `json:"sender_id,omitempty"`
	// RecipientID holds the value of the "recipient_id" field.
	RecipientID string `json:"recipient_id,omitempty"`
	// NotificationType holds the value of the "notification_type" field.
	NotificationType inappnotification.NotificationType `json:"notification_type,omitempty"`
	// SubjectKind holds the value of the "subject_kind" field.
	SubjectKind inappnotification.SubjectKind `json:"subject_kind,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InAppNotificationQuery when eager-loading is set.
	Edges        InAppNotificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InAppNotificationEdges holds the relations/edges for other nodes in the graph.
type InAppNotificationEdges struct {
	// Sender holds the value of the sender edge.
	Sender *Account `json:"sender,omitempty"`
	// Recipient holds the value of the recipient edge.
	Recipient *Account `json:"recipient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SenderOrErr returns the Sender value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InAppNotificationEdges) SenderOrErr() (*Account, error) {
	if e.Sender != nil {
		return e.Sender, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "sender"}
}

// RecipientOrErr returns the Recipient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InAppNotificationEdges) RecipientOrErr() (*Account, error) {
	if e.Recipient != nil {
		return e.Recipient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "recipient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InAppNotification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inappnotification.FieldID, inappnotification.FieldSenderID, inappnotification.FieldRecipientID, inappnotification.FieldNotificationType, inappnotification.FieldSubjectKind, inappnotification.FieldSubjectID:
			values[i] = new(sql.NullString)
		case inappnotification.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InAppNotification fields.
func (_m *InAppNotification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inappnotification.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case inappnotification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inappnotification.FieldSenderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_id", values[i])
			} else if value.Valid {
				_m.SenderID = value.String
			}
		case inappnotification.FieldRecipientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_id", values[i])
			} else if value.Valid {
				_m.RecipientID = value.String
			}
		case inappnotification.FieldNotificationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notification_type", values[i])
			} else if value.Valid {
				_m.NotificationType = inappnotification.NotificationType(value.String)
			}
		case inappnotification.FieldSubjectKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_kind", values[i])
			} else if value.Valid {
				_m.SubjectKind = inappnotification.SubjectKind(value.String)
			}
		case inappnotification.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InAppNotification.
// This includes values selected through modifiers, order, etc.
func (_m *InAppNotification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySender queries the "sender" edge of the InAppNotification entity.
func (_m *InAppNotification) QuerySender() *AccountQuery {
	return NewInAppNotificationClient(_m.config).QuerySender(_m)
}

// QueryRecipient queries the "recipient" edge of the InAppNotification entity.
func (_m *InAppNotification) QueryRecipient() *AccountQuery {
	return NewInAppNotificationClient(_m.config).QueryRecipient(_m)
}

// Update returns a builder for updating this InAppNotification.
// Note that you need to call InAppNotification.Unwrap() before calling this method if this InAppNotification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InAppNotification) Update() *InAppNotificationUpdateOne {
	return NewInAppNotificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InAppNotification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InAppNotification) Unwrap() *InAppNotification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InAppNotification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InAppNotification) String() string {
	var builder strings.Builder
	builder.WriteString("InAppNotification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sender_id=")
	builder.WriteString(_m.SenderID)
	builder.WriteString(", ")
	builder.WriteString("recipient_id=")
	builder.WriteString(_m.RecipientID)
	builder.WriteString(", ")
	builder.WriteString("notification_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationType))
	builder.WriteString(", ")
	builder.WriteString("subject_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectKind))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteByte(')')
	return builder.String()
}

// InAppNotifications is a parsable slice of InAppNotification.
type InAppNotifications []*InAppNotification
