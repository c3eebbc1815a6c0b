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

// AccountSettings is the model entity for the AccountSettings schema.
type AccountSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// EmailRsvpUpdates holds the value of the "email_rsvp_updates" field.
	EmailRsvpUpdates bool `json:"email_rsvp_updates,omitempty"`
	// EmailSocialActivity holds the value of the "email_social_activity" field.
	EmailSocialActivity bool `json:"email_social_activity,omitempty"`
	// EmailPromotions holds the value of the "email_promotions" field.
	EmailPromotions bool `json:"email_promotions,omitempty"`
	// TextRsvpUpdates holds the value of the "text_rsvp_updates" field.
	TextRsvpUpdates *bool `json:"text_rsvp_updates,omitempty"`
	// TextSocialActivity holds the value of the "text_social_activity" field.
	TextSocialActivity *bool `json:"text_social_activity,omitempty"`
	// TextPromotions holds the value of the "text_promotions" field.
	TextPromotions *bool `json:"text_promotions,omitempty"`
	// DefaultEventPrivacy holds the value of the "default_event_privacy" field.
	DefaultEventPrivacy accountsettings.DefaultEventPrivacy `json:"default_event_privacy,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccountSettingsQuery when eager-loading is set.
	Edges        AccountSettingsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccountSettingsEdges holds the relations/edges for other nodes in the graph.
type AccountSettingsEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AccountSettingsEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AccountSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case accountsettings.FieldEmailRsvpUpdates, accountsettings.FieldEmailSocialActivity, accountsettings.FieldEmailPromotions, accountsettings.FieldTextRsvpUpdates, accountsettings.FieldTextSocialActivity, accountsettings.FieldTextPromotions:
			values[i] = new(sql.NullBool)
		case accountsettings.FieldID, accountsettings.FieldAccountID, accountsettings.FieldDefaultEventPrivacy:
			values[i] = new(sql.NullString)
		case accountsettings.FieldCreatedAt, accountsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AccountSettings fields.
func (_m *AccountSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case accountsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case accountsettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case accountsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case accountsettings.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case accountsettings.FieldEmailRsvpUpdates:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_rsvp_updates", values[i])
			} else if value.Valid {
				_m.EmailRsvpUpdates = value.Bool
			}
		case accountsettings.FieldEmailSocialActivity:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_social_activity", values[i])
			} else if value.Valid {
				_m.EmailSocialActivity = value.Bool
			}
		case accountsettings.FieldEmailPromotions:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_promotions", values[i])
			} else if value.Valid {
				_m.EmailPromotions = value.Bool
			}
		case accountsettings.FieldTextRsvpUpdates:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field text_rsvp_updates", values[i])
			} else if value.Valid {
				_m.TextRsvpUpdates = new(bool)
				*_m.TextRsvpUpdates = value.Bool
			}
		case accountsettings.FieldTextSocialActivity:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field text_social_activity", values[i])
			} else if value.Valid {
				_m.TextSocialActivity = new(bool)
				*_m.TextSocialActivity = value.Bool
			}
		case accountsettings.FieldTextPromotions:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field text_promotions", values[i])
			} else if value.Valid {
				_m.TextPromotions = new(bool)
				*_m.TextPromotions = value.Bool
			}
		case accountsettings.FieldDefaultEventPrivacy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_event_privacy", values[i])
			} else if value.Valid {
				_m.DefaultEventPrivacy = accountsettings.DefaultEventPrivacy(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AccountSettings.
// This includes values selected through modifiers, order, etc.
func (_m *AccountSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the AccountSettings entity.
func (_m *AccountSettings) QueryAccount() *AccountQuery {
	return NewAccountSettingsClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this AccountSettings.
// Note that you need to call AccountSettings.Unwrap() before calling this method if this AccountSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AccountSettings) Update() *AccountSettingsUpdateOne {
	return NewAccountSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AccountSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AccountSettings) Unwrap() *AccountSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AccountSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AccountSettings) String() string {
	var builder strings.Builder
	builder.WriteString("AccountSettings(")
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
	builder.WriteString("email_rsvp_updates=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailRsvpUpdates))
	builder.WriteString(", ")
	builder.WriteString("email_social_activity=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailSocialActivity))
	builder.WriteString(", ")
	builder.WriteString("email_promotions=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailPromotions))
	builder.WriteString(", ")
	if v := _m.TextRsvpUpdates; v != nil {
		builder.WriteString("text_rsvp_updates=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TextSocialActivity; v != nil {
		builder.WriteString("text_social_activity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TextPromotions; v != nil {
		builder.WriteString("text_promotions=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("default_event_privacy=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultEventPrivacy))
	builder.WriteByte(')')
	return builder.String()
}

// AccountSettingsSlice is a parsable slice of AccountSettings.
type AccountSettingsSlice []*AccountSettings
