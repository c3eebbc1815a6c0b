// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
)

// AccountSettingsCreate is the builder for creating a AccountSettings entity.
type AccountSettingsCreate struct {
	config
	mutation *AccountSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountSettingsCreate) SetCreatedAt(v time.Time) *AccountSettingsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableCreatedAt(v *time.Time) *AccountSettingsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountSettingsCreate) SetUpdatedAt(v time.Time) *AccountSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableUpdatedAt(v *time.Time) *AccountSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *AccountSettingsCreate) SetAccountID(v string) *AccountSettingsCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (_c *AccountSettingsCreate) SetEmailRsvpUpdates(v bool) *AccountSettingsCreate {
	_c.mutation.SetEmailRsvpUpdates(v)
	return _c
}

// SetNillableEmailRsvpUpdates sets the "email_rsvp_updates" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableEmailRsvpUpdates(v *bool) *AccountSettingsCreate {
	if v != nil {
		_c.SetEmailRsvpUpdates(*v)
	}
	return _c
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (_c *AccountSettingsCreate) SetEmailSocialActivity(v bool) *AccountSettingsCreate {
	_c.mutation.SetEmailSocialActivity(v)
	return _c
}

// SetNillableEmailSocialActivity sets the "email_social_activity" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableEmailSocialActivity(v *bool) *AccountSettingsCreate {
	if v != nil {
		_c.SetEmailSocialActivity(*v)
	}
	return _c
}

// SetEmailPromotions sets the "email_promotions" field.
func (_c *AccountSettingsCreate) SetEmailPromotions(v bool) *AccountSettingsCreate {
	_c.mutation.SetEmailPromotions(v)
	return _c
}

// SetNillableEmailPromotions sets the "email_promotions" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableEmailPromotions(v *bool) *AccountSettingsCreate {
	if v != nil {
		_c.SetEmailPromotions(*v)
	}
	return _c
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (_c *AccountSettingsCreate) SetTextRsvpUpdates(v bool) *AccountSettingsCreate {
	_c.mutation.SetTextRsvpUpdates(v)
	return _c
}

// SetNillableTextRsvpUpdates sets the "text_rsvp_updates" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableTextRsvpUpdates(v *bool) *AccountSettingsCreate {
	if v != nil {
		_c.SetTextRsvpUpdates(*v)
	}
	return _c
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (_c *AccountSettingsCreate) SetTextSocialActivity(v bool) *AccountSettingsCreate {
	_c.mutation.SetTextSocialActivity(v)
	return _c
}

// SetNillableTextSocialActivity sets the "text_social_activity" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableTextSocialActivity(v *bool) *AccountSettingsCreate {
	if v != nil {
		_c.SetTextSocialActivity(*v)
	}
	return _c
}

// SetTextPromotions sets the "text_promotions" field.
func (_c *AccountSettingsCreate) SetTextPromotions(v bool) *AccountSettingsCreate {
	_c.mutation.SetTextPromotions(v)
	return _c
}

// SetNillableTextPromotions sets the "text_promotions" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableTextPromotions(v *bool) *AccountSettingsCreate {
	if v != nil {
		_c.SetTextPromotions(*v)
	}
	return _c
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (_c *AccountSettingsCreate) SetDefaultEventPrivacy(v accountsettings.DefaultEventPrivacy) *AccountSettingsCreate {
	_c.mutation.SetDefaultEventPrivacy(v)
	return _c
}

// SetNillableDefaultEventPrivacy sets the "default_event_privacy" field if the given value is not nil.
func (_c *AccountSettingsCreate) SetNillableDefaultEventPrivacy(v *accountsettings.DefaultEventPrivacy) *AccountSettingsCreate {
	if v != nil {
		_c.SetDefaultEventPrivacy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccountSettingsCreate) SetID(v string) *AccountSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *AccountSettingsCreate) SetAccount(v *Account) *AccountSettingsCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the AccountSettingsMutation object of the builder.
func (_c *AccountSettingsCreate) Mutation() *AccountSettingsMutation {
	return _c.mutation
}

// Save creates the AccountSettings in the database.
func (_c *AccountSettingsCreate) Save(ctx context.Context) (*AccountSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountSettingsCreate) SaveX(ctx context.Context) *AccountSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountSettingsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := accountsettings.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := accountsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.EmailRsvpUpdates(); !ok {
		v := accountsettings.DefaultEmailRsvpUpdates
		_c.mutation.SetEmailRsvpUpdates(v)
	}
	if _, ok := _c.mutation.EmailSocialActivity(); !ok {
		v := accountsettings.DefaultEmailSocialActivity
		_c.mutation.SetEmailSocialActivity(v)
	}
	if _, ok := _c.mutation.EmailPromotions(); !ok {
		v := accountsettings.DefaultEmailPromotions
		_c.mutation.SetEmailPromotions(v)
	}
	if _, ok := _c.mutation.DefaultEventPrivacy(); !ok {
		v := accountsettings.DefaultDefaultEventPrivacy
		_c.mutation.SetDefaultEventPrivacy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountSettingsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AccountSettings.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AccountSettings.updated_at"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "AccountSettings.account_id"`)}
	}
	if _, ok := _c.mutation.EmailRsvpUpdates(); !ok {
		return &ValidationError{Name: "email_rsvp_updates", err: errors.New(`ent: missing required field "AccountSettings.email_rsvp_updates"`)}
	}
	if _, ok := _c.mutation.EmailSocialActivity(); !ok {
		return &ValidationError{Name: "email_social_activity", err: errors.New(`ent: missing required field "AccountSettings.email_social_activity"`)}
	}
	if _, ok := _c.mutation.EmailPromotions(); !ok {
		return &ValidationError{Name: "email_promotions", err: errors.New(`ent: missing required field "AccountSettings.email_promotions"`)}
	}
	if _, ok := _c.mutation.DefaultEventPrivacy(); !ok {
		return &ValidationError{Name: "default_event_privacy", err: errors.New(`ent: missing required field "AccountSettings.default_event_privacy"`)}
	}
	if v, ok := _c.mutation.DefaultEventPrivacy(); ok {
		if err := accountsettings.DefaultEventPrivacyValidator(v); err != nil {
			return &ValidationError{Name: "default_event_privacy", err: fmt.Errorf(`ent: validator failed for field "AccountSettings.default_event_privacy": %w`, err)}
		}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "AccountSettings.account"`)}
	}
	return nil
}

func (_c *AccountSettingsCreate) sqlSave(ctx context.Context) (*AccountSettings, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AccountSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AccountSettingsCreate) createSpec() (*AccountSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &AccountSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(accountsettings.Table, sqlgraph.NewFieldSpec(accountsettings.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(accountsettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(accountsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmailRsvpUpdates(); ok {
		_spec.SetField(accountsettings.FieldEmailRsvpUpdates, field.TypeBool, value)
		_node.EmailRsvpUpdates = value
	}
	if value, ok := _c.mutation.EmailSocialActivity(); ok {
		_spec.SetField(accountsettings.FieldEmailSocialActivity, field.TypeBool, value)
		_node.EmailSocialActivity = value
	}
	if value, ok := _c.mutation.EmailPromotions(); ok {
		_spec.SetField(accountsettings.FieldEmailPromotions, field.TypeBool, value)
		_node.EmailPromotions = value
	}
	if value, ok := _c.mutation.TextRsvpUpdates(); ok {
		_spec.SetField(accountsettings.FieldTextRsvpUpdates, field.TypeBool, value)
		_node.TextRsvpUpdates = &value
	}
	if value, ok := _c.mutation.TextSocialActivity(); ok {
		_spec.SetField(accountsettings.FieldTextSocialActivity, field.TypeBool, value)
		_node.TextSocialActivity = &value
	}
	if value, ok := _c.mutation.TextPromotions(); ok {
		_spec.SetField(accountsettings.FieldTextPromotions, field.TypeBool, value)
		_node.TextPromotions = &value
	}
	if value, ok := _c.mutation.DefaultEventPrivacy(); ok {
		_spec.SetField(accountsettings.FieldDefaultEventPrivacy, field.TypeEnum, value)
		_node.DefaultEventPrivacy = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   accountsettings.AccountTable,
			Columns: []string{accountsettings.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AccountSettings.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountSettingsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountSettingsCreate) OnConflict(opts ...sql.ConflictOption) *AccountSettingsUpsertOne {
	_c.conflict = opts
	return &AccountSettingsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AccountSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountSettingsCreate) OnConflictColumns(columns ...string) *AccountSettingsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountSettingsUpsertOne{
		create: _c,
	}
}

type (
	// AccountSettingsUpsertOne is the builder for "upsert"-ing
	//  one AccountSettings node.
	AccountSettingsUpsertOne struct {
		create *AccountSettingsCreate
	}

	// AccountSettingsUpsert is the "OnConflict" setter.
	AccountSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountSettingsUpsert) SetUpdatedAt(v time.Time) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateUpdatedAt() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldUpdatedAt)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *AccountSettingsUpsert) SetAccountID(v string) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateAccountID() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldAccountID)
	return u
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (u *AccountSettingsUpsert) SetEmailRsvpUpdates(v bool) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldEmailRsvpUpdates, v)
	return u
}

// UpdateEmailRsvpUpdates sets the "email_rsvp_updates" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateEmailRsvpUpdates() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldEmailRsvpUpdates)
	return u
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (u *AccountSettingsUpsert) SetEmailSocialActivity(v bool) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldEmailSocialActivity, v)
	return u
}

// UpdateEmailSocialActivity sets the "email_social_activity" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateEmailSocialActivity() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldEmailSocialActivity)
	return u
}

// SetEmailPromotions sets the "email_promotions" field.
func (u *AccountSettingsUpsert) SetEmailPromotions(v bool) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldEmailPromotions, v)
	return u
}

// UpdateEmailPromotions sets the "email_promotions" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateEmailPromotions() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldEmailPromotions)
	return u
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (u *AccountSettingsUpsert) SetTextRsvpUpdates(v bool) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldTextRsvpUpdates, v)
	return u
}

// UpdateTextRsvpUpdates sets the "text_rsvp_updates" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateTextRsvpUpdates() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldTextRsvpUpdates)
	return u
}

// ClearTextRsvpUpdates clears the value of the "text_rsvp_updates" field.
func (u *AccountSettingsUpsert) ClearTextRsvpUpdates() *AccountSettingsUpsert {
	u.SetNull(accountsettings.FieldTextRsvpUpdates)
	return u
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (u *AccountSettingsUpsert) SetTextSocialActivity(v bool) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldTextSocialActivity, v)
	return u
}

// UpdateTextSocialActivity sets the "text_social_activity" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateTextSocialActivity() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldTextSocialActivity)
	return u
}

// ClearTextSocialActivity clears the value of the "text_social_activity" field.
func (u *AccountSettingsUpsert) ClearTextSocialActivity() *AccountSettingsUpsert {
	u.SetNull(accountsettings.FieldTextSocialActivity)
	return u
}

// SetTextPromotions sets the "text_promotions" field.
func (u *AccountSettingsUpsert) SetTextPromotions(v bool) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldTextPromotions, v)
	return u
}

// UpdateTextPromotions sets the "text_promotions" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateTextPromotions() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldTextPromotions)
	return u
}

// ClearTextPromotions clears the value of the "text_promotions" field.
func (u *AccountSettingsUpsert) ClearTextPromotions() *AccountSettingsUpsert {
	u.SetNull(accountsettings.FieldTextPromotions)
	return u
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (u *AccountSettingsUpsert) SetDefaultEventPrivacy(v accountsettings.DefaultEventPrivacy) *AccountSettingsUpsert {
	u.Set(accountsettings.FieldDefaultEventPrivacy, v)
	return u
}

// UpdateDefaultEventPrivacy sets the "default_event_privacy" field to the value that was provided on create.
func (u *AccountSettingsUpsert) UpdateDefaultEventPrivacy() *AccountSettingsUpsert {
	u.SetExcluded(accountsettings.FieldDefaultEventPrivacy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AccountSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(accountsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountSettingsUpsertOne) UpdateNewValues() *AccountSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(accountsettings.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(accountsettings.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AccountSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AccountSettingsUpsertOne) Ignore() *AccountSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountSettingsUpsertOne) DoNothing() *AccountSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountSettingsCreate.OnConflict
// documentation for more info.
func (u *AccountSettingsUpsertOne) Update(set func(*AccountSettingsUpsert)) *AccountSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountSettingsUpsertOne) SetUpdatedAt(v time.Time) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateUpdatedAt() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *AccountSettingsUpsertOne) SetAccountID(v string) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateAccountID() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateAccountID()
	})
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (u *AccountSettingsUpsertOne) SetEmailRsvpUpdates(v bool) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetEmailRsvpUpdates(v)
	})
}

// UpdateEmailRsvpUpdates sets the "email_rsvp_updates" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateEmailRsvpUpdates() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateEmailRsvpUpdates()
	})
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (u *AccountSettingsUpsertOne) SetEmailSocialActivity(v bool) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetEmailSocialActivity(v)
	})
}

// UpdateEmailSocialActivity sets the "email_social_activity" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateEmailSocialActivity() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateEmailSocialActivity()
	})
}

// SetEmailPromotions sets the "email_promotions" field.
func (u *AccountSettingsUpsertOne) SetEmailPromotions(v bool) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetEmailPromotions(v)
	})
}

// UpdateEmailPromotions sets the "email_promotions" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateEmailPromotions() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateEmailPromotions()
	})
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (u *AccountSettingsUpsertOne) SetTextRsvpUpdates(v bool) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetTextRsvpUpdates(v)
	})
}

// UpdateTextRsvpUpdates sets the "text_rsvp_updates" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateTextRsvpUpdates() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateTextRsvpUpdates()
	})
}

// ClearTextRsvpUpdates clears the value of the "text_rsvp_updates" field.
func (u *AccountSettingsUpsertOne) ClearTextRsvpUpdates() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.ClearTextRsvpUpdates()
	})
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (u *AccountSettingsUpsertOne) SetTextSocialActivity(v bool) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetTextSocialActivity(v)
	})
}

// UpdateTextSocialActivity sets the "text_social_activity" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateTextSocialActivity() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateTextSocialActivity()
	})
}

// ClearTextSocialActivity clears the value of the "text_social_activity" field.
func (u *AccountSettingsUpsertOne) ClearTextSocialActivity() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.ClearTextSocialActivity()
	})
}

// SetTextPromotions sets the "text_promotions" field.
func (u *AccountSettingsUpsertOne) SetTextPromotions(v bool) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetTextPromotions(v)
	})
}

// UpdateTextPromotions sets the "text_promotions" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateTextPromotions() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateTextPromotions()
	})
}

// ClearTextPromotions clears the value of the "text_promotions" field.
func (u *AccountSettingsUpsertOne) ClearTextPromotions() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.ClearTextPromotions()
	})
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (u *AccountSettingsUpsertOne) SetDefaultEventPrivacy(v accountsettings.DefaultEventPrivacy) *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetDefaultEventPrivacy(v)
	})
}

// UpdateDefaultEventPrivacy sets the "default_event_privacy" field to the value that was provided on create.
func (u *AccountSettingsUpsertOne) UpdateDefaultEventPrivacy() *AccountSettingsUpsertOne {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateDefaultEventPrivacy()
	})
}

// Exec executes the query.
func (u *AccountSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AccountSettingsUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AccountSettingsUpsertOne.ID is not supported by MySQL driver. Use AccountSettingsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AccountSettingsUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountSettingsCreateBulk is the builder for creating many AccountSettings entities in bulk.
type AccountSettingsCreateBulk struct {
	config
	err      error
	builders []*AccountSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the AccountSettings entities in the database.
func (_c *AccountSettingsCreateBulk) Save(ctx context.Context) ([]*AccountSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AccountSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountSettingsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AccountSettingsCreateBulk) SaveX(ctx context.Context) []*AccountSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AccountSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountSettingsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *AccountSettingsUpsertBulk {
	_c.conflict = opts
	return &AccountSettingsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AccountSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountSettingsCreateBulk) OnConflictColumns(columns ...string) *AccountSettingsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountSettingsUpsertBulk{
		create: _c,
	}
}

// AccountSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of AccountSettings nodes.
type AccountSettingsUpsertBulk struct {
	create *AccountSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AccountSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(accountsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountSettingsUpsertBulk) UpdateNewValues() *AccountSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(accountsettings.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(accountsettings.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AccountSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AccountSettingsUpsertBulk) Ignore() *AccountSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountSettingsUpsertBulk) DoNothing() *AccountSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *AccountSettingsUpsertBulk) Update(set func(*AccountSettingsUpsert)) *AccountSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountSettingsUpsertBulk) SetUpdatedAt(v time.Time) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateUpdatedAt() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *AccountSettingsUpsertBulk) SetAccountID(v string) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateAccountID() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateAccountID()
	})
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (u *AccountSettingsUpsertBulk) SetEmailRsvpUpdates(v bool) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetEmailRsvpUpdates(v)
	})
}

// UpdateEmailRsvpUpdates sets the "email_rsvp_updates" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateEmailRsvpUpdates() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateEmailRsvpUpdates()
	})
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (u *AccountSettingsUpsertBulk) SetEmailSocialActivity(v bool) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetEmailSocialActivity(v)
	})
}

// UpdateEmailSocialActivity sets the "email_social_activity" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateEmailSocialActivity() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateEmailSocialActivity()
	})
}

// SetEmailPromotions sets the "email_promotions" field.
func (u *AccountSettingsUpsertBulk) SetEmailPromotions(v bool) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetEmailPromotions(v)
	})
}

// UpdateEmailPromotions sets the "email_promotions" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateEmailPromotions() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateEmailPromotions()
	})
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (u *AccountSettingsUpsertBulk) SetTextRsvpUpdates(v bool) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetTextRsvpUpdates(v)
	})
}

// UpdateTextRsvpUpdates sets the "text_rsvp_updates" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateTextRsvpUpdates() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateTextRsvpUpdates()
	})
}

// ClearTextRsvpUpdates clears the value of the "text_rsvp_updates" field.
func (u *AccountSettingsUpsertBulk) ClearTextRsvpUpdates() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.ClearTextRsvpUpdates()
	})
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (u *AccountSettingsUpsertBulk) SetTextSocialActivity(v bool) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetTextSocialActivity(v)
	})
}

// UpdateTextSocialActivity sets the "text_social_activity" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateTextSocialActivity() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateTextSocialActivity()
	})
}

// ClearTextSocialActivity clears the value of the "text_social_activity" field.
func (u *AccountSettingsUpsertBulk) ClearTextSocialActivity() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.ClearTextSocialActivity()
	})
}

// SetTextPromotions sets the "text_promotions" field.
func (u *AccountSettingsUpsertBulk) SetTextPromotions(v bool) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetTextPromotions(v)
	})
}

// UpdateTextPromotions sets the "text_promotions" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateTextPromotions() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateTextPromotions()
	})
}

// ClearTextPromotions clears the value of the "text_promotions" field.
func (u *AccountSettingsUpsertBulk) ClearTextPromotions() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.ClearTextPromotions()
	})
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (u *AccountSettingsUpsertBulk) SetDefaultEventPrivacy(v accountsettings.DefaultEventPrivacy) *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.SetDefaultEventPrivacy(v)
	})
}

// UpdateDefaultEventPrivacy sets the "default_event_privacy" field to the value that was provided on create.
func (u *AccountSettingsUpsertBulk) UpdateDefaultEventPrivacy() *AccountSettingsUpsertBulk {
	return u.Update(func(s *AccountSettingsUpsert) {
		s.UpdateDefaultEventPrivacy()
	})
}

// Exec executes the query.
func (u *AccountSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AccountSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
