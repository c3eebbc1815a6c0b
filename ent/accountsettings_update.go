// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/predicate"
)

// AccountSettingsUpdate is the builder for updating AccountSettings entities.
type AccountSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *AccountSettingsMutation
}

// Where appends a list predicates to the AccountSettingsUpdate builder.
func (_u *AccountSettingsUpdate) Where(ps ...predicate.AccountSettings) *AccountSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountSettingsUpdate) SetUpdatedAt(v time.Time) *AccountSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *AccountSettingsUpdate) SetAccountID(v string) *AccountSettingsUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableAccountID(v *string) *AccountSettingsUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (_u *AccountSettingsUpdate) SetEmailRsvpUpdates(v bool) *AccountSettingsUpdate {
	_u.mutation.SetEmailRsvpUpdates(v)
	return _u
}

// SetNillableEmailRsvpUpdates sets the "email_rsvp_updates" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableEmailRsvpUpdates(v *bool) *AccountSettingsUpdate {
	if v != nil {
		_u.SetEmailRsvpUpdates(*v)
	}
	return _u
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (_u *AccountSettingsUpdate) SetEmailSocialActivity(v bool) *AccountSettingsUpdate {
	_u.mutation.SetEmailSocialActivity(v)
	return _u
}

// SetNillableEmailSocialActivity sets the "email_social_activity" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableEmailSocialActivity(v *bool) *AccountSettingsUpdate {
	if v != nil {
		_u.SetEmailSocialActivity(*v)
	}
	return _u
}

// SetEmailPromotions sets the "email_promotions" field.
func (_u *AccountSettingsUpdate) SetEmailPromotions(v bool) *AccountSettingsUpdate {
	_u.mutation.SetEmailPromotions(v)
	return _u
}

// SetNillableEmailPromotions sets the "email_promotions" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableEmailPromotions(v *bool) *AccountSettingsUpdate {
	if v != nil {
		_u.SetEmailPromotions(*v)
	}
	return _u
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (_u *AccountSettingsUpdate) SetTextRsvpUpdates(v bool) *AccountSettingsUpdate {
	_u.mutation.SetTextRsvpUpdates(v)
	return _u
}

// SetNillableTextRsvpUpdates sets the "text_rsvp_updates" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableTextRsvpUpdates(v *bool) *AccountSettingsUpdate {
	if v != nil {
		_u.SetTextRsvpUpdates(*v)
	}
	return _u
}

// ClearTextRsvpUpdates clears the value of the "text_rsvp_updates" field.
func (_u *AccountSettingsUpdate) ClearTextRsvpUpdates() *AccountSettingsUpdate {
	_u.mutation.ClearTextRsvpUpdates()
	return _u
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (_u *AccountSettingsUpdate) SetTextSocialActivity(v bool) *AccountSettingsUpdate {
	_u.mutation.SetTextSocialActivity(v)
	return _u
}

// SetNillableTextSocialActivity sets the "text_social_activity" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableTextSocialActivity(v *bool) *AccountSettingsUpdate {
	if v != nil {
		_u.SetTextSocialActivity(*v)
	}
	return _u
}

// ClearTextSocialActivity clears the value of the "text_social_activity" field.
func (_u *AccountSettingsUpdate) ClearTextSocialActivity() *AccountSettingsUpdate {
	_u.mutation.ClearTextSocialActivity()
	return _u
}

// SetTextPromotions sets the "text_promotions" field.
func (_u *AccountSettingsUpdate) SetTextPromotions(v bool) *AccountSettingsUpdate {
	_u.mutation.SetTextPromotions(v)
	return _u
}

// SetNillableTextPromotions sets the "text_promotions" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableTextPromotions(v *bool) *AccountSettingsUpdate {
	if v != nil {
		_u.SetTextPromotions(*v)
	}
	return _u
}

// ClearTextPromotions clears the value of the "text_promotions" field.
func (_u *AccountSettingsUpdate) ClearTextPromotions() *AccountSettingsUpdate {
	_u.mutation.ClearTextPromotions()
	return _u
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (_u *AccountSettingsUpdate) SetDefaultEventPrivacy(v accountsettings.DefaultEventPrivacy) *AccountSettingsUpdate {
	_u.mutation.SetDefaultEventPrivacy(v)
	return _u
}

// SetNillableDefaultEventPrivacy sets the "default_event_privacy" field if the given value is not nil.
func (_u *AccountSettingsUpdate) SetNillableDefaultEventPrivacy(v *accountsettings.DefaultEventPrivacy) *AccountSettingsUpdate {
	if v != nil {
		_u.SetDefaultEventPrivacy(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *AccountSettingsUpdate) SetAccount(v *Account) *AccountSettingsUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the AccountSettingsMutation object of the builder.
func (_u *AccountSettingsUpdate) Mutation() *AccountSettingsMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *AccountSettingsUpdate) ClearAccount() *AccountSettingsUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := accountsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountSettingsUpdate) check() error {
	if v, ok := _u.mutation.DefaultEventPrivacy(); ok {
		if err := accountsettings.DefaultEventPrivacyValidator(v); err != nil {
			return &ValidationError{Name: "default_event_privacy", err: fmt.Errorf(`ent: validator failed for field "AccountSettings.default_event_privacy": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AccountSettings.account"`)
	}
	return nil
}

func (_u *AccountSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accountsettings.Table, accountsettings.Columns, sqlgraph.NewFieldSpec(accountsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(accountsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailRsvpUpdates(); ok {
		_spec.SetField(accountsettings.FieldEmailRsvpUpdates, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailSocialActivity(); ok {
		_spec.SetField(accountsettings.FieldEmailSocialActivity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailPromotions(); ok {
		_spec.SetField(accountsettings.FieldEmailPromotions, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TextRsvpUpdates(); ok {
		_spec.SetField(accountsettings.FieldTextRsvpUpdates, field.TypeBool, value)
	}
	if _u.mutation.TextRsvpUpdatesCleared() {
		_spec.ClearField(accountsettings.FieldTextRsvpUpdates, field.TypeBool)
	}
	if value, ok := _u.mutation.TextSocialActivity(); ok {
		_spec.SetField(accountsettings.FieldTextSocialActivity, field.TypeBool, value)
	}
	if _u.mutation.TextSocialActivityCleared() {
		_spec.ClearField(accountsettings.FieldTextSocialActivity, field.TypeBool)
	}
	if value, ok := _u.mutation.TextPromotions(); ok {
		_spec.SetField(accountsettings.FieldTextPromotions, field.TypeBool, value)
	}
	if _u.mutation.TextPromotionsCleared() {
		_spec.ClearField(accountsettings.FieldTextPromotions, field.TypeBool)
	}
	if value, ok := _u.mutation.DefaultEventPrivacy(); ok {
		_spec.SetField(accountsettings.FieldDefaultEventPrivacy, field.TypeEnum, value)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accountsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountSettingsUpdateOne is the builder for updating a single AccountSettings entity.
type AccountSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountSettingsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountSettingsUpdateOne) SetUpdatedAt(v time.Time) *AccountSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *AccountSettingsUpdateOne) SetAccountID(v string) *AccountSettingsUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableAccountID(v *string) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetEmailRsvpUpdates sets the "email_rsvp_updates" field.
func (_u *AccountSettingsUpdateOne) SetEmailRsvpUpdates(v bool) *AccountSettingsUpdateOne {
	_u.mutation.SetEmailRsvpUpdates(v)
	return _u
}

// SetNillableEmailRsvpUpdates sets the "email_rsvp_updates" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableEmailRsvpUpdates(v *bool) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetEmailRsvpUpdates(*v)
	}
	return _u
}

// SetEmailSocialActivity sets the "email_social_activity" field.
func (_u *AccountSettingsUpdateOne) SetEmailSocialActivity(v bool) *AccountSettingsUpdateOne {
	_u.mutation.SetEmailSocialActivity(v)
	return _u
}

// SetNillableEmailSocialActivity sets the "email_social_activity" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableEmailSocialActivity(v *bool) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetEmailSocialActivity(*v)
	}
	return _u
}

// SetEmailPromotions sets the "email_promotions" field.
func (_u *AccountSettingsUpdateOne) SetEmailPromotions(v bool) *AccountSettingsUpdateOne {
	_u.mutation.SetEmailPromotions(v)
	return _u
}

// SetNillableEmailPromotions sets the "email_promotions" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableEmailPromotions(v *bool) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetEmailPromotions(*v)
	}
	return _u
}

// SetTextRsvpUpdates sets the "text_rsvp_updates" field.
func (_u *AccountSettingsUpdateOne) SetTextRsvpUpdates(v bool) *AccountSettingsUpdateOne {
	_u.mutation.SetTextRsvpUpdates(v)
	return _u
}

// SetNillableTextRsvpUpdates sets the "text_rsvp_updates" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableTextRsvpUpdates(v *bool) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetTextRsvpUpdates(*v)
	}
	return _u
}

// ClearTextRsvpUpdates clears the value of the "text_rsvp_updates" field.
func (_u *AccountSettingsUpdateOne) ClearTextRsvpUpdates() *AccountSettingsUpdateOne {
	_u.mutation.ClearTextRsvpUpdates()
	return _u
}

// SetTextSocialActivity sets the "text_social_activity" field.
func (_u *AccountSettingsUpdateOne) SetTextSocialActivity(v bool) *AccountSettingsUpdateOne {
	_u.mutation.SetTextSocialActivity(v)
	return _u
}

// SetNillableTextSocialActivity sets the "text_social_activity" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableTextSocialActivity(v *bool) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetTextSocialActivity(*v)
	}
	return _u
}

// ClearTextSocialActivity clears the value of the "text_social_activity" field.
func (_u *AccountSettingsUpdateOne) ClearTextSocialActivity() *AccountSettingsUpdateOne {
	_u.mutation.ClearTextSocialActivity()
	return _u
}

// SetTextPromotions sets the "text_promotions" field.
func (_u *AccountSettingsUpdateOne) SetTextPromotions(v bool) *AccountSettingsUpdateOne {
	_u.mutation.SetTextPromotions(v)
	return _u
}

// SetNillableTextPromotions sets the "text_promotions" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableTextPromotions(v *bool) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetTextPromotions(*v)
	}
	return _u
}

// ClearTextPromotions clears the value of the "text_promotions" field.
func (_u *AccountSettingsUpdateOne) ClearTextPromotions() *AccountSettingsUpdateOne {
	_u.mutation.ClearTextPromotions()
	return _u
}

// SetDefaultEventPrivacy sets the "default_event_privacy" field.
func (_u *AccountSettingsUpdateOne) SetDefaultEventPrivacy(v accountsettings.DefaultEventPrivacy) *AccountSettingsUpdateOne {
	_u.mutation.SetDefaultEventPrivacy(v)
	return _u
}

// SetNillableDefaultEventPrivacy sets the "default_event_privacy" field if the given value is not nil.
func (_u *AccountSettingsUpdateOne) SetNillableDefaultEventPrivacy(v *accountsettings.DefaultEventPrivacy) *AccountSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultEventPrivacy(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *AccountSettingsUpdateOne) SetAccount(v *Account) *AccountSettingsUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the AccountSettingsMutation object of the builder.
func (_u *AccountSettingsUpdateOne) Mutation() *AccountSettingsMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *AccountSettingsUpdateOne) ClearAccount() *AccountSettingsUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the AccountSettingsUpdate builder.
func (_u *AccountSettingsUpdateOne) Where(ps ...predicate.AccountSettings) *AccountSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountSettingsUpdateOne) Select(field string, fields ...string) *AccountSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AccountSettings entity.
func (_u *AccountSettingsUpdateOne) Save(ctx context.Context) (*AccountSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountSettingsUpdateOne) SaveX(ctx context.Context) *AccountSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := accountsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountSettingsUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultEventPrivacy(); ok {
		if err := accountsettings.DefaultEventPrivacyValidator(v); err != nil {
			return &ValidationError{Name: "default_event_privacy", err: fmt.Errorf(`ent: validator failed for field "AccountSettings.default_event_privacy": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AccountSettings.account"`)
	}
	return nil
}

func (_u *AccountSettingsUpdateOne) sqlSave(ctx context.Context) (_node *AccountSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accountsettings.Table, accountsettings.Columns, sqlgraph.NewFieldSpec(accountsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccountSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accountsettings.FieldID)
		for _, f := range fields {
			if !accountsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accountsettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(accountsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailRsvpUpdates(); ok {
		_spec.SetField(accountsettings.FieldEmailRsvpUpdates, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailSocialActivity(); ok {
		_spec.SetField(accountsettings.FieldEmailSocialActivity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailPromotions(); ok {
		_spec.SetField(accountsettings.FieldEmailPromotions, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TextRsvpUpdates(); ok {
		_spec.SetField(accountsettings.FieldTextRsvpUpdates, field.TypeBool, value)
	}
	if _u.mutation.TextRsvpUpdatesCleared() {
		_spec.ClearField(accountsettings.FieldTextRsvpUpdates, field.TypeBool)
	}
	if value, ok := _u.mutation.TextSocialActivity(); ok {
		_spec.SetField(accountsettings.FieldTextSocialActivity, field.TypeBool, value)
	}
	if _u.mutation.TextSocialActivityCleared() {
		_spec.ClearField(accountsettings.FieldTextSocialActivity, field.TypeBool)
	}
	if value, ok := _u.mutation.TextPromotions(); ok {
		_spec.SetField(accountsettings.FieldTextPromotions, field.TypeBool, value)
	}
	if _u.mutation.TextPromotionsCleared() {
		_spec.ClearField(accountsettings.FieldTextPromotions, field.TypeBool)
	}
	if value, ok := _u.mutation.DefaultEventPrivacy(); ok {
		_spec.SetField(accountsettings.FieldDefaultEventPrivacy, field.TypeEnum, value)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AccountSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accountsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
