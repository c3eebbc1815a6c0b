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
	"planora.io/planora/ent/passwordreset"
	"planora.io/planora/ent/predicate"
)

// PasswordResetUpdate is the builder for updating PasswordReset entities.
type PasswordResetUpdate struct {
	config
	hooks    []Hook
	mutation *PasswordResetMutation
}

// Where appends a list predicates to the PasswordResetUpdate builder.
func (_u *PasswordResetUpdate) Where(ps ...predicate.PasswordReset) *PasswordResetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PasswordResetUpdate) SetUpdatedAt(v time.Time) *PasswordResetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *PasswordResetUpdate) SetAccountID(v string) *PasswordResetUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableAccountID(v *string) *PasswordResetUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PasswordResetUpdate) SetEmail(v string) *PasswordResetUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableEmail(v *string) *PasswordResetUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetMessageSentDate sets the "message_sent_date" field.
func (_u *PasswordResetUpdate) SetMessageSentDate(v time.Time) *PasswordResetUpdate {
	_u.mutation.SetMessageSentDate(v)
	return _u
}

// SetNillableMessageSentDate sets the "message_sent_date" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableMessageSentDate(v *time.Time) *PasswordResetUpdate {
	if v != nil {
		_u.SetMessageSentDate(*v)
	}
	return _u
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (_u *PasswordResetUpdate) ClearMessageSentDate() *PasswordResetUpdate {
	_u.mutation.ClearMessageSentDate()
	return _u
}

// SetResetDate sets the "reset_date" field.
func (_u *PasswordResetUpdate) SetResetDate(v time.Time) *PasswordResetUpdate {
	_u.mutation.SetResetDate(v)
	return _u
}

// SetNillableResetDate sets the "reset_date" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableResetDate(v *time.Time) *PasswordResetUpdate {
	if v != nil {
		_u.SetResetDate(*v)
	}
	return _u
}

// ClearResetDate clears the value of the "reset_date" field.
func (_u *PasswordResetUpdate) ClearResetDate() *PasswordResetUpdate {
	_u.mutation.ClearResetDate()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *PasswordResetUpdate) SetAccount(v *Account) *PasswordResetUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the PasswordResetMutation object of the builder.
func (_u *PasswordResetUpdate) Mutation() *PasswordResetMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *PasswordResetUpdate) ClearAccount() *PasswordResetUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PasswordResetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PasswordResetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PasswordResetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PasswordResetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PasswordResetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passwordreset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PasswordResetUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := passwordreset.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.email": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PasswordReset.account"`)
	}
	return nil
}

func (_u *PasswordResetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passwordreset.Table, passwordreset.Columns, sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passwordreset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(passwordreset.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageSentDate(); ok {
		_spec.SetField(passwordreset.FieldMessageSentDate, field.TypeTime, value)
	}
	if _u.mutation.MessageSentDateCleared() {
		_spec.ClearField(passwordreset.FieldMessageSentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ResetDate(); ok {
		_spec.SetField(passwordreset.FieldResetDate, field.TypeTime, value)
	}
	if _u.mutation.ResetDateCleared() {
		_spec.ClearField(passwordreset.FieldResetDate, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passwordreset.AccountTable,
			Columns: []string{passwordreset.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passwordreset.AccountTable,
			Columns: []string{passwordreset.AccountColumn},
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
			err = &NotFoundError{passwordreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PasswordResetUpdateOne is the builder for updating a single PasswordReset entity.
type PasswordResetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PasswordResetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PasswordResetUpdateOne) SetUpdatedAt(v time.Time) *PasswordResetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *PasswordResetUpdateOne) SetAccountID(v string) *PasswordResetUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableAccountID(v *string) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PasswordResetUpdateOne) SetEmail(v string) *PasswordResetUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableEmail(v *string) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetMessageSentDate sets the "message_sent_date" field.
func (_u *PasswordResetUpdateOne) SetMessageSentDate(v time.Time) *PasswordResetUpdateOne {
	_u.mutation.SetMessageSentDate(v)
	return _u
}

// SetNillableMessageSentDate sets the "message_sent_date" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableMessageSentDate(v *time.Time) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetMessageSentDate(*v)
	}
	return _u
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (_u *PasswordResetUpdateOne) ClearMessageSentDate() *PasswordResetUpdateOne {
	_u.mutation.ClearMessageSentDate()
	return _u
}

// SetResetDate sets the "reset_date" field.
func (_u *PasswordResetUpdateOne) SetResetDate(v time.Time) *PasswordResetUpdateOne {
	_u.mutation.SetResetDate(v)
	return _u
}

// SetNillableResetDate sets the "reset_date" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableResetDate(v *time.Time) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetResetDate(*v)
	}
	return _u
}

// ClearResetDate clears the value of the "reset_date" field.
func (_u *PasswordResetUpdateOne) ClearResetDate() *PasswordResetUpdateOne {
	_u.mutation.ClearResetDate()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *PasswordResetUpdateOne) SetAccount(v *Account) *PasswordResetUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the PasswordResetMutation object of the builder.
func (_u *PasswordResetUpdateOne) Mutation() *PasswordResetMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *PasswordResetUpdateOne) ClearAccount() *PasswordResetUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the PasswordResetUpdate builder.
func (_u *PasswordResetUpdateOne) Where(ps ...predicate.PasswordReset) *PasswordResetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PasswordResetUpdateOne) Select(field string, fields ...string) *PasswordResetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PasswordReset entity.
func (_u *PasswordResetUpdateOne) Save(ctx context.Context) (*PasswordReset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PasswordResetUpdateOne) SaveX(ctx context.Context) *PasswordReset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PasswordResetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PasswordResetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PasswordResetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passwordreset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PasswordResetUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := passwordreset.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.email": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PasswordReset.account"`)
	}
	return nil
}

func (_u *PasswordResetUpdateOne) sqlSave(ctx context.Context) (_node *PasswordReset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passwordreset.Table, passwordreset.Columns, sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PasswordReset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passwordreset.FieldID)
		for _, f := range fields {
			if !passwordreset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passwordreset.FieldID {
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
		_spec.SetField(passwordreset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(passwordreset.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageSentDate(); ok {
		_spec.SetField(passwordreset.FieldMessageSentDate, field.TypeTime, value)
	}
	if _u.mutation.MessageSentDateCleared() {
		_spec.ClearField(passwordreset.FieldMessageSentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ResetDate(); ok {
		_spec.SetField(passwordreset.FieldResetDate, field.TypeTime, value)
	}
	if _u.mutation.ResetDateCleared() {
		_spec.ClearField(passwordreset.FieldResetDate, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passwordreset.AccountTable,
			Columns: []string{passwordreset.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passwordreset.AccountTable,
			Columns: []string{passwordreset.AccountColumn},
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
	_node = &PasswordReset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passwordreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
