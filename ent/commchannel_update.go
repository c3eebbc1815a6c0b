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
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/predicate"
)

// CommChannelUpdate is the builder for updating CommChannel entities.
type CommChannelUpdate struct {
	config
	hooks    []Hook
	mutation *CommChannelMutation
}

// Where appends a list predicates to the CommChannelUpdate builder.
func (_u *CommChannelUpdate) Where(ps ...predicate.CommChannel) *CommChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommChannelUpdate) SetUpdatedAt(v time.Time) *CommChannelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CommChannelUpdate) SetAccountID(v string) *CommChannelUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CommChannelUpdate) SetNillableAccountID(v *string) *CommChannelUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetCommType sets the "comm_type" field.
func (_u *CommChannelUpdate) SetCommType(v commchannel.CommType) *CommChannelUpdate {
	_u.mutation.SetCommType(v)
	return _u
}

// SetNillableCommType sets the "comm_type" field if the given value is not nil.
func (_u *CommChannelUpdate) SetNillableCommType(v *commchannel.CommType) *CommChannelUpdate {
	if v != nil {
		_u.SetCommType(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *CommChannelUpdate) SetEndpoint(v string) *CommChannelUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *CommChannelUpdate) SetNillableEndpoint(v *string) *CommChannelUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetValidationDate sets the "validation_date" field.
func (_u *CommChannelUpdate) SetValidationDate(v time.Time) *CommChannelUpdate {
	_u.mutation.SetValidationDate(v)
	return _u
}

// SetNillableValidationDate sets the "validation_date" field if the given value is not nil.
func (_u *CommChannelUpdate) SetNillableValidationDate(v *time.Time) *CommChannelUpdate {
	if v != nil {
		_u.SetValidationDate(*v)
	}
	return _u
}

// ClearValidationDate clears the value of the "validation_date" field.
func (_u *CommChannelUpdate) ClearValidationDate() *CommChannelUpdate {
	_u.mutation.ClearValidationDate()
	return _u
}

// SetMessageSentDate sets the "message_sent_date" field.
func (_u *CommChannelUpdate) SetMessageSentDate(v time.Time) *CommChannelUpdate {
	_u.mutation.SetMessageSentDate(v)
	return _u
}

// SetNillableMessageSentDate sets the "message_sent_date" field if the given value is not nil.
func (_u *CommChannelUpdate) SetNillableMessageSentDate(v *time.Time) *CommChannelUpdate {
	if v != nil {
		_u.SetMessageSentDate(*v)
	}
	return _u
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (_u *CommChannelUpdate) ClearMessageSentDate() *CommChannelUpdate {
	_u.mutation.ClearMessageSentDate()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *CommChannelUpdate) SetAccount(v *Account) *CommChannelUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the CommChannelMutation object of the builder.
func (_u *CommChannelUpdate) Mutation() *CommChannelMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *CommChannelUpdate) ClearAccount() *CommChannelUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommChannelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommChannelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commchannel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommChannelUpdate) check() error {
	if v, ok := _u.mutation.CommType(); ok {
		if err := commchannel.CommTypeValidator(v); err != nil {
			return &ValidationError{Name: "comm_type", err: fmt.Errorf(`ent: validator failed for field "CommChannel.comm_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := commchannel.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "CommChannel.endpoint": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommChannel.account"`)
	}
	return nil
}

func (_u *CommChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commchannel.Table, commchannel.Columns, sqlgraph.NewFieldSpec(commchannel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commchannel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CommType(); ok {
		_spec.SetField(commchannel.FieldCommType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(commchannel.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationDate(); ok {
		_spec.SetField(commchannel.FieldValidationDate, field.TypeTime, value)
	}
	if _u.mutation.ValidationDateCleared() {
		_spec.ClearField(commchannel.FieldValidationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MessageSentDate(); ok {
		_spec.SetField(commchannel.FieldMessageSentDate, field.TypeTime, value)
	}
	if _u.mutation.MessageSentDateCleared() {
		_spec.ClearField(commchannel.FieldMessageSentDate, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commchannel.AccountTable,
			Columns: []string{commchannel.AccountColumn},
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
			Table:   commchannel.AccountTable,
			Columns: []string{commchannel.AccountColumn},
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
			err = &NotFoundError{commchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommChannelUpdateOne is the builder for updating a single CommChannel entity.
type CommChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommChannelMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommChannelUpdateOne) SetUpdatedAt(v time.Time) *CommChannelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CommChannelUpdateOne) SetAccountID(v string) *CommChannelUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CommChannelUpdateOne) SetNillableAccountID(v *string) *CommChannelUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetCommType sets the "comm_type" field.
func (_u *CommChannelUpdateOne) SetCommType(v commchannel.CommType) *CommChannelUpdateOne {
	_u.mutation.SetCommType(v)
	return _u
}

// SetNillableCommType sets the "comm_type" field if the given value is not nil.
func (_u *CommChannelUpdateOne) SetNillableCommType(v *commchannel.CommType) *CommChannelUpdateOne {
	if v != nil {
		_u.SetCommType(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *CommChannelUpdateOne) SetEndpoint(v string) *CommChannelUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *CommChannelUpdateOne) SetNillableEndpoint(v *string) *CommChannelUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetValidationDate sets the "validation_date" field.
func (_u *CommChannelUpdateOne) SetValidationDate(v time.Time) *CommChannelUpdateOne {
	_u.mutation.SetValidationDate(v)
	return _u
}

// SetNillableValidationDate sets the "validation_date" field if the given value is not nil.
func (_u *CommChannelUpdateOne) SetNillableValidationDate(v *time.Time) *CommChannelUpdateOne {
	if v != nil {
		_u.SetValidationDate(*v)
	}
	return _u
}

// ClearValidationDate clears the value of the "validation_date" field.
func (_u *CommChannelUpdateOne) ClearValidationDate() *CommChannelUpdateOne {
	_u.mutation.ClearValidationDate()
	return _u
}

// SetMessageSentDate sets the "message_sent_date" field.
func (_u *CommChannelUpdateOne) SetMessageSentDate(v time.Time) *CommChannelUpdateOne {
	_u.mutation.SetMessageSentDate(v)
	return _u
}

// SetNillableMessageSentDate sets the "message_sent_date" field if the given value is not nil.
func (_u *CommChannelUpdateOne) SetNillableMessageSentDate(v *time.Time) *CommChannelUpdateOne {
	if v != nil {
		_u.SetMessageSentDate(*v)
	}
	return _u
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (_u *CommChannelUpdateOne) ClearMessageSentDate() *CommChannelUpdateOne {
	_u.mutation.ClearMessageSentDate()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *CommChannelUpdateOne) SetAccount(v *Account) *CommChannelUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the CommChannelMutation object of the builder.
func (_u *CommChannelUpdateOne) Mutation() *CommChannelMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *CommChannelUpdateOne) ClearAccount() *CommChannelUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the CommChannelUpdate builder.
func (_u *CommChannelUpdateOne) Where(ps ...predicate.CommChannel) *CommChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommChannelUpdateOne) Select(field string, fields ...string) *CommChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommChannel entity.
func (_u *CommChannelUpdateOne) Save(ctx context.Context) (*CommChannel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommChannelUpdateOne) SaveX(ctx context.Context) *CommChannel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommChannelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commchannel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommChannelUpdateOne) check() error {
	if v, ok := _u.mutation.CommType(); ok {
		if err := commchannel.CommTypeValidator(v); err != nil {
			return &ValidationError{Name: "comm_type", err: fmt.Errorf(`ent: validator failed for field "CommChannel.comm_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := commchannel.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "CommChannel.endpoint": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommChannel.account"`)
	}
	return nil
}

func (_u *CommChannelUpdateOne) sqlSave(ctx context.Context) (_node *CommChannel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commchannel.Table, commchannel.Columns, sqlgraph.NewFieldSpec(commchannel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommChannel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commchannel.FieldID)
		for _, f := range fields {
			if !commchannel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commchannel.FieldID {
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
		_spec.SetField(commchannel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CommType(); ok {
		_spec.SetField(commchannel.FieldCommType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(commchannel.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationDate(); ok {
		_spec.SetField(commchannel.FieldValidationDate, field.TypeTime, value)
	}
	if _u.mutation.ValidationDateCleared() {
		_spec.ClearField(commchannel.FieldValidationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MessageSentDate(); ok {
		_spec.SetField(commchannel.FieldMessageSentDate, field.TypeTime, value)
	}
	if _u.mutation.MessageSentDateCleared() {
		_spec.ClearField(commchannel.FieldMessageSentDate, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commchannel.AccountTable,
			Columns: []string{commchannel.AccountColumn},
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
			Table:   commchannel.AccountTable,
			Columns: []string{commchannel.AccountColumn},
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
	_node = &CommChannel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
