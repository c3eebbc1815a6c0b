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
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/predicate"
)

// EventGuestUpdate is the builder for updating EventGuest entities.
type EventGuestUpdate struct {
	config
	hooks    []Hook
	mutation *EventGuestMutation
}

// Where appends a list predicates to the EventGuestUpdate builder.
func (_u *EventGuestUpdate) Where(ps ...predicate.EventGuest) *EventGuestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventGuestUpdate) SetUpdatedAt(v time.Time) *EventGuestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventGuestUpdate) SetEventID(v string) *EventGuestUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventGuestUpdate) SetNillableEventID(v *string) *EventGuestUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *EventGuestUpdate) SetAccountID(v string) *EventGuestUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *EventGuestUpdate) SetNillableAccountID(v *string) *EventGuestUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EventGuestUpdate) SetName(v string) *EventGuestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EventGuestUpdate) SetNillableName(v *string) *EventGuestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *EventGuestUpdate) ClearName() *EventGuestUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetRsvp sets the "rsvp" field.
func (_u *EventGuestUpdate) SetRsvp(v eventguest.Rsvp) *EventGuestUpdate {
	_u.mutation.SetRsvp(v)
	return _u
}

// SetNillableRsvp sets the "rsvp" field if the given value is not nil.
func (_u *EventGuestUpdate) SetNillableRsvp(v *eventguest.Rsvp) *EventGuestUpdate {
	if v != nil {
		_u.SetRsvp(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EventGuestUpdate) SetEvent(v *Event) *EventGuestUpdate {
	return _u.SetEventID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *EventGuestUpdate) SetAccount(v *Account) *EventGuestUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the EventGuestMutation object of the builder.
func (_u *EventGuestUpdate) Mutation() *EventGuestMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EventGuestUpdate) ClearEvent() *EventGuestUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *EventGuestUpdate) ClearAccount() *EventGuestUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventGuestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventGuestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventGuestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventGuestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventGuestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventguest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventGuestUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := eventguest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EventGuest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rsvp(); ok {
		if err := eventguest.RsvpValidator(v); err != nil {
			return &ValidationError{Name: "rsvp", err: fmt.Errorf(`ent: validator failed for field "EventGuest.rsvp": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventGuest.event"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventGuest.account"`)
	}
	return nil
}

func (_u *EventGuestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventguest.Table, eventguest.Columns, sqlgraph.NewFieldSpec(eventguest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventguest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(eventguest.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(eventguest.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Rsvp(); ok {
		_spec.SetField(eventguest.FieldRsvp, field.TypeEnum, value)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventguest.EventTable,
			Columns: []string{eventguest.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventguest.EventTable,
			Columns: []string{eventguest.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventguest.AccountTable,
			Columns: []string{eventguest.AccountColumn},
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
			Table:   eventguest.AccountTable,
			Columns: []string{eventguest.AccountColumn},
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
			err = &NotFoundError{eventguest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventGuestUpdateOne is the builder for updating a single EventGuest entity.
type EventGuestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventGuestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventGuestUpdateOne) SetUpdatedAt(v time.Time) *EventGuestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventGuestUpdateOne) SetEventID(v string) *EventGuestUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventGuestUpdateOne) SetNillableEventID(v *string) *EventGuestUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *EventGuestUpdateOne) SetAccountID(v string) *EventGuestUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *EventGuestUpdateOne) SetNillableAccountID(v *string) *EventGuestUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EventGuestUpdateOne) SetName(v string) *EventGuestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EventGuestUpdateOne) SetNillableName(v *string) *EventGuestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *EventGuestUpdateOne) ClearName() *EventGuestUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetRsvp sets the "rsvp" field.
func (_u *EventGuestUpdateOne) SetRsvp(v eventguest.Rsvp) *EventGuestUpdateOne {
	_u.mutation.SetRsvp(v)
	return _u
}

// SetNillableRsvp sets the "rsvp" field if the given value is not nil.
func (_u *EventGuestUpdateOne) SetNillableRsvp(v *eventguest.Rsvp) *EventGuestUpdateOne {
	if v != nil {
		_u.SetRsvp(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EventGuestUpdateOne) SetEvent(v *Event) *EventGuestUpdateOne {
	return _u.SetEventID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *EventGuestUpdateOne) SetAccount(v *Account) *EventGuestUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the EventGuestMutation object of the builder.
func (_u *EventGuestUpdateOne) Mutation() *EventGuestMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EventGuestUpdateOne) ClearEvent() *EventGuestUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *EventGuestUpdateOne) ClearAccount() *EventGuestUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the EventGuestUpdate builder.
func (_u *EventGuestUpdateOne) Where(ps ...predicate.EventGuest) *EventGuestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventGuestUpdateOne) Select(field string, fields ...string) *EventGuestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventGuest entity.
func (_u *EventGuestUpdateOne) Save(ctx context.Context) (*EventGuest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventGuestUpdateOne) SaveX(ctx context.Context) *EventGuest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventGuestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventGuestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventGuestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventguest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventGuestUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := eventguest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EventGuest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rsvp(); ok {
		if err := eventguest.RsvpValidator(v); err != nil {
			return &ValidationError{Name: "rsvp", err: fmt.Errorf(`ent: validator failed for field "EventGuest.rsvp": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventGuest.event"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventGuest.account"`)
	}
	return nil
}

func (_u *EventGuestUpdateOne) sqlSave(ctx context.Context) (_node *EventGuest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventguest.Table, eventguest.Columns, sqlgraph.NewFieldSpec(eventguest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventGuest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventguest.FieldID)
		for _, f := range fields {
			if !eventguest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventguest.FieldID {
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
		_spec.SetField(eventguest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(eventguest.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(eventguest.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Rsvp(); ok {
		_spec.SetField(eventguest.FieldRsvp, field.TypeEnum, value)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventguest.EventTable,
			Columns: []string{eventguest.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventguest.EventTable,
			Columns: []string{eventguest.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventguest.AccountTable,
			Columns: []string{eventguest.AccountColumn},
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
			Table:   eventguest.AccountTable,
			Columns: []string{eventguest.AccountColumn},
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
	_node = &EventGuest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventguest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
