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
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
)

// EventGuestCreate is the builder for creating a EventGuest entity.
type EventGuestCreate struct {
	config
	mutation *EventGuestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventGuestCreate) SetCreatedAt(v time.Time) *EventGuestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventGuestCreate) SetNillableCreatedAt(v *time.Time) *EventGuestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventGuestCreate) SetUpdatedAt(v time.Time) *EventGuestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventGuestCreate) SetNillableUpdatedAt(v *time.Time) *EventGuestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *EventGuestCreate) SetEventID(v string) *EventGuestCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *EventGuestCreate) SetAccountID(v string) *EventGuestCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EventGuestCreate) SetName(v string) *EventGuestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *EventGuestCreate) SetNillableName(v *string) *EventGuestCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetRsvp sets the "rsvp" field.
func (_c *EventGuestCreate) SetRsvp(v eventguest.Rsvp) *EventGuestCreate {
	_c.mutation.SetRsvp(v)
	return _c
}

// SetNillableRsvp sets the "rsvp" field if the given value is not nil.
func (_c *EventGuestCreate) SetNillableRsvp(v *eventguest.Rsvp) *EventGuestCreate {
	if v != nil {
		_c.SetRsvp(*v)
	}
	return _c
}

// SetToken sets the "token" field.
func (_c *EventGuestCreate) SetToken(v string) *EventGuestCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EventGuestCreate) SetID(v string) *EventGuestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *EventGuestCreate) SetEvent(v *Event) *EventGuestCreate {
	return _c.SetEventID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *EventGuestCreate) SetAccount(v *Account) *EventGuestCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the EventGuestMutation object of the builder.
func (_c *EventGuestCreate) Mutation() *EventGuestMutation {
	return _c.mutation
}

// Save creates the EventGuest in the database.
func (_c *EventGuestCreate) Save(ctx context.Context) (*EventGuest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventGuestCreate) SaveX(ctx context.Context) *EventGuest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventGuestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventGuestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventGuestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventguest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := eventguest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Rsvp(); !ok {
		v := eventguest.DefaultRsvp
		_c.mutation.SetRsvp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventGuestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventGuest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EventGuest.updated_at"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventGuest.event_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "EventGuest.account_id"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := eventguest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EventGuest.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rsvp(); !ok {
		return &ValidationError{Name: "rsvp", err: errors.New(`ent: missing required field "EventGuest.rsvp"`)}
	}
	if v, ok := _c.mutation.Rsvp(); ok {
		if err := eventguest.RsvpValidator(v); err != nil {
			return &ValidationError{Name: "rsvp", err: fmt.Errorf(`ent: validator failed for field "EventGuest.rsvp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "EventGuest.token"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "EventGuest.event"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "EventGuest.account"`)}
	}
	return nil
}

func (_c *EventGuestCreate) sqlSave(ctx context.Context) (*EventGuest, error) {
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
			return nil, fmt.Errorf("unexpected EventGuest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventGuestCreate) createSpec() (*EventGuest, *sqlgraph.CreateSpec) {
	var (
		_node = &EventGuest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventguest.Table, sqlgraph.NewFieldSpec(eventguest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventguest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(eventguest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(eventguest.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Rsvp(); ok {
		_spec.SetField(eventguest.FieldRsvp, field.TypeEnum, value)
		_node.Rsvp = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(eventguest.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
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
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventGuest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventGuestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EventGuestCreate) OnConflict(opts ...sql.ConflictOption) *EventGuestUpsertOne {
	_c.conflict = opts
	return &EventGuestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventGuest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventGuestCreate) OnConflictColumns(columns ...string) *EventGuestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventGuestUpsertOne{
		create: _c,
	}
}

type (
	// EventGuestUpsertOne is the builder for "upsert"-ing
	//  one EventGuest node.
	EventGuestUpsertOne struct {
		create *EventGuestCreate
	}

	// EventGuestUpsert is the "OnConflict" setter.
	EventGuestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EventGuestUpsert) SetUpdatedAt(v time.Time) *EventGuestUpsert {
	u.Set(eventguest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventGuestUpsert) UpdateUpdatedAt() *EventGuestUpsert {
	u.SetExcluded(eventguest.FieldUpdatedAt)
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventGuestUpsert) SetEventID(v string) *EventGuestUpsert {
	u.Set(eventguest.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventGuestUpsert) UpdateEventID() *EventGuestUpsert {
	u.SetExcluded(eventguest.FieldEventID)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *EventGuestUpsert) SetAccountID(v string) *EventGuestUpsert {
	u.Set(eventguest.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *EventGuestUpsert) UpdateAccountID() *EventGuestUpsert {
	u.SetExcluded(eventguest.FieldAccountID)
	return u
}

// SetName sets the "name" field.
func (u *EventGuestUpsert) SetName(v string) *EventGuestUpsert {
	u.Set(eventguest.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EventGuestUpsert) UpdateName() *EventGuestUpsert {
	u.SetExcluded(eventguest.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *EventGuestUpsert) ClearName() *EventGuestUpsert {
	u.SetNull(eventguest.FieldName)
	return u
}

// SetRsvp sets the "rsvp" field.
func (u *EventGuestUpsert) SetRsvp(v eventguest.Rsvp) *EventGuestUpsert {
	u.Set(eventguest.FieldRsvp, v)
	return u
}

// UpdateRsvp sets the "rsvp" field to the value that was provided on create.
func (u *EventGuestUpsert) UpdateRsvp() *EventGuestUpsert {
	u.SetExcluded(eventguest.FieldRsvp)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EventGuest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventguest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventGuestUpsertOne) UpdateNewValues() *EventGuestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eventguest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(eventguest.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Token(); exists {
			s.SetIgnore(eventguest.FieldToken)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventGuest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventGuestUpsertOne) Ignore() *EventGuestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventGuestUpsertOne) DoNothing() *EventGuestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventGuestCreate.OnConflict
// documentation for more info.
func (u *EventGuestUpsertOne) Update(set func(*EventGuestUpsert)) *EventGuestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventGuestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventGuestUpsertOne) SetUpdatedAt(v time.Time) *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventGuestUpsertOne) UpdateUpdatedAt() *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *EventGuestUpsertOne) SetEventID(v string) *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventGuestUpsertOne) UpdateEventID() *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateEventID()
	})
}

// SetAccountID sets the "account_id" field.
func (u *EventGuestUpsertOne) SetAccountID(v string) *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *EventGuestUpsertOne) UpdateAccountID() *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateAccountID()
	})
}

// SetName sets the "name" field.
func (u *EventGuestUpsertOne) SetName(v string) *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EventGuestUpsertOne) UpdateName() *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *EventGuestUpsertOne) ClearName() *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.ClearName()
	})
}

// SetRsvp sets the "rsvp" field.
func (u *EventGuestUpsertOne) SetRsvp(v eventguest.Rsvp) *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetRsvp(v)
	})
}

// UpdateRsvp sets the "rsvp" field to the value that was provided on create.
func (u *EventGuestUpsertOne) UpdateRsvp() *EventGuestUpsertOne {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateRsvp()
	})
}

// Exec executes the query.
func (u *EventGuestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventGuestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventGuestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventGuestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventGuestUpsertOne.ID is not supported by MySQL driver. Use EventGuestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventGuestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventGuestCreateBulk is the builder for creating many EventGuest entities in bulk.
type EventGuestCreateBulk struct {
	config
	err      error
	builders []*EventGuestCreate
	conflict []sql.ConflictOption
}

// Save creates the EventGuest entities in the database.
func (_c *EventGuestCreateBulk) Save(ctx context.Context) ([]*EventGuest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventGuest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventGuestMutation)
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
func (_c *EventGuestCreateBulk) SaveX(ctx context.Context) []*EventGuest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventGuestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventGuestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventGuest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventGuestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EventGuestCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventGuestUpsertBulk {
	_c.conflict = opts
	return &EventGuestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventGuest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventGuestCreateBulk) OnConflictColumns(columns ...string) *EventGuestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventGuestUpsertBulk{
		create: _c,
	}
}

// EventGuestUpsertBulk is the builder for "upsert"-ing
// a bulk of EventGuest nodes.
type EventGuestUpsertBulk struct {
	create *EventGuestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventGuest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventguest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventGuestUpsertBulk) UpdateNewValues() *EventGuestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eventguest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(eventguest.FieldCreatedAt)
			}
			if _, exists := b.mutation.Token(); exists {
				s.SetIgnore(eventguest.FieldToken)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventGuest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventGuestUpsertBulk) Ignore() *EventGuestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventGuestUpsertBulk) DoNothing() *EventGuestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventGuestCreateBulk.OnConflict
// documentation for more info.
func (u *EventGuestUpsertBulk) Update(set func(*EventGuestUpsert)) *EventGuestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventGuestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventGuestUpsertBulk) SetUpdatedAt(v time.Time) *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventGuestUpsertBulk) UpdateUpdatedAt() *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *EventGuestUpsertBulk) SetEventID(v string) *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventGuestUpsertBulk) UpdateEventID() *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateEventID()
	})
}

// SetAccountID sets the "account_id" field.
func (u *EventGuestUpsertBulk) SetAccountID(v string) *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *EventGuestUpsertBulk) UpdateAccountID() *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateAccountID()
	})
}

// SetName sets the "name" field.
func (u *EventGuestUpsertBulk) SetName(v string) *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EventGuestUpsertBulk) UpdateName() *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *EventGuestUpsertBulk) ClearName() *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.ClearName()
	})
}

// SetRsvp sets the "rsvp" field.
func (u *EventGuestUpsertBulk) SetRsvp(v eventguest.Rsvp) *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.SetRsvp(v)
	})
}

// UpdateRsvp sets the "rsvp" field to the value that was provided on create.
func (u *EventGuestUpsertBulk) UpdateRsvp() *EventGuestUpsertBulk {
	return u.Update(func(s *EventGuestUpsert) {
		s.UpdateRsvp()
	})
}

// Exec executes the query.
func (u *EventGuestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventGuestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventGuestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventGuestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
