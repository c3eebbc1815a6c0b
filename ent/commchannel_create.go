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
	"planora.io/planora/ent/commchannel"
)

// CommChannelCreate is the builder for creating a CommChannel entity.
type CommChannelCreate struct {
	config
	mutation *CommChannelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommChannelCreate) SetCreatedAt(v time.Time) *CommChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommChannelCreate) SetNillableCreatedAt(v *time.Time) *CommChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommChannelCreate) SetUpdatedAt(v time.Time) *CommChannelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommChannelCreate) SetNillableUpdatedAt(v *time.Time) *CommChannelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *CommChannelCreate) SetAccountID(v string) *CommChannelCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetCommType sets the "comm_type" field.
func (_c *CommChannelCreate) SetCommType(v commchannel.CommType) *CommChannelCreate {
	_c.mutation.SetCommType(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *CommChannelCreate) SetEndpoint(v string) *CommChannelCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetValidationToken sets the "validation_token" field.
func (_c *CommChannelCreate) SetValidationToken(v string) *CommChannelCreate {
	_c.mutation.SetValidationToken(v)
	return _c
}

// SetValidationDate sets the "validation_date" field.
func (_c *CommChannelCreate) SetValidationDate(v time.Time) *CommChannelCreate {
	_c.mutation.SetValidationDate(v)
	return _c
}

// SetNillableValidationDate sets the "validation_date" field if the given value is not nil.
func (_c *CommChannelCreate) SetNillableValidationDate(v *time.Time) *CommChannelCreate {
	if v != nil {
		_c.SetValidationDate(*v)
	}
	return _c
}

// SetMessageSentDate sets the "message_sent_date" field.
func (_c *CommChannelCreate) SetMessageSentDate(v time.Time) *CommChannelCreate {
	_c.mutation.SetMessageSentDate(v)
	return _c
}

// SetNillableMessageSentDate sets the "message_sent_date" field if the given value is not nil.
func (_c *CommChannelCreate) SetNillableMessageSentDate(v *time.Time) *CommChannelCreate {
	if v != nil {
		_c.SetMessageSentDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommChannelCreate) SetID(v string) *CommChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *CommChannelCreate) SetAccount(v *Account) *CommChannelCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the CommChannelMutation object of the builder.
func (_c *CommChannelCreate) Mutation() *CommChannelMutation {
	return _c.mutation
}

// Save creates the CommChannel in the database.
func (_c *CommChannelCreate) Save(ctx context.Context) (*CommChannel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommChannelCreate) SaveX(ctx context.Context) *CommChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommChannelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commchannel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := commchannel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommChannelCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommChannel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CommChannel.updated_at"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "CommChannel.account_id"`)}
	}
	if _, ok := _c.mutation.CommType(); !ok {
		return &ValidationError{Name: "comm_type", err: errors.New(`ent: missing required field "CommChannel.comm_type"`)}
	}
	if v, ok := _c.mutation.CommType(); ok {
		if err := commchannel.CommTypeValidator(v); err != nil {
			return &ValidationError{Name: "comm_type", err: fmt.Errorf(`ent: validator failed for field "CommChannel.comm_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "CommChannel.endpoint"`)}
	}
	if v, ok := _c.mutation.Endpoint(); ok {
		if err := commchannel.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "CommChannel.endpoint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationToken(); !ok {
		return &ValidationError{Name: "validation_token", err: errors.New(`ent: missing required field "CommChannel.validation_token"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "CommChannel.account"`)}
	}
	return nil
}

func (_c *CommChannelCreate) sqlSave(ctx context.Context) (*CommChannel, error) {
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
			return nil, fmt.Errorf("unexpected CommChannel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommChannelCreate) createSpec() (*CommChannel, *sqlgraph.CreateSpec) {
	var (
		_node = &CommChannel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commchannel.Table, sqlgraph.NewFieldSpec(commchannel.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commchannel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(commchannel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CommType(); ok {
		_spec.SetField(commchannel.FieldCommType, field.TypeEnum, value)
		_node.CommType = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(commchannel.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.ValidationToken(); ok {
		_spec.SetField(commchannel.FieldValidationToken, field.TypeString, value)
		_node.ValidationToken = value
	}
	if value, ok := _c.mutation.ValidationDate(); ok {
		_spec.SetField(commchannel.FieldValidationDate, field.TypeTime, value)
		_node.ValidationDate = &value
	}
	if value, ok := _c.mutation.MessageSentDate(); ok {
		_spec.SetField(commchannel.FieldMessageSentDate, field.TypeTime, value)
		_node.MessageSentDate = &value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommChannel.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommChannelUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommChannelCreate) OnConflict(opts ...sql.ConflictOption) *CommChannelUpsertOne {
	_c.conflict = opts
	return &CommChannelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommChannel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommChannelCreate) OnConflictColumns(columns ...string) *CommChannelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommChannelUpsertOne{
		create: _c,
	}
}

type (
	// CommChannelUpsertOne is the builder for "upsert"-ing
	//  one CommChannel node.
	CommChannelUpsertOne struct {
		create *CommChannelCreate
	}

	// CommChannelUpsert is the "OnConflict" setter.
	CommChannelUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CommChannelUpsert) SetUpdatedAt(v time.Time) *CommChannelUpsert {
	u.Set(commchannel.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommChannelUpsert) UpdateUpdatedAt() *CommChannelUpsert {
	u.SetExcluded(commchannel.FieldUpdatedAt)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *CommChannelUpsert) SetAccountID(v string) *CommChannelUpsert {
	u.Set(commchannel.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *CommChannelUpsert) UpdateAccountID() *CommChannelUpsert {
	u.SetExcluded(commchannel.FieldAccountID)
	return u
}

// SetCommType sets the "comm_type" field.
func (u *CommChannelUpsert) SetCommType(v commchannel.CommType) *CommChannelUpsert {
	u.Set(commchannel.FieldCommType, v)
	return u
}

// UpdateCommType sets the "comm_type" field to the value that was provided on create.
func (u *CommChannelUpsert) UpdateCommType() *CommChannelUpsert {
	u.SetExcluded(commchannel.FieldCommType)
	return u
}

// SetEndpoint sets the "endpoint" field.
func (u *CommChannelUpsert) SetEndpoint(v string) *CommChannelUpsert {
	u.Set(commchannel.FieldEndpoint, v)
	return u
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *CommChannelUpsert) UpdateEndpoint() *CommChannelUpsert {
	u.SetExcluded(commchannel.FieldEndpoint)
	return u
}

// SetValidationDate sets the "validation_date" field.
func (u *CommChannelUpsert) SetValidationDate(v time.Time) *CommChannelUpsert {
	u.Set(commchannel.FieldValidationDate, v)
	return u
}

// UpdateValidationDate sets the "validation_date" field to the value that was provided on create.
func (u *CommChannelUpsert) UpdateValidationDate() *CommChannelUpsert {
	u.SetExcluded(commchannel.FieldValidationDate)
	return u
}

// ClearValidationDate clears the value of the "validation_date" field.
func (u *CommChannelUpsert) ClearValidationDate() *CommChannelUpsert {
	u.SetNull(commchannel.FieldValidationDate)
	return u
}

// SetMessageSentDate sets the "message_sent_date" field.
func (u *CommChannelUpsert) SetMessageSentDate(v time.Time) *CommChannelUpsert {
	u.Set(commchannel.FieldMessageSentDate, v)
	return u
}

// UpdateMessageSentDate sets the "message_sent_date" field to the value that was provided on create.
func (u *CommChannelUpsert) UpdateMessageSentDate() *CommChannelUpsert {
	u.SetExcluded(commchannel.FieldMessageSentDate)
	return u
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (u *CommChannelUpsert) ClearMessageSentDate() *CommChannelUpsert {
	u.SetNull(commchannel.FieldMessageSentDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CommChannel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commchannel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommChannelUpsertOne) UpdateNewValues() *CommChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(commchannel.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(commchannel.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ValidationToken(); exists {
			s.SetIgnore(commchannel.FieldValidationToken)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommChannel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommChannelUpsertOne) Ignore() *CommChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommChannelUpsertOne) DoNothing() *CommChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommChannelCreate.OnConflict
// documentation for more info.
func (u *CommChannelUpsertOne) Update(set func(*CommChannelUpsert)) *CommChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommChannelUpsertOne) SetUpdatedAt(v time.Time) *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommChannelUpsertOne) UpdateUpdatedAt() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *CommChannelUpsertOne) SetAccountID(v string) *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *CommChannelUpsertOne) UpdateAccountID() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateAccountID()
	})
}

// SetCommType sets the "comm_type" field.
func (u *CommChannelUpsertOne) SetCommType(v commchannel.CommType) *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetCommType(v)
	})
}

// UpdateCommType sets the "comm_type" field to the value that was provided on create.
func (u *CommChannelUpsertOne) UpdateCommType() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateCommType()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *CommChannelUpsertOne) SetEndpoint(v string) *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *CommChannelUpsertOne) UpdateEndpoint() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateEndpoint()
	})
}

// SetValidationDate sets the "validation_date" field.
func (u *CommChannelUpsertOne) SetValidationDate(v time.Time) *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetValidationDate(v)
	})
}

// UpdateValidationDate sets the "validation_date" field to the value that was provided on create.
func (u *CommChannelUpsertOne) UpdateValidationDate() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateValidationDate()
	})
}

// ClearValidationDate clears the value of the "validation_date" field.
func (u *CommChannelUpsertOne) ClearValidationDate() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.ClearValidationDate()
	})
}

// SetMessageSentDate sets the "message_sent_date" field.
func (u *CommChannelUpsertOne) SetMessageSentDate(v time.Time) *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetMessageSentDate(v)
	})
}

// UpdateMessageSentDate sets the "message_sent_date" field to the value that was provided on create.
func (u *CommChannelUpsertOne) UpdateMessageSentDate() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateMessageSentDate()
	})
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (u *CommChannelUpsertOne) ClearMessageSentDate() *CommChannelUpsertOne {
	return u.Update(func(s *CommChannelUpsert) {
		s.ClearMessageSentDate()
	})
}

// Exec executes the query.
func (u *CommChannelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommChannelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommChannelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommChannelUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CommChannelUpsertOne.ID is not supported by MySQL driver. Use CommChannelUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommChannelUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommChannelCreateBulk is the builder for creating many CommChannel entities in bulk.
type CommChannelCreateBulk struct {
	config
	err      error
	builders []*CommChannelCreate
	conflict []sql.ConflictOption
}

// Save creates the CommChannel entities in the database.
func (_c *CommChannelCreateBulk) Save(ctx context.Context) ([]*CommChannel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommChannel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommChannelMutation)
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
func (_c *CommChannelCreateBulk) SaveX(ctx context.Context) []*CommChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommChannel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommChannelUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommChannelCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommChannelUpsertBulk {
	_c.conflict = opts
	return &CommChannelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommChannel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommChannelCreateBulk) OnConflictColumns(columns ...string) *CommChannelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommChannelUpsertBulk{
		create: _c,
	}
}

// CommChannelUpsertBulk is the builder for "upsert"-ing
// a bulk of CommChannel nodes.
type CommChannelUpsertBulk struct {
	create *CommChannelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CommChannel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commchannel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommChannelUpsertBulk) UpdateNewValues() *CommChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(commchannel.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(commchannel.FieldCreatedAt)
			}
			if _, exists := b.mutation.ValidationToken(); exists {
				s.SetIgnore(commchannel.FieldValidationToken)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommChannel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommChannelUpsertBulk) Ignore() *CommChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommChannelUpsertBulk) DoNothing() *CommChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommChannelCreateBulk.OnConflict
// documentation for more info.
func (u *CommChannelUpsertBulk) Update(set func(*CommChannelUpsert)) *CommChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommChannelUpsertBulk) SetUpdatedAt(v time.Time) *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommChannelUpsertBulk) UpdateUpdatedAt() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *CommChannelUpsertBulk) SetAccountID(v string) *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *CommChannelUpsertBulk) UpdateAccountID() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateAccountID()
	})
}

// SetCommType sets the "comm_type" field.
func (u *CommChannelUpsertBulk) SetCommType(v commchannel.CommType) *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetCommType(v)
	})
}

// UpdateCommType sets the "comm_type" field to the value that was provided on create.
func (u *CommChannelUpsertBulk) UpdateCommType() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateCommType()
	})
}

// SetEndpoint sets the "endpoint" field.
func (u *CommChannelUpsertBulk) SetEndpoint(v string) *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *CommChannelUpsertBulk) UpdateEndpoint() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateEndpoint()
	})
}

// SetValidationDate sets the "validation_date" field.
func (u *CommChannelUpsertBulk) SetValidationDate(v time.Time) *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetValidationDate(v)
	})
}

// UpdateValidationDate sets the "validation_date" field to the value that was provided on create.
func (u *CommChannelUpsertBulk) UpdateValidationDate() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateValidationDate()
	})
}

// ClearValidationDate clears the value of the "validation_date" field.
func (u *CommChannelUpsertBulk) ClearValidationDate() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.ClearValidationDate()
	})
}

// SetMessageSentDate sets the "message_sent_date" field.
func (u *CommChannelUpsertBulk) SetMessageSentDate(v time.Time) *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.SetMessageSentDate(v)
	})
}

// UpdateMessageSentDate sets the "message_sent_date" field to the value that was provided on create.
func (u *CommChannelUpsertBulk) UpdateMessageSentDate() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.UpdateMessageSentDate()
	})
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (u *CommChannelUpsertBulk) ClearMessageSentDate() *CommChannelUpsertBulk {
	return u.Update(func(s *CommChannelUpsert) {
		s.ClearMessageSentDate()
	})
}

// Exec executes the query.
func (u *CommChannelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CommChannelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommChannelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommChannelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
