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
	"planora.io/planora/ent/passwordreset"
)

// PasswordResetCreate is the builder for creating a PasswordReset entity.
type PasswordResetCreate struct {
	config
	mutation *PasswordResetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PasswordResetCreate) SetCreatedAt(v time.Time) *PasswordResetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableCreatedAt(v *time.Time) *PasswordResetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PasswordResetCreate) SetUpdatedAt(v time.Time) *PasswordResetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableUpdatedAt(v *time.Time) *PasswordResetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *PasswordResetCreate) SetAccountID(v string) *PasswordResetCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *PasswordResetCreate) SetEmail(v string) *PasswordResetCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetTokenSalt sets the "token_salt" field.
func (_c *PasswordResetCreate) SetTokenSalt(v string) *PasswordResetCreate {
	_c.mutation.SetTokenSalt(v)
	return _c
}

// SetMessageSentDate sets the "message_sent_date" field.
func (_c *PasswordResetCreate) SetMessageSentDate(v time.Time) *PasswordResetCreate {
	_c.mutation.SetMessageSentDate(v)
	return _c
}

// SetNillableMessageSentDate sets the "message_sent_date" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableMessageSentDate(v *time.Time) *PasswordResetCreate {
	if v != nil {
		_c.SetMessageSentDate(*v)
	}
	return _c
}

// SetResetDate sets the "reset_date" field.
func (_c *PasswordResetCreate) SetResetDate(v time.Time) *PasswordResetCreate {
	_c.mutation.SetResetDate(v)
	return _c
}

// SetNillableResetDate sets the "reset_date" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableResetDate(v *time.Time) *PasswordResetCreate {
	if v != nil {
		_c.SetResetDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PasswordResetCreate) SetID(v string) *PasswordResetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *PasswordResetCreate) SetAccount(v *Account) *PasswordResetCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the PasswordResetMutation object of the builder.
func (_c *PasswordResetCreate) Mutation() *PasswordResetMutation {
	return _c.mutation
}

// Save creates the PasswordReset in the database.
func (_c *PasswordResetCreate) Save(ctx context.Context) (*PasswordReset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PasswordResetCreate) SaveX(ctx context.Context) *PasswordReset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PasswordResetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PasswordResetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PasswordResetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passwordreset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := passwordreset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PasswordResetCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PasswordReset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PasswordReset.updated_at"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "PasswordReset.account_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "PasswordReset.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := passwordreset.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenSalt(); !ok {
		return &ValidationError{Name: "token_salt", err: errors.New(`ent: missing required field "PasswordReset.token_salt"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "PasswordReset.account"`)}
	}
	return nil
}

func (_c *PasswordResetCreate) sqlSave(ctx context.Context) (*PasswordReset, error) {
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
			return nil, fmt.Errorf("unexpected PasswordReset.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PasswordResetCreate) createSpec() (*PasswordReset, *sqlgraph.CreateSpec) {
	var (
		_node = &PasswordReset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passwordreset.Table, sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passwordreset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(passwordreset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(passwordreset.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.TokenSalt(); ok {
		_spec.SetField(passwordreset.FieldTokenSalt, field.TypeString, value)
		_node.TokenSalt = value
	}
	if value, ok := _c.mutation.MessageSentDate(); ok {
		_spec.SetField(passwordreset.FieldMessageSentDate, field.TypeTime, value)
		_node.MessageSentDate = &value
	}
	if value, ok := _c.mutation.ResetDate(); ok {
		_spec.SetField(passwordreset.FieldResetDate, field.TypeTime, value)
		_node.ResetDate = &value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PasswordReset.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PasswordResetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PasswordResetCreate) OnConflict(opts ...sql.ConflictOption) *PasswordResetUpsertOne {
	_c.conflict = opts
	return &PasswordResetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PasswordReset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PasswordResetCreate) OnConflictColumns(columns ...string) *PasswordResetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PasswordResetUpsertOne{
		create: _c,
	}
}

type (
	// PasswordResetUpsertOne is the builder for "upsert"-ing
	//  one PasswordReset node.
	PasswordResetUpsertOne struct {
		create *PasswordResetCreate
	}

	// PasswordResetUpsert is the "OnConflict" setter.
	PasswordResetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PasswordResetUpsert) SetUpdatedAt(v time.Time) *PasswordResetUpsert {
	u.Set(passwordreset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PasswordResetUpsert) UpdateUpdatedAt() *PasswordResetUpsert {
	u.SetExcluded(passwordreset.FieldUpdatedAt)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *PasswordResetUpsert) SetAccountID(v string) *PasswordResetUpsert {
	u.Set(passwordreset.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *PasswordResetUpsert) UpdateAccountID() *PasswordResetUpsert {
	u.SetExcluded(passwordreset.FieldAccountID)
	return u
}

// SetEmail sets the "email" field.
func (u *PasswordResetUpsert) SetEmail(v string) *PasswordResetUpsert {
	u.Set(passwordreset.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PasswordResetUpsert) UpdateEmail() *PasswordResetUpsert {
	u.SetExcluded(passwordreset.FieldEmail)
	return u
}

// SetMessageSentDate sets the "message_sent_date" field.
func (u *PasswordResetUpsert) SetMessageSentDate(v time.Time) *PasswordResetUpsert {
	u.Set(passwordreset.FieldMessageSentDate, v)
	return u
}

// UpdateMessageSentDate sets the "message_sent_date" field to the value that was provided on create.
func (u *PasswordResetUpsert) UpdateMessageSentDate() *PasswordResetUpsert {
	u.SetExcluded(passwordreset.FieldMessageSentDate)
	return u
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (u *PasswordResetUpsert) ClearMessageSentDate() *PasswordResetUpsert {
	u.SetNull(passwordreset.FieldMessageSentDate)
	return u
}

// SetResetDate sets the "reset_date" field.
func (u *PasswordResetUpsert) SetResetDate(v time.Time) *PasswordResetUpsert {
	u.Set(passwordreset.FieldResetDate, v)
	return u
}

// UpdateResetDate sets the "reset_date" field to the value that was provided on create.
func (u *PasswordResetUpsert) UpdateResetDate() *PasswordResetUpsert {
	u.SetExcluded(passwordreset.FieldResetDate)
	return u
}

// ClearResetDate clears the value of the "reset_date" field.
func (u *PasswordResetUpsert) ClearResetDate() *PasswordResetUpsert {
	u.SetNull(passwordreset.FieldResetDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PasswordReset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(passwordreset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PasswordResetUpsertOne) UpdateNewValues() *PasswordResetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(passwordreset.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(passwordreset.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.TokenSalt(); exists {
			s.SetIgnore(passwordreset.FieldTokenSalt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PasswordReset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PasswordResetUpsertOne) Ignore() *PasswordResetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PasswordResetUpsertOne) DoNothing() *PasswordResetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PasswordResetCreate.OnConflict
// documentation for more info.
func (u *PasswordResetUpsertOne) Update(set func(*PasswordResetUpsert)) *PasswordResetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PasswordResetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PasswordResetUpsertOne) SetUpdatedAt(v time.Time) *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PasswordResetUpsertOne) UpdateUpdatedAt() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *PasswordResetUpsertOne) SetAccountID(v string) *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *PasswordResetUpsertOne) UpdateAccountID() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateAccountID()
	})
}

// SetEmail sets the "email" field.
func (u *PasswordResetUpsertOne) SetEmail(v string) *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PasswordResetUpsertOne) UpdateEmail() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateEmail()
	})
}

// SetMessageSentDate sets the "message_sent_date" field.
func (u *PasswordResetUpsertOne) SetMessageSentDate(v time.Time) *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetMessageSentDate(v)
	})
}

// UpdateMessageSentDate sets the "message_sent_date" field to the value that was provided on create.
func (u *PasswordResetUpsertOne) UpdateMessageSentDate() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateMessageSentDate()
	})
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (u *PasswordResetUpsertOne) ClearMessageSentDate() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.ClearMessageSentDate()
	})
}

// SetResetDate sets the "reset_date" field.
func (u *PasswordResetUpsertOne) SetResetDate(v time.Time) *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetResetDate(v)
	})
}

// UpdateResetDate sets the "reset_date" field to the value that was provided on create.
func (u *PasswordResetUpsertOne) UpdateResetDate() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateResetDate()
	})
}

// ClearResetDate clears the value of the "reset_date" field.
func (u *PasswordResetUpsertOne) ClearResetDate() *PasswordResetUpsertOne {
	return u.Update(func(s *PasswordResetUpsert) {
		s.ClearResetDate()
	})
}

// Exec executes the query.
func (u *PasswordResetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PasswordResetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PasswordResetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PasswordResetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PasswordResetUpsertOne.ID is not supported by MySQL driver. Use PasswordResetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PasswordResetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PasswordResetCreateBulk is the builder for creating many PasswordReset entities in bulk.
type PasswordResetCreateBulk struct {
	config
	err      error
	builders []*PasswordResetCreate
	conflict []sql.ConflictOption
}

// Save creates the PasswordReset entities in the database.
func (_c *PasswordResetCreateBulk) Save(ctx context.Context) ([]*PasswordReset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PasswordReset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PasswordResetMutation)
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
func (_c *PasswordResetCreateBulk) SaveX(ctx context.Context) []*PasswordReset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PasswordResetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PasswordResetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PasswordReset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PasswordResetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PasswordResetCreateBulk) OnConflict(opts ...sql.ConflictOption) *PasswordResetUpsertBulk {
	_c.conflict = opts
	return &PasswordResetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PasswordReset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PasswordResetCreateBulk) OnConflictColumns(columns ...string) *PasswordResetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PasswordResetUpsertBulk{
		create: _c,
	}
}

// PasswordResetUpsertBulk is the builder for "upsert"-ing
// a bulk of PasswordReset nodes.
type PasswordResetUpsertBulk struct {
	create *PasswordResetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PasswordReset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(passwordreset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PasswordResetUpsertBulk) UpdateNewValues() *PasswordResetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(passwordreset.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(passwordreset.FieldCreatedAt)
			}
			if _, exists := b.mutation.TokenSalt(); exists {
				s.SetIgnore(passwordreset.FieldTokenSalt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PasswordReset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PasswordResetUpsertBulk) Ignore() *PasswordResetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PasswordResetUpsertBulk) DoNothing() *PasswordResetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PasswordResetCreateBulk.OnConflict
// documentation for more info.
func (u *PasswordResetUpsertBulk) Update(set func(*PasswordResetUpsert)) *PasswordResetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PasswordResetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PasswordResetUpsertBulk) SetUpdatedAt(v time.Time) *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PasswordResetUpsertBulk) UpdateUpdatedAt() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *PasswordResetUpsertBulk) SetAccountID(v string) *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *PasswordResetUpsertBulk) UpdateAccountID() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateAccountID()
	})
}

// SetEmail sets the "email" field.
func (u *PasswordResetUpsertBulk) SetEmail(v string) *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PasswordResetUpsertBulk) UpdateEmail() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateEmail()
	})
}

// SetMessageSentDate sets the "message_sent_date" field.
func (u *PasswordResetUpsertBulk) SetMessageSentDate(v time.Time) *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetMessageSentDate(v)
	})
}

// UpdateMessageSentDate sets the "message_sent_date" field to the value that was provided on create.
func (u *PasswordResetUpsertBulk) UpdateMessageSentDate() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateMessageSentDate()
	})
}

// ClearMessageSentDate clears the value of the "message_sent_date" field.
func (u *PasswordResetUpsertBulk) ClearMessageSentDate() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.ClearMessageSentDate()
	})
}

// SetResetDate sets the "reset_date" field.
func (u *PasswordResetUpsertBulk) SetResetDate(v time.Time) *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.SetResetDate(v)
	})
}

// UpdateResetDate sets the "reset_date" field to the value that was provided on create.
func (u *PasswordResetUpsertBulk) UpdateResetDate() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.UpdateResetDate()
	})
}

// ClearResetDate clears the value of the "reset_date" field.
func (u *PasswordResetUpsertBulk) ClearResetDate() *PasswordResetUpsertBulk {
	return u.Update(func(s *PasswordResetUpsert) {
		s.ClearResetDate()
	})
}

// Exec executes the query.
func (u *PasswordResetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PasswordResetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PasswordResetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PasswordResetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
