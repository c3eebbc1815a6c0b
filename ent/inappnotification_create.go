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
	"planora.io/planora/ent/inappnotification"
)

// InAppNotificationCreate is the builder for creating a InAppNotification entity.
type InAppNotificationCreate struct {
	config
	mutation *InAppNotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InAppNotificationCreate) SetCreatedAt(v time.Time) *InAppNotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InAppNotificationCreate) SetNillableCreatedAt(v *time.Time) *InAppNotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSenderID sets the "sender_id" field.
func (_c *InAppNotificationCreate) SetSenderID(v string) *InAppNotificationCreate {
	_c.mutation.SetSenderID(v)
	return _c
}

// SetRecipientID sets the "recipient_id" field.
func (_c *InAppNotificationCreate) SetRecipientID(v string) *InAppNotificationCreate {
	_c.mutation.SetRecipientID(v)
	return _c
}

// SetNotificationType sets the "notification_type" field.
func (_c *InAppNotificationCreate) SetNotificationType(v inappnotification.NotificationType) *InAppNotificationCreate {
	_c.mutation.SetNotificationType(v)
	return _c
}

// SetSubjectKind sets the "subject_kind" field.
func (_c *InAppNotificationCreate) SetSubjectKind(v inappnotification.SubjectKind) *InAppNotificationCreate {
	_c.mutation.SetSubjectKind(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *InAppNotificationCreate) SetSubjectID(v string) *InAppNotificationCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InAppNotificationCreate) SetID(v string) *InAppNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSender sets the "sender" edge to the Account entity.
func (_c *InAppNotificationCreate) SetSender(v *Account) *InAppNotificationCreate {
	return _c.SetSenderID(v.ID)
}

// SetRecipient sets the "recipient" edge to the Account entity.
func (_c *InAppNotificationCreate) SetRecipient(v *Account) *InAppNotificationCreate {
	return _c.SetRecipientID(v.ID)
}

// Mutation returns the InAppNotificationMutation object of the builder.
func (_c *InAppNotificationCreate) Mutation() *InAppNotificationMutation {
	return _c.mutation
}

// Save creates the InAppNotification in the database.
func (_c *InAppNotificationCreate) Save(ctx context.Context) (*InAppNotification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InAppNotificationCreate) SaveX(ctx context.Context) *InAppNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InAppNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InAppNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InAppNotificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inappnotification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InAppNotificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InAppNotification.created_at"`)}
	}
	if _, ok := _c.mutation.SenderID(); !ok {
		return &ValidationError{Name: "sender_id", err: errors.New(`ent: missing required field "InAppNotification.sender_id"`)}
	}
	if _, ok := _c.mutation.RecipientID(); !ok {
		return &ValidationError{Name: "recipient_id", err: errors.New(`ent: missing required field "InAppNotification.recipient_id"`)}
	}
	if _, ok := _c.mutation.NotificationType(); !ok {
		return &ValidationError{Name: "notification_type", err: errors.New(`ent: missing required field "InAppNotification.notification_type"`)}
	}
	if v, ok := _c.mutation.NotificationType(); ok {
		if err := inappnotification.NotificationTypeValidator(v); err != nil {
			return &ValidationError{Name: "notification_type", err: fmt.Errorf(`ent: validator failed for field "InAppNotification.notification_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectKind(); !ok {
		return &ValidationError{Name: "subject_kind", err: errors.New(`ent: missing required field "InAppNotification.subject_kind"`)}
	}
	if v, ok := _c.mutation.SubjectKind(); ok {
		if err := inappnotification.SubjectKindValidator(v); err != nil {
			return &ValidationError{Name: "subject_kind", err: fmt.Errorf(`ent: validator failed for field "InAppNotification.subject_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "InAppNotification.subject_id"`)}
	}
	if len(_c.mutation.SenderIDs()) == 0 {
		return &ValidationError{Name: "sender", err: errors.New(`ent: missing required edge "InAppNotification.sender"`)}
	}
	if len(_c.mutation.RecipientIDs()) == 0 {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required edge "InAppNotification.recipient"`)}
	}
	return nil
}

func (_c *InAppNotificationCreate) sqlSave(ctx context.Context) (*InAppNotification, error) {
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
			return nil, fmt.Errorf("unexpected InAppNotification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InAppNotificationCreate) createSpec() (*InAppNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &InAppNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inappnotification.Table, sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inappnotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.NotificationType(); ok {
		_spec.SetField(inappnotification.FieldNotificationType, field.TypeEnum, value)
		_node.NotificationType = value
	}
	if value, ok := _c.mutation.SubjectKind(); ok {
		_spec.SetField(inappnotification.FieldSubjectKind, field.TypeEnum, value)
		_node.SubjectKind = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(inappnotification.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if nodes := _c.mutation.SenderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inappnotification.SenderTable,
			Columns: []string{inappnotification.SenderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SenderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecipientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inappnotification.RecipientTable,
			Columns: []string{inappnotification.RecipientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecipientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InAppNotification.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InAppNotificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InAppNotificationCreate) OnConflict(opts ...sql.ConflictOption) *InAppNotificationUpsertOne {
	_c.conflict = opts
	return &InAppNotificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InAppNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InAppNotificationCreate) OnConflictColumns(columns ...string) *InAppNotificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InAppNotificationUpsertOne{
		create: _c,
	}
}

type (
	// InAppNotificationUpsertOne is the builder for "upsert"-ing
	//  one InAppNotification node.
	InAppNotificationUpsertOne struct {
		create *InAppNotificationCreate
	}

	// InAppNotificationUpsert is the "OnConflict" setter.
	InAppNotificationUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InAppNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inappnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InAppNotificationUpsertOne) UpdateNewValues() *InAppNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(inappnotification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(inappnotification.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SenderID(); exists {
			s.SetIgnore(inappnotification.FieldSenderID)
		}
		if _, exists := u.create.mutation.RecipientID(); exists {
			s.SetIgnore(inappnotification.FieldRecipientID)
		}
		if _, exists := u.create.mutation.NotificationType(); exists {
			s.SetIgnore(inappnotification.FieldNotificationType)
		}
		if _, exists := u.create.mutation.SubjectKind(); exists {
			s.SetIgnore(inappnotification.FieldSubjectKind)
		}
		if _, exists := u.create.mutation.SubjectID(); exists {
			s.SetIgnore(inappnotification.FieldSubjectID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InAppNotification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InAppNotificationUpsertOne) Ignore() *InAppNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InAppNotificationUpsertOne) DoNothing() *InAppNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InAppNotificationCreate.OnConflict
// documentation for more info.
func (u *InAppNotificationUpsertOne) Update(set func(*InAppNotificationUpsert)) *InAppNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InAppNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *InAppNotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InAppNotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InAppNotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InAppNotificationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InAppNotificationUpsertOne.ID is not supported by MySQL driver. Use InAppNotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InAppNotificationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InAppNotificationCreateBulk is the builder for creating many InAppNotification entities in bulk.
type InAppNotificationCreateBulk struct {
	config
	err      error
	builders []*InAppNotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the InAppNotification entities in the database.
func (_c *InAppNotificationCreateBulk) Save(ctx context.Context) ([]*InAppNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InAppNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InAppNotificationMutation)
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
func (_c *InAppNotificationCreateBulk) SaveX(ctx context.Context) []*InAppNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InAppNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InAppNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InAppNotification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InAppNotificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InAppNotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *InAppNotificationUpsertBulk {
	_c.conflict = opts
	return &InAppNotificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InAppNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InAppNotificationCreateBulk) OnConflictColumns(columns ...string) *InAppNotificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InAppNotificationUpsertBulk{
		create: _c,
	}
}

// InAppNotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of InAppNotification nodes.
type InAppNotificationUpsertBulk struct {
	create *InAppNotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InAppNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inappnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InAppNotificationUpsertBulk) UpdateNewValues() *InAppNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(inappnotification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(inappnotification.FieldCreatedAt)
			}
			if _, exists := b.mutation.SenderID(); exists {
				s.SetIgnore(inappnotification.FieldSenderID)
			}
			if _, exists := b.mutation.RecipientID(); exists {
				s.SetIgnore(inappnotification.FieldRecipientID)
			}
			if _, exists := b.mutation.NotificationType(); exists {
				s.SetIgnore(inappnotification.FieldNotificationType)
			}
			if _, exists := b.mutation.SubjectKind(); exists {
				s.SetIgnore(inappnotification.FieldSubjectKind)
			}
			if _, exists := b.mutation.SubjectID(); exists {
				s.SetIgnore(inappnotification.FieldSubjectID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InAppNotification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InAppNotificationUpsertBulk) Ignore() *InAppNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InAppNotificationUpsertBulk) DoNothing() *InAppNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InAppNotificationCreateBulk.OnConflict
// documentation for more info.
func (u *InAppNotificationUpsertBulk) Update(set func(*InAppNotificationUpsert)) *InAppNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InAppNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *InAppNotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InAppNotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InAppNotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InAppNotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
