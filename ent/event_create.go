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
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *EventCreate) SetOwnerID(v string) *EventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EventCreate) SetTitle(v string) *EventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStart sets the "start" field.
func (_c *EventCreate) SetStart(v time.Time) *EventCreate {
	_c.mutation.SetStart(v)
	return _c
}

// SetEnd sets the "end" field.
func (_c *EventCreate) SetEnd(v time.Time) *EventCreate {
	_c.mutation.SetEnd(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *EventCreate) SetTimezone(v string) *EventCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetPrivacy sets the "privacy" field.
func (_c *EventCreate) SetPrivacy(v event.Privacy) *EventCreate {
	_c.mutation.SetPrivacy(v)
	return _c
}

// SetNillablePrivacy sets the "privacy" field if the given value is not nil.
func (_c *EventCreate) SetNillablePrivacy(v *event.Privacy) *EventCreate {
	if v != nil {
		_c.SetPrivacy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventCreate) SetStatus(v event.Status) *EventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventCreate) SetNillableStatus(v *event.Status) *EventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *EventCreate) SetLocation(v string) *EventCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *EventCreate) SetNillableLocation(v *string) *EventCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *EventCreate) SetLat(v float64) *EventCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *EventCreate) SetNillableLat(v *float64) *EventCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLon sets the "lon" field.
func (_c *EventCreate) SetLon(v float64) *EventCreate {
	_c.mutation.SetLon(v)
	return _c
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_c *EventCreate) SetNillableLon(v *float64) *EventCreate {
	if v != nil {
		_c.SetLon(*v)
	}
	return _c
}

// SetIsAllDay sets the "is_all_day" field.
func (_c *EventCreate) SetIsAllDay(v bool) *EventCreate {
	_c.mutation.SetIsAllDay(v)
	return _c
}

// SetNillableIsAllDay sets the "is_all_day" field if the given value is not nil.
func (_c *EventCreate) SetNillableIsAllDay(v *bool) *EventCreate {
	if v != nil {
		_c.SetIsAllDay(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwner sets the "owner" edge to the Account entity.
func (_c *EventCreate) SetOwner(v *Account) *EventCreate {
	return _c.SetOwnerID(v.ID)
}

// AddGuestIDs adds the "guests" edge to the EventGuest entity by IDs.
func (_c *EventCreate) AddGuestIDs(ids ...string) *EventCreate {
	_c.mutation.AddGuestIDs(ids...)
	return _c
}

// AddGuests adds the "guests" edges to the EventGuest entity.
func (_c *EventCreate) AddGuests(v ...*EventGuest) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGuestIDs(ids...)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_c *EventCreate) AddAlbumIDs(ids ...string) *EventCreate {
	_c.mutation.AddAlbumIDs(ids...)
	return _c
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_c *EventCreate) AddAlbums(v ...*Album) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlbumIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Privacy(); !ok {
		v := event.DefaultPrivacy
		_c.mutation.SetPrivacy(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := event.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsAllDay(); !ok {
		v := event.DefaultIsAllDay
		_c.mutation.SetIsAllDay(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Event.owner_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Event.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := event.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Event.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Start(); !ok {
		return &ValidationError{Name: "start", err: errors.New(`ent: missing required field "Event.start"`)}
	}
	if _, ok := _c.mutation.End(); !ok {
		return &ValidationError{Name: "end", err: errors.New(`ent: missing required field "Event.end"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Event.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := event.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`ent: validator failed for field "Event.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Privacy(); !ok {
		return &ValidationError{Name: "privacy", err: errors.New(`ent: missing required field "Event.privacy"`)}
	}
	if v, ok := _c.mutation.Privacy(); ok {
		if err := event.PrivacyValidator(v); err != nil {
			return &ValidationError{Name: "privacy", err: fmt.Errorf(`ent: validator failed for field "Event.privacy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Event.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := event.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Event.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAllDay(); !ok {
		return &ValidationError{Name: "is_all_day", err: errors.New(`ent: missing required field "Event.is_all_day"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Event.owner"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Start(); ok {
		_spec.SetField(event.FieldStart, field.TypeTime, value)
		_node.Start = value
	}
	if value, ok := _c.mutation.End(); ok {
		_spec.SetField(event.FieldEnd, field.TypeTime, value)
		_node.End = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(event.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Privacy(); ok {
		_spec.SetField(event.FieldPrivacy, field.TypeEnum, value)
		_node.Privacy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(event.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(event.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lon(); ok {
		_spec.SetField(event.FieldLon, field.TypeFloat64, value)
		_node.Lon = &value
	}
	if value, ok := _c.mutation.IsAllDay(); ok {
		_spec.SetField(event.FieldIsAllDay, field.TypeBool, value)
		_node.IsAllDay = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.OwnerTable,
			Columns: []string{event.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GuestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.GuestsTable,
			Columns: []string{event.GuestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventguest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlbumsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.AlbumsTable,
			Columns: []string{event.AlbumsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(album.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsert) SetUpdatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateUpdatedAt() *EventUpsert {
	u.SetExcluded(event.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *EventUpsert) SetOwnerID(v string) *EventUpsert {
	u.Set(event.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateOwnerID() *EventUpsert {
	u.SetExcluded(event.FieldOwnerID)
	return u
}

// SetTitle sets the "title" field.
func (u *EventUpsert) SetTitle(v string) *EventUpsert {
	u.Set(event.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsert) UpdateTitle() *EventUpsert {
	u.SetExcluded(event.FieldTitle)
	return u
}

// SetStart sets the "start" field.
func (u *EventUpsert) SetStart(v time.Time) *EventUpsert {
	u.Set(event.FieldStart, v)
	return u
}

// UpdateStart sets the "start" field to the value that was provided on create.
func (u *EventUpsert) UpdateStart() *EventUpsert {
	u.SetExcluded(event.FieldStart)
	return u
}

// SetEnd sets the "end" field.
func (u *EventUpsert) SetEnd(v time.Time) *EventUpsert {
	u.Set(event.FieldEnd, v)
	return u
}

// UpdateEnd sets the "end" field to the value that was provided on create.
func (u *EventUpsert) UpdateEnd() *EventUpsert {
	u.SetExcluded(event.FieldEnd)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *EventUpsert) SetTimezone(v string) *EventUpsert {
	u.Set(event.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventUpsert) UpdateTimezone() *EventUpsert {
	u.SetExcluded(event.FieldTimezone)
	return u
}

// SetPrivacy sets the "privacy" field.
func (u *EventUpsert) SetPrivacy(v event.Privacy) *EventUpsert {
	u.Set(event.FieldPrivacy, v)
	return u
}

// UpdatePrivacy sets the "privacy" field to the value that was provided on create.
func (u *EventUpsert) UpdatePrivacy() *EventUpsert {
	u.SetExcluded(event.FieldPrivacy)
	return u
}

// SetStatus sets the "status" field.
func (u *EventUpsert) SetStatus(v event.Status) *EventUpsert {
	u.Set(event.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsert) UpdateStatus() *EventUpsert {
	u.SetExcluded(event.FieldStatus)
	return u
}

// SetLocation sets the "location" field.
func (u *EventUpsert) SetLocation(v string) *EventUpsert {
	u.Set(event.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EventUpsert) UpdateLocation() *EventUpsert {
	u.SetExcluded(event.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *EventUpsert) ClearLocation() *EventUpsert {
	u.SetNull(event.FieldLocation)
	return u
}

// SetLat sets the "lat" field.
func (u *EventUpsert) SetLat(v float64) *EventUpsert {
	u.Set(event.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *EventUpsert) UpdateLat() *EventUpsert {
	u.SetExcluded(event.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *EventUpsert) AddLat(v float64) *EventUpsert {
	u.Add(event.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *EventUpsert) ClearLat() *EventUpsert {
	u.SetNull(event.FieldLat)
	return u
}

// SetLon sets the "lon" field.
func (u *EventUpsert) SetLon(v float64) *EventUpsert {
	u.Set(event.FieldLon, v)
	return u
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *EventUpsert) UpdateLon() *EventUpsert {
	u.SetExcluded(event.FieldLon)
	return u
}

// AddLon adds v to the "lon" field.
func (u *EventUpsert) AddLon(v float64) *EventUpsert {
	u.Add(event.FieldLon, v)
	return u
}

// ClearLon clears the value of the "lon" field.
func (u *EventUpsert) ClearLon() *EventUpsert {
	u.SetNull(event.FieldLon)
	return u
}

// SetIsAllDay sets the "is_all_day" field.
func (u *EventUpsert) SetIsAllDay(v bool) *EventUpsert {
	u.Set(event.FieldIsAllDay, v)
	return u
}

// UpdateIsAllDay sets the "is_all_day" field to the value that was provided on create.
func (u *EventUpsert) UpdateIsAllDay() *EventUpsert {
	u.SetExcluded(event.FieldIsAllDay)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertOne) SetUpdatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUpdatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *EventUpsertOne) SetOwnerID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateOwnerID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateOwnerID()
	})
}

// SetTitle sets the "title" field.
func (u *EventUpsertOne) SetTitle(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTitle() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTitle()
	})
}

// SetStart sets the "start" field.
func (u *EventUpsertOne) SetStart(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStart(v)
	})
}

// UpdateStart sets the "start" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStart() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStart()
	})
}

// SetEnd sets the "end" field.
func (u *EventUpsertOne) SetEnd(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEnd(v)
	})
}

// UpdateEnd sets the "end" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEnd() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEnd()
	})
}

// SetTimezone sets the "timezone" field.
func (u *EventUpsertOne) SetTimezone(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTimezone() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimezone()
	})
}

// SetPrivacy sets the "privacy" field.
func (u *EventUpsertOne) SetPrivacy(v event.Privacy) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPrivacy(v)
	})
}

// UpdatePrivacy sets the "privacy" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePrivacy() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePrivacy()
	})
}

// SetStatus sets the "status" field.
func (u *EventUpsertOne) SetStatus(v event.Status) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStatus() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStatus()
	})
}

// SetLocation sets the "location" field.
func (u *EventUpsertOne) SetLocation(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLocation() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EventUpsertOne) ClearLocation() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLocation()
	})
}

// SetLat sets the "lat" field.
func (u *EventUpsertOne) SetLat(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *EventUpsertOne) AddLat(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLat() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *EventUpsertOne) ClearLat() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLat()
	})
}

// SetLon sets the "lon" field.
func (u *EventUpsertOne) SetLon(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLon(v)
	})
}

// AddLon adds v to the "lon" field.
func (u *EventUpsertOne) AddLon(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddLon(v)
	})
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLon() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLon()
	})
}

// ClearLon clears the value of the "lon" field.
func (u *EventUpsertOne) ClearLon() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLon()
	})
}

// SetIsAllDay sets the "is_all_day" field.
func (u *EventUpsertOne) SetIsAllDay(v bool) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetIsAllDay(v)
	})
}

// UpdateIsAllDay sets the "is_all_day" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateIsAllDay() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIsAllDay()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertBulk) SetUpdatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUpdatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *EventUpsertBulk) SetOwnerID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateOwnerID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateOwnerID()
	})
}

// SetTitle sets the "title" field.
func (u *EventUpsertBulk) SetTitle(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTitle() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTitle()
	})
}

// SetStart sets the "start" field.
func (u *EventUpsertBulk) SetStart(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStart(v)
	})
}

// UpdateStart sets the "start" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStart() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStart()
	})
}

// SetEnd sets the "end" field.
func (u *EventUpsertBulk) SetEnd(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEnd(v)
	})
}

// UpdateEnd sets the "end" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEnd() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEnd()
	})
}

// SetTimezone sets the "timezone" field.
func (u *EventUpsertBulk) SetTimezone(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTimezone() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimezone()
	})
}

// SetPrivacy sets the "privacy" field.
func (u *EventUpsertBulk) SetPrivacy(v event.Privacy) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPrivacy(v)
	})
}

// UpdatePrivacy sets the "privacy" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePrivacy() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePrivacy()
	})
}

// SetStatus sets the "status" field.
func (u *EventUpsertBulk) SetStatus(v event.Status) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStatus() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStatus()
	})
}

// SetLocation sets the "location" field.
func (u *EventUpsertBulk) SetLocation(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLocation() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EventUpsertBulk) ClearLocation() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLocation()
	})
}

// SetLat sets the "lat" field.
func (u *EventUpsertBulk) SetLat(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *EventUpsertBulk) AddLat(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLat() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *EventUpsertBulk) ClearLat() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLat()
	})
}

// SetLon sets the "lon" field.
func (u *EventUpsertBulk) SetLon(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLon(v)
	})
}

// AddLon adds v to the "lon" field.
func (u *EventUpsertBulk) AddLon(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddLon(v)
	})
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLon() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLon()
	})
}

// ClearLon clears the value of the "lon" field.
func (u *EventUpsertBulk) ClearLon() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLon()
	})
}

// SetIsAllDay sets the "is_all_day" field.
func (u *EventUpsertBulk) SetIsAllDay(v bool) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetIsAllDay(v)
	})
}

// UpdateIsAllDay sets the "is_all_day" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateIsAllDay() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIsAllDay()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
