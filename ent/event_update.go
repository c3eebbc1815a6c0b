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
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *EventUpdate) SetOwnerID(v string) *EventUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableOwnerID(v *string) *EventUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdate) SetTitle(v string) *EventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTitle(v *string) *EventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStart sets the "start" field.
func (_u *EventUpdate) SetStart(v time.Time) *EventUpdate {
	_u.mutation.SetStart(v)
	return _u
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStart(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetStart(*v)
	}
	return _u
}

// SetEnd sets the "end" field.
func (_u *EventUpdate) SetEnd(v time.Time) *EventUpdate {
	_u.mutation.SetEnd(v)
	return _u
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEnd(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEnd(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventUpdate) SetTimezone(v string) *EventUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTimezone(v *string) *EventUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPrivacy sets the "privacy" field.
func (_u *EventUpdate) SetPrivacy(v event.Privacy) *EventUpdate {
	_u.mutation.SetPrivacy(v)
	return _u
}

// SetNillablePrivacy sets the "privacy" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePrivacy(v *event.Privacy) *EventUpdate {
	if v != nil {
		_u.SetPrivacy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdate) SetStatus(v event.Status) *EventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStatus(v *event.Status) *EventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *EventUpdate) SetLocation(v string) *EventUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLocation(v *string) *EventUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *EventUpdate) ClearLocation() *EventUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetLat sets the "lat" field.
func (_u *EventUpdate) SetLat(v float64) *EventUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLat(v *float64) *EventUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *EventUpdate) AddLat(v float64) *EventUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *EventUpdate) ClearLat() *EventUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLon sets the "lon" field.
func (_u *EventUpdate) SetLon(v float64) *EventUpdate {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLon(v *float64) *EventUpdate {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *EventUpdate) AddLon(v float64) *EventUpdate {
	_u.mutation.AddLon(v)
	return _u
}

// ClearLon clears the value of the "lon" field.
func (_u *EventUpdate) ClearLon() *EventUpdate {
	_u.mutation.ClearLon()
	return _u
}

// SetIsAllDay sets the "is_all_day" field.
func (_u *EventUpdate) SetIsAllDay(v bool) *EventUpdate {
	_u.mutation.SetIsAllDay(v)
	return _u
}

// SetNillableIsAllDay sets the "is_all_day" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIsAllDay(v *bool) *EventUpdate {
	if v != nil {
		_u.SetIsAllDay(*v)
	}
	return _u
}

// SetOwner sets the "owner" edge to the Account entity.
func (_u *EventUpdate) SetOwner(v *Account) *EventUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddGuestIDs adds the "guests" edge to the EventGuest entity by IDs.
func (_u *EventUpdate) AddGuestIDs(ids ...string) *EventUpdate {
	_u.mutation.AddGuestIDs(ids...)
	return _u
}

// AddGuests adds the "guests" edges to the EventGuest entity.
func (_u *EventUpdate) AddGuests(v ...*EventGuest) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGuestIDs(ids...)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *EventUpdate) AddAlbumIDs(ids ...string) *EventUpdate {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *EventUpdate) AddAlbums(v ...*Album) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Account entity.
func (_u *EventUpdate) ClearOwner() *EventUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearGuests clears all "guests" edges to the EventGuest entity.
func (_u *EventUpdate) ClearGuests() *EventUpdate {
	_u.mutation.ClearGuests()
	return _u
}

// RemoveGuestIDs removes the "guests" edge to EventGuest entities by IDs.
func (_u *EventUpdate) RemoveGuestIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveGuestIDs(ids...)
	return _u
}

// RemoveGuests removes "guests" edges to EventGuest entities.
func (_u *EventUpdate) RemoveGuests(v ...*EventGuest) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGuestIDs(ids...)
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *EventUpdate) ClearAlbums() *EventUpdate {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *EventUpdate) RemoveAlbumIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *EventUpdate) RemoveAlbums(v ...*Album) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := event.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Event.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := event.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`ent: validator failed for field "Event.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Privacy(); ok {
		if err := event.PrivacyValidator(v); err != nil {
			return &ValidationError{Name: "privacy", err: fmt.Errorf(`ent: validator failed for field "Event.privacy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := event.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Event.location": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.owner"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Start(); ok {
		_spec.SetField(event.FieldStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.End(); ok {
		_spec.SetField(event.FieldEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(event.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Privacy(); ok {
		_spec.SetField(event.FieldPrivacy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(event.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(event.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(event.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(event.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(event.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(event.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(event.FieldLon, field.TypeFloat64, value)
	}
	if _u.mutation.LonCleared() {
		_spec.ClearField(event.FieldLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsAllDay(); ok {
		_spec.SetField(event.FieldIsAllDay, field.TypeBool, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GuestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGuestsIDs(); len(nodes) > 0 && !_u.mutation.GuestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *EventUpdateOne) SetOwnerID(v string) *EventUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableOwnerID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdateOne) SetTitle(v string) *EventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTitle(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStart sets the "start" field.
func (_u *EventUpdateOne) SetStart(v time.Time) *EventUpdateOne {
	_u.mutation.SetStart(v)
	return _u
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStart(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetStart(*v)
	}
	return _u
}

// SetEnd sets the "end" field.
func (_u *EventUpdateOne) SetEnd(v time.Time) *EventUpdateOne {
	_u.mutation.SetEnd(v)
	return _u
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEnd(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEnd(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventUpdateOne) SetTimezone(v string) *EventUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTimezone(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPrivacy sets the "privacy" field.
func (_u *EventUpdateOne) SetPrivacy(v event.Privacy) *EventUpdateOne {
	_u.mutation.SetPrivacy(v)
	return _u
}

// SetNillablePrivacy sets the "privacy" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePrivacy(v *event.Privacy) *EventUpdateOne {
	if v != nil {
		_u.SetPrivacy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdateOne) SetStatus(v event.Status) *EventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStatus(v *event.Status) *EventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *EventUpdateOne) SetLocation(v string) *EventUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLocation(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *EventUpdateOne) ClearLocation() *EventUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetLat sets the "lat" field.
func (_u *EventUpdateOne) SetLat(v float64) *EventUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLat(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *EventUpdateOne) AddLat(v float64) *EventUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *EventUpdateOne) ClearLat() *EventUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLon sets the "lon" field.
func (_u *EventUpdateOne) SetLon(v float64) *EventUpdateOne {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLon(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *EventUpdateOne) AddLon(v float64) *EventUpdateOne {
	_u.mutation.AddLon(v)
	return _u
}

// ClearLon clears the value of the "lon" field.
func (_u *EventUpdateOne) ClearLon() *EventUpdateOne {
	_u.mutation.ClearLon()
	return _u
}

// SetIsAllDay sets the "is_all_day" field.
func (_u *EventUpdateOne) SetIsAllDay(v bool) *EventUpdateOne {
	_u.mutation.SetIsAllDay(v)
	return _u
}

// SetNillableIsAllDay sets the "is_all_day" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIsAllDay(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetIsAllDay(*v)
	}
	return _u
}

// SetOwner sets the "owner" edge to the Account entity.
func (_u *EventUpdateOne) SetOwner(v *Account) *EventUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddGuestIDs adds the "guests" edge to the EventGuest entity by IDs.
func (_u *EventUpdateOne) AddGuestIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddGuestIDs(ids...)
	return _u
}

// AddGuests adds the "guests" edges to the EventGuest entity.
func (_u *EventUpdateOne) AddGuests(v ...*EventGuest) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGuestIDs(ids...)
}

// AddAlbumIDs adds the "albums" edge to the Album entity by IDs.
func (_u *EventUpdateOne) AddAlbumIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddAlbumIDs(ids...)
	return _u
}

// AddAlbums adds the "albums" edges to the Album entity.
func (_u *EventUpdateOne) AddAlbums(v ...*Album) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlbumIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Account entity.
func (_u *EventUpdateOne) ClearOwner() *EventUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearGuests clears all "guests" edges to the EventGuest entity.
func (_u *EventUpdateOne) ClearGuests() *EventUpdateOne {
	_u.mutation.ClearGuests()
	return _u
}

// RemoveGuestIDs removes the "guests" edge to EventGuest entities by IDs.
func (_u *EventUpdateOne) RemoveGuestIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveGuestIDs(ids...)
	return _u
}

// RemoveGuests removes "guests" edges to EventGuest entities.
func (_u *EventUpdateOne) RemoveGuests(v ...*EventGuest) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGuestIDs(ids...)
}

// ClearAlbums clears all "albums" edges to the Album entity.
func (_u *EventUpdateOne) ClearAlbums() *EventUpdateOne {
	_u.mutation.ClearAlbums()
	return _u
}

// RemoveAlbumIDs removes the "albums" edge to Album entities by IDs.
func (_u *EventUpdateOne) RemoveAlbumIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveAlbumIDs(ids...)
	return _u
}

// RemoveAlbums removes "albums" edges to Album entities.
func (_u *EventUpdateOne) RemoveAlbums(v ...*Album) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlbumIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := event.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Event.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := event.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`ent: validator failed for field "Event.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Privacy(); ok {
		if err := event.PrivacyValidator(v); err != nil {
			return &ValidationError{Name: "privacy", err: fmt.Errorf(`ent: validator failed for field "Event.privacy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := event.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Event.location": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.owner"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Start(); ok {
		_spec.SetField(event.FieldStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.End(); ok {
		_spec.SetField(event.FieldEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(event.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Privacy(); ok {
		_spec.SetField(event.FieldPrivacy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(event.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(event.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(event.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(event.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(event.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(event.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(event.FieldLon, field.TypeFloat64, value)
	}
	if _u.mutation.LonCleared() {
		_spec.ClearField(event.FieldLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsAllDay(); ok {
		_spec.SetField(event.FieldIsAllDay, field.TypeBool, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GuestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGuestsIDs(); len(nodes) > 0 && !_u.mutation.GuestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlbumsIDs(); len(nodes) > 0 && !_u.mutation.AlbumsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlbumsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
