package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventGuest is the guest-in-event relation. The token is an opaque,
// unique identifier assigned once at creation; it lets a stub guest view
// and update this one RSVP without authenticating. Verification requires
// an exact (event, token) match.
type EventGuest struct {
	ent.Schema
}

// Mixin of the EventGuest.
func (EventGuest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the EventGuest.
func (EventGuest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("event_id"),
		field.String("account_id"),
		field.String("name").
			Optional().
			MaxLen(255),
		field.Enum("rsvp").
			Values("UNDECIDED", "YES", "NO", "MAYBE").
			Default("UNDECIDED"),
		field.String("token").
			Immutable().
			Unique(),
	}
}

// Edges of the EventGuest.
func (EventGuest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("guests").
			Field("event_id").
			Unique().
			Required(),
		edge.From("account", Account.Type).
			Ref("guest_entries").
			Field("account_id").
			Unique().
			Required(),
	}
}

// Indexes of the EventGuest.
func (EventGuest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "account_id").Unique(),
		index.Fields("event_id", "token").Unique(),
	}
}
