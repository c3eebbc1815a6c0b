package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for planned events.
//
// The fields start, end, timezone, privacy, status, location, lat, lon
// and is_all_day are tracked: a mutation that changes any of them is
// compared against a before snapshot to decide whether guests are
// notified (see internal/domain).
type Event struct {
	ent.Schema
}

// Mixin of the Event.
func (Event) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id"),
		field.String("title").
			NotEmpty().
			MaxLen(100),
		field.Time("start"),
		field.Time("end"),
		field.String("timezone").
			MaxLen(40).
			Comment("IANA zone name, e.g. America/New_York"),
		field.Enum("privacy").
			Values("PUBLIC", "PRIVATE").
			Default("PUBLIC"),
		field.Enum("status").
			Values("DRAFT", "ACTIVE", "CANCELLED").
			Default("DRAFT"),
		field.String("location").
			Optional().
			MaxLen(250),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lon").
			Optional().
			Nillable(),
		field.Bool("is_all_day").
			Default(false),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Account.Type).
			Ref("events").
			Field("owner_id").
			Unique().
			Required(),
		edge.To("guests", EventGuest.Type),
		edge.To("albums", Album.Type),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
		index.Fields("start"),
	}
}
