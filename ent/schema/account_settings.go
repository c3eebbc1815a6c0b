package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AccountSettings holds per-account notification preferences. A missing
// row (stub accounts never create one) means the defaults apply.
type AccountSettings struct {
	ent.Schema
}

// Mixin of the AccountSettings.
func (AccountSettings) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AccountSettings.
func (AccountSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("account_id"),
		field.Bool("email_rsvp_updates").
			Default(true),
		field.Bool("email_social_activity").
			Default(true),
		field.Bool("email_promotions").
			Default(true),
		field.Bool("text_rsvp_updates").
			Optional().
			Nillable(),
		field.Bool("text_social_activity").
			Optional().
			Nillable(),
		field.Bool("text_promotions").
			Optional().
			Nillable(),
		field.Enum("default_event_privacy").
			Values("PUBLIC", "PRIVATE").
			Default("PRIVATE"),
	}
}

// Edges of the AccountSettings.
func (AccountSettings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("settings").
			Field("account_id").
			Unique().
			Required(),
	}
}

// Indexes of the AccountSettings.
func (AccountSettings) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id").Unique(),
	}
}
