package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommChannel tracks validation of an account's email or phone
// endpoint. The validation token is opaque and single-purpose; the
// validation_date stays nil until the endpoint is confirmed.
type CommChannel struct {
	ent.Schema
}

// Mixin of the CommChannel.
func (CommChannel) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the CommChannel.
func (CommChannel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("account_id"),
		field.Enum("comm_type").
			Values("EMAIL", "PHONE"),
		field.String("endpoint").
			NotEmpty().
			MaxLen(100),
		field.String("validation_token").
			Immutable().
			Unique(),
		field.Time("validation_date").
			Optional().
			Nillable(),
		field.Time("message_sent_date").
			Optional().
			Nillable(),
	}
}

// Edges of the CommChannel.
func (CommChannel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("comm_channels").
			Field("account_id").
			Unique().
			Required(),
	}
}

// Indexes of the CommChannel.
func (CommChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "comm_type"),
	}
}
