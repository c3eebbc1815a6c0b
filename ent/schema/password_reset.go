package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PasswordReset records one reset request. The reset token itself is
// never stored: it is a deterministic digest of this row's sent
// timestamp and salt together with the account's current password hash,
// so changing the password invalidates every outstanding token.
type PasswordReset struct {
	ent.Schema
}

// Mixin of the PasswordReset.
func (PasswordReset) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PasswordReset.
func (PasswordReset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("account_id"),
		field.String("email").
			NotEmpty(),
		field.String("token_salt").
			Immutable(),
		field.Time("message_sent_date").
			Optional().
			Nillable(),
		field.Time("reset_date").
			Optional().
			Nillable(),
	}
}

// Edges of the PasswordReset.
func (PasswordReset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("password_resets").
			Field("account_id").
			Unique().
			Required(),
	}
}

// Indexes of the PasswordReset.
func (PasswordReset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("account_id", "message_sent_date"),
	}
}
