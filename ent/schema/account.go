package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for user accounts.
//
// CONTACT is a stub account created when someone is invited by email or
// phone before they ever sign up. Stub accounts have no credentials and
// reach their RSVP through a guest token instead of authentication.
type Account struct {
	ent.Schema
}

// Mixin of the Account.
func (Account) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			Optional().
			Nillable().
			MaxLen(100),
		field.String("phone").
			Optional().
			Nillable().
			MaxLen(40).
			Comment("E.164 normalized"),
		field.String("name").
			Optional().
			MaxLen(255),
		field.Enum("status").
			Values(
				"CONTACT",
				"SIGNED_UP",
				"ACTIVE",
				"DELETED",
				"DEACTIVATED",
			).
			Default("SIGNED_UP"),
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Enum("profile_privacy").
			Values("PUBLIC", "PRIVATE").
			Default("PUBLIC"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Time("date_joined").
			Optional().
			Nillable(),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("settings", AccountSettings.Type).
			Unique(),
		edge.To("events", Event.Type),
		edge.To("guest_entries", EventGuest.Type),
		edge.To("albums", Album.Type),
		edge.To("album_files", AlbumFile.Type),
		edge.To("sent_notifications", InAppNotification.Type),
		edge.To("received_notifications", InAppNotification.Type),
		edge.To("password_resets", PasswordReset.Type),
		edge.To("comm_channels", CommChannel.Type),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("phone").Unique(),
		index.Fields("status"),
	}
}
