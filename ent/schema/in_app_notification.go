package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InAppNotification is the append-only in-app audit record created once
// per dispatched notification intent, regardless of which external
// channel (if any) carried it. Rows are never mutated or deleted by the
// core.
//
// The subject is a tagged reference (kind + id) over a closed set of
// entity kinds, not a runtime content-type lookup.
type InAppNotification struct {
	ent.Schema
}

// Mixin of the InAppNotification.
func (InAppNotification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the InAppNotification.
func (InAppNotification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("sender_id").
			Immutable(),
		field.String("recipient_id").
			Immutable(),
		field.Enum("notification_type").
			Values(
				"EVENT_INVITE",
				"EVENT_CANCEL",
				"EVENT_UPDATE",
				"EVENTGUEST_RSVP",
				"ALBUMFILE_UPLOAD",
				"ACCOUNT_EMAIL_VALIDATE",
			).
			Immutable(),
		field.Enum("subject_kind").
			Values("EVENT", "ALBUM_FILE", "COMMENT", "ACCOUNT").
			Immutable(),
		field.String("subject_id").
			Immutable(),
	}
}

// Edges of the InAppNotification.
func (InAppNotification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sender", Account.Type).
			Ref("sent_notifications").
			Field("sender_id").
			Unique().
			Required().
			Immutable(),
		edge.From("recipient", Account.Type).
			Ref("received_notifications").
			Field("recipient_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the InAppNotification.
func (InAppNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "created_at"),
	}
}
