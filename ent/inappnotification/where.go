// Code generated by ent, DO NOT EDIT.

package inappnotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planora.io/planora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// SenderID applies equality check predicate on the "sender_id" field. It's identical to SenderIDEQ.
func SenderID(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldSenderID, v))
}

// RecipientID applies equality check predicate on the "recipient_id" field. It's identical to RecipientIDEQ.
func RecipientID(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldRecipientID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldSubjectID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldCreatedAt, v))
}

// SenderIDEQ applies the EQ predicate on the "sender_id" field.
func SenderIDEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldSenderID, v))
}

// SenderIDNEQ applies the NEQ predicate on the "sender_id" field.
func SenderIDNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldSenderID, v))
}

// SenderIDIn applies the In predicate on the "sender_id" field.
func SenderIDIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldSenderID, vs...))
}

// SenderIDNotIn applies the NotIn predicate on the "sender_id" field.
func SenderIDNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldSenderID, vs...))
}

// SenderIDGT applies the GT predicate on the "sender_id" field.
func SenderIDGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldSenderID, v))
}

// SenderIDGTE applies the GTE predicate on the "sender_id" field.
func SenderIDGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldSenderID, v))
}

// SenderIDLT applies the LT predicate on the "sender_id" field.
func SenderIDLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldSenderID, v))
}

// SenderIDLTE applies the LTE predicate on the "sender_id" field.
func SenderIDLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldSenderID, v))
}

// SenderIDContains applies the Contains predicate on the "sender_id" field.
func SenderIDContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldSenderID, v))
}

// SenderIDHasPrefix applies the HasPrefix predicate on the "sender_id" field.
func SenderIDHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldSenderID, v))
}

// SenderIDHasSuffix applies the HasSuffix predicate on the "sender_id" field.
func SenderIDHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldSenderID, v))
}

// SenderIDEqualFold applies the EqualFold predicate on the "sender_id" field.
func SenderIDEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldSenderID, v))
}

// SenderIDContainsFold applies the ContainsFold predicate on the "sender_id" field.
func SenderIDContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldSenderID, v))
}

// RecipientIDEQ applies the EQ predicate on the "recipient_id" field.
func RecipientIDEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldRecipientID, v))
}

// RecipientIDNEQ applies the NEQ predicate on the "recipient_id" field.
func RecipientIDNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldRecipientID, v))
}

// RecipientIDIn applies the In predicate on the "recipient_id" field.
func RecipientIDIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldRecipientID, vs...))
}

// RecipientIDNotIn applies the NotIn predicate on the "recipient_id" field.
func RecipientIDNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldRecipientID, vs...))
}

// RecipientIDGT applies the GT predicate on the "recipient_id" field.
func RecipientIDGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldRecipientID, v))
}

// RecipientIDGTE applies the GTE predicate on the "recipient_id" field.
func RecipientIDGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldRecipientID, v))
}

// RecipientIDLT applies the LT predicate on the "recipient_id" field.
func RecipientIDLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldRecipientID, v))
}

// RecipientIDLTE applies the LTE predicate on the "recipient_id" field.
func RecipientIDLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldRecipientID, v))
}

// RecipientIDContains applies the Contains predicate on the "recipient_id" field.
func RecipientIDContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldRecipientID, v))
}

// RecipientIDHasPrefix applies the HasPrefix predicate on the "recipient_id" field.
func RecipientIDHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldRecipientID, v))
}

// RecipientIDHasSuffix applies the HasSuffix predicate on the "recipient_id" field.
func RecipientIDHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldRecipientID, v))
}

// RecipientIDEqualFold applies the EqualFold predicate on the "recipient_id" field.
func RecipientIDEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldRecipientID, v))
}

// RecipientIDContainsFold applies the ContainsFold predicate on the "recipient_id" field.
func RecipientIDContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldRecipientID, v))
}

// NotificationTypeEQ applies the EQ predicate on the "notification_type" field.
func NotificationTypeEQ(v NotificationType) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldNotificationType, v))
}

// NotificationTypeNEQ applies the NEQ predicate on the "notification_type" field.
func NotificationTypeNEQ(v NotificationType) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldNotificationType, v))
}

// NotificationTypeIn applies the In predicate on the "notification_type" field.
func NotificationTypeIn(vs ...NotificationType) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldNotificationType, vs...))
}

// NotificationTypeNotIn applies the NotIn predicate on the "notification_type" field.
func NotificationTypeNotIn(vs ...NotificationType) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldNotificationType, vs...))
}

// SubjectKindEQ applies the EQ predicate on the "subject_kind" field.
func SubjectKindEQ(v SubjectKind) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldSubjectKind, v))
}

// SubjectKindNEQ applies the NEQ predicate on the "subject_kind" field.
func SubjectKindNEQ(v SubjectKind) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldSubjectKind, v))
}

// SubjectKindIn applies the In predicate on the "subject_kind" field.
func SubjectKindIn(vs ...SubjectKind) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldSubjectKind, vs...))
}

// SubjectKindNotIn applies the NotIn predicate on the "subject_kind" field.
func SubjectKindNotIn(vs ...SubjectKind) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldSubjectKind, vs...))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldSubjectID, v))
}

// HasSender applies the HasEdge predicate on the "sender" edge.
func HasSender() predicate.InAppNotification {
	return predicate.InAppNotification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SenderTable, SenderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSenderWith applies the HasEdge predicate on the "sender" edge with a given conditions (other predicates).
func HasSenderWith(preds ...predicate.Account) predicate.InAppNotification {
	return predicate.InAppNotification(func(s *sql.Selector) {
		step := newSenderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecipient applies the HasEdge predicate on the "recipient" edge.
func HasRecipient() predicate.InAppNotification {
	return predicate.InAppNotification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecipientTable, RecipientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipientWith applies the HasEdge predicate on the "recipient" edge with a given conditions (other predicates).
func HasRecipientWith(preds ...predicate.Account) predicate.InAppNotification {
	return predicate.InAppNotification(func(s *sql.Selector) {
		step := newRecipientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InAppNotification) predicate.InAppNotification {
	return predicate.InAppNotification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InAppNotification) predicate.InAppNotification {
	return predicate.InAppNotification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InAppNotification) predicate.InAppNotification {
	return predicate.InAppNotification(sql.NotPredicates(p))
}
