// Code generated by ent, DO NOT EDIT.

package accountsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planora.io/planora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldAccountID, v))
}

// EmailRsvpUpdates applies equality check predicate on the "email_rsvp_updates" field. It's identical to EmailRsvpUpdatesEQ.
func EmailRsvpUpdates(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldEmailRsvpUpdates, v))
}

// EmailSocialActivity applies equality check predicate on the "email_social_activity" field. It's identical to EmailSocialActivityEQ.
func EmailSocialActivity(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldEmailSocialActivity, v))
}

// EmailPromotions applies equality check predicate on the "email_promotions" field. It's identical to EmailPromotionsEQ.
func EmailPromotions(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldEmailPromotions, v))
}

// TextRsvpUpdates applies equality check predicate on the "text_rsvp_updates" field. It's identical to TextRsvpUpdatesEQ.
func TextRsvpUpdates(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldTextRsvpUpdates, v))
}

// TextSocialActivity applies equality check predicate on the "text_social_activity" field. It's identical to TextSocialActivityEQ.
func TextSocialActivity(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldTextSocialActivity, v))
}

// TextPromotions applies equality check predicate on the "text_promotions" field. It's identical to TextPromotionsEQ.
func TextPromotions(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldTextPromotions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldContainsFold(FieldAccountID, v))
}

// EmailRsvpUpdatesEQ applies the EQ predicate on the "email_rsvp_updates" field.
func EmailRsvpUpdatesEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldEmailRsvpUpdates, v))
}

// EmailRsvpUpdatesNEQ applies the NEQ predicate on the "email_rsvp_updates" field.
func EmailRsvpUpdatesNEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldEmailRsvpUpdates, v))
}

// EmailSocialActivityEQ applies the EQ predicate on the "email_social_activity" field.
func EmailSocialActivityEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldEmailSocialActivity, v))
}

// EmailSocialActivityNEQ applies the NEQ predicate on the "email_social_activity" field.
func EmailSocialActivityNEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldEmailSocialActivity, v))
}

// EmailPromotionsEQ applies the EQ predicate on the "email_promotions" field.
func EmailPromotionsEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldEmailPromotions, v))
}

// EmailPromotionsNEQ applies the NEQ predicate on the "email_promotions" field.
func EmailPromotionsNEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldEmailPromotions, v))
}

// TextRsvpUpdatesEQ applies the EQ predicate on the "text_rsvp_updates" field.
func TextRsvpUpdatesEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldTextRsvpUpdates, v))
}

// TextRsvpUpdatesNEQ applies the NEQ predicate on the "text_rsvp_updates" field.
func TextRsvpUpdatesNEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldTextRsvpUpdates, v))
}

// TextRsvpUpdatesIsNil applies the IsNil predicate on the "text_rsvp_updates" field.
func TextRsvpUpdatesIsNil() predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIsNull(FieldTextRsvpUpdates))
}

// TextRsvpUpdatesNotNil applies the NotNil predicate on the "text_rsvp_updates" field.
func TextRsvpUpdatesNotNil() predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotNull(FieldTextRsvpUpdates))
}

// TextSocialActivityEQ applies the EQ predicate on the "text_social_activity" field.
func TextSocialActivityEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldTextSocialActivity, v))
}

// TextSocialActivityNEQ applies the NEQ predicate on the "text_social_activity" field.
func TextSocialActivityNEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldTextSocialActivity, v))
}

// TextSocialActivityIsNil applies the IsNil predicate on the "text_social_activity" field.
func TextSocialActivityIsNil() predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIsNull(FieldTextSocialActivity))
}

// TextSocialActivityNotNil applies the NotNil predicate on the "text_social_activity" field.
func TextSocialActivityNotNil() predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotNull(FieldTextSocialActivity))
}

// TextPromotionsEQ applies the EQ predicate on the "text_promotions" field.
func TextPromotionsEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldTextPromotions, v))
}

// TextPromotionsNEQ applies the NEQ predicate on the "text_promotions" field.
func TextPromotionsNEQ(v bool) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldTextPromotions, v))
}

// TextPromotionsIsNil applies the IsNil predicate on the "text_promotions" field.
func TextPromotionsIsNil() predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIsNull(FieldTextPromotions))
}

// TextPromotionsNotNil applies the NotNil predicate on the "text_promotions" field.
func TextPromotionsNotNil() predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotNull(FieldTextPromotions))
}

// DefaultEventPrivacyEQ applies the EQ predicate on the "default_event_privacy" field.
func DefaultEventPrivacyEQ(v DefaultEventPrivacy) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldEQ(FieldDefaultEventPrivacy, v))
}

// DefaultEventPrivacyNEQ applies the NEQ predicate on the "default_event_privacy" field.
func DefaultEventPrivacyNEQ(v DefaultEventPrivacy) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNEQ(FieldDefaultEventPrivacy, v))
}

// DefaultEventPrivacyIn applies the In predicate on the "default_event_privacy" field.
func DefaultEventPrivacyIn(vs ...DefaultEventPrivacy) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldIn(FieldDefaultEventPrivacy, vs...))
}

// DefaultEventPrivacyNotIn applies the NotIn predicate on the "default_event_privacy" field.
func DefaultEventPrivacyNotIn(vs ...DefaultEventPrivacy) predicate.AccountSettings {
	return predicate.AccountSettings(sql.FieldNotIn(FieldDefaultEventPrivacy, vs...))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.AccountSettings {
	return predicate.AccountSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.AccountSettings {
	return predicate.AccountSettings(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AccountSettings) predicate.AccountSettings {
	return predicate.AccountSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AccountSettings) predicate.AccountSettings {
	return predicate.AccountSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AccountSettings) predicate.AccountSettings {
	return predicate.AccountSettings(sql.NotPredicates(p))
}
