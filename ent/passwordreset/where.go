// Code generated by ent, DO NOT EDIT.

package passwordreset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planora.io/planora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldAccountID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldEmail, v))
}

// TokenSalt applies equality check predicate on the "token_salt" field. It's identical to TokenSaltEQ.
func TokenSalt(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldTokenSalt, v))
}

// MessageSentDate applies equality check predicate on the "message_sent_date" field. It's identical to MessageSentDateEQ.
func MessageSentDate(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldMessageSentDate, v))
}

// ResetDate applies equality check predicate on the "reset_date" field. It's identical to ResetDateEQ.
func ResetDate(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldResetDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContainsFold(FieldAccountID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContainsFold(FieldEmail, v))
}

// TokenSaltEQ applies the EQ predicate on the "token_salt" field.
func TokenSaltEQ(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldTokenSalt, v))
}

// TokenSaltNEQ applies the NEQ predicate on the "token_salt" field.
func TokenSaltNEQ(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldTokenSalt, v))
}

// TokenSaltIn applies the In predicate on the "token_salt" field.
func TokenSaltIn(vs ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldTokenSalt, vs...))
}

// TokenSaltNotIn applies the NotIn predicate on the "token_salt" field.
func TokenSaltNotIn(vs ...string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldTokenSalt, vs...))
}

// TokenSaltGT applies the GT predicate on the "token_salt" field.
func TokenSaltGT(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldTokenSalt, v))
}

// TokenSaltGTE applies the GTE predicate on the "token_salt" field.
func TokenSaltGTE(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldTokenSalt, v))
}

// TokenSaltLT applies the LT predicate on the "token_salt" field.
func TokenSaltLT(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldTokenSalt, v))
}

// TokenSaltLTE applies the LTE predicate on the "token_salt" field.
func TokenSaltLTE(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldTokenSalt, v))
}

// TokenSaltContains applies the Contains predicate on the "token_salt" field.
func TokenSaltContains(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContains(FieldTokenSalt, v))
}

// TokenSaltHasPrefix applies the HasPrefix predicate on the "token_salt" field.
func TokenSaltHasPrefix(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldHasPrefix(FieldTokenSalt, v))
}

// TokenSaltHasSuffix applies the HasSuffix predicate on the "token_salt" field.
func TokenSaltHasSuffix(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldHasSuffix(FieldTokenSalt, v))
}

// TokenSaltEqualFold applies the EqualFold predicate on the "token_salt" field.
func TokenSaltEqualFold(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEqualFold(FieldTokenSalt, v))
}

// TokenSaltContainsFold applies the ContainsFold predicate on the "token_salt" field.
func TokenSaltContainsFold(v string) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldContainsFold(FieldTokenSalt, v))
}

// MessageSentDateEQ applies the EQ predicate on the "message_sent_date" field.
func MessageSentDateEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldMessageSentDate, v))
}

// MessageSentDateNEQ applies the NEQ predicate on the "message_sent_date" field.
func MessageSentDateNEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldMessageSentDate, v))
}

// MessageSentDateIn applies the In predicate on the "message_sent_date" field.
func MessageSentDateIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldMessageSentDate, vs...))
}

// MessageSentDateNotIn applies the NotIn predicate on the "message_sent_date" field.
func MessageSentDateNotIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldMessageSentDate, vs...))
}

// MessageSentDateGT applies the GT predicate on the "message_sent_date" field.
func MessageSentDateGT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldMessageSentDate, v))
}

// MessageSentDateGTE applies the GTE predicate on the "message_sent_date" field.
func MessageSentDateGTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldMessageSentDate, v))
}

// MessageSentDateLT applies the LT predicate on the "message_sent_date" field.
func MessageSentDateLT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldMessageSentDate, v))
}

// MessageSentDateLTE applies the LTE predicate on the "message_sent_date" field.
func MessageSentDateLTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldMessageSentDate, v))
}

// MessageSentDateIsNil applies the IsNil predicate on the "message_sent_date" field.
func MessageSentDateIsNil() predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIsNull(FieldMessageSentDate))
}

// MessageSentDateNotNil applies the NotNil predicate on the "message_sent_date" field.
func MessageSentDateNotNil() predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotNull(FieldMessageSentDate))
}

// ResetDateEQ applies the EQ predicate on the "reset_date" field.
func ResetDateEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldEQ(FieldResetDate, v))
}

// ResetDateNEQ applies the NEQ predicate on the "reset_date" field.
func ResetDateNEQ(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNEQ(FieldResetDate, v))
}

// ResetDateIn applies the In predicate on the "reset_date" field.
func ResetDateIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIn(FieldResetDate, vs...))
}

// ResetDateNotIn applies the NotIn predicate on the "reset_date" field.
func ResetDateNotIn(vs ...time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotIn(FieldResetDate, vs...))
}

// ResetDateGT applies the GT predicate on the "reset_date" field.
func ResetDateGT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGT(FieldResetDate, v))
}

// ResetDateGTE applies the GTE predicate on the "reset_date" field.
func ResetDateGTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldGTE(FieldResetDate, v))
}

// ResetDateLT applies the LT predicate on the "reset_date" field.
func ResetDateLT(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLT(FieldResetDate, v))
}

// ResetDateLTE applies the LTE predicate on the "reset_date" field.
func ResetDateLTE(v time.Time) predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldLTE(FieldResetDate, v))
}

// ResetDateIsNil applies the IsNil predicate on the "reset_date" field.
func ResetDateIsNil() predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldIsNull(FieldResetDate))
}

// ResetDateNotNil applies the NotNil predicate on the "reset_date" field.
func ResetDateNotNil() predicate.PasswordReset {
	return predicate.PasswordReset(sql.FieldNotNull(FieldResetDate))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.PasswordReset {
	return predicate.PasswordReset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.PasswordReset {
	return predicate.PasswordReset(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PasswordReset) predicate.PasswordReset {
	return predicate.PasswordReset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PasswordReset) predicate.PasswordReset {
	return predicate.PasswordReset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PasswordReset) predicate.PasswordReset {
	return predicate.PasswordReset(sql.NotPredicates(p))
}
