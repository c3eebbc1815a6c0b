// Code generated by ent, DO NOT EDIT.

package commchannel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planora.io/planora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldAccountID, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldEndpoint, v))
}

// ValidationToken applies equality check predicate on the "validation_token" field. It's identical to ValidationTokenEQ.
func ValidationToken(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldValidationToken, v))
}

// ValidationDate applies equality check predicate on the "validation_date" field. It's identical to ValidationDateEQ.
func ValidationDate(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldValidationDate, v))
}

// MessageSentDate applies equality check predicate on the "message_sent_date" field. It's identical to MessageSentDateEQ.
func MessageSentDate(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldMessageSentDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContainsFold(FieldAccountID, v))
}

// CommTypeEQ applies the EQ predicate on the "comm_type" field.
func CommTypeEQ(v CommType) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldCommType, v))
}

// CommTypeNEQ applies the NEQ predicate on the "comm_type" field.
func CommTypeNEQ(v CommType) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldCommType, v))
}

// CommTypeIn applies the In predicate on the "comm_type" field.
func CommTypeIn(vs ...CommType) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldCommType, vs...))
}

// CommTypeNotIn applies the NotIn predicate on the "comm_type" field.
func CommTypeNotIn(vs ...CommType) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldCommType, vs...))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContainsFold(FieldEndpoint, v))
}

// ValidationTokenEQ applies the EQ predicate on the "validation_token" field.
func ValidationTokenEQ(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldValidationToken, v))
}

// ValidationTokenNEQ applies the NEQ predicate on the "validation_token" field.
func ValidationTokenNEQ(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldValidationToken, v))
}

// ValidationTokenIn applies the In predicate on the "validation_token" field.
func ValidationTokenIn(vs ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldValidationToken, vs...))
}

// ValidationTokenNotIn applies the NotIn predicate on the "validation_token" field.
func ValidationTokenNotIn(vs ...string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldValidationToken, vs...))
}

// ValidationTokenGT applies the GT predicate on the "validation_token" field.
func ValidationTokenGT(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldValidationToken, v))
}

// ValidationTokenGTE applies the GTE predicate on the "validation_token" field.
func ValidationTokenGTE(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldValidationToken, v))
}

// ValidationTokenLT applies the LT predicate on the "validation_token" field.
func ValidationTokenLT(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldValidationToken, v))
}

// ValidationTokenLTE applies the LTE predicate on the "validation_token" field.
func ValidationTokenLTE(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldValidationToken, v))
}

// ValidationTokenContains applies the Contains predicate on the "validation_token" field.
func ValidationTokenContains(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContains(FieldValidationToken, v))
}

// ValidationTokenHasPrefix applies the HasPrefix predicate on the "validation_token" field.
func ValidationTokenHasPrefix(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldHasPrefix(FieldValidationToken, v))
}

// ValidationTokenHasSuffix applies the HasSuffix predicate on the "validation_token" field.
func ValidationTokenHasSuffix(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldHasSuffix(FieldValidationToken, v))
}

// ValidationTokenEqualFold applies the EqualFold predicate on the "validation_token" field.
func ValidationTokenEqualFold(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEqualFold(FieldValidationToken, v))
}

// ValidationTokenContainsFold applies the ContainsFold predicate on the "validation_token" field.
func ValidationTokenContainsFold(v string) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldContainsFold(FieldValidationToken, v))
}

// ValidationDateEQ applies the EQ predicate on the "validation_date" field.
func ValidationDateEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldValidationDate, v))
}

// ValidationDateNEQ applies the NEQ predicate on the "validation_date" field.
func ValidationDateNEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldValidationDate, v))
}

// ValidationDateIn applies the In predicate on the "validation_date" field.
func ValidationDateIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldValidationDate, vs...))
}

// ValidationDateNotIn applies the NotIn predicate on the "validation_date" field.
func ValidationDateNotIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldValidationDate, vs...))
}

// ValidationDateGT applies the GT predicate on the "validation_date" field.
func ValidationDateGT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldValidationDate, v))
}

// ValidationDateGTE applies the GTE predicate on the "validation_date" field.
func ValidationDateGTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldValidationDate, v))
}

// ValidationDateLT applies the LT predicate on the "validation_date" field.
func ValidationDateLT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldValidationDate, v))
}

// ValidationDateLTE applies the LTE predicate on the "validation_date" field.
func ValidationDateLTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldValidationDate, v))
}

// ValidationDateIsNil applies the IsNil predicate on the "validation_date" field.
func ValidationDateIsNil() predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIsNull(FieldValidationDate))
}

// ValidationDateNotNil applies the NotNil predicate on the "validation_date" field.
func ValidationDateNotNil() predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotNull(FieldValidationDate))
}

// MessageSentDateEQ applies the EQ predicate on the "message_sent_date" field.
func MessageSentDateEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldEQ(FieldMessageSentDate, v))
}

// MessageSentDateNEQ applies the NEQ predicate on the "message_sent_date" field.
func MessageSentDateNEQ(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNEQ(FieldMessageSentDate, v))
}

// MessageSentDateIn applies the In predicate on the "message_sent_date" field.
func MessageSentDateIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIn(FieldMessageSentDate, vs...))
}

// MessageSentDateNotIn applies the NotIn predicate on the "message_sent_date" field.
func MessageSentDateNotIn(vs ...time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotIn(FieldMessageSentDate, vs...))
}

// MessageSentDateGT applies the GT predicate on the "message_sent_date" field.
func MessageSentDateGT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGT(FieldMessageSentDate, v))
}

// MessageSentDateGTE applies the GTE predicate on the "message_sent_date" field.
func MessageSentDateGTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldGTE(FieldMessageSentDate, v))
}

// MessageSentDateLT applies the LT predicate on the "message_sent_date" field.
func MessageSentDateLT(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLT(FieldMessageSentDate, v))
}

// MessageSentDateLTE applies the LTE predicate on the "message_sent_date" field.
func MessageSentDateLTE(v time.Time) predicate.CommChannel {
	return predicate.CommChannel(sql.FieldLTE(FieldMessageSentDate, v))
}

// MessageSentDateIsNil applies the IsNil predicate on the "message_sent_date" field.
func MessageSentDateIsNil() predicate.CommChannel {
	return predicate.CommChannel(sql.FieldIsNull(FieldMessageSentDate))
}

// MessageSentDateNotNil applies the NotNil predicate on the "message_sent_date" field.
func MessageSentDateNotNil() predicate.CommChannel {
	return predicate.CommChannel(sql.FieldNotNull(FieldMessageSentDate))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.CommChannel {
	return predicate.CommChannel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.CommChannel {
	return predicate.CommChannel(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommChannel) predicate.CommChannel {
	return predicate.CommChannel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommChannel) predicate.CommChannel {
	return predicate.CommChannel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommChannel) predicate.CommChannel {
	return predicate.CommChannel(sql.NotPredicates(p))
}
