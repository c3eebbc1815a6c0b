// Package guesttoken issues and verifies opaque per-guest access
// tokens.
//
// A token is bound to exactly one (event, guest) pair, assigned when
// the relation is created and never reassigned. It lets an invited
// person who has no account view and update their own RSVP; it grants
// nothing over any other guest or event.
package guesttoken

import (
	"context"

	"github.com/google/uuid"

	"planora.io/planora/ent"
	"planora.io/planora/ent/eventguest"
	errs "planora.io/planora/internal/pkg/errors"
)

// Issue returns a new cryptographically-random opaque token. Uniqueness
// is enforced by the unique constraint on the guest relation.
func Issue() string {
	return uuid.NewString()
}

// Registry verifies guest tokens against stored guest relations.
type Registry struct {
	client *ent.Client
}

// NewRegistry creates a token registry.
func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// Verify returns the guest relation matching both the event id and the
// token. An unknown token and a valid token presented under a different
// event report the same not-found error, so the response never acts as
// a token-guessing oracle.
func (r *Registry) Verify(ctx context.Context, eventID, token string) (*ent.EventGuest, error) {
	if eventID == "" || token == "" {
		return nil, errs.NotFound("GUEST_NOT_FOUND", "no guest matches this event and token")
	}

	guest, err := r.client.EventGuest.Query().
		Where(
			eventguest.EventIDEQ(eventID),
			eventguest.TokenEQ(token),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("GUEST_NOT_FOUND", "no guest matches this event and token")
		}
		return nil, err
	}
	return guest, nil
}

// TokenFor returns the token of the guest relation for (event,
// account). Used when composing RSVP URLs for stub recipients.
func (r *Registry) TokenFor(ctx context.Context, eventID, accountID string) (string, error) {
	guest, err := r.client.EventGuest.Query().
		Where(
			eventguest.EventIDEQ(eventID),
			eventguest.AccountIDEQ(accountID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", errs.NotFound("GUEST_NOT_FOUND", "account is not a guest of this event")
		}
		return "", err
	}
	return guest.Token, nil
}
