package guesttoken

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora.io/planora/ent"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/testutil"
)

func TestIssueProducesDistinctTokens(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := Issue()
		require.NotEmpty(t, tok)
		require.False(t, seen[tok], "token issued twice")
		seen[tok] = true
	}
}

func seedGuest(t *testing.T, client *ent.Client, eventID, accountID, token string) {
	t.Helper()
	ctx := context.Background()
	start := time.Now().Add(24 * time.Hour)

	owner := client.Account.Create().
		SetID("owner-" + eventID).
		SetName("Host").
		SaveX(ctx)
	client.Account.Create().
		SetID(accountID).
		SetName("Guest").
		SaveX(ctx)
	client.Event.Create().
		SetID(eventID).
		SetOwnerID(owner.ID).
		SetTitle("Party").
		SetStart(start).
		SetEnd(start.Add(2 * time.Hour)).
		SetTimezone("UTC").
		SaveX(ctx)
	client.EventGuest.Create().
		SetID("guest-" + eventID).
		SetEventID(eventID).
		SetAccountID(accountID).
		SetToken(token).
		SaveX(ctx)
}

func TestVerifyRequiresExactPair(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "guesttoken_verify")
	r := NewRegistry(client)
	ctx := context.Background()

	seedGuest(t, client, "ev-1", "acc-1", "tok-1")
	seedGuest(t, client, "ev-2", "acc-2", "tok-2")

	guest, err := r.Verify(ctx, "ev-1", "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", guest.AccountID)

	// A real token under the wrong event is indistinguishable from an
	// unknown token.
	_, err = r.Verify(ctx, "ev-2", "tok-1")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	_, err = r.Verify(ctx, "ev-1", "no-such-token")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	_, err = r.Verify(ctx, "", "tok-1")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	_, err = r.Verify(ctx, "ev-1", "")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestTokenFor(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "guesttoken_tokenfor")
	r := NewRegistry(client)
	ctx := context.Background()

	seedGuest(t, client, "ev-1", "acc-1", "tok-1")

	tok, err := r.TokenFor(ctx, "ev-1", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	_, err = r.TokenFor(ctx, "ev-1", "acc-other")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
