package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora.io/planora/ent"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/guesttoken"
	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
	"planora.io/planora/internal/pkg/worker"
	"planora.io/planora/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

type captureEnqueuer struct {
	mu   sync.Mutex
	reqs []notification.DeliveryRequest
}

func (c *captureEnqueuer) EnqueueDelivery(_ context.Context, req notification.DeliveryRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reqs = append(c.reqs, req)
	return nil
}

func (c *captureEnqueuer) snapshot() []notification.DeliveryRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]notification.DeliveryRequest(nil), c.reqs...)
}

func newEventFixture(t *testing.T, prefix string) (*EventService, *ent.Client, *captureEnqueuer) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	enq := &captureEnqueuer{}
	svc := NewEventService(client,
		notification.NewDispatcher(enq),
		guesttoken.NewRegistry(client),
		pools)
	return svc, client, enq
}

func seedAccount(t *testing.T, client *ent.Client, id string) *ent.Account {
	t.Helper()
	return client.Account.Create().
		SetID(id).
		SetName("Account " + id).
		SetStatus(account.StatusACTIVE).
		SaveX(context.Background())
}

func draftEvent(t *testing.T, svc *EventService, ownerID string) *ent.Event {
	t.Helper()
	ev, err := svc.CreateEvent(context.Background(), ownerID, EventParams{
		Title:    "Lakeside BBQ",
		Start:    time.Date(2026, 7, 4, 17, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 7, 4, 21, 0, 0, 0, time.UTC),
		Timezone: "America/New_York",
		Location: "12 Shore Rd",
	})
	require.NoError(t, err)
	require.Equal(t, event.StatusDRAFT, ev.Status)
	return ev
}

func waitForRequests(t *testing.T, enq *captureEnqueuer, n int) []notification.DeliveryRequest {
	t.Helper()
	var got []notification.DeliveryRequest
	require.Eventually(t, func() bool {
		got = enq.snapshot()
		return len(got) >= n
	}, 5*time.Second, 20*time.Millisecond, "expected %d delivery requests", n)
	return got
}

func TestActivationInvitesEveryGuest(t *testing.T) {
	svc, client, enq := newEventFixture(t, "event_activate")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	g1 := seedAccount(t, client, "guest-1")
	g2 := seedAccount(t, client, "guest-2")
	ev := draftEvent(t, svc, owner.ID)

	_, err := svc.InviteGuest(ctx, ev.ID, g1.ID, "")
	require.NoError(t, err)
	_, err = svc.InviteGuest(ctx, ev.ID, g2.ID, "")
	require.NoError(t, err)
	assert.Empty(t, enq.snapshot(), "guests on a draft are not invited yet")

	_, err = svc.ActivateEvent(ctx, ev.ID)
	require.NoError(t, err)

	reqs := waitForRequests(t, enq, 2)
	for _, r := range reqs {
		assert.Equal(t, domain.NotifyEventInvite, r.Type)
		assert.Equal(t, owner.ID, r.SenderID)
		assert.Equal(t, domain.EventRef(ev.ID), r.Subject)
	}
}

func TestDraftEditsAreSilent(t *testing.T) {
	svc, client, enq := newEventFixture(t, "event_draft_silent")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	guest := seedAccount(t, client, "guest")
	ev := draftEvent(t, svc, owner.ID)
	_, err := svc.InviteGuest(ctx, ev.ID, guest.ID, "")
	require.NoError(t, err)

	title := "New Title"
	loc := "Elsewhere"
	_, err = svc.UpdateEvent(ctx, ev.ID, EventPatch{Title: &title, Location: &loc})
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, enq.snapshot())
}

func TestTrackedChangeOnActiveEventNotifies(t *testing.T) {
	svc, client, enq := newEventFixture(t, "event_update")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	guest := seedAccount(t, client, "guest")
	ev := draftEvent(t, svc, owner.ID)
	_, err := svc.InviteGuest(ctx, ev.ID, guest.ID, "")
	require.NoError(t, err)
	_, err = svc.ActivateEvent(ctx, ev.ID)
	require.NoError(t, err)
	waitForRequests(t, enq, 1)

	loc := "New venue"
	_, err = svc.UpdateEvent(ctx, ev.ID, EventPatch{Location: &loc})
	require.NoError(t, err)

	reqs := waitForRequests(t, enq, 2)
	assert.Equal(t, domain.NotifyEventUpdate, reqs[len(reqs)-1].Type)
}

func TestReassignedValueDoesNotNotify(t *testing.T) {
	svc, client, enq := newEventFixture(t, "event_reassign")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	guest := seedAccount(t, client, "guest")
	ev := draftEvent(t, svc, owner.ID)
	_, err := svc.InviteGuest(ctx, ev.ID, guest.ID, "")
	require.NoError(t, err)
	_, err = svc.ActivateEvent(ctx, ev.ID)
	require.NoError(t, err)
	waitForRequests(t, enq, 1)

	same := ev.Location
	_, err = svc.UpdateEvent(ctx, ev.ID, EventPatch{Location: &same})
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	assert.Len(t, enq.snapshot(), 1, "writing the same value back is not a change")
}

func TestCancelNotifiesAndIsTerminal(t *testing.T) {
	svc, client, enq := newEventFixture(t, "event_cancel")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	guest := seedAccount(t, client, "guest")
	ev := draftEvent(t, svc, owner.ID)
	_, err := svc.InviteGuest(ctx, ev.ID, guest.ID, "")
	require.NoError(t, err)
	_, err = svc.ActivateEvent(ctx, ev.ID)
	require.NoError(t, err)
	waitForRequests(t, enq, 1)

	_, err = svc.CancelEvent(ctx, ev.ID)
	require.NoError(t, err)
	reqs := waitForRequests(t, enq, 2)
	assert.Equal(t, domain.NotifyEventCancel, reqs[len(reqs)-1].Type)

	// Terminal: nothing reactivates a cancelled event.
	_, err = svc.ActivateEvent(ctx, ev.ID)
	require.Error(t, err)
	appErr, ok := errs.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "EVENT_TRANSITION_INVALID", appErr.Code)
}

func TestInviteToActiveEventSendsImmediately(t *testing.T) {
	svc, client, enq := newEventFixture(t, "event_late_invite")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	late := seedAccount(t, client, "late-guest")
	ev := draftEvent(t, svc, owner.ID)
	_, err := svc.ActivateEvent(ctx, ev.ID)
	require.NoError(t, err)

	guest, err := svc.InviteGuest(ctx, ev.ID, late.ID, "Late Guest")
	require.NoError(t, err)
	assert.NotEmpty(t, guest.Token)

	reqs := waitForRequests(t, enq, 1)
	assert.Equal(t, domain.NotifyEventInvite, reqs[0].Type)
	assert.Equal(t, late.ID, reqs[0].RecipientID)
}

func TestInviteGuestTwiceConflicts(t *testing.T) {
	svc, client, _ := newEventFixture(t, "event_dup_guest")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	guest := seedAccount(t, client, "guest")
	ev := draftEvent(t, svc, owner.ID)

	_, err := svc.InviteGuest(ctx, ev.ID, guest.ID, "")
	require.NoError(t, err)
	_, err = svc.InviteGuest(ctx, ev.ID, guest.ID, "")
	require.Error(t, err)
	appErr, ok := errs.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "GUEST_EXISTS", appErr.Code)
}

func TestRSVPByToken(t *testing.T) {
	svc, client, _ := newEventFixture(t, "event_rsvp")
	ctx := context.Background()

	owner := seedAccount(t, client, "owner")
	guestAcct := seedAccount(t, client, "guest")
	ev := draftEvent(t, svc, owner.ID)
	guest, err := svc.InviteGuest(ctx, ev.ID, guestAcct.ID, "")
	require.NoError(t, err)

	got, err := svc.GuestByToken(ctx, ev.ID, guest.Token)
	require.NoError(t, err)
	assert.Equal(t, eventguest.RsvpUNDECIDED, got.Rsvp)

	got, err = svc.UpdateRSVPByToken(ctx, ev.ID, guest.Token, "YES")
	require.NoError(t, err)
	assert.Equal(t, eventguest.RsvpYES, got.Rsvp)

	// Token under the wrong event is indistinguishable from an unknown one.
	otherEv := draftEvent(t, svc, owner.ID)
	_, err = svc.GuestByToken(ctx, otherEv.ID, guest.Token)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.UpdateRSVPByToken(ctx, ev.ID, guest.Token, "SURE")
	require.Error(t, err)
}

func TestAlbumTypeCatalogAndAlbums(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "album_catalog")
	ctx := context.Background()

	pools, err := worker.NewPools(ctx, worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	require.NoError(t, SeedAlbumTypes(ctx, client))
	require.NoError(t, SeedAlbumTypes(ctx, client), "seeding is idempotent")

	catalog := NewAlbumTypeCatalog(client, pools, time.Minute)
	albums := NewAlbumService(client, catalog)

	owner := seedAccount(t, client, "owner")

	created, err := albums.CreateAlbum(ctx, owner.ID, "", AlbumTypeCustom, "Trip Photos", "")
	require.NoError(t, err)

	// Virtual types never hold real albums.
	_, err = albums.CreateAlbum(ctx, owner.ID, "", AlbumTypeAllMedia, "nope", "")
	require.Error(t, err)

	_, err = catalog.ByName(ctx, "NO_SUCH_TYPE")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	list, err := albums.ActiveAlbums(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}
