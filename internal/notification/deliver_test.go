package notification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora.io/planora/ent"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/guesttoken"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/testutil"
)

type sentEmail struct {
	to      string
	subject string
	text    string
}

type captureEmailChannel struct {
	sent []sentEmail
}

func (c *captureEmailChannel) SendEmail(_ context.Context, to, subject, textBody, _ string) error {
	c.sent = append(c.sent, sentEmail{to: to, subject: subject, text: textBody})
	return nil
}

type captureSMSChannel struct {
	sent []string // phone numbers
}

func (c *captureSMSChannel) SendSMS(_ context.Context, phone, _ string) error {
	c.sent = append(c.sent, phone)
	return nil
}

type delivererFixture struct {
	client *ent.Client
	d      *Deliverer
	email  *captureEmailChannel
	sms    *captureSMSChannel
}

func newDelivererFixture(t *testing.T, prefix string) *delivererFixture {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	registry, err := NewRegistry()
	require.NoError(t, err)
	urls := NewURLBuilder("https://planora.example", "https://planora.example/register")
	email := &captureEmailChannel{}
	sms := &captureSMSChannel{}
	d := NewDeliverer(client, registry, urls, guesttoken.NewRegistry(client), email, sms)
	return &delivererFixture{client: client, d: d, email: email, sms: sms}
}

// seedInvite sets up a host, a recipient with the given status and
// endpoints, an upcoming event, and the guest relation linking them.
func (f *delivererFixture) seedInvite(t *testing.T, status account.Status, emailAddr, phone string) (host, recipient *ent.Account, ev *ent.Event, token string) {
	t.Helper()
	ctx := context.Background()

	host = f.client.Account.Create().
		SetID("host-1").
		SetName("Grace").
		SetStatus(account.StatusACTIVE).
		SaveX(ctx)
	rb := f.client.Account.Create().
		SetID("guest-1").
		SetName("Ada").
		SetStatus(status)
	if emailAddr != "" {
		rb.SetEmail(emailAddr)
	}
	if phone != "" {
		rb.SetPhone(phone)
	}
	recipient = rb.SaveX(ctx)

	start := time.Now().Add(72 * time.Hour)
	ev = f.client.Event.Create().
		SetID("ev-1").
		SetOwnerID(host.ID).
		SetTitle("Launch party").
		SetStart(start).
		SetEnd(start.Add(3 * time.Hour)).
		SetTimezone("America/New_York").
		SetLocation("12 Main St").
		SetStatus(event.StatusACTIVE).
		SaveX(ctx)

	token = guesttoken.Issue()
	f.client.EventGuest.Create().
		SetID("eg-1").
		SetEventID(ev.ID).
		SetAccountID(recipient.ID).
		SetToken(token).
		SaveX(ctx)
	return host, recipient, ev, token
}

func inviteRequest(host, recipient *ent.Account, ev *ent.Event) DeliveryRequest {
	return DeliveryRequest{
		Type:        domain.NotifyEventInvite,
		SenderID:    host.ID,
		RecipientID: recipient.ID,
		Subject:     domain.EventRef(ev.ID),
	}
}

func (f *delivererFixture) inAppCount(t *testing.T, recipientID string) int {
	t.Helper()
	return f.client.InAppNotification.Query().
		Where(inappnotification.RecipientIDEQ(recipientID)).
		CountX(context.Background())
}

func TestDeliverPrefersEmailOverSMS(t *testing.T) {
	f := newDelivererFixture(t, "deliver_emailfirst")
	host, recipient, ev, _ := f.seedInvite(t, account.StatusACTIVE, "ada@example.com", "+12125550142")

	require.NoError(t, f.d.Deliver(context.Background(), inviteRequest(host, recipient, ev)))

	// Exactly one external delivery, on email, never both.
	require.Len(t, f.email.sent, 1)
	assert.Empty(t, f.sms.sent)
	assert.Equal(t, "ada@example.com", f.email.sent[0].to)
	assert.Contains(t, f.email.sent[0].subject, "Launch party")
	assert.Contains(t, f.email.sent[0].text, "Grace")
	assert.Equal(t, 1, f.inAppCount(t, recipient.ID))
}

func TestDeliverFallsBackToSMS(t *testing.T) {
	f := newDelivererFixture(t, "deliver_smsfallback")
	host, recipient, ev, _ := f.seedInvite(t, account.StatusCONTACT, "", "+12125550142")

	require.NoError(t, f.d.Deliver(context.Background(), inviteRequest(host, recipient, ev)))

	assert.Empty(t, f.email.sent)
	require.Len(t, f.sms.sent, 1)
	assert.Equal(t, "+12125550142", f.sms.sent[0])
	assert.Equal(t, 1, f.inAppCount(t, recipient.ID))
}

func TestDeliverStubRecipientGetsTokenizedLink(t *testing.T) {
	f := newDelivererFixture(t, "deliver_stubtoken")
	host, recipient, ev, token := f.seedInvite(t, account.StatusCONTACT, "ada@example.com", "")

	require.NoError(t, f.d.Deliver(context.Background(), inviteRequest(host, recipient, ev)))

	require.Len(t, f.email.sent, 1)
	assert.Contains(t, f.email.sent[0].text, "t="+token,
		"stub recipients must get an actionable tokenized RSVP link")
}

func TestDeliverActiveRecipientLinkHasNoToken(t *testing.T) {
	f := newDelivererFixture(t, "deliver_activenotoken")
	host, recipient, ev, token := f.seedInvite(t, account.StatusACTIVE, "ada@example.com", "")

	require.NoError(t, f.d.Deliver(context.Background(), inviteRequest(host, recipient, ev)))

	require.Len(t, f.email.sent, 1)
	assert.NotContains(t, f.email.sent[0].text, token,
		"full accounts authenticate; their link must not carry the guest token")
}

func TestDeliverUnmappedTypeStillRecordsInApp(t *testing.T) {
	f := newDelivererFixture(t, "deliver_unmapped")
	host, recipient, ev, _ := f.seedInvite(t, account.StatusACTIVE, "ada@example.com", "")

	req := inviteRequest(host, recipient, ev)
	req.Type = domain.NotifyGuestRSVP

	err := f.d.Deliver(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errs.IsConfiguration(err))

	// The audit record exists even though no template is mapped and
	// nothing went out externally.
	assert.Equal(t, 1, f.inAppCount(t, recipient.ID))
	assert.Empty(t, f.email.sent)
	assert.Empty(t, f.sms.sent)
}

func TestDeliverSkipsIneligibleRecipient(t *testing.T) {
	f := newDelivererFixture(t, "deliver_ineligible")
	host, recipient, ev, _ := f.seedInvite(t, account.StatusDEACTIVATED, "ada@example.com", "+12125550142")

	require.NoError(t, f.d.Deliver(context.Background(), inviteRequest(host, recipient, ev)))

	assert.Empty(t, f.email.sent)
	assert.Empty(t, f.sms.sent)
	// The in-app record is still written.
	assert.Equal(t, 1, f.inAppCount(t, recipient.ID))
}

func TestDeliverHonorsPreferenceOptOut(t *testing.T) {
	f := newDelivererFixture(t, "deliver_optout")
	host, recipient, ev, _ := f.seedInvite(t, account.StatusACTIVE, "ada@example.com", "")
	ctx := context.Background()

	f.client.AccountSettings.Create().
		SetID("as-1").
		SetAccountID(recipient.ID).
		SetEmailSocialActivity(false).
		SaveX(ctx)

	require.NoError(t, f.d.Deliver(ctx, inviteRequest(host, recipient, ev)))

	assert.Empty(t, f.email.sent, "opted-out category must not email")
	assert.Equal(t, 1, f.inAppCount(t, recipient.ID))
}

func TestDeliverMissingRecipientDropsQuietly(t *testing.T) {
	f := newDelivererFixture(t, "deliver_norecipient")

	req := DeliveryRequest{
		Type:        domain.NotifyEventInvite,
		SenderID:    "host-x",
		RecipientID: "gone",
		Subject:     domain.EventRef("ev-x"),
	}
	require.NoError(t, f.d.Deliver(context.Background(), req))
	assert.Empty(t, f.email.sent)
	assert.Empty(t, f.sms.sent)
}

func TestDeliverMissingEventDropsQuietly(t *testing.T) {
	f := newDelivererFixture(t, "deliver_noevent")
	host, recipient, _, _ := f.seedInvite(t, account.StatusACTIVE, "ada@example.com", "")

	req := DeliveryRequest{
		Type:        domain.NotifyEventInvite,
		SenderID:    host.ID,
		RecipientID: recipient.ID,
		Subject:     domain.EventRef("no-such-event"),
	}
	require.NoError(t, f.d.Deliver(context.Background(), req))
	assert.Empty(t, f.email.sent)
}

func TestDeliverEmailValidationStampsChannel(t *testing.T) {
	f := newDelivererFixture(t, "deliver_validation")
	ctx := context.Background()

	recipient := f.client.Account.Create().
		SetID("acc-1").
		SetName("Ada").
		SetEmail("ada@example.com").
		SetStatus(account.StatusSIGNED_UP).
		SaveX(ctx)
	ch := f.client.CommChannel.Create().
		SetID("cc-1").
		SetAccountID(recipient.ID).
		SetCommType(commchannel.CommTypeEMAIL).
		SetEndpoint("ada@example.com").
		SetValidationToken("valtok-1").
		SaveX(ctx)

	// Opt out of everything: validation messages bypass preferences.
	f.client.AccountSettings.Create().
		SetID("as-1").
		SetAccountID(recipient.ID).
		SetEmailSocialActivity(false).
		SetEmailRsvpUpdates(false).
		SaveX(ctx)

	req := DeliveryRequest{
		Type:        domain.NotifyEmailValidate,
		SenderID:    recipient.ID,
		RecipientID: recipient.ID,
		Subject:     domain.AccountRef(recipient.ID),
	}
	require.NoError(t, f.d.Deliver(ctx, req))

	require.Len(t, f.email.sent, 1)
	assert.True(t, strings.Contains(f.email.sent[0].text, "t=valtok-1"),
		"activation link must carry the validation token: %s", f.email.sent[0].text)

	ch = f.client.CommChannel.GetX(ctx, ch.ID)
	assert.NotNil(t, ch.MessageSentDate, "sent channel must be stamped")
}
