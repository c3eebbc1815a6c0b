package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora.io/planora/internal/domain"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestRegistryMapped(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.True(t, r.Mapped(domain.NotifyEventInvite))
	assert.True(t, r.Mapped(domain.NotifyEventCancel))
	assert.True(t, r.Mapped(domain.NotifyEventUpdate))
	assert.True(t, r.Mapped(domain.NotifyEmailValidate))

	assert.False(t, r.Mapped(domain.NotifyGuestRSVP))
	assert.False(t, r.Mapped(domain.NotifyAlbumFileUpload))
}

func TestRegistryRenderInvite(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	out, err := r.Render(domain.NotifyEventInvite, map[string]any{
		"Title":          "Lakeside BBQ",
		"StartDate":      "Saturday, July 4, 2026 at 5:00 PM EDT",
		"Address":        "12 Shore Rd",
		"SenderName":     "Dana",
		"RSVPURL":        "https://planora.example/events/e1/rsvp?t=tok",
		"HostProfileURL": "https://planora.example/profiles/a1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana invited you to Lakeside BBQ", out.Subject)
	assert.Contains(t, out.Text, "Lakeside BBQ")
	assert.Contains(t, out.Text, "12 Shore Rd")
	assert.Contains(t, out.Text, "rsvp?t=tok")
	assert.Contains(t, out.HTML, `<a href="https://planora.example/events/e1/rsvp?t=tok">`)
	assert.Contains(t, out.SMS, "Dana has invited you")
}

func TestRegistryRenderWithoutSender(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	out, err := r.Render(domain.NotifyEventInvite, map[string]any{
		"Title":     "Lakeside BBQ",
		"StartDate": "Saturday, July 4, 2026",
		"RSVPURL":   "https://planora.example/events/e1/rsvp",
	})
	require.NoError(t, err)
	assert.Equal(t, "You are invited to Lakeside BBQ", out.Subject)
	assert.Contains(t, out.Text, "You have been invited to an event.")
}

func TestRegistryRenderUnmappedIsConfiguration(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, typ := range []domain.NotificationType{
		domain.NotifyGuestRSVP,
		domain.NotifyAlbumFileUpload,
	} {
		_, err := r.Render(typ, nil)
		require.Error(t, err)
		assert.True(t, errs.IsConfiguration(err), "render of %s must be a configuration error", typ)
	}
}

func TestURLBuilderRSVP(t *testing.T) {
	b := NewURLBuilder("https://planora.example/", "https://planora.example/register")

	assert.Equal(t, "https://planora.example", b.SiteURL())
	assert.Equal(t,
		"https://planora.example/events/ev-1/rsvp",
		b.RSVPURL("ev-1", ""))
	assert.Equal(t,
		"https://planora.example/events/ev-1/rsvp?t=tok-9",
		b.RSVPURL("ev-1", "tok-9"))
}

func TestURLBuilderEscapes(t *testing.T) {
	b := NewURLBuilder("https://planora.example", "https://planora.example/register")

	u := b.RSVPURL("ev/1", "a b&c")
	assert.False(t, strings.Contains(u, "ev/1/rsvp"), "event id must be path-escaped: %s", u)
	assert.Contains(t, u, "t=a+b%26c")
}

type captureEnqueuer struct {
	reqs    []DeliveryRequest
	failFor map[string]error
}

func (c *captureEnqueuer) EnqueueDelivery(_ context.Context, req DeliveryRequest) error {
	if err, ok := c.failFor[req.RecipientID]; ok {
		return err
	}
	c.reqs = append(c.reqs, req)
	return nil
}

func TestDispatchFansOutPerRecipient(t *testing.T) {
	enq := &captureEnqueuer{}
	d := NewDispatcher(enq)

	intent := domain.Intent{
		Type:         domain.NotifyEventUpdate,
		SenderID:     "host",
		RecipientIDs: []string{"g1", "g2", "g3"},
		Subject:      domain.EventRef("ev-1"),
	}
	require.NoError(t, d.Dispatch(context.Background(), intent))

	require.Len(t, enq.reqs, 3)
	for i, id := range []string{"g1", "g2", "g3"} {
		assert.Equal(t, id, enq.reqs[i].RecipientID)
		assert.Equal(t, domain.NotifyEventUpdate, enq.reqs[i].Type)
		assert.Equal(t, domain.EventRef("ev-1"), enq.reqs[i].Subject)
	}
}

func TestDispatchContinuesPastEnqueueFailure(t *testing.T) {
	enq := &captureEnqueuer{
		failFor: map[string]error{"g2": errors.New("queue down")},
	}
	d := NewDispatcher(enq)

	intent := domain.Intent{
		Type:         domain.NotifyEventCancel,
		SenderID:     "host",
		RecipientIDs: []string{"g1", "g2", "g3"},
		Subject:      domain.EventRef("ev-1"),
	}
	err := d.Dispatch(context.Background(), intent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3")

	// g1 and g3 still made it through.
	require.Len(t, enq.reqs, 2)
	assert.Equal(t, "g1", enq.reqs[0].RecipientID)
	assert.Equal(t, "g3", enq.reqs[1].RecipientID)
}

func TestDispatchRejectsInvalidIntent(t *testing.T) {
	d := NewDispatcher(&captureEnqueuer{})

	err := d.Dispatch(context.Background(), domain.Intent{
		Type:    domain.NotifyEventInvite,
		Subject: domain.EventRef("ev-1"),
	})
	require.Error(t, err)
}
