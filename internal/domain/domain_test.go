package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func baseSnapshot() EventSnapshot {
	lat, lon := 40.7128, -74.006
	return EventSnapshot{
		Start:    time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 9, 12, 22, 0, 0, 0, time.UTC),
		Timezone: "America/New_York",
		Privacy:  "PUBLIC",
		Status:   EventActive,
		Location: "12 Main St",
		Lat:      &lat,
		Lon:      &lon,
		IsAllDay: false,
	}
}

func TestDetectEventChange_NoChangeNoIntent(t *testing.T) {
	before := baseSnapshot()
	after := baseSnapshot()

	_, ok := DetectEventChange(before, after)
	require.False(t, ok, "reassigning identical values must not produce an intent")
}

func TestDetectEventChange_SameValueDifferentPointer(t *testing.T) {
	before := baseSnapshot()
	after := baseSnapshot()
	lat := *before.Lat
	after.Lat = &lat

	_, ok := DetectEventChange(before, after)
	require.False(t, ok)
}

func TestDetectEventChange_DraftToActiveIsInvite(t *testing.T) {
	before := baseSnapshot()
	before.Status = EventDraft
	after := baseSnapshot()
	// Publishing usually also touches other tracked fields; the
	// transition must still map to an invite, not an update.
	after.Location = "45 Elm St"

	typ, ok := DetectEventChange(before, after)
	require.True(t, ok)
	require.Equal(t, NotifyEventInvite, typ)
}

func TestDetectEventChange_CancelWins(t *testing.T) {
	before := baseSnapshot()
	after := baseSnapshot()
	after.Status = EventCancelled

	typ, ok := DetectEventChange(before, after)
	require.True(t, ok)
	require.Equal(t, NotifyEventCancel, typ)
}

func TestDetectEventChange_TrackedFieldUpdate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EventSnapshot)
	}{
		{"start", func(s *EventSnapshot) { s.Start = s.Start.Add(time.Hour) }},
		{"end", func(s *EventSnapshot) { s.End = s.End.Add(time.Hour) }},
		{"timezone", func(s *EventSnapshot) { s.Timezone = "Europe/Lisbon" }},
		{"privacy", func(s *EventSnapshot) { s.Privacy = "PRIVATE" }},
		{"location", func(s *EventSnapshot) { s.Location = "elsewhere" }},
		{"lat", func(s *EventSnapshot) { v := 41.0; s.Lat = &v }},
		{"lon", func(s *EventSnapshot) { v := -73.0; s.Lon = &v }},
		{"all_day", func(s *EventSnapshot) { s.IsAllDay = true }},
		{"lat cleared", func(s *EventSnapshot) { s.Lat = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := baseSnapshot()
			after := baseSnapshot()
			tc.mutate(&after)

			typ, ok := DetectEventChange(before, after)
			require.True(t, ok)
			require.Equal(t, NotifyEventUpdate, typ)
		})
	}
}

func TestDetectEventChange_DraftEditsAreSilent(t *testing.T) {
	before := baseSnapshot()
	before.Status = EventDraft
	after := baseSnapshot()
	after.Status = EventDraft
	after.Location = "new place"

	_, ok := DetectEventChange(before, after)
	require.False(t, ok, "edits to drafts are not announced")
}

func TestDetectGuestChange(t *testing.T) {
	typ, ok := DetectGuestChange(GuestSnapshot{RSVP: "UNDECIDED"}, GuestSnapshot{RSVP: "YES"})
	require.True(t, ok)
	require.Equal(t, NotifyGuestRSVP, typ)

	_, ok = DetectGuestChange(GuestSnapshot{RSVP: "YES"}, GuestSnapshot{RSVP: "YES"})
	require.False(t, ok)
}

func TestNotificationTypeCategory(t *testing.T) {
	require.Equal(t, CategoryRSVPUpdates, NotifyGuestRSVP.Category())
	require.Equal(t, CategorySocialActivity, NotifyEventInvite.Category())
	require.Equal(t, CategorySocialActivity, NotifyEventCancel.Category())
	require.Equal(t, CategorySocialActivity, NotifyEmailValidate.Category())
}

func TestSubjectRefValidate(t *testing.T) {
	require.NoError(t, EventRef("ev-1").Validate())
	require.Error(t, SubjectRef{Kind: SubjectEvent}.Validate())
	require.Error(t, SubjectRef{Kind: "GIZMO", ID: "x"}.Validate())
}

func TestIntentValidate(t *testing.T) {
	valid := Intent{
		Type:         NotifyEventInvite,
		SenderID:     "acct-1",
		RecipientIDs: []string{"acct-2"},
		Subject:      EventRef("ev-1"),
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Type = "EVENT_EXPLODE"
	require.Error(t, bad.Validate())

	bad = valid
	bad.SenderID = ""
	require.Error(t, bad.Validate())
}
