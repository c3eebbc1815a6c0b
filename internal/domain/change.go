package domain

import "time"

// EventStatus mirrors the event lifecycle states as plain values so the
// detector stays decoupled from the persistence layer.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventActive    EventStatus = "ACTIVE"
	EventCancelled EventStatus = "CANCELLED"
)

// EventSnapshot captures an event's tracked fields at one point in
// time. The caller takes a snapshot before mutating and passes both
// sides to DetectEventChange; there is no hidden signal or hook.
type EventSnapshot struct {
	Start    time.Time
	End      time.Time
	Timezone string
	Privacy  string
	Status   EventStatus
	Location string
	Lat      *float64
	Lon      *float64
	IsAllDay bool
}

// Equal reports whether two snapshots carry identical tracked values.
// Reassigning a field to its existing value compares equal.
func (s EventSnapshot) Equal(o EventSnapshot) bool {
	return s.Start.Equal(o.Start) &&
		s.End.Equal(o.End) &&
		s.Timezone == o.Timezone &&
		s.Privacy == o.Privacy &&
		s.Status == o.Status &&
		s.Location == o.Location &&
		floatPtrEqual(s.Lat, o.Lat) &&
		floatPtrEqual(s.Lon, o.Lon) &&
		s.IsAllDay == o.IsAllDay
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DetectEventChange compares the tracked fields of an event before and
// after a mutation and decides whether guests should be notified.
//
// The draft→active transition is a one-time announce and always maps to
// an invite, never an update. A transition to cancelled maps to a
// cancellation. Any other tracked change on an already-active event
// maps to an update. Everything else is silent.
func DetectEventChange(before, after EventSnapshot) (NotificationType, bool) {
	switch {
	case before.Status == EventDraft && after.Status == EventActive:
		return NotifyEventInvite, true
	case after.Status == EventCancelled && before.Status != EventCancelled:
		return NotifyEventCancel, true
	case after.Status == EventActive && !before.Equal(after):
		return NotifyEventUpdate, true
	default:
		return "", false
	}
}

// GuestSnapshot captures the single tracked field of the guest-in-event
// relation.
type GuestSnapshot struct {
	RSVP string
}

// DetectGuestChange reports an RSVP change. The resulting type is
// reserved: it has no template mapping yet, so callers hold the intent
// rather than dispatching it.
func DetectGuestChange(before, after GuestSnapshot) (NotificationType, bool) {
	if before.RSVP != after.RSVP {
		return NotifyGuestRSVP, true
	}
	return "", false
}
