package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planora.io/planora/ent"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/guesttoken"
	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
	"planora.io/planora/internal/pkg/worker"
)

// EventService owns event mutations. Every mutation of tracked fields
// runs through the before/after snapshot comparison; notification
// fan-out happens on the outbound pool so the request returns as soon
// as the row is committed.
type EventService struct {
	client     *ent.Client
	dispatcher *notification.Dispatcher
	tokens     *guesttoken.Registry
	pools      *worker.Pools
}

// NewEventService wires an event service.
func NewEventService(client *ent.Client, dispatcher *notification.Dispatcher, tokens *guesttoken.Registry, pools *worker.Pools) *EventService {
	return &EventService{
		client:     client,
		dispatcher: dispatcher,
		tokens:     tokens,
		pools:      pools,
	}
}

// EventParams carries the fields of a new event.
type EventParams struct {
	Title    string
	Start    time.Time
	End      time.Time
	Timezone string
	Privacy  string
	Location string
	Lat      *float64
	Lon      *float64
	IsAllDay bool
}

// EventPatch carries a partial update; nil fields are left untouched.
type EventPatch struct {
	Title    *string
	Start    *time.Time
	End      *time.Time
	Timezone *string
	Privacy  *string
	Status   *domain.EventStatus
	Location *string
	Lat      *float64
	Lon      *float64
	IsAllDay *bool
}

func snapshotOf(ev *ent.Event) domain.EventSnapshot {
	return domain.EventSnapshot{
		Start:    ev.Start,
		End:      ev.End,
		Timezone: ev.Timezone,
		Privacy:  string(ev.Privacy),
		Status:   domain.EventStatus(ev.Status),
		Location: ev.Location,
		Lat:      ev.Lat,
		Lon:      ev.Lon,
		IsAllDay: ev.IsAllDay,
	}
}

// CreateEvent creates an event in DRAFT. Drafts are invisible to the
// notification pipeline; activation is the one-time announce.
func (s *EventService) CreateEvent(ctx context.Context, ownerID string, p EventParams) (*ent.Event, error) {
	if p.Timezone == "" {
		return nil, errs.BadRequest("TIMEZONE_REQUIRED", "event timezone is required")
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return nil, errs.BadRequest("TIMEZONE_INVALID", fmt.Sprintf("unknown timezone %q", p.Timezone))
	}
	if !p.End.After(p.Start) {
		return nil, errs.BadRequest("EVENT_TIMES_INVALID", "event end must be after start")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	create := s.client.Event.Create().
		SetID(id.String()).
		SetOwnerID(ownerID).
		SetTitle(p.Title).
		SetStart(p.Start).
		SetEnd(p.End).
		SetTimezone(p.Timezone).
		SetLocation(p.Location).
		SetIsAllDay(p.IsAllDay)
	if p.Privacy != "" {
		create.SetPrivacy(event.Privacy(p.Privacy))
	}
	if p.Lat != nil {
		create.SetLat(*p.Lat)
	}
	if p.Lon != nil {
		create.SetLon(*p.Lon)
	}
	return create.Save(ctx)
}

// UpdateEvent applies a patch and routes the resulting change through
// the detector. The returned event reflects the committed state; any
// notification fan-out runs detached from the caller.
func (s *EventService) UpdateEvent(ctx context.Context, eventID string, p EventPatch) (*ent.Event, error) {
	ev, err := s.client.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("EVENT_NOT_FOUND", "no such event")
		}
		return nil, err
	}
	before := snapshotOf(ev)

	upd := s.client.Event.UpdateOneID(eventID)
	if p.Title != nil {
		upd.SetTitle(*p.Title)
	}
	if p.Start != nil {
		upd.SetStart(*p.Start)
	}
	if p.End != nil {
		upd.SetEnd(*p.End)
	}
	if p.Timezone != nil {
		if _, err := time.LoadLocation(*p.Timezone); err != nil {
			return nil, errs.BadRequest("TIMEZONE_INVALID", fmt.Sprintf("unknown timezone %q", *p.Timezone))
		}
		upd.SetTimezone(*p.Timezone)
	}
	if p.Privacy != nil {
		upd.SetPrivacy(event.Privacy(*p.Privacy))
	}
	if p.Status != nil {
		if err := validTransition(before.Status, *p.Status); err != nil {
			return nil, err
		}
		upd.SetStatus(event.Status(*p.Status))
	}
	if p.Location != nil {
		upd.SetLocation(*p.Location)
	}
	if p.Lat != nil {
		upd.SetLat(*p.Lat)
	}
	if p.Lon != nil {
		upd.SetLon(*p.Lon)
	}
	if p.IsAllDay != nil {
		upd.SetIsAllDay(*p.IsAllDay)
	}

	ev, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update event %s: %w", eventID, err)
	}

	if typ, ok := domain.DetectEventChange(before, snapshotOf(ev)); ok {
		s.fanOutToGuests(typ, ev)
	}
	return ev, nil
}

// validTransition enforces the event lifecycle: drafts activate,
// anything non-cancelled cancels, cancelled is terminal.
func validTransition(from, to domain.EventStatus) error {
	if from == to {
		return nil
	}
	switch {
	case from == domain.EventDraft && to == domain.EventActive:
		return nil
	case from != domain.EventCancelled && to == domain.EventCancelled:
		return nil
	default:
		return errs.Conflict("EVENT_TRANSITION_INVALID",
			fmt.Sprintf("cannot move event from %s to %s", from, to))
	}
}

// ActivateEvent publishes a draft, which triggers invitations to every
// guest already on the list.
func (s *EventService) ActivateEvent(ctx context.Context, eventID string) (*ent.Event, error) {
	st := domain.EventActive
	return s.UpdateEvent(ctx, eventID, EventPatch{Status: &st})
}

// CancelEvent cancels an event and notifies its guests.
func (s *EventService) CancelEvent(ctx context.Context, eventID string) (*ent.Event, error) {
	st := domain.EventCancelled
	return s.UpdateEvent(ctx, eventID, EventPatch{Status: &st})
}

// fanOutToGuests dispatches one intent covering every guest of the
// event. Runs detached: the mutation is already committed and fan-out
// must survive the request going away.
func (s *EventService) fanOutToGuests(typ domain.NotificationType, ev *ent.Event) {
	err := s.pools.SubmitDetached("outbound", func(ctx context.Context) {
		guestIDs, err := s.client.EventGuest.Query().
			Where(eventguest.EventIDEQ(ev.ID)).
			Select(eventguest.FieldAccountID).
			Strings(ctx)
		if err != nil {
			logger.Error("failed to load guests for fan-out",
				zap.String("event_id", ev.ID),
				zap.Error(err))
			return
		}
		if len(guestIDs) == 0 {
			return
		}
		intent := domain.Intent{
			Type:         typ,
			SenderID:     ev.OwnerID,
			RecipientIDs: guestIDs,
			Subject:      domain.EventRef(ev.ID),
		}
		if err := s.dispatcher.Dispatch(ctx, intent); err != nil {
			logger.Error("event fan-out dispatch failed",
				zap.String("event_id", ev.ID),
				zap.String("type", string(typ)),
				zap.Error(err))
		}
	})
	if err != nil {
		logger.Error("failed to schedule event fan-out",
			zap.String("event_id", ev.ID),
			zap.Error(err))
	}
}

// InviteGuest attaches an account to an event, minting the guest's
// access token. Inviting someone to an already-active event sends their
// invitation immediately; guests added to a draft are invited when it
// activates.
func (s *EventService) InviteGuest(ctx context.Context, eventID, accountID, name string) (*ent.EventGuest, error) {
	ev, err := s.client.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("EVENT_NOT_FOUND", "no such event")
		}
		return nil, err
	}
	if ev.Status == event.StatusCANCELLED {
		return nil, errs.Conflict("EVENT_CANCELLED", "cannot invite guests to a cancelled event")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	guest, err := s.client.EventGuest.Create().
		SetID(id.String()).
		SetEventID(eventID).
		SetAccountID(accountID).
		SetName(name).
		SetToken(guesttoken.Issue()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, errs.Conflict("GUEST_EXISTS", "account is already a guest of this event")
		}
		return nil, fmt.Errorf("create guest: %w", err)
	}

	if ev.Status == event.StatusACTIVE {
		intent := domain.Intent{
			Type:         domain.NotifyEventInvite,
			SenderID:     ev.OwnerID,
			RecipientIDs: []string{accountID},
			Subject:      domain.EventRef(ev.ID),
		}
		submitErr := s.pools.SubmitDetached("outbound", func(ctx context.Context) {
			if err := s.dispatcher.Dispatch(ctx, intent); err != nil {
				logger.Error("invite dispatch failed",
					zap.String("event_id", ev.ID),
					zap.String("account_id", accountID),
					zap.Error(err))
			}
		})
		if submitErr != nil {
			logger.Error("failed to schedule invite dispatch",
				zap.String("event_id", ev.ID),
				zap.Error(submitErr))
		}
	}
	return guest, nil
}

// GuestByToken resolves a guest relation from its access token.
func (s *EventService) GuestByToken(ctx context.Context, eventID, token string) (*ent.EventGuest, error) {
	return s.tokens.Verify(ctx, eventID, token)
}

// UpdateRSVPByToken records a guest's RSVP through their access token.
// The RSVP change is detected but its notification type is reserved, so
// no dispatch happens yet.
func (s *EventService) UpdateRSVPByToken(ctx context.Context, eventID, token, rsvp string) (*ent.EventGuest, error) {
	switch eventguest.Rsvp(rsvp) {
	case eventguest.RsvpUNDECIDED, eventguest.RsvpYES, eventguest.RsvpNO, eventguest.RsvpMAYBE:
	default:
		return nil, errs.BadRequest("RSVP_INVALID", fmt.Sprintf("unknown rsvp value %q", rsvp))
	}

	guest, err := s.tokens.Verify(ctx, eventID, token)
	if err != nil {
		return nil, err
	}

	before := domain.GuestSnapshot{RSVP: string(guest.Rsvp)}
	guest, err = s.client.EventGuest.UpdateOneID(guest.ID).
		SetRsvp(eventguest.Rsvp(rsvp)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update rsvp: %w", err)
	}

	if typ, ok := domain.DetectGuestChange(before, domain.GuestSnapshot{RSVP: string(guest.Rsvp)}); ok {
		logger.Debug("rsvp change detected, delivery path not yet wired",
			zap.String("event_id", eventID),
			zap.String("guest_id", guest.ID),
			zap.String("type", string(typ)))
	}
	return guest, nil
}
