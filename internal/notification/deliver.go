package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planora.io/planora/ent"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/guesttoken"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
)

// Deliverer carries one delivery request through recording, gating,
// channel selection, rendering and sending. It runs inside the queue
// worker, never on a request path.
type Deliverer struct {
	client   *ent.Client
	registry *Registry
	urls     *URLBuilder
	tokens   *guesttoken.Registry
	email    EmailChannel
	sms      SMSChannel
}

// NewDeliverer wires a deliverer.
func NewDeliverer(client *ent.Client, registry *Registry, urls *URLBuilder, tokens *guesttoken.Registry, email EmailChannel, sms SMSChannel) *Deliverer {
	return &Deliverer{
		client:   client,
		registry: registry,
		urls:     urls,
		tokens:   tokens,
		email:    email,
		sms:      sms,
	}
}

// Deliver processes one request:
//
//  1. record the in-app notification, best-effort, before anything can
//     fail on configuration
//  2. fail on unmapped types (configuration error, not retryable)
//  3. gate on recipient eligibility and preferences
//  4. pick exactly one external channel, email first
//  5. render and send
//
// A nil return means the request is finished, whether or not anything
// was sent externally. A non-nil return means the attempt should be
// retried.
func (d *Deliverer) Deliver(ctx context.Context, req DeliveryRequest) error {
	recipient, err := d.client.Account.Query().
		Where(account.IDEQ(req.RecipientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Warn("notification recipient no longer exists, dropping",
				zap.String("recipient_id", req.RecipientID),
				zap.String("type", string(req.Type)))
			return nil
		}
		return fmt.Errorf("load recipient %s: %w", req.RecipientID, err)
	}

	d.recordInApp(ctx, req)

	if !d.registry.Mapped(req.Type) {
		return errs.Configuration(
			"NOTIFICATION_TEMPLATE_UNMAPPED",
			fmt.Sprintf("notification type %s has no template mapping", req.Type),
		)
	}

	if !eligible(recipient) {
		logger.Debug("recipient not eligible for external delivery",
			zap.String("recipient_id", recipient.ID),
			zap.String("status", string(recipient.Status)))
		return nil
	}

	useEmail, useSMS, err := d.selectChannel(ctx, req.Type, recipient)
	if err != nil {
		return err
	}
	if !useEmail && !useSMS {
		logger.Debug("no external channel for recipient, in-app only",
			zap.String("recipient_id", recipient.ID),
			zap.String("type", string(req.Type)))
		return nil
	}

	data, skip, err := d.buildTemplateData(ctx, req, recipient)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	rendered, err := d.registry.Render(req.Type, data)
	if err != nil {
		return err
	}

	if useEmail {
		if err := d.email.SendEmail(ctx, *recipient.Email, rendered.Subject, rendered.Text, rendered.HTML); err != nil {
			return fmt.Errorf("send email to %s: %w", recipient.ID, err)
		}
	} else {
		if err := d.sms.SendSMS(ctx, *recipient.Phone, rendered.SMS); err != nil {
			return fmt.Errorf("send sms to %s: %w", recipient.ID, err)
		}
	}

	if req.Type == domain.NotifyEmailValidate {
		d.markValidationSent(ctx, req.Subject.ID)
	}

	logger.Info("notification delivered",
		zap.String("type", string(req.Type)),
		zap.String("recipient_id", recipient.ID),
		zap.Bool("email", useEmail))
	return nil
}

// markValidationSent stamps the pending email channel after the message
// went out. Best-effort: the send already happened.
func (d *Deliverer) markValidationSent(ctx context.Context, accountID string) {
	_, err := d.client.CommChannel.Update().
		Where(
			commchannel.AccountIDEQ(accountID),
			commchannel.CommTypeEQ(commchannel.CommTypeEMAIL),
			commchannel.ValidationDateIsNil(),
			commchannel.MessageSentDateIsNil(),
		).
		SetMessageSentDate(time.Now()).
		Save(ctx)
	if err != nil {
		logger.Error("failed to stamp validation message_sent_date",
			zap.String("account_id", accountID),
			zap.Error(err))
	}
}

// recordInApp appends the in-app audit record. Failures are logged and
// swallowed so the external send is never blocked on the audit trail.
func (d *Deliverer) recordInApp(ctx context.Context, req DeliveryRequest) {
	id, err := uuid.NewV7()
	if err != nil {
		logger.Error("failed to generate notification id", zap.Error(err))
		return
	}
	err = d.client.InAppNotification.Create().
		SetID(id.String()).
		SetSenderID(req.SenderID).
		SetRecipientID(req.RecipientID).
		SetNotificationType(inappnotification.NotificationType(req.Type)).
		SetSubjectKind(inappnotification.SubjectKind(req.Subject.Kind)).
		SetSubjectID(req.Subject.ID).
		Exec(ctx)
	if err != nil {
		logger.Error("failed to record in-app notification",
			zap.String("type", string(req.Type)),
			zap.String("recipient_id", req.RecipientID),
			zap.Error(err))
	}
}

// eligible reports whether the account may receive external messages at
// all. Stub CONTACT accounts are eligible: reaching people who have not
// signed up yet is the whole point of guest invitations.
func eligible(a *ent.Account) bool {
	switch a.Status {
	case account.StatusDELETED, account.StatusDEACTIVATED:
		return false
	}
	return true
}

// selectChannel picks at most one external channel, preferring email.
// Validation messages bypass preferences: the recipient explicitly
// asked for them. A missing settings row means the defaults apply and
// both channels stay open.
func (d *Deliverer) selectChannel(ctx context.Context, typ domain.NotificationType, recipient *ent.Account) (useEmail, useSMS bool, err error) {
	emailOK := recipient.Email != nil && *recipient.Email != ""
	smsOK := recipient.Phone != nil && *recipient.Phone != ""

	if typ != domain.NotifyEmailValidate {
		settings, serr := d.client.AccountSettings.Query().
			Where(accountsettings.AccountIDEQ(recipient.ID)).
			Only(ctx)
		switch {
		case serr == nil:
			emailOK = emailOK && emailAllowed(settings, typ.Category())
			smsOK = smsOK && textAllowed(settings, typ.Category())
		case ent.IsNotFound(serr):
			// no row, defaults allow
		default:
			return false, false, fmt.Errorf("load settings for %s: %w", recipient.ID, serr)
		}
	}

	if emailOK {
		return true, false, nil
	}
	if smsOK {
		return false, true, nil
	}
	return false, false, nil
}

func emailAllowed(s *ent.AccountSettings, cat domain.PreferenceCategory) bool {
	if cat == domain.CategoryRSVPUpdates {
		return s.EmailRsvpUpdates
	}
	return s.EmailSocialActivity
}

// textAllowed treats an unset text preference as allowed, mirroring the
// missing-row default.
func textAllowed(s *ent.AccountSettings, cat domain.PreferenceCategory) bool {
	var pref *bool
	if cat == domain.CategoryRSVPUpdates {
		pref = s.TextRsvpUpdates
	} else {
		pref = s.TextSocialActivity
	}
	return pref == nil || *pref
}

// buildTemplateData assembles the template context for the request's
// subject. skip=true means the subject is gone and the request should
// finish without sending.
func (d *Deliverer) buildTemplateData(ctx context.Context, req DeliveryRequest, recipient *ent.Account) (data map[string]any, skip bool, err error) {
	switch req.Subject.Kind {
	case domain.SubjectEvent:
		return d.eventData(ctx, req, recipient)
	case domain.SubjectAccount:
		return d.accountData(ctx, req, recipient)
	default:
		return nil, false, errs.Configuration(
			"NOTIFICATION_SUBJECT_UNSUPPORTED",
			fmt.Sprintf("no template data builder for subject kind %s", req.Subject.Kind),
		)
	}
}

func (d *Deliverer) eventData(ctx context.Context, req DeliveryRequest, recipient *ent.Account) (map[string]any, bool, error) {
	ev, err := d.client.Event.Get(ctx, req.Subject.ID)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Warn("notification subject event no longer exists, dropping",
				zap.String("event_id", req.Subject.ID),
				zap.String("type", string(req.Type)))
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("load event %s: %w", req.Subject.ID, err)
	}

	senderName := ""
	if req.SenderID != "" {
		sender, serr := d.client.Account.Get(ctx, req.SenderID)
		if serr == nil {
			senderName = sender.Name
		} else if !ent.IsNotFound(serr) {
			return nil, false, fmt.Errorf("load sender %s: %w", req.SenderID, serr)
		}
	}

	// Full accounts authenticate; everyone else gets a tokenized RSVP
	// link so the invitation is actionable without credentials.
	token := ""
	if recipient.Status != account.StatusACTIVE {
		t, terr := d.tokens.TokenFor(ctx, ev.ID, recipient.ID)
		if terr != nil && !errs.IsNotFound(terr) {
			return nil, false, terr
		}
		token = t
	}

	profileID := req.SenderID
	if profileID == "" {
		profileID = ev.OwnerID
	}

	return map[string]any{
		"Title":             ev.Title,
		"StartDate":         formatEventStart(ev),
		"Address":           ev.Location,
		"SenderName":        senderName,
		"RSVPURL":           d.urls.RSVPURL(ev.ID, token),
		"EventCancelledURL": d.urls.EventCancelledURL(ev.ID),
		"HostProfileURL":    d.urls.HostProfileURL(profileID),
		"SiteURL":           d.urls.SiteURL(),
	}, false, nil
}

func (d *Deliverer) accountData(ctx context.Context, req DeliveryRequest, recipient *ent.Account) (map[string]any, bool, error) {
	ch, err := d.client.CommChannel.Query().
		Where(
			commchannel.AccountIDEQ(req.Subject.ID),
			commchannel.CommTypeEQ(commchannel.CommTypeEMAIL),
			commchannel.ValidationDateIsNil(),
		).
		Order(ent.Desc(commchannel.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Warn("no pending email validation for account, dropping",
				zap.String("account_id", req.Subject.ID))
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("load pending email channel for %s: %w", req.Subject.ID, err)
	}

	return map[string]any{
		"Email":         ch.Endpoint,
		"ActivationURL": d.urls.ActivationURL(ch.ValidationToken),
		"RegisterURL":   d.urls.RegisterURL(),
		"SiteURL":       d.urls.SiteURL(),
	}, false, nil
}

// formatEventStart renders the event start in the event's own zone. All
// day events drop the clock time.
func formatEventStart(ev *ent.Event) string {
	loc, err := time.LoadLocation(ev.Timezone)
	if err != nil {
		logger.Warn("unknown event timezone, falling back to UTC",
			zap.String("event_id", ev.ID),
			zap.String("timezone", ev.Timezone))
		loc = time.UTC
	}
	start := ev.Start.In(loc)
	if ev.IsAllDay {
		return start.Format("Monday, January 2, 2006")
	}
	return start.Format("Monday, January 2, 2006 at 3:04 PM MST")
}
