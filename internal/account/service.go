package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planora.io/planora/ent"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
)

// Service manages accounts and their communication endpoints.
type Service struct {
	client     *ent.Client
	dispatcher *notification.Dispatcher
}

// NewService wires an account service.
func NewService(client *ent.Client, dispatcher *notification.Dispatcher) *Service {
	return &Service{client: client, dispatcher: dispatcher}
}

// EnsureContact resolves an invitation endpoint to an account, creating
// a CONTACT stub when nobody owns it yet. Exactly one of email or phone
// must be given; both are normalized before lookup so spelling variants
// land on the same account.
func (s *Service) EnsureContact(ctx context.Context, email, phone string) (*ent.Account, error) {
	if (email == "") == (phone == "") {
		return nil, errs.BadRequest("ENDPOINT_REQUIRED", "exactly one of email or phone is required")
	}

	var pred func(*ent.AccountQuery) *ent.AccountQuery
	create := s.client.Account.Create()

	if email != "" {
		email = NormalizeEmail(email)
		pred = func(q *ent.AccountQuery) *ent.AccountQuery {
			return q.Where(account.EmailEQ(email))
		}
		create.SetEmail(email)
	} else {
		normalized, err := NormalizePhone(phone)
		if err != nil {
			return nil, err
		}
		phone = normalized
		pred = func(q *ent.AccountQuery) *ent.AccountQuery {
			return q.Where(account.PhoneEQ(phone))
		}
		create.SetPhone(phone)
	}

	existing, err := pred(s.client.Account.Query()).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("look up account by endpoint: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	stub, err := create.
		SetID(id.String()).
		SetStatus(account.StatusCONTACT).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent invite for the same endpoint.
		if ent.IsConstraintError(err) {
			return pred(s.client.Account.Query()).Only(ctx)
		}
		return nil, fmt.Errorf("create contact stub: %w", err)
	}

	logger.Info("created contact stub account", zap.String("account_id", stub.ID))
	return stub, nil
}

// BeginEmailValidation opens a validation round for an email endpoint:
// a channel row carrying a fresh token, plus a validation notification
// to the account. Sending is asynchronous; the channel's
// message_sent_date is stamped by the deliverer.
func (s *Service) BeginEmailValidation(ctx context.Context, accountID, email string) (*ent.CommChannel, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errs.BadRequest("EMAIL_REQUIRED", "email is required")
	}
	if _, err := s.client.Account.Get(ctx, accountID); err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("ACCOUNT_NOT_FOUND", "no such account")
		}
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	ch, err := s.client.CommChannel.Create().
		SetID(id.String()).
		SetAccountID(accountID).
		SetCommType(commchannel.CommTypeEMAIL).
		SetEndpoint(email).
		SetValidationToken(uuid.NewString()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create email validation channel: %w", err)
	}

	intent := domain.Intent{
		Type:         domain.NotifyEmailValidate,
		SenderID:     accountID,
		RecipientIDs: []string{accountID},
		Subject:      domain.AccountRef(accountID),
	}
	if err := s.dispatcher.Dispatch(ctx, intent); err != nil {
		return nil, fmt.Errorf("dispatch validation notification: %w", err)
	}
	return ch, nil
}

// ValidateEmail consumes a validation token: the channel is stamped,
// the endpoint becomes the account's email, and a SIGNED_UP account is
// promoted to ACTIVE. A second use of the same token is a conflict, not
// a revalidation.
func (s *Service) ValidateEmail(ctx context.Context, token string) (*ent.Account, error) {
	ch, err := s.client.CommChannel.Query().
		Where(commchannel.ValidationTokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("VALIDATION_NOT_FOUND", "unknown validation token")
		}
		return nil, err
	}
	if ch.ValidationDate != nil {
		return nil, errs.Conflict("VALIDATION_USED", "validation token already used")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin validation tx: %w", err)
	}
	if err := tx.CommChannel.UpdateOneID(ch.ID).
		SetValidationDate(time.Now()).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("stamp validation date: %w", err)
	}

	acct, err := tx.Account.Get(ctx, ch.AccountID)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("load account %s: %w", ch.AccountID, err)
	}
	upd := tx.Account.UpdateOneID(acct.ID).SetEmail(ch.Endpoint)
	if acct.Status == account.StatusSIGNED_UP {
		upd.SetStatus(account.StatusACTIVE)
	}
	acct, err = upd.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("apply validated email: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit validation tx: %w", err)
	}

	logger.Info("email endpoint validated",
		zap.String("account_id", acct.ID),
		zap.String("channel_id", ch.ID))
	return acct, nil
}
