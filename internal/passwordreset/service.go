// Package passwordreset implements the deterministic password reset
// token flow.
//
// Reset tokens are never stored. A token is a digest over the reset
// row's sent timestamp and salt, the account's current password hash,
// the process secret, and the last login time. Using the token, logging
// in, or changing the password therefore invalidates every outstanding
// token without any bookkeeping.
package passwordreset

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"planora.io/planora/ent"
	"planora.io/planora/ent/account"
	"planora.io/planora/ent/passwordreset"
	accounts "planora.io/planora/internal/account"
	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
)

const (
	// ResendThrottle suppresses a new reset email while an unused one was
	// sent this recently.
	ResendThrottle = 5 * time.Minute

	// TokenValidity is how long a reset token can be used after sending.
	TokenValidity = 24 * time.Hour
)

// ComputeToken derives the reset token for one reset row. All inputs
// participate in the digest so that any change to the account's
// credentials or login state produces a different token.
func ComputeToken(sent time.Time, salt, passwordHash, secret string, lastLogin *time.Time) string {
	h := sha256.New()
	h.Write([]byte(sent.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte(salt))
	h.Write([]byte(passwordHash))
	h.Write([]byte(secret))
	if lastLogin != nil {
		h.Write([]byte(lastLogin.UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CanStillUse reports whether the reset row is usable at the given
// time: sent, not yet consumed, and inside the validity window.
func CanStillUse(r *ent.PasswordReset, now time.Time) bool {
	if r.ResetDate != nil || r.MessageSentDate == nil {
		return false
	}
	return r.MessageSentDate.After(now.Add(-TokenValidity))
}

var resetTextTmpl = texttemplate.Must(texttemplate.New("password_reset.txt").Parse(
	`Someone (hopefully you) asked to reset your password.

Follow this link to choose a new one:

{{.ResetURL}}

If this wasn't you, ignore this message. Questions? {{.ContactEmail}}
`))

var resetHTMLTmpl = texttemplate.Must(texttemplate.New("password_reset.htm").Parse(
	`<p>Someone (hopefully you) asked to reset your password.</p>
<p><a href="{{.ResetURL}}">Choose a new password</a></p>
<p>If this wasn't you, ignore this message. Questions? {{.ContactEmail}}</p>
`))

// Service handles reset requests and consumption.
type Service struct {
	client       *ent.Client
	urls         *notification.URLBuilder
	email        notification.EmailChannel
	secret       string
	contactEmail string
	now          func() time.Time
}

// NewService wires a password reset service. secret is the process
// secret mixed into every token.
func NewService(client *ent.Client, urls *notification.URLBuilder, email notification.EmailChannel, secret, contactEmail string) *Service {
	return &Service{
		client:       client,
		urls:         urls,
		email:        email,
		secret:       secret,
		contactEmail: contactEmail,
		now:          time.Now,
	}
}

// RequestReset creates a reset row for the account behind the email and
// sends the reset message. The returned bool reports whether a message
// went out; an unknown address or a recent outstanding reset both yield
// (false, nil) so the caller cannot probe which addresses exist.
func (s *Service) RequestReset(ctx context.Context, emailAddr string) (bool, error) {
	email := accounts.NormalizeEmail(emailAddr)

	acct, err := s.client.Account.Query().
		Where(
			account.EmailEQ(email),
			account.StatusIn(account.StatusACTIVE, account.StatusDELETED),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Info("password reset requested for unknown email")
			return false, nil
		}
		return false, fmt.Errorf("look up account by email: %w", err)
	}

	// Postgres stores timestamptz at microsecond precision. The token
	// digests the instant as read back from the row, so anything finer
	// than what the column keeps would never verify.
	now := s.now().Truncate(time.Microsecond)
	outstanding, err := s.client.PasswordReset.Query().
		Where(
			passwordreset.AccountIDEQ(acct.ID),
			passwordreset.MessageSentDateGT(now.Add(-ResendThrottle)),
			passwordreset.ResetDateIsNil(),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count outstanding resets: %w", err)
	}
	if outstanding > 0 {
		logger.Info("password reset recently sent, throttling",
			zap.String("account_id", acct.ID))
		return false, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return false, err
	}
	salt := uuid.NewString()

	reset, err := s.client.PasswordReset.Create().
		SetID(id.String()).
		SetAccountID(acct.ID).
		SetEmail(email).
		SetTokenSalt(salt).
		SetMessageSentDate(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("create reset row: %w", err)
	}

	token := ComputeToken(now, salt, acct.PasswordHash, s.secret, acct.LastLoginAt)
	data := map[string]any{
		"ResetURL":     s.urls.PasswordResetURL(reset.ID, token),
		"ContactEmail": s.contactEmail,
	}

	var textBody, htmlBody bytes.Buffer
	if err := resetTextTmpl.Execute(&textBody, data); err != nil {
		return false, fmt.Errorf("render reset text body: %w", err)
	}
	if err := resetHTMLTmpl.Execute(&htmlBody, data); err != nil {
		return false, fmt.Errorf("render reset html body: %w", err)
	}

	if err := s.email.SendEmail(ctx, email, "Reset your password", textBody.String(), htmlBody.String()); err != nil {
		return false, fmt.Errorf("send reset email to account %s: %w", acct.ID, err)
	}

	logger.Info("password reset email sent", zap.String("account_id", acct.ID))
	return true, nil
}

// Verify loads the reset row and checks the presented token against the
// recomputed one. Expired, consumed, stale and plain wrong tokens all
// come back as the same not-found error.
func (s *Service) Verify(ctx context.Context, resetID, token string) (*ent.PasswordReset, error) {
	reset, err := s.client.PasswordReset.Get(ctx, resetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("RESET_NOT_FOUND", "no usable reset request")
		}
		return nil, err
	}
	if !CanStillUse(reset, s.now()) {
		return nil, errs.NotFound("RESET_NOT_FOUND", "no usable reset request")
	}

	acct, err := s.client.Account.Get(ctx, reset.AccountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("RESET_NOT_FOUND", "no usable reset request")
		}
		return nil, err
	}

	expected := ComputeToken(*reset.MessageSentDate, reset.TokenSalt, acct.PasswordHash, s.secret, acct.LastLoginAt)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) != 1 {
		return nil, errs.NotFound("RESET_NOT_FOUND", "no usable reset request")
	}
	return reset, nil
}

// Consume verifies the token, stores the bcrypt hash of the new
// password, and marks the reset row used. The password change itself
// also invalidates every other outstanding token for the account.
func (s *Service) Consume(ctx context.Context, resetID, token, newPassword string) error {
	if len(newPassword) < 8 {
		return errs.BadRequest("PASSWORD_TOO_SHORT", "password must be at least 8 characters")
	}

	reset, err := s.Verify(ctx, resetID, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin consume tx: %w", err)
	}
	if err := tx.Account.UpdateOneID(reset.AccountID).
		SetPasswordHash(string(hash)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update password for %s: %w", reset.AccountID, err)
	}
	if err := tx.PasswordReset.UpdateOneID(reset.ID).
		SetResetDate(s.now()).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("mark reset %s used: %w", reset.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit consume tx: %w", err)
	}

	logger.Info("password reset consumed",
		zap.String("account_id", reset.AccountID),
		zap.String("reset_id", reset.ID))
	return nil
}
