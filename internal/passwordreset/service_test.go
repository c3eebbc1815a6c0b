package passwordreset

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"planora.io/planora/ent"
	"planora.io/planora/ent/account"
	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
	"planora.io/planora/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestComputeTokenDeterministic(t *testing.T) {
	sent := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	login := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	a := ComputeToken(sent, "salt-1", "hash-1", "secret-1", &login)
	b := ComputeToken(sent, "salt-1", "hash-1", "secret-1", &login)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestComputeTokenSensitiveToEveryInput(t *testing.T) {
	sent := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	login := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	base := ComputeToken(sent, "salt", "hash", "secret", &login)

	otherLogin := login.Add(time.Second)
	variants := []string{
		ComputeToken(sent.Add(time.Nanosecond), "salt", "hash", "secret", &login),
		ComputeToken(sent, "other-salt", "hash", "secret", &login),
		ComputeToken(sent, "salt", "other-hash", "secret", &login),
		ComputeToken(sent, "salt", "hash", "other-secret", &login),
		ComputeToken(sent, "salt", "hash", "secret", &otherLogin),
		ComputeToken(sent, "salt", "hash", "secret", nil),
	}
	for i, v := range variants {
		assert.NotEqual(t, base, v, "variant %d must change the token", i)
	}
}

func TestComputeTokenNormalizesZone(t *testing.T) {
	utc := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*3600))

	assert.Equal(t,
		ComputeToken(utc, "s", "h", "k", nil),
		ComputeToken(est, "s", "h", "k", nil),
		"same instant in different zones must produce the same token")
}

func TestCanStillUse(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sent := now.Add(-time.Hour)
	used := now.Add(-time.Minute)

	assert.True(t, CanStillUse(&ent.PasswordReset{MessageSentDate: &sent}, now))
	assert.False(t, CanStillUse(&ent.PasswordReset{MessageSentDate: &sent, ResetDate: &used}, now),
		"consumed reset is dead")
	assert.False(t, CanStillUse(&ent.PasswordReset{}, now), "never sent")

	expired := now.Add(-TokenValidity - time.Minute)
	assert.False(t, CanStillUse(&ent.PasswordReset{MessageSentDate: &expired}, now))
}

type captureEmail struct {
	sent []string // recipient addresses
	body string
}

func (c *captureEmail) SendEmail(_ context.Context, to, _, textBody, _ string) error {
	c.sent = append(c.sent, to)
	c.body = textBody
	return nil
}

func newTestService(t *testing.T, prefix string) (*Service, *ent.Client, *captureEmail) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	email := &captureEmail{}
	urls := notification.NewURLBuilder("https://planora.example", "https://planora.example/register")
	svc := NewService(client, urls, email, "test-process-secret-0123456789abcdef", "support@planora.example")
	return svc, client, email
}

func seedAccount(t *testing.T, client *ent.Client, emailAddr string, status account.Status) *ent.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)
	login := time.Now().Add(-48 * time.Hour)
	return client.Account.Create().
		SetID("acc-" + emailAddr).
		SetEmail(emailAddr).
		SetName("Ada").
		SetStatus(status).
		SetPasswordHash(string(hash)).
		SetLastLoginAt(login).
		SaveX(context.Background())
}

func TestRequestResetUnknownEmail(t *testing.T) {
	svc, _, email := newTestService(t, "pwreset_unknown")

	sent, err := svc.RequestReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, email.sent)
}

func TestRequestResetThrottlesRepeats(t *testing.T) {
	svc, client, email := newTestService(t, "pwreset_throttle")
	seedAccount(t, client, "ada@example.com", account.StatusACTIVE)
	ctx := context.Background()

	sent, err := svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, sent)

	sent, err = svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, sent, "second request inside the throttle window must be suppressed")
	assert.Len(t, email.sent, 1)

	// Past the window a new message goes out.
	svc.now = func() time.Time { return time.Now().Add(ResendThrottle + time.Minute) }
	sent, err = svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Len(t, email.sent, 2)
}

func TestRequestResetCoversDeletedAccounts(t *testing.T) {
	svc, client, email := newTestService(t, "pwreset_deleted")
	seedAccount(t, client, "gone@example.com", account.StatusDELETED)

	sent, err := svc.RequestReset(context.Background(), "gone@example.com")
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, []string{"gone@example.com"}, email.sent)
}

func TestVerifyAndConsumeRoundTrip(t *testing.T) {
	svc, client, _ := newTestService(t, "pwreset_roundtrip")
	acct := seedAccount(t, client, "ada@example.com", account.StatusACTIVE)
	ctx := context.Background()

	sent, err := svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, sent)

	reset := client.PasswordReset.Query().OnlyX(ctx)
	token := ComputeToken(*reset.MessageSentDate, reset.TokenSalt, acct.PasswordHash, svc.secret, acct.LastLoginAt)

	got, err := svc.Verify(ctx, reset.ID, token)
	require.NoError(t, err)
	assert.Equal(t, reset.ID, got.ID)

	require.NoError(t, svc.Consume(ctx, reset.ID, token, "brand-new-password"))

	// Consumed row rejects reuse.
	_, err = svc.Verify(ctx, reset.ID, token)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	// New password is in place.
	acct = client.Account.GetX(ctx, acct.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte("brand-new-password")))
}

func TestEmailedLinkTokenVerifies(t *testing.T) {
	svc, client, email := newTestService(t, "pwreset_emailed")
	seedAccount(t, client, "ada@example.com", account.StatusACTIVE)
	ctx := context.Background()

	sent, err := svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, sent)

	// Pull the link out of the message body; this is exactly what the
	// recipient clicks.
	m := regexp.MustCompile(`/password-reset/([^?\s]+)\?t=([0-9a-f]{64})`).
		FindStringSubmatch(email.body)
	require.Len(t, m, 3, "reset link not found in body: %s", email.body)
	resetID, token := m[1], m[2]

	// Verify recomputes the token from the sent timestamp as stored by
	// Postgres, which keeps microseconds only. The emailed token must
	// survive that round trip.
	got, err := svc.Verify(ctx, resetID, token)
	require.NoError(t, err)
	reset := client.PasswordReset.Query().OnlyX(ctx)
	assert.Equal(t, reset.ID, got.ID)

	require.NoError(t, svc.Consume(ctx, resetID, token, "brand-new-password"))
}

func TestVerifyRejectsWrongToken(t *testing.T) {
	svc, client, _ := newTestService(t, "pwreset_wrong")
	seedAccount(t, client, "ada@example.com", account.StatusACTIVE)
	ctx := context.Background()

	_, err := svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	reset := client.PasswordReset.Query().OnlyX(ctx)

	_, err = svc.Verify(ctx, reset.ID, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestPasswordChangeInvalidatesOutstandingToken(t *testing.T) {
	svc, client, _ := newTestService(t, "pwreset_invalidate")
	acct := seedAccount(t, client, "ada@example.com", account.StatusACTIVE)
	ctx := context.Background()

	_, err := svc.RequestReset(ctx, "ada@example.com")
	require.NoError(t, err)
	reset := client.PasswordReset.Query().OnlyX(ctx)
	token := ComputeToken(*reset.MessageSentDate, reset.TokenSalt, acct.PasswordHash, svc.secret, acct.LastLoginAt)

	// Password changes out of band; the digest inputs shift.
	client.Account.UpdateOneID(acct.ID).
		SetPasswordHash("different-hash").
		ExecX(ctx)

	_, err = svc.Verify(ctx, reset.ID, token)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestConsumeRejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestService(t, "pwreset_short")

	err := svc.Consume(context.Background(), "any", "any", "short")
	require.Error(t, err)
	appErr, ok := errs.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "PASSWORD_TOO_SHORT", appErr.Code)
}
