package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaccount "planora.io/planora/ent/account"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
	"planora.io/planora/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Ada@example.com", NormalizeEmail("Ada@EXAMPLE.COM"))
	assert.Equal(t, "ada@example.com", NormalizeEmail("  ada@example.com "))
	assert.Equal(t, "not-an-email", NormalizeEmail("not-an-email"))
}

func TestNormalizePhone(t *testing.T) {
	for _, raw := range []string{"(212) 555-0142", "212-555-0142", "+1 212 555 0142"} {
		got, err := NormalizePhone(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "+12125550142", got, raw)
	}

	_, err := NormalizePhone("not a phone")
	require.Error(t, err)
	appErr, ok := errs.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "PHONE_INVALID", appErr.Code)
}

type captureEnqueuer struct {
	reqs []notification.DeliveryRequest
}

func (c *captureEnqueuer) EnqueueDelivery(_ context.Context, req notification.DeliveryRequest) error {
	c.reqs = append(c.reqs, req)
	return nil
}

func TestEnsureContactCreatesStubOnce(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "account_stub")
	svc := NewService(client, notification.NewDispatcher(&captureEnqueuer{}))
	ctx := context.Background()

	first, err := svc.EnsureContact(ctx, "Guest@EXAMPLE.com", "")
	require.NoError(t, err)
	assert.Equal(t, entaccount.StatusCONTACT, first.Status)
	require.NotNil(t, first.Email)
	assert.Equal(t, "Guest@example.com", *first.Email)

	// Spelling variant resolves to the same stub.
	again, err := svc.EnsureContact(ctx, "Guest@example.COM", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestEnsureContactByPhoneNormalizes(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "account_stub_phone")
	svc := NewService(client, notification.NewDispatcher(&captureEnqueuer{}))
	ctx := context.Background()

	first, err := svc.EnsureContact(ctx, "", "(212) 555-0142")
	require.NoError(t, err)
	require.NotNil(t, first.Phone)
	assert.Equal(t, "+12125550142", *first.Phone)

	again, err := svc.EnsureContact(ctx, "", "212-555-0142")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestEnsureContactRequiresExactlyOneEndpoint(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "account_stub_args")
	svc := NewService(client, notification.NewDispatcher(&captureEnqueuer{}))
	ctx := context.Background()

	_, err := svc.EnsureContact(ctx, "", "")
	require.Error(t, err)
	_, err = svc.EnsureContact(ctx, "a@example.com", "+12125550142")
	require.Error(t, err)
}

func TestBeginEmailValidationDispatches(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "account_validate_begin")
	enq := &captureEnqueuer{}
	svc := NewService(client, notification.NewDispatcher(enq))
	ctx := context.Background()

	acct := client.Account.Create().
		SetID("acc-1").
		SetName("Ada").
		SetStatus(entaccount.StatusSIGNED_UP).
		SaveX(ctx)

	ch, err := svc.BeginEmailValidation(ctx, acct.ID, "Ada@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada@example.com", ch.Endpoint)
	assert.NotEmpty(t, ch.ValidationToken)
	assert.Nil(t, ch.ValidationDate)

	require.Len(t, enq.reqs, 1)
	assert.Equal(t, domain.NotifyEmailValidate, enq.reqs[0].Type)
	assert.Equal(t, acct.ID, enq.reqs[0].RecipientID)
	assert.Equal(t, domain.AccountRef(acct.ID), enq.reqs[0].Subject)
}

func TestValidateEmailPromotesSignedUp(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "account_validate")
	svc := NewService(client, notification.NewDispatcher(&captureEnqueuer{}))
	ctx := context.Background()

	acct := client.Account.Create().
		SetID("acc-1").
		SetName("Ada").
		SetStatus(entaccount.StatusSIGNED_UP).
		SaveX(ctx)
	ch, err := svc.BeginEmailValidation(ctx, acct.ID, "ada@example.com")
	require.NoError(t, err)

	validated, err := svc.ValidateEmail(ctx, ch.ValidationToken)
	require.NoError(t, err)
	assert.Equal(t, entaccount.StatusACTIVE, validated.Status)
	require.NotNil(t, validated.Email)
	assert.Equal(t, "ada@example.com", *validated.Email)

	got := client.CommChannel.Query().
		Where(commchannel.IDEQ(ch.ID)).
		OnlyX(ctx)
	assert.NotNil(t, got.ValidationDate)

	// Second use of the token is a conflict, not a revalidation.
	_, err = svc.ValidateEmail(ctx, ch.ValidationToken)
	require.Error(t, err)
	appErr, ok := errs.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_USED", appErr.Code)
}

func TestValidateEmailUnknownToken(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "account_validate_unknown")
	svc := NewService(client, notification.NewDispatcher(&captureEnqueuer{}))

	_, err := svc.ValidateEmail(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
