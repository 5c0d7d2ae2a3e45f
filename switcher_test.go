package flw_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	flw "github.com/KriaaCompany/flw-sdk"
)

type accountKey struct{}

func resolveFromContext(ctx context.Context) (string, error) {
	name, ok := ctx.Value(accountKey{}).(string)
	if !ok {
		return "", errors.New("no account in context")
	}
	return name, nil
}

func TestAccountSwitcherRoutesToResolvedAccount(t *testing.T) {
	t.Parallel()

	ng, ngRec := newTestClient(t, flw.Config{PublicKey: "pk-ng", SecretKey: "sk-ng", SecretHash: "hash-ng"})
	gh, ghRec := newTestClient(t, flw.Config{PublicKey: "pk-gh", SecretKey: "sk-gh", SecretHash: "hash-gh"})

	s := flw.NewAccountSwitcher(map[string]*flw.Client{"ng": ng, "gh": gh}, resolveFromContext)

	ctx := context.WithValue(context.Background(), accountKey{}, "gh")
	_, err := s.VerifyTransaction(ctx, "55")
	require.NoError(t, err)
	require.Empty(t, ngRec.Calls())
	require.Len(t, ghRec.Calls(), 1)
	require.Equal(t, "Bearer sk-gh", ghRec.Last().Header.Get("Authorization"))

	name, err := s.ActiveAccountName(ctx)
	require.NoError(t, err)
	require.Equal(t, "gh", name)

	ctx = context.WithValue(context.Background(), accountKey{}, "ng")
	_, err = s.InitializePayment(ctx, flw.Payload{"tx_ref": "r"})
	require.NoError(t, err)
	require.Len(t, ngRec.Calls(), 1)
	require.Equal(t, "/v3/payments", ngRec.Last().Path)
}

func TestAccountSwitcherErrors(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, flw.Config{PublicKey: "pk", SecretKey: "sk"})
	s := flw.NewAccountSwitcher(map[string]*flw.Client{"ng": c}, resolveFromContext)

	_, err := s.ValidateCharge(context.Background(), flw.Payload{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "account resolver error")

	ctx := context.WithValue(context.Background(), accountKey{}, "ke")
	_, err = s.GetBulkTokenizedChargeStatus(ctx, "1")
	require.Error(t, err)
	require.True(t, flw.Is(err, flw.ErrNotFound))

	_, err = s.ActiveAccountName(ctx)
	require.True(t, flw.Is(err, flw.ErrNotFound))
	require.Empty(t, rec.Calls())
}

func TestAccountSwitcherWebhook(t *testing.T) {
	t.Parallel()

	ng := flw.New(flw.Config{PublicKey: "pk-ng", SecretKey: "sk-ng", SecretHash: "hash-ng"})
	gh := flw.New(flw.Config{PublicKey: "pk-gh", SecretKey: "sk-gh", SecretHash: "hash-gh"})
	s := flw.NewAccountSwitcher(map[string]*flw.Client{"ng": ng, "gh": gh}, resolveFromContext)

	name, ok := s.WebhookAccount(fakeRequest{headers: map[string]string{"verif-hash": "hash-ng"}})
	require.True(t, ok)
	require.Equal(t, "ng", name)

	require.True(t, s.VerifyWebhook(fakeRequest{headers: map[string]string{"verif-hash": "hash-gh"}}))
	require.False(t, s.VerifyWebhook(fakeRequest{headers: map[string]string{"verif-hash": "hash-ke"}}))
}
