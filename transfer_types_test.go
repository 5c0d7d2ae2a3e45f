package flw_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	flw "github.com/KriaaCompany/flw-sdk"
)

func TestTransferRequest(t *testing.T) {
	t.Parallel()

	r := flw.TransferRequest{
		AccountBank:   "044",
		AccountNumber: "0690000040",
		Amount:        decimal.RequireFromString("5500"),
		Currency:      "NGN",
		Narration:     "Payout for order 42",
		Reference:     "payout_01",
		Meta:          map[string]string{"sender": "Shop"},
	}
	require.NoError(t, r.Validate())

	c, rec := newTestClient(t, flw.Config{PublicKey: "pk", SecretKey: "sk"})
	_, err := c.Transfers().Initiate(context.Background(), r.ToPayload())
	require.NoError(t, err)
	require.Equal(t, "/v3/transfers", rec.Last().Path)
	require.JSONEq(t, `{
		"account_bank": "044",
		"account_number": "0690000040",
		"amount": 5500,
		"currency": "NGN",
		"narration": "Payout for order 42",
		"reference": "payout_01",
		"meta": [{"sender": "Shop"}]
	}`, string(rec.Last().Body))

	r.Amount = decimal.NewFromInt(-1)
	require.True(t, flw.Is(r.Validate(), flw.ErrValidation))

	r.Amount = decimal.NewFromInt(1)
	r.CallbackURL = "nope"
	require.True(t, flw.Is(r.Validate(), flw.ErrValidation))
}

func TestBulkTransferPayload(t *testing.T) {
	t.Parallel()

	p := flw.BulkTransferPayload("March payouts", []flw.TransferRequest{
		{AccountBank: "044", AccountNumber: "1", Amount: decimal.NewFromInt(10), Currency: "NGN", Reference: "a"},
		{AccountBank: "058", AccountNumber: "2", Amount: decimal.NewFromInt(20), Currency: "NGN", Reference: "b"},
	})
	require.Equal(t, "March payouts", p["title"])

	items, ok := p["bulk_data"].([]flw.Payload)
	require.True(t, ok)
	require.Len(t, items, 2)
	require.Equal(t, "b", items[1]["reference"])
}

func TestBeneficiaryRequest(t *testing.T) {
	t.Parallel()

	r := flw.BeneficiaryRequest{AccountBank: "044", AccountNumber: "0690000032", BeneficiaryName: "Ada Lovelace"}
	require.NoError(t, r.Validate())
	require.Equal(t, flw.Payload{
		"account_bank":     "044",
		"account_number":   "0690000032",
		"beneficiary_name": "Ada Lovelace",
	}, r.ToPayload())

	r.BeneficiaryName = ""
	require.True(t, flw.Is(r.Validate(), flw.ErrValidation))
}

func TestDecodeTransfer(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, flw.Config{PublicKey: "pk", SecretKey: "sk"})
	rec.Body = `{"status":"success","message":"Transfer fetched","data":{
		"id": 33286, "account_number": "0690000040", "bank_code": "044", "full_name": "Ada",
		"currency": "NGN", "amount": 5500, "fee": 26.875, "status": "SUCCESSFUL",
		"reference": "payout_01", "complete_message": "Successful"}}`

	resp, err := c.Transfers().Fetch(context.Background(), "33286")
	require.NoError(t, err)

	tr, err := flw.DecodeTransfer(resp)
	require.NoError(t, err)
	require.Equal(t, int64(33286), tr.ID)
	require.Equal(t, "SUCCESSFUL", tr.Status)
	require.True(t, decimal.RequireFromString("26.875").Equal(tr.Fee))
}
