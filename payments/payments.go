// Package payments charges customers directly through /charges, one method
// per Flutterwave payment type.
package payments

import (
	"context"
	"net/http"
	"net/url"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Charge types accepted by POST /charges?type=
const (
	TypeCard              = "card"
	TypeUSSD              = "ussd"
	TypeAccount           = "debit_ng_account"
	TypeACH               = "ach_payment"
	TypeBankTransfer      = "bank_transfer"
	TypeMpesa             = "mpesa"
	TypeMobileMoneyGhana  = "mobile_money_ghana"
	TypeMobileMoneyRwanda = "mobile_money_rwanda"
	TypeMobileMoneyUganda = "mobile_money_uganda"
	TypeMobileMoneyZambia = "mobile_money_zambia"
	TypeMobileMoneyFranco = "mobile_money_franco"
	TypeVoucher           = "voucher_payment"
	TypeApplePay          = "applepay"
	TypeGooglePay         = "googlepay"
	TypeENaira            = "enaira"
)

// Client wraps the Flutterwave charges API
type Client struct {
	r *transport.Requester
}

// New creates a payments client. Card charges need r.Credentials.EncryptionKey.
func New(r *transport.Requester) *Client {
	return &Client{r: r}
}

// Charge sends data to POST /charges?type=chargeType unencrypted
func (c *Client) Charge(ctx context.Context, chargeType string, data transport.Payload) (transport.Response, error) {
	if data == nil {
		data = transport.Payload{}
	}
	return c.r.Do(ctx, http.MethodPost, "/charges", url.Values{"type": {chargeType}}, data)
}

// Card charges a card. The payload is encrypted with the account encryption
// key and sent as {"client": "<ciphertext>"}.
func (c *Client) Card(ctx context.Context, data transport.Payload) (transport.Response, error) {
	plain, err := transport.JSON.Marshal(data)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrEncode)
	}
	client, err := Encrypt(c.r.Credentials.EncryptionKey, plain)
	if err != nil {
		return nil, err
	}
	return c.Charge(ctx, TypeCard, transport.Payload{"client": client})
}

func (c *Client) USSD(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeUSSD, data)
}

// Account debits a Nigerian bank account
func (c *Client) Account(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeAccount, data)
}

func (c *Client) ACH(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeACH, data)
}

// BankTransfer generates a one-off account number for the customer to pay into
func (c *Client) BankTransfer(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeBankTransfer, data)
}

func (c *Client) Mpesa(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeMpesa, data)
}

func (c *Client) MobileMoneyGhana(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeMobileMoneyGhana, data)
}

func (c *Client) MobileMoneyRwanda(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeMobileMoneyRwanda, data)
}

func (c *Client) MobileMoneyUganda(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeMobileMoneyUganda, data)
}

func (c *Client) MobileMoneyZambia(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeMobileMoneyZambia, data)
}

// MobileMoneyFranco covers francophone Africa (XAF, XOF)
func (c *Client) MobileMoneyFranco(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeMobileMoneyFranco, data)
}

func (c *Client) Voucher(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeVoucher, data)
}

func (c *Client) ApplePay(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeApplePay, data)
}

func (c *Client) GooglePay(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeGooglePay, data)
}

func (c *Client) ENaira(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.Charge(ctx, TypeENaira, data)
}

// Refund refunds all or part of a transaction (POST /transactions/{id}/refund)
func (c *Client) Refund(ctx context.Context, id string, data transport.Payload) (transport.Response, error) {
	return c.r.Post(ctx, transport.Path("/transactions/%s/refund", id), data)
}

// Transactions lists transactions; filters go in query (from, to, page, status, tx_ref...)
func (c *Client) Transactions(ctx context.Context, query url.Values) (transport.Response, error) {
	return c.r.Get(ctx, "/transactions", query)
}

// Fee quotes the fee for charging amount in currency
func (c *Client) Fee(ctx context.Context, amount, currency string) (transport.Response, error) {
	return c.r.Get(ctx, "/transactions/fee", url.Values{
		"amount":   {amount},
		"currency": {currency},
	})
}
