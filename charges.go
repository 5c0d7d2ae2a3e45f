package flw

import (
	"context"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// InitializePayment creates a hosted payment link (POST /payments)
func (c *Client) InitializePayment(ctx context.Context, data Payload) (Response, error) {
	return c.requester(c.credentials()).Post(ctx, "/payments", data)
}

// InitializeTokenizedCharge charges a saved card token (POST /tokenized-charges)
func (c *Client) InitializeTokenizedCharge(ctx context.Context, data Payload) (Response, error) {
	return c.requester(c.credentials()).Post(ctx, "/tokenized-charges", data)
}

// InitializeBulkTokenizedCharge charges several card tokens in one batch
// (POST /bulk-tokenized-charges)
func (c *Client) InitializeBulkTokenizedCharge(ctx context.Context, data Payload) (Response, error) {
	return c.requester(c.credentials()).Post(ctx, "/bulk-tokenized-charges", data)
}

// GetBulkTokenizedCharges lists the charges inside a bulk tokenized charge
func (c *Client) GetBulkTokenizedCharges(ctx context.Context, id string) (Response, error) {
	return c.requester(c.credentials()).Get(ctx, transport.Path("/bulk-tokenized-charges/%s/transactions", id), nil)
}

// GetBulkTokenizedChargeStatus queries the status of a bulk tokenized charge
func (c *Client) GetBulkTokenizedChargeStatus(ctx context.Context, id string) (Response, error) {
	return c.requester(c.credentials()).Get(ctx, transport.Path("/bulk-tokenized-charges/%s", id), nil)
}

// UpdateTokenDetails updates the customer details attached to a card token
func (c *Client) UpdateTokenDetails(ctx context.Context, token string, data Payload) (Response, error) {
	return c.requester(c.credentials()).Put(ctx, transport.Path("/tokens/%s", token), data)
}

// ValidateCharge completes a charge that needed an OTP (POST /validate-charge)
func (c *Client) ValidateCharge(ctx context.Context, data Payload) (Response, error) {
	return c.requester(c.credentials()).Post(ctx, "/validate-charge", data)
}

// VerifyTransaction fetches the final state of a transaction by its id
func (c *Client) VerifyTransaction(ctx context.Context, id string) (Response, error) {
	return c.requester(c.credentials()).Get(ctx, transport.Path("/transactions/%s/verify", id), nil)
}
