// Package transfers sends money out of a Flutterwave balance.
package transfers

import (
	"context"
	"net/url"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Client wraps the Flutterwave transfers API
type Client struct {
	r *transport.Requester
}

// New creates a transfers client
func New(r *transport.Requester) *Client {
	return &Client{r: r}
}

// Initiate creates a single transfer (POST /transfers)
func (c *Client) Initiate(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.r.Post(ctx, "/transfers", data)
}

// InitiateBulk creates a batch of transfers (POST /bulk-transfers)
func (c *Client) InitiateBulk(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.r.Post(ctx, "/bulk-transfers", data)
}

// Fetch returns one transfer
func (c *Client) Fetch(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/transfers/%s", id), nil)
}

// List returns transfers, filtered by query (page, status)
func (c *Client) List(ctx context.Context, query url.Values) (transport.Response, error) {
	return c.r.Get(ctx, "/transfers", query)
}

// Fee quotes the fee for transferring amount in currency
func (c *Client) Fee(ctx context.Context, amount, currency string) (transport.Response, error) {
	return c.r.Get(ctx, "/transfers/fee", url.Values{
		"amount":   {amount},
		"currency": {currency},
	})
}

// Retry retries a failed transfer
func (c *Client) Retry(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Post(ctx, transport.Path("/transfers/%s/retries", id), nil)
}

// FetchRetries returns the retry attempts of a transfer
func (c *Client) FetchRetries(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/transfers/%s/retries", id), nil)
}

// Rates returns the exchange rate for sending amount of sourceCurrency as
// destinationCurrency
func (c *Client) Rates(ctx context.Context, amount, destinationCurrency, sourceCurrency string) (transport.Response, error) {
	return c.r.Get(ctx, "/transfers/rates", url.Values{
		"amount":               {amount},
		"destination_currency": {destinationCurrency},
		"source_currency":      {sourceCurrency},
	})
}

// BulkStatus returns the transfers created by one bulk request
func (c *Client) BulkStatus(ctx context.Context, batchID string) (transport.Response, error) {
	return c.r.Get(ctx, "/transfers", url.Values{"batch_id": {batchID}})
}
