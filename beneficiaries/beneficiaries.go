// Package beneficiaries manages saved transfer recipients.
package beneficiaries

import (
	"context"
	"net/url"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Client wraps the Flutterwave beneficiaries API
type Client struct {
	r *transport.Requester
}

// New creates a beneficiaries client
func New(r *transport.Requester) *Client {
	return &Client{r: r}
}

// Create saves a beneficiary (account_number, account_bank, beneficiary_name)
func (c *Client) Create(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.r.Post(ctx, "/beneficiaries", data)
}

// List returns saved beneficiaries; query may carry page
func (c *Client) List(ctx context.Context, query url.Values) (transport.Response, error) {
	return c.r.Get(ctx, "/beneficiaries", query)
}

// Fetch returns one beneficiary
func (c *Client) Fetch(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/beneficiaries/%s", id), nil)
}

// Delete removes a beneficiary
func (c *Client) Delete(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Delete(ctx, transport.Path("/beneficiaries/%s", id))
}
