// Package subaccounts manages split-payment subaccounts.
package subaccounts

import (
	"context"
	"net/url"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Client wraps the Flutterwave subaccounts API
type Client struct {
	r *transport.Requester
}

// New creates a subaccounts client
func New(r *transport.Requester) *Client {
	return &Client{r: r}
}

func (c *Client) Create(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.r.Post(ctx, "/subaccounts", data)
}

// List returns subaccounts; query may filter by account_bank, account_number, bank_name
func (c *Client) List(ctx context.Context, query url.Values) (transport.Response, error) {
	return c.r.Get(ctx, "/subaccounts", query)
}

func (c *Client) Fetch(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/subaccounts/%s", id), nil)
}

func (c *Client) Update(ctx context.Context, id string, data transport.Payload) (transport.Response, error) {
	return c.r.Put(ctx, transport.Path("/subaccounts/%s", id), data)
}

func (c *Client) Delete(ctx context.Context, id string) (transport.Response, error) {
	return c.r.Delete(ctx, transport.Path("/subaccounts/%s", id))
}
