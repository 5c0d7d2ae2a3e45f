// Package banks lists the banks and branches Flutterwave can pay into.
package banks

import (
	"context"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Client wraps the Flutterwave banks API
type Client struct {
	r *transport.Requester
}

// New creates a banks client
func New(r *transport.Requester) *Client {
	return &Client{r: r}
}

// List returns the banks of a country, by ISO code (NG, GH, KE, UG, ZA, TZ)
func (c *Client) List(ctx context.Context, country string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/banks/%s", country), nil)
}

// Branches returns the branches of a bank, by Flutterwave bank id
func (c *Client) Branches(ctx context.Context, bankID string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/banks/%s/branches", bankID), nil)
}
