// Package verification resolves bank accounts, BVNs and card BINs.
package verification

import (
	"context"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Client wraps the Flutterwave verification APIs
type Client struct {
	r *transport.Requester
}

// New creates a verification client
func New(r *transport.Requester) *Client {
	return &Client{r: r}
}

// Account resolves an account number to its holder name
// (account_number, account_bank)
func (c *Client) Account(ctx context.Context, data transport.Payload) (transport.Response, error) {
	return c.r.Post(ctx, "/accounts/resolve", data)
}

// BVN returns the details behind a Bank Verification Number
func (c *Client) BVN(ctx context.Context, bvn string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/kyc/bvns/%s", bvn), nil)
}

// CardBIN returns issuer details for the first six digits of a card
func (c *Client) CardBIN(ctx context.Context, bin string) (transport.Response, error) {
	return c.r.Get(ctx, transport.Path("/card-bins/%s", bin), nil)
}
