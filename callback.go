package flw

import (
	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Field and header names used on inbound redirects and webhooks
const (
	FieldTransactionID = "transaction_id"
	FieldResp          = "resp"
	HeaderVerifHash    = "verif-hash"
)

// InboundRequest is the view of an incoming HTTP request the client needs.
// Adapters for net/http and gin live in the inbound package.
type InboundRequest interface {
	// Header returns the named header, or "" when absent
	Header(name string) string
	// Field returns the named query or form field, or "" when absent
	Field(name string) string
}

// GetTransactionIDFromCallback extracts the transaction id from a payment
// redirect. A non-empty transaction_id field wins; otherwise the resp field is
// parsed as JSON and data.id is used.
func (c *Client) GetTransactionIDFromCallback(r InboundRequest) (string, error) {
	return GetTransactionIDFromCallback(r)
}

// GetTransactionIDFromCallback is the package-level form of
// Client.GetTransactionIDFromCallback
func GetTransactionIDFromCallback(r InboundRequest) (string, error) {
	if r == nil {
		return "", ierr.NewError("callback request is nil").Mark(ierr.ErrCallback)
	}

	if id := r.Field(FieldTransactionID); id != "" {
		return id, nil
	}

	raw := r.Field(FieldResp)
	if raw == "" {
		return "", ierr.NewError("callback has neither transaction_id nor resp").
			WithHint("Redirect did not carry a Flutterwave transaction id").
			Mark(ierr.ErrCallback)
	}

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := transport.JSON.UnmarshalFromString(raw, &resp); err != nil {
		return "", ierr.WithError(err).
			WithHint("resp field is not valid JSON").
			Mark(ierr.ErrCallback)
	}

	id, ok := transport.String(resp.Data["id"])
	if !ok || id == "" {
		return "", ierr.NewError("resp field has no data.id").
			WithHint("resp field is missing data.id").
			Mark(ierr.ErrCallback)
	}
	return id, nil
}
