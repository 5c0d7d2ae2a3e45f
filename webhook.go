package flw

import (
	"crypto/subtle"
	"strings"

	"github.com/shopspring/decimal"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

// Comparator reports whether a provided webhook secret matches the expected one
type Comparator func(provided, expected string) bool

// ConstantTimeCompare compares in time independent of where the inputs differ
func ConstantTimeCompare(provided, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// VerifyWebhook reports whether the verif-hash header equals the configured
// secret hash. It fails closed: a missing header, an unset secret hash or any
// difference yields false.
func (c *Client) VerifyWebhook(r InboundRequest) bool {
	if r == nil {
		return false
	}

	signature := r.Header(HeaderVerifHash)
	secretHash := c.credentials().SecretHash
	if signature == "" || secretHash == "" {
		return false
	}
	return c.compare(signature, secretHash)
}

// ParseWebhookEvent parses a Flutterwave webhook body into a WebhookEvent.
// It does not authenticate the payload; call VerifyWebhook first.
func (c *Client) ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	return ParseWebhookEvent(payload)
}

// ParseWebhookEvent is the package-level form of Client.ParseWebhookEvent
func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var envelope struct {
		Event     string                 `json:"event"`
		EventType string                 `json:"event.type"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := transport.JSON.Unmarshal(payload, &envelope); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Webhook body is not valid JSON").
			Mark(ierr.ErrDecode)
	}

	var raw map[string]interface{}
	_ = transport.JSON.Unmarshal(payload, &raw)

	evt := &WebhookEvent{
		Type:     eventType(envelope.Event),
		Category: envelope.EventType,
		Raw:      raw,
	}

	data := envelope.Data
	evt.ID = stringField(data, "id")
	evt.TxRef = stringField(data, "tx_ref")
	evt.FlwRef = stringField(data, "flw_ref")
	evt.Reference = stringField(data, "reference")
	evt.Status = strings.ToLower(stringField(data, "status"))
	evt.Currency = stringField(data, "currency")
	evt.FailureReason = stringField(data, "complete_message")
	if evt.FailureReason == "" {
		evt.FailureReason = stringField(data, "processor_response")
	}
	if amount := stringField(data, "amount"); amount != "" {
		if d, err := decimal.NewFromString(amount); err == nil {
			evt.Amount = d
		}
	}
	if customer, ok := data["customer"].(map[string]interface{}); ok {
		evt.CustomerEmail = stringField(customer, "email")
	}

	return evt, nil
}

func eventType(event string) WebhookEventType {
	switch WebhookEventType(event) {
	case WebhookEventChargeCompleted,
		WebhookEventTransferCompleted,
		WebhookEventSubscriptionCancelled:
		return WebhookEventType(event)
	default:
		return WebhookEventUnknown
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := transport.String(m[key])
	return s
}
