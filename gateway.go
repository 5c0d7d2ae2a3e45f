package flw

import (
	"encoding/json"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
)

// WebhookEventType is the "event" field of a Flutterwave webhook
type WebhookEventType string

const (
	WebhookEventChargeCompleted       WebhookEventType = "charge.completed"
	WebhookEventTransferCompleted     WebhookEventType = "transfer.completed"
	WebhookEventSubscriptionCancelled WebhookEventType = "subscription.cancelled"
	WebhookEventUnknown               WebhookEventType = "unknown"
)

// WebhookEvent is a normalised Flutterwave webhook
type WebhookEvent struct {
	Type          WebhookEventType
	Category      string // "event.type", e.g. CARD_TRANSACTION
	ID            string // Flutterwave transaction or transfer id
	TxRef         string // merchant reference for charges
	FlwRef        string
	Reference     string // merchant reference for transfers
	Status        string // lower-cased, e.g. "successful", "failed"
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	FailureReason string
	// Raw contains the original parsed payload
	Raw map[string]interface{}
}

// Successful reports whether the event carries a successful status
func (e *WebhookEvent) Successful() bool {
	return e.Status == "successful"
}

// Customer is the payer on a payment request
type Customer struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phonenumber,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Customizations brand the hosted checkout page
type Customizations struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// PaymentRequest is a typed body for InitializePayment
type PaymentRequest struct {
	TxRef          string            `json:"tx_ref" validate:"required"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency" validate:"required,len=3"`
	RedirectURL    string            `json:"redirect_url" validate:"required,url"`
	PaymentOptions string            `json:"payment_options,omitempty"`
	Customer       Customer          `json:"customer"`
	Customizations *Customizations   `json:"customizations,omitempty"`
	Meta           map[string]string `json:"meta,omitempty"`
	SubaccountIDs  []string          `json:"-"`
}

// Validate checks the request locally. The client never calls it; use it
// when a compile-time shaped request should also be checked before sending.
func (r PaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return validateStruct(r)
}

// ToPayload converts the request into the generic body InitializePayment takes
func (r PaymentRequest) ToPayload() Payload {
	p := Payload{
		"tx_ref":       r.TxRef,
		"amount":       json.Number(r.Amount.String()),
		"currency":     r.Currency,
		"redirect_url": r.RedirectURL,
		"customer":     customerPayload(r.Customer),
	}
	if r.PaymentOptions != "" {
		p["payment_options"] = r.PaymentOptions
	}
	if r.Customizations != nil {
		p["customizations"] = lo.OmitByValues(map[string]string{
			"title":       r.Customizations.Title,
			"description": r.Customizations.Description,
			"logo":        r.Customizations.Logo,
		}, []string{""})
	}
	if len(r.Meta) > 0 {
		p["meta"] = r.Meta
	}
	if len(r.SubaccountIDs) > 0 {
		p["subaccounts"] = lo.Map(r.SubaccountIDs, func(id string, _ int) map[string]interface{} {
			return map[string]interface{}{"id": id}
		})
	}
	return p
}

// TokenizedChargeRequest is a typed body for InitializeTokenizedCharge
type TokenizedChargeRequest struct {
	Token     string          `json:"token" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Currency  string          `json:"currency" validate:"required,len=3"`
	Country   string          `json:"country,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	TxRef     string          `json:"tx_ref" validate:"required"`
	Narration string          `json:"narration,omitempty"`
}

// Validate checks the request locally
func (r TokenizedChargeRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Charge amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return validateStruct(r)
}

// ToPayload converts the request into the generic body InitializeTokenizedCharge takes
func (r TokenizedChargeRequest) ToPayload() Payload {
	p := Payload{
		"token":    r.Token,
		"email":    r.Email,
		"currency": r.Currency,
		"amount":   json.Number(r.Amount.String()),
		"tx_ref":   r.TxRef,
	}
	if r.Country != "" {
		p["country"] = r.Country
	}
	if r.Narration != "" {
		p["narration"] = r.Narration
	}
	return p
}

// TransactionData is the "data" object of a VerifyTransaction response
type TransactionData struct {
	ID                int64           `json:"id"`
	TxRef             string          `json:"tx_ref"`
	FlwRef            string          `json:"flw_ref"`
	Amount            decimal.Decimal `json:"amount"`
	ChargedAmount     decimal.Decimal `json:"charged_amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	PaymentType       string          `json:"payment_type"`
	ProcessorResponse string          `json:"processor_response"`
	Customer          struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"customer"`
}

// DecodeTransaction decodes the data object of a VerifyTransaction response
func DecodeTransaction(resp Response) (*TransactionData, error) {
	var out struct {
		Data TransactionData `json:"data"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func customerPayload(c Customer) map[string]string {
	return lo.OmitByValues(map[string]string{
		"email":       c.Email,
		"phonenumber": c.PhoneNumber,
		"name":        c.Name,
	}, []string{""})
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validateStruct(v interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	if err := validate.Struct(v); err != nil {
		return ierr.WithError(err).
			WithHint("Request failed validation").
			Mark(ierr.ErrValidation)
	}
	return nil
}
