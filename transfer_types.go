package flw

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
)

// TransferRequest is a typed body for Transfers().Initiate
type TransferRequest struct {
	AccountBank     string            `json:"account_bank" validate:"required"`   // bank code, e.g. "044"
	AccountNumber   string            `json:"account_number" validate:"required"` // or mobile number for mobile money
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency" validate:"required,len=3"`
	DebitCurrency   string            `json:"debit_currency,omitempty"`
	Narration       string            `json:"narration,omitempty"`
	Reference       string            `json:"reference" validate:"required"` // idempotency key
	CallbackURL     string            `json:"callback_url,omitempty" validate:"omitempty,url"`
	BeneficiaryName string            `json:"beneficiary_name,omitempty"`
	Meta            map[string]string `json:"meta,omitempty"`
}

// Validate checks the request locally
func (r TransferRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Transfer amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return validateStruct(r)
}

// ToPayload converts the request into the body Transfers().Initiate takes
func (r TransferRequest) ToPayload() Payload {
	p := Payload{
		"account_bank":   r.AccountBank,
		"account_number": r.AccountNumber,
		"amount":         json.Number(r.Amount.String()),
		"currency":       r.Currency,
		"reference":      r.Reference,
	}
	for k, v := range lo.OmitByValues(map[string]string{
		"debit_currency":   r.DebitCurrency,
		"narration":        r.Narration,
		"callback_url":     r.CallbackURL,
		"beneficiary_name": r.BeneficiaryName,
	}, []string{""}) {
		p[k] = v
	}
	if len(r.Meta) > 0 {
		p["meta"] = []map[string]string{r.Meta}
	}
	return p
}

// BulkTransferPayload wraps several transfers into a Transfers().InitiateBulk body
func BulkTransferPayload(title string, transfers []TransferRequest) Payload {
	p := Payload{
		"bulk_data": lo.Map(transfers, func(t TransferRequest, _ int) Payload {
			return t.ToPayload()
		}),
	}
	if title != "" {
		p["title"] = title
	}
	return p
}

// BeneficiaryRequest is a typed body for Beneficiaries().Create
type BeneficiaryRequest struct {
	AccountBank     string `json:"account_bank" validate:"required"`
	AccountNumber   string `json:"account_number" validate:"required"`
	BeneficiaryName string `json:"beneficiary_name" validate:"required"`
	Currency        string `json:"currency,omitempty" validate:"omitempty,len=3"`
	BankName        string `json:"bank_name,omitempty"`
}

// Validate checks the request locally
func (r BeneficiaryRequest) Validate() error {
	return validateStruct(r)
}

// ToPayload converts the request into the body Beneficiaries().Create takes
func (r BeneficiaryRequest) ToPayload() Payload {
	p := Payload{}
	for k, v := range lo.OmitByValues(map[string]string{
		"account_bank":     r.AccountBank,
		"account_number":   r.AccountNumber,
		"beneficiary_name": r.BeneficiaryName,
		"currency":         r.Currency,
		"bank_name":        r.BankName,
	}, []string{""}) {
		p[k] = v
	}
	return p
}

// TransferData is the "data" object of a transfer response or
// transfer.completed webhook
type TransferData struct {
	ID              int64           `json:"id"`
	AccountNumber   string          `json:"account_number"`
	BankCode        string          `json:"bank_code"`
	FullName        string          `json:"full_name"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status"` // NEW, PENDING, SUCCESSFUL, FAILED
	Reference       string          `json:"reference"`
	CompleteMessage string          `json:"complete_message"`
}

// DecodeTransfer decodes the data object of a transfer response
func DecodeTransfer(resp Response) (*TransferData, error) {
	var out struct {
		Data TransferData `json:"data"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
