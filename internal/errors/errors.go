package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels for failures raised by the SDK itself. Transport failures are
// never marked with these; they reach the caller untouched.
var (
	ErrCallback   = new(ErrCodeCallback, "invalid callback request")
	ErrDecode     = new(ErrCodeDecode, "invalid response body")
	ErrEncode     = new(ErrCodeEncode, "invalid request payload")
	ErrConfig     = new(ErrCodeConfig, "invalid configuration")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrNotFound   = new(ErrCodeNotFound, "not found")
)

const (
	ErrCodeCallback   = "callback_error"
	ErrCodeDecode     = "decode_error"
	ErrCodeEncode     = "encode_error"
	ErrCodeConfig     = "config_error"
	ErrCodeValidation = "validation_error"
	ErrCodeNotFound   = "not_found"
)

// InternalError is a coded SDK error usable as a Mark reference
type InternalError struct {
	Code    string
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches on Code so copies of a sentinel compare equal
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsCallback reports whether err came from callback parsing
func IsCallback(err error) bool {
	return errors.Is(err, ErrCallback)
}

// IsDecode reports whether err came from decoding a provider response
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConfig reports whether err is a configuration error
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfig)
}

// GetAllHints returns every hint attached to err
func GetAllHints(err error) []string {
	return errors.GetAllHints(err)
}
