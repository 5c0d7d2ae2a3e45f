package transport

import (
	"encoding/json"
	"fmt"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
)

// Payload is a JSON request body
type Payload map[string]interface{}

// Response is a decoded Flutterwave JSON body, kept exactly as received.
// Numbers are json.Number.
type Response map[string]interface{}

// Status returns the top-level "status" field ("success" or "error")
func (r Response) Status() string {
	s, _ := r["status"].(string)
	return s
}

// Message returns the top-level "message" field
func (r Response) Message() string {
	s, _ := r["message"].(string)
	return s
}

// Data returns the "data" object, or nil when data is absent or not an object
func (r Response) Data() map[string]interface{} {
	d, _ := r["data"].(map[string]interface{})
	return d
}

// Succeeded reports whether Flutterwave marked the response as successful
func (r Response) Succeeded() bool {
	return r.Status() == "success"
}

// Decode re-encodes the response into v, for callers who want typed access
func (r Response) Decode(v interface{}) error {
	raw, err := JSON.Marshal(r)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrDecode)
	}
	if err := JSON.Unmarshal(raw, v); err != nil {
		return ierr.WithError(err).
			WithHint("Response does not match the target type").
			Mark(ierr.ErrDecode)
	}
	return nil
}

// String renders a decoded JSON scalar the way it appeared on the wire.
// Strings come back unchanged, numbers keep their exact digits.
func String(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case fmt.Stringer:
		return t.String(), true
	case float64:
		return fmt.Sprintf("%v", t), true
	default:
		return "", false
	}
}
