// Package transport holds the authenticated JSON request helper shared by the
// root client and every resource sub-client.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
	"github.com/KriaaCompany/flw-sdk/internal/logger"
)

// DefaultBaseURL is the Flutterwave v3 REST root
const DefaultBaseURL = "https://api.flutterwave.com/v3"

// JSON keeps numbers as json.Number so provider ids and amounts survive a
// decode untouched, and sorts map keys so request bodies are deterministic.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials are the four Flutterwave account secrets
type Credentials struct {
	PublicKey     string
	SecretKey     string
	SecretHash    string
	EncryptionKey string
}

// Requester dispatches authenticated JSON requests against BaseURL
type Requester struct {
	Credentials Credentials
	BaseURL     string
	HTTPClient  Doer
	Logger      *logger.Logger
}

// NewRequester creates a Requester, defaulting the base URL, HTTP client and logger
func NewRequester(creds Credentials, baseURL string, httpClient Doer, log *logger.Logger) *Requester {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Requester{
		Credentials: creds,
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		HTTPClient:  httpClient,
		Logger:      log,
	}
}

// Get performs an authenticated GET
func (r *Requester) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	return r.Do(ctx, http.MethodGet, path, query, nil)
}

// Post performs an authenticated POST with a JSON body
func (r *Requester) Post(ctx context.Context, path string, body Payload) (Response, error) {
	return r.Do(ctx, http.MethodPost, path, nil, nonNil(body))
}

// Put performs an authenticated PUT with a JSON body
func (r *Requester) Put(ctx context.Context, path string, body Payload) (Response, error) {
	return r.Do(ctx, http.MethodPut, path, nil, nonNil(body))
}

// Delete performs an authenticated DELETE
func (r *Requester) Delete(ctx context.Context, path string) (Response, error) {
	return r.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends one request and decodes the JSON body verbatim. Non-2xx responses
// are not errors: the provider's JSON comes back like any other response.
// Errors from the HTTP client and from reading the body are returned as-is.
func (r *Requester) Do(ctx context.Context, method, path string, query url.Values, body Payload) (Response, error) {
	fullURL := r.BaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := JSON.Marshal(body)
		if err != nil {
			r.Logger.Errorw("failed to marshal flutterwave request body",
				"method", method,
				"path", path,
				"error", err)
			return nil, ierr.WithError(err).
				WithHint("Request payload must be JSON encodable").
				Mark(ierr.ErrEncode)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.Credentials.SecretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.Logger.Errorw("flutterwave request failed",
			"method", method,
			"path", path,
			"error", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	r.Logger.Debugw("flutterwave request completed",
		"method", method,
		"path", path,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return decodeResponse(resp.StatusCode, respBody)
}

func decodeResponse(statusCode int, body []byte) (Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var out Response
	if err := JSON.Unmarshal(body, &out); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Flutterwave returned a non-JSON body with status %d", statusCode).
			WithReportableDetails(map[string]any{
				"status_code": statusCode,
				"body":        truncate(string(body), 256),
			}).
			Mark(ierr.ErrDecode)
	}
	return out, nil
}

// Path formats a path template, escaping every argument as a single segment
func Path(format string, segments ...string) string {
	args := make([]any, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, args...)
}

func nonNil(body Payload) Payload {
	if body == nil {
		return Payload{}
	}
	return body
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
