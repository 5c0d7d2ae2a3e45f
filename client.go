// Package flw is a client for the Flutterwave v3 REST API.
//
// Every call is a single authenticated request/response round trip. Provider
// responses are returned as decoded JSON without interpretation: a failed
// charge comes back as a Response whose status is "error", not as a Go error.
package flw

import (
	"sync"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
	"github.com/KriaaCompany/flw-sdk/internal/logger"
	"github.com/KriaaCompany/flw-sdk/internal/transport"

	"github.com/KriaaCompany/flw-sdk/banks"
	"github.com/KriaaCompany/flw-sdk/beneficiaries"
	"github.com/KriaaCompany/flw-sdk/payments"
	"github.com/KriaaCompany/flw-sdk/subaccounts"
	"github.com/KriaaCompany/flw-sdk/transfers"
	"github.com/KriaaCompany/flw-sdk/verification"
)

// DefaultBaseURL is the Flutterwave v3 REST root
const DefaultBaseURL = transport.DefaultBaseURL

type (
	// Payload is a JSON request body
	Payload = transport.Payload
	// Response is a decoded Flutterwave JSON body
	Response = transport.Response
	// Doer sends HTTP requests; *http.Client satisfies it
	Doer = transport.Doer
)

// Client talks to Flutterwave with one set of account credentials
type Client struct {
	mu      sync.RWMutex
	creds   transport.Credentials
	baseURL string

	httpClient Doer
	logger     *logger.Logger
	compare    Comparator
}

// New creates a Client from explicit credentials
func New(cfg Config, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	baseURL := o.baseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	return &Client{
		creds: transport.Credentials{
			PublicKey:     cfg.PublicKey,
			SecretKey:     cfg.SecretKey,
			SecretHash:    cfg.SecretHash,
			EncryptionKey: cfg.EncryptionKey,
		},
		baseURL:    baseURL,
		httpClient: o.doer(),
		logger:     logger.FromZap(o.logger),
		compare:    o.comparator,
	}
}

// Initialize creates a Client with only the public and secret keys set.
// Webhook verification always fails on such a client until a secret hash is
// configured through New or NewFromSource.
func Initialize(publicKey, secretKey string, opts ...Option) *Client {
	return New(Config{PublicKey: publicKey, SecretKey: secretKey}, opts...)
}

// NewFromSource creates a Client from the four named settings of src
func NewFromSource(src CredentialSource, opts ...Option) (*Client, error) {
	if src == nil {
		return nil, ierr.NewError("credential source is nil").
			WithHint("Pass a config.Settings, a *viper.Viper or a flw.MapSource").
			Mark(ierr.ErrConfig)
	}
	return New(configFromSource(src), opts...), nil
}

// SetKeys replaces the public and secret keys and returns the same client
func (c *Client) SetKeys(publicKey, secretKey string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.creds.PublicKey = publicKey
	c.creds.SecretKey = secretKey
	return c
}

// PublicKey returns the current public key, e.g. for inline checkout pages
func (c *Client) PublicKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds.PublicKey
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) credentials() transport.Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds
}

// requester snapshots the current credentials into a request helper
func (c *Client) requester(creds transport.Credentials) *transport.Requester {
	return transport.NewRequester(creds, c.baseURL, c.httpClient, c.logger)
}

// borrowed returns the credentials handed to sub-clients: keys only
func (c *Client) borrowed() transport.Credentials {
	creds := c.credentials()
	return transport.Credentials{
		PublicKey: creds.PublicKey,
		SecretKey: creds.SecretKey,
	}
}

// Payments returns a payments sub-client. It is the only sub-client that
// receives the encryption key.
func (c *Client) Payments() *payments.Client {
	creds := c.credentials()
	return payments.New(c.requester(transport.Credentials{
		PublicKey:     creds.PublicKey,
		SecretKey:     creds.SecretKey,
		EncryptionKey: creds.EncryptionKey,
	}))
}

// Banks returns a banks sub-client
func (c *Client) Banks() *banks.Client {
	return banks.New(c.requester(c.borrowed()))
}

// Transfers returns a transfers sub-client
func (c *Client) Transfers() *transfers.Client {
	return transfers.New(c.requester(c.borrowed()))
}

// Beneficiaries returns a beneficiaries sub-client
func (c *Client) Beneficiaries() *beneficiaries.Client {
	return beneficiaries.New(c.requester(c.borrowed()))
}

// Verification returns a verification sub-client
func (c *Client) Verification() *verification.Client {
	return verification.New(c.requester(c.borrowed()))
}

// Subaccounts returns a subaccounts sub-client
func (c *Client) Subaccounts() *subaccounts.Client {
	return subaccounts.New(c.requester(c.borrowed()))
}
