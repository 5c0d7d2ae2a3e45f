package flw

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
)

const defaultTimeout = 30 * time.Second

// Option configures a Client
type Option func(*options)

type options struct {
	baseURL    string
	httpClient Doer
	timeout    time.Duration
	logger     *zap.Logger
	comparator Comparator
}

func defaultOptions() *options {
	return &options{
		baseURL:    transport.DefaultBaseURL,
		timeout:    defaultTimeout,
		comparator: ConstantTimeCompare,
	}
}

// WithHTTPClient replaces the HTTP transport. WithTimeout is ignored when set.
func WithHTTPClient(d Doer) Option {
	return func(o *options) {
		o.httpClient = d
	}
}

// WithBaseURL points the client at a different API root (e.g. a mock server)
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger enables structured logging of outbound calls
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithComparator replaces the webhook secret comparison
func WithComparator(c Comparator) Option {
	return func(o *options) {
		if c != nil {
			o.comparator = c
		}
	}
}

func (o *options) doer() Doer {
	if o.httpClient != nil {
		return o.httpClient
	}
	return &http.Client{Timeout: o.timeout}
}
