package transfers_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KriaaCompany/flw-sdk/internal/transport"
	"github.com/KriaaCompany/flw-sdk/internal/transport/transporttest"
	"github.com/KriaaCompany/flw-sdk/transfers"
)

func TestTransfers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	body := transport.Payload{"reference": "payout_01"}

	tests := []struct {
		name   string
		call   func(c *transfers.Client) (transport.Response, error)
		method string
		path   string
		query  string
	}{
		{"initiate", func(c *transfers.Client) (transport.Response, error) { return c.Initiate(ctx, body) }, http.MethodPost, "/v3/transfers", ""},
		{"initiate bulk", func(c *transfers.Client) (transport.Response, error) { return c.InitiateBulk(ctx, body) }, http.MethodPost, "/v3/bulk-transfers", ""},
		{"fetch", func(c *transfers.Client) (transport.Response, error) { return c.Fetch(ctx, "33286") }, http.MethodGet, "/v3/transfers/33286", ""},
		{"list", func(c *transfers.Client) (transport.Response, error) {
			return c.List(ctx, url.Values{"status": {"failed"}})
		}, http.MethodGet, "/v3/transfers", "status=failed"},
		{"fee", func(c *transfers.Client) (transport.Response, error) { return c.Fee(ctx, "5000", "NGN") }, http.MethodGet, "/v3/transfers/fee", "amount=5000&currency=NGN"},
		{"retry", func(c *transfers.Client) (transport.Response, error) { return c.Retry(ctx, "33286") }, http.MethodPost, "/v3/transfers/33286/retries", ""},
		{"fetch retries", func(c *transfers.Client) (transport.Response, error) { return c.FetchRetries(ctx, "33286") }, http.MethodGet, "/v3/transfers/33286/retries", ""},
		{"rates", func(c *transfers.Client) (transport.Response, error) { return c.Rates(ctx, "1000", "USD", "NGN") }, http.MethodGet, "/v3/transfers/rates", "amount=1000&destination_currency=USD&source_currency=NGN"},
		{"bulk status", func(c *transfers.Client) (transport.Response, error) { return c.BulkStatus(ctx, "1234") }, http.MethodGet, "/v3/transfers", "batch_id=1234"},
	}

	for _, tt := range tests {
		rec := transporttest.New(`{"status":"success"}`)
		c := transfers.New(transport.NewRequester(transport.Credentials{SecretKey: "sk"}, "https://api.test/v3", rec, nil))

		_, err := tt.call(c)
		require.NoError(t, err, tt.name)

		call := rec.Last()
		require.Equal(t, tt.method, call.Method, tt.name)
		require.Equal(t, tt.path, call.Path, tt.name)
		require.Equal(t, tt.query, call.Query, tt.name)
		require.Equal(t, "Bearer sk", call.Header.Get("Authorization"), tt.name)
	}
}
