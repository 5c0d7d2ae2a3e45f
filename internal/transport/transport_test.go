package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
	"github.com/KriaaCompany/flw-sdk/internal/transport"
	"github.com/KriaaCompany/flw-sdk/internal/transport/transporttest"
)

func newRequester(rec *transporttest.Recorder) *transport.Requester {
	return transport.NewRequester(
		transport.Credentials{PublicKey: "FLWPUBK-test", SecretKey: "FLWSECK-test"},
		"https://api.example.com/v3/",
		rec,
		nil,
	)
}

func TestRequesterPost(t *testing.T) {
	t.Parallel()

	rec := transporttest.New(`{"status":"success","message":"Hosted Link","data":{"link":"https://checkout"}}`)
	r := newRequester(rec)

	resp, err := r.Post(context.Background(), "/payments", transport.Payload{"tx_ref": "ref-1", "amount": 100})
	require.NoError(t, err)
	require.Equal(t, "success", resp.Status())
	require.Equal(t, "Hosted Link", resp.Message())
	require.Equal(t, "https://checkout", resp.Data()["link"])

	call := rec.Last()
	require.Equal(t, http.MethodPost, call.Method)
	require.Equal(t, "https://api.example.com/v3/payments", call.URL)
	require.Equal(t, "Bearer FLWSECK-test", call.Header.Get("Authorization"))
	require.Equal(t, "application/json", call.Header.Get("Content-Type"))
	require.JSONEq(t, `{"amount":100,"tx_ref":"ref-1"}`, string(call.Body))
}

func TestRequesterGetWithQuery(t *testing.T) {
	t.Parallel()

	rec := transporttest.New(`{"status":"success"}`)
	r := newRequester(rec)

	_, err := r.Get(context.Background(), "/transfers", url.Values{"page": {"2"}})
	require.NoError(t, err)

	call := rec.Last()
	require.Equal(t, http.MethodGet, call.Method)
	require.Equal(t, "/v3/transfers", call.Path)
	require.Equal(t, "page=2", call.Query)
	require.Empty(t, call.Body)
	require.Empty(t, call.Header.Get("Content-Type"))
}

func TestRequesterNilBodyPostSendsEmptyObject(t *testing.T) {
	t.Parallel()

	rec := transporttest.New(`{}`)
	r := newRequester(rec)

	_, err := r.Post(context.Background(), "/transfers/1/retries", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(rec.Last().Body))
}

func TestRequesterProviderErrorIsNotAnError(t *testing.T) {
	t.Parallel()

	rec := transporttest.New(`{"status":"error","message":"Invalid authorization key","data":null}`)
	rec.StatusCode = http.StatusUnauthorized
	r := newRequester(rec)

	resp, err := r.Get(context.Background(), "/transactions/1/verify", nil)
	require.NoError(t, err)
	require.Equal(t, "error", resp.Status())
	require.False(t, resp.Succeeded())
	require.Nil(t, resp.Data())
}

func TestRequesterTransportErrorIsUnmodified(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	rec := transporttest.New("")
	rec.Err = boom
	r := newRequester(rec)

	_, err := r.Get(context.Background(), "/banks/NG", nil)
	require.Same(t, boom, err)
}

func TestRequesterDecodeFailures(t *testing.T) {
	t.Parallel()

	t.Run("empty body", func(t *testing.T) {
		rec := transporttest.New("  ")
		resp, err := newRequester(rec).Get(context.Background(), "/banks/NG", nil)
		require.NoError(t, err)
		require.Nil(t, resp)
	})

	t.Run("html body", func(t *testing.T) {
		rec := transporttest.New("<html>Bad Gateway</html>")
		rec.StatusCode = http.StatusBadGateway
		_, err := newRequester(rec).Get(context.Background(), "/banks/NG", nil)
		require.Error(t, err)
		require.True(t, ierr.IsDecode(err))
	})
}

func TestRequesterUnencodablePayload(t *testing.T) {
	t.Parallel()

	rec := transporttest.New(`{}`)
	_, err := newRequester(rec).Post(context.Background(), "/payments", transport.Payload{"ch": make(chan int)})
	require.Error(t, err)
	require.True(t, ierr.Is(err, ierr.ErrEncode))
	require.Empty(t, rec.Calls())
}

func TestResponseKeepsNumbersExact(t *testing.T) {
	t.Parallel()

	rec := transporttest.New(`{"status":"success","data":{"id":9007199254740993,"amount":100.50}}`)
	resp, err := newRequester(rec).Get(context.Background(), "/transactions/1/verify", nil)
	require.NoError(t, err)

	id, ok := transport.String(resp.Data()["id"])
	require.True(t, ok)
	require.Equal(t, "9007199254740993", id)

	var typed struct {
		Data struct {
			ID json.Number `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, resp.Decode(&typed))
	require.Equal(t, json.Number("9007199254740993"), typed.Data.ID)
}

func TestPathEscapesSegments(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/tokens/flw-t1nf%2F0", transport.Path("/tokens/%s", "flw-t1nf/0"))
	require.Equal(t, "/transactions/123/verify", transport.Path("/transactions/%s/verify", "123"))
}
