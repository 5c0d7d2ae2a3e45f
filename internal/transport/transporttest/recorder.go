// Package transporttest provides a recording transport.Doer for tests.
package transporttest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

// Call is one request seen by a Recorder
type Call struct {
	Method string
	URL    string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// JSONBody decodes the captured body into a map
func (c Call) JSONBody() map[string]interface{} {
	if len(c.Body) == 0 {
		return nil
	}
	var out map[string]interface{}
	_ = json.Unmarshal(c.Body, &out)
	return out
}

// Recorder records requests and answers each with a fixed status and body
type Recorder struct {
	StatusCode int
	Body       string
	Err        error

	mu    sync.Mutex
	calls []Call
}

// New returns a Recorder that answers 200 with body
func New(body string) *Recorder {
	return &Recorder{StatusCode: http.StatusOK, Body: body}
}

// Do implements transport.Doer
func (r *Recorder) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	r.mu.Lock()
	r.calls = append(r.calls, Call{
		Method: req.Method,
		URL:    req.URL.String(),
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Header: req.Header.Clone(),
		Body:   body,
	})
	r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	return &http.Response{
		StatusCode: r.StatusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(r.Body)),
		Request:    req,
	}, nil
}

// Calls returns the recorded requests
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent request
func (r *Recorder) Last() Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}
	}
	return r.calls[len(r.calls)-1]
}
