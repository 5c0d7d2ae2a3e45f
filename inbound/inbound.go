// Package inbound adapts incoming HTTP requests to flw.InboundRequest, for
// use with GetTransactionIDFromCallback and VerifyWebhook.
package inbound

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPRequest adapts a net/http request
type HTTPRequest struct {
	r *http.Request
}

// FromHTTP wraps r. Field follows http.Request.FormValue, so a form body
// value wins over the query string.
func FromHTTP(r *http.Request) *HTTPRequest {
	return &HTTPRequest{r: r}
}

func (h *HTTPRequest) Header(name string) string {
	if h.r == nil {
		return ""
	}
	return h.r.Header.Get(name)
}

func (h *HTTPRequest) Field(name string) string {
	if h.r == nil {
		return ""
	}
	return h.r.FormValue(name)
}

// GinRequest adapts a gin context
type GinRequest struct {
	c *gin.Context
}

// FromGin wraps c. Field reads the query string first, then the form body.
func FromGin(c *gin.Context) *GinRequest {
	return &GinRequest{c: c}
}

func (g *GinRequest) Header(name string) string {
	if g.c == nil || g.c.Request == nil {
		return ""
	}
	return g.c.GetHeader(name)
}

func (g *GinRequest) Field(name string) string {
	if g.c == nil || g.c.Request == nil {
		return ""
	}
	if v, ok := g.c.GetQuery(name); ok {
		return v
	}
	return g.c.PostForm(name)
}
