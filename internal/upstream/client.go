package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// Client is a thin JSON forwarder used by the passthrough routes and the
// training editors. One call per request; no retries, batching, or caching.
type Client struct {
	http    *fasthttp.Client
	timeout time.Duration
}

// NewClient creates an upstream client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http:    &fasthttp.Client{},
		timeout: timeout,
	}
}

// Get performs a GET against url and returns the upstream status and body.
// Transport failures return an error; non-2xx statuses do not.
func (c *Client) Get(ctx context.Context, url string) (int, []byte, error) {
	return c.do(ctx, fasthttp.MethodGet, url, nil)
}

// Post forwards body verbatim as JSON to url.
func (c *Client) Post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	return c.do(ctx, fasthttp.MethodPost, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	if body != nil {
		req.SetBody(body)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, fmt.Errorf("upstream %s %s: %w", method, url, err)
	}

	responseBody := make([]byte, len(resp.Body()))
	copy(responseBody, resp.Body())

	return resp.StatusCode(), responseBody, nil
}

// IsSuccess reports whether an upstream status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
