package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fasthttp/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/config"
	"github.com/streetleague/skillbuilder/internal/upstream"
)

func performRequest(h fasthttp.RequestHandler, method, uri string, body []byte) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.SetBody(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h(ctx)

	return ctx
}

func newPassthroughHandler(conf *config.Config) fasthttp.RequestHandler {
	r := router.New()
	RegisterPassthroughRoutes(r, upstream.NewClient(2*time.Second), conf)
	return r.Handler
}

func TestAttendanceReadRelaysUpstreamBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	defer srv.Close()

	h := newPassthroughHandler(&config.Config{ATTENDANCE_URL: srv.URL})
	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/attendance", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `[{"id":1}]`, string(ctx.Response.Body()))
}

func TestAttendanceReadCollapsesFailuresTo500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	for _, url := range []string{srv.URL, "http://127.0.0.1:1/unreachable"} {
		h := newPassthroughHandler(&config.Config{ATTENDANCE_URL: url})
		ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/attendance", nil)

		assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"error":"Failed to fetch attendance data"}`, string(ctx.Response.Body()))
	}
}

func TestAttendanceWriteForwardsBodyAndReturns201(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"rec_1"}`))
	}))
	defer srv.Close()

	h := newPassthroughHandler(&config.Config{ATTENDANCE_WRITE_URL: srv.URL})
	payload := []byte(`{"participant":"John"}`)
	ctx := performRequest(h, fasthttp.MethodPost, "http://test/api/attendance", payload)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"id":"rec_1"}`, string(ctx.Response.Body()))
	assert.Equal(t, payload, received)
}

func TestAttendanceWriteFailure(t *testing.T) {
	h := newPassthroughHandler(&config.Config{ATTENDANCE_WRITE_URL: "http://127.0.0.1:1/unreachable"})
	ctx := performRequest(h, fasthttp.MethodPost, "http://test/api/attendance", []byte(`{}`))

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Failed to create attendance record"}`, string(ctx.Response.Body()))
}

func TestSessionsReadReusesAttendanceErrorMessage(t *testing.T) {
	h := newPassthroughHandler(&config.Config{SESSIONS_URL: "http://127.0.0.1:1/unreachable"})
	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/sessions", nil)

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Failed to fetch attendance data"}`, string(ctx.Response.Body()))
}

func TestUserReadPropagatesUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	h := newPassthroughHandler(&config.Config{USER_URL: srv.URL})
	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/user", nil)

	assert.Equal(t, fasthttp.StatusForbidden, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Failed to fetch users"}`, string(ctx.Response.Body()))
}

func TestUserReadTransportErrorIs500(t *testing.T) {
	h := newPassthroughHandler(&config.Config{USER_URL: "http://127.0.0.1:1/unreachable"})
	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/user", nil)

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Failed to connect to backend"}`, string(ctx.Response.Body()))
}

func TestUserReadSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Alex"}]`))
	}))
	defer srv.Close()

	h := newPassthroughHandler(&config.Config{USER_URL: srv.URL})
	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/user", nil)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `[{"name":"Alex"}]`, string(ctx.Response.Body()))
}
