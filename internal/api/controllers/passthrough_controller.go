package controllers

import (
	"log/slog"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/config"
	"github.com/streetleague/skillbuilder/internal/upstream"
)

// RegisterPassthroughRoutes wires the raw relay endpoints. These bypass the
// standard response envelope on purpose: callers receive the upstream body
// verbatim, and failures collapse to a fixed generic error shape.
func RegisterPassthroughRoutes(r *router.Router, client *upstream.Client, conf *config.Config) {
	// Attendance read
	r.GET("/api/attendance", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		status, body, err := client.Get(stdCtx, conf.ATTENDANCE_URL)
		if err != nil || !upstream.IsSuccess(status) {
			slog.ErrorContext(stdCtx, "Attendance upstream failed", slog.Int("status", status), slog.Any("error", err))
			writeRawError(ctx, fasthttp.StatusInternalServerError, "Failed to fetch attendance data")
			return
		}

		writeRaw(ctx, fasthttp.StatusOK, body)
	})

	// Attendance write
	r.POST("/api/attendance", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		status, body, err := client.Post(stdCtx, conf.ATTENDANCE_WRITE_URL, ctx.PostBody())
		if err != nil || !upstream.IsSuccess(status) {
			slog.ErrorContext(stdCtx, "Attendance write upstream failed", slog.Int("status", status), slog.Any("error", err))
			writeRawError(ctx, fasthttp.StatusInternalServerError, "Failed to create attendance record")
			return
		}

		writeRaw(ctx, fasthttp.StatusCreated, body)
	})

	// Sessions read. The failure message matches the attendance read route,
	// which the consumers already handle.
	r.GET("/api/sessions", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		status, body, err := client.Get(stdCtx, conf.SESSIONS_URL)
		if err != nil || !upstream.IsSuccess(status) {
			slog.ErrorContext(stdCtx, "Sessions upstream failed", slog.Int("status", status), slog.Any("error", err))
			writeRawError(ctx, fasthttp.StatusInternalServerError, "Failed to fetch attendance data")
			return
		}

		writeRaw(ctx, fasthttp.StatusOK, body)
	})

	// User read. Unlike the other relays this one propagates the upstream
	// status code instead of collapsing it.
	r.GET("/api/user", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		status, body, err := client.Get(stdCtx, conf.USER_URL)
		if err != nil {
			slog.ErrorContext(stdCtx, "User upstream unreachable", slog.Any("error", err))
			writeRawError(ctx, fasthttp.StatusInternalServerError, "Failed to connect to backend")
			return
		}

		if !upstream.IsSuccess(status) {
			slog.ErrorContext(stdCtx, "User upstream failed", slog.Int("status", status))
			writeRawError(ctx, status, "Failed to fetch users")
			return
		}

		writeRaw(ctx, fasthttp.StatusOK, body)
	})
}

func writeRaw(ctx *fasthttp.RequestCtx, status int, body []byte) {
	ctx.Response.Header.Set("content-type", "application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeRawError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.Response.Header.Set("content-type", "application/json")
	ctx.SetStatusCode(status)
	ctx.SetBodyString(`{"error":"` + message + `"}`)
}
