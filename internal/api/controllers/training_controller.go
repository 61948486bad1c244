package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/perrors"
	"github.com/streetleague/skillbuilder/internal/services"
	"github.com/streetleague/skillbuilder/internal/services/training"
)

func RegisterTrainingRoutes(r *router.Router, svc *services.Services) {
	// Resolve a section segment to its canonical id
	r.GET("/api/training/{section}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		segment, err := pathParam(ctx, "section")
		if err != nil {
			writeError(ctx, stdCtx, "Section is required", perrors.NewErrInvalidRequest("Section is required", err))
			return
		}

		section, err := svc.Training.ResolveSection(segment)
		if err != nil {
			writeError(ctx, stdCtx, "Training section not found", perrors.NewErrNotFound("Training section not found", err))
			return
		}

		writeOK(ctx, stdCtx, "Training section resolved successfully", map[string]string{"section": section})
	})

	// Session editor rows
	r.GET("/api/training/sessions/rows", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		rows, err := svc.Training.ListSessions(stdCtx)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list sessions", perrors.New(perrors.ErrCodeBadGateway, "Failed to list sessions", err))
			return
		}

		writeOK(ctx, stdCtx, "Sessions retrieved successfully", rows)
	})

	// Submit a new session
	r.POST("/api/training/sessions", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body training.AddSessionRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		ack, err := svc.Training.AddSession(&body)
		if err != nil {
			writeError(ctx, stdCtx, err.Error(), perrors.NewErrInvalidRequest(err.Error(), err))
			return
		}

		writeOK(ctx, stdCtx, "Session submitted successfully", ack)
	})

	// Attendance editor rows
	r.GET("/api/training/attendance/rows", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		rows, err := svc.Training.ListAttendance(stdCtx)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list attendance", perrors.New(perrors.ErrCodeBadGateway, "Failed to list attendance", err))
			return
		}

		writeOK(ctx, stdCtx, "Attendance retrieved successfully", rows)
	})

	// Submit a single attendee
	r.POST("/api/training/attendance/attendees", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body training.AddAttendeeRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		ack, err := svc.Training.AddAttendee(&body)
		if err != nil {
			writeError(ctx, stdCtx, err.Error(), perrors.NewErrInvalidRequest(err.Error(), err))
			return
		}

		writeOK(ctx, stdCtx, "Attendee submitted successfully", ack)
	})

	// Pick list for the multi-select attendee modal
	r.GET("/api/training/attendance/available", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Available attendees retrieved successfully", svc.Training.AvailableAttendees())
	})

	// Mark attendance for selected participants
	r.POST("/api/training/attendance/mark", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body training.MarkAttendanceRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		ack, err := svc.Training.MarkAttendance(&body)
		if err != nil {
			writeError(ctx, stdCtx, err.Error(), perrors.NewErrInvalidRequest(err.Error(), err))
			return
		}

		writeOK(ctx, stdCtx, "Attendance marked successfully", ack)
	})

	// Tutorial video gallery
	r.GET("/api/training/tutorials/videos", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Videos retrieved successfully", svc.Training.Videos())
	})
}
