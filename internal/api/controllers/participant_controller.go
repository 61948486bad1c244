package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/services"
)

func RegisterParticipantRoutes(r *router.Router, svc *services.Services) {
	// List participants
	r.GET("/api/participants", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Participants retrieved successfully", svc.Participant.List())
	})
}
