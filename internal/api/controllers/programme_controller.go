package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/services"
)

func RegisterProgrammeRoutes(r *router.Router, svc *services.Services) {
	// List programmes
	r.GET("/api/programmes", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Programmes retrieved successfully", svc.Programme.List())
	})
}
