package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/services"
)

func RegisterAnalyticsRoutes(r *router.Router, svc *services.Services) {
	// KPI cards
	r.GET("/api/analytics/stats", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Analytics stats retrieved successfully", svc.Analytics.Stats())
	})

	// Outcomes bar chart
	r.GET("/api/analytics/chart", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Chart retrieved successfully", svc.Analytics.Chart())
	})
}
