package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/perrors"
	"github.com/streetleague/skillbuilder/internal/services"
	"github.com/streetleague/skillbuilder/internal/services/settings"
)

func RegisterSettingsRoutes(r *router.Router, svc *services.Services) {
	// Full settings page payload
	r.GET("/api/settings", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Settings retrieved successfully", svc.Settings.Get())
	})

	// Update notification toggles
	r.PUT("/api/settings/notifications", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body settings.Notifications
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		writeOK(ctx, stdCtx, "Notifications updated successfully", svc.Settings.UpdateNotifications(body))
	})
}
