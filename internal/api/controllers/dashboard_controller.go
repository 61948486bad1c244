package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/perrors"
	"github.com/streetleague/skillbuilder/internal/services"
	"github.com/streetleague/skillbuilder/internal/services/catalog"
	"github.com/streetleague/skillbuilder/internal/services/user"
)

func RegisterDashboardRoutes(r *router.Router, svc *services.Services) {
	// Sidebar navigation
	r.GET("/api/dashboard/nav", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Navigation retrieved successfully", svc.Catalog.Nav())
	})

	// Dashboard stat cards
	r.GET("/api/dashboard/stats", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Stats retrieved successfully", svc.Catalog.DashboardStats())
	})

	// Module tiles, optionally filtered by category
	r.GET("/api/dashboard/modules", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		category := queryParam(ctx, "category")
		if category == "" {
			category = catalog.CategoryAll
		}

		writeOK(ctx, stdCtx, "Modules retrieved successfully", svc.Catalog.Modules(category))
	})

	// Module detail by slug
	r.GET("/api/modules/{slug}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		slug, err := pathParam(ctx, "slug")
		if err != nil {
			writeError(ctx, stdCtx, "Slug is required", perrors.NewErrInvalidRequest("Slug is required", err))
			return
		}

		module, err := svc.Catalog.ModuleBySlug(slug)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrModuleNotFound):
				writeError(ctx, stdCtx, "Module not found", perrors.NewErrNotFound("Module not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get module", perrors.NewErrInternalServerError("Failed to get module", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Module retrieved successfully", module)
	})

	// Page header config, unknown ids fall back to the dashboard config
	r.GET("/api/pages/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParam(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "ID is required", perrors.NewErrInvalidRequest("ID is required", err))
			return
		}

		writeOK(ctx, stdCtx, "Page config retrieved successfully", svc.Catalog.PageConfig(id))
	})

	// User directory with optional filters
	r.GET("/api/users", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		filter := user.Filter{
			Search: queryParam(ctx, "search"),
			Role:   queryParam(ctx, "role"),
			Status: queryParam(ctx, "status"),
		}

		writeOK(ctx, stdCtx, "Users retrieved successfully", svc.User.List(filter))
	})
}
