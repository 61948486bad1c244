package controllers

import (
	"testing"

	"github.com/fasthttp/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/services"
	"github.com/streetleague/skillbuilder/internal/services/catalog"
	"github.com/streetleague/skillbuilder/internal/services/user"
)

func newDashboardHandler() fasthttp.RequestHandler {
	svc := &services.Services{
		Catalog: catalog.NewCatalogService(),
		User:    user.NewUserService(user.NewUserRepo()),
	}

	r := router.New()
	RegisterDashboardRoutes(r, svc)
	return r.Handler
}

func TestModulesEndpointCategoryFilter(t *testing.T) {
	h := newDashboardHandler()

	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/dashboard/modules?category=core", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "User Management")
	assert.NotContains(t, body, "Staff Management")

	// Missing category behaves like "all".
	ctx = performRequest(h, fasthttp.MethodGet, "http://test/api/dashboard/modules", nil)
	assert.Contains(t, string(ctx.Response.Body()), "Staff Management")
}

func TestModuleBySlugEndpoint(t *testing.T) {
	h := newDashboardHandler()

	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/modules/training-curriculum", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "Training Curriculum")

	ctx = performRequest(h, fasthttp.MethodGet, "http://test/api/modules/payroll", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestUsersEndpointFilters(t *testing.T) {
	h := newDashboardHandler()

	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/users?role=Manager", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "Sarah Williams")
	assert.NotContains(t, body, "Alex Johnson")
}

func TestPageConfigEndpointFallsBack(t *testing.T) {
	h := newDashboardHandler()

	known := performRequest(h, fasthttp.MethodGet, "http://test/api/pages/analytics", nil)
	unknown := performRequest(h, fasthttp.MethodGet, "http://test/api/pages/nonsense", nil)

	assert.Contains(t, string(known.Response.Body()), "Performance metrics")
	assert.Contains(t, string(unknown.Response.Body()), "Platform Overview")
}
