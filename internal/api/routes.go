package api

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/propagation"

	"github.com/streetleague/skillbuilder/internal/api/controllers"
)

var tracePropagator = propagation.TraceContext{}

func (s *Server) initRoutes() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/api/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		_, _ = ctx.Write([]byte("OK"))
	})

	controllers.RegisterAuthRoutes(r, s.services)
	controllers.RegisterDashboardRoutes(r, s.services)
	controllers.RegisterParticipantRoutes(r, s.services)
	controllers.RegisterProgrammeRoutes(r, s.services)
	controllers.RegisterAnalyticsRoutes(r, s.services)
	controllers.RegisterSettingsRoutes(r, s.services)
	controllers.RegisterTrainingRoutes(r, s.services)
	controllers.RegisterPassthroughRoutes(r, s.services.Upstream, s.conf)

	return s.withMiddlewares(r.Handler)
}

func (s *Server) withMiddlewares(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		applyCORS(ctx)
		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		start := time.Now()
		uri := ctx.URI()
		requestURI := string(uri.FullURI())
		slog.Info("Started processing", slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI))

		h := http.Header{}
		ctx.Request.Header.VisitAll(func(k, v []byte) {
			h[string(k)] = []string{string(v)}
		})
		traceCtx := tracePropagator.Extract(ctx, propagation.HeaderCarrier(h))
		ctx.SetUserValue("traceCtx", traceCtx)

		next(ctx)

		slog.Info("Finished processing", slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI), slog.Duration("duration", time.Since(start)))
	}
}

func applyCORS(ctx *fasthttp.RequestCtx) {
	headers := &ctx.Response.Header
	headers.Set("Access-Control-Allow-Origin", string(ctx.Request.Header.Peek("Origin")))
	headers.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS,PATCH")
	headers.Set("Access-Control-Allow-Headers", os.Getenv("ALLOWED_HEADERS"))
	headers.Set("Access-Control-Allow-Credentials", "true")
}
