package api

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/config"
	"github.com/streetleague/skillbuilder/internal/services"
)

// Server is the admin HTTP server.
type Server struct {
	srv      *fasthttp.Server
	addr     string
	conf     *config.Config
	services *services.Services
}

// New wires the services and routes into a fasthttp server.
func New(conf *config.Config) *Server {
	s := &Server{
		srv:      &fasthttp.Server{},
		addr:     conf.HTTP_ADDR,
		conf:     conf,
		services: services.NewServices(conf),
	}

	s.srv.Handler = s.initRoutes()

	return s
}

// Start the rest server
func (s *Server) Start() {
	slog.Info("Starting REST server...")
	go func() {
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			slog.Error("Server shutdown", slog.Any("error", err))
		}
	}()
	slog.Info("REST server started!", slog.String("addr", s.addr))

	// Listen for OS interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Block till we receive an interrupt
	<-c
	slog.Info("Received interrupt...")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s.shutdown(ctx)
}

// shutdown shuts down the rest server
func (s *Server) shutdown(_ context.Context) {
	slog.Info("Gracefully shutting down REST server...")
	if err := s.srv.Shutdown(); err != nil {
		slog.Error("Failed to shutdown the server", slog.Any("error", err))
	}
	slog.Info("REST server shutdown!")
}
