package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "guild-bot/internal/api"
	"guild-bot/internal/bootstrap"
	"guild-bot/internal/config"
	"guild-bot/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// Server runs the bot process: event loop, gateway session, maintenance jobs and
// the admin HTTP API.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger

	stopJobs context.CancelFunc
	jobsDone chan struct{}
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	if os.Getenv("GO_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowAllOrigins = true

	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	rootRouter := s.router.Group("/")
	api := apisetup.New(rootRouter, s.deps.AuthHandler, s.deps.AdminHandler)
	api.RegisterRoutes()
}

// Start brings the bot online. A gateway login that exhausts its retries is
// returned and must end the process.
func (s *Server) Start(ctx context.Context) error {
	if err := s.deps.Loop.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event loop: %w", err)
	}

	resumed := s.deps.Giveaways.Resume(ctx)
	s.logger.Info(ctx, "giveaway timers resumed", observability.Field{Key: "count", Value: resumed})

	jobsCtx, cancel := context.WithCancel(ctx)
	s.stopJobs = cancel
	s.jobsDone = make(chan struct{})
	go func() {
		defer close(s.jobsDone)
		_ = s.deps.Scheduler.Start(jobsCtx)
	}()

	if err := s.deps.Discord.Start(ctx); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Server.Port),
		Handler: s.router,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Admin API starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "admin API failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down...")
	return s.Shutdown(ctx)
}

// Shutdown stops intake, drains queued events and flushes state. Pending debounced
// saves are replaced by one final synchronous save.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	var errs []error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("admin API forced to shutdown: %w", err))
		}
	}
	if err := s.deps.Discord.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close gateway session: %w", err))
	}

	if s.stopJobs != nil {
		s.stopJobs()
		<-s.jobsDone
	}
	s.deps.Giveaways.Stop()

	if err := s.deps.Loop.Drain(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("drain event loop: %w", err))
	}
	if err := s.deps.Gateway.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("final save: %w", err))
	}

	s.deps.Cleanup()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info(ctx, "Bot exited gracefully")
	return nil
}
