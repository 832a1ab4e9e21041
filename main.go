package main

import (
	"context"
	"os"

	"guild-bot/internal/bootstrap"
	"guild-bot/internal/config"
	"guild-bot/internal/observability"
	"guild-bot/internal/server"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "failed to load configuration", err)
		os.Exit(1)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to initialize dependencies", err)
		os.Exit(1)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Error(ctx, "failed to start", err)
		if shutdownErr := srv.Shutdown(ctx); shutdownErr != nil {
			logger.Error(ctx, "shutdown after failed start", shutdownErr)
		}
		os.Exit(1)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "unclean shutdown", err)
		os.Exit(1)
	}
}
