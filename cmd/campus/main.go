package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/campushq/campus-ui-api/internal/bootstrap"
	"github.com/campushq/campus-ui-api/internal/data/memory"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting campus-ui-api",
		"auth_mode", cfg.Auth.Mode,
		"addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev)

	redisClient, err := bootstrap.ConnectRedis(bootstrap.RedisOptions{
		Redis:  cfg.Redis,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	authSvc, err := bootstrap.BuildAuthService(bootstrap.AuthOptions{
		Auth:        cfg.Auth,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("build auth service: %w", err)
	}

	server := bootstrap.NewHTTPServer(bootstrap.HTTPServerOptions{
		Config: &cfg,
		Auth:   authSvc,
		Stores: memory.Seed(memory.SystemClock{}),
		Logger: logger,
	})

	return bootstrap.RunHTTPServer(ctx, server, cfg.HTTP, logger)
}
