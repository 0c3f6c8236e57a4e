package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campushq/campus-ui-api/config"
	"github.com/campushq/campus-ui-api/internal/data/memory"
	httpx "github.com/campushq/campus-ui-api/internal/http"
	"github.com/campushq/campus-ui-api/internal/service"
)

// HTTPServerOptions contains configuration for the HTTP server.
type HTTPServerOptions struct {
	Config *config.AppConfig
	Auth   *service.AuthService
	Stores *memory.Stores
	Logger *slog.Logger
}

// NewHTTPServer builds the server with the full router and middleware
// stack. The caller owns starting and stopping it.
func NewHTTPServer(opts HTTPServerOptions) *http.Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := httpx.NewRouter(httpx.RouterOptions{
		Auth:         opts.Auth,
		Stores:       opts.Stores,
		CookieDomain: opts.Config.HTTP.CookieDomain,
		Logger:       logger,
	})

	addr := opts.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RunHTTPServer serves until ctx is canceled or SIGINT/SIGTERM arrives,
// then shuts down gracefully within the configured timeout.
func RunHTTPServer(ctx context.Context, server *http.Server, cfg config.HTTPConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	return group.Wait()
}
