// Package cli wires configuration, storage and services together for the
// dailyeat commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dailyeat/internal/backend"
	"dailyeat/internal/cache"
	"dailyeat/internal/config"
	"dailyeat/internal/core"
	"dailyeat/internal/dailylog"
	"dailyeat/internal/history"
	"dailyeat/internal/log"
	"dailyeat/internal/tracker"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger and makes it the slog default.
// Logs go to stderr so that stdout stays free for command output and the MCP
// stdio transport.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Component: log.ComponentApp,
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: log.ParseLevel(level),
		}),
	})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App is the set of services shared by every front end.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Store   *dailylog.Store
	Tracker *tracker.Tracker
	History *history.Service

	backend *backend.BackendResult
	caches  *cache.Manager
}

// Bootstrap opens the configured backend and builds the store, tracker and
// history services. Close releases them.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	res, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, err
	}

	store := dailylog.NewStore(res.Backend, logger)
	tr, err := tracker.New(core.DefaultCatalog(), store, cfg.TargetCalories, tracker.WithLogger(logger))
	if err != nil {
		res.Close()
		return nil, fmt.Errorf("create tracker: %w", err)
	}
	hist := history.NewService(store, history.Config{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		Logger:    logger,
	})
	store.OnSave(hist.Invalidate)

	caches := cache.NewManager(logger)
	caches.Register(hist.Cache())
	caches.StartCleanup(cfg.CacheTTL)

	logger.InfoContext(ctx, "Application initialized",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, bcfg.Type,
		log.FieldTarget, cfg.TargetCalories)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Tracker: tr,
		History: hist,
		backend: res,
		caches:  caches,
	}, nil
}

// Close stops background work and closes the backend.
func (a *App) Close() error {
	a.caches.Stop()
	if err := a.backend.Close(); err != nil {
		a.Logger.Error("Failed to close backend", log.FieldError, err)
		return err
	}
	a.Logger.Debug("Application closed", log.FieldOperation, log.OpShutdown)
	return nil
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM. After the
// signal, cleanup runs with a context bounded by timeout.
func GracefulShutdown(parent context.Context, logger *log.Logger, timeout time.Duration, cleanup func(context.Context)) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
		case <-parent.Done():
		}
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()
		if cleanup != nil {
			cleanup(shutdownCtx)
		}
		if shutdownCtx.Err() != nil {
			logger.Warn("Shutdown timeout reached")
			return
		}
		logger.Info("Shutdown complete")
	}()

	return ctx, done
}
