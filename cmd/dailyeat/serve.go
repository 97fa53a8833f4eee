package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dailyeat/internal/cli"
	apphttp "dailyeat/internal/http"
	"dailyeat/internal/log"
	"dailyeat/internal/middleware/ratelimit"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	Long: `Start the HTTP JSON API on PORT (default 8081).

Example:

  dailyeat serve --backend sqlite --db ./data/dailyeat.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			var opts []apphttp.Option
			if app.Config.WriteRateLimit > 0 {
				opts = append(opts, apphttp.WithWriteLimiter(ratelimit.NewLimiter(ratelimit.Config{
					RequestsPerMinute: app.Config.WriteRateLimit,
				})))
			}
			srv := apphttp.NewServer(app.Config.Addr(), app.Tracker, app.History, app.Logger, opts...)
			srv.ReadTimeout = 10 * time.Second
			srv.WriteTimeout = 35 * time.Second
			srv.IdleTimeout = 60 * time.Second
			srv.MaxHeaderBytes = 1 << 16

			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			sigCtx, done := cli.GracefulShutdown(runCtx, app.Logger, shutdownTimeout, func(ctx context.Context) {
				if err := srv.Shutdown(ctx); err != nil {
					app.Logger.Error("Server shutdown error", log.FieldError, err)
				}
			})

			g, gctx := errgroup.WithContext(sigCtx)
			g.Go(func() error {
				app.Logger.Info("Starting dailyeat server",
					log.FieldListenAddr, srv.Addr,
					log.FieldBackend, app.Config.DataBackend)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				cancel()
				<-done
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}
			app.Logger.Info("Server stopped gracefully")
			return nil
		})
	},
}
