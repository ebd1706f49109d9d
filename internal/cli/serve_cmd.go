package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/analytics"
	"portfolio.dev/internal/handlers"
	"portfolio.dev/internal/metrics"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, cleanup, err := app.newServer(addr)
			if err != nil {
				return err
			}
			defer cleanup()

			return runServer(ctx, srv, app.Config.ShutdownTimeout, app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.ServerAddr, "Listen address")

	return cmd
}

// newServer wires the router with the optional metrics and analytics
// backends that the configuration enables.
func (a *App) newServer(addr string) (*http.Server, func(), error) {
	deps := handlers.Deps{
		Content:         a.Content,
		DefaultLanguage: a.DefaultLanguage,
		Logger:          a.Logger,
		Now:             a.Now,
	}
	cleanup := func() {}

	if a.Config.MetricsEnabled {
		deps.Metrics = metrics.New()
	}
	if a.Config.AnalyticsDB != "" {
		store, err := analytics.Open(a.Config.AnalyticsDB, a.Config.AnalyticsSalt)
		if err != nil {
			return nil, cleanup, err
		}
		deps.Searches = store
		cleanup = func() {
			if err := store.Close(); err != nil {
				a.Logger.Warn("closing analytics store", "error", err)
			}
		}
		a.Logger.Info("search analytics enabled", "db", a.Config.AnalyticsDB)
	}

	h, err := handlers.SetupRoutes(deps)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, cleanup, nil
}

// runServer serves until ctx ends, then drains in-flight requests for at
// most timeout.
func runServer(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	logger.Info("server starting", "addr", srv.Addr)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		err := srv.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
