package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roadsafety-dashboard/roadsafety/internal/app"
	"github.com/roadsafety-dashboard/roadsafety/internal/appconf"
	"github.com/roadsafety-dashboard/roadsafety/internal/dataset"
	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
	"github.com/roadsafety-dashboard/roadsafety/internal/profile"
)

func main() {
	// A missing .env file is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	cfg, dataCfg, err := parseConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, dataCfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appconf.Config, dataCfg dataset.Config, logger *slog.Logger) error {
	manager, err := dataset.InitManager(ctx, dataCfg, logger)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", dataCfg.DataPath, err)
	}

	resolver := indicator.NewResolver(indicator.WithLogger(logger))
	application := &app.Application{
		Config:        cfg,
		DatasetConfig: dataCfg,
		Logger:        logger,
		Dataset:       manager,
		Profiles:      profile.NewBuilder(manager, resolver, cfg.CacheTTL, logger),
	}
	defer application.Shutdown()

	handler, api := routes(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logging.LogOperation(logger, "starting_server",
			slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.LogOperation(logger, "shutting_down_server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
