package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/deppfellow/go-todo/internal/logger"
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/deppfellow/go-todo/internal/router"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/deppfellow/go-todo/internal/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	return cmd
}

// serve wires config, logging, storage and HTTP, then blocks until ctx is
// cancelled or the server fails.
func serve(ctx context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return errors.Wrap(err, "failed to initialize New Relic")
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return errors.Wrap(err, "failed to initialize repositories")
	}

	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return errors.Wrap(err, "failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}

	log.Info().Msg("server exited")
	return nil
}
