package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fauzanr/voicegate/internal/config"
	"github.com/fauzanr/voicegate/internal/database"
	"github.com/fauzanr/voicegate/internal/handler"
	"github.com/fauzanr/voicegate/internal/logger"
	"github.com/fauzanr/voicegate/internal/middleware"
	"github.com/fauzanr/voicegate/internal/repository"
	"github.com/fauzanr/voicegate/internal/router"
	"github.com/fauzanr/voicegate/internal/server"
	"github.com/fauzanr/voicegate/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; a bare zerolog writer is the best we can do.
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("Failed to load configuration.")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("Failed to initialize logger service.")
	}

	log := logger.New(cfg, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Migrations run before the pool is opened so the server never
	// serves against a stale schema.
	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations.")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server.")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services.")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Server failed.")
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed.")
	} else {
		log.Info().Msg("Server stopped cleanly.")
	}
}
