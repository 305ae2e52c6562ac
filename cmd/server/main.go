package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"shipyard/internal/app/server/api"
	"shipyard/internal/app/server/config"
	"shipyard/internal/infrastructure/storage"
	"shipyard/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.Open(ctx, cfg.DB.DatabaseURI, log)
	cancel()
	if err != nil {
		log.Error("failed to open storage", logger.Err(err))
		os.Exit(1)
	}
	defer store.Close()

	httpServer := &http.Server{
		Addr:         cfg.Server.RunAddress,
		Handler:      api.New(store, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("server forced to shutdown", logger.Err(err))
		}
	}()

	log.Info("starting server", slog.String("address", cfg.Server.RunAddress), slog.String("env", cfg.Env))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", logger.Err(err))
		os.Exit(1)
	}

	log.Info("server stopped")
}
