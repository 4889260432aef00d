package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherdash.app/internal/app"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(ctx)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded",
		"port", cfg.Server.Port,
		"favorites_backend", cfg.Favorites.Backend.String(),
		"cache", cfg.Cache.Type.String(),
		"api_key_configured", cfg.Weather.HasAPIKey())

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Failed to start application", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		os.Exit(1)
	}
}
