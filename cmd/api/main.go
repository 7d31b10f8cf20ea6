package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urban-bites/internal/config"
	"urban-bites/internal/handler"
	"urban-bites/internal/notify"
	"urban-bites/internal/router"
	"urban-bites/internal/storage"
	"urban-bites/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting urban-bites API server")

	// Initialize slot storage and the domain store
	slots, err := storage.NewSlots(cfg.Storage.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	st := store.New(slots, logger)
	logger.Info().
		Str("data_dir", slots.Dir()).
		Str("schema_version", storage.SchemaVersion).
		Msg("store initialized")

	// Initialize the form relay, disabled when no endpoint is configured
	var relay notify.Relay
	if cfg.Relay.Enabled() {
		relay = notify.NewHTTPRelay(cfg.Relay.URL, cfg.Relay.Timeout, logger)
		logger.Info().Str("relay_url", cfg.Relay.URL).Msg("form relay enabled")
	} else {
		relay = notify.NewDisabledRelay(logger)
		logger.Info().Msg("form relay disabled (no RELAY_URL configured)")
	}

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Menu:        handler.NewMenuHandler(st, logger),
		Cart:        handler.NewCartHandler(st, logger),
		Order:       handler.NewOrderHandler(st, logger),
		Reservation: handler.NewReservationHandler(st, relay, logger),
		Blog:        handler.NewBlogHandler(st, logger),
		Site:        handler.NewSiteHandler(st, logger),
		Contact:     handler.NewContactHandler(relay, logger),
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.New(handlers, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
