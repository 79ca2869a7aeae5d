package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"web-larek/internal/api"
	"web-larek/internal/app"
	"web-larek/internal/config"
	"web-larek/internal/logger"
	"web-larek/internal/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func gracefulShutdown(uiServer *web.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := uiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")

	done <- true
}

func main() {
	// Load configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("api_url", cfg.API.BaseURL),
	)

	// Wire the storefront: broker, models, orchestrator, views
	client := api.NewClient(cfg.API.BaseURL, log)
	application := app.New(cfg, client, log)

	// Bootstrap the catalog; a backend failure falls back to local data
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	application.LoadCatalog(ctx)
	cancel()

	srv := web.NewServer(cfg, application, log)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Storefront listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
