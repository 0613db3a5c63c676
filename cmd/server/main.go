package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dept-026/membership-api/internal/bootstrap"
	"github.com/dept-026/membership-api/internal/config"
	"github.com/dept-026/membership-api/internal/router"
	"github.com/dept-026/membership-api/internal/shared/database"
	"github.com/dept-026/membership-api/internal/shared/logger"
	"github.com/dept-026/membership-api/internal/shared/mailer"
)

func main() {
	env := parseFlags()

	logger.Setup(env)
	slog.Info("server initialization started", "env", env)

	if err := run(env); err != nil {
		slog.Error("server initialization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("configuration loaded")

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			slog.Error("store shutdown failed", "error", err)
		}
	}()

	srv := setupServer(cfg, db)

	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB) *bootstrap.Server {
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	mail := mailer.New(cfg.SMTP)

	router.Setup(ginEngine, cfg, db, mail)

	slog.Info("server setup complete", "env", cfg.App.Env)

	return bootstrap.New(cfg, ginEngine)
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("shutting down server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced server shutdown: %w", err)
		}
		return nil
	}
}
