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
	"path/filepath"
	"syscall"

	"github.com/iudanet/ajustaestoque/internal/config"
	"github.com/iudanet/ajustaestoque/internal/server/handlers"
	"github.com/iudanet/ajustaestoque/internal/server/router"
	"github.com/iudanet/ajustaestoque/internal/server/seed"
	"github.com/iudanet/ajustaestoque/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "", "Path to SQLite database (overrides SERVER_DB_PATH)")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		return 1
	}

	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		return 1
	}
	return 0
}

func serve(ctx context.Context, cfg *config.Server, logger *slog.Logger) error {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if cfg.Auth.SeedAdminEmail != "" {
		if _, err := seed.Admin(ctx, store, cfg.Auth.SeedAdminEmail, cfg.Auth.SeedAdminPassword, logger); err != nil {
			return err
		}
	}
	if cfg.Database.SeedProducts != "" {
		if _, err := seed.Products(ctx, store, cfg.Database.SeedProducts, logger); err != nil {
			return err
		}
	}

	jwtCfg := handlers.JWTConfig{
		Secret:   []byte(cfg.Auth.JWTSecret),
		TokenTTL: cfg.Auth.TokenTTL,
	}

	r := router.New(router.Config{
		Logger:         logger,
		AuthHandler:    handlers.NewAuthHandler(logger, store, jwtCfg),
		StockHandler:   handlers.NewStockHandler(logger, store),
		Shipments:      handlers.NewShipmentHandler(logger, store),
		HealthHandler:  handlers.NewHealthHandler(logger, store, Version),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		JWT:            jwtCfg,
		RateLimit: router.RateLimit{
			Requests:      cfg.RateLimit.Requests,
			LoginRequests: cfg.RateLimit.LoginRequests,
			Window:        cfg.RateLimit.Window,
		},
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("stock server listening", slog.String("addr", srv.Addr), slog.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func printVersion() {
	fmt.Printf("AjustaEstoque Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
