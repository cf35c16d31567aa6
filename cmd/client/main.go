package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/ajustaestoque/internal/client/agent"
	"github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/client/assets"
	"github.com/iudanet/ajustaestoque/internal/client/auth"
	"github.com/iudanet/ajustaestoque/internal/client/cli"
	"github.com/iudanet/ajustaestoque/internal/client/iocli"
	"github.com/iudanet/ajustaestoque/internal/client/storage/boltdb"
	"github.com/iudanet/ajustaestoque/internal/client/sync"
	"github.com/iudanet/ajustaestoque/internal/config"
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
	// Глобальные флаги (переопределяют переменные окружения)
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Stock API URL (overrides AJUSTA_API_URL)")
	dbPath := flag.String("db", "", "Path to local database (overrides AJUSTA_DB)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	io := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(io)
		return 1
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *serverURL != "" {
		cfg.API.BaseURL = *serverURL
	}
	if *dbPath != "" {
		cfg.Agent.DBPath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		return 1
	}

	logger := cfg.Log.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// База открывается при первом обращении
	store := boltdb.Lazy(cfg.Agent.DBPath)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.API.Endpoints(), cfg.API.Timeout)
	authService := auth.NewService(apiClient, store, logger)

	syncService := sync.NewService(apiClient, store, sync.NewConsoleNotifier(io), logger,
		sync.WithConcurrency(cfg.Sync.Concurrency),
		sync.WithTokenSource(authService.Token),
		sync.WithShipments(store, apiClient),
	)

	manifest := assets.DefaultManifest
	if len(cfg.Assets.Manifest) > 0 {
		manifest = cfg.Assets.Manifest
	}
	manager, err := assets.NewManager(assets.Config{
		Version:  cfg.Assets.Version,
		Origin:   cfg.Assets.Origin,
		Manifest: manifest,
	}, store, apiClient.HTTPClient(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	scheduler := sync.NewScheduler(apiClient, syncService, cfg.Sync.Interval, logger)
	localAgent := agent.New(cfg.Agent.Listen, manager, scheduler, store, logger)

	c := cli.New(io, apiClient, authService, syncService, store, store, localAgent, logger)

	// Выполняем команду
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(io)
		}
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("AjustaEstoque Agent\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
