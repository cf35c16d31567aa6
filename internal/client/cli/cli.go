package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/client/auth"
	"github.com/iudanet/ajustaestoque/internal/client/iocli"
	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/client/sync"
)

// ErrUnknownCommand is returned by Run for commands it does not know
var ErrUnknownCommand = errors.New("unknown command")

//go:generate moq -out agent_mock.go . Agent

// Agent runs the long-lived parts of the client
type Agent interface {
	// Serve starts the local asset listener and the sync scheduler
	Serve(ctx context.Context) error

	// InstallAssets downloads the asset manifest and activates it
	InstallAssets(ctx context.Context) error
}

type Cli struct {
	io          iocli.IO
	apiClient   httpClient.ClientAPI
	authService auth.Service
	syncService sync.Service
	pending     storage.PendingStorage
	shipments   storage.ShipmentStorage
	agent       Agent
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

func New(
	io iocli.IO,
	apiClient httpClient.ClientAPI,
	authService auth.Service,
	syncService sync.Service,
	pending storage.PendingStorage,
	shipments storage.ShipmentStorage,
	agent Agent,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		syncService: syncService,
		pending:     pending,
		shipments:   shipments,
		agent:       agent,
		logger:      logger,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// Run executes one command with its arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "adjust":
		return c.runAdjust(ctx, args)
	case "pending":
		return c.runPending(ctx)
	case "sync":
		return c.runSync(ctx)
	case "estoque":
		return c.runEstoque(ctx, args)
	case "produto":
		return c.runProduto(ctx, args)
	case "saida":
		return c.runSaida(ctx, args)
	case "serve":
		return c.agent.Serve(ctx)
	case "install-assets":
		return c.runInstallAssets(ctx)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// requireSession возвращает сессию или понятную ошибку для пользователя
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'ajustaestoque login' first")
		}
		return nil, err
	}
	if session.Expired(c.now().Unix()) {
		return nil, fmt.Errorf("session has expired. Please run 'ajustaestoque login' again")
	}
	return session, nil
}

func PrintUsage(io iocli.IO) {
	io.Println("AjustaEstoque offline agent")
	io.Println()
	io.Println("Usage:")
	io.Println("  ajustaestoque [OPTIONS] COMMAND")
	io.Println()
	io.Println("Options:")
	io.Println("  --version                    Show version information")
	io.Println("  --server URL                 Stock API URL (env AJUSTA_API_URL)")
	io.Println("  --db PATH                    Path to local database (env AJUSTA_DB)")
	io.Println()
	io.Println("Commands:")
	io.Println("  login [--email EMAIL]        Login and store the session on this device")
	io.Println("  logout                       Remove the stored session")
	io.Println("  status                       Show session and offline queue status")
	io.Println("  adjust [--offline] SKU QTY [REASON]")
	io.Println("                               Send a stock adjustment, queue it when offline")
	io.Println("  saida [--offline] [--responsavel NAME] fabrica|garantia SKU=QTY...")
	io.Println("                               Launch an outbound shipment, queue it when offline")
	io.Println("  pending                      List adjustments and shipments waiting to be synchronized")
	io.Println("  sync                         Submit queued records now")
	io.Println("  estoque [STATUS]             Stock diagnostics (todos, baixo, ok, excesso, indefinido)")
	io.Println("  produto CODE|TEXT            Search products by code or description")
	io.Println("  install-assets               Download and activate the application files")
	io.Println("  serve                        Serve the application offline-first and sync in background")
	io.Println()
	io.Println("Examples:")
	io.Println("  ajustaestoque login --email maria@loja.com.br")
	io.Println("  ajustaestoque adjust 7891234567890 -3 quebra")
	io.Println("  ajustaestoque estoque baixo")
	io.Println("  ajustaestoque produto parafuso")
	io.Println("  ajustaestoque saida garantia A1=2 B2=1")
	io.Println("  AJUSTA_LISTEN=127.0.0.1:8787 ajustaestoque serve")
}
