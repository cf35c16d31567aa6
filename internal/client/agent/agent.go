package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/ajustaestoque/internal/client/assets"
	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/client/sync"
)

// ShutdownTimeout bounds graceful shutdown of the local listener
const ShutdownTimeout = 10 * time.Second

// Scheduler delivers sync events
type Scheduler interface {
	Run(ctx context.Context) error
	Trigger()
	Online() bool
}

// Agent serves the application offline-first and drains the queue
// in the background.
type Agent struct {
	assets    *assets.Manager
	scheduler Scheduler
	pending   storage.PendingStorage
	logger    *slog.Logger
	listen    string
}

// New creates an agent listening on listen (host:port)
func New(listen string, manager *assets.Manager, scheduler Scheduler, pending storage.PendingStorage, logger *slog.Logger) *Agent {
	return &Agent{
		assets:    manager,
		scheduler: scheduler,
		pending:   pending,
		logger:    logger,
		listen:    listen,
	}
}

var _ Scheduler = (*sync.Scheduler)(nil)

// InstallAssets downloads the manifest and activates it
func (a *Agent) InstallAssets(ctx context.Context) error {
	return a.assets.Upgrade(ctx)
}

// Serve runs until ctx is cancelled
func (a *Agent) Serve(ctx context.Context) error {
	if err := a.assets.Start(ctx); err != nil {
		a.logger.Warn("Asset cache unavailable, serving from network only", "error", err)
	}

	ln, err := net.Listen("tcp", a.listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.listen, err)
	}

	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Agent listening", "addr", ln.Addr().String(), "assets", a.assets.Current())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listener failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.scheduler.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		a.logger.Info("Shutting down agent")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
