package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/models"
)

// Config describes one deployable asset set
type Config struct {
	Version  string   // bucket tag
	Origin   string   // base URL for relative manifest entries and local requests
	Manifest Manifest // files to pre-cache
}

// Manager keeps a versioned copy of the application's static files
// and serves them cache-first.
type Manager struct {
	store    storage.AssetStorage
	client   *http.Client
	logger   *slog.Logger
	origin   *url.URL
	current  atomic.Pointer[string]
	proxy    http.Handler
	allowed  map[string]struct{} // scheme://host, куда разрешено проксировать
	version  string
	manifest Manifest
}

// NewManager creates an asset cache manager.
// Nothing is active until Activate is called.
func NewManager(cfg Config, store storage.AssetStorage, client *http.Client, logger *slog.Logger) (*Manager, error) {
	if cfg.Version == "" {
		return nil, fmt.Errorf("asset cache version cannot be empty")
	}

	origin, err := url.Parse(cfg.Origin)
	if err != nil {
		return nil, fmt.Errorf("invalid asset origin: %w", err)
	}
	if !origin.IsAbs() {
		return nil, fmt.Errorf("asset origin must be an absolute URL, got %q", cfg.Origin)
	}

	urls, err := cfg.Manifest.Resolve(origin)
	if err != nil {
		return nil, err
	}
	allowed := map[string]struct{}{originKey(origin): {}}
	for _, raw := range urls {
		if u, err := url.Parse(raw); err == nil {
			allowed[originKey(u)] = struct{}{}
		}
	}

	m := &Manager{
		store:    store,
		client:   client,
		logger:   logger,
		origin:   origin,
		allowed:  allowed,
		version:  cfg.Version,
		manifest: cfg.Manifest,
	}
	m.proxy = m.newProxy()

	return m, nil
}

// Version returns the tag this manager installs
func (m *Manager) Version() string {
	return m.version
}

// Current returns the active bucket tag, or "" before activation
func (m *Manager) Current() string {
	if v := m.current.Load(); v != nil {
		return *v
	}
	return ""
}

// Install fetches every manifest entry and commits them as the bucket
// named by the manager's version. Any failed fetch aborts the install
// and nothing is written, so a failed install never leaves a partial bucket.
func (m *Manager) Install(ctx context.Context) error {
	urls, err := m.manifest.Resolve(m.origin)
	if err != nil {
		return err
	}

	m.logger.Info("Installing asset cache", "version", m.version, "entries", len(urls))

	entries := make([]*models.CachedResponse, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		g.Go(func() error {
			entry, err := m.fetch(gctx, u)
			if err != nil {
				return fmt.Errorf("failed to cache %s: %w", u, err)
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		m.logger.Error("Asset cache install failed", "version", m.version, "error", err)
		return err
	}

	if err := m.store.PutBucket(ctx, m.version, entries); err != nil {
		m.logger.Error("Failed to store asset bucket", "version", m.version, "error", err)
		return fmt.Errorf("failed to store asset bucket: %w", err)
	}

	m.logger.Info("Asset cache installed", "version", m.version)
	return nil
}

// Activate deletes every bucket except the manager's version and then
// makes that version current, so all subsequent requests use it.
// The version is claimed even if sweeping a stale bucket fails.
func (m *Manager) Activate(ctx context.Context) error {
	names, err := m.store.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list asset buckets: %w", err)
	}

	var errs []error
	for _, name := range names {
		if name == m.version {
			continue
		}
		if err := m.store.DeleteBucket(ctx, name); err != nil {
			m.logger.Warn("Failed to delete stale asset bucket", "bucket", name, "error", err)
			errs = append(errs, fmt.Errorf("bucket %s: %w", name, err))
			continue
		}
		m.logger.Info("Deleted stale asset bucket", "bucket", name)
	}

	version := m.version
	m.current.Store(&version)
	m.logger.Info("Asset cache activated", "version", version)

	return errors.Join(errs...)
}

// Upgrade installs the manifest and, on success, activates it at once
// without waiting for existing consumers.
func (m *Manager) Upgrade(ctx context.Context) error {
	if err := m.Install(ctx); err != nil {
		return err
	}
	return m.Activate(ctx)
}

// fetch загружает один URL манифеста; non-2xx считается ошибкой
func (m *Manager) fetch(ctx context.Context, u string) (*models.CachedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	return &models.CachedResponse{
		URL:        u,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
		FetchedAt:  time.Now().UTC(),
	}, nil
}

// Start prepares the cache at agent startup. It upgrades to the configured
// version; when that fails (for example offline) but the same version was
// installed earlier, the stored copy is activated instead. Otherwise the
// install error is returned and requests fall through to the network.
func (m *Manager) Start(ctx context.Context) error {
	installErr := m.Upgrade(ctx)
	if installErr == nil {
		return nil
	}

	names, err := m.store.ListBuckets(ctx)
	if err != nil {
		return errors.Join(installErr, fmt.Errorf("failed to list asset buckets: %w", err))
	}
	if !slices.Contains(names, m.version) {
		return installErr
	}

	m.logger.Warn("Asset install failed, using stored copy", "version", m.version, "error", installErr)
	return m.Activate(ctx)
}
