package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/models"
)

// HeaderCacheVersion is set on responses served from the asset cache
const HeaderCacheVersion = "X-Asset-Cache"

type targetKey struct{}

// ServeHTTP serves GET requests cache-first with network fallback.
// Other methods always go to the network. Network responses are
// returned as-is and never written to the cache.
// Absolute request URLs are only forwarded to the asset origin and
// to hosts named in the manifest; anything else gets 403.
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := m.target(r)

	if _, ok := m.allowed[originKey(target)]; !ok {
		m.logger.Warn("Refusing to proxy foreign host", "method", r.Method, "url", target.String())
		http.Error(w, "host not allowed", http.StatusForbidden)
		return
	}

	if r.Method == http.MethodGet {
		if entry := m.lookup(r.Context(), target.String()); entry != nil {
			writeCached(w, entry, m.Current())
			return
		}
	}

	ctx := context.WithValue(r.Context(), targetKey{}, target)
	m.proxy.ServeHTTP(w, r.WithContext(ctx))
}

// lookup ищет URL только в текущем bucket
func (m *Manager) lookup(ctx context.Context, key string) *models.CachedResponse {
	version := m.Current()
	if version == "" {
		return nil
	}

	entry, err := m.store.GetAsset(ctx, version, key)
	if err != nil {
		if !errors.Is(err, storage.ErrAssetNotFound) && !errors.Is(err, storage.ErrBucketNotFound) {
			m.logger.Warn("Asset cache lookup failed", "url", key, "error", err)
		}
		return nil
	}

	return entry
}

// target определяет upstream URL запроса.
// Абсолютные URL (proxy-style) используются как есть,
// остальные разрешаются относительно asset origin.
func (m *Manager) target(r *http.Request) *url.URL {
	var u *url.URL
	if r.URL.IsAbs() {
		u = r.URL
	} else {
		u = m.origin.ResolveReference(&url.URL{
			Path:     r.URL.Path,
			RawPath:  r.URL.RawPath,
			RawQuery: r.URL.RawQuery,
		})
	}

	parsed, err := url.Parse(canonical(u))
	if err != nil {
		return u
	}
	return parsed
}

// originKey возвращает scheme://host в нижнем регистре
func originKey(u *url.URL) string {
	return strings.ToLower(u.Scheme + "://" + u.Host)
}

func (m *Manager) newProxy() http.Handler {
	var transport http.RoundTripper
	if m.client != nil {
		transport = m.client.Transport
	}

	return &httputil.ReverseProxy{
		Transport: transport,
		Rewrite: func(pr *httputil.ProxyRequest) {
			target, ok := pr.In.Context().Value(targetKey{}).(*url.URL)
			if !ok {
				return
			}
			pr.Out.URL = target
			pr.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			m.logger.Warn("Network fetch failed", "method", r.Method, "url", r.URL.String(), "error", err)
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		},
	}
}

func writeCached(w http.ResponseWriter, entry *models.CachedResponse, version string) {
	header := w.Header()
	for k, values := range entry.Header {
		for _, v := range values {
			header.Add(k, v)
		}
	}
	header.Set("Content-Length", strconv.Itoa(len(entry.Body)))
	header.Set(HeaderCacheVersion, version)

	w.WriteHeader(entry.StatusCode)
	_, _ = w.Write(entry.Body)
}
