package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ajustaestoque/internal/client/assets"
	"github.com/iudanet/ajustaestoque/internal/client/storage/boltdb"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

type fakeScheduler struct {
	triggers atomic.Int32
	runs     atomic.Int32
	online   bool
}

func (f *fakeScheduler) Run(ctx context.Context) error {
	f.runs.Add(1)
	<-ctx.Done()
	return nil
}

func (f *fakeScheduler) Trigger() {
	f.triggers.Add(1)
}

func (f *fakeScheduler) Online() bool {
	return f.online
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testEnv struct {
	agent     *Agent
	store     *boltdb.Storage
	scheduler *fakeScheduler
	origin    *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "agent.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/appMobile/ajustaEstoqueApp.html" {
			_, _ = w.Write([]byte("<html>app</html>"))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(origin.Close)

	manager, err := assets.NewManager(assets.Config{
		Version:  "v1",
		Origin:   origin.URL + "/appMobile/",
		Manifest: assets.Manifest{"./ajustaEstoqueApp.html"},
	}, store, http.DefaultClient, testLogger())
	require.NoError(t, err)

	scheduler := &fakeScheduler{online: true}
	return &testEnv{
		agent:     New("127.0.0.1:0", manager, scheduler, store, testLogger()),
		store:     store,
		scheduler: scheduler,
		origin:    origin,
	}
}

func TestRouter_Enqueue(t *testing.T) {
	env := newTestEnv(t)
	router := env.agent.Router()

	body := `{"id":"a-1","sku":"A1","qty":-2}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/_agent/adjustments", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1), resp.Key)
	assert.True(t, resp.Online)
	assert.Equal(t, int32(1), env.scheduler.triggers.Load())

	records, err := env.store.GetAllPending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, body, string(records[0].Payload))
}

func TestRouter_Enqueue_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "not json", body: "sku=A1", status: http.StatusBadRequest},
		{name: "zero qty", body: `{"sku":"A1","qty":0}`, status: http.StatusBadRequest},
		{name: "too large", body: `{"sku":"A1","qty":1,"reason":"` + strings.Repeat("x", MaxPayloadSize) + `"}`, status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := httptest.NewRecorder()
			env.agent.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/_agent/adjustments", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, rec.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, api.StatusError, resp.Status)

			count, err := env.store.CountPending(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
			assert.Zero(t, env.scheduler.triggers.Load())
		})
	}
}

func TestRouter_PendingAndSync(t *testing.T) {
	env := newTestEnv(t)
	router := env.agent.Router()
	_, err := env.store.AddPending(context.Background(), json.RawMessage(`{"sku":"A1","qty":1}`))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_agent/pending", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pending)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/_agent/sync", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, int32(1), env.scheduler.triggers.Load())
}

func TestRouter_ServesAssets(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.agent.InstallAssets(context.Background()))
	env.origin.Close()

	rec := httptest.NewRecorder()
	env.agent.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appMobile/ajustaEstoqueApp.html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>app</html>", rec.Body.String())
	assert.Equal(t, "v1", rec.Header().Get(assets.HeaderCacheVersion))

	rec = httptest.NewRecorder()
	env.agent.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_agent/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.Assets)
}

func TestAgent_Serve_StopsOnCancel(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- env.agent.Serve(ctx)
	}()

	require.Eventually(t, func() bool {
		return env.scheduler.runs.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "v1", env.agent.assets.Current())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("agent did not stop")
	}
}

func TestAgent_Serve_ListenError(t *testing.T) {
	env := newTestEnv(t)
	env.agent.listen = "256.0.0.1:bad"

	err := env.agent.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
