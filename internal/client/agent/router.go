package agent

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

// MaxPayloadSize limits one queued adjustment body
const MaxPayloadSize = 64 << 10

// Router returns the local HTTP handler: the agent API under /_agent
// and the cache-first asset handler for everything else.
func (a *Agent) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/_agent", func(r chi.Router) {
		r.Get("/health", a.handleHealth)
		r.Get("/pending", a.handlePendingCount)
		r.Post("/adjustments", a.handleEnqueue)
		r.Post("/sync", a.handleSync)
	})

	r.Handle("/*", a.assets)
	return r
}

type statusResponse struct {
	Status  string `json:"status"`
	Assets  string `json:"assets,omitempty"`
	Pending int    `json:"pending"`
	Key     uint64 `json:"key,omitempty"`
	Online  bool   `json:"online"`
}

func (a *Agent) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := a.pending.CountPending(r.Context())
	if err != nil {
		a.logger.Error("Failed to count pending adjustments", "error", err)
		a.sendError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	a.sendJSON(w, http.StatusOK, statusResponse{
		Status:  api.StatusSuccess,
		Assets:  a.assets.Current(),
		Pending: count,
		Online:  a.scheduler.Online(),
	})
}

func (a *Agent) handlePendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := a.pending.CountPending(r.Context())
	if err != nil {
		a.logger.Error("Failed to count pending adjustments", "error", err)
		a.sendError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	a.sendJSON(w, http.StatusOK, statusResponse{Status: api.StatusSuccess, Pending: count, Online: a.scheduler.Online()})
}

// handleEnqueue ставит тело запроса в очередь как есть и запрашивает синхронизацию
func (a *Agent) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxPayloadSize+1))
	if err != nil {
		a.sendError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(body) > MaxPayloadSize {
		a.sendError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	adj, err := models.DecodeAdjustment(body)
	if err != nil {
		a.sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := adj.Validate(); err != nil {
		a.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	key, err := a.pending.AddPending(r.Context(), json.RawMessage(body))
	if err != nil {
		a.logger.Error("Failed to queue adjustment", "error", err)
		a.sendError(w, http.StatusInternalServerError, "failed to queue adjustment")
		return
	}

	a.logger.Info("Adjustment queued", "key", key, "sku", adj.SKU)
	a.scheduler.Trigger()

	a.sendJSON(w, http.StatusAccepted, statusResponse{Status: api.StatusSuccess, Key: key, Online: a.scheduler.Online()})
}

func (a *Agent) handleSync(w http.ResponseWriter, r *http.Request) {
	a.scheduler.Trigger()
	a.sendJSON(w, http.StatusAccepted, statusResponse{Status: api.StatusSuccess, Online: a.scheduler.Online()})
}

func (a *Agent) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to encode response", "error", err)
	}
}

func (a *Agent) sendError(w http.ResponseWriter, status int, message string) {
	a.sendJSON(w, status, api.ErrorResponse{Status: api.StatusError, Error: message})
}
