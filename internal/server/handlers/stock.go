package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/internal/server/storage"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

// MaxAdjustmentBodySize ограничение размера тела update-stock
const MaxAdjustmentBodySize = 64 << 10

// DefaultLedgerLimit количество записей журнала по умолчанию
const DefaultLedgerLimit = 50

// StockHandler обрабатывает запросы по товарам и остаткам
type StockHandler struct {
	logger  *slog.Logger
	storage storage.StockStorage
}

// NewStockHandler создает новый handler остатков
func NewStockHandler(logger *slog.Logger, storage storage.StockStorage) *StockHandler {
	return &StockHandler{
		logger:  logger,
		storage: storage,
	}
}

// UpdateStock обрабатывает POST /estoque/update-stock
// Применяет одну корректировку. Повторная доставка того же id подтверждается
// без изменения остатка (duplicate: true).
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := GetClaims(ctx)
	if !ok {
		SendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.ReadOnly {
		h.logger.WarnContext(ctx, "read-only user tried to adjust stock", slog.String("user_id", claims.UserID))
		SendError(h.logger, w, "user is read-only", http.StatusForbidden)
		return
	}

	var adj models.StockAdjustment
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxAdjustmentBodySize)).Decode(&adj); err != nil {
		h.logger.WarnContext(ctx, "failed to decode adjustment", slog.Any("error", err))
		SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := adj.Validate(); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Старые клиенты не присылают id: такая корректировка не дедуплицируется
	if adj.ID == "" {
		adj.ID = uuid.NewString()
	} else if _, err := uuid.Parse(adj.ID); err != nil {
		SendError(h.logger, w, "id must be a UUID", http.StatusBadRequest)
		return
	}

	applied, err := h.storage.ApplyAdjustment(ctx, &adj, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrProductNotFound):
			SendError(h.logger, w, "product not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrAdjustmentConflict):
			SendError(h.logger, w, err.Error(), http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to apply adjustment", slog.Any("error", err))
			SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "stock adjusted",
		slog.String("adjustment_id", adj.ID),
		slog.String("sku", adj.SKU),
		slog.Int64("qty", adj.Quantity),
		slog.Float64("new_stock", applied.NewStock),
		slog.Bool("duplicate", applied.Duplicate),
		slog.String("user_id", claims.UserID))

	resp := api.StockUpdateResponse{
		Status:       api.StatusSuccess,
		Message:      "Estoque atualizado com sucesso.",
		AdjustmentID: adj.ID,
		SKU:          adj.SKU,
		NewStock:     applied.NewStock,
		Duplicate:    applied.Duplicate,
	}
	if applied.Duplicate {
		resp.Message = "Ajuste já aplicado anteriormente."
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ListProducts обрабатывает GET /produtos
func (h *StockHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.storage.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.ProductsResponse{Status: api.StatusSuccess, Data: products}, http.StatusOK)
}

// ListAdjustments обрабатывает GET /estoque/{sku}/ajustes?limit=N
func (h *StockHandler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku := chi.URLParam(r, "sku")

	limit := DefaultLedgerLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			SendError(h.logger, w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	if _, err := h.storage.GetProduct(ctx, sku); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			SendError(h.logger, w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	entries, err := h.storage.ListAdjustments(ctx, sku, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list adjustments", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.AdjustmentsResponse{Status: api.StatusSuccess, Data: entries}, http.StatusOK)
}
