package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/internal/server/storage"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

// ShipmentHandler обрабатывает запуск заявок на отгрузку
type ShipmentHandler struct {
	logger  *slog.Logger
	storage storage.ShipmentStorage
}

// NewShipmentHandler создает новый handler отгрузок
func NewShipmentHandler(logger *slog.Logger, storage storage.ShipmentStorage) *ShipmentHandler {
	return &ShipmentHandler{
		logger:  logger,
		storage: storage,
	}
}

// Launch возвращает handler POST /saida-fabrica и /saida-garantia.
// Тип заявки задается путем; сервер назначает номер requisicao и
// заполняет описание и место хранения позиций. Остаток не меняется.
func (h *ShipmentHandler) Launch(kind models.ShipmentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := GetClaims(ctx)
		if !ok {
			SendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.ReadOnly {
			h.logger.WarnContext(ctx, "read-only user tried to launch shipment", slog.String("user_id", claims.UserID))
			SendError(h.logger, w, "user is read-only", http.StatusForbidden)
			return
		}

		var shipment models.Shipment
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxAdjustmentBodySize)).Decode(&shipment); err != nil {
			h.logger.WarnContext(ctx, "failed to decode shipment", slog.Any("error", err))
			SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
			return
		}

		switch shipment.Kind {
		case "":
			shipment.Kind = kind
		case kind:
		default:
			SendError(h.logger, w, "tipo does not match endpoint", http.StatusBadRequest)
			return
		}

		if err := shipment.Validate(); err != nil {
			SendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}

		if shipment.ID == "" {
			shipment.ID = uuid.NewString()
		} else if _, err := uuid.Parse(shipment.ID); err != nil {
			SendError(h.logger, w, "id must be a UUID", http.StatusBadRequest)
			return
		}

		created, duplicate, err := h.storage.CreateShipment(ctx, &shipment, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrProductNotFound):
				SendError(h.logger, w, err.Error(), http.StatusNotFound)
			case errors.Is(err, storage.ErrShipmentConflict):
				SendError(h.logger, w, err.Error(), http.StatusConflict)
			default:
				h.logger.ErrorContext(ctx, "failed to create shipment", slog.Any("error", err))
				SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		h.logger.InfoContext(ctx, "shipment launched",
			slog.String("shipment_id", created.ID),
			slog.String("tipo", string(created.Kind)),
			slog.String("requisicao", created.Requisition),
			slog.Int("items", len(created.Items)),
			slog.Bool("duplicate", duplicate),
			slog.String("user_id", claims.UserID))

		resp := api.ShipmentResponse{
			Status:    api.StatusSuccess,
			Message:   "Requisição " + created.Requisition + " lançada com sucesso.",
			Data:      created,
			Duplicate: duplicate,
		}
		status := http.StatusCreated
		if duplicate {
			resp.Message = "Requisição já lançada anteriormente."
			status = http.StatusOK
		}

		sendJSON(h.logger, w, resp, status)
	}
}
