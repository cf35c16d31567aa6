package storage

import (
	"context"
	"encoding/json"

	"github.com/iudanet/ajustaestoque/internal/models"
)

//go:generate moq -out shipments_mock.go . ShipmentStorage

// ShipmentStorage defines the offline queue of shipment launches.
// It follows the same rules as PendingStorage in its own bucket.
type ShipmentStorage interface {
	// AddPendingShipment appends a payload and returns the store-assigned key
	AddPendingShipment(ctx context.Context, payload json.RawMessage) (uint64, error)

	// GetAllPendingShipments returns every queued shipment in insertion order
	GetAllPendingShipments(ctx context.Context) ([]models.PendingShipment, error)

	// DeletePendingShipment removes one record; absent keys are ignored
	DeletePendingShipment(ctx context.Context, key uint64) error

	// CountPendingShipments returns the number of queued shipments
	CountPendingShipments(ctx context.Context) (int, error)
}
