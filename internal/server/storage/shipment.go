package storage

import (
	"context"

	"github.com/iudanet/ajustaestoque/internal/models"
)

// ShipmentStorage defines interface for outbound shipment requisitions
type ShipmentStorage interface {
	// CreateShipment assigns the requisition code, fills item description and
	// location from products and stores the shipment in one transaction.
	// An id already stored with the same type returns the stored shipment
	// with duplicate set. Returns ErrShipmentConflict when the id belongs to
	// another type and ErrProductNotFound for unknown item codes.
	CreateShipment(ctx context.Context, shipment *models.Shipment, userID string) (*models.Shipment, bool, error)

	// GetShipment retrieves shipment with its items by id
	// Returns ErrShipmentNotFound if shipment doesn't exist
	GetShipment(ctx context.Context, id string) (*models.Shipment, error)
}
