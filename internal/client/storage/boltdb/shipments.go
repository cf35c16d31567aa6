package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/ajustaestoque/internal/models"
)

// AddPendingShipment appends a shipment payload to its offline queue
func (s *Storage) AddPendingShipment(ctx context.Context, payload json.RawMessage) (uint64, error) {
	key, err := s.appendRecord(bucketShipments, payload)
	if err != nil {
		return 0, fmt.Errorf("add pending shipment failed: %w", err)
	}
	return key, nil
}

// GetAllPendingShipments returns queued shipments in insertion order
func (s *Storage) GetAllPendingShipments(ctx context.Context) ([]models.PendingShipment, error) {
	var records []models.PendingShipment

	err := s.readRecords(bucketShipments, func(key uint64, payload json.RawMessage) {
		records = append(records, models.PendingShipment{Key: key, Payload: payload})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending shipments: %w", err)
	}

	return records, nil
}

// DeletePendingShipment removes one queued shipment
func (s *Storage) DeletePendingShipment(ctx context.Context, key uint64) error {
	if err := s.deleteRecord(bucketShipments, key); err != nil {
		return fmt.Errorf("delete pending shipment failed: %w", err)
	}
	return nil
}

// CountPendingShipments returns the number of queued shipments
func (s *Storage) CountPendingShipments(ctx context.Context) (int, error) {
	count, err := s.countRecords(bucketShipments)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending shipments: %w", err)
	}
	return count, nil
}
