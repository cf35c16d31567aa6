package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/ajustaestoque/internal/models"
)

// AddPending appends a payload to the offline queue
func (s *Storage) AddPending(ctx context.Context, payload json.RawMessage) (uint64, error) {
	key, err := s.appendRecord(bucketPending, payload)
	if err != nil {
		return 0, fmt.Errorf("add pending transaction failed: %w", err)
	}
	return key, nil
}

// GetAllPending returns every queued record in insertion order.
// Keys and payloads are read by the same cursor in one read transaction,
// so each pair is correlated by construction.
func (s *Storage) GetAllPending(ctx context.Context) ([]models.PendingAdjustment, error) {
	var records []models.PendingAdjustment

	err := s.readRecords(bucketPending, func(key uint64, payload json.RawMessage) {
		records = append(records, models.PendingAdjustment{Key: key, Payload: payload})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending adjustments: %w", err)
	}

	return records, nil
}

// DeletePending removes one record; absent keys are ignored
func (s *Storage) DeletePending(ctx context.Context, key uint64) error {
	if err := s.deleteRecord(bucketPending, key); err != nil {
		return fmt.Errorf("delete pending transaction failed: %w", err)
	}
	return nil
}

// CountPending returns the number of queued records
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	count, err := s.countRecords(bucketPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending adjustments: %w", err)
	}
	return count, nil
}
