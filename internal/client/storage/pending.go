package storage

import (
	"context"
	"encoding/json"

	"github.com/iudanet/ajustaestoque/internal/models"
)

//go:generate moq -out pending_mock.go . PendingStorage

// PendingStorage defines the offline adjustment queue.
// Every method is a single store transaction: a record is never partially
// written and never duplicated.
type PendingStorage interface {
	// AddPending appends a payload and returns the store-assigned key
	AddPending(ctx context.Context, payload json.RawMessage) (uint64, error)

	// GetAllPending returns every queued record as (key, payload) pairs
	// in insertion order
	GetAllPending(ctx context.Context) ([]models.PendingAdjustment, error)

	// DeletePending removes one record by key.
	// Deleting an absent key is not an error.
	DeletePending(ctx context.Context, key uint64) error

	// CountPending returns the number of queued records
	CountPending(ctx context.Context) (int, error)
}
