package storage

import (
	"context"
	"time"

	"github.com/iudanet/ajustaestoque/internal/models"
)

// AppliedAdjustment результат применения корректировки к остатку
type AppliedAdjustment struct {
	AppliedAt time.Time // время записи в журнал
	NewStock  float64   // остаток товара после корректировки
	Duplicate bool      // корректировка уже была в журнале, остаток не менялся
}

// StockStorage defines interface for products and the adjustment ledger
type StockStorage interface {
	// UpsertProduct creates a product or replaces its attributes
	UpsertProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves product by code
	// Returns ErrProductNotFound if product doesn't exist
	GetProduct(ctx context.Context, code string) (*models.Product, error)

	// ListProducts returns all products ordered by code
	ListProducts(ctx context.Context) ([]models.Product, error)

	// ApplyAdjustment applies the delta to the product stock and appends it to
	// the ledger in one transaction. An id already present in the ledger is
	// reported as Duplicate without touching the stock.
	// Returns ErrProductNotFound for unknown sku
	ApplyAdjustment(ctx context.Context, adj *models.StockAdjustment, userID string) (*AppliedAdjustment, error)

	// ListAdjustments returns ledger entries for a product, newest first
	ListAdjustments(ctx context.Context, sku string, limit int) ([]models.LedgerEntry, error)
}
