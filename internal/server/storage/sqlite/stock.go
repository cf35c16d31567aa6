package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/internal/server/storage"
)

const productColumns = `codigo, descricao, localizacao, estoque, estoque_minimo, estoque_maximo, aguardando_chegar, vendas_ultimos_90_dias`

// UpsertProduct creates a product or replaces its attributes
func (s *Storage) UpsertProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(codigo) DO UPDATE SET
			descricao = excluded.descricao,
			localizacao = excluded.localizacao,
			estoque = excluded.estoque,
			estoque_minimo = excluded.estoque_minimo,
			estoque_maximo = excluded.estoque_maximo,
			aguardando_chegar = excluded.aguardando_chegar,
			vendas_ultimos_90_dias = excluded.vendas_ultimos_90_dias,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		product.Code,
		product.Description,
		product.Location,
		product.Stock,
		product.Minimum,
		product.Maximum,
		product.Awaiting,
		product.SalesLast90Days,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	return nil
}

// GetProduct retrieves product by code
func (s *Storage) GetProduct(ctx context.Context, code string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE codigo = ?`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

// ListProducts returns all products ordered by code
func (s *Storage) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY codigo`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// ApplyAdjustment applies the delta and appends the ledger row in one transaction
func (s *Storage) ApplyAdjustment(ctx context.Context, adj *models.StockAdjustment, userID string) (*storage.AppliedAdjustment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Повторная доставка той же корректировки (например, из офлайн-очереди)
	// не должна менять остаток второй раз
	var (
		existingSKU string
		applied     storage.AppliedAdjustment
	)
	err = tx.QueryRowContext(ctx,
		`SELECT sku, novo_estoque, applied_at FROM adjustments WHERE id = ?`, adj.ID,
	).Scan(&existingSKU, &applied.NewStock, &applied.AppliedAt)
	switch {
	case err == nil:
		if existingSKU != adj.SKU {
			return nil, storage.ErrAdjustmentConflict
		}
		applied.Duplicate = true
		return &applied, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to check adjustment: %w", err)
	}

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx,
		`UPDATE products SET estoque = estoque + ?, updated_at = ? WHERE codigo = ?`,
		adj.Quantity, now, adj.SKU,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, storage.ErrProductNotFound
	}

	if err := tx.QueryRowContext(ctx,
		`SELECT estoque FROM products WHERE codigo = ?`, adj.SKU,
	).Scan(&applied.NewStock); err != nil {
		return nil, fmt.Errorf("failed to read stock: %w", err)
	}

	createdAt := adj.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO adjustments (id, sku, qty, reason, user_id, novo_estoque, created_at, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, adj.ID, adj.SKU, adj.Quantity, adj.Reason, userID, applied.NewStock, createdAt.UTC(), now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert adjustment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	applied.AppliedAt = now
	return &applied, nil
}

// ListAdjustments returns ledger entries for a product, newest first
func (s *Storage) ListAdjustments(ctx context.Context, sku string, limit int) ([]models.LedgerEntry, error) {
	if limit <= 0 {
		limit = -1 // без ограничения
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sku, qty, reason, user_id, novo_estoque, created_at, applied_at
		FROM adjustments
		WHERE sku = ?
		ORDER BY rowid DESC
		LIMIT ?
	`, sku, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.SKU, &e.Quantity, &e.Reason, &e.UserID, &e.NewStock, &e.CreatedAt, &e.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adjustments: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p                models.Product
		minimum, maximum sql.NullFloat64
	)

	if err := row.Scan(
		&p.Code,
		&p.Description,
		&p.Location,
		&p.Stock,
		&minimum,
		&maximum,
		&p.Awaiting,
		&p.SalesLast90Days,
	); err != nil {
		return nil, err
	}

	if minimum.Valid {
		p.Minimum = &minimum.Float64
	}
	if maximum.Valid {
		p.Maximum = &maximum.Float64
	}

	return &p, nil
}
