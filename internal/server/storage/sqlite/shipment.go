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

// queryer общий интерфейс *sql.DB и *sql.Tx для чтения
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// CreateShipment stores the shipment and its items in one transaction
func (s *Storage) CreateShipment(ctx context.Context, shipment *models.Shipment, userID string) (*models.Shipment, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Повторная доставка из офлайн-очереди возвращает уже принятую заявку
	var existingKind string
	err = tx.QueryRowContext(ctx, `SELECT tipo FROM shipments WHERE id = ?`, shipment.ID).Scan(&existingKind)
	switch {
	case err == nil:
		if existingKind != string(shipment.Kind) {
			return nil, false, storage.ErrShipmentConflict
		}
		stored, err := loadShipment(ctx, tx, shipment.ID)
		if err != nil {
			return nil, false, err
		}
		return stored, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, fmt.Errorf("failed to check shipment: %w", err)
	}

	now := time.Now().UTC()
	createdAt := shipment.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	// Номер заявки: дата создания на устройстве и порядковый номер за этот день
	prefix := models.RequisitionPrefix(createdAt)
	var sameDay int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shipments WHERE requisicao LIKE ?`, prefix+"-%",
	).Scan(&sameDay); err != nil {
		return nil, false, fmt.Errorf("failed to count shipments: %w", err)
	}

	stored := &models.Shipment{
		CreatedAt:   createdAt.UTC(),
		ID:          shipment.ID,
		Kind:        shipment.Kind,
		Requisition: models.RequisitionCode(createdAt, sameDay+1),
		Responsible: shipment.Responsible,
		User:        userID,
		Items:       make([]models.ShipmentItem, 0, len(shipment.Items)),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shipments (id, tipo, requisicao, responsavel, user_id, created_at, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, stored.ID, stored.Kind, stored.Requisition, stored.Responsible, userID, stored.CreatedAt, now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert shipment: %w", err)
	}

	for i, item := range shipment.Items {
		var description, location string
		err := tx.QueryRowContext(ctx,
			`SELECT descricao, localizacao FROM products WHERE codigo = ?`, item.Code,
		).Scan(&description, &location)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, false, fmt.Errorf("%w: %s", storage.ErrProductNotFound, item.Code)
			}
			return nil, false, fmt.Errorf("failed to get product: %w", err)
		}

		stockItem := models.ShipmentItem{
			Code:        item.Code,
			Description: description,
			Location:    location,
			Status:      models.ShipmentStatusPending,
			Quantity:    item.Quantity,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO shipment_items (shipment_id, posicao, codigo, descricao, localizacao, quantidade, situacao)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, stored.ID, i, stockItem.Code, stockItem.Description, stockItem.Location, stockItem.Quantity, stockItem.Status)
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert shipment item: %w", err)
		}
		stored.Items = append(stored.Items, stockItem)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stored, false, nil
}

// GetShipment retrieves shipment with its items by id
func (s *Storage) GetShipment(ctx context.Context, id string) (*models.Shipment, error) {
	return loadShipment(ctx, s.db, id)
}

func loadShipment(ctx context.Context, q queryer, id string) (*models.Shipment, error) {
	var sh models.Shipment
	err := q.QueryRowContext(ctx, `
		SELECT id, tipo, requisicao, responsavel, user_id, created_at
		FROM shipments WHERE id = ?
	`, id).Scan(&sh.ID, &sh.Kind, &sh.Requisition, &sh.Responsible, &sh.User, &sh.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT codigo, descricao, localizacao, quantidade, situacao
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY posicao
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipment items: %w", err)
	}
	defer rows.Close()

	sh.Items = make([]models.ShipmentItem, 0)
	for rows.Next() {
		var item models.ShipmentItem
		if err := rows.Scan(&item.Code, &item.Description, &item.Location, &item.Quantity, &item.Status); err != nil {
			return nil, fmt.Errorf("failed to scan shipment item: %w", err)
		}
		sh.Items = append(sh.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment items: %w", err)
	}

	return &sh, nil
}
