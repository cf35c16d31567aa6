package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/ajustaestoque/internal/validation"
)

// PendingAdjustment представляет одну запись офлайн-очереди.
// Payload непрозрачен для очереди: это JSON, который будет отправлен
// на update endpoint без изменений.
type PendingAdjustment struct {
	Payload json.RawMessage `json:"payload"` // Payload тело запроса как есть
	Key     uint64          `json:"key"`     // Key ключ, назначенный хранилищем (порядок вставки)
}

// StockAdjustment представляет изменение остатка, которое приложение
// отправляет на сервер (или ставит в очередь при отсутствии сети).
type StockAdjustment struct {
	CreatedAt time.Time `json:"created_at"`       // CreatedAt время создания на устройстве
	ID        string    `json:"id"`               // ID UUID корректировки
	SKU       string    `json:"sku"`              // SKU код товара
	Reason    string    `json:"reason,omitempty"` // Reason причина корректировки
	User      string    `json:"user,omitempty"`   // User код пользователя, сделавшего корректировку
	Quantity  int64     `json:"qty"`              // Quantity дельта остатка (может быть отрицательной)
}

// Validate проверяет обязательные поля корректировки
func (a *StockAdjustment) Validate() error {
	if err := validation.ValidateSKU(a.SKU); err != nil {
		return err
	}
	if err := validation.ValidateQuantity(a.Quantity); err != nil {
		return err
	}
	return validation.ValidateReason(a.Reason)
}

// DecodeAdjustment пытается разобрать payload из очереди как StockAdjustment.
// Очередь хранит произвольный JSON, поэтому ошибка здесь не фатальна для вызывающего.
func DecodeAdjustment(payload json.RawMessage) (*StockAdjustment, error) {
	var adj StockAdjustment
	if err := json.Unmarshal(payload, &adj); err != nil {
		return nil, fmt.Errorf("failed to decode adjustment: %w", err)
	}
	return &adj, nil
}

// LedgerEntry строка серверного журнала примененных корректировок
type LedgerEntry struct {
	AppliedAt time.Time `json:"applied_at"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Reason    string    `json:"reason,omitempty"`
	UserID    string    `json:"user_id"`
	Quantity  int64     `json:"qty"`
	NewStock  float64   `json:"novo_estoque"`
}
