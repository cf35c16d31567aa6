package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/ajustaestoque/internal/validation"
)

// ShipmentKind тип отгрузки со склада
type ShipmentKind string

const (
	ShipmentFactory  ShipmentKind = "fabrica"  // отгрузка на фабрику
	ShipmentWarranty ShipmentKind = "garantia" // отгрузка по гарантии
)

// ShipmentStatusPending статус позиции сразу после запуска отгрузки
const ShipmentStatusPending = "Pendente"

// ParseShipmentKind проверяет тип отгрузки
func ParseShipmentKind(s string) (ShipmentKind, bool) {
	switch ShipmentKind(s) {
	case ShipmentFactory, ShipmentWarranty:
		return ShipmentKind(s), true
	default:
		return "", false
	}
}

// PendingShipment запись офлайн-очереди отгрузок
type PendingShipment struct {
	Payload json.RawMessage `json:"payload"` // Payload тело запроса как есть
	Key     uint64          `json:"key"`     // Key ключ, назначенный хранилищем
}

// ShipmentItem позиция отгрузки
type ShipmentItem struct {
	Code        string `json:"codigo_service"`        // Code код товара
	Description string `json:"descricao,omitempty"`   // Description заполняется сервером
	Location    string `json:"localizacao,omitempty"` // Location заполняется сервером
	Status      string `json:"situacao,omitempty"`    // Status "Pendente" после запуска
	Quantity    int64  `json:"quantidade"`            // Quantity количество к отгрузке
}

// Shipment заявка на отгрузку товаров (requisição de saída)
type Shipment struct {
	CreatedAt   time.Time      `json:"created_at"`           // CreatedAt время создания на устройстве
	ID          string         `json:"id"`                   // ID UUID отгрузки
	Kind        ShipmentKind   `json:"tipo"`                 // Kind fabrica или garantia
	Requisition string         `json:"requisicao,omitempty"` // Requisition код ddmmaa-N, назначает сервер
	Responsible string         `json:"responsavel"`          // Responsible ответственный
	User        string         `json:"user,omitempty"`       // User код пользователя
	Items       []ShipmentItem `json:"itens"`                // Items позиции
}

// Validate проверяет отгрузку перед отправкой и при приеме сервером
func (s *Shipment) Validate() error {
	if _, ok := ParseShipmentKind(string(s.Kind)); !ok {
		return fmt.Errorf("shipment type must be %q or %q", ShipmentFactory, ShipmentWarranty)
	}
	if err := validation.ValidateResponsible(s.Responsible); err != nil {
		return err
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("shipment must have at least one item")
	}
	if len(s.Items) > validation.MaxShipmentItems {
		return fmt.Errorf("shipment must not exceed %d items", validation.MaxShipmentItems)
	}

	seen := make(map[string]struct{}, len(s.Items))
	for _, item := range s.Items {
		if err := validation.ValidateSKU(item.Code); err != nil {
			return err
		}
		if err := validation.ValidateShipmentQuantity(item.Quantity); err != nil {
			return fmt.Errorf("%s: %w", item.Code, err)
		}
		if _, dup := seen[item.Code]; dup {
			return fmt.Errorf("item %s is listed more than once", item.Code)
		}
		seen[item.Code] = struct{}{}
	}
	return nil
}

// DecodeShipment разбирает payload из очереди отгрузок
func DecodeShipment(payload json.RawMessage) (*Shipment, error) {
	var s Shipment
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("failed to decode shipment: %w", err)
	}
	return &s, nil
}

// RequisitionPrefix возвращает дату заявки в формате ddmmaa
func RequisitionPrefix(day time.Time) string {
	return day.Format("020106")
}

// RequisitionCode формирует код заявки: дата ddmmaa и порядковый номер за день
func RequisitionCode(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%d", RequisitionPrefix(day), seq)
}
