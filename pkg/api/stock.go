package api

import "github.com/iudanet/ajustaestoque/internal/models"

// StockUpdateResponse представляет ответ update-stock endpoint
type StockUpdateResponse struct {
	Status       string  `json:"status"`              // "success" или "error"
	Message      string  `json:"message,omitempty"`   // сообщение сервера
	AdjustmentID string  `json:"adjustment_id"`       // ID примененной корректировки
	SKU          string  `json:"sku"`                 // код товара
	NewStock     float64 `json:"novo_estoque"`        // остаток после применения
	Duplicate    bool    `json:"duplicate,omitempty"` // корректировка уже была применена ранее
}

// ProductsResponse представляет ответ products endpoint
type ProductsResponse struct {
	Status string           `json:"status"` // "success" или "error"
	Data   []models.Product `json:"data"`   // список товаров
}

// AdjustmentsResponse представляет журнал корректировок товара
type AdjustmentsResponse struct {
	Status string               `json:"status"` // "success" или "error"
	Data   []models.LedgerEntry `json:"data"`   // записи журнала, новые первыми
}

// ShipmentResponse представляет ответ saida-fabrica / saida-garantia endpoints
type ShipmentResponse struct {
	Data      *models.Shipment `json:"data,omitempty"`      // заявка с кодом requisicao и заполненными позициями
	Status    string           `json:"status"`              // "success" или "error"
	Message   string           `json:"message,omitempty"`   // сообщение сервера
	Duplicate bool             `json:"duplicate,omitempty"` // заявка с этим id уже была принята
}
