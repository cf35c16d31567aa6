package models

import "strings"

// StockStatus классификация остатка товара
type StockStatus string

const (
	StockStatusAll       StockStatus = "todos"      // фильтр: все товары
	StockStatusLow       StockStatus = "baixo"      // остаток ниже минимума
	StockStatusOK        StockStatus = "ok"         // остаток в норме
	StockStatusExcess    StockStatus = "excesso"    // остаток выше максимума
	StockStatusUndefined StockStatus = "indefinido" // отрицательный остаток
)

// Product представляет товар, как его возвращает products endpoint
type Product struct {
	Minimum         *float64 `json:"estoque_minimo"`         // Minimum минимальный остаток (nil = не задан)
	Maximum         *float64 `json:"estoque_maximo"`         // Maximum максимальный остаток (nil = не задан)
	Code            string   `json:"codigo"`                 // Code код товара (SKU)
	Description     string   `json:"descricao"`              // Description наименование
	Location        string   `json:"localizacao,omitempty"`  // Location место хранения на складе
	Stock           float64  `json:"estoque"`                // Stock текущий остаток
	Awaiting        float64  `json:"aguardando_chegar"`      // Awaiting количество в открытых заказах
	SalesLast90Days float64  `json:"vendas_ultimos_90_dias"` // SalesLast90Days продажи за 90 дней
}

// EffectiveStock возвращает остаток с учетом ожидаемых поступлений
func (p *Product) EffectiveStock() float64 {
	return p.Stock + p.Awaiting
}

// Classify определяет статус остатка товара.
// Порядок проверок важен: минимум, затем максимум, затем отрицательный остаток.
func Classify(p *Product) StockStatus {
	effective := p.EffectiveStock()

	switch {
	case p.Minimum != nil && effective <= *p.Minimum:
		return StockStatusLow
	case p.Maximum != nil && effective > *p.Maximum:
		return StockStatusExcess
	case p.Stock < 0:
		return StockStatusUndefined
	default:
		return StockStatusOK
	}
}

// ParseStockStatus проверяет значение фильтра статуса
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StockStatusAll, StockStatusLow, StockStatusOK, StockStatusExcess, StockStatusUndefined:
		return StockStatus(s), true
	case "":
		return StockStatusAll, true
	default:
		return "", false
	}
}

// FilterByStatus возвращает товары с указанным статусом.
// StockStatusAll возвращает все товары.
func FilterByStatus(products []Product, status StockStatus) []Product {
	if status == StockStatusAll {
		return products
	}
	result := make([]Product, 0, len(products))
	for i := range products {
		if Classify(&products[i]) == status {
			result = append(result, products[i])
		}
	}
	return result
}

// SearchProducts ищет товары по коду или наименованию без учета регистра.
// Точное совпадение кода возвращается единственным результатом.
func SearchProducts(products []Product, term string) []Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	for i := range products {
		if strings.EqualFold(products[i].Code, term) {
			return []Product{products[i]}
		}
	}

	needle := strings.ToLower(term)
	result := make([]Product, 0)
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Code), needle) ||
			strings.Contains(strings.ToLower(products[i].Description), needle) {
			result = append(result, products[i])
		}
	}
	return result
}

// FindProduct возвращает товар с указанным кодом
func FindProduct(products []Product, code string) (*Product, bool) {
	for i := range products {
		if products[i].Code == code {
			return &products[i], true
		}
	}
	return nil, false
}
