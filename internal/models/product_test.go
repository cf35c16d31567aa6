package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    StockStatus
	}{
		{
			name:    "below minimum",
			product: Product{Stock: 2, Minimum: ptr(5), Maximum: ptr(20)},
			want:    StockStatusLow,
		},
		{
			name:    "equal to minimum is low",
			product: Product{Stock: 5, Minimum: ptr(5)},
			want:    StockStatusLow,
		},
		{
			name:    "awaiting lifts above minimum",
			product: Product{Stock: 2, Awaiting: 10, Minimum: ptr(5), Maximum: ptr(20)},
			want:    StockStatusOK,
		},
		{
			name:    "above maximum",
			product: Product{Stock: 18, Awaiting: 5, Minimum: ptr(5), Maximum: ptr(20)},
			want:    StockStatusExcess,
		},
		{
			name:    "equal to maximum is ok",
			product: Product{Stock: 20, Minimum: ptr(5), Maximum: ptr(20)},
			want:    StockStatusOK,
		},
		{
			name:    "negative stock without limits",
			product: Product{Stock: -1},
			want:    StockStatusUndefined,
		},
		{
			name:    "negative stock with minimum is low",
			product: Product{Stock: -1, Minimum: ptr(0)},
			want:    StockStatusLow,
		},
		{
			name:    "no limits",
			product: Product{Stock: 7},
			want:    StockStatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(&tt.product))
		})
	}
}

func TestParseStockStatus(t *testing.T) {
	for _, s := range []string{"todos", "baixo", "ok", "excesso", "indefinido"} {
		got, ok := ParseStockStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, StockStatus(s), got)
	}

	got, ok := ParseStockStatus("")
	assert.True(t, ok)
	assert.Equal(t, StockStatusAll, got)

	_, ok = ParseStockStatus("low")
	assert.False(t, ok)
}

func TestFilterByStatus(t *testing.T) {
	products := []Product{
		{Code: "A", Stock: 1, Minimum: ptr(5)},
		{Code: "B", Stock: 10, Minimum: ptr(5)},
		{Code: "C", Stock: 50, Maximum: ptr(20)},
	}

	assert.Len(t, FilterByStatus(products, StockStatusAll), 3)

	low := FilterByStatus(products, StockStatusLow)
	require.Len(t, low, 1)
	assert.Equal(t, "A", low[0].Code)

	excess := FilterByStatus(products, StockStatusExcess)
	require.Len(t, excess, 1)
	assert.Equal(t, "C", excess[0].Code)

	assert.Empty(t, FilterByStatus(products, StockStatusUndefined))
}

func TestProduct_UnmarshalNullLimits(t *testing.T) {
	raw := `{"codigo":"X1","descricao":"Parafuso","estoque":3,"estoque_minimo":null,"estoque_maximo":12,"aguardando_chegar":1,"vendas_ultimos_90_dias":40}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Nil(t, p.Minimum)
	require.NotNil(t, p.Maximum)
	assert.InDelta(t, 12, *p.Maximum, 0.001)
	assert.InDelta(t, 4, p.EffectiveStock(), 0.001)
}

func TestSearchProducts(t *testing.T) {
	products := []Product{
		{Code: "PAR-10", Description: "Parafuso sextavado 10mm"},
		{Code: "PAR-100", Description: "Parafuso sextavado 100mm"},
		{Code: "ARR-01", Description: "Arruela lisa"},
	}

	t.Run("exact code wins", func(t *testing.T) {
		got := SearchProducts(products, "par-10")
		require.Len(t, got, 1)
		assert.Equal(t, "PAR-10", got[0].Code)
	})

	t.Run("description substring", func(t *testing.T) {
		got := SearchProducts(products, "SEXTAVADO")
		require.Len(t, got, 2)
		assert.Equal(t, "PAR-10", got[0].Code)
		assert.Equal(t, "PAR-100", got[1].Code)
	})

	t.Run("code substring", func(t *testing.T) {
		got := SearchProducts(products, "arr")
		require.Len(t, got, 1)
		assert.Equal(t, "ARR-01", got[0].Code)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchProducts(products, "porca"))
	})

	t.Run("blank term", func(t *testing.T) {
		assert.Nil(t, SearchProducts(products, "  "))
	})
}

func TestFindProduct(t *testing.T) {
	products := []Product{{Code: "A", Stock: 3}, {Code: "B", Stock: 7}}

	p, ok := FindProduct(products, "B")
	require.True(t, ok)
	assert.Equal(t, 7.0, p.Stock)

	_, ok = FindProduct(products, "b")
	assert.False(t, ok)
}
