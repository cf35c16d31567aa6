package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipment() Shipment {
	return Shipment{
		ID:          "0b8f5c9e-3a57-4c4e-9d0c-6a1f2e3b4c5d",
		Kind:        ShipmentFactory,
		Responsible: "João",
		Items: []ShipmentItem{
			{Code: "PAR-10", Quantity: 5},
			{Code: "ARR-01", Quantity: 1},
		},
	}
}

func TestShipment_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Shipment)
		errMsg string
	}{
		{name: "valid", modify: func(s *Shipment) {}},
		{name: "unknown type", modify: func(s *Shipment) { s.Kind = "devolucao" }, errMsg: "shipment type"},
		{name: "no responsible", modify: func(s *Shipment) { s.Responsible = " " }, errMsg: "responsible"},
		{name: "no items", modify: func(s *Shipment) { s.Items = nil }, errMsg: "at least one item"},
		{name: "bad sku", modify: func(s *Shipment) { s.Items[0].Code = "par 10" }, errMsg: "sku"},
		{name: "zero quantity", modify: func(s *Shipment) { s.Items[1].Quantity = 0 }, errMsg: "ARR-01"},
		{name: "repeated item", modify: func(s *Shipment) { s.Items[1].Code = "PAR-10" }, errMsg: "more than once"},
		{
			name: "too many items",
			modify: func(s *Shipment) {
				s.Items = make([]ShipmentItem, 201)
				for i := range s.Items {
					s.Items[i] = ShipmentItem{Code: "SKU-" + strings.Repeat("9", i%50+1), Quantity: 1}
				}
			},
			errMsg: "must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShipment()
			tt.modify(&s)
			err := s.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestParseShipmentKind(t *testing.T) {
	kind, ok := ParseShipmentKind("garantia")
	assert.True(t, ok)
	assert.Equal(t, ShipmentWarranty, kind)

	_, ok = ParseShipmentKind("Fabrica")
	assert.False(t, ok)
}

func TestRequisitionCode(t *testing.T) {
	day := time.Date(2025, 3, 7, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "070325", RequisitionPrefix(day))
	assert.Equal(t, "070325-3", RequisitionCode(day, 3))
}

func TestDecodeShipment(t *testing.T) {
	s, err := DecodeShipment([]byte(`{"id":"x","tipo":"garantia","responsavel":"Ana","itens":[{"codigo_service":"A","quantidade":2}]}`))
	require.NoError(t, err)
	assert.Equal(t, ShipmentWarranty, s.Kind)
	require.Len(t, s.Items, 1)
	assert.Equal(t, int64(2), s.Items[0].Quantity)

	_, err = DecodeShipment([]byte(`[`))
	assert.Error(t, err)
}
