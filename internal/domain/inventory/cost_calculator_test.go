package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-valuation/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCostCalculator(t *testing.T) {
	tests := []struct {
		name        string
		stock, cost string
		qtyIn, unit string
		expected    string
	}{
		{"sin stock previo toma el costo de entrada", "0", "0", "10", "2.5", "2.5"},
		{"mismo costo no cambia el promedio", "50", "10", "50", "10", "10"},
		{"promedio ponderado", "10", "2", "5", "3", "2.3333"},
		{"medio exacto redondea hacia arriba", "1", "0", "1", "0.0001", "0.0001"},
		{"debajo del medio redondea hacia abajo", "1", "0", "1", "0.00009", "0"},
		{"stock resultante cero devuelve cero", "0", "7", "0", "9", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.CostCalculator(dec(tt.stock), dec(tt.cost), dec(tt.qtyIn), dec(tt.unit), inventory.CostScale)
			assert.True(t, dec(tt.expected).Equal(got), "esperado %s, obtenido %s", tt.expected, got)
		})
	}
}

func TestApplyInbound_SinEstadoPrevio(t *testing.T) {
	st := inventory.ApplyInbound(nil, 10, dec("2.00"))

	assert.Equal(t, int64(10), st.Quantity)
	assert.True(t, dec("2").Equal(st.AverageCost))
	assert.True(t, dec("20").Equal(st.Value()))
}

func TestApplyInbound_RecalculaPromedio(t *testing.T) {
	prev := inventory.LedgerState{Quantity: 10, AverageCost: dec("2.00")}
	st := inventory.ApplyInbound(&prev, 5, dec("3.00"))

	assert.Equal(t, int64(15), st.Quantity)
	assert.Equal(t, "2.3333", st.AverageCost.StringFixed(4))
	// el estado previo no se modifica
	assert.Equal(t, int64(10), prev.Quantity)
}

func TestIssueAt_CostoAlPromedioVigente(t *testing.T) {
	prev := inventory.LedgerState{Quantity: 15, AverageCost: dec("2.3333")}
	st, cost := inventory.IssueAt(&prev, 8)

	assert.Equal(t, int64(7), st.Quantity)
	assert.True(t, dec("2.3333").Equal(st.AverageCost), "una salida no cambia el promedio")
	assert.Equal(t, "18.6664", cost.StringFixed(4))
}

func TestIssueAt_SobreconsumoRecortaACero(t *testing.T) {
	prev := inventory.LedgerState{Quantity: 2, AverageCost: dec("1.00")}
	st, cost := inventory.IssueAt(&prev, 5)

	assert.Equal(t, int64(0), st.Quantity, "la cantidad nunca es negativa")
	assert.True(t, dec("5").Equal(cost), "el costo se calcula sobre la cantidad completa")
	assert.True(t, dec("1").Equal(st.AverageCost))
}

func TestIssueAt_SinEstadoPrevio(t *testing.T) {
	st, cost := inventory.IssueAt(nil, 3)

	assert.Equal(t, int64(0), st.Quantity)
	assert.True(t, cost.IsZero())
}
