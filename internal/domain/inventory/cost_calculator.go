package inventory

import "github.com/shopspring/decimal"

// CostScale decimales con los que se guarda el costo promedio (redondeo half-up).
const CostScale int32 = 4

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// El resultado se redondea a scale decimales; si el stock resultante no es positivo devuelve cero.
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal, scale int32) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.DivRound(sum, scale)
}

// LedgerState posición de un ítem durante una reconstrucción: cantidad en mano y costo promedio.
// Quantity nunca es negativa.
type LedgerState struct {
	Quantity    int64
	AverageCost decimal.Decimal
}

// Value valor de la posición a costo promedio.
func (s LedgerState) Value() decimal.Decimal {
	return s.AverageCost.Mul(decimal.NewFromInt(s.Quantity))
}

// ApplyInbound suma qtyIn unidades a unitCost y recalcula el promedio. st nil equivale a 0 @ 0.
// Se usa igual para compras y devoluciones de clientes: ambas agregan stock físico con un precio.
func ApplyInbound(st *LedgerState, qtyIn int64, unitCost decimal.Decimal) LedgerState {
	var q0 int64
	c0 := decimal.Zero
	if st != nil {
		q0, c0 = st.Quantity, st.AverageCost
	}
	q1 := q0 + qtyIn
	avg := CostCalculator(decimal.NewFromInt(q0), c0, decimal.NewFromInt(qtyIn), unitCost, CostScale)
	return LedgerState{Quantity: q1, AverageCost: avg}
}

// IssueAt retira qtyOut unidades al costo promedio vigente y devuelve el costo retirado.
// La cantidad se recorta a cero (los datos de origen pueden ser inconsistentes); el promedio no cambia
// y el costo se calcula sobre qtyOut completo.
func IssueAt(st *LedgerState, qtyOut int64) (LedgerState, decimal.Decimal) {
	var q0 int64
	c0 := decimal.Zero
	if st != nil {
		q0, c0 = st.Quantity, st.AverageCost
	}
	q1 := q0 - qtyOut
	if q1 < 0 {
		q1 = 0
	}
	return LedgerState{Quantity: q1, AverageCost: c0}, c0.Mul(decimal.NewFromInt(qtyOut))
}
