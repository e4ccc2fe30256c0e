package inventory

import "time"

// MethodWAC identificador del método de costeo (costo promedio ponderado).
const MethodWAC = "WAC"

// FinancialSummary resumen financiero de un período valuado con WAC.
type FinancialSummary struct {
	Method string
	From   time.Time
	To     time.Time

	Opening       Bucket
	Purchases     Bucket
	ReturnsIn     Bucket
	COGS          Bucket
	WriteOff      Bucket
	Ending        Bucket
	Uncategorized Bucket
}

// BuildSummary empaqueta los totales con el método y el rango consultado.
func BuildSummary(t Totals, from, to time.Time) FinancialSummary {
	return FinancialSummary{
		Method:        MethodWAC,
		From:          from,
		To:            to,
		Opening:       t.Opening,
		Purchases:     t.Purchases,
		ReturnsIn:     t.ReturnsIn,
		COGS:          t.COGS,
		WriteOff:      t.WriteOff,
		Ending:        t.Ending,
		Uncategorized: t.Uncategorized,
	}
}
