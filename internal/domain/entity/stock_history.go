package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockHistory fila persistida del historial de movimientos (auditoría).
type StockHistory struct {
	ID             string
	ItemID         string
	SupplierID     string
	QuantityChange int64
	UnitCost       *decimal.Decimal
	Reason         StockChangeReason
	OccurredAt     time.Time
	CreatedBy      string
}
