package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockChangeReason motivo de un movimiento de stock. Determina el bucket financiero del evento.
type StockChangeReason string

// Motivos conocidos. Cualquier otro valor se trata como salida por venta (COGS).
const (
	ReasonInitialStock       StockChangeReason = "INITIAL_STOCK"
	ReasonManualUpdate       StockChangeReason = "MANUAL_UPDATE"
	ReasonPriceChange        StockChangeReason = "PRICE_CHANGE"
	ReasonSold               StockChangeReason = "SOLD"
	ReasonScrapped           StockChangeReason = "SCRAPPED"
	ReasonDestroyed          StockChangeReason = "DESTROYED"
	ReasonDamaged            StockChangeReason = "DAMAGED"
	ReasonExpired            StockChangeReason = "EXPIRED"
	ReasonLost               StockChangeReason = "LOST"
	ReasonReturnedToSupplier StockChangeReason = "RETURNED_TO_SUPPLIER"
	ReasonReturnedByCustomer StockChangeReason = "RETURNED_BY_CUSTOMER"
)

var knownReasons = map[StockChangeReason]struct{}{
	ReasonInitialStock:       {},
	ReasonManualUpdate:       {},
	ReasonPriceChange:        {},
	ReasonSold:               {},
	ReasonScrapped:           {},
	ReasonDestroyed:          {},
	ReasonDamaged:            {},
	ReasonExpired:            {},
	ReasonLost:               {},
	ReasonReturnedToSupplier: {},
	ReasonReturnedByCustomer: {},
}

// ParseStockChangeReason normaliza (trim + mayúsculas) y reporta si el motivo es conocido.
func ParseStockChangeReason(s string) (StockChangeReason, bool) {
	r := StockChangeReason(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := knownReasons[r]
	return r, ok
}

// IsReturnIn devolución de cliente (entrada).
func (r StockChangeReason) IsReturnIn() bool {
	return r == ReasonReturnedByCustomer
}

// IsWriteOff bajas: dañado, destruido, desechado, vencido o perdido.
func (r StockChangeReason) IsWriteOff() bool {
	switch r {
	case ReasonDamaged, ReasonDestroyed, ReasonScrapped, ReasonExpired, ReasonLost:
		return true
	}
	return false
}

// IsReturnToSupplier devolución al proveedor (se modela como compra negativa).
func (r StockChangeReason) IsReturnToSupplier() bool {
	return r == ReasonReturnedToSupplier
}

// StockEvent proyección inmutable de una fila de stock_history para el motor de valuación.
type StockEvent struct {
	ItemID         string
	SupplierID     string           // vacío si el ítem no tiene proveedor
	QuantityChange int64            // positivo entrada, negativo salida
	UnitCost       *decimal.Decimal // nil para eventos sin precio explícito (p. ej. ventas)
	Reason         StockChangeReason
	OccurredAt     time.Time
}

// IsInbound indica si el evento agrega stock.
func (e StockEvent) IsInbound() bool { return e.QuantityChange > 0 }
