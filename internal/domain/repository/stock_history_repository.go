package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
)

// StockHistoryRepository define el puerto de lectura/escritura del historial de movimientos (DIP).
type StockHistoryRepository interface {
	// StreamUpTo entrega, en orden (occurred_at, inserción), cada evento con occurred_at <= end.
	// supplierID vacío = todos los proveedores; la comparación no distingue mayúsculas.
	// Si fn devuelve error la lectura se corta y el error se propaga.
	StreamUpTo(ctx context.Context, end time.Time, supplierID string, fn func(entity.StockEvent) error) error

	// InsertBatch persiste filas del historial en una sola transacción. Las filas con ID ya existente
	// se omiten; devuelve cuántas se insertaron.
	InsertBatch(ctx context.Context, rows []*entity.StockHistory) (int, error)
}
