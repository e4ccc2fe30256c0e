package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
	"github.com/jhoicas/inventory-valuation/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación del historial de movimientos sobre PostgreSQL.
type StockHistoryRepo struct {
	q  Querier
	tx *TxRunner
}

// NewStockHistoryRepository construye el adaptador sobre el pool.
func NewStockHistoryRepository(pool *pgxpool.Pool) *StockHistoryRepo {
	return &StockHistoryRepo{q: pool, tx: NewTxRunner(pool)}
}

// streamQuery arma la consulta de eventos hasta end, filtrando por proveedor si se indica.
// El orden (occurred_at, seq) desempata eventos simultáneos por orden de inserción.
func streamQuery(end time.Time, supplierID string) (string, []any) {
	query := `
		SELECT item_id, COALESCE(supplier_id, ''), quantity_change, unit_cost, reason, occurred_at
		FROM stock_history
		WHERE occurred_at <= $1`
	args := []any{end}
	if s := normalizeSupplierID(supplierID); s != "" {
		query += " AND LOWER(supplier_id) = $2"
		args = append(args, s)
	}
	query += " ORDER BY occurred_at ASC, seq ASC"
	return query, args
}

// StreamUpTo recorre el cursor fila a fila sin cargar el historial completo en memoria.
func (r *StockHistoryRepo) StreamUpTo(ctx context.Context, end time.Time, supplierID string, fn func(entity.StockEvent) error) error {
	query, args := streamQuery(end, supplierID)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("stream stock history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e      entity.StockEvent
			unit   decimal.NullDecimal
			reason string
		)
		if err := rows.Scan(&e.ItemID, &e.SupplierID, &e.QuantityChange, &unit, &reason, &e.OccurredAt); err != nil {
			return fmt.Errorf("scan stock event: %w", err)
		}
		if unit.Valid {
			e.UnitCost = &unit.Decimal
		}
		e.Reason = entity.StockChangeReason(reason)
		if err := fn(e); err != nil {
			return fmt.Errorf("stream stock history: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("stream stock history: %w", err)
	}
	return nil
}

// InsertBatch inserta las filas en una transacción usando un pgx.Batch.
// Asigna UUID a las filas sin ID; las filas con ID repetido se omiten (ON CONFLICT DO NOTHING).
func (r *StockHistoryRepo) InsertBatch(ctx context.Context, rows []*entity.StockHistory) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	const query = `
		INSERT INTO stock_history (id, item_id, supplier_id, quantity_change, unit_cost, reason, occurred_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	inserted := 0
	err := r.tx.Run(ctx, func(q Querier) error {
		batch := &pgx.Batch{}
		for _, h := range rows {
			if h.ID == "" {
				h.ID = uuid.New().String()
			}
			batch.Queue(query,
				h.ID, h.ItemID, nullIfEmpty(h.SupplierID), h.QuantityChange,
				nullDecimal(h.UnitCost), string(h.Reason), h.OccurredAt, nullIfEmpty(h.CreatedBy),
			)
		}
		br := q.SendBatch(ctx, batch)
		defer br.Close()
		for i := range rows {
			tag, err := br.Exec()
			if err != nil {
				return fmt.Errorf("insert stock history row %d: %w", i, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
