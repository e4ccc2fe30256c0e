package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventory-valuation/internal/domain"
)

// Checkpoint estado del ledger en un corte: la posición de cada ítem después de aplicar
// todos los eventos con OccurredAt < At. Permite continuar una reconstrucción sin
// repetir la historia anterior al corte.
type Checkpoint struct {
	At        time.Time
	Positions map[string]LedgerState
}

// Checkpoint toma una copia del ledger en el corte at. Falla si ya se aplicó algún evento
// con OccurredAt >= at, porque el ledger ya no representa el estado en el corte.
func (r *Replay) Checkpoint(at time.Time) (Checkpoint, error) {
	if r.totals.Events > 0 && !r.last.Before(at) {
		return Checkpoint{}, fmt.Errorf("%w: checkpoint en %s anterior al último evento %s",
			domain.ErrInvalidInput, at.Format(time.RFC3339), r.last.Format(time.RFC3339))
	}
	positions := make(map[string]LedgerState, len(r.ledgers))
	for id, l := range r.ledgers {
		positions[id] = l.state
	}
	return Checkpoint{At: at, Positions: positions}, nil
}

// ResumeReplay crea una reconstrucción para la ventana que inicia en start partiendo del checkpoint.
// Solo deben aplicarse eventos con OccurredAt >= cp.At. Requiere cp.At <= start.
func ResumeReplay(cp Checkpoint, start time.Time) (*Replay, error) {
	if cp.At.After(start) {
		return nil, fmt.Errorf("%w: checkpoint %s posterior al inicio de la ventana %s",
			domain.ErrInvalidInput, cp.At.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	r := NewReplay(start)
	for id, st := range cp.Positions {
		r.ledgers[id] = &itemLedger{state: st}
	}
	return r, nil
}
