package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
)

// Bucket par (cantidad, costo) de una categoría del resumen financiero.
type Bucket struct {
	Qty  int64
	Cost decimal.Decimal
}

func (b *Bucket) add(qty int64, cost decimal.Decimal) {
	b.Qty += qty
	b.Cost = b.Cost.Add(cost)
}

func (b *Bucket) sub(qty int64, cost decimal.Decimal) {
	b.Qty -= qty
	b.Cost = b.Cost.Sub(cost)
}

// Totals acumulado de una reconstrucción.
//
// Uncategorized agrupa las entradas sin precio explícito que no son stock inicial ni devolución:
// actualizan el ledger pero no aparecen en compras ni devoluciones.
// RoundingResidual y Overdrawn explican la diferencia entre la ecuación de conservación y el cierre:
// el redondeo del promedio a CostScale y las salidas que superan el stock disponible (se costean
// completas pero la cantidad se recorta a cero).
type Totals struct {
	Opening       Bucket
	Purchases     Bucket
	ReturnsIn     Bucket
	COGS          Bucket
	WriteOff      Bucket
	Ending        Bucket
	Uncategorized Bucket

	RoundingResidual decimal.Decimal
	Overdrawn        Bucket

	Entities int // ítems con posición en el ledger
	Events   int // eventos aplicados (se ignoran los de cantidad cero)
}

// ConservationGap apertura + compras + devoluciones + sin categoría − COGS − bajas − cierre.
// Es cero salvo por RoundingResidual y Overdrawn (ver Reconciled).
func (t Totals) ConservationGap() decimal.Decimal {
	return t.Opening.Cost.
		Add(t.Purchases.Cost).
		Add(t.ReturnsIn.Cost).
		Add(t.Uncategorized.Cost).
		Sub(t.COGS.Cost).
		Sub(t.WriteOff.Cost).
		Sub(t.Ending.Cost)
}

// Reconciled indica si la brecha de conservación queda explicada exactamente por el residuo
// de redondeo y el sobregiro.
func (t Totals) Reconciled() bool {
	return t.ConservationGap().Add(t.RoundingResidual).Add(t.Overdrawn.Cost).IsZero()
}

type itemLedger struct {
	state  LedgerState
	opened bool // la apertura del ítem ya se sumó a Totals.Opening
}

// Replay pliega una secuencia de eventos en un ledger por ítem y en los totales de la ventana
// que inicia en start. Los eventos con OccurredAt < start solo construyen la apertura.
//
// El ledger pertenece a una sola invocación; un Replay no es seguro para uso concurrente.
// La secuencia debe llegar en orden cronológico por ítem (orden global por fecha o ítem+fecha);
// los empates se resuelven por orden de llegada.
type Replay struct {
	start   time.Time
	ledgers map[string]*itemLedger
	totals  Totals
	last    time.Time
	done    bool
}

// NewReplay crea una reconstrucción vacía para la ventana que inicia en start.
func NewReplay(start time.Time) *Replay {
	return &Replay{
		start:   start,
		ledgers: make(map[string]*itemLedger),
	}
}

// Apply aplica un evento. Los eventos de cantidad cero se ignoran; después de Finish es un no-op.
func (r *Replay) Apply(e entity.StockEvent) {
	if r.done || e.QuantityChange == 0 {
		return
	}
	r.totals.Events++
	if e.OccurredAt.After(r.last) {
		r.last = e.OccurredAt
	}

	l, ok := r.ledgers[e.ItemID]
	if !ok {
		l = &itemLedger{state: LedgerState{AverageCost: decimal.Zero}}
		r.ledgers[e.ItemID] = l
	}

	if e.OccurredAt.Before(r.start) {
		r.applyBaseline(l, e)
		return
	}
	if !l.opened {
		r.totals.Opening.add(l.state.Quantity, l.state.Value())
		l.opened = true
	}
	r.applyWindow(l, e)
}

// applyBaseline fase 1: solo importa el efecto sobre cantidad y costo promedio.
func (r *Replay) applyBaseline(l *itemLedger, e entity.StockEvent) {
	if e.IsInbound() {
		l.state = ApplyInbound(&l.state, e.QuantityChange, unitCostFor(l.state, e))
		return
	}
	l.state, _ = IssueAt(&l.state, -e.QuantityChange)
}

// applyWindow fase 2: actualiza el ledger y clasifica el evento en su bucket.
func (r *Replay) applyWindow(l *itemLedger, e entity.StockEvent) {
	if e.IsInbound() {
		qty := e.QuantityChange
		unit := unitCostFor(l.state, e)
		cost := unit.Mul(decimal.NewFromInt(qty))
		before := l.state.Value()
		l.state = ApplyInbound(&l.state, qty, unit)
		r.totals.RoundingResidual = r.totals.RoundingResidual.Add(l.state.Value().Sub(before).Sub(cost))
		switch {
		case e.Reason.IsReturnIn():
			r.totals.ReturnsIn.add(qty, cost)
		case e.UnitCost != nil || e.Reason == entity.ReasonInitialStock:
			r.totals.Purchases.add(qty, cost)
		default:
			r.totals.Uncategorized.add(qty, cost)
		}
		return
	}

	out := -e.QuantityChange
	if short := out - l.state.Quantity; short > 0 {
		r.totals.Overdrawn.add(short, l.state.AverageCost.Mul(decimal.NewFromInt(short)))
	}
	var cost decimal.Decimal
	l.state, cost = IssueAt(&l.state, out)
	switch {
	case e.Reason.IsReturnToSupplier():
		// compra negativa: neta directamente contra compras
		r.totals.Purchases.sub(out, cost)
	case e.Reason.IsWriteOff():
		r.totals.WriteOff.add(out, cost)
	default:
		r.totals.COGS.add(out, cost)
	}
}

// unitCostFor precio explícito del evento o, si falta, el promedio vigente del ítem.
func unitCostFor(st LedgerState, e entity.StockEvent) decimal.Decimal {
	if e.UnitCost != nil {
		return *e.UnitCost
	}
	return st.AverageCost
}

// Position devuelve la posición actual de un ítem.
func (r *Replay) Position(itemID string) (LedgerState, bool) {
	l, ok := r.ledgers[itemID]
	if !ok {
		return LedgerState{}, false
	}
	return l.state, true
}

// Finish cierra la reconstrucción: suma la apertura de los ítems sin eventos en la ventana
// y calcula el cierre. Llamadas posteriores devuelven los mismos totales.
func (r *Replay) Finish() Totals {
	if r.done {
		return r.totals
	}
	r.done = true
	for _, l := range r.ledgers {
		if !l.opened {
			r.totals.Opening.add(l.state.Quantity, l.state.Value())
			l.opened = true
		}
		r.totals.Ending.add(l.state.Quantity, l.state.Value())
	}
	r.totals.Entities = len(r.ledgers)
	return r.totals
}

// ReplayEvents reconstruye los totales de una secuencia en memoria.
func ReplayEvents(events []entity.StockEvent, start time.Time) Totals {
	r := NewReplay(start)
	for _, e := range events {
		r.Apply(e)
	}
	return r.Finish()
}
