// Package analytics contiene los casos de uso de valuación de inventario y reportes financieros.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventory-valuation/internal/application/dto"
	"github.com/jhoicas/inventory-valuation/internal/domain"
	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
	"github.com/jhoicas/inventory-valuation/internal/domain/inventory"
	"github.com/jhoicas/inventory-valuation/internal/domain/repository"
	"github.com/jhoicas/inventory-valuation/pkg/logger"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"

	maxSuppliersPerRequest = 50
)

// FinancialOptions límites del caso de uso (ver config.ValuationConfig).
type FinancialOptions struct {
	MaxRangeDays        int
	SupplierConcurrency int
}

// FinancialUseCase valúa el inventario con costo promedio ponderado reconstruyendo el historial
// de movimientos. Cada llamada abre su propio ledger; no hay estado compartido entre requests.
type FinancialUseCase struct {
	historyRepo repository.StockHistoryRepository
	log         *logger.Logger
	opts        FinancialOptions
}

// NewFinancialUseCase construye el caso de uso.
func NewFinancialUseCase(historyRepo repository.StockHistoryRepository, log *logger.Logger, opts FinancialOptions) *FinancialUseCase {
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = 366
	}
	if opts.SupplierConcurrency <= 0 {
		opts.SupplierConcurrency = 1
	}
	return &FinancialUseCase{historyRepo: historyRepo, log: log.Named("financial"), opts: opts}
}

// GetFinancialSummary resumen del período [from 00:00, to 23:59:59.999999999] en UTC.
func (uc *FinancialUseCase) GetFinancialSummary(ctx context.Context, req dto.FinancialSummaryRequest) (*dto.FinancialSummaryDTO, error) {
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	totals, err := uc.summarize(ctx, start, end, req.SupplierID)
	if err != nil {
		return nil, err
	}
	out := toSummaryDTO(totals, start, end, req.SupplierID)
	return &out, nil
}

// GetMonthlyBreakdown un resumen por mes calendario dentro del rango (primer y último mes recortados).
//
// Se lee el historial una sola vez: al llegar el primer evento del mes siguiente se toma un
// checkpoint del ledger, se cierra el mes y el siguiente continúa desde el checkpoint.
// Así el cierre de cada mes es exactamente la apertura del siguiente.
func (uc *FinancialUseCase) GetMonthlyBreakdown(ctx context.Context, req dto.FinancialSummaryRequest) (*dto.MonthlyBreakdownDTO, error) {
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	if end.Sub(start) > time.Duration(uc.opts.MaxRangeDays)*24*time.Hour {
		return nil, fmt.Errorf("%w: máximo %d días", domain.ErrRangeTooLarge, uc.opts.MaxRangeDays)
	}

	t0 := time.Now()
	windows := monthWindows(start, end)
	months := make([]dto.MonthlySummaryDTO, 0, len(windows))
	idx := 0
	cur := inventory.NewReplay(windows[0].start)

	closeMonth := func() error {
		next := windows[idx+1].start
		cp, err := cur.Checkpoint(next)
		if err != nil {
			return err
		}
		months = append(months, toMonthlyDTO(windows[idx], cur.Finish(), req.SupplierID))
		idx++
		cur, err = inventory.ResumeReplay(cp, next)
		return err
	}

	err = uc.historyRepo.StreamUpTo(ctx, end, req.SupplierID, func(e entity.StockEvent) error {
		for idx+1 < len(windows) && !e.OccurredAt.Before(windows[idx+1].start) {
			if err := closeMonth(); err != nil {
				return err
			}
		}
		cur.Apply(e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("monthly breakdown: %w", err)
	}
	for idx+1 < len(windows) {
		if err := closeMonth(); err != nil {
			return nil, fmt.Errorf("monthly breakdown: %w", err)
		}
	}
	last := cur.Finish()
	months = append(months, toMonthlyDTO(windows[idx], last, req.SupplierID))

	uc.log.Debug().
		Str("supplier_id", req.SupplierID).
		Int("months", len(months)).
		Int("entities", last.Entities).
		Dur("elapsed", time.Since(t0)).
		Msg("desglose mensual calculado")

	return &dto.MonthlyBreakdownDTO{
		FromDate: start.Format(dateLayout),
		ToDate:   end.Format(dateLayout),
		Months:   months,
	}, nil
}

// GetSupplierBreakdown un resumen por proveedor, en el orden pedido y sin duplicados.
// Cada proveedor es una reconstrucción independiente; se calculan en paralelo con límite.
func (uc *FinancialUseCase) GetSupplierBreakdown(ctx context.Context, req dto.SupplierBreakdownRequest) (*dto.SupplierBreakdownDTO, error) {
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	ids := splitSupplierIDs(req.SupplierIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: supplier_ids vacío", domain.ErrInvalidInput)
	}
	if len(ids) > maxSuppliersPerRequest {
		return nil, fmt.Errorf("%w: máximo %d proveedores por consulta", domain.ErrInvalidInput, maxSuppliersPerRequest)
	}

	results := make([]dto.FinancialSummaryDTO, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.SupplierConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			totals, err := uc.summarize(gctx, start, end, id)
			if err != nil {
				return fmt.Errorf("supplier %s: %w", id, err)
			}
			results[i] = toSummaryDTO(totals, start, end, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.SupplierBreakdownDTO{
		FromDate:  start.Format(dateLayout),
		ToDate:    end.Format(dateLayout),
		Suppliers: results,
	}, nil
}

// summarize lee los eventos hasta end y los pliega en una reconstrucción nueva.
func (uc *FinancialUseCase) summarize(ctx context.Context, start, end time.Time, supplierID string) (inventory.Totals, error) {
	t0 := time.Now()
	r := inventory.NewReplay(start)
	err := uc.historyRepo.StreamUpTo(ctx, end, supplierID, func(e entity.StockEvent) error {
		r.Apply(e)
		return nil
	})
	if err != nil {
		return inventory.Totals{}, fmt.Errorf("financial summary: %w", err)
	}
	totals := r.Finish()

	uc.log.Debug().
		Str("supplier_id", supplierID).
		Int("events", totals.Events).
		Int("entities", totals.Entities).
		Dur("elapsed", time.Since(t0)).
		Msg("resumen financiero calculado")
	if !totals.Reconciled() {
		uc.log.Warn().
			Str("supplier_id", supplierID).
			Str("gap", totals.ConservationGap().String()).
			Str("rounding_residual", totals.RoundingResidual.String()).
			Str("overdrawn_cost", totals.Overdrawn.Cost.String()).
			Msg("la ecuación de conservación no cuadra")
	}
	return totals, nil
}

// parseRange valida YYYY-MM-DD y devuelve [from 00:00, to 23:59:59.999999999] en UTC.
func parseRange(from, to string) (time.Time, time.Time, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from y to son obligatorios", domain.ErrInvalidRange)
	}
	start, err := time.ParseInLocation(dateLayout, from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q no es YYYY-MM-DD", domain.ErrInvalidRange, from)
	}
	day, err := time.ParseInLocation(dateLayout, to, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q no es YYYY-MM-DD", domain.ErrInvalidRange, to)
	}
	if start.After(day) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %s posterior a to %s", domain.ErrInvalidRange, from, to)
	}
	return start, day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

type window struct {
	start, end time.Time
}

// monthWindows parte [start, end] en meses calendario.
func monthWindows(start, end time.Time) []window {
	var out []window
	for s := start; !s.After(end); {
		next := time.Date(s.Year(), s.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		e := next.Add(-time.Nanosecond)
		if e.After(end) {
			e = end
		}
		out = append(out, window{start: s, end: e})
		s = next
	}
	return out
}

func splitSupplierIDs(raw string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range strings.Split(raw, ",") {
		id := strings.TrimSpace(p)
		key := strings.ToLower(id)
		if id == "" || seen[key] {
			continue
		}
		seen[key] = true
		ids = append(ids, id)
	}
	return ids
}

func toSummaryDTO(t inventory.Totals, start, end time.Time, supplierID string) dto.FinancialSummaryDTO {
	s := inventory.BuildSummary(t, start, end)
	return dto.FinancialSummaryDTO{
		Method:     s.Method,
		FromDate:   s.From.Format(dateLayout),
		ToDate:     s.To.Format(dateLayout),
		SupplierID: strings.TrimSpace(supplierID),

		OpeningQty:   s.Opening.Qty,
		OpeningValue: s.Opening.Cost.Round(inventory.CostScale),

		PurchasesQty:  s.Purchases.Qty,
		PurchasesCost: s.Purchases.Cost.Round(inventory.CostScale),

		ReturnsInQty:  s.ReturnsIn.Qty,
		ReturnsInCost: s.ReturnsIn.Cost.Round(inventory.CostScale),

		COGSQty:  s.COGS.Qty,
		COGSCost: s.COGS.Cost.Round(inventory.CostScale),

		WriteOffQty:  s.WriteOff.Qty,
		WriteOffCost: s.WriteOff.Cost.Round(inventory.CostScale),

		EndingQty:   s.Ending.Qty,
		EndingValue: s.Ending.Cost.Round(inventory.CostScale),

		UncategorizedInboundQty:  s.Uncategorized.Qty,
		UncategorizedInboundCost: s.Uncategorized.Cost.Round(inventory.CostScale),
	}
}

func toMonthlyDTO(w window, t inventory.Totals, supplierID string) dto.MonthlySummaryDTO {
	return dto.MonthlySummaryDTO{
		Month:               w.start.Format(monthLayout),
		FinancialSummaryDTO: toSummaryDTO(t, w.start, w.end, supplierID),
	}
}
