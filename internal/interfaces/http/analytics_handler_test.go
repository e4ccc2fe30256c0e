package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-valuation/internal/application/analytics"
	"github.com/jhoicas/inventory-valuation/internal/application/dto"
	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
	apphttp "github.com/jhoicas/inventory-valuation/internal/interfaces/http"
	"github.com/jhoicas/inventory-valuation/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memoryHistory historial en memoria, ya ordenado por fecha.
type memoryHistory struct {
	events []entity.StockEvent
	err    error
}

func (m *memoryHistory) StreamUpTo(ctx context.Context, end time.Time, supplierID string, fn func(entity.StockEvent) error) error {
	if m.err != nil {
		return m.err
	}
	for _, e := range m.events {
		if e.OccurredAt.After(end) || (supplierID != "" && !strings.EqualFold(e.SupplierID, supplierID)) {
			continue
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryHistory) InsertBatch(ctx context.Context, rows []*entity.StockHistory) (int, error) {
	return len(rows), nil
}

func sampleHistory() *memoryHistory {
	p := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
	ts := func(s string) time.Time { t, _ := time.Parse(time.RFC3339, s); return t }
	return &memoryHistory{events: []entity.StockEvent{
		{ItemID: "X", SupplierID: "acme", QuantityChange: 10, UnitCost: p("2.00"), Reason: entity.ReasonInitialStock, OccurredAt: ts("2023-12-15T10:00:00Z")},
		{ItemID: "X", SupplierID: "acme", QuantityChange: 5, UnitCost: p("3.00"), Reason: entity.ReasonManualUpdate, OccurredAt: ts("2024-01-10T10:00:00Z")},
		{ItemID: "X", SupplierID: "acme", QuantityChange: -8, Reason: entity.ReasonSold, OccurredAt: ts("2024-01-20T10:00:00Z")},
		{ItemID: "Y", SupplierID: "globex", QuantityChange: 4, UnitCost: p("10.00"), Reason: entity.ReasonManualUpdate, OccurredAt: ts("2024-02-02T10:00:00Z")},
		{ItemID: "Y", SupplierID: "globex", QuantityChange: -1, Reason: entity.ReasonDamaged, OccurredAt: ts("2024-02-03T10:00:00Z")},
	}}
}

func buildAnalyticsApp(repo *memoryHistory) *fiber.App {
	uc := analytics.NewFinancialUseCase(repo, logger.Nop(), analytics.FinancialOptions{MaxRangeDays: 92, SupplierConcurrency: 2})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		FinancialUC: uc,
		Logger:      logger.Nop(),
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
	})
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/financial/summary
// ──────────────────────────────────────────────────────────────────────────────

func TestFinancialSummary_OK(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/summary?from=2024-01-01&to=2024-01-31", tokenForRole(t, "analyst"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.FinancialSummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "WAC", body.Method)
	assert.Equal(t, "2024-01-01", body.FromDate)
	assert.Equal(t, int64(10), body.OpeningQty)
	assert.Equal(t, "18.6664", body.COGSCost.String())
	assert.Equal(t, int64(7), body.EndingQty)
	assert.Equal(t, "16.3331", body.EndingValue.String())
}

func TestFinancialSummary_FiltroProveedor(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/summary?from=2024-02-01&to=2024-02-29&supplier_id=GLOBEX", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.FinancialSummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(0), body.OpeningQty, "acme no entra en el filtro")
	assert.Equal(t, int64(1), body.WriteOffQty)
	assert.Equal(t, "10", body.WriteOffCost.String())
}

func TestFinancialSummary_RangoInvalido(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	cases := []struct {
		name  string
		query string
	}{
		{"sin from", "?to=2024-01-31"},
		{"sin parámetros", ""},
		{"formato", "?from=2024/01/01&to=2024-01-31"},
		{"from posterior a to", "?from=2024-02-01&to=2024-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, "/api/analytics/financial/summary"+tc.query, tokenForRole(t, "analyst"))
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "INVALID_RANGE", decodeError(t, resp).Code)
		})
	}
}

func TestFinancialSummary_ErrorInterno(t *testing.T) {
	app := buildAnalyticsApp(&memoryHistory{err: errors.New("db caída")})
	resp := doRequest(t, app, "/api/analytics/financial/summary?from=2024-01-01&to=2024-01-31", tokenForRole(t, "analyst"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "db caída", "no se filtran detalles internos")
}

func TestFinancialSummary_RolSinPermiso(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/summary?from=2024-01-01&to=2024-01-31", tokenForRole(t, "bodeguero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/financial/monthly y /suppliers
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyBreakdown_OK(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/monthly?from=2024-01-01&to=2024-02-29", tokenForRole(t, "analyst"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.MonthlyBreakdownDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Months, 2)
	assert.Equal(t, "2024-01", body.Months[0].Month)
	assert.Equal(t, "2024-02", body.Months[1].Month)
	assert.Equal(t, body.Months[0].EndingQty, body.Months[1].OpeningQty)
	assert.True(t, body.Months[0].EndingValue.Equal(body.Months[1].OpeningValue))
}

func TestMonthlyBreakdown_RangoDemasiadoAmplio(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/monthly?from=2024-01-01&to=2024-12-31", tokenForRole(t, "analyst"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "RANGE_TOO_LARGE", decodeError(t, resp).Code)
}

func TestSupplierBreakdown_OK(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/suppliers?from=2024-01-01&to=2024-02-29&supplier_ids=globex,acme", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SupplierBreakdownDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Suppliers, 2)
	assert.Equal(t, "globex", body.Suppliers[0].SupplierID)
	assert.Equal(t, "acme", body.Suppliers[1].SupplierID)
}

func TestSupplierBreakdown_SinProveedores(t *testing.T) {
	app := buildAnalyticsApp(sampleHistory())
	resp := doRequest(t, app, "/api/analytics/financial/suppliers?from=2024-01-01&to=2024-02-29", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PARAMS", decodeError(t, resp).Code)
}
