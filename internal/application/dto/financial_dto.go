package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// FinancialSummaryRequest parámetros para GET /api/analytics/financial/summary y /monthly.
type FinancialSummaryRequest struct {
	From       string `query:"from" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD, inclusivo
	To         string `query:"to" validate:"required,datetime=2006-01-02"`   // YYYY-MM-DD, inclusivo (hasta 23:59:59.999999999)
	SupplierID string `query:"supplier_id" validate:"omitempty,max=64"`      // vacío = todos los proveedores
}

// SupplierBreakdownRequest parámetros para GET /api/analytics/financial/suppliers.
type SupplierBreakdownRequest struct {
	From        string `query:"from" validate:"required,datetime=2006-01-02"`
	To          string `query:"to" validate:"required,datetime=2006-01-02"`
	SupplierIDs string `query:"supplier_ids" validate:"required"` // lista separada por comas
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// FinancialSummaryDTO resumen financiero del período valuado con costo promedio ponderado.
// Identidad: openingValue + purchasesCost + returnsInCost + uncategorizedInboundCost
// − cogsCost − writeOffCost ≈ endingValue (salvo redondeo y sobregiros).
type FinancialSummaryDTO struct {
	Method     string `json:"method"`   // "WAC"
	FromDate   string `json:"fromDate"` // YYYY-MM-DD
	ToDate     string `json:"toDate"`   // YYYY-MM-DD
	SupplierID string `json:"supplierId,omitempty"`

	OpeningQty   int64           `json:"openingQty"`
	OpeningValue decimal.Decimal `json:"openingValue"`

	PurchasesQty  int64           `json:"purchasesQty"` // neto de devoluciones a proveedor
	PurchasesCost decimal.Decimal `json:"purchasesCost"`

	ReturnsInQty  int64           `json:"returnsInQty"` // devoluciones de clientes
	ReturnsInCost decimal.Decimal `json:"returnsInCost"`

	COGSQty  int64           `json:"cogsQty"`
	COGSCost decimal.Decimal `json:"cogsCost"`

	WriteOffQty  int64           `json:"writeOffQty"` // dañado, destruido, vencido, perdido, chatarra
	WriteOffCost decimal.Decimal `json:"writeOffCost"`

	EndingQty   int64           `json:"endingQty"`
	EndingValue decimal.Decimal `json:"endingValue"`

	// Entradas sin precio que no son stock inicial ni devolución (ajustes manuales, cambios de precio).
	UncategorizedInboundQty  int64           `json:"uncategorizedInboundQty"`
	UncategorizedInboundCost decimal.Decimal `json:"uncategorizedInboundCost"`
}

// ── Desglose mensual ──────────────────────────────────────────────────────────

// MonthlySummaryDTO resumen de un mes calendario (recortado al rango pedido).
type MonthlySummaryDTO struct {
	Month string `json:"month"` // YYYY-MM
	FinancialSummaryDTO
}

// MonthlyBreakdownDTO respuesta de GET /api/analytics/financial/monthly.
// El cierre de cada mes coincide con la apertura del siguiente.
type MonthlyBreakdownDTO struct {
	FromDate string              `json:"fromDate"`
	ToDate   string              `json:"toDate"`
	Months   []MonthlySummaryDTO `json:"months"`
}

// ── Por proveedor ─────────────────────────────────────────────────────────────

// SupplierBreakdownDTO respuesta de GET /api/analytics/financial/suppliers, en el orden pedido.
type SupplierBreakdownDTO struct {
	FromDate  string                `json:"fromDate"`
	ToDate    string                `json:"toDate"`
	Suppliers []FinancialSummaryDTO `json:"suppliers"`
}
