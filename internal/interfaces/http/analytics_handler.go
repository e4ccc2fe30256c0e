package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-valuation/internal/application/analytics"
	"github.com/jhoicas/inventory-valuation/internal/application/dto"
	"github.com/jhoicas/inventory-valuation/internal/domain"
	"github.com/jhoicas/inventory-valuation/pkg/logger"
)

// AnalyticsHandler maneja los endpoints de valuación financiera del inventario.
type AnalyticsHandler struct {
	uc  *analytics.FinancialUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.FinancialUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// GetFinancialSummary godoc
// @Summary      Resumen financiero del inventario (costo promedio ponderado)
// @Description  Reconstruye el historial de movimientos hasta el fin del período y devuelve apertura,
//               compras, devoluciones, costo de ventas, bajas y cierre. Fechas inclusivas en UTC.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        to           query  string  true   "Fin del período (YYYY-MM-DD), incluye todo el día"
// @Param        supplier_id  query  string  false  "Filtra por proveedor (sin distinguir mayúsculas)"
// @Success      200  {object}  dto.FinancialSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/financial/summary [get]
func (h *AnalyticsHandler) GetFinancialSummary(c *fiber.Ctx) error {
	var req dto.FinancialSummaryRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	out, err := h.uc.GetFinancialSummary(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetMonthlyBreakdown godoc
// @Summary      Resumen financiero mes a mes
// @Description  Un resumen por mes calendario dentro del rango; el cierre de cada mes es la apertura del siguiente.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        to           query  string  true   "Fin del período (YYYY-MM-DD)"
// @Param        supplier_id  query  string  false  "Filtra por proveedor"
// @Success      200  {object}  dto.MonthlyBreakdownDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/financial/monthly [get]
func (h *AnalyticsHandler) GetMonthlyBreakdown(c *fiber.Ctx) error {
	var req dto.FinancialSummaryRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	out, err := h.uc.GetMonthlyBreakdown(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetSupplierBreakdown godoc
// @Summary      Resumen financiero por proveedor
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        from          query  string  true  "Inicio del período (YYYY-MM-DD)"
// @Param        to            query  string  true  "Fin del período (YYYY-MM-DD)"
// @Param        supplier_ids  query  string  true  "Proveedores separados por coma"
// @Success      200  {object}  dto.SupplierBreakdownDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/financial/suppliers [get]
func (h *AnalyticsHandler) GetSupplierBreakdown(c *fiber.Ctx) error {
	var req dto.SupplierBreakdownRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	out, err := h.uc.GetSupplierBreakdown(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// bindQuery parsea y valida los query params. Si fallan escribe la respuesta 400 y devuelve ok=false.
func bindQuery(c *fiber.Ctx, req any) (ok bool, err error) {
	if err := c.QueryParser(req); err != nil {
		return false, respond(c, fiber.StatusBadRequest, "INVALID_PARAMS", "parámetros de consulta inválidos")
	}
	badRange, verr := validateQuery(req)
	if verr == nil {
		return true, nil
	}
	code := "INVALID_PARAMS"
	if badRange {
		code = "INVALID_RANGE"
	}
	return false, respond(c, fiber.StatusBadRequest, code, verr.Error())
}

// fail traduce errores del caso de uso a respuestas HTTP.
func (h *AnalyticsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRangeTooLarge):
		return respond(c, fiber.StatusBadRequest, "RANGE_TOO_LARGE", err.Error())
	case errors.Is(err, domain.ErrInvalidRange):
		return respond(c, fiber.StatusBadRequest, "INVALID_RANGE", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "INVALID_PARAMS", err.Error())
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("error calculando valuación")
	return respond(c, fiber.StatusInternalServerError, "INTERNAL", "error interno calculando la valuación")
}

func respond(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
