package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-valuation/internal/application/analytics"
	"github.com/jhoicas/inventory-valuation/pkg/logger"
)

// Roles con acceso a los reportes financieros.
var financialRoles = []string{"admin", "analyst"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FinancialUC *analytics.FinancialUseCase
	Logger      *logger.Logger
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Valuación financiera (admin, analyst)
	financial := protected.Group("/analytics/financial", RequireRole(financialRoles...))
	analyticsHandler := NewAnalyticsHandler(deps.FinancialUC, deps.Logger)
	financial.Get("/summary", analyticsHandler.GetFinancialSummary)
	financial.Get("/monthly", analyticsHandler.GetMonthlyBreakdown)
	financial.Get("/suppliers", analyticsHandler.GetSupplierBreakdown)
}
