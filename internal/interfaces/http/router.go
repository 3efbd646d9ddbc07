package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/hotel-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/hotel-dashboard-api/pkg/jwt"
	"github.com/jhoicas/hotel-dashboard-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC  *appanalytics.DashboardUseCase
	ForwardToken TokenForwarder // nil si la fuente de datos no usa el token del usuario
	JWTSecret    string
	Logger       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard (protegido: requiere Bearer Token)
	dashboard := api.Group("/dashboard", AuthMiddleware(deps.JWTSecret))
	h := NewDashboardHandler(deps.DashboardUC, deps.ForwardToken, deps.Logger)
	dashboard.Get("/stats", h.GetStats)
	dashboard.Get("/week-bookings", h.GetWeekBookings)
	dashboard.Get("/top-hotels", h.GetTopHotels)
	dashboard.Get("/invoices", h.ListInvoices)
	dashboard.Get("/invoices/:bookingId/pdf", RequireRole(jwt.RoleAdmin, jwt.RoleManager), h.GetInvoicePDF)
}
