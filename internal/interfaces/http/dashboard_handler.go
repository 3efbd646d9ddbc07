package http

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/hotel-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/hotel-dashboard-api/internal/application/dto"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain"
	"github.com/jhoicas/hotel-dashboard-api/pkg/logger"
)

// TokenForwarder adjunta el token del usuario al contexto de las lecturas.
type TokenForwarder func(ctx context.Context, token string) context.Context

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	forward TokenForwarder
	log     *logger.Logger
}

// NewDashboardHandler construye el handler. forward puede ser nil (fuente sin token, ej. postgres).
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, forward TokenForwarder, log *logger.Logger) *DashboardHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardHandler{uc: uc, forward: forward, log: log}
}

// GetStats devuelve las métricas agregadas del dashboard.
// GET /api/dashboard/stats?hotel_id=
//
// Si alguna de las lecturas falla responde 502 DASHBOARD_UNAVAILABLE: no hay dashboard parcial.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if err != nil {
		return h.fail(c, err)
	}
	stats, err := h.uc.GetStats(h.ctx(c), scope)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(stats)
}

// GetWeekBookings devuelve las reservas de la semana en curso (domingo a sábado) por check-in.
// GET /api/dashboard/week-bookings?hotel_id=
func (h *DashboardHandler) GetWeekBookings(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if err != nil {
		return h.fail(c, err)
	}
	week, err := h.uc.GetWeekBookings(h.ctx(c), scope)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(week)
}

// GetTopHotels devuelve el ranking de hoteles por número de reservas.
// GET /api/dashboard/top-hotels?limit=
func (h *DashboardHandler) GetTopHotels(c *fiber.Ctx) error {
	var req dto.TopHotelsRequest
	if err := c.QueryParser(&req); err != nil || req.Limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe ser un entero positivo"})
	}
	top, err := h.uc.GetTopHotels(h.ctx(c), req.Limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(top)
}

// ListInvoices devuelve las facturas derivadas de las reservas.
// GET /api/dashboard/invoices?hotel_id=&status=paid|pending|overdue
func (h *DashboardHandler) ListInvoices(c *fiber.Ctx) error {
	var req dto.InvoiceListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if err := validateHotelID(req.HotelID); err != nil {
		return h.fail(c, err)
	}
	invoices, err := h.uc.ListInvoices(h.ctx(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(invoices)
}

// GetInvoicePDF descarga la factura de una reserva en PDF.
// GET /api/dashboard/invoices/:bookingId/pdf
func (h *DashboardHandler) GetInvoicePDF(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bookingId requerido"})
	}
	pdf, filename, err := h.uc.GetInvoicePDF(h.ctx(c), bookingID)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment(filename))
	return c.Send(pdf)
}

// ctx contexto de las lecturas: el de la petición más el token del usuario.
func (h *DashboardHandler) ctx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if h.forward != nil {
		if token := GetBearerToken(c); token != "" {
			ctx = h.forward(ctx, token)
		}
	}
	return ctx
}

// fail traduce los errores del caso de uso a HTTP.
func (h *DashboardHandler) fail(c *fiber.Ctx, err error) error {
	var fetchErr *domain.FetchError
	switch {
	case errors.As(err, &fetchErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "DASHBOARD_UNAVAILABLE", Message: domain.ErrFetchFailed.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("dashboard: error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// attachment arma Content-Disposition; el nombre viene del código de reserva de la API de gestión
// y se escapa (comillas, no ASCII, saltos de línea) según RFC 2231.
func attachment(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

func parseScope(c *fiber.Ctx) (dto.DashboardScope, error) {
	var scope dto.DashboardScope
	if err := c.QueryParser(&scope); err != nil {
		return scope, domain.ErrInvalidInput
	}
	scope.HotelID = strings.TrimSpace(scope.HotelID)
	return scope, validateHotelID(scope.HotelID)
}

func validateHotelID(hotelID string) error {
	if hotelID == "" {
		return nil
	}
	if _, err := uuid.Parse(hotelID); err != nil {
		return fmt.Errorf("%w: hotel_id debe ser un UUID", domain.ErrInvalidInput)
	}
	return nil
}
