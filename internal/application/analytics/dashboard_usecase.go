// Package analytics contiene los casos de uso del Dashboard de operación hotelera.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-dashboard-api/internal/application/dto"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/hotel-dashboard-api/pkg/logger"
)

const maxTopHotels = 20 // tope del parámetro limit en el ranking

// Recursos leídos en cada pasada (se usan en FetchError y en los logs).
const (
	resourceHotels   = "hotels"
	resourceRooms    = "rooms"
	resourceGuests   = "guests"
	resourceBookings = "bookings"
)

// DashboardUseCase arma el snapshot del dashboard a partir de las cuatro colecciones
// de la API de gestión (hoteles, habitaciones, huéspedes y reservas).
//
// No guarda estado entre llamadas: cada invocación vuelve a leer todo y recalcula.
// Los cálculos viven en domain/dashboard; aquí solo se orquesta la lectura.
type DashboardUseCase struct {
	hotelRepo   repository.HotelRepository
	roomRepo    repository.RoomRepository
	guestRepo   repository.GuestRepository
	bookingRepo repository.BookingRepository

	pdf      InvoicePDFGenerator
	log      *logger.Logger
	now      func() time.Time
	loc      *time.Location
	topLimit int
}

// Option configura el DashboardUseCase.
type Option func(*DashboardUseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *DashboardUseCase) { uc.now = now }
}

// WithLocation fija la zona horaria para "hoy" y la semana en curso.
func WithLocation(loc *time.Location) Option {
	return func(uc *DashboardUseCase) {
		if loc != nil {
			uc.loc = loc
		}
	}
}

// WithTopHotels fija el tamaño por defecto del ranking de hoteles (máximo maxTopHotels).
func WithTopHotels(n int) Option {
	return func(uc *DashboardUseCase) {
		if n > 0 {
			uc.topLimit = min(n, maxTopHotels)
		}
	}
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(uc *DashboardUseCase) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithPDFGenerator habilita la descarga de facturas en PDF.
func WithPDFGenerator(g InvoicePDFGenerator) Option {
	return func(uc *DashboardUseCase) { uc.pdf = g }
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	hotelRepo repository.HotelRepository,
	roomRepo repository.RoomRepository,
	guestRepo repository.GuestRepository,
	bookingRepo repository.BookingRepository,
	opts ...Option,
) *DashboardUseCase {
	uc := &DashboardUseCase{
		hotelRepo:   hotelRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		log:         logger.Nop(),
		now:         time.Now,
		loc:         time.Local,
		topLimit:    dashboard.DefaultTopHotels,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetStats construye el DashboardStatsDTO.
// Si cualquiera de las cuatro lecturas falla devuelve *domain.FetchError y ninguna métrica.
func (uc *DashboardUseCase) GetStats(ctx context.Context, scope dto.DashboardScope) (*dto.DashboardStatsDTO, error) {
	now := uc.clock()

	snap, err := uc.loadSnapshot(ctx, scope.HotelID)
	if err != nil {
		return nil, err
	}

	stats := dashboard.ComputeStats(snap, now, uc.topLimit)
	out := toStatsDTO(stats, now)
	out.HotelID = scope.HotelID
	return out, nil
}

// GetWeekBookings devuelve las reservas no canceladas que se cruzan con la semana en curso.
// Con hotel_id de un hotel inexistente devuelve domain.ErrNotFound, igual que GetStats.
func (uc *DashboardUseCase) GetWeekBookings(ctx context.Context, scope dto.DashboardScope) (*dto.WeekBookingsDTO, error) {
	now := uc.clock()

	if err := uc.ensureHotel(ctx, scope.HotelID); err != nil {
		return nil, err
	}
	bookings, err := uc.bookingRepo.List(ctx, repository.BookingFilter{HotelID: scope.HotelID})
	if err != nil {
		uc.log.Warn().Err(err).Str("resource", resourceBookings).Msg("dashboard: lectura fallida")
		return nil, &domain.FetchError{Resource: resourceBookings, Err: err}
	}

	start, end := dashboard.WeekWindow(now)
	week := dashboard.FilterCurrentWeek(bookings, now)

	out := &dto.WeekBookingsDTO{
		WeekStart: start,
		WeekEnd:   end,
		Bookings:  make([]dto.BookingDTO, 0, len(week)),
	}
	for _, b := range week {
		out.Bookings = append(out.Bookings, toBookingDTO(b))
	}
	return out, nil
}

// GetTopHotels devuelve el ranking de hoteles por número de reservas.
// limit <= 0 usa el valor configurado; se topa en maxTopHotels.
func (uc *DashboardUseCase) GetTopHotels(ctx context.Context, limit int) ([]dto.TopHotelDTO, error) {
	if limit <= 0 {
		limit = uc.topLimit
	}
	if limit > maxTopHotels {
		limit = maxTopHotels
	}

	snap, err := uc.loadSnapshot(ctx, "")
	if err != nil {
		return nil, err
	}
	return toTopHotelDTOs(dashboard.RankTopHotels(snap.Hotels, snap.Rooms, snap.Bookings, limit)), nil
}

// ListInvoices devuelve las facturas derivadas (las reservas canceladas no facturan),
// opcionalmente filtradas por estado.
func (uc *DashboardUseCase) ListInvoices(ctx context.Context, req dto.InvoiceListRequest) ([]dto.InvoiceDTO, error) {
	status := strings.ToLower(strings.TrimSpace(req.Status))
	switch status {
	case "", entity.InvoiceStatusPaid, entity.InvoiceStatusPending, entity.InvoiceStatusOverdue:
	default:
		return nil, fmt.Errorf("%w: status debe ser paid, pending u overdue", domain.ErrInvalidInput)
	}

	now := uc.clock()
	snap, err := uc.loadSnapshot(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	invoices := dashboard.DeriveInvoices(snap.Bookings,
		dashboard.GuestNames(snap.Guests), dashboard.HotelNames(snap.Hotels), now)

	out := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && inv.Status != status {
			continue
		}
		out = append(out, toInvoiceDTO(inv))
	}
	return out, nil
}

// GetInvoicePDF genera el PDF de la factura derivada de una reserva.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la reserva no existe o está cancelada (no factura).
//   - *domain.FetchError         si falla la lectura de datos.
func (uc *DashboardUseCase) GetInvoicePDF(ctx context.Context, bookingID string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", errors.New("pdf: generador no configurado")
	}
	if strings.TrimSpace(bookingID) == "" {
		return nil, "", fmt.Errorf("%w: booking id requerido", domain.ErrInvalidInput)
	}

	now := uc.clock()
	snap, err := uc.loadSnapshot(ctx, "")
	if err != nil {
		return nil, "", err
	}

	var booking *entity.Booking
	for i := range snap.Bookings {
		if snap.Bookings[i].ID == bookingID {
			booking = &snap.Bookings[i]
			break
		}
	}
	if booking == nil {
		return nil, "", domain.ErrNotFound
	}

	inv := dashboard.DeriveInvoice(*booking,
		dashboard.GuestNames(snap.Guests), dashboard.HotelNames(snap.Hotels), now)
	if inv == nil {
		return nil, "", fmt.Errorf("%w: la reserva %s está cancelada y no tiene factura", domain.ErrNotFound, booking.Code)
	}

	pdfBytes, err := uc.pdf.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: factura %s: %w", inv.Number, err)
	}
	return pdfBytes, invoiceFilename(inv), nil
}

// Snapshot devuelve las cuatro colecciones tal como se leyeron (misma lectura en paralelo que GetStats).
func (uc *DashboardUseCase) Snapshot(ctx context.Context, scope dto.DashboardScope) (dashboard.Snapshot, error) {
	return uc.loadSnapshot(ctx, scope.HotelID)
}

// ensureHotel verifica que el hotel del alcance exista. Vacío = todos los hoteles.
func (uc *DashboardUseCase) ensureHotel(ctx context.Context, hotelID string) error {
	if hotelID == "" {
		return nil
	}
	hotels, err := uc.hotelRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Str("resource", resourceHotels).Msg("dashboard: lectura fallida")
		return &domain.FetchError{Resource: resourceHotels, Err: err}
	}
	if len(onlyHotel(hotels, hotelID)) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// clock devuelve "ahora" en la zona configurada.
func (uc *DashboardUseCase) clock() time.Time {
	return uc.now().In(uc.loc)
}

func invoiceFilename(inv *entity.DerivedInvoice) string {
	number := inv.Number
	if number == "" {
		number = inv.ID
	}
	return "factura-" + number + ".pdf"
}
