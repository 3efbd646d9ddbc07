package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Snapshot completo de métricas operativas; se recalcula en cada llamada.
type DashboardStatsDTO struct {
	HotelID string `json:"hotel_id,omitempty"` // vacío = todos los hoteles

	// Totales de las cuatro colecciones
	TotalHotels   int `json:"total_hotels"`
	TotalRooms    int `json:"total_rooms"`
	TotalGuests   int `json:"total_guests"`
	TotalBookings int `json:"total_bookings"`

	// Habitaciones y ocupación
	ActiveBookings int              `json:"active_bookings"` // CONFIRMED + CHECKED_IN
	AvailableRooms int              `json:"available_rooms"`
	OccupancyRate  int              `json:"occupancy_rate"` // ocupadas / total * 100, redondeado
	RoomsByStatus  RoomsByStatusDTO `json:"rooms_by_status"`

	// Ingresos (solo reservas activas)
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"` // creadas en los últimos 30 días

	// Actividad del día
	CheckInsToday      int `json:"check_ins_today"`
	CheckOutsToday     int `json:"check_outs_today"`
	CompletedCheckOuts int `json:"completed_check_outs"`

	// Facturas derivadas
	PaidInvoices    int `json:"paid_invoices"`
	PendingInvoices int `json:"pending_invoices"`
	OverdueInvoices int `json:"overdue_invoices"`

	TopHotels []TopHotelDTO `json:"top_hotels"`

	GeneratedAt time.Time `json:"generated_at"`
}

// RoomsByStatusDTO conteo de habitaciones por categoría operativa.
type RoomsByStatusDTO struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
	Cleaning    int `json:"cleaning"`
	Inactive    int `json:"inactive"`
}

// TopHotelDTO hotel del widget "Top hoteles" (ordenado por reservas desc).
type TopHotelDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalBookings int    `json:"total_bookings"`
	OccupancyRate int    `json:"occupancy_rate"`
}

// BookingDTO reserva en la respuesta de GET /api/dashboard/week-bookings.
type BookingDTO struct {
	ID           string          `json:"id"`
	HotelID      string          `json:"hotel_id"`
	Code         string          `json:"code"`
	Status       string          `json:"status"`
	CheckInDate  time.Time       `json:"check_in_date"`
	CheckOutDate time.Time       `json:"check_out_date"`
	Adults       int             `json:"adults"`
	Children     int             `json:"children"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Currency     string          `json:"currency"`
	MainGuestID  string          `json:"main_guest_id"`
}

// WeekBookingsDTO reservas de la semana en curso con los límites de la ventana.
type WeekBookingsDTO struct {
	WeekStart time.Time    `json:"week_start"`
	WeekEnd   time.Time    `json:"week_end"`
	Bookings  []BookingDTO `json:"bookings"`
}

// InvoiceDTO factura derivada de una reserva (GET /api/dashboard/invoices).
type InvoiceDTO struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	GuestID     string          `json:"guest_id"`
	HotelID     string          `json:"hotel_id"`
	BookingID   string          `json:"booking_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"` // paid|pending|overdue
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     time.Time       `json:"due_date"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	GuestName   string          `json:"guest_name"`
	HotelName   string          `json:"hotel_name"`
}
