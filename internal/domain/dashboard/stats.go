package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// monthlyRevenueWindow ventana de "ingresos del mes": últimos 30 días respecto a now.
const monthlyRevenueWindow = 30

// Snapshot las cuatro colecciones leídas para una pasada de agregación.
type Snapshot struct {
	Hotels   []entity.Hotel
	Rooms    []entity.Room
	Guests   []entity.Guest
	Bookings []entity.Booking
}

// Stats métricas del dashboard. Ver ComputeStats.
type Stats struct {
	TotalHotels   int
	TotalRooms    int
	TotalGuests   int
	TotalBookings int

	ActiveBookings int
	AvailableRooms int
	OccupancyRate  int
	RoomsByStatus  RoomStatusCounts

	TotalRevenue   decimal.Decimal
	MonthlyRevenue decimal.Decimal

	CheckInsToday      int
	CheckOutsToday     int
	CompletedCheckOuts int

	PaidInvoices    int
	PendingInvoices int
	OverdueInvoices int

	TopHotels []TopHotel
}

// ComputeStats pliega el snapshot en las métricas del dashboard.
// Es una función pura de (snapshot, now, topLimit): colecciones vacías producen ceros.
//
// Reservas con estado desconocido solo cuentan en TotalBookings.
func ComputeStats(s Snapshot, now time.Time, topLimit int) Stats {
	rooms := CountRooms(s.Rooms)

	st := Stats{
		TotalHotels:    len(s.Hotels),
		TotalRooms:     len(s.Rooms),
		TotalGuests:    len(s.Guests),
		TotalBookings:  len(s.Bookings),
		AvailableRooms: rooms.Available,
		RoomsByStatus:  rooms,
		OccupancyRate:  OccupancyRate(rooms.Occupied, len(s.Rooms)),
		TotalRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}

	monthStart := now.AddDate(0, 0, -monthlyRevenueWindow)

	for _, b := range s.Bookings {
		if b.IsActive() {
			st.ActiveBookings++
			st.TotalRevenue = st.TotalRevenue.Add(b.TotalAmount)
			if between(b.CreatedAt, monthStart, now) {
				st.MonthlyRevenue = st.MonthlyRevenue.Add(b.TotalAmount)
			}
			if sameDay(b.CheckInDate, now) {
				st.CheckInsToday++
			}
		}

		switch b.Status {
		case entity.BookingStatusCheckedIn, entity.BookingStatusCheckedOut:
			if sameDay(b.CheckOutDate, now) {
				st.CheckOutsToday++
			}
		}
		if b.Status == entity.BookingStatusCheckedOut {
			st.CompletedCheckOuts++
		}
	}

	invoices := DeriveInvoices(s.Bookings, GuestNames(s.Guests), HotelNames(s.Hotels), now)
	counts := CountInvoices(invoices)
	st.PaidInvoices = counts.Paid
	st.PendingInvoices = counts.Pending
	st.OverdueInvoices = counts.Overdue

	st.TopHotels = RankTopHotels(s.Hotels, s.Rooms, s.Bookings, topLimit)
	return st
}
