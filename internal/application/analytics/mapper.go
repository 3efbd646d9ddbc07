package analytics

import (
	"time"

	"github.com/jhoicas/hotel-dashboard-api/internal/application/dto"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

func toStatsDTO(s dashboard.Stats, now time.Time) *dto.DashboardStatsDTO {
	return &dto.DashboardStatsDTO{
		TotalHotels:    s.TotalHotels,
		TotalRooms:     s.TotalRooms,
		TotalGuests:    s.TotalGuests,
		TotalBookings:  s.TotalBookings,
		ActiveBookings: s.ActiveBookings,
		AvailableRooms: s.AvailableRooms,
		OccupancyRate:  s.OccupancyRate,
		RoomsByStatus: dto.RoomsByStatusDTO{
			Available:   s.RoomsByStatus.Available,
			Occupied:    s.RoomsByStatus.Occupied,
			Maintenance: s.RoomsByStatus.Maintenance,
			Cleaning:    s.RoomsByStatus.Cleaning,
			Inactive:    s.RoomsByStatus.Inactive,
		},
		TotalRevenue:       s.TotalRevenue.Round(2),
		MonthlyRevenue:     s.MonthlyRevenue.Round(2),
		CheckInsToday:      s.CheckInsToday,
		CheckOutsToday:     s.CheckOutsToday,
		CompletedCheckOuts: s.CompletedCheckOuts,
		PaidInvoices:       s.PaidInvoices,
		PendingInvoices:    s.PendingInvoices,
		OverdueInvoices:    s.OverdueInvoices,
		TopHotels:          toTopHotelDTOs(s.TopHotels),
		GeneratedAt:        now,
	}
}

func toTopHotelDTOs(in []dashboard.TopHotel) []dto.TopHotelDTO {
	out := make([]dto.TopHotelDTO, 0, len(in))
	for _, h := range in {
		out = append(out, dto.TopHotelDTO{
			ID:            h.ID,
			Name:          h.Name,
			TotalBookings: h.TotalBookings,
			OccupancyRate: h.OccupancyRate,
		})
	}
	return out
}

func toBookingDTO(b entity.Booking) dto.BookingDTO {
	return dto.BookingDTO{
		ID:           b.ID,
		HotelID:      b.HotelID,
		Code:         b.Code,
		Status:       b.Status,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalAmount:  b.TotalAmount.Round(2),
		Currency:     b.Currency,
		MainGuestID:  b.MainGuestID,
	}
}

func toInvoiceDTO(inv entity.DerivedInvoice) dto.InvoiceDTO {
	return dto.InvoiceDTO{
		ID:          inv.ID,
		Number:      inv.Number,
		GuestID:     inv.GuestID,
		HotelID:     inv.HotelID,
		BookingID:   inv.BookingID,
		Amount:      inv.Amount.Round(2),
		PaidAmount:  inv.PaidAmount.Round(2),
		Balance:     inv.Balance().Round(2),
		Currency:    inv.Currency,
		Status:      inv.Status,
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		PaymentDate: inv.PaymentDate,
		GuestName:   inv.GuestName,
		HotelName:   inv.HotelName,
	}
}
