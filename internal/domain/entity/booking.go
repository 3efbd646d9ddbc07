package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva.
const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
	BookingStatusNoShow     = "NO_SHOW"
)

// Booking representa una reserva con sus pagos anidados (opcionales).
type Booking struct {
	ID           string
	HotelID      string
	Code         string
	Status       string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Adults       int
	Children     int
	TotalAmount  decimal.Decimal
	Currency     string
	CreatedAt    time.Time
	MainGuestID  string
	Payments     []Payment
}

// IsActive indica si la reserva está CONFIRMED o CHECKED_IN.
func (b Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCheckedIn
}

// IsCancelled indica si la reserva fue cancelada.
func (b Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// NormalizedPayments devuelve los pagos de la reserva; nunca nil.
func (b Booking) NormalizedPayments() []Payment {
	if b.Payments == nil {
		return []Payment{}
	}
	return b.Payments
}
