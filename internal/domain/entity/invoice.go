package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura derivada.
const (
	InvoiceStatusPaid    = "paid"    // Existe al menos un pago PAID
	InvoiceStatusPending = "pending" // Sin pago y aún no vence
	InvoiceStatusOverdue = "overdue" // Sin pago y la fecha de check-out ya pasó
)

// DerivedInvoice es una factura sintetizada a partir de una reserva y sus pagos.
// No se persiste: se recalcula en cada carga del dashboard.
type DerivedInvoice struct {
	ID          string // = Booking.ID
	Number      string // = Booking.Code
	GuestID     string
	HotelID     string
	BookingID   string
	Amount      decimal.Decimal // = Booking.TotalAmount
	PaidAmount  decimal.Decimal // suma de los pagos PAID
	Currency    string
	Status      string
	IssueDate   time.Time  // = Booking.CreatedAt
	DueDate     time.Time  // = Booking.CheckOutDate
	PaymentDate *time.Time // fecha del primer pago PAID, nil si no hay
	GuestName   string
	HotelName   string
}

// Balance devuelve el saldo pendiente (nunca negativo).
func (i DerivedInvoice) Balance() decimal.Decimal {
	b := i.Amount.Sub(i.PaidAmount)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}
