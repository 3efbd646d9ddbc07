package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// NameLookup resuelve id → nombre. Un id ausente resuelve a "".
type NameLookup map[string]string

// Name devuelve el nombre del id o "" si no existe.
func (l NameLookup) Name(id string) string {
	if l == nil {
		return ""
	}
	return l[id]
}

// GuestNames construye el lookup de huéspedes por id.
func GuestNames(guests []entity.Guest) NameLookup {
	l := make(NameLookup, len(guests))
	for _, g := range guests {
		l[g.ID] = g.FullName
	}
	return l
}

// HotelNames construye el lookup de hoteles por id.
func HotelNames(hotels []entity.Hotel) NameLookup {
	l := make(NameLookup, len(hotels))
	for _, h := range hotels {
		l[h.ID] = h.Name
	}
	return l
}

// DeriveInvoice sintetiza la factura de una reserva.
//
// Reglas:
//   - CANCELLED → nil (no hay factura).
//   - paid     si existe al menos un pago PAID (basta con su presencia).
//   - overdue  si el check-out (vencimiento) es de un día anterior a hoy.
//   - pending  en cualquier otro caso.
func DeriveInvoice(b entity.Booking, guests, hotels NameLookup, now time.Time) *entity.DerivedInvoice {
	if b.IsCancelled() {
		return nil
	}

	paidAmount := decimal.Zero
	var paymentDate *time.Time
	for _, p := range b.NormalizedPayments() {
		if !p.IsPaid() {
			continue
		}
		paidAmount = paidAmount.Add(p.Amount)
		if paymentDate == nil {
			d := p.PaidAt
			paymentDate = &d
		}
	}

	status := entity.InvoiceStatusPending
	switch {
	case paymentDate != nil:
		status = entity.InvoiceStatusPaid
	case dayBefore(b.CheckOutDate, now):
		status = entity.InvoiceStatusOverdue
	}

	return &entity.DerivedInvoice{
		ID:          b.ID,
		Number:      b.Code,
		GuestID:     b.MainGuestID,
		HotelID:     b.HotelID,
		BookingID:   b.ID,
		Amount:      b.TotalAmount,
		PaidAmount:  paidAmount,
		Currency:    b.Currency,
		Status:      status,
		IssueDate:   b.CreatedAt,
		DueDate:     b.CheckOutDate,
		PaymentDate: paymentDate,
		GuestName:   guests.Name(b.MainGuestID),
		HotelName:   hotels.Name(b.HotelID),
	}
}

// DeriveInvoices aplica DeriveInvoice a todas las reservas y descarta las canceladas.
// Conserva el orden de entrada.
func DeriveInvoices(bookings []entity.Booking, guests, hotels NameLookup, now time.Time) []entity.DerivedInvoice {
	out := make([]entity.DerivedInvoice, 0, len(bookings))
	for _, b := range bookings {
		if inv := DeriveInvoice(b, guests, hotels, now); inv != nil {
			out = append(out, *inv)
		}
	}
	return out
}

// InvoiceStatusCounts conteo de facturas por estado.
type InvoiceStatusCounts struct {
	Paid    int
	Pending int
	Overdue int
}

// CountInvoices cuenta facturas por estado.
func CountInvoices(invoices []entity.DerivedInvoice) InvoiceStatusCounts {
	var c InvoiceStatusCounts
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			c.Paid++
		case entity.InvoiceStatusOverdue:
			c.Overdue++
		default:
			c.Pending++
		}
	}
	return c
}
