package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago conocidos. Cualquier otro valor cuenta como no pagado.
const (
	PaymentStatusPaid    = "PAID"
	PaymentStatusPending = "PENDING"
)

// Payment es un pago asociado a una reserva.
type Payment struct {
	ID     string
	Status string
	Amount decimal.Decimal
	PaidAt time.Time // fecha del pago; los adaptadores usan la fecha de creación si falta
}

// IsPaid indica si el pago está en estado PAID.
func (p Payment) IsPaid() bool { return p.Status == PaymentStatusPaid }
