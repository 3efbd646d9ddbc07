package repository

import (
	"context"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// BookingFilter filtros para listar reservas.
type BookingFilter struct {
	HotelID         string // vacío = todos los hoteles
	IncludePayments bool   // true = adjuntar los pagos de cada reserva
}

// BookingRepository puerto de lectura de reservas.
// Las implementaciones son read-only (no modifican datos).
type BookingRepository interface {
	List(ctx context.Context, filter BookingFilter) ([]entity.Booking, error)
}
