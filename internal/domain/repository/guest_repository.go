package repository

import (
	"context"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// GuestRepository puerto de lectura de huéspedes.
type GuestRepository interface {
	// List devuelve los huéspedes; hotelID vacío = todos los hoteles.
	List(ctx context.Context, hotelID string) ([]entity.Guest, error)
}
