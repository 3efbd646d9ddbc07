package repository

import (
	"context"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// HotelRepository puerto de lectura de hoteles.
type HotelRepository interface {
	// List devuelve todos los hoteles visibles para el llamador.
	List(ctx context.Context) ([]entity.Hotel, error)
}
