package repository

import (
	"context"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// RoomRepository puerto de lectura de habitaciones.
type RoomRepository interface {
	// List devuelve las habitaciones; hotelID vacío = todos los hoteles.
	List(ctx context.Context, hotelID string) ([]entity.Room, error)
}
