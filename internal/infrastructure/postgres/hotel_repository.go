package postgres

import (
	"context"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
)

var (
	_ repository.HotelRepository = (*HotelRepo)(nil)
	_ repository.RoomRepository  = (*RoomRepo)(nil)
	_ repository.GuestRepository = (*GuestRepo)(nil)
)

// HotelRepo lectura de hoteles desde la réplica.
type HotelRepo struct {
	q Querier
}

// NewHotelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHotelRepository(q Querier) *HotelRepo {
	return &HotelRepo{q: q}
}

// List devuelve todos los hoteles en orden de alta.
func (r *HotelRepo) List(ctx context.Context) ([]entity.Hotel, error) {
	const query = `SELECT id, name, is_active FROM hotels ORDER BY created_at, id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapQueryError("list hotels", err)
	}
	defer rows.Close()

	out := make([]entity.Hotel, 0)
	for rows.Next() {
		var h entity.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.IsActive); err != nil {
			return nil, wrapQueryError("scan hotel", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list hotels", err)
	}
	return out, nil
}

// RoomRepo lectura de habitaciones desde la réplica.
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// List devuelve las habitaciones; hotelID vacío = todas.
func (r *RoomRepo) List(ctx context.Context, hotelID string) ([]entity.Room, error) {
	const query = `
		SELECT id, hotel_id, number, status, max_occupancy
		FROM rooms
		WHERE ($1::TEXT IS NULL OR hotel_id = $1)
		ORDER BY hotel_id, number, id`

	rows, err := r.q.Query(ctx, query, hotelArg(hotelID))
	if err != nil {
		return nil, wrapQueryError("list rooms", err)
	}
	defer rows.Close()

	out := make([]entity.Room, 0)
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.Number, &room.Status, &room.MaxOccupancy); err != nil {
			return nil, wrapQueryError("scan room", err)
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list rooms", err)
	}
	return out, nil
}

// GuestRepo lectura de huéspedes desde la réplica.
type GuestRepo struct {
	q Querier
}

// NewGuestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuestRepository(q Querier) *GuestRepo {
	return &GuestRepo{q: q}
}

// List devuelve los huéspedes; hotelID vacío = todos.
func (r *GuestRepo) List(ctx context.Context, hotelID string) ([]entity.Guest, error) {
	const query = `
		SELECT id, hotel_id, full_name, email
		FROM guests
		WHERE ($1::TEXT IS NULL OR hotel_id = $1)
		ORDER BY hotel_id, id`

	rows, err := r.q.Query(ctx, query, hotelArg(hotelID))
	if err != nil {
		return nil, wrapQueryError("list guests", err)
	}
	defer rows.Close()

	out := make([]entity.Guest, 0)
	for rows.Next() {
		var (
			g     entity.Guest
			email *string
		)
		if err := rows.Scan(&g.ID, &g.HotelID, &g.FullName, &email); err != nil {
			return nil, wrapQueryError("scan guest", err)
		}
		g.Email = derefString(email)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list guests", err)
	}
	return out, nil
}
