package hotelapi

import (
	"context"
	"fmt"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que los adaptadores implementan los puertos.
var (
	_ repository.HotelRepository   = (*HotelRepository)(nil)
	_ repository.RoomRepository    = (*RoomRepository)(nil)
	_ repository.GuestRepository   = (*GuestRepository)(nil)
	_ repository.BookingRepository = (*BookingRepository)(nil)
)

// HotelRepository GET {base}/hotels.
type HotelRepository struct{ c *Client }

// NewHotelRepository crea el repositorio de hoteles.
func NewHotelRepository(c *Client) *HotelRepository { return &HotelRepository{c: c} }

func (r *HotelRepository) List(ctx context.Context) ([]entity.Hotel, error) {
	rows, err := list[hotelJSON](ctx, r.c, "hotels", nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Hotel, 0, len(rows))
	for _, h := range rows {
		out = append(out, h.toEntity())
	}
	return out, nil
}

// RoomRepository GET {base}/rooms?hotelId=.
type RoomRepository struct{ c *Client }

// NewRoomRepository crea el repositorio de habitaciones.
func NewRoomRepository(c *Client) *RoomRepository { return &RoomRepository{c: c} }

func (r *RoomRepository) List(ctx context.Context, hotelID string) ([]entity.Room, error) {
	rows, err := list[roomJSON](ctx, r.c, "rooms", hotelQuery(hotelID))
	if err != nil {
		return nil, err
	}
	out := make([]entity.Room, 0, len(rows))
	for _, room := range rows {
		out = append(out, room.toEntity())
	}
	return out, nil
}

// GuestRepository GET {base}/guests?hotelId=.
type GuestRepository struct{ c *Client }

// NewGuestRepository crea el repositorio de huéspedes.
func NewGuestRepository(c *Client) *GuestRepository { return &GuestRepository{c: c} }

func (r *GuestRepository) List(ctx context.Context, hotelID string) ([]entity.Guest, error) {
	rows, err := list[guestJSON](ctx, r.c, "guests", hotelQuery(hotelID))
	if err != nil {
		return nil, err
	}
	out := make([]entity.Guest, 0, len(rows))
	for _, g := range rows {
		out = append(out, g.toEntity())
	}
	return out, nil
}

// BookingRepository GET {base}/bookings?hotelId=&includePayments=true.
type BookingRepository struct{ c *Client }

// NewBookingRepository crea el repositorio de reservas.
func NewBookingRepository(c *Client) *BookingRepository { return &BookingRepository{c: c} }

func (r *BookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]entity.Booking, error) {
	q := hotelQuery(filter.HotelID)
	if filter.IncludePayments {
		q.Set("includePayments", "true")
	}
	rows, err := list[bookingJSON](ctx, r.c, "bookings", q)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Booking, 0, len(rows))
	for _, bj := range rows {
		b, err := bj.toEntity(r.c.loc)
		if err != nil {
			return nil, fmt.Errorf("hotelapi: bookings: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}
