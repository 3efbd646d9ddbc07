// Package mocks dobles de prueba (testify/mock) de los puertos de lectura.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
)

var (
	_ repository.HotelRepository   = (*HotelRepository)(nil)
	_ repository.RoomRepository    = (*RoomRepository)(nil)
	_ repository.GuestRepository   = (*GuestRepository)(nil)
	_ repository.BookingRepository = (*BookingRepository)(nil)
)

type HotelRepository struct{ mock.Mock }

func (m *HotelRepository) List(ctx context.Context) ([]entity.Hotel, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]entity.Hotel)
	return v, args.Error(1)
}

type RoomRepository struct{ mock.Mock }

func (m *RoomRepository) List(ctx context.Context, hotelID string) ([]entity.Room, error) {
	args := m.Called(ctx, hotelID)
	v, _ := args.Get(0).([]entity.Room)
	return v, args.Error(1)
}

type GuestRepository struct{ mock.Mock }

func (m *GuestRepository) List(ctx context.Context, hotelID string) ([]entity.Guest, error) {
	args := m.Called(ctx, hotelID)
	v, _ := args.Get(0).([]entity.Guest)
	return v, args.Error(1)
}

type BookingRepository struct{ mock.Mock }

func (m *BookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]entity.Booking, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]entity.Booking)
	return v, args.Error(1)
}
