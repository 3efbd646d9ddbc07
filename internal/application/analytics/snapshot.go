package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
)

// loadSnapshot lee las cuatro colecciones en paralelo.
//
// Cuatro goroutines independientes (ninguna depende de otra):
//  1. hoteles
//  2. habitaciones   (filtradas por hotelID si viene)
//  3. huéspedes      (filtrados por hotelID si viene)
//  4. reservas+pagos (filtradas por hotelID si viene)
//
// La primera lectura que falla cancela a las demás. Solo se arma el snapshot
// cuando las cuatro terminaron bien: no hay resultados parciales.
func (uc *DashboardUseCase) loadSnapshot(ctx context.Context, hotelID string) (dashboard.Snapshot, error) {
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type hotelsResult struct {
		rows []entity.Hotel
		err  error
	}
	type roomsResult struct {
		rows []entity.Room
		err  error
	}
	type guestsResult struct {
		rows []entity.Guest
		err  error
	}
	type bookingsResult struct {
		rows []entity.Booking
		err  error
	}

	hotelsCh := make(chan hotelsResult, 1)
	roomsCh := make(chan roomsResult, 1)
	guestsCh := make(chan guestsResult, 1)
	bookingsCh := make(chan bookingsResult, 1)

	// failed registra el orden en que fallaron las lecturas para reportar la causa real
	// y no el "context canceled" que reciben las demás.
	failed := make(chan string, 4)
	fail := func(resource string, err error) {
		if err != nil {
			failed <- resource
			cancel()
		}
	}

	go func() {
		rows, err := uc.hotelRepo.List(ctx)
		fail(resourceHotels, err)
		hotelsCh <- hotelsResult{rows, err}
	}()
	go func() {
		rows, err := uc.roomRepo.List(ctx, hotelID)
		fail(resourceRooms, err)
		roomsCh <- roomsResult{rows, err}
	}()
	go func() {
		rows, err := uc.guestRepo.List(ctx, hotelID)
		fail(resourceGuests, err)
		guestsCh <- guestsResult{rows, err}
	}()
	go func() {
		rows, err := uc.bookingRepo.List(ctx, repository.BookingFilter{HotelID: hotelID, IncludePayments: true})
		fail(resourceBookings, err)
		bookingsCh <- bookingsResult{rows, err}
	}()

	hotels := <-hotelsCh
	rooms := <-roomsCh
	guests := <-guestsCh
	bookings := <-bookingsCh
	close(failed)

	errs := map[string]error{
		resourceHotels:   hotels.err,
		resourceRooms:    rooms.err,
		resourceGuests:   guests.err,
		resourceBookings: bookings.err,
	}
	if resource, ok := firstFailure(failed, errs); ok {
		err := errs[resource]
		uc.log.Warn().Err(err).Str("resource", resource).Str("hotel_id", hotelID).
			Msg("dashboard: lectura fallida, se descarta la agregación")
		return dashboard.Snapshot{}, &domain.FetchError{Resource: resource, Err: err}
	}

	snap := dashboard.Snapshot{
		Hotels:   hotels.rows,
		Rooms:    rooms.rows,
		Guests:   guests.rows,
		Bookings: normalizeBookings(bookings.rows),
	}
	if hotelID != "" {
		snap.Hotels = onlyHotel(snap.Hotels, hotelID)
		if len(snap.Hotels) == 0 {
			return dashboard.Snapshot{}, domain.ErrNotFound
		}
	}

	uc.log.Debug().
		Str("hotel_id", hotelID).
		Int("hotels", len(snap.Hotels)).
		Int("rooms", len(snap.Rooms)).
		Int("guests", len(snap.Guests)).
		Int("bookings", len(snap.Bookings)).
		Dur("elapsed", time.Since(start)).
		Msg("dashboard: snapshot cargado")
	return snap, nil
}

// firstFailure elige la lectura a reportar: la primera que falló por una causa distinta
// de la cancelación provocada por otra; si todas son cancelaciones, la primera en fallar.
func firstFailure(order <-chan string, errs map[string]error) (string, bool) {
	var first string
	for resource := range order {
		if first == "" {
			first = resource
		}
		if !errors.Is(errs[resource], context.Canceled) {
			return resource, true
		}
	}
	return first, first != ""
}

// normalizeBookings garantiza que Payments nunca sea nil.
// Devuelve una copia: no muta lo que entregó el repositorio.
func normalizeBookings(in []entity.Booking) []entity.Booking {
	out := make([]entity.Booking, len(in))
	for i, b := range in {
		b.Payments = b.NormalizedPayments()
		out[i] = b
	}
	return out
}

func onlyHotel(hotels []entity.Hotel, hotelID string) []entity.Hotel {
	for _, h := range hotels {
		if h.ID == hotelID {
			return []entity.Hotel{h}
		}
	}
	return nil
}
