package dashboard

import (
	"sort"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// DefaultTopHotels número de hoteles del widget "Top hoteles".
const DefaultTopHotels = 3

// TopHotel resumen de un hotel para el ranking.
type TopHotel struct {
	ID            string
	Name          string
	TotalBookings int
	OccupancyRate int
}

// RankTopHotels ordena los hoteles por número de reservas (desc) y devuelve los primeros limit.
// Los empates conservan el orden de entrada. limit <= 0 usa DefaultTopHotels.
// Reservas y habitaciones de hoteles que no están en la lista se ignoran.
func RankTopHotels(hotels []entity.Hotel, rooms []entity.Room, bookings []entity.Booking, limit int) []TopHotel {
	if limit <= 0 {
		limit = DefaultTopHotels
	}
	if len(hotels) == 0 {
		return []TopHotel{}
	}

	bookingsByHotel := make(map[string]int, len(hotels))
	for _, b := range bookings {
		bookingsByHotel[b.HotelID]++
	}
	roomsByHotel := make(map[string]*RoomStatusCounts, len(hotels))
	for _, r := range rooms {
		c, ok := roomsByHotel[r.HotelID]
		if !ok {
			c = &RoomStatusCounts{}
			roomsByHotel[r.HotelID] = c
		}
		c.Add(ClassifyRoom(r.Status))
	}

	ranked := make([]TopHotel, 0, len(hotels))
	for _, h := range hotels {
		occ := 0
		if c, ok := roomsByHotel[h.ID]; ok {
			occ = OccupancyRate(c.Occupied, c.Total())
		}
		ranked = append(ranked, TopHotel{
			ID:            h.ID,
			Name:          h.Name,
			TotalBookings: bookingsByHotel[h.ID],
			OccupancyRate: occ,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalBookings > ranked[j].TotalBookings
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
