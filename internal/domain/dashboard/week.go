package dashboard

import (
	"sort"
	"time"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// WeekWindow devuelve la semana calendario (domingo a sábado) que contiene now:
// domingo 00:00:00.000 – sábado 23:59:59.999, en la zona de now.
func WeekWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()
	today := startOfDay(now, loc)
	start = today.AddDate(0, 0, -int(today.Weekday()))
	end = time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// FilterCurrentWeek devuelve las reservas no canceladas que se cruzan con la semana de now,
// ordenadas por check-in ascendente. Una reserva entra si:
//
//	(a) el check-in cae dentro de la semana, o
//	(b) el check-out cae dentro de la semana, o
//	(c) la estadía cubre la semana completa.
//
// Las reservas repetidas (mismo ID) se incluyen una sola vez.
func FilterCurrentWeek(bookings []entity.Booking, now time.Time) []entity.Booking {
	start, end := WeekWindow(now)

	out := make([]entity.Booking, 0)
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsCancelled() || !overlapsWeek(b, start, end) {
			continue
		}
		if b.ID != "" {
			if _, dup := seen[b.ID]; dup {
				continue
			}
			seen[b.ID] = struct{}{}
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CheckInDate.Before(out[j].CheckInDate)
	})
	return out
}

func overlapsWeek(b entity.Booking, start, end time.Time) bool {
	in, out := b.CheckInDate, b.CheckOutDate
	return between(in, start, end) ||
		between(out, start, end) ||
		(!in.After(start) && !out.Before(end))
}
