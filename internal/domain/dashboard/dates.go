package dashboard

import "time"

// startOfDay devuelve las 00:00:00 del día de t en la zona loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// sameDay compara fechas de calendario usando la zona de now.
func sameDay(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return startOfDay(t, now.Location()).Equal(startOfDay(now, now.Location()))
}

// dayBefore indica si la fecha de calendario de t es anterior a la de now.
func dayBefore(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return startOfDay(t, now.Location()).Before(startOfDay(now, now.Location()))
}

// between indica si t ∈ [start, end].
func between(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
