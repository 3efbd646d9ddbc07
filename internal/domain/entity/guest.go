package entity

// Guest representa un huésped registrado en un hotel.
// El dashboard solo lo usa para conteos y para resolver nombres en facturas.
type Guest struct {
	ID       string
	HotelID  string
	FullName string
	Email    string // vacío si no se informó
}
