// Package dashboard contiene los cálculos puros del dashboard de operación hotelera:
// clasificación de habitaciones, facturas derivadas, ventana semanal, ranking de hoteles
// y el agregado de métricas. No hace I/O ni lee el reloj: "now" siempre llega como parámetro.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// RoomCategory categoría operativa de una habitación.
type RoomCategory string

const (
	RoomAvailable   RoomCategory = "available"
	RoomOccupied    RoomCategory = "occupied"
	RoomMaintenance RoomCategory = "maintenance"
	RoomCleaning    RoomCategory = "cleaning"
	RoomInactive    RoomCategory = "inactive"
)

var hundred = decimal.NewFromInt(100)

// ClassifyRoom traduce el código de estado de la API a una categoría operativa.
// Códigos desconocidos caen en inactive; nunca falla.
func ClassifyRoom(status string) RoomCategory {
	switch status {
	case entity.RoomStatusActive:
		return RoomAvailable
	case entity.RoomStatusOccupied:
		return RoomOccupied
	case entity.RoomStatusMaintenance:
		return RoomMaintenance
	case entity.RoomStatusCleaning:
		return RoomCleaning
	default:
		return RoomInactive
	}
}

// RoomStatusCounts conteo de habitaciones por categoría.
type RoomStatusCounts struct {
	Available   int
	Occupied    int
	Maintenance int
	Cleaning    int
	Inactive    int
}

// Add suma una habitación de la categoría indicada.
func (c *RoomStatusCounts) Add(cat RoomCategory) {
	switch cat {
	case RoomAvailable:
		c.Available++
	case RoomOccupied:
		c.Occupied++
	case RoomMaintenance:
		c.Maintenance++
	case RoomCleaning:
		c.Cleaning++
	default:
		c.Inactive++
	}
}

// Total suma todas las categorías.
func (c RoomStatusCounts) Total() int {
	return c.Available + c.Occupied + c.Maintenance + c.Cleaning + c.Inactive
}

// CountRooms clasifica cada habitación y devuelve los conteos.
func CountRooms(rooms []entity.Room) RoomStatusCounts {
	var c RoomStatusCounts
	for _, r := range rooms {
		c.Add(ClassifyRoom(r.Status))
	}
	return c
}

// OccupancyRate = round(occupied / total * 100), redondeo half away from zero.
// Devuelve 0 si total es 0. Es la única fórmula de ocupación del paquete.
func OccupancyRate(occupied, total int) int {
	if total <= 0 || occupied <= 0 {
		return 0
	}
	if occupied >= total {
		return 100
	}
	return int(decimal.NewFromInt(int64(occupied)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart())
}
