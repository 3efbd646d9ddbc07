package entity

// Códigos de estado de habitación reportados por la API de gestión.
// Cualquier otro valor se trata como desconocido.
const (
	RoomStatusActive      = "ACTIVE"      // Disponible para la venta
	RoomStatusOccupied    = "OCCUPIED"    // Con huésped alojado
	RoomStatusMaintenance = "MAINTENANCE" // Fuera de servicio por mantenimiento
	RoomStatusCleaning    = "CLEANING"    // En limpieza
	RoomStatusInactive    = "INACTIVE"    // Dada de baja
)

// Room representa una habitación de un hotel.
type Room struct {
	ID           string
	HotelID      string
	Number       string
	Status       string
	MaxOccupancy *int // nil si la API no lo informa
}
