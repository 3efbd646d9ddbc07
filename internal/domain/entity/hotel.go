package entity

// Hotel representa un hotel tal como lo expone la API de gestión.
// Es de solo lectura para el motor de analítica.
type Hotel struct {
	ID       string
	Name     string
	IsActive bool
}
