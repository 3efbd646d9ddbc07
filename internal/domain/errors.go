package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrFetchFailed  = errors.New("no se pudieron cargar los datos del dashboard")
)

// FetchError indica que una de las lecturas obligatorias del dashboard falló.
// Resource identifica la colección ("hotels", "rooms", "guests", "bookings").
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("dashboard: cargar %s: %v", e.Resource, e.Err)
}

// Unwrap expone la causa original.
func (e *FetchError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrFetchFailed).
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }
