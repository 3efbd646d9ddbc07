package hotelapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// ── Estructuras del contrato JSON de la API de gestión ────────────────────────
//
// Los montos usan decimal.Decimal, que acepta número, string o null.
// Las fechas llegan como string (YYYY-MM-DD o RFC3339) y se convierten con la zona del cliente.

type hotelJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive"`
}

type roomJSON struct {
	ID           string     `json:"id"`
	HotelID      string     `json:"hotelId"`
	Number       flexString `json:"number"`
	Status       string     `json:"status"`
	MaxOccupancy *int       `json:"maxOccupancy"`
}

type guestJSON struct {
	ID        string `json:"id"`
	HotelID   string `json:"hotelId"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type paymentJSON struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    string          `json:"paidAt"`
	CreatedAt string          `json:"createdAt"`
}

type bookingJSON struct {
	ID           string          `json:"id"`
	HotelID      string          `json:"hotelId"`
	Code         string          `json:"code"`
	Status       string          `json:"status"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Adults       int             `json:"adults"`
	Children     int             `json:"children"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Currency     string          `json:"currency"`
	CreatedAt    string          `json:"createdAt"`
	MainGuestID  string          `json:"mainGuestId"`
	Payments     []paymentJSON   `json:"payments"`
}

// flexString acepta string o número (ej. "number": 101 o "number": "101A").
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(b)
	return nil
}

// decodeList acepta un arreglo JSON o el sobre {"data": [...]}.
func decodeList[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	if raw[0] == '[' {
		var out []T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
		return nonNil(out), nil
	}
	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Data), nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

// Formatos de fecha aceptados, en orden de prueba.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime interpreta s en loc cuando no trae zona. "" devuelve el instante cero.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}

// ── Conversión a entidades ────────────────────────────────────────────────────

func (h hotelJSON) toEntity() entity.Hotel {
	active := true
	if h.IsActive != nil {
		active = *h.IsActive
	}
	return entity.Hotel{ID: h.ID, Name: h.Name, IsActive: active}
}

func (r roomJSON) toEntity() entity.Room {
	return entity.Room{
		ID:           r.ID,
		HotelID:      r.HotelID,
		Number:       string(r.Number),
		Status:       r.Status,
		MaxOccupancy: r.MaxOccupancy,
	}
}

func (g guestJSON) toEntity() entity.Guest {
	name := strings.TrimSpace(g.FullName)
	if name == "" {
		name = strings.TrimSpace(g.FirstName + " " + g.LastName)
	}
	return entity.Guest{ID: g.ID, HotelID: g.HotelID, FullName: name, Email: g.Email}
}

func (p paymentJSON) toEntity(loc *time.Location) (entity.Payment, error) {
	raw := p.PaidAt
	if raw == "" {
		raw = p.CreatedAt
	}
	paidAt, err := parseTime(raw, loc)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("pago %s: %w", p.ID, err)
	}
	return entity.Payment{ID: p.ID, Status: p.Status, Amount: p.Amount, PaidAt: paidAt}, nil
}

func (b bookingJSON) toEntity(loc *time.Location) (entity.Booking, error) {
	checkIn, err := parseTime(b.CheckInDate, loc)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("reserva %s: checkInDate: %w", b.ID, err)
	}
	checkOut, err := parseTime(b.CheckOutDate, loc)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("reserva %s: checkOutDate: %w", b.ID, err)
	}
	createdAt, err := parseTime(b.CreatedAt, loc)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("reserva %s: createdAt: %w", b.ID, err)
	}

	payments := make([]entity.Payment, 0, len(b.Payments))
	for _, pj := range b.Payments {
		p, err := pj.toEntity(loc)
		if err != nil {
			return entity.Booking{}, fmt.Errorf("reserva %s: %w", b.ID, err)
		}
		payments = append(payments, p)
	}

	return entity.Booking{
		ID:           b.ID,
		HotelID:      b.HotelID,
		Code:         b.Code,
		Status:       b.Status,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalAmount:  b.TotalAmount,
		Currency:     b.Currency,
		CreatedAt:    createdAt,
		MainGuestID:  b.MainGuestID,
		Payments:     payments,
	}, nil
}
