package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo lectura de reservas (y sus pagos) desde la réplica.
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

// List devuelve las reservas ordenadas por fecha de creación.
// Con IncludePayments los pagos se cargan en una sola consulta y se anexan a su reserva.
func (r *BookingRepo) List(ctx context.Context, filter repository.BookingFilter) ([]entity.Booking, error) {
	const query = `
		SELECT id, hotel_id, code, status, check_in_date, check_out_date,
		       adults, children, total_amount, currency, created_at, main_guest_id
		FROM bookings
		WHERE ($1::TEXT IS NULL OR hotel_id = $1)
		ORDER BY created_at, id`

	rows, err := r.q.Query(ctx, query, hotelArg(filter.HotelID))
	if err != nil {
		return nil, wrapQueryError("list bookings", err)
	}
	defer rows.Close()

	out := make([]entity.Booking, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			b           entity.Booking
			total       decimal.NullDecimal
			mainGuestID *string
		)
		if err := rows.Scan(
			&b.ID, &b.HotelID, &b.Code, &b.Status, &b.CheckInDate, &b.CheckOutDate,
			&b.Adults, &b.Children, &total, &b.Currency, &b.CreatedAt, &mainGuestID,
		); err != nil {
			return nil, wrapQueryError("scan booking", err)
		}
		b.TotalAmount = decimal.Zero
		if total.Valid {
			b.TotalAmount = total.Decimal
		}
		b.MainGuestID = derefString(mainGuestID)
		b.Payments = []entity.Payment{}
		index[b.ID] = len(out)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list bookings", err)
	}
	rows.Close()

	if !filter.IncludePayments || len(out) == 0 {
		return out, nil
	}
	if err := r.attachPayments(ctx, filter.HotelID, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepo) attachPayments(ctx context.Context, hotelID string, bookings []entity.Booking, index map[string]int) error {
	const query = `
		SELECT p.id, p.booking_id, p.status, p.amount, COALESCE(p.paid_at, p.created_at)
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE ($1::TEXT IS NULL OR b.hotel_id = $1)
		ORDER BY p.created_at, p.id`

	rows, err := r.q.Query(ctx, query, hotelArg(hotelID))
	if err != nil {
		return wrapQueryError("list payments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p         entity.Payment
			bookingID string
		)
		if err := rows.Scan(&p.ID, &bookingID, &p.Status, &p.Amount, &p.PaidAt); err != nil {
			return wrapQueryError("scan payment", err)
		}
		if i, ok := index[bookingID]; ok {
			bookings[i].Payments = append(bookings[i].Payments, p)
		}
	}
	if err := rows.Err(); err != nil {
		return wrapQueryError("list payments", err)
	}
	return nil
}
