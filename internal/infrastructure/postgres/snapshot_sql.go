package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// Statement sentencia parametrizada ($1, $2, ...) lista para Exec o para volcarse como SQL.
type Statement struct {
	SQL  string
	Args []any
}

const (
	insertHotel = `INSERT INTO hotels (id, name, is_active) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`
	insertRoom  = `INSERT INTO rooms (id, hotel_id, number, status, max_occupancy) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`
	insertGuest = `INSERT INTO guests (id, hotel_id, full_name, email) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`

	insertBooking = `INSERT INTO bookings (id, hotel_id, code, status, check_in_date, check_out_date, adults, children, total_amount, currency, created_at, main_guest_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, clock_timestamp()), $12) ON CONFLICT (id) DO NOTHING`

	insertPayment = `INSERT INTO payments (id, booking_id, status, amount, paid_at, created_at) VALUES ($1, $2, $3, $4, $5, COALESCE($5, clock_timestamp())) ON CONFLICT (id) DO NOTHING`
)

// SnapshotStatements genera los INSERT idempotentes del snapshot, respetando el orden
// de las claves foráneas (hoteles, habitaciones, huéspedes, reservas, pagos).
//
// Las reservas sin check-in o check-out no caben en el esquema (columnas NOT NULL): se omiten
// junto con sus pagos y sus ids se devuelven en skipped. Sin createdAt se usa la hora de carga.
func SnapshotStatements(s dashboard.Snapshot) (stmts []Statement, skipped []string) {
	out := make([]Statement, 0, len(s.Hotels)+len(s.Rooms)+len(s.Guests)+2*len(s.Bookings))
	bookings := make([]entity.Booking, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		if b.CheckInDate.IsZero() || b.CheckOutDate.IsZero() {
			skipped = append(skipped, b.ID)
			continue
		}
		bookings = append(bookings, b)
	}

	for _, h := range s.Hotels {
		out = append(out, Statement{insertHotel, []any{h.ID, h.Name, h.IsActive}})
	}
	for _, r := range s.Rooms {
		var maxOcc any
		if r.MaxOccupancy != nil {
			maxOcc = *r.MaxOccupancy
		}
		out = append(out, Statement{insertRoom, []any{r.ID, r.HotelID, r.Number, r.Status, maxOcc}})
	}
	for _, g := range s.Guests {
		out = append(out, Statement{insertGuest, []any{g.ID, g.HotelID, g.FullName, nullIfEmpty(g.Email)}})
	}
	for _, b := range bookings {
		currency := b.Currency
		if currency == "" {
			currency = "COP"
		}
		out = append(out, Statement{insertBooking, []any{
			b.ID, b.HotelID, b.Code, b.Status, b.CheckInDate, b.CheckOutDate,
			b.Adults, b.Children, b.TotalAmount, currency, nullIfZero(b.CreatedAt), nullIfEmpty(b.MainGuestID),
		}})
	}
	for _, b := range bookings {
		for _, p := range b.NormalizedPayments() {
			out = append(out, Statement{insertPayment, []any{p.ID, b.ID, p.Status, p.Amount, nullIfZero(p.PaidAt)}})
		}
	}
	return out, skipped
}

// ExecStatements ejecuta las sentencias en orden y suma las filas afectadas.
func ExecStatements(ctx context.Context, q Querier, stmts []Statement) (int64, error) {
	var total int64
	for i, st := range stmts {
		tag, err := q.Exec(ctx, st.SQL, st.Args...)
		if err != nil {
			return total, wrapQueryError(fmt.Sprintf("sentencia %d", i+1), err)
		}
		total += tag.RowsAffected()
	}
	return total, nil
}

// RenderSQL sustituye los placeholders por literales SQL.
func RenderSQL(st Statement) (string, error) {
	var b strings.Builder
	sql := st.SQL
	for i := 0; i < len(sql); i++ {
		if sql[i] != '$' {
			b.WriteByte(sql[i])
			continue
		}
		j := i + 1
		for j < len(sql) && sql[j] >= '0' && sql[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte('$')
			continue
		}
		n, _ := strconv.Atoi(sql[i+1 : j])
		if n < 1 || n > len(st.Args) {
			return "", fmt.Errorf("placeholder $%d sin argumento", n)
		}
		lit, err := literal(st.Args[n-1])
		if err != nil {
			return "", fmt.Errorf("$%d: %w", n, err)
		}
		b.WriteString(lit)
		i = j - 1
	}
	return b.String(), nil
}

func literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quote(x), nil
	case bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(x), nil
	case decimal.Decimal:
		return x.String(), nil
	case time.Time:
		if x.IsZero() {
			return "NULL", nil
		}
		return quote(x.Format(time.RFC3339Nano)), nil
	default:
		return "", fmt.Errorf("tipo no soportado %T", v)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
