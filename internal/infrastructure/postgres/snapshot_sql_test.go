package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

func sampleSnapshot() dashboard.Snapshot {
	two := 2
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return dashboard.Snapshot{
		Hotels: []entity.Hotel{{ID: "h1", Name: "O'Higgins Inn", IsActive: true}},
		Rooms:  []entity.Room{{ID: "r1", HotelID: "h1", Number: "101", Status: "ACTIVE", MaxOccupancy: &two}},
		Guests: []entity.Guest{{ID: "g1", HotelID: "h1", FullName: "Ana"}},
		Bookings: []entity.Booking{{
			ID: "b1", HotelID: "h1", Code: "BK-1", Status: "CONFIRMED",
			CheckInDate: created, CheckOutDate: created.AddDate(0, 0, 2),
			TotalAmount: decimal.RequireFromString("150.25"), CreatedAt: created, MainGuestID: "g1",
			Payments: []entity.Payment{{ID: "p1", Status: "PAID", Amount: decimal.NewFromInt(150)}},
		}},
	}
}

func statements(t *testing.T, s dashboard.Snapshot) []Statement {
	t.Helper()
	stmts, skipped := SnapshotStatements(s)
	require.Empty(t, skipped)
	return stmts
}

func TestSnapshotStatements_OrdenDeClavesForaneas(t *testing.T) {
	stmts := statements(t, sampleSnapshot())

	require.Len(t, stmts, 5)
	assert.Equal(t, insertHotel, stmts[0].SQL)
	assert.Equal(t, insertRoom, stmts[1].SQL)
	assert.Equal(t, insertGuest, stmts[2].SQL)
	assert.Equal(t, insertBooking, stmts[3].SQL)
	assert.Equal(t, insertPayment, stmts[4].SQL)

	assert.Nil(t, stmts[2].Args[3], "email vacío va como NULL")
	assert.Equal(t, "COP", stmts[3].Args[9], "moneda por defecto")
	assert.Nil(t, stmts[4].Args[4], "pago sin fecha")
}

func TestRenderSQL(t *testing.T) {
	stmts := statements(t, sampleSnapshot())

	hotel, err := RenderSQL(stmts[0])
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO hotels (id, name, is_active) VALUES ('h1', 'O''Higgins Inn', TRUE) ON CONFLICT (id) DO NOTHING`, hotel)

	booking, err := RenderSQL(stmts[3])
	require.NoError(t, err)
	assert.Contains(t, booking, `'2026-10-01T09:00:00Z'`)
	assert.Contains(t, booking, `150.25`)

	payment, err := RenderSQL(stmts[4])
	require.NoError(t, err)
	assert.Contains(t, payment, `NULL, COALESCE(NULL, clock_timestamp())`)
}

func TestSnapshotStatements_ReservaSinFechas(t *testing.T) {
	snap := sampleSnapshot()
	undated := snap.Bookings[0]
	undated.ID, undated.Code = "b2", "BK-2"
	undated.CheckInDate, undated.CheckOutDate = time.Time{}, time.Time{}
	undated.Payments = []entity.Payment{{ID: "p2", Status: "PAID", Amount: decimal.NewFromInt(10)}}
	nocreated := snap.Bookings[0]
	nocreated.ID, nocreated.CreatedAt, nocreated.Payments = "b3", time.Time{}, nil
	snap.Bookings = append(snap.Bookings, undated, nocreated)

	stmts, skipped := SnapshotStatements(snap)

	assert.Equal(t, []string{"b2"}, skipped)
	for _, st := range stmts {
		assert.NotEqual(t, "b2", st.Args[0], "la reserva sin fechas no se inserta")
		if st.SQL == insertPayment {
			assert.NotEqual(t, "p2", st.Args[0], "ni sus pagos")
		}
	}

	var rendered []string
	for _, st := range stmts {
		if st.SQL != insertBooking {
			continue
		}
		line, err := RenderSQL(st)
		require.NoError(t, err)
		rendered = append(rendered, line)
	}
	require.Len(t, rendered, 2)
	assert.Contains(t, rendered[1], "'b3'")
	assert.Contains(t, rendered[1], "COALESCE(NULL, clock_timestamp())", "sin createdAt se usa la hora de carga")
	assert.NotContains(t, rendered[1], "'CONFIRMED', NULL")
}

func TestRenderSQL_Errores(t *testing.T) {
	_, err := RenderSQL(Statement{SQL: "SELECT $2", Args: []any{1}})
	assert.Error(t, err)

	_, err = RenderSQL(Statement{SQL: "SELECT $1", Args: []any{3.14}})
	assert.ErrorContains(t, err, "float64")
}

type fakeQuerier struct {
	execs  []string
	failAt int
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.failAt > 0 && len(f.execs) == f.failAt {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "42P01", Message: `relation "rooms" does not exist`}
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no usado")
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func TestExecStatements(t *testing.T) {
	q := &fakeQuerier{}
	n, err := ExecStatements(context.Background(), q, statements(t, sampleSnapshot()))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Len(t, q.execs, 5)
}

func TestExecStatements_SinEsquema(t *testing.T) {
	q := &fakeQuerier{failAt: 2}
	n, err := ExecStatements(context.Background(), q, statements(t, sampleSnapshot()))
	assert.Equal(t, int64(1), n)
	assert.ErrorContains(t, err, "001_hotel_schema.sql")
	assert.True(t, isUndefinedTable(err))
}
