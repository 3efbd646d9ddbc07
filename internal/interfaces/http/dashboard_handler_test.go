package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/hotel-dashboard-api/internal/application/dto"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/repository/mocks"
	apphttp "github.com/jhoicas/hotel-dashboard-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/hotel-dashboard-api/pkg/jwt"
)

var (
	handlerNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)
	hotelID    = uuid.NewString()
)

type fakePDF struct{}

func (fakePDF) GenerateInvoicePDF(context.Context, *entity.DerivedInvoice) ([]byte, error) {
	return []byte("%PDF-1.3 test"), nil
}

type tokenKey struct{}

type fixture struct {
	app      *fiber.App
	hotels   *mocks.HotelRepository
	rooms    *mocks.RoomRepository
	guests   *mocks.GuestRepository
	bookings *mocks.BookingRepository
	tokens   chan string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		hotels:   &mocks.HotelRepository{},
		rooms:    &mocks.RoomRepository{},
		guests:   &mocks.GuestRepository{},
		bookings: &mocks.BookingRepository{},
		tokens:   make(chan string, 16),
	}
	uc := analytics.NewDashboardUseCase(f.hotels, f.rooms, f.guests, f.bookings,
		analytics.WithClock(func() time.Time { return handlerNow }),
		analytics.WithLocation(time.UTC),
		analytics.WithPDFGenerator(fakePDF{}),
	)

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		DashboardUC: uc,
		ForwardToken: func(ctx context.Context, token string) context.Context {
			return context.WithValue(ctx, tokenKey{}, token)
		},
		JWTSecret: testJWTSecret,
	})
	return f
}

// captureToken registra el token que llega a la lectura de hoteles.
func (f *fixture) captureToken(args mock.Arguments) {
	if tok, ok := args.Get(0).(context.Context).Value(tokenKey{}).(string); ok {
		f.tokens <- tok
	}
}

func (f *fixture) seed(scope string) {
	f.hotels.On("List", mock.Anything).Run(f.captureToken).Return([]entity.Hotel{{ID: hotelID, Name: "Central"}}, nil)
	f.rooms.On("List", mock.Anything, scope).Return([]entity.Room{
		{ID: "r1", HotelID: hotelID, Status: entity.RoomStatusOccupied},
		{ID: "r2", HotelID: hotelID, Status: entity.RoomStatusActive},
	}, nil)
	f.guests.On("List", mock.Anything, scope).Return([]entity.Guest{{ID: "g1", HotelID: hotelID, FullName: "Ana"}}, nil)
	f.bookings.On("List", mock.Anything, repository.BookingFilter{HotelID: scope, IncludePayments: true}).Return([]entity.Booking{
		{ID: "b1", HotelID: hotelID, Code: "BK-1", Status: entity.BookingStatusConfirmed, MainGuestID: "g1",
			TotalAmount: decimal.NewFromInt(1000), CreatedAt: handlerNow.AddDate(0, 0, -2),
			CheckInDate: handlerNow, CheckOutDate: handlerNow.AddDate(0, 0, 2)},
	}, nil)
}

func (f *fixture) get(t *testing.T, path, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if role != "-" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/dashboard/stats
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_OK_ReenviaToken(t *testing.T) {
	f := newFixture(t)
	f.seed("")

	resp := f.get(t, "/api/dashboard/stats", pkgjwt.RoleReceptionist)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.EqualValues(t, 2, stats["total_rooms"])
	assert.EqualValues(t, 50, stats["occupancy_rate"])
	assert.Equal(t, "1000", stats["total_revenue"])
	assert.EqualValues(t, 1, stats["check_ins_today"])

	select {
	case tok := <-f.tokens:
		assert.NotEmpty(t, tok)
	default:
		t.Fatal("el token del usuario no llegó a la lectura")
	}
}

func TestStats_HotelIDInvalido_400(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/api/dashboard/stats?hotel_id=abc", pkgjwt.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestStats_HotelInexistente_404(t *testing.T) {
	f := newFixture(t)
	other := uuid.NewString()
	f.hotels.On("List", mock.Anything).Return([]entity.Hotel{{ID: hotelID}}, nil)
	f.rooms.On("List", mock.Anything, other).Return(nil, nil)
	f.guests.On("List", mock.Anything, other).Return(nil, nil)
	f.bookings.On("List", mock.Anything, repository.BookingFilter{HotelID: other, IncludePayments: true}).Return(nil, nil)

	resp := f.get(t, "/api/dashboard/stats?hotel_id="+other, pkgjwt.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStats_FalloDeLectura_502(t *testing.T) {
	f := newFixture(t)
	f.hotels.On("List", mock.Anything).Return(nil, nil)
	f.rooms.On("List", mock.Anything, "").Return(nil, nil)
	f.guests.On("List", mock.Anything, "").Return(nil, errors.New("HTTP 503"))
	f.bookings.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	resp := f.get(t, "/api/dashboard/stats", pkgjwt.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "DASHBOARD_UNAVAILABLE", body.Code)
	assert.Equal(t, "no se pudieron cargar los datos del dashboard", body.Message)
}

func TestStats_SinToken_401(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/api/dashboard/stats", "-")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Otros endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestWeekBookings_OK(t *testing.T) {
	f := newFixture(t)
	f.hotels.On("List", mock.Anything).Return([]entity.Hotel{{ID: hotelID}}, nil)
	f.bookings.On("List", mock.Anything, repository.BookingFilter{HotelID: hotelID}).Return([]entity.Booking{
		{ID: "b1", HotelID: hotelID, Status: entity.BookingStatusConfirmed, CheckInDate: handlerNow, CheckOutDate: handlerNow.AddDate(0, 0, 1)},
	}, nil)

	resp := f.get(t, "/api/dashboard/week-bookings?hotel_id="+hotelID, pkgjwt.RoleAdmin)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var week dto.WeekBookingsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&week))
	require.Len(t, week.Bookings, 1)
	assert.Equal(t, "b1", week.Bookings[0].ID)
}

func TestTopHotels_LimitInvalido_400(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{"limit=abc", "limit=-1"} {
		resp := f.get(t, "/api/dashboard/top-hotels?"+q, pkgjwt.RoleAdmin)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestTopHotels_OK(t *testing.T) {
	f := newFixture(t)
	f.seed("")

	resp := f.get(t, "/api/dashboard/top-hotels?limit=5", pkgjwt.RoleAdmin)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var top []dto.TopHotelDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&top))
	require.Len(t, top, 1)
	assert.Equal(t, 1, top[0].TotalBookings)
}

func TestInvoices_FiltroYEstadoInvalido(t *testing.T) {
	f := newFixture(t)
	f.seed("")

	resp := f.get(t, "/api/dashboard/invoices?status=pending", pkgjwt.RoleAdmin)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var invoices []dto.InvoiceDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&invoices))
	require.Len(t, invoices, 1)
	assert.Equal(t, "BK-1", invoices[0].Number)
	assert.Equal(t, "Ana", invoices[0].GuestName)

	bad := f.get(t, "/api/dashboard/invoices?status=void", pkgjwt.RoleAdmin)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestInvoicePDF_RolesYDescarga(t *testing.T) {
	f := newFixture(t)
	f.seed("")

	denied := f.get(t, "/api/dashboard/invoices/b1/pdf", pkgjwt.RoleReceptionist)
	defer denied.Body.Close()
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)

	resp := f.get(t, "/api/dashboard/invoices/b1/pdf", pkgjwt.RoleManager)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura-BK-1.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.3 test", string(body))

	missing := f.get(t, "/api/dashboard/invoices/nope/pdf", pkgjwt.RoleAdmin)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestInvoicePDF_NombreDeArchivoEscapado(t *testing.T) {
	f := newFixture(t)
	code := "BK\"7\r\nX-Injected: 1"
	f.hotels.On("List", mock.Anything).Return([]entity.Hotel{{ID: hotelID}}, nil)
	f.rooms.On("List", mock.Anything, "").Return(nil, nil)
	f.guests.On("List", mock.Anything, "").Return(nil, nil)
	f.bookings.On("List", mock.Anything, repository.BookingFilter{IncludePayments: true}).Return([]entity.Booking{
		{ID: "b7", HotelID: hotelID, Code: code, Status: entity.BookingStatusConfirmed,
			TotalAmount: decimal.NewFromInt(10), CreatedAt: handlerNow, CheckInDate: handlerNow, CheckOutDate: handlerNow},
	}, nil)

	resp := f.get(t, "/api/dashboard/invoices/b7/pdf", pkgjwt.RoleAdmin)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Empty(t, resp.Header.Get("X-Injected"))
	disposition, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, "factura-"+code+".pdf", params["filename"])
}
