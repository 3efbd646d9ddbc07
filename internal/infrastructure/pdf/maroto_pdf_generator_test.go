package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

func TestGenerateInvoicePDF(t *testing.T) {
	paidAt := time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC)
	inv := &entity.DerivedInvoice{
		ID: "b1", Number: "BK-1", BookingID: "b1", GuestID: "g1", HotelID: "h1",
		Amount: decimal.NewFromInt(1000), PaidAmount: decimal.NewFromInt(1000), Currency: "COP",
		Status: entity.InvoiceStatusPaid, IssueDate: paidAt.AddDate(0, 0, -1),
		DueDate: paidAt.AddDate(0, 0, 5), PaymentDate: &paidAt,
		GuestName: "Ana Pérez", HotelName: "Hotel Central",
	}

	out, err := NewMarotoPDFGenerator(language.Und).GenerateInvoicePDF(context.Background(), inv)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator(language.English).GenerateInvoicePDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	g := NewMarotoPDFGenerator(language.English)
	assert.Equal(t, "$ 1,250,000.50 COP", g.formatMoney(decimal.RequireFromString("1250000.5"), "COP"))
	assert.Equal(t, "$ 0.00", g.formatMoney(decimal.Zero, ""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "VENCIDA", statusLabel(entity.InvoiceStatusOverdue))
	assert.Equal(t, "VOID", statusLabel("void"))
	assert.Equal(t, "—", formatDate(time.Time{}))
}
