// Package pdf genera la representación imprimible de la factura derivada de una reserva.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hotel                │  N° Factura + Emisión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HUÉSPED: Nombre + id                                        │
//	│  ESTANCIA: Reserva | Vence | Estado                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Saldo                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de referencia + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/hotel-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

var _ analytics.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 30, Green: 130, Blue: 76}
	colorPending = &props.Color{Red: 200, Green: 130, Blue: 0}
	colorOverdue = &props.Color{Red: 190, Green: 30, Blue: 45}
)

var statusLabels = map[string]string{
	entity.InvoiceStatusPaid:    "PAGADA",
	entity.InvoiceStatusPending: "PENDIENTE",
	entity.InvoiceStatusOverdue: "VENCIDA",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean con las
// convenciones de lang (por defecto español latinoamericano).
func NewMarotoPDFGenerator(lang language.Tag) *MarotoPDFGenerator {
	if lang == language.Und {
		lang = language.LatinAmericanSpanish
	}
	return &MarotoPDFGenerator{printer: message.NewPrinter(lang)}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.DerivedInvoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("pdf: factura nil")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+inv.Number, true).
		WithAuthor(nonEmpty(inv.HotelName, "Hotel"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(guestRow(inv))
	m.AddRows(stayRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(inv))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: hotel (izq) y N° factura + fecha de emisión (der).
func headerRow(inv *entity.DerivedInvoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(inv.HotelName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Hotel: "+inv.HotelID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE ESTANCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(inv.Number, inv.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emisión: "+formatDate(inv.IssueDate), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// guestRow: huésped principal de la reserva.
func guestRow(inv *entity.DerivedInvoice) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("HUÉSPED", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(inv.GuestName, "Sin huésped registrado"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Id: "+nonEmpty(inv.GuestID, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// stayRow: reserva, vencimiento (check-out) y estado.
func stayRow(inv *entity.DerivedInvoice) core.Row {
	cell := func(label, value string, a align.Type) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: a}),
			text.New(value, props.Text{Size: 9, Top: 6, Align: a}),
		)
	}
	return row.New(14).Add(
		cell("RESERVA", nonEmpty(inv.BookingID, "—"), align.Left),
		cell("VENCE (CHECK-OUT)", formatDate(inv.DueDate), align.Center),
		col.New(4).Add(
			text.New("ESTADO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}),
			text.New(statusLabel(inv.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Right, Color: statusColor(inv.Status),
			}),
		),
	)
}

// totalsRow: total, pagado y saldo alineados a la derecha.
func (g *MarotoPDFGenerator) totalsRow(inv *entity.DerivedInvoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	paidLine := "Pagado:"
	if inv.PaymentDate != nil {
		paidLine = "Pagado (" + formatDate(*inv.PaymentDate) + "):"
	}

	return row.New(22).Add(
		col.New(3),
		col.New(4).Add(
			label("Total estancia:", 1),
			label(paidLine, 7),
			text.New("SALDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(g.formatMoney(inv.Amount, inv.Currency), 1),
			value(g.formatMoney(inv.PaidAmount, inv.Currency), 7),
			text.New(g.formatMoney(inv.Balance(), inv.Currency), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
		col.New(2),
	)
}

// footerRow: QR con la referencia de la factura + leyenda.
func footerRow(inv *entity.DerivedInvoice) core.Row {
	ref := strings.Join([]string{inv.Number, inv.BookingID, inv.Status, inv.Amount.StringFixed(2)}, "|")
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Referencia de la factura para conciliación en recepción.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Documento informativo generado a partir de la reserva. No reemplaza la factura electrónica.", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

func statusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return strings.ToUpper(status)
}

func statusColor(status string) *props.Color {
	switch status {
	case entity.InvoiceStatusPaid:
		return colorPaid
	case entity.InvoiceStatusOverdue:
		return colorOverdue
	default:
		return colorPending
	}
}

// formatMoney aplica separadores de miles y decimales del idioma configurado.
// Ej (es-419): 1250000.5 COP → "$ 1,250,000.50 COP"
func (g *MarotoPDFGenerator) formatMoney(amount decimal.Decimal, currency string) string {
	s := g.printer.Sprintf("$ %.2f", amount.Round(2).InexactFloat64())
	if currency != "" {
		s += " " + currency
	}
	return s
}
