package analytics

import (
	"context"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura derivada.
// Lo implementa infrastructure/pdf; el use case solo conoce este contrato.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.DerivedInvoice) ([]byte, error)
}
