package billing

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// InvoicePDFGenerator renders the printable representation of an invoice.
// Implemented by the maroto adapter in infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
