package billing

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
)

// PDFUseCase loads an invoice with its customer and renders the PDF export.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, generator: generator}
}

// GenerateInvoicePDF returns the PDF bytes for an invoice.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, customer)
}
