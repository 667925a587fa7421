package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// InvoiceFilter is the store-level filter for invoice listings (AND semantics).
type InvoiceFilter struct {
	Status     string
	CustomerID string
	MarketerID string
}

// InvoiceRepository is the persistence port for invoices. Each call is a
// single store round-trip and individually atomic; there is no transaction
// spanning calls, so concurrent writers resolve last-write-wins per field.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// FindPage returns one page, sorted by creation time descending.
	FindPage(ctx context.Context, f InvoiceFilter, skip, limit int64) ([]*entity.Invoice, error)
	Count(ctx context.Context, f InvoiceFilter) (int64, error)
	// Patch applies a field-level update in one atomic store call: set writes
	// the given document fields, unset removes the named ones.
	Patch(ctx context.Context, id string, set map[string]interface{}, unset []string) error
}
