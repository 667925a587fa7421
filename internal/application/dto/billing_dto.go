package dto

import (
	"time"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// InvoiceItemRequest one invoice line as submitted by the caller. The line
// total is always recomputed server-side.
type InvoiceItemRequest struct {
	Title     string  `json:"title"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	TaxRate   float64 `json:"taxRate,omitempty"` // percent, 0..100
	Discount  float64 `json:"discount,omitempty"`
}

// PaymentInfoRequest payment details attached when an invoice is set to PAID.
// Only the fields matching Method are used; the rest are ignored.
type PaymentInfoRequest struct {
	Method string `json:"method"` // CASH | CHECK | TRANSFER

	CashAmount *int64 `json:"cashAmount,omitempty"`

	CheckAmount *int64     `json:"checkAmount,omitempty"`
	CheckDate   *time.Time `json:"checkDate,omitempty"`
	CheckOwner  string     `json:"checkOwner,omitempty"`
	CheckNumber string     `json:"checkNumber,omitempty"`
	CheckStatus string     `json:"checkStatus,omitempty"` // default PENDING

	TransferReference string `json:"transferReference,omitempty"`
}

// CreateInvoiceRequest body for POST /api/invoices.
type CreateInvoiceRequest struct {
	Number           string               `json:"number,omitempty"`
	CustomerID       string               `json:"customerId"`
	MarketerID       string               `json:"marketerId,omitempty"`
	Status           string               `json:"status,omitempty"` // default DRAFT
	Items            []InvoiceItemRequest `json:"items"`
	DueDate          *time.Time           `json:"dueDate,omitempty"`
	Notes            string               `json:"notes,omitempty"`
	PaidAt           *time.Time           `json:"paidAt,omitempty"`
	PaymentReference string               `json:"paymentReference,omitempty"`
	PaymentInfo      *PaymentInfoRequest  `json:"paymentInfo,omitempty"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id. Partial update: nil
// fields keep their stored value; a present Items slice triggers an atomic
// totals recomputation.
type UpdateInvoiceRequest struct {
	Number     *string               `json:"number,omitempty"`
	CustomerID *string               `json:"customerId,omitempty"`
	MarketerID *string               `json:"marketerId,omitempty"`
	Items      *[]InvoiceItemRequest `json:"items,omitempty"`
	DueDate    *time.Time            `json:"dueDate,omitempty"`
	Notes      *string               `json:"notes,omitempty"`
}

// ChangeInvoiceStatusRequest body for PATCH /api/invoices/:id/status.
type ChangeInvoiceStatusRequest struct {
	Status           string              `json:"status"`
	PaidAt           *time.Time          `json:"paidAt,omitempty"`
	PaymentReference *string             `json:"paymentReference,omitempty"`
	PaymentInfo      *PaymentInfoRequest `json:"paymentInfo,omitempty"`
}

// InvoiceListFilters criteria for GET /api/invoices.
type InvoiceListFilters struct {
	Status     string `query:"status"`
	CustomerID string `query:"customerId"`
	MarketerID string `query:"marketerId"`
	PageRequest
}

// InvoiceListResult list envelope for invoices.
type InvoiceListResult struct {
	Data  []*entity.Invoice `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
