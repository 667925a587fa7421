package entity

import "time"

// Invoice statuses. Transitions are permissive: any status may move to any
// other; only the PAID transitions carry side effects (paidAt, paymentInfo).
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusSent      = "SENT"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusOverdue   = "OVERDUE"
	InvoiceStatusCancelled = "CANCELLED"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Payment methods for a PAID invoice.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodCheck    = "CHECK"
	PaymentMethodTransfer = "TRANSFER"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodTransfer:
		return true
	}
	return false
}

// Check clearing statuses (nested inside CHECK payment info).
const (
	CheckStatusPending = "PENDING"
	CheckStatusSettled = "SETTLED"
	CheckStatusBounced = "BOUNCED"
)

// ValidCheckStatus reports whether s is a known check clearing status.
func ValidCheckStatus(s string) bool {
	switch s {
	case CheckStatusPending, CheckStatusSettled, CheckStatusBounced:
		return true
	}
	return false
}

// PaymentInfo describes how a PAID invoice was settled. Only the fields of the
// chosen Method are populated; the others stay absent in the document.
type PaymentInfo struct {
	Method string `bson:"method" json:"method"`

	// CASH
	CashAmount *int64 `bson:"cashAmount,omitempty" json:"cashAmount,omitempty"`

	// CHECK
	CheckAmount *int64     `bson:"checkAmount,omitempty" json:"checkAmount,omitempty"`
	CheckDate   *time.Time `bson:"checkDate,omitempty" json:"checkDate,omitempty"`
	CheckOwner  string     `bson:"checkOwner,omitempty" json:"checkOwner,omitempty"`
	CheckNumber string     `bson:"checkNumber,omitempty" json:"checkNumber,omitempty"`
	CheckStatus string     `bson:"checkStatus,omitempty" json:"checkStatus,omitempty"` // PENDING | SETTLED | BOUNCED

	// TRANSFER
	TransferReference string `bson:"transferReference,omitempty" json:"transferReference,omitempty"`
}

// InvoiceItem is one line of an invoice. Total is the line amount excluding
// tax (unitPrice*quantity - discount); tax shows up only in the invoice's
// aggregate TaxTotal.
type InvoiceItem struct {
	Title     string  `bson:"title" json:"title"`
	Quantity  float64 `bson:"quantity" json:"quantity"`
	Unit      string  `bson:"unit,omitempty" json:"unit,omitempty"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	TaxRate   float64 `bson:"taxRate,omitempty" json:"taxRate,omitempty"` // percent, 0..100
	Discount  float64 `bson:"discount,omitempty" json:"discount,omitempty"`
	Total     int64   `bson:"total" json:"total"`
}

// Invoice is a bill issued to a customer. The four totals are derived from
// Items and never hand-set; they are recomputed atomically with item changes.
type Invoice struct {
	ID               string        `bson:"_id" json:"id"`
	Number           string        `bson:"number,omitempty" json:"number,omitempty"`
	CustomerID       string        `bson:"customerId" json:"customerId"`
	MarketerID       string        `bson:"marketerId,omitempty" json:"marketerId,omitempty"`
	Status           string        `bson:"status" json:"status"`
	Items            []InvoiceItem `bson:"items" json:"items"`
	Subtotal         int64         `bson:"subtotal" json:"subtotal"`
	DiscountTotal    int64         `bson:"discountTotal" json:"discountTotal"`
	TaxTotal         int64         `bson:"taxTotal" json:"taxTotal"`
	GrandTotal       int64         `bson:"grandTotal" json:"grandTotal"`
	PaymentReference string        `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`
	PaymentInfo      *PaymentInfo  `bson:"paymentInfo,omitempty" json:"paymentInfo,omitempty"`
	PaidAt           *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	DueDate          *time.Time    `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Notes            string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt" json:"updatedAt"`
}
