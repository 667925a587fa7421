// Package billing holds the invoice money math (domain service).
package billing

import (
	"github.com/shopspring/decimal"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// Totals are the four derived invoice amounts, in whole rials.
type Totals struct {
	Subtotal      int64 `json:"subtotal"`
	DiscountTotal int64 `json:"discountTotal"`
	TaxTotal      int64 `json:"taxTotal"`
	GrandTotal    int64 `json:"grandTotal"`
}

// CalculateInvoiceTotal computes the invoice aggregates from its line items.
//
// Per item: itemSubtotal = unitPrice*quantity, itemTax = (itemSubtotal -
// discount) * taxRate/100. The three running sums are each rounded half-up to
// whole rials, and GrandTotal is built from the rounded parts so that
// GrandTotal == Subtotal - DiscountTotal + TaxTotal always holds.
//
// Pure and total: an empty item list yields all-zero totals. Callers that
// persist invoices reject empty item lists before getting here.
func CalculateInvoiceTotal(items []entity.InvoiceItem) Totals {
	var subtotal, discountTotal, taxTotal decimal.Decimal
	hundred := decimal.NewFromInt(100)

	for _, it := range items {
		itemSubtotal := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromFloat(it.Quantity))
		itemDiscount := decimal.NewFromFloat(it.Discount)
		afterDiscount := itemSubtotal.Sub(itemDiscount)
		itemTax := afterDiscount.Mul(decimal.NewFromFloat(it.TaxRate)).Div(hundred)

		subtotal = subtotal.Add(itemSubtotal)
		discountTotal = discountTotal.Add(itemDiscount)
		taxTotal = taxTotal.Add(itemTax)
	}

	s := subtotal.Round(0).IntPart()
	d := discountTotal.Round(0).IntPart()
	x := taxTotal.Round(0).IntPart()
	return Totals{
		Subtotal:      s,
		DiscountTotal: d,
		TaxTotal:      x,
		GrandTotal:    s - d + x,
	}
}

// LineTotal returns the amount stored on a single line: unitPrice*quantity -
// discount, rounded to whole rials. Tax is deliberately excluded from line
// totals and reported only in the aggregate TaxTotal.
func LineTotal(it entity.InvoiceItem) int64 {
	total := decimal.NewFromFloat(it.UnitPrice).
		Mul(decimal.NewFromFloat(it.Quantity)).
		Sub(decimal.NewFromFloat(it.Discount))
	return total.Round(0).IntPart()
}

// ValidateItems checks the item list before any computation or persistence.
func ValidateItems(items []entity.InvoiceItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyItems
	}
	for _, it := range items {
		if it.Title == "" {
			return domain.ErrInvalidInput
		}
		if it.Quantity <= 0 || it.UnitPrice < 0 || it.Discount < 0 {
			return domain.ErrInvalidInput
		}
		if it.TaxRate < 0 || it.TaxRate > 100 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
