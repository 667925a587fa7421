package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/billing"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// Reference scenario: 2 x 1_000_000 with 100_000 discount and 9% tax.
// itemSubtotal=2_000_000, afterDiscount=1_900_000, tax=171_000.
func TestCalculateInvoiceTotal_ReferenceScenario(t *testing.T) {
	items := []entity.InvoiceItem{
		{Title: "تعویض روغن", Quantity: 2, UnitPrice: 1_000_000, Discount: 100_000, TaxRate: 9},
	}
	got := billing.CalculateInvoiceTotal(items)
	assert.Equal(t, billing.Totals{
		Subtotal:      2_000_000,
		DiscountTotal: 100_000,
		TaxTotal:      171_000,
		GrandTotal:    2_071_000,
	}, got)
}

func TestCalculateInvoiceTotal_EmptyItemsIsAllZero(t *testing.T) {
	assert.Equal(t, billing.Totals{}, billing.CalculateInvoiceTotal(nil))
	assert.Equal(t, billing.Totals{}, billing.CalculateInvoiceTotal([]entity.InvoiceItem{}))
}

func TestCalculateInvoiceTotal_IdentityHoldsAfterRounding(t *testing.T) {
	cases := [][]entity.InvoiceItem{
		{{Title: "a", Quantity: 1, UnitPrice: 999.5, TaxRate: 9}},
		{{Title: "a", Quantity: 3, UnitPrice: 333.33, Discount: 0.5, TaxRate: 4.5}},
		{
			{Title: "a", Quantity: 1.5, UnitPrice: 70_001, TaxRate: 9},
			{Title: "b", Quantity: 2, UnitPrice: 12_345.67, Discount: 10.1},
			{Title: "c", Quantity: 7, UnitPrice: 0},
		},
	}
	for _, items := range cases {
		got := billing.CalculateInvoiceTotal(items)
		assert.Equal(t, got.GrandTotal, got.Subtotal-got.DiscountTotal+got.TaxTotal)
	}
}

func TestCalculateInvoiceTotal_SubtotalMonotone(t *testing.T) {
	base := []entity.InvoiceItem{
		{Title: "a", Quantity: 2, UnitPrice: 50_000, TaxRate: 9},
		{Title: "b", Quantity: 1, UnitPrice: 120_000},
	}
	before := billing.CalculateInvoiceTotal(base)

	bumpedQty := []entity.InvoiceItem{base[0], base[1]}
	bumpedQty[0].Quantity = 5
	assert.GreaterOrEqual(t, billing.CalculateInvoiceTotal(bumpedQty).Subtotal, before.Subtotal)

	bumpedPrice := []entity.InvoiceItem{base[0], base[1]}
	bumpedPrice[1].UnitPrice = 500_000
	assert.GreaterOrEqual(t, billing.CalculateInvoiceTotal(bumpedPrice).Subtotal, before.Subtotal)
}

func TestCalculateInvoiceTotal_RoundsHalfUp(t *testing.T) {
	// tax = 10.5 after the percentage, must round to 11
	items := []entity.InvoiceItem{
		{Title: "a", Quantity: 1, UnitPrice: 105, TaxRate: 10},
	}
	got := billing.CalculateInvoiceTotal(items)
	assert.Equal(t, int64(11), got.TaxTotal)
	assert.Equal(t, int64(116), got.GrandTotal)
}

func TestLineTotal_ExcludesTax(t *testing.T) {
	it := entity.InvoiceItem{Title: "a", Quantity: 2, UnitPrice: 1_000_000, Discount: 100_000, TaxRate: 9}
	// 2_000_000 - 100_000, with no tax added despite TaxRate=9
	assert.Equal(t, int64(1_900_000), billing.LineTotal(it))
}

func TestValidateItems(t *testing.T) {
	valid := entity.InvoiceItem{Title: "a", Quantity: 1, UnitPrice: 10}

	assert.ErrorIs(t, billing.ValidateItems(nil), domain.ErrEmptyItems)

	bad := valid
	bad.Quantity = 0
	assert.ErrorIs(t, billing.ValidateItems([]entity.InvoiceItem{bad}), domain.ErrInvalidInput)

	bad = valid
	bad.UnitPrice = -1
	assert.ErrorIs(t, billing.ValidateItems([]entity.InvoiceItem{bad}), domain.ErrInvalidInput)

	bad = valid
	bad.TaxRate = 101
	assert.ErrorIs(t, billing.ValidateItems([]entity.InvoiceItem{bad}), domain.ErrInvalidInput)

	bad = valid
	bad.Title = ""
	assert.ErrorIs(t, billing.ValidateItems([]entity.InvoiceItem{bad}), domain.ErrInvalidInput)

	assert.NoError(t, billing.ValidateItems([]entity.InvoiceItem{valid}))
}
