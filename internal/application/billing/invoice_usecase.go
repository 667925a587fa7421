package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain"
	domainbilling "github.com/tamirban/tamirban-api/internal/domain/billing"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
)

// InvoiceUseCase invoice creation, partial updates and status transitions.
//
// The status graph is deliberately permissive: any status may move to any
// other. The only state-dependent logic is around PAID — paidAt and
// paymentReference are written on entry and paidAt is removed on exit.
// paymentInfo from an earlier PAID phase stays on the document until a caller
// overwrites it.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// Create validates the payload, computes line totals and the four aggregates,
// and persists the invoice. The caller may pick the initial status (default
// DRAFT); an invoice born PAID gets the full PAID side effects.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}
	if !entity.ValidInvoiceStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	items := itemsFromRequest(in.Items)
	if err := domainbilling.ValidateItems(items); err != nil {
		return nil, err
	}

	// customerId is an owning reference: existence is enforced at this
	// boundary. marketerId stays a weak reference and is not checked.
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	totals := domainbilling.CalculateInvoiceTotal(items)
	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		Number:        in.Number,
		CustomerID:    in.CustomerID,
		MarketerID:    in.MarketerID,
		Status:        status,
		Items:         items,
		Subtotal:      totals.Subtotal,
		DiscountTotal: totals.DiscountTotal,
		TaxTotal:      totals.TaxTotal,
		GrandTotal:    totals.GrandTotal,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status == entity.InvoiceStatusPaid {
		paidAt := now
		if in.PaidAt != nil {
			paidAt = *in.PaidAt
		}
		inv.PaidAt = &paidAt
		inv.PaymentReference = in.PaymentReference
		if in.PaymentInfo != nil {
			info, err := buildPaymentInfo(in.PaymentInfo)
			if err != nil {
				return nil, err
			}
			inv.PaymentInfo = info
		}
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// CalculateTotal previews the aggregates for an item list without persisting
// anything. Pure; an empty list yields all-zero totals.
func (uc *InvoiceUseCase) CalculateTotal(items []dto.InvoiceItemRequest) domainbilling.Totals {
	return domainbilling.CalculateInvoiceTotal(itemsFromRequest(items))
}

// Get fetches one invoice.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// List returns one page of invoices, newest first.
func (uc *InvoiceUseCase) List(ctx context.Context, filters dto.InvoiceListFilters) (*dto.InvoiceListResult, error) {
	if filters.Status != "" && !entity.ValidInvoiceStatus(filters.Status) {
		return nil, domain.ErrInvalidStatus
	}
	filters.DefaultPage()
	f := repository.InvoiceFilter{
		Status:     filters.Status,
		CustomerID: filters.CustomerID,
		MarketerID: filters.MarketerID,
	}
	page, err := uc.invoiceRepo.FindPage(ctx, f, filters.Skip(), int64(filters.Limit))
	if err != nil {
		return nil, err
	}
	total, err := uc.invoiceRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceListResult{Data: page, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
}

// Update applies a partial update: only fields present in the payload change.
// When Items is present the four derived totals are recomputed and written in
// the same atomic patch, so a reader never sees items and totals disagree.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	set := map[string]interface{}{}
	if in.Number != nil {
		set["number"] = *in.Number
	}
	if in.CustomerID != nil {
		set["customerId"] = *in.CustomerID
	}
	if in.MarketerID != nil {
		set["marketerId"] = *in.MarketerID
	}
	if in.DueDate != nil {
		set["dueDate"] = *in.DueDate
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}
	if in.Items != nil {
		items := itemsFromRequest(*in.Items)
		if err := domainbilling.ValidateItems(items); err != nil {
			return nil, err
		}
		totals := domainbilling.CalculateInvoiceTotal(items)
		set["items"] = items
		set["subtotal"] = totals.Subtotal
		set["discountTotal"] = totals.DiscountTotal
		set["taxTotal"] = totals.TaxTotal
		set["grandTotal"] = totals.GrandTotal
	}
	set["updatedAt"] = time.Now()

	if err := uc.invoiceRepo.Patch(ctx, id, set, nil); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// ChangeStatus moves the invoice to the given status and applies the PAID
// side effects:
//
//   - to PAID: paidAt is the caller's timestamp or now; paymentReference is
//     the caller's value or cleared to empty (asymmetric on purpose);
//     paymentInfo is attached only when the caller supplied one.
//   - away from PAID: paidAt is removed; paymentInfo is left as is.
func (uc *InvoiceUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeInvoiceStatusRequest) (*entity.Invoice, error) {
	if !entity.ValidInvoiceStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	set := map[string]interface{}{
		"status":    in.Status,
		"updatedAt": time.Now(),
	}
	var unset []string

	if in.Status == entity.InvoiceStatusPaid {
		paidAt := time.Now()
		if in.PaidAt != nil {
			paidAt = *in.PaidAt
		}
		set["paidAt"] = paidAt

		reference := ""
		if in.PaymentReference != nil {
			reference = *in.PaymentReference
		}
		set["paymentReference"] = reference

		if in.PaymentInfo != nil {
			info, err := buildPaymentInfo(in.PaymentInfo)
			if err != nil {
				return nil, err
			}
			set["paymentInfo"] = info
		}
	} else {
		unset = append(unset, "paidAt")
	}

	if err := uc.invoiceRepo.Patch(ctx, id, set, unset); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// buildPaymentInfo shapes the stored record by method: only the fields of the
// chosen method are copied, the rest stay absent.
func buildPaymentInfo(in *dto.PaymentInfoRequest) (*entity.PaymentInfo, error) {
	if !entity.ValidPaymentMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	info := &entity.PaymentInfo{Method: in.Method}
	switch in.Method {
	case entity.PaymentMethodCash:
		info.CashAmount = in.CashAmount
	case entity.PaymentMethodCheck:
		info.CheckAmount = in.CheckAmount
		info.CheckDate = in.CheckDate
		info.CheckOwner = in.CheckOwner
		info.CheckNumber = in.CheckNumber
		info.CheckStatus = in.CheckStatus
		if info.CheckStatus == "" {
			info.CheckStatus = entity.CheckStatusPending
		}
		if !entity.ValidCheckStatus(info.CheckStatus) {
			return nil, domain.ErrInvalidInput
		}
	case entity.PaymentMethodTransfer:
		info.TransferReference = in.TransferReference
	}
	return info, nil
}

func itemsFromRequest(in []dto.InvoiceItemRequest) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, len(in))
	for i, it := range in {
		item := entity.InvoiceItem{
			Title:     it.Title,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
			TaxRate:   it.TaxRate,
			Discount:  it.Discount,
		}
		item.Total = domainbilling.LineTotal(item)
		items[i] = item
	}
	return items
}
