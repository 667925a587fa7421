package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/billing"
	"github.com/tamirban/tamirban-api/internal/application/dto"
)

// InvoiceHandler HTTP endpoints for invoices.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// List GET /api/invoices?status=&customerId=&marketerId=&page=&limit=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	filters := dto.InvoiceListFilters{
		Status:     c.Query("status"),
		CustomerID: c.Query("customerId"),
		MarketerID: c.Query("marketerId"),
	}
	filters.Page, _ = strconv.Atoi(c.Query("page"))
	filters.Limit, _ = strconv.Atoi(c.Query("limit"))

	result, err := h.uc.List(c.Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// ChangeStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// CalculateTotal POST /api/invoices/calculate
//
// Previews the totals for an item list without creating anything.
func (h *InvoiceHandler) CalculateTotal(c *fiber.Ctx) error {
	var in struct {
		Items []dto.InvoiceItemRequest `json:"items"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.CalculateTotal(in.Items))
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.GenerateInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
