package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/application/dto"
)

// MarketerHandler HTTP endpoints for marketers.
type MarketerHandler struct {
	uc *crm.MarketerUseCase
}

// NewMarketerHandler builds the handler.
func NewMarketerHandler(uc *crm.MarketerUseCase) *MarketerHandler {
	return &MarketerHandler{uc: uc}
}

// Create POST /api/marketers
func (h *MarketerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMarketerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// List GET /api/marketers?page=&limit=
func (h *MarketerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Page, _ = strconv.Atoi(c.Query("page"))
	page.Limit, _ = strconv.Atoi(c.Query("limit"))
	result, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetByID GET /api/marketers/:id
func (h *MarketerHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// Update PUT /api/marketers/:id
func (h *MarketerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMarketerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}
