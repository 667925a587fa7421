package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// VisitHandler HTTP endpoints for shop visits.
type VisitHandler struct {
	uc *crm.VisitUseCase
}

// NewVisitHandler builds the handler.
func NewVisitHandler(uc *crm.VisitUseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Create POST /api/visits
//
// Marketer tokens always log the visit under their own marketer id,
// whatever the body says.
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if GetRole(c) == entity.RoleMarketer {
		in.MarketerID = GetMarketerID(c)
	}
	v, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// List GET /api/visits?customerId=&marketerId=&page=&limit=
func (h *VisitHandler) List(c *fiber.Ctx) error {
	filters := dto.VisitListFilters{
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
