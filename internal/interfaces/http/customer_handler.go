package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/application/dto"
)

// CustomerHandler HTTP endpoints for repair-shop customers.
type CustomerHandler struct {
	uc *crm.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *crm.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?status=&marketerId=&city=&search=&tags=a,b&lat=&lng=&maxDistance=&page=&limit=
//
// Supplying lat and lng switches to nearby mode: geo-tagged customers only,
// sorted nearest first within maxDistance (default 10km).
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	filters := dto.CustomerListFilters{
		Status:     c.Query("status"),
		MarketerID: c.Query("marketerId"),
		City:       c.Query("city"),
		Search:     c.Query("search"),
		Tags:       splitCSV(c.Query("tags")),
	}
	filters.Page, _ = strconv.Atoi(c.Query("page"))
	filters.Limit, _ = strconv.Atoi(c.Query("limit"))

	if c.Query("lat") != "" || c.Query("lng") != "" {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LOCATION", Message: "lat and lng must be numbers"})
		}
		maxDistance, _ := strconv.ParseFloat(c.Query("maxDistance"), 64)
		filters.Nearby = &dto.NearbyLocation{Latitude: lat, Longitude: lng, MaxDistance: maxDistance}
	}

	result, err := h.uc.List(c.Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
