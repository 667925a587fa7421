package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/application/dto"
)

// StoryHandler HTTP endpoints for promotional stories.
type StoryHandler struct {
	uc *crm.StoryUseCase
}

// NewStoryHandler builds the handler.
func NewStoryHandler(uc *crm.StoryUseCase) *StoryHandler {
	return &StoryHandler{uc: uc}
}

// Create POST /api/stories
func (h *StoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// List GET /api/stories — only currently visible stories.
func (h *StoryHandler) List(c *fiber.Ctx) error {
	stories, err := h.uc.ListVisible(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stories)
}

// Deactivate DELETE /api/stories/:id
func (h *StoryHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
