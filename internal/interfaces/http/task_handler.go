package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/application/dto"
)

// TaskHandler HTTP endpoints for follow-up tasks.
type TaskHandler struct {
	uc *crm.TaskUseCase
}

// NewTaskHandler builds the handler.
func NewTaskHandler(uc *crm.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	task, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// List GET /api/tasks?status=&assigneeId=&customerId=&page=&limit=
func (h *TaskHandler) List(c *fiber.Ctx) error {
	filters := dto.TaskListFilters{
		Status:     c.Query("status"),
		AssigneeID: c.Query("assigneeId"),
		CustomerID: c.Query("customerId"),
	}
	filters.Page, _ = strconv.Atoi(c.Query("page"))
	filters.Limit, _ = strconv.Atoi(c.Query("limit"))

	result, err := h.uc.List(c.Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetByID GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	task, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	task, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}
