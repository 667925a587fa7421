package dto

import (
	"time"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// CreateMarketerRequest body for POST /api/marketers.
type CreateMarketerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	City  string `json:"city,omitempty"`
}

// UpdateMarketerRequest body for PUT /api/marketers/:id (partial).
type UpdateMarketerRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	City   *string `json:"city,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// MarketerListResult list envelope for marketers.
type MarketerListResult struct {
	Data  []*entity.Marketer `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// CreateVisitRequest body for POST /api/visits. VisitedAt defaults to now.
type CreateVisitRequest struct {
	CustomerID string     `json:"customerId"`
	MarketerID string     `json:"marketerId"`
	VisitedAt  *time.Time `json:"visitedAt,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// VisitListFilters criteria for GET /api/visits.
type VisitListFilters struct {
	CustomerID string `query:"customerId"`
	MarketerID string `query:"marketerId"`
	PageRequest
}

// VisitListResult list envelope for visits.
type VisitListResult struct {
	Data  []*entity.Visit `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// CreateTaskRequest body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  string     `json:"assigneeId,omitempty"`
	CustomerID  string     `json:"customerId,omitempty"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
}

// TaskListFilters criteria for GET /api/tasks.
type TaskListFilters struct {
	Status     string `query:"status"`
	AssigneeID string `query:"assigneeId"`
	CustomerID string `query:"customerId"`
	PageRequest
}

// TaskListResult list envelope for tasks.
type TaskListResult struct {
	Data  []*entity.Task `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UpdateTaskRequest body for PUT /api/tasks/:id (partial).
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	AssigneeID  *string    `json:"assigneeId,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
}

// CreateStoryRequest body for POST /api/stories.
type CreateStoryRequest struct {
	Title     string     `json:"title"`
	MediaURL  string     `json:"mediaUrl"`
	Caption   string     `json:"caption,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
