package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// TaskFilter narrows task listings; empty fields are ignored.
type TaskFilter struct {
	Status     string
	AssigneeID string
	CustomerID string
}

// TaskRepository is the persistence port for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	FindPage(ctx context.Context, f TaskFilter, skip, limit int64) ([]*entity.Task, error)
	Count(ctx context.Context, f TaskFilter) (int64, error)
	Update(ctx context.Context, task *entity.Task) error
}
