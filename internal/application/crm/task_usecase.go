package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
)

// TaskUseCase follow-up tasks for the team.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase builds the use case.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create opens a task in OPEN status.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*entity.Task, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		AssigneeID:  in.AssigneeID,
		CustomerID:  in.CustomerID,
		Status:      entity.TaskStatusOpen,
		DueAt:       in.DueAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get fetches one task.
func (uc *TaskUseCase) Get(ctx context.Context, id string) (*entity.Task, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

// List returns one page of tasks, newest first.
func (uc *TaskUseCase) List(ctx context.Context, filters dto.TaskListFilters) (*dto.TaskListResult, error) {
	if filters.Status != "" && !entity.ValidTaskStatus(filters.Status) {
		return nil, domain.ErrInvalidStatus
	}
	filters.DefaultPage()
	f := repository.TaskFilter{
		Status:     filters.Status,
		AssigneeID: filters.AssigneeID,
		CustomerID: filters.CustomerID,
	}
	data, err := uc.repo.FindPage(ctx, f, filters.Skip(), int64(filters.Limit))
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.TaskListResult{Data: data, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
}

// Update applies a partial update; a present Status must be a known value.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*entity.Task, error) {
	task, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.ValidTaskStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		task.Status = *in.Status
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.AssigneeID != nil {
		task.AssigneeID = *in.AssigneeID
	}
	if in.DueAt != nil {
		task.DueAt = in.DueAt
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
