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

// MarketerUseCase CRUD for field marketers.
type MarketerUseCase struct {
	repo repository.MarketerRepository
}

// NewMarketerUseCase builds the use case.
func NewMarketerUseCase(repo repository.MarketerRepository) *MarketerUseCase {
	return &MarketerUseCase{repo: repo}
}

// Create registers a marketer. New marketers start active.
func (uc *MarketerUseCase) Create(ctx context.Context, in dto.CreateMarketerRequest) (*entity.Marketer, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Marketer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		City:      in.City,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get fetches one marketer.
func (uc *MarketerUseCase) Get(ctx context.Context, id string) (*entity.Marketer, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// List returns one page of marketers.
func (uc *MarketerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.MarketerListResult, error) {
	page.DefaultPage()
	data, err := uc.repo.List(ctx, page.Skip(), int64(page.Limit))
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MarketerListResult{Data: data, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (uc *MarketerUseCase) Update(ctx context.Context, id string, in dto.UpdateMarketerRequest) (*entity.Marketer, error) {
	m, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Phone != nil {
		m.Phone = *in.Phone
	}
	if in.Email != nil {
		m.Email = *in.Email
	}
	if in.City != nil {
		m.City = *in.City
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
