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

// VisitUseCase records and lists shop visits.
type VisitUseCase struct {
	visitRepo    repository.VisitRepository
	customerRepo repository.CustomerRepository
}

// NewVisitUseCase builds the use case.
func NewVisitUseCase(visitRepo repository.VisitRepository, customerRepo repository.CustomerRepository) *VisitUseCase {
	return &VisitUseCase{visitRepo: visitRepo, customerRepo: customerRepo}
}

// Create logs a visit. The customer must exist; VisitedAt defaults to now.
func (uc *VisitUseCase) Create(ctx context.Context, in dto.CreateVisitRequest) (*entity.Visit, error) {
	if in.CustomerID == "" || in.MarketerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	visitedAt := now
	if in.VisitedAt != nil {
		visitedAt = *in.VisitedAt
	}
	v := &entity.Visit{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		MarketerID: in.MarketerID,
		VisitedAt:  visitedAt,
		Note:       in.Note,
		CreatedAt:  now,
	}
	if err := uc.visitRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// List returns one page of visits, newest first.
func (uc *VisitUseCase) List(ctx context.Context, filters dto.VisitListFilters) (*dto.VisitListResult, error) {
	filters.DefaultPage()
	f := repository.VisitFilter{
		CustomerID: filters.CustomerID,
		MarketerID: filters.MarketerID,
	}
	data, err := uc.visitRepo.FindPage(ctx, f, filters.Skip(), int64(filters.Limit))
	if err != nil {
		return nil, err
	}
	total, err := uc.visitRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.VisitListResult{Data: data, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
}
