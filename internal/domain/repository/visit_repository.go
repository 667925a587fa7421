package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// VisitFilter narrows visit listings; empty fields are ignored.
type VisitFilter struct {
	CustomerID string
	MarketerID string
}

// VisitRepository is the persistence port for visits.
type VisitRepository interface {
	Create(ctx context.Context, v *entity.Visit) error
	// FindPage returns one page, newest visit first.
	FindPage(ctx context.Context, f VisitFilter, skip, limit int64) ([]*entity.Visit, error)
	Count(ctx context.Context, f VisitFilter) (int64, error)
}
