package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// MarketerRepository is the persistence port for marketers.
type MarketerRepository interface {
	Create(ctx context.Context, m *entity.Marketer) error
	GetByID(ctx context.Context, id string) (*entity.Marketer, error)
	List(ctx context.Context, skip, limit int64) ([]*entity.Marketer, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, m *entity.Marketer) error
}
