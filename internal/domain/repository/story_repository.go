package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// StoryRepository is the persistence port for promotional stories.
type StoryRepository interface {
	Create(ctx context.Context, s *entity.Story) error
	GetByID(ctx context.Context, id string) (*entity.Story, error)
	// ListActive returns active stories, newest published first.
	ListActive(ctx context.Context) ([]*entity.Story, error)
	Update(ctx context.Context, s *entity.Story) error
}
