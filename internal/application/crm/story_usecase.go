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

// StoryUseCase promotional stories shown in the mobile app.
type StoryUseCase struct {
	repo repository.StoryRepository
	now  func() time.Time
}

// NewStoryUseCase builds the use case.
func NewStoryUseCase(repo repository.StoryRepository) *StoryUseCase {
	return &StoryUseCase{repo: repo, now: time.Now}
}

// Create publishes a story immediately.
func (uc *StoryUseCase) Create(ctx context.Context, in dto.CreateStoryRequest) (*entity.Story, error) {
	if in.Title == "" || in.MediaURL == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	s := &entity.Story{
		ID:          uuid.New().String(),
		Title:       in.Title,
		MediaURL:    in.MediaURL,
		Caption:     in.Caption,
		Active:      true,
		PublishedAt: now,
		ExpiresAt:   in.ExpiresAt,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListVisible returns the stories the app should show right now, expired and
// deactivated ones filtered out.
func (uc *StoryUseCase) ListVisible(ctx context.Context) ([]*entity.Story, error) {
	stories, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	visible := make([]*entity.Story, 0, len(stories))
	for _, s := range stories {
		if s.Visible(now) {
			visible = append(visible, s)
		}
	}
	return visible, nil
}

// Deactivate hides a story without deleting it.
func (uc *StoryUseCase) Deactivate(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	s.Active = false
	return uc.repo.Update(ctx, s)
}
