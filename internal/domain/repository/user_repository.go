package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// UserRepository is the persistence port for sign-in accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
