package repository

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
)

// CustomerFilter is the store-level filter for customer listings. All fields
// combine with AND; Search is matched OR-wise across name, code, phones and
// email by the adapter. Tags matches customers holding any of the given tags.
// RequireGeo restricts to customers with a recorded geoLocation (nearby mode).
type CustomerFilter struct {
	Status     string
	MarketerID string
	City       string
	Search     string
	Tags       []string
	RequireGeo bool
}

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// FindPage returns one page, sorted by creation time descending.
	FindPage(ctx context.Context, f CustomerFilter, skip, limit int64) ([]*entity.Customer, error)
	// Count returns how many customers match the filter, ignoring pagination.
	Count(ctx context.Context, f CustomerFilter) (int64, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
