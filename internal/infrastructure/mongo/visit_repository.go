package mongo

import (
	"context"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VisitRepository mongo adapter for the visit port.
type VisitRepository struct {
	col *mongo.Collection
}

// NewVisitRepository builds the adapter over the "visits" collection.
func NewVisitRepository(db *mongo.Database) *VisitRepository {
	return &VisitRepository{col: db.Collection("visits")}
}

func (r *VisitRepository) Create(ctx context.Context, v *entity.Visit) error {
	_, err := r.col.InsertOne(ctx, v)
	return err
}

func (r *VisitRepository) FindPage(ctx context.Context, f repository.VisitFilter, skip, limit int64) ([]*entity.Visit, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "visitedAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, visitQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Visit
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VisitRepository) Count(ctx context.Context, f repository.VisitFilter) (int64, error) {
	return r.col.CountDocuments(ctx, visitQuery(f))
}

func visitQuery(f repository.VisitFilter) bson.M {
	q := bson.M{}
	if f.CustomerID != "" {
		q["customerId"] = f.CustomerID
	}
	if f.MarketerID != "" {
		q["marketerId"] = f.MarketerID
	}
	return q
}
