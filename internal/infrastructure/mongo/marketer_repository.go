package mongo

import (
	"context"
	"errors"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MarketerRepository mongo adapter for the marketer port.
type MarketerRepository struct {
	col *mongo.Collection
}

// NewMarketerRepository builds the adapter over the "marketers" collection.
func NewMarketerRepository(db *mongo.Database) *MarketerRepository {
	return &MarketerRepository{col: db.Collection("marketers")}
}

func (r *MarketerRepository) Create(ctx context.Context, m *entity.Marketer) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MarketerRepository) GetByID(ctx context.Context, id string) (*entity.Marketer, error) {
	var m entity.Marketer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MarketerRepository) List(ctx context.Context, skip, limit int64) ([]*entity.Marketer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Marketer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MarketerRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MarketerRepository) Update(ctx context.Context, m *entity.Marketer) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	return err
}
