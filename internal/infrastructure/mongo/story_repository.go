package mongo

import (
	"context"
	"errors"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoryRepository mongo adapter for the story port.
type StoryRepository struct {
	col *mongo.Collection
}

// NewStoryRepository builds the adapter over the "stories" collection.
func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{col: db.Collection("stories")}
}

func (r *StoryRepository) Create(ctx context.Context, s *entity.Story) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *StoryRepository) GetByID(ctx context.Context, id string) (*entity.Story, error) {
	var s entity.Story
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActive returns active stories newest first; the time window is applied
// by the use case.
func (r *StoryRepository) ListActive(ctx context.Context) ([]*entity.Story, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Story
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StoryRepository) Update(ctx context.Context, s *entity.Story) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	return err
}
