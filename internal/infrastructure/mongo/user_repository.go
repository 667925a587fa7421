package mongo

import (
	"context"
	"errors"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository mongo adapter for the user port.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository builds the adapter over the "users" collection.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, q bson.M) (*entity.User, error) {
	var u entity.User
	err := r.col.FindOne(ctx, q).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
