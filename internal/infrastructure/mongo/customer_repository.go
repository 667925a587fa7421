package mongo

import (
	"context"
	"errors"
	"regexp"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerRepository mongo adapter for the customer port. Filter fields AND
// together; Search matches the precomputed folded searchText field so Persian
// spelling variants hit.
type CustomerRepository struct {
	col *mongo.Collection
}

// NewCustomerRepository builds the adapter over the "customers" collection.
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection("customers")}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindPage(ctx context.Context, f repository.CustomerFilter, skip, limit int64) ([]*entity.Customer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, customerQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerRepository) Count(ctx context.Context, f repository.CustomerFilter) (int64, error) {
	return r.col.CountDocuments(ctx, customerQuery(f))
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func customerQuery(f repository.CustomerFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.MarketerID != "" {
		q["assignedMarketerId"] = f.MarketerID
	}
	if f.City != "" {
		q["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.City), Options: "i"}
	}
	if f.Search != "" {
		// searchText is already folded; a plain substring match suffices.
		q["searchText"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search)}
	}
	if len(f.Tags) > 0 {
		q["tags"] = bson.M{"$in": f.Tags}
	}
	if f.RequireGeo {
		q["geoLocation"] = bson.M{"$ne": nil}
	}
	return q
}
