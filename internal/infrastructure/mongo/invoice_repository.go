package mongo

import (
	"context"
	"errors"

	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceRepository mongo adapter for the invoice port.
type InvoiceRepository struct {
	col *mongo.Collection
}

// NewInvoiceRepository builds the adapter over the "invoices" collection.
func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{col: db.Collection("invoices")}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	_, err := r.col.InsertOne(ctx, inv)
	return err
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) FindPage(ctx context.Context, f repository.InvoiceFilter, skip, limit int64) ([]*entity.Invoice, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, invoiceQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Invoice
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvoiceRepository) Count(ctx context.Context, f repository.InvoiceFilter) (int64, error) {
	return r.col.CountDocuments(ctx, invoiceQuery(f))
}

// Patch maps directly onto a single $set/$unset update, so the whole change
// lands atomically.
func (r *InvoiceRepository) Patch(ctx context.Context, id string, set map[string]interface{}, unset []string) error {
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		fields := bson.M{}
		for _, f := range unset {
			fields[f] = ""
		}
		update["$unset"] = fields
	}
	if len(update) == 0 {
		return nil
	}
	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func invoiceQuery(f repository.InvoiceFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.CustomerID != "" {
		q["customerId"] = f.CustomerID
	}
	if f.MarketerID != "" {
		q["marketerId"] = f.MarketerID
	}
	return q
}
