package mongo

import (
	"context"
	"errors"

	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepository mongo adapter for the task port.
type TaskRepository struct {
	col *mongo.Collection
}

// NewTaskRepository builds the adapter over the "tasks" collection.
func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection("tasks")}
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	_, err := r.col.InsertOne(ctx, task)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var task entity.Task
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindPage(ctx context.Context, f repository.TaskFilter, skip, limit int64) ([]*entity.Task, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, taskQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Task
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TaskRepository) Count(ctx context.Context, f repository.TaskFilter) (int64, error) {
	return r.col.CountDocuments(ctx, taskQuery(f))
}

func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	return err
}

func taskQuery(f repository.TaskFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.AssigneeID != "" {
		q["assigneeId"] = f.AssigneeID
	}
	if f.CustomerID != "" {
		q["customerId"] = f.CustomerID
	}
	return q
}
