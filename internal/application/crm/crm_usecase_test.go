package crm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
)

type fakeMarketerRepo struct {
	marketers map[string]*entity.Marketer
}

func (r *fakeMarketerRepo) Create(_ context.Context, m *entity.Marketer) error {
	r.marketers[m.ID] = m
	return nil
}
func (r *fakeMarketerRepo) GetByID(_ context.Context, id string) (*entity.Marketer, error) {
	return r.marketers[id], nil
}
func (r *fakeMarketerRepo) List(_ context.Context, _, _ int64) ([]*entity.Marketer, error) {
	out := make([]*entity.Marketer, 0, len(r.marketers))
	for _, m := range r.marketers {
		out = append(out, m)
	}
	return out, nil
}
func (r *fakeMarketerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.marketers)), nil
}
func (r *fakeMarketerRepo) Update(_ context.Context, m *entity.Marketer) error {
	r.marketers[m.ID] = m
	return nil
}

type fakeVisitRepo struct {
	visits []*entity.Visit
}

func (r *fakeVisitRepo) Create(_ context.Context, v *entity.Visit) error {
	r.visits = append(r.visits, v)
	return nil
}
func (r *fakeVisitRepo) FindPage(_ context.Context, f repository.VisitFilter, _, _ int64) ([]*entity.Visit, error) {
	var out []*entity.Visit
	for _, v := range r.visits {
		if f.CustomerID != "" && v.CustomerID != f.CustomerID {
			continue
		}
		if f.MarketerID != "" && v.MarketerID != f.MarketerID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
func (r *fakeVisitRepo) Count(ctx context.Context, f repository.VisitFilter) (int64, error) {
	page, _ := r.FindPage(ctx, f, 0, 0)
	return int64(len(page)), nil
}

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}
func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	return r.tasks[id], nil
}
func (r *fakeTaskRepo) FindPage(_ context.Context, f repository.TaskFilter, _, _ int64) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, task := range r.tasks {
		if f.Status != "" && task.Status != f.Status {
			continue
		}
		if f.AssigneeID != "" && task.AssigneeID != f.AssigneeID {
			continue
		}
		if f.CustomerID != "" && task.CustomerID != f.CustomerID {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}
func (r *fakeTaskRepo) Count(ctx context.Context, f repository.TaskFilter) (int64, error) {
	page, _ := r.FindPage(ctx, f, 0, 0)
	return int64(len(page)), nil
}
func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

type fakeStoryRepo struct {
	stories map[string]*entity.Story
}

func (r *fakeStoryRepo) Create(_ context.Context, s *entity.Story) error {
	r.stories[s.ID] = s
	return nil
}
func (r *fakeStoryRepo) GetByID(_ context.Context, id string) (*entity.Story, error) {
	return r.stories[id], nil
}
func (r *fakeStoryRepo) ListActive(_ context.Context) ([]*entity.Story, error) {
	var out []*entity.Story
	for _, s := range r.stories {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeStoryRepo) Update(_ context.Context, s *entity.Story) error {
	r.stories[s.ID] = s
	return nil
}

func TestMarketer_CreateListUpdate(t *testing.T) {
	repo := &fakeMarketerRepo{marketers: map[string]*entity.Marketer{}}
	uc := crm.NewMarketerUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMarketerRequest{Name: "بی‌شماره"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	m, err := uc.Create(ctx, dto.CreateMarketerRequest{Name: "رضا", Phone: "09121112233", City: "تهران"})
	require.NoError(t, err)
	assert.True(t, m.Active)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	active := false
	updated, err := uc.Update(ctx, m.ID, dto.UpdateMarketerRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "رضا", updated.Name) // untouched field survives

	_, err = uc.Update(ctx, "ghost", dto.UpdateMarketerRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVisit_CreateRequiresCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "c-1", Name: "تعمیرگاه", Status: entity.CustomerStatusActive},
	}}
	uc := crm.NewVisitUseCase(&fakeVisitRepo{}, customers)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateVisitRequest{CustomerID: "c-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput) // marketer missing

	_, err = uc.Create(ctx, dto.CreateVisitRequest{CustomerID: "ghost", MarketerID: "m-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	v, err := uc.Create(ctx, dto.CreateVisitRequest{CustomerID: "c-1", MarketerID: "m-1"})
	require.NoError(t, err)
	assert.False(t, v.VisitedAt.IsZero()) // defaults to now

	list, err := uc.List(ctx, dto.VisitListFilters{MarketerID: "m-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	list, err = uc.List(ctx, dto.VisitListFilters{MarketerID: "m-2"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Total)
}

func TestTask_StatusLifecycle(t *testing.T) {
	uc := crm.NewTaskUseCase(&fakeTaskRepo{tasks: map[string]*entity.Task{}})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateTaskRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	task, err := uc.Create(ctx, dto.CreateTaskRequest{Title: "پیگیری فاکتور"})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusOpen, task.Status)

	bad := "ARCHIVED"
	_, err = uc.Update(ctx, task.ID, dto.UpdateTaskRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	done := entity.TaskStatusDone
	updated, err := uc.Update(ctx, task.ID, dto.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, updated.Status)
	assert.Equal(t, "پیگیری فاکتور", updated.Title)

	_, err = uc.List(ctx, dto.TaskListFilters{Status: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	list, err := uc.List(ctx, dto.TaskListFilters{Status: entity.TaskStatusDone})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
}

func TestStory_VisibilityWindow(t *testing.T) {
	uc := crm.NewStoryUseCase(&fakeStoryRepo{stories: map[string]*entity.Story{}})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateStoryRequest{Title: "بدون رسانه"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	fresh, err := uc.Create(ctx, dto.CreateStoryRequest{Title: "تخفیف پاییز", MediaURL: "https://cdn.tamirban.ir/s1.jpg"})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = uc.Create(ctx, dto.CreateStoryRequest{Title: "منقضی", MediaURL: "https://cdn.tamirban.ir/s2.jpg", ExpiresAt: &past})
	require.NoError(t, err)

	visible, err := uc.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, fresh.ID, visible[0].ID)

	require.NoError(t, uc.Deactivate(ctx, fresh.ID))
	visible, err = uc.ListVisible(ctx)
	require.NoError(t, err)
	assert.Empty(t, visible)

	assert.ErrorIs(t, uc.Deactivate(ctx, "ghost"), domain.ErrNotFound)
}
