package repository

import (
	"context"
	"fmt"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/seed"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

type JobRepository interface {
	List(ctx context.Context) ([]model.Job, error)
	FindByID(ctx context.Context, id int64) (*model.Job, error)
	FindBySlug(ctx context.Context, slug string) (*model.Job, error)
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job model.Job) error
	Delete(ctx context.Context, id int64) error
}

type storeJobRepository struct {
	c *collection[model.Job]
}

func NewStoreJobRepository(st store.Store) JobRepository {
	return &storeJobRepository{c: newCollection[model.Job](st, "jobs", seed.Version, seed.Jobs)}
}

func (r *storeJobRepository) List(ctx context.Context) ([]model.Job, error) {
	var out []model.Job
	err := r.c.View(ctx, func(items []model.Job) error {
		out = append(out, items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storeJobRepository.List: %w", err)
	}
	return out, nil
}

func (r *storeJobRepository) FindByID(ctx context.Context, id int64) (*model.Job, error) {
	var found *model.Job
	err := r.c.View(ctx, func(items []model.Job) error {
		for i := range items {
			if items[i].ID == id {
				j := items[i]
				found = &j
				return nil
			}
		}
		return common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *storeJobRepository) FindBySlug(ctx context.Context, slug string) (*model.Job, error) {
	var found *model.Job
	err := r.c.View(ctx, func(items []model.Job) error {
		for i := range items {
			if items[i].Slug == slug {
				j := items[i]
				found = &j
				return nil
			}
		}
		return common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create allocates the job's id under the writer lock and appends it.
func (r *storeJobRepository) Create(ctx context.Context, job *model.Job) error {
	err := r.c.Update(ctx, func(items []model.Job) ([]model.Job, error) {
		job.ID = nextID(items, func(j model.Job) int64 { return j.ID })
		return append(items, *job), nil
	})
	if err != nil {
		return fmt.Errorf("storeJobRepository.Create: %w", err)
	}
	return nil
}

func (r *storeJobRepository) Update(ctx context.Context, job model.Job) error {
	return r.c.Update(ctx, func(items []model.Job) ([]model.Job, error) {
		for i := range items {
			if items[i].ID == job.ID {
				items[i] = job
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}

// Delete is an idempotent no-op when the id is absent.
func (r *storeJobRepository) Delete(ctx context.Context, id int64) error {
	return r.c.Update(ctx, func(items []model.Job) ([]model.Job, error) {
		out := items[:0]
		for _, j := range items {
			if j.ID != id {
				out = append(out, j)
			}
		}
		return out, nil
	})
}
