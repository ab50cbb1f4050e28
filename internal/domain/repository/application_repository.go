package repository

import (
	"context"
	"fmt"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/seed"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

type ApplicationRepository interface {
	List(ctx context.Context) ([]model.Application, error)
	// Create allocates the next sequential id (max existing + 1, or 1 when the
	// collection is empty) and appends.
	Create(ctx context.Context, app *model.Application) error
	// UpdateStatus returns the updated record, or ErrNotFound for an unknown id.
	UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error)
}

type storeApplicationRepository struct {
	c *collection[model.Application]
}

func NewStoreApplicationRepository(st store.Store) ApplicationRepository {
	return &storeApplicationRepository{
		c: newCollection[model.Application](st, "applications", seed.Version, seed.Applications),
	}
}

func (r *storeApplicationRepository) List(ctx context.Context) ([]model.Application, error) {
	var out []model.Application
	err := r.c.View(ctx, func(items []model.Application) error {
		out = append(out, items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storeApplicationRepository.List: %w", err)
	}
	return out, nil
}

func (r *storeApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	err := r.c.Update(ctx, func(items []model.Application) ([]model.Application, error) {
		app.ID = nextID(items, func(a model.Application) int64 { return a.ID })
		return append(items, *app), nil
	})
	if err != nil {
		return fmt.Errorf("storeApplicationRepository.Create: %w", err)
	}
	return nil
}

func (r *storeApplicationRepository) UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error) {
	var updated *model.Application
	err := r.c.Update(ctx, func(items []model.Application) ([]model.Application, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				a := items[i]
				updated = &a
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
