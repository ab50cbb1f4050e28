package repository

import (
	"context"
	"fmt"

	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/seed"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

// The alumni directory and company insights are read-only datasets; their
// repositories only list.

type AlumniRepository interface {
	List(ctx context.Context) ([]model.Alumni, error)
}

type InsightRepository interface {
	List(ctx context.Context) ([]model.CompanyInsight, error)
}

type storeAlumniRepository struct {
	c *collection[model.Alumni]
}

func NewStoreAlumniRepository(st store.Store) AlumniRepository {
	return &storeAlumniRepository{c: newCollection[model.Alumni](st, "alumni", seed.Version, seed.Alumni)}
}

func (r *storeAlumniRepository) List(ctx context.Context) ([]model.Alumni, error) {
	var out []model.Alumni
	err := r.c.View(ctx, func(items []model.Alumni) error {
		out = append(out, items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storeAlumniRepository.List: %w", err)
	}
	return out, nil
}

type storeInsightRepository struct {
	c *collection[model.CompanyInsight]
}

func NewStoreInsightRepository(st store.Store) InsightRepository {
	return &storeInsightRepository{c: newCollection[model.CompanyInsight](st, "company_insights", seed.Version, seed.Insights)}
}

func (r *storeInsightRepository) List(ctx context.Context) ([]model.CompanyInsight, error) {
	var out []model.CompanyInsight
	err := r.c.View(ctx, func(items []model.CompanyInsight) error {
		out = append(out, items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storeInsightRepository.List: %w", err)
	}
	return out, nil
}
