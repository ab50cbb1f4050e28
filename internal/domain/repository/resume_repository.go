package repository

import (
	"context"
	"fmt"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/seed"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

type ResumeRepository interface {
	FindByUser(ctx context.Context, userID int64) (*model.ResumeProfile, error)
	// Upsert replaces the user's profile, or appends it when absent.
	Upsert(ctx context.Context, profile model.ResumeProfile) error
}

type storeResumeRepository struct {
	c *collection[model.ResumeProfile]
}

func NewStoreResumeRepository(st store.Store) ResumeRepository {
	return &storeResumeRepository{
		c: newCollection[model.ResumeProfile](st, "resume_profiles", seed.Version, seed.Resumes),
	}
}

func (r *storeResumeRepository) FindByUser(ctx context.Context, userID int64) (*model.ResumeProfile, error) {
	var found *model.ResumeProfile
	err := r.c.View(ctx, func(items []model.ResumeProfile) error {
		for i := range items {
			if items[i].UserID == userID {
				p := items[i]
				found = &p
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

func (r *storeResumeRepository) Upsert(ctx context.Context, profile model.ResumeProfile) error {
	err := r.c.Update(ctx, func(items []model.ResumeProfile) ([]model.ResumeProfile, error) {
		for i := range items {
			if items[i].UserID == profile.UserID {
				items[i] = profile
				return items, nil
			}
		}
		return append(items, profile), nil
	})
	if err != nil {
		return fmt.Errorf("storeResumeRepository.Upsert: %w", err)
	}
	return nil
}
