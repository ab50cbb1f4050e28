package repository

import (
	"context"
	"fmt"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/seed"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

type ReferralRepository interface {
	List(ctx context.Context) ([]model.Referral, error)
	// Create allocates the referral id and synthesizes JobID as 1000+id.
	Create(ctx context.Context, ref *model.Referral) error
	// IncrementApplications bumps the counter under the collection writer lock
	// and returns the updated record; ErrNotFound for an unknown id.
	IncrementApplications(ctx context.Context, id int64) (*model.Referral, error)
}

type storeReferralRepository struct {
	c *collection[model.Referral]
}

func NewStoreReferralRepository(st store.Store) ReferralRepository {
	return &storeReferralRepository{
		c: newCollection[model.Referral](st, "referrals", seed.Version, seed.Referrals),
	}
}

func (r *storeReferralRepository) List(ctx context.Context) ([]model.Referral, error) {
	var out []model.Referral
	err := r.c.View(ctx, func(items []model.Referral) error {
		out = append(out, items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storeReferralRepository.List: %w", err)
	}
	return out, nil
}

func (r *storeReferralRepository) Create(ctx context.Context, ref *model.Referral) error {
	err := r.c.Update(ctx, func(items []model.Referral) ([]model.Referral, error) {
		ref.ID = nextID(items, func(rr model.Referral) int64 { return rr.ID })
		ref.JobID = 1000 + ref.ID
		return append(items, *ref), nil
	})
	if err != nil {
		return fmt.Errorf("storeReferralRepository.Create: %w", err)
	}
	return nil
}

func (r *storeReferralRepository) IncrementApplications(ctx context.Context, id int64) (*model.Referral, error) {
	var updated *model.Referral
	err := r.c.Update(ctx, func(items []model.Referral) ([]model.Referral, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].ApplicationCount++
				ref := items[i]
				updated = &ref
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
