package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

func newReferralService() *ReferralService {
	st := store.NewMemory()
	return NewReferralService(
		repository.NewStoreReferralRepository(st),
		repository.NewStoreUserRepository(st),
	)
}

func TestReferralCreate(t *testing.T) {
	ctx := context.Background()
	s := newReferralService()

	// User 1 is seeded.
	ref, err := s.Create(ctx, 1, CreateReferralRequest{Company: "TechVista", Role: "SDE-2"})
	require.NoError(t, err)

	assert.Equal(t, "Aarav Sharma", ref.ReferredBy)
	assert.Equal(t, "open", ref.Status)
	assert.NotEmpty(t, ref.ReferralCode)
	assert.Equal(t, ref.ID+1000, ref.JobID, "referral job ids are synthesized as 1000+id")
	assert.Zero(t, ref.ApplicationCount)
	assert.False(t, ref.PostedOn.IsZero())
}

func TestReferralApplyIncrementsCount(t *testing.T) {
	ctx := context.Background()
	s := newReferralService()

	ref, err := s.Create(ctx, 1, CreateReferralRequest{Company: "QuantLeaf", Role: "Analyst"})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		updated, err := s.Apply(ctx, ref.ID)
		require.NoError(t, err)
		assert.Equal(t, i, updated.ApplicationCount)
	}
}

func TestReferralApplyUnknownID(t *testing.T) {
	s := newReferralService()
	_, err := s.Apply(context.Background(), 99999)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestReferralListFilters(t *testing.T) {
	ctx := context.Background()
	s := newReferralService()

	all, err := s.List(ctx, model.ReferralFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all, "seed referrals expected")

	byCompany, err := s.List(ctx, model.ReferralFilter{Company: "TechVista"})
	require.NoError(t, err)
	for _, r := range byCompany {
		assert.Equal(t, "TechVista", r.Company)
	}
	assert.LessOrEqual(t, len(byCompany), len(all))

	limited, err := s.List(ctx, model.ReferralFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
	assert.Equal(t, all[0].ID, limited[0].ID)
}

func TestDirectoryFilters(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewDirectoryService(
		repository.NewStoreAlumniRepository(st),
		repository.NewStoreInsightRepository(st),
	)

	all, err := s.ListAlumni(ctx, model.AlumniFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	willing := true
	referrers, err := s.ListAlumni(ctx, model.AlumniFilter{WillingToRefer: &willing})
	require.NoError(t, err)
	for _, a := range referrers {
		assert.True(t, a.WillingToRefer)
	}
	assert.Less(t, len(referrers), len(all), "seed contains at least one alum unwilling to refer")

	insight, err := s.GetInsightByCompany(ctx, "techvista")
	require.NoError(t, err)
	assert.Equal(t, "TechVista", insight.Company, "company lookup is case-insensitive")

	_, err = s.GetInsightByCompany(ctx, "NoSuchCorp")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
