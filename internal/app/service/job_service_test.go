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

func newJobService() *JobService {
	return NewJobService(repository.NewStoreJobRepository(store.NewMemory()))
}

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

func TestJobCreateStartsUnapproved(t *testing.T) {
	ctx := context.Background()
	s := newJobService()

	job, err := s.Create(ctx, 2, CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Own the placement APIs.",
		CompanyName: "TechVista",
		Skills:      []string{"Go", "SQL"},
	})
	require.NoError(t, err)
	assert.False(t, job.Approved)
	assert.NotZero(t, job.ID)
	assert.Equal(t, int64(2), job.PostedBy)
	assert.Equal(t, "techvista-backend-engineer", job.Slug)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestJobApprovalGate(t *testing.T) {
	ctx := context.Background()
	s := newJobService()

	job, err := s.Create(ctx, 2, CreateJobRequest{
		Title:       "QA Engineer",
		Description: "Test the portal.",
		CompanyName: "TechVista",
	})
	require.NoError(t, err)

	approved, err := s.List(ctx, model.JobFilter{Approved: boolPtr(true)})
	require.NoError(t, err)
	assert.NotContains(t, jobIDs(approved), job.ID)

	_, err = s.SetApproval(ctx, job.ID, true)
	require.NoError(t, err)

	approved, err = s.List(ctx, model.JobFilter{Approved: boolPtr(true)})
	require.NoError(t, err)
	assert.Contains(t, jobIDs(approved), job.ID)

	unapproved, err := s.List(ctx, model.JobFilter{Approved: boolPtr(false)})
	require.NoError(t, err)
	assert.NotContains(t, jobIDs(unapproved), job.ID)
}

func TestJobListFilterComposition(t *testing.T) {
	ctx := context.Background()
	s := newJobService()

	all, err := s.List(ctx, model.JobFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	filters := []model.JobFilter{
		{PostedBy: int64Ptr(2)},
		{Approved: boolPtr(true)},
		{PostedBy: int64Ptr(2), Approved: boolPtr(true)},
		{Approved: boolPtr(true), Limit: 1},
	}
	for _, f := range filters {
		got, err := s.List(ctx, f)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), len(all))
		for _, j := range got {
			assert.True(t, f.Match(j), "every result must satisfy every supplied predicate")
			assert.Contains(t, jobIDs(all), j.ID, "filtered results must be a subset of the unfiltered list")
		}
		if f.Limit > 0 {
			assert.LessOrEqual(t, len(got), f.Limit)
		}
	}
}

func TestJobLimitSlicesHeadInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newJobService()

	all, err := s.List(ctx, model.JobFilter{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	limited, err := s.List(ctx, model.JobFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, all[0].ID, limited[0].ID)
	assert.Equal(t, all[1].ID, limited[1].ID)
}

func TestJobUpdateMergesSetFieldsOnly(t *testing.T) {
	ctx := context.Background()
	s := newJobService()

	job, err := s.Create(ctx, 2, CreateJobRequest{
		Title:       "Data Engineer",
		Description: "Pipelines.",
		CompanyName: "QuantLeaf",
		Location:    "Mumbai",
		Skills:      []string{"Python"},
	})
	require.NoError(t, err)

	loc := "Remote"
	updated, err := s.Update(ctx, job.ID, UpdateJobRequest{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "Data Engineer", updated.Title)
	assert.Equal(t, []string{"Python"}, updated.Skills)
}

func TestJobUpdateUnknownID(t *testing.T) {
	s := newJobService()
	title := "x"
	_, err := s.Update(context.Background(), 99999, UpdateJobRequest{Title: &title})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestJobDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newJobService()

	job, err := s.Create(ctx, 2, CreateJobRequest{
		Title:       "Temp role",
		Description: "Short-lived.",
		CompanyName: "VoltEdge",
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, job.ID))
	// Deleting the same id again still reports success.
	require.NoError(t, s.Delete(ctx, job.ID))

	_, err = s.GetByID(ctx, job.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestJobCreateValidation(t *testing.T) {
	s := newJobService()
	_, err := s.Create(context.Background(), 2, CreateJobRequest{Title: "No description"})
	assert.True(t, errors.Is(err, common.ErrBadRequest))
}

func jobIDs(jobs []model.Job) []int64 {
	ids := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}
