package service

import (
	"context"
	"time"

	"github.com/gosimple/slug"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
)

type JobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

type CreateJobRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	CompanyID        int64      `json:"company_id"`
	CompanyName      string     `json:"company_name"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Skills           []string   `json:"skills"`
	MinCGPA          float64    `json:"min_cgpa"`
	Compensation     string     `json:"compensation"`
	Deadline         *time.Time `json:"deadline"`
}

type UpdateJobRequest struct {
	Title            *string    `json:"title,omitempty"`
	Description      *string    `json:"description,omitempty"`
	ShortDescription *string    `json:"short_description,omitempty"`
	CompanyName      *string    `json:"company_name,omitempty"`
	Location         *string    `json:"location,omitempty"`
	Type             *string    `json:"type,omitempty"`
	Skills           *[]string  `json:"skills,omitempty"`
	MinCGPA          *float64   `json:"min_cgpa,omitempty"`
	Compensation     *string    `json:"compensation,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}

// List applies the filter's predicates as one AND chain over insertion order,
// then slices the head when a limit is set.
func (s *JobService) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if filter.Match(j) {
			filtered = append(filtered, j)
		}
	}
	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

func (s *JobService) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	return s.jobRepo.FindByID(ctx, id)
}

func (s *JobService) GetBySlug(ctx context.Context, jobSlug string) (*model.Job, error) {
	return s.jobRepo.FindBySlug(ctx, jobSlug)
}

// Create posts a new job for the recruiter. Every job starts unapproved; only
// the placement cell's SetApproval makes it visible to students.
func (s *JobService) Create(ctx context.Context, recruiterID int64, req CreateJobRequest) (*model.Job, error) {
	if req.Title == "" || req.Description == "" || req.CompanyName == "" {
		return nil, common.Errorf("title, description and company_name are required: %w", common.ErrBadRequest)
	}

	now := time.Now().UTC()
	job := &model.Job{
		Title:            req.Title,
		Slug:             slug.Make(req.CompanyName + " " + req.Title),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		CompanyID:        req.CompanyID,
		CompanyName:      req.CompanyName,
		Location:         req.Location,
		Type:             req.Type,
		Skills:           req.Skills,
		MinCGPA:          req.MinCGPA,
		Compensation:     req.Compensation,
		Deadline:         req.Deadline,
		PostedBy:         recruiterID,
		Approved:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update shallow-merges the set fields of req into the stored job.
func (s *JobService) Update(ctx context.Context, id int64, req UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.ShortDescription != nil {
		job.ShortDescription = *req.ShortDescription
	}
	if req.CompanyName != nil {
		job.CompanyName = *req.CompanyName
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.MinCGPA != nil {
		job.MinCGPA = *req.MinCGPA
	}
	if req.Compensation != nil {
		job.Compensation = *req.Compensation
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Title != nil || req.CompanyName != nil {
		job.Slug = slug.Make(job.CompanyName + " " + job.Title)
	}
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobRepo.Update(ctx, *job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete succeeds whether or not the job exists.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobRepo.Delete(ctx, id)
}

// SetApproval is the placement cell's dedicated entry point. Mechanically a
// one-field update, kept separate so the approval workflow stays auditable.
func (s *JobService) SetApproval(ctx context.Context, id int64, approved bool) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Approved = approved
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobRepo.Update(ctx, *job); err != nil {
		return nil, err
	}
	return job, nil
}
