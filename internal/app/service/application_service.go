package service

import (
	"context"
	"time"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
)

type ApplicationService struct {
	appRepo repository.ApplicationRepository

	// allowDuplicates preserves the portal's historical behavior of accepting a
	// second application from the same student for the same job.
	allowDuplicates bool
}

func NewApplicationService(appRepo repository.ApplicationRepository, allowDuplicates bool) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, allowDuplicates: allowDuplicates}
}

type ApplyRequest struct {
	JobID     int64  `json:"job_id"`
	ResumeURL string `json:"resume_url"`
	Cover     string `json:"cover"`
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID int64) ([]model.Application, error) {
	apps, err := s.appRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Application, 0)
	for _, a := range apps {
		if a.UserID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64) ([]model.Application, error) {
	apps, err := s.appRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Application, 0)
	for _, a := range apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Apply records a student's application. The job id is not validated against
// the catalog: an application is a student's statement of intent, and dangling
// job references were always tolerated by the portal.
func (s *ApplicationService) Apply(ctx context.Context, studentID int64, req ApplyRequest) (*model.Application, error) {
	if req.JobID == 0 {
		return nil, common.Errorf("job_id is required: %w", common.ErrBadRequest)
	}

	if !s.allowDuplicates {
		existing, err := s.ListByStudent(ctx, studentID)
		if err != nil {
			return nil, err
		}
		for _, a := range existing {
			if a.JobID == req.JobID {
				return nil, common.Errorf("already applied to this job: %w", common.ErrConflict)
			}
		}
	}

	app := &model.Application{
		JobID:     req.JobID,
		UserID:    studentID,
		ResumeURL: req.ResumeURL,
		Cover:     req.Cover,
		Status:    model.StatusPending,
		AppliedAt: time.Now().UTC(),
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus moves an application to any of the five known statuses. No
// ordering is enforced between them; unknown values are rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error) {
	if !status.Valid() {
		return nil, common.Errorf("unknown application status %q: %w", status, common.ErrValidation)
	}
	return s.appRepo.UpdateStatus(ctx, id, status)
}
