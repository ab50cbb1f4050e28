package service

import (
	"context"
	"strings"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
)

// DirectoryService serves the two read-only filtered-query datasets: the
// alumni directory and per-company hiring insights. Same predicate-chain
// pattern as the job catalog.
type DirectoryService struct {
	alumniRepo  repository.AlumniRepository
	insightRepo repository.InsightRepository
}

func NewDirectoryService(alumniRepo repository.AlumniRepository, insightRepo repository.InsightRepository) *DirectoryService {
	return &DirectoryService{alumniRepo: alumniRepo, insightRepo: insightRepo}
}

func (s *DirectoryService) ListAlumni(ctx context.Context, filter model.AlumniFilter) ([]model.Alumni, error) {
	alumni, err := s.alumniRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Alumni, 0, len(alumni))
	for _, a := range alumni {
		if filter.Match(a) {
			filtered = append(filtered, a)
		}
	}
	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

func (s *DirectoryService) ListInsights(ctx context.Context, filter model.InsightFilter) ([]model.CompanyInsight, error) {
	insights, err := s.insightRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.CompanyInsight, 0, len(insights))
	for _, i := range insights {
		if filter.Match(i) {
			filtered = append(filtered, i)
		}
	}
	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

func (s *DirectoryService) GetInsightByCompany(ctx context.Context, company string) (*model.CompanyInsight, error) {
	insights, err := s.insightRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range insights {
		if strings.EqualFold(insights[i].Company, company) {
			ins := insights[i]
			return &ins, nil
		}
	}
	return nil, common.ErrNotFound
}
