package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
)

type ReferralService struct {
	referralRepo repository.ReferralRepository
	userRepo     repository.UserRepository
}

func NewReferralService(referralRepo repository.ReferralRepository, userRepo repository.UserRepository) *ReferralService {
	return &ReferralService{referralRepo: referralRepo, userRepo: userRepo}
}

type CreateReferralRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

func (s *ReferralService) List(ctx context.Context, filter model.ReferralFilter) ([]model.Referral, error) {
	refs, err := s.referralRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Referral, 0, len(refs))
	for _, r := range refs {
		if filter.Match(r) {
			filtered = append(filtered, r)
		}
	}
	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

// Create posts a referral on behalf of the calling user. The referral code is
// the opaque string candidates quote when applying through the alum.
func (s *ReferralService) Create(ctx context.Context, userID int64, req CreateReferralRequest) (*model.Referral, error) {
	if req.Company == "" || req.Role == "" {
		return nil, common.Errorf("company and role are required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ref := &model.Referral{
		ReferredBy:   user.Name,
		Company:      req.Company,
		Role:         req.Role,
		Status:       "open",
		ReferralCode: uuid.NewString(),
		PostedOn:     time.Now().UTC(),
	}
	if err := s.referralRepo.Create(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// Apply bumps the referral's application counter.
func (s *ReferralService) Apply(ctx context.Context, id int64) (*model.Referral, error) {
	return s.referralRepo.IncrementApplications(ctx, id)
}
