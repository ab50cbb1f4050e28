package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
)

// Scoring weights. Coverage of the job's skill list contributes up to 70
// points and the three boosts top out at 25, so the maximum raw score is 95.
// A full 100 is deliberately out of reach.
const (
	coverageWeight  = 70
	summaryBoost    = 10
	projectsBoost   = 8
	experienceBoost = 7

	scoreFloor   = 25
	scoreCeiling = 100

	summaryBoostMinLen = 80
	reportTopN         = 6
)

type ResumeService struct {
	resumeRepo repository.ResumeRepository
	userRepo   repository.UserRepository
	jobRepo    repository.JobRepository
}

func NewResumeService(
	resumeRepo repository.ResumeRepository,
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
) *ResumeService {
	return &ResumeService{resumeRepo: resumeRepo, userRepo: userRepo, jobRepo: jobRepo}
}

// GetProfile returns the user's resume profile, lazily creating and persisting
// a template from the account record on first read. Calling it twice in a row
// yields the same persisted profile both times.
func (s *ResumeService) GetProfile(ctx context.Context, userID int64) (*model.ResumeProfile, error) {
	profile, err := s.resumeRepo.FindByUser(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tpl := templateProfile(user)
	if err := s.resumeRepo.Upsert(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to persist templated profile: %w", err)
	}
	return &tpl, nil
}

// SaveProfile merge-patches the stored profile (creating the template first if
// needed) and refreshes LastUpdated.
func (s *ResumeService) SaveProfile(ctx context.Context, userID int64, patch model.ResumeProfilePatch) (*model.ResumeProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Merge(profile)
	profile.LastUpdated = time.Now().UTC()
	if err := s.resumeRepo.Upsert(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CompatibilityReport scores the student's resume against every approved job,
// keeps the top matches sorted by descending score, and averages over just
// those top matches. The headline number is deliberately biased toward the
// student's best prospects.
func (s *ResumeService) CompatibilityReport(ctx context.Context, userID int64) (*model.CompatibilityReport, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]model.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		if !job.Approved {
			continue
		}
		matches = append(matches, ScoreResume(profile, job))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > reportTopN {
		matches = matches[:reportTopN]
	}

	avg := 0
	if len(matches) > 0 {
		sum := 0
		for _, m := range matches {
			sum += m.Score
		}
		avg = int(math.Round(float64(sum) / float64(len(matches))))
	}

	return &model.CompatibilityReport{
		Matches:      matches,
		AverageScore: avg,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// Insights returns deduplicated improvement suggestions for the student:
// profile-completeness checks plus the skills most often missing across their
// current matches.
func (s *ResumeService) Insights(ctx context.Context, userID int64) ([]string, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	report, err := s.CompatibilityReport(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GenerateInsights(profile, report.Matches), nil
}

// ScoreResume is a pure function of its inputs: identical profile and job
// always produce an identical MatchResult.
func ScoreResume(profile *model.ResumeProfile, job model.Job) model.MatchResult {
	have := make(map[string]bool, len(profile.Skills))
	for _, sk := range profile.Skills {
		have[normalizeSkill(sk)] = true
	}

	var matched, missing []string
	for _, sk := range job.Skills {
		if have[normalizeSkill(sk)] {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}

	// A job with no listed skills contributes zero coverage rather than a
	// division by zero; the floor keeps the result at 25.
	coverage := 0.0
	if len(job.Skills) > 0 {
		coverage = float64(len(matched)) / float64(len(job.Skills))
	}

	raw := coverage * coverageWeight
	if len(profile.Summary) > summaryBoostMinLen {
		raw += summaryBoost
	}
	if len(profile.Projects) > 0 {
		raw += projectsBoost
	}
	if len(profile.Experience) > 0 {
		raw += experienceBoost
	}

	score := int(math.Round(raw))
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}

	return model.MatchResult{
		JobID:          job.ID,
		JobTitle:       job.Title,
		CompanyName:    job.CompanyName,
		Score:          score,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Recommendation: recommendation(missing),
	}
}

func recommendation(missing []string) string {
	if len(missing) == 0 {
		return "Strong match! Your skill set covers everything this role asks for."
	}
	highlight := missing
	if len(highlight) > 2 {
		highlight = highlight[:2]
	}
	return fmt.Sprintf("Add %s to strengthen this match.", strings.Join(highlight, ", "))
}

// GenerateInsights combines static profile-completeness checks with the top-3
// most frequently missing skills across matches. Ties keep first-encountered
// order; the final list carries no duplicates.
func GenerateInsights(profile *model.ResumeProfile, matches []model.MatchResult) []string {
	var suggestions []string

	if len(profile.Summary) < 120 {
		suggestions = append(suggestions, "Expand your summary to at least 120 characters so recruiters get a fuller picture.")
	}
	if len(profile.Projects) == 0 {
		suggestions = append(suggestions, "Add at least one project to showcase applied skills.")
	}
	if len(profile.Experience) == 0 {
		suggestions = append(suggestions, "Add internship or work experience entries to your resume.")
	}

	counts := make(map[string]int)
	var order []string
	for _, m := range matches {
		for _, sk := range m.MissingSkills {
			key := normalizeSkill(sk)
			if counts[key] == 0 {
				order = append(order, sk)
			}
			counts[key]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[normalizeSkill(order[i])] > counts[normalizeSkill(order[j])]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	for _, sk := range order {
		suggestions = append(suggestions, fmt.Sprintf("Consider learning %s, which is missing from %d of your closest matches.", sk, counts[normalizeSkill(sk)]))
	}

	return dedupe(suggestions)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func templateProfile(user *model.User) model.ResumeProfile {
	headline := user.Name
	if user.Profile.Branch != "" {
		headline = fmt.Sprintf("%s | %s Student", user.Name, user.Profile.Branch)
	}
	return model.ResumeProfile{
		UserID:         user.ID,
		Headline:       headline,
		Summary:        "",
		Experience:     []model.ExperienceEntry{},
		Education:      []model.EducationEntry{},
		Projects:       []model.ProjectEntry{},
		Certifications: []string{},
		Skills:         append([]string(nil), user.Profile.Skills...),
		LastUpdated:    time.Now().UTC(),
	}
}
