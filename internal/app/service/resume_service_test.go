package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

type resumeFixture struct {
	svc     *ResumeService
	jobRepo repository.JobRepository
}

// newResumeFixture wires the resume service over one in-memory store; the user
// and job collections carry the bundled seed (user 1 is a seeded student).
func newResumeFixture() resumeFixture {
	st := store.NewMemory()
	jobRepo := repository.NewStoreJobRepository(st)
	return resumeFixture{
		svc: NewResumeService(
			repository.NewStoreResumeRepository(st),
			repository.NewStoreUserRepository(st),
			jobRepo,
		),
		jobRepo: jobRepo,
	}
}

func profileWithSkills(skills ...string) *model.ResumeProfile {
	return &model.ResumeProfile{UserID: 1, Skills: skills}
}

func jobWithSkills(skills ...string) model.Job {
	return model.Job{ID: 1, Title: "Role", CompanyName: "Acme", Skills: skills}
}

func TestScoreFloorWithNoOverlap(t *testing.T) {
	result := ScoreResume(profileWithSkills(), jobWithSkills("Rust", "Go"))
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, []string{"Rust", "Go"}, result.MissingSkills)
	assert.Empty(t, result.MatchedSkills)
	assert.Contains(t, result.Recommendation, "Rust, Go")
}

func TestScoreJobWithNoSkillsHitsFloor(t *testing.T) {
	result := ScoreResume(profileWithSkills("Go"), jobWithSkills())
	assert.Equal(t, 25, result.Score)
}

func TestScoreNormalizesSkillStrings(t *testing.T) {
	result := ScoreResume(profileWithSkills("  go ", "RUST"), jobWithSkills("Go", "rust"))
	assert.Equal(t, []string{"Go", "rust"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 70, result.Score)
}

func TestScoreBoosts(t *testing.T) {
	profile := profileWithSkills("Go", "SQL")
	profile.Summary = strings.Repeat("x", 81)
	profile.Projects = []model.ProjectEntry{{Name: "p"}}
	profile.Experience = []model.ExperienceEntry{{Company: "c"}}

	result := ScoreResume(profile, jobWithSkills("Go", "SQL"))
	// 70 coverage + 10 summary + 8 projects + 7 experience: the 95 ceiling of
	// the raw formula.
	assert.Equal(t, 95, result.Score)

	profile.Summary = strings.Repeat("x", 80) // boundary: boost needs > 80
	result = ScoreResume(profile, jobWithSkills("Go", "SQL"))
	assert.Equal(t, 85, result.Score)
}

func TestScorePartialCoverageRounds(t *testing.T) {
	// 2 of 3 skills: round(46.67) = 47.
	result := ScoreResume(profileWithSkills("Go", "SQL"), jobWithSkills("Go", "SQL", "Kafka"))
	assert.Equal(t, 47, result.Score)

	// 1 of 3 skills: round(23.33) = 23, clamped up to the 25 floor.
	result = ScoreResume(profileWithSkills("Go"), jobWithSkills("Go", "SQL", "Kafka"))
	assert.Equal(t, 25, result.Score)
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	jobSkills := []string{"Go", "SQL", "Kafka", "Docker"}
	prev := 0
	for n := 0; n <= len(jobSkills); n++ {
		result := ScoreResume(profileWithSkills(jobSkills[:n]...), jobWithSkills(jobSkills...))
		assert.GreaterOrEqual(t, result.Score, 25)
		assert.LessOrEqual(t, result.Score, 100)
		assert.GreaterOrEqual(t, result.Score, prev, "score must not decrease as overlap grows")
		prev = result.Score
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	profile := profileWithSkills("Go", "SQL")
	profile.Summary = strings.Repeat("s", 100)
	job := jobWithSkills("Go", "Kafka")

	first := ScoreResume(profile, job)
	second := ScoreResume(profile, job)
	assert.Equal(t, first, second)
}

func TestGetProfileLazilyCreatesTemplate(t *testing.T) {
	ctx := context.Background()
	f := newResumeFixture()

	first, err := f.svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	// Template inherits the account's skills.
	assert.Equal(t, []string{"JavaScript", "React", "Node.js"}, first.Skills)
	assert.NotEmpty(t, first.Headline)

	// Second read returns the same persisted profile, not a fresh template.
	second, err := f.svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Headline, second.Headline)
	assert.Equal(t, first.Skills, second.Skills)
	assert.True(t, first.LastUpdated.Equal(second.LastUpdated))
}

func TestGetProfileUnknownUser(t *testing.T) {
	f := newResumeFixture()
	_, err := f.svc.GetProfile(context.Background(), 99999)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSaveProfileMergePatch(t *testing.T) {
	ctx := context.Background()
	f := newResumeFixture()

	summary := "Final-year CSE student with a focus on backend systems."
	saved, err := f.svc.SaveProfile(ctx, 1, model.ResumeProfilePatch{Summary: &summary})
	require.NoError(t, err)
	assert.Equal(t, summary, saved.Summary)
	// Untouched fields survive the merge.
	assert.Equal(t, []string{"JavaScript", "React", "Node.js"}, saved.Skills)
	assert.False(t, saved.LastUpdated.IsZero())
}

func TestCompatibilityReport(t *testing.T) {
	ctx := context.Background()
	f := newResumeFixture()

	// Pad the catalog so more than six approved jobs exist.
	for i := 0; i < 7; i++ {
		err := f.jobRepo.Create(ctx, &model.Job{
			Title:       "Padding Role",
			CompanyName: "Acme",
			Skills:      []string{"JavaScript"},
			Approved:    true,
		})
		require.NoError(t, err)
	}

	report, err := f.svc.CompatibilityReport(ctx, 1)
	require.NoError(t, err)
	require.Len(t, report.Matches, 6)

	// Sorted by descending score, and the average covers only the shown top 6.
	sum := 0
	for i, m := range report.Matches {
		if i > 0 {
			assert.LessOrEqual(t, m.Score, report.Matches[i-1].Score)
		}
		sum += m.Score
	}
	avg := (sum + 3) / 6 // round(sum/6)
	assert.Equal(t, avg, report.AverageScore)

	// The unapproved seed job must not be scored.
	for _, m := range report.Matches {
		assert.NotEqual(t, int64(3), m.JobID)
	}
}

func TestGenerateInsights(t *testing.T) {
	profile := profileWithSkills("Go")
	profile.Summary = "short"

	matches := []model.MatchResult{
		{MissingSkills: []string{"Rust", "Go"}},
		{MissingSkills: []string{"Go"}},
		{MissingSkills: []string{"Go", "Kubernetes"}},
		{MissingSkills: []string{"Rust"}},
	}

	insights := GenerateInsights(profile, matches)

	// Three completeness checks fire for this profile.
	require.GreaterOrEqual(t, len(insights), 3)
	assert.Contains(t, insights[0], "summary")
	assert.Contains(t, insights[1], "project")
	assert.Contains(t, insights[2], "experience")

	// Skill suggestions ranked by missing-frequency: Go (3), Rust (2), Kubernetes (1).
	require.Len(t, insights, 6)
	assert.Contains(t, insights[3], "Go")
	assert.Contains(t, insights[4], "Rust")
	assert.Contains(t, insights[5], "Kubernetes")

	// No duplicates.
	seen := map[string]bool{}
	for _, s := range insights {
		assert.False(t, seen[s], "insights must be deduplicated")
		seen[s] = true
	}
}

func TestGenerateInsightsTieBreakIsFirstEncountered(t *testing.T) {
	profile := profileWithSkills("Go")
	profile.Summary = strings.Repeat("x", 150)
	profile.Projects = []model.ProjectEntry{{Name: "p"}}
	profile.Experience = []model.ExperienceEntry{{Company: "c"}}

	matches := []model.MatchResult{
		{MissingSkills: []string{"Kafka", "Terraform"}},
		{MissingSkills: []string{"Terraform", "Kafka"}},
	}

	insights := GenerateInsights(profile, matches)
	require.Len(t, insights, 2)
	assert.Contains(t, insights[0], "Kafka", "equal counts keep first-encountered order")
	assert.Contains(t, insights[1], "Terraform")
}
