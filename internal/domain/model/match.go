package model

import (
	"time"
)

// MatchResult is the outcome of scoring one resume against one job's required
// skills. Score is always within [25, 100]: the floor guarantees the portal
// never reports an outright-failing match.
type MatchResult struct {
	JobID          int64    `json:"job_id"`
	JobTitle       string   `json:"job_title"`
	CompanyName    string   `json:"company_name"`
	Score          int      `json:"score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Recommendation string   `json:"recommendation"`
}

// CompatibilityReport ranks a student's matches against all approved jobs.
// AverageScore covers only the top matches shown, not the whole catalog.
type CompatibilityReport struct {
	Matches      []MatchResult `json:"matches"`
	AverageScore int           `json:"average_score"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
