package model

import (
	"time"
)

type ExperienceEntry struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Year        string  `json:"year"`
	Score       float64 `json:"score,omitempty"`
}

type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// ResumeProfile is the 1:1 resume record for a user. It is created lazily from
// the user's account record on first read and merge-patched on save.
type ResumeProfile struct {
	UserID         int64             `json:"user_id"`
	Headline       string            `json:"headline"`
	Summary        string            `json:"summary"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
	Skills         []string          `json:"skills"`
	ResumeFile     string            `json:"resume_file,omitempty"`
	LastUpdated    time.Time         `json:"last_updated"`
}

// ResumeProfilePatch carries the fields a save wants to change; unset fields
// keep their stored values.
type ResumeProfilePatch struct {
	Headline       *string            `json:"headline,omitempty"`
	Summary        *string            `json:"summary,omitempty"`
	Experience     *[]ExperienceEntry `json:"experience,omitempty"`
	Education      *[]EducationEntry  `json:"education,omitempty"`
	Projects       *[]ProjectEntry    `json:"projects,omitempty"`
	Certifications *[]string          `json:"certifications,omitempty"`
	Skills         *[]string          `json:"skills,omitempty"`
	ResumeFile     *string            `json:"resume_file,omitempty"`
}

func (p ResumeProfilePatch) Merge(into *ResumeProfile) {
	if p.Headline != nil {
		into.Headline = *p.Headline
	}
	if p.Summary != nil {
		into.Summary = *p.Summary
	}
	if p.Experience != nil {
		into.Experience = *p.Experience
	}
	if p.Education != nil {
		into.Education = *p.Education
	}
	if p.Projects != nil {
		into.Projects = *p.Projects
	}
	if p.Certifications != nil {
		into.Certifications = *p.Certifications
	}
	if p.Skills != nil {
		into.Skills = *p.Skills
	}
	if p.ResumeFile != nil {
		into.ResumeFile = *p.ResumeFile
	}
}
