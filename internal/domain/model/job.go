package model

import (
	"time"
)

type Job struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	CompanyID        int64      `json:"company_id"`
	CompanyName      string     `json:"company_name"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Skills           []string   `json:"skills"`
	MinCGPA          float64    `json:"min_cgpa,omitempty"`
	Compensation     string     `json:"compensation,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	PostedBy         int64      `json:"posted_by"`
	Approved         bool       `json:"approved"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// JobFilter holds the independently combinable list predicates. A nil field
// means "don't filter on this"; all set predicates AND together. Limit slices
// the head of the already-filtered result in insertion order.
type JobFilter struct {
	PostedBy *int64
	Approved *bool
	Limit    int
}

func (f JobFilter) Match(j Job) bool {
	if f.PostedBy != nil && j.PostedBy != *f.PostedBy {
		return false
	}
	if f.Approved != nil && j.Approved != *f.Approved {
		return false
	}
	return true
}
