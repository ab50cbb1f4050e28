package model

import (
	"time"
)

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusInterview   ApplicationStatus = "Interview"
	StatusHired       ApplicationStatus = "Hired"
	StatusRejected    ApplicationStatus = "Rejected"
)

// Valid reports whether s is one of the five known statuses. Transitions between
// valid statuses are deliberately unconstrained (Hired back to Pending is legal);
// only unknown values are rejected.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID        int64             `json:"id"`
	JobID     int64             `json:"job_id"`
	UserID    int64             `json:"user_id"`
	ResumeURL string            `json:"resume_url"`
	Cover     string            `json:"cover"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}
