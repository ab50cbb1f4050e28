package model

import (
	"time"
)

// Referral is an alumni-posted opening. JobID is synthesized as 1000+ID so
// referral openings never collide with catalog job ids on the client.
type Referral struct {
	ID               int64     `json:"id"`
	JobID            int64     `json:"job_id"`
	ReferredBy       string    `json:"referred_by"`
	Company          string    `json:"company"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	ApplicationCount int       `json:"application_count"`
	ReferralCode     string    `json:"referral_code"`
	PostedOn         time.Time `json:"posted_on"`
}

type ReferralFilter struct {
	Company string
	Status  string
	Limit   int
}

func (f ReferralFilter) Match(r Referral) bool {
	if f.Company != "" && r.Company != f.Company {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}
