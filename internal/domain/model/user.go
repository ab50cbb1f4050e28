package model

import (
	"time"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RolePlacement = "placement"
)

func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleRecruiter || role == RolePlacement
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// HashedPassword round-trips through the persisted collection JSON; services
	// blank it before a User leaves the API.
	HashedPassword string      `json:"hashed_password,omitempty"`
	Role           string      `json:"role"`
	Profile        UserProfile `json:"profile"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// UserProfile is the patchable sub-record of a User. Updates shallow-merge into
// it: keys absent from a patch keep their stored values.
type UserProfile struct {
	CGPA      *float64 `json:"cgpa,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	ResumeURL string   `json:"resume_url,omitempty"`
	Branch    string   `json:"branch,omitempty"`
	Batch     int      `json:"batch,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Company   string   `json:"company,omitempty"`
}

// UserProfilePatch carries only the profile keys a caller wants to change.
type UserProfilePatch struct {
	CGPA      *float64  `json:"cgpa,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	Branch    *string   `json:"branch,omitempty"`
	Batch     *int      `json:"batch,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
}

// Merge applies the patch, leaving unset keys untouched.
func (p UserProfilePatch) Merge(into *UserProfile) {
	if p.CGPA != nil {
		into.CGPA = p.CGPA
	}
	if p.Skills != nil {
		into.Skills = *p.Skills
	}
	if p.ResumeURL != nil {
		into.ResumeURL = *p.ResumeURL
	}
	if p.Branch != nil {
		into.Branch = *p.Branch
	}
	if p.Batch != nil {
		into.Batch = *p.Batch
	}
	if p.Phone != nil {
		into.Phone = *p.Phone
	}
	if p.Company != nil {
		into.Company = *p.Company
	}
}
