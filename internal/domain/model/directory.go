package model

// Alumni is a directory entry for a graduate willing to be contacted about
// openings at their company.
type Alumni struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Company        string `json:"company"`
	Role           string `json:"role"`
	Batch          int    `json:"batch"`
	Email          string `json:"email,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	WillingToRefer bool   `json:"willing_to_refer"`
}

type AlumniFilter struct {
	Company        string
	Batch          int
	WillingToRefer *bool
	Limit          int
}

func (f AlumniFilter) Match(a Alumni) bool {
	if f.Company != "" && a.Company != f.Company {
		return false
	}
	if f.Batch != 0 && a.Batch != f.Batch {
		return false
	}
	if f.WillingToRefer != nil && a.WillingToRefer != *f.WillingToRefer {
		return false
	}
	return true
}

// CompanyInsight summarizes a company's campus hiring history for the
// placement dashboard.
type CompanyInsight struct {
	ID           int64    `json:"id"`
	Company      string   `json:"company"`
	Roles        []string `json:"roles"`
	AvgPackage   string   `json:"avg_package"`
	HiringTrend  string   `json:"hiring_trend"`
	VisitedYears []int    `json:"visited_years,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type InsightFilter struct {
	Company string
	Limit   int
}

func (f InsightFilter) Match(i CompanyInsight) bool {
	return f.Company == "" || i.Company == f.Company
}
