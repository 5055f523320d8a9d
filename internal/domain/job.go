package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job types accepted by the platform.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Temporary"}

func ValidJobType(s string) bool {
	for _, t := range JobTypes {
		if t == s {
			return true
		}
	}
	return false
}

type Job struct {
	ID         int64 `json:"id"`
	EmployerID int64 `json:"employerId"`
	Title      string `json:"title"`
	// CompanyName is a snapshot of the employer's company name at post time,
	// not a live reference.
	CompanyName         string     `json:"companyName"`
	Location            string     `json:"location"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Skills              []string   `json:"skills"`
	SalaryMin           *float64   `json:"salaryMin,omitempty"`
	SalaryMax           *float64   `json:"salaryMax,omitempty"`
	JobType             string     `json:"jobType"`
	PostedDate          time.Time  `json:"postedDate"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	IsActive            bool       `json:"isActive"`
	Views               int64      `json:"views"`
	ApplicationsCount   int64      `json:"applicationsCount"`
	// Federated listing fields
	IsExternal bool    `json:"isExternal"`
	ExternalID *string `json:"external_id,omitempty"`
	Source     string  `json:"source"`
	ApplyLink  *string `json:"apply_link,omitempty"`
	LogoURL    *string `json:"logo_url,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Joined employer identity for list/detail responses
	EmployerName *string `json:"employerName,omitempty"`
}

// JobFilter holds the AND-composed search criteria for public job search.
// Zero values mean "no filter"; IsActive=true is always enforced server-side.
type JobFilter struct {
	Keyword  string
	Location string
	JobType  string
	Skills   []string
}

// JobPatch carries a partial update: only non-nil fields overwrite.
type JobPatch struct {
	Title               *string
	Description         *string
	Location            *string
	Requirements        []string
	Skills              []string
	SalaryMin           *float64
	SalaryMax           *float64
	JobType             *string
	ApplicationDeadline *time.Time
	IsActive            *bool
}

// EmployerJobFilter selects active, inactive or all of an employer's jobs.
type EmployerJobFilter string

const (
	EmployerJobsAll      EmployerJobFilter = "all"
	EmployerJobsActive   EmployerJobFilter = "active"
	EmployerJobsInactive EmployerJobFilter = "inactive"
)

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Search returns active jobs only; the filter is composed server-side.
	Search(ctx context.Context, filter JobFilter, limit, offset int, sort string) ([]Job, int64, error)
	FetchByEmployer(ctx context.Context, employerID int64, filter EmployerJobFilter, limit, offset int, sort string) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	// Deactivate flips is_active off; rows are never removed.
	Deactivate(ctx context.Context, id int64) error
	// IncrementViews bumps the view counter of an active job atomically and
	// returns the new count.
	IncrementViews(ctx context.Context, id int64) (int64, error)
	GetByExternalID(ctx context.Context, externalID, source string) (*Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employer *User, job *Job) error
	GetJobs(ctx context.Context, filter JobFilter, page, pageSize int, sort string) ([]Job, int64, error)
	GetJobByID(ctx context.Context, id int64) (*Job, error)
	UpdateJob(ctx context.Context, userID, jobID int64, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, userID, jobID int64) error
	IncrementJobView(ctx context.Context, id int64) (int64, error)
	ListEmployerJobs(ctx context.Context, employerID int64, filter EmployerJobFilter, page, pageSize int, sort string) ([]Job, int64, error)
	GetJobsBySkills(ctx context.Context, skills []string) ([]Job, error)
}
