package domain

import "context"

// ExternalJob is a normalized listing from a third-party provider.
type ExternalJob struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	EmploymentType string   `json:"employment_type"`
	PostedDate     string   `json:"posted_date"`
	ApplyLink      string   `json:"apply_link"`
	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`
	Requirements   []string `json:"requirements"`
	IsRemote       bool     `json:"is_remote"`
	Source         string   `json:"source"`
	ExternalID     string   `json:"external_id"`
	LogoURL        string   `json:"logo_url,omitempty"`
}

type ExternalSearchQuery struct {
	Query           string
	Location        string
	EmploymentTypes string
	Page            int
	NumPages        int
	DatePosted      string
	RemoteOnly      bool
}

type ExternalSearchResult struct {
	Jobs     []ExternalJob `json:"jobs"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	Provider string        `json:"provider"`
}

type ProviderStatus struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
}

type ProvidersReport struct {
	Providers    []ProviderStatus `json:"providers"`
	CacheEntries int              `json:"cache_entries"`
	CacheEnabled bool             `json:"cache_enabled"`
}

type ExternalJobsUsecase interface {
	// Search runs a provider query, serving repeat queries from the TTL cache.
	// The returned bool reports a cache hit.
	Search(ctx context.Context, q ExternalSearchQuery) (*ExternalSearchResult, bool, error)
	Trending(ctx context.Context, limit int) ([]ExternalJob, bool, error)
	// Sync persists unseen external listings as inactive-employer jobs and
	// returns (synced, fetched).
	Sync(ctx context.Context, query string, maxJobs int) (int, int, error)
	ProvidersStatus(ctx context.Context) (*ProvidersReport, error)
}
