package domain

import (
	"context"
	"time"
)

// JobPostingStat is one row of the employer job-postings report.
type JobPostingStat struct {
	JobID             int64     `json:"jobId"`
	Title             string    `json:"title"`
	Views             int64     `json:"views"`
	ApplicationsCount int64     `json:"applicationsCount"`
	IsActive          bool      `json:"isActive"`
	PostedDate        time.Time `json:"postedDate"`
}

type JobPostingsReport struct {
	TotalJobsPosted          int64            `json:"totalJobsPosted"`
	TotalViews               int64            `json:"totalViews"`
	TotalApplications        int64            `json:"totalApplications"`
	AverageViewsPerJob       float64          `json:"averageViewsPerJob"`
	AverageApplicationsPerJob float64         `json:"averageApplicationsPerJob"`
	JobsAnalytics            []JobPostingStat `json:"jobsAnalytics"`
}

type ApplicationStatusReport struct {
	TotalApplicationsReceived int64                       `json:"totalApplicationsReceived"`
	StatusCounts              map[ApplicationStatus]int64 `json:"statusCounts"`
}

// TopJob is one entry of the platform-wide most-applied ranking.
type TopJob struct {
	JobID        int64  `json:"jobId"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Applications int64  `json:"applications"`
}

type PlatformReport struct {
	TotalUsers                int64    `json:"totalUsers"`
	TotalCandidates           int64    `json:"totalCandidates"`
	TotalEmployers            int64    `json:"totalEmployers"`
	TotalJobs                 int64    `json:"totalJobs"`
	TotalActiveJobs           int64    `json:"totalActiveJobs"`
	TotalApplications         int64    `json:"totalApplications"`
	AverageApplicationsPerJob float64  `json:"averageApplicationsPerJob"`
	TopJobsByApplication      []TopJob `json:"topJobsByApplication"`
}

type AnalyticsRepository interface {
	EmployerJobStats(ctx context.Context, employerID int64) ([]JobPostingStat, error)
	CountApplicationsByStatus(ctx context.Context, employerID int64) (map[ApplicationStatus]int64, error)
	PlatformCounts(ctx context.Context) (*PlatformReport, error)
	TopJobsByApplications(ctx context.Context, limit int) ([]TopJob, error)
}

type AnalyticsUsecase interface {
	JobPostingsAnalytics(ctx context.Context, employerID int64) (*JobPostingsReport, error)
	ApplicationStatusAnalytics(ctx context.Context, employerID int64) (*ApplicationStatusReport, error)
	PlatformAnalytics(ctx context.Context) (*PlatformReport, error)
}
