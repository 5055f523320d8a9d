package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

const topJobsLimit = 5

type analyticsUsecase struct {
	analyticsRepo domain.AnalyticsRepository
}

func NewAnalyticsUsecase(analyticsRepo domain.AnalyticsRepository) domain.AnalyticsUsecase {
	return &analyticsUsecase{analyticsRepo: analyticsRepo}
}

func (u *analyticsUsecase) JobPostingsAnalytics(ctx context.Context, employerID int64) (*domain.JobPostingsReport, error) {
	stats, err := u.analyticsRepo.EmployerJobStats(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if stats == nil {
		stats = []domain.JobPostingStat{}
	}

	report := &domain.JobPostingsReport{
		TotalJobsPosted: int64(len(stats)),
		JobsAnalytics:   stats,
	}
	for _, s := range stats {
		report.TotalViews += s.Views
		report.TotalApplications += s.ApplicationsCount
	}
	// Averages stay zero for an employer with no postings.
	if report.TotalJobsPosted > 0 {
		report.AverageViewsPerJob = float64(report.TotalViews) / float64(report.TotalJobsPosted)
		report.AverageApplicationsPerJob = float64(report.TotalApplications) / float64(report.TotalJobsPosted)
	}
	return report, nil
}

func (u *analyticsUsecase) ApplicationStatusAnalytics(ctx context.Context, employerID int64) (*domain.ApplicationStatusReport, error) {
	counts, err := u.analyticsRepo.CountApplicationsByStatus(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Every recognized status appears in the response, zero or not, so the
	// shape is stable for chart consumers.
	report := &domain.ApplicationStatusReport{
		StatusCounts: make(map[domain.ApplicationStatus]int64, len(domain.ApplicationStatuses)),
	}
	for _, status := range domain.ApplicationStatuses {
		report.StatusCounts[status] = 0
	}
	for status, count := range counts {
		report.StatusCounts[status] = count
		report.TotalApplicationsReceived += count
	}
	return report, nil
}

func (u *analyticsUsecase) PlatformAnalytics(ctx context.Context) (*domain.PlatformReport, error) {
	report, err := u.analyticsRepo.PlatformCounts(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if report.TotalJobs > 0 {
		report.AverageApplicationsPerJob = float64(report.TotalApplications) / float64(report.TotalJobs)
	}

	top, err := u.analyticsRepo.TopJobsByApplications(ctx, topJobsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if top == nil {
		top = []domain.TopJob{}
	}
	report.TopJobsByApplication = top
	return report, nil
}
