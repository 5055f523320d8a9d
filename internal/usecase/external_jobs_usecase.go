package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/cache"
	"go-jobportal-backend/pkg/jobfeed"
)

// trendingQueries rotate through the trending endpoint so the landing page
// does not show the same feed on every visit.
var trendingQueries = []string{
	"software engineer", "data analyst", "product manager",
	"marketing specialist", "sales representative", "web developer",
}

type externalJobsUsecase struct {
	providers []jobfeed.Provider
	store     cache.Store
	jobRepo   domain.JobRepository
	ttl       time.Duration
}

func NewExternalJobsUsecase(providers []jobfeed.Provider, store cache.Store, jobRepo domain.JobRepository, ttl time.Duration) domain.ExternalJobsUsecase {
	return &externalJobsUsecase{
		providers: providers,
		store:     store,
		jobRepo:   jobRepo,
		ttl:       ttl,
	}
}

func searchCacheKey(q domain.ExternalSearchQuery) string {
	return fmt.Sprintf("search:%s:%s:%s:%d:%s:%t",
		strings.ToLower(q.Query), strings.ToLower(q.Location),
		q.EmploymentTypes, q.Page, q.DatePosted, q.RemoteOnly)
}

// fetch walks the provider chain in order, falling through on failure. A
// provider without credentials is skipped silently.
func (u *externalJobsUsecase) fetch(ctx context.Context, q domain.ExternalSearchQuery) ([]domain.ExternalJob, string, error) {
	var lastErr error
	for _, p := range u.providers {
		if !p.IsConfigured() {
			continue
		}
		jobs, err := p.Search(ctx, q)
		if err != nil {
			slog.Warn("external provider search failed", "provider", p.Name(), "error", err)
			lastErr = err
			continue
		}
		return jobs, p.Name(), nil
	}
	if lastErr != nil {
		return nil, "", lastErr
	}
	return nil, "", jobfeed.ErrNotConfigured
}

func (u *externalJobsUsecase) Search(ctx context.Context, q domain.ExternalSearchQuery) (*domain.ExternalSearchResult, bool, error) {
	if strings.TrimSpace(q.Query) == "" {
		return nil, false, apperror.BadRequest("Search query is required")
	}
	if q.Page < 1 {
		q.Page = 1
	}

	key := searchCacheKey(q)
	var cached domain.ExternalSearchResult
	if hit, err := u.store.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	jobs, provider, err := u.fetch(ctx, q)
	if err != nil {
		if err == jobfeed.ErrNotConfigured {
			return nil, false, apperror.New(503, "No external job providers are configured", err)
		}
		return nil, false, apperror.New(502, "External job providers are unavailable", err)
	}
	if jobs == nil {
		jobs = []domain.ExternalJob{}
	}

	result := &domain.ExternalSearchResult{
		Jobs:     jobs,
		Total:    len(jobs),
		Page:     q.Page,
		Provider: provider,
	}
	if err := u.store.Set(ctx, key, result, u.ttl); err != nil {
		slog.Warn("external jobs cache write failed", "error", err)
	}
	return result, false, nil
}

func (u *externalJobsUsecase) Trending(ctx context.Context, limit int) ([]domain.ExternalJob, bool, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	query := trendingQueries[rand.Intn(len(trendingQueries))]

	key := fmt.Sprintf("trending:%s", query)
	var cached []domain.ExternalJob
	if hit, err := u.store.Get(ctx, key, &cached); err == nil && hit {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, true, nil
	}

	jobs, _, err := u.fetch(ctx, domain.ExternalSearchQuery{Query: query, Page: 1})
	if err != nil {
		if err == jobfeed.ErrNotConfigured {
			return nil, false, apperror.New(503, "No external job providers are configured", err)
		}
		return nil, false, apperror.New(502, "External job providers are unavailable", err)
	}
	if jobs == nil {
		jobs = []domain.ExternalJob{}
	}
	if err := u.store.Set(ctx, key, jobs, u.ttl); err != nil {
		slog.Warn("external jobs cache write failed", "error", err)
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, false, nil
}

// Sync imports unseen listings into the local jobs table so they show up in
// regular search. (externalId, source) is the dedup key.
func (u *externalJobsUsecase) Sync(ctx context.Context, query string, maxJobs int) (int, int, error) {
	if strings.TrimSpace(query) == "" {
		return 0, 0, apperror.BadRequest("Sync query is required")
	}
	if maxJobs < 1 || maxJobs > 100 {
		maxJobs = 20
	}

	jobs, provider, err := u.fetch(ctx, domain.ExternalSearchQuery{Query: query, Page: 1})
	if err != nil {
		if err == jobfeed.ErrNotConfigured {
			return 0, 0, apperror.New(503, "No external job providers are configured", err)
		}
		return 0, 0, apperror.New(502, "External job providers are unavailable", err)
	}
	if len(jobs) > maxJobs {
		jobs = jobs[:maxJobs]
	}

	synced := 0
	for i := range jobs {
		ext := jobs[i]
		if _, err := u.jobRepo.GetByExternalID(ctx, ext.ExternalID, ext.Source); err == nil {
			continue
		} else if err != domain.ErrNotFound {
			return synced, len(jobs), apperror.Internal(err)
		}

		job := externalToJob(&ext)
		if err := u.jobRepo.Create(ctx, job); err != nil {
			slog.Warn("external job import failed", "externalId", ext.ExternalID, "error", err)
			continue
		}
		synced++
	}
	slog.Info("external jobs synced", "provider", provider, "synced", synced, "fetched", len(jobs))
	return synced, len(jobs), nil
}

func externalToJob(ext *domain.ExternalJob) *domain.Job {
	jobType := ext.EmploymentType
	if !domain.ValidJobType(jobType) {
		jobType = "Full-time"
	}
	externalID := ext.ExternalID
	job := &domain.Job{
		Title:        ext.Title,
		CompanyName:  ext.Company,
		Location:     ext.Location,
		Description:  ext.Description,
		Requirements: ext.Requirements,
		Skills:       []string{},
		SalaryMin:    ext.SalaryMin,
		SalaryMax:    ext.SalaryMax,
		JobType:      jobType,
		IsActive:     true,
		IsExternal:   true,
		ExternalID:   &externalID,
		Source:       ext.Source,
	}
	if ext.ApplyLink != "" {
		link := ext.ApplyLink
		job.ApplyLink = &link
	}
	if ext.LogoURL != "" {
		logo := ext.LogoURL
		job.LogoURL = &logo
	}
	return job
}

func (u *externalJobsUsecase) ProvidersStatus(ctx context.Context) (*domain.ProvidersReport, error) {
	report := &domain.ProvidersReport{
		Providers:    make([]domain.ProviderStatus, 0, len(u.providers)),
		CacheEntries: u.store.Len(ctx),
		CacheEnabled: true,
	}
	for _, p := range u.providers {
		status := domain.ProviderStatus{
			Name:       p.Name(),
			Configured: p.IsConfigured(),
			Status:     "not_configured",
		}
		if status.Configured {
			status.Status = "available"
		}
		report.Providers = append(report.Providers, status)
	}
	return report, nil
}
