package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/cache"
	"go-jobportal-backend/pkg/jobfeed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
	name       string
	configured bool
}

func (m *MockProvider) Name() string       { return m.name }
func (m *MockProvider) IsConfigured() bool { return m.configured }
func (m *MockProvider) Search(ctx context.Context, q domain.ExternalSearchQuery) ([]domain.ExternalJob, error) {
	args := m.Called(ctx, q)
	var jobs []domain.ExternalJob
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.ExternalJob)
	}
	return jobs, args.Error(1)
}

func newExternalUC(providers []jobfeed.Provider, jobRepo domain.JobRepository) domain.ExternalJobsUsecase {
	return usecase.NewExternalJobsUsecase(providers, cache.NewMemoryStore(16), jobRepo, time.Minute)
}

func TestExternalSearch(t *testing.T) {
	ctx := context.Background()
	listing := domain.ExternalJob{ID: "ext-1", Title: "Go Engineer", Source: "jsearch", ExternalID: "ext-1"}

	t.Run("repeat query is served from cache", func(t *testing.T) {
		provider := &MockProvider{name: "JSearch", configured: true}
		uc := newExternalUC([]jobfeed.Provider{provider}, new(MockJobRepo))

		provider.On("Search", ctx, mock.Anything).Return([]domain.ExternalJob{listing}, nil).Once()

		first, cached, err := uc.Search(ctx, domain.ExternalSearchQuery{Query: "go engineer"})
		assert.NoError(t, err)
		assert.False(t, cached)
		assert.Equal(t, "JSearch", first.Provider)

		second, cached, err := uc.Search(ctx, domain.ExternalSearchQuery{Query: "go engineer"})
		assert.NoError(t, err)
		assert.True(t, cached)
		assert.Equal(t, first.Total, second.Total)
		provider.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		uc := newExternalUC(nil, new(MockJobRepo))

		_, _, err := uc.Search(ctx, domain.ExternalSearchQuery{})
		assert.Error(t, err)
	})
}

func TestExternalProviderFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("falls through to the next configured provider", func(t *testing.T) {
		primary := &MockProvider{name: "JSearch", configured: true}
		fallback := &MockProvider{name: "Adzuna", configured: true}
		uc := newExternalUC([]jobfeed.Provider{primary, fallback}, new(MockJobRepo))

		primary.On("Search", ctx, mock.Anything).Return(nil, errors.New("rate limited"))
		fallback.On("Search", ctx, mock.Anything).Return([]domain.ExternalJob{{ID: "a1"}}, nil)

		result, _, err := uc.Search(ctx, domain.ExternalSearchQuery{Query: "analyst"})
		assert.NoError(t, err)
		assert.Equal(t, "Adzuna", result.Provider)
	})

	t.Run("no configured providers yields an error", func(t *testing.T) {
		unconfigured := &MockProvider{name: "JSearch", configured: false}
		uc := newExternalUC([]jobfeed.Provider{unconfigured}, new(MockJobRepo))

		_, _, err := uc.Search(ctx, domain.ExternalSearchQuery{Query: "analyst"})
		assert.Error(t, err)
	})
}

func TestExternalSync(t *testing.T) {
	ctx := context.Background()
	listings := []domain.ExternalJob{
		{ID: "e1", Title: "Dev", Source: "jsearch", ExternalID: "e1", EmploymentType: "Full-time"},
		{ID: "e2", Title: "Analyst", Source: "jsearch", ExternalID: "e2", EmploymentType: "FULLTIME"},
	}

	t.Run("already imported listings are skipped", func(t *testing.T) {
		provider := &MockProvider{name: "JSearch", configured: true}
		jobRepo := new(MockJobRepo)
		uc := newExternalUC([]jobfeed.Provider{provider}, jobRepo)

		provider.On("Search", ctx, mock.Anything).Return(listings, nil)
		jobRepo.On("GetByExternalID", ctx, "e1", "jsearch").Return(&domain.Job{ID: 1}, nil)
		jobRepo.On("GetByExternalID", ctx, "e2", "jsearch").Return(nil, domain.ErrNotFound)
		jobRepo.On("Create", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			// Unrecognized employment types normalize to Full-time.
			return j.IsExternal && j.Source == "jsearch" && *j.ExternalID == "e2" && j.JobType == "Full-time"
		})).Return(nil)

		synced, fetched, err := uc.Sync(ctx, "developer", 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, synced)
		assert.Equal(t, 2, fetched)
		jobRepo.AssertExpectations(t)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		uc := newExternalUC(nil, new(MockJobRepo))

		_, _, err := uc.Sync(ctx, "  ", 10)
		assert.Error(t, err)
	})
}

func TestProvidersStatus(t *testing.T) {
	ctx := context.Background()

	uc := newExternalUC([]jobfeed.Provider{
		&MockProvider{name: "JSearch", configured: true},
		&MockProvider{name: "Adzuna", configured: false},
	}, new(MockJobRepo))

	report, err := uc.ProvidersStatus(ctx)
	assert.NoError(t, err)
	assert.Len(t, report.Providers, 2)
	assert.Equal(t, "available", report.Providers[0].Status)
	assert.Equal(t, "not_configured", report.Providers[1].Status)
	assert.True(t, report.CacheEnabled)
}
