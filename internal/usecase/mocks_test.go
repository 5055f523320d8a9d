package usecase_test

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int, sort string) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, limit, offset, sort)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByEmployer(ctx context.Context, employerID int64, filter domain.EmployerJobFilter, limit, offset int, sort string) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, filter, limit, offset, sort)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) GetByExternalID(ctx context.Context, externalID, source string) (*domain.Job, error) {
	args := m.Called(ctx, externalID, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByCandidateID(ctx context.Context, candidateID int64) (*domain.Profile, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetVisibleByCandidateID(ctx context.Context, candidateID int64) (*domain.Profile, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Search(ctx context.Context, filter domain.ProfileFilter, limit, offset int, sort string) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, filter, limit, offset, sort)
	var profiles []domain.Profile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.Profile)
	}
	return profiles, args.Get(1).(int64), args.Error(2)
}
func (m *MockProfileRepo) Delete(ctx context.Context, candidateID int64) error {
	return m.Called(ctx, candidateID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, note *domain.ApplicationNote) error {
	return m.Called(ctx, id, status, note).Error(0)
}
func (m *MockApplicationRepo) Withdraw(ctx context.Context, id, jobID int64) error {
	return m.Called(ctx, id, jobID).Error(0)
}

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) EmployerJobStats(ctx context.Context, employerID int64) ([]domain.JobPostingStat, error) {
	args := m.Called(ctx, employerID)
	var stats []domain.JobPostingStat
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.JobPostingStat)
	}
	return stats, args.Error(1)
}
func (m *MockAnalyticsRepo) CountApplicationsByStatus(ctx context.Context, employerID int64) (map[domain.ApplicationStatus]int64, error) {
	args := m.Called(ctx, employerID)
	var counts map[domain.ApplicationStatus]int64
	if args.Get(0) != nil {
		counts = args.Get(0).(map[domain.ApplicationStatus]int64)
	}
	return counts, args.Error(1)
}
func (m *MockAnalyticsRepo) PlatformCounts(ctx context.Context) (*domain.PlatformReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformReport), args.Error(1)
}
func (m *MockAnalyticsRepo) TopJobsByApplications(ctx context.Context, limit int) ([]domain.TopJob, error) {
	args := m.Called(ctx, limit)
	var top []domain.TopJob
	if args.Get(0) != nil {
		top = args.Get(0).([]domain.TopJob)
	}
	return top, args.Error(1)
}
