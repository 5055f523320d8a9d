package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func TestCreateJob(t *testing.T) {
	ctx := context.Background()
	employer := &domain.User{ID: 3, Role: domain.RoleEmployer, CompanyName: "Acme Corp"}

	t.Run("candidates cannot post", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		err := uc.CreateJob(ctx, &domain.User{ID: 9, Role: domain.RoleCandidate}, &domain.Job{JobType: "Full-time"})
		assert.Error(t, err)
		assert.Equal(t, 403, err.(*apperror.AppError).Code)
	})

	t.Run("company name is snapshotted from the account", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.CompanyName == "Acme Corp" && j.EmployerID == 3 && j.IsActive && j.Source == "internal"
		})).Return(nil)

		job := &domain.Job{Title: "Go Engineer", JobType: "Full-time", CompanyName: "Spoofed Inc"}
		err := uc.CreateJob(ctx, employer, job)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("skills are stored lowercase", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return assert.ObjectsAreEqual([]string{"go", "sql"}, j.Skills)
		})).Return(nil)

		job := &domain.Job{Title: "Go Engineer", JobType: "Full-time", Skills: []string{"Go", " SQL "}}
		err := uc.CreateJob(ctx, employer, job)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects inverted salary range", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		job := &domain.Job{Title: "Go Engineer", JobType: "Full-time", SalaryMin: floatPtr(90000), SalaryMax: floatPtr(50000)}
		err := uc.CreateJob(ctx, employer, job)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})

	t.Run("rejects past deadline", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		past := time.Now().Add(-24 * time.Hour)
		job := &domain.Job{Title: "Go Engineer", JobType: "Full-time", ApplicationDeadline: &past}
		err := uc.CreateJob(ctx, employer, job)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})

	t.Run("rejects unknown job type", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		err := uc.CreateJob(ctx, employer, &domain.Job{Title: "Go Engineer", JobType: "Gig"})
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})
}

func TestGetJobByID(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivated jobs look absent", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, IsActive: false}, nil)

		_, err := uc.GetJobByID(ctx, 5)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
	})

	t.Run("missing jobs are 404", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", ctx, int64(6)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetJobByID(ctx, 6)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("only the owner may update", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, EmployerID: 3}, nil)

		_, err := uc.UpdateJob(ctx, 99, 5, domain.JobPatch{Title: strPtr("New title")})
		assert.Error(t, err)
		assert.Equal(t, 403, err.(*apperror.AppError).Code)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("patch only overwrites supplied fields", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		existing := &domain.Job{ID: 5, EmployerID: 3, Title: "Old", Location: "Berlin", JobType: "Full-time", IsActive: true}
		repo.On("GetByID", ctx, int64(5)).Return(existing, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.Title == "New title" && j.Location == "Berlin" && j.IsActive
		})).Return(nil)

		job, err := uc.UpdateJob(ctx, 3, 5, domain.JobPatch{Title: strPtr("New title")})
		assert.NoError(t, err)
		assert.Equal(t, "New title", job.Title)
	})

	t.Run("patched skills are lowercase-normalized", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		existing := &domain.Job{ID: 5, EmployerID: 3, Title: "Old", JobType: "Full-time", Skills: []string{"go"}}
		repo.On("GetByID", ctx, int64(5)).Return(existing, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		job, err := uc.UpdateJob(ctx, 3, 5, domain.JobPatch{Skills: []string{"Kubernetes", " Docker "}})
		assert.NoError(t, err)
		assert.Equal(t, []string{"kubernetes", "docker"}, job.Skills)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("soft deletes via deactivate", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, EmployerID: 3}, nil)
		repo.On("Deactivate", ctx, int64(5)).Return(nil)

		assert.NoError(t, uc.DeleteJob(ctx, 3, 5))
		repo.AssertCalled(t, "Deactivate", ctx, int64(5))
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, EmployerID: 3}, nil)

		err := uc.DeleteJob(ctx, 99, 5)
		assert.Error(t, err)
		assert.Equal(t, 403, err.(*apperror.AppError).Code)
	})
}

func TestListEmployerJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty status defaults to all", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("FetchByEmployer", ctx, int64(3), domain.EmployerJobsAll, 10, 0, "").
			Return([]domain.Job{}, int64(0), nil)

		_, _, err := uc.ListEmployerJobs(ctx, 3, "", 1, 10, "")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		_, _, err := uc.ListEmployerJobs(ctx, 3, "archived", 1, 10, "")
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})
}

func TestGetJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("filter skills are lowercase-normalized", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("Search", ctx, domain.JobFilter{Keyword: "engineer", Skills: []string{"go", "sql"}}, 10, 0, "").
			Return([]domain.Job{{ID: 1}}, int64(1), nil)

		jobs, total, err := uc.GetJobs(ctx, domain.JobFilter{Keyword: "engineer", Skills: []string{"Go", " SQL "}}, 1, 10, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, jobs, 1)
		repo.AssertExpectations(t)
	})
}

func TestGetJobsBySkills(t *testing.T) {
	ctx := context.Background()

	t.Run("requires at least one skill", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.GetJobsBySkills(ctx, nil)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})

	t.Run("delegates to search with a skills filter", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("Search", ctx, domain.JobFilter{Skills: []string{"go", "sql"}}, 50, 0, "").
			Return([]domain.Job{{ID: 1}}, int64(1), nil)

		jobs, err := uc.GetJobsBySkills(ctx, []string{"go", "sql"})
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("mixed-case query skills match lowercase storage", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("Search", ctx, domain.JobFilter{Skills: []string{"go", "sql"}}, 50, 0, "").
			Return([]domain.Job{{ID: 1}}, int64(1), nil)

		jobs, err := uc.GetJobsBySkills(ctx, []string{"Go", " SQL "})
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		repo.AssertExpectations(t)
	})
}
