package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, employer *domain.User, job *domain.Job) error {
	if employer.Role != domain.RoleEmployer {
		return apperror.Forbidden("Only employers can post jobs")
	}
	if !domain.ValidJobType(job.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		return apperror.BadRequest("salaryMax must be greater than or equal to salaryMin")
	}
	if job.ApplicationDeadline != nil && !job.ApplicationDeadline.After(time.Now()) {
		return apperror.BadRequest("Application deadline must be in the future")
	}

	job.EmployerID = employer.ID
	// Company name is snapshotted from the posting account, never taken from
	// the request body.
	job.CompanyName = employer.CompanyName
	// Skills are stored lowercase so containment matching stays case-blind.
	job.Skills = normalizeSkills(job.Skills)
	job.IsActive = true
	job.Source = "internal"

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int, sort string) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	filter.Skills = normalizeSkills(filter.Skills)

	jobs, total, err := u.jobRepo.Search(ctx, filter, pageSize, offset, sort)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

// GetJobByID reports deactivated jobs as not found to everyone but their
// owner, who reads them through ListEmployerJobs instead.
func (u *jobUsecase) GetJobByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID, jobID int64, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != userID {
		return nil, apperror.Forbidden("Not authorized to update this job")
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Requirements != nil {
		job.Requirements = patch.Requirements
	}
	if patch.Skills != nil {
		job.Skills = normalizeSkills(patch.Skills)
	}
	if patch.SalaryMin != nil {
		job.SalaryMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.SalaryMax = patch.SalaryMax
	}
	if patch.JobType != nil {
		if !domain.ValidJobType(*patch.JobType) {
			return nil, apperror.BadRequest("Invalid job type")
		}
		job.JobType = *patch.JobType
	}
	if patch.ApplicationDeadline != nil {
		job.ApplicationDeadline = patch.ApplicationDeadline
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}

	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		return nil, apperror.BadRequest("salaryMax must be greater than or equal to salaryMin")
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeleteJob is a soft delete: the posting disappears from search but its
// applications stay reachable.
func (u *jobUsecase) DeleteJob(ctx context.Context, userID, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if job.EmployerID != userID {
		return apperror.Forbidden("Not authorized to delete this job")
	}
	if err := u.jobRepo.Deactivate(ctx, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) IncrementJobView(ctx context.Context, id int64) (int64, error) {
	views, err := u.jobRepo.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.NotFound("Job not found")
		}
		return 0, apperror.Internal(err)
	}
	return views, nil
}

func (u *jobUsecase) ListEmployerJobs(ctx context.Context, employerID int64, filter domain.EmployerJobFilter, page, pageSize int, sort string) ([]domain.Job, int64, error) {
	switch filter {
	case domain.EmployerJobsAll, domain.EmployerJobsActive, domain.EmployerJobsInactive:
	case "":
		filter = domain.EmployerJobsAll
	default:
		return nil, 0, apperror.BadRequest("status must be one of: all, active, inactive")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	jobs, total, err := u.jobRepo.FetchByEmployer(ctx, employerID, filter, pageSize, offset, sort)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) GetJobsBySkills(ctx context.Context, skills []string) ([]domain.Job, error) {
	skills = normalizeSkills(skills)
	if len(skills) == 0 {
		return nil, apperror.BadRequest("At least one skill is required")
	}
	jobs, _, err := u.jobRepo.Search(ctx, domain.JobFilter{Skills: skills}, 50, 0, "")
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
