package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	profileRepo     domain.ProfileRepository
	userRepo        domain.UserRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
	}
}

func (u *applicationUsecase) ApplyForJob(ctx context.Context, candidateID, jobID int64, coverLetter string) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}

	exists, err := u.applicationRepo.Exists(ctx, jobID, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied for this job")
	}

	snapshot := u.snapshotProfile(ctx, candidateID)

	app := &domain.Application{
		JobID:           jobID,
		CandidateID:     candidateID,
		EmployerID:      job.EmployerID,
		Status:          domain.StatusApplied,
		CoverLetter:     coverLetter,
		ProfileSnapshot: snapshot,
		Notes:           []domain.ApplicationNote{},
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	app.JobTitle = &job.Title
	app.JobCompanyName = &job.CompanyName
	app.JobLocation = &job.Location
	return app, nil
}

// snapshotProfile copies whatever candidate data exists at apply time. A
// candidate without a profile still applies; the blanks become "N/A".
func (u *applicationUsecase) snapshotProfile(ctx context.Context, candidateID int64) domain.ProfileSnapshot {
	snapshot := domain.ProfileSnapshot{
		Name:     "N/A",
		Email:    "N/A",
		Headline: "",
		Skills:   []string{},
	}
	if user, err := u.userRepo.GetByID(ctx, candidateID); err == nil {
		snapshot.Name = user.Name
		snapshot.Email = user.Email
	}
	if profile, err := u.profileRepo.GetByCandidateID(ctx, candidateID); err == nil {
		snapshot.Headline = profile.Headline
		snapshot.ResumeURL = profile.ResumeURL
		if profile.Skills != nil {
			snapshot.Skills = profile.Skills
		}
	}
	return snapshot
}

func (u *applicationUsecase) GetApplicationsForJob(ctx context.Context, employerID, jobID int64) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("Not authorized to view applications for this job")
	}

	apps, err := u.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) GetApplicationsByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	apps, err := u.applicationRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// GetApplicationDetails is readable by exactly two parties: the candidate who
// applied and the employer who owns the job.
func (u *applicationUsecase) GetApplicationDetails(ctx context.Context, userID, applicationID int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.CandidateID != userID && app.EmployerID != userID {
		return nil, apperror.Forbidden("Not authorized to view this application")
	}
	return app, nil
}

func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, employerID, applicationID int64, status, note string) (*domain.Application, error) {
	newStatus := domain.ApplicationStatus(status)
	if !newStatus.Valid() || newStatus == domain.StatusWithdrawn {
		return nil, apperror.BadRequest("Invalid application status")
	}

	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.EmployerID != employerID {
		return nil, apperror.Forbidden("Not authorized to update this application")
	}

	var appNote *domain.ApplicationNote
	if note != "" {
		appNote = &domain.ApplicationNote{
			ByUser: employerID,
			Note:   note,
			Date:   time.Now(),
		}
	}
	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, newStatus, appNote); err != nil {
		return nil, apperror.Internal(err)
	}

	app.Status = newStatus
	if appNote != nil {
		app.Notes = append(app.Notes, *appNote)
	}
	return app, nil
}

func (u *applicationUsecase) WithdrawApplication(ctx context.Context, candidateID, applicationID int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.CandidateID != candidateID {
		return nil, apperror.Forbidden("Not authorized to withdraw this application")
	}
	// Refusing a repeat withdrawal keeps the job counter from being
	// decremented twice.
	if app.Status == domain.StatusWithdrawn {
		return nil, apperror.BadRequest("Application already withdrawn")
	}

	if err := u.applicationRepo.Withdraw(ctx, applicationID, app.JobID); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = domain.StatusWithdrawn
	return app, nil
}
