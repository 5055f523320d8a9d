package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the closed set of application states. Transitions are
// employer-driven and deliberately unordered: any recognized status may be
// set from any other, except Withdrawn which only the candidate sets.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "Applied"
	StatusViewed       ApplicationStatus = "Viewed"
	StatusShortlisted  ApplicationStatus = "Shortlisted"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusOffered      ApplicationStatus = "Offered"
	StatusRejected     ApplicationStatus = "Rejected"
	StatusWithdrawn    ApplicationStatus = "Withdrawn"
)

// ApplicationStatuses lists every recognized status, in lifecycle order.
// Analytics pre-seeds buckets from this list so response shapes stay stable.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied, StatusViewed, StatusShortlisted, StatusInterviewing,
	StatusOffered, StatusRejected, StatusWithdrawn,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ProfileSnapshot is a point-in-time copy of candidate data captured when the
// application is submitted. It is intentionally never re-synced with the
// live profile.
type ProfileSnapshot struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Skills    []string `json:"skills"`
	Headline  string   `json:"headline"`
	ResumeURL string   `json:"resumeUrl"`
}

// ApplicationNote is an employer-authored audit entry.
type ApplicationNote struct {
	ByUser int64     `json:"byUser"`
	Note   string    `json:"note"`
	Date   time.Time `json:"date"`
}

// Application binds one job to one candidate. EmployerID is denormalized from
// the job so authorization needs no join. (jobId, candidateId) is unique for
// all time: withdrawal flips status, it does not free the slot.
type Application struct {
	ID                     int64             `json:"id"`
	JobID                  int64             `json:"jobId"`
	CandidateID            int64             `json:"candidateId"`
	EmployerID             int64             `json:"employerId"`
	Status                 ApplicationStatus `json:"status"`
	ApplicationDate        time.Time         `json:"applicationDate"`
	CoverLetter            string            `json:"coverLetter,omitempty"`
	ProfileSnapshot        ProfileSnapshot   `json:"profileSnapshot"`
	Notes                  []ApplicationNote `json:"notes"`
	AssignmentSubmissionID *int64            `json:"assignmentSubmission,omitempty"`
	UpdatedAt              time.Time         `json:"updatedAt"`

	// Joined identities for list/detail responses
	JobTitle       *string `json:"jobTitle,omitempty"`
	JobCompanyName *string `json:"jobCompanyName,omitempty"`
	JobLocation    *string `json:"jobLocation,omitempty"`
	CandidateName  *string `json:"candidateName,omitempty"`
	CandidateEmail *string `json:"candidateEmail,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application and increments the job's
	// applications_count in the same transaction.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Exists(ctx context.Context, jobID, candidateID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus, note *ApplicationNote) error
	// Withdraw sets status to Withdrawn and decrements the job's
	// applications_count (floored at zero) in the same transaction.
	Withdraw(ctx context.Context, id, jobID int64) error
}

type ApplicationUsecase interface {
	ApplyForJob(ctx context.Context, candidateID int64, jobID int64, coverLetter string) (*Application, error)
	GetApplicationsForJob(ctx context.Context, employerID, jobID int64) ([]Application, error)
	GetApplicationsByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	GetApplicationDetails(ctx context.Context, userID, applicationID int64) (*Application, error)
	UpdateApplicationStatus(ctx context.Context, employerID, applicationID int64, status string, note string) (*Application, error)
	WithdrawApplication(ctx context.Context, candidateID, applicationID int64) (*Application, error)
}
