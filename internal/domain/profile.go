package domain

import (
	"context"
	"time"
)

type Experience struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty" validate:"max=1000"`
}

type Education struct {
	Institution  string     `json:"institution" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Grade        string     `json:"grade,omitempty"`
}

type Contact struct {
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// Profile is the candidate-owned resume record, exactly one per candidate.
type Profile struct {
	ID          int64        `json:"id"`
	CandidateID int64        `json:"candidateId"`
	Headline    string       `json:"headline" validate:"max=150"`
	Summary     string       `json:"summary" validate:"max=2000"`
	Skills      []string     `json:"skills"`
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
	ResumeURL   string       `json:"resumeUrl" validate:"omitempty,url"`
	Contact     Contact      `json:"contact"`
	IsVisible   bool         `json:"isVisible"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Joined candidate identity for list/detail responses
	CandidateName  *string `json:"candidateName,omitempty"`
	CandidateEmail *string `json:"candidateEmail,omitempty"`
}

// ProfilePatch carries an upsert payload: only non-nil fields are applied.
// On create, nil fields take their defaults (IsVisible defaults to true).
type ProfilePatch struct {
	Headline   *string
	Summary    *string
	Skills     []string
	Experience []Experience
	Education  []Education
	ResumeURL  *string
	Contact    *Contact
	IsVisible  *bool
}

// ProfileFilter mirrors job search: keyword plus all-of skills.
type ProfileFilter struct {
	Keyword string
	Skills  []string
}

type ProfileRepository interface {
	GetByCandidateID(ctx context.Context, candidateID int64) (*Profile, error)
	// GetVisibleByCandidateID returns ErrNotFound for hidden profiles as well
	// as absent ones.
	GetVisibleByCandidateID(ctx context.Context, candidateID int64) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	// Search lists visible profiles only.
	Search(ctx context.Context, filter ProfileFilter, limit, offset int, sort string) ([]Profile, int64, error)
	Delete(ctx context.Context, candidateID int64) error
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, candidateID int64) (*Profile, error)
	// CreateOrUpdateProfile upserts. The returned bool is true when a new
	// profile was created.
	CreateOrUpdateProfile(ctx context.Context, candidateID int64, patch ProfilePatch) (*Profile, bool, error)
	GetAllProfiles(ctx context.Context, filter ProfileFilter, page, pageSize int, sort string) ([]Profile, int64, error)
	GetProfileByUserID(ctx context.Context, candidateID int64) (*Profile, error)
	DeleteProfile(ctx context.Context, candidateID int64) error
}
