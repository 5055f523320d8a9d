package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, candidateID int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found. Please create your profile.")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CreateOrUpdateProfile upserts the caller's profile. On update only the
// fields present in the patch are overwritten, so a partial payload never
// wipes the rest of the profile.
func (u *profileUsecase) CreateOrUpdateProfile(ctx context.Context, candidateID int64, patch domain.ProfilePatch) (*domain.Profile, bool, error) {
	profile, err := u.profileRepo.GetByCandidateID(ctx, candidateID)
	created := false
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, apperror.Internal(err)
		}
		created = true
		profile = &domain.Profile{
			CandidateID: candidateID,
			Skills:      []string{},
			Experience:  []domain.Experience{},
			Education:   []domain.Education{},
			IsVisible:   true,
		}
	}

	if patch.Headline != nil {
		profile.Headline = *patch.Headline
	}
	if patch.Summary != nil {
		profile.Summary = *patch.Summary
	}
	if patch.Skills != nil {
		profile.Skills = normalizeSkills(patch.Skills)
	}
	if patch.Experience != nil {
		profile.Experience = patch.Experience
	}
	if patch.Education != nil {
		profile.Education = patch.Education
	}
	if patch.ResumeURL != nil {
		profile.ResumeURL = *patch.ResumeURL
	}
	if patch.Contact != nil {
		profile.Contact = *patch.Contact
	}
	if patch.IsVisible != nil {
		profile.IsVisible = *patch.IsVisible
	}

	if created {
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			return nil, false, apperror.Internal(err)
		}
	} else {
		if err := u.profileRepo.Update(ctx, profile); err != nil {
			return nil, false, apperror.Internal(err)
		}
	}
	return profile, created, nil
}

func (u *profileUsecase) GetAllProfiles(ctx context.Context, filter domain.ProfileFilter, page, pageSize int, sort string) ([]domain.Profile, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	filter.Skills = normalizeSkills(filter.Skills)
	offset := (page - 1) * pageSize

	profiles, total, err := u.profileRepo.Search(ctx, filter, pageSize, offset, sort)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return profiles, total, nil
}

// GetProfileByUserID serves employer lookups and answers 404 for hidden and
// absent profiles alike.
func (u *profileUsecase) GetProfileByUserID(ctx context.Context, candidateID int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetVisibleByCandidateID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) DeleteProfile(ctx context.Context, candidateID int64) error {
	if err := u.profileRepo.Delete(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
