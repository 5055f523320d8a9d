package usecase_test

import (
	"context"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func boolPtr(v bool) *bool { return &v }

func TestCreateOrUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("first write creates with visibility on", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo)

		repo.On("GetByCandidateID", ctx, int64(7)).Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.CandidateID == 7 && p.IsVisible && p.Headline == "Backend dev"
		})).Return(nil)

		headline := "Backend dev"
		profile, created, err := uc.CreateOrUpdateProfile(ctx, 7, domain.ProfilePatch{Headline: &headline})
		assert.NoError(t, err)
		assert.True(t, created)
		assert.True(t, profile.IsVisible)
	})

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo)

		existing := &domain.Profile{
			CandidateID: 7, Headline: "Backend dev", Summary: "Ten years of Go",
			Skills: []string{"go"}, IsVisible: true,
		}
		repo.On("GetByCandidateID", ctx, int64(7)).Return(existing, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.Summary == "Ten years of Go" && !p.IsVisible
		})).Return(nil)

		profile, created, err := uc.CreateOrUpdateProfile(ctx, 7, domain.ProfilePatch{IsVisible: boolPtr(false)})
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Ten years of Go", profile.Summary)
	})

	t.Run("skills are lowercased and trimmed", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo)

		repo.On("GetByCandidateID", ctx, int64(7)).Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			return len(p.Skills) == 2 && p.Skills[0] == "go" && p.Skills[1] == "postgresql"
		})).Return(nil)

		_, _, err := uc.CreateOrUpdateProfile(ctx, 7, domain.ProfilePatch{
			Skills: []string{" Go ", "PostgreSQL", "  "},
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetProfileByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("hidden and absent profiles both answer 404", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo)

		repo.On("GetVisibleByCandidateID", ctx, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfileByUserID(ctx, 7)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
	})
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting a missing profile is a 404", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo)

		repo.On("Delete", ctx, int64(7)).Return(domain.ErrNotFound)

		err := uc.DeleteProfile(ctx, 7)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
	})
}
