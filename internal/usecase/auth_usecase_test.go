package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens())

		repo.On("GetByEmail", ctx, "taken@example.com").
			Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

		_, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Jane", Email: "taken@example.com", Password: "secret1", Role: domain.RoleCandidate,
		})
		assert.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("requires company name for employers", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens())

		_, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Acme HR", Email: "hr@acme.com", Password: "secret1", Role: domain.RoleEmployer,
		})
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})

	t.Run("stores a bcrypt hash and lowercased email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens())

		repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "jane@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 42
		}).Return(nil)

		result, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Jane", Email: "Jane@Example.com", Password: "secret1", Role: domain.RoleCandidate,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(42), result.User.ID)
		assert.Empty(t, result.User.PasswordHash)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), 10)
	stored := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: string(hash), Role: domain.RoleCandidate}

	t.Run("unknown email and wrong password answer identically", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens())

		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		repo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)

		_, errUnknown := uc.Login(ctx, "ghost@example.com", "whatever")
		_, errWrong := uc.Login(ctx, "jane@example.com", "wrong-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrong)
		assert.Equal(t, errUnknown.(*apperror.AppError).Code, errWrong.(*apperror.AppError).Code)
		assert.Equal(t, errUnknown.(*apperror.AppError).Message, errWrong.(*apperror.AppError).Message)
	})

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		repo := new(MockUserRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(repo, tokens)

		repo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)

		result, err := uc.Login(ctx, "jane@example.com", "correct-horse")
		assert.NoError(t, err)

		id, err := tokens.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("old-pass"), 10)
	stored := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: string(hash)}

	t.Run("rejects wrong current password", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens())

		repo.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7, Email: "jane@example.com"}, nil)
		repo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)

		err := uc.UpdatePassword(ctx, 7, "not-it", "new-pass")
		assert.Error(t, err)
		assert.Equal(t, 401, err.(*apperror.AppError).Code)
		repo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("rehashes on success", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens())

		repo.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7, Email: "jane@example.com"}, nil)
		repo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)
		repo.On("UpdatePassword", ctx, int64(7), mock.MatchedBy(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("new-pass")) == nil
		})).Return(nil)

		err := uc.UpdatePassword(ctx, 7, "old-pass", "new-pass")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
