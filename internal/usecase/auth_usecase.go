package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if in.Role == domain.RoleEmployer && strings.TrimSpace(in.CompanyName) == "" {
		return nil, apperror.BadRequest("Company name is required for employers")
	}

	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.BadRequest("User already exists with this email")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
	}
	if in.Role == domain.RoleEmployer {
		user.CompanyName = in.CompanyName
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = ""
	return &domain.AuthResult{Token: token, User: user}, nil
}

// Login deliberately answers every credential failure the same way, so the
// response does not reveal whether the account exists.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = ""
	return &domain.AuthResult{Token: token, User: user}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	// GetByID omits the hash; fetch the credential row.
	withHash, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(withHash.PasswordHash), []byte(currentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
