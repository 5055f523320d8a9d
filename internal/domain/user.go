package domain

import (
	"context"
	"fmt"
	"time"
)

// Role is the closed set of account roles. Parsing is the only way to obtain
// a Role from external input, so an unrecognized string can never slip past
// a role gate.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCandidate:
		return RoleCandidate, nil
	case RoleEmployer:
		return RoleEmployer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CompanyName  string    `json:"companyName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByEmail includes the password hash for credential checks.
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// AuthResult is what register and login hand back: a signed token plus the
// public view of the user.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        Role
	CompanyName string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}
