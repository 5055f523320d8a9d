package jobfeed

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
)

// ErrNotConfigured is returned when a provider is missing its credentials.
var ErrNotConfigured = errors.New("jobfeed: provider not configured")

// Provider is a third-party job listing source.
type Provider interface {
	Name() string
	IsConfigured() bool
	Search(ctx context.Context, q domain.ExternalSearchQuery) ([]domain.ExternalJob, error)
}
