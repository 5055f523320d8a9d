package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The stubs cover only the routes the surface tests actually invoke;
// everything else stops at binding or the auth middleware.
type stubJobUC struct{ domain.JobUsecase }

func (stubJobUC) GetJobsBySkills(ctx context.Context, skills []string) ([]domain.Job, error) {
	return nil, nil
}

type stubProfileUC struct{ domain.ProfileUsecase }

func (stubProfileUC) GetProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return &domain.Profile{CandidateID: userID, IsVisible: true}, nil
}

type stubUserRepo struct{ domain.UserRepository }

func (stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Role: domain.RoleCandidate}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		JobUC:     stubJobUC{},
		ProfileUC: stubProfileUC{},
		UserRepo:  stubUserRepo{},
		Tokens:    auth.NewTokenManager("test-secret", time.Hour),
		Config:    &config.Config{FrontendURL: "http://localhost:5173"},
	})
}

// Every path in the public surface must resolve to a handler. A 404 here
// means the route table regressed; anything else (400 for an empty body,
// 401 for a missing token) proves the route exists.
func TestRouteSurface(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodPut, "/api/auth/update-password"},
		{http.MethodGet, "/api/jobs/employer"},
		{http.MethodGet, "/api/jobs/skills"},
		{http.MethodPost, "/api/applications/job/5"},
		{http.MethodGet, "/api/applications/job/5"},
		{http.MethodGet, "/api/applications/candidate/me"},
		{http.MethodGet, "/api/applications/5"},
		{http.MethodPut, "/api/applications/5/status"},
		{http.MethodDelete, "/api/applications/5/withdraw"},
		{http.MethodGet, "/api/analytics/employer/jobs"},
		{http.MethodGet, "/api/analytics/employer/applications"},
		{http.MethodGet, "/api/analytics/platform"},
		{http.MethodGet, "/api/profiles/user/5"},
		{http.MethodGet, "/api/external-jobs/search"},
		{http.MethodGet, "/api/external-jobs/providers/status"},
		{http.MethodPost, "/api/external-jobs/sync"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		r.ServeHTTP(w, req)
		assert.NotEqual(t, http.StatusNotFound, w.Code, "%s %s should be routed", tc.method, tc.path)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/auth/me", "/api/applications/candidate/me", "/api/profiles/user/5"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "GET %s without a token", path)
	}
}

// Viewing another user's profile needs a token but no particular role.
func TestProfileByUserIDAllowsAnyAuthenticatedRole(t *testing.T) {
	r := newTestRouter(t)

	token, err := auth.NewTokenManager("test-secret", time.Hour).Issue(7)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profiles/user/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}
