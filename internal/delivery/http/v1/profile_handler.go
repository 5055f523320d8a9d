package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected, candidate, employer *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	candidateProfile := candidate.Group("/profile")
	{
		candidateProfile.GET("/me", handler.Me)
		candidateProfile.POST("", handler.Upsert)
		candidateProfile.DELETE("", handler.Delete)
	}

	employer.GET("/profiles", handler.List)

	// Any authenticated user may view a visible profile; the usecase hides
	// invisible ones behind a 404.
	protected.GET("/profiles/user/:userId", handler.GetByUserID)
}

type UpsertProfileRequest struct {
	Headline   *string             `json:"headline" binding:"omitempty,max=150"`
	Summary    *string             `json:"summary" binding:"omitempty,max=2000"`
	Skills     FlexibleList        `json:"skills"`
	Experience []domain.Experience `json:"experience" binding:"omitempty,dive"`
	Education  []domain.Education  `json:"education" binding:"omitempty,dive"`
	ResumeURL  *string             `json:"resumeUrl" binding:"omitempty,url"`
	Contact    *domain.Contact     `json:"contact"`
	IsVisible  *bool               `json:"isVisible"`
}

type ProfileListResponse struct {
	Profiles []domain.Profile `json:"profiles"`
	response.Pagination
}

// Me godoc
// @Summary      Caller's own profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  response.ErrorBody
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// Upsert godoc
// @Summary      Create or update the caller's profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      UpsertProfileRequest  true  "Profile fields"
// @Success      200  {object}  domain.Profile
// @Success      201  {object}  domain.Profile
// @Router       /profile [post]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req UpsertProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.ProfilePatch{
		Headline:   req.Headline,
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		ResumeURL:  req.ResumeURL,
		Contact:    req.Contact,
		IsVisible:  req.IsVisible,
	}

	profile, created, err := h.profileUC.CreateOrUpdateProfile(c.Request.Context(), currentUserID(c), patch)
	if err != nil {
		c.Error(err)
		return
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	response.JSON(c, code, profile)
}

// Delete godoc
// @Summary      Delete the caller's profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  response.ErrorBody
// @Router       /profile [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profileUC.DeleteProfile(c.Request.Context(), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}

// List godoc
// @Summary      Browse visible candidate profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        keyword   query  string  false  "Keyword over headline and summary"
// @Param        skills    query  string  false  "Comma-separated skills, all required"
// @Param        page      query  int     false  "Page (1-based)"
// @Param        pageSize  query  int     false  "Page size"
// @Success      200  {object}  ProfileListResponse
// @Router       /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	filter := domain.ProfileFilter{
		Keyword: c.Query("keyword"),
		Skills:  csvQuery(c, "skills"),
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 10)

	profiles, total, err := h.profileUC.GetAllProfiles(c.Request.Context(), filter, page, pageSize, c.Query("sort"))
	if err != nil {
		c.Error(err)
		return
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	response.JSON(c, http.StatusOK, ProfileListResponse{
		Profiles:   profiles,
		Pagination: response.NewPagination(page, pageSize, total),
	})
}

// GetByUserID godoc
// @Summary      View one candidate's visible profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  int  true  "Candidate user ID"
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  response.ErrorBody
// @Router       /profiles/user/{userId} [get]
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	profile, err := h.profileUC.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}
