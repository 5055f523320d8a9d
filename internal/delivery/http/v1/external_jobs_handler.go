package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExternalJobsHandler struct {
	externalUC domain.ExternalJobsUsecase
}

func NewExternalJobsHandler(public *gin.RouterGroup, protected *gin.RouterGroup, employer *gin.RouterGroup, externalUC domain.ExternalJobsUsecase) {
	handler := &ExternalJobsHandler{externalUC: externalUC}

	public.GET("/external-jobs/trending", handler.Trending)

	protectedExt := protected.Group("/external-jobs")
	{
		protectedExt.GET("/search", handler.Search)
		protectedExt.GET("/providers/status", handler.Providers)
	}

	employer.POST("/external-jobs/sync", handler.Sync)
}

type ExternalSearchResponse struct {
	*domain.ExternalSearchResult
	Cached bool `json:"cached"`
}

// Search godoc
// @Summary      Search third-party job feeds
// @Tags         external-jobs
// @Produce      json
// @Security     BearerAuth
// @Param        query            query  string  true   "Search query"
// @Param        location         query  string  false  "Location"
// @Param        employment_types query  string  false  "Comma-separated employment types"
// @Param        page             query  int     false  "Page (1-based)"
// @Param        date_posted      query  string  false  "Provider date filter"
// @Param        remote_only      query  bool    false  "Remote listings only"
// @Success      200  {object}  ExternalSearchResponse
// @Failure      502  {object}  response.ErrorBody
// @Failure      503  {object}  response.ErrorBody
// @Router       /external-jobs/search [get]
func (h *ExternalJobsHandler) Search(c *gin.Context) {
	q := domain.ExternalSearchQuery{
		Query:           c.Query("query"),
		Location:        c.Query("location"),
		EmploymentTypes: c.Query("employment_types"),
		Page:            queryInt(c, "page", 1),
		DatePosted:      c.Query("date_posted"),
		RemoteOnly:      c.Query("remote_only") == "true",
	}

	result, cached, err := h.externalUC.Search(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, ExternalSearchResponse{ExternalSearchResult: result, Cached: cached})
}

// Trending godoc
// @Summary      Trending external listings
// @Tags         external-jobs
// @Produce      json
// @Param        limit  query  int  false  "Max listings (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Router       /external-jobs/trending [get]
func (h *ExternalJobsHandler) Trending(c *gin.Context) {
	jobs, cached, err := h.externalUC.Trending(c.Request.Context(), queryInt(c, "limit", 10))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"jobs": jobs, "cached": cached})
}

type SyncRequest struct {
	Query   string `json:"query" binding:"required"`
	MaxJobs int    `json:"maxJobs" binding:"omitempty,min=1,max=100"`
}

// Sync godoc
// @Summary      Import external listings into the local job board
// @Tags         external-jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sync  body  SyncRequest  true  "Import parameters"
// @Success      200  {object}  map[string]int
// @Failure      502  {object}  response.ErrorBody
// @Router       /external-jobs/sync [post]
func (h *ExternalJobsHandler) Sync(c *gin.Context) {
	var req SyncRequest
	if !bindJSON(c, &req) {
		return
	}

	synced, fetched, err := h.externalUC.Sync(c.Request.Context(), req.Query, req.MaxJobs)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"synced": synced, "fetched": fetched})
}

// Providers godoc
// @Summary      External provider health
// @Tags         external-jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ProvidersReport
// @Router       /external-jobs/providers/status [get]
func (h *ExternalJobsHandler) Providers(c *gin.Context) {
	report, err := h.externalUC.ProvidersStatus(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}
