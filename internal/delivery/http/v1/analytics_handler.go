package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAnalyticsHandler(employer *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	analytics := employer.Group("/analytics")
	{
		analytics.GET("/employer/jobs", handler.JobPostings)
		analytics.GET("/employer/applications", handler.ApplicationStatus)
		analytics.GET("/platform", handler.Platform)
	}
}

// JobPostings godoc
// @Summary      Per-posting stats for the caller's jobs
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.JobPostingsReport
// @Router       /analytics/employer/jobs [get]
func (h *AnalyticsHandler) JobPostings(c *gin.Context) {
	report, err := h.analyticsUC.JobPostingsAnalytics(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// ApplicationStatus godoc
// @Summary      Application counts per status for the caller's jobs
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ApplicationStatusReport
// @Router       /analytics/employer/applications [get]
func (h *AnalyticsHandler) ApplicationStatus(c *gin.Context) {
	report, err := h.analyticsUC.ApplicationStatusAnalytics(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// Platform godoc
// @Summary      Platform-wide totals and most-applied jobs
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PlatformReport
// @Router       /analytics/platform [get]
func (h *AnalyticsHandler) Platform(c *gin.Context) {
	report, err := h.analyticsUC.PlatformAnalytics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}
