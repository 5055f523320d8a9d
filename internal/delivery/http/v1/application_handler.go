package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected, candidate, employer *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidateApps := candidate.Group("/applications")
	{
		candidateApps.POST("/job/:jobId", handler.Apply)
		candidateApps.GET("/candidate/me", handler.MyApplications)
		candidateApps.DELETE("/:id/withdraw", handler.Withdraw)
	}

	employerApps := employer.Group("/applications")
	{
		employerApps.GET("/job/:jobId", handler.ForJob)
		employerApps.PUT("/:id/status", handler.UpdateStatus)
	}

	// Details are readable by either party; the usecase checks which.
	protected.GET("/applications/:id", handler.Details)
}

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter" binding:"omitempty,max=5000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"omitempty,max=1000"`
}

// Apply godoc
// @Summary      Apply for a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        jobId        path  int           true   "Job ID"
// @Param        application  body  ApplyRequest  false  "Optional cover letter"
// @Success      201  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/job/{jobId} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	var req ApplyRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.ApplyForJob(c.Request.Context(), currentUserID(c), jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, app)
}

// MyApplications godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Application
// @Router       /applications/candidate/me [get]
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.applicationUC.GetApplicationsByCandidate(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	response.JSON(c, http.StatusOK, apps)
}

// ForJob godoc
// @Summary      List applications for an owned job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path  int  true  "Job ID"
// @Success      200  {array}   domain.Application
// @Failure      403  {object}  response.ErrorBody
// @Router       /applications/job/{jobId} [get]
func (h *ApplicationHandler) ForJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	apps, err := h.applicationUC.GetApplicationsForJob(c.Request.Context(), currentUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	response.JSON(c, http.StatusOK, apps)
}

// Details godoc
// @Summary      Application details
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	app, err := h.applicationUC.GetApplicationDetails(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, app)
}

// UpdateStatus godoc
// @Summary      Move an application to a new status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int                  true  "Application ID"
// @Param        status  body  UpdateStatusRequest  true  "New status and optional note"
// @Success      200  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), currentUserID(c), id, req.Status, req.Note)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /applications/{id}/withdraw [delete]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	app, err := h.applicationUC.WithdrawApplication(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, app)
}
