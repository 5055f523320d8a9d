package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/skills", handler.BySkills)
		publicJobs.GET("/:id", handler.GetByID)
		publicJobs.PUT("/:id/view", handler.IncrementView)
	}

	employerJobs := protected.Group("/jobs")
	{
		employerJobs.POST("", handler.Create)
		employerJobs.GET("/employer", handler.MyJobs)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title               string       `json:"title" binding:"required,min=3,max=150"`
	Description         string       `json:"description" binding:"required,min=10"`
	Location            string       `json:"location" binding:"required"`
	Requirements        FlexibleList `json:"requirements"`
	Skills              FlexibleList `json:"skills"`
	SalaryMin           *float64     `json:"salaryMin" binding:"omitempty,gt=0"`
	SalaryMax           *float64     `json:"salaryMax" binding:"omitempty,gt=0"`
	JobType             string       `json:"jobType" binding:"required"`
	ApplicationDeadline *time.Time   `json:"applicationDeadline"`
}

type UpdateJobRequest struct {
	Title               *string      `json:"title" binding:"omitempty,min=3,max=150"`
	Description         *string      `json:"description" binding:"omitempty,min=10"`
	Location            *string      `json:"location"`
	Requirements        FlexibleList `json:"requirements"`
	Skills              FlexibleList `json:"skills"`
	SalaryMin           *float64     `json:"salaryMin" binding:"omitempty,gt=0"`
	SalaryMax           *float64     `json:"salaryMax" binding:"omitempty,gt=0"`
	JobType             *string      `json:"jobType"`
	ApplicationDeadline *time.Time   `json:"applicationDeadline"`
	IsActive            *bool        `json:"isActive"`
}

type JobListResponse struct {
	Jobs []domain.Job `json:"jobs"`
	response.Pagination
}

// Search godoc
// @Summary      Search active jobs
// @Tags         jobs
// @Produce      json
// @Param        keyword   query  string  false  "Keyword over title, company, description, location"
// @Param        location  query  string  false  "Location substring"
// @Param        jobType   query  string  false  "Exact job type"
// @Param        skills    query  string  false  "Comma-separated skills, all required"
// @Param        page      query  int     false  "Page (1-based)"
// @Param        pageSize  query  int     false  "Page size"
// @Param        sort      query  string  false  "Sort key, '-' prefix for descending"
// @Success      200  {object}  JobListResponse
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		Skills:   csvQuery(c, "skills"),
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 10)

	jobs, total, err := h.jobUC.GetJobs(c.Request.Context(), filter, page, pageSize, c.Query("sort"))
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	response.JSON(c, http.StatusOK, JobListResponse{
		Jobs:       jobs,
		Pagination: response.NewPagination(page, pageSize, total),
	})
}

// BySkills godoc
// @Summary      Find active jobs matching all given skills
// @Tags         jobs
// @Produce      json
// @Param        skills  query     string  true  "Comma-separated skills, all required"
// @Success      200  {array}   domain.Job
// @Router       /jobs/skills [get]
func (h *JobHandler) BySkills(c *gin.Context) {
	jobs, err := h.jobUC.GetJobsBySkills(c.Request.Context(), csvQuery(c, "skills"))
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	response.JSON(c, http.StatusOK, jobs)
}

// GetByID godoc
// @Summary      Job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetJobByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// IncrementView godoc
// @Summary      Record a job detail view
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id}/view [put]
func (h *JobHandler) IncrementView(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.jobUC.IncrementJobView(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"views": views})
}

// Create godoc
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      CreateJobRequest  true  "Job posting"
// @Success      201  {object}  domain.Job
// @Failure      403  {object}  response.ErrorBody
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := &domain.Job{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Requirements:        req.Requirements,
		Skills:              req.Skills,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		JobType:             req.JobType,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), currentUser(c), job); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, job)
}

// Update godoc
// @Summary      Update an owned job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  domain.Job
// @Failure      403  {object}  response.ErrorBody
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.JobPatch{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Requirements:        req.Requirements,
		Skills:              req.Skills,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		JobType:             req.JobType,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            req.IsActive,
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Delete godoc
// @Summary      Deactivate an owned job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Job deactivated successfully"})
}

// MyJobs godoc
// @Summary      List the caller's postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "all, active or inactive"
// @Param        page      query  int     false  "Page (1-based)"
// @Param        pageSize  query  int     false  "Page size"
// @Success      200  {object}  JobListResponse
// @Router       /jobs/employer [get]
func (h *JobHandler) MyJobs(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 10)
	filter := domain.EmployerJobFilter(c.DefaultQuery("status", "all"))

	jobs, total, err := h.jobUC.ListEmployerJobs(c.Request.Context(), currentUserID(c), filter, page, pageSize, c.Query("sort"))
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	response.JSON(c, http.StatusOK, JobListResponse{
		Jobs:       jobs,
		Pagination: response.NewPagination(page, pageSize, total),
	})
}
