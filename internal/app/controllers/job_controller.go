package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/middleware"
)

// JobController handles job posting endpoints
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// ListJobs returns every posting
// @Summary List jobs
// @Description All jobs, most recent first, each flagged when past its expiry date
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Job} "Jobs retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.jobService.ListJobs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs))
}

// CreateJob posts a job
// @Summary Create job
// @Description validityDays defaults to 30 and must be between 1 and 90
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job created"
// @Failure 400 {object} dto.ErrorResponse "Missing title or invalid validity"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), caller(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job))
}

// SearchJobs filters postings
// @Summary Search jobs
// @Description q matches title or company, location is a substring, type is exact. All case-insensitive.
// @Tags jobs
// @Produce json
// @Param q query string false "Title or company"
// @Param location query string false "Location"
// @Param type query string false "Job type"
// @Success 200 {object} dto.APIResponse{data=[]models.Job} "Matching jobs"
// @Router /api/jobs/search [get]
func (c *JobController) SearchJobs(ctx *gin.Context) {
	var query dto.JobSearchQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	jobs, err := c.jobService.SearchJobs(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs))
}

// GetJob returns one posting
// @Summary Get job by ID
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /api/jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.BadRequest(ctx, "Invalid job ID")
		return
	}

	job, err := c.jobService.GetJob(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job))
}
