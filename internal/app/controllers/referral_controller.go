package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/middleware"
)

// ReferralController handles referral requests and decisions
type ReferralController struct {
	referralService services.ReferralService
}

// NewReferralController creates a new ReferralController
func NewReferralController(referralService services.ReferralService) *ReferralController {
	return &ReferralController{
		referralService: referralService,
	}
}

// ListReferrals returns referrals with their job and seeker
// @Summary List referrals
// @Description Most recent first. Optional status, seekerId and jobId filters.
// @Tags referrals
// @Produce json
// @Param status query string false "Pending, Accepted or Rejected"
// @Param seekerId query int false "Seeker ID"
// @Param jobId query int false "Job ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Referral} "Referrals retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /api/referrals [get]
func (c *ReferralController) ListReferrals(ctx *gin.Context) {
	var query dto.ReferralListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	referrals, err := c.referralService.ListReferrals(ctx.Request.Context(), models.ReferralFilter{
		Status:   models.ReferralStatus(query.Status),
		SeekerID: query.SeekerID,
		JobID:    query.JobID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(referrals))
}

// CreateReferral requests a referral for a job
// @Summary Request referral
// @Description The authenticated caller is the seeker; anonymous callers name themselves with seekerEmail.
// @Description The job must exist: an unknown jobId is answered with 404 and no referral is stored.
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReferralRequest true "Referral request"
// @Success 200 {object} dto.APIResponse{data=models.Referral} "Referral created"
// @Failure 400 {object} dto.ErrorResponse "Missing jobId or seeker"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Referral already requested"
// @Router /api/referrals [post]
func (c *ReferralController) CreateReferral(ctx *gin.Context) {
	var req dto.CreateReferralRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	referral, err := c.referralService.CreateReferral(ctx.Request.Context(), caller(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(referral))
}

// UpdateStatus accepts or rejects a pending referral
// @Summary Decide referral
// @Description Moves a Pending referral to Accepted or Rejected and notifies the seeker
// @Tags referrals
// @Accept json
// @Produce json
// @Param id path int true "Referral ID"
// @Param request body dto.UpdateReferralStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Referral} "Referral updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid id or status"
// @Failure 404 {object} dto.ErrorResponse "Referral not found"
// @Failure 409 {object} dto.ErrorResponse "Referral already decided"
// @Router /api/referrals/{id} [patch]
func (c *ReferralController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.BadRequest(ctx, "Invalid referral ID")
		return
	}

	var req dto.UpdateReferralStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	referral, err := c.referralService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(referral))
}
