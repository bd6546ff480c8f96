package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/middleware"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
)

// DashboardController serves the data behind the per-role pages. Routes are
// mounted behind the page guard.
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (c *DashboardController) identity(ctx *gin.Context) (appauth.Identity, bool) {
	id, ok := appauth.FromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
	}
	return id, ok
}

// Seeker returns the seeker landing page data
// @Summary Seeker dashboard
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SeekerDashboard}
// @Failure 401 {object} dto.ErrorResponse "Redirect to login"
// @Router /seeker [get]
func (c *DashboardController) Seeker(ctx *gin.Context) {
	id, ok := c.identity(ctx)
	if !ok {
		return
	}
	dash, err := c.dashboardService.Seeker(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dash))
}

// SeekerApplications returns the caller's referrals
// @Summary Seeker applications
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Referral}
// @Router /seeker/applications [get]
func (c *DashboardController) SeekerApplications(ctx *gin.Context) {
	id, ok := c.identity(ctx)
	if !ok {
		return
	}
	referrals, err := c.dashboardService.SeekerApplications(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(referrals))
}

// Employee returns the employee landing page data
// @Summary Employee dashboard
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeDashboard}
// @Router /employee [get]
func (c *DashboardController) Employee(ctx *gin.Context) {
	id, ok := c.identity(ctx)
	if !ok {
		return
	}
	dash, err := c.dashboardService.Employee(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dash))
}

// Leaderboard ranks employees by accepted referrals
// @Summary Employee leaderboard
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LeaderboardEntry}
// @Router /employee/leaderboard [get]
func (c *DashboardController) Leaderboard(ctx *gin.Context) {
	entries, err := c.dashboardService.Leaderboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// Admin returns the moderation overview
// @Summary Admin dashboard
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboard}
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /admin [get]
func (c *DashboardController) Admin(ctx *gin.Context) {
	id, ok := c.identity(ctx)
	if !ok {
		return
	}
	dash, err := c.dashboardService.Admin(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dash))
}

// Profile returns the caller's own record
// @Summary Own profile
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Router /profile [get]
func (c *DashboardController) Profile(ctx *gin.Context) {
	id, ok := c.identity(ctx)
	if !ok {
		return
	}
	user, err := c.dashboardService.Profile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}
