package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/middleware"
)

// WalkInDriveController handles walk-in drive announcements
type WalkInDriveController struct {
	driveService services.WalkInDriveService
}

// NewWalkInDriveController creates a new WalkInDriveController
func NewWalkInDriveController(driveService services.WalkInDriveService) *WalkInDriveController {
	return &WalkInDriveController{
		driveService: driveService,
	}
}

// ListDrives returns every drive with its poster
// @Summary List walk-in drives
// @Tags walk-in-drives
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.WalkInDrive} "Drives retrieved"
// @Router /api/walk-in-drives [get]
func (c *WalkInDriveController) ListDrives(ctx *gin.Context) {
	drives, err := c.driveService.ListDrives(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drives))
}

// CreateDrive announces a drive posted by the caller
// @Summary Create walk-in drive
// @Tags walk-in-drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWalkInDriveRequest true "Drive details"
// @Success 200 {object} dto.APIResponse{data=models.WalkInDrive} "Drive created"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Poster not found"
// @Router /api/walk-in-drives [post]
func (c *WalkInDriveController) CreateDrive(ctx *gin.Context) {
	var req dto.CreateWalkInDriveRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	drive, err := c.driveService.CreateDrive(ctx.Request.Context(), caller(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drive))
}
