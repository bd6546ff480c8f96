package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/middleware"
)

// UserController handles profile and moderation endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetUserByID returns the public profile of a user
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.BadRequest(ctx, "Invalid user ID")
		return
	}

	user, err := c.userService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user.Summary()))
}

// UpdateProfile patches the caller's own profile
// @Summary Update profile
// @Description Updates name, skills, college and hometown. Without a token the body email identifies the user.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.User} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Missing identity"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/user/profile [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), caller(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// ListUsers returns every account for moderation
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminUserResponse} "Users retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewAdminUserResponse(u))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ModerateUser sets the status and/or risk score of an account
// @Summary Moderate user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminUpdateUserRequest true "Moderation fields"
// @Success 200 {object} dto.APIResponse{data=dto.AdminUserResponse} "User updated"
// @Failure 400 {object} dto.ErrorResponse "Missing userId or invalid values"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/admin/users [patch]
func (c *UserController) ModerateUser(ctx *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.ModerateUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAdminUserResponse(user)))
}
