package dto

import "github.com/hirehunt/hirehunt/internal/app/models"

// UpdateProfileRequest is the self-service profile patch. Email identifies the
// user when the request is not authenticated.
type UpdateProfileRequest struct {
	Email    string  `json:"email" binding:"omitempty,email,max=255"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Skills   *string `json:"skills" example:"react, typescript, node"`
	College  *string `json:"college" binding:"omitempty,max=255"`
	Hometown *string `json:"hometown" binding:"omitempty,max=255"`
}

// AdminUpdateUserRequest is the moderation patch applied by an admin
type AdminUpdateUserRequest struct {
	UserID    int64              `json:"userId" binding:"required,min=1"`
	Status    *models.UserStatus `json:"status" binding:"omitempty,oneof=Pending Approved Banned"`
	RiskScore *models.RiskScore  `json:"riskScore" binding:"omitempty,oneof=Low High"`
}

// AdminUserResponse is one row of the admin user table
type AdminUserResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name" binding:"omitempty,max=255"`
	Email     string            `json:"email"`
	Role      models.Role       `json:"role"`
	Status    models.UserStatus `json:"status"`
	RiskScore models.RiskScore  `json:"riskScore"`
	CreatedAt string            `json:"createdAt"`
}

// NewAdminUserResponse maps a user onto the admin listing shape
func NewAdminUserResponse(u *models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		RiskScore: u.RiskScore,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
