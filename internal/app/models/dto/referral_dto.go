package dto

import "github.com/hirehunt/hirehunt/internal/app/models"

// CreateReferralRequest is the body of POST /api/referrals. Seeker fields are
// ignored when the caller is authenticated.
type CreateReferralRequest struct {
	JobID       int64  `json:"jobId" binding:"required,min=1" example:"1"`
	Note        string `json:"note" example:"3 years of React and TypeScript"`
	SeekerEmail string `json:"seekerEmail" binding:"omitempty,email,max=255" example:"seeker@test.com"`
	SeekerName  string `json:"seekerName" binding:"max=255" example:"Asha Rao"`
}

// UpdateReferralStatusRequest is the body of PATCH /api/referrals/{id}
type UpdateReferralStatusRequest struct {
	Status models.ReferralStatus `json:"status" binding:"required" example:"Accepted"`
}

// ReferralListQuery carries the optional filters of GET /api/referrals
type ReferralListQuery struct {
	Status   string `form:"status"`
	SeekerID int64  `form:"seekerId"`
	JobID    int64  `form:"jobId"`
}
