package dto

import "github.com/hirehunt/hirehunt/internal/app/models"

// SeekerDashboard is the data behind the seeker landing page
type SeekerDashboard struct {
	User         *models.User          `json:"user"`
	Referrals    []*models.Referral    `json:"referrals"`
	Jobs         []*models.Job         `json:"jobs"`
	WalkInDrives []*models.WalkInDrive `json:"walkInDrives"`
}

// ReferralCounts tallies referrals per status
type ReferralCounts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// EmployeeDashboard is the data behind the employee landing page
type EmployeeDashboard struct {
	User             *models.User       `json:"user"`
	PendingReferrals []*models.Referral `json:"pendingReferrals"`
	Counts           ReferralCounts     `json:"counts"`
	PostedJobs       []*models.Job      `json:"postedJobs"`
}

// AdminDashboard is the data behind the admin landing page
type AdminDashboard struct {
	Users            []AdminUserResponse `json:"users"`
	PendingApprovals int                 `json:"pendingApprovals"`
	Flagged          int                 `json:"flagged"`
}

// LeaderboardEntry ranks an employee by accepted referrals on their postings
type LeaderboardEntry struct {
	Rank          int                 `json:"rank"`
	Employee      *models.UserSummary `json:"employee"`
	AcceptedCount int                 `json:"acceptedCount"`
}
