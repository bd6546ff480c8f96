package models

import "time"

// Referral is a seeker's request to be referred for a job
type Referral struct {
	ID        int64          `json:"id" db:"id" example:"1"`
	JobID     int64          `json:"jobId" db:"job_id" example:"1"`
	SeekerID  int64          `json:"seekerId" db:"seeker_id" example:"2"`
	Note      string         `json:"note" db:"note"`
	Status    ReferralStatus `json:"status" db:"status" example:"Pending"`
	Score     int            `json:"score" db:"score" example:"72"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`

	// Related entities
	Job    *Job         `json:"job,omitempty"`
	Seeker *UserSummary `json:"seeker,omitempty"`
}

// ReferralFilter narrows referral listings; zero values are ignored
type ReferralFilter struct {
	Status     ReferralStatus
	SeekerID   int64
	JobID      int64
	PostedByID int64
}
