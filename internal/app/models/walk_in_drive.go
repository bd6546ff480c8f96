package models

import "time"

// WalkInDrive is an on-site hiring event announcement
type WalkInDrive struct {
	ID            int64     `json:"id" db:"id"`
	Company       string    `json:"company" db:"company" example:"Infosys"`
	Location      string    `json:"location" db:"location" example:"Pune, Hinjewadi Phase 1"`
	Timing        string    `json:"timing" db:"timing" example:"10 AM - 4 PM, 12 Nov"`
	Qualification string    `json:"qualification" db:"qualification" example:"B.E/B.Tech 2023-24"`
	PostedByID    int64     `json:"postedById" db:"posted_by_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	PostedBy *UserSummary `json:"postedBy,omitempty"`
}
