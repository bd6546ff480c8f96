package models

import "time"

const (
	DefaultValidityDays = 30
	MinValidityDays     = 1
	MaxValidityDays     = 90
)

// Job is a posting on the 'jobs' table
type Job struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Title        string    `json:"title" db:"title" example:"Backend Engineer"`
	Company      string    `json:"company" db:"company" example:"Microsoft"`
	Location     string    `json:"location" db:"location" example:"Hyderabad"`
	Salary       string    `json:"salary" db:"salary" example:"₹20-28 LPA"`
	Type         string    `json:"type" db:"type" example:"Full-time"`
	Description  string    `json:"description" db:"description"`
	ValidityDays int       `json:"validityDays" db:"validity_days" example:"30"`
	ExpiryDate   time.Time `json:"expiryDate" db:"expiry_date"`
	PostedByID   *int64    `json:"postedById,omitempty" db:"posted_by_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Derived at read time, never stored
	Expired bool `json:"expired"`

	PostedBy *UserSummary `json:"postedBy,omitempty"`
}

// MarkExpired sets the derived Expired flag relative to now
func (j *Job) MarkExpired(now time.Time) {
	j.Expired = now.After(j.ExpiryDate)
}

// MatchText is the text a referral is scored against: the description, or the
// title when no description was given.
func (j *Job) MatchText() string {
	if j.Description != "" {
		return j.Description
	}
	return j.Title
}
