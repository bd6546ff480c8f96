package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	Email     string     `json:"email" db:"email" example:"seeker@test.com"`
	Name      string     `json:"name" db:"name" example:"Asha Rao"`
	Password  *string    `json:"-" db:"password"` // nil for users created on demand
	Role      Role       `json:"role" db:"role" example:"seeker"`
	Status    UserStatus `json:"status" db:"status" example:"Pending"`
	RiskScore RiskScore  `json:"riskScore" db:"risk_score" example:"Low"`
	Skills    *string    `json:"skills,omitempty" db:"skills" example:"react, typescript, node"`
	College   *string    `json:"college,omitempty" db:"college"`
	Hometown  *string    `json:"hometown,omitempty" db:"hometown"`
	ResumeURL *string    `json:"resumeUrl,omitempty" db:"resume_url"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

// HasPassword reports whether the user can authenticate with a password
func (u *User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}

// SkillsText returns the skills free text, empty when unset
func (u *User) SkillsText() string {
	if u == nil || u.Skills == nil {
		return ""
	}
	return *u.Skills
}

// UserSummary is the public subset of a user embedded in other resources
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

// Summary returns the embeddable view of the user
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// EmployeeRank is one row of the accepted-referrals leaderboard
type EmployeeRank struct {
	Employee      *UserSummary `json:"employee"`
	AcceptedCount int          `json:"acceptedCount"`
}
