package models

// Role defines the user role type
type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the moderation state of an account
type UserStatus string

const (
	UserStatusPending  UserStatus = "Pending"
	UserStatusApproved UserStatus = "Approved"
	UserStatusBanned   UserStatus = "Banned"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusBanned:
		return true
	}
	return false
}

// RiskScore is the admin-assigned risk flag of an account
type RiskScore string

const (
	RiskLow  RiskScore = "Low"
	RiskHigh RiskScore = "High"
)

func (r RiskScore) Valid() bool {
	return r == RiskLow || r == RiskHigh
}

// ReferralStatus is the lifecycle state of a referral request
type ReferralStatus string

const (
	ReferralPending  ReferralStatus = "Pending"
	ReferralAccepted ReferralStatus = "Accepted"
	ReferralRejected ReferralStatus = "Rejected"
)

// IsDecision reports whether s is a valid target of a Pending referral
func (s ReferralStatus) IsDecision() bool {
	return s == ReferralAccepted || s == ReferralRejected
}
