package services

import (
	"github.com/hirehunt/hirehunt/internal/pkg/notify"
)

// Live event types pushed to connected users
const (
	EventReferralCreated = "referral.created"
	EventReferralStatus  = "referral.status"
	EventMessageNew      = "message.new"
)

// EventPublisher pushes a live event to every connection of a user
type EventPublisher interface {
	Publish(userID int64, eventType string, payload interface{})
}

// NotificationSender queues a notification for background delivery
type NotificationSender interface {
	Dispatch(n notify.Notification) bool
}

// NopPublisher discards events
type NopPublisher struct{}

func (NopPublisher) Publish(int64, string, interface{}) {}

// Services groups every service for dependency injection
type Services struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	ReferralService    ReferralService
	MessageService     MessageService
	WalkInDriveService WalkInDriveService
	DashboardService   DashboardService
}
