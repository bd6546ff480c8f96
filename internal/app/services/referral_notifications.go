package services

import (
	"fmt"
	"html"

	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/pkg/notify"
)

// DecisionNotification builds the email telling a seeker their referral was decided
func DecisionNotification(r *models.Referral) (notify.Notification, error) {
	if r.Job == nil || r.Seeker == nil || r.Seeker.Email == "" {
		return notify.Notification{}, errIncompleteReferral
	}

	title := html.EscapeString(r.Job.Title)

	var body string
	switch r.Status {
	case models.ReferralAccepted:
		body = fmt.Sprintf("<p>Congrats! Your referral request for <strong>%s</strong> has been <strong>ACCEPTED</strong> by an employee. They will be in touch shortly.</p>", title)
	case models.ReferralRejected:
		body = fmt.Sprintf("<p>Update: Your referral request for <strong>%s</strong> was not accepted at this time.</p>", title)
	default:
		return notify.Notification{}, fmt.Errorf("no notification for status %q", r.Status)
	}

	return notify.Notification{
		To:      r.Seeker.Email,
		Subject: fmt.Sprintf("Update on your referral for %s", r.Job.Title),
		Body:    body,
	}, nil
}
