// Package notify delivers user-facing notifications off the request path.
package notify

import "context"

// Notification is a single outbound message to one recipient
type Notification struct {
	To      string
	Subject string
	// Body is HTML
	Body string
}

// Notifier delivers a notification through one provider
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}
