package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LogNotifier writes notifications to the operational log after a simulated
// provider delay. It stands in for a real mail provider in development.
type LogNotifier struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(delay time.Duration, logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		delay:  delay,
		logger: logger.With().Str("notifier", "log").Logger(),
	}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) error {
	l.logger.Debug().Str("to", n.To).Msg("Attempting to send email")

	if l.delay > 0 {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	l.logger.Info().
		Str("to", n.To).
		Str("subject", n.Subject).
		Str("body", n.Body).
		Msg("Email sent")
	return nil
}
