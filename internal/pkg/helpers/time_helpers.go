// Package helpers holds small parsing utilities shared by the wiring code.
package helpers

import (
	"strings"
	"time"

	"github.com/hirehunt/hirehunt/internal/pkg/logger"
)

// ParseDuration parses a configured duration, falling back to def when the
// value is blank or malformed. Malformed values are logged.
func ParseDuration(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Failed to parse duration, using default")
		return def
	}
	return d
}
