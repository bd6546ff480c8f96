package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hirehunt/hirehunt/internal/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"

	contextKeyRequestID = "requestID"
	contextKeyLogger    = "logger"
)

// RequestID assigns every request an id, reusing a valid incoming one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set(contextKeyRequestID, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// Logger logs each request with its outcome. The level follows the status:
// errors for 5xx, warnings for 4xx.
func Logger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := base.With().Str("request_id", c.GetString(contextKeyRequestID)).Logger()
		c.Set(contextKeyLogger, reqLogger)

		c.Next()

		status := c.Writer.Status()
		event := reqLogger.Info()
		msg := "Request completed"
		switch {
		case status >= 500:
			event = reqLogger.Error()
			msg = "Request failed with server error"
		case status >= 400:
			event = reqLogger.Warn()
			msg = "Request failed with client error"
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg(msg)
	}
}

// RequestLogger returns the request-scoped logger, falling back to the global one
func RequestLogger(c *gin.Context) *zerolog.Logger {
	if l, ok := c.Get(contextKeyLogger); ok {
		if lg, ok := l.(zerolog.Logger); ok {
			return &lg
		}
	}
	lg := logger.Get()
	return &lg
}
