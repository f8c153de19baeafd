package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the correlation id in and out of the API
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// RequestID reuses the caller's X-Request-ID or generates a new one,
// and stores it on the context and the response header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID, or an empty string
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger stores a request scoped logrus entry on the context and writes
// one access log line per request once the handler chain has finished
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		entry := logger.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       path,
		})
		c.Set(loggerKey, entry)

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		line := entry.WithFields(fields)
		switch {
		case status >= 500:
			line.Error("API request failed")
		case status >= 400:
			line.Warn("API request rejected")
		default:
			line.Info("API request")
		}
	}
}

// GetLogger returns the entry stored by RequestLogger, falling back to the standard logger
func GetLogger(c *gin.Context) *logrus.Entry {
	if value, ok := c.Get(loggerKey); ok {
		if entry, ok := value.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
