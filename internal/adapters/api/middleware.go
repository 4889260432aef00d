package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weatherdash.app/internal/ports"
)

const (
	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID reuses the caller's X-Request-ID or assigns a new UUID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("duration", time.Since(start)),
			ports.F("request_id", c.GetString(requestIDKey)))
	}
}
