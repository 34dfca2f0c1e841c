package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID tags every request with an id echoed in X-Request-ID.
// A client id is honoured only when it is a UUID; it is returned in canonical form.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := normalizeRequestID(c.GetHeader(RequestIDHeader))

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func normalizeRequestID(header string) string {
	if parsed, err := uuid.Parse(header); err == nil {
		return parsed.String()
	}
	return uuid.NewString()
}

// GetRequestID returns the id set by RequestID, or "" outside that middleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
