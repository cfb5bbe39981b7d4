// Package middleware contains the gin middlewares shared by the HTTP API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"

	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with a UUID. A valid UUID sent by the client
// in X-Request-ID is kept, anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the id stored by RequestID, or "" outside of it
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
