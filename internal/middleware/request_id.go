package middleware

import (
	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// maxRequestIDLength caps inbound ids echoed back to clients
const maxRequestIDLength = 128

// RequestID reuses the inbound X-Request-ID or mints a new one, echoes it
// on the response and stores it for backend calls
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(api.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Request = c.Request.WithContext(api.WithRequestID(c.Request.Context(), id))
		c.Header(api.RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID retrieves the request id from context
func GetRequestID(c *gin.Context) (string, bool) {
	id, exists := c.Get(requestIDKey)
	if !exists {
		return "", false
	}
	return id.(string), true
}
