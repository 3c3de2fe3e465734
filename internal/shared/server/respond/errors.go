package respond

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for all error replies.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Error logs and sends a `{message}` error response, aborting the request.
func Error(c *gin.Context, status int, message string) {
	fields := telemetry.Fields{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
