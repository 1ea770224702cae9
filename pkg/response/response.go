package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const InvalidRequest = "Invalid request"

type APIError struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Errors    []string  `json:"errors,omitempty"`
}

// MessageForStatus returns the generic message shown for a status when no specific one applies.
func MessageForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return InvalidRequest
	case http.StatusUnauthorized:
		return "Access denied!"
	default:
		return http.StatusText(code)
	}
}

func SendError(c *gin.Context, code int, message string, errs []string) {
	if message == "" {
		message = MessageForStatus(code)
	}

	c.AbortWithStatusJSON(code, APIError{
		Message:   message,
		Status:    code,
		Timestamp: time.Now(),
		Errors:    errs,
	})
}

func SendJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}
