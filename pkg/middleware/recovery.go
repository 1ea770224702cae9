package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"assetmgmt/pkg/response"
)

// Recoverer turns a panic into a 500 with the standard error body.
func Recoverer(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				logger.Error("panic recovered",
					slog.String("request_id", GetRequestID(c)),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)
				response.SendError(c, http.StatusInternalServerError, "", nil)
			}
		}()

		c.Next()
	}
}
