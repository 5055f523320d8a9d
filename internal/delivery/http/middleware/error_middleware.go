package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors pushed into the gin context onto the wire.
// Anything that is not an AppError is logged server-side and reported as a
// generic 500 so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				slog.Error("request failed",
					"path", c.Request.URL.Path,
					"requestId", c.GetString("RequestID"),
					"error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Errors)
			return
		}

		slog.Error("unhandled error",
			"path", c.Request.URL.Path,
			"requestId", c.GetString("RequestID"),
			"error", err)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}
