package middleware

import (
	"errors"
	"net/http"

	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/response"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"
	"github.com/daryllundy/resume-builder-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients; log them
				// server-side and send a generic message.
				logger.Log.Error("internal server error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
