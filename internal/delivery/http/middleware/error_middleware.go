package middleware

import (
	"errors"
	"net/http"

	"github.com/Larissacdias1/scib-candidates-platform/internal/delivery/http/response"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/apperror"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients. Log the real
		// error server-side and send a generic message.
		logger.Log.Error("unhandled request error",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
