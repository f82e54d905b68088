package middleware

import (
	"log/slog"
	"net/http"

	"venue-boxoffice/internal/handler/httperr"
	"venue-boxoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 8

// ErrorHandler writes the last public error when a handler left the body empty,
// and logs server-side failures with a short stack.
func (l *Logger) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			l.logger.ErrorContext(c.Request.Context(), "Request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("code", string(resp.Error.Code)),
				slog.String("error", ginErr.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(ginErr.Err, stackLinesLogged)),
			)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
		}
	}
}

// Recovery must be installed first so it also covers the other middleware.
func (l *Logger) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.logger.ErrorContext(c.Request.Context(), "Recovered from panic",
					slog.Any("panic", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
				)
				resp := httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
