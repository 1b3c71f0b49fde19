package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RequestLogger returns the request-scoped logger stored under "logger", or
// the global logger tagged with the request path and id.
func RequestLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return GetLogger().With(
		zap.String("requestID", c.Writer.Header().Get("X-Request-ID")),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
}

// ErrorHandler recovers handler panics and answers 500 with an ErrorResponse.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				RequestLogger(c).Error("Unhandled panic", zap.Any("error", err), zap.Stack("stack"))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError writes an ErrorResponse and logs it at warn level for 4xx and
// error level for 5xx.
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := RequestLogger(c)
	fields := []zap.Field{zap.Int("status", status), zap.String("details", details)}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
