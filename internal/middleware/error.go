package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-cost-api/backend/internal/service"
)

// ErrorResponse represents an error response. Error is a string, or a list
// of field messages for validation failures.
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// ErrorHandler turns the last error pushed with c.Error into a JSON response
// and recovers panics as 500s
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", "panic", rec, "method", c.Request.Method, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := StatusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		}
		c.JSON(status, body)
	}
}

// StatusFor maps an error kind to its HTTP status and response body
func StatusFor(err error) (int, ErrorResponse) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponse{Error: ve.Messages}
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: err.Error()}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error()}
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}
