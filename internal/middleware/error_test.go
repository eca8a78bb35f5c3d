package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-cost-api/backend/internal/service"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation",
			err:    service.NewValidationError("servings is required", "ingredients is required"),
			status: http.StatusBadRequest,
			body:   `{"error":["servings is required","ingredients is required"]}`,
		},
		{
			name:   "not found",
			err:    fmt.Errorf("%w: Pho", service.ErrNotFound),
			status: http.StatusNotFound,
			body:   `{"error":"recipe not found: Pho"}`,
		},
		{
			name:   "conflict",
			err:    fmt.Errorf("%w: Pho", service.ErrConflict),
			status: http.StatusConflict,
			body:   `{"error":"recipe already exists: Pho"}`,
		},
		{
			name:   "unauthorized",
			err:    service.ErrUnauthorized,
			status: http.StatusUnauthorized,
			body:   `{"error":"invalid or missing API key"}`,
		},
		{
			name:   "unknown error is hidden",
			err:    errors.New("connection reset by peer"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler(testLog))
			router.GET("/", func(c *gin.Context) { _ = c.Error(tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(testLog))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(testLog))
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
		_ = c.Error(errors.New("late failure"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"status":"queued"}`, w.Body.String())
}
