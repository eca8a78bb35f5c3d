package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-cost-api/backend/internal/service"
)

// APIKeyHeader is the request header carrying the shared secret
const APIKeyHeader = "x-api-key"

// APIKeyAuth rejects requests whose x-api-key header does not match apiKey.
// The rejection is reported through ErrorHandler as a 401.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)
	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)
		if provided == "" || len(expected) == 0 ||
			subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			_ = c.Error(service.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}
