package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/firstoffice/officebooking/internal/metrics"
	"github.com/gin-gonic/gin"
)

const headerAPIKey = "X-Api-Key"

// APIKeyAuth guards the admin routes with a shared key. Admin identity and
// sessions live outside this service.
func APIKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(headerAPIKey)
		if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Next()
	}
}

// CountRequests records per-endpoint request totals.
func CountRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncHTTP(c.FullPath())
		c.Next()
	}
}
