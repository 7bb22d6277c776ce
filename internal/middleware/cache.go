package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheControl marks responses as publicly cacheable for maxAgeSeconds.
// Used on the analytics routes, whose payloads only change when the
// server-side aggregate cache is re-warmed anyway.
func CacheControl(maxAgeSeconds int) gin.HandlerFunc {
	header := fmt.Sprintf("public, max-age=%d", maxAgeSeconds)
	return func(c *gin.Context) {
		c.Header("Cache-Control", header)
		c.Next()
	}
}
