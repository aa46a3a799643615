package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HardPrice/test-task-secunda/internal/config"
)

// APIKeyMiddleware guards every API endpoint with a static key
// supplied in a configured header.
type APIKeyMiddleware struct {
	cfg config.AuthConfig
}

func NewAPIKeyMiddleware(cfg config.AuthConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// RequireAPIKey rejects requests whose key header is missing or does
// not match the configured key.
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(m.cfg.APIKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.APIKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Invalid API Key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
