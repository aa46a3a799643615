package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/HardPrice/test-task-secunda/internal/config"
)

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	apiKey := NewAPIKeyMiddleware(config.AuthConfig{
		APIKey:       "secret",
		APIKeyHeader: "api_key",
	})

	router := gin.New()
	router.GET("/protected", apiKey.RequireAPIKey(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAPIKey(t *testing.T) {
	router := newAuthedRouter()

	tests := []struct {
		name     string
		key      string
		withKey  bool
		expected int
	}{
		{"missing key", "", false, http.StatusUnauthorized},
		{"empty key", "", true, http.StatusUnauthorized},
		{"wrong key", "not-the-secret", true, http.StatusUnauthorized},
		{"valid key", "secret", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.withKey {
				req.Header.Set("api_key", tt.key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
