package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body shape returned by every endpoint.
type ErrorResponse struct {
	Error     string      `json:"error"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// JSONResponse sends a JSON response with the given status code.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendError sends a structured error response.
func SendError(c *gin.Context, statusCode int, errType, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:     errType,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, "Bad Request", message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, "Unauthorized", message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, "Not Found", message)
}

// UnprocessableEntity sends a 422 response
func UnprocessableEntity(c *gin.Context, message string) {
	SendError(c, http.StatusUnprocessableEntity, "Validation Error", message)
}

// InternalServerError sends a 500 response
func InternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, "Internal Server Error", message)
}

// SetSecurityHeaders sets common security headers
func SetSecurityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "1; mode=block")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
}
