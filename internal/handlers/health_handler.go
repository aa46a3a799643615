package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HardPrice/test-task-secunda/pkg/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Uptime    string            `json:"uptime"`
}

type ReadinessStatus struct {
	Ready    bool              `json:"ready"`
	Services map[string]string `json:"services"`
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Health check endpoint
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"database": h.checkDatabase(c.Request.Context()),
	}

	status := "healthy"
	for _, serviceStatus := range services {
		if serviceStatus != "healthy" {
			status = "degraded"
			break
		}
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	utils.JSONResponse(c, statusCode, HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
		Uptime:    time.Since(startTime).String(),
	})
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessStatus
// @Failure 503 {object} ReadinessStatus
// @Router /ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	services := map[string]string{
		"database": h.checkDatabase(c.Request.Context()),
	}

	ready := true
	for _, serviceStatus := range services {
		if serviceStatus != "healthy" {
			ready = false
			break
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	utils.JSONResponse(c, statusCode, ReadinessStatus{
		Ready:    ready,
		Services: services,
	})
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) string {
	if h.db == nil {
		return "not_configured"
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return "error"
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return "unhealthy"
	}

	return "healthy"
}

var startTime = time.Now()
