package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Swappo Chat Service"
	serviceVersion = "1.0.0"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health endpoints on the root router
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}

// Root is the basic liveness endpoint
// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"status":  "running",
		"version": serviceVersion,
	})
}

// Health is the detailed health check
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   serviceName,
		"status":    "healthy",
		"version":   serviceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
