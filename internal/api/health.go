package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpavan11/snap-chef/internal/service"
)

// HealthHandler reports liveness and which providers hold credentials, so a
// client can tell whether it is talking to live providers or demo mode.
type HealthHandler struct {
	coordinator *service.Coordinator
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(coordinator *service.Coordinator) *HealthHandler {
	return &HealthHandler{coordinator: coordinator}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	providers := h.coordinator.ConfiguredProviders()
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Snap Chef API is running",
		"providers": providers,
		"demo_mode": len(providers) == 0,
	})
}
