package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpavan11/snap-chef/internal/service"
	"github.com/gpavan11/snap-chef/internal/types"
)

// NutritionHandler handles nutrition lookup requests.
type NutritionHandler struct {
	coordinator *service.Coordinator
}

// NewNutritionHandler creates a new NutritionHandler instance.
func NewNutritionHandler(coordinator *service.Coordinator) *NutritionHandler {
	return &NutritionHandler{coordinator: coordinator}
}

// Nutrition handles POST /api/v1/nutrition.
func (h *NutritionHandler) Nutrition(c *gin.Context) {
	var req types.NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}

	nutrition, source := h.coordinator.LookupNutrition(c.Request.Context(), req.Ingredients)
	c.JSON(http.StatusOK, types.NutritionResponse{Nutrition: nutrition, Source: source})
}
