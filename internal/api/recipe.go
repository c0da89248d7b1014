package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpavan11/snap-chef/internal/service"
	"github.com/gpavan11/snap-chef/internal/types"
)

// RecipeHandler handles recipe generation requests.
type RecipeHandler struct {
	coordinator *service.Coordinator
	cache       *service.ResultCache
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(coordinator *service.Coordinator, cache *service.ResultCache) *RecipeHandler {
	return &RecipeHandler{coordinator: coordinator, cache: cache}
}

// Recipes handles POST /api/v1/recipes. Always responds 200 with at least
// three fully populated recipes.
func (h *RecipeHandler) Recipes(c *gin.Context) {
	var req types.RecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Detection.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "detection name is required"})
		return
	}
	if req.Count <= 0 {
		req.Count = 4
	}

	ctx := c.Request.Context()

	var resp types.RecipesResponse
	cacheKey := service.RecipesKey(req.Detection.Name, req.Count)
	if h.cache.Get(ctx, cacheKey, &resp) {
		c.JSON(http.StatusOK, resp)
		return
	}

	recipes, source := h.coordinator.GetRecipes(ctx, req.Detection, req.Count)
	resp = types.RecipesResponse{Recipes: recipes, Source: source}
	h.cache.Set(ctx, cacheKey, resp)

	c.JSON(http.StatusOK, resp)
}
