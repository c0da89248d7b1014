package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gpavan11/snap-chef/internal/api"
	"github.com/gpavan11/snap-chef/internal/middleware"
)

// SetupRouter configures the application routes. The rate limiter is nil
// when Redis is not configured.
func SetupRouter(
	detectHandler *api.DetectHandler,
	recipeHandler *api.RecipeHandler,
	nutritionHandler *api.NutritionHandler,
	healthHandler *api.HealthHandler,
	detectionLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		detect := v1.Group("")
		if detectionLimiter != nil {
			detect.Use(detectionLimiter.RateLimitMiddleware())
		}
		detect.POST("/detect", detectHandler.Detect)

		v1.POST("/recipes", recipeHandler.Recipes)
		v1.POST("/nutrition", nutritionHandler.Nutrition)
		v1.GET("/detections", detectHandler.History)
	}

	return router
}
