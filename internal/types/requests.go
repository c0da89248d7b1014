package types

// DetectResponse is the payload returned by POST /api/v1/detect.
type DetectResponse struct {
	Detection DetectionResult `json:"detection"`
	Source    string          `json:"source"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// RecipesRequest is the payload accepted by POST /api/v1/recipes.
type RecipesRequest struct {
	Detection DetectionResult `json:"detection" binding:"required"`
	Count     int             `json:"count"`
}

// RecipesResponse is the payload returned by POST /api/v1/recipes.
type RecipesResponse struct {
	Recipes []RecipeResult `json:"recipes"`
	Source  string         `json:"source"`
}

// NutritionRequest is the payload accepted by POST /api/v1/nutrition.
type NutritionRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// NutritionResponse is the payload returned by POST /api/v1/nutrition.
type NutritionResponse struct {
	Nutrition Nutrition `json:"nutrition"`
	Source    string    `json:"source"`
}
