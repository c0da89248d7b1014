package types

// DetectionResult represents a detected food item, normalized from whichever
// provider (or the mock fallback) produced it.
type DetectionResult struct {
	Name        string   `json:"name"`
	Confidence  float64  `json:"confidence"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Nutrition represents approximate macros for a recipe or ingredient list.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// RecipeResult represents a recipe in the shape the frontend renders.
type RecipeResult struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	CookTime     string     `json:"cook_time"`
	Difficulty   string     `json:"difficulty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
}

// Recipe difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)
