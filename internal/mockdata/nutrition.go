package mockdata

import (
	"strings"

	"github.com/gpavan11/snap-chef/internal/types"
)

// nutritionEstimates holds rough per-serving macros keyed by ingredient
// keyword, used when no nutrition provider is reachable.
var nutritionEstimates = map[string]types.Nutrition{
	"chicken": {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	"beef":    {Calories: 250, Protein: 26, Carbs: 0, Fat: 15},
	"salmon":  {Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
	"rice":    {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	"pasta":   {Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1},
	"egg":     {Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5},
	"cheese":  {Calories: 113, Protein: 7, Carbs: 0.4, Fat: 9},
	"potato":  {Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1},
	"bread":   {Calories: 79, Protein: 2.7, Carbs: 14, Fat: 1},
	"butter":  {Calories: 102, Protein: 0.1, Carbs: 0, Fat: 12},
}

// nutritionOrder fixes match precedence so estimates stay deterministic when
// an ingredient mentions more than one keyword.
var nutritionOrder = []string{
	"chicken", "beef", "salmon", "rice", "pasta",
	"egg", "cheese", "potato", "bread", "butter",
}

// genericEstimate covers ingredients nothing in the table matches.
var genericEstimate = types.Nutrition{Calories: 90, Protein: 3, Carbs: 12, Fat: 3}

// EstimateNutrition sums keyword-matched estimates over the ingredient list.
// Never returns zero-valued macros for a non-empty list.
func EstimateNutrition(ingredients []string) types.Nutrition {
	var total types.Nutrition
	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		est := genericEstimate
		for _, key := range nutritionOrder {
			if strings.Contains(lower, key) {
				est = nutritionEstimates[key]
				break
			}
		}
		total.Calories += est.Calories
		total.Protein += est.Protein
		total.Carbs += est.Carbs
		total.Fat += est.Fat
	}
	return total
}
