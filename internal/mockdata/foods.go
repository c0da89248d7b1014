// Package mockdata holds the static catalogs served when no external provider
// is configured or every configured provider fails. Lookups are deterministic.
package mockdata

import (
	"hash/fnv"
	"strings"

	"github.com/gpavan11/snap-chef/internal/types"
)

// Foods maps a keyword to the detection returned when that keyword appears in
// the uploaded file name.
var Foods = map[string]types.DetectionResult{
	"chicken": {
		Name:        "Grilled Chicken",
		Confidence:  0.92,
		Category:    "Protein",
		Ingredients: []string{"chicken breast", "olive oil", "garlic", "black pepper"},
	},
	"pizza": {
		Name:        "Margherita Pizza",
		Confidence:  0.95,
		Category:    "Fast Food",
		Ingredients: []string{"pizza dough", "tomato sauce", "mozzarella", "basil"},
	},
	"pasta": {
		Name:        "Spaghetti Pasta",
		Confidence:  0.91,
		Category:    "Grain",
		Ingredients: []string{"spaghetti", "tomatoes", "garlic", "parmesan"},
	},
	"salad": {
		Name:        "Garden Salad",
		Confidence:  0.89,
		Category:    "Vegetable",
		Ingredients: []string{"lettuce", "cucumber", "tomatoes", "olive oil"},
	},
	"burger": {
		Name:        "Beef Burger",
		Confidence:  0.94,
		Category:    "Fast Food",
		Ingredients: []string{"beef patty", "burger bun", "lettuce", "cheddar"},
	},
	"sushi": {
		Name:        "Salmon Sushi",
		Confidence:  0.93,
		Category:    "Seafood",
		Ingredients: []string{"sushi rice", "salmon", "nori", "soy sauce"},
	},
	"pancake": {
		Name:        "Buttermilk Pancakes",
		Confidence:  0.90,
		Category:    "Breakfast",
		Ingredients: []string{"flour", "buttermilk", "eggs", "maple syrup"},
	},
	"cake": {
		Name:        "Chocolate Cake",
		Confidence:  0.92,
		Category:    "Dessert",
		Ingredients: []string{"flour", "cocoa powder", "sugar", "eggs"},
	},
	"soup": {
		Name:        "Tomato Soup",
		Confidence:  0.88,
		Category:    "Soup",
		Ingredients: []string{"tomatoes", "vegetable stock", "cream", "basil"},
	},
	"rice": {
		Name:        "Fried Rice",
		Confidence:  0.90,
		Category:    "Grain",
		Ingredients: []string{"rice", "eggs", "scallions", "soy sauce"},
	},
}

// foodOrder fixes iteration order for the hashed pick.
var foodOrder = []string{
	"chicken", "pizza", "pasta", "salad", "burger",
	"sushi", "pancake", "cake", "soup", "rice",
}

// FoodByReference matches keywords from the image reference (usually the
// uploaded file name) against the food table.
func FoodByReference(ref string) (types.DetectionResult, bool) {
	ref = strings.ToLower(ref)
	for _, key := range foodOrder {
		if strings.Contains(ref, key) {
			return Foods[key], true
		}
	}
	return types.DetectionResult{}, false
}

// FoodByImage picks a food keyed off a hash of the image bytes, so the same
// upload always maps to the same mock detection.
func FoodByImage(image []byte) types.DetectionResult {
	h := fnv.New32a()
	h.Write(image)
	return Foods[foodOrder[int(h.Sum32())%len(foodOrder)]]
}
