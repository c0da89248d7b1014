package mockdata

import (
	"strings"

	"github.com/gpavan11/snap-chef/internal/types"
)

// recipeSets maps a food keyword to its curated recipe set. Sets may hold
// fewer than the requested count; the coordinator pads from DefaultRecipes.
var recipeSets = map[string][]types.RecipeResult{
	"chicken": {
		{
			ID:          "mock-chicken-1",
			Title:       "Honey Garlic Chicken",
			Description: "Sticky pan-seared chicken thighs glazed with honey and garlic.",
			ImageURL:    "https://images.unsplash.com/photo-1598103442097-8b74394b95c6",
			CookTime:    "30 min",
			Difficulty:  types.DifficultyEasy,
			Ingredients: []string{"6 chicken thighs", "3 tbsp honey", "4 garlic cloves", "2 tbsp soy sauce", "1 tbsp olive oil"},
			Instructions: []string{
				"Season the chicken thighs with salt and pepper.",
				"Sear skin side down in a hot pan for 6 minutes.",
				"Flip, add garlic, honey and soy sauce.",
				"Simmer until the glaze thickens and the chicken is cooked through.",
			},
			Nutrition: &types.Nutrition{Calories: 420, Protein: 32, Carbs: 18, Fat: 24},
		},
		{
			ID:          "mock-chicken-2",
			Title:       "Chicken Teriyaki Bowl",
			Description: "Glazed chicken over steamed rice with sesame and scallions.",
			ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			CookTime:    "25 min",
			Difficulty:  types.DifficultyEasy,
			Ingredients: []string{"2 chicken breasts", "1 cup rice", "4 tbsp teriyaki sauce", "1 tsp sesame seeds", "2 scallions"},
			Instructions: []string{
				"Cook the rice according to package directions.",
				"Dice and pan-fry the chicken until golden.",
				"Toss with teriyaki sauce and simmer for 2 minutes.",
				"Serve over rice topped with sesame and scallions.",
			},
			Nutrition: &types.Nutrition{Calories: 520, Protein: 38, Carbs: 62, Fat: 12},
		},
	},
	"pasta": {
		{
			ID:          "mock-pasta-1",
			Title:       "Garlic Butter Spaghetti",
			Description: "Weeknight spaghetti tossed in garlic butter and parmesan.",
			ImageURL:    "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9",
			CookTime:    "20 min",
			Difficulty:  types.DifficultyEasy,
			Ingredients: []string{"300 g spaghetti", "4 tbsp butter", "5 garlic cloves", "50 g parmesan", "parsley"},
			Instructions: []string{
				"Boil the spaghetti in salted water until al dente.",
				"Melt butter and soften the garlic without browning.",
				"Toss the pasta with the garlic butter and a splash of pasta water.",
				"Finish with parmesan and parsley.",
			},
			Nutrition: &types.Nutrition{Calories: 540, Protein: 16, Carbs: 72, Fat: 20},
		},
		{
			ID:          "mock-pasta-2",
			Title:       "Creamy Tomato Penne",
			Description: "Penne in a quick tomato cream sauce with basil.",
			ImageURL:    "https://images.unsplash.com/photo-1563379926898-05f4575a45d8",
			CookTime:    "25 min",
			Difficulty:  types.DifficultyEasy,
			Ingredients: []string{"300 g penne", "400 g crushed tomatoes", "100 ml cream", "1 onion", "fresh basil"},
			Instructions: []string{
				"Cook the penne until al dente.",
				"Soften the onion, add tomatoes and simmer 10 minutes.",
				"Stir in the cream and season.",
				"Fold in the pasta and tear over the basil.",
			},
			Nutrition: &types.Nutrition{Calories: 580, Protein: 17, Carbs: 78, Fat: 22},
		},
	},
	"salad": {
		{
			ID:          "mock-salad-1",
			Title:       "Mediterranean Chickpea Salad",
			Description: "Chickpeas, cucumber and feta in a lemon-oregano dressing.",
			ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			CookTime:    "15 min",
			Difficulty:  types.DifficultyEasy,
			Ingredients: []string{"1 can chickpeas", "1 cucumber", "200 g cherry tomatoes", "100 g feta", "lemon", "oregano"},
			Instructions: []string{
				"Drain and rinse the chickpeas.",
				"Chop the cucumber and halve the tomatoes.",
				"Whisk lemon juice, olive oil and oregano.",
				"Toss everything and crumble the feta on top.",
			},
			Nutrition: &types.Nutrition{Calories: 340, Protein: 14, Carbs: 38, Fat: 16},
		},
	},
	"burger": {
		{
			ID:          "mock-burger-1",
			Title:       "Classic Smash Burger",
			Description: "Thin crispy-edged patties with melted cheddar on a toasted bun.",
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
			CookTime:    "20 min",
			Difficulty:  types.DifficultyMedium,
			Ingredients: []string{"400 g ground beef", "4 burger buns", "4 slices cheddar", "1 onion", "pickles", "burger sauce"},
			Instructions: []string{
				"Divide the beef into loose balls, season with salt.",
				"Smash each ball flat on a screaming-hot griddle.",
				"Flip after 2 minutes, top with cheddar.",
				"Stack on toasted buns with onion, pickles and sauce.",
			},
			Nutrition: &types.Nutrition{Calories: 650, Protein: 34, Carbs: 42, Fat: 38},
		},
	},
	"sushi": {
		{
			ID:          "mock-sushi-1",
			Title:       "Salmon Avocado Rolls",
			Description: "Homemade maki with fresh salmon and creamy avocado.",
			ImageURL:    "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
			CookTime:    "45 min",
			Difficulty:  types.DifficultyHard,
			Ingredients: []string{"2 cups sushi rice", "200 g sashimi-grade salmon", "1 avocado", "4 nori sheets", "rice vinegar", "soy sauce"},
			Instructions: []string{
				"Cook and season the sushi rice with vinegar.",
				"Spread rice over a nori sheet on a bamboo mat.",
				"Lay salmon and avocado strips and roll tightly.",
				"Slice with a wet knife and serve with soy sauce.",
			},
			Nutrition: &types.Nutrition{Calories: 410, Protein: 22, Carbs: 58, Fat: 11},
		},
	},
	"cake": {
		{
			ID:          "mock-cake-1",
			Title:       "One-Bowl Chocolate Cake",
			Description: "Moist cocoa sponge with a simple chocolate ganache.",
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587",
			CookTime:    "50 min",
			Difficulty:  types.DifficultyMedium,
			Ingredients: []string{"200 g flour", "60 g cocoa powder", "200 g sugar", "2 eggs", "120 ml milk", "100 g dark chocolate"},
			Instructions: []string{
				"Whisk the dry ingredients in a bowl.",
				"Beat in eggs and milk until smooth.",
				"Bake at 175°C for 35 minutes.",
				"Cool, then pour over the melted chocolate ganache.",
			},
			Nutrition: &types.Nutrition{Calories: 480, Protein: 8, Carbs: 64, Fat: 22},
		},
	},
}

// DefaultRecipes is the pool used to pad thin result sets.
var DefaultRecipes = []types.RecipeResult{
	{
		ID:          "mock-default-1",
		Title:       "Vegetable Stir Fry",
		Description: "Crisp seasonal vegetables in a ginger-soy glaze.",
		ImageURL:    "https://images.unsplash.com/photo-1512058564366-18510be2db19",
		CookTime:    "15 min",
		Difficulty:  types.DifficultyEasy,
		Ingredients: []string{"1 broccoli head", "2 carrots", "1 bell pepper", "2 tbsp soy sauce", "1 tsp ginger"},
		Instructions: []string{
			"Cut all vegetables into bite-size pieces.",
			"Stir-fry over high heat for 5 minutes.",
			"Add soy sauce and grated ginger.",
			"Toss for another minute and serve hot.",
		},
		Nutrition: &types.Nutrition{Calories: 180, Protein: 6, Carbs: 24, Fat: 7},
	},
	{
		ID:          "mock-default-2",
		Title:       "Creamy Mushroom Risotto",
		Description: "Slow-stirred arborio rice with mushrooms and parmesan.",
		ImageURL:    "https://images.unsplash.com/photo-1476124369491-e7addf5db371",
		CookTime:    "40 min",
		Difficulty:  types.DifficultyMedium,
		Ingredients: []string{"300 g arborio rice", "250 g mushrooms", "1 l vegetable stock", "50 g parmesan", "1 shallot", "white wine"},
		Instructions: []string{
			"Sauté the shallot and mushrooms in butter.",
			"Toast the rice, then deglaze with wine.",
			"Add stock a ladle at a time, stirring until absorbed.",
			"Finish with parmesan and a knob of butter.",
		},
		Nutrition: &types.Nutrition{Calories: 520, Protein: 13, Carbs: 76, Fat: 16},
	},
	{
		ID:          "mock-default-3",
		Title:       "Shakshuka",
		Description: "Eggs poached in a spiced tomato and pepper sauce.",
		ImageURL:    "https://images.unsplash.com/photo-1590412200988-a436970781fa",
		CookTime:    "30 min",
		Difficulty:  types.DifficultyEasy,
		Ingredients: []string{"4 eggs", "400 g crushed tomatoes", "1 red pepper", "1 onion", "1 tsp cumin", "1 tsp paprika"},
		Instructions: []string{
			"Soften the onion and pepper with the spices.",
			"Add tomatoes and simmer for 10 minutes.",
			"Make wells and crack in the eggs.",
			"Cover and cook until the whites are just set.",
		},
		Nutrition: &types.Nutrition{Calories: 310, Protein: 16, Carbs: 22, Fat: 18},
	},
	{
		ID:          "mock-default-4",
		Title:       "Lemon Herb Salmon",
		Description: "Oven-baked salmon fillets with lemon, dill and butter.",
		ImageURL:    "https://images.unsplash.com/photo-1467003909585-2f8a72700288",
		CookTime:    "25 min",
		Difficulty:  types.DifficultyEasy,
		Ingredients: []string{"2 salmon fillets", "1 lemon", "2 tbsp butter", "fresh dill", "black pepper"},
		Instructions: []string{
			"Place the fillets on a lined baking tray.",
			"Top with butter, lemon slices and dill.",
			"Bake at 200°C for 12-14 minutes.",
			"Rest briefly and spoon over the pan juices.",
		},
		Nutrition: &types.Nutrition{Calories: 390, Protein: 34, Carbs: 4, Fat: 26},
	},
}

// recipeSetOrder fixes match precedence for name keywords.
var recipeSetOrder = []string{"chicken", "pasta", "salad", "burger", "sushi", "cake"}

// categorySets routes a detection category to a recipe set when the food
// name itself matches nothing.
var categorySets = map[string]string{
	"Protein":   "chicken",
	"Grain":     "pasta",
	"Vegetable": "salad",
	"Fast Food": "burger",
	"Seafood":   "sushi",
	"Dessert":   "cake",
}

// RecipesFor returns the curated set for a detected food, preferring a keyword
// match on the name over the category mapping. Returns nil when neither
// matches; callers pad from DefaultRecipes either way.
func RecipesFor(name, category string) []types.RecipeResult {
	lower := strings.ToLower(name)
	for _, key := range recipeSetOrder {
		if strings.Contains(lower, key) {
			return cloneRecipes(recipeSets[key])
		}
	}
	if key, ok := categorySets[category]; ok {
		return cloneRecipes(recipeSets[key])
	}
	return nil
}

// PadRecipes tops up recipes from DefaultRecipes until it holds max entries,
// skipping IDs already present.
func PadRecipes(recipes []types.RecipeResult, max int) []types.RecipeResult {
	seen := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		seen[r.ID] = true
	}
	for _, r := range DefaultRecipes {
		if len(recipes) >= max {
			break
		}
		if seen[r.ID] {
			continue
		}
		recipes = append(recipes, r)
		seen[r.ID] = true
	}
	return recipes
}

func cloneRecipes(in []types.RecipeResult) []types.RecipeResult {
	out := make([]types.RecipeResult, len(in))
	copy(out, in)
	return out
}
