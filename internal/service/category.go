package service

import (
	"strings"
	"unicode"
)

// categoryKeywords maps each category to its curated keyword list. First
// matching category wins; order is fixed below.
var categoryKeywords = map[string][]string{
	"Protein":   {"chicken", "beef", "pork", "lamb", "turkey", "steak", "egg", "tofu"},
	"Seafood":   {"fish", "salmon", "tuna", "shrimp", "sushi", "crab", "lobster"},
	"Grain":     {"rice", "pasta", "noodle", "spaghetti", "bread", "quinoa", "oat"},
	"Vegetable": {"salad", "broccoli", "spinach", "carrot", "vegetable", "greens"},
	"Fruit":     {"apple", "banana", "berry", "mango", "orange", "fruit", "melon"},
	"Dessert":   {"cake", "cookie", "chocolate", "ice cream", "pie", "brownie", "pudding"},
	"Fast Food": {"burger", "pizza", "fries", "hot dog", "taco", "nugget", "sandwich"},
	"Soup":      {"soup", "stew", "broth", "chowder", "ramen", "curry"},
	"Breakfast": {"pancake", "waffle", "omelette", "toast", "cereal", "granola"},
	"Beverage":  {"smoothie", "juice", "coffee", "tea", "shake", "latte"},
}

// categoryOrder fixes the first-match precedence across categories.
var categoryOrder = []string{
	"Protein", "Seafood", "Grain", "Vegetable", "Fruit",
	"Dessert", "Fast Food", "Soup", "Breakfast", "Beverage",
}

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "General"

// Categorize maps a food name onto a fixed category by keyword containment.
// Deterministic: the same name always yields the same category.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return DefaultCategory
}

// NormalizeName title-cases the food name and strips punctuation, so
// heterogeneous provider labels ("chicken_teriyaki!", "Chicken Teriyaki")
// categorize and display identically.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '_' || r == '-':
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ClampConfidence forces provider confidence values into [0,1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
