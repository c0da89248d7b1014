package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/gpavan11/snap-chef/internal/mockdata"
	"github.com/gpavan11/snap-chef/internal/provider"
	"github.com/gpavan11/snap-chef/internal/types"
)

// SourceMock marks results produced by the static fallback catalogs.
const SourceMock = "mock"

// Padding bounds when a source returns a thin recipe set.
const (
	minRecipes     = 3
	paddedRecipes  = 4
	defaultRecipes = 4
)

// Coordinator tries providers in fixed priority order and falls back to the
// static mock catalogs when every configured provider fails. Its methods
// never return an error: exhaustion always resolves to mock data. It holds
// no mutable state; provider chains are fixed at construction.
type Coordinator struct {
	detectors []provider.DetectionProvider
	recipers  []provider.RecipeProvider
	nutrition []provider.NutritionProvider
}

// NewCoordinator creates a coordinator over the given provider chains, each
// ordered best-accuracy-first.
func NewCoordinator(
	detectors []provider.DetectionProvider,
	recipers []provider.RecipeProvider,
	nutrition []provider.NutritionProvider,
) *Coordinator {
	return &Coordinator{
		detectors: detectors,
		recipers:  recipers,
		nutrition: nutrition,
	}
}

// ConfiguredProviders lists the names of providers that hold credentials,
// for the health endpoint.
func (c *Coordinator) ConfiguredProviders() []string {
	names := []string{}
	seen := map[string]bool{}
	add := func(name string, configured bool) {
		if configured && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, p := range c.detectors {
		add(p.Name(), p.Configured())
	}
	for _, p := range c.recipers {
		add(p.Name(), p.Configured())
	}
	for _, p := range c.nutrition {
		add(p.Name(), p.Configured())
	}
	return names
}

// DetectFood identifies the food in the image. Returns the detection and the
// name of the source that produced it.
func (c *Coordinator) DetectFood(ctx context.Context, img provider.Image) (types.DetectionResult, string) {
	for _, p := range c.detectors {
		if !p.Configured() {
			continue
		}
		detection, err := p.Detect(ctx, img)
		if err != nil {
			if !errors.Is(err, provider.ErrNotConfigured) {
				log.Printf("[Coordinator] detection provider %s failed: %v", p.Name(), err)
			}
			continue
		}
		normalized := c.normalizeDetection(detection)
		if normalized.Name == "" {
			log.Printf("[Coordinator] detection provider %s returned unusable name %q", p.Name(), detection.Name)
			continue
		}
		return normalized, p.Name()
	}

	return c.mockDetection(img), SourceMock
}

// GetRecipes produces count recipes for the detection. Returns the recipes
// and the name of the source that produced them.
func (c *Coordinator) GetRecipes(ctx context.Context, detection types.DetectionResult, count int) ([]types.RecipeResult, string) {
	if count <= 0 {
		count = defaultRecipes
	}

	for _, p := range c.recipers {
		if !p.Configured() {
			continue
		}
		recipes, err := p.Recipes(ctx, detection, count)
		if err != nil {
			if !errors.Is(err, provider.ErrNotConfigured) {
				log.Printf("[Coordinator] recipe provider %s failed: %v", p.Name(), err)
			}
			continue
		}
		return c.normalizeRecipes(recipes, detection, count), p.Name()
	}

	recipes := mockdata.RecipesFor(detection.Name, detection.Category)
	return c.normalizeRecipes(recipes, detection, count), SourceMock
}

// LookupNutrition returns macros for the ingredient list, falling back to the
// static estimate table.
func (c *Coordinator) LookupNutrition(ctx context.Context, ingredients []string) (types.Nutrition, string) {
	for _, p := range c.nutrition {
		if !p.Configured() {
			continue
		}
		nutrition, err := p.Nutrition(ctx, ingredients)
		if err != nil {
			if !errors.Is(err, provider.ErrNotConfigured) {
				log.Printf("[Coordinator] nutrition provider %s failed: %v", p.Name(), err)
			}
			continue
		}
		return nutrition, p.Name()
	}
	return mockdata.EstimateNutrition(ingredients), SourceMock
}

// mockDetection resolves a detection from the static food table: file-name
// keyword match first, else a pick keyed off the image bytes.
func (c *Coordinator) mockDetection(img provider.Image) types.DetectionResult {
	if detection, ok := mockdata.FoodByReference(img.Name); ok {
		return detection
	}
	return mockdata.FoodByImage(img.Data)
}

// normalizeDetection brings a heterogeneous provider payload into the fully
// populated shape the API promises.
func (c *Coordinator) normalizeDetection(d types.DetectionResult) types.DetectionResult {
	d.Name = NormalizeName(d.Name)
	d.Confidence = ClampConfidence(d.Confidence)
	d.Category = Categorize(d.Name)
	return d
}

// normalizeRecipes fills required fields. Sets thinner than three entries are
// padded from the default pool up to four; anything else is trimmed to count.
// Padding is decided on what the source produced, before trimming.
func (c *Coordinator) normalizeRecipes(recipes []types.RecipeResult, detection types.DetectionResult, count int) []types.RecipeResult {
	if len(recipes) < minRecipes {
		recipes = mockdata.PadRecipes(recipes, paddedRecipes)
	} else if len(recipes) > count {
		recipes = recipes[:count]
	}
	for i := range recipes {
		fillRecipeDefaults(&recipes[i], detection)
	}
	return recipes
}

// fillRecipeDefaults guarantees every required RecipeResult field is set.
func fillRecipeDefaults(r *types.RecipeResult, detection types.DetectionResult) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Title == "" {
		r.Title = detection.Name
	}
	if r.Description == "" {
		r.Description = fmt.Sprintf("A simple take on %s.", r.Title)
	}
	if r.ImageURL == "" {
		r.ImageURL = "https://images.unsplash.com/photo-1504674900247-0877df9cc836"
	}
	if r.CookTime == "" {
		r.CookTime = "30 min"
	}
	switch r.Difficulty {
	case types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard:
	default:
		r.Difficulty = types.DifficultyMedium
	}
}
