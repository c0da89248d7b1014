package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpavan11/snap-chef/internal/provider"
	"github.com/gpavan11/snap-chef/internal/types"
)

type stubDetector struct {
	name       string
	configured bool
	result     types.DetectionResult
	err        error
	calls      int
}

func (s *stubDetector) Name() string     { return s.name }
func (s *stubDetector) Configured() bool { return s.configured }
func (s *stubDetector) Detect(ctx context.Context, img provider.Image) (types.DetectionResult, error) {
	s.calls++
	return s.result, s.err
}

type stubReciper struct {
	name       string
	configured bool
	result     []types.RecipeResult
	err        error
	calls      int
}

func (s *stubReciper) Name() string     { return s.name }
func (s *stubReciper) Configured() bool { return s.configured }
func (s *stubReciper) Recipes(ctx context.Context, d types.DetectionResult, count int) ([]types.RecipeResult, error) {
	s.calls++
	return s.result, s.err
}

type stubNutrition struct {
	name       string
	configured bool
	result     types.Nutrition
	err        error
}

func (s *stubNutrition) Name() string     { return s.name }
func (s *stubNutrition) Configured() bool { return s.configured }
func (s *stubNutrition) Nutrition(ctx context.Context, ingredients []string) (types.Nutrition, error) {
	return s.result, s.err
}

func assertFullyPopulated(t *testing.T, r types.RecipeResult) {
	t.Helper()
	assert.NotEmpty(t, r.ID)
	assert.NotEmpty(t, r.Title)
	assert.NotEmpty(t, r.Description)
	assert.NotEmpty(t, r.ImageURL)
	assert.NotEmpty(t, r.CookTime)
	assert.Contains(t, []string{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}, r.Difficulty)
	assert.NotEmpty(t, r.Ingredients)
	assert.NotEmpty(t, r.Instructions)
}

func TestCoordinator_DetectFood(t *testing.T) {
	ctx := context.Background()

	t.Run("no providers configured falls back to mock", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo"), Name: "lunch.jpg"})

		assert.Equal(t, SourceMock, source)
		assert.NotEmpty(t, detection.Name)
		assert.NotEmpty(t, detection.Category)
		assert.GreaterOrEqual(t, detection.Confidence, 0.0)
		assert.LessOrEqual(t, detection.Confidence, 1.0)
	})

	t.Run("mock matches keyword in file name", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo"), Name: "my-chicken-dinner.jpg"})

		assert.Equal(t, SourceMock, source)
		assert.Equal(t, "Grilled Chicken", detection.Name)
		assert.Equal(t, "Protein", detection.Category)
	})

	t.Run("mock pick is deterministic per image", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)
		img := provider.Image{Data: []byte("same bytes"), Name: "upload.bin"}

		first, _ := c.DetectFood(ctx, img)
		second, _ := c.DetectFood(ctx, img)

		assert.Equal(t, first, second)
	})

	t.Run("first configured provider wins", func(t *testing.T) {
		primary := &stubDetector{
			name:       "primary",
			configured: true,
			result:     types.DetectionResult{Name: "ramen bowl", Confidence: 0.8},
		}
		secondary := &stubDetector{name: "secondary", configured: true}
		c := NewCoordinator([]provider.DetectionProvider{primary, secondary}, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo")})

		assert.Equal(t, "primary", source)
		assert.Equal(t, "Ramen Bowl", detection.Name)
		assert.Equal(t, "Soup", detection.Category)
		assert.Equal(t, 0, secondary.calls)
	})

	t.Run("failure advances to next provider without surfacing", func(t *testing.T) {
		primary := &stubDetector{name: "primary", configured: true, err: errors.New("boom")}
		secondary := &stubDetector{
			name:       "secondary",
			configured: true,
			result:     types.DetectionResult{Name: "salmon sushi", Confidence: 0.7},
		}
		c := NewCoordinator([]provider.DetectionProvider{primary, secondary}, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo")})

		assert.Equal(t, "secondary", source)
		assert.Equal(t, "Salmon Sushi", detection.Name)
		assert.Equal(t, 1, primary.calls)
	})

	t.Run("unconfigured provider is skipped without a call", func(t *testing.T) {
		skipped := &stubDetector{name: "skipped", configured: false}
		c := NewCoordinator([]provider.DetectionProvider{skipped}, nil, nil)

		_, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo"), Name: "pizza.png"})

		assert.Equal(t, SourceMock, source)
		assert.Equal(t, 0, skipped.calls)
	})

	t.Run("confidence is clamped to unit interval", func(t *testing.T) {
		hot := &stubDetector{
			name:       "hot",
			configured: true,
			result:     types.DetectionResult{Name: "burger", Confidence: 3.2},
		}
		c := NewCoordinator([]provider.DetectionProvider{hot}, nil, nil)

		detection, _ := c.DetectFood(ctx, provider.Image{Data: []byte("photo")})

		assert.Equal(t, 1.0, detection.Confidence)
	})

	t.Run("name that normalizes to nothing advances the chain", func(t *testing.T) {
		garbage := &stubDetector{
			name:       "garbage",
			configured: true,
			result:     types.DetectionResult{Name: "!!!", Confidence: 0.9},
		}
		secondary := &stubDetector{
			name:       "secondary",
			configured: true,
			result:     types.DetectionResult{Name: "burger", Confidence: 0.6},
		}
		c := NewCoordinator([]provider.DetectionProvider{garbage, secondary}, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo")})

		assert.Equal(t, "secondary", source)
		assert.Equal(t, "Burger", detection.Name)
	})

	t.Run("every name unusable falls back to mock, still populated", func(t *testing.T) {
		garbage := &stubDetector{
			name:       "garbage",
			configured: true,
			result:     types.DetectionResult{Name: "?!?", Confidence: 0.9},
		}
		c := NewCoordinator([]provider.DetectionProvider{garbage}, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo"), Name: "x.jpg"})

		assert.Equal(t, SourceMock, source)
		assert.NotEmpty(t, detection.Name)
		assert.NotEmpty(t, detection.Category)
	})

	t.Run("every provider failing falls back to mock", func(t *testing.T) {
		a := &stubDetector{name: "a", configured: true, err: errors.New("down")}
		b := &stubDetector{name: "b", configured: true, err: errors.New("down too")}
		c := NewCoordinator([]provider.DetectionProvider{a, b}, nil, nil)

		detection, source := c.DetectFood(ctx, provider.Image{Data: []byte("photo"), Name: "x.jpg"})

		assert.Equal(t, SourceMock, source)
		assert.NotEmpty(t, detection.Name)
	})
}

func TestCoordinator_GetRecipes(t *testing.T) {
	ctx := context.Background()
	chicken := types.DetectionResult{Name: "Chicken Teriyaki Bowl", Category: "Protein"}

	t.Run("no providers configured falls back to mock", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)

		recipes, source := c.GetRecipes(ctx, chicken, 4)

		assert.Equal(t, SourceMock, source)
		require.GreaterOrEqual(t, len(recipes), 3)
		assert.LessOrEqual(t, len(recipes), 4)
		for _, r := range recipes {
			assertFullyPopulated(t, r)
		}
	})

	t.Run("chicken detection returns the chicken set", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)

		recipes, _ := c.GetRecipes(ctx, chicken, 4)

		titles := make([]string, 0, len(recipes))
		for _, r := range recipes {
			titles = append(titles, r.Title)
		}
		assert.Contains(t, titles, "Honey Garlic Chicken")
		assert.Contains(t, titles, "Chicken Teriyaki Bowl")
	})

	t.Run("provider result is trimmed to count", func(t *testing.T) {
		many := make([]types.RecipeResult, 6)
		for i := range many {
			many[i] = types.RecipeResult{
				Title:        fmt.Sprintf("Recipe %d", i),
				Ingredients:  []string{"thing"},
				Instructions: []string{"do it"},
			}
		}
		p := &stubReciper{name: "gen", configured: true, result: many}
		c := NewCoordinator(nil, []provider.RecipeProvider{p}, nil)

		recipes, source := c.GetRecipes(ctx, chicken, 4)

		assert.Equal(t, "gen", source)
		assert.Len(t, recipes, 4)
	})

	t.Run("small count satisfied by the source is not padded", func(t *testing.T) {
		many := make([]types.RecipeResult, 6)
		for i := range many {
			many[i] = types.RecipeResult{
				Title:        fmt.Sprintf("Recipe %d", i),
				Ingredients:  []string{"thing"},
				Instructions: []string{"do it"},
			}
		}
		p := &stubReciper{name: "gen", configured: true, result: many}
		c := NewCoordinator(nil, []provider.RecipeProvider{p}, nil)

		recipes, source := c.GetRecipes(ctx, chicken, 2)

		assert.Equal(t, "gen", source)
		require.Len(t, recipes, 2)
		assert.Equal(t, "Recipe 0", recipes[0].Title)
		assert.Equal(t, "Recipe 1", recipes[1].Title)
	})

	t.Run("thin provider result is padded from the default pool", func(t *testing.T) {
		p := &stubReciper{
			name:       "gen",
			configured: true,
			result: []types.RecipeResult{
				{Title: "Only One", Ingredients: []string{"thing"}, Instructions: []string{"do it"}},
			},
		}
		c := NewCoordinator(nil, []provider.RecipeProvider{p}, nil)

		recipes, _ := c.GetRecipes(ctx, chicken, 4)

		require.Len(t, recipes, 4)
		assert.Equal(t, "Only One", recipes[0].Title)
		for _, r := range recipes {
			assertFullyPopulated(t, r)
		}
	})

	t.Run("failed generator falls through to search provider", func(t *testing.T) {
		gen := &stubReciper{name: "gen", configured: true, err: errors.New("quota")}
		search := &stubReciper{
			name:       "search",
			configured: true,
			result: []types.RecipeResult{
				{Title: "A", Ingredients: []string{"x"}, Instructions: []string{"y"}},
				{Title: "B", Ingredients: []string{"x"}, Instructions: []string{"y"}},
				{Title: "C", Ingredients: []string{"x"}, Instructions: []string{"y"}},
			},
		}
		c := NewCoordinator(nil, []provider.RecipeProvider{gen, search}, nil)

		recipes, source := c.GetRecipes(ctx, chicken, 3)

		assert.Equal(t, "search", source)
		assert.Len(t, recipes, 3)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("defaults missing fields", func(t *testing.T) {
		p := &stubReciper{
			name:       "gen",
			configured: true,
			result: []types.RecipeResult{
				{Title: "Bare", Ingredients: []string{"x"}, Instructions: []string{"y"}, Difficulty: "Impossible"},
				{Title: "Bare 2", Ingredients: []string{"x"}, Instructions: []string{"y"}},
				{Title: "Bare 3", Ingredients: []string{"x"}, Instructions: []string{"y"}},
			},
		}
		c := NewCoordinator(nil, []provider.RecipeProvider{p}, nil)

		recipes, _ := c.GetRecipes(ctx, chicken, 3)

		for _, r := range recipes {
			assertFullyPopulated(t, r)
		}
		assert.Equal(t, types.DifficultyMedium, recipes[0].Difficulty)
	})

	t.Run("zero count defaults to four", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)

		recipes, _ := c.GetRecipes(ctx, chicken, 0)

		assert.LessOrEqual(t, len(recipes), 4)
		assert.GreaterOrEqual(t, len(recipes), 3)
	})
}

func TestCoordinator_ConfiguredProviders(t *testing.T) {
	t.Run("lists each configured name once across chains", func(t *testing.T) {
		c := NewCoordinator(
			[]provider.DetectionProvider{
				&stubDetector{name: "openai", configured: true},
				&stubDetector{name: "clarifai", configured: false},
			},
			[]provider.RecipeProvider{&stubReciper{name: "openai", configured: true}},
			[]provider.NutritionProvider{&stubNutrition{name: "edamam", configured: true}},
		)

		assert.Equal(t, []string{"openai", "edamam"}, c.ConfiguredProviders())
	})
}

func TestCoordinator_LookupNutrition(t *testing.T) {
	ctx := context.Background()

	t.Run("no providers configured falls back to estimates", func(t *testing.T) {
		c := NewCoordinator(nil, nil, nil)

		nutrition, source := c.LookupNutrition(ctx, []string{"1 chicken breast", "1 cup rice"})

		assert.Equal(t, SourceMock, source)
		assert.Greater(t, nutrition.Calories, 0.0)
	})

	t.Run("provider result is returned as-is", func(t *testing.T) {
		p := &stubNutrition{
			name:       "edamam",
			configured: true,
			result:     types.Nutrition{Calories: 512, Protein: 30, Carbs: 40, Fat: 20},
		}
		c := NewCoordinator(nil, nil, []provider.NutritionProvider{p})

		nutrition, source := c.LookupNutrition(ctx, []string{"anything"})

		assert.Equal(t, "edamam", source)
		assert.Equal(t, 512.0, nutrition.Calories)
	})

	t.Run("provider failure falls back to estimates", func(t *testing.T) {
		p := &stubNutrition{name: "edamam", configured: true, err: errors.New("down")}
		c := NewCoordinator(nil, nil, []provider.NutritionProvider{p})

		nutrition, source := c.LookupNutrition(ctx, []string{"2 eggs"})

		assert.Equal(t, SourceMock, source)
		assert.Greater(t, nutrition.Calories, 0.0)
	})
}
