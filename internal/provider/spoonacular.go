package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gpavan11/snap-chef/internal/types"
)

const defaultSpoonacularURL = "https://api.spoonacular.com"

// Spoonacular searches recipes by ingredient list and fetches full details
// per candidate.
type Spoonacular struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSpoonacular creates a Spoonacular provider.
func NewSpoonacular(apiKey, baseURL string) *Spoonacular {
	if baseURL == "" {
		baseURL = defaultSpoonacularURL
	}
	return &Spoonacular{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/"), client: newHTTPClient()}
}

func (p *Spoonacular) Name() string     { return "spoonacular" }
func (p *Spoonacular) Configured() bool { return p.apiKey != "" }

type spoonacularCandidate struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type spoonacularInformation struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Summary             string `json:"summary"`
	Image               string `json:"image"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Step string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

// Recipes searches by the detection's ingredients (falling back to its name)
// and fetches detail per candidate. Candidates whose detail fetch fails are
// skipped rather than failing the whole call.
func (p *Spoonacular) Recipes(ctx context.Context, detection types.DetectionResult, count int) ([]types.RecipeResult, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	query := strings.Join(detection.Ingredients, ",")
	if query == "" {
		query = detection.Name
	}

	params := url.Values{}
	params.Set("ingredients", query)
	params.Set("number", strconv.Itoa(count))
	params.Set("apiKey", p.apiKey)

	searchURL := fmt.Sprintf("%s/recipes/findByIngredients?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := doJSON(p.client, req)
	if err != nil {
		return nil, err
	}

	var candidates []spoonacularCandidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no recipes found for %q", query)
	}

	recipes := make([]types.RecipeResult, 0, len(candidates))
	for _, c := range candidates {
		recipe, err := p.information(ctx, c)
		if err != nil {
			continue
		}
		recipes = append(recipes, recipe)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("all detail lookups failed for %q", query)
	}
	return recipes, nil
}

func (p *Spoonacular) information(ctx context.Context, c spoonacularCandidate) (types.RecipeResult, error) {
	infoURL := fmt.Sprintf("%s/recipes/%d/information?apiKey=%s", p.baseURL, c.ID, url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return types.RecipeResult{}, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := doJSON(p.client, req)
	if err != nil {
		return types.RecipeResult{}, err
	}

	var info spoonacularInformation
	if err := json.Unmarshal(body, &info); err != nil {
		return types.RecipeResult{}, fmt.Errorf("failed to decode information response: %w", err)
	}

	ingredients := make([]string, 0, len(info.ExtendedIngredients))
	for _, ing := range info.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}
	var instructions []string
	for _, block := range info.AnalyzedInstructions {
		for _, step := range block.Steps {
			instructions = append(instructions, step.Step)
		}
	}
	if len(ingredients) == 0 || len(instructions) == 0 {
		return types.RecipeResult{}, fmt.Errorf("recipe %d missing ingredients or instructions", info.ID)
	}

	return types.RecipeResult{
		ID:           strconv.Itoa(info.ID),
		Title:        info.Title,
		Description:  stripHTML(info.Summary),
		ImageURL:     info.Image,
		CookTime:     fmt.Sprintf("%d min", info.ReadyInMinutes),
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

// stripHTML drops the markup Spoonacular embeds in summaries.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
