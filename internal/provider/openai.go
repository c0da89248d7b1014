package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gpavan11/snap-chef/internal/types"
	"github.com/gpavan11/snap-chef/internal/util"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAI calls the chat completions API, for both vision detection and
// structured recipe generation.
type OpenAI struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewOpenAI creates an OpenAI provider. An empty key leaves it unconfigured.
func NewOpenAI(apiKey, apiURL string) *OpenAI {
	if apiURL == "" {
		apiURL = defaultOpenAIURL
	}
	return &OpenAI{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  "gpt-4o-mini",
		client: newHTTPClient(),
	}
}

func (p *OpenAI) Name() string     { return "openai" }
func (p *OpenAI) Configured() bool { return p.apiKey != "" }

type openAIMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type openAIRequest struct {
	Model          string            `json:"model"`
	Messages       []openAIMessage   `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	Temperature    float64           `json:"temperature,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Detect asks the vision model to describe the food as a strict JSON object.
func (p *OpenAI) Detect(ctx context.Context, img Image) (types.DetectionResult, error) {
	if !p.Configured() {
		return types.DetectionResult{}, ErrNotConfigured
	}

	mime := img.Mime
	if mime == "" {
		mime = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data))

	req := openAIRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{
				Role: "system",
				Content: `You are a food recognition expert. Identify the food in the image and respond ONLY with a JSON object of this exact shape:
{"name": "Dish name", "confidence": 0.95, "ingredients": ["ingredient1", "ingredient2"]}
The confidence field must be a number between 0 and 1.`,
			},
			{
				Role: "user",
				Content: []map[string]interface{}{
					{"type": "text", "text": "What food is in this photo?"},
					{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
				},
			},
		},
		MaxTokens: 300,
	}

	content, err := p.complete(ctx, req)
	if err != nil {
		return types.DetectionResult{}, err
	}

	var parsed struct {
		Name        string   `json:"name"`
		Confidence  float64  `json:"confidence"`
		Ingredients []string `json:"ingredients"`
	}
	if err := util.ExtractJSONInto(content, &parsed); err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to parse detection: %w", err)
	}
	if parsed.Name == "" {
		return types.DetectionResult{}, fmt.Errorf("detection response missing food name")
	}

	return types.DetectionResult{
		Name:        parsed.Name,
		Confidence:  parsed.Confidence,
		Ingredients: parsed.Ingredients,
	}, nil
}

// Recipes asks the model for count structured recipes keyed off the detection.
func (p *OpenAI) Recipes(ctx context.Context, detection types.DetectionResult, count int) ([]types.RecipeResult, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	prompt := fmt.Sprintf("Generate %d recipes based on: %s (category: %s)", count, detection.Name, detection.Category)
	if len(detection.Ingredients) > 0 {
		prompt += ". Detected ingredients: " + strings.Join(detection.Ingredients, ", ")
	}

	req := openAIRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{
				Role: "system",
				Content: `You are a professional chef. Respond ONLY with a JSON array of recipe objects of this exact shape:
[{"title": "Recipe name", "description": "One sentence", "cook_time": "30 min", "difficulty": "Easy", "ingredients": ["2 cups flour"], "instructions": ["Step one"], "nutrition": {"calories": 350, "protein": 15, "carbs": 45, "fat": 12}}]
The difficulty field must be Easy, Medium or Hard. The nutrition values must be numbers.`,
			},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.8,
	}

	content, err := p.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	var parsed []struct {
		Title        string           `json:"title"`
		Description  string           `json:"description"`
		CookTime     string           `json:"cook_time"`
		Difficulty   string           `json:"difficulty"`
		Ingredients  []string         `json:"ingredients"`
		Instructions []string         `json:"instructions"`
		Nutrition    *types.Nutrition `json:"nutrition"`
	}
	if err := util.ExtractJSONInto(content, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}

	recipes := make([]types.RecipeResult, 0, len(parsed))
	for _, r := range parsed {
		if r.Title == "" || len(r.Ingredients) == 0 || len(r.Instructions) == 0 {
			continue
		}
		recipes = append(recipes, types.RecipeResult{
			ID:           uuid.New().String(),
			Title:        r.Title,
			Description:  r.Description,
			CookTime:     r.CookTime,
			Difficulty:   r.Difficulty,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
			Nutrition:    r.Nutrition,
		})
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no usable recipes in response")
	}
	return recipes, nil
}

func (p *OpenAI) complete(ctx context.Context, reqBody openAIRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	body, err := doJSON(p.client, req)
	if err != nil {
		return "", err
	}

	var result openAIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}
	return result.Choices[0].Message.Content, nil
}
