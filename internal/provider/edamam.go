package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gpavan11/snap-chef/internal/types"
)

const defaultEdamamURL = "https://api.edamam.com/api/nutrition-details"

// Edamam looks up macros for an ingredient list via the nutrition-details API.
type Edamam struct {
	appID  string
	appKey string
	apiURL string
	client *http.Client
}

// NewEdamam creates an Edamam provider. Both the app ID and key are required
// for it to count as configured.
func NewEdamam(appID, appKey, apiURL string) *Edamam {
	if apiURL == "" {
		apiURL = defaultEdamamURL
	}
	return &Edamam{appID: appID, appKey: appKey, apiURL: apiURL, client: newHTTPClient()}
}

func (p *Edamam) Name() string     { return "edamam" }
func (p *Edamam) Configured() bool { return p.appID != "" && p.appKey != "" }

// Nutrition returns total macros for the ingredient list.
func (p *Edamam) Nutrition(ctx context.Context, ingredients []string) (types.Nutrition, error) {
	if !p.Configured() {
		return types.Nutrition{}, ErrNotConfigured
	}

	reqBody := map[string]interface{}{
		"ingr": ingredients,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return types.Nutrition{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s?app_id=%s&app_key=%s", p.apiURL, p.appID, p.appKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return types.Nutrition{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := doJSON(p.client, req)
	if err != nil {
		return types.Nutrition{}, err
	}

	var result struct {
		Calories       float64 `json:"calories"`
		TotalNutrients struct {
			Protein struct {
				Quantity float64 `json:"quantity"`
			} `json:"PROCNT"`
			Carbs struct {
				Quantity float64 `json:"quantity"`
			} `json:"CHOCDF"`
			Fat struct {
				Quantity float64 `json:"quantity"`
			} `json:"FAT"`
		} `json:"totalNutrients"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return types.Nutrition{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return types.Nutrition{
		Calories: result.Calories,
		Protein:  result.TotalNutrients.Protein.Quantity,
		Carbs:    result.TotalNutrients.Carbs.Quantity,
		Fat:      result.TotalNutrients.Fat.Quantity,
	}, nil
}
