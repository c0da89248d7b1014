package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gpavan11/snap-chef/internal/types"
)

const defaultClarifaiURL = "https://api.clarifai.com/v2/models/food-item-recognition/outputs"

// Clarifai runs the food-item-recognition model.
type Clarifai struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewClarifai creates a Clarifai provider.
func NewClarifai(apiKey, apiURL string) *Clarifai {
	if apiURL == "" {
		apiURL = defaultClarifaiURL
	}
	return &Clarifai{apiKey: apiKey, apiURL: apiURL, client: newHTTPClient()}
}

func (p *Clarifai) Name() string     { return "clarifai" }
func (p *Clarifai) Configured() bool { return p.apiKey != "" }

// Detect returns the top food concept; lower-ranked concepts become the
// ingredient list.
func (p *Clarifai) Detect(ctx context.Context, img Image) (types.DetectionResult, error) {
	if !p.Configured() {
		return types.DetectionResult{}, ErrNotConfigured
	}

	reqBody := map[string]interface{}{
		"inputs": []map[string]interface{}{
			{
				"data": map[string]interface{}{
					"image": map[string]string{
						"base64": base64.StdEncoding.EncodeToString(img.Data),
					},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+p.apiKey)

	body, err := doJSON(p.client, req)
	if err != nil {
		return types.DetectionResult{}, err
	}

	var result struct {
		Outputs []struct {
			Data struct {
				Concepts []struct {
					Name  string  `json:"name"`
					Value float64 `json:"value"`
				} `json:"concepts"`
			} `json:"data"`
		} `json:"outputs"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Outputs) == 0 || len(result.Outputs[0].Data.Concepts) == 0 {
		return types.DetectionResult{}, fmt.Errorf("no concepts in response")
	}

	concepts := result.Outputs[0].Data.Concepts
	detection := types.DetectionResult{
		Name:       concepts[0].Name,
		Confidence: concepts[0].Value,
	}
	for _, c := range concepts[1:] {
		if c.Value < 0.5 {
			break
		}
		detection.Ingredients = append(detection.Ingredients, c.Name)
	}
	return detection, nil
}
