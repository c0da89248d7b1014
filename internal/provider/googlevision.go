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

const defaultGoogleVisionURL = "https://vision.googleapis.com/v1/images:annotate"

// GoogleVision runs label detection against the Cloud Vision REST API.
type GoogleVision struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewGoogleVision creates a Google Vision provider.
func NewGoogleVision(apiKey, apiURL string) *GoogleVision {
	if apiURL == "" {
		apiURL = defaultGoogleVisionURL
	}
	return &GoogleVision{apiKey: apiKey, apiURL: apiURL, client: newHTTPClient()}
}

func (p *GoogleVision) Name() string     { return "google-vision" }
func (p *GoogleVision) Configured() bool { return p.apiKey != "" }

// Detect returns the top label annotation as the detected food.
func (p *GoogleVision) Detect(ctx context.Context, img Image) (types.DetectionResult, error) {
	if !p.Configured() {
		return types.DetectionResult{}, ErrNotConfigured
	}

	reqBody := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"image": map[string]string{
					"content": base64.StdEncoding.EncodeToString(img.Data),
				},
				"features": []map[string]interface{}{
					{"type": "LABEL_DETECTION", "maxResults": 10},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+"?key="+p.apiKey, bytes.NewBuffer(jsonData))
	if err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := doJSON(p.client, req)
	if err != nil {
		return types.DetectionResult{}, err
	}

	var result struct {
		Responses []struct {
			LabelAnnotations []struct {
				Description string  `json:"description"`
				Score       float64 `json:"score"`
			} `json:"labelAnnotations"`
		} `json:"responses"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Responses) == 0 || len(result.Responses[0].LabelAnnotations) == 0 {
		return types.DetectionResult{}, fmt.Errorf("no labels in response")
	}

	top := result.Responses[0].LabelAnnotations[0]
	return types.DetectionResult{
		Name:       top.Description,
		Confidence: top.Score,
	}, nil
}
