package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gpavan11/snap-chef/internal/types"
)

const defaultHuggingFaceURL = "https://api-inference.huggingface.co/models/nateraw/food"

// HuggingFace runs a hosted food image-classification model through the
// inference API.
type HuggingFace struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewHuggingFace creates a Hugging Face provider.
func NewHuggingFace(apiKey, apiURL string) *HuggingFace {
	if apiURL == "" {
		apiURL = defaultHuggingFaceURL
	}
	return &HuggingFace{apiKey: apiKey, apiURL: apiURL, client: newHTTPClient()}
}

func (p *HuggingFace) Name() string     { return "huggingface" }
func (p *HuggingFace) Configured() bool { return p.apiKey != "" }

// Detect posts the raw image bytes and takes the top classification label.
func (p *HuggingFace) Detect(ctx context.Context, img Image) (types.DetectionResult, error) {
	if !p.Configured() {
		return types.DetectionResult{}, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(img.Data))
	if err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	if img.Mime != "" {
		req.Header.Set("Content-Type", img.Mime)
	}

	body, err := doJSON(p.client, req)
	if err != nil {
		return types.DetectionResult{}, err
	}

	var labels []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &labels); err != nil {
		return types.DetectionResult{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(labels) == 0 {
		return types.DetectionResult{}, fmt.Errorf("no labels in response")
	}

	return types.DetectionResult{
		Name:       labels[0].Label,
		Confidence: labels[0].Score,
	}, nil
}
