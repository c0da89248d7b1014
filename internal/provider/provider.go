// Package provider holds one client per external food/recipe/nutrition API.
// Each client parses its provider-native payload into the shared types; the
// fallback ordering across providers lives in the service layer.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gpavan11/snap-chef/internal/types"
)

// ErrNotConfigured marks a provider whose credential is absent. The
// coordinator skips these without logging a failure.
var ErrNotConfigured = errors.New("provider not configured")

// Image is the payload handed to detection providers.
type Image struct {
	Data []byte
	Mime string
	// Name is the uploaded file name, used only by the mock fallback.
	Name string
}

// DetectionProvider identifies the food in an image.
type DetectionProvider interface {
	Name() string
	Configured() bool
	Detect(ctx context.Context, img Image) (types.DetectionResult, error)
}

// RecipeProvider produces recipes for a detected food.
type RecipeProvider interface {
	Name() string
	Configured() bool
	Recipes(ctx context.Context, detection types.DetectionResult, count int) ([]types.RecipeResult, error)
}

// NutritionProvider looks up macros for an ingredient list.
type NutritionProvider interface {
	Name() string
	Configured() bool
	Nutrition(ctx context.Context, ingredients []string) (types.Nutrition, error)
}

const requestTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// doJSON sends the request and returns the response body, treating any
// non-2xx status as an error carrying a body snippet.
func doJSON(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
