package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpavan11/snap-chef/internal/types"
)

func completionResponse(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestOpenAI_Detect(t *testing.T) {
	ctx := context.Background()
	img := Image{Data: []byte("fake image"), Mime: "image/jpeg"}

	t.Run("parses a clean JSON detection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Write([]byte(completionResponse(`{"name": "Pad Thai", "confidence": 0.91, "ingredients": ["rice noodles", "peanuts"]}`)))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		detection, err := p.Detect(ctx, img)

		require.NoError(t, err)
		assert.Equal(t, "Pad Thai", detection.Name)
		assert.Equal(t, 0.91, detection.Confidence)
		assert.Equal(t, []string{"rice noodles", "peanuts"}, detection.Ingredients)
	})

	t.Run("digs JSON out of prose and fences", func(t *testing.T) {
		content := "Here you go:\n```json\n{\"name\": \"Ramen\", \"confidence\": 0.8}\n```"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionResponse(content)))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		detection, err := p.Detect(ctx, img)

		require.NoError(t, err)
		assert.Equal(t, "Ramen", detection.Name)
	})

	t.Run("fails on non-JSON content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionResponse("I cannot identify this image.")))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		_, err := p.Detect(ctx, img)

		assert.Error(t, err)
	})

	t.Run("fails on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "rate limited"}`))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		_, err := p.Detect(ctx, img)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("unconfigured provider returns ErrNotConfigured", func(t *testing.T) {
		p := NewOpenAI("", "")
		_, err := p.Detect(ctx, img)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestOpenAI_Recipes(t *testing.T) {
	ctx := context.Background()
	detection := types.DetectionResult{Name: "Pad Thai", Category: "Grain", Ingredients: []string{"rice noodles"}}

	t.Run("parses a recipe array", func(t *testing.T) {
		content := `[
			{"title": "Classic Pad Thai", "description": "Street-style noodles", "cook_time": "25 min", "difficulty": "Medium",
			 "ingredients": ["200 g rice noodles", "2 eggs"], "instructions": ["Soak noodles", "Stir-fry"],
			 "nutrition": {"calories": 450, "protein": 18, "carbs": 60, "fat": 14}}
		]`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionResponse(content)))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		recipes, err := p.Recipes(ctx, detection, 1)

		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Classic Pad Thai", recipes[0].Title)
		assert.NotEmpty(t, recipes[0].ID)
		require.NotNil(t, recipes[0].Nutrition)
		assert.Equal(t, 450.0, recipes[0].Nutrition.Calories)
	})

	t.Run("drops entries missing required fields", func(t *testing.T) {
		content := `[
			{"title": "", "ingredients": ["x"], "instructions": ["y"]},
			{"title": "Keeper", "ingredients": ["x"], "instructions": ["y"]}
		]`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionResponse(content)))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		recipes, err := p.Recipes(ctx, detection, 2)

		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Keeper", recipes[0].Title)
	})

	t.Run("fails when every entry is unusable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionResponse(`[{"title": ""}]`)))
		}))
		defer server.Close()

		p := NewOpenAI("test-key", server.URL)
		_, err := p.Recipes(ctx, detection, 2)

		assert.Error(t, err)
	})
}
