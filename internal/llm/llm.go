package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the default Gemini model used for topic generation.
const DefaultModel = "gemini-2.5-flash"

// Client represents a client for interacting with the Gemini API.
type Client struct {
	modelName string
	gClient   *genai.Client
}

// NewClient creates a new LLM client. The API key is an injected dependency
// resolved by the configuration layer; this package never reads the
// environment itself.
func NewClient(ctx context.Context, apiKey string, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY or ai.gemini.api_key in the config file")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		modelName: modelName,
		gClient:   gClient,
	}, nil
}

// GenerateText sends a single prompt and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}
