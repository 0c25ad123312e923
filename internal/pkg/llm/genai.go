package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient calls Gemini through the Google Gen AI SDK.
type GenAIClient struct {
	Model  string
	client *genai.Client
}

func NewGenAIClient(ctx context.Context, apiKey string, model string, baseURL string) (*GenAIClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &GenAIClient{Model: model, client: client}, nil
}

func (c *GenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("genai generate error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("genai returned empty response")
	}
	return text, nil
}
