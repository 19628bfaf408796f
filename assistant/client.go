package assistant

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ModelClient is the chat-completion collaborator. The Gemini implementation
// is used in production; tests substitute a fake.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds the production model client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: "gemini-1.5-flash"}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}
	raw := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			raw += part.Text
		}
	}
	return raw, nil
}
