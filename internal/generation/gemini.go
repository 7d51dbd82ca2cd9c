package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiProvider calls the Gemini API through the genai SDK.
type GeminiProvider struct {
	client *genai.Client
	log    *zap.Logger
}

// NewGeminiProvider builds the process-wide Gemini client. An empty apiKey is not an error
// here: the provider is still returned and every call fails with ErrMissingAPIKey.
func NewGeminiProvider(ctx context.Context, apiKey string, log *zap.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY is not set, generation requests will fail")
		return &GeminiProvider{log: log}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{client: client, log: log}, nil
}

func (p *GeminiProvider) GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	if p.client == nil {
		return "", ErrMissingAPIKey
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return resp.Text(), nil
}
