package client

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"postforge/internal/domain/entity"
)

// probePrompt is the trivial prompt used to verify a candidate model answers.
const probePrompt = "Hello"

// GeminiClient adapts one Gemini model to the CompletionProvider contract.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient builds the shared genai client from an API key.
func NewGenAIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, entity.ErrMissingAPIKey
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
	}
}

// ProbeModels tries each candidate model in order with a trivial prompt and
// returns a client bound to the first one that answers. If none answer the
// service cannot start.
func ProbeModels(ctx context.Context, c *genai.Client, candidates []string, logger *logrus.Logger) (*GeminiClient, error) {
	var lastErr error
	for _, model := range candidates {
		candidate := NewGeminiClientFromClient(c, model)
		if _, err := candidate.Generate(ctx, probePrompt); err != nil {
			lastErr = err
			if logger != nil {
				logger.WithError(err).WithField("model", model).Warn("Model probe failed")
			}
			continue
		}
		if logger != nil {
			logger.WithField("model", model).Info("Model initialized")
		}
		return candidate, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: last error: %v", entity.ErrNoUsableModel, lastErr)
	}
	return nil, entity.ErrNoUsableModel
}

// ModelName reports which candidate model answered the startup probe.
func (g *GeminiClient) ModelName() string {
	return g.model
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if text == "" {
		return "", entity.ErrEmptyCompletion
	}
	return text, nil
}
