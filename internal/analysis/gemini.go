package analysis

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"legalclarity/internal/config"
)

// geminiGenerator is the production Generator backed by the Gemini API.
// An API key selects the Gemini API backend; otherwise the Vertex AI
// backend is used with the configured project and location (credentials
// resolved through application default credentials).
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates the Gemini-backed analysis service.
func NewGeminiService(ctx context.Context, cfg *config.Config) (*ModelService, error) {
	const op = "NewGeminiService"

	cc := &genai.ClientConfig{}
	if cfg.GeminiAPIKey != "" {
		cc.APIKey = cfg.GeminiAPIKey
		cc.Backend = genai.BackendGeminiAPI
	} else if cfg.GCPProjectID != "" {
		cc.Project = cfg.GCPProjectID
		cc.Location = cfg.GCPLocation
		cc.Backend = genai.BackendVertexAI
	} else {
		return nil, wrapError(op, ErrNotConfigured, "")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, wrapError(op, ErrNotConfigured,
			fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	return NewServiceWithGenerator(&geminiGenerator{
		client: client,
		model:  cfg.GeminiModel,
	}), nil
}

// GenerateText implements Generator.
func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return text, nil
}
