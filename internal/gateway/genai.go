package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"krishimitra/internal/logging"
)

// =============================================================================
// GOOGLE GENAI GATEWAY
// =============================================================================

// GenAIConfig configures a GenAIGateway.
type GenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GenAIGateway generates JSON replies with Gemini through the genai SDK.
type GenAIGateway struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGenAIGateway creates a Gemini gateway.
func NewGenAIGateway(ctx context.Context, cfg GenAIConfig) (*GenAIGateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: GenAI API key is required", ErrUnavailable)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIGateway{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Generate sends prompt as a single user turn and asks for a JSON reply.
func (g *GenAIGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}
	}

	start := time.Now()
	logging.GatewayDebug("[GenAI] Generate: model=%s prompt_len=%d", g.model, len(prompt))

	temperature := float32(0.1)
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      &temperature,
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	logging.GatewayDebug("[GenAI] Generate: completed in %v response_len=%d", time.Since(start), len(text))
	return text, nil
}

// Model returns the model name.
func (g *GenAIGateway) Model() string {
	return g.model
}
