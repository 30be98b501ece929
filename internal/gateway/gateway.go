// Package gateway provides the language model backends used by the
// resolver's model pass: Gemini through google.golang.org/genai, any
// OpenAI-compatible chat completions endpoint, a response cache and a
// tracing wrapper that records every call.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"krishimitra/internal/config"
	"krishimitra/internal/logging"
)

// Gateway sends one prompt to a model and returns the raw reply text.
// perception.ModelGateway is satisfied by every implementation here.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrUnavailable is returned by New when no provider or credential is configured.
var ErrUnavailable = errors.New("model gateway unavailable")

// Provider names accepted in llm.provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// Default models per provider.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// New builds the configured gateway: the provider client, wrapped in a
// TracingGateway when llm.trace is set and traces is non-nil, then in a
// CachingGateway when llm.cache_size > 0.
func New(cfg *config.Config, traces TraceStore) (Gateway, error) {
	if !cfg.HasModel() {
		return nil, fmt.Errorf("%w: provider %q has no API key", ErrUnavailable, cfg.LLM.Provider)
	}

	model := modelFor(cfg.LLM.Provider, cfg.LLM.Model)
	var (
		gw  Gateway
		err error
	)
	switch cfg.LLM.Provider {
	case ProviderGemini:
		gw, err = NewGenAIGateway(context.Background(), GenAIConfig{
			APIKey:  cfg.LLM.APIKey,
			Model:   model,
			Timeout: cfg.GetLLMTimeout(),
		})
	case ProviderOpenAI:
		gw = NewOpenAIGateway(OpenAIConfig{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   model,
			Timeout: cfg.GetLLMTimeout(),
		})
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrUnavailable, cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.LLM.Trace && traces != nil {
		gw = NewTracingGateway(gw, traces, model)
	}
	if cfg.LLM.CacheSize > 0 {
		gw, err = NewCachingGateway(gw, cfg.LLM.CacheSize)
		if err != nil {
			return nil, err
		}
	}

	logging.Gateway("Model gateway ready: provider=%s model=%s cache=%d trace=%v",
		cfg.LLM.Provider, model, cfg.LLM.CacheSize, cfg.LLM.Trace)
	return gw, nil
}

// modelFor picks the provider default when model is unset or belongs to
// the other provider's family.
func modelFor(provider, model string) string {
	switch provider {
	case ProviderOpenAI:
		if model == "" || strings.HasPrefix(model, "gemini") {
			return DefaultOpenAIModel
		}
	case ProviderGemini:
		if model == "" || strings.HasPrefix(model, "gpt") {
			return DefaultGeminiModel
		}
	}
	return model
}

// Close releases resources held by gw or anything it wraps.
func Close(gw Gateway) error {
	if c, ok := gw.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
