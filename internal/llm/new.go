package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
)

// New builds the Completer for the configured provider.
func New(ctx context.Context, cfg *config.Config) (Completer, error) {
	params := Params{
		MaxTokens:        cfg.Generation.MaxTokens,
		N:                cfg.Generation.N,
		TopP:             cfg.Generation.TopP,
		FrequencyPenalty: cfg.Generation.FrequencyPenalty,
		PresencePenalty:  cfg.Generation.PresencePenalty,
	}
	if cfg.Generation.Temperature != nil {
		params.Temperature = *cfg.Generation.Temperature
	}
	httpClient := &http.Client{Timeout: cfg.LLM.Timeout}
	apiKey := cfg.APIKey()

	switch cfg.Provider {
	case config.ProviderGemini:
		params.Model = cfg.Gemini.Model
		return NewGemini(ctx, apiKey, cfg.Gemini.BaseURL, params, httpClient)
	case config.ProviderOpenAI:
		params.Model = cfg.OpenAI.Model
		return NewOpenAI(apiKey, cfg.OpenAI.BaseURL, params, httpClient)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
