package llm

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client *openai.Client
	params Params
}

// NewOpenAI creates a Completer for the legacy /completions endpoint.
// The key is sent as a bearer token on every request.
func NewOpenAI(apiKey, baseURL string, params Params, httpClient *http.Client) (Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key not set: set MINUTES_OPENAI_API_KEY or add openai.api_key to config")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &implOpenAI{
		client: openai.NewClientWithConfig(cfg),
		params: params,
	}, nil
}

func (o *implOpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	// A zero temperature is dropped by omitempty and the service would fall back to 1
	temperature := o.params.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := o.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:            o.params.Model,
		Prompt:           prompt,
		MaxTokens:        o.params.MaxTokens,
		N:                o.params.N,
		Temperature:      temperature,
		TopP:             o.params.TopP,
		FrequencyPenalty: o.params.FrequencyPenalty,
		PresencePenalty:  o.params.PresencePenalty,
	})
	if err != nil {
		return "", fmt.Errorf("create completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoCandidates
	}
	return resp.Choices[0].Text, nil
}
