package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

type implGemini struct {
	client *genai.Client
	params Params
}

// NewGemini creates a Completer backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey, baseURL string, params Params, httpClient *http.Client) (Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set: set MINUTES_GEMINI_API_KEY or add gemini.api_key to config")
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implGemini{
		client: client,
		params: params,
	}, nil
}

func (g *implGemini) Complete(ctx context.Context, prompt string) (string, error) {
	gc := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.params.MaxTokens),
		CandidateCount:  int32(g.params.N),
		Temperature:     genai.Ptr(g.params.Temperature),
		TopP:            genai.Ptr(g.params.TopP),
	}
	// Penalties are omitted unless set; some models reject the fields
	if g.params.FrequencyPenalty != 0 {
		gc.FrequencyPenalty = genai.Ptr(g.params.FrequencyPenalty)
	}
	if g.params.PresencePenalty != 0 {
		gc.PresencePenalty = genai.Ptr(g.params.PresencePenalty)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.params.Model, genai.Text(prompt), gc)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrNoCandidates
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
