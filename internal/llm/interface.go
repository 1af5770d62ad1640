package llm

import (
	"context"
	"errors"
)

// Completer turns one prompt into the text of the first generated candidate.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Params are the generation settings sent with every request.
type Params struct {
	Model            string
	MaxTokens        int
	N                int
	Temperature      float32
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// ErrNoCandidates is returned when a successful response carries no candidate text.
var ErrNoCandidates = errors.New("completion response has no candidates")
