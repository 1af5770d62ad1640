package summarizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
	"github.com/nguyentantai21042004/meeting-minutes/internal/llm"
)

// Summarize fills the template and makes exactly one completion request.
// Failures are logged with the service's diagnostic and returned as service errors.
func (s *implSummarizer) Summarize(ctx context.Context, chunk, promptTemplate, currentMinutes string) (string, error) {
	prompt := BuildPrompt(promptTemplate, chunk, currentMinutes)
	s.logger.Info(ctx, "Processing chunk...")
	s.logger.Debug(ctx, "Prompt size: %d bytes", len(prompt))

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error(ctx, "Error in completion request: %s", llm.Diagnostic(err))
		return "", apperr.Service(err)
	}

	return strings.TrimSpace(text), nil
}
