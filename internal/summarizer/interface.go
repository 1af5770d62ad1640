package summarizer

import "context"

// Summarizer turns one transcript chunk into a summary through the completion service.
type Summarizer interface {
	Summarize(ctx context.Context, chunk, promptTemplate, currentMinutes string) (string, error)
}
