package summarizer

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/llm"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type implSummarizer struct {
	completer llm.Completer
	logger    logger.Logger
}

// New creates a Summarizer that sends every prompt through completer.
func New(completer llm.Completer, log logger.Logger) Summarizer {
	return &implSummarizer{
		completer: completer,
		logger:    log,
	}
}
