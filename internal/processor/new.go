package processor

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/chunker"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/output"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	counter    chunker.Counter
	summarizer summarizer.Summarizer
	writer     output.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, counter chunker.Counter, sum summarizer.Summarizer, w output.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		counter:    counter,
		summarizer: sum,
		writer:     w,
		logger:     log,
	}
}
