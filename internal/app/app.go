package app

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/chunker"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/llm"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/output"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
)

type App struct {
	Processor processor.Processor
}

// New wires the completion client, summarizer, writer and processor for cfg.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	counter, err := newCounter(cfg)
	if err != nil {
		return nil, err
	}

	completer, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.Provider, err)
	}

	sum := summarizer.New(completer, log)
	writer := output.New(cfg.Output.Docx, log)

	return &App{
		Processor: processor.New(cfg, counter, sum, writer, log),
	}, nil
}

func newCounter(cfg *config.Config) (chunker.Counter, error) {
	if cfg.Chunking.Tokenizer != config.TokenizerTiktoken {
		return chunker.WordCounter{}, nil
	}
	counter, err := chunker.NewTiktokenCounter(cfg.Chunking.Encoding)
	if err != nil {
		return nil, err
	}
	return counter, nil
}
