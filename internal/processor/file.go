package processor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
	"github.com/nguyentantai21042004/meeting-minutes/internal/chunker"
)

func (p *implProcessor) ProcessFile(ctx context.Context, path, promptTemplate, currentMinutes string) ([]string, error) {
	totalLines, err := countLines(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.IO(fmt.Errorf("open %s: %w", path, err))
	}
	defer f.Close()

	progress := func(linesRead int) {
		p.logger.Info(ctx, "Progress: %d/%d lines read (%d%%)", linesRead, totalLines, percent(linesRead, totalLines))
	}

	var results []string
	for c, err := range chunker.Split(f,
		chunker.WithMaxTokens(p.cfg.Chunking.MaxTokens),
		chunker.WithCounter(p.counter),
		chunker.WithProgress(progress),
	) {
		if err != nil {
			return nil, apperr.IO(fmt.Errorf("read %s: %w", path, err))
		}

		summary, err := p.summarizeChunk(ctx, c, promptTemplate, currentMinutes)
		if err != nil {
			return nil, err
		}
		results = append(results, summary)
	}

	return results, nil
}

func (p *implProcessor) summarizeChunk(ctx context.Context, c chunker.Chunk, promptTemplate, currentMinutes string) (string, error) {
	p.logger.Debug(ctx, "Chunk %d: %d lines, %d tokens", c.Index, c.Lines, c.Tokens)

	summary, err := p.summarizer.Summarize(ctx, c.Text, promptTemplate, currentMinutes)
	if err != nil {
		return "", fmt.Errorf("chunk %d: %w", c.Index, err)
	}
	return summary, nil
}

// countLines is the progress pre-pass; it streams the file instead of loading it.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, apperr.IO(fmt.Errorf("open %s: %w", path, err))
	}
	defer f.Close()

	n, err := chunker.CountLines(f)
	if err != nil {
		return 0, apperr.IO(fmt.Errorf("count lines of %s: %w", path, err))
	}
	return n, nil
}

func percent(done, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
