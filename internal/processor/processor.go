package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
)

// GenerateMeetingMinutes orchestrates the summary pass and the optional minutes pass.
// Nothing is written unless every chunk of a pass succeeded.
func (p *implProcessor) GenerateMeetingMinutes(ctx context.Context, req Request) error {
	if req.Minutes && req.OutputPath == "" {
		return apperr.Usage("the minutes pass needs an output path")
	}

	startTime := time.Now()
	p.logger.Info(ctx, "Generating summaries: %s", req.TranscriptPath)

	summaries, err := p.ProcessFile(ctx, req.TranscriptPath, p.cfg.Prompts.Summarize, "")
	if err != nil {
		return fmt.Errorf("summarize transcript: %w", err)
	}
	p.logger.Info(ctx, "Summaries generated.")

	if err := p.writer.Write(ctx, req.SummaryPath, summaries); err != nil {
		return fmt.Errorf("write summaries: %w", err)
	}
	p.logger.Info(ctx, "Summaries written to file: %s", req.SummaryPath)

	if req.Minutes {
		if err := p.updateMinutes(ctx, req); err != nil {
			return err
		}
	}

	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	return nil
}

// updateMinutes re-reads the written summaries and merges them into the template seed.
func (p *implProcessor) updateMinutes(ctx context.Context, req Request) error {
	seed, err := os.ReadFile(req.TemplatePath)
	if err != nil {
		return apperr.IO(fmt.Errorf("read minutes template: %w", err))
	}

	minutes, err := p.ProcessFile(ctx, req.SummaryPath, p.cfg.Prompts.UpdateMinutes, string(seed))
	if err != nil {
		return fmt.Errorf("update minutes: %w", err)
	}
	p.logger.Info(ctx, "Meeting minutes generated.")

	if err := p.writer.Write(ctx, req.OutputPath, minutes); err != nil {
		return fmt.Errorf("write minutes: %w", err)
	}
	p.logger.Info(ctx, "Meeting minutes written to file: %s", req.OutputPath)
	return nil
}
