package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and summarize new transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := deps.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Minutes.Enabled && cfg.Paths.Template == "" {
				return apperr.Usage("paths.template is required when minutes.enabled is set")
			}
			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			proc, err := deps.NewProcessor(ctx, cfg, log)
			if err != nil {
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, transcriptHandler(cfg, proc, log), log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return apperr.IO(err)
			}
			defer w.Stop()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Concurrent transcripts: %d", cfg.Performance.MaxConcurrent)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info(context.Background(), "Shutting down gracefully...")
			return nil
		},
	}

	return cmd
}

// transcriptHandler runs one generate request per new transcript, each under its own run ID.
func transcriptHandler(cfg *config.Config, proc processor.Processor, log logger.Logger) watcher.EventHandler {
	return func(ctx context.Context, path string) error {
		if isGeneratedFile(path) {
			log.Debug(ctx, "Ignoring generated file: %s", path)
			return nil
		}
		ctx = logger.WithRunID(ctx, uuid.NewString())

		req := watchRequest(cfg, path)
		if err := proc.GenerateMeetingMinutes(ctx, req); err != nil {
			return err
		}

		log.Info(ctx, "Summary written to %s", req.SummaryPath)
		if req.Minutes {
			log.Info(ctx, "Minutes written to %s", req.OutputPath)
		}
		return nil
	}
}

func watchRequest(cfg *config.Config, path string) processor.Request {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	req := processor.Request{
		TranscriptPath: path,
		TemplatePath:   cfg.Paths.Template,
		SummaryPath:    filepath.Join(cfg.Paths.Output, name+".summary.txt"),
		Minutes:        cfg.Minutes.Enabled,
	}
	if req.Minutes {
		req.OutputPath = filepath.Join(cfg.Paths.Output, name+".minutes.md")
	}
	return req
}

// isGeneratedFile guards against output written into a watched input directory.
func isGeneratedFile(path string) bool {
	return strings.HasSuffix(path, ".summary.txt") || strings.HasSuffix(path, ".minutes.md")
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperr.IO(err)
		}
	}
	return nil
}
