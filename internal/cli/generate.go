package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
)

func NewGenerateCmd(deps *Dependencies) *cobra.Command {
	var minutes bool

	cmd := &cobra.Command{
		Use:     "generateMeetingMinutes <transcript> <template> <summary> [output]",
		Aliases: []string{"generate"},
		Short:   "Summarize a transcript and optionally fold it into meeting minutes",
		Args:    generateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := deps.Load()
			if err != nil {
				return err
			}
			ctx := logger.WithRunID(cmd.Context(), uuid.NewString())

			req := processor.Request{
				TranscriptPath: args[0],
				TemplatePath:   args[1],
				SummaryPath:    args[2],
				Minutes:        minutes || cfg.Minutes.Enabled,
			}
			if len(args) == 4 {
				req.OutputPath = args[3]
			}

			proc, err := deps.NewProcessor(ctx, cfg, log)
			if err != nil {
				return err
			}

			log.Info(ctx, "Generating summary for %s", req.TranscriptPath)
			if err := proc.GenerateMeetingMinutes(ctx, req); err != nil {
				return err
			}
			log.Info(ctx, "Summary written to %s", req.SummaryPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&minutes, "minutes", false, "fold the summaries into the template and write the output file")

	return cmd
}

func generateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return apperr.Usage("usage: %s", cmd.UseLine())
	}
	return nil
}
