package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/version"
)

// ProcessorFactory builds the processor for a run. It is called only after the
// command line has been validated, so usage errors never touch the network.
type ProcessorFactory func(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error)

type Dependencies struct {
	// Load reads the configuration and builds the logger. Commands call it
	// after their arguments validate, so a broken config never hides a usage error.
	Load         func() (*config.Config, logger.Logger, error)
	NewProcessor ProcessorFactory
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minutes",
		Short: "Summarize meeting transcripts chunk by chunk",
		Long:  "A CLI tool that splits a meeting transcript into token-bounded chunks, summarizes each chunk with a completion model, and writes the summaries to disk.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Help()
			return apperr.Usage("missing command")
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewGenerateCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the command line in args. Errors cobra raises itself, such as
// an unknown command, are unclassified and map to exit status 1.
func Execute(ctx context.Context, deps *Dependencies, args []string) error {
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
