package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/meeting-minutes/internal/app"
	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
	"github.com/nguyentantai21042004/meeting-minutes/internal/cli"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
)

const defaultConfigPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}

func run() error {
	ctx := context.Background()

	// A missing .env is fine, the environment may already carry the keys
	_ = godotenv.Load()

	deps := &cli.Dependencies{
		Load:         load,
		NewProcessor: newProcessor,
	}

	return cli.Execute(ctx, deps, os.Args[1:])
}

func load() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug(context.Background(), "Configuration loaded (provider: %s)", cfg.Provider)
	return cfg, log, nil
}

func newProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	application, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("initialize app: %w", err)
	}
	return application.Processor, nil
}

// configPath prefers MINUTES_CONFIG, then config.yaml in the working directory.
// With neither, defaults and environment overrides apply.
func configPath() string {
	if p := os.Getenv("MINUTES_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}
