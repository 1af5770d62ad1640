package processor

import "context"

// Request names the files of one meeting-minutes run.
type Request struct {
	TranscriptPath string
	TemplatePath   string // seed for the minutes pass
	SummaryPath    string
	OutputPath     string // minutes pass output
	Minutes        bool   // run the minutes pass after writing summaries
}

// Processor drives transcripts through chunking and summarization
type Processor interface {
	// GenerateMeetingMinutes summarizes the transcript, writes the summaries and,
	// when requested, folds them into the minutes template.
	GenerateMeetingMinutes(ctx context.Context, req Request) error
	// ProcessFile summarizes every chunk of the file at path, in order.
	ProcessFile(ctx context.Context, path, promptTemplate, currentMinutes string) ([]string, error)
}
