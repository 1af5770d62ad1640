package watcher

import "context"

// Watcher defines the interface for transcript directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles a newly created transcript
type EventHandler func(ctx context.Context, filePath string) error
