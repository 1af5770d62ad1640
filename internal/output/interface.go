package output

import "context"

// Writer persists the ordered results of a pipeline pass.
type Writer interface {
	// Write joins parts with "\n" into path.
	Write(ctx context.Context, path string, parts []string) error
}
