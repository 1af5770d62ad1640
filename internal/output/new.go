package output

import "github.com/nguyentantai21042004/meeting-minutes/internal/logger"

type implWriter struct {
	docx   bool
	logger logger.Logger
}

// New creates a Writer. With docx set, every text file also gets a .docx rendering beside it.
func New(docx bool, log logger.Logger) Writer {
	return &implWriter{
		docx:   docx,
		logger: log,
	}
}
