package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/apperr"
)

func (w *implWriter) Write(ctx context.Context, path string, parts []string) error {
	content := strings.Join(parts, "\n")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperr.IO(fmt.Errorf("create output dir: %w", err))
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperr.IO(fmt.Errorf("write %s: %w", path, err))
	}
	w.logger.Debug(ctx, "Wrote %d parts to %s", len(parts), path)

	if !w.docx {
		return nil
	}

	docxPath := DocxPath(path)
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := markdownToDocx(title, content, docxPath); err != nil {
		return apperr.IO(fmt.Errorf("write %s: %w", docxPath, err))
	}
	w.logger.Info(ctx, "Docx written: %s", docxPath)
	return nil
}

// DocxPath returns path with its extension replaced by .docx.
func DocxPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".docx"
}
