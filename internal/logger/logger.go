package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	level  string
	format string
}

// New creates a new Logger instance writing to stdout
func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stdout)
}

// NewWithWriter creates a Logger writing to w in the given format ("text" or "json")
func NewWithWriter(level, format string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		out:    w,
		level:  strings.ToLower(level),
		format: strings.ToLower(format),
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args...)
}

func (l *implLogger) write(ctx context.Context, level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := fmt.Sprintf(msg, args...)
	runID := RunID(ctx)

	if l.format == "json" {
		entry := map[string]string{
			"time":  time.Now().Format(time.RFC3339),
			"level": level,
			"msg":   text,
		}
		if runID != "" {
			entry["run_id"] = runID
		}
		line, err := json.Marshal(entry)
		if err != nil {
			return
		}
		l.out.Write(append(line, '\n'))
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if runID != "" {
		prefix += "[" + runID + "] "
	}
	l.logger.Print(prefix + text)
}
