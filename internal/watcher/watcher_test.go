package watcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

func TestIsTranscriptFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"in/standup.txt", true},
		{"in/STANDUP.TXT", true},
		{"in/notes.md", true},
		{"in/recording.wav", false},
		{"in/.standup.txt", false},
		{"in/noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isTranscriptFile(tt.path); got != tt.want {
				t.Errorf("isTranscriptFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewMissingDir(t *testing.T) {
	log := logger.NewWithWriter("error", "text", &bytes.Buffer{})
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, log, 1)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

func TestStartHandlesNewTranscript(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewWithWriter("error", "text", &bytes.Buffer{})

	handled := make(chan string, 4)
	w, err := New(dir, func(ctx context.Context, path string) error {
		handled <- path
		return nil
	}, log, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "ignored.wav"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "standup.txt")
	if err := os.WriteFile(want, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-handled:
		if got != want {
			t.Errorf("handled %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("transcript was not handled")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}
